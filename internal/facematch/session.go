package facematch

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// State of one recognition attempt.
type State string

const (
	StateScanning        State = "SCANNING"
	StateCaptured        State = "CAPTURED"
	StateManualSelection State = "MANUAL_SELECTION"
	StateMatched         State = "MATCHED"
	StateAborted         State = "ABORTED"
)

var ErrInvalidTransition = errors.New("invalid recognition state transition")

// Session tracks a single recognition attempt from first camera frame to a
// confirmed identity. MATCHED and ABORTED are terminal.
type Session struct {
	state    State
	personID uuid.UUID
	match    *MatchResult // nil when the identity was picked manually
}

func NewSession() *Session {
	return &Session{state: StateScanning}
}

func (s *Session) State() State { return s.state }

// PersonID returns the identified person once the session is MATCHED.
func (s *Session) PersonID() uuid.UUID { return s.personID }

// Match returns the automatic match result, or nil for manual selection.
func (s *Session) Match() *MatchResult { return s.match }

// NoFace records a frame without a detectable face. The session keeps
// scanning; callers surface this as a transient message.
func (s *Session) NoFace() error {
	if s.state != StateScanning {
		return transitionErr(s.state, StateScanning)
	}
	return nil
}

// Capture moves SCANNING -> CAPTURED once a frame is taken.
func (s *Session) Capture() error {
	if s.state != StateScanning {
		return transitionErr(s.state, StateCaptured)
	}
	s.state = StateCaptured
	return nil
}

// FallBack moves CAPTURED -> MANUAL_SELECTION when no descriptor could be
// extracted or no gallery entry sat under the threshold.
func (s *Session) FallBack() error {
	if s.state != StateCaptured {
		return transitionErr(s.state, StateManualSelection)
	}
	s.state = StateManualSelection
	return nil
}

// Identify moves CAPTURED -> MATCHED with an automatic match result.
func (s *Session) Identify(res *MatchResult) error {
	if s.state != StateCaptured {
		return transitionErr(s.state, StateMatched)
	}
	if res == nil {
		return fmt.Errorf("%w: match result required", ErrInvalidTransition)
	}
	s.state = StateMatched
	s.personID = res.PersonID
	s.match = res
	return nil
}

// SelectManually moves MANUAL_SELECTION -> MATCHED with an operator-picked
// gallery entry.
func (s *Session) SelectManually(personID uuid.UUID) error {
	if s.state != StateManualSelection {
		return transitionErr(s.state, StateMatched)
	}
	if personID == uuid.Nil {
		return fmt.Errorf("%w: person id required", ErrInvalidTransition)
	}
	s.state = StateMatched
	s.personID = personID
	s.match = nil
	return nil
}

// Abort cancels the attempt from any non-terminal state.
func (s *Session) Abort() error {
	switch s.state {
	case StateScanning, StateCaptured, StateManualSelection:
		s.state = StateAborted
		return nil
	}
	return transitionErr(s.state, StateAborted)
}

func transitionErr(from, to State) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
