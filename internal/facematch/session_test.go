package facematch

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AutomaticMatchFlow(t *testing.T) {
	s := NewSession()
	assert.Equal(t, StateScanning, s.State())

	// A frame without a face keeps the session scanning.
	require.NoError(t, s.NoFace())
	assert.Equal(t, StateScanning, s.State())

	require.NoError(t, s.Capture())
	assert.Equal(t, StateCaptured, s.State())

	res := &MatchResult{PersonID: uuid.New(), Distance: 0.3, Confidence: 0.5}
	require.NoError(t, s.Identify(res))
	assert.Equal(t, StateMatched, s.State())
	assert.Equal(t, res.PersonID, s.PersonID())
	assert.Equal(t, res, s.Match())
}

func TestSession_ManualSelectionFlow(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Capture())
	require.NoError(t, s.FallBack())
	assert.Equal(t, StateManualSelection, s.State())

	id := uuid.New()
	require.NoError(t, s.SelectManually(id))
	assert.Equal(t, StateMatched, s.State())
	assert.Equal(t, id, s.PersonID())
	assert.Nil(t, s.Match())
}

func TestSession_InvalidTransitions(t *testing.T) {
	s := NewSession()

	// Cannot identify or fall back before capturing.
	assert.ErrorIs(t, s.Identify(&MatchResult{PersonID: uuid.New()}), ErrInvalidTransition)
	assert.ErrorIs(t, s.FallBack(), ErrInvalidTransition)
	assert.ErrorIs(t, s.SelectManually(uuid.New()), ErrInvalidTransition)

	require.NoError(t, s.Capture())
	assert.ErrorIs(t, s.Capture(), ErrInvalidTransition)
	assert.ErrorIs(t, s.NoFace(), ErrInvalidTransition)
	assert.ErrorIs(t, s.Identify(nil), ErrInvalidTransition)

	require.NoError(t, s.FallBack())
	assert.ErrorIs(t, s.SelectManually(uuid.Nil), ErrInvalidTransition)
}

func TestSession_AbortFromAnyNonTerminalState(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Abort())
	assert.Equal(t, StateAborted, s.State())
	assert.ErrorIs(t, s.Abort(), ErrInvalidTransition)

	s = NewSession()
	require.NoError(t, s.Capture())
	require.NoError(t, s.Abort())

	s = NewSession()
	require.NoError(t, s.Capture())
	require.NoError(t, s.FallBack())
	require.NoError(t, s.Abort())

	// MATCHED is terminal.
	s = NewSession()
	require.NoError(t, s.Capture())
	require.NoError(t, s.Identify(&MatchResult{PersonID: uuid.New()}))
	assert.ErrorIs(t, s.Abort(), ErrInvalidTransition)
}

func TestSession_MatchedIsTerminal(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Capture())
	require.NoError(t, s.Identify(&MatchResult{PersonID: uuid.New()}))

	assert.ErrorIs(t, s.Capture(), ErrInvalidTransition)
	assert.ErrorIs(t, s.FallBack(), ErrInvalidTransition)
	assert.ErrorIs(t, s.Identify(&MatchResult{PersonID: uuid.New()}), ErrInvalidTransition)
}
