package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/portaria-digital/concierge/gen/ent"
	entvisit "github.com/portaria-digital/concierge/gen/ent/visit"
)

type RegisterEntryRequest struct {
	VisitorID  uuid.UUID
	Method     string // constants.MatchMethod value
	Confidence *float32
	Notes      *string
}

type VisitRepository interface {
	RegisterEntry(ctx context.Context, req *RegisterEntryRequest) (*ent.Visit, error)
	// RegisterExit closes the visitor's most recent open visit and returns it.
	RegisterExit(ctx context.Context, visitorID uuid.UUID) (*ent.Visit, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*ent.Visit, error)
	ListOpen(ctx context.Context) ([]*ent.Visit, error)
}

type visitRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewVisitRepository(entc *ent.Client, logger *slog.Logger) VisitRepository {
	return &visitRepo{ent: entc, logger: logger}
}

func (r *visitRepo) RegisterEntry(ctx context.Context, req *RegisterEntryRequest) (*ent.Visit, error) {
	row, err := r.ent.Visit.Create().
		SetVisitorID(req.VisitorID).
		SetMethod(req.Method).
		SetNillableConfidence(req.Confidence).
		SetNillableNotes(req.Notes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to register entry", "visitor_id", req.VisitorID, "error", err)
		return nil, err
	}
	r.logger.Info("entry registered", "visit_id", row.ID, "visitor_id", req.VisitorID, "method", req.Method)
	return row, nil
}

func (r *visitRepo) RegisterExit(ctx context.Context, visitorID uuid.UUID) (*ent.Visit, error) {
	open, err := r.ent.Visit.Query().
		Where(
			entvisit.VisitorID(visitorID),
			entvisit.ExitAtIsNil(),
		).
		Order(ent.Desc(entvisit.FieldEntryAt)).
		First(ctx)
	if err != nil {
		r.logger.Error("no open visit for exit", "visitor_id", visitorID, "error", err)
		return nil, err
	}
	row, err := open.Update().
		SetExitAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to register exit", "visit_id", open.ID, "error", err)
		return nil, err
	}
	r.logger.Info("exit registered", "visit_id", row.ID, "visitor_id", visitorID)
	return row, nil
}

func (r *visitRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*ent.Visit, error) {
	return r.ent.Visit.Query().
		Where(
			entvisit.EntryAtGTE(from),
			entvisit.EntryAtLT(to),
		).
		Order(ent.Asc(entvisit.FieldEntryAt)).
		WithVisitor().
		All(ctx)
}

func (r *visitRepo) ListOpen(ctx context.Context) ([]*ent.Visit, error) {
	return r.ent.Visit.Query().
		Where(entvisit.ExitAtIsNil()).
		Order(ent.Asc(entvisit.FieldEntryAt)).
		WithVisitor().
		All(ctx)
}
