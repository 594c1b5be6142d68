package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/portaria-digital/concierge/gen/ent"
	entvisitor "github.com/portaria-digital/concierge/gen/ent/visitor"
)

type CreateVisitorRequest struct {
	Name      string
	TaxID     *string
	BirthDate *string
	PhotoPath *string
}

type VisitorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Visitor, error)
	FindByTaxID(ctx context.Context, taxID string) (*ent.Visitor, error)
	Create(ctx context.Context, req *CreateVisitorRequest) (*ent.Visitor, error)
	// UpsertByTaxID matches on the tax id when one is present; the bool
	// reports whether an existing row was reused.
	UpsertByTaxID(ctx context.Context, req *CreateVisitorRequest) (*ent.Visitor, bool, error)
	SetPhotoPath(ctx context.Context, id uuid.UUID, photoPath string) error
	List(ctx context.Context) ([]*ent.Visitor, error)
	ListWithPhoto(ctx context.Context) ([]*ent.Visitor, error)
}

type visitorRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewVisitorRepository(entc *ent.Client, logger *slog.Logger) VisitorRepository {
	return &visitorRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *visitorRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Visitor, error) {
	return r.ent.Visitor.Get(ctx, id)
}

func (r *visitorRepo) FindByTaxID(ctx context.Context, taxID string) (*ent.Visitor, error) {
	row, err := r.ent.Visitor.Query().
		Where(entvisitor.TaxID(taxID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *visitorRepo) Create(ctx context.Context, req *CreateVisitorRequest) (*ent.Visitor, error) {
	row, err := r.ent.Visitor.Create().
		SetName(req.Name).
		SetNillableTaxID(req.TaxID).
		SetNillableBirthDate(req.BirthDate).
		SetNillablePhotoPath(req.PhotoPath).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create visitor", "name", req.Name, "error", err)
		return nil, err
	}
	r.logger.Info("visitor created", "visitor_id", row.ID, "name", row.Name)
	return row, nil
}

func (r *visitorRepo) UpsertByTaxID(ctx context.Context, req *CreateVisitorRequest) (*ent.Visitor, bool, error) {
	if req.TaxID != nil && *req.TaxID != "" {
		if existing, err := r.FindByTaxID(ctx, *req.TaxID); err == nil {
			return existing, true, nil
		}
	}
	row, err := r.Create(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (r *visitorRepo) SetPhotoPath(ctx context.Context, id uuid.UUID, photoPath string) error {
	_, err := r.ent.Visitor.UpdateOneID(id).
		SetPhotoPath(photoPath).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set visitor photo", "visitor_id", id, "error", err)
	}
	return err
}

func (r *visitorRepo) List(ctx context.Context) ([]*ent.Visitor, error) {
	return r.ent.Visitor.Query().
		Order(ent.Asc(entvisitor.FieldName)).
		All(ctx)
}

// ListWithPhoto returns the enrollment gallery: every visitor that has a
// reference photo on file.
func (r *visitorRepo) ListWithPhoto(ctx context.Context) ([]*ent.Visitor, error) {
	return r.ent.Visitor.Query().
		Where(entvisitor.PhotoPathNotNil()).
		Order(ent.Asc(entvisitor.FieldID)).
		All(ctx)
}
