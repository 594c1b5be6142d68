package server

import (
	"context"
	"strings"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
	"github.com/portaria-digital/concierge/internal/common"
	"github.com/portaria-digital/concierge/internal/repository"
)

// RegisterVisitor enrolls a visitor. A tax id, when given, is the identity
// key: registering the same tax id twice reuses the existing record.
func (s *ConciergeServer) RegisterVisitor(ctx context.Context, req *conciergev1.RegisterVisitorRequest) (*conciergev1.RegisterVisitorResponse, error) {
	name := strings.TrimSpace(req.GetName())

	v := common.NewValidator()
	v.Field("name", name, common.Required)
	v.Field("name", name, func(f string, val interface{}) *common.ValidationError {
		return common.MaxLength(f, val, 120)
	})
	if taxID := strings.TrimSpace(req.GetTaxId()); taxID != "" {
		v.Field("tax_id", taxID, common.TaxID)
	}
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	createReq := &repository.CreateVisitorRequest{Name: name}
	if taxID := strings.TrimSpace(req.GetTaxId()); taxID != "" {
		createReq.TaxID = &taxID
	}
	if bd := strings.TrimSpace(req.GetBirthDate()); bd != "" {
		createReq.BirthDate = &bd
	}
	if pp := strings.TrimSpace(req.GetPhotoPath()); pp != "" {
		createReq.PhotoPath = &pp
	}

	row, existing, err := s.visitorsRepo.UpsertByTaxID(ctx, createReq)
	if err != nil {
		s.logger.Error("register visitor failed", "name", name, "error", err)
		return nil, common.InternalError("register visitor failed")
	}

	return &conciergev1.RegisterVisitorResponse{
		Visitor:  toPBVisitor(row),
		Existing: existing,
	}, nil
}

func (s *ConciergeServer) ListVisitors(ctx context.Context, _ *conciergev1.ListVisitorsRequest) (*conciergev1.ListVisitorsResponse, error) {
	rows, err := s.visitorsRepo.List(ctx)
	if err != nil {
		s.logger.Error("list visitors failed", "error", err)
		return nil, common.InternalError("list visitors failed")
	}

	out := make([]*conciergev1.Visitor, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPBVisitor(row))
	}
	return &conciergev1.ListVisitorsResponse{Visitors: out}, nil
}
