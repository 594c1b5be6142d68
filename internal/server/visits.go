package server

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/portaria-digital/concierge/constants"
	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
	"github.com/portaria-digital/concierge/gen/ent"
	"github.com/portaria-digital/concierge/internal/common"
	"github.com/portaria-digital/concierge/internal/repository"
)

func (s *ConciergeServer) RegisterEntry(ctx context.Context, req *conciergev1.RegisterEntryRequest) (*conciergev1.RegisterEntryResponse, error) {
	v := common.NewValidator()
	v.Field("visitor_id", req.GetVisitorId(), common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	visitorID, _ := uuid.Parse(req.GetVisitorId())

	method := strings.ToUpper(strings.TrimSpace(req.GetMethod()))
	if method == "" {
		method = string(constants.MatchByManual)
	}
	if !slices.Contains(constants.MatchMethods, method) {
		return nil, common.InvalidArgumentErrorf("method must be one of %v", constants.MatchMethods)
	}

	entryReq := &repository.RegisterEntryRequest{
		VisitorID: visitorID,
		Method:    method,
	}
	if c := req.GetConfidence(); c > 0 {
		cf := float32(c)
		entryReq.Confidence = &cf
	}
	if n := strings.TrimSpace(req.GetNotes()); n != "" {
		entryReq.Notes = &n
	}

	row, err := s.visitsRepo.RegisterEntry(ctx, entryReq)
	if err != nil {
		s.logger.Error("register entry failed", "visitor_id", visitorID, "error", err)
		return nil, common.InternalError("register entry failed")
	}

	return &conciergev1.RegisterEntryResponse{
		VisitId: row.ID.String(),
		EntryAt: row.EntryAt.Format(time.RFC3339Nano),
	}, nil
}

func (s *ConciergeServer) ListVisits(ctx context.Context, req *conciergev1.ListVisitsRequest) (*conciergev1.ListVisitsResponse, error) {
	var rows []*ent.Visit
	var err error
	if req.GetOpenOnly() {
		rows, err = s.visitsRepo.ListOpen(ctx)
	} else {
		from, to, perr := parseDateWindow(req.GetFromDate(), req.GetToDate())
		if perr != nil {
			return nil, perr
		}
		rows, err = s.visitsRepo.ListBetween(ctx, from, to)
	}
	if err != nil {
		s.logger.Error("list visits failed", "error", err)
		return nil, common.InternalError("list visits failed")
	}

	out := make([]*conciergev1.Visit, 0, len(rows))
	for _, row := range rows {
		v := &conciergev1.Visit{
			Id:        row.ID.String(),
			VisitorId: row.VisitorID.String(),
			EntryAt:   row.EntryAt.Format(time.RFC3339Nano),
			Method:    row.Method,
		}
		if row.ExitAt != nil {
			v.ExitAt = row.ExitAt.Format(time.RFC3339Nano)
		}
		if row.Confidence != nil {
			v.Confidence = float64(*row.Confidence)
		}
		if row.Notes != nil {
			v.Notes = *row.Notes
		}
		if row.Edges.Visitor != nil {
			v.VisitorName = row.Edges.Visitor.Name
		}
		out = append(out, v)
	}
	return &conciergev1.ListVisitsResponse{Visits: out}, nil
}

// parseDateWindow turns optional YYYY-MM-DD bounds into a concrete window:
// missing from -> 30 days back, missing to -> end of today (exclusive bound).
func parseDateWindow(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -30)
	to := today.AddDate(0, 0, 1)
	if fd := strings.TrimSpace(fromStr); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return time.Time{}, time.Time{}, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		from = t
	}
	if td := strings.TrimSpace(toStr); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return time.Time{}, time.Time{}, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		to = t.AddDate(0, 0, 1)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, common.InvalidArgumentError("to_date must not precede from_date")
	}
	return from, to, nil
}

func (s *ConciergeServer) RegisterExit(ctx context.Context, req *conciergev1.RegisterExitRequest) (*conciergev1.RegisterExitResponse, error) {
	v := common.NewValidator()
	v.Field("visitor_id", req.GetVisitorId(), common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	visitorID, _ := uuid.Parse(req.GetVisitorId())

	row, err := s.visitsRepo.RegisterExit(ctx, visitorID)
	if err != nil {
		s.logger.Warn("register exit failed", "visitor_id", visitorID, "error", err)
		return nil, common.NotFoundError("no open visit for visitor")
	}

	return &conciergev1.RegisterExitResponse{
		VisitId: row.ID.String(),
		ExitAt:  row.ExitAt.Format(time.RFC3339Nano),
	}, nil
}
