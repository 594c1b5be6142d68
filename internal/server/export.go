package server

import (
	"context"
	"strings"
	"time"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
	"github.com/portaria-digital/concierge/internal/common"
)

func (s *ConciergeServer) ExportVisits(ctx context.Context, req *conciergev1.ExportVisitsRequest) (*conciergev1.ExportVisitsResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}
	if fromPtr != nil && toPtr != nil && toPtr.Before(*fromPtr) {
		return nil, common.InvalidArgumentError("to_date must not precede from_date")
	}

	xlsx, err := s.exportSvc.ExportVisitsXLSX(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError("export failed")
	}

	return &conciergev1.ExportVisitsResponse{Xlsx: xlsx}, nil
}
