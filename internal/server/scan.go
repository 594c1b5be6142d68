package server

import (
	"context"
	"errors"
	"strings"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
	"github.com/portaria-digital/concierge/internal/common"
)

// ScanDocument runs the OCR + field extraction pipeline over a document photo
// already present on the daemon host.
func (s *ConciergeServer) ScanDocument(ctx context.Context, req *conciergev1.ScanDocumentRequest) (*conciergev1.ScanDocumentResponse, error) {
	sourcePath := strings.TrimSpace(req.GetSourcePath())
	if sourcePath == "" {
		return nil, common.InvalidArgumentError("source_path is required")
	}

	jobID, rec, err := s.scanPipeline.Run(ctx, sourcePath)
	if err != nil {
		if errors.Is(err, common.ErrExtractionFailed) {
			s.logger.Error("document scan failed", "source_path", sourcePath, "error", err)
			return nil, common.InternalError("text recognition failed")
		}
		return nil, common.InvalidArgumentError(err.Error())
	}

	resp := &conciergev1.ScanDocumentResponse{JobId: jobID.String()}
	if rec.Name != nil {
		resp.Name = *rec.Name
	}
	if rec.TaxID != nil {
		resp.TaxId = *rec.TaxID
	}
	if rec.BirthDate != nil {
		resp.BirthDate = *rec.BirthDate
	}
	resp.NeedsReview = rec.Name == nil || rec.TaxID == nil || rec.BirthDate == nil
	return resp, nil
}
