package server

import (
	"log/slog"
	"time"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
	"github.com/portaria-digital/concierge/gen/ent"
	"github.com/portaria-digital/concierge/internal/export"
	"github.com/portaria-digital/concierge/internal/pipeline/docscan"
	"github.com/portaria-digital/concierge/internal/pipeline/recognize"
	"github.com/portaria-digital/concierge/internal/repository"
)

// ConciergeServer exposes the front-desk operations over gRPC.
type ConciergeServer struct {
	conciergev1.UnimplementedConciergeServiceServer

	visitorsRepo repository.VisitorRepository
	visitsRepo   repository.VisitRepository
	scanPipeline *docscan.Pipeline
	recognizer   *recognize.Pipeline
	exportSvc    *export.Service
	logger       *slog.Logger
}

func NewConciergeServer(
	visitors repository.VisitorRepository,
	visits repository.VisitRepository,
	scan *docscan.Pipeline,
	rec *recognize.Pipeline,
	exportSvc *export.Service,
	logger *slog.Logger,
) *ConciergeServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConciergeServer{
		visitorsRepo: visitors,
		visitsRepo:   visits,
		scanPipeline: scan,
		recognizer:   rec,
		exportSvc:    exportSvc,
		logger:       logger,
	}
}

func toPBVisitor(v *ent.Visitor) *conciergev1.Visitor {
	out := &conciergev1.Visitor{
		Id:        v.ID.String(),
		Name:      v.Name,
		CreatedAt: v.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: v.UpdatedAt.Format(time.RFC3339Nano),
	}
	if v.TaxID != nil {
		out.TaxId = *v.TaxID
	}
	if v.BirthDate != nil {
		out.BirthDate = *v.BirthDate
	}
	if v.PhotoPath != nil {
		out.PhotoPath = *v.PhotoPath
	}
	return out
}
