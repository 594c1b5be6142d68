package recognize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/portaria-digital/concierge/internal/facematch"
	"github.com/portaria-digital/concierge/internal/repository"
)

// FaceEngine is the slice of the face model runtime the pipeline needs.
type FaceEngine interface {
	Mode() facematch.Mode
	Threshold() float64
	DetectFace(ctx context.Context, imagePath string) bool
	ExtractDescriptor(ctx context.Context, imagePath string) (facematch.Descriptor, error)
}

// DescriptorCache mirrors facematch.Cache. A nil cache is allowed; every
// gallery photo is then re-embedded on each run.
type DescriptorCache interface {
	Get(ctx context.Context, visitorID uuid.UUID, photoHash string) (facematch.Descriptor, bool, error)
	Put(ctx context.Context, visitorID uuid.UUID, photoHash string, d facematch.Descriptor) error
}

// Result of one recognition run.
type Result struct {
	Session *facematch.Session
	Match   *facematch.MatchResult // nil when the run fell back to manual selection
}

type Pipeline struct {
	Logger       *slog.Logger
	VisitorsRepo repository.VisitorRepository
	Engine       FaceEngine
	Cache        DescriptorCache
}

func NewPipeline(
	logger *slog.Logger,
	visitors repository.VisitorRepository,
	engine FaceEngine,
	cache DescriptorCache,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Logger:       logger,
		VisitorsRepo: visitors,
		Engine:       engine,
		Cache:        cache,
	}
}

// Gallery builds the enrollment set: one descriptor per visitor with a stored
// photo. Descriptors come from the cache when the photo is unchanged;
// otherwise the model re-embeds the photo and the cache is refreshed.
// Visitors whose photo yields no descriptor are skipped.
func (p *Pipeline) Gallery(ctx context.Context) ([]facematch.Enrollment, error) {
	visitors, err := p.VisitorsRepo.ListWithPhoto(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}

	gallery := make([]facematch.Enrollment, 0, len(visitors))
	for _, v := range visitors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hash, err := facematch.HashFile(*v.PhotoPath)
		if err != nil {
			p.Logger.Warn("unreadable enrollment photo", "visitor_id", v.ID, "path", *v.PhotoPath, "error", err)
			continue
		}

		if p.Cache != nil {
			if d, ok, err := p.Cache.Get(ctx, v.ID, hash); err == nil && ok {
				gallery = append(gallery, facematch.Enrollment{PersonID: v.ID, Descriptor: d})
				continue
			}
		}

		d, err := p.Engine.ExtractDescriptor(ctx, *v.PhotoPath)
		if err != nil {
			return nil, err
		}
		if len(d) == 0 {
			p.Logger.Warn("no face in enrollment photo", "visitor_id", v.ID, "path", *v.PhotoPath)
			continue
		}
		if p.Cache != nil {
			if err := p.Cache.Put(ctx, v.ID, hash, d); err != nil {
				p.Logger.Warn("descriptor cache write failed", "visitor_id", v.ID, "error", err)
			}
		}
		gallery = append(gallery, facematch.Enrollment{PersonID: v.ID, Descriptor: d})
	}
	return gallery, nil
}

// Run executes one recognition attempt over a captured photo. The returned
// session is either MATCHED (automatic identification) or MANUAL_SELECTION
// (the operator must pick the visitor); a frame without a face stays SCANNING.
func (p *Pipeline) Run(ctx context.Context, photoPath string) (Result, error) {
	session := facematch.NewSession()

	if !p.Engine.DetectFace(ctx, photoPath) {
		if err := session.NoFace(); err != nil {
			return Result{}, err
		}
		p.Logger.Debug("no face detected", "photo", photoPath)
		return Result{Session: session}, nil
	}
	if err := session.Capture(); err != nil {
		return Result{}, err
	}

	captured, err := p.Engine.ExtractDescriptor(ctx, photoPath)
	if err != nil {
		return Result{}, err
	}
	if len(captured) == 0 {
		if err := session.FallBack(); err != nil {
			return Result{}, err
		}
		p.Logger.Info("recognition degraded to manual selection", "photo", photoPath, "mode", p.Engine.Mode())
		return Result{Session: session}, nil
	}

	gallery, err := p.Gallery(ctx)
	if err != nil {
		return Result{}, err
	}

	match, err := facematch.FindBestMatch(ctx, captured, gallery, p.Engine.Threshold())
	if err != nil {
		return Result{}, err
	}
	if match == nil {
		if err := session.FallBack(); err != nil {
			return Result{}, err
		}
		p.Logger.Info("no gallery match under threshold", "photo", photoPath, "gallery_size", len(gallery))
		return Result{Session: session}, nil
	}

	if err := session.Identify(match); err != nil {
		return Result{}, err
	}
	p.Logger.Info("visitor identified",
		"visitor_id", match.PersonID,
		"distance", match.Distance,
		"confidence", match.Confidence,
	)
	return Result{Session: session, Match: match}, nil
}
