package docscan

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/portaria-digital/concierge/constants"
	"github.com/portaria-digital/concierge/internal/common"
	"github.com/portaria-digital/concierge/internal/docfields"
	"github.com/portaria-digital/concierge/internal/extract"
	"github.com/portaria-digital/concierge/internal/repository"
)

// Config holds thresholds and behavior flags for the scan stage.
type Config struct {
	MinConfidence float32 // default 0.60
}

type Pipeline struct {
	Logger     *slog.Logger
	Cfg        Config
	JobsRepo   repository.ScanJobRepository
	Recognizer extract.TextRecognizer
	Parser     extract.FieldParser
}

func NewPipeline(
	logger *slog.Logger,
	cfg Config,
	jobs repository.ScanJobRepository,
	tr extract.TextRecognizer,
	fp extract.FieldParser,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &Pipeline{
		Logger:     logger,
		Cfg:        cfg,
		JobsRepo:   jobs,
		Recognizer: tr,
		Parser:     fp,
	}
}

// Run starts a scan_job, runs OCR over the document photo, parses identity
// fields out of the text, and persists both stages on the job.
// Returns the job ID and the parsed record.
func (p *Pipeline) Run(ctx context.Context, sourcePath string) (uuid.UUID, docfields.DocumentRecord, error) {
	ext := constants.NormalizeExt(filepath.Ext(sourcePath))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return uuid.Nil, docfields.DocumentRecord{}, fmt.Errorf("unsupported format: %s", ext)
	}

	// Start job in RUNNING
	job, err := p.JobsRepo.Start(ctx, sourcePath, format, string(constants.JobStatusRunning))
	if err != nil {
		return uuid.Nil, docfields.DocumentRecord{}, err
	}

	// OCR
	res, err := p.Recognizer.Recognize(ctx, sourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, docfields.DocumentRecord{}, fmt.Errorf("%w: %v", common.ErrExtractionFailed, err)
	}

	params := map[string]any{"lang": res.Language}
	if err := p.JobsRepo.FinishOCRSuccess(ctx, job.ID, res.Text, res.Method, res.Confidence, params); err != nil {
		return job.ID, docfields.DocumentRecord{}, err
	}

	p.Logger.Info("docscan.ocr_ok",
		"job_id", job.ID, "method", res.Method,
		"ocr_bytes", len(res.Text), "confidence", res.Confidence,
	)

	// Parse identity fields
	rec, err := p.Parser.Parse(ctx, res.Text)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, docfields.DocumentRecord{}, fmt.Errorf("parse fields: %w", err)
	}

	fieldsJSON, err := rec.FieldsJSON()
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, rec, fmt.Errorf("marshal fields: %w", err)
	}
	if err := docfields.ValidateFieldsJSON(fieldsJSON); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, rec, err
	}

	// Heuristic needs_review
	needsReview := rec.Name == nil || rec.TaxID == nil || rec.BirthDate == nil
	if res.Confidence > 0 && res.Confidence < p.Cfg.MinConfidence {
		needsReview = true
	}

	if err := p.JobsRepo.FinishFieldsSuccess(ctx, job.ID, fieldsJSON, needsReview); err != nil {
		return job.ID, rec, err
	}

	p.Logger.Info("docscan.ok",
		"job_id", job.ID,
		"name_found", rec.Name != nil,
		"tax_id_found", rec.TaxID != nil,
		"birth_date_found", rec.BirthDate != nil,
		"needs_review", needsReview,
	)
	return job.ID, rec, nil
}
