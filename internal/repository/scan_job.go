package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/portaria-digital/concierge/constants"
	"github.com/portaria-digital/concierge/gen/ent"
)

type ScanJobRepository interface {
	Start(ctx context.Context, sourcePath, format, status string) (*ent.ScanJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ScanJob, error)
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText string, method string, confidence float32, modelParams map[string]any) error
	FinishFieldsSuccess(ctx context.Context, jobID uuid.UUID, fieldsJSON []byte, needsReview bool) error
	LinkVisitor(ctx context.Context, jobID, visitorID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type scanJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewScanJobRepository(entc *ent.Client, log *slog.Logger) ScanJobRepository {
	return &scanJobRepo{ent: entc, log: log}
}

func (r *scanJobRepo) Start(ctx context.Context, sourcePath, format, status string) (*ent.ScanJob, error) {
	job, err := r.ent.ScanJob.
		Create().
		SetSourcePath(sourcePath).
		SetFormat(format).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job start failed", "source_path", sourcePath, "err", err)
		return nil, err
	}
	r.log.Info("scan_job started", "job_id", job.ID, "source_path", sourcePath, "format", format)
	return job, nil
}

func (r *scanJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ScanJob, error) {
	return r.ent.ScanJob.Get(ctx, jobID)
}

func (r *scanJobRepo) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText string, method string, confidence float32, modelParams map[string]any) error {
	var params []byte
	if modelParams != nil {
		if b, err := json.Marshal(modelParams); err == nil {
			params = b
		}
	}
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetModelName(method).
		SetModelParams(params).
		SetExtractionConfidence(confidence).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("scan_job finished (OCR_OK)", "job_id", jobID, "method", method)
	return nil
}

func (r *scanJobRepo) FinishFieldsSuccess(ctx context.Context, jobID uuid.UUID, fieldsJSON []byte, needsReview bool) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetFieldsJSON(fieldsJSON).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFieldsOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job finish(FIELDS_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("scan_job finished (FIELDS_OK)", "job_id", jobID, "needs_review", needsReview)
	return nil
}

func (r *scanJobRepo) LinkVisitor(ctx context.Context, jobID, visitorID uuid.UUID) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetVisitorID(visitorID).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job link visitor failed", "job_id", jobID, "visitor_id", visitorID, "err", err)
	}
	return err
}

func (r *scanJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ScanJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("scan_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("scan_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
