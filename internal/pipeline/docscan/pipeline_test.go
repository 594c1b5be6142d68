package docscan

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portaria-digital/concierge/constants"
	"github.com/portaria-digital/concierge/gen/ent"
	"github.com/portaria-digital/concierge/internal/common"
	"github.com/portaria-digital/concierge/internal/docfields"
	"github.com/portaria-digital/concierge/internal/extract"
)

type stubJobs struct {
	startErr error

	started      bool
	jobID        uuid.UUID
	ocrText      string
	ocrOK        bool
	fieldsOK     bool
	fieldsJSON   []byte
	needsReview  bool
	failMessages []string
}

func (s *stubJobs) Start(_ context.Context, sourcePath, format, status string) (*ent.ScanJob, error) {
	if s.startErr != nil {
		return nil, s.startErr
	}
	s.started = true
	s.jobID = uuid.New()
	return &ent.ScanJob{ID: s.jobID}, nil
}

func (s *stubJobs) GetByID(_ context.Context, jobID uuid.UUID) (*ent.ScanJob, error) {
	return &ent.ScanJob{ID: jobID}, nil
}

func (s *stubJobs) FinishOCRSuccess(_ context.Context, _ uuid.UUID, ocrText, _ string, _ float32, _ map[string]any) error {
	s.ocrOK = true
	s.ocrText = ocrText
	return nil
}

func (s *stubJobs) FinishFieldsSuccess(_ context.Context, _ uuid.UUID, fieldsJSON []byte, needsReview bool) error {
	s.fieldsOK = true
	s.fieldsJSON = fieldsJSON
	s.needsReview = needsReview
	return nil
}

func (s *stubJobs) LinkVisitor(_ context.Context, _, _ uuid.UUID) error { return nil }

func (s *stubJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	s.failMessages = append(s.failMessages, message)
	return nil
}

type stubRecognizer struct {
	res extract.TextRecognitionResult
	err error
}

func (s *stubRecognizer) Recognize(context.Context, string) (extract.TextRecognitionResult, error) {
	return s.res, s.err
}

const cnhText = "NOME E SOBRENOME\n" +
	"MARIA APARECIDA SOUZA\n" +
	"DATA, LOCAL E UF DE NASCIMENTO\n" +
	"15/07/1990, SAO PAULO, SP\n" +
	"CPF 987.654.321-00\n"

func newTestPipeline(jobs *stubJobs, tr extract.TextRecognizer) *Pipeline {
	parser := extract.NewFieldsAdapter(docfields.NewExtractor(slog.Default()))
	return NewPipeline(slog.Default(), Config{}, jobs, tr, parser)
}

func TestRun_FullScan(t *testing.T) {
	jobs := &stubJobs{}
	tr := &stubRecognizer{res: extract.TextRecognitionResult{
		Text:       cnhText,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Language:   "por",
		Confidence: 0.9,
	}}
	p := newTestPipeline(jobs, tr)

	jobID, rec, err := p.Run(context.Background(), "cnh.jpg")
	require.NoError(t, err)
	assert.Equal(t, jobs.jobID, jobID)

	require.NotNil(t, rec.Name)
	assert.Equal(t, "MARIA APARECIDA SOUZA", *rec.Name)
	require.NotNil(t, rec.TaxID)
	assert.Equal(t, "98765432100", *rec.TaxID)
	require.NotNil(t, rec.BirthDate)
	assert.Equal(t, "15/07/1990", *rec.BirthDate)

	assert.True(t, jobs.ocrOK)
	assert.True(t, jobs.fieldsOK)
	assert.False(t, jobs.needsReview)
	assert.Empty(t, jobs.failMessages)
	require.NoError(t, docfields.ValidateFieldsJSON(jobs.fieldsJSON))
}

func TestRun_OCRFailure(t *testing.T) {
	jobs := &stubJobs{}
	tr := &stubRecognizer{err: errors.New("tesseract: exit status 1")}
	p := newTestPipeline(jobs, tr)

	jobID, _, err := p.Run(context.Background(), "cnh.jpg")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)
	assert.Equal(t, jobs.jobID, jobID)
	assert.False(t, jobs.ocrOK)
	require.Len(t, jobs.failMessages, 1)
	assert.Contains(t, jobs.failMessages[0], "tesseract")
}

func TestRun_UnsupportedFormat(t *testing.T) {
	jobs := &stubJobs{}
	p := newTestPipeline(jobs, &stubRecognizer{})

	_, _, err := p.Run(context.Background(), "doc.tiff")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.False(t, jobs.started)
}

func TestRun_MissingFieldsNeedReview(t *testing.T) {
	jobs := &stubJobs{}
	tr := &stubRecognizer{res: extract.TextRecognitionResult{
		Text:       "REPUBLICA FEDERATIVA DO BRASIL\nVALIDA EM TODO\n",
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Confidence: 0.9,
	}}
	p := newTestPipeline(jobs, tr)

	_, rec, err := p.Run(context.Background(), "blurry.png")
	require.NoError(t, err)
	assert.Nil(t, rec.Name)
	assert.Nil(t, rec.TaxID)
	assert.Nil(t, rec.BirthDate)
	assert.True(t, jobs.needsReview)
}

func TestRun_LowConfidenceNeedsReview(t *testing.T) {
	jobs := &stubJobs{}
	tr := &stubRecognizer{res: extract.TextRecognitionResult{
		Text:       cnhText,
		SourceType: constants.IMAGE,
		Method:     "image-ocr",
		Confidence: 0.3,
	}}
	p := newTestPipeline(jobs, tr)

	_, rec, err := p.Run(context.Background(), "cnh.jpg")
	require.NoError(t, err)
	require.NotNil(t, rec.Name)
	assert.True(t, jobs.needsReview)
}
