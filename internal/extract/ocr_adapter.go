package extract

import (
	"context"
	"log/slog"

	"github.com/portaria-digital/concierge/internal/docfields"
	"github.com/portaria-digital/concierge/internal/ocr"
)

type OCRAdapter struct {
	r *ocr.Recognizer
}

func NewOCRAdapter(r *ocr.Recognizer, _ *slog.Logger) *OCRAdapter {
	return &OCRAdapter{r: r}
}

func (a *OCRAdapter) Recognize(ctx context.Context, path string) (TextRecognitionResult, error) {
	res, err := a.r.Recognize(ctx, path)
	return TextRecognitionResult{
		Text:       res.Text,
		SourceType: res.SourceType,
		Method:     res.Method,
		Language:   res.Language,
		Duration:   res.Duration,
		Warnings:   res.Warnings,
		Confidence: res.Confidence,
	}, err
}

// FieldsAdapter exposes the rule-based field extractor behind FieldParser.
type FieldsAdapter struct {
	e *docfields.Extractor
}

func NewFieldsAdapter(e *docfields.Extractor) *FieldsAdapter {
	return &FieldsAdapter{e: e}
}

func (a *FieldsAdapter) Parse(ctx context.Context, text string) (docfields.DocumentRecord, error) {
	if err := ctx.Err(); err != nil {
		return docfields.DocumentRecord{}, err
	}
	return a.e.Extract(text), nil
}
