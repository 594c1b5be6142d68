package extract

import (
	"context"
	"time"

	"github.com/portaria-digital/concierge/internal/docfields"
)

// TextRecognizer is Stage 1: document photo -> text.
type TextRecognizer interface {
	Recognize(ctx context.Context, path string) (TextRecognitionResult, error)
}

type TextRecognitionResult struct {
	Text       string
	SourceType string // "IMAGE"
	Method     string // "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

// FieldParser is Stage 2: text -> identity fields.
type FieldParser interface {
	Parse(ctx context.Context, text string) (docfields.DocumentRecord, error)
}
