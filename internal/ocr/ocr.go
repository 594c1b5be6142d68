package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/portaria-digital/concierge/constants"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "por"

	TessdataDir         string
	HeicConverter       string // "heif-convert" | "magick" | "sips"
	EnableTSVConfidence bool

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

type RecognitionResult struct {
	Text       string
	SourceType string // constants.IMAGE
	Method     string // "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Recognizer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewRecognizer(cfg Config, logger *slog.Logger) *Recognizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "por"
	}
	return &Recognizer{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Recognize runs OCR over a document photo. HEIC camera shots are converted
// to PNG first.
func (r *Recognizer) Recognize(ctx context.Context, path string) (RecognitionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	r.logger.Debug("starting text recognition", "path", path, "ext", ext)

	if constants.MapExtToFormat(ext) != constants.IMAGE {
		r.logger.Error("unsupported ocr extension", "extension", ext)
		return RecognitionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	var warns []string
	if constants.IsHEICExt(ext) {
		out, w, cleanup, err := convertHEICtoPNG(ctx, r.runner, r.cfg.HeicConverter, path)
		warns = append(warns, w...)
		if cleanup != nil {
			defer cleanup()
		}
		if err != nil {
			r.logger.Error("heic conversion failed", "path", path, "error", err)
			return RecognitionResult{SourceType: constants.IMAGE, Warnings: warns}, err
		}
		path = out
	}

	res, err := r.recognizeImage(ctx, path)
	res.Duration = time.Since(start)
	res.Warnings = append(res.Warnings, warns...)
	return res, err
}
