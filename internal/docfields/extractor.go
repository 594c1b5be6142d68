package docfields

import (
	"log/slog"
	"strings"
	"time"
)

// DocumentRecord holds the best-guess fields recovered from one document
// scan. Each field is independently optional: nil means "not confidently
// found", never an error.
type DocumentRecord struct {
	Name      *string `json:"name"`
	TaxID     *string `json:"tax_id"`
	BirthDate *string `json:"birth_date"`
	RawText   string  `json:"raw_text"`
}

// Extractor turns raw OCR text into a DocumentRecord using keyword-anchored
// heuristics. It is stateless between calls; the same input always produces
// the same record.
type Extractor struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger, now: time.Now}
}

// Extract never fails on malformed text; fields the heuristics cannot find
// stay nil and the caller shows them as "not found".
func (e *Extractor) Extract(rawText string) DocumentRecord {
	rec := DocumentRecord{RawText: rawText}

	if v := extractTaxID(rawText); v != "" {
		rec.TaxID = &v
	}
	if v := extractBirthDate(rawText, e.now().Year()); v != "" {
		rec.BirthDate = &v
	}
	if v := extractName(rawText); v != "" {
		rec.Name = &v
	}

	e.logger.Debug("docfields.extract",
		"bytes", len(rawText),
		"name_found", rec.Name != nil,
		"tax_id_found", rec.TaxID != nil,
		"birth_date_found", rec.BirthDate != nil,
	)
	return rec
}

// splitLines splits raw OCR output into trimmed lines.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		lines = append(lines, strings.TrimSpace(ln))
	}
	return lines
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
