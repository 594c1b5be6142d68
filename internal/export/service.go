package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/portaria-digital/concierge/internal/repository"
)

// Service produces XLSX bytes for visit-log exports.
type Service struct {
	visitsRepo repository.VisitRepository
	logger     *slog.Logger
}

func NewService(visits repository.VisitRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{visitsRepo: visits, logger: logger}
}

// ExportVisitsXLSX returns an XLSX workbook (as bytes) for the given date window.
// If only from is provided -> from..today (inclusive).
// If neither is provided   -> the last 30 days.
func (s *Service) ExportVisitsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC); the upper bound is exclusive.
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	fromDate := today.AddDate(0, 0, -30)
	toDate := today.AddDate(0, 0, 1)
	if from != nil {
		fromDate = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	}
	if to != nil {
		toDate = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	}

	visits, err := s.visitsRepo.ListBetween(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query visits: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Visits"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Entry",
		"Exit",
		"Visitor",
		"Tax ID",
		"Method",
		"Confidence",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, v := range visits {
		write := func(col int, val any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, val)
		}

		write(1, v.EntryAt.Format("2006-01-02 15:04"))
		if v.ExitAt != nil {
			write(2, v.ExitAt.Format("2006-01-02 15:04"))
		} else {
			write(2, "")
		}

		name, taxID := "", ""
		if v.Edges.Visitor != nil {
			name = v.Edges.Visitor.Name
			if v.Edges.Visitor.TaxID != nil {
				taxID = *v.Edges.Visitor.TaxID
			}
		}
		write(3, name)
		write(4, taxID)
		write(5, v.Method)

		if v.Confidence != nil {
			write(6, fmt.Sprintf("%.2f", *v.Confidence))
		} else {
			write(6, "")
		}
		if v.Notes != nil {
			write(7, truncate(*v.Notes, 140))
		} else {
			write(7, "")
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 18) // timestamps
	_ = f.SetColWidth(sheet, "C", "C", 32) // visitor
	_ = f.SetColWidth(sheet, "D", "D", 14) // tax id
	_ = f.SetColWidth(sheet, "E", "E", 10) // method
	_ = f.SetColWidth(sheet, "F", "F", 12) // confidence
	_ = f.SetColWidth(sheet, "G", "G", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(visits),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
