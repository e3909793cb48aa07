package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/d-okonkwo/loandocs/constants"
	"github.com/d-okonkwo/loandocs/internal/repository"
)

// Service is a tiny façade over the run repository that produces XLSX
// bytes for exports.
type Service struct {
	runsRepo  repository.RunRepository
	sheetName string
	logger    *slog.Logger
}

func NewService(runs repository.RunRepository, sheetName string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if sheetName == "" {
		sheetName = "Extractions"
	}
	return &Service{runsRepo: runs, sheetName: sheetName, logger: logger}
}

// ExportRunsXLSX returns an XLSX workbook (as bytes) with one row per
// archived run: source, status, document type, principal, currency,
// rate, governing law, timestamps.
func (s *Service) ExportRunsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	runs, err := s.runsRepo.ListRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	f := excelize.NewFile()
	sheet := s.sheetName
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source",
		"Status",
		"Document Type",
		"Principal Amount",
		"Currency",
		"Interest Rate",
		"Governing Law",
		"Processed At",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range runs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.SourcePath)
		write(2, string(r.Status))
		write(3, r.DocumentType)
		if r.PrincipalAmount != nil {
			write(4, *r.PrincipalAmount)
		}
		write(5, r.Currency)
		if r.InterestRate != nil {
			write(6, *r.InterestRate)
		}
		write(7, r.GoverningLaw)
		if r.FinishedAt != nil {
			write(8, r.FinishedAt.Format(time.RFC3339))
		} else {
			write(8, r.CreatedAt.Format(time.RFC3339))
		}
		if r.Status == constants.RunStatusFailed {
			write(9, r.ErrorMessage)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok", "runs", len(runs), "elapsed", time.Since(start))
	return buf.Bytes(), nil
}
