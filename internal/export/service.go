package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
	"github.com/joseph-ayodele/labreports-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	resultsRepo repository.LabResultRepository
	jobsRepo    repository.AnalysisJobRepository
	logger      *slog.Logger
}

func NewService(resultsRepo repository.LabResultRepository, jobsRepo repository.AnalysisJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{resultsRepo: resultsRepo, jobsRepo: jobsRepo, logger: logger}
}

// ExportResultXLSX returns an XLSX workbook (as bytes) for a stored result,
// scoped to the owning profile. One row per recognized test, followed by a
// summary line.
func (s *Service) ExportResultXLSX(ctx context.Context, resultID, profileID uuid.UUID) ([]byte, error) {
	start := time.Now()

	res, err := s.resultsRepo.GetByID(ctx, resultID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: result %s", common.ErrNotFound, resultID)
		}
		return nil, fmt.Errorf("load result: %w", err)
	}
	// ownership runs through the job that produced the result
	if _, err := s.jobsRepo.GetForOwner(ctx, res.JobID, profileID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: result %s", common.ErrNotFound, resultID)
		}
		return nil, fmt.Errorf("resolve result owner: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Lab Results"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Test",
		"Value",
		"Unit",
		"Ref Min",
		"Ref Max",
		"Status",
		"Note",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range res.Rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Name)
		write(2, r.Value)
		write(3, r.Unit)
		write(4, r.RefMin)
		write(5, r.RefMax)
		write(6, string(r.Status))
		write(7, truncate(noteText(r), 200))

		row++
	}

	// Summary block under the rows
	row++
	writeSummary := func(label, value string) {
		cellA, _ := excelize.CoordinatesToCellName(1, row)
		cellB, _ := excelize.CoordinatesToCellName(2, row)
		_ = f.SetCellValue(sheet, cellA, label)
		_ = f.SetCellValue(sheet, cellB, value)
		row++
	}
	writeSummary("Panel", string(res.PanelType))
	writeSummary("Report date", res.ReportDate.Format("2006-01-02"))
	writeSummary("Overall", string(res.OverallStatus))
	writeSummary("Summary", res.Summary)
	if res.DoctorNotes != "" {
		writeSummary("Doctor notes", res.DoctorNotes)
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // test name
	_ = f.SetColWidth(sheet, "B", "E", 10) // value + range
	_ = f.SetColWidth(sheet, "F", "F", 12) // status
	_ = f.SetColWidth(sheet, "G", "G", 60) // note

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"result_id", resultID.String(),
		"rows", len(res.Rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func noteText(r entity.TestRow) string {
	if r.Note == nil {
		return ""
	}
	return r.Note.Text
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
