package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
	"github.com/joseph-ayodele/labreports-tracker/internal/repository"
)

// Extractor converts report text to structured rows.
type Extractor interface {
	Parse(text string) entity.Extraction
}

type ExtractStage struct {
	Files     repository.ReportFileRepository
	Extractor Extractor
	Logger    *slog.Logger
}

func NewExtractStage(files repository.ReportFileRepository, ex Extractor, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{Files: files, Extractor: ex, Logger: logger}
}

// Run loads the report text for fileID and extracts rows from it. Zero
// recognized rows is a valid outcome, not an error.
func (s *ExtractStage) Run(ctx context.Context, fileID uuid.UUID) (entity.Extraction, error) {
	file, err := s.Files.GetByID(ctx, fileID)
	if err != nil {
		return entity.Extraction{}, fmt.Errorf("%w: get report file: %v", common.ErrExtraction, err)
	}
	if file.ReportText == "" {
		return entity.Extraction{}, fmt.Errorf("%w: report file %s has no text", common.ErrExtraction, fileID)
	}

	ex := s.Extractor.Parse(file.ReportText)
	s.Logger.Info("pipeline.extract.ok",
		"file_id", fileID,
		"rows", len(ex.Rows),
		"panel", ex.Panel,
		"report_date", ex.ReportDate.Format("2006-01-02"),
	)
	return ex, nil
}
