package pipeline

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

// NoteEnricher attaches one note per row; it degrades internally and never
// fails the pipeline.
type NoteEnricher interface {
	Enrich(ctx context.Context, rows []entity.TestRow) []entity.RowNote
}

type EnrichStage struct {
	Enricher NoteEnricher
	Logger   *slog.Logger
}

func NewEnrichStage(enricher NoteEnricher, logger *slog.Logger) *EnrichStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnrichStage{Enricher: enricher, Logger: logger}
}

// Run returns a copy of rows with a note attached to every one.
func (s *EnrichStage) Run(ctx context.Context, rows []entity.TestRow) []entity.TestRow {
	if len(rows) == 0 {
		return rows
	}
	notes := s.Enricher.Enrich(ctx, rows)

	out := make([]entity.TestRow, len(rows))
	copy(out, rows)
	for i := range out {
		if i < len(notes) {
			n := notes[i]
			out[i].Note = &n
		}
	}
	return out
}
