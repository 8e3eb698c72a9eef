package llm

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

// Enrichment defaults. One retry per batch with a short randomized delay;
// a batch that fails twice contributes zero service notes and its rows fall
// back to templated notes.
const (
	DefaultBatchSize = 20
	retryDelayMin    = 300 * time.Millisecond
	retryDelayMax    = 1200 * time.Millisecond
)

// Enricher attaches exactly one note to every row: service-sourced where the
// external call succeeded and validated, fallback-sourced otherwise. Failures
// here never become job failures.
type Enricher struct {
	noter     BatchNoter
	batchSize int
	logger    *slog.Logger

	sleep func(time.Duration) // test hook
	now   func() time.Time
}

type EnricherOption func(*Enricher)

func WithBatchSize(n int) EnricherOption {
	return func(e *Enricher) {
		if n > 0 && n <= DefaultBatchSize {
			e.batchSize = n
		}
	}
}

// WithSleep replaces the retry delay sleeper (tests).
func WithSleep(fn func(time.Duration)) EnricherOption {
	return func(e *Enricher) { e.sleep = fn }
}

func NewEnricher(noter BatchNoter, logger *slog.Logger, opts ...EnricherOption) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Enricher{
		noter:     noter,
		batchSize: DefaultBatchSize,
		logger:    logger,
		sleep:     time.Sleep,
		now:       time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Enrich returns one note per row, aligned with the input order. The rows
// themselves are not mutated.
func (e *Enricher) Enrich(ctx context.Context, rows []entity.TestRow) []entity.RowNote {
	byID := make(map[string]Note, len(rows))

	for start := 0; start < len(rows); start += e.batchSize {
		end := min(start+e.batchSize, len(rows))
		batch := toRowRequests(rows[start:end])

		notes, err := e.generateWithRetry(ctx, batch)
		if err != nil {
			// degraded, not fatal: the whole batch falls back
			e.logger.Warn("enrich.batch_degraded",
				"batch_start", start, "batch_size", len(batch), "error", err)
			continue
		}
		for _, n := range notes {
			byID[n.ID] = n
		}
	}

	provenance := e.noter.Source() + ":" + constants.PromptVersion
	fallbackSource := constants.NoteSourceFallback + ":" + constants.PromptVersion
	stamped := e.now().UTC()

	out := make([]entity.RowNote, len(rows))
	fallbacks := 0
	for i, row := range rows {
		if n, ok := byID[row.ID]; ok {
			out[i] = entity.RowNote{
				Text:       n.Note,
				Confidence: n.Confidence,
				Source:     provenance,
				CreatedAt:  stamped,
			}
			continue
		}
		out[i] = entity.RowNote{
			Text:       FallbackNote(row.Name, row.Status),
			Confidence: constants.FallbackConfidence,
			Source:     fallbackSource,
			CreatedAt:  stamped,
		}
		fallbacks++
	}

	e.logger.Info("enrich.done",
		"rows", len(rows), "service_notes", len(rows)-fallbacks, "fallback_notes", fallbacks)
	return out
}

// generateWithRetry calls the service once and, on transport or validation
// failure, retries exactly once after a short randomized delay.
func (e *Enricher) generateWithRetry(ctx context.Context, batch []RowRequest) ([]Note, error) {
	notes, err := e.noter.GenerateNotes(ctx, batch)
	if err == nil {
		return notes, nil
	}
	e.logger.Warn("enrich.batch_retry", "batch_size", len(batch), "error", err)

	delay := retryDelayMin + time.Duration(rand.Int63n(int64(retryDelayMax-retryDelayMin)))
	e.sleep(delay)

	return e.noter.GenerateNotes(ctx, batch)
}

func toRowRequests(rows []entity.TestRow) []RowRequest {
	out := make([]RowRequest, len(rows))
	for i, r := range rows {
		out[i] = RowRequest{
			ID:     r.ID,
			Name:   r.Name,
			Value:  r.Value,
			Unit:   r.Unit,
			RefMin: r.RefMin,
			RefMax: r.RefMax,
			Status: string(r.Status),
		}
	}
	return out
}
