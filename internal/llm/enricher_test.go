package llm

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

// scriptedNoter answers each GenerateNotes call from a script of outcomes.
type scriptedNoter struct {
	calls   int
	batches [][]RowRequest
	fail    func(call int) bool
}

func (s *scriptedNoter) GenerateNotes(_ context.Context, batch []RowRequest) ([]Note, error) {
	s.calls++
	s.batches = append(s.batches, batch)
	if s.fail != nil && s.fail(s.calls) {
		return nil, fmt.Errorf("service unavailable")
	}
	notes := make([]Note, len(batch))
	for i, r := range batch {
		notes[i] = Note{ID: r.ID, Note: "Looks steady for " + r.Name + ".", Confidence: 0.9}
	}
	return notes, nil
}

func (s *scriptedNoter) Source() string { return "openai:test-model" }

func makeRows(n int) []entity.TestRow {
	rows := make([]entity.TestRow, n)
	for i := range rows {
		rows[i] = entity.TestRow{
			ID:     fmt.Sprintf("row-%d", i+1),
			Name:   "IgG",
			Value:  1000,
			Unit:   "mg/dL",
			RefMin: 540,
			RefMax: 1822,
			Status: constants.RowNormal,
		}
	}
	return rows
}

func TestEnrichBatchPartitioning(t *testing.T) {
	noter := &scriptedNoter{}
	e := NewEnricher(noter, nil, WithSleep(func(time.Duration) {}))

	notes := e.Enrich(context.Background(), makeRows(45))

	require.Len(t, notes, 45)
	require.Len(t, noter.batches, 3)
	assert.Len(t, noter.batches[0], 20)
	assert.Len(t, noter.batches[1], 20)
	assert.Len(t, noter.batches[2], 5)
	for _, n := range notes {
		assert.Equal(t, "openai:test-model:"+constants.PromptVersion, n.Source)
		assert.NotEmpty(t, n.Text)
	}
}

func TestEnrichAllBatchesFailingYieldsAllFallbacks(t *testing.T) {
	noter := &scriptedNoter{fail: func(int) bool { return true }}
	var slept []time.Duration
	e := NewEnricher(noter, nil, WithSleep(func(d time.Duration) { slept = append(slept, d) }))

	rows := makeRows(25)
	notes := e.Enrich(context.Background(), rows)

	require.Len(t, notes, 25)
	for _, n := range notes {
		assert.True(t, strings.HasPrefix(n.Source, constants.NoteSourceFallback+":"))
		assert.Equal(t, constants.FallbackConfidence, n.Confidence)
		assert.NotEmpty(t, n.Text)
	}
	// two batches, each retried exactly once
	assert.Equal(t, 4, noter.calls)
	require.Len(t, slept, 2)
	for _, d := range slept {
		assert.GreaterOrEqual(t, d, 300*time.Millisecond)
		assert.Less(t, d, 1200*time.Millisecond)
	}
}

func TestEnrichRetrySucceedsSecondAttempt(t *testing.T) {
	noter := &scriptedNoter{fail: func(call int) bool { return call == 1 }}
	e := NewEnricher(noter, nil, WithSleep(func(time.Duration) {}))

	notes := e.Enrich(context.Background(), makeRows(3))

	require.Len(t, notes, 3)
	assert.Equal(t, 2, noter.calls)
	for _, n := range notes {
		assert.Equal(t, "openai:test-model:"+constants.PromptVersion, n.Source)
	}
}

// A service answering only a subset of ids leaves the rest on the fallback
// path; every row still ends with exactly one note.
func TestEnrichPartialServiceCoverage(t *testing.T) {
	partial := &partialNoter{}
	e := NewEnricher(partial, nil, WithSleep(func(time.Duration) {}))

	rows := makeRows(4)
	notes := e.Enrich(context.Background(), rows)

	require.Len(t, notes, 4)
	assert.Equal(t, "openai:test-model:"+constants.PromptVersion, notes[0].Source)
	for _, n := range notes[1:] {
		assert.True(t, strings.HasPrefix(n.Source, constants.NoteSourceFallback+":"))
	}
}

type partialNoter struct{}

func (p *partialNoter) GenerateNotes(_ context.Context, batch []RowRequest) ([]Note, error) {
	return []Note{{ID: batch[0].ID, Note: "Only the first row got a note.", Confidence: 0.8}}, nil
}

func (p *partialNoter) Source() string { return "openai:test-model" }

func TestEnrichCustomBatchSize(t *testing.T) {
	noter := &scriptedNoter{}
	e := NewEnricher(noter, nil, WithBatchSize(10), WithSleep(func(time.Duration) {}))

	e.Enrich(context.Background(), makeRows(21))

	require.Len(t, noter.batches, 3)
	assert.Len(t, noter.batches[2], 1)
}
