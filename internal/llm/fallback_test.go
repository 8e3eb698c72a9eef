package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/labreports-tracker/constants"
)

func TestFallbackNoteKeywordTemplates(t *testing.T) {
	note := FallbackNote("IgG", constants.RowLow)
	assert.Contains(t, note, "IgG")
	assert.NotEqual(t, note, FallbackNote("IgG", constants.RowNormal))

	// aliases hit through substring matching
	assert.Contains(t, FallbackNote("Total Testosterone", constants.RowHigh), "testosterone")
}

func TestFallbackNoteGenericTemplates(t *testing.T) {
	for _, status := range []constants.RowStatus{
		constants.RowNormal, constants.RowLow, constants.RowHigh, constants.RowCritical,
	} {
		note := FallbackNote("SomethingUnknown", status)
		assert.NotEmpty(t, note)
	}
	assert.NotEqual(t,
		FallbackNote("SomethingUnknown", constants.RowNormal),
		FallbackNote("SomethingUnknown", constants.RowCritical))
}

// Every template must stay a single sentence of at most 25 words.
func TestFallbackNotesAreBounded(t *testing.T) {
	names := []string{"IgG", "Testosterone", "Glucose", "Hemoglobin", "Unknown"}
	statuses := []constants.RowStatus{
		constants.RowNormal, constants.RowLow, constants.RowHigh, constants.RowCritical,
	}
	for _, name := range names {
		for _, status := range statuses {
			note := FallbackNote(name, status)
			words := strings.Fields(note)
			assert.LessOrEqual(t, len(words), 25, "note %q", note)
			assert.GreaterOrEqual(t, len(note), 4)
			assert.LessOrEqual(t, len(note), 200)
		}
	}
}
