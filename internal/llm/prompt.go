package llm

import (
	"fmt"
	"strings"
)

// SystemInstruction is the fixed system message for note generation. Notes
// must stay short, encouraging, and must never contradict the row's status.
const SystemInstruction = "You write one short note per lab test row. " +
	"Each note is a single encouraging, non-diagnostic sentence of at most 25 words. " +
	"Never contradict the row's status: a 'low', 'high' or 'critical' row must not be described as normal. " +
	"Do not give medical advice or diagnoses; suggest discussing results with a clinician where appropriate. " +
	"Return ONLY a JSON array matching the provided JSON Schema, one element per row, echoing each row's id."

// BuildBatchPrompt enumerates one batch of rows for the user message.
func BuildBatchPrompt(batch []RowRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write one note for each of the following %d test rows.\n\n", len(batch))
	for _, r := range batch {
		fmt.Fprintf(&b, "- id=%s name=%s value=%g unit=%s range=%g-%g status=%s\n",
			r.ID, r.Name, r.Value, r.Unit, r.RefMin, r.RefMax, r.Status)
	}
	return b.String()
}
