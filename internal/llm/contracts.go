package llm

import "context"

// RowRequest is one extracted row presented to the note-generation service.
type RowRequest struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	RefMin float64 `json:"ref_min"`
	RefMax float64 `json:"ref_max"`
	Status string  `json:"status"`
}

// Note is one validated element of the service's response contract.
type Note struct {
	ID         string  `json:"id"`
	Note       string  `json:"note"` // single sentence, 4-200 chars
	Confidence float32 `json:"confidence"`
}

// BatchNoter generates notes for one bounded batch of rows. Implementations
// return only contract-valid notes or an error; partial salvage happens
// inside the implementation, never in callers.
type BatchNoter interface {
	GenerateNotes(ctx context.Context, batch []RowRequest) ([]Note, error)
	// Source identifies the provider and model for provenance tagging.
	Source() string
}
