package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/labreports-tracker/constants"
)

// RowNote is the short generated (or fallback) explanation attached to a row.
type RowNote struct {
	Text       string    `json:"text"`
	Confidence float32   `json:"confidence"` // 0..1
	Source     string    `json:"source"`     // e.g. "openai:gpt-4o-mini:prompt-v2" or "fallback:prompt-v2"
	CreatedAt  time.Time `json:"created_at"`
}

// TestRow is one recognized measurement from a report. Rows are produced by
// the extractor and never mutated afterwards, except to attach a note.
type TestRow struct {
	ID     string              `json:"id"` // stable within one document, sequentially assigned
	Name   string              `json:"name"`
	Value  float64             `json:"value"`
	Unit   string              `json:"unit"`
	RefMin float64             `json:"ref_min"`
	RefMax float64             `json:"ref_max"`
	Status constants.RowStatus `json:"status"`
	Note   *RowNote            `json:"note,omitempty"`
}

// Extraction is the full output of the field extractor for one document.
type Extraction struct {
	Rows        []TestRow       `json:"rows"`
	ReportDate  time.Time       `json:"report_date"`
	Panel       constants.Panel `json:"panel"`
	DoctorNotes string          `json:"doctor_notes,omitempty"` // verbatim annotation block
}

// LabResult represents a finished analysis result for data transfer between
// layers. Owned one-to-one by the job that created it; immutable once stored.
type LabResult struct {
	ID            uuid.UUID               `json:"id"`
	JobID         uuid.UUID               `json:"job_id"`
	PanelType     constants.Panel         `json:"panel_type"`
	ReportDate    time.Time               `json:"report_date"`
	Rows          []TestRow               `json:"rows"`
	Summary       string                  `json:"summary"`
	DoctorNotes   string                  `json:"doctor_notes,omitempty"`
	TotalTests    int                     `json:"total_tests"`
	NormalCount   int                     `json:"normal_count"`
	AbnormalCount int                     `json:"abnormal_count"`
	CriticalCount int                     `json:"critical_count"`
	OverallStatus constants.OverallStatus `json:"overall_status"`
	CreatedAt     time.Time               `json:"created_at"`
}

// AbnormalRows returns the low/high subset for UI highlighting.
func (r *LabResult) AbnormalRows() []TestRow {
	var out []TestRow
	for _, row := range r.Rows {
		if row.Status.Abnormal() {
			out = append(out, row)
		}
	}
	return out
}

// CriticalRows returns the critical subset for UI highlighting.
func (r *LabResult) CriticalRows() []TestRow {
	var out []TestRow
	for _, row := range r.Rows {
		if row.Status == constants.RowCritical {
			out = append(out, row)
		}
	}
	return out
}
