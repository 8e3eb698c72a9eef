package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportFile represents a stored lab-report document. Binary decoding happens
// upstream; report_text is the machine-readable text the pipeline consumes.
type ReportFile struct {
	ID         uuid.UUID `json:"id"`
	ProfileID  uuid.UUID `json:"profile_id"`
	Filename   string    `json:"filename"`
	ReportText string    `json:"report_text"`
	UploadedAt time.Time `json:"uploaded_at"`
}
