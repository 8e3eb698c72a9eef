package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/labreports-tracker/constants"
)

// AnalysisJob represents an analysis job for data transfer between layers.
type AnalysisJob struct {
	ID           uuid.UUID           `json:"id"`
	FileID       uuid.UUID           `json:"file_id"`
	ProfileID    uuid.UUID           `json:"profile_id"`
	Status       constants.JobStatus `json:"status"`
	Progress     int                 `json:"progress"`
	ResultID     *uuid.UUID          `json:"result_id,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// JobUpdate is a partial update applied to a non-terminal job. Nil fields are
// left untouched. The repository stamps updated_at on every applied update.
type JobUpdate struct {
	Status       *constants.JobStatus
	Progress     *int
	ResultID     *uuid.UUID
	ErrorMessage *string
}

// StatusOf is a convenience for building a JobUpdate literal.
func StatusOf(s constants.JobStatus) *constants.JobStatus { return &s }

// ProgressOf is a convenience for building a JobUpdate literal.
func ProgressOf(p int) *int { return &p }
