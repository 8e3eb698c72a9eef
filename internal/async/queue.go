package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one unit of analysis work. The job row already exists in QUEUED
// state before the unit is enqueued; workers only advance it.
type Job struct {
	JobID       uuid.UUID
	FileID      uuid.UUID
	ProfileID   uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
