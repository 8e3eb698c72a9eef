// Package jobs owns the analysis-job lifecycle exposed to the API surface:
// submission, status polling, and cancellation. Workers advance jobs through
// the pipeline; this package only creates, reads, and cancels them.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/internal/async"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
	"github.com/joseph-ayodele/labreports-tracker/internal/repository"
)

type Manager struct {
	Jobs     repository.AnalysisJobRepository
	Files    repository.ReportFileRepository
	Profiles repository.ProfileRepository
	Queue    async.Queue
	Logger   *slog.Logger

	now func() time.Time
}

func NewManager(
	jobsRepo repository.AnalysisJobRepository,
	filesRepo repository.ReportFileRepository,
	profilesRepo repository.ProfileRepository,
	queue async.Queue,
	logger *slog.Logger,
) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		Jobs:     jobsRepo,
		Files:    filesRepo,
		Profiles: profilesRepo,
		Queue:    queue,
		Logger:   logger,
		now:      time.Now,
	}
}

// CreateJob registers a QUEUED job for a stored report file and hands exactly
// one unit of work to the queue. The owning profile must exist, and a file
// with a non-terminal job cannot get a second one.
func (m *Manager) CreateJob(ctx context.Context, fileID, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	ok, err := m.Profiles.Exists(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("%w: check profile: %v", common.ErrPersistence, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: profile %s", common.ErrNotFound, profileID)
	}

	file, err := m.Files.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: report file %s", common.ErrNotFound, fileID)
		}
		return nil, fmt.Errorf("%w: get report file: %v", common.ErrPersistence, err)
	}
	// files are only visible to their owner
	if file.ProfileID != profileID {
		return nil, fmt.Errorf("%w: report file %s", common.ErrNotFound, fileID)
	}

	// Only a definitive miss clears the conflict check; a storage failure
	// here must not slip through and mint a duplicate active job.
	active, err := m.Jobs.FindActive(ctx, fileID, profileID)
	switch {
	case err == nil:
		m.Logger.Info("jobs.create_conflict", "file_id", fileID, "active_job_id", active.ID)
		return nil, fmt.Errorf("%w: job %s is still %s", common.ErrConflict, active.ID, active.Status)
	case !errors.Is(err, common.ErrNotFound):
		return nil, fmt.Errorf("%w: find active job: %v", common.ErrPersistence, err)
	}

	job, err := m.Jobs.Create(ctx, fileID, profileID)
	if err != nil {
		return nil, fmt.Errorf("%w: create job: %v", common.ErrPersistence, err)
	}

	if err := m.Queue.Enqueue(ctx, async.Job{
		JobID:       job.ID,
		FileID:      fileID,
		ProfileID:   profileID,
		SubmittedAt: m.now(),
		TraceID:     uuid.New().String(),
	}); err != nil {
		// the job row stays QUEUED; the caller can resubmit after the queue recovers
		m.Logger.Error("jobs.enqueue_failed", "job_id", job.ID, "error", err)
		return nil, fmt.Errorf("enqueue job %s: %w", job.ID, err)
	}

	m.Logger.Info("jobs.created", "job_id", job.ID, "file_id", fileID, "profile_id", profileID)
	return job, nil
}

// GetJobStatus returns the job as stored, scoped to its owner. Polling a
// completed job carries the result id for the follow-up fetch.
func (m *Manager) GetJobStatus(ctx context.Context, jobID, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	job, err := m.Jobs.GetForOwner(ctx, jobID, profileID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, jobID)
		}
		return nil, fmt.Errorf("%w: get job: %v", common.ErrPersistence, err)
	}
	return job, nil
}

// CancelJob marks a non-terminal job FAILED with a cancellation message. The
// running worker notices the terminal status at its next checkpoint and
// stops; already-terminal jobs cannot be cancelled.
func (m *Manager) CancelJob(ctx context.Context, jobID, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	job, err := m.GetJobStatus(ctx, jobID, profileID)
	if err != nil {
		return nil, err
	}
	if job.Status.Terminal() {
		return nil, fmt.Errorf("%w: job %s is already %s", common.ErrInvalidState, jobID, job.Status)
	}

	failed := constants.JobStatusFailed
	msg := "cancelled"
	applied, err := m.Jobs.Update(ctx, jobID, entity.JobUpdate{
		Status:       &failed,
		ErrorMessage: &msg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: cancel job: %v", common.ErrPersistence, err)
	}
	if !applied {
		// the job went terminal between the read and the write
		return nil, fmt.Errorf("%w: job %s finished before cancellation", common.ErrInvalidState, jobID)
	}

	m.Logger.Info("jobs.cancelled", "job_id", jobID)
	return m.Jobs.GetForOwner(ctx, jobID, profileID)
}
