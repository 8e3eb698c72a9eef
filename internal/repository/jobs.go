package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent"
	entjob "github.com/joseph-ayodele/labreports-tracker/gen/ent/analysisjob"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

type AnalysisJobRepository interface {
	Create(ctx context.Context, fileID, profileID uuid.UUID) (*entity.AnalysisJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AnalysisJob, error)
	GetForOwner(ctx context.Context, id, profileID uuid.UUID) (*entity.AnalysisJob, error)
	// FindActive returns the non-terminal job for a file/profile pair, or an
	// error wrapping common.ErrNotFound when none exists. Any other error is
	// a real storage failure, not an all-clear.
	FindActive(ctx context.Context, fileID, profileID uuid.UUID) (*entity.AnalysisJob, error)
	// Update applies a partial update to a job only while it is non-terminal
	// and, for progress, only when the stored value would not decrease. It
	// reports whether the write was applied; a stale or post-terminal write
	// returns (false, nil).
	Update(ctx context.Context, id uuid.UUID, upd entity.JobUpdate) (bool, error)
}

type analysisJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAnalysisJobRepository(entc *ent.Client, log *slog.Logger) AnalysisJobRepository {
	return &analysisJobRepo{ent: entc, log: log}
}

func (r *analysisJobRepo) Create(ctx context.Context, fileID, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	job, err := r.ent.AnalysisJob.
		Create().
		SetFileID(fileID).
		SetProfileID(profileID).
		SetStatus(string(constants.JobStatusQueued)).
		SetProgress(0).
		Save(ctx)
	if err != nil {
		r.log.Error("analysis_job create failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("analysis_job created", "job_id", job.ID, "file_id", fileID, "profile_id", profileID)
	return jobFromEnt(job), nil
}

func (r *analysisJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.AnalysisJob, error) {
	job, err := r.ent.AnalysisJob.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "job %s", id)
	}
	return jobFromEnt(job), nil
}

func (r *analysisJobRepo) GetForOwner(ctx context.Context, id, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	job, err := r.ent.AnalysisJob.Query().
		Where(
			entjob.ID(id),
			entjob.ProfileID(profileID),
		).Only(ctx)
	if err != nil {
		return nil, notFoundOr(err, "job %s", id)
	}
	return jobFromEnt(job), nil
}

func (r *analysisJobRepo) FindActive(ctx context.Context, fileID, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	job, err := r.ent.AnalysisJob.Query().
		Where(
			entjob.FileID(fileID),
			entjob.ProfileID(profileID),
			entjob.StatusIn(constants.NonTerminalStatuses...),
		).
		Order(entjob.ByCreatedAt()).
		First(ctx)
	if err != nil {
		return nil, notFoundOr(err, "no active job for file %s", fileID)
	}
	return jobFromEnt(job), nil
}

// notFoundOr maps ent's not-found onto the error taxonomy; every other
// error is passed through untouched so callers can tell a miss from a
// storage failure.
func notFoundOr(err error, format string, args ...any) error {
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: %s", common.ErrNotFound, fmt.Sprintf(format, args...))
	}
	return err
}

func (r *analysisJobRepo) Update(ctx context.Context, id uuid.UUID, upd entity.JobUpdate) (bool, error) {
	q := r.ent.AnalysisJob.Update().
		Where(
			entjob.ID(id),
			entjob.StatusIn(constants.NonTerminalStatuses...),
		)
	if upd.Status != nil {
		q.SetStatus(string(*upd.Status))
	}
	if upd.Progress != nil {
		// reject regressions from out-of-order checkpoint writes
		q.Where(entjob.ProgressLTE(*upd.Progress))
		q.SetProgress(*upd.Progress)
	}
	if upd.ResultID != nil {
		q.SetResultID(*upd.ResultID)
	}
	if upd.ErrorMessage != nil {
		q.SetErrorMessage(*upd.ErrorMessage)
	}
	q.SetUpdatedAt(time.Now())

	n, err := q.Save(ctx)
	if err != nil {
		r.log.Error("analysis_job update failed", "job_id", id, "err", err)
		return false, err
	}
	if n == 0 {
		r.log.Debug("analysis_job update skipped", "job_id", id)
		return false, nil
	}
	return true, nil
}

func jobFromEnt(j *ent.AnalysisJob) *entity.AnalysisJob {
	return &entity.AnalysisJob{
		ID:           j.ID,
		FileID:       j.FileID,
		ProfileID:    j.ProfileID,
		Status:       constants.JobStatus(j.Status),
		Progress:     j.Progress,
		ResultID:     j.ResultID,
		ErrorMessage: j.ErrorMessage,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}
