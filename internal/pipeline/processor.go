package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/internal/async"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
	"github.com/joseph-ayodele/labreports-tracker/internal/repository"
)

// Progress checkpoints written while a job advances. Each write is
// conditional on the job still being non-terminal, so a cancellation
// between stages silently stops the run.
const (
	progressStarted    = 5
	progressExtracted  = 35
	progressEnriched   = 65
	progressAggregated = 95
	progressDone       = 100
)

// Processor runs the analysis pipeline for one job: extract, enrich,
// aggregate, persist. It is safe to invoke multiple times for the same job;
// redeliveries either resume against a non-terminal job or detect a terminal
// one and stop.
type Processor struct {
	Jobs    repository.AnalysisJobRepository
	Results repository.LabResultRepository
	Extract *ExtractStage
	Enrich  *EnrichStage
	Logger  *slog.Logger

	now func() time.Time
}

func NewProcessor(
	jobs repository.AnalysisJobRepository,
	results repository.LabResultRepository,
	extract *ExtractStage,
	enrich *EnrichStage,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Jobs:    jobs,
		Results: results,
		Extract: extract,
		Enrich:  enrich,
		Logger:  logger,
		now:     time.Now,
	}
}

// Process runs one attempt of a job. A returned error means the attempt is
// retryable; a nil return means the job reached a terminal state or was
// detected as already terminal (cancelled or completed by someone else).
func (p *Processor) Process(ctx context.Context, job async.Job, attempt int) error {
	running := constants.JobStatusRunning
	applied, err := p.Jobs.Update(ctx, job.JobID, entity.JobUpdate{
		Status:   &running,
		Progress: entity.ProgressOf(progressStarted),
	})
	if err != nil {
		return err
	}
	if !applied {
		p.Logger.Info("pipeline.job_already_terminal", "job_id", job.JobID, "attempt", attempt)
		return nil
	}
	p.Logger.Info("pipeline.started", "job_id", job.JobID, "file_id", job.FileID, "attempt", attempt)

	ex, err := p.Extract.Run(ctx, job.FileID)
	if err != nil {
		return err
	}
	if ok, err := p.checkpoint(ctx, job.JobID, progressExtracted); err != nil || !ok {
		return err
	}

	rows := p.Enrich.Run(ctx, ex.Rows)
	if ok, err := p.checkpoint(ctx, job.JobID, progressEnriched); err != nil || !ok {
		return err
	}

	result := Aggregate(job.JobID, ex, rows, p.now())
	stored, err := p.Results.UpsertForJob(ctx, result)
	if err != nil {
		return err
	}
	if ok, err := p.checkpoint(ctx, job.JobID, progressAggregated); err != nil || !ok {
		return err
	}

	completed := constants.JobStatusCompleted
	applied, err = p.Jobs.Update(ctx, job.JobID, entity.JobUpdate{
		Status:   &completed,
		Progress: entity.ProgressOf(progressDone),
		ResultID: &stored.ID,
	})
	if err != nil {
		return err
	}
	if !applied {
		// cancelled while persisting; the stored result stays, the job stays FAILED
		p.Logger.Warn("pipeline.completion_dropped", "job_id", job.JobID)
		return nil
	}

	p.Logger.Info("pipeline.completed",
		"job_id", job.JobID,
		"result_id", stored.ID,
		"rows", stored.TotalTests,
		"overall", stored.OverallStatus,
	)
	return nil
}

// MarkFailed records terminal failure after every attempt was exhausted.
// Shaped as an async.FailFunc.
func (p *Processor) MarkFailed(ctx context.Context, job async.Job, cause error) {
	failed := constants.JobStatusFailed
	msg := "analysis failed"
	if cause != nil {
		msg = cause.Error()
	}
	applied, err := p.Jobs.Update(ctx, job.JobID, entity.JobUpdate{
		Status:       &failed,
		ErrorMessage: &msg,
	})
	if err != nil {
		p.Logger.Error("pipeline.mark_failed_error", "job_id", job.JobID, "error", err)
		return
	}
	if applied {
		p.Logger.Warn("pipeline.job_failed", "job_id", job.JobID, "error", msg)
	}
}

// checkpoint advances progress and reports whether the job is still live.
func (p *Processor) checkpoint(ctx context.Context, jobID uuid.UUID, progress int) (bool, error) {
	applied, err := p.Jobs.Update(ctx, jobID, entity.JobUpdate{
		Progress: entity.ProgressOf(progress),
	})
	if err != nil {
		return false, err
	}
	if !applied {
		p.Logger.Info("pipeline.checkpoint_dropped", "job_id", jobID, "progress", progress)
	}
	return applied, nil
}
