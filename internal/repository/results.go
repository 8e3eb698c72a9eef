package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent"
	entresult "github.com/joseph-ayodele/labreports-tracker/gen/ent/labresult"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

type LabResultRepository interface {
	// UpsertForJob stores the result for a job, keyed on job_id. A redelivered
	// job that already persisted its result gets the existing row back instead
	// of a duplicate.
	UpsertForJob(ctx context.Context, res *entity.LabResult) (*entity.LabResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LabResult, error)
	GetByJobID(ctx context.Context, jobID uuid.UUID) (*entity.LabResult, error)
}

type labResultRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewLabResultRepository(entc *ent.Client, log *slog.Logger) LabResultRepository {
	return &labResultRepo{ent: entc, log: log}
}

func (r *labResultRepo) UpsertForJob(ctx context.Context, res *entity.LabResult) (*entity.LabResult, error) {
	if existing, err := r.GetByJobID(ctx, res.JobID); err == nil {
		r.log.Info("lab_result already persisted", "job_id", res.JobID, "result_id", existing.ID)
		return existing, nil
	}

	rows, err := json.Marshal(res.Rows)
	if err != nil {
		return nil, fmt.Errorf("marshal result rows: %w", err)
	}

	row, err := r.ent.LabResult.Create().
		SetJobID(res.JobID).
		SetPanelType(string(res.PanelType)).
		SetReportDate(res.ReportDate).
		SetRows(rows).
		SetSummary(res.Summary).
		SetDoctorNotes(res.DoctorNotes).
		SetTotalTests(res.TotalTests).
		SetNormalCount(res.NormalCount).
		SetAbnormalCount(res.AbnormalCount).
		SetCriticalCount(res.CriticalCount).
		SetOverallStatus(string(res.OverallStatus)).
		Save(ctx)
	if err != nil {
		// a concurrent redelivery may have won the unique job_id race
		if ent.IsConstraintError(err) {
			if existing, getErr := r.GetByJobID(ctx, res.JobID); getErr == nil {
				return existing, nil
			}
		}
		r.log.Error("lab_result create failed", "job_id", res.JobID, "err", err)
		return nil, err
	}
	r.log.Info("lab_result persisted", "job_id", res.JobID, "result_id", row.ID, "rows", res.TotalTests)
	return resultFromEnt(row)
}

func (r *labResultRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.LabResult, error) {
	row, err := r.ent.LabResult.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "result %s", id)
	}
	return resultFromEnt(row)
}

func (r *labResultRepo) GetByJobID(ctx context.Context, jobID uuid.UUID) (*entity.LabResult, error) {
	row, err := r.ent.LabResult.Query().
		Where(entresult.JobID(jobID)).
		Only(ctx)
	if err != nil {
		return nil, notFoundOr(err, "no result for job %s", jobID)
	}
	return resultFromEnt(row)
}

func resultFromEnt(lr *ent.LabResult) (*entity.LabResult, error) {
	var rows []entity.TestRow
	if len(lr.Rows) > 0 {
		if err := json.Unmarshal(lr.Rows, &rows); err != nil {
			return nil, fmt.Errorf("unmarshal result rows: %w", err)
		}
	}
	return &entity.LabResult{
		ID:            lr.ID,
		JobID:         lr.JobID,
		PanelType:     constants.Panel(lr.PanelType),
		ReportDate:    lr.ReportDate,
		Rows:          rows,
		Summary:       lr.Summary,
		DoctorNotes:   lr.DoctorNotes,
		TotalTests:    lr.TotalTests,
		NormalCount:   lr.NormalCount,
		AbnormalCount: lr.AbnormalCount,
		CriticalCount: lr.CriticalCount,
		OverallStatus: constants.OverallStatus(lr.OverallStatus),
		CreatedAt:     lr.CreatedAt,
	}, nil
}
