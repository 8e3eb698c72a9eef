package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/labreports-tracker/gen/ent"
	entfile "github.com/joseph-ayodele/labreports-tracker/gen/ent/reportfile"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

type ReportFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReportFile, error)
	Create(ctx context.Context, profileID uuid.UUID, filename, reportText string, uploadedAt time.Time) (*entity.ReportFile, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.ReportFile, error)
}

type reportFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewReportFileRepository(entc *ent.Client, logger *slog.Logger) ReportFileRepository {
	return &reportFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *reportFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReportFile, error) {
	row, err := r.ent.ReportFile.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "report file %s", id)
	}
	return fileFromEnt(row), nil
}

func (r *reportFileRepo) Create(ctx context.Context, profileID uuid.UUID, filename, reportText string, uploadedAt time.Time) (*entity.ReportFile, error) {
	row, err := r.ent.ReportFile.Create().
		SetProfileID(profileID).
		SetFilename(filename).
		SetReportText(reportText).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create report file", "profile_id", profileID, "filename", filename, "error", err)
		return nil, err
	}
	return fileFromEnt(row), nil
}

func (r *reportFileRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.ReportFile, error) {
	rows, err := r.ent.ReportFile.Query().
		Where(entfile.ProfileID(profileID)).
		Order(entfile.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list report files", "profile_id", profileID, "error", err)
		return nil, err
	}
	out := make([]*entity.ReportFile, len(rows))
	for i, row := range rows {
		out[i] = fileFromEnt(row)
	}
	return out, nil
}

func fileFromEnt(f *ent.ReportFile) *entity.ReportFile {
	return &entity.ReportFile{
		ID:         f.ID,
		ProfileID:  f.ProfileID,
		Filename:   f.Filename,
		ReportText: f.ReportText,
		UploadedAt: f.UploadedAt,
	}
}
