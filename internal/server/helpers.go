package server

import (
	"strings"
	"time"

	"github.com/google/uuid"

	v1 "github.com/joseph-ayodele/labreports-tracker/gen/proto/labreports/v1"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

func parseUUID(field, raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func toPBProfile(p *entity.Profile) *v1.Profile {
	return &v1.Profile{
		Id:        p.ID.String(),
		Name:      p.Name,
		CreatedAt: p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func toPBFile(f *entity.ReportFile) *v1.ReportFile {
	return &v1.ReportFile{
		Id:         f.ID.String(),
		ProfileId:  f.ProfileID.String(),
		Filename:   f.Filename,
		UploadedAt: f.UploadedAt.Format(time.RFC3339Nano),
	}
}

func toPBJob(j *entity.AnalysisJob) *v1.AnalysisJob {
	pb := &v1.AnalysisJob{
		Id:        j.ID.String(),
		FileId:    j.FileID.String(),
		ProfileId: j.ProfileID.String(),
		Status:    string(j.Status),
		Progress:  int32(j.Progress),
		CreatedAt: j.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: j.UpdatedAt.Format(time.RFC3339Nano),
	}
	if j.ResultID != nil {
		pb.ResultId = j.ResultID.String()
	}
	if j.ErrorMessage != nil {
		pb.ErrorMessage = *j.ErrorMessage
	}
	return pb
}

func toPBResult(r *entity.LabResult) *v1.LabResult {
	return &v1.LabResult{
		Id:            r.ID.String(),
		JobId:         r.JobID.String(),
		PanelType:     string(r.PanelType),
		ReportDate:    r.ReportDate.Format("2006-01-02"),
		Rows:          toPBRows(r.Rows),
		Summary:       r.Summary,
		DoctorNotes:   r.DoctorNotes,
		TotalTests:    int32(r.TotalTests),
		NormalCount:   int32(r.NormalCount),
		AbnormalCount: int32(r.AbnormalCount),
		CriticalCount: int32(r.CriticalCount),
		OverallStatus: string(r.OverallStatus),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339Nano),
		AbnormalRows:  toPBRows(r.AbnormalRows()),
		CriticalRows:  toPBRows(r.CriticalRows()),
	}
}

func toPBRows(rows []entity.TestRow) []*v1.TestRow {
	out := make([]*v1.TestRow, 0, len(rows))
	for _, r := range rows {
		pb := &v1.TestRow{
			Id:     r.ID,
			Name:   r.Name,
			Value:  r.Value,
			Unit:   r.Unit,
			RefMin: r.RefMin,
			RefMax: r.RefMax,
			Status: string(r.Status),
		}
		if r.Note != nil {
			pb.Note = &v1.RowNote{
				Text:       r.Note.Text,
				Confidence: r.Note.Confidence,
				Source:     r.Note.Source,
				CreatedAt:  r.Note.CreatedAt.Format(time.RFC3339Nano),
			}
		}
		out = append(out, pb)
	}
	return out
}
