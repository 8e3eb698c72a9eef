package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/internal/classify"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

// Aggregate rolls enriched rows up into the persisted result shape. The
// doctor annotation from the extraction is carried through verbatim.
func Aggregate(jobID uuid.UUID, ex entity.Extraction, rows []entity.TestRow, now time.Time) *entity.LabResult {
	var normal, abnormal, critical int
	statuses := make([]constants.RowStatus, len(rows))
	for i, r := range rows {
		statuses[i] = r.Status
		switch {
		case r.Status == constants.RowCritical:
			critical++
		case r.Status.Abnormal():
			abnormal++
		default:
			normal++
		}
	}
	overall := classify.Overall(statuses)

	return &entity.LabResult{
		JobID:         jobID,
		PanelType:     ex.Panel,
		ReportDate:    ex.ReportDate,
		Rows:          rows,
		Summary:       buildSummary(ex.Panel, len(rows), normal, abnormal, critical, overall),
		DoctorNotes:   ex.DoctorNotes,
		TotalTests:    len(rows),
		NormalCount:   normal,
		AbnormalCount: abnormal,
		CriticalCount: critical,
		OverallStatus: overall,
		CreatedAt:     now.UTC(),
	}
}

func buildSummary(panel constants.Panel, total, normal, abnormal, critical int, overall constants.OverallStatus) string {
	if total == 0 {
		return "No recognized test values in this report."
	}
	return fmt.Sprintf("%s panel: %d tests analyzed, %d normal, %d abnormal, %d critical. Overall status: %s.",
		panel, total, normal, abnormal, critical, overall)
}
