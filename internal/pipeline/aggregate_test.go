package pipeline

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

func TestAggregateCountsAndSummary(t *testing.T) {
	jobID := uuid.New()
	ex := entity.Extraction{
		ReportDate:  time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
		Panel:       constants.PanelHormone,
		DoctorNotes: "recheck in 6 weeks",
	}
	rows := []entity.TestRow{
		{ID: "row-1", Name: "IgG", Status: constants.RowNormal},
		{ID: "row-2", Name: "SHBG", Status: constants.RowHigh},
		{ID: "row-3", Name: "Testosterone", Status: constants.RowCritical},
		{ID: "row-4", Name: "TSH", Status: constants.RowLow},
	}

	res := Aggregate(jobID, ex, rows, time.Now())

	assert.Equal(t, jobID, res.JobID)
	assert.Equal(t, 4, res.TotalTests)
	assert.Equal(t, 1, res.NormalCount)
	assert.Equal(t, 2, res.AbnormalCount)
	assert.Equal(t, 1, res.CriticalCount)
	assert.Equal(t, constants.OverallCritical, res.OverallStatus)
	assert.Equal(t, "recheck in 6 weeks", res.DoctorNotes)
	assert.Contains(t, res.Summary, "4 tests analyzed")
	assert.Contains(t, res.Summary, "critical")
}

func TestAggregateEmpty(t *testing.T) {
	res := Aggregate(uuid.New(), entity.Extraction{Panel: constants.PanelGeneral}, nil, time.Now())

	assert.Zero(t, res.TotalTests)
	assert.Equal(t, constants.OverallNormal, res.OverallStatus)
	assert.Equal(t, "No recognized test values in this report.", res.Summary)
}
