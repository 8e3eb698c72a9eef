package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/labreports-tracker/constants"
)

func TestParseSingleRowFixture(t *testing.T) {
	p := NewParser(nil, nil)
	out := p.Parse("IgG\n(540 - 1822 mg/dL)\n1493")

	require.Len(t, out.Rows, 1)
	row := out.Rows[0]
	assert.Equal(t, "row-1", row.ID)
	assert.Equal(t, "IgG", row.Name)
	assert.Equal(t, 1493.0, row.Value)
	assert.Equal(t, "mg/dL", row.Unit)
	assert.Equal(t, 540.0, row.RefMin)
	assert.Equal(t, 1822.0, row.RefMax)
	assert.Equal(t, constants.RowNormal, row.Status)
	assert.Equal(t, constants.PanelImmunology, out.Panel)
}

func TestParseMultipleRowsWithNoise(t *testing.T) {
	text := `LABORATORY REPORT
Date: 17.03.2024
Patient sample

IgG
(540 - 1822 mg/dL)
1493

some commentary line

Testosterone
(8.6 - 29.0 nmol/L)
4.1

SHBG
(18.3 - 54.1 nmol/L)
33.0
`
	p := NewParser(nil, nil)
	out := p.Parse(text)

	require.Len(t, out.Rows, 3)
	assert.Equal(t, []string{"row-1", "row-2", "row-3"},
		[]string{out.Rows[0].ID, out.Rows[1].ID, out.Rows[2].ID})
	assert.Equal(t, "IgG", out.Rows[0].Name)
	assert.Equal(t, "Testosterone", out.Rows[1].Name)
	assert.Equal(t, constants.RowCritical, out.Rows[1].Status) // 4.1 < 8.6*0.5
	assert.Equal(t, "SHBG", out.Rows[2].Name)
	assert.Equal(t, constants.RowNormal, out.Rows[2].Status)

	// hormone has priority over immunology when both families are present
	assert.Equal(t, constants.PanelHormone, out.Panel)
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), out.ReportDate)
}

func TestParseAliasAndCaseInsensitiveName(t *testing.T) {
	p := NewParser(nil, nil)
	out := p.Parse("total testosterone\n(8.6 - 29.0 nmol/L)\n12.5")
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "Testosterone", out.Rows[0].Name)
}

func TestParseSectionFallback(t *testing.T) {
	text := `Summary page with no windowed rows
REFERENCE VALUES
Glucose 101 70 99
Hemoglobin 14.1 13.0 17.5
unrelated line
`
	p := NewParser(nil, nil)
	out := p.Parse(text)

	require.Len(t, out.Rows, 2)
	assert.Equal(t, "Glucose", out.Rows[0].Name)
	assert.Equal(t, 101.0, out.Rows[0].Value)
	assert.Equal(t, 70.0, out.Rows[0].RefMin)
	assert.Equal(t, 99.0, out.Rows[0].RefMax)
	assert.Equal(t, constants.RowHigh, out.Rows[0].Status)
	assert.Equal(t, "Hemoglobin", out.Rows[1].Name)
	assert.Equal(t, constants.PanelMetabolic, out.Panel)
}

func TestParseNoRowsIsNotAnError(t *testing.T) {
	p := NewParser(nil, nil)
	out := p.Parse("nothing recognizable here\njust prose\n")
	assert.Empty(t, out.Rows)
	assert.Equal(t, constants.PanelGeneral, out.Panel)
	assert.False(t, out.ReportDate.IsZero()) // defaulted to now
}

func TestParseRejectsInvertedRange(t *testing.T) {
	p := NewParser(nil, nil)
	out := p.Parse("IgG\n(1822 - 540 mg/dL)\n1493")
	assert.Empty(t, out.Rows)
}

func TestExtractReportDateShapes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
		ok   bool
	}{
		{"day month year dots", "Collected 17.03.2024 at lab", time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), true},
		{"day month year slashes", "Collected 05/11/2023", time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC), true},
		{"iso", "Report date: 2024-03-17", time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), true},
		{"timestamp prefixed", "2024-03-17T09:30 automated run", time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), true},
		{"invalid day falls through", "Taken 31.02.2024, confirmed 2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"no date", "no dates here", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractReportDate(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRegistryIsAdditive(t *testing.T) {
	patterns := append(DefaultRegistry(), NewPattern("Ferritin", "ng/mL"))
	p := NewParser(nil, patterns)
	out := p.Parse("Ferritin\n(30 - 400 ng/mL)\n18")
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "Ferritin", out.Rows[0].Name)
	assert.Equal(t, constants.RowLow, out.Rows[0].Status)
}
