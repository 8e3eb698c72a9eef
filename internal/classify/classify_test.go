package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/labreports-tracker/constants"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		min   float64
		max   float64
		want  constants.RowStatus
	}{
		{"in range", 1493, 540, 1822, constants.RowNormal},
		{"at lower bound", 540, 540, 1822, constants.RowNormal},
		{"at upper bound", 1822, 540, 1822, constants.RowNormal},
		{"below range", 400, 540, 1822, constants.RowLow},
		{"just below critical cutoff", 269, 540, 1822, constants.RowCritical},
		{"exactly half of min is low, not critical", 270, 540, 1822, constants.RowLow},
		{"above range", 2000, 540, 1822, constants.RowHigh},
		{"exactly 1.5x max is high, not critical", 2733, 540, 1822, constants.RowHigh},
		{"above critical cutoff", 2734, 540, 1822, constants.RowCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.value, tt.min, tt.max))
		})
	}
}

// The four labels must partition the real line for any valid range: exactly
// one label per value, no gaps.
func TestClassifyPartitions(t *testing.T) {
	min, max := 10.0, 50.0
	for v := -20.0; v <= 120.0; v += 0.25 {
		got := Classify(v, min, max)
		switch {
		case v < min*0.5:
			assert.Equal(t, constants.RowCritical, got, "value %v", v)
		case v < min:
			assert.Equal(t, constants.RowLow, got, "value %v", v)
		case v <= max:
			assert.Equal(t, constants.RowNormal, got, "value %v", v)
		case v <= max*1.5:
			assert.Equal(t, constants.RowHigh, got, "value %v", v)
		default:
			assert.Equal(t, constants.RowCritical, got, "value %v", v)
		}
	}
}

func TestOverall(t *testing.T) {
	assert.Equal(t, constants.OverallNormal, Overall(nil))
	assert.Equal(t, constants.OverallNormal,
		Overall([]constants.RowStatus{constants.RowNormal, constants.RowNormal}))
	assert.Equal(t, constants.OverallAbnormal,
		Overall([]constants.RowStatus{constants.RowNormal, constants.RowHigh}))
	assert.Equal(t, constants.OverallAbnormal,
		Overall([]constants.RowStatus{constants.RowLow}))
	assert.Equal(t, constants.OverallCritical,
		Overall([]constants.RowStatus{constants.RowLow, constants.RowCritical, constants.RowNormal}))
}
