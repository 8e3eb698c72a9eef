// Package classify maps a measured value against its reference range.
package classify

import "github.com/joseph-ayodele/labreports-tracker/constants"

// Critical multipliers. A value below half the lower bound, or above one and
// a half times the upper bound, is critical. The comparisons are strict:
// value == min*0.5 classifies as low, value == max*1.5 as high.
const (
	criticalLowFactor  = 0.5
	criticalHighFactor = 1.5
)

// Classify returns the status of value against the inclusive range [min, max].
// The four regions partition the real line: below-critical, low, normal/high
// boundaries are decided in this exact order.
func Classify(value, min, max float64) constants.RowStatus {
	if value < min {
		if value < min*criticalLowFactor {
			return constants.RowCritical
		}
		return constants.RowLow
	}
	if value > max {
		if value > max*criticalHighFactor {
			return constants.RowCritical
		}
		return constants.RowHigh
	}
	return constants.RowNormal
}

// Overall rolls up row statuses worst-case: critical > abnormal > normal.
func Overall(statuses []constants.RowStatus) constants.OverallStatus {
	overall := constants.OverallNormal
	for _, s := range statuses {
		switch {
		case s == constants.RowCritical:
			return constants.OverallCritical
		case s.Abnormal():
			overall = constants.OverallAbnormal
		}
	}
	return overall
}
