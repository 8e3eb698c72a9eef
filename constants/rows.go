package constants

// RowStatus classifies one test value against its reference range.
type RowStatus string

const (
	RowNormal   RowStatus = "normal"
	RowLow      RowStatus = "low"
	RowHigh     RowStatus = "high"
	RowCritical RowStatus = "critical"
)

// RowStatuses holds the allowed values for a row's status field.
var RowStatuses = []string{
	string(RowNormal),
	string(RowLow),
	string(RowHigh),
	string(RowCritical),
}

// Abnormal reports whether the row is outside its reference range but not
// critically so.
func (s RowStatus) Abnormal() bool {
	return s == RowLow || s == RowHigh
}

// OverallStatus is the worst-case rollup of a result's rows.
type OverallStatus string

const (
	OverallNormal   OverallStatus = "normal"
	OverallAbnormal OverallStatus = "abnormal"
	OverallCritical OverallStatus = "critical"
)

// OverallStatuses holds the allowed values for a result's overall_status field.
var OverallStatuses = []string{
	string(OverallNormal),
	string(OverallAbnormal),
	string(OverallCritical),
}
