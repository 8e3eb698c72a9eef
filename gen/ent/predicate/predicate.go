// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisJob is the predicate function for analysisjob builders.
type AnalysisJob func(*sql.Selector)

// LabResult is the predicate function for labresult builders.
type LabResult func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// ReportFile is the predicate function for reportfile builders.
type ReportFile func(*sql.Selector)
