// Code generated by ent, DO NOT EDIT.

package labresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the labresult type in the database.
	Label = "lab_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldPanelType holds the string denoting the panel_type field in the database.
	FieldPanelType = "panel_type"
	// FieldReportDate holds the string denoting the report_date field in the database.
	FieldReportDate = "report_date"
	// FieldRows holds the string denoting the rows field in the database.
	FieldRows = "rows"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldDoctorNotes holds the string denoting the doctor_notes field in the database.
	FieldDoctorNotes = "doctor_notes"
	// FieldTotalTests holds the string denoting the total_tests field in the database.
	FieldTotalTests = "total_tests"
	// FieldNormalCount holds the string denoting the normal_count field in the database.
	FieldNormalCount = "normal_count"
	// FieldAbnormalCount holds the string denoting the abnormal_count field in the database.
	FieldAbnormalCount = "abnormal_count"
	// FieldCriticalCount holds the string denoting the critical_count field in the database.
	FieldCriticalCount = "critical_count"
	// FieldOverallStatus holds the string denoting the overall_status field in the database.
	FieldOverallStatus = "overall_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the labresult in the database.
	Table = "lab_result"
)

// Columns holds all SQL columns for labresult fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldPanelType,
	FieldReportDate,
	FieldRows,
	FieldSummary,
	FieldDoctorNotes,
	FieldTotalTests,
	FieldNormalCount,
	FieldAbnormalCount,
	FieldCriticalCount,
	FieldOverallStatus,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PanelTypeValidator is a validator for the "panel_type" field. It is called by the builders before save.
	PanelTypeValidator func(string) error
	// DefaultTotalTests holds the default value on creation for the "total_tests" field.
	DefaultTotalTests int
	// DefaultNormalCount holds the default value on creation for the "normal_count" field.
	DefaultNormalCount int
	// DefaultAbnormalCount holds the default value on creation for the "abnormal_count" field.
	DefaultAbnormalCount int
	// DefaultCriticalCount holds the default value on creation for the "critical_count" field.
	DefaultCriticalCount int
	// OverallStatusValidator is a validator for the "overall_status" field. It is called by the builders before save.
	OverallStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the LabResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByPanelType orders the results by the panel_type field.
func ByPanelType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPanelType, opts...).ToFunc()
}

// ByReportDate orders the results by the report_date field.
func ByReportDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportDate, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByDoctorNotes orders the results by the doctor_notes field.
func ByDoctorNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorNotes, opts...).ToFunc()
}

// ByTotalTests orders the results by the total_tests field.
func ByTotalTests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTests, opts...).ToFunc()
}

// ByNormalCount orders the results by the normal_count field.
func ByNormalCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalCount, opts...).ToFunc()
}

// ByAbnormalCount orders the results by the abnormal_count field.
func ByAbnormalCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbnormalCount, opts...).ToFunc()
}

// ByCriticalCount orders the results by the critical_count field.
func ByCriticalCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriticalCount, opts...).ToFunc()
}

// ByOverallStatus orders the results by the overall_status field.
func ByOverallStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
