// Code generated by ent, DO NOT EDIT.

package labresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldJobID, v))
}

// PanelType applies equality check predicate on the "panel_type" field. It's identical to PanelTypeEQ.
func PanelType(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldPanelType, v))
}

// ReportDate applies equality check predicate on the "report_date" field. It's identical to ReportDateEQ.
func ReportDate(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReportDate, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldSummary, v))
}

// DoctorNotes applies equality check predicate on the "doctor_notes" field. It's identical to DoctorNotesEQ.
func DoctorNotes(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldDoctorNotes, v))
}

// TotalTests applies equality check predicate on the "total_tests" field. It's identical to TotalTestsEQ.
func TotalTests(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldTotalTests, v))
}

// NormalCount applies equality check predicate on the "normal_count" field. It's identical to NormalCountEQ.
func NormalCount(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldNormalCount, v))
}

// AbnormalCount applies equality check predicate on the "abnormal_count" field. It's identical to AbnormalCountEQ.
func AbnormalCount(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldAbnormalCount, v))
}

// CriticalCount applies equality check predicate on the "critical_count" field. It's identical to CriticalCountEQ.
func CriticalCount(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCriticalCount, v))
}

// OverallStatus applies equality check predicate on the "overall_status" field. It's identical to OverallStatusEQ.
func OverallStatus(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldOverallStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldJobID, v))
}

// PanelTypeEQ applies the EQ predicate on the "panel_type" field.
func PanelTypeEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldPanelType, v))
}

// PanelTypeNEQ applies the NEQ predicate on the "panel_type" field.
func PanelTypeNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldPanelType, v))
}

// PanelTypeIn applies the In predicate on the "panel_type" field.
func PanelTypeIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldPanelType, vs...))
}

// PanelTypeNotIn applies the NotIn predicate on the "panel_type" field.
func PanelTypeNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldPanelType, vs...))
}

// PanelTypeGT applies the GT predicate on the "panel_type" field.
func PanelTypeGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldPanelType, v))
}

// PanelTypeGTE applies the GTE predicate on the "panel_type" field.
func PanelTypeGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldPanelType, v))
}

// PanelTypeLT applies the LT predicate on the "panel_type" field.
func PanelTypeLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldPanelType, v))
}

// PanelTypeLTE applies the LTE predicate on the "panel_type" field.
func PanelTypeLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldPanelType, v))
}

// PanelTypeContains applies the Contains predicate on the "panel_type" field.
func PanelTypeContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldPanelType, v))
}

// PanelTypeHasPrefix applies the HasPrefix predicate on the "panel_type" field.
func PanelTypeHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldPanelType, v))
}

// PanelTypeHasSuffix applies the HasSuffix predicate on the "panel_type" field.
func PanelTypeHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldPanelType, v))
}

// PanelTypeEqualFold applies the EqualFold predicate on the "panel_type" field.
func PanelTypeEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldPanelType, v))
}

// PanelTypeContainsFold applies the ContainsFold predicate on the "panel_type" field.
func PanelTypeContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldPanelType, v))
}

// ReportDateEQ applies the EQ predicate on the "report_date" field.
func ReportDateEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReportDate, v))
}

// ReportDateNEQ applies the NEQ predicate on the "report_date" field.
func ReportDateNEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldReportDate, v))
}

// ReportDateIn applies the In predicate on the "report_date" field.
func ReportDateIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldReportDate, vs...))
}

// ReportDateNotIn applies the NotIn predicate on the "report_date" field.
func ReportDateNotIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldReportDate, vs...))
}

// ReportDateGT applies the GT predicate on the "report_date" field.
func ReportDateGT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldReportDate, v))
}

// ReportDateGTE applies the GTE predicate on the "report_date" field.
func ReportDateGTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldReportDate, v))
}

// ReportDateLT applies the LT predicate on the "report_date" field.
func ReportDateLT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldReportDate, v))
}

// ReportDateLTE applies the LTE predicate on the "report_date" field.
func ReportDateLTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldReportDate, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldSummary, v))
}

// DoctorNotesEQ applies the EQ predicate on the "doctor_notes" field.
func DoctorNotesEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldDoctorNotes, v))
}

// DoctorNotesNEQ applies the NEQ predicate on the "doctor_notes" field.
func DoctorNotesNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldDoctorNotes, v))
}

// DoctorNotesIn applies the In predicate on the "doctor_notes" field.
func DoctorNotesIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldDoctorNotes, vs...))
}

// DoctorNotesNotIn applies the NotIn predicate on the "doctor_notes" field.
func DoctorNotesNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldDoctorNotes, vs...))
}

// DoctorNotesGT applies the GT predicate on the "doctor_notes" field.
func DoctorNotesGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldDoctorNotes, v))
}

// DoctorNotesGTE applies the GTE predicate on the "doctor_notes" field.
func DoctorNotesGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldDoctorNotes, v))
}

// DoctorNotesLT applies the LT predicate on the "doctor_notes" field.
func DoctorNotesLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldDoctorNotes, v))
}

// DoctorNotesLTE applies the LTE predicate on the "doctor_notes" field.
func DoctorNotesLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldDoctorNotes, v))
}

// DoctorNotesContains applies the Contains predicate on the "doctor_notes" field.
func DoctorNotesContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldDoctorNotes, v))
}

// DoctorNotesHasPrefix applies the HasPrefix predicate on the "doctor_notes" field.
func DoctorNotesHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldDoctorNotes, v))
}

// DoctorNotesHasSuffix applies the HasSuffix predicate on the "doctor_notes" field.
func DoctorNotesHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldDoctorNotes, v))
}

// DoctorNotesIsNil applies the IsNil predicate on the "doctor_notes" field.
func DoctorNotesIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldDoctorNotes))
}

// DoctorNotesNotNil applies the NotNil predicate on the "doctor_notes" field.
func DoctorNotesNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldDoctorNotes))
}

// DoctorNotesEqualFold applies the EqualFold predicate on the "doctor_notes" field.
func DoctorNotesEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldDoctorNotes, v))
}

// DoctorNotesContainsFold applies the ContainsFold predicate on the "doctor_notes" field.
func DoctorNotesContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldDoctorNotes, v))
}

// TotalTestsEQ applies the EQ predicate on the "total_tests" field.
func TotalTestsEQ(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldTotalTests, v))
}

// TotalTestsNEQ applies the NEQ predicate on the "total_tests" field.
func TotalTestsNEQ(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldTotalTests, v))
}

// TotalTestsIn applies the In predicate on the "total_tests" field.
func TotalTestsIn(vs ...int) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldTotalTests, vs...))
}

// TotalTestsNotIn applies the NotIn predicate on the "total_tests" field.
func TotalTestsNotIn(vs ...int) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldTotalTests, vs...))
}

// TotalTestsGT applies the GT predicate on the "total_tests" field.
func TotalTestsGT(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldTotalTests, v))
}

// TotalTestsGTE applies the GTE predicate on the "total_tests" field.
func TotalTestsGTE(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldTotalTests, v))
}

// TotalTestsLT applies the LT predicate on the "total_tests" field.
func TotalTestsLT(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldTotalTests, v))
}

// TotalTestsLTE applies the LTE predicate on the "total_tests" field.
func TotalTestsLTE(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldTotalTests, v))
}

// NormalCountEQ applies the EQ predicate on the "normal_count" field.
func NormalCountEQ(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldNormalCount, v))
}

// NormalCountNEQ applies the NEQ predicate on the "normal_count" field.
func NormalCountNEQ(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldNormalCount, v))
}

// NormalCountIn applies the In predicate on the "normal_count" field.
func NormalCountIn(vs ...int) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldNormalCount, vs...))
}

// NormalCountNotIn applies the NotIn predicate on the "normal_count" field.
func NormalCountNotIn(vs ...int) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldNormalCount, vs...))
}

// NormalCountGT applies the GT predicate on the "normal_count" field.
func NormalCountGT(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldNormalCount, v))
}

// NormalCountGTE applies the GTE predicate on the "normal_count" field.
func NormalCountGTE(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldNormalCount, v))
}

// NormalCountLT applies the LT predicate on the "normal_count" field.
func NormalCountLT(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldNormalCount, v))
}

// NormalCountLTE applies the LTE predicate on the "normal_count" field.
func NormalCountLTE(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldNormalCount, v))
}

// AbnormalCountEQ applies the EQ predicate on the "abnormal_count" field.
func AbnormalCountEQ(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldAbnormalCount, v))
}

// AbnormalCountNEQ applies the NEQ predicate on the "abnormal_count" field.
func AbnormalCountNEQ(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldAbnormalCount, v))
}

// AbnormalCountIn applies the In predicate on the "abnormal_count" field.
func AbnormalCountIn(vs ...int) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldAbnormalCount, vs...))
}

// AbnormalCountNotIn applies the NotIn predicate on the "abnormal_count" field.
func AbnormalCountNotIn(vs ...int) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldAbnormalCount, vs...))
}

// AbnormalCountGT applies the GT predicate on the "abnormal_count" field.
func AbnormalCountGT(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldAbnormalCount, v))
}

// AbnormalCountGTE applies the GTE predicate on the "abnormal_count" field.
func AbnormalCountGTE(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldAbnormalCount, v))
}

// AbnormalCountLT applies the LT predicate on the "abnormal_count" field.
func AbnormalCountLT(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldAbnormalCount, v))
}

// AbnormalCountLTE applies the LTE predicate on the "abnormal_count" field.
func AbnormalCountLTE(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldAbnormalCount, v))
}

// CriticalCountEQ applies the EQ predicate on the "critical_count" field.
func CriticalCountEQ(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCriticalCount, v))
}

// CriticalCountNEQ applies the NEQ predicate on the "critical_count" field.
func CriticalCountNEQ(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldCriticalCount, v))
}

// CriticalCountIn applies the In predicate on the "critical_count" field.
func CriticalCountIn(vs ...int) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldCriticalCount, vs...))
}

// CriticalCountNotIn applies the NotIn predicate on the "critical_count" field.
func CriticalCountNotIn(vs ...int) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldCriticalCount, vs...))
}

// CriticalCountGT applies the GT predicate on the "critical_count" field.
func CriticalCountGT(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldCriticalCount, v))
}

// CriticalCountGTE applies the GTE predicate on the "critical_count" field.
func CriticalCountGTE(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldCriticalCount, v))
}

// CriticalCountLT applies the LT predicate on the "critical_count" field.
func CriticalCountLT(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldCriticalCount, v))
}

// CriticalCountLTE applies the LTE predicate on the "critical_count" field.
func CriticalCountLTE(v int) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldCriticalCount, v))
}

// OverallStatusEQ applies the EQ predicate on the "overall_status" field.
func OverallStatusEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldOverallStatus, v))
}

// OverallStatusNEQ applies the NEQ predicate on the "overall_status" field.
func OverallStatusNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldOverallStatus, v))
}

// OverallStatusIn applies the In predicate on the "overall_status" field.
func OverallStatusIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldOverallStatus, vs...))
}

// OverallStatusNotIn applies the NotIn predicate on the "overall_status" field.
func OverallStatusNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldOverallStatus, vs...))
}

// OverallStatusGT applies the GT predicate on the "overall_status" field.
func OverallStatusGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldOverallStatus, v))
}

// OverallStatusGTE applies the GTE predicate on the "overall_status" field.
func OverallStatusGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldOverallStatus, v))
}

// OverallStatusLT applies the LT predicate on the "overall_status" field.
func OverallStatusLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldOverallStatus, v))
}

// OverallStatusLTE applies the LTE predicate on the "overall_status" field.
func OverallStatusLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldOverallStatus, v))
}

// OverallStatusContains applies the Contains predicate on the "overall_status" field.
func OverallStatusContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldOverallStatus, v))
}

// OverallStatusHasPrefix applies the HasPrefix predicate on the "overall_status" field.
func OverallStatusHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldOverallStatus, v))
}

// OverallStatusHasSuffix applies the HasSuffix predicate on the "overall_status" field.
func OverallStatusHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldOverallStatus, v))
}

// OverallStatusEqualFold applies the EqualFold predicate on the "overall_status" field.
func OverallStatusEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldOverallStatus, v))
}

// OverallStatusContainsFold applies the ContainsFold predicate on the "overall_status" field.
func OverallStatusContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldOverallStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.NotPredicates(p))
}
