// Code generated by ent, DO NOT EDIT.

package reportfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEQ(FieldProfileID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEQ(FieldFilename, v))
}

// ReportText applies equality check predicate on the "report_text" field. It's identical to ReportTextEQ.
func ReportText(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEQ(FieldReportText, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEQ(FieldUploadedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldNotIn(FieldProfileID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldContainsFold(FieldFilename, v))
}

// ReportTextEQ applies the EQ predicate on the "report_text" field.
func ReportTextEQ(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEQ(FieldReportText, v))
}

// ReportTextNEQ applies the NEQ predicate on the "report_text" field.
func ReportTextNEQ(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldNEQ(FieldReportText, v))
}

// ReportTextIn applies the In predicate on the "report_text" field.
func ReportTextIn(vs ...string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldIn(FieldReportText, vs...))
}

// ReportTextNotIn applies the NotIn predicate on the "report_text" field.
func ReportTextNotIn(vs ...string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldNotIn(FieldReportText, vs...))
}

// ReportTextGT applies the GT predicate on the "report_text" field.
func ReportTextGT(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldGT(FieldReportText, v))
}

// ReportTextGTE applies the GTE predicate on the "report_text" field.
func ReportTextGTE(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldGTE(FieldReportText, v))
}

// ReportTextLT applies the LT predicate on the "report_text" field.
func ReportTextLT(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldLT(FieldReportText, v))
}

// ReportTextLTE applies the LTE predicate on the "report_text" field.
func ReportTextLTE(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldLTE(FieldReportText, v))
}

// ReportTextContains applies the Contains predicate on the "report_text" field.
func ReportTextContains(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldContains(FieldReportText, v))
}

// ReportTextHasPrefix applies the HasPrefix predicate on the "report_text" field.
func ReportTextHasPrefix(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldHasPrefix(FieldReportText, v))
}

// ReportTextHasSuffix applies the HasSuffix predicate on the "report_text" field.
func ReportTextHasSuffix(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldHasSuffix(FieldReportText, v))
}

// ReportTextEqualFold applies the EqualFold predicate on the "report_text" field.
func ReportTextEqualFold(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEqualFold(FieldReportText, v))
}

// ReportTextContainsFold applies the ContainsFold predicate on the "report_text" field.
func ReportTextContainsFold(v string) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldContainsFold(FieldReportText, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.ReportFile {
	return predicate.ReportFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.ReportFile {
	return predicate.ReportFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.ReportFile {
	return predicate.ReportFile(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.ReportFile {
	return predicate.ReportFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.AnalysisJob) predicate.ReportFile {
	return predicate.ReportFile(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReportFile) predicate.ReportFile {
	return predicate.ReportFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReportFile) predicate.ReportFile {
	return predicate.ReportFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReportFile) predicate.ReportFile {
	return predicate.ReportFile(sql.NotPredicates(p))
}
