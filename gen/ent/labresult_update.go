// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/labresult"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/predicate"
)

// LabResultUpdate is the builder for updating LabResult entities.
type LabResultUpdate struct {
	config
	hooks    []Hook
	mutation *LabResultMutation
}

// Where appends a list predicates to the LabResultUpdate builder.
func (_u *LabResultUpdate) Where(ps ...predicate.LabResult) *LabResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *LabResultUpdate) SetJobID(v uuid.UUID) *LabResultUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableJobID(v *uuid.UUID) *LabResultUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPanelType sets the "panel_type" field.
func (_u *LabResultUpdate) SetPanelType(v string) *LabResultUpdate {
	_u.mutation.SetPanelType(v)
	return _u
}

// SetNillablePanelType sets the "panel_type" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillablePanelType(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetPanelType(*v)
	}
	return _u
}

// SetReportDate sets the "report_date" field.
func (_u *LabResultUpdate) SetReportDate(v time.Time) *LabResultUpdate {
	_u.mutation.SetReportDate(v)
	return _u
}

// SetNillableReportDate sets the "report_date" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableReportDate(v *time.Time) *LabResultUpdate {
	if v != nil {
		_u.SetReportDate(*v)
	}
	return _u
}

// SetRows sets the "rows" field.
func (_u *LabResultUpdate) SetRows(v json.RawMessage) *LabResultUpdate {
	_u.mutation.SetRows(v)
	return _u
}

// AppendRows appends value to the "rows" field.
func (_u *LabResultUpdate) AppendRows(v json.RawMessage) *LabResultUpdate {
	_u.mutation.AppendRows(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *LabResultUpdate) SetSummary(v string) *LabResultUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableSummary(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetDoctorNotes sets the "doctor_notes" field.
func (_u *LabResultUpdate) SetDoctorNotes(v string) *LabResultUpdate {
	_u.mutation.SetDoctorNotes(v)
	return _u
}

// SetNillableDoctorNotes sets the "doctor_notes" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableDoctorNotes(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetDoctorNotes(*v)
	}
	return _u
}

// ClearDoctorNotes clears the value of the "doctor_notes" field.
func (_u *LabResultUpdate) ClearDoctorNotes() *LabResultUpdate {
	_u.mutation.ClearDoctorNotes()
	return _u
}

// SetTotalTests sets the "total_tests" field.
func (_u *LabResultUpdate) SetTotalTests(v int) *LabResultUpdate {
	_u.mutation.ResetTotalTests()
	_u.mutation.SetTotalTests(v)
	return _u
}

// SetNillableTotalTests sets the "total_tests" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableTotalTests(v *int) *LabResultUpdate {
	if v != nil {
		_u.SetTotalTests(*v)
	}
	return _u
}

// AddTotalTests adds value to the "total_tests" field.
func (_u *LabResultUpdate) AddTotalTests(v int) *LabResultUpdate {
	_u.mutation.AddTotalTests(v)
	return _u
}

// SetNormalCount sets the "normal_count" field.
func (_u *LabResultUpdate) SetNormalCount(v int) *LabResultUpdate {
	_u.mutation.ResetNormalCount()
	_u.mutation.SetNormalCount(v)
	return _u
}

// SetNillableNormalCount sets the "normal_count" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableNormalCount(v *int) *LabResultUpdate {
	if v != nil {
		_u.SetNormalCount(*v)
	}
	return _u
}

// AddNormalCount adds value to the "normal_count" field.
func (_u *LabResultUpdate) AddNormalCount(v int) *LabResultUpdate {
	_u.mutation.AddNormalCount(v)
	return _u
}

// SetAbnormalCount sets the "abnormal_count" field.
func (_u *LabResultUpdate) SetAbnormalCount(v int) *LabResultUpdate {
	_u.mutation.ResetAbnormalCount()
	_u.mutation.SetAbnormalCount(v)
	return _u
}

// SetNillableAbnormalCount sets the "abnormal_count" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableAbnormalCount(v *int) *LabResultUpdate {
	if v != nil {
		_u.SetAbnormalCount(*v)
	}
	return _u
}

// AddAbnormalCount adds value to the "abnormal_count" field.
func (_u *LabResultUpdate) AddAbnormalCount(v int) *LabResultUpdate {
	_u.mutation.AddAbnormalCount(v)
	return _u
}

// SetCriticalCount sets the "critical_count" field.
func (_u *LabResultUpdate) SetCriticalCount(v int) *LabResultUpdate {
	_u.mutation.ResetCriticalCount()
	_u.mutation.SetCriticalCount(v)
	return _u
}

// SetNillableCriticalCount sets the "critical_count" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableCriticalCount(v *int) *LabResultUpdate {
	if v != nil {
		_u.SetCriticalCount(*v)
	}
	return _u
}

// AddCriticalCount adds value to the "critical_count" field.
func (_u *LabResultUpdate) AddCriticalCount(v int) *LabResultUpdate {
	_u.mutation.AddCriticalCount(v)
	return _u
}

// SetOverallStatus sets the "overall_status" field.
func (_u *LabResultUpdate) SetOverallStatus(v string) *LabResultUpdate {
	_u.mutation.SetOverallStatus(v)
	return _u
}

// SetNillableOverallStatus sets the "overall_status" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableOverallStatus(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetOverallStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LabResultUpdate) SetCreatedAt(v time.Time) *LabResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableCreatedAt(v *time.Time) *LabResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the LabResultMutation object of the builder.
func (_u *LabResultUpdate) Mutation() *LabResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabResultUpdate) check() error {
	if v, ok := _u.mutation.PanelType(); ok {
		if err := labresult.PanelTypeValidator(v); err != nil {
			return &ValidationError{Name: "panel_type", err: fmt.Errorf(`ent: validator failed for field "LabResult.panel_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallStatus(); ok {
		if err := labresult.OverallStatusValidator(v); err != nil {
			return &ValidationError{Name: "overall_status", err: fmt.Errorf(`ent: validator failed for field "LabResult.overall_status": %w`, err)}
		}
	}
	return nil
}

func (_u *LabResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labresult.Table, labresult.Columns, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(labresult.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PanelType(); ok {
		_spec.SetField(labresult.FieldPanelType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReportDate(); ok {
		_spec.SetField(labresult.FieldReportDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(labresult.FieldRows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, labresult.FieldRows, value)
		})
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(labresult.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorNotes(); ok {
		_spec.SetField(labresult.FieldDoctorNotes, field.TypeString, value)
	}
	if _u.mutation.DoctorNotesCleared() {
		_spec.ClearField(labresult.FieldDoctorNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTests(); ok {
		_spec.SetField(labresult.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTests(); ok {
		_spec.AddField(labresult.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NormalCount(); ok {
		_spec.SetField(labresult.FieldNormalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNormalCount(); ok {
		_spec.AddField(labresult.FieldNormalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AbnormalCount(); ok {
		_spec.SetField(labresult.FieldAbnormalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAbnormalCount(); ok {
		_spec.AddField(labresult.FieldAbnormalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticalCount(); ok {
		_spec.SetField(labresult.FieldCriticalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCriticalCount(); ok {
		_spec.AddField(labresult.FieldCriticalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallStatus(); ok {
		_spec.SetField(labresult.FieldOverallStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(labresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabResultUpdateOne is the builder for updating a single LabResult entity.
type LabResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabResultMutation
}

// SetJobID sets the "job_id" field.
func (_u *LabResultUpdateOne) SetJobID(v uuid.UUID) *LabResultUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableJobID(v *uuid.UUID) *LabResultUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPanelType sets the "panel_type" field.
func (_u *LabResultUpdateOne) SetPanelType(v string) *LabResultUpdateOne {
	_u.mutation.SetPanelType(v)
	return _u
}

// SetNillablePanelType sets the "panel_type" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillablePanelType(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetPanelType(*v)
	}
	return _u
}

// SetReportDate sets the "report_date" field.
func (_u *LabResultUpdateOne) SetReportDate(v time.Time) *LabResultUpdateOne {
	_u.mutation.SetReportDate(v)
	return _u
}

// SetNillableReportDate sets the "report_date" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableReportDate(v *time.Time) *LabResultUpdateOne {
	if v != nil {
		_u.SetReportDate(*v)
	}
	return _u
}

// SetRows sets the "rows" field.
func (_u *LabResultUpdateOne) SetRows(v json.RawMessage) *LabResultUpdateOne {
	_u.mutation.SetRows(v)
	return _u
}

// AppendRows appends value to the "rows" field.
func (_u *LabResultUpdateOne) AppendRows(v json.RawMessage) *LabResultUpdateOne {
	_u.mutation.AppendRows(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *LabResultUpdateOne) SetSummary(v string) *LabResultUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableSummary(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetDoctorNotes sets the "doctor_notes" field.
func (_u *LabResultUpdateOne) SetDoctorNotes(v string) *LabResultUpdateOne {
	_u.mutation.SetDoctorNotes(v)
	return _u
}

// SetNillableDoctorNotes sets the "doctor_notes" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableDoctorNotes(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetDoctorNotes(*v)
	}
	return _u
}

// ClearDoctorNotes clears the value of the "doctor_notes" field.
func (_u *LabResultUpdateOne) ClearDoctorNotes() *LabResultUpdateOne {
	_u.mutation.ClearDoctorNotes()
	return _u
}

// SetTotalTests sets the "total_tests" field.
func (_u *LabResultUpdateOne) SetTotalTests(v int) *LabResultUpdateOne {
	_u.mutation.ResetTotalTests()
	_u.mutation.SetTotalTests(v)
	return _u
}

// SetNillableTotalTests sets the "total_tests" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableTotalTests(v *int) *LabResultUpdateOne {
	if v != nil {
		_u.SetTotalTests(*v)
	}
	return _u
}

// AddTotalTests adds value to the "total_tests" field.
func (_u *LabResultUpdateOne) AddTotalTests(v int) *LabResultUpdateOne {
	_u.mutation.AddTotalTests(v)
	return _u
}

// SetNormalCount sets the "normal_count" field.
func (_u *LabResultUpdateOne) SetNormalCount(v int) *LabResultUpdateOne {
	_u.mutation.ResetNormalCount()
	_u.mutation.SetNormalCount(v)
	return _u
}

// SetNillableNormalCount sets the "normal_count" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableNormalCount(v *int) *LabResultUpdateOne {
	if v != nil {
		_u.SetNormalCount(*v)
	}
	return _u
}

// AddNormalCount adds value to the "normal_count" field.
func (_u *LabResultUpdateOne) AddNormalCount(v int) *LabResultUpdateOne {
	_u.mutation.AddNormalCount(v)
	return _u
}

// SetAbnormalCount sets the "abnormal_count" field.
func (_u *LabResultUpdateOne) SetAbnormalCount(v int) *LabResultUpdateOne {
	_u.mutation.ResetAbnormalCount()
	_u.mutation.SetAbnormalCount(v)
	return _u
}

// SetNillableAbnormalCount sets the "abnormal_count" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableAbnormalCount(v *int) *LabResultUpdateOne {
	if v != nil {
		_u.SetAbnormalCount(*v)
	}
	return _u
}

// AddAbnormalCount adds value to the "abnormal_count" field.
func (_u *LabResultUpdateOne) AddAbnormalCount(v int) *LabResultUpdateOne {
	_u.mutation.AddAbnormalCount(v)
	return _u
}

// SetCriticalCount sets the "critical_count" field.
func (_u *LabResultUpdateOne) SetCriticalCount(v int) *LabResultUpdateOne {
	_u.mutation.ResetCriticalCount()
	_u.mutation.SetCriticalCount(v)
	return _u
}

// SetNillableCriticalCount sets the "critical_count" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableCriticalCount(v *int) *LabResultUpdateOne {
	if v != nil {
		_u.SetCriticalCount(*v)
	}
	return _u
}

// AddCriticalCount adds value to the "critical_count" field.
func (_u *LabResultUpdateOne) AddCriticalCount(v int) *LabResultUpdateOne {
	_u.mutation.AddCriticalCount(v)
	return _u
}

// SetOverallStatus sets the "overall_status" field.
func (_u *LabResultUpdateOne) SetOverallStatus(v string) *LabResultUpdateOne {
	_u.mutation.SetOverallStatus(v)
	return _u
}

// SetNillableOverallStatus sets the "overall_status" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableOverallStatus(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetOverallStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LabResultUpdateOne) SetCreatedAt(v time.Time) *LabResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableCreatedAt(v *time.Time) *LabResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the LabResultMutation object of the builder.
func (_u *LabResultUpdateOne) Mutation() *LabResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the LabResultUpdate builder.
func (_u *LabResultUpdateOne) Where(ps ...predicate.LabResult) *LabResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabResultUpdateOne) Select(field string, fields ...string) *LabResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabResult entity.
func (_u *LabResultUpdateOne) Save(ctx context.Context) (*LabResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabResultUpdateOne) SaveX(ctx context.Context) *LabResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabResultUpdateOne) check() error {
	if v, ok := _u.mutation.PanelType(); ok {
		if err := labresult.PanelTypeValidator(v); err != nil {
			return &ValidationError{Name: "panel_type", err: fmt.Errorf(`ent: validator failed for field "LabResult.panel_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallStatus(); ok {
		if err := labresult.OverallStatusValidator(v); err != nil {
			return &ValidationError{Name: "overall_status", err: fmt.Errorf(`ent: validator failed for field "LabResult.overall_status": %w`, err)}
		}
	}
	return nil
}

func (_u *LabResultUpdateOne) sqlSave(ctx context.Context) (_node *LabResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labresult.Table, labresult.Columns, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LabResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labresult.FieldID)
		for _, f := range fields {
			if !labresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != labresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(labresult.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PanelType(); ok {
		_spec.SetField(labresult.FieldPanelType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReportDate(); ok {
		_spec.SetField(labresult.FieldReportDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(labresult.FieldRows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, labresult.FieldRows, value)
		})
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(labresult.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorNotes(); ok {
		_spec.SetField(labresult.FieldDoctorNotes, field.TypeString, value)
	}
	if _u.mutation.DoctorNotesCleared() {
		_spec.ClearField(labresult.FieldDoctorNotes, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTests(); ok {
		_spec.SetField(labresult.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTests(); ok {
		_spec.AddField(labresult.FieldTotalTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NormalCount(); ok {
		_spec.SetField(labresult.FieldNormalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNormalCount(); ok {
		_spec.AddField(labresult.FieldNormalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AbnormalCount(); ok {
		_spec.SetField(labresult.FieldAbnormalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAbnormalCount(); ok {
		_spec.AddField(labresult.FieldAbnormalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticalCount(); ok {
		_spec.SetField(labresult.FieldCriticalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCriticalCount(); ok {
		_spec.AddField(labresult.FieldCriticalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallStatus(); ok {
		_spec.SetField(labresult.FieldOverallStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(labresult.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &LabResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
