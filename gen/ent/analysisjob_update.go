// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/analysisjob"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/predicate"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/profile"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/reportfile"
)

// AnalysisJobUpdate is the builder for updating AnalysisJob entities.
type AnalysisJobUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdate) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *AnalysisJobUpdate) SetFileID(v uuid.UUID) *AnalysisJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableFileID(v *uuid.UUID) *AnalysisJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *AnalysisJobUpdate) SetProfileID(v uuid.UUID) *AnalysisJobUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableProfileID(v *uuid.UUID) *AnalysisJobUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetResultID sets the "result_id" field.
func (_u *AnalysisJobUpdate) SetResultID(v uuid.UUID) *AnalysisJobUpdate {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableResultID(v *uuid.UUID) *AnalysisJobUpdate {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// ClearResultID clears the value of the "result_id" field.
func (_u *AnalysisJobUpdate) ClearResultID() *AnalysisJobUpdate {
	_u.mutation.ClearResultID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdate) SetStatus(v string) *AnalysisJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableStatus(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AnalysisJobUpdate) SetProgress(v int) *AnalysisJobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableProgress(v *int) *AnalysisJobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AnalysisJobUpdate) AddProgress(v int) *AnalysisJobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdate) SetErrorMessage(v string) *AnalysisJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableErrorMessage(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdate) ClearErrorMessage() *AnalysisJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisJobUpdate) SetCreatedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCreatedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisJobUpdate) SetUpdatedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFile sets the "file" edge to the ReportFile entity.
func (_u *AnalysisJobUpdate) SetFile(v *ReportFile) *AnalysisJobUpdate {
	return _u.SetFileID(v.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *AnalysisJobUpdate) SetProfile(v *Profile) *AnalysisJobUpdate {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdate) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ReportFile entity.
func (_u *AnalysisJobUpdate) ClearFile() *AnalysisJobUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *AnalysisJobUpdate) ClearProfile() *AnalysisJobUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysisjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := analysisjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.progress": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisJob.file"`)
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisJob.profile"`)
	}
	return nil
}

func (_u *AnalysisJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(analysisjob.FieldResultID, field.TypeUUID, value)
	}
	if _u.mutation.ResultIDCleared() {
		_spec.ClearField(analysisjob.FieldResultID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(analysisjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(analysisjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analysisjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.FileTable,
			Columns: []string{analysisjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.FileTable,
			Columns: []string{analysisjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.ProfileTable,
			Columns: []string{analysisjob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.ProfileTable,
			Columns: []string{analysisjob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisJobUpdateOne is the builder for updating a single AnalysisJob entity.
type AnalysisJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// SetFileID sets the "file_id" field.
func (_u *AnalysisJobUpdateOne) SetFileID(v uuid.UUID) *AnalysisJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableFileID(v *uuid.UUID) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *AnalysisJobUpdateOne) SetProfileID(v uuid.UUID) *AnalysisJobUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableProfileID(v *uuid.UUID) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetResultID sets the "result_id" field.
func (_u *AnalysisJobUpdateOne) SetResultID(v uuid.UUID) *AnalysisJobUpdateOne {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableResultID(v *uuid.UUID) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// ClearResultID clears the value of the "result_id" field.
func (_u *AnalysisJobUpdateOne) ClearResultID() *AnalysisJobUpdateOne {
	_u.mutation.ClearResultID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdateOne) SetStatus(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableStatus(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *AnalysisJobUpdateOne) SetProgress(v int) *AnalysisJobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableProgress(v *int) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *AnalysisJobUpdateOne) AddProgress(v int) *AnalysisJobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdateOne) SetErrorMessage(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableErrorMessage(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdateOne) ClearErrorMessage() *AnalysisJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisJobUpdateOne) SetCreatedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCreatedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisJobUpdateOne) SetUpdatedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFile sets the "file" edge to the ReportFile entity.
func (_u *AnalysisJobUpdateOne) SetFile(v *ReportFile) *AnalysisJobUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *AnalysisJobUpdateOne) SetProfile(v *Profile) *AnalysisJobUpdateOne {
	return _u.SetProfileID(v.ID)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdateOne) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ReportFile entity.
func (_u *AnalysisJobUpdateOne) ClearFile() *AnalysisJobUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *AnalysisJobUpdateOne) ClearProfile() *AnalysisJobUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdateOne) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisJobUpdateOne) Select(field string, fields ...string) *AnalysisJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisJob entity.
func (_u *AnalysisJobUpdateOne) Save(ctx context.Context) (*AnalysisJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) SaveX(ctx context.Context) *AnalysisJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysisjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := analysisjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.progress": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisJob.file"`)
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisJob.profile"`)
	}
	return nil
}

func (_u *AnalysisJobUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisjob.FieldID)
		for _, f := range fields {
			if !analysisjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisjob.FieldID {
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
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(analysisjob.FieldResultID, field.TypeUUID, value)
	}
	if _u.mutation.ResultIDCleared() {
		_spec.ClearField(analysisjob.FieldResultID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(analysisjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(analysisjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analysisjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.FileTable,
			Columns: []string{analysisjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.FileTable,
			Columns: []string{analysisjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.ProfileTable,
			Columns: []string{analysisjob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.ProfileTable,
			Columns: []string{analysisjob.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
