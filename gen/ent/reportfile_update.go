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

// ReportFileUpdate is the builder for updating ReportFile entities.
type ReportFileUpdate struct {
	config
	hooks    []Hook
	mutation *ReportFileMutation
}

// Where appends a list predicates to the ReportFileUpdate builder.
func (_u *ReportFileUpdate) Where(ps ...predicate.ReportFile) *ReportFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ReportFileUpdate) SetProfileID(v uuid.UUID) *ReportFileUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ReportFileUpdate) SetNillableProfileID(v *uuid.UUID) *ReportFileUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ReportFileUpdate) SetFilename(v string) *ReportFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ReportFileUpdate) SetNillableFilename(v *string) *ReportFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetReportText sets the "report_text" field.
func (_u *ReportFileUpdate) SetReportText(v string) *ReportFileUpdate {
	_u.mutation.SetReportText(v)
	return _u
}

// SetNillableReportText sets the "report_text" field if the given value is not nil.
func (_u *ReportFileUpdate) SetNillableReportText(v *string) *ReportFileUpdate {
	if v != nil {
		_u.SetReportText(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ReportFileUpdate) SetUploadedAt(v time.Time) *ReportFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ReportFileUpdate) SetNillableUploadedAt(v *time.Time) *ReportFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ReportFileUpdate) SetProfile(v *Profile) *ReportFileUpdate {
	return _u.SetProfileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the AnalysisJob entity by IDs.
func (_u *ReportFileUpdate) AddJobIDs(ids ...uuid.UUID) *ReportFileUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the AnalysisJob entity.
func (_u *ReportFileUpdate) AddJobs(v ...*AnalysisJob) *ReportFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ReportFileMutation object of the builder.
func (_u *ReportFileUpdate) Mutation() *ReportFileMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ReportFileUpdate) ClearProfile() *ReportFileUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearJobs clears all "jobs" edges to the AnalysisJob entity.
func (_u *ReportFileUpdate) ClearJobs() *ReportFileUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to AnalysisJob entities by IDs.
func (_u *ReportFileUpdate) RemoveJobIDs(ids ...uuid.UUID) *ReportFileUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to AnalysisJob entities.
func (_u *ReportFileUpdate) RemoveJobs(v ...*AnalysisJob) *ReportFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportFileUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := reportfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ReportFile.filename": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportFile.profile"`)
	}
	return nil
}

func (_u *ReportFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportfile.Table, reportfile.Columns, sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(reportfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReportText(); ok {
		_spec.SetField(reportfile.FieldReportText, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(reportfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportfile.ProfileTable,
			Columns: []string{reportfile.ProfileColumn},
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
			Table:   reportfile.ProfileTable,
			Columns: []string{reportfile.ProfileColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reportfile.JobsTable,
			Columns: []string{reportfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reportfile.JobsTable,
			Columns: []string{reportfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reportfile.JobsTable,
			Columns: []string{reportfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportFileUpdateOne is the builder for updating a single ReportFile entity.
type ReportFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportFileMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *ReportFileUpdateOne) SetProfileID(v uuid.UUID) *ReportFileUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ReportFileUpdateOne) SetNillableProfileID(v *uuid.UUID) *ReportFileUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ReportFileUpdateOne) SetFilename(v string) *ReportFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ReportFileUpdateOne) SetNillableFilename(v *string) *ReportFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetReportText sets the "report_text" field.
func (_u *ReportFileUpdateOne) SetReportText(v string) *ReportFileUpdateOne {
	_u.mutation.SetReportText(v)
	return _u
}

// SetNillableReportText sets the "report_text" field if the given value is not nil.
func (_u *ReportFileUpdateOne) SetNillableReportText(v *string) *ReportFileUpdateOne {
	if v != nil {
		_u.SetReportText(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *ReportFileUpdateOne) SetUploadedAt(v time.Time) *ReportFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *ReportFileUpdateOne) SetNillableUploadedAt(v *time.Time) *ReportFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *ReportFileUpdateOne) SetProfile(v *Profile) *ReportFileUpdateOne {
	return _u.SetProfileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the AnalysisJob entity by IDs.
func (_u *ReportFileUpdateOne) AddJobIDs(ids ...uuid.UUID) *ReportFileUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the AnalysisJob entity.
func (_u *ReportFileUpdateOne) AddJobs(v ...*AnalysisJob) *ReportFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ReportFileMutation object of the builder.
func (_u *ReportFileUpdateOne) Mutation() *ReportFileMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *ReportFileUpdateOne) ClearProfile() *ReportFileUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearJobs clears all "jobs" edges to the AnalysisJob entity.
func (_u *ReportFileUpdateOne) ClearJobs() *ReportFileUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to AnalysisJob entities by IDs.
func (_u *ReportFileUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *ReportFileUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to AnalysisJob entities.
func (_u *ReportFileUpdateOne) RemoveJobs(v ...*AnalysisJob) *ReportFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the ReportFileUpdate builder.
func (_u *ReportFileUpdateOne) Where(ps ...predicate.ReportFile) *ReportFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportFileUpdateOne) Select(field string, fields ...string) *ReportFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportFile entity.
func (_u *ReportFileUpdateOne) Save(ctx context.Context) (*ReportFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportFileUpdateOne) SaveX(ctx context.Context) *ReportFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportFileUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := reportfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ReportFile.filename": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportFile.profile"`)
	}
	return nil
}

func (_u *ReportFileUpdateOne) sqlSave(ctx context.Context) (_node *ReportFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportfile.Table, reportfile.Columns, sqlgraph.NewFieldSpec(reportfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportfile.FieldID)
		for _, f := range fields {
			if !reportfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportfile.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(reportfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReportText(); ok {
		_spec.SetField(reportfile.FieldReportText, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(reportfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportfile.ProfileTable,
			Columns: []string{reportfile.ProfileColumn},
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
			Table:   reportfile.ProfileTable,
			Columns: []string{reportfile.ProfileColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reportfile.JobsTable,
			Columns: []string{reportfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reportfile.JobsTable,
			Columns: []string{reportfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reportfile.JobsTable,
			Columns: []string{reportfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReportFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
