// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/analysisjob"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/profile"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/reportfile"
)

// AnalysisJobCreate is the builder for creating a AnalysisJob entity.
type AnalysisJobCreate struct {
	config
	mutation *AnalysisJobMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *AnalysisJobCreate) SetFileID(v uuid.UUID) *AnalysisJobCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *AnalysisJobCreate) SetProfileID(v uuid.UUID) *AnalysisJobCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetResultID sets the "result_id" field.
func (_c *AnalysisJobCreate) SetResultID(v uuid.UUID) *AnalysisJobCreate {
	_c.mutation.SetResultID(v)
	return _c
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableResultID(v *uuid.UUID) *AnalysisJobCreate {
	if v != nil {
		_c.SetResultID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisJobCreate) SetStatus(v string) *AnalysisJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *AnalysisJobCreate) SetProgress(v int) *AnalysisJobCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableProgress(v *int) *AnalysisJobCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisJobCreate) SetErrorMessage(v string) *AnalysisJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableErrorMessage(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisJobCreate) SetCreatedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCreatedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnalysisJobCreate) SetUpdatedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableUpdatedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisJobCreate) SetID(v uuid.UUID) *AnalysisJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableID(v *uuid.UUID) *AnalysisJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the ReportFile entity.
func (_c *AnalysisJobCreate) SetFile(v *ReportFile) *AnalysisJobCreate {
	return _c.SetFileID(v.ID)
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *AnalysisJobCreate) SetProfile(v *Profile) *AnalysisJobCreate {
	return _c.SetProfileID(v.ID)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_c *AnalysisJobCreate) Mutation() *AnalysisJobMutation {
	return _c.mutation
}

// Save creates the AnalysisJob in the database.
func (_c *AnalysisJobCreate) Save(ctx context.Context) (*AnalysisJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisJobCreate) SaveX(ctx context.Context) *AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisJobCreate) defaults() {
	if _, ok := _c.mutation.Progress(); !ok {
		v := analysisjob.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := analysisjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysisjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisJobCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "AnalysisJob.file_id"`)}
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "AnalysisJob.profile_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "AnalysisJob.progress"`)}
	}
	if v, ok := _c.mutation.Progress(); ok {
		if err := analysisjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.progress": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AnalysisJob.updated_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "AnalysisJob.file"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "AnalysisJob.profile"`)}
	}
	return nil
}

func (_c *AnalysisJobCreate) sqlSave(ctx context.Context) (*AnalysisJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisJobCreate) createSpec() (*AnalysisJob, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisjob.Table, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ResultID(); ok {
		_spec.SetField(analysisjob.FieldResultID, field.TypeUUID, value)
		_node.ResultID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(analysisjob.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(analysisjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
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
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisJobCreateBulk is the builder for creating many AnalysisJob entities in bulk.
type AnalysisJobCreateBulk struct {
	config
	err      error
	builders []*AnalysisJobCreate
}

// Save creates the AnalysisJob entities in the database.
func (_c *AnalysisJobCreateBulk) Save(ctx context.Context) ([]*AnalysisJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisJobCreateBulk) SaveX(ctx context.Context) []*AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
