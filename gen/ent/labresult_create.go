// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/labresult"
)

// LabResultCreate is the builder for creating a LabResult entity.
type LabResultCreate struct {
	config
	mutation *LabResultMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *LabResultCreate) SetJobID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPanelType sets the "panel_type" field.
func (_c *LabResultCreate) SetPanelType(v string) *LabResultCreate {
	_c.mutation.SetPanelType(v)
	return _c
}

// SetReportDate sets the "report_date" field.
func (_c *LabResultCreate) SetReportDate(v time.Time) *LabResultCreate {
	_c.mutation.SetReportDate(v)
	return _c
}

// SetRows sets the "rows" field.
func (_c *LabResultCreate) SetRows(v json.RawMessage) *LabResultCreate {
	_c.mutation.SetRows(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *LabResultCreate) SetSummary(v string) *LabResultCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetDoctorNotes sets the "doctor_notes" field.
func (_c *LabResultCreate) SetDoctorNotes(v string) *LabResultCreate {
	_c.mutation.SetDoctorNotes(v)
	return _c
}

// SetNillableDoctorNotes sets the "doctor_notes" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableDoctorNotes(v *string) *LabResultCreate {
	if v != nil {
		_c.SetDoctorNotes(*v)
	}
	return _c
}

// SetTotalTests sets the "total_tests" field.
func (_c *LabResultCreate) SetTotalTests(v int) *LabResultCreate {
	_c.mutation.SetTotalTests(v)
	return _c
}

// SetNillableTotalTests sets the "total_tests" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableTotalTests(v *int) *LabResultCreate {
	if v != nil {
		_c.SetTotalTests(*v)
	}
	return _c
}

// SetNormalCount sets the "normal_count" field.
func (_c *LabResultCreate) SetNormalCount(v int) *LabResultCreate {
	_c.mutation.SetNormalCount(v)
	return _c
}

// SetNillableNormalCount sets the "normal_count" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableNormalCount(v *int) *LabResultCreate {
	if v != nil {
		_c.SetNormalCount(*v)
	}
	return _c
}

// SetAbnormalCount sets the "abnormal_count" field.
func (_c *LabResultCreate) SetAbnormalCount(v int) *LabResultCreate {
	_c.mutation.SetAbnormalCount(v)
	return _c
}

// SetNillableAbnormalCount sets the "abnormal_count" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableAbnormalCount(v *int) *LabResultCreate {
	if v != nil {
		_c.SetAbnormalCount(*v)
	}
	return _c
}

// SetCriticalCount sets the "critical_count" field.
func (_c *LabResultCreate) SetCriticalCount(v int) *LabResultCreate {
	_c.mutation.SetCriticalCount(v)
	return _c
}

// SetNillableCriticalCount sets the "critical_count" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableCriticalCount(v *int) *LabResultCreate {
	if v != nil {
		_c.SetCriticalCount(*v)
	}
	return _c
}

// SetOverallStatus sets the "overall_status" field.
func (_c *LabResultCreate) SetOverallStatus(v string) *LabResultCreate {
	_c.mutation.SetOverallStatus(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabResultCreate) SetCreatedAt(v time.Time) *LabResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableCreatedAt(v *time.Time) *LabResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabResultCreate) SetID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableID(v *uuid.UUID) *LabResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LabResultMutation object of the builder.
func (_c *LabResultCreate) Mutation() *LabResultMutation {
	return _c.mutation
}

// Save creates the LabResult in the database.
func (_c *LabResultCreate) Save(ctx context.Context) (*LabResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabResultCreate) SaveX(ctx context.Context) *LabResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabResultCreate) defaults() {
	if _, ok := _c.mutation.TotalTests(); !ok {
		v := labresult.DefaultTotalTests
		_c.mutation.SetTotalTests(v)
	}
	if _, ok := _c.mutation.NormalCount(); !ok {
		v := labresult.DefaultNormalCount
		_c.mutation.SetNormalCount(v)
	}
	if _, ok := _c.mutation.AbnormalCount(); !ok {
		v := labresult.DefaultAbnormalCount
		_c.mutation.SetAbnormalCount(v)
	}
	if _, ok := _c.mutation.CriticalCount(); !ok {
		v := labresult.DefaultCriticalCount
		_c.mutation.SetCriticalCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := labresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := labresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabResultCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "LabResult.job_id"`)}
	}
	if _, ok := _c.mutation.PanelType(); !ok {
		return &ValidationError{Name: "panel_type", err: errors.New(`ent: missing required field "LabResult.panel_type"`)}
	}
	if v, ok := _c.mutation.PanelType(); ok {
		if err := labresult.PanelTypeValidator(v); err != nil {
			return &ValidationError{Name: "panel_type", err: fmt.Errorf(`ent: validator failed for field "LabResult.panel_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReportDate(); !ok {
		return &ValidationError{Name: "report_date", err: errors.New(`ent: missing required field "LabResult.report_date"`)}
	}
	if _, ok := _c.mutation.Rows(); !ok {
		return &ValidationError{Name: "rows", err: errors.New(`ent: missing required field "LabResult.rows"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "LabResult.summary"`)}
	}
	if _, ok := _c.mutation.TotalTests(); !ok {
		return &ValidationError{Name: "total_tests", err: errors.New(`ent: missing required field "LabResult.total_tests"`)}
	}
	if _, ok := _c.mutation.NormalCount(); !ok {
		return &ValidationError{Name: "normal_count", err: errors.New(`ent: missing required field "LabResult.normal_count"`)}
	}
	if _, ok := _c.mutation.AbnormalCount(); !ok {
		return &ValidationError{Name: "abnormal_count", err: errors.New(`ent: missing required field "LabResult.abnormal_count"`)}
	}
	if _, ok := _c.mutation.CriticalCount(); !ok {
		return &ValidationError{Name: "critical_count", err: errors.New(`ent: missing required field "LabResult.critical_count"`)}
	}
	if _, ok := _c.mutation.OverallStatus(); !ok {
		return &ValidationError{Name: "overall_status", err: errors.New(`ent: missing required field "LabResult.overall_status"`)}
	}
	if v, ok := _c.mutation.OverallStatus(); ok {
		if err := labresult.OverallStatusValidator(v); err != nil {
			return &ValidationError{Name: "overall_status", err: fmt.Errorf(`ent: validator failed for field "LabResult.overall_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LabResult.created_at"`)}
	}
	return nil
}

func (_c *LabResultCreate) sqlSave(ctx context.Context) (*LabResult, error) {
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

func (_c *LabResultCreate) createSpec() (*LabResult, *sqlgraph.CreateSpec) {
	var (
		_node = &LabResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labresult.Table, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(labresult.FieldJobID, field.TypeUUID, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.PanelType(); ok {
		_spec.SetField(labresult.FieldPanelType, field.TypeString, value)
		_node.PanelType = value
	}
	if value, ok := _c.mutation.ReportDate(); ok {
		_spec.SetField(labresult.FieldReportDate, field.TypeTime, value)
		_node.ReportDate = value
	}
	if value, ok := _c.mutation.Rows(); ok {
		_spec.SetField(labresult.FieldRows, field.TypeJSON, value)
		_node.Rows = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(labresult.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.DoctorNotes(); ok {
		_spec.SetField(labresult.FieldDoctorNotes, field.TypeString, value)
		_node.DoctorNotes = value
	}
	if value, ok := _c.mutation.TotalTests(); ok {
		_spec.SetField(labresult.FieldTotalTests, field.TypeInt, value)
		_node.TotalTests = value
	}
	if value, ok := _c.mutation.NormalCount(); ok {
		_spec.SetField(labresult.FieldNormalCount, field.TypeInt, value)
		_node.NormalCount = value
	}
	if value, ok := _c.mutation.AbnormalCount(); ok {
		_spec.SetField(labresult.FieldAbnormalCount, field.TypeInt, value)
		_node.AbnormalCount = value
	}
	if value, ok := _c.mutation.CriticalCount(); ok {
		_spec.SetField(labresult.FieldCriticalCount, field.TypeInt, value)
		_node.CriticalCount = value
	}
	if value, ok := _c.mutation.OverallStatus(); ok {
		_spec.SetField(labresult.FieldOverallStatus, field.TypeString, value)
		_node.OverallStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(labresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LabResultCreateBulk is the builder for creating many LabResult entities in bulk.
type LabResultCreateBulk struct {
	config
	err      error
	builders []*LabResultCreate
}

// Save creates the LabResult entities in the database.
func (_c *LabResultCreateBulk) Save(ctx context.Context) ([]*LabResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabResultMutation)
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
func (_c *LabResultCreateBulk) SaveX(ctx context.Context) []*LabResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
