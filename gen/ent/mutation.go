// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/analysisjob"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/labresult"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/predicate"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/profile"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/reportfile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisJob = "AnalysisJob"
	TypeLabResult   = "LabResult"
	TypeProfile     = "Profile"
	TypeReportFile  = "ReportFile"
)

// AnalysisJobMutation represents an operation that mutates the AnalysisJob nodes in the graph.
type AnalysisJobMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	result_id      *uuid.UUID
	status         *string
	progress       *int
	addprogress    *int
	error_message  *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	file           *uuid.UUID
	clearedfile    bool
	profile        *uuid.UUID
	clearedprofile bool
	done           bool
	oldValue       func(context.Context) (*AnalysisJob, error)
	predicates     []predicate.AnalysisJob
}

var _ ent.Mutation = (*AnalysisJobMutation)(nil)

// analysisjobOption allows management of the mutation configuration using functional options.
type analysisjobOption func(*AnalysisJobMutation)

// newAnalysisJobMutation creates new mutation for the AnalysisJob entity.
func newAnalysisJobMutation(c config, op Op, opts ...analysisjobOption) *AnalysisJobMutation {
	m := &AnalysisJobMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisJobID sets the ID field of the mutation.
func withAnalysisJobID(id uuid.UUID) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisJob
		)
		m.oldValue = func(ctx context.Context) (*AnalysisJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisJob sets the old AnalysisJob of the mutation.
func withAnalysisJob(node *AnalysisJob) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		m.oldValue = func(context.Context) (*AnalysisJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisJob entities.
func (m *AnalysisJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *AnalysisJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *AnalysisJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *AnalysisJobMutation) ResetFileID() {
	m.file = nil
}

// SetProfileID sets the "profile_id" field.
func (m *AnalysisJobMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *AnalysisJobMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *AnalysisJobMutation) ResetProfileID() {
	m.profile = nil
}

// SetResultID sets the "result_id" field.
func (m *AnalysisJobMutation) SetResultID(u uuid.UUID) {
	m.result_id = &u
}

// ResultID returns the value of the "result_id" field in the mutation.
func (m *AnalysisJobMutation) ResultID() (r uuid.UUID, exists bool) {
	v := m.result_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResultID returns the old "result_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldResultID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultID: %w", err)
	}
	return oldValue.ResultID, nil
}

// ClearResultID clears the value of the "result_id" field.
func (m *AnalysisJobMutation) ClearResultID() {
	m.result_id = nil
	m.clearedFields[analysisjob.FieldResultID] = struct{}{}
}

// ResultIDCleared returns if the "result_id" field was cleared in this mutation.
func (m *AnalysisJobMutation) ResultIDCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldResultID]
	return ok
}

// ResetResultID resets all changes to the "result_id" field.
func (m *AnalysisJobMutation) ResetResultID() {
	m.result_id = nil
	delete(m.clearedFields, analysisjob.FieldResultID)
}

// SetStatus sets the "status" field.
func (m *AnalysisJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisJobMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *AnalysisJobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *AnalysisJobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *AnalysisJobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *AnalysisJobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *AnalysisJobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnalysisJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[analysisjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnalysisJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, analysisjob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnalysisJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnalysisJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnalysisJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFile clears the "file" edge to the ReportFile entity.
func (m *AnalysisJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[analysisjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the ReportFile entity was cleared.
func (m *AnalysisJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *AnalysisJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *AnalysisJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *AnalysisJobMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[analysisjob.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *AnalysisJobMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *AnalysisJobMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *AnalysisJobMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// Where appends a list predicates to the AnalysisJobMutation builder.
func (m *AnalysisJobMutation) Where(ps ...predicate.AnalysisJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisJob).
func (m *AnalysisJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisJobMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.file != nil {
		fields = append(fields, analysisjob.FieldFileID)
	}
	if m.profile != nil {
		fields = append(fields, analysisjob.FieldProfileID)
	}
	if m.result_id != nil {
		fields = append(fields, analysisjob.FieldResultID)
	}
	if m.status != nil {
		fields = append(fields, analysisjob.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, analysisjob.FieldProgress)
	}
	if m.error_message != nil {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, analysisjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, analysisjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisjob.FieldFileID:
		return m.FileID()
	case analysisjob.FieldProfileID:
		return m.ProfileID()
	case analysisjob.FieldResultID:
		return m.ResultID()
	case analysisjob.FieldStatus:
		return m.Status()
	case analysisjob.FieldProgress:
		return m.Progress()
	case analysisjob.FieldErrorMessage:
		return m.ErrorMessage()
	case analysisjob.FieldCreatedAt:
		return m.CreatedAt()
	case analysisjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisjob.FieldFileID:
		return m.OldFileID(ctx)
	case analysisjob.FieldProfileID:
		return m.OldProfileID(ctx)
	case analysisjob.FieldResultID:
		return m.OldResultID(ctx)
	case analysisjob.FieldStatus:
		return m.OldStatus(ctx)
	case analysisjob.FieldProgress:
		return m.OldProgress(ctx)
	case analysisjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case analysisjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysisjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case analysisjob.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case analysisjob.FieldResultID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultID(v)
		return nil
	case analysisjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysisjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case analysisjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case analysisjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysisjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisJobMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, analysisjob.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisjob.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisjob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisjob.FieldResultID) {
		fields = append(fields, analysisjob.FieldResultID)
	}
	if m.FieldCleared(analysisjob.FieldErrorMessage) {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ClearField(name string) error {
	switch name {
	case analysisjob.FieldResultID:
		m.ClearResultID()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ResetField(name string) error {
	switch name {
	case analysisjob.FieldFileID:
		m.ResetFileID()
		return nil
	case analysisjob.FieldProfileID:
		m.ResetProfileID()
		return nil
	case analysisjob.FieldResultID:
		m.ResetResultID()
		return nil
	case analysisjob.FieldStatus:
		m.ResetStatus()
		return nil
	case analysisjob.FieldProgress:
		m.ResetProgress()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case analysisjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysisjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, analysisjob.EdgeFile)
	}
	if m.profile != nil {
		edges = append(edges, analysisjob.EdgeProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case analysisjob.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, analysisjob.EdgeFile)
	}
	if m.clearedprofile {
		edges = append(edges, analysisjob.EdgeProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisJobMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisjob.EdgeFile:
		return m.clearedfile
	case analysisjob.EdgeProfile:
		return m.clearedprofile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisJobMutation) ClearEdge(name string) error {
	switch name {
	case analysisjob.EdgeFile:
		m.ClearFile()
		return nil
	case analysisjob.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisJobMutation) ResetEdge(name string) error {
	switch name {
	case analysisjob.EdgeFile:
		m.ResetFile()
		return nil
	case analysisjob.EdgeProfile:
		m.ResetProfile()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob edge %s", name)
}

// LabResultMutation represents an operation that mutates the LabResult nodes in the graph.
type LabResultMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	job_id            *uuid.UUID
	panel_type        *string
	report_date       *time.Time
	rows              *json.RawMessage
	appendrows        json.RawMessage
	summary           *string
	doctor_notes      *string
	total_tests       *int
	addtotal_tests    *int
	normal_count      *int
	addnormal_count   *int
	abnormal_count    *int
	addabnormal_count *int
	critical_count    *int
	addcritical_count *int
	overall_status    *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*LabResult, error)
	predicates        []predicate.LabResult
}

var _ ent.Mutation = (*LabResultMutation)(nil)

// labresultOption allows management of the mutation configuration using functional options.
type labresultOption func(*LabResultMutation)

// newLabResultMutation creates new mutation for the LabResult entity.
func newLabResultMutation(c config, op Op, opts ...labresultOption) *LabResultMutation {
	m := &LabResultMutation{
		config:        c,
		op:            op,
		typ:           TypeLabResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabResultID sets the ID field of the mutation.
func withLabResultID(id uuid.UUID) labresultOption {
	return func(m *LabResultMutation) {
		var (
			err   error
			once  sync.Once
			value *LabResult
		)
		m.oldValue = func(ctx context.Context) (*LabResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabResult sets the old LabResult of the mutation.
func withLabResult(node *LabResult) labresultOption {
	return func(m *LabResultMutation) {
		m.oldValue = func(context.Context) (*LabResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LabResult entities.
func (m *LabResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *LabResultMutation) SetJobID(u uuid.UUID) {
	m.job_id = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *LabResultMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *LabResultMutation) ResetJobID() {
	m.job_id = nil
}

// SetPanelType sets the "panel_type" field.
func (m *LabResultMutation) SetPanelType(s string) {
	m.panel_type = &s
}

// PanelType returns the value of the "panel_type" field in the mutation.
func (m *LabResultMutation) PanelType() (r string, exists bool) {
	v := m.panel_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPanelType returns the old "panel_type" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldPanelType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPanelType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPanelType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPanelType: %w", err)
	}
	return oldValue.PanelType, nil
}

// ResetPanelType resets all changes to the "panel_type" field.
func (m *LabResultMutation) ResetPanelType() {
	m.panel_type = nil
}

// SetReportDate sets the "report_date" field.
func (m *LabResultMutation) SetReportDate(t time.Time) {
	m.report_date = &t
}

// ReportDate returns the value of the "report_date" field in the mutation.
func (m *LabResultMutation) ReportDate() (r time.Time, exists bool) {
	v := m.report_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReportDate returns the old "report_date" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldReportDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportDate: %w", err)
	}
	return oldValue.ReportDate, nil
}

// ResetReportDate resets all changes to the "report_date" field.
func (m *LabResultMutation) ResetReportDate() {
	m.report_date = nil
}

// SetRows sets the "rows" field.
func (m *LabResultMutation) SetRows(jm json.RawMessage) {
	m.rows = &jm
	m.appendrows = nil
}

// Rows returns the value of the "rows" field in the mutation.
func (m *LabResultMutation) Rows() (r json.RawMessage, exists bool) {
	v := m.rows
	if v == nil {
		return
	}
	return *v, true
}

// OldRows returns the old "rows" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldRows(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRows: %w", err)
	}
	return oldValue.Rows, nil
}

// AppendRows adds jm to the "rows" field.
func (m *LabResultMutation) AppendRows(jm json.RawMessage) {
	m.appendrows = append(m.appendrows, jm...)
}

// AppendedRows returns the list of values that were appended to the "rows" field in this mutation.
func (m *LabResultMutation) AppendedRows() (json.RawMessage, bool) {
	if len(m.appendrows) == 0 {
		return nil, false
	}
	return m.appendrows, true
}

// ResetRows resets all changes to the "rows" field.
func (m *LabResultMutation) ResetRows() {
	m.rows = nil
	m.appendrows = nil
}

// SetSummary sets the "summary" field.
func (m *LabResultMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *LabResultMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *LabResultMutation) ResetSummary() {
	m.summary = nil
}

// SetDoctorNotes sets the "doctor_notes" field.
func (m *LabResultMutation) SetDoctorNotes(s string) {
	m.doctor_notes = &s
}

// DoctorNotes returns the value of the "doctor_notes" field in the mutation.
func (m *LabResultMutation) DoctorNotes() (r string, exists bool) {
	v := m.doctor_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorNotes returns the old "doctor_notes" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldDoctorNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorNotes: %w", err)
	}
	return oldValue.DoctorNotes, nil
}

// ClearDoctorNotes clears the value of the "doctor_notes" field.
func (m *LabResultMutation) ClearDoctorNotes() {
	m.doctor_notes = nil
	m.clearedFields[labresult.FieldDoctorNotes] = struct{}{}
}

// DoctorNotesCleared returns if the "doctor_notes" field was cleared in this mutation.
func (m *LabResultMutation) DoctorNotesCleared() bool {
	_, ok := m.clearedFields[labresult.FieldDoctorNotes]
	return ok
}

// ResetDoctorNotes resets all changes to the "doctor_notes" field.
func (m *LabResultMutation) ResetDoctorNotes() {
	m.doctor_notes = nil
	delete(m.clearedFields, labresult.FieldDoctorNotes)
}

// SetTotalTests sets the "total_tests" field.
func (m *LabResultMutation) SetTotalTests(i int) {
	m.total_tests = &i
	m.addtotal_tests = nil
}

// TotalTests returns the value of the "total_tests" field in the mutation.
func (m *LabResultMutation) TotalTests() (r int, exists bool) {
	v := m.total_tests
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTests returns the old "total_tests" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldTotalTests(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTests: %w", err)
	}
	return oldValue.TotalTests, nil
}

// AddTotalTests adds i to the "total_tests" field.
func (m *LabResultMutation) AddTotalTests(i int) {
	if m.addtotal_tests != nil {
		*m.addtotal_tests += i
	} else {
		m.addtotal_tests = &i
	}
}

// AddedTotalTests returns the value that was added to the "total_tests" field in this mutation.
func (m *LabResultMutation) AddedTotalTests() (r int, exists bool) {
	v := m.addtotal_tests
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTests resets all changes to the "total_tests" field.
func (m *LabResultMutation) ResetTotalTests() {
	m.total_tests = nil
	m.addtotal_tests = nil
}

// SetNormalCount sets the "normal_count" field.
func (m *LabResultMutation) SetNormalCount(i int) {
	m.normal_count = &i
	m.addnormal_count = nil
}

// NormalCount returns the value of the "normal_count" field in the mutation.
func (m *LabResultMutation) NormalCount() (r int, exists bool) {
	v := m.normal_count
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalCount returns the old "normal_count" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldNormalCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalCount: %w", err)
	}
	return oldValue.NormalCount, nil
}

// AddNormalCount adds i to the "normal_count" field.
func (m *LabResultMutation) AddNormalCount(i int) {
	if m.addnormal_count != nil {
		*m.addnormal_count += i
	} else {
		m.addnormal_count = &i
	}
}

// AddedNormalCount returns the value that was added to the "normal_count" field in this mutation.
func (m *LabResultMutation) AddedNormalCount() (r int, exists bool) {
	v := m.addnormal_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetNormalCount resets all changes to the "normal_count" field.
func (m *LabResultMutation) ResetNormalCount() {
	m.normal_count = nil
	m.addnormal_count = nil
}

// SetAbnormalCount sets the "abnormal_count" field.
func (m *LabResultMutation) SetAbnormalCount(i int) {
	m.abnormal_count = &i
	m.addabnormal_count = nil
}

// AbnormalCount returns the value of the "abnormal_count" field in the mutation.
func (m *LabResultMutation) AbnormalCount() (r int, exists bool) {
	v := m.abnormal_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAbnormalCount returns the old "abnormal_count" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldAbnormalCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbnormalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbnormalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbnormalCount: %w", err)
	}
	return oldValue.AbnormalCount, nil
}

// AddAbnormalCount adds i to the "abnormal_count" field.
func (m *LabResultMutation) AddAbnormalCount(i int) {
	if m.addabnormal_count != nil {
		*m.addabnormal_count += i
	} else {
		m.addabnormal_count = &i
	}
}

// AddedAbnormalCount returns the value that was added to the "abnormal_count" field in this mutation.
func (m *LabResultMutation) AddedAbnormalCount() (r int, exists bool) {
	v := m.addabnormal_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAbnormalCount resets all changes to the "abnormal_count" field.
func (m *LabResultMutation) ResetAbnormalCount() {
	m.abnormal_count = nil
	m.addabnormal_count = nil
}

// SetCriticalCount sets the "critical_count" field.
func (m *LabResultMutation) SetCriticalCount(i int) {
	m.critical_count = &i
	m.addcritical_count = nil
}

// CriticalCount returns the value of the "critical_count" field in the mutation.
func (m *LabResultMutation) CriticalCount() (r int, exists bool) {
	v := m.critical_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticalCount returns the old "critical_count" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldCriticalCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticalCount: %w", err)
	}
	return oldValue.CriticalCount, nil
}

// AddCriticalCount adds i to the "critical_count" field.
func (m *LabResultMutation) AddCriticalCount(i int) {
	if m.addcritical_count != nil {
		*m.addcritical_count += i
	} else {
		m.addcritical_count = &i
	}
}

// AddedCriticalCount returns the value that was added to the "critical_count" field in this mutation.
func (m *LabResultMutation) AddedCriticalCount() (r int, exists bool) {
	v := m.addcritical_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCriticalCount resets all changes to the "critical_count" field.
func (m *LabResultMutation) ResetCriticalCount() {
	m.critical_count = nil
	m.addcritical_count = nil
}

// SetOverallStatus sets the "overall_status" field.
func (m *LabResultMutation) SetOverallStatus(s string) {
	m.overall_status = &s
}

// OverallStatus returns the value of the "overall_status" field in the mutation.
func (m *LabResultMutation) OverallStatus() (r string, exists bool) {
	v := m.overall_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallStatus returns the old "overall_status" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldOverallStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallStatus: %w", err)
	}
	return oldValue.OverallStatus, nil
}

// ResetOverallStatus resets all changes to the "overall_status" field.
func (m *LabResultMutation) ResetOverallStatus() {
	m.overall_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LabResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LabResult entity.
// If the LabResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LabResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LabResultMutation builder.
func (m *LabResultMutation) Where(ps ...predicate.LabResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabResult).
func (m *LabResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabResultMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.job_id != nil {
		fields = append(fields, labresult.FieldJobID)
	}
	if m.panel_type != nil {
		fields = append(fields, labresult.FieldPanelType)
	}
	if m.report_date != nil {
		fields = append(fields, labresult.FieldReportDate)
	}
	if m.rows != nil {
		fields = append(fields, labresult.FieldRows)
	}
	if m.summary != nil {
		fields = append(fields, labresult.FieldSummary)
	}
	if m.doctor_notes != nil {
		fields = append(fields, labresult.FieldDoctorNotes)
	}
	if m.total_tests != nil {
		fields = append(fields, labresult.FieldTotalTests)
	}
	if m.normal_count != nil {
		fields = append(fields, labresult.FieldNormalCount)
	}
	if m.abnormal_count != nil {
		fields = append(fields, labresult.FieldAbnormalCount)
	}
	if m.critical_count != nil {
		fields = append(fields, labresult.FieldCriticalCount)
	}
	if m.overall_status != nil {
		fields = append(fields, labresult.FieldOverallStatus)
	}
	if m.created_at != nil {
		fields = append(fields, labresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case labresult.FieldJobID:
		return m.JobID()
	case labresult.FieldPanelType:
		return m.PanelType()
	case labresult.FieldReportDate:
		return m.ReportDate()
	case labresult.FieldRows:
		return m.Rows()
	case labresult.FieldSummary:
		return m.Summary()
	case labresult.FieldDoctorNotes:
		return m.DoctorNotes()
	case labresult.FieldTotalTests:
		return m.TotalTests()
	case labresult.FieldNormalCount:
		return m.NormalCount()
	case labresult.FieldAbnormalCount:
		return m.AbnormalCount()
	case labresult.FieldCriticalCount:
		return m.CriticalCount()
	case labresult.FieldOverallStatus:
		return m.OverallStatus()
	case labresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case labresult.FieldJobID:
		return m.OldJobID(ctx)
	case labresult.FieldPanelType:
		return m.OldPanelType(ctx)
	case labresult.FieldReportDate:
		return m.OldReportDate(ctx)
	case labresult.FieldRows:
		return m.OldRows(ctx)
	case labresult.FieldSummary:
		return m.OldSummary(ctx)
	case labresult.FieldDoctorNotes:
		return m.OldDoctorNotes(ctx)
	case labresult.FieldTotalTests:
		return m.OldTotalTests(ctx)
	case labresult.FieldNormalCount:
		return m.OldNormalCount(ctx)
	case labresult.FieldAbnormalCount:
		return m.OldAbnormalCount(ctx)
	case labresult.FieldCriticalCount:
		return m.OldCriticalCount(ctx)
	case labresult.FieldOverallStatus:
		return m.OldOverallStatus(ctx)
	case labresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LabResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case labresult.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case labresult.FieldPanelType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPanelType(v)
		return nil
	case labresult.FieldReportDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportDate(v)
		return nil
	case labresult.FieldRows:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRows(v)
		return nil
	case labresult.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case labresult.FieldDoctorNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorNotes(v)
		return nil
	case labresult.FieldTotalTests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTests(v)
		return nil
	case labresult.FieldNormalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalCount(v)
		return nil
	case labresult.FieldAbnormalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbnormalCount(v)
		return nil
	case labresult.FieldCriticalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticalCount(v)
		return nil
	case labresult.FieldOverallStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallStatus(v)
		return nil
	case labresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LabResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabResultMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_tests != nil {
		fields = append(fields, labresult.FieldTotalTests)
	}
	if m.addnormal_count != nil {
		fields = append(fields, labresult.FieldNormalCount)
	}
	if m.addabnormal_count != nil {
		fields = append(fields, labresult.FieldAbnormalCount)
	}
	if m.addcritical_count != nil {
		fields = append(fields, labresult.FieldCriticalCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case labresult.FieldTotalTests:
		return m.AddedTotalTests()
	case labresult.FieldNormalCount:
		return m.AddedNormalCount()
	case labresult.FieldAbnormalCount:
		return m.AddedAbnormalCount()
	case labresult.FieldCriticalCount:
		return m.AddedCriticalCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case labresult.FieldTotalTests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTests(v)
		return nil
	case labresult.FieldNormalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNormalCount(v)
		return nil
	case labresult.FieldAbnormalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAbnormalCount(v)
		return nil
	case labresult.FieldCriticalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCriticalCount(v)
		return nil
	}
	return fmt.Errorf("unknown LabResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(labresult.FieldDoctorNotes) {
		fields = append(fields, labresult.FieldDoctorNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabResultMutation) ClearField(name string) error {
	switch name {
	case labresult.FieldDoctorNotes:
		m.ClearDoctorNotes()
		return nil
	}
	return fmt.Errorf("unknown LabResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabResultMutation) ResetField(name string) error {
	switch name {
	case labresult.FieldJobID:
		m.ResetJobID()
		return nil
	case labresult.FieldPanelType:
		m.ResetPanelType()
		return nil
	case labresult.FieldReportDate:
		m.ResetReportDate()
		return nil
	case labresult.FieldRows:
		m.ResetRows()
		return nil
	case labresult.FieldSummary:
		m.ResetSummary()
		return nil
	case labresult.FieldDoctorNotes:
		m.ResetDoctorNotes()
		return nil
	case labresult.FieldTotalTests:
		m.ResetTotalTests()
		return nil
	case labresult.FieldNormalCount:
		m.ResetNormalCount()
		return nil
	case labresult.FieldAbnormalCount:
		m.ResetAbnormalCount()
		return nil
	case labresult.FieldCriticalCount:
		m.ResetCriticalCount()
		return nil
	case labresult.FieldOverallStatus:
		m.ResetOverallStatus()
		return nil
	case labresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LabResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LabResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LabResult edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	files         map[uuid.UUID]struct{}
	removedfiles  map[uuid.UUID]struct{}
	clearedfiles  bool
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*Profile, error)
	predicates    []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProfileMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFileIDs adds the "files" edge to the ReportFile entity by ids.
func (m *ProfileMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the ReportFile entity.
func (m *ProfileMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the ReportFile entity was cleared.
func (m *ProfileMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the ReportFile entity by IDs.
func (m *ProfileMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the ReportFile entity.
func (m *ProfileMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *ProfileMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *ProfileMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddJobIDs adds the "jobs" edge to the AnalysisJob entity by ids.
func (m *ProfileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the AnalysisJob entity.
func (m *ProfileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the AnalysisJob entity was cleared.
func (m *ProfileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the AnalysisJob entity by IDs.
func (m *ProfileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the AnalysisJob entity.
func (m *ProfileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ProfileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ProfileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, profile.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldName:
		return m.Name()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldName:
		return m.OldName(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldName:
		m.ResetName()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.files != nil {
		edges = append(edges, profile.EdgeFiles)
	}
	if m.jobs != nil {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfiles != nil {
		edges = append(edges, profile.EdgeFiles)
	}
	if m.removedjobs != nil {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfiles {
		edges = append(edges, profile.EdgeFiles)
	}
	if m.clearedjobs {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case profile.EdgeFiles:
		return m.clearedfiles
	case profile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	switch name {
	case profile.EdgeFiles:
		m.ResetFiles()
		return nil
	case profile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Profile edge %s", name)
}

// ReportFileMutation represents an operation that mutates the ReportFile nodes in the graph.
type ReportFileMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	filename       *string
	report_text    *string
	uploaded_at    *time.Time
	clearedFields  map[string]struct{}
	profile        *uuid.UUID
	clearedprofile bool
	jobs           map[uuid.UUID]struct{}
	removedjobs    map[uuid.UUID]struct{}
	clearedjobs    bool
	done           bool
	oldValue       func(context.Context) (*ReportFile, error)
	predicates     []predicate.ReportFile
}

var _ ent.Mutation = (*ReportFileMutation)(nil)

// reportfileOption allows management of the mutation configuration using functional options.
type reportfileOption func(*ReportFileMutation)

// newReportFileMutation creates new mutation for the ReportFile entity.
func newReportFileMutation(c config, op Op, opts ...reportfileOption) *ReportFileMutation {
	m := &ReportFileMutation{
		config:        c,
		op:            op,
		typ:           TypeReportFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportFileID sets the ID field of the mutation.
func withReportFileID(id uuid.UUID) reportfileOption {
	return func(m *ReportFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportFile
		)
		m.oldValue = func(ctx context.Context) (*ReportFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportFile sets the old ReportFile of the mutation.
func withReportFile(node *ReportFile) reportfileOption {
	return func(m *ReportFileMutation) {
		m.oldValue = func(context.Context) (*ReportFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReportFile entities.
func (m *ReportFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *ReportFileMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *ReportFileMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the ReportFile entity.
// If the ReportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportFileMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *ReportFileMutation) ResetProfileID() {
	m.profile = nil
}

// SetFilename sets the "filename" field.
func (m *ReportFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ReportFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ReportFile entity.
// If the ReportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ReportFileMutation) ResetFilename() {
	m.filename = nil
}

// SetReportText sets the "report_text" field.
func (m *ReportFileMutation) SetReportText(s string) {
	m.report_text = &s
}

// ReportText returns the value of the "report_text" field in the mutation.
func (m *ReportFileMutation) ReportText() (r string, exists bool) {
	v := m.report_text
	if v == nil {
		return
	}
	return *v, true
}

// OldReportText returns the old "report_text" field's value of the ReportFile entity.
// If the ReportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportFileMutation) OldReportText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportText: %w", err)
	}
	return oldValue.ReportText, nil
}

// ResetReportText resets all changes to the "report_text" field.
func (m *ReportFileMutation) ResetReportText() {
	m.report_text = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *ReportFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *ReportFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the ReportFile entity.
// If the ReportFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *ReportFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *ReportFileMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[reportfile.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *ReportFileMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *ReportFileMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *ReportFileMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// AddJobIDs adds the "jobs" edge to the AnalysisJob entity by ids.
func (m *ReportFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the AnalysisJob entity.
func (m *ReportFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the AnalysisJob entity was cleared.
func (m *ReportFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the AnalysisJob entity by IDs.
func (m *ReportFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the AnalysisJob entity.
func (m *ReportFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ReportFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ReportFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ReportFileMutation builder.
func (m *ReportFileMutation) Where(ps ...predicate.ReportFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportFile).
func (m *ReportFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportFileMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.profile != nil {
		fields = append(fields, reportfile.FieldProfileID)
	}
	if m.filename != nil {
		fields = append(fields, reportfile.FieldFilename)
	}
	if m.report_text != nil {
		fields = append(fields, reportfile.FieldReportText)
	}
	if m.uploaded_at != nil {
		fields = append(fields, reportfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportfile.FieldProfileID:
		return m.ProfileID()
	case reportfile.FieldFilename:
		return m.Filename()
	case reportfile.FieldReportText:
		return m.ReportText()
	case reportfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportfile.FieldProfileID:
		return m.OldProfileID(ctx)
	case reportfile.FieldFilename:
		return m.OldFilename(ctx)
	case reportfile.FieldReportText:
		return m.OldReportText(ctx)
	case reportfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReportFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportfile.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case reportfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case reportfile.FieldReportText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportText(v)
		return nil
	case reportfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReportFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportFileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportFileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReportFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReportFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportFileMutation) ResetField(name string) error {
	switch name {
	case reportfile.FieldProfileID:
		m.ResetProfileID()
		return nil
	case reportfile.FieldFilename:
		m.ResetFilename()
		return nil
	case reportfile.FieldReportText:
		m.ResetReportText()
		return nil
	case reportfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown ReportFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.profile != nil {
		edges = append(edges, reportfile.EdgeProfile)
	}
	if m.jobs != nil {
		edges = append(edges, reportfile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reportfile.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case reportfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, reportfile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case reportfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedprofile {
		edges = append(edges, reportfile.EdgeProfile)
	}
	if m.clearedjobs {
		edges = append(edges, reportfile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportFileMutation) EdgeCleared(name string) bool {
	switch name {
	case reportfile.EdgeProfile:
		return m.clearedprofile
	case reportfile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportFileMutation) ClearEdge(name string) error {
	switch name {
	case reportfile.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown ReportFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportFileMutation) ResetEdge(name string) error {
	switch name {
	case reportfile.EdgeProfile:
		m.ResetProfile()
		return nil
	case reportfile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown ReportFile edge %s", name)
}
