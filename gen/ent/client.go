// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/analysisjob"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/labresult"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/profile"
	"github.com/joseph-ayodele/labreports-tracker/gen/ent/reportfile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisJob is the client for interacting with the AnalysisJob builders.
	AnalysisJob *AnalysisJobClient
	// LabResult is the client for interacting with the LabResult builders.
	LabResult *LabResultClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// ReportFile is the client for interacting with the ReportFile builders.
	ReportFile *ReportFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisJob = NewAnalysisJobClient(c.config)
	c.LabResult = NewLabResultClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.ReportFile = NewReportFileClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		AnalysisJob: NewAnalysisJobClient(cfg),
		LabResult:   NewLabResultClient(cfg),
		Profile:     NewProfileClient(cfg),
		ReportFile:  NewReportFileClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		AnalysisJob: NewAnalysisJobClient(cfg),
		LabResult:   NewLabResultClient(cfg),
		Profile:     NewProfileClient(cfg),
		ReportFile:  NewReportFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisJob.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AnalysisJob.Use(hooks...)
	c.LabResult.Use(hooks...)
	c.Profile.Use(hooks...)
	c.ReportFile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisJob.Intercept(interceptors...)
	c.LabResult.Intercept(interceptors...)
	c.Profile.Intercept(interceptors...)
	c.ReportFile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisJobMutation:
		return c.AnalysisJob.mutate(ctx, m)
	case *LabResultMutation:
		return c.LabResult.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *ReportFileMutation:
		return c.ReportFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisJobClient is a client for the AnalysisJob schema.
type AnalysisJobClient struct {
	config
}

// NewAnalysisJobClient returns a client for the AnalysisJob from the given config.
func NewAnalysisJobClient(c config) *AnalysisJobClient {
	return &AnalysisJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisjob.Hooks(f(g(h())))`.
func (c *AnalysisJobClient) Use(hooks ...Hook) {
	c.hooks.AnalysisJob = append(c.hooks.AnalysisJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisjob.Intercept(f(g(h())))`.
func (c *AnalysisJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisJob = append(c.inters.AnalysisJob, interceptors...)
}

// Create returns a builder for creating a AnalysisJob entity.
func (c *AnalysisJobClient) Create() *AnalysisJobCreate {
	mutation := newAnalysisJobMutation(c.config, OpCreate)
	return &AnalysisJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisJob entities.
func (c *AnalysisJobClient) CreateBulk(builders ...*AnalysisJobCreate) *AnalysisJobCreateBulk {
	return &AnalysisJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisJobClient) MapCreateBulk(slice any, setFunc func(*AnalysisJobCreate, int)) *AnalysisJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisJobCreateBulk{err: fmt.Errorf("calling to AnalysisJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisJob.
func (c *AnalysisJobClient) Update() *AnalysisJobUpdate {
	mutation := newAnalysisJobMutation(c.config, OpUpdate)
	return &AnalysisJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisJobClient) UpdateOne(_m *AnalysisJob) *AnalysisJobUpdateOne {
	mutation := newAnalysisJobMutation(c.config, OpUpdateOne, withAnalysisJob(_m))
	return &AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisJobClient) UpdateOneID(id uuid.UUID) *AnalysisJobUpdateOne {
	mutation := newAnalysisJobMutation(c.config, OpUpdateOne, withAnalysisJobID(id))
	return &AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisJob.
func (c *AnalysisJobClient) Delete() *AnalysisJobDelete {
	mutation := newAnalysisJobMutation(c.config, OpDelete)
	return &AnalysisJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisJobClient) DeleteOne(_m *AnalysisJob) *AnalysisJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisJobClient) DeleteOneID(id uuid.UUID) *AnalysisJobDeleteOne {
	builder := c.Delete().Where(analysisjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisJobDeleteOne{builder}
}

// Query returns a query builder for AnalysisJob.
func (c *AnalysisJobClient) Query() *AnalysisJobQuery {
	return &AnalysisJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisJob},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisJob entity by its id.
func (c *AnalysisJobClient) Get(ctx context.Context, id uuid.UUID) (*AnalysisJob, error) {
	return c.Query().Where(analysisjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisJobClient) GetX(ctx context.Context, id uuid.UUID) *AnalysisJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a AnalysisJob.
func (c *AnalysisJobClient) QueryFile(_m *AnalysisJob) *ReportFileQuery {
	query := (&ReportFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisjob.Table, analysisjob.FieldID, id),
			sqlgraph.To(reportfile.Table, reportfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysisjob.FileTable, analysisjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProfile queries the profile edge of a AnalysisJob.
func (c *AnalysisJobClient) QueryProfile(_m *AnalysisJob) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisjob.Table, analysisjob.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysisjob.ProfileTable, analysisjob.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisJobClient) Hooks() []Hook {
	return c.hooks.AnalysisJob
}

// Interceptors returns the client interceptors.
func (c *AnalysisJobClient) Interceptors() []Interceptor {
	return c.inters.AnalysisJob
}

func (c *AnalysisJobClient) mutate(ctx context.Context, m *AnalysisJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisJob mutation op: %q", m.Op())
	}
}

// LabResultClient is a client for the LabResult schema.
type LabResultClient struct {
	config
}

// NewLabResultClient returns a client for the LabResult from the given config.
func NewLabResultClient(c config) *LabResultClient {
	return &LabResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labresult.Hooks(f(g(h())))`.
func (c *LabResultClient) Use(hooks ...Hook) {
	c.hooks.LabResult = append(c.hooks.LabResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labresult.Intercept(f(g(h())))`.
func (c *LabResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabResult = append(c.inters.LabResult, interceptors...)
}

// Create returns a builder for creating a LabResult entity.
func (c *LabResultClient) Create() *LabResultCreate {
	mutation := newLabResultMutation(c.config, OpCreate)
	return &LabResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabResult entities.
func (c *LabResultClient) CreateBulk(builders ...*LabResultCreate) *LabResultCreateBulk {
	return &LabResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabResultClient) MapCreateBulk(slice any, setFunc func(*LabResultCreate, int)) *LabResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabResultCreateBulk{err: fmt.Errorf("calling to LabResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabResult.
func (c *LabResultClient) Update() *LabResultUpdate {
	mutation := newLabResultMutation(c.config, OpUpdate)
	return &LabResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabResultClient) UpdateOne(_m *LabResult) *LabResultUpdateOne {
	mutation := newLabResultMutation(c.config, OpUpdateOne, withLabResult(_m))
	return &LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabResultClient) UpdateOneID(id uuid.UUID) *LabResultUpdateOne {
	mutation := newLabResultMutation(c.config, OpUpdateOne, withLabResultID(id))
	return &LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabResult.
func (c *LabResultClient) Delete() *LabResultDelete {
	mutation := newLabResultMutation(c.config, OpDelete)
	return &LabResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabResultClient) DeleteOne(_m *LabResult) *LabResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabResultClient) DeleteOneID(id uuid.UUID) *LabResultDeleteOne {
	builder := c.Delete().Where(labresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabResultDeleteOne{builder}
}

// Query returns a query builder for LabResult.
func (c *LabResultClient) Query() *LabResultQuery {
	return &LabResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabResult},
		inters: c.Interceptors(),
	}
}

// Get returns a LabResult entity by its id.
func (c *LabResultClient) Get(ctx context.Context, id uuid.UUID) (*LabResult, error) {
	return c.Query().Where(labresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabResultClient) GetX(ctx context.Context, id uuid.UUID) *LabResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LabResultClient) Hooks() []Hook {
	return c.hooks.LabResult
}

// Interceptors returns the client interceptors.
func (c *LabResultClient) Interceptors() []Interceptor {
	return c.inters.LabResult
}

func (c *LabResultClient) mutate(ctx context.Context, m *LabResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LabResult mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFiles queries the files edge of a Profile.
func (c *ProfileClient) QueryFiles(_m *Profile) *ReportFileQuery {
	query := (&ReportFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(reportfile.Table, reportfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.FilesTable, profile.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Profile.
func (c *ProfileClient) QueryJobs(_m *Profile) *AnalysisJobQuery {
	query := (&AnalysisJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profile.Table, profile.FieldID, id),
			sqlgraph.To(analysisjob.Table, analysisjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profile.JobsTable, profile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// ReportFileClient is a client for the ReportFile schema.
type ReportFileClient struct {
	config
}

// NewReportFileClient returns a client for the ReportFile from the given config.
func NewReportFileClient(c config) *ReportFileClient {
	return &ReportFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reportfile.Hooks(f(g(h())))`.
func (c *ReportFileClient) Use(hooks ...Hook) {
	c.hooks.ReportFile = append(c.hooks.ReportFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reportfile.Intercept(f(g(h())))`.
func (c *ReportFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReportFile = append(c.inters.ReportFile, interceptors...)
}

// Create returns a builder for creating a ReportFile entity.
func (c *ReportFileClient) Create() *ReportFileCreate {
	mutation := newReportFileMutation(c.config, OpCreate)
	return &ReportFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReportFile entities.
func (c *ReportFileClient) CreateBulk(builders ...*ReportFileCreate) *ReportFileCreateBulk {
	return &ReportFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportFileClient) MapCreateBulk(slice any, setFunc func(*ReportFileCreate, int)) *ReportFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportFileCreateBulk{err: fmt.Errorf("calling to ReportFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReportFile.
func (c *ReportFileClient) Update() *ReportFileUpdate {
	mutation := newReportFileMutation(c.config, OpUpdate)
	return &ReportFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportFileClient) UpdateOne(_m *ReportFile) *ReportFileUpdateOne {
	mutation := newReportFileMutation(c.config, OpUpdateOne, withReportFile(_m))
	return &ReportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportFileClient) UpdateOneID(id uuid.UUID) *ReportFileUpdateOne {
	mutation := newReportFileMutation(c.config, OpUpdateOne, withReportFileID(id))
	return &ReportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReportFile.
func (c *ReportFileClient) Delete() *ReportFileDelete {
	mutation := newReportFileMutation(c.config, OpDelete)
	return &ReportFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportFileClient) DeleteOne(_m *ReportFile) *ReportFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportFileClient) DeleteOneID(id uuid.UUID) *ReportFileDeleteOne {
	builder := c.Delete().Where(reportfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportFileDeleteOne{builder}
}

// Query returns a query builder for ReportFile.
func (c *ReportFileClient) Query() *ReportFileQuery {
	return &ReportFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReportFile},
		inters: c.Interceptors(),
	}
}

// Get returns a ReportFile entity by its id.
func (c *ReportFileClient) Get(ctx context.Context, id uuid.UUID) (*ReportFile, error) {
	return c.Query().Where(reportfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportFileClient) GetX(ctx context.Context, id uuid.UUID) *ReportFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProfile queries the profile edge of a ReportFile.
func (c *ReportFileClient) QueryProfile(_m *ReportFile) *ProfileQuery {
	query := (&ProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportfile.Table, reportfile.FieldID, id),
			sqlgraph.To(profile.Table, profile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, reportfile.ProfileTable, reportfile.ProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a ReportFile.
func (c *ReportFileClient) QueryJobs(_m *ReportFile) *AnalysisJobQuery {
	query := (&AnalysisJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(reportfile.Table, reportfile.FieldID, id),
			sqlgraph.To(analysisjob.Table, analysisjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, reportfile.JobsTable, reportfile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportFileClient) Hooks() []Hook {
	return c.hooks.ReportFile
}

// Interceptors returns the client interceptors.
func (c *ReportFileClient) Interceptors() []Interceptor {
	return c.inters.ReportFile
}

func (c *ReportFileClient) mutate(ctx context.Context, m *ReportFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReportFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisJob, LabResult, Profile, ReportFile []ent.Hook
	}
	inters struct {
		AnalysisJob, LabResult, Profile, ReportFile []ent.Interceptor
	}
)
