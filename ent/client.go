// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/agora-labs/agora/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agora-labs/agora/ent/analyticsartifact"
	"github.com/agora-labs/agora/ent/debateround"
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/debateturn"
	"github.com/agora-labs/agora/ent/event"
	"github.com/agora-labs/agora/ent/rotationrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalyticsArtifact is the client for interacting with the AnalyticsArtifact builders.
	AnalyticsArtifact *AnalyticsArtifactClient
	// DebateRound is the client for interacting with the DebateRound builders.
	DebateRound *DebateRoundClient
	// DebateSession is the client for interacting with the DebateSession builders.
	DebateSession *DebateSessionClient
	// DebateTurn is the client for interacting with the DebateTurn builders.
	DebateTurn *DebateTurnClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// RotationRecord is the client for interacting with the RotationRecord builders.
	RotationRecord *RotationRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalyticsArtifact = NewAnalyticsArtifactClient(c.config)
	c.DebateRound = NewDebateRoundClient(c.config)
	c.DebateSession = NewDebateSessionClient(c.config)
	c.DebateTurn = NewDebateTurnClient(c.config)
	c.Event = NewEventClient(c.config)
	c.RotationRecord = NewRotationRecordClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		AnalyticsArtifact: NewAnalyticsArtifactClient(cfg),
		DebateRound:       NewDebateRoundClient(cfg),
		DebateSession:     NewDebateSessionClient(cfg),
		DebateTurn:        NewDebateTurnClient(cfg),
		Event:             NewEventClient(cfg),
		RotationRecord:    NewRotationRecordClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AnalyticsArtifact: NewAnalyticsArtifactClient(cfg),
		DebateRound:       NewDebateRoundClient(cfg),
		DebateSession:     NewDebateSessionClient(cfg),
		DebateTurn:        NewDebateTurnClient(cfg),
		Event:             NewEventClient(cfg),
		RotationRecord:    NewRotationRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalyticsArtifact.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AnalyticsArtifact, c.DebateRound, c.DebateSession, c.DebateTurn, c.Event,
		c.RotationRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnalyticsArtifact, c.DebateRound, c.DebateSession, c.DebateTurn, c.Event,
		c.RotationRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalyticsArtifactMutation:
		return c.AnalyticsArtifact.mutate(ctx, m)
	case *DebateRoundMutation:
		return c.DebateRound.mutate(ctx, m)
	case *DebateSessionMutation:
		return c.DebateSession.mutate(ctx, m)
	case *DebateTurnMutation:
		return c.DebateTurn.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *RotationRecordMutation:
		return c.RotationRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalyticsArtifactClient is a client for the AnalyticsArtifact schema.
type AnalyticsArtifactClient struct {
	config
}

// NewAnalyticsArtifactClient returns a client for the AnalyticsArtifact from the given config.
func NewAnalyticsArtifactClient(c config) *AnalyticsArtifactClient {
	return &AnalyticsArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analyticsartifact.Hooks(f(g(h())))`.
func (c *AnalyticsArtifactClient) Use(hooks ...Hook) {
	c.hooks.AnalyticsArtifact = append(c.hooks.AnalyticsArtifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analyticsartifact.Intercept(f(g(h())))`.
func (c *AnalyticsArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalyticsArtifact = append(c.inters.AnalyticsArtifact, interceptors...)
}

// Create returns a builder for creating a AnalyticsArtifact entity.
func (c *AnalyticsArtifactClient) Create() *AnalyticsArtifactCreate {
	mutation := newAnalyticsArtifactMutation(c.config, OpCreate)
	return &AnalyticsArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalyticsArtifact entities.
func (c *AnalyticsArtifactClient) CreateBulk(builders ...*AnalyticsArtifactCreate) *AnalyticsArtifactCreateBulk {
	return &AnalyticsArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalyticsArtifactClient) MapCreateBulk(slice any, setFunc func(*AnalyticsArtifactCreate, int)) *AnalyticsArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalyticsArtifactCreateBulk{err: fmt.Errorf("calling to AnalyticsArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalyticsArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalyticsArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalyticsArtifact.
func (c *AnalyticsArtifactClient) Update() *AnalyticsArtifactUpdate {
	mutation := newAnalyticsArtifactMutation(c.config, OpUpdate)
	return &AnalyticsArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalyticsArtifactClient) UpdateOne(_m *AnalyticsArtifact) *AnalyticsArtifactUpdateOne {
	mutation := newAnalyticsArtifactMutation(c.config, OpUpdateOne, withAnalyticsArtifact(_m))
	return &AnalyticsArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalyticsArtifactClient) UpdateOneID(id string) *AnalyticsArtifactUpdateOne {
	mutation := newAnalyticsArtifactMutation(c.config, OpUpdateOne, withAnalyticsArtifactID(id))
	return &AnalyticsArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalyticsArtifact.
func (c *AnalyticsArtifactClient) Delete() *AnalyticsArtifactDelete {
	mutation := newAnalyticsArtifactMutation(c.config, OpDelete)
	return &AnalyticsArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalyticsArtifactClient) DeleteOne(_m *AnalyticsArtifact) *AnalyticsArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalyticsArtifactClient) DeleteOneID(id string) *AnalyticsArtifactDeleteOne {
	builder := c.Delete().Where(analyticsartifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalyticsArtifactDeleteOne{builder}
}

// Query returns a query builder for AnalyticsArtifact.
func (c *AnalyticsArtifactClient) Query() *AnalyticsArtifactQuery {
	return &AnalyticsArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalyticsArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalyticsArtifact entity by its id.
func (c *AnalyticsArtifactClient) Get(ctx context.Context, id string) (*AnalyticsArtifact, error) {
	return c.Query().Where(analyticsartifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalyticsArtifactClient) GetX(ctx context.Context, id string) *AnalyticsArtifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a AnalyticsArtifact.
func (c *AnalyticsArtifactClient) QuerySession(_m *AnalyticsArtifact) *DebateSessionQuery {
	query := (&DebateSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analyticsartifact.Table, analyticsartifact.FieldID, id),
			sqlgraph.To(debatesession.Table, debatesession.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, analyticsartifact.SessionTable, analyticsartifact.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalyticsArtifactClient) Hooks() []Hook {
	return c.hooks.AnalyticsArtifact
}

// Interceptors returns the client interceptors.
func (c *AnalyticsArtifactClient) Interceptors() []Interceptor {
	return c.inters.AnalyticsArtifact
}

func (c *AnalyticsArtifactClient) mutate(ctx context.Context, m *AnalyticsArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalyticsArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalyticsArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalyticsArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalyticsArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalyticsArtifact mutation op: %q", m.Op())
	}
}

// DebateRoundClient is a client for the DebateRound schema.
type DebateRoundClient struct {
	config
}

// NewDebateRoundClient returns a client for the DebateRound from the given config.
func NewDebateRoundClient(c config) *DebateRoundClient {
	return &DebateRoundClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `debateround.Hooks(f(g(h())))`.
func (c *DebateRoundClient) Use(hooks ...Hook) {
	c.hooks.DebateRound = append(c.hooks.DebateRound, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `debateround.Intercept(f(g(h())))`.
func (c *DebateRoundClient) Intercept(interceptors ...Interceptor) {
	c.inters.DebateRound = append(c.inters.DebateRound, interceptors...)
}

// Create returns a builder for creating a DebateRound entity.
func (c *DebateRoundClient) Create() *DebateRoundCreate {
	mutation := newDebateRoundMutation(c.config, OpCreate)
	return &DebateRoundCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DebateRound entities.
func (c *DebateRoundClient) CreateBulk(builders ...*DebateRoundCreate) *DebateRoundCreateBulk {
	return &DebateRoundCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DebateRoundClient) MapCreateBulk(slice any, setFunc func(*DebateRoundCreate, int)) *DebateRoundCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DebateRoundCreateBulk{err: fmt.Errorf("calling to DebateRoundClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DebateRoundCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DebateRoundCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DebateRound.
func (c *DebateRoundClient) Update() *DebateRoundUpdate {
	mutation := newDebateRoundMutation(c.config, OpUpdate)
	return &DebateRoundUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DebateRoundClient) UpdateOne(_m *DebateRound) *DebateRoundUpdateOne {
	mutation := newDebateRoundMutation(c.config, OpUpdateOne, withDebateRound(_m))
	return &DebateRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DebateRoundClient) UpdateOneID(id string) *DebateRoundUpdateOne {
	mutation := newDebateRoundMutation(c.config, OpUpdateOne, withDebateRoundID(id))
	return &DebateRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DebateRound.
func (c *DebateRoundClient) Delete() *DebateRoundDelete {
	mutation := newDebateRoundMutation(c.config, OpDelete)
	return &DebateRoundDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DebateRoundClient) DeleteOne(_m *DebateRound) *DebateRoundDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DebateRoundClient) DeleteOneID(id string) *DebateRoundDeleteOne {
	builder := c.Delete().Where(debateround.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DebateRoundDeleteOne{builder}
}

// Query returns a query builder for DebateRound.
func (c *DebateRoundClient) Query() *DebateRoundQuery {
	return &DebateRoundQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDebateRound},
		inters: c.Interceptors(),
	}
}

// Get returns a DebateRound entity by its id.
func (c *DebateRoundClient) Get(ctx context.Context, id string) (*DebateRound, error) {
	return c.Query().Where(debateround.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DebateRoundClient) GetX(ctx context.Context, id string) *DebateRound {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a DebateRound.
func (c *DebateRoundClient) QuerySession(_m *DebateRound) *DebateSessionQuery {
	query := (&DebateSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debateround.Table, debateround.FieldID, id),
			sqlgraph.To(debatesession.Table, debatesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, debateround.SessionTable, debateround.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DebateRoundClient) Hooks() []Hook {
	return c.hooks.DebateRound
}

// Interceptors returns the client interceptors.
func (c *DebateRoundClient) Interceptors() []Interceptor {
	return c.inters.DebateRound
}

func (c *DebateRoundClient) mutate(ctx context.Context, m *DebateRoundMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DebateRoundCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DebateRoundUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DebateRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DebateRoundDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DebateRound mutation op: %q", m.Op())
	}
}

// DebateSessionClient is a client for the DebateSession schema.
type DebateSessionClient struct {
	config
}

// NewDebateSessionClient returns a client for the DebateSession from the given config.
func NewDebateSessionClient(c config) *DebateSessionClient {
	return &DebateSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `debatesession.Hooks(f(g(h())))`.
func (c *DebateSessionClient) Use(hooks ...Hook) {
	c.hooks.DebateSession = append(c.hooks.DebateSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `debatesession.Intercept(f(g(h())))`.
func (c *DebateSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DebateSession = append(c.inters.DebateSession, interceptors...)
}

// Create returns a builder for creating a DebateSession entity.
func (c *DebateSessionClient) Create() *DebateSessionCreate {
	mutation := newDebateSessionMutation(c.config, OpCreate)
	return &DebateSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DebateSession entities.
func (c *DebateSessionClient) CreateBulk(builders ...*DebateSessionCreate) *DebateSessionCreateBulk {
	return &DebateSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DebateSessionClient) MapCreateBulk(slice any, setFunc func(*DebateSessionCreate, int)) *DebateSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DebateSessionCreateBulk{err: fmt.Errorf("calling to DebateSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DebateSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DebateSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DebateSession.
func (c *DebateSessionClient) Update() *DebateSessionUpdate {
	mutation := newDebateSessionMutation(c.config, OpUpdate)
	return &DebateSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DebateSessionClient) UpdateOne(_m *DebateSession) *DebateSessionUpdateOne {
	mutation := newDebateSessionMutation(c.config, OpUpdateOne, withDebateSession(_m))
	return &DebateSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DebateSessionClient) UpdateOneID(id string) *DebateSessionUpdateOne {
	mutation := newDebateSessionMutation(c.config, OpUpdateOne, withDebateSessionID(id))
	return &DebateSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DebateSession.
func (c *DebateSessionClient) Delete() *DebateSessionDelete {
	mutation := newDebateSessionMutation(c.config, OpDelete)
	return &DebateSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DebateSessionClient) DeleteOne(_m *DebateSession) *DebateSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DebateSessionClient) DeleteOneID(id string) *DebateSessionDeleteOne {
	builder := c.Delete().Where(debatesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DebateSessionDeleteOne{builder}
}

// Query returns a query builder for DebateSession.
func (c *DebateSessionClient) Query() *DebateSessionQuery {
	return &DebateSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDebateSession},
		inters: c.Interceptors(),
	}
}

// Get returns a DebateSession entity by its id.
func (c *DebateSessionClient) Get(ctx context.Context, id string) (*DebateSession, error) {
	return c.Query().Where(debatesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DebateSessionClient) GetX(ctx context.Context, id string) *DebateSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTurns queries the turns edge of a DebateSession.
func (c *DebateSessionClient) QueryTurns(_m *DebateSession) *DebateTurnQuery {
	query := (&DebateTurnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debatesession.Table, debatesession.FieldID, id),
			sqlgraph.To(debateturn.Table, debateturn.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debatesession.TurnsTable, debatesession.TurnsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRounds queries the rounds edge of a DebateSession.
func (c *DebateSessionClient) QueryRounds(_m *DebateSession) *DebateRoundQuery {
	query := (&DebateRoundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debatesession.Table, debatesession.FieldID, id),
			sqlgraph.To(debateround.Table, debateround.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debatesession.RoundsTable, debatesession.RoundsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRotations queries the rotations edge of a DebateSession.
func (c *DebateSessionClient) QueryRotations(_m *DebateSession) *RotationRecordQuery {
	query := (&RotationRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debatesession.Table, debatesession.FieldID, id),
			sqlgraph.To(rotationrecord.Table, rotationrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debatesession.RotationsTable, debatesession.RotationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReport queries the report edge of a DebateSession.
func (c *DebateSessionClient) QueryReport(_m *DebateSession) *AnalyticsArtifactQuery {
	query := (&AnalyticsArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debatesession.Table, debatesession.FieldID, id),
			sqlgraph.To(analyticsartifact.Table, analyticsartifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, debatesession.ReportTable, debatesession.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a DebateSession.
func (c *DebateSessionClient) QueryEvents(_m *DebateSession) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debatesession.Table, debatesession.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debatesession.EventsTable, debatesession.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DebateSessionClient) Hooks() []Hook {
	return c.hooks.DebateSession
}

// Interceptors returns the client interceptors.
func (c *DebateSessionClient) Interceptors() []Interceptor {
	return c.inters.DebateSession
}

func (c *DebateSessionClient) mutate(ctx context.Context, m *DebateSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DebateSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DebateSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DebateSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DebateSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DebateSession mutation op: %q", m.Op())
	}
}

// DebateTurnClient is a client for the DebateTurn schema.
type DebateTurnClient struct {
	config
}

// NewDebateTurnClient returns a client for the DebateTurn from the given config.
func NewDebateTurnClient(c config) *DebateTurnClient {
	return &DebateTurnClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `debateturn.Hooks(f(g(h())))`.
func (c *DebateTurnClient) Use(hooks ...Hook) {
	c.hooks.DebateTurn = append(c.hooks.DebateTurn, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `debateturn.Intercept(f(g(h())))`.
func (c *DebateTurnClient) Intercept(interceptors ...Interceptor) {
	c.inters.DebateTurn = append(c.inters.DebateTurn, interceptors...)
}

// Create returns a builder for creating a DebateTurn entity.
func (c *DebateTurnClient) Create() *DebateTurnCreate {
	mutation := newDebateTurnMutation(c.config, OpCreate)
	return &DebateTurnCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DebateTurn entities.
func (c *DebateTurnClient) CreateBulk(builders ...*DebateTurnCreate) *DebateTurnCreateBulk {
	return &DebateTurnCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DebateTurnClient) MapCreateBulk(slice any, setFunc func(*DebateTurnCreate, int)) *DebateTurnCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DebateTurnCreateBulk{err: fmt.Errorf("calling to DebateTurnClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DebateTurnCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DebateTurnCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DebateTurn.
func (c *DebateTurnClient) Update() *DebateTurnUpdate {
	mutation := newDebateTurnMutation(c.config, OpUpdate)
	return &DebateTurnUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DebateTurnClient) UpdateOne(_m *DebateTurn) *DebateTurnUpdateOne {
	mutation := newDebateTurnMutation(c.config, OpUpdateOne, withDebateTurn(_m))
	return &DebateTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DebateTurnClient) UpdateOneID(id string) *DebateTurnUpdateOne {
	mutation := newDebateTurnMutation(c.config, OpUpdateOne, withDebateTurnID(id))
	return &DebateTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DebateTurn.
func (c *DebateTurnClient) Delete() *DebateTurnDelete {
	mutation := newDebateTurnMutation(c.config, OpDelete)
	return &DebateTurnDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DebateTurnClient) DeleteOne(_m *DebateTurn) *DebateTurnDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DebateTurnClient) DeleteOneID(id string) *DebateTurnDeleteOne {
	builder := c.Delete().Where(debateturn.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DebateTurnDeleteOne{builder}
}

// Query returns a query builder for DebateTurn.
func (c *DebateTurnClient) Query() *DebateTurnQuery {
	return &DebateTurnQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDebateTurn},
		inters: c.Interceptors(),
	}
}

// Get returns a DebateTurn entity by its id.
func (c *DebateTurnClient) Get(ctx context.Context, id string) (*DebateTurn, error) {
	return c.Query().Where(debateturn.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DebateTurnClient) GetX(ctx context.Context, id string) *DebateTurn {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a DebateTurn.
func (c *DebateTurnClient) QuerySession(_m *DebateTurn) *DebateSessionQuery {
	query := (&DebateSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debateturn.Table, debateturn.FieldID, id),
			sqlgraph.To(debatesession.Table, debatesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, debateturn.SessionTable, debateturn.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DebateTurnClient) Hooks() []Hook {
	return c.hooks.DebateTurn
}

// Interceptors returns the client interceptors.
func (c *DebateTurnClient) Interceptors() []Interceptor {
	return c.inters.DebateTurn
}

func (c *DebateTurnClient) mutate(ctx context.Context, m *DebateTurnMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DebateTurnCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DebateTurnUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DebateTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DebateTurnDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DebateTurn mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Event.
func (c *EventClient) QuerySession(_m *Event) *DebateSessionQuery {
	query := (&DebateSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(debatesession.Table, debatesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.SessionTable, event.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// RotationRecordClient is a client for the RotationRecord schema.
type RotationRecordClient struct {
	config
}

// NewRotationRecordClient returns a client for the RotationRecord from the given config.
func NewRotationRecordClient(c config) *RotationRecordClient {
	return &RotationRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rotationrecord.Hooks(f(g(h())))`.
func (c *RotationRecordClient) Use(hooks ...Hook) {
	c.hooks.RotationRecord = append(c.hooks.RotationRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rotationrecord.Intercept(f(g(h())))`.
func (c *RotationRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.RotationRecord = append(c.inters.RotationRecord, interceptors...)
}

// Create returns a builder for creating a RotationRecord entity.
func (c *RotationRecordClient) Create() *RotationRecordCreate {
	mutation := newRotationRecordMutation(c.config, OpCreate)
	return &RotationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RotationRecord entities.
func (c *RotationRecordClient) CreateBulk(builders ...*RotationRecordCreate) *RotationRecordCreateBulk {
	return &RotationRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RotationRecordClient) MapCreateBulk(slice any, setFunc func(*RotationRecordCreate, int)) *RotationRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RotationRecordCreateBulk{err: fmt.Errorf("calling to RotationRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RotationRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RotationRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RotationRecord.
func (c *RotationRecordClient) Update() *RotationRecordUpdate {
	mutation := newRotationRecordMutation(c.config, OpUpdate)
	return &RotationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RotationRecordClient) UpdateOne(_m *RotationRecord) *RotationRecordUpdateOne {
	mutation := newRotationRecordMutation(c.config, OpUpdateOne, withRotationRecord(_m))
	return &RotationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RotationRecordClient) UpdateOneID(id string) *RotationRecordUpdateOne {
	mutation := newRotationRecordMutation(c.config, OpUpdateOne, withRotationRecordID(id))
	return &RotationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RotationRecord.
func (c *RotationRecordClient) Delete() *RotationRecordDelete {
	mutation := newRotationRecordMutation(c.config, OpDelete)
	return &RotationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RotationRecordClient) DeleteOne(_m *RotationRecord) *RotationRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RotationRecordClient) DeleteOneID(id string) *RotationRecordDeleteOne {
	builder := c.Delete().Where(rotationrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RotationRecordDeleteOne{builder}
}

// Query returns a query builder for RotationRecord.
func (c *RotationRecordClient) Query() *RotationRecordQuery {
	return &RotationRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRotationRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a RotationRecord entity by its id.
func (c *RotationRecordClient) Get(ctx context.Context, id string) (*RotationRecord, error) {
	return c.Query().Where(rotationrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RotationRecordClient) GetX(ctx context.Context, id string) *RotationRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a RotationRecord.
func (c *RotationRecordClient) QuerySession(_m *RotationRecord) *DebateSessionQuery {
	query := (&DebateSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rotationrecord.Table, rotationrecord.FieldID, id),
			sqlgraph.To(debatesession.Table, debatesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rotationrecord.SessionTable, rotationrecord.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RotationRecordClient) Hooks() []Hook {
	return c.hooks.RotationRecord
}

// Interceptors returns the client interceptors.
func (c *RotationRecordClient) Interceptors() []Interceptor {
	return c.inters.RotationRecord
}

func (c *RotationRecordClient) mutate(ctx context.Context, m *RotationRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RotationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RotationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RotationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RotationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RotationRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalyticsArtifact, DebateRound, DebateSession, DebateTurn, Event,
		RotationRecord []ent.Hook
	}
	inters struct {
		AnalyticsArtifact, DebateRound, DebateSession, DebateTurn, Event,
		RotationRecord []ent.Interceptor
	}
)
