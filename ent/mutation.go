// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agora-labs/agora/ent/analyticsartifact"
	"github.com/agora-labs/agora/ent/debateround"
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/debateturn"
	"github.com/agora-labs/agora/ent/event"
	"github.com/agora-labs/agora/ent/predicate"
	"github.com/agora-labs/agora/ent/rotationrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalyticsArtifact = "AnalyticsArtifact"
	TypeDebateRound       = "DebateRound"
	TypeDebateSession     = "DebateSession"
	TypeDebateTurn        = "DebateTurn"
	TypeEvent             = "Event"
	TypeRotationRecord    = "RotationRecord"
)

// AnalyticsArtifactMutation represents an operation that mutates the AnalyticsArtifact nodes in the graph.
type AnalyticsArtifactMutation struct {
	config
	op             Op
	typ            string
	id             *string
	report         *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*AnalyticsArtifact, error)
	predicates     []predicate.AnalyticsArtifact
}

var _ ent.Mutation = (*AnalyticsArtifactMutation)(nil)

// analyticsartifactOption allows management of the mutation configuration using functional options.
type analyticsartifactOption func(*AnalyticsArtifactMutation)

// newAnalyticsArtifactMutation creates new mutation for the AnalyticsArtifact entity.
func newAnalyticsArtifactMutation(c config, op Op, opts ...analyticsartifactOption) *AnalyticsArtifactMutation {
	m := &AnalyticsArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalyticsArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalyticsArtifactID sets the ID field of the mutation.
func withAnalyticsArtifactID(id string) analyticsartifactOption {
	return func(m *AnalyticsArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalyticsArtifact
		)
		m.oldValue = func(ctx context.Context) (*AnalyticsArtifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalyticsArtifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalyticsArtifact sets the old AnalyticsArtifact of the mutation.
func withAnalyticsArtifact(node *AnalyticsArtifact) analyticsartifactOption {
	return func(m *AnalyticsArtifactMutation) {
		m.oldValue = func(context.Context) (*AnalyticsArtifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalyticsArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalyticsArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalyticsArtifact entities.
func (m *AnalyticsArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalyticsArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalyticsArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalyticsArtifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AnalyticsArtifactMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnalyticsArtifactMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AnalyticsArtifact entity.
// If the AnalyticsArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsArtifactMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnalyticsArtifactMutation) ResetSessionID() {
	m.session = nil
}

// SetReport sets the "report" field.
func (m *AnalyticsArtifactMutation) SetReport(value map[string]interface{}) {
	m.report = &value
}

// Report returns the value of the "report" field in the mutation.
func (m *AnalyticsArtifactMutation) Report() (r map[string]interface{}, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReport returns the old "report" field's value of the AnalyticsArtifact entity.
// If the AnalyticsArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsArtifactMutation) OldReport(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReport: %w", err)
	}
	return oldValue.Report, nil
}

// ResetReport resets all changes to the "report" field.
func (m *AnalyticsArtifactMutation) ResetReport() {
	m.report = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalyticsArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalyticsArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalyticsArtifact entity.
// If the AnalyticsArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AnalyticsArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (m *AnalyticsArtifactMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[analyticsartifact.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the DebateSession entity was cleared.
func (m *AnalyticsArtifactMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AnalyticsArtifactMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AnalyticsArtifactMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AnalyticsArtifactMutation builder.
func (m *AnalyticsArtifactMutation) Where(ps ...predicate.AnalyticsArtifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalyticsArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalyticsArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalyticsArtifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalyticsArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalyticsArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalyticsArtifact).
func (m *AnalyticsArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalyticsArtifactMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.session != nil {
		fields = append(fields, analyticsartifact.FieldSessionID)
	}
	if m.report != nil {
		fields = append(fields, analyticsartifact.FieldReport)
	}
	if m.created_at != nil {
		fields = append(fields, analyticsartifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalyticsArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analyticsartifact.FieldSessionID:
		return m.SessionID()
	case analyticsartifact.FieldReport:
		return m.Report()
	case analyticsartifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalyticsArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analyticsartifact.FieldSessionID:
		return m.OldSessionID(ctx)
	case analyticsartifact.FieldReport:
		return m.OldReport(ctx)
	case analyticsartifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalyticsArtifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyticsArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analyticsartifact.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case analyticsartifact.FieldReport:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReport(v)
		return nil
	case analyticsartifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalyticsArtifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalyticsArtifactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalyticsArtifactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyticsArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalyticsArtifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalyticsArtifactMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalyticsArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalyticsArtifactMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnalyticsArtifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalyticsArtifactMutation) ResetField(name string) error {
	switch name {
	case analyticsartifact.FieldSessionID:
		m.ResetSessionID()
		return nil
	case analyticsartifact.FieldReport:
		m.ResetReport()
		return nil
	case analyticsartifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalyticsArtifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalyticsArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, analyticsartifact.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalyticsArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analyticsartifact.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalyticsArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalyticsArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalyticsArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, analyticsartifact.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalyticsArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case analyticsartifact.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalyticsArtifactMutation) ClearEdge(name string) error {
	switch name {
	case analyticsartifact.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AnalyticsArtifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalyticsArtifactMutation) ResetEdge(name string) error {
	switch name {
	case analyticsartifact.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown AnalyticsArtifact edge %s", name)
}

// DebateRoundMutation represents an operation that mutates the DebateRound nodes in the graph.
type DebateRoundMutation struct {
	config
	op             Op
	typ            string
	id             *string
	round_index    *int
	addround_index *int
	phase          *string
	first_turn     *int
	addfirst_turn  *int
	last_turn      *int
	addlast_turn   *int
	metrics        *map[string]interface{}
	decision       *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*DebateRound, error)
	predicates     []predicate.DebateRound
}

var _ ent.Mutation = (*DebateRoundMutation)(nil)

// debateroundOption allows management of the mutation configuration using functional options.
type debateroundOption func(*DebateRoundMutation)

// newDebateRoundMutation creates new mutation for the DebateRound entity.
func newDebateRoundMutation(c config, op Op, opts ...debateroundOption) *DebateRoundMutation {
	m := &DebateRoundMutation{
		config:        c,
		op:            op,
		typ:           TypeDebateRound,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDebateRoundID sets the ID field of the mutation.
func withDebateRoundID(id string) debateroundOption {
	return func(m *DebateRoundMutation) {
		var (
			err   error
			once  sync.Once
			value *DebateRound
		)
		m.oldValue = func(ctx context.Context) (*DebateRound, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DebateRound.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDebateRound sets the old DebateRound of the mutation.
func withDebateRound(node *DebateRound) debateroundOption {
	return func(m *DebateRoundMutation) {
		m.oldValue = func(context.Context) (*DebateRound, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DebateRoundMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DebateRoundMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DebateRound entities.
func (m *DebateRoundMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DebateRoundMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DebateRoundMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DebateRound.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *DebateRoundMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *DebateRoundMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the DebateRound entity.
// If the DebateRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateRoundMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *DebateRoundMutation) ResetSessionID() {
	m.session = nil
}

// SetRoundIndex sets the "round_index" field.
func (m *DebateRoundMutation) SetRoundIndex(i int) {
	m.round_index = &i
	m.addround_index = nil
}

// RoundIndex returns the value of the "round_index" field in the mutation.
func (m *DebateRoundMutation) RoundIndex() (r int, exists bool) {
	v := m.round_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundIndex returns the old "round_index" field's value of the DebateRound entity.
// If the DebateRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateRoundMutation) OldRoundIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundIndex: %w", err)
	}
	return oldValue.RoundIndex, nil
}

// AddRoundIndex adds i to the "round_index" field.
func (m *DebateRoundMutation) AddRoundIndex(i int) {
	if m.addround_index != nil {
		*m.addround_index += i
	} else {
		m.addround_index = &i
	}
}

// AddedRoundIndex returns the value that was added to the "round_index" field in this mutation.
func (m *DebateRoundMutation) AddedRoundIndex() (r int, exists bool) {
	v := m.addround_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoundIndex resets all changes to the "round_index" field.
func (m *DebateRoundMutation) ResetRoundIndex() {
	m.round_index = nil
	m.addround_index = nil
}

// SetPhase sets the "phase" field.
func (m *DebateRoundMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *DebateRoundMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the DebateRound entity.
// If the DebateRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateRoundMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *DebateRoundMutation) ResetPhase() {
	m.phase = nil
}

// SetFirstTurn sets the "first_turn" field.
func (m *DebateRoundMutation) SetFirstTurn(i int) {
	m.first_turn = &i
	m.addfirst_turn = nil
}

// FirstTurn returns the value of the "first_turn" field in the mutation.
func (m *DebateRoundMutation) FirstTurn() (r int, exists bool) {
	v := m.first_turn
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstTurn returns the old "first_turn" field's value of the DebateRound entity.
// If the DebateRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateRoundMutation) OldFirstTurn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstTurn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstTurn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstTurn: %w", err)
	}
	return oldValue.FirstTurn, nil
}

// AddFirstTurn adds i to the "first_turn" field.
func (m *DebateRoundMutation) AddFirstTurn(i int) {
	if m.addfirst_turn != nil {
		*m.addfirst_turn += i
	} else {
		m.addfirst_turn = &i
	}
}

// AddedFirstTurn returns the value that was added to the "first_turn" field in this mutation.
func (m *DebateRoundMutation) AddedFirstTurn() (r int, exists bool) {
	v := m.addfirst_turn
	if v == nil {
		return
	}
	return *v, true
}

// ResetFirstTurn resets all changes to the "first_turn" field.
func (m *DebateRoundMutation) ResetFirstTurn() {
	m.first_turn = nil
	m.addfirst_turn = nil
}

// SetLastTurn sets the "last_turn" field.
func (m *DebateRoundMutation) SetLastTurn(i int) {
	m.last_turn = &i
	m.addlast_turn = nil
}

// LastTurn returns the value of the "last_turn" field in the mutation.
func (m *DebateRoundMutation) LastTurn() (r int, exists bool) {
	v := m.last_turn
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTurn returns the old "last_turn" field's value of the DebateRound entity.
// If the DebateRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateRoundMutation) OldLastTurn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTurn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTurn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTurn: %w", err)
	}
	return oldValue.LastTurn, nil
}

// AddLastTurn adds i to the "last_turn" field.
func (m *DebateRoundMutation) AddLastTurn(i int) {
	if m.addlast_turn != nil {
		*m.addlast_turn += i
	} else {
		m.addlast_turn = &i
	}
}

// AddedLastTurn returns the value that was added to the "last_turn" field in this mutation.
func (m *DebateRoundMutation) AddedLastTurn() (r int, exists bool) {
	v := m.addlast_turn
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastTurn resets all changes to the "last_turn" field.
func (m *DebateRoundMutation) ResetLastTurn() {
	m.last_turn = nil
	m.addlast_turn = nil
}

// SetMetrics sets the "metrics" field.
func (m *DebateRoundMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *DebateRoundMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the DebateRound entity.
// If the DebateRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateRoundMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *DebateRoundMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[debateround.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *DebateRoundMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[debateround.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *DebateRoundMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, debateround.FieldMetrics)
}

// SetDecision sets the "decision" field.
func (m *DebateRoundMutation) SetDecision(value map[string]interface{}) {
	m.decision = &value
}

// Decision returns the value of the "decision" field in the mutation.
func (m *DebateRoundMutation) Decision() (r map[string]interface{}, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the DebateRound entity.
// If the DebateRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateRoundMutation) OldDecision(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ClearDecision clears the value of the "decision" field.
func (m *DebateRoundMutation) ClearDecision() {
	m.decision = nil
	m.clearedFields[debateround.FieldDecision] = struct{}{}
}

// DecisionCleared returns if the "decision" field was cleared in this mutation.
func (m *DebateRoundMutation) DecisionCleared() bool {
	_, ok := m.clearedFields[debateround.FieldDecision]
	return ok
}

// ResetDecision resets all changes to the "decision" field.
func (m *DebateRoundMutation) ResetDecision() {
	m.decision = nil
	delete(m.clearedFields, debateround.FieldDecision)
}

// SetCreatedAt sets the "created_at" field.
func (m *DebateRoundMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DebateRoundMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DebateRound entity.
// If the DebateRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateRoundMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DebateRoundMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (m *DebateRoundMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[debateround.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the DebateSession entity was cleared.
func (m *DebateRoundMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *DebateRoundMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *DebateRoundMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the DebateRoundMutation builder.
func (m *DebateRoundMutation) Where(ps ...predicate.DebateRound) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DebateRoundMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DebateRoundMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DebateRound, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DebateRoundMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DebateRoundMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DebateRound).
func (m *DebateRoundMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DebateRoundMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, debateround.FieldSessionID)
	}
	if m.round_index != nil {
		fields = append(fields, debateround.FieldRoundIndex)
	}
	if m.phase != nil {
		fields = append(fields, debateround.FieldPhase)
	}
	if m.first_turn != nil {
		fields = append(fields, debateround.FieldFirstTurn)
	}
	if m.last_turn != nil {
		fields = append(fields, debateround.FieldLastTurn)
	}
	if m.metrics != nil {
		fields = append(fields, debateround.FieldMetrics)
	}
	if m.decision != nil {
		fields = append(fields, debateround.FieldDecision)
	}
	if m.created_at != nil {
		fields = append(fields, debateround.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DebateRoundMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case debateround.FieldSessionID:
		return m.SessionID()
	case debateround.FieldRoundIndex:
		return m.RoundIndex()
	case debateround.FieldPhase:
		return m.Phase()
	case debateround.FieldFirstTurn:
		return m.FirstTurn()
	case debateround.FieldLastTurn:
		return m.LastTurn()
	case debateround.FieldMetrics:
		return m.Metrics()
	case debateround.FieldDecision:
		return m.Decision()
	case debateround.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DebateRoundMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case debateround.FieldSessionID:
		return m.OldSessionID(ctx)
	case debateround.FieldRoundIndex:
		return m.OldRoundIndex(ctx)
	case debateround.FieldPhase:
		return m.OldPhase(ctx)
	case debateround.FieldFirstTurn:
		return m.OldFirstTurn(ctx)
	case debateround.FieldLastTurn:
		return m.OldLastTurn(ctx)
	case debateround.FieldMetrics:
		return m.OldMetrics(ctx)
	case debateround.FieldDecision:
		return m.OldDecision(ctx)
	case debateround.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DebateRound field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateRoundMutation) SetField(name string, value ent.Value) error {
	switch name {
	case debateround.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case debateround.FieldRoundIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundIndex(v)
		return nil
	case debateround.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case debateround.FieldFirstTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstTurn(v)
		return nil
	case debateround.FieldLastTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTurn(v)
		return nil
	case debateround.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case debateround.FieldDecision:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case debateround.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DebateRound field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DebateRoundMutation) AddedFields() []string {
	var fields []string
	if m.addround_index != nil {
		fields = append(fields, debateround.FieldRoundIndex)
	}
	if m.addfirst_turn != nil {
		fields = append(fields, debateround.FieldFirstTurn)
	}
	if m.addlast_turn != nil {
		fields = append(fields, debateround.FieldLastTurn)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DebateRoundMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case debateround.FieldRoundIndex:
		return m.AddedRoundIndex()
	case debateround.FieldFirstTurn:
		return m.AddedFirstTurn()
	case debateround.FieldLastTurn:
		return m.AddedLastTurn()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateRoundMutation) AddField(name string, value ent.Value) error {
	switch name {
	case debateround.FieldRoundIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoundIndex(v)
		return nil
	case debateround.FieldFirstTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstTurn(v)
		return nil
	case debateround.FieldLastTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastTurn(v)
		return nil
	}
	return fmt.Errorf("unknown DebateRound numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DebateRoundMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(debateround.FieldMetrics) {
		fields = append(fields, debateround.FieldMetrics)
	}
	if m.FieldCleared(debateround.FieldDecision) {
		fields = append(fields, debateround.FieldDecision)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DebateRoundMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DebateRoundMutation) ClearField(name string) error {
	switch name {
	case debateround.FieldMetrics:
		m.ClearMetrics()
		return nil
	case debateround.FieldDecision:
		m.ClearDecision()
		return nil
	}
	return fmt.Errorf("unknown DebateRound nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DebateRoundMutation) ResetField(name string) error {
	switch name {
	case debateround.FieldSessionID:
		m.ResetSessionID()
		return nil
	case debateround.FieldRoundIndex:
		m.ResetRoundIndex()
		return nil
	case debateround.FieldPhase:
		m.ResetPhase()
		return nil
	case debateround.FieldFirstTurn:
		m.ResetFirstTurn()
		return nil
	case debateround.FieldLastTurn:
		m.ResetLastTurn()
		return nil
	case debateround.FieldMetrics:
		m.ResetMetrics()
		return nil
	case debateround.FieldDecision:
		m.ResetDecision()
		return nil
	case debateround.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DebateRound field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DebateRoundMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, debateround.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DebateRoundMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case debateround.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DebateRoundMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DebateRoundMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DebateRoundMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, debateround.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DebateRoundMutation) EdgeCleared(name string) bool {
	switch name {
	case debateround.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DebateRoundMutation) ClearEdge(name string) error {
	switch name {
	case debateround.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown DebateRound unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DebateRoundMutation) ResetEdge(name string) error {
	switch name {
	case debateround.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown DebateRound edge %s", name)
}

// DebateSessionMutation represents an operation that mutates the DebateSession nodes in the graph.
type DebateSessionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	topic             *string
	reference         *string
	status            *debatesession.Status
	status_reason     *string
	phase             *string
	debaters          *int
	adddebaters       *int
	rotation_strategy *string
	assignment        *map[string]string
	input_tokens      *int
	addinput_tokens   *int
	output_tokens     *int
	addoutput_tokens  *int
	cost_estimate     *float64
	addcost_estimate  *float64
	error_count       *int
	adderror_count    *int
	retry_count       *int
	addretry_count    *int
	duration_ms       *int64
	addduration_ms    *int64
	created_at        *time.Time
	started_at        *time.Time
	ended_at          *time.Time
	deleted_at        *time.Time
	clearedFields     map[string]struct{}
	turns             map[string]struct{}
	removedturns      map[string]struct{}
	clearedturns      bool
	rounds            map[string]struct{}
	removedrounds     map[string]struct{}
	clearedrounds     bool
	rotations         map[string]struct{}
	removedrotations  map[string]struct{}
	clearedrotations  bool
	report            *string
	clearedreport     bool
	events            map[int]struct{}
	removedevents     map[int]struct{}
	clearedevents     bool
	done              bool
	oldValue          func(context.Context) (*DebateSession, error)
	predicates        []predicate.DebateSession
}

var _ ent.Mutation = (*DebateSessionMutation)(nil)

// debatesessionOption allows management of the mutation configuration using functional options.
type debatesessionOption func(*DebateSessionMutation)

// newDebateSessionMutation creates new mutation for the DebateSession entity.
func newDebateSessionMutation(c config, op Op, opts ...debatesessionOption) *DebateSessionMutation {
	m := &DebateSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeDebateSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDebateSessionID sets the ID field of the mutation.
func withDebateSessionID(id string) debatesessionOption {
	return func(m *DebateSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *DebateSession
		)
		m.oldValue = func(ctx context.Context) (*DebateSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DebateSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDebateSession sets the old DebateSession of the mutation.
func withDebateSession(node *DebateSession) debatesessionOption {
	return func(m *DebateSessionMutation) {
		m.oldValue = func(context.Context) (*DebateSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DebateSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DebateSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DebateSession entities.
func (m *DebateSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DebateSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DebateSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DebateSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopic sets the "topic" field.
func (m *DebateSessionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *DebateSessionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *DebateSessionMutation) ResetTopic() {
	m.topic = nil
}

// SetReference sets the "reference" field.
func (m *DebateSessionMutation) SetReference(s string) {
	m.reference = &s
}

// Reference returns the value of the "reference" field in the mutation.
func (m *DebateSessionMutation) Reference() (r string, exists bool) {
	v := m.reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReference returns the old "reference" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldReference(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReference: %w", err)
	}
	return oldValue.Reference, nil
}

// ClearReference clears the value of the "reference" field.
func (m *DebateSessionMutation) ClearReference() {
	m.reference = nil
	m.clearedFields[debatesession.FieldReference] = struct{}{}
}

// ReferenceCleared returns if the "reference" field was cleared in this mutation.
func (m *DebateSessionMutation) ReferenceCleared() bool {
	_, ok := m.clearedFields[debatesession.FieldReference]
	return ok
}

// ResetReference resets all changes to the "reference" field.
func (m *DebateSessionMutation) ResetReference() {
	m.reference = nil
	delete(m.clearedFields, debatesession.FieldReference)
}

// SetStatus sets the "status" field.
func (m *DebateSessionMutation) SetStatus(d debatesession.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DebateSessionMutation) Status() (r debatesession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldStatus(ctx context.Context) (v debatesession.Status, err error) {
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
func (m *DebateSessionMutation) ResetStatus() {
	m.status = nil
}

// SetStatusReason sets the "status_reason" field.
func (m *DebateSessionMutation) SetStatusReason(s string) {
	m.status_reason = &s
}

// StatusReason returns the value of the "status_reason" field in the mutation.
func (m *DebateSessionMutation) StatusReason() (r string, exists bool) {
	v := m.status_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusReason returns the old "status_reason" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldStatusReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusReason: %w", err)
	}
	return oldValue.StatusReason, nil
}

// ClearStatusReason clears the value of the "status_reason" field.
func (m *DebateSessionMutation) ClearStatusReason() {
	m.status_reason = nil
	m.clearedFields[debatesession.FieldStatusReason] = struct{}{}
}

// StatusReasonCleared returns if the "status_reason" field was cleared in this mutation.
func (m *DebateSessionMutation) StatusReasonCleared() bool {
	_, ok := m.clearedFields[debatesession.FieldStatusReason]
	return ok
}

// ResetStatusReason resets all changes to the "status_reason" field.
func (m *DebateSessionMutation) ResetStatusReason() {
	m.status_reason = nil
	delete(m.clearedFields, debatesession.FieldStatusReason)
}

// SetPhase sets the "phase" field.
func (m *DebateSessionMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *DebateSessionMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *DebateSessionMutation) ResetPhase() {
	m.phase = nil
}

// SetDebaters sets the "debaters" field.
func (m *DebateSessionMutation) SetDebaters(i int) {
	m.debaters = &i
	m.adddebaters = nil
}

// Debaters returns the value of the "debaters" field in the mutation.
func (m *DebateSessionMutation) Debaters() (r int, exists bool) {
	v := m.debaters
	if v == nil {
		return
	}
	return *v, true
}

// OldDebaters returns the old "debaters" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldDebaters(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDebaters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDebaters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDebaters: %w", err)
	}
	return oldValue.Debaters, nil
}

// AddDebaters adds i to the "debaters" field.
func (m *DebateSessionMutation) AddDebaters(i int) {
	if m.adddebaters != nil {
		*m.adddebaters += i
	} else {
		m.adddebaters = &i
	}
}

// AddedDebaters returns the value that was added to the "debaters" field in this mutation.
func (m *DebateSessionMutation) AddedDebaters() (r int, exists bool) {
	v := m.adddebaters
	if v == nil {
		return
	}
	return *v, true
}

// ResetDebaters resets all changes to the "debaters" field.
func (m *DebateSessionMutation) ResetDebaters() {
	m.debaters = nil
	m.adddebaters = nil
}

// SetRotationStrategy sets the "rotation_strategy" field.
func (m *DebateSessionMutation) SetRotationStrategy(s string) {
	m.rotation_strategy = &s
}

// RotationStrategy returns the value of the "rotation_strategy" field in the mutation.
func (m *DebateSessionMutation) RotationStrategy() (r string, exists bool) {
	v := m.rotation_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldRotationStrategy returns the old "rotation_strategy" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldRotationStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRotationStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRotationStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRotationStrategy: %w", err)
	}
	return oldValue.RotationStrategy, nil
}

// ResetRotationStrategy resets all changes to the "rotation_strategy" field.
func (m *DebateSessionMutation) ResetRotationStrategy() {
	m.rotation_strategy = nil
}

// SetAssignment sets the "assignment" field.
func (m *DebateSessionMutation) SetAssignment(value map[string]string) {
	m.assignment = &value
}

// Assignment returns the value of the "assignment" field in the mutation.
func (m *DebateSessionMutation) Assignment() (r map[string]string, exists bool) {
	v := m.assignment
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignment returns the old "assignment" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldAssignment(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignment: %w", err)
	}
	return oldValue.Assignment, nil
}

// ResetAssignment resets all changes to the "assignment" field.
func (m *DebateSessionMutation) ResetAssignment() {
	m.assignment = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *DebateSessionMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *DebateSessionMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *DebateSessionMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *DebateSessionMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *DebateSessionMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *DebateSessionMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *DebateSessionMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *DebateSessionMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *DebateSessionMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *DebateSessionMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *DebateSessionMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *DebateSessionMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldCostEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *DebateSessionMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *DebateSessionMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *DebateSessionMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
}

// SetErrorCount sets the "error_count" field.
func (m *DebateSessionMutation) SetErrorCount(i int) {
	m.error_count = &i
	m.adderror_count = nil
}

// ErrorCount returns the value of the "error_count" field in the mutation.
func (m *DebateSessionMutation) ErrorCount() (r int, exists bool) {
	v := m.error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCount returns the old "error_count" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCount: %w", err)
	}
	return oldValue.ErrorCount, nil
}

// AddErrorCount adds i to the "error_count" field.
func (m *DebateSessionMutation) AddErrorCount(i int) {
	if m.adderror_count != nil {
		*m.adderror_count += i
	} else {
		m.adderror_count = &i
	}
}

// AddedErrorCount returns the value that was added to the "error_count" field in this mutation.
func (m *DebateSessionMutation) AddedErrorCount() (r int, exists bool) {
	v := m.adderror_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorCount resets all changes to the "error_count" field.
func (m *DebateSessionMutation) ResetErrorCount() {
	m.error_count = nil
	m.adderror_count = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *DebateSessionMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *DebateSessionMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *DebateSessionMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *DebateSessionMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *DebateSessionMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *DebateSessionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *DebateSessionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *DebateSessionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *DebateSessionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *DebateSessionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DebateSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DebateSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DebateSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *DebateSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *DebateSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *DebateSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[debatesession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *DebateSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[debatesession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *DebateSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, debatesession.FieldStartedAt)
}

// SetEndedAt sets the "ended_at" field.
func (m *DebateSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *DebateSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *DebateSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[debatesession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *DebateSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[debatesession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *DebateSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, debatesession.FieldEndedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DebateSessionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DebateSessionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the DebateSession entity.
// If the DebateSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateSessionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *DebateSessionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[debatesession.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *DebateSessionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[debatesession.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DebateSessionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, debatesession.FieldDeletedAt)
}

// AddTurnIDs adds the "turns" edge to the DebateTurn entity by ids.
func (m *DebateSessionMutation) AddTurnIDs(ids ...string) {
	if m.turns == nil {
		m.turns = make(map[string]struct{})
	}
	for i := range ids {
		m.turns[ids[i]] = struct{}{}
	}
}

// ClearTurns clears the "turns" edge to the DebateTurn entity.
func (m *DebateSessionMutation) ClearTurns() {
	m.clearedturns = true
}

// TurnsCleared reports if the "turns" edge to the DebateTurn entity was cleared.
func (m *DebateSessionMutation) TurnsCleared() bool {
	return m.clearedturns
}

// RemoveTurnIDs removes the "turns" edge to the DebateTurn entity by IDs.
func (m *DebateSessionMutation) RemoveTurnIDs(ids ...string) {
	if m.removedturns == nil {
		m.removedturns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.turns, ids[i])
		m.removedturns[ids[i]] = struct{}{}
	}
}

// RemovedTurns returns the removed IDs of the "turns" edge to the DebateTurn entity.
func (m *DebateSessionMutation) RemovedTurnsIDs() (ids []string) {
	for id := range m.removedturns {
		ids = append(ids, id)
	}
	return
}

// TurnsIDs returns the "turns" edge IDs in the mutation.
func (m *DebateSessionMutation) TurnsIDs() (ids []string) {
	for id := range m.turns {
		ids = append(ids, id)
	}
	return
}

// ResetTurns resets all changes to the "turns" edge.
func (m *DebateSessionMutation) ResetTurns() {
	m.turns = nil
	m.clearedturns = false
	m.removedturns = nil
}

// AddRoundIDs adds the "rounds" edge to the DebateRound entity by ids.
func (m *DebateSessionMutation) AddRoundIDs(ids ...string) {
	if m.rounds == nil {
		m.rounds = make(map[string]struct{})
	}
	for i := range ids {
		m.rounds[ids[i]] = struct{}{}
	}
}

// ClearRounds clears the "rounds" edge to the DebateRound entity.
func (m *DebateSessionMutation) ClearRounds() {
	m.clearedrounds = true
}

// RoundsCleared reports if the "rounds" edge to the DebateRound entity was cleared.
func (m *DebateSessionMutation) RoundsCleared() bool {
	return m.clearedrounds
}

// RemoveRoundIDs removes the "rounds" edge to the DebateRound entity by IDs.
func (m *DebateSessionMutation) RemoveRoundIDs(ids ...string) {
	if m.removedrounds == nil {
		m.removedrounds = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rounds, ids[i])
		m.removedrounds[ids[i]] = struct{}{}
	}
}

// RemovedRounds returns the removed IDs of the "rounds" edge to the DebateRound entity.
func (m *DebateSessionMutation) RemovedRoundsIDs() (ids []string) {
	for id := range m.removedrounds {
		ids = append(ids, id)
	}
	return
}

// RoundsIDs returns the "rounds" edge IDs in the mutation.
func (m *DebateSessionMutation) RoundsIDs() (ids []string) {
	for id := range m.rounds {
		ids = append(ids, id)
	}
	return
}

// ResetRounds resets all changes to the "rounds" edge.
func (m *DebateSessionMutation) ResetRounds() {
	m.rounds = nil
	m.clearedrounds = false
	m.removedrounds = nil
}

// AddRotationIDs adds the "rotations" edge to the RotationRecord entity by ids.
func (m *DebateSessionMutation) AddRotationIDs(ids ...string) {
	if m.rotations == nil {
		m.rotations = make(map[string]struct{})
	}
	for i := range ids {
		m.rotations[ids[i]] = struct{}{}
	}
}

// ClearRotations clears the "rotations" edge to the RotationRecord entity.
func (m *DebateSessionMutation) ClearRotations() {
	m.clearedrotations = true
}

// RotationsCleared reports if the "rotations" edge to the RotationRecord entity was cleared.
func (m *DebateSessionMutation) RotationsCleared() bool {
	return m.clearedrotations
}

// RemoveRotationIDs removes the "rotations" edge to the RotationRecord entity by IDs.
func (m *DebateSessionMutation) RemoveRotationIDs(ids ...string) {
	if m.removedrotations == nil {
		m.removedrotations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rotations, ids[i])
		m.removedrotations[ids[i]] = struct{}{}
	}
}

// RemovedRotations returns the removed IDs of the "rotations" edge to the RotationRecord entity.
func (m *DebateSessionMutation) RemovedRotationsIDs() (ids []string) {
	for id := range m.removedrotations {
		ids = append(ids, id)
	}
	return
}

// RotationsIDs returns the "rotations" edge IDs in the mutation.
func (m *DebateSessionMutation) RotationsIDs() (ids []string) {
	for id := range m.rotations {
		ids = append(ids, id)
	}
	return
}

// ResetRotations resets all changes to the "rotations" edge.
func (m *DebateSessionMutation) ResetRotations() {
	m.rotations = nil
	m.clearedrotations = false
	m.removedrotations = nil
}

// SetReportID sets the "report" edge to the AnalyticsArtifact entity by id.
func (m *DebateSessionMutation) SetReportID(id string) {
	m.report = &id
}

// ClearReport clears the "report" edge to the AnalyticsArtifact entity.
func (m *DebateSessionMutation) ClearReport() {
	m.clearedreport = true
}

// ReportCleared reports if the "report" edge to the AnalyticsArtifact entity was cleared.
func (m *DebateSessionMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportID returns the "report" edge ID in the mutation.
func (m *DebateSessionMutation) ReportID() (id string, exists bool) {
	if m.report != nil {
		return *m.report, true
	}
	return
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *DebateSessionMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *DebateSessionMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *DebateSessionMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *DebateSessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *DebateSessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *DebateSessionMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *DebateSessionMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *DebateSessionMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *DebateSessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the DebateSessionMutation builder.
func (m *DebateSessionMutation) Where(ps ...predicate.DebateSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DebateSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DebateSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DebateSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DebateSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DebateSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DebateSession).
func (m *DebateSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DebateSessionMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.topic != nil {
		fields = append(fields, debatesession.FieldTopic)
	}
	if m.reference != nil {
		fields = append(fields, debatesession.FieldReference)
	}
	if m.status != nil {
		fields = append(fields, debatesession.FieldStatus)
	}
	if m.status_reason != nil {
		fields = append(fields, debatesession.FieldStatusReason)
	}
	if m.phase != nil {
		fields = append(fields, debatesession.FieldPhase)
	}
	if m.debaters != nil {
		fields = append(fields, debatesession.FieldDebaters)
	}
	if m.rotation_strategy != nil {
		fields = append(fields, debatesession.FieldRotationStrategy)
	}
	if m.assignment != nil {
		fields = append(fields, debatesession.FieldAssignment)
	}
	if m.input_tokens != nil {
		fields = append(fields, debatesession.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, debatesession.FieldOutputTokens)
	}
	if m.cost_estimate != nil {
		fields = append(fields, debatesession.FieldCostEstimate)
	}
	if m.error_count != nil {
		fields = append(fields, debatesession.FieldErrorCount)
	}
	if m.retry_count != nil {
		fields = append(fields, debatesession.FieldRetryCount)
	}
	if m.duration_ms != nil {
		fields = append(fields, debatesession.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, debatesession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, debatesession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, debatesession.FieldEndedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, debatesession.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DebateSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case debatesession.FieldTopic:
		return m.Topic()
	case debatesession.FieldReference:
		return m.Reference()
	case debatesession.FieldStatus:
		return m.Status()
	case debatesession.FieldStatusReason:
		return m.StatusReason()
	case debatesession.FieldPhase:
		return m.Phase()
	case debatesession.FieldDebaters:
		return m.Debaters()
	case debatesession.FieldRotationStrategy:
		return m.RotationStrategy()
	case debatesession.FieldAssignment:
		return m.Assignment()
	case debatesession.FieldInputTokens:
		return m.InputTokens()
	case debatesession.FieldOutputTokens:
		return m.OutputTokens()
	case debatesession.FieldCostEstimate:
		return m.CostEstimate()
	case debatesession.FieldErrorCount:
		return m.ErrorCount()
	case debatesession.FieldRetryCount:
		return m.RetryCount()
	case debatesession.FieldDurationMs:
		return m.DurationMs()
	case debatesession.FieldCreatedAt:
		return m.CreatedAt()
	case debatesession.FieldStartedAt:
		return m.StartedAt()
	case debatesession.FieldEndedAt:
		return m.EndedAt()
	case debatesession.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DebateSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case debatesession.FieldTopic:
		return m.OldTopic(ctx)
	case debatesession.FieldReference:
		return m.OldReference(ctx)
	case debatesession.FieldStatus:
		return m.OldStatus(ctx)
	case debatesession.FieldStatusReason:
		return m.OldStatusReason(ctx)
	case debatesession.FieldPhase:
		return m.OldPhase(ctx)
	case debatesession.FieldDebaters:
		return m.OldDebaters(ctx)
	case debatesession.FieldRotationStrategy:
		return m.OldRotationStrategy(ctx)
	case debatesession.FieldAssignment:
		return m.OldAssignment(ctx)
	case debatesession.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case debatesession.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case debatesession.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case debatesession.FieldErrorCount:
		return m.OldErrorCount(ctx)
	case debatesession.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case debatesession.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case debatesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case debatesession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case debatesession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case debatesession.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DebateSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case debatesession.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case debatesession.FieldReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReference(v)
		return nil
	case debatesession.FieldStatus:
		v, ok := value.(debatesession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case debatesession.FieldStatusReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusReason(v)
		return nil
	case debatesession.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case debatesession.FieldDebaters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDebaters(v)
		return nil
	case debatesession.FieldRotationStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRotationStrategy(v)
		return nil
	case debatesession.FieldAssignment:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignment(v)
		return nil
	case debatesession.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case debatesession.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case debatesession.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case debatesession.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCount(v)
		return nil
	case debatesession.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case debatesession.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case debatesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case debatesession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case debatesession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case debatesession.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DebateSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DebateSessionMutation) AddedFields() []string {
	var fields []string
	if m.adddebaters != nil {
		fields = append(fields, debatesession.FieldDebaters)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, debatesession.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, debatesession.FieldOutputTokens)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, debatesession.FieldCostEstimate)
	}
	if m.adderror_count != nil {
		fields = append(fields, debatesession.FieldErrorCount)
	}
	if m.addretry_count != nil {
		fields = append(fields, debatesession.FieldRetryCount)
	}
	if m.addduration_ms != nil {
		fields = append(fields, debatesession.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DebateSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case debatesession.FieldDebaters:
		return m.AddedDebaters()
	case debatesession.FieldInputTokens:
		return m.AddedInputTokens()
	case debatesession.FieldOutputTokens:
		return m.AddedOutputTokens()
	case debatesession.FieldCostEstimate:
		return m.AddedCostEstimate()
	case debatesession.FieldErrorCount:
		return m.AddedErrorCount()
	case debatesession.FieldRetryCount:
		return m.AddedRetryCount()
	case debatesession.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case debatesession.FieldDebaters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDebaters(v)
		return nil
	case debatesession.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case debatesession.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case debatesession.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	case debatesession.FieldErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorCount(v)
		return nil
	case debatesession.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case debatesession.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown DebateSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DebateSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(debatesession.FieldReference) {
		fields = append(fields, debatesession.FieldReference)
	}
	if m.FieldCleared(debatesession.FieldStatusReason) {
		fields = append(fields, debatesession.FieldStatusReason)
	}
	if m.FieldCleared(debatesession.FieldStartedAt) {
		fields = append(fields, debatesession.FieldStartedAt)
	}
	if m.FieldCleared(debatesession.FieldEndedAt) {
		fields = append(fields, debatesession.FieldEndedAt)
	}
	if m.FieldCleared(debatesession.FieldDeletedAt) {
		fields = append(fields, debatesession.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DebateSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DebateSessionMutation) ClearField(name string) error {
	switch name {
	case debatesession.FieldReference:
		m.ClearReference()
		return nil
	case debatesession.FieldStatusReason:
		m.ClearStatusReason()
		return nil
	case debatesession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case debatesession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case debatesession.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown DebateSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DebateSessionMutation) ResetField(name string) error {
	switch name {
	case debatesession.FieldTopic:
		m.ResetTopic()
		return nil
	case debatesession.FieldReference:
		m.ResetReference()
		return nil
	case debatesession.FieldStatus:
		m.ResetStatus()
		return nil
	case debatesession.FieldStatusReason:
		m.ResetStatusReason()
		return nil
	case debatesession.FieldPhase:
		m.ResetPhase()
		return nil
	case debatesession.FieldDebaters:
		m.ResetDebaters()
		return nil
	case debatesession.FieldRotationStrategy:
		m.ResetRotationStrategy()
		return nil
	case debatesession.FieldAssignment:
		m.ResetAssignment()
		return nil
	case debatesession.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case debatesession.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case debatesession.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case debatesession.FieldErrorCount:
		m.ResetErrorCount()
		return nil
	case debatesession.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case debatesession.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case debatesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case debatesession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case debatesession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case debatesession.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown DebateSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DebateSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.turns != nil {
		edges = append(edges, debatesession.EdgeTurns)
	}
	if m.rounds != nil {
		edges = append(edges, debatesession.EdgeRounds)
	}
	if m.rotations != nil {
		edges = append(edges, debatesession.EdgeRotations)
	}
	if m.report != nil {
		edges = append(edges, debatesession.EdgeReport)
	}
	if m.events != nil {
		edges = append(edges, debatesession.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DebateSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case debatesession.EdgeTurns:
		ids := make([]ent.Value, 0, len(m.turns))
		for id := range m.turns {
			ids = append(ids, id)
		}
		return ids
	case debatesession.EdgeRounds:
		ids := make([]ent.Value, 0, len(m.rounds))
		for id := range m.rounds {
			ids = append(ids, id)
		}
		return ids
	case debatesession.EdgeRotations:
		ids := make([]ent.Value, 0, len(m.rotations))
		for id := range m.rotations {
			ids = append(ids, id)
		}
		return ids
	case debatesession.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case debatesession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DebateSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedturns != nil {
		edges = append(edges, debatesession.EdgeTurns)
	}
	if m.removedrounds != nil {
		edges = append(edges, debatesession.EdgeRounds)
	}
	if m.removedrotations != nil {
		edges = append(edges, debatesession.EdgeRotations)
	}
	if m.removedevents != nil {
		edges = append(edges, debatesession.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DebateSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case debatesession.EdgeTurns:
		ids := make([]ent.Value, 0, len(m.removedturns))
		for id := range m.removedturns {
			ids = append(ids, id)
		}
		return ids
	case debatesession.EdgeRounds:
		ids := make([]ent.Value, 0, len(m.removedrounds))
		for id := range m.removedrounds {
			ids = append(ids, id)
		}
		return ids
	case debatesession.EdgeRotations:
		ids := make([]ent.Value, 0, len(m.removedrotations))
		for id := range m.removedrotations {
			ids = append(ids, id)
		}
		return ids
	case debatesession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DebateSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedturns {
		edges = append(edges, debatesession.EdgeTurns)
	}
	if m.clearedrounds {
		edges = append(edges, debatesession.EdgeRounds)
	}
	if m.clearedrotations {
		edges = append(edges, debatesession.EdgeRotations)
	}
	if m.clearedreport {
		edges = append(edges, debatesession.EdgeReport)
	}
	if m.clearedevents {
		edges = append(edges, debatesession.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DebateSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case debatesession.EdgeTurns:
		return m.clearedturns
	case debatesession.EdgeRounds:
		return m.clearedrounds
	case debatesession.EdgeRotations:
		return m.clearedrotations
	case debatesession.EdgeReport:
		return m.clearedreport
	case debatesession.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DebateSessionMutation) ClearEdge(name string) error {
	switch name {
	case debatesession.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown DebateSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DebateSessionMutation) ResetEdge(name string) error {
	switch name {
	case debatesession.EdgeTurns:
		m.ResetTurns()
		return nil
	case debatesession.EdgeRounds:
		m.ResetRounds()
		return nil
	case debatesession.EdgeRotations:
		m.ResetRotations()
		return nil
	case debatesession.EdgeReport:
		m.ResetReport()
		return nil
	case debatesession.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown DebateSession edge %s", name)
}

// DebateTurnMutation represents an operation that mutates the DebateTurn nodes in the graph.
type DebateTurnMutation struct {
	config
	op               Op
	typ              string
	id               *string
	turn_index       *int
	addturn_index    *int
	round            *int
	addround         *int
	role             *string
	model            *string
	phase            *string
	content          *string
	latency_ms       *int64
	addlatency_ms    *int64
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	argument         *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*DebateTurn, error)
	predicates       []predicate.DebateTurn
}

var _ ent.Mutation = (*DebateTurnMutation)(nil)

// debateturnOption allows management of the mutation configuration using functional options.
type debateturnOption func(*DebateTurnMutation)

// newDebateTurnMutation creates new mutation for the DebateTurn entity.
func newDebateTurnMutation(c config, op Op, opts ...debateturnOption) *DebateTurnMutation {
	m := &DebateTurnMutation{
		config:        c,
		op:            op,
		typ:           TypeDebateTurn,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDebateTurnID sets the ID field of the mutation.
func withDebateTurnID(id string) debateturnOption {
	return func(m *DebateTurnMutation) {
		var (
			err   error
			once  sync.Once
			value *DebateTurn
		)
		m.oldValue = func(ctx context.Context) (*DebateTurn, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DebateTurn.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDebateTurn sets the old DebateTurn of the mutation.
func withDebateTurn(node *DebateTurn) debateturnOption {
	return func(m *DebateTurnMutation) {
		m.oldValue = func(context.Context) (*DebateTurn, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DebateTurnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DebateTurnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DebateTurn entities.
func (m *DebateTurnMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DebateTurnMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DebateTurnMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DebateTurn.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *DebateTurnMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *DebateTurnMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *DebateTurnMutation) ResetSessionID() {
	m.session = nil
}

// SetTurnIndex sets the "turn_index" field.
func (m *DebateTurnMutation) SetTurnIndex(i int) {
	m.turn_index = &i
	m.addturn_index = nil
}

// TurnIndex returns the value of the "turn_index" field in the mutation.
func (m *DebateTurnMutation) TurnIndex() (r int, exists bool) {
	v := m.turn_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnIndex returns the old "turn_index" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldTurnIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnIndex: %w", err)
	}
	return oldValue.TurnIndex, nil
}

// AddTurnIndex adds i to the "turn_index" field.
func (m *DebateTurnMutation) AddTurnIndex(i int) {
	if m.addturn_index != nil {
		*m.addturn_index += i
	} else {
		m.addturn_index = &i
	}
}

// AddedTurnIndex returns the value that was added to the "turn_index" field in this mutation.
func (m *DebateTurnMutation) AddedTurnIndex() (r int, exists bool) {
	v := m.addturn_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnIndex resets all changes to the "turn_index" field.
func (m *DebateTurnMutation) ResetTurnIndex() {
	m.turn_index = nil
	m.addturn_index = nil
}

// SetRound sets the "round" field.
func (m *DebateTurnMutation) SetRound(i int) {
	m.round = &i
	m.addround = nil
}

// Round returns the value of the "round" field in the mutation.
func (m *DebateTurnMutation) Round() (r int, exists bool) {
	v := m.round
	if v == nil {
		return
	}
	return *v, true
}

// OldRound returns the old "round" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRound: %w", err)
	}
	return oldValue.Round, nil
}

// AddRound adds i to the "round" field.
func (m *DebateTurnMutation) AddRound(i int) {
	if m.addround != nil {
		*m.addround += i
	} else {
		m.addround = &i
	}
}

// AddedRound returns the value that was added to the "round" field in this mutation.
func (m *DebateTurnMutation) AddedRound() (r int, exists bool) {
	v := m.addround
	if v == nil {
		return
	}
	return *v, true
}

// ResetRound resets all changes to the "round" field.
func (m *DebateTurnMutation) ResetRound() {
	m.round = nil
	m.addround = nil
}

// SetRole sets the "role" field.
func (m *DebateTurnMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *DebateTurnMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *DebateTurnMutation) ResetRole() {
	m.role = nil
}

// SetModel sets the "model" field.
func (m *DebateTurnMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *DebateTurnMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *DebateTurnMutation) ResetModel() {
	m.model = nil
}

// SetPhase sets the "phase" field.
func (m *DebateTurnMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *DebateTurnMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *DebateTurnMutation) ResetPhase() {
	m.phase = nil
}

// SetContent sets the "content" field.
func (m *DebateTurnMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DebateTurnMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *DebateTurnMutation) ResetContent() {
	m.content = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *DebateTurnMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *DebateTurnMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *DebateTurnMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *DebateTurnMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *DebateTurnMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *DebateTurnMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *DebateTurnMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *DebateTurnMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *DebateTurnMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *DebateTurnMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *DebateTurnMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *DebateTurnMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *DebateTurnMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *DebateTurnMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *DebateTurnMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetArgument sets the "argument" field.
func (m *DebateTurnMutation) SetArgument(value map[string]interface{}) {
	m.argument = &value
}

// Argument returns the value of the "argument" field in the mutation.
func (m *DebateTurnMutation) Argument() (r map[string]interface{}, exists bool) {
	v := m.argument
	if v == nil {
		return
	}
	return *v, true
}

// OldArgument returns the old "argument" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldArgument(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgument: %w", err)
	}
	return oldValue.Argument, nil
}

// ClearArgument clears the value of the "argument" field.
func (m *DebateTurnMutation) ClearArgument() {
	m.argument = nil
	m.clearedFields[debateturn.FieldArgument] = struct{}{}
}

// ArgumentCleared returns if the "argument" field was cleared in this mutation.
func (m *DebateTurnMutation) ArgumentCleared() bool {
	_, ok := m.clearedFields[debateturn.FieldArgument]
	return ok
}

// ResetArgument resets all changes to the "argument" field.
func (m *DebateTurnMutation) ResetArgument() {
	m.argument = nil
	delete(m.clearedFields, debateturn.FieldArgument)
}

// SetCreatedAt sets the "created_at" field.
func (m *DebateTurnMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DebateTurnMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DebateTurn entity.
// If the DebateTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DebateTurnMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DebateTurnMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (m *DebateTurnMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[debateturn.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the DebateSession entity was cleared.
func (m *DebateTurnMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *DebateTurnMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *DebateTurnMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the DebateTurnMutation builder.
func (m *DebateTurnMutation) Where(ps ...predicate.DebateTurn) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DebateTurnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DebateTurnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DebateTurn, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DebateTurnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DebateTurnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DebateTurn).
func (m *DebateTurnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DebateTurnMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.session != nil {
		fields = append(fields, debateturn.FieldSessionID)
	}
	if m.turn_index != nil {
		fields = append(fields, debateturn.FieldTurnIndex)
	}
	if m.round != nil {
		fields = append(fields, debateturn.FieldRound)
	}
	if m.role != nil {
		fields = append(fields, debateturn.FieldRole)
	}
	if m.model != nil {
		fields = append(fields, debateturn.FieldModel)
	}
	if m.phase != nil {
		fields = append(fields, debateturn.FieldPhase)
	}
	if m.content != nil {
		fields = append(fields, debateturn.FieldContent)
	}
	if m.latency_ms != nil {
		fields = append(fields, debateturn.FieldLatencyMs)
	}
	if m.input_tokens != nil {
		fields = append(fields, debateturn.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, debateturn.FieldOutputTokens)
	}
	if m.argument != nil {
		fields = append(fields, debateturn.FieldArgument)
	}
	if m.created_at != nil {
		fields = append(fields, debateturn.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DebateTurnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case debateturn.FieldSessionID:
		return m.SessionID()
	case debateturn.FieldTurnIndex:
		return m.TurnIndex()
	case debateturn.FieldRound:
		return m.Round()
	case debateturn.FieldRole:
		return m.Role()
	case debateturn.FieldModel:
		return m.Model()
	case debateturn.FieldPhase:
		return m.Phase()
	case debateturn.FieldContent:
		return m.Content()
	case debateturn.FieldLatencyMs:
		return m.LatencyMs()
	case debateturn.FieldInputTokens:
		return m.InputTokens()
	case debateturn.FieldOutputTokens:
		return m.OutputTokens()
	case debateturn.FieldArgument:
		return m.Argument()
	case debateturn.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DebateTurnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case debateturn.FieldSessionID:
		return m.OldSessionID(ctx)
	case debateturn.FieldTurnIndex:
		return m.OldTurnIndex(ctx)
	case debateturn.FieldRound:
		return m.OldRound(ctx)
	case debateturn.FieldRole:
		return m.OldRole(ctx)
	case debateturn.FieldModel:
		return m.OldModel(ctx)
	case debateturn.FieldPhase:
		return m.OldPhase(ctx)
	case debateturn.FieldContent:
		return m.OldContent(ctx)
	case debateturn.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case debateturn.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case debateturn.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case debateturn.FieldArgument:
		return m.OldArgument(ctx)
	case debateturn.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DebateTurn field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateTurnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case debateturn.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case debateturn.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnIndex(v)
		return nil
	case debateturn.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRound(v)
		return nil
	case debateturn.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case debateturn.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case debateturn.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case debateturn.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case debateturn.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case debateturn.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case debateturn.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case debateturn.FieldArgument:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgument(v)
		return nil
	case debateturn.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DebateTurn field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DebateTurnMutation) AddedFields() []string {
	var fields []string
	if m.addturn_index != nil {
		fields = append(fields, debateturn.FieldTurnIndex)
	}
	if m.addround != nil {
		fields = append(fields, debateturn.FieldRound)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, debateturn.FieldLatencyMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, debateturn.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, debateturn.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DebateTurnMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case debateturn.FieldTurnIndex:
		return m.AddedTurnIndex()
	case debateturn.FieldRound:
		return m.AddedRound()
	case debateturn.FieldLatencyMs:
		return m.AddedLatencyMs()
	case debateturn.FieldInputTokens:
		return m.AddedInputTokens()
	case debateturn.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DebateTurnMutation) AddField(name string, value ent.Value) error {
	switch name {
	case debateturn.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnIndex(v)
		return nil
	case debateturn.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRound(v)
		return nil
	case debateturn.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case debateturn.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case debateturn.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown DebateTurn numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DebateTurnMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(debateturn.FieldArgument) {
		fields = append(fields, debateturn.FieldArgument)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DebateTurnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DebateTurnMutation) ClearField(name string) error {
	switch name {
	case debateturn.FieldArgument:
		m.ClearArgument()
		return nil
	}
	return fmt.Errorf("unknown DebateTurn nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DebateTurnMutation) ResetField(name string) error {
	switch name {
	case debateturn.FieldSessionID:
		m.ResetSessionID()
		return nil
	case debateturn.FieldTurnIndex:
		m.ResetTurnIndex()
		return nil
	case debateturn.FieldRound:
		m.ResetRound()
		return nil
	case debateturn.FieldRole:
		m.ResetRole()
		return nil
	case debateturn.FieldModel:
		m.ResetModel()
		return nil
	case debateturn.FieldPhase:
		m.ResetPhase()
		return nil
	case debateturn.FieldContent:
		m.ResetContent()
		return nil
	case debateturn.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case debateturn.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case debateturn.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case debateturn.FieldArgument:
		m.ResetArgument()
		return nil
	case debateturn.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DebateTurn field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DebateTurnMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, debateturn.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DebateTurnMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case debateturn.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DebateTurnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DebateTurnMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DebateTurnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, debateturn.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DebateTurnMutation) EdgeCleared(name string) bool {
	switch name {
	case debateturn.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DebateTurnMutation) ClearEdge(name string) error {
	switch name {
	case debateturn.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown DebateTurn unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DebateTurnMutation) ResetEdge(name string) error {
	switch name {
	case debateturn.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown DebateTurn edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	event_type     *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session = nil
}

// SetSequence sets the "sequence" field.
func (m *EventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *EventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *EventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *EventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *EventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *EventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[event.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *EventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[event.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, event.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (m *EventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the DebateSession entity was cleared.
func (m *EventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *EventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *EventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.sequence != nil {
		fields = append(fields, event.FieldSequence)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldSequence:
		return m.Sequence()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldSequence:
		return m.OldSequence(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, event.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldPayload) {
		fields = append(fields, event.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldSequence:
		m.ResetSequence()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// RotationRecordMutation represents an operation that mutates the RotationRecord nodes in the graph.
type RotationRecordMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	role                    *string
	old_model               *string
	new_model               *string
	reason                  *string
	confidence              *float64
	addconfidence           *float64
	expected_improvement    *float64
	addexpected_improvement *float64
	emergency               *bool
	phase                   *string
	after_turn              *int
	addafter_turn           *int
	applied_at              *time.Time
	clearedFields           map[string]struct{}
	session                 *string
	clearedsession          bool
	done                    bool
	oldValue                func(context.Context) (*RotationRecord, error)
	predicates              []predicate.RotationRecord
}

var _ ent.Mutation = (*RotationRecordMutation)(nil)

// rotationrecordOption allows management of the mutation configuration using functional options.
type rotationrecordOption func(*RotationRecordMutation)

// newRotationRecordMutation creates new mutation for the RotationRecord entity.
func newRotationRecordMutation(c config, op Op, opts ...rotationrecordOption) *RotationRecordMutation {
	m := &RotationRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeRotationRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRotationRecordID sets the ID field of the mutation.
func withRotationRecordID(id string) rotationrecordOption {
	return func(m *RotationRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *RotationRecord
		)
		m.oldValue = func(ctx context.Context) (*RotationRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RotationRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRotationRecord sets the old RotationRecord of the mutation.
func withRotationRecord(node *RotationRecord) rotationrecordOption {
	return func(m *RotationRecordMutation) {
		m.oldValue = func(context.Context) (*RotationRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RotationRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RotationRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RotationRecord entities.
func (m *RotationRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RotationRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RotationRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RotationRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *RotationRecordMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RotationRecordMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the RotationRecord entity.
// If the RotationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RotationRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RotationRecordMutation) ResetSessionID() {
	m.session = nil
}

// SetRole sets the "role" field.
func (m *RotationRecordMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *RotationRecordMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the RotationRecord entity.
// If the RotationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RotationRecordMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *RotationRecordMutation) ResetRole() {
	m.role = nil
}

// SetOldModel sets the "old_model" field.
func (m *RotationRecordMutation) SetOldModel(s string) {
	m.old_model = &s
}

// OldModel returns the value of the "old_model" field in the mutation.
func (m *RotationRecordMutation) OldModel() (r string, exists bool) {
	v := m.old_model
	if v == nil {
		return
	}
	return *v, true
}

// OldOldModel returns the old "old_model" field's value of the RotationRecord entity.
// If the RotationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RotationRecordMutation) OldOldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldModel: %w", err)
	}
	return oldValue.OldModel, nil
}

// ResetOldModel resets all changes to the "old_model" field.
func (m *RotationRecordMutation) ResetOldModel() {
	m.old_model = nil
}

// SetNewModel sets the "new_model" field.
func (m *RotationRecordMutation) SetNewModel(s string) {
	m.new_model = &s
}

// NewModel returns the value of the "new_model" field in the mutation.
func (m *RotationRecordMutation) NewModel() (r string, exists bool) {
	v := m.new_model
	if v == nil {
		return
	}
	return *v, true
}

// OldNewModel returns the old "new_model" field's value of the RotationRecord entity.
// If the RotationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RotationRecordMutation) OldNewModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewModel: %w", err)
	}
	return oldValue.NewModel, nil
}

// ResetNewModel resets all changes to the "new_model" field.
func (m *RotationRecordMutation) ResetNewModel() {
	m.new_model = nil
}

// SetReason sets the "reason" field.
func (m *RotationRecordMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *RotationRecordMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the RotationRecord entity.
// If the RotationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RotationRecordMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *RotationRecordMutation) ResetReason() {
	m.reason = nil
}

// SetConfidence sets the "confidence" field.
func (m *RotationRecordMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *RotationRecordMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the RotationRecord entity.
// If the RotationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RotationRecordMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *RotationRecordMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *RotationRecordMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *RotationRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetExpectedImprovement sets the "expected_improvement" field.
func (m *RotationRecordMutation) SetExpectedImprovement(f float64) {
	m.expected_improvement = &f
	m.addexpected_improvement = nil
}

// ExpectedImprovement returns the value of the "expected_improvement" field in the mutation.
func (m *RotationRecordMutation) ExpectedImprovement() (r float64, exists bool) {
	v := m.expected_improvement
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedImprovement returns the old "expected_improvement" field's value of the RotationRecord entity.
// If the RotationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RotationRecordMutation) OldExpectedImprovement(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedImprovement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedImprovement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedImprovement: %w", err)
	}
	return oldValue.ExpectedImprovement, nil
}

// AddExpectedImprovement adds f to the "expected_improvement" field.
func (m *RotationRecordMutation) AddExpectedImprovement(f float64) {
	if m.addexpected_improvement != nil {
		*m.addexpected_improvement += f
	} else {
		m.addexpected_improvement = &f
	}
}

// AddedExpectedImprovement returns the value that was added to the "expected_improvement" field in this mutation.
func (m *RotationRecordMutation) AddedExpectedImprovement() (r float64, exists bool) {
	v := m.addexpected_improvement
	if v == nil {
		return
	}
	return *v, true
}

// ResetExpectedImprovement resets all changes to the "expected_improvement" field.
func (m *RotationRecordMutation) ResetExpectedImprovement() {
	m.expected_improvement = nil
	m.addexpected_improvement = nil
}

// SetEmergency sets the "emergency" field.
func (m *RotationRecordMutation) SetEmergency(b bool) {
	m.emergency = &b
}

// Emergency returns the value of the "emergency" field in the mutation.
func (m *RotationRecordMutation) Emergency() (r bool, exists bool) {
	v := m.emergency
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergency returns the old "emergency" field's value of the RotationRecord entity.
// If the RotationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RotationRecordMutation) OldEmergency(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergency: %w", err)
	}
	return oldValue.Emergency, nil
}

// ResetEmergency resets all changes to the "emergency" field.
func (m *RotationRecordMutation) ResetEmergency() {
	m.emergency = nil
}

// SetPhase sets the "phase" field.
func (m *RotationRecordMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *RotationRecordMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the RotationRecord entity.
// If the RotationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RotationRecordMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *RotationRecordMutation) ResetPhase() {
	m.phase = nil
}

// SetAfterTurn sets the "after_turn" field.
func (m *RotationRecordMutation) SetAfterTurn(i int) {
	m.after_turn = &i
	m.addafter_turn = nil
}

// AfterTurn returns the value of the "after_turn" field in the mutation.
func (m *RotationRecordMutation) AfterTurn() (r int, exists bool) {
	v := m.after_turn
	if v == nil {
		return
	}
	return *v, true
}

// OldAfterTurn returns the old "after_turn" field's value of the RotationRecord entity.
// If the RotationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RotationRecordMutation) OldAfterTurn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfterTurn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfterTurn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfterTurn: %w", err)
	}
	return oldValue.AfterTurn, nil
}

// AddAfterTurn adds i to the "after_turn" field.
func (m *RotationRecordMutation) AddAfterTurn(i int) {
	if m.addafter_turn != nil {
		*m.addafter_turn += i
	} else {
		m.addafter_turn = &i
	}
}

// AddedAfterTurn returns the value that was added to the "after_turn" field in this mutation.
func (m *RotationRecordMutation) AddedAfterTurn() (r int, exists bool) {
	v := m.addafter_turn
	if v == nil {
		return
	}
	return *v, true
}

// ResetAfterTurn resets all changes to the "after_turn" field.
func (m *RotationRecordMutation) ResetAfterTurn() {
	m.after_turn = nil
	m.addafter_turn = nil
}

// SetAppliedAt sets the "applied_at" field.
func (m *RotationRecordMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *RotationRecordMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the RotationRecord entity.
// If the RotationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RotationRecordMutation) OldAppliedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *RotationRecordMutation) ResetAppliedAt() {
	m.applied_at = nil
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (m *RotationRecordMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[rotationrecord.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the DebateSession entity was cleared.
func (m *RotationRecordMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *RotationRecordMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *RotationRecordMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the RotationRecordMutation builder.
func (m *RotationRecordMutation) Where(ps ...predicate.RotationRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RotationRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RotationRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RotationRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RotationRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RotationRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RotationRecord).
func (m *RotationRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RotationRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.session != nil {
		fields = append(fields, rotationrecord.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, rotationrecord.FieldRole)
	}
	if m.old_model != nil {
		fields = append(fields, rotationrecord.FieldOldModel)
	}
	if m.new_model != nil {
		fields = append(fields, rotationrecord.FieldNewModel)
	}
	if m.reason != nil {
		fields = append(fields, rotationrecord.FieldReason)
	}
	if m.confidence != nil {
		fields = append(fields, rotationrecord.FieldConfidence)
	}
	if m.expected_improvement != nil {
		fields = append(fields, rotationrecord.FieldExpectedImprovement)
	}
	if m.emergency != nil {
		fields = append(fields, rotationrecord.FieldEmergency)
	}
	if m.phase != nil {
		fields = append(fields, rotationrecord.FieldPhase)
	}
	if m.after_turn != nil {
		fields = append(fields, rotationrecord.FieldAfterTurn)
	}
	if m.applied_at != nil {
		fields = append(fields, rotationrecord.FieldAppliedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RotationRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rotationrecord.FieldSessionID:
		return m.SessionID()
	case rotationrecord.FieldRole:
		return m.Role()
	case rotationrecord.FieldOldModel:
		return m.OldModel()
	case rotationrecord.FieldNewModel:
		return m.NewModel()
	case rotationrecord.FieldReason:
		return m.Reason()
	case rotationrecord.FieldConfidence:
		return m.Confidence()
	case rotationrecord.FieldExpectedImprovement:
		return m.ExpectedImprovement()
	case rotationrecord.FieldEmergency:
		return m.Emergency()
	case rotationrecord.FieldPhase:
		return m.Phase()
	case rotationrecord.FieldAfterTurn:
		return m.AfterTurn()
	case rotationrecord.FieldAppliedAt:
		return m.AppliedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RotationRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rotationrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case rotationrecord.FieldRole:
		return m.OldRole(ctx)
	case rotationrecord.FieldOldModel:
		return m.OldOldModel(ctx)
	case rotationrecord.FieldNewModel:
		return m.OldNewModel(ctx)
	case rotationrecord.FieldReason:
		return m.OldReason(ctx)
	case rotationrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case rotationrecord.FieldExpectedImprovement:
		return m.OldExpectedImprovement(ctx)
	case rotationrecord.FieldEmergency:
		return m.OldEmergency(ctx)
	case rotationrecord.FieldPhase:
		return m.OldPhase(ctx)
	case rotationrecord.FieldAfterTurn:
		return m.OldAfterTurn(ctx)
	case rotationrecord.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RotationRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RotationRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rotationrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case rotationrecord.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case rotationrecord.FieldOldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldModel(v)
		return nil
	case rotationrecord.FieldNewModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewModel(v)
		return nil
	case rotationrecord.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case rotationrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case rotationrecord.FieldExpectedImprovement:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedImprovement(v)
		return nil
	case rotationrecord.FieldEmergency:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergency(v)
		return nil
	case rotationrecord.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case rotationrecord.FieldAfterTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfterTurn(v)
		return nil
	case rotationrecord.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RotationRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RotationRecordMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, rotationrecord.FieldConfidence)
	}
	if m.addexpected_improvement != nil {
		fields = append(fields, rotationrecord.FieldExpectedImprovement)
	}
	if m.addafter_turn != nil {
		fields = append(fields, rotationrecord.FieldAfterTurn)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RotationRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rotationrecord.FieldConfidence:
		return m.AddedConfidence()
	case rotationrecord.FieldExpectedImprovement:
		return m.AddedExpectedImprovement()
	case rotationrecord.FieldAfterTurn:
		return m.AddedAfterTurn()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RotationRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rotationrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case rotationrecord.FieldExpectedImprovement:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpectedImprovement(v)
		return nil
	case rotationrecord.FieldAfterTurn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAfterTurn(v)
		return nil
	}
	return fmt.Errorf("unknown RotationRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RotationRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RotationRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RotationRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RotationRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RotationRecordMutation) ResetField(name string) error {
	switch name {
	case rotationrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case rotationrecord.FieldRole:
		m.ResetRole()
		return nil
	case rotationrecord.FieldOldModel:
		m.ResetOldModel()
		return nil
	case rotationrecord.FieldNewModel:
		m.ResetNewModel()
		return nil
	case rotationrecord.FieldReason:
		m.ResetReason()
		return nil
	case rotationrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case rotationrecord.FieldExpectedImprovement:
		m.ResetExpectedImprovement()
		return nil
	case rotationrecord.FieldEmergency:
		m.ResetEmergency()
		return nil
	case rotationrecord.FieldPhase:
		m.ResetPhase()
		return nil
	case rotationrecord.FieldAfterTurn:
		m.ResetAfterTurn()
		return nil
	case rotationrecord.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	}
	return fmt.Errorf("unknown RotationRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RotationRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, rotationrecord.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RotationRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rotationrecord.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RotationRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RotationRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RotationRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, rotationrecord.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RotationRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case rotationrecord.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RotationRecordMutation) ClearEdge(name string) error {
	switch name {
	case rotationrecord.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown RotationRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RotationRecordMutation) ResetEdge(name string) error {
	switch name {
	case rotationrecord.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown RotationRecord edge %s", name)
}
