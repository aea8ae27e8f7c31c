// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agora-labs/agora/ent/analyticsartifact"
	"github.com/agora-labs/agora/ent/debateround"
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/debateturn"
	"github.com/agora-labs/agora/ent/event"
	"github.com/agora-labs/agora/ent/predicate"
	"github.com/agora-labs/agora/ent/rotationrecord"
)

// DebateSessionQuery is the builder for querying DebateSession entities.
type DebateSessionQuery struct {
	config
	ctx           *QueryContext
	order         []debatesession.OrderOption
	inters        []Interceptor
	predicates    []predicate.DebateSession
	withTurns     *DebateTurnQuery
	withRounds    *DebateRoundQuery
	withRotations *RotationRecordQuery
	withReport    *AnalyticsArtifactQuery
	withEvents    *EventQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DebateSessionQuery builder.
func (_q *DebateSessionQuery) Where(ps ...predicate.DebateSession) *DebateSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DebateSessionQuery) Limit(limit int) *DebateSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DebateSessionQuery) Offset(offset int) *DebateSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DebateSessionQuery) Unique(unique bool) *DebateSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DebateSessionQuery) Order(o ...debatesession.OrderOption) *DebateSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTurns chains the current query on the "turns" edge.
func (_q *DebateSessionQuery) QueryTurns() *DebateTurnQuery {
	query := (&DebateTurnClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(debatesession.Table, debatesession.FieldID, selector),
			sqlgraph.To(debateturn.Table, debateturn.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debatesession.TurnsTable, debatesession.TurnsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRounds chains the current query on the "rounds" edge.
func (_q *DebateSessionQuery) QueryRounds() *DebateRoundQuery {
	query := (&DebateRoundClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(debatesession.Table, debatesession.FieldID, selector),
			sqlgraph.To(debateround.Table, debateround.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debatesession.RoundsTable, debatesession.RoundsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRotations chains the current query on the "rotations" edge.
func (_q *DebateSessionQuery) QueryRotations() *RotationRecordQuery {
	query := (&RotationRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(debatesession.Table, debatesession.FieldID, selector),
			sqlgraph.To(rotationrecord.Table, rotationrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debatesession.RotationsTable, debatesession.RotationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReport chains the current query on the "report" edge.
func (_q *DebateSessionQuery) QueryReport() *AnalyticsArtifactQuery {
	query := (&AnalyticsArtifactClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(debatesession.Table, debatesession.FieldID, selector),
			sqlgraph.To(analyticsartifact.Table, analyticsartifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, debatesession.ReportTable, debatesession.ReportColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *DebateSessionQuery) QueryEvents() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(debatesession.Table, debatesession.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debatesession.EventsTable, debatesession.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DebateSession entity from the query.
// Returns a *NotFoundError when no DebateSession was found.
func (_q *DebateSessionQuery) First(ctx context.Context) (*DebateSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{debatesession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DebateSessionQuery) FirstX(ctx context.Context) *DebateSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DebateSession ID from the query.
// Returns a *NotFoundError when no DebateSession ID was found.
func (_q *DebateSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{debatesession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DebateSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DebateSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DebateSession entity is found.
// Returns a *NotFoundError when no DebateSession entities are found.
func (_q *DebateSessionQuery) Only(ctx context.Context) (*DebateSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{debatesession.Label}
	default:
		return nil, &NotSingularError{debatesession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DebateSessionQuery) OnlyX(ctx context.Context) *DebateSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DebateSession ID in the query.
// Returns a *NotSingularError when more than one DebateSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DebateSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{debatesession.Label}
	default:
		err = &NotSingularError{debatesession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DebateSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DebateSessions.
func (_q *DebateSessionQuery) All(ctx context.Context) ([]*DebateSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DebateSession, *DebateSessionQuery]()
	return withInterceptors[[]*DebateSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DebateSessionQuery) AllX(ctx context.Context) []*DebateSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DebateSession IDs.
func (_q *DebateSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(debatesession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DebateSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DebateSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DebateSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DebateSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DebateSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DebateSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DebateSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DebateSessionQuery) Clone() *DebateSessionQuery {
	if _q == nil {
		return nil
	}
	return &DebateSessionQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]debatesession.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.DebateSession{}, _q.predicates...),
		withTurns:     _q.withTurns.Clone(),
		withRounds:    _q.withRounds.Clone(),
		withRotations: _q.withRotations.Clone(),
		withReport:    _q.withReport.Clone(),
		withEvents:    _q.withEvents.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTurns tells the query-builder to eager-load the nodes that are connected to
// the "turns" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DebateSessionQuery) WithTurns(opts ...func(*DebateTurnQuery)) *DebateSessionQuery {
	query := (&DebateTurnClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTurns = query
	return _q
}

// WithRounds tells the query-builder to eager-load the nodes that are connected to
// the "rounds" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DebateSessionQuery) WithRounds(opts ...func(*DebateRoundQuery)) *DebateSessionQuery {
	query := (&DebateRoundClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRounds = query
	return _q
}

// WithRotations tells the query-builder to eager-load the nodes that are connected to
// the "rotations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DebateSessionQuery) WithRotations(opts ...func(*RotationRecordQuery)) *DebateSessionQuery {
	query := (&RotationRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRotations = query
	return _q
}

// WithReport tells the query-builder to eager-load the nodes that are connected to
// the "report" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DebateSessionQuery) WithReport(opts ...func(*AnalyticsArtifactQuery)) *DebateSessionQuery {
	query := (&AnalyticsArtifactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReport = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DebateSessionQuery) WithEvents(opts ...func(*EventQuery)) *DebateSessionQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Topic string `json:"topic,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DebateSession.Query().
//		GroupBy(debatesession.FieldTopic).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DebateSessionQuery) GroupBy(field string, fields ...string) *DebateSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DebateSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = debatesession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Topic string `json:"topic,omitempty"`
//	}
//
//	client.DebateSession.Query().
//		Select(debatesession.FieldTopic).
//		Scan(ctx, &v)
func (_q *DebateSessionQuery) Select(fields ...string) *DebateSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DebateSessionSelect{DebateSessionQuery: _q}
	sbuild.label = debatesession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DebateSessionSelect configured with the given aggregations.
func (_q *DebateSessionQuery) Aggregate(fns ...AggregateFunc) *DebateSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DebateSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !debatesession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DebateSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DebateSession, error) {
	var (
		nodes       = []*DebateSession{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withTurns != nil,
			_q.withRounds != nil,
			_q.withRotations != nil,
			_q.withReport != nil,
			_q.withEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DebateSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DebateSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withTurns; query != nil {
		if err := _q.loadTurns(ctx, query, nodes,
			func(n *DebateSession) { n.Edges.Turns = []*DebateTurn{} },
			func(n *DebateSession, e *DebateTurn) { n.Edges.Turns = append(n.Edges.Turns, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRounds; query != nil {
		if err := _q.loadRounds(ctx, query, nodes,
			func(n *DebateSession) { n.Edges.Rounds = []*DebateRound{} },
			func(n *DebateSession, e *DebateRound) { n.Edges.Rounds = append(n.Edges.Rounds, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRotations; query != nil {
		if err := _q.loadRotations(ctx, query, nodes,
			func(n *DebateSession) { n.Edges.Rotations = []*RotationRecord{} },
			func(n *DebateSession, e *RotationRecord) { n.Edges.Rotations = append(n.Edges.Rotations, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withReport; query != nil {
		if err := _q.loadReport(ctx, query, nodes, nil,
			func(n *DebateSession, e *AnalyticsArtifact) { n.Edges.Report = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *DebateSession) { n.Edges.Events = []*Event{} },
			func(n *DebateSession, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DebateSessionQuery) loadTurns(ctx context.Context, query *DebateTurnQuery, nodes []*DebateSession, init func(*DebateSession), assign func(*DebateSession, *DebateTurn)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DebateSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(debateturn.FieldSessionID)
	}
	query.Where(predicate.DebateTurn(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(debatesession.TurnsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DebateSessionQuery) loadRounds(ctx context.Context, query *DebateRoundQuery, nodes []*DebateSession, init func(*DebateSession), assign func(*DebateSession, *DebateRound)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DebateSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(debateround.FieldSessionID)
	}
	query.Where(predicate.DebateRound(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(debatesession.RoundsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DebateSessionQuery) loadRotations(ctx context.Context, query *RotationRecordQuery, nodes []*DebateSession, init func(*DebateSession), assign func(*DebateSession, *RotationRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DebateSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(rotationrecord.FieldSessionID)
	}
	query.Where(predicate.RotationRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(debatesession.RotationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DebateSessionQuery) loadReport(ctx context.Context, query *AnalyticsArtifactQuery, nodes []*DebateSession, init func(*DebateSession), assign func(*DebateSession, *AnalyticsArtifact)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DebateSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(analyticsartifact.FieldSessionID)
	}
	query.Where(predicate.AnalyticsArtifact(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(debatesession.ReportColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DebateSessionQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*DebateSession, init func(*DebateSession), assign func(*DebateSession, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DebateSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldSessionID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(debatesession.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DebateSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DebateSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(debatesession.Table, debatesession.Columns, sqlgraph.NewFieldSpec(debatesession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, debatesession.FieldID)
		for i := range fields {
			if fields[i] != debatesession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DebateSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(debatesession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = debatesession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DebateSessionGroupBy is the group-by builder for DebateSession entities.
type DebateSessionGroupBy struct {
	selector
	build *DebateSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DebateSessionGroupBy) Aggregate(fns ...AggregateFunc) *DebateSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DebateSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DebateSessionQuery, *DebateSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DebateSessionGroupBy) sqlScan(ctx context.Context, root *DebateSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DebateSessionSelect is the builder for selecting fields of DebateSession entities.
type DebateSessionSelect struct {
	*DebateSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DebateSessionSelect) Aggregate(fns ...AggregateFunc) *DebateSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DebateSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DebateSessionQuery, *DebateSessionSelect](ctx, _s.DebateSessionQuery, _s, _s.inters, v)
}

func (_s *DebateSessionSelect) sqlScan(ctx context.Context, root *DebateSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
