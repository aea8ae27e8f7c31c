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
	"github.com/agora-labs/agora/ent/analyticsartifact"
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/predicate"
)

// AnalyticsArtifactUpdate is the builder for updating AnalyticsArtifact entities.
type AnalyticsArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *AnalyticsArtifactMutation
}

// Where appends a list predicates to the AnalyticsArtifactUpdate builder.
func (_u *AnalyticsArtifactUpdate) Where(ps ...predicate.AnalyticsArtifact) *AnalyticsArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnalyticsArtifactUpdate) SetSessionID(v string) *AnalyticsArtifactUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnalyticsArtifactUpdate) SetNillableSessionID(v *string) *AnalyticsArtifactUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReport sets the "report" field.
func (_u *AnalyticsArtifactUpdate) SetReport(v map[string]interface{}) *AnalyticsArtifactUpdate {
	_u.mutation.SetReport(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalyticsArtifactUpdate) SetCreatedAt(v time.Time) *AnalyticsArtifactUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalyticsArtifactUpdate) SetNillableCreatedAt(v *time.Time) *AnalyticsArtifactUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_u *AnalyticsArtifactUpdate) SetSession(v *DebateSession) *AnalyticsArtifactUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AnalyticsArtifactMutation object of the builder.
func (_u *AnalyticsArtifactUpdate) Mutation() *AnalyticsArtifactMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (_u *AnalyticsArtifactUpdate) ClearSession() *AnalyticsArtifactUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalyticsArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyticsArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalyticsArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyticsArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyticsArtifactUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalyticsArtifact.session"`)
	}
	return nil
}

func (_u *AnalyticsArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analyticsartifact.Table, analyticsartifact.Columns, sqlgraph.NewFieldSpec(analyticsartifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(analyticsartifact.FieldReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analyticsartifact.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   analyticsartifact.SessionTable,
			Columns: []string{analyticsartifact.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debatesession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   analyticsartifact.SessionTable,
			Columns: []string{analyticsartifact.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debatesession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyticsartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalyticsArtifactUpdateOne is the builder for updating a single AnalyticsArtifact entity.
type AnalyticsArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalyticsArtifactMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnalyticsArtifactUpdateOne) SetSessionID(v string) *AnalyticsArtifactUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnalyticsArtifactUpdateOne) SetNillableSessionID(v *string) *AnalyticsArtifactUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReport sets the "report" field.
func (_u *AnalyticsArtifactUpdateOne) SetReport(v map[string]interface{}) *AnalyticsArtifactUpdateOne {
	_u.mutation.SetReport(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalyticsArtifactUpdateOne) SetCreatedAt(v time.Time) *AnalyticsArtifactUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalyticsArtifactUpdateOne) SetNillableCreatedAt(v *time.Time) *AnalyticsArtifactUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_u *AnalyticsArtifactUpdateOne) SetSession(v *DebateSession) *AnalyticsArtifactUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AnalyticsArtifactMutation object of the builder.
func (_u *AnalyticsArtifactUpdateOne) Mutation() *AnalyticsArtifactMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (_u *AnalyticsArtifactUpdateOne) ClearSession() *AnalyticsArtifactUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the AnalyticsArtifactUpdate builder.
func (_u *AnalyticsArtifactUpdateOne) Where(ps ...predicate.AnalyticsArtifact) *AnalyticsArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalyticsArtifactUpdateOne) Select(field string, fields ...string) *AnalyticsArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalyticsArtifact entity.
func (_u *AnalyticsArtifactUpdateOne) Save(ctx context.Context) (*AnalyticsArtifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyticsArtifactUpdateOne) SaveX(ctx context.Context) *AnalyticsArtifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalyticsArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyticsArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyticsArtifactUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalyticsArtifact.session"`)
	}
	return nil
}

func (_u *AnalyticsArtifactUpdateOne) sqlSave(ctx context.Context) (_node *AnalyticsArtifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analyticsartifact.Table, analyticsartifact.Columns, sqlgraph.NewFieldSpec(analyticsartifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalyticsArtifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analyticsartifact.FieldID)
		for _, f := range fields {
			if !analyticsartifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analyticsartifact.FieldID {
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
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(analyticsartifact.FieldReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analyticsartifact.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   analyticsartifact.SessionTable,
			Columns: []string{analyticsartifact.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debatesession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   analyticsartifact.SessionTable,
			Columns: []string{analyticsartifact.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debatesession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalyticsArtifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyticsartifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
