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
	"github.com/agora-labs/agora/ent/debateround"
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/predicate"
)

// DebateRoundUpdate is the builder for updating DebateRound entities.
type DebateRoundUpdate struct {
	config
	hooks    []Hook
	mutation *DebateRoundMutation
}

// Where appends a list predicates to the DebateRoundUpdate builder.
func (_u *DebateRoundUpdate) Where(ps ...predicate.DebateRound) *DebateRoundUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DebateRoundUpdate) SetSessionID(v string) *DebateRoundUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DebateRoundUpdate) SetNillableSessionID(v *string) *DebateRoundUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRoundIndex sets the "round_index" field.
func (_u *DebateRoundUpdate) SetRoundIndex(v int) *DebateRoundUpdate {
	_u.mutation.ResetRoundIndex()
	_u.mutation.SetRoundIndex(v)
	return _u
}

// SetNillableRoundIndex sets the "round_index" field if the given value is not nil.
func (_u *DebateRoundUpdate) SetNillableRoundIndex(v *int) *DebateRoundUpdate {
	if v != nil {
		_u.SetRoundIndex(*v)
	}
	return _u
}

// AddRoundIndex adds value to the "round_index" field.
func (_u *DebateRoundUpdate) AddRoundIndex(v int) *DebateRoundUpdate {
	_u.mutation.AddRoundIndex(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *DebateRoundUpdate) SetPhase(v string) *DebateRoundUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *DebateRoundUpdate) SetNillablePhase(v *string) *DebateRoundUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetFirstTurn sets the "first_turn" field.
func (_u *DebateRoundUpdate) SetFirstTurn(v int) *DebateRoundUpdate {
	_u.mutation.ResetFirstTurn()
	_u.mutation.SetFirstTurn(v)
	return _u
}

// SetNillableFirstTurn sets the "first_turn" field if the given value is not nil.
func (_u *DebateRoundUpdate) SetNillableFirstTurn(v *int) *DebateRoundUpdate {
	if v != nil {
		_u.SetFirstTurn(*v)
	}
	return _u
}

// AddFirstTurn adds value to the "first_turn" field.
func (_u *DebateRoundUpdate) AddFirstTurn(v int) *DebateRoundUpdate {
	_u.mutation.AddFirstTurn(v)
	return _u
}

// SetLastTurn sets the "last_turn" field.
func (_u *DebateRoundUpdate) SetLastTurn(v int) *DebateRoundUpdate {
	_u.mutation.ResetLastTurn()
	_u.mutation.SetLastTurn(v)
	return _u
}

// SetNillableLastTurn sets the "last_turn" field if the given value is not nil.
func (_u *DebateRoundUpdate) SetNillableLastTurn(v *int) *DebateRoundUpdate {
	if v != nil {
		_u.SetLastTurn(*v)
	}
	return _u
}

// AddLastTurn adds value to the "last_turn" field.
func (_u *DebateRoundUpdate) AddLastTurn(v int) *DebateRoundUpdate {
	_u.mutation.AddLastTurn(v)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *DebateRoundUpdate) SetMetrics(v map[string]interface{}) *DebateRoundUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *DebateRoundUpdate) ClearMetrics() *DebateRoundUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetDecision sets the "decision" field.
func (_u *DebateRoundUpdate) SetDecision(v map[string]interface{}) *DebateRoundUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// ClearDecision clears the value of the "decision" field.
func (_u *DebateRoundUpdate) ClearDecision() *DebateRoundUpdate {
	_u.mutation.ClearDecision()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DebateRoundUpdate) SetCreatedAt(v time.Time) *DebateRoundUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DebateRoundUpdate) SetNillableCreatedAt(v *time.Time) *DebateRoundUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_u *DebateRoundUpdate) SetSession(v *DebateSession) *DebateRoundUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the DebateRoundMutation object of the builder.
func (_u *DebateRoundUpdate) Mutation() *DebateRoundMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (_u *DebateRoundUpdate) ClearSession() *DebateRoundUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DebateRoundUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateRoundUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DebateRoundUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateRoundUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateRoundUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DebateRound.session"`)
	}
	return nil
}

func (_u *DebateRoundUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debateround.Table, debateround.Columns, sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundIndex(); ok {
		_spec.SetField(debateround.FieldRoundIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundIndex(); ok {
		_spec.AddField(debateround.FieldRoundIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(debateround.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstTurn(); ok {
		_spec.SetField(debateround.FieldFirstTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstTurn(); ok {
		_spec.AddField(debateround.FieldFirstTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastTurn(); ok {
		_spec.SetField(debateround.FieldLastTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastTurn(); ok {
		_spec.AddField(debateround.FieldLastTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(debateround.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(debateround.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(debateround.FieldDecision, field.TypeJSON, value)
	}
	if _u.mutation.DecisionCleared() {
		_spec.ClearField(debateround.FieldDecision, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(debateround.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   debateround.SessionTable,
			Columns: []string{debateround.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debatesession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   debateround.SessionTable,
			Columns: []string{debateround.SessionColumn},
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
			err = &NotFoundError{debateround.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DebateRoundUpdateOne is the builder for updating a single DebateRound entity.
type DebateRoundUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DebateRoundMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DebateRoundUpdateOne) SetSessionID(v string) *DebateRoundUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DebateRoundUpdateOne) SetNillableSessionID(v *string) *DebateRoundUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRoundIndex sets the "round_index" field.
func (_u *DebateRoundUpdateOne) SetRoundIndex(v int) *DebateRoundUpdateOne {
	_u.mutation.ResetRoundIndex()
	_u.mutation.SetRoundIndex(v)
	return _u
}

// SetNillableRoundIndex sets the "round_index" field if the given value is not nil.
func (_u *DebateRoundUpdateOne) SetNillableRoundIndex(v *int) *DebateRoundUpdateOne {
	if v != nil {
		_u.SetRoundIndex(*v)
	}
	return _u
}

// AddRoundIndex adds value to the "round_index" field.
func (_u *DebateRoundUpdateOne) AddRoundIndex(v int) *DebateRoundUpdateOne {
	_u.mutation.AddRoundIndex(v)
	return _u
}

// SetPhase sets the "phase" field.
func (_u *DebateRoundUpdateOne) SetPhase(v string) *DebateRoundUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *DebateRoundUpdateOne) SetNillablePhase(v *string) *DebateRoundUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetFirstTurn sets the "first_turn" field.
func (_u *DebateRoundUpdateOne) SetFirstTurn(v int) *DebateRoundUpdateOne {
	_u.mutation.ResetFirstTurn()
	_u.mutation.SetFirstTurn(v)
	return _u
}

// SetNillableFirstTurn sets the "first_turn" field if the given value is not nil.
func (_u *DebateRoundUpdateOne) SetNillableFirstTurn(v *int) *DebateRoundUpdateOne {
	if v != nil {
		_u.SetFirstTurn(*v)
	}
	return _u
}

// AddFirstTurn adds value to the "first_turn" field.
func (_u *DebateRoundUpdateOne) AddFirstTurn(v int) *DebateRoundUpdateOne {
	_u.mutation.AddFirstTurn(v)
	return _u
}

// SetLastTurn sets the "last_turn" field.
func (_u *DebateRoundUpdateOne) SetLastTurn(v int) *DebateRoundUpdateOne {
	_u.mutation.ResetLastTurn()
	_u.mutation.SetLastTurn(v)
	return _u
}

// SetNillableLastTurn sets the "last_turn" field if the given value is not nil.
func (_u *DebateRoundUpdateOne) SetNillableLastTurn(v *int) *DebateRoundUpdateOne {
	if v != nil {
		_u.SetLastTurn(*v)
	}
	return _u
}

// AddLastTurn adds value to the "last_turn" field.
func (_u *DebateRoundUpdateOne) AddLastTurn(v int) *DebateRoundUpdateOne {
	_u.mutation.AddLastTurn(v)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *DebateRoundUpdateOne) SetMetrics(v map[string]interface{}) *DebateRoundUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *DebateRoundUpdateOne) ClearMetrics() *DebateRoundUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetDecision sets the "decision" field.
func (_u *DebateRoundUpdateOne) SetDecision(v map[string]interface{}) *DebateRoundUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// ClearDecision clears the value of the "decision" field.
func (_u *DebateRoundUpdateOne) ClearDecision() *DebateRoundUpdateOne {
	_u.mutation.ClearDecision()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DebateRoundUpdateOne) SetCreatedAt(v time.Time) *DebateRoundUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DebateRoundUpdateOne) SetNillableCreatedAt(v *time.Time) *DebateRoundUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_u *DebateRoundUpdateOne) SetSession(v *DebateSession) *DebateRoundUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the DebateRoundMutation object of the builder.
func (_u *DebateRoundUpdateOne) Mutation() *DebateRoundMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (_u *DebateRoundUpdateOne) ClearSession() *DebateRoundUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the DebateRoundUpdate builder.
func (_u *DebateRoundUpdateOne) Where(ps ...predicate.DebateRound) *DebateRoundUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DebateRoundUpdateOne) Select(field string, fields ...string) *DebateRoundUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DebateRound entity.
func (_u *DebateRoundUpdateOne) Save(ctx context.Context) (*DebateRound, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateRoundUpdateOne) SaveX(ctx context.Context) *DebateRound {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DebateRoundUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateRoundUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateRoundUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DebateRound.session"`)
	}
	return nil
}

func (_u *DebateRoundUpdateOne) sqlSave(ctx context.Context) (_node *DebateRound, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debateround.Table, debateround.Columns, sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DebateRound.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, debateround.FieldID)
		for _, f := range fields {
			if !debateround.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != debateround.FieldID {
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
	if value, ok := _u.mutation.RoundIndex(); ok {
		_spec.SetField(debateround.FieldRoundIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundIndex(); ok {
		_spec.AddField(debateround.FieldRoundIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(debateround.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstTurn(); ok {
		_spec.SetField(debateround.FieldFirstTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstTurn(); ok {
		_spec.AddField(debateround.FieldFirstTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastTurn(); ok {
		_spec.SetField(debateround.FieldLastTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastTurn(); ok {
		_spec.AddField(debateround.FieldLastTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(debateround.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(debateround.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(debateround.FieldDecision, field.TypeJSON, value)
	}
	if _u.mutation.DecisionCleared() {
		_spec.ClearField(debateround.FieldDecision, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(debateround.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   debateround.SessionTable,
			Columns: []string{debateround.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debatesession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   debateround.SessionTable,
			Columns: []string{debateround.SessionColumn},
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
	_node = &DebateRound{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debateround.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
