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
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/debateturn"
	"github.com/agora-labs/agora/ent/predicate"
)

// DebateTurnUpdate is the builder for updating DebateTurn entities.
type DebateTurnUpdate struct {
	config
	hooks    []Hook
	mutation *DebateTurnMutation
}

// Where appends a list predicates to the DebateTurnUpdate builder.
func (_u *DebateTurnUpdate) Where(ps ...predicate.DebateTurn) *DebateTurnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DebateTurnUpdate) SetSessionID(v string) *DebateTurnUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DebateTurnUpdate) SetNillableSessionID(v *string) *DebateTurnUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTurnIndex sets the "turn_index" field.
func (_u *DebateTurnUpdate) SetTurnIndex(v int) *DebateTurnUpdate {
	_u.mutation.ResetTurnIndex()
	_u.mutation.SetTurnIndex(v)
	return _u
}

// SetNillableTurnIndex sets the "turn_index" field if the given value is not nil.
func (_u *DebateTurnUpdate) SetNillableTurnIndex(v *int) *DebateTurnUpdate {
	if v != nil {
		_u.SetTurnIndex(*v)
	}
	return _u
}

// AddTurnIndex adds value to the "turn_index" field.
func (_u *DebateTurnUpdate) AddTurnIndex(v int) *DebateTurnUpdate {
	_u.mutation.AddTurnIndex(v)
	return _u
}

// SetRound sets the "round" field.
func (_u *DebateTurnUpdate) SetRound(v int) *DebateTurnUpdate {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *DebateTurnUpdate) SetNillableRound(v *int) *DebateTurnUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *DebateTurnUpdate) AddRound(v int) *DebateTurnUpdate {
	_u.mutation.AddRound(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *DebateTurnUpdate) SetRole(v string) *DebateTurnUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *DebateTurnUpdate) SetNillableRole(v *string) *DebateTurnUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *DebateTurnUpdate) SetModel(v string) *DebateTurnUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *DebateTurnUpdate) SetNillableModel(v *string) *DebateTurnUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *DebateTurnUpdate) SetPhase(v string) *DebateTurnUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *DebateTurnUpdate) SetNillablePhase(v *string) *DebateTurnUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DebateTurnUpdate) SetContent(v string) *DebateTurnUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DebateTurnUpdate) SetNillableContent(v *string) *DebateTurnUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *DebateTurnUpdate) SetLatencyMs(v int64) *DebateTurnUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *DebateTurnUpdate) SetNillableLatencyMs(v *int64) *DebateTurnUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *DebateTurnUpdate) AddLatencyMs(v int64) *DebateTurnUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *DebateTurnUpdate) SetInputTokens(v int) *DebateTurnUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *DebateTurnUpdate) SetNillableInputTokens(v *int) *DebateTurnUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *DebateTurnUpdate) AddInputTokens(v int) *DebateTurnUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *DebateTurnUpdate) SetOutputTokens(v int) *DebateTurnUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *DebateTurnUpdate) SetNillableOutputTokens(v *int) *DebateTurnUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *DebateTurnUpdate) AddOutputTokens(v int) *DebateTurnUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetArgument sets the "argument" field.
func (_u *DebateTurnUpdate) SetArgument(v map[string]interface{}) *DebateTurnUpdate {
	_u.mutation.SetArgument(v)
	return _u
}

// ClearArgument clears the value of the "argument" field.
func (_u *DebateTurnUpdate) ClearArgument() *DebateTurnUpdate {
	_u.mutation.ClearArgument()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DebateTurnUpdate) SetCreatedAt(v time.Time) *DebateTurnUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DebateTurnUpdate) SetNillableCreatedAt(v *time.Time) *DebateTurnUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_u *DebateTurnUpdate) SetSession(v *DebateSession) *DebateTurnUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the DebateTurnMutation object of the builder.
func (_u *DebateTurnUpdate) Mutation() *DebateTurnMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (_u *DebateTurnUpdate) ClearSession() *DebateTurnUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DebateTurnUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateTurnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DebateTurnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateTurnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateTurnUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DebateTurn.session"`)
	}
	return nil
}

func (_u *DebateTurnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debateturn.Table, debateturn.Columns, sqlgraph.NewFieldSpec(debateturn.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TurnIndex(); ok {
		_spec.SetField(debateturn.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnIndex(); ok {
		_spec.AddField(debateturn.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(debateturn.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(debateturn.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(debateturn.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(debateturn.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(debateturn.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(debateturn.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(debateturn.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(debateturn.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(debateturn.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(debateturn.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(debateturn.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(debateturn.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Argument(); ok {
		_spec.SetField(debateturn.FieldArgument, field.TypeJSON, value)
	}
	if _u.mutation.ArgumentCleared() {
		_spec.ClearField(debateturn.FieldArgument, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(debateturn.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   debateturn.SessionTable,
			Columns: []string{debateturn.SessionColumn},
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
			Table:   debateturn.SessionTable,
			Columns: []string{debateturn.SessionColumn},
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
			err = &NotFoundError{debateturn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DebateTurnUpdateOne is the builder for updating a single DebateTurn entity.
type DebateTurnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DebateTurnMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DebateTurnUpdateOne) SetSessionID(v string) *DebateTurnUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DebateTurnUpdateOne) SetNillableSessionID(v *string) *DebateTurnUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTurnIndex sets the "turn_index" field.
func (_u *DebateTurnUpdateOne) SetTurnIndex(v int) *DebateTurnUpdateOne {
	_u.mutation.ResetTurnIndex()
	_u.mutation.SetTurnIndex(v)
	return _u
}

// SetNillableTurnIndex sets the "turn_index" field if the given value is not nil.
func (_u *DebateTurnUpdateOne) SetNillableTurnIndex(v *int) *DebateTurnUpdateOne {
	if v != nil {
		_u.SetTurnIndex(*v)
	}
	return _u
}

// AddTurnIndex adds value to the "turn_index" field.
func (_u *DebateTurnUpdateOne) AddTurnIndex(v int) *DebateTurnUpdateOne {
	_u.mutation.AddTurnIndex(v)
	return _u
}

// SetRound sets the "round" field.
func (_u *DebateTurnUpdateOne) SetRound(v int) *DebateTurnUpdateOne {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *DebateTurnUpdateOne) SetNillableRound(v *int) *DebateTurnUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *DebateTurnUpdateOne) AddRound(v int) *DebateTurnUpdateOne {
	_u.mutation.AddRound(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *DebateTurnUpdateOne) SetRole(v string) *DebateTurnUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *DebateTurnUpdateOne) SetNillableRole(v *string) *DebateTurnUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *DebateTurnUpdateOne) SetModel(v string) *DebateTurnUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *DebateTurnUpdateOne) SetNillableModel(v *string) *DebateTurnUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *DebateTurnUpdateOne) SetPhase(v string) *DebateTurnUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *DebateTurnUpdateOne) SetNillablePhase(v *string) *DebateTurnUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DebateTurnUpdateOne) SetContent(v string) *DebateTurnUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DebateTurnUpdateOne) SetNillableContent(v *string) *DebateTurnUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *DebateTurnUpdateOne) SetLatencyMs(v int64) *DebateTurnUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *DebateTurnUpdateOne) SetNillableLatencyMs(v *int64) *DebateTurnUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *DebateTurnUpdateOne) AddLatencyMs(v int64) *DebateTurnUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *DebateTurnUpdateOne) SetInputTokens(v int) *DebateTurnUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *DebateTurnUpdateOne) SetNillableInputTokens(v *int) *DebateTurnUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *DebateTurnUpdateOne) AddInputTokens(v int) *DebateTurnUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *DebateTurnUpdateOne) SetOutputTokens(v int) *DebateTurnUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *DebateTurnUpdateOne) SetNillableOutputTokens(v *int) *DebateTurnUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *DebateTurnUpdateOne) AddOutputTokens(v int) *DebateTurnUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetArgument sets the "argument" field.
func (_u *DebateTurnUpdateOne) SetArgument(v map[string]interface{}) *DebateTurnUpdateOne {
	_u.mutation.SetArgument(v)
	return _u
}

// ClearArgument clears the value of the "argument" field.
func (_u *DebateTurnUpdateOne) ClearArgument() *DebateTurnUpdateOne {
	_u.mutation.ClearArgument()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DebateTurnUpdateOne) SetCreatedAt(v time.Time) *DebateTurnUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DebateTurnUpdateOne) SetNillableCreatedAt(v *time.Time) *DebateTurnUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_u *DebateTurnUpdateOne) SetSession(v *DebateSession) *DebateTurnUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the DebateTurnMutation object of the builder.
func (_u *DebateTurnUpdateOne) Mutation() *DebateTurnMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (_u *DebateTurnUpdateOne) ClearSession() *DebateTurnUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the DebateTurnUpdate builder.
func (_u *DebateTurnUpdateOne) Where(ps ...predicate.DebateTurn) *DebateTurnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DebateTurnUpdateOne) Select(field string, fields ...string) *DebateTurnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DebateTurn entity.
func (_u *DebateTurnUpdateOne) Save(ctx context.Context) (*DebateTurn, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateTurnUpdateOne) SaveX(ctx context.Context) *DebateTurn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DebateTurnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateTurnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateTurnUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DebateTurn.session"`)
	}
	return nil
}

func (_u *DebateTurnUpdateOne) sqlSave(ctx context.Context) (_node *DebateTurn, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debateturn.Table, debateturn.Columns, sqlgraph.NewFieldSpec(debateturn.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DebateTurn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, debateturn.FieldID)
		for _, f := range fields {
			if !debateturn.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != debateturn.FieldID {
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
	if value, ok := _u.mutation.TurnIndex(); ok {
		_spec.SetField(debateturn.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnIndex(); ok {
		_spec.AddField(debateturn.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(debateturn.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(debateturn.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(debateturn.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(debateturn.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(debateturn.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(debateturn.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(debateturn.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(debateturn.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(debateturn.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(debateturn.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(debateturn.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(debateturn.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Argument(); ok {
		_spec.SetField(debateturn.FieldArgument, field.TypeJSON, value)
	}
	if _u.mutation.ArgumentCleared() {
		_spec.ClearField(debateturn.FieldArgument, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(debateturn.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   debateturn.SessionTable,
			Columns: []string{debateturn.SessionColumn},
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
			Table:   debateturn.SessionTable,
			Columns: []string{debateturn.SessionColumn},
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
	_node = &DebateTurn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debateturn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
