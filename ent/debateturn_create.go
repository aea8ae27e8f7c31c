// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/debateturn"
)

// DebateTurnCreate is the builder for creating a DebateTurn entity.
type DebateTurnCreate struct {
	config
	mutation *DebateTurnMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DebateTurnCreate) SetSessionID(v string) *DebateTurnCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTurnIndex sets the "turn_index" field.
func (_c *DebateTurnCreate) SetTurnIndex(v int) *DebateTurnCreate {
	_c.mutation.SetTurnIndex(v)
	return _c
}

// SetRound sets the "round" field.
func (_c *DebateTurnCreate) SetRound(v int) *DebateTurnCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_c *DebateTurnCreate) SetNillableRound(v *int) *DebateTurnCreate {
	if v != nil {
		_c.SetRound(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *DebateTurnCreate) SetRole(v string) *DebateTurnCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *DebateTurnCreate) SetModel(v string) *DebateTurnCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *DebateTurnCreate) SetPhase(v string) *DebateTurnCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *DebateTurnCreate) SetContent(v string) *DebateTurnCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *DebateTurnCreate) SetLatencyMs(v int64) *DebateTurnCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *DebateTurnCreate) SetNillableLatencyMs(v *int64) *DebateTurnCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *DebateTurnCreate) SetInputTokens(v int) *DebateTurnCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *DebateTurnCreate) SetNillableInputTokens(v *int) *DebateTurnCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *DebateTurnCreate) SetOutputTokens(v int) *DebateTurnCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *DebateTurnCreate) SetNillableOutputTokens(v *int) *DebateTurnCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetArgument sets the "argument" field.
func (_c *DebateTurnCreate) SetArgument(v map[string]interface{}) *DebateTurnCreate {
	_c.mutation.SetArgument(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DebateTurnCreate) SetCreatedAt(v time.Time) *DebateTurnCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DebateTurnCreate) SetNillableCreatedAt(v *time.Time) *DebateTurnCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DebateTurnCreate) SetID(v string) *DebateTurnCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_c *DebateTurnCreate) SetSession(v *DebateSession) *DebateTurnCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the DebateTurnMutation object of the builder.
func (_c *DebateTurnCreate) Mutation() *DebateTurnMutation {
	return _c.mutation
}

// Save creates the DebateTurn in the database.
func (_c *DebateTurnCreate) Save(ctx context.Context) (*DebateTurn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DebateTurnCreate) SaveX(ctx context.Context) *DebateTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateTurnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateTurnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DebateTurnCreate) defaults() {
	if _, ok := _c.mutation.Round(); !ok {
		v := debateturn.DefaultRound
		_c.mutation.SetRound(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := debateturn.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := debateturn.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := debateturn.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := debateturn.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DebateTurnCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DebateTurn.session_id"`)}
	}
	if _, ok := _c.mutation.TurnIndex(); !ok {
		return &ValidationError{Name: "turn_index", err: errors.New(`ent: missing required field "DebateTurn.turn_index"`)}
	}
	if _, ok := _c.mutation.Round(); !ok {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required field "DebateTurn.round"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "DebateTurn.role"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "DebateTurn.model"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "DebateTurn.phase"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "DebateTurn.content"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "DebateTurn.latency_ms"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "DebateTurn.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "DebateTurn.output_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DebateTurn.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "DebateTurn.session"`)}
	}
	return nil
}

func (_c *DebateTurnCreate) sqlSave(ctx context.Context) (*DebateTurn, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DebateTurn.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DebateTurnCreate) createSpec() (*DebateTurn, *sqlgraph.CreateSpec) {
	var (
		_node = &DebateTurn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(debateturn.Table, sqlgraph.NewFieldSpec(debateturn.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TurnIndex(); ok {
		_spec.SetField(debateturn.FieldTurnIndex, field.TypeInt, value)
		_node.TurnIndex = value
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(debateturn.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(debateturn.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(debateturn.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(debateturn.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(debateturn.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(debateturn.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(debateturn.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(debateturn.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.Argument(); ok {
		_spec.SetField(debateturn.FieldArgument, field.TypeJSON, value)
		_node.Argument = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(debateturn.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DebateTurnCreateBulk is the builder for creating many DebateTurn entities in bulk.
type DebateTurnCreateBulk struct {
	config
	err      error
	builders []*DebateTurnCreate
}

// Save creates the DebateTurn entities in the database.
func (_c *DebateTurnCreateBulk) Save(ctx context.Context) ([]*DebateTurn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DebateTurn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DebateTurnMutation)
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
func (_c *DebateTurnCreateBulk) SaveX(ctx context.Context) []*DebateTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateTurnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateTurnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
