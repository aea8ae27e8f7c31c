// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agora-labs/agora/ent/debateround"
	"github.com/agora-labs/agora/ent/debatesession"
)

// DebateRoundCreate is the builder for creating a DebateRound entity.
type DebateRoundCreate struct {
	config
	mutation *DebateRoundMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DebateRoundCreate) SetSessionID(v string) *DebateRoundCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRoundIndex sets the "round_index" field.
func (_c *DebateRoundCreate) SetRoundIndex(v int) *DebateRoundCreate {
	_c.mutation.SetRoundIndex(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *DebateRoundCreate) SetPhase(v string) *DebateRoundCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetFirstTurn sets the "first_turn" field.
func (_c *DebateRoundCreate) SetFirstTurn(v int) *DebateRoundCreate {
	_c.mutation.SetFirstTurn(v)
	return _c
}

// SetLastTurn sets the "last_turn" field.
func (_c *DebateRoundCreate) SetLastTurn(v int) *DebateRoundCreate {
	_c.mutation.SetLastTurn(v)
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *DebateRoundCreate) SetMetrics(v map[string]interface{}) *DebateRoundCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *DebateRoundCreate) SetDecision(v map[string]interface{}) *DebateRoundCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DebateRoundCreate) SetCreatedAt(v time.Time) *DebateRoundCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DebateRoundCreate) SetNillableCreatedAt(v *time.Time) *DebateRoundCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DebateRoundCreate) SetID(v string) *DebateRoundCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_c *DebateRoundCreate) SetSession(v *DebateSession) *DebateRoundCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the DebateRoundMutation object of the builder.
func (_c *DebateRoundCreate) Mutation() *DebateRoundMutation {
	return _c.mutation
}

// Save creates the DebateRound in the database.
func (_c *DebateRoundCreate) Save(ctx context.Context) (*DebateRound, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DebateRoundCreate) SaveX(ctx context.Context) *DebateRound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateRoundCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateRoundCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DebateRoundCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := debateround.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DebateRoundCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DebateRound.session_id"`)}
	}
	if _, ok := _c.mutation.RoundIndex(); !ok {
		return &ValidationError{Name: "round_index", err: errors.New(`ent: missing required field "DebateRound.round_index"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "DebateRound.phase"`)}
	}
	if _, ok := _c.mutation.FirstTurn(); !ok {
		return &ValidationError{Name: "first_turn", err: errors.New(`ent: missing required field "DebateRound.first_turn"`)}
	}
	if _, ok := _c.mutation.LastTurn(); !ok {
		return &ValidationError{Name: "last_turn", err: errors.New(`ent: missing required field "DebateRound.last_turn"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DebateRound.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "DebateRound.session"`)}
	}
	return nil
}

func (_c *DebateRoundCreate) sqlSave(ctx context.Context) (*DebateRound, error) {
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
			return nil, fmt.Errorf("unexpected DebateRound.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DebateRoundCreate) createSpec() (*DebateRound, *sqlgraph.CreateSpec) {
	var (
		_node = &DebateRound{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(debateround.Table, sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RoundIndex(); ok {
		_spec.SetField(debateround.FieldRoundIndex, field.TypeInt, value)
		_node.RoundIndex = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(debateround.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.FirstTurn(); ok {
		_spec.SetField(debateround.FieldFirstTurn, field.TypeInt, value)
		_node.FirstTurn = value
	}
	if value, ok := _c.mutation.LastTurn(); ok {
		_spec.SetField(debateround.FieldLastTurn, field.TypeInt, value)
		_node.LastTurn = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(debateround.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(debateround.FieldDecision, field.TypeJSON, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(debateround.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DebateRoundCreateBulk is the builder for creating many DebateRound entities in bulk.
type DebateRoundCreateBulk struct {
	config
	err      error
	builders []*DebateRoundCreate
}

// Save creates the DebateRound entities in the database.
func (_c *DebateRoundCreateBulk) Save(ctx context.Context) ([]*DebateRound, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DebateRound, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DebateRoundMutation)
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
func (_c *DebateRoundCreateBulk) SaveX(ctx context.Context) []*DebateRound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateRoundCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateRoundCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
