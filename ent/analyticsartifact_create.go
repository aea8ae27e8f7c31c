// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agora-labs/agora/ent/analyticsartifact"
	"github.com/agora-labs/agora/ent/debatesession"
)

// AnalyticsArtifactCreate is the builder for creating a AnalyticsArtifact entity.
type AnalyticsArtifactCreate struct {
	config
	mutation *AnalyticsArtifactMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AnalyticsArtifactCreate) SetSessionID(v string) *AnalyticsArtifactCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetReport sets the "report" field.
func (_c *AnalyticsArtifactCreate) SetReport(v map[string]interface{}) *AnalyticsArtifactCreate {
	_c.mutation.SetReport(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalyticsArtifactCreate) SetCreatedAt(v time.Time) *AnalyticsArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalyticsArtifactCreate) SetNillableCreatedAt(v *time.Time) *AnalyticsArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalyticsArtifactCreate) SetID(v string) *AnalyticsArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_c *AnalyticsArtifactCreate) SetSession(v *DebateSession) *AnalyticsArtifactCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AnalyticsArtifactMutation object of the builder.
func (_c *AnalyticsArtifactCreate) Mutation() *AnalyticsArtifactMutation {
	return _c.mutation
}

// Save creates the AnalyticsArtifact in the database.
func (_c *AnalyticsArtifactCreate) Save(ctx context.Context) (*AnalyticsArtifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalyticsArtifactCreate) SaveX(ctx context.Context) *AnalyticsArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyticsArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyticsArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalyticsArtifactCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analyticsartifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalyticsArtifactCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnalyticsArtifact.session_id"`)}
	}
	if _, ok := _c.mutation.Report(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required field "AnalyticsArtifact.report"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalyticsArtifact.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AnalyticsArtifact.session"`)}
	}
	return nil
}

func (_c *AnalyticsArtifactCreate) sqlSave(ctx context.Context) (*AnalyticsArtifact, error) {
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
			return nil, fmt.Errorf("unexpected AnalyticsArtifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalyticsArtifactCreate) createSpec() (*AnalyticsArtifact, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalyticsArtifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analyticsartifact.Table, sqlgraph.NewFieldSpec(analyticsartifact.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Report(); ok {
		_spec.SetField(analyticsartifact.FieldReport, field.TypeJSON, value)
		_node.Report = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analyticsartifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalyticsArtifactCreateBulk is the builder for creating many AnalyticsArtifact entities in bulk.
type AnalyticsArtifactCreateBulk struct {
	config
	err      error
	builders []*AnalyticsArtifactCreate
}

// Save creates the AnalyticsArtifact entities in the database.
func (_c *AnalyticsArtifactCreateBulk) Save(ctx context.Context) ([]*AnalyticsArtifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalyticsArtifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalyticsArtifactMutation)
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
func (_c *AnalyticsArtifactCreateBulk) SaveX(ctx context.Context) []*AnalyticsArtifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyticsArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyticsArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
