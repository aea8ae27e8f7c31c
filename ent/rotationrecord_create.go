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
	"github.com/agora-labs/agora/ent/rotationrecord"
)

// RotationRecordCreate is the builder for creating a RotationRecord entity.
type RotationRecordCreate struct {
	config
	mutation *RotationRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *RotationRecordCreate) SetSessionID(v string) *RotationRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *RotationRecordCreate) SetRole(v string) *RotationRecordCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetOldModel sets the "old_model" field.
func (_c *RotationRecordCreate) SetOldModel(v string) *RotationRecordCreate {
	_c.mutation.SetOldModel(v)
	return _c
}

// SetNewModel sets the "new_model" field.
func (_c *RotationRecordCreate) SetNewModel(v string) *RotationRecordCreate {
	_c.mutation.SetNewModel(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *RotationRecordCreate) SetReason(v string) *RotationRecordCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *RotationRecordCreate) SetConfidence(v float64) *RotationRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *RotationRecordCreate) SetNillableConfidence(v *float64) *RotationRecordCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetExpectedImprovement sets the "expected_improvement" field.
func (_c *RotationRecordCreate) SetExpectedImprovement(v float64) *RotationRecordCreate {
	_c.mutation.SetExpectedImprovement(v)
	return _c
}

// SetNillableExpectedImprovement sets the "expected_improvement" field if the given value is not nil.
func (_c *RotationRecordCreate) SetNillableExpectedImprovement(v *float64) *RotationRecordCreate {
	if v != nil {
		_c.SetExpectedImprovement(*v)
	}
	return _c
}

// SetEmergency sets the "emergency" field.
func (_c *RotationRecordCreate) SetEmergency(v bool) *RotationRecordCreate {
	_c.mutation.SetEmergency(v)
	return _c
}

// SetNillableEmergency sets the "emergency" field if the given value is not nil.
func (_c *RotationRecordCreate) SetNillableEmergency(v *bool) *RotationRecordCreate {
	if v != nil {
		_c.SetEmergency(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *RotationRecordCreate) SetPhase(v string) *RotationRecordCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetAfterTurn sets the "after_turn" field.
func (_c *RotationRecordCreate) SetAfterTurn(v int) *RotationRecordCreate {
	_c.mutation.SetAfterTurn(v)
	return _c
}

// SetAppliedAt sets the "applied_at" field.
func (_c *RotationRecordCreate) SetAppliedAt(v time.Time) *RotationRecordCreate {
	_c.mutation.SetAppliedAt(v)
	return _c
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_c *RotationRecordCreate) SetNillableAppliedAt(v *time.Time) *RotationRecordCreate {
	if v != nil {
		_c.SetAppliedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RotationRecordCreate) SetID(v string) *RotationRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_c *RotationRecordCreate) SetSession(v *DebateSession) *RotationRecordCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the RotationRecordMutation object of the builder.
func (_c *RotationRecordCreate) Mutation() *RotationRecordMutation {
	return _c.mutation
}

// Save creates the RotationRecord in the database.
func (_c *RotationRecordCreate) Save(ctx context.Context) (*RotationRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RotationRecordCreate) SaveX(ctx context.Context) *RotationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RotationRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RotationRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RotationRecordCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := rotationrecord.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.ExpectedImprovement(); !ok {
		v := rotationrecord.DefaultExpectedImprovement
		_c.mutation.SetExpectedImprovement(v)
	}
	if _, ok := _c.mutation.Emergency(); !ok {
		v := rotationrecord.DefaultEmergency
		_c.mutation.SetEmergency(v)
	}
	if _, ok := _c.mutation.AppliedAt(); !ok {
		v := rotationrecord.DefaultAppliedAt()
		_c.mutation.SetAppliedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RotationRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RotationRecord.session_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "RotationRecord.role"`)}
	}
	if _, ok := _c.mutation.OldModel(); !ok {
		return &ValidationError{Name: "old_model", err: errors.New(`ent: missing required field "RotationRecord.old_model"`)}
	}
	if _, ok := _c.mutation.NewModel(); !ok {
		return &ValidationError{Name: "new_model", err: errors.New(`ent: missing required field "RotationRecord.new_model"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "RotationRecord.reason"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "RotationRecord.confidence"`)}
	}
	if _, ok := _c.mutation.ExpectedImprovement(); !ok {
		return &ValidationError{Name: "expected_improvement", err: errors.New(`ent: missing required field "RotationRecord.expected_improvement"`)}
	}
	if _, ok := _c.mutation.Emergency(); !ok {
		return &ValidationError{Name: "emergency", err: errors.New(`ent: missing required field "RotationRecord.emergency"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "RotationRecord.phase"`)}
	}
	if _, ok := _c.mutation.AfterTurn(); !ok {
		return &ValidationError{Name: "after_turn", err: errors.New(`ent: missing required field "RotationRecord.after_turn"`)}
	}
	if _, ok := _c.mutation.AppliedAt(); !ok {
		return &ValidationError{Name: "applied_at", err: errors.New(`ent: missing required field "RotationRecord.applied_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "RotationRecord.session"`)}
	}
	return nil
}

func (_c *RotationRecordCreate) sqlSave(ctx context.Context) (*RotationRecord, error) {
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
			return nil, fmt.Errorf("unexpected RotationRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RotationRecordCreate) createSpec() (*RotationRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &RotationRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rotationrecord.Table, sqlgraph.NewFieldSpec(rotationrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(rotationrecord.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.OldModel(); ok {
		_spec.SetField(rotationrecord.FieldOldModel, field.TypeString, value)
		_node.OldModel = value
	}
	if value, ok := _c.mutation.NewModel(); ok {
		_spec.SetField(rotationrecord.FieldNewModel, field.TypeString, value)
		_node.NewModel = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(rotationrecord.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(rotationrecord.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.ExpectedImprovement(); ok {
		_spec.SetField(rotationrecord.FieldExpectedImprovement, field.TypeFloat64, value)
		_node.ExpectedImprovement = value
	}
	if value, ok := _c.mutation.Emergency(); ok {
		_spec.SetField(rotationrecord.FieldEmergency, field.TypeBool, value)
		_node.Emergency = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(rotationrecord.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.AfterTurn(); ok {
		_spec.SetField(rotationrecord.FieldAfterTurn, field.TypeInt, value)
		_node.AfterTurn = value
	}
	if value, ok := _c.mutation.AppliedAt(); ok {
		_spec.SetField(rotationrecord.FieldAppliedAt, field.TypeTime, value)
		_node.AppliedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   rotationrecord.SessionTable,
			Columns: []string{rotationrecord.SessionColumn},
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

// RotationRecordCreateBulk is the builder for creating many RotationRecord entities in bulk.
type RotationRecordCreateBulk struct {
	config
	err      error
	builders []*RotationRecordCreate
}

// Save creates the RotationRecord entities in the database.
func (_c *RotationRecordCreateBulk) Save(ctx context.Context) ([]*RotationRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RotationRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RotationRecordMutation)
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
func (_c *RotationRecordCreateBulk) SaveX(ctx context.Context) []*RotationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RotationRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RotationRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
