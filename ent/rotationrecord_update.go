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
	"github.com/agora-labs/agora/ent/predicate"
	"github.com/agora-labs/agora/ent/rotationrecord"
)

// RotationRecordUpdate is the builder for updating RotationRecord entities.
type RotationRecordUpdate struct {
	config
	hooks    []Hook
	mutation *RotationRecordMutation
}

// Where appends a list predicates to the RotationRecordUpdate builder.
func (_u *RotationRecordUpdate) Where(ps ...predicate.RotationRecord) *RotationRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RotationRecordUpdate) SetSessionID(v string) *RotationRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RotationRecordUpdate) SetNillableSessionID(v *string) *RotationRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *RotationRecordUpdate) SetRole(v string) *RotationRecordUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *RotationRecordUpdate) SetNillableRole(v *string) *RotationRecordUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetOldModel sets the "old_model" field.
func (_u *RotationRecordUpdate) SetOldModel(v string) *RotationRecordUpdate {
	_u.mutation.SetOldModel(v)
	return _u
}

// SetNillableOldModel sets the "old_model" field if the given value is not nil.
func (_u *RotationRecordUpdate) SetNillableOldModel(v *string) *RotationRecordUpdate {
	if v != nil {
		_u.SetOldModel(*v)
	}
	return _u
}

// SetNewModel sets the "new_model" field.
func (_u *RotationRecordUpdate) SetNewModel(v string) *RotationRecordUpdate {
	_u.mutation.SetNewModel(v)
	return _u
}

// SetNillableNewModel sets the "new_model" field if the given value is not nil.
func (_u *RotationRecordUpdate) SetNillableNewModel(v *string) *RotationRecordUpdate {
	if v != nil {
		_u.SetNewModel(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *RotationRecordUpdate) SetReason(v string) *RotationRecordUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RotationRecordUpdate) SetNillableReason(v *string) *RotationRecordUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RotationRecordUpdate) SetConfidence(v float64) *RotationRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RotationRecordUpdate) SetNillableConfidence(v *float64) *RotationRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RotationRecordUpdate) AddConfidence(v float64) *RotationRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetExpectedImprovement sets the "expected_improvement" field.
func (_u *RotationRecordUpdate) SetExpectedImprovement(v float64) *RotationRecordUpdate {
	_u.mutation.ResetExpectedImprovement()
	_u.mutation.SetExpectedImprovement(v)
	return _u
}

// SetNillableExpectedImprovement sets the "expected_improvement" field if the given value is not nil.
func (_u *RotationRecordUpdate) SetNillableExpectedImprovement(v *float64) *RotationRecordUpdate {
	if v != nil {
		_u.SetExpectedImprovement(*v)
	}
	return _u
}

// AddExpectedImprovement adds value to the "expected_improvement" field.
func (_u *RotationRecordUpdate) AddExpectedImprovement(v float64) *RotationRecordUpdate {
	_u.mutation.AddExpectedImprovement(v)
	return _u
}

// SetEmergency sets the "emergency" field.
func (_u *RotationRecordUpdate) SetEmergency(v bool) *RotationRecordUpdate {
	_u.mutation.SetEmergency(v)
	return _u
}

// SetNillableEmergency sets the "emergency" field if the given value is not nil.
func (_u *RotationRecordUpdate) SetNillableEmergency(v *bool) *RotationRecordUpdate {
	if v != nil {
		_u.SetEmergency(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *RotationRecordUpdate) SetPhase(v string) *RotationRecordUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *RotationRecordUpdate) SetNillablePhase(v *string) *RotationRecordUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetAfterTurn sets the "after_turn" field.
func (_u *RotationRecordUpdate) SetAfterTurn(v int) *RotationRecordUpdate {
	_u.mutation.ResetAfterTurn()
	_u.mutation.SetAfterTurn(v)
	return _u
}

// SetNillableAfterTurn sets the "after_turn" field if the given value is not nil.
func (_u *RotationRecordUpdate) SetNillableAfterTurn(v *int) *RotationRecordUpdate {
	if v != nil {
		_u.SetAfterTurn(*v)
	}
	return _u
}

// AddAfterTurn adds value to the "after_turn" field.
func (_u *RotationRecordUpdate) AddAfterTurn(v int) *RotationRecordUpdate {
	_u.mutation.AddAfterTurn(v)
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *RotationRecordUpdate) SetAppliedAt(v time.Time) *RotationRecordUpdate {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *RotationRecordUpdate) SetNillableAppliedAt(v *time.Time) *RotationRecordUpdate {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_u *RotationRecordUpdate) SetSession(v *DebateSession) *RotationRecordUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the RotationRecordMutation object of the builder.
func (_u *RotationRecordUpdate) Mutation() *RotationRecordMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (_u *RotationRecordUpdate) ClearSession() *RotationRecordUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RotationRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RotationRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RotationRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RotationRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RotationRecordUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RotationRecord.session"`)
	}
	return nil
}

func (_u *RotationRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rotationrecord.Table, rotationrecord.Columns, sqlgraph.NewFieldSpec(rotationrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(rotationrecord.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldModel(); ok {
		_spec.SetField(rotationrecord.FieldOldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewModel(); ok {
		_spec.SetField(rotationrecord.FieldNewModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(rotationrecord.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(rotationrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(rotationrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpectedImprovement(); ok {
		_spec.SetField(rotationrecord.FieldExpectedImprovement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedImprovement(); ok {
		_spec.AddField(rotationrecord.FieldExpectedImprovement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Emergency(); ok {
		_spec.SetField(rotationrecord.FieldEmergency, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(rotationrecord.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.AfterTurn(); ok {
		_spec.SetField(rotationrecord.FieldAfterTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAfterTurn(); ok {
		_spec.AddField(rotationrecord.FieldAfterTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(rotationrecord.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rotationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RotationRecordUpdateOne is the builder for updating a single RotationRecord entity.
type RotationRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RotationRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *RotationRecordUpdateOne) SetSessionID(v string) *RotationRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RotationRecordUpdateOne) SetNillableSessionID(v *string) *RotationRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *RotationRecordUpdateOne) SetRole(v string) *RotationRecordUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *RotationRecordUpdateOne) SetNillableRole(v *string) *RotationRecordUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetOldModel sets the "old_model" field.
func (_u *RotationRecordUpdateOne) SetOldModel(v string) *RotationRecordUpdateOne {
	_u.mutation.SetOldModel(v)
	return _u
}

// SetNillableOldModel sets the "old_model" field if the given value is not nil.
func (_u *RotationRecordUpdateOne) SetNillableOldModel(v *string) *RotationRecordUpdateOne {
	if v != nil {
		_u.SetOldModel(*v)
	}
	return _u
}

// SetNewModel sets the "new_model" field.
func (_u *RotationRecordUpdateOne) SetNewModel(v string) *RotationRecordUpdateOne {
	_u.mutation.SetNewModel(v)
	return _u
}

// SetNillableNewModel sets the "new_model" field if the given value is not nil.
func (_u *RotationRecordUpdateOne) SetNillableNewModel(v *string) *RotationRecordUpdateOne {
	if v != nil {
		_u.SetNewModel(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *RotationRecordUpdateOne) SetReason(v string) *RotationRecordUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RotationRecordUpdateOne) SetNillableReason(v *string) *RotationRecordUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RotationRecordUpdateOne) SetConfidence(v float64) *RotationRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RotationRecordUpdateOne) SetNillableConfidence(v *float64) *RotationRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RotationRecordUpdateOne) AddConfidence(v float64) *RotationRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetExpectedImprovement sets the "expected_improvement" field.
func (_u *RotationRecordUpdateOne) SetExpectedImprovement(v float64) *RotationRecordUpdateOne {
	_u.mutation.ResetExpectedImprovement()
	_u.mutation.SetExpectedImprovement(v)
	return _u
}

// SetNillableExpectedImprovement sets the "expected_improvement" field if the given value is not nil.
func (_u *RotationRecordUpdateOne) SetNillableExpectedImprovement(v *float64) *RotationRecordUpdateOne {
	if v != nil {
		_u.SetExpectedImprovement(*v)
	}
	return _u
}

// AddExpectedImprovement adds value to the "expected_improvement" field.
func (_u *RotationRecordUpdateOne) AddExpectedImprovement(v float64) *RotationRecordUpdateOne {
	_u.mutation.AddExpectedImprovement(v)
	return _u
}

// SetEmergency sets the "emergency" field.
func (_u *RotationRecordUpdateOne) SetEmergency(v bool) *RotationRecordUpdateOne {
	_u.mutation.SetEmergency(v)
	return _u
}

// SetNillableEmergency sets the "emergency" field if the given value is not nil.
func (_u *RotationRecordUpdateOne) SetNillableEmergency(v *bool) *RotationRecordUpdateOne {
	if v != nil {
		_u.SetEmergency(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *RotationRecordUpdateOne) SetPhase(v string) *RotationRecordUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *RotationRecordUpdateOne) SetNillablePhase(v *string) *RotationRecordUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetAfterTurn sets the "after_turn" field.
func (_u *RotationRecordUpdateOne) SetAfterTurn(v int) *RotationRecordUpdateOne {
	_u.mutation.ResetAfterTurn()
	_u.mutation.SetAfterTurn(v)
	return _u
}

// SetNillableAfterTurn sets the "after_turn" field if the given value is not nil.
func (_u *RotationRecordUpdateOne) SetNillableAfterTurn(v *int) *RotationRecordUpdateOne {
	if v != nil {
		_u.SetAfterTurn(*v)
	}
	return _u
}

// AddAfterTurn adds value to the "after_turn" field.
func (_u *RotationRecordUpdateOne) AddAfterTurn(v int) *RotationRecordUpdateOne {
	_u.mutation.AddAfterTurn(v)
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *RotationRecordUpdateOne) SetAppliedAt(v time.Time) *RotationRecordUpdateOne {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *RotationRecordUpdateOne) SetNillableAppliedAt(v *time.Time) *RotationRecordUpdateOne {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the DebateSession entity.
func (_u *RotationRecordUpdateOne) SetSession(v *DebateSession) *RotationRecordUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the RotationRecordMutation object of the builder.
func (_u *RotationRecordUpdateOne) Mutation() *RotationRecordMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the DebateSession entity.
func (_u *RotationRecordUpdateOne) ClearSession() *RotationRecordUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the RotationRecordUpdate builder.
func (_u *RotationRecordUpdateOne) Where(ps ...predicate.RotationRecord) *RotationRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RotationRecordUpdateOne) Select(field string, fields ...string) *RotationRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RotationRecord entity.
func (_u *RotationRecordUpdateOne) Save(ctx context.Context) (*RotationRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RotationRecordUpdateOne) SaveX(ctx context.Context) *RotationRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RotationRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RotationRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RotationRecordUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RotationRecord.session"`)
	}
	return nil
}

func (_u *RotationRecordUpdateOne) sqlSave(ctx context.Context) (_node *RotationRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rotationrecord.Table, rotationrecord.Columns, sqlgraph.NewFieldSpec(rotationrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RotationRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rotationrecord.FieldID)
		for _, f := range fields {
			if !rotationrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rotationrecord.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(rotationrecord.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldModel(); ok {
		_spec.SetField(rotationrecord.FieldOldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewModel(); ok {
		_spec.SetField(rotationrecord.FieldNewModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(rotationrecord.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(rotationrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(rotationrecord.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpectedImprovement(); ok {
		_spec.SetField(rotationrecord.FieldExpectedImprovement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedImprovement(); ok {
		_spec.AddField(rotationrecord.FieldExpectedImprovement, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Emergency(); ok {
		_spec.SetField(rotationrecord.FieldEmergency, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(rotationrecord.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.AfterTurn(); ok {
		_spec.SetField(rotationrecord.FieldAfterTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAfterTurn(); ok {
		_spec.AddField(rotationrecord.FieldAfterTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(rotationrecord.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RotationRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rotationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
