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
	"github.com/agora-labs/agora/ent/debateround"
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/debateturn"
	"github.com/agora-labs/agora/ent/event"
	"github.com/agora-labs/agora/ent/rotationrecord"
)

// DebateSessionCreate is the builder for creating a DebateSession entity.
type DebateSessionCreate struct {
	config
	mutation *DebateSessionMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *DebateSessionCreate) SetTopic(v string) *DebateSessionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetReference sets the "reference" field.
func (_c *DebateSessionCreate) SetReference(v string) *DebateSessionCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableReference(v *string) *DebateSessionCreate {
	if v != nil {
		_c.SetReference(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DebateSessionCreate) SetStatus(v debatesession.Status) *DebateSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableStatus(v *debatesession.Status) *DebateSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStatusReason sets the "status_reason" field.
func (_c *DebateSessionCreate) SetStatusReason(v string) *DebateSessionCreate {
	_c.mutation.SetStatusReason(v)
	return _c
}

// SetNillableStatusReason sets the "status_reason" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableStatusReason(v *string) *DebateSessionCreate {
	if v != nil {
		_c.SetStatusReason(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *DebateSessionCreate) SetPhase(v string) *DebateSessionCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillablePhase(v *string) *DebateSessionCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetDebaters sets the "debaters" field.
func (_c *DebateSessionCreate) SetDebaters(v int) *DebateSessionCreate {
	_c.mutation.SetDebaters(v)
	return _c
}

// SetRotationStrategy sets the "rotation_strategy" field.
func (_c *DebateSessionCreate) SetRotationStrategy(v string) *DebateSessionCreate {
	_c.mutation.SetRotationStrategy(v)
	return _c
}

// SetAssignment sets the "assignment" field.
func (_c *DebateSessionCreate) SetAssignment(v map[string]string) *DebateSessionCreate {
	_c.mutation.SetAssignment(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *DebateSessionCreate) SetInputTokens(v int) *DebateSessionCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableInputTokens(v *int) *DebateSessionCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *DebateSessionCreate) SetOutputTokens(v int) *DebateSessionCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableOutputTokens(v *int) *DebateSessionCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *DebateSessionCreate) SetCostEstimate(v float64) *DebateSessionCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableCostEstimate(v *float64) *DebateSessionCreate {
	if v != nil {
		_c.SetCostEstimate(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *DebateSessionCreate) SetErrorCount(v int) *DebateSessionCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableErrorCount(v *int) *DebateSessionCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *DebateSessionCreate) SetRetryCount(v int) *DebateSessionCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableRetryCount(v *int) *DebateSessionCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *DebateSessionCreate) SetDurationMs(v int64) *DebateSessionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableDurationMs(v *int64) *DebateSessionCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DebateSessionCreate) SetCreatedAt(v time.Time) *DebateSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableCreatedAt(v *time.Time) *DebateSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *DebateSessionCreate) SetStartedAt(v time.Time) *DebateSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableStartedAt(v *time.Time) *DebateSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *DebateSessionCreate) SetEndedAt(v time.Time) *DebateSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableEndedAt(v *time.Time) *DebateSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DebateSessionCreate) SetDeletedAt(v time.Time) *DebateSessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableDeletedAt(v *time.Time) *DebateSessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DebateSessionCreate) SetID(v string) *DebateSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTurnIDs adds the "turns" edge to the DebateTurn entity by IDs.
func (_c *DebateSessionCreate) AddTurnIDs(ids ...string) *DebateSessionCreate {
	_c.mutation.AddTurnIDs(ids...)
	return _c
}

// AddTurns adds the "turns" edges to the DebateTurn entity.
func (_c *DebateSessionCreate) AddTurns(v ...*DebateTurn) *DebateSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTurnIDs(ids...)
}

// AddRoundIDs adds the "rounds" edge to the DebateRound entity by IDs.
func (_c *DebateSessionCreate) AddRoundIDs(ids ...string) *DebateSessionCreate {
	_c.mutation.AddRoundIDs(ids...)
	return _c
}

// AddRounds adds the "rounds" edges to the DebateRound entity.
func (_c *DebateSessionCreate) AddRounds(v ...*DebateRound) *DebateSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRoundIDs(ids...)
}

// AddRotationIDs adds the "rotations" edge to the RotationRecord entity by IDs.
func (_c *DebateSessionCreate) AddRotationIDs(ids ...string) *DebateSessionCreate {
	_c.mutation.AddRotationIDs(ids...)
	return _c
}

// AddRotations adds the "rotations" edges to the RotationRecord entity.
func (_c *DebateSessionCreate) AddRotations(v ...*RotationRecord) *DebateSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRotationIDs(ids...)
}

// SetReportID sets the "report" edge to the AnalyticsArtifact entity by ID.
func (_c *DebateSessionCreate) SetReportID(id string) *DebateSessionCreate {
	_c.mutation.SetReportID(id)
	return _c
}

// SetNillableReportID sets the "report" edge to the AnalyticsArtifact entity by ID if the given value is not nil.
func (_c *DebateSessionCreate) SetNillableReportID(id *string) *DebateSessionCreate {
	if id != nil {
		_c = _c.SetReportID(*id)
	}
	return _c
}

// SetReport sets the "report" edge to the AnalyticsArtifact entity.
func (_c *DebateSessionCreate) SetReport(v *AnalyticsArtifact) *DebateSessionCreate {
	return _c.SetReportID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *DebateSessionCreate) AddEventIDs(ids ...int) *DebateSessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *DebateSessionCreate) AddEvents(v ...*Event) *DebateSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the DebateSessionMutation object of the builder.
func (_c *DebateSessionCreate) Mutation() *DebateSessionMutation {
	return _c.mutation
}

// Save creates the DebateSession in the database.
func (_c *DebateSessionCreate) Save(ctx context.Context) (*DebateSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DebateSessionCreate) SaveX(ctx context.Context) *DebateSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DebateSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := debatesession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Phase(); !ok {
		v := debatesession.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := debatesession.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := debatesession.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		v := debatesession.DefaultCostEstimate
		_c.mutation.SetCostEstimate(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := debatesession.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := debatesession.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := debatesession.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := debatesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DebateSessionCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "DebateSession.topic"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DebateSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := debatesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DebateSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "DebateSession.phase"`)}
	}
	if _, ok := _c.mutation.Debaters(); !ok {
		return &ValidationError{Name: "debaters", err: errors.New(`ent: missing required field "DebateSession.debaters"`)}
	}
	if _, ok := _c.mutation.RotationStrategy(); !ok {
		return &ValidationError{Name: "rotation_strategy", err: errors.New(`ent: missing required field "DebateSession.rotation_strategy"`)}
	}
	if _, ok := _c.mutation.Assignment(); !ok {
		return &ValidationError{Name: "assignment", err: errors.New(`ent: missing required field "DebateSession.assignment"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "DebateSession.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "DebateSession.output_tokens"`)}
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		return &ValidationError{Name: "cost_estimate", err: errors.New(`ent: missing required field "DebateSession.cost_estimate"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "DebateSession.error_count"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "DebateSession.retry_count"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "DebateSession.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DebateSession.created_at"`)}
	}
	return nil
}

func (_c *DebateSessionCreate) sqlSave(ctx context.Context) (*DebateSession, error) {
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
			return nil, fmt.Errorf("unexpected DebateSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DebateSessionCreate) createSpec() (*DebateSession, *sqlgraph.CreateSpec) {
	var (
		_node = &DebateSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(debatesession.Table, sqlgraph.NewFieldSpec(debatesession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(debatesession.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(debatesession.FieldReference, field.TypeString, value)
		_node.Reference = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(debatesession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StatusReason(); ok {
		_spec.SetField(debatesession.FieldStatusReason, field.TypeString, value)
		_node.StatusReason = &value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(debatesession.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Debaters(); ok {
		_spec.SetField(debatesession.FieldDebaters, field.TypeInt, value)
		_node.Debaters = value
	}
	if value, ok := _c.mutation.RotationStrategy(); ok {
		_spec.SetField(debatesession.FieldRotationStrategy, field.TypeString, value)
		_node.RotationStrategy = value
	}
	if value, ok := _c.mutation.Assignment(); ok {
		_spec.SetField(debatesession.FieldAssignment, field.TypeJSON, value)
		_node.Assignment = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(debatesession.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(debatesession.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(debatesession.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(debatesession.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(debatesession.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(debatesession.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(debatesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(debatesession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(debatesession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(debatesession.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.TurnsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debatesession.TurnsTable,
			Columns: []string{debatesession.TurnsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debateturn.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debatesession.RoundsTable,
			Columns: []string{debatesession.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RotationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debatesession.RotationsTable,
			Columns: []string{debatesession.RotationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rotationrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   debatesession.ReportTable,
			Columns: []string{debatesession.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyticsartifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debatesession.EventsTable,
			Columns: []string{debatesession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DebateSessionCreateBulk is the builder for creating many DebateSession entities in bulk.
type DebateSessionCreateBulk struct {
	config
	err      error
	builders []*DebateSessionCreate
}

// Save creates the DebateSession entities in the database.
func (_c *DebateSessionCreateBulk) Save(ctx context.Context) ([]*DebateSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DebateSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DebateSessionMutation)
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
func (_c *DebateSessionCreateBulk) SaveX(ctx context.Context) []*DebateSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
