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
	"github.com/agora-labs/agora/ent/debateround"
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/debateturn"
	"github.com/agora-labs/agora/ent/event"
	"github.com/agora-labs/agora/ent/predicate"
	"github.com/agora-labs/agora/ent/rotationrecord"
)

// DebateSessionUpdate is the builder for updating DebateSession entities.
type DebateSessionUpdate struct {
	config
	hooks    []Hook
	mutation *DebateSessionMutation
}

// Where appends a list predicates to the DebateSessionUpdate builder.
func (_u *DebateSessionUpdate) Where(ps ...predicate.DebateSession) *DebateSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *DebateSessionUpdate) SetTopic(v string) *DebateSessionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableTopic(v *string) *DebateSessionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *DebateSessionUpdate) SetReference(v string) *DebateSessionUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableReference(v *string) *DebateSessionUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *DebateSessionUpdate) ClearReference() *DebateSessionUpdate {
	_u.mutation.ClearReference()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DebateSessionUpdate) SetStatus(v debatesession.Status) *DebateSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableStatus(v *debatesession.Status) *DebateSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusReason sets the "status_reason" field.
func (_u *DebateSessionUpdate) SetStatusReason(v string) *DebateSessionUpdate {
	_u.mutation.SetStatusReason(v)
	return _u
}

// SetNillableStatusReason sets the "status_reason" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableStatusReason(v *string) *DebateSessionUpdate {
	if v != nil {
		_u.SetStatusReason(*v)
	}
	return _u
}

// ClearStatusReason clears the value of the "status_reason" field.
func (_u *DebateSessionUpdate) ClearStatusReason() *DebateSessionUpdate {
	_u.mutation.ClearStatusReason()
	return _u
}

// SetPhase sets the "phase" field.
func (_u *DebateSessionUpdate) SetPhase(v string) *DebateSessionUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillablePhase(v *string) *DebateSessionUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetDebaters sets the "debaters" field.
func (_u *DebateSessionUpdate) SetDebaters(v int) *DebateSessionUpdate {
	_u.mutation.ResetDebaters()
	_u.mutation.SetDebaters(v)
	return _u
}

// SetNillableDebaters sets the "debaters" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableDebaters(v *int) *DebateSessionUpdate {
	if v != nil {
		_u.SetDebaters(*v)
	}
	return _u
}

// AddDebaters adds value to the "debaters" field.
func (_u *DebateSessionUpdate) AddDebaters(v int) *DebateSessionUpdate {
	_u.mutation.AddDebaters(v)
	return _u
}

// SetRotationStrategy sets the "rotation_strategy" field.
func (_u *DebateSessionUpdate) SetRotationStrategy(v string) *DebateSessionUpdate {
	_u.mutation.SetRotationStrategy(v)
	return _u
}

// SetNillableRotationStrategy sets the "rotation_strategy" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableRotationStrategy(v *string) *DebateSessionUpdate {
	if v != nil {
		_u.SetRotationStrategy(*v)
	}
	return _u
}

// SetAssignment sets the "assignment" field.
func (_u *DebateSessionUpdate) SetAssignment(v map[string]string) *DebateSessionUpdate {
	_u.mutation.SetAssignment(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *DebateSessionUpdate) SetInputTokens(v int) *DebateSessionUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableInputTokens(v *int) *DebateSessionUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *DebateSessionUpdate) AddInputTokens(v int) *DebateSessionUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *DebateSessionUpdate) SetOutputTokens(v int) *DebateSessionUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableOutputTokens(v *int) *DebateSessionUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *DebateSessionUpdate) AddOutputTokens(v int) *DebateSessionUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *DebateSessionUpdate) SetCostEstimate(v float64) *DebateSessionUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableCostEstimate(v *float64) *DebateSessionUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *DebateSessionUpdate) AddCostEstimate(v float64) *DebateSessionUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *DebateSessionUpdate) SetErrorCount(v int) *DebateSessionUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableErrorCount(v *int) *DebateSessionUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *DebateSessionUpdate) AddErrorCount(v int) *DebateSessionUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DebateSessionUpdate) SetRetryCount(v int) *DebateSessionUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableRetryCount(v *int) *DebateSessionUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DebateSessionUpdate) AddRetryCount(v int) *DebateSessionUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *DebateSessionUpdate) SetDurationMs(v int64) *DebateSessionUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableDurationMs(v *int64) *DebateSessionUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *DebateSessionUpdate) AddDurationMs(v int64) *DebateSessionUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DebateSessionUpdate) SetCreatedAt(v time.Time) *DebateSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableCreatedAt(v *time.Time) *DebateSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DebateSessionUpdate) SetStartedAt(v time.Time) *DebateSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableStartedAt(v *time.Time) *DebateSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *DebateSessionUpdate) ClearStartedAt() *DebateSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *DebateSessionUpdate) SetEndedAt(v time.Time) *DebateSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableEndedAt(v *time.Time) *DebateSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *DebateSessionUpdate) ClearEndedAt() *DebateSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DebateSessionUpdate) SetDeletedAt(v time.Time) *DebateSessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableDeletedAt(v *time.Time) *DebateSessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DebateSessionUpdate) ClearDeletedAt() *DebateSessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddTurnIDs adds the "turns" edge to the DebateTurn entity by IDs.
func (_u *DebateSessionUpdate) AddTurnIDs(ids ...string) *DebateSessionUpdate {
	_u.mutation.AddTurnIDs(ids...)
	return _u
}

// AddTurns adds the "turns" edges to the DebateTurn entity.
func (_u *DebateSessionUpdate) AddTurns(v ...*DebateTurn) *DebateSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTurnIDs(ids...)
}

// AddRoundIDs adds the "rounds" edge to the DebateRound entity by IDs.
func (_u *DebateSessionUpdate) AddRoundIDs(ids ...string) *DebateSessionUpdate {
	_u.mutation.AddRoundIDs(ids...)
	return _u
}

// AddRounds adds the "rounds" edges to the DebateRound entity.
func (_u *DebateSessionUpdate) AddRounds(v ...*DebateRound) *DebateSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoundIDs(ids...)
}

// AddRotationIDs adds the "rotations" edge to the RotationRecord entity by IDs.
func (_u *DebateSessionUpdate) AddRotationIDs(ids ...string) *DebateSessionUpdate {
	_u.mutation.AddRotationIDs(ids...)
	return _u
}

// AddRotations adds the "rotations" edges to the RotationRecord entity.
func (_u *DebateSessionUpdate) AddRotations(v ...*RotationRecord) *DebateSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRotationIDs(ids...)
}

// SetReportID sets the "report" edge to the AnalyticsArtifact entity by ID.
func (_u *DebateSessionUpdate) SetReportID(id string) *DebateSessionUpdate {
	_u.mutation.SetReportID(id)
	return _u
}

// SetNillableReportID sets the "report" edge to the AnalyticsArtifact entity by ID if the given value is not nil.
func (_u *DebateSessionUpdate) SetNillableReportID(id *string) *DebateSessionUpdate {
	if id != nil {
		_u = _u.SetReportID(*id)
	}
	return _u
}

// SetReport sets the "report" edge to the AnalyticsArtifact entity.
func (_u *DebateSessionUpdate) SetReport(v *AnalyticsArtifact) *DebateSessionUpdate {
	return _u.SetReportID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *DebateSessionUpdate) AddEventIDs(ids ...int) *DebateSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *DebateSessionUpdate) AddEvents(v ...*Event) *DebateSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the DebateSessionMutation object of the builder.
func (_u *DebateSessionUpdate) Mutation() *DebateSessionMutation {
	return _u.mutation
}

// ClearTurns clears all "turns" edges to the DebateTurn entity.
func (_u *DebateSessionUpdate) ClearTurns() *DebateSessionUpdate {
	_u.mutation.ClearTurns()
	return _u
}

// RemoveTurnIDs removes the "turns" edge to DebateTurn entities by IDs.
func (_u *DebateSessionUpdate) RemoveTurnIDs(ids ...string) *DebateSessionUpdate {
	_u.mutation.RemoveTurnIDs(ids...)
	return _u
}

// RemoveTurns removes "turns" edges to DebateTurn entities.
func (_u *DebateSessionUpdate) RemoveTurns(v ...*DebateTurn) *DebateSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTurnIDs(ids...)
}

// ClearRounds clears all "rounds" edges to the DebateRound entity.
func (_u *DebateSessionUpdate) ClearRounds() *DebateSessionUpdate {
	_u.mutation.ClearRounds()
	return _u
}

// RemoveRoundIDs removes the "rounds" edge to DebateRound entities by IDs.
func (_u *DebateSessionUpdate) RemoveRoundIDs(ids ...string) *DebateSessionUpdate {
	_u.mutation.RemoveRoundIDs(ids...)
	return _u
}

// RemoveRounds removes "rounds" edges to DebateRound entities.
func (_u *DebateSessionUpdate) RemoveRounds(v ...*DebateRound) *DebateSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoundIDs(ids...)
}

// ClearRotations clears all "rotations" edges to the RotationRecord entity.
func (_u *DebateSessionUpdate) ClearRotations() *DebateSessionUpdate {
	_u.mutation.ClearRotations()
	return _u
}

// RemoveRotationIDs removes the "rotations" edge to RotationRecord entities by IDs.
func (_u *DebateSessionUpdate) RemoveRotationIDs(ids ...string) *DebateSessionUpdate {
	_u.mutation.RemoveRotationIDs(ids...)
	return _u
}

// RemoveRotations removes "rotations" edges to RotationRecord entities.
func (_u *DebateSessionUpdate) RemoveRotations(v ...*RotationRecord) *DebateSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRotationIDs(ids...)
}

// ClearReport clears the "report" edge to the AnalyticsArtifact entity.
func (_u *DebateSessionUpdate) ClearReport() *DebateSessionUpdate {
	_u.mutation.ClearReport()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *DebateSessionUpdate) ClearEvents() *DebateSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *DebateSessionUpdate) RemoveEventIDs(ids ...int) *DebateSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *DebateSessionUpdate) RemoveEvents(v ...*Event) *DebateSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DebateSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DebateSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := debatesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DebateSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DebateSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debatesession.Table, debatesession.Columns, sqlgraph.NewFieldSpec(debatesession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(debatesession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(debatesession.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(debatesession.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(debatesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusReason(); ok {
		_spec.SetField(debatesession.FieldStatusReason, field.TypeString, value)
	}
	if _u.mutation.StatusReasonCleared() {
		_spec.ClearField(debatesession.FieldStatusReason, field.TypeString)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(debatesession.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Debaters(); ok {
		_spec.SetField(debatesession.FieldDebaters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDebaters(); ok {
		_spec.AddField(debatesession.FieldDebaters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RotationStrategy(); ok {
		_spec.SetField(debatesession.FieldRotationStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Assignment(); ok {
		_spec.SetField(debatesession.FieldAssignment, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(debatesession.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(debatesession.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(debatesession.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(debatesession.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(debatesession.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(debatesession.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(debatesession.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(debatesession.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(debatesession.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(debatesession.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(debatesession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(debatesession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(debatesession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(debatesession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(debatesession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(debatesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(debatesession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(debatesession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(debatesession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTurnsIDs(); len(nodes) > 0 && !_u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TurnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoundsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoundsIDs(); len(nodes) > 0 && !_u.mutation.RoundsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoundsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RotationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRotationsIDs(); len(nodes) > 0 && !_u.mutation.RotationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RotationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debatesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DebateSessionUpdateOne is the builder for updating a single DebateSession entity.
type DebateSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DebateSessionMutation
}

// SetTopic sets the "topic" field.
func (_u *DebateSessionUpdateOne) SetTopic(v string) *DebateSessionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableTopic(v *string) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *DebateSessionUpdateOne) SetReference(v string) *DebateSessionUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableReference(v *string) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *DebateSessionUpdateOne) ClearReference() *DebateSessionUpdateOne {
	_u.mutation.ClearReference()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DebateSessionUpdateOne) SetStatus(v debatesession.Status) *DebateSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableStatus(v *debatesession.Status) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusReason sets the "status_reason" field.
func (_u *DebateSessionUpdateOne) SetStatusReason(v string) *DebateSessionUpdateOne {
	_u.mutation.SetStatusReason(v)
	return _u
}

// SetNillableStatusReason sets the "status_reason" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableStatusReason(v *string) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetStatusReason(*v)
	}
	return _u
}

// ClearStatusReason clears the value of the "status_reason" field.
func (_u *DebateSessionUpdateOne) ClearStatusReason() *DebateSessionUpdateOne {
	_u.mutation.ClearStatusReason()
	return _u
}

// SetPhase sets the "phase" field.
func (_u *DebateSessionUpdateOne) SetPhase(v string) *DebateSessionUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillablePhase(v *string) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetDebaters sets the "debaters" field.
func (_u *DebateSessionUpdateOne) SetDebaters(v int) *DebateSessionUpdateOne {
	_u.mutation.ResetDebaters()
	_u.mutation.SetDebaters(v)
	return _u
}

// SetNillableDebaters sets the "debaters" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableDebaters(v *int) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetDebaters(*v)
	}
	return _u
}

// AddDebaters adds value to the "debaters" field.
func (_u *DebateSessionUpdateOne) AddDebaters(v int) *DebateSessionUpdateOne {
	_u.mutation.AddDebaters(v)
	return _u
}

// SetRotationStrategy sets the "rotation_strategy" field.
func (_u *DebateSessionUpdateOne) SetRotationStrategy(v string) *DebateSessionUpdateOne {
	_u.mutation.SetRotationStrategy(v)
	return _u
}

// SetNillableRotationStrategy sets the "rotation_strategy" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableRotationStrategy(v *string) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetRotationStrategy(*v)
	}
	return _u
}

// SetAssignment sets the "assignment" field.
func (_u *DebateSessionUpdateOne) SetAssignment(v map[string]string) *DebateSessionUpdateOne {
	_u.mutation.SetAssignment(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *DebateSessionUpdateOne) SetInputTokens(v int) *DebateSessionUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableInputTokens(v *int) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *DebateSessionUpdateOne) AddInputTokens(v int) *DebateSessionUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *DebateSessionUpdateOne) SetOutputTokens(v int) *DebateSessionUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableOutputTokens(v *int) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *DebateSessionUpdateOne) AddOutputTokens(v int) *DebateSessionUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *DebateSessionUpdateOne) SetCostEstimate(v float64) *DebateSessionUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableCostEstimate(v *float64) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *DebateSessionUpdateOne) AddCostEstimate(v float64) *DebateSessionUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *DebateSessionUpdateOne) SetErrorCount(v int) *DebateSessionUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableErrorCount(v *int) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *DebateSessionUpdateOne) AddErrorCount(v int) *DebateSessionUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DebateSessionUpdateOne) SetRetryCount(v int) *DebateSessionUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableRetryCount(v *int) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DebateSessionUpdateOne) AddRetryCount(v int) *DebateSessionUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *DebateSessionUpdateOne) SetDurationMs(v int64) *DebateSessionUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableDurationMs(v *int64) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *DebateSessionUpdateOne) AddDurationMs(v int64) *DebateSessionUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DebateSessionUpdateOne) SetCreatedAt(v time.Time) *DebateSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DebateSessionUpdateOne) SetStartedAt(v time.Time) *DebateSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableStartedAt(v *time.Time) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *DebateSessionUpdateOne) ClearStartedAt() *DebateSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *DebateSessionUpdateOne) SetEndedAt(v time.Time) *DebateSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableEndedAt(v *time.Time) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *DebateSessionUpdateOne) ClearEndedAt() *DebateSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DebateSessionUpdateOne) SetDeletedAt(v time.Time) *DebateSessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableDeletedAt(v *time.Time) *DebateSessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DebateSessionUpdateOne) ClearDeletedAt() *DebateSessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddTurnIDs adds the "turns" edge to the DebateTurn entity by IDs.
func (_u *DebateSessionUpdateOne) AddTurnIDs(ids ...string) *DebateSessionUpdateOne {
	_u.mutation.AddTurnIDs(ids...)
	return _u
}

// AddTurns adds the "turns" edges to the DebateTurn entity.
func (_u *DebateSessionUpdateOne) AddTurns(v ...*DebateTurn) *DebateSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTurnIDs(ids...)
}

// AddRoundIDs adds the "rounds" edge to the DebateRound entity by IDs.
func (_u *DebateSessionUpdateOne) AddRoundIDs(ids ...string) *DebateSessionUpdateOne {
	_u.mutation.AddRoundIDs(ids...)
	return _u
}

// AddRounds adds the "rounds" edges to the DebateRound entity.
func (_u *DebateSessionUpdateOne) AddRounds(v ...*DebateRound) *DebateSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoundIDs(ids...)
}

// AddRotationIDs adds the "rotations" edge to the RotationRecord entity by IDs.
func (_u *DebateSessionUpdateOne) AddRotationIDs(ids ...string) *DebateSessionUpdateOne {
	_u.mutation.AddRotationIDs(ids...)
	return _u
}

// AddRotations adds the "rotations" edges to the RotationRecord entity.
func (_u *DebateSessionUpdateOne) AddRotations(v ...*RotationRecord) *DebateSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRotationIDs(ids...)
}

// SetReportID sets the "report" edge to the AnalyticsArtifact entity by ID.
func (_u *DebateSessionUpdateOne) SetReportID(id string) *DebateSessionUpdateOne {
	_u.mutation.SetReportID(id)
	return _u
}

// SetNillableReportID sets the "report" edge to the AnalyticsArtifact entity by ID if the given value is not nil.
func (_u *DebateSessionUpdateOne) SetNillableReportID(id *string) *DebateSessionUpdateOne {
	if id != nil {
		_u = _u.SetReportID(*id)
	}
	return _u
}

// SetReport sets the "report" edge to the AnalyticsArtifact entity.
func (_u *DebateSessionUpdateOne) SetReport(v *AnalyticsArtifact) *DebateSessionUpdateOne {
	return _u.SetReportID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *DebateSessionUpdateOne) AddEventIDs(ids ...int) *DebateSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *DebateSessionUpdateOne) AddEvents(v ...*Event) *DebateSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the DebateSessionMutation object of the builder.
func (_u *DebateSessionUpdateOne) Mutation() *DebateSessionMutation {
	return _u.mutation
}

// ClearTurns clears all "turns" edges to the DebateTurn entity.
func (_u *DebateSessionUpdateOne) ClearTurns() *DebateSessionUpdateOne {
	_u.mutation.ClearTurns()
	return _u
}

// RemoveTurnIDs removes the "turns" edge to DebateTurn entities by IDs.
func (_u *DebateSessionUpdateOne) RemoveTurnIDs(ids ...string) *DebateSessionUpdateOne {
	_u.mutation.RemoveTurnIDs(ids...)
	return _u
}

// RemoveTurns removes "turns" edges to DebateTurn entities.
func (_u *DebateSessionUpdateOne) RemoveTurns(v ...*DebateTurn) *DebateSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTurnIDs(ids...)
}

// ClearRounds clears all "rounds" edges to the DebateRound entity.
func (_u *DebateSessionUpdateOne) ClearRounds() *DebateSessionUpdateOne {
	_u.mutation.ClearRounds()
	return _u
}

// RemoveRoundIDs removes the "rounds" edge to DebateRound entities by IDs.
func (_u *DebateSessionUpdateOne) RemoveRoundIDs(ids ...string) *DebateSessionUpdateOne {
	_u.mutation.RemoveRoundIDs(ids...)
	return _u
}

// RemoveRounds removes "rounds" edges to DebateRound entities.
func (_u *DebateSessionUpdateOne) RemoveRounds(v ...*DebateRound) *DebateSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoundIDs(ids...)
}

// ClearRotations clears all "rotations" edges to the RotationRecord entity.
func (_u *DebateSessionUpdateOne) ClearRotations() *DebateSessionUpdateOne {
	_u.mutation.ClearRotations()
	return _u
}

// RemoveRotationIDs removes the "rotations" edge to RotationRecord entities by IDs.
func (_u *DebateSessionUpdateOne) RemoveRotationIDs(ids ...string) *DebateSessionUpdateOne {
	_u.mutation.RemoveRotationIDs(ids...)
	return _u
}

// RemoveRotations removes "rotations" edges to RotationRecord entities.
func (_u *DebateSessionUpdateOne) RemoveRotations(v ...*RotationRecord) *DebateSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRotationIDs(ids...)
}

// ClearReport clears the "report" edge to the AnalyticsArtifact entity.
func (_u *DebateSessionUpdateOne) ClearReport() *DebateSessionUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *DebateSessionUpdateOne) ClearEvents() *DebateSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *DebateSessionUpdateOne) RemoveEventIDs(ids ...int) *DebateSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *DebateSessionUpdateOne) RemoveEvents(v ...*Event) *DebateSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the DebateSessionUpdate builder.
func (_u *DebateSessionUpdateOne) Where(ps ...predicate.DebateSession) *DebateSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DebateSessionUpdateOne) Select(field string, fields ...string) *DebateSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DebateSession entity.
func (_u *DebateSessionUpdateOne) Save(ctx context.Context) (*DebateSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateSessionUpdateOne) SaveX(ctx context.Context) *DebateSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DebateSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := debatesession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DebateSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DebateSessionUpdateOne) sqlSave(ctx context.Context) (_node *DebateSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debatesession.Table, debatesession.Columns, sqlgraph.NewFieldSpec(debatesession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DebateSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, debatesession.FieldID)
		for _, f := range fields {
			if !debatesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != debatesession.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(debatesession.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(debatesession.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(debatesession.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(debatesession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusReason(); ok {
		_spec.SetField(debatesession.FieldStatusReason, field.TypeString, value)
	}
	if _u.mutation.StatusReasonCleared() {
		_spec.ClearField(debatesession.FieldStatusReason, field.TypeString)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(debatesession.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Debaters(); ok {
		_spec.SetField(debatesession.FieldDebaters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDebaters(); ok {
		_spec.AddField(debatesession.FieldDebaters, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RotationStrategy(); ok {
		_spec.SetField(debatesession.FieldRotationStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Assignment(); ok {
		_spec.SetField(debatesession.FieldAssignment, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(debatesession.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(debatesession.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(debatesession.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(debatesession.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(debatesession.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(debatesession.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(debatesession.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(debatesession.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(debatesession.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(debatesession.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(debatesession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(debatesession.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(debatesession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(debatesession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(debatesession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(debatesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(debatesession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(debatesession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(debatesession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTurnsIDs(); len(nodes) > 0 && !_u.mutation.TurnsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TurnsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoundsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoundsIDs(); len(nodes) > 0 && !_u.mutation.RoundsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoundsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RotationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRotationsIDs(); len(nodes) > 0 && !_u.mutation.RotationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RotationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DebateSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debatesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
