// Code generated by ent, DO NOT EDIT.

package debateturn

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agora-labs/agora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldSessionID, v))
}

// TurnIndex applies equality check predicate on the "turn_index" field. It's identical to TurnIndexEQ.
func TurnIndex(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldTurnIndex, v))
}

// Round applies equality check predicate on the "round" field. It's identical to RoundEQ.
func Round(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldRound, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldRole, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldModel, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldPhase, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldContent, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldLatencyMs, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldOutputTokens, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldContainsFold(FieldSessionID, v))
}

// TurnIndexEQ applies the EQ predicate on the "turn_index" field.
func TurnIndexEQ(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldTurnIndex, v))
}

// TurnIndexNEQ applies the NEQ predicate on the "turn_index" field.
func TurnIndexNEQ(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldTurnIndex, v))
}

// TurnIndexIn applies the In predicate on the "turn_index" field.
func TurnIndexIn(vs ...int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldTurnIndex, vs...))
}

// TurnIndexNotIn applies the NotIn predicate on the "turn_index" field.
func TurnIndexNotIn(vs ...int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldTurnIndex, vs...))
}

// TurnIndexGT applies the GT predicate on the "turn_index" field.
func TurnIndexGT(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldTurnIndex, v))
}

// TurnIndexGTE applies the GTE predicate on the "turn_index" field.
func TurnIndexGTE(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldTurnIndex, v))
}

// TurnIndexLT applies the LT predicate on the "turn_index" field.
func TurnIndexLT(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldTurnIndex, v))
}

// TurnIndexLTE applies the LTE predicate on the "turn_index" field.
func TurnIndexLTE(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldTurnIndex, v))
}

// RoundEQ applies the EQ predicate on the "round" field.
func RoundEQ(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldRound, v))
}

// RoundNEQ applies the NEQ predicate on the "round" field.
func RoundNEQ(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldRound, v))
}

// RoundIn applies the In predicate on the "round" field.
func RoundIn(vs ...int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldRound, vs...))
}

// RoundNotIn applies the NotIn predicate on the "round" field.
func RoundNotIn(vs ...int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldRound, vs...))
}

// RoundGT applies the GT predicate on the "round" field.
func RoundGT(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldRound, v))
}

// RoundGTE applies the GTE predicate on the "round" field.
func RoundGTE(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldRound, v))
}

// RoundLT applies the LT predicate on the "round" field.
func RoundLT(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldRound, v))
}

// RoundLTE applies the LTE predicate on the "round" field.
func RoundLTE(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldRound, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldContainsFold(FieldRole, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldContainsFold(FieldModel, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldContainsFold(FieldPhase, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldContainsFold(FieldContent, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldLatencyMs, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldOutputTokens, v))
}

// ArgumentIsNil applies the IsNil predicate on the "argument" field.
func ArgumentIsNil() predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIsNull(FieldArgument))
}

// ArgumentNotNil applies the NotNil predicate on the "argument" field.
func ArgumentNotNil() predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotNull(FieldArgument))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DebateTurn {
	return predicate.DebateTurn(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.DebateTurn {
	return predicate.DebateTurn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.DebateSession) predicate.DebateTurn {
	return predicate.DebateTurn(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DebateTurn) predicate.DebateTurn {
	return predicate.DebateTurn(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DebateTurn) predicate.DebateTurn {
	return predicate.DebateTurn(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DebateTurn) predicate.DebateTurn {
	return predicate.DebateTurn(sql.NotPredicates(p))
}
