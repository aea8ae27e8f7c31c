// Code generated by ent, DO NOT EDIT.

package rotationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agora-labs/agora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldSessionID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldRole, v))
}

// OldModel applies equality check predicate on the "old_model" field. It's identical to OldModelEQ.
func OldModel(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldOldModel, v))
}

// NewModel applies equality check predicate on the "new_model" field. It's identical to NewModelEQ.
func NewModel(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldNewModel, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldReason, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldConfidence, v))
}

// ExpectedImprovement applies equality check predicate on the "expected_improvement" field. It's identical to ExpectedImprovementEQ.
func ExpectedImprovement(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldExpectedImprovement, v))
}

// Emergency applies equality check predicate on the "emergency" field. It's identical to EmergencyEQ.
func Emergency(v bool) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldEmergency, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldPhase, v))
}

// AfterTurn applies equality check predicate on the "after_turn" field. It's identical to AfterTurnEQ.
func AfterTurn(v int) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldAfterTurn, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldAppliedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContainsFold(FieldRole, v))
}

// OldModelEQ applies the EQ predicate on the "old_model" field.
func OldModelEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldOldModel, v))
}

// OldModelNEQ applies the NEQ predicate on the "old_model" field.
func OldModelNEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldOldModel, v))
}

// OldModelIn applies the In predicate on the "old_model" field.
func OldModelIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldIn(FieldOldModel, vs...))
}

// OldModelNotIn applies the NotIn predicate on the "old_model" field.
func OldModelNotIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNotIn(FieldOldModel, vs...))
}

// OldModelGT applies the GT predicate on the "old_model" field.
func OldModelGT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGT(FieldOldModel, v))
}

// OldModelGTE applies the GTE predicate on the "old_model" field.
func OldModelGTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGTE(FieldOldModel, v))
}

// OldModelLT applies the LT predicate on the "old_model" field.
func OldModelLT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLT(FieldOldModel, v))
}

// OldModelLTE applies the LTE predicate on the "old_model" field.
func OldModelLTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLTE(FieldOldModel, v))
}

// OldModelContains applies the Contains predicate on the "old_model" field.
func OldModelContains(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContains(FieldOldModel, v))
}

// OldModelHasPrefix applies the HasPrefix predicate on the "old_model" field.
func OldModelHasPrefix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasPrefix(FieldOldModel, v))
}

// OldModelHasSuffix applies the HasSuffix predicate on the "old_model" field.
func OldModelHasSuffix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasSuffix(FieldOldModel, v))
}

// OldModelEqualFold applies the EqualFold predicate on the "old_model" field.
func OldModelEqualFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEqualFold(FieldOldModel, v))
}

// OldModelContainsFold applies the ContainsFold predicate on the "old_model" field.
func OldModelContainsFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContainsFold(FieldOldModel, v))
}

// NewModelEQ applies the EQ predicate on the "new_model" field.
func NewModelEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldNewModel, v))
}

// NewModelNEQ applies the NEQ predicate on the "new_model" field.
func NewModelNEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldNewModel, v))
}

// NewModelIn applies the In predicate on the "new_model" field.
func NewModelIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldIn(FieldNewModel, vs...))
}

// NewModelNotIn applies the NotIn predicate on the "new_model" field.
func NewModelNotIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNotIn(FieldNewModel, vs...))
}

// NewModelGT applies the GT predicate on the "new_model" field.
func NewModelGT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGT(FieldNewModel, v))
}

// NewModelGTE applies the GTE predicate on the "new_model" field.
func NewModelGTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGTE(FieldNewModel, v))
}

// NewModelLT applies the LT predicate on the "new_model" field.
func NewModelLT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLT(FieldNewModel, v))
}

// NewModelLTE applies the LTE predicate on the "new_model" field.
func NewModelLTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLTE(FieldNewModel, v))
}

// NewModelContains applies the Contains predicate on the "new_model" field.
func NewModelContains(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContains(FieldNewModel, v))
}

// NewModelHasPrefix applies the HasPrefix predicate on the "new_model" field.
func NewModelHasPrefix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasPrefix(FieldNewModel, v))
}

// NewModelHasSuffix applies the HasSuffix predicate on the "new_model" field.
func NewModelHasSuffix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasSuffix(FieldNewModel, v))
}

// NewModelEqualFold applies the EqualFold predicate on the "new_model" field.
func NewModelEqualFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEqualFold(FieldNewModel, v))
}

// NewModelContainsFold applies the ContainsFold predicate on the "new_model" field.
func NewModelContainsFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContainsFold(FieldNewModel, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContainsFold(FieldReason, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLTE(FieldConfidence, v))
}

// ExpectedImprovementEQ applies the EQ predicate on the "expected_improvement" field.
func ExpectedImprovementEQ(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldExpectedImprovement, v))
}

// ExpectedImprovementNEQ applies the NEQ predicate on the "expected_improvement" field.
func ExpectedImprovementNEQ(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldExpectedImprovement, v))
}

// ExpectedImprovementIn applies the In predicate on the "expected_improvement" field.
func ExpectedImprovementIn(vs ...float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldIn(FieldExpectedImprovement, vs...))
}

// ExpectedImprovementNotIn applies the NotIn predicate on the "expected_improvement" field.
func ExpectedImprovementNotIn(vs ...float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNotIn(FieldExpectedImprovement, vs...))
}

// ExpectedImprovementGT applies the GT predicate on the "expected_improvement" field.
func ExpectedImprovementGT(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGT(FieldExpectedImprovement, v))
}

// ExpectedImprovementGTE applies the GTE predicate on the "expected_improvement" field.
func ExpectedImprovementGTE(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGTE(FieldExpectedImprovement, v))
}

// ExpectedImprovementLT applies the LT predicate on the "expected_improvement" field.
func ExpectedImprovementLT(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLT(FieldExpectedImprovement, v))
}

// ExpectedImprovementLTE applies the LTE predicate on the "expected_improvement" field.
func ExpectedImprovementLTE(v float64) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLTE(FieldExpectedImprovement, v))
}

// EmergencyEQ applies the EQ predicate on the "emergency" field.
func EmergencyEQ(v bool) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldEmergency, v))
}

// EmergencyNEQ applies the NEQ predicate on the "emergency" field.
func EmergencyNEQ(v bool) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldEmergency, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldContainsFold(FieldPhase, v))
}

// AfterTurnEQ applies the EQ predicate on the "after_turn" field.
func AfterTurnEQ(v int) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldAfterTurn, v))
}

// AfterTurnNEQ applies the NEQ predicate on the "after_turn" field.
func AfterTurnNEQ(v int) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldAfterTurn, v))
}

// AfterTurnIn applies the In predicate on the "after_turn" field.
func AfterTurnIn(vs ...int) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldIn(FieldAfterTurn, vs...))
}

// AfterTurnNotIn applies the NotIn predicate on the "after_turn" field.
func AfterTurnNotIn(vs ...int) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNotIn(FieldAfterTurn, vs...))
}

// AfterTurnGT applies the GT predicate on the "after_turn" field.
func AfterTurnGT(v int) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGT(FieldAfterTurn, v))
}

// AfterTurnGTE applies the GTE predicate on the "after_turn" field.
func AfterTurnGTE(v int) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGTE(FieldAfterTurn, v))
}

// AfterTurnLT applies the LT predicate on the "after_turn" field.
func AfterTurnLT(v int) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLT(FieldAfterTurn, v))
}

// AfterTurnLTE applies the LTE predicate on the "after_turn" field.
func AfterTurnLTE(v int) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLTE(FieldAfterTurn, v))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.RotationRecord {
	return predicate.RotationRecord(sql.FieldLTE(FieldAppliedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.RotationRecord {
	return predicate.RotationRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.DebateSession) predicate.RotationRecord {
	return predicate.RotationRecord(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RotationRecord) predicate.RotationRecord {
	return predicate.RotationRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RotationRecord) predicate.RotationRecord {
	return predicate.RotationRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RotationRecord) predicate.RotationRecord {
	return predicate.RotationRecord(sql.NotPredicates(p))
}
