// Code generated by ent, DO NOT EDIT.

package debatesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agora-labs/agora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldContainsFold(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldTopic, v))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldReference, v))
}

// StatusReason applies equality check predicate on the "status_reason" field. It's identical to StatusReasonEQ.
func StatusReason(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldStatusReason, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldPhase, v))
}

// Debaters applies equality check predicate on the "debaters" field. It's identical to DebatersEQ.
func Debaters(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldDebaters, v))
}

// RotationStrategy applies equality check predicate on the "rotation_strategy" field. It's identical to RotationStrategyEQ.
func RotationStrategy(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldRotationStrategy, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldOutputTokens, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v float64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldCostEstimate, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldErrorCount, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldRetryCount, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldEndedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldDeletedAt, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldContainsFold(FieldTopic, v))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceIsNil applies the IsNil predicate on the "reference" field.
func ReferenceIsNil() predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIsNull(FieldReference))
}

// ReferenceNotNil applies the NotNil predicate on the "reference" field.
func ReferenceNotNil() predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotNull(FieldReference))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldContainsFold(FieldReference, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusReasonEQ applies the EQ predicate on the "status_reason" field.
func StatusReasonEQ(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldStatusReason, v))
}

// StatusReasonNEQ applies the NEQ predicate on the "status_reason" field.
func StatusReasonNEQ(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldStatusReason, v))
}

// StatusReasonIn applies the In predicate on the "status_reason" field.
func StatusReasonIn(vs ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldStatusReason, vs...))
}

// StatusReasonNotIn applies the NotIn predicate on the "status_reason" field.
func StatusReasonNotIn(vs ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldStatusReason, vs...))
}

// StatusReasonGT applies the GT predicate on the "status_reason" field.
func StatusReasonGT(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldStatusReason, v))
}

// StatusReasonGTE applies the GTE predicate on the "status_reason" field.
func StatusReasonGTE(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldStatusReason, v))
}

// StatusReasonLT applies the LT predicate on the "status_reason" field.
func StatusReasonLT(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldStatusReason, v))
}

// StatusReasonLTE applies the LTE predicate on the "status_reason" field.
func StatusReasonLTE(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldStatusReason, v))
}

// StatusReasonContains applies the Contains predicate on the "status_reason" field.
func StatusReasonContains(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldContains(FieldStatusReason, v))
}

// StatusReasonHasPrefix applies the HasPrefix predicate on the "status_reason" field.
func StatusReasonHasPrefix(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldHasPrefix(FieldStatusReason, v))
}

// StatusReasonHasSuffix applies the HasSuffix predicate on the "status_reason" field.
func StatusReasonHasSuffix(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldHasSuffix(FieldStatusReason, v))
}

// StatusReasonIsNil applies the IsNil predicate on the "status_reason" field.
func StatusReasonIsNil() predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIsNull(FieldStatusReason))
}

// StatusReasonNotNil applies the NotNil predicate on the "status_reason" field.
func StatusReasonNotNil() predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotNull(FieldStatusReason))
}

// StatusReasonEqualFold applies the EqualFold predicate on the "status_reason" field.
func StatusReasonEqualFold(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEqualFold(FieldStatusReason, v))
}

// StatusReasonContainsFold applies the ContainsFold predicate on the "status_reason" field.
func StatusReasonContainsFold(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldContainsFold(FieldStatusReason, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldContainsFold(FieldPhase, v))
}

// DebatersEQ applies the EQ predicate on the "debaters" field.
func DebatersEQ(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldDebaters, v))
}

// DebatersNEQ applies the NEQ predicate on the "debaters" field.
func DebatersNEQ(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldDebaters, v))
}

// DebatersIn applies the In predicate on the "debaters" field.
func DebatersIn(vs ...int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldDebaters, vs...))
}

// DebatersNotIn applies the NotIn predicate on the "debaters" field.
func DebatersNotIn(vs ...int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldDebaters, vs...))
}

// DebatersGT applies the GT predicate on the "debaters" field.
func DebatersGT(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldDebaters, v))
}

// DebatersGTE applies the GTE predicate on the "debaters" field.
func DebatersGTE(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldDebaters, v))
}

// DebatersLT applies the LT predicate on the "debaters" field.
func DebatersLT(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldDebaters, v))
}

// DebatersLTE applies the LTE predicate on the "debaters" field.
func DebatersLTE(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldDebaters, v))
}

// RotationStrategyEQ applies the EQ predicate on the "rotation_strategy" field.
func RotationStrategyEQ(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldRotationStrategy, v))
}

// RotationStrategyNEQ applies the NEQ predicate on the "rotation_strategy" field.
func RotationStrategyNEQ(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldRotationStrategy, v))
}

// RotationStrategyIn applies the In predicate on the "rotation_strategy" field.
func RotationStrategyIn(vs ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldRotationStrategy, vs...))
}

// RotationStrategyNotIn applies the NotIn predicate on the "rotation_strategy" field.
func RotationStrategyNotIn(vs ...string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldRotationStrategy, vs...))
}

// RotationStrategyGT applies the GT predicate on the "rotation_strategy" field.
func RotationStrategyGT(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldRotationStrategy, v))
}

// RotationStrategyGTE applies the GTE predicate on the "rotation_strategy" field.
func RotationStrategyGTE(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldRotationStrategy, v))
}

// RotationStrategyLT applies the LT predicate on the "rotation_strategy" field.
func RotationStrategyLT(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldRotationStrategy, v))
}

// RotationStrategyLTE applies the LTE predicate on the "rotation_strategy" field.
func RotationStrategyLTE(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldRotationStrategy, v))
}

// RotationStrategyContains applies the Contains predicate on the "rotation_strategy" field.
func RotationStrategyContains(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldContains(FieldRotationStrategy, v))
}

// RotationStrategyHasPrefix applies the HasPrefix predicate on the "rotation_strategy" field.
func RotationStrategyHasPrefix(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldHasPrefix(FieldRotationStrategy, v))
}

// RotationStrategyHasSuffix applies the HasSuffix predicate on the "rotation_strategy" field.
func RotationStrategyHasSuffix(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldHasSuffix(FieldRotationStrategy, v))
}

// RotationStrategyEqualFold applies the EqualFold predicate on the "rotation_strategy" field.
func RotationStrategyEqualFold(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEqualFold(FieldRotationStrategy, v))
}

// RotationStrategyContainsFold applies the ContainsFold predicate on the "rotation_strategy" field.
func RotationStrategyContainsFold(v string) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldContainsFold(FieldRotationStrategy, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldOutputTokens, v))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v float64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v float64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...float64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...float64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v float64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v float64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v float64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v float64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldCostEstimate, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldErrorCount, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldRetryCount, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotNull(FieldStartedAt))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotNull(FieldEndedAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.DebateSession {
	return predicate.DebateSession(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.DebateSession {
	return predicate.DebateSession(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.DebateSession {
	return predicate.DebateSession(sql.FieldNotNull(FieldDeletedAt))
}

// HasTurns applies the HasEdge predicate on the "turns" edge.
func HasTurns() predicate.DebateSession {
	return predicate.DebateSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TurnsTable, TurnsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTurnsWith applies the HasEdge predicate on the "turns" edge with a given conditions (other predicates).
func HasTurnsWith(preds ...predicate.DebateTurn) predicate.DebateSession {
	return predicate.DebateSession(func(s *sql.Selector) {
		step := newTurnsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRounds applies the HasEdge predicate on the "rounds" edge.
func HasRounds() predicate.DebateSession {
	return predicate.DebateSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RoundsTable, RoundsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoundsWith applies the HasEdge predicate on the "rounds" edge with a given conditions (other predicates).
func HasRoundsWith(preds ...predicate.DebateRound) predicate.DebateSession {
	return predicate.DebateSession(func(s *sql.Selector) {
		step := newRoundsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRotations applies the HasEdge predicate on the "rotations" edge.
func HasRotations() predicate.DebateSession {
	return predicate.DebateSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RotationsTable, RotationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRotationsWith applies the HasEdge predicate on the "rotations" edge with a given conditions (other predicates).
func HasRotationsWith(preds ...predicate.RotationRecord) predicate.DebateSession {
	return predicate.DebateSession(func(s *sql.Selector) {
		step := newRotationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.DebateSession {
	return predicate.DebateSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.AnalyticsArtifact) predicate.DebateSession {
	return predicate.DebateSession(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.DebateSession {
	return predicate.DebateSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.DebateSession {
	return predicate.DebateSession(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DebateSession) predicate.DebateSession {
	return predicate.DebateSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DebateSession) predicate.DebateSession {
	return predicate.DebateSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DebateSession) predicate.DebateSession {
	return predicate.DebateSession(sql.NotPredicates(p))
}
