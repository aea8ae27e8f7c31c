// Code generated by ent, DO NOT EDIT.

package debateround

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agora-labs/agora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldSessionID, v))
}

// RoundIndex applies equality check predicate on the "round_index" field. It's identical to RoundIndexEQ.
func RoundIndex(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldRoundIndex, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldPhase, v))
}

// FirstTurn applies equality check predicate on the "first_turn" field. It's identical to FirstTurnEQ.
func FirstTurn(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldFirstTurn, v))
}

// LastTurn applies equality check predicate on the "last_turn" field. It's identical to LastTurnEQ.
func LastTurn(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldLastTurn, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldContainsFold(FieldSessionID, v))
}

// RoundIndexEQ applies the EQ predicate on the "round_index" field.
func RoundIndexEQ(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldRoundIndex, v))
}

// RoundIndexNEQ applies the NEQ predicate on the "round_index" field.
func RoundIndexNEQ(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNEQ(FieldRoundIndex, v))
}

// RoundIndexIn applies the In predicate on the "round_index" field.
func RoundIndexIn(vs ...int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIn(FieldRoundIndex, vs...))
}

// RoundIndexNotIn applies the NotIn predicate on the "round_index" field.
func RoundIndexNotIn(vs ...int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotIn(FieldRoundIndex, vs...))
}

// RoundIndexGT applies the GT predicate on the "round_index" field.
func RoundIndexGT(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGT(FieldRoundIndex, v))
}

// RoundIndexGTE applies the GTE predicate on the "round_index" field.
func RoundIndexGTE(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGTE(FieldRoundIndex, v))
}

// RoundIndexLT applies the LT predicate on the "round_index" field.
func RoundIndexLT(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLT(FieldRoundIndex, v))
}

// RoundIndexLTE applies the LTE predicate on the "round_index" field.
func RoundIndexLTE(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLTE(FieldRoundIndex, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldContainsFold(FieldPhase, v))
}

// FirstTurnEQ applies the EQ predicate on the "first_turn" field.
func FirstTurnEQ(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldFirstTurn, v))
}

// FirstTurnNEQ applies the NEQ predicate on the "first_turn" field.
func FirstTurnNEQ(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNEQ(FieldFirstTurn, v))
}

// FirstTurnIn applies the In predicate on the "first_turn" field.
func FirstTurnIn(vs ...int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIn(FieldFirstTurn, vs...))
}

// FirstTurnNotIn applies the NotIn predicate on the "first_turn" field.
func FirstTurnNotIn(vs ...int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotIn(FieldFirstTurn, vs...))
}

// FirstTurnGT applies the GT predicate on the "first_turn" field.
func FirstTurnGT(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGT(FieldFirstTurn, v))
}

// FirstTurnGTE applies the GTE predicate on the "first_turn" field.
func FirstTurnGTE(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGTE(FieldFirstTurn, v))
}

// FirstTurnLT applies the LT predicate on the "first_turn" field.
func FirstTurnLT(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLT(FieldFirstTurn, v))
}

// FirstTurnLTE applies the LTE predicate on the "first_turn" field.
func FirstTurnLTE(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLTE(FieldFirstTurn, v))
}

// LastTurnEQ applies the EQ predicate on the "last_turn" field.
func LastTurnEQ(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldLastTurn, v))
}

// LastTurnNEQ applies the NEQ predicate on the "last_turn" field.
func LastTurnNEQ(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNEQ(FieldLastTurn, v))
}

// LastTurnIn applies the In predicate on the "last_turn" field.
func LastTurnIn(vs ...int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIn(FieldLastTurn, vs...))
}

// LastTurnNotIn applies the NotIn predicate on the "last_turn" field.
func LastTurnNotIn(vs ...int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotIn(FieldLastTurn, vs...))
}

// LastTurnGT applies the GT predicate on the "last_turn" field.
func LastTurnGT(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGT(FieldLastTurn, v))
}

// LastTurnGTE applies the GTE predicate on the "last_turn" field.
func LastTurnGTE(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGTE(FieldLastTurn, v))
}

// LastTurnLT applies the LT predicate on the "last_turn" field.
func LastTurnLT(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLT(FieldLastTurn, v))
}

// LastTurnLTE applies the LTE predicate on the "last_turn" field.
func LastTurnLTE(v int) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLTE(FieldLastTurn, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotNull(FieldMetrics))
}

// DecisionIsNil applies the IsNil predicate on the "decision" field.
func DecisionIsNil() predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIsNull(FieldDecision))
}

// DecisionNotNil applies the NotNil predicate on the "decision" field.
func DecisionNotNil() predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotNull(FieldDecision))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DebateRound {
	return predicate.DebateRound(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.DebateRound {
	return predicate.DebateRound(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.DebateSession) predicate.DebateRound {
	return predicate.DebateRound(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DebateRound) predicate.DebateRound {
	return predicate.DebateRound(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DebateRound) predicate.DebateRound {
	return predicate.DebateRound(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DebateRound) predicate.DebateRound {
	return predicate.DebateRound(sql.NotPredicates(p))
}
