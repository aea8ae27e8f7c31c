// Code generated by ent, DO NOT EDIT.

package rotationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the rotationrecord type in the database.
	Label = "rotation_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldOldModel holds the string denoting the old_model field in the database.
	FieldOldModel = "old_model"
	// FieldNewModel holds the string denoting the new_model field in the database.
	FieldNewModel = "new_model"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldExpectedImprovement holds the string denoting the expected_improvement field in the database.
	FieldExpectedImprovement = "expected_improvement"
	// FieldEmergency holds the string denoting the emergency field in the database.
	FieldEmergency = "emergency"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldAfterTurn holds the string denoting the after_turn field in the database.
	FieldAfterTurn = "after_turn"
	// FieldAppliedAt holds the string denoting the applied_at field in the database.
	FieldAppliedAt = "applied_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// DebateSessionFieldID holds the string denoting the ID field of the DebateSession.
	DebateSessionFieldID = "session_id"
	// Table holds the table name of the rotationrecord in the database.
	Table = "rotation_records"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "rotation_records"
	// SessionInverseTable is the table name for the DebateSession entity.
	// It exists in this package in order to avoid circular dependency with the "debatesession" package.
	SessionInverseTable = "debate_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for rotationrecord fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldRole,
	FieldOldModel,
	FieldNewModel,
	FieldReason,
	FieldConfidence,
	FieldExpectedImprovement,
	FieldEmergency,
	FieldPhase,
	FieldAfterTurn,
	FieldAppliedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultExpectedImprovement holds the default value on creation for the "expected_improvement" field.
	DefaultExpectedImprovement float64
	// DefaultEmergency holds the default value on creation for the "emergency" field.
	DefaultEmergency bool
	// DefaultAppliedAt holds the default value on creation for the "applied_at" field.
	DefaultAppliedAt func() time.Time
)

// OrderOption defines the ordering options for the RotationRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByOldModel orders the results by the old_model field.
func ByOldModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldModel, opts...).ToFunc()
}

// ByNewModel orders the results by the new_model field.
func ByNewModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewModel, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByExpectedImprovement orders the results by the expected_improvement field.
func ByExpectedImprovement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedImprovement, opts...).ToFunc()
}

// ByEmergency orders the results by the emergency field.
func ByEmergency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergency, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByAfterTurn orders the results by the after_turn field.
func ByAfterTurn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAfterTurn, opts...).ToFunc()
}

// ByAppliedAt orders the results by the applied_at field.
func ByAppliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, DebateSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
