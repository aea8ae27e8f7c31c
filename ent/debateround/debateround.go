// Code generated by ent, DO NOT EDIT.

package debateround

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the debateround type in the database.
	Label = "debate_round"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldRoundIndex holds the string denoting the round_index field in the database.
	FieldRoundIndex = "round_index"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldFirstTurn holds the string denoting the first_turn field in the database.
	FieldFirstTurn = "first_turn"
	// FieldLastTurn holds the string denoting the last_turn field in the database.
	FieldLastTurn = "last_turn"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// DebateSessionFieldID holds the string denoting the ID field of the DebateSession.
	DebateSessionFieldID = "session_id"
	// Table holds the table name of the debateround in the database.
	Table = "debate_rounds"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "debate_rounds"
	// SessionInverseTable is the table name for the DebateSession entity.
	// It exists in this package in order to avoid circular dependency with the "debatesession" package.
	SessionInverseTable = "debate_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for debateround fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldRoundIndex,
	FieldPhase,
	FieldFirstTurn,
	FieldLastTurn,
	FieldMetrics,
	FieldDecision,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the DebateRound queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByRoundIndex orders the results by the round_index field.
func ByRoundIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundIndex, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByFirstTurn orders the results by the first_turn field.
func ByFirstTurn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstTurn, opts...).ToFunc()
}

// ByLastTurn orders the results by the last_turn field.
func ByLastTurn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastTurn, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
