// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agora-labs/agora/ent/debateround"
	"github.com/agora-labs/agora/ent/debatesession"
)

// DebateRound is the model entity for the DebateRound schema.
type DebateRound struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// 1-based middle-section round number
	RoundIndex int `json:"round_index,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase string `json:"phase,omitempty"`
	// FirstTurn holds the value of the "first_turn" field.
	FirstTurn int `json:"first_turn,omitempty"`
	// LastTurn holds the value of the "last_turn" field.
	LastTurn int `json:"last_turn,omitempty"`
	// Quality, engagement, novelty, time pressure, composite
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// Round manager action and reason
	Decision map[string]interface{} `json:"decision,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DebateRoundQuery when eager-loading is set.
	Edges        DebateRoundEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DebateRoundEdges holds the relations/edges for other nodes in the graph.
type DebateRoundEdges struct {
	// Session holds the value of the session edge.
	Session *DebateSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DebateRoundEdges) SessionOrErr() (*DebateSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: debatesession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DebateRound) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case debateround.FieldMetrics, debateround.FieldDecision:
			values[i] = new([]byte)
		case debateround.FieldRoundIndex, debateround.FieldFirstTurn, debateround.FieldLastTurn:
			values[i] = new(sql.NullInt64)
		case debateround.FieldID, debateround.FieldSessionID, debateround.FieldPhase:
			values[i] = new(sql.NullString)
		case debateround.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DebateRound fields.
func (_m *DebateRound) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case debateround.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case debateround.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case debateround.FieldRoundIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round_index", values[i])
			} else if value.Valid {
				_m.RoundIndex = int(value.Int64)
			}
		case debateround.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case debateround.FieldFirstTurn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first_turn", values[i])
			} else if value.Valid {
				_m.FirstTurn = int(value.Int64)
			}
		case debateround.FieldLastTurn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_turn", values[i])
			} else if value.Valid {
				_m.LastTurn = int(value.Int64)
			}
		case debateround.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case debateround.FieldDecision:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Decision); err != nil {
					return fmt.Errorf("unmarshal field decision: %w", err)
				}
			}
		case debateround.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DebateRound.
// This includes values selected through modifiers, order, etc.
func (_m *DebateRound) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the DebateRound entity.
func (_m *DebateRound) QuerySession() *DebateSessionQuery {
	return NewDebateRoundClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this DebateRound.
// Note that you need to call DebateRound.Unwrap() before calling this method if this DebateRound
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DebateRound) Update() *DebateRoundUpdateOne {
	return NewDebateRoundClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DebateRound entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DebateRound) Unwrap() *DebateRound {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DebateRound is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DebateRound) String() string {
	var builder strings.Builder
	builder.WriteString("DebateRound(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("round_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundIndex))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("first_turn=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstTurn))
	builder.WriteString(", ")
	builder.WriteString("last_turn=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastTurn))
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DebateRounds is a parsable slice of DebateRound.
type DebateRounds []*DebateRound
