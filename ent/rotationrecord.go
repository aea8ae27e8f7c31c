// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/rotationrecord"
)

// RotationRecord is the model entity for the RotationRecord schema.
type RotationRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// OldModel holds the value of the "old_model" field.
	OldModel string `json:"old_model,omitempty"`
	// NewModel holds the value of the "new_model" field.
	NewModel string `json:"new_model,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// ExpectedImprovement holds the value of the "expected_improvement" field.
	ExpectedImprovement float64 `json:"expected_improvement,omitempty"`
	// Emergency holds the value of the "emergency" field.
	Emergency bool `json:"emergency,omitempty"`
	// Phase the session was in when the rotation applied
	Phase string `json:"phase,omitempty"`
	// Index of the last turn before the rebinding
	AfterTurn int `json:"after_turn,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt time.Time `json:"applied_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RotationRecordQuery when eager-loading is set.
	Edges        RotationRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RotationRecordEdges holds the relations/edges for other nodes in the graph.
type RotationRecordEdges struct {
	// Session holds the value of the session edge.
	Session *DebateSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RotationRecordEdges) SessionOrErr() (*DebateSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: debatesession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RotationRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rotationrecord.FieldEmergency:
			values[i] = new(sql.NullBool)
		case rotationrecord.FieldConfidence, rotationrecord.FieldExpectedImprovement:
			values[i] = new(sql.NullFloat64)
		case rotationrecord.FieldAfterTurn:
			values[i] = new(sql.NullInt64)
		case rotationrecord.FieldID, rotationrecord.FieldSessionID, rotationrecord.FieldRole, rotationrecord.FieldOldModel, rotationrecord.FieldNewModel, rotationrecord.FieldReason, rotationrecord.FieldPhase:
			values[i] = new(sql.NullString)
		case rotationrecord.FieldAppliedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RotationRecord fields.
func (_m *RotationRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rotationrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rotationrecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case rotationrecord.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case rotationrecord.FieldOldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field old_model", values[i])
			} else if value.Valid {
				_m.OldModel = value.String
			}
		case rotationrecord.FieldNewModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_model", values[i])
			} else if value.Valid {
				_m.NewModel = value.String
			}
		case rotationrecord.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case rotationrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case rotationrecord.FieldExpectedImprovement:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field expected_improvement", values[i])
			} else if value.Valid {
				_m.ExpectedImprovement = value.Float64
			}
		case rotationrecord.FieldEmergency:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field emergency", values[i])
			} else if value.Valid {
				_m.Emergency = value.Bool
			}
		case rotationrecord.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case rotationrecord.FieldAfterTurn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field after_turn", values[i])
			} else if value.Valid {
				_m.AfterTurn = int(value.Int64)
			}
		case rotationrecord.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				_m.AppliedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RotationRecord.
// This includes values selected through modifiers, order, etc.
func (_m *RotationRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the RotationRecord entity.
func (_m *RotationRecord) QuerySession() *DebateSessionQuery {
	return NewRotationRecordClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this RotationRecord.
// Note that you need to call RotationRecord.Unwrap() before calling this method if this RotationRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RotationRecord) Update() *RotationRecordUpdateOne {
	return NewRotationRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RotationRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RotationRecord) Unwrap() *RotationRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RotationRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RotationRecord) String() string {
	var builder strings.Builder
	builder.WriteString("RotationRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("old_model=")
	builder.WriteString(_m.OldModel)
	builder.WriteString(", ")
	builder.WriteString("new_model=")
	builder.WriteString(_m.NewModel)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("expected_improvement=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedImprovement))
	builder.WriteString(", ")
	builder.WriteString("emergency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Emergency))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("after_turn=")
	builder.WriteString(fmt.Sprintf("%v", _m.AfterTurn))
	builder.WriteString(", ")
	builder.WriteString("applied_at=")
	builder.WriteString(_m.AppliedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RotationRecords is a parsable slice of RotationRecord.
type RotationRecords []*RotationRecord
