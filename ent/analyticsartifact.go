// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agora-labs/agora/ent/analyticsartifact"
	"github.com/agora-labs/agora/ent/debatesession"
)

// AnalyticsArtifact is the model entity for the AnalyticsArtifact schema.
type AnalyticsArtifact struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Chains, consensus, judgment, narrative, omissions
	Report map[string]interface{} `json:"report,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalyticsArtifactQuery when eager-loading is set.
	Edges        AnalyticsArtifactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalyticsArtifactEdges holds the relations/edges for other nodes in the graph.
type AnalyticsArtifactEdges struct {
	// Session holds the value of the session edge.
	Session *DebateSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalyticsArtifactEdges) SessionOrErr() (*DebateSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: debatesession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalyticsArtifact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analyticsartifact.FieldReport:
			values[i] = new([]byte)
		case analyticsartifact.FieldID, analyticsartifact.FieldSessionID:
			values[i] = new(sql.NullString)
		case analyticsartifact.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalyticsArtifact fields.
func (_m *AnalyticsArtifact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analyticsartifact.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analyticsartifact.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case analyticsartifact.FieldReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Report); err != nil {
					return fmt.Errorf("unmarshal field report: %w", err)
				}
			}
		case analyticsartifact.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AnalyticsArtifact.
// This includes values selected through modifiers, order, etc.
func (_m *AnalyticsArtifact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the AnalyticsArtifact entity.
func (_m *AnalyticsArtifact) QuerySession() *DebateSessionQuery {
	return NewAnalyticsArtifactClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this AnalyticsArtifact.
// Note that you need to call AnalyticsArtifact.Unwrap() before calling this method if this AnalyticsArtifact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalyticsArtifact) Update() *AnalyticsArtifactUpdateOne {
	return NewAnalyticsArtifactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalyticsArtifact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalyticsArtifact) Unwrap() *AnalyticsArtifact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalyticsArtifact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalyticsArtifact) String() string {
	var builder strings.Builder
	builder.WriteString("AnalyticsArtifact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("report=")
	builder.WriteString(fmt.Sprintf("%v", _m.Report))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalyticsArtifacts is a parsable slice of AnalyticsArtifact.
type AnalyticsArtifacts []*AnalyticsArtifact
