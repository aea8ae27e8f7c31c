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

// DebateSession is the model entity for the DebateSession schema.
type DebateSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Debate topic (full-text searchable)
	Topic string `json:"topic,omitempty"`
	// Optional reference material included in prompts
	Reference *string `json:"reference,omitempty"`
	// Status holds the value of the "status" field.
	Status debatesession.Status `json:"status,omitempty"`
	// StatusReason holds the value of the "status_reason" field.
	StatusReason *string `json:"status_reason,omitempty"`
	// Phase holds the value of the "phase" field.
	Phase string `json:"phase,omitempty"`
	// Debaters holds the value of the "debaters" field.
	Debaters int `json:"debaters,omitempty"`
	// RotationStrategy holds the value of the "rotation_strategy" field.
	RotationStrategy string `json:"rotation_strategy,omitempty"`
	// Current role to model bindings
	Assignment map[string]string `json:"assignment,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// CostEstimate holds the value of the "cost_estimate" field.
	CostEstimate float64 `json:"cost_estimate,omitempty"`
	// ErrorCount holds the value of the "error_count" field.
	ErrorCount int `json:"error_count,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int64 `json:"duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DebateSessionQuery when eager-loading is set.
	Edges        DebateSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DebateSessionEdges holds the relations/edges for other nodes in the graph.
type DebateSessionEdges struct {
	// Turns holds the value of the turns edge.
	Turns []*DebateTurn `json:"turns,omitempty"`
	// Rounds holds the value of the rounds edge.
	Rounds []*DebateRound `json:"rounds,omitempty"`
	// Rotations holds the value of the rotations edge.
	Rotations []*RotationRecord `json:"rotations,omitempty"`
	// Report holds the value of the report edge.
	Report *AnalyticsArtifact `json:"report,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// TurnsOrErr returns the Turns value or an error if the edge
// was not loaded in eager-loading.
func (e DebateSessionEdges) TurnsOrErr() ([]*DebateTurn, error) {
	if e.loadedTypes[0] {
		return e.Turns, nil
	}
	return nil, &NotLoadedError{edge: "turns"}
}

// RoundsOrErr returns the Rounds value or an error if the edge
// was not loaded in eager-loading.
func (e DebateSessionEdges) RoundsOrErr() ([]*DebateRound, error) {
	if e.loadedTypes[1] {
		return e.Rounds, nil
	}
	return nil, &NotLoadedError{edge: "rounds"}
}

// RotationsOrErr returns the Rotations value or an error if the edge
// was not loaded in eager-loading.
func (e DebateSessionEdges) RotationsOrErr() ([]*RotationRecord, error) {
	if e.loadedTypes[2] {
		return e.Rotations, nil
	}
	return nil, &NotLoadedError{edge: "rotations"}
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DebateSessionEdges) ReportOrErr() (*AnalyticsArtifact, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: analyticsartifact.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e DebateSessionEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[4] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DebateSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case debatesession.FieldAssignment:
			values[i] = new([]byte)
		case debatesession.FieldCostEstimate:
			values[i] = new(sql.NullFloat64)
		case debatesession.FieldDebaters, debatesession.FieldInputTokens, debatesession.FieldOutputTokens, debatesession.FieldErrorCount, debatesession.FieldRetryCount, debatesession.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case debatesession.FieldID, debatesession.FieldTopic, debatesession.FieldReference, debatesession.FieldStatus, debatesession.FieldStatusReason, debatesession.FieldPhase, debatesession.FieldRotationStrategy:
			values[i] = new(sql.NullString)
		case debatesession.FieldCreatedAt, debatesession.FieldStartedAt, debatesession.FieldEndedAt, debatesession.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DebateSession fields.
func (_m *DebateSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case debatesession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case debatesession.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case debatesession.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				_m.Reference = new(string)
				*_m.Reference = value.String
			}
		case debatesession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = debatesession.Status(value.String)
			}
		case debatesession.FieldStatusReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_reason", values[i])
			} else if value.Valid {
				_m.StatusReason = new(string)
				*_m.StatusReason = value.String
			}
		case debatesession.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case debatesession.FieldDebaters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field debaters", values[i])
			} else if value.Valid {
				_m.Debaters = int(value.Int64)
			}
		case debatesession.FieldRotationStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rotation_strategy", values[i])
			} else if value.Valid {
				_m.RotationStrategy = value.String
			}
		case debatesession.FieldAssignment:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assignment", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Assignment); err != nil {
					return fmt.Errorf("unmarshal field assignment: %w", err)
				}
			}
		case debatesession.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case debatesession.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case debatesession.FieldCostEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_estimate", values[i])
			} else if value.Valid {
				_m.CostEstimate = value.Float64
			}
		case debatesession.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case debatesession.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case debatesession.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		case debatesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case debatesession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case debatesession.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case debatesession.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DebateSession.
// This includes values selected through modifiers, order, etc.
func (_m *DebateSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTurns queries the "turns" edge of the DebateSession entity.
func (_m *DebateSession) QueryTurns() *DebateTurnQuery {
	return NewDebateSessionClient(_m.config).QueryTurns(_m)
}

// QueryRounds queries the "rounds" edge of the DebateSession entity.
func (_m *DebateSession) QueryRounds() *DebateRoundQuery {
	return NewDebateSessionClient(_m.config).QueryRounds(_m)
}

// QueryRotations queries the "rotations" edge of the DebateSession entity.
func (_m *DebateSession) QueryRotations() *RotationRecordQuery {
	return NewDebateSessionClient(_m.config).QueryRotations(_m)
}

// QueryReport queries the "report" edge of the DebateSession entity.
func (_m *DebateSession) QueryReport() *AnalyticsArtifactQuery {
	return NewDebateSessionClient(_m.config).QueryReport(_m)
}

// QueryEvents queries the "events" edge of the DebateSession entity.
func (_m *DebateSession) QueryEvents() *EventQuery {
	return NewDebateSessionClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this DebateSession.
// Note that you need to call DebateSession.Unwrap() before calling this method if this DebateSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DebateSession) Update() *DebateSessionUpdateOne {
	return NewDebateSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DebateSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DebateSession) Unwrap() *DebateSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DebateSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DebateSession) String() string {
	var builder strings.Builder
	builder.WriteString("DebateSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	if v := _m.Reference; v != nil {
		builder.WriteString("reference=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.StatusReason; v != nil {
		builder.WriteString("status_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("debaters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Debaters))
	builder.WriteString(", ")
	builder.WriteString("rotation_strategy=")
	builder.WriteString(_m.RotationStrategy)
	builder.WriteString(", ")
	builder.WriteString("assignment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Assignment))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("cost_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostEstimate))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DebateSessions is a parsable slice of DebateSession.
type DebateSessions []*DebateSession
