// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalyticsArtifactsColumns holds the columns for the "analytics_artifacts" table.
	AnalyticsArtifactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "report", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// AnalyticsArtifactsTable holds the schema information for the "analytics_artifacts" table.
	AnalyticsArtifactsTable = &schema.Table{
		Name:       "analytics_artifacts",
		Columns:    AnalyticsArtifactsColumns,
		PrimaryKey: []*schema.Column{AnalyticsArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analytics_artifacts_debate_sessions_report",
				Columns:    []*schema.Column{AnalyticsArtifactsColumns[3]},
				RefColumns: []*schema.Column{DebateSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analyticsartifact_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalyticsArtifactsColumns[2]},
			},
		},
	}
	// DebateRoundsColumns holds the columns for the "debate_rounds" table.
	DebateRoundsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "round_index", Type: field.TypeInt},
		{Name: "phase", Type: field.TypeString},
		{Name: "first_turn", Type: field.TypeInt},
		{Name: "last_turn", Type: field.TypeInt},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "decision", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// DebateRoundsTable holds the schema information for the "debate_rounds" table.
	DebateRoundsTable = &schema.Table{
		Name:       "debate_rounds",
		Columns:    DebateRoundsColumns,
		PrimaryKey: []*schema.Column{DebateRoundsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "debate_rounds_debate_sessions_rounds",
				Columns:    []*schema.Column{DebateRoundsColumns[8]},
				RefColumns: []*schema.Column{DebateSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "debateround_session_id_round_index",
				Unique:  true,
				Columns: []*schema.Column{DebateRoundsColumns[8], DebateRoundsColumns[1]},
			},
		},
	}
	// DebateSessionsColumns holds the columns for the "debate_sessions" table.
	DebateSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString, Size: 2147483647},
		{Name: "reference", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "status_reason", Type: field.TypeString, Nullable: true},
		{Name: "phase", Type: field.TypeString, Default: "initialization"},
		{Name: "debaters", Type: field.TypeInt},
		{Name: "rotation_strategy", Type: field.TypeString},
		{Name: "assignment", Type: field.TypeJSON},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// DebateSessionsTable holds the schema information for the "debate_sessions" table.
	DebateSessionsTable = &schema.Table{
		Name:       "debate_sessions",
		Columns:    DebateSessionsColumns,
		PrimaryKey: []*schema.Column{DebateSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "debatesession_status",
				Unique:  false,
				Columns: []*schema.Column{DebateSessionsColumns[3]},
			},
			{
				Name:    "debatesession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DebateSessionsColumns[3], DebateSessionsColumns[15]},
			},
			{
				Name:    "debatesession_status_ended_at",
				Unique:  false,
				Columns: []*schema.Column{DebateSessionsColumns[3], DebateSessionsColumns[17]},
			},
			{
				Name:    "debatesession_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{DebateSessionsColumns[18]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// DebateTurnsColumns holds the columns for the "debate_turns" table.
	DebateTurnsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "turn_index", Type: field.TypeInt},
		{Name: "round", Type: field.TypeInt, Default: 0},
		{Name: "role", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "argument", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// DebateTurnsTable holds the schema information for the "debate_turns" table.
	DebateTurnsTable = &schema.Table{
		Name:       "debate_turns",
		Columns:    DebateTurnsColumns,
		PrimaryKey: []*schema.Column{DebateTurnsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "debate_turns_debate_sessions_turns",
				Columns:    []*schema.Column{DebateTurnsColumns[12]},
				RefColumns: []*schema.Column{DebateSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "debateturn_session_id_turn_index",
				Unique:  true,
				Columns: []*schema.Column{DebateTurnsColumns[12], DebateTurnsColumns[1]},
			},
			{
				Name:    "debateturn_session_id_phase",
				Unique:  false,
				Columns: []*schema.Column{DebateTurnsColumns[12], DebateTurnsColumns[5]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_debate_sessions_events",
				Columns:    []*schema.Column{EventsColumns[5]},
				RefColumns: []*schema.Column{DebateSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_session_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[5], EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// RotationRecordsColumns holds the columns for the "rotation_records" table.
	RotationRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString},
		{Name: "old_model", Type: field.TypeString},
		{Name: "new_model", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "expected_improvement", Type: field.TypeFloat64, Default: 0},
		{Name: "emergency", Type: field.TypeBool, Default: false},
		{Name: "phase", Type: field.TypeString},
		{Name: "after_turn", Type: field.TypeInt},
		{Name: "applied_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// RotationRecordsTable holds the schema information for the "rotation_records" table.
	RotationRecordsTable = &schema.Table{
		Name:       "rotation_records",
		Columns:    RotationRecordsColumns,
		PrimaryKey: []*schema.Column{RotationRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rotation_records_debate_sessions_rotations",
				Columns:    []*schema.Column{RotationRecordsColumns[11]},
				RefColumns: []*schema.Column{DebateSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rotationrecord_session_id_applied_at",
				Unique:  false,
				Columns: []*schema.Column{RotationRecordsColumns[11], RotationRecordsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalyticsArtifactsTable,
		DebateRoundsTable,
		DebateSessionsTable,
		DebateTurnsTable,
		EventsTable,
		RotationRecordsTable,
	}
)

func init() {
	AnalyticsArtifactsTable.ForeignKeys[0].RefTable = DebateSessionsTable
	DebateRoundsTable.ForeignKeys[0].RefTable = DebateSessionsTable
	DebateTurnsTable.ForeignKeys[0].RefTable = DebateSessionsTable
	EventsTable.ForeignKeys[0].RefTable = DebateSessionsTable
	RotationRecordsTable.ForeignKeys[0].RefTable = DebateSessionsTable
}
