package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DebateSession holds the schema definition for the DebateSession entity.
type DebateSession struct {
	ent.Schema
}

// Fields of the DebateSession.
func (DebateSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Text("topic").
			Comment("Debate topic (full-text searchable)"),
		field.Text("reference").
			Optional().
			Nillable().
			Comment("Optional reference material included in prompts"),
		field.Enum("status").
			Values("pending", "running", "paused", "completed", "failed", "cancelled").
			Default("pending"),
		field.String("status_reason").
			Optional().
			Nillable(),
		field.String("phase").
			Default("initialization"),
		field.Int("debaters"),
		field.String("rotation_strategy"),
		field.JSON("assignment", map[string]string{}).
			Comment("Current role to model bindings"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Float("cost_estimate").
			Default(0),
		field.Int("error_count").
			Default(0),
		field.Int("retry_count").
			Default(0),
		field.Int64("duration_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the DebateSession.
func (DebateSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("turns", DebateTurn.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rounds", DebateRound.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rotations", RotationRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("report", AnalyticsArtifact.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the DebateSession.
func (DebateSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "ended_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
