package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DebateTurn holds the schema definition for the DebateTurn entity.
type DebateTurn struct {
	ent.Schema
}

// Fields of the DebateTurn.
func (DebateTurn) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.Int("turn_index").
			Comment("1-based position in the session transcript"),
		field.Int("round").
			Default(0).
			Comment("Middle-section round, 0 for opening/closing/judgment"),
		field.String("role"),
		field.String("model").
			Comment("Model bound to the role at speaking time"),
		field.String("phase"),
		field.Text("content").
			Comment("Utterance text (full-text searchable)"),
		field.Int64("latency_ms").
			Default(0),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.JSON("argument", map[string]interface{}{}).
			Optional().
			Comment("Analyzer output: structure, evidence, fallacies, scores"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the DebateTurn.
func (DebateTurn) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", DebateSession.Type).
			Ref("turns").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the DebateTurn.
func (DebateTurn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "turn_index").
			Unique(),
		index.Fields("session_id", "phase"),
	}
}
