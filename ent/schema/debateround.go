package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DebateRound holds the schema definition for the DebateRound entity.
type DebateRound struct {
	ent.Schema
}

// Fields of the DebateRound.
func (DebateRound) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.Int("round_index").
			Comment("1-based middle-section round number"),
		field.String("phase"),
		field.Int("first_turn"),
		field.Int("last_turn"),
		field.JSON("metrics", map[string]interface{}{}).
			Optional().
			Comment("Quality, engagement, novelty, time pressure, composite"),
		field.JSON("decision", map[string]interface{}{}).
			Optional().
			Comment("Round manager action and reason"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the DebateRound.
func (DebateRound) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", DebateSession.Type).
			Ref("rounds").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the DebateRound.
func (DebateRound) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "round_index").
			Unique(),
	}
}
