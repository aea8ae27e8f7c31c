package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RotationRecord holds the schema definition for the RotationRecord entity.
type RotationRecord struct {
	ent.Schema
}

// Fields of the RotationRecord.
func (RotationRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.String("role"),
		field.String("old_model"),
		field.String("new_model"),
		field.String("reason"),
		field.Float("confidence").
			Default(0),
		field.Float("expected_improvement").
			Default(0),
		field.Bool("emergency").
			Default(false),
		field.String("phase").
			Comment("Phase the session was in when the rotation applied"),
		field.Int("after_turn").
			Comment("Index of the last turn before the rebinding"),
		field.Time("applied_at").
			Default(time.Now),
	}
}

// Edges of the RotationRecord.
func (RotationRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", DebateSession.Type).
			Ref("rotations").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the RotationRecord.
func (RotationRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "applied_at"),
	}
}
