package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalyticsArtifact holds the schema definition for the AnalyticsArtifact
// entity: the persisted final report of one session.
type AnalyticsArtifact struct {
	ent.Schema
}

// Fields of the AnalyticsArtifact.
func (AnalyticsArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique(),
		field.JSON("report", map[string]interface{}{}).
			Comment("Chains, consensus, judgment, narrative, omissions"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the AnalyticsArtifact.
func (AnalyticsArtifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", DebateSession.Type).
			Ref("report").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the AnalyticsArtifact.
func (AnalyticsArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
