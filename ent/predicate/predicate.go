// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalyticsArtifact is the predicate function for analyticsartifact builders.
type AnalyticsArtifact func(*sql.Selector)

// DebateRound is the predicate function for debateround builders.
type DebateRound func(*sql.Selector)

// DebateSession is the predicate function for debatesession builders.
type DebateSession func(*sql.Selector)

// DebateTurn is the predicate function for debateturn builders.
type DebateTurn func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// RotationRecord is the predicate function for rotationrecord builders.
type RotationRecord func(*sql.Selector)
