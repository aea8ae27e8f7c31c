// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agora-labs/agora/ent/analyticsartifact"
	"github.com/agora-labs/agora/ent/debateround"
	"github.com/agora-labs/agora/ent/debatesession"
	"github.com/agora-labs/agora/ent/debateturn"
	"github.com/agora-labs/agora/ent/event"
	"github.com/agora-labs/agora/ent/rotationrecord"
	"github.com/agora-labs/agora/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analyticsartifactFields := schema.AnalyticsArtifact{}.Fields()
	_ = analyticsartifactFields
	// analyticsartifactDescCreatedAt is the schema descriptor for created_at field.
	analyticsartifactDescCreatedAt := analyticsartifactFields[3].Descriptor()
	// analyticsartifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	analyticsartifact.DefaultCreatedAt = analyticsartifactDescCreatedAt.Default.(func() time.Time)
	debateroundFields := schema.DebateRound{}.Fields()
	_ = debateroundFields
	// debateroundDescCreatedAt is the schema descriptor for created_at field.
	debateroundDescCreatedAt := debateroundFields[8].Descriptor()
	// debateround.DefaultCreatedAt holds the default value on creation for the created_at field.
	debateround.DefaultCreatedAt = debateroundDescCreatedAt.Default.(func() time.Time)
	debatesessionFields := schema.DebateSession{}.Fields()
	_ = debatesessionFields
	// debatesessionDescPhase is the schema descriptor for phase field.
	debatesessionDescPhase := debatesessionFields[5].Descriptor()
	// debatesession.DefaultPhase holds the default value on creation for the phase field.
	debatesession.DefaultPhase = debatesessionDescPhase.Default.(string)
	// debatesessionDescInputTokens is the schema descriptor for input_tokens field.
	debatesessionDescInputTokens := debatesessionFields[9].Descriptor()
	// debatesession.DefaultInputTokens holds the default value on creation for the input_tokens field.
	debatesession.DefaultInputTokens = debatesessionDescInputTokens.Default.(int)
	// debatesessionDescOutputTokens is the schema descriptor for output_tokens field.
	debatesessionDescOutputTokens := debatesessionFields[10].Descriptor()
	// debatesession.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	debatesession.DefaultOutputTokens = debatesessionDescOutputTokens.Default.(int)
	// debatesessionDescCostEstimate is the schema descriptor for cost_estimate field.
	debatesessionDescCostEstimate := debatesessionFields[11].Descriptor()
	// debatesession.DefaultCostEstimate holds the default value on creation for the cost_estimate field.
	debatesession.DefaultCostEstimate = debatesessionDescCostEstimate.Default.(float64)
	// debatesessionDescErrorCount is the schema descriptor for error_count field.
	debatesessionDescErrorCount := debatesessionFields[12].Descriptor()
	// debatesession.DefaultErrorCount holds the default value on creation for the error_count field.
	debatesession.DefaultErrorCount = debatesessionDescErrorCount.Default.(int)
	// debatesessionDescRetryCount is the schema descriptor for retry_count field.
	debatesessionDescRetryCount := debatesessionFields[13].Descriptor()
	// debatesession.DefaultRetryCount holds the default value on creation for the retry_count field.
	debatesession.DefaultRetryCount = debatesessionDescRetryCount.Default.(int)
	// debatesessionDescDurationMs is the schema descriptor for duration_ms field.
	debatesessionDescDurationMs := debatesessionFields[14].Descriptor()
	// debatesession.DefaultDurationMs holds the default value on creation for the duration_ms field.
	debatesession.DefaultDurationMs = debatesessionDescDurationMs.Default.(int64)
	// debatesessionDescCreatedAt is the schema descriptor for created_at field.
	debatesessionDescCreatedAt := debatesessionFields[15].Descriptor()
	// debatesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	debatesession.DefaultCreatedAt = debatesessionDescCreatedAt.Default.(func() time.Time)
	debateturnFields := schema.DebateTurn{}.Fields()
	_ = debateturnFields
	// debateturnDescRound is the schema descriptor for round field.
	debateturnDescRound := debateturnFields[3].Descriptor()
	// debateturn.DefaultRound holds the default value on creation for the round field.
	debateturn.DefaultRound = debateturnDescRound.Default.(int)
	// debateturnDescLatencyMs is the schema descriptor for latency_ms field.
	debateturnDescLatencyMs := debateturnFields[8].Descriptor()
	// debateturn.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	debateturn.DefaultLatencyMs = debateturnDescLatencyMs.Default.(int64)
	// debateturnDescInputTokens is the schema descriptor for input_tokens field.
	debateturnDescInputTokens := debateturnFields[9].Descriptor()
	// debateturn.DefaultInputTokens holds the default value on creation for the input_tokens field.
	debateturn.DefaultInputTokens = debateturnDescInputTokens.Default.(int)
	// debateturnDescOutputTokens is the schema descriptor for output_tokens field.
	debateturnDescOutputTokens := debateturnFields[10].Descriptor()
	// debateturn.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	debateturn.DefaultOutputTokens = debateturnDescOutputTokens.Default.(int)
	// debateturnDescCreatedAt is the schema descriptor for created_at field.
	debateturnDescCreatedAt := debateturnFields[12].Descriptor()
	// debateturn.DefaultCreatedAt holds the default value on creation for the created_at field.
	debateturn.DefaultCreatedAt = debateturnDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	rotationrecordFields := schema.RotationRecord{}.Fields()
	_ = rotationrecordFields
	// rotationrecordDescConfidence is the schema descriptor for confidence field.
	rotationrecordDescConfidence := rotationrecordFields[6].Descriptor()
	// rotationrecord.DefaultConfidence holds the default value on creation for the confidence field.
	rotationrecord.DefaultConfidence = rotationrecordDescConfidence.Default.(float64)
	// rotationrecordDescExpectedImprovement is the schema descriptor for expected_improvement field.
	rotationrecordDescExpectedImprovement := rotationrecordFields[7].Descriptor()
	// rotationrecord.DefaultExpectedImprovement holds the default value on creation for the expected_improvement field.
	rotationrecord.DefaultExpectedImprovement = rotationrecordDescExpectedImprovement.Default.(float64)
	// rotationrecordDescEmergency is the schema descriptor for emergency field.
	rotationrecordDescEmergency := rotationrecordFields[8].Descriptor()
	// rotationrecord.DefaultEmergency holds the default value on creation for the emergency field.
	rotationrecord.DefaultEmergency = rotationrecordDescEmergency.Default.(bool)
	// rotationrecordDescAppliedAt is the schema descriptor for applied_at field.
	rotationrecordDescAppliedAt := rotationrecordFields[11].Descriptor()
	// rotationrecord.DefaultAppliedAt holds the default value on creation for the applied_at field.
	rotationrecord.DefaultAppliedAt = rotationrecordDescAppliedAt.Default.(func() time.Time)
}
