package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/models"
	"github.com/agora-labs/agora/pkg/provider"
)

const strongArgument = `Since customer satisfaction surveys show 78% approval for automated support,
and because response times fell from hours to seconds, adoption clearly pays off.
According to Dr. Reeves, researchers found similar gains across the sector in 2024.
Therefore we should adopt AI customer support.`

const weakArgument = `My opponent is a fool. Either we adopt this everywhere or everything collapses.
This will inevitably lead to total failure. All companies are the same.`

func heuristicAnalyzer() *Analyzer {
	return New(config.DefaultAnalysisConfig(), nil)
}

func TestAnalyzeStrongArgument(t *testing.T) {
	rec := heuristicAnalyzer().Analyze(context.Background(), "s1", strongArgument)

	assert.Equal(t, "complete", rec.Structure.StructureTag)
	assert.NotEmpty(t, rec.Structure.Premises)
	assert.NotEmpty(t, rec.Structure.Conclusion)
	assert.NotEmpty(t, rec.Evidence)
	assert.Empty(t, rec.Fallacies)
	assert.False(t, rec.Degraded)
	assert.Greater(t, rec.Strength, 0.5)
}

func TestAnalyzeWeakArgumentFindsFallacies(t *testing.T) {
	rec := heuristicAnalyzer().Analyze(context.Background(), "s1", weakArgument)

	kinds := make(map[models.FallacyType]bool)
	for _, f := range rec.Fallacies {
		kinds[f.Type] = true
		assert.NotEmpty(t, f.Correction)
	}
	assert.True(t, kinds[models.FallacyAdHominem])
	assert.True(t, kinds[models.FallacyFalseDichotomy])
	assert.True(t, kinds[models.FallacySlipperySlope])
	assert.True(t, kinds[models.FallacyHastyGeneralization])
	assert.Less(t, rec.LogicScore, 0.5)
}

func TestStrengthBounds(t *testing.T) {
	contents := []string{"", "short.", strongArgument, weakArgument}
	a := heuristicAnalyzer()
	for _, c := range contents {
		rec := a.Analyze(context.Background(), "s1", c)
		assert.GreaterOrEqual(t, rec.Strength, 0.0)
		assert.LessOrEqual(t, rec.Strength, 1.0)
	}
}

func TestEmptyEvidenceScoresZero(t *testing.T) {
	rec := heuristicAnalyzer().Analyze(context.Background(), "s1", "We ought to act. It would be good.")
	assert.Empty(t, rec.Evidence)
	assert.Zero(t, rec.EvidenceScore)
}

func TestEvidenceTyping(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    models.EvidenceType
	}{
		{"statistical", "Roughly 42% of users switched within a year.", models.EvidenceStatistical},
		{"expert", "According to Dr. Alvarez the mechanism is well understood.", models.EvidenceExpertOpinion},
		{"case study", "For example, one company cut costs by half.", models.EvidenceCaseStudy},
		{"analogical", "This is similar to the shift from mail to email.", models.EvidenceAnalogical},
		{"historical", "In 1998 a comparable transition happened in banking.", models.EvidenceHistorical},
		{"documentary", "The study published last quarter confirms the trend.", models.EvidenceDocumentary},
		{"logical", "If demand rises then prices follow, necessarily.", models.EvidenceLogical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, score := detectEvidence(tt.content)
			require.NotEmpty(t, items)
			assert.Equal(t, tt.want, items[0].Type)
			assert.Greater(t, score, 0.0)
		})
	}
}

// assistStub scripts assist-model replies.
type assistStub struct {
	replies []string
	err     error
	calls   int
}

func (s *assistStub) Invoke(_ context.Context, _ string, _ provider.Request) (*provider.Completion, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	reply := s.replies[len(s.replies)-1]
	if s.calls <= len(s.replies) {
		reply = s.replies[s.calls-1]
	}
	return &provider.Completion{Text: reply}, nil
}

func assistedConfig() *config.AnalysisConfig {
	cfg := config.DefaultAnalysisConfig()
	cfg.AssistModel = "vendor/scorer"
	return cfg
}

func TestAssistBlendsScores(t *testing.T) {
	stub := &assistStub{replies: []string{"Good argument.\nSTRUCTURE: 1.0\nEVIDENCE: 1.0\nLOGIC: 1.0"}}
	a := New(assistedConfig(), stub)

	rec := a.Analyze(context.Background(), "s1", strongArgument)
	assert.False(t, rec.Degraded)
	assert.Equal(t, confidenceAssisted, rec.Confidence)

	base := heuristicAnalyzer().Analyze(context.Background(), "s1", strongArgument)
	assert.Greater(t, rec.Strength, base.Strength)
}

func TestAssistExtractionRetries(t *testing.T) {
	stub := &assistStub{replies: []string{
		"I think it is quite strong overall.",
		"STRUCTURE: 0.8\nEVIDENCE: 0.7\nLOGIC: 0.9",
	}}
	a := New(assistedConfig(), stub)

	rec := a.Analyze(context.Background(), "s1", strongArgument)
	assert.False(t, rec.Degraded)
	assert.Equal(t, 2, stub.calls)
}

func TestAssistFailureDegradesNeverBlocks(t *testing.T) {
	stub := &assistStub{err: errors.New("upstream down")}
	a := New(assistedConfig(), stub)

	rec := a.Analyze(context.Background(), "s1", strongArgument)
	require.NotNil(t, rec)
	assert.True(t, rec.Degraded)
	assert.Zero(t, rec.Confidence)
	assert.Equal(t, "unknown", rec.Structure.StructureTag)
	// Strength still bounded even in the degraded case.
	assert.GreaterOrEqual(t, rec.Strength, 0.0)
	assert.LessOrEqual(t, rec.Strength, 1.0)
}

func TestAssistUnparseableAfterRetriesDegrades(t *testing.T) {
	stub := &assistStub{replies: []string{"no numbers here"}}
	a := New(assistedConfig(), stub)

	rec := a.Analyze(context.Background(), "s1", strongArgument)
	assert.True(t, rec.Degraded)
	// Initial call plus the bounded extraction retries.
	assert.Equal(t, 1+a.cfg.AssistExtractionRetries, stub.calls)
}

func TestExtractScores(t *testing.T) {
	s, err := extractScores("analysis text\nSTRUCTURE: 0.5\nEVIDENCE: 0.25\nLOGIC: 1.0")
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.structure)
	assert.Equal(t, 0.25, s.evidence)
	assert.Equal(t, 1.0, s.logic)

	_, err = extractScores("STRUCTURE: 0.5\nLOGIC: 1.0")
	assert.Error(t, err)
}
