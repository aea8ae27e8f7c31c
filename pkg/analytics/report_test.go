package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/models"
)

func turn(index int, role models.Role, phase models.Phase, content string, strength float64) models.Turn {
	return models.Turn{
		Index:   index,
		Role:    role,
		Phase:   phase,
		Content: content,
		Argument: &models.ArgumentRecord{
			Strength:       strength,
			LogicScore:     strength,
			EvidenceScore:  strength,
			StructureScore: strength,
		},
	}
}

func debateFixture() *models.Session {
	a, b := models.DebaterRole(0), models.DebaterRole(1)
	return &models.Session{
		ID:    "sess-fixture",
		Topic: "Adopt renewable energy mandates",
		Turns: []models.Turn{
			turn(1, a, models.PhaseOpening,
				"Renewable mandates cut emissions. The statistics from national grid studies show a 40 percent decline in carbon output where mandates apply.", 0.8),
			turn(2, b, models.PhaseOpening,
				"Mandates raise electricity costs. The implementation burden falls on consumers and the practical rollout is unproven.", 0.6),
			turn(3, a, models.PhaseFirstRound,
				"My opponent claims mandates raise electricity costs, but the statistics show wholesale prices falling as renewable capacity scales.", 0.85),
			turn(4, b, models.PhaseFirstRound,
				"In response, those statistics measure wholesale prices, not retail electricity costs; the methodology ignores transmission charges consumers actually pay.", 0.7),
			turn(5, models.RoleJudge, models.PhaseJudgment,
				"Weighing the evidence, debater_A presented stronger statistics on emissions and prices; debater_B raised a fair methodological point on retail costs but did not quantify it. Verdict: debater_A prevails.", 0),
		},
		Rounds: []models.Round{{Index: 1, Phase: models.PhaseFirstRound, FirstTurn: 3, LastTurn: 4}},
	}
}

func TestReportProducesAllSections(t *testing.T) {
	e := New()
	e.now = func() time.Time { return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC) }

	r := e.Report(debateFixture())
	require.NotNil(t, r)
	assert.Equal(t, "sess-fixture", r.SessionID)
	assert.Empty(t, r.Omissions)
	assert.NotNil(t, r.Chains)
	assert.NotNil(t, r.Consensus)
	assert.NotNil(t, r.Judgment)
	assert.NotEmpty(t, r.Narrative)
}

func TestChainGraphEdgesPointForward(t *testing.T) {
	g, err := buildChainGraph(debateFixture().Turns)
	require.NoError(t, err)
	require.NotEmpty(t, g.Edges)
	for _, e := range g.Edges {
		assert.Less(t, e.From, e.To)
	}
	// Turn 3 explicitly rebuts turn 2's cost claim.
	assert.Contains(t, g.Edges, models.ChainEdge{From: 2, To: 3})
}

func TestChainScoresGrowWithDepth(t *testing.T) {
	g, err := buildChainGraph(debateFixture().Turns)
	require.NoError(t, err)
	require.NotEmpty(t, g.Chains)
	// Strongest first.
	for i := 1; i < len(g.Chains); i++ {
		assert.GreaterOrEqual(t, g.Chains[i-1].Score, g.Chains[i].Score)
	}
	assert.Greater(t, g.Chains[0].Score, 0.0)
	assert.GreaterOrEqual(t, len(g.Chains[0].Turns), 2)
}

func TestChainGraphEmptyTranscriptErrors(t *testing.T) {
	_, err := buildChainGraph(nil)
	assert.Error(t, err)
}

func TestConsensusDetectsSharedVocabularyAndDisagreements(t *testing.T) {
	c, err := buildConsensus(debateFixture().Turns)
	require.NoError(t, err)
	assert.NotEmpty(t, c.CommonGround)
	require.NotEmpty(t, c.Disagreements)
	assert.GreaterOrEqual(t, c.Polarization, 0.0)
	assert.LessOrEqual(t, c.Polarization, 1.0)

	// Both sides argue over the statistics, so the disagreement is typed
	// empirical rather than the factual residual.
	var kinds []models.DisagreementType
	for _, d := range c.Disagreements {
		kinds = append(kinds, d.Type)
		assert.Len(t, d.Positions, 2)
		assert.NotEmpty(t, d.Rationale)
	}
	assert.Contains(t, kinds, models.DisagreementEmpirical)
}

func TestConsensusNeedsTwoDebaters(t *testing.T) {
	turns := []models.Turn{turn(1, models.DebaterRole(0), models.PhaseOpening, "solo statement", 0.5)}
	_, err := buildConsensus(turns)
	assert.Error(t, err)
}

func TestJudgmentPicksStrongerDebater(t *testing.T) {
	j, err := buildJudgment(debateFixture().Turns)
	require.NoError(t, err)

	assert.Equal(t, models.DebaterRole(0), j.Winner)
	assert.Greater(t, j.Margin, 0.0)
	assert.GreaterOrEqual(t, j.Confidence, 0.5)
	assert.LessOrEqual(t, j.Confidence, 1.0)
	assert.Len(t, j.PerspectiveScores, len(models.Perspectives))
	for _, p := range models.Perspectives {
		for _, score := range j.PerspectiveScores[p] {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestJudgmentRequiresJudgeTurn(t *testing.T) {
	s := debateFixture()
	_, err := buildJudgment(s.Turns[:4])
	assert.Error(t, err)
}

func TestJudgmentFlagsAuthorityBias(t *testing.T) {
	s := debateFixture()
	s.Turns[4].Content = "The expert credentials of debater_A's sources settle this; I defer to that authority. Verdict: debater_A."
	j, err := buildJudgment(s.Turns)
	require.NoError(t, err)

	var kinds []models.BiasType
	for _, f := range j.Biases {
		kinds = append(kinds, f.Type)
	}
	assert.Contains(t, kinds, models.BiasAuthority)
}

func TestReportDegradesSectionsButIsAlwaysProduced(t *testing.T) {
	e := New()

	// Cancelled mid-opening: one turn, no judge.
	s := &models.Session{
		ID:    "sess-degraded",
		Topic: "topic",
		Turns: []models.Turn{turn(1, models.DebaterRole(0), models.PhaseOpening, "only statement", 0.5)},
	}
	r := e.Report(s)
	require.NotNil(t, r)
	assert.Nil(t, r.Consensus)
	assert.Nil(t, r.Judgment)
	assert.NotEmpty(t, r.Omissions)
	assert.NotEmpty(t, r.Narrative)

	// Empty transcript degrades every section.
	empty := e.Report(&models.Session{ID: "sess-empty", Topic: "topic"})
	require.NotNil(t, empty)
	assert.Nil(t, empty.Chains)
	assert.Len(t, empty.Omissions, 3)
}
