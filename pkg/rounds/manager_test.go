package rounds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/models"
)

func newTestManager() *Manager {
	return New(config.DefaultRoundsConfig(), config.DefaultDebateConfig())
}

func turnsWithStrength(contents []string, strength float64) []models.Turn {
	out := make([]models.Turn, len(contents))
	for i, c := range contents {
		out[i] = models.Turn{
			Content:  c,
			Argument: &models.ArgumentRecord{Strength: strength},
		}
	}
	return out
}

func baseInput() Input {
	return Input{
		RoundIndex:    2,
		PlannedRounds: 4,
		ExpectedTurns: 2,
		Turns: turnsWithStrength([]string{
			"My opponent overlooks the transition costs entirely.",
			"In response, the savings data covers transition costs too.",
		}, 0.7),
		Elapsed: 5 * time.Minute,
		Budget:  30 * time.Minute,
	}
}

func TestContinueInNormalRange(t *testing.T) {
	d := newTestManager().Evaluate(baseInput())
	assert.Equal(t, models.ActionContinue, d.Action)
	assert.Greater(t, d.Metrics.Composite, 0.0)
}

func TestTimeExhaustionTerminatesDespiteHighQuality(t *testing.T) {
	in := baseInput()
	in.Turns = turnsWithStrength([]string{"my opponent said", "you said"}, 0.95)
	in.Elapsed = 31 * time.Minute

	d := newTestManager().Evaluate(in)
	assert.Equal(t, models.ActionTerminateEarly, d.Action)
	assert.Contains(t, d.Reason, "time budget")
	assert.Equal(t, 1.0, d.Metrics.TimePressure)
}

func TestLowTrendTerminatesEarly(t *testing.T) {
	m := newTestManager()
	in := baseInput()
	// Repetitive low-strength content: novelty collapses against an
	// identical prior round.
	repeat := []string{"we simply disagree on this", "we simply disagree on this"}
	in.Turns = turnsWithStrength(repeat, 0.2)
	in.PriorRounds = [][]models.Turn{turnsWithStrength(repeat, 0.2)}
	in.History = []models.RoundMetrics{{Quality: 0.2, Novelty: 0.05}}

	d := m.Evaluate(in)
	assert.Equal(t, models.ActionTerminateEarly, d.Action)
	assert.Contains(t, d.Reason, "below floors")
}

func TestLowTrendNeedsConsecutiveRounds(t *testing.T) {
	m := newTestManager()
	in := baseInput()
	repeat := []string{"we simply disagree on this", "we simply disagree on this"}
	in.Turns = turnsWithStrength(repeat, 0.2)
	in.PriorRounds = [][]models.Turn{turnsWithStrength(repeat, 0.2)}
	// Previous round was healthy: no termination yet.
	in.History = []models.RoundMetrics{{Quality: 0.8, Novelty: 0.9}}

	d := m.Evaluate(in)
	assert.NotEqual(t, models.ActionTerminateEarly, d.Action)
}

func TestReduceOnLowComposite(t *testing.T) {
	in := baseInput()
	in.RoundIndex = 3 // minimum rounds reached
	in.PlannedRounds = 6
	// Weak, non-referential turns against a similar prior round, late in
	// the budget: composite collapses.
	in.Turns = turnsWithStrength([]string{"costs rise", "costs rise again"}, 0.1)
	in.PriorRounds = [][]models.Turn{turnsWithStrength([]string{"costs rise", "costs rise again"}, 0.1)}
	in.History = []models.RoundMetrics{{Quality: 0.8, Novelty: 0.9}, {Quality: 0.8, Novelty: 0.9}}
	in.Elapsed = 28 * time.Minute

	d := newTestManager().Evaluate(in)
	assert.Equal(t, models.ActionReduce, d.Action)
}

func TestReduceBlockedBelowMinRounds(t *testing.T) {
	in := baseInput()
	in.RoundIndex = 2 // below min_rounds = 3
	in.PlannedRounds = 6
	in.Turns = turnsWithStrength([]string{"costs rise", "costs rise again"}, 0.1)
	in.PriorRounds = [][]models.Turn{turnsWithStrength([]string{"costs rise", "costs rise again"}, 0.1)}
	in.History = []models.RoundMetrics{{Quality: 0.8, Novelty: 0.9}}
	in.Elapsed = 28 * time.Minute

	d := newTestManager().Evaluate(in)
	assert.Equal(t, models.ActionContinue, d.Action)
}

func highQualityInput() Input {
	in := baseInput()
	in.Turns = turnsWithStrength([]string{
		"My opponent raises costs, but you said the data was partial earlier.",
		"In response to that argument, your point about adoption holds only short-term.",
	}, 0.95)
	in.Elapsed = time.Minute
	return in
}

func TestExtendAtLastPlannedBoundary(t *testing.T) {
	in := highQualityInput()
	in.RoundIndex = 3
	in.PlannedRounds = 4

	d := newTestManager().Evaluate(in)
	assert.Equal(t, models.ActionExtend, d.Action)
}

func TestExtendClampedAtMaxRounds(t *testing.T) {
	cfg := config.DefaultDebateConfig()
	cfg.MinRounds, cfg.MaxRounds = 3, 3
	m := New(config.DefaultRoundsConfig(), cfg)

	in := highQualityInput()
	in.RoundIndex = 2
	in.PlannedRounds = 3

	d := m.Evaluate(in)
	assert.Equal(t, models.ActionContinue, d.Action)
	assert.Contains(t, d.Reason, "max rounds")
}

func TestExtendOnlyAtBoundaryRound(t *testing.T) {
	in := highQualityInput()
	in.RoundIndex = 1
	in.PlannedRounds = 4

	d := newTestManager().Evaluate(in)
	assert.Equal(t, models.ActionContinue, d.Action)
}

func TestNoveltyFirstRoundIsMax(t *testing.T) {
	n := novelty(turnsWithStrength([]string{"anything at all"}, 0.5), nil)
	assert.Equal(t, 1.0, n)
}

func TestNoveltyIdenticalRoundsIsZero(t *testing.T) {
	turns := turnsWithStrength([]string{"identical content repeated verbatim"}, 0.5)
	n := novelty(turns, [][]models.Turn{turns})
	assert.InDelta(t, 0.0, n, 1e-9)
}

func TestEngagementCombinesCompletionAndReferences(t *testing.T) {
	// Both turns present, one references the opponent.
	turns := []models.Turn{
		{Content: "My opponent ignores the evidence."},
		{Content: "The figures speak for themselves."},
	}
	assert.InDelta(t, 0.5, engagement(turns, 2), 1e-9)

	// Only one of two expected turns, and it references: 0.5 * 1.
	assert.InDelta(t, 0.5, engagement(turns[:1], 2), 1e-9)

	assert.Zero(t, engagement(nil, 2))
}
