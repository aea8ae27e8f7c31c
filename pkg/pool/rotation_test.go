package pool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/models"
)

func newTestEngine(t *testing.T, ids ...string) (*Engine, *Pool) {
	t.Helper()
	cfg := testPoolConfig(ids...)
	p := New(cfg)
	_, err := p.InitAssignment("s1", models.DebaterRoles(2))
	require.NoError(t, err)
	return NewEngine(p, cfg), p
}

// observe feeds n successful calls with the given strength.
func observe(p *Pool, model string, n int, strength float64) {
	for i := 0; i < n; i++ {
		p.Observe(model, Observation{Success: true, Latency: time.Second, Strength: strength, Scored: true})
	}
}

func TestFixedNeverRotates(t *testing.T) {
	e, p := newTestEngine(t, "m1", "m2", "m3")
	observe(p, "m1", 10, 0.1) // terrible incumbent
	observe(p, "m3", 10, 0.95)

	d := e.Evaluate("s1", models.DebaterRole(0), models.StrategyFixed, 2, nil)
	assert.Nil(t, d)
}

func TestMinCallsPrecondition(t *testing.T) {
	e, p := newTestEngine(t, "m1", "m2", "m3")
	observe(p, "m1", 2, 0.1) // below min_calls_before_rotation = 3
	observe(p, "m3", 10, 0.95)

	d := e.Evaluate("s1", models.DebaterRole(0), models.StrategyPerformanceBased, 2, nil)
	assert.Nil(t, d)

	observe(p, "m1", 1, 0.1)
	d = e.Evaluate("s1", models.DebaterRole(0), models.StrategyPerformanceBased, 2, nil)
	assert.NotNil(t, d)
}

func TestPerformanceBasedRotation(t *testing.T) {
	e, p := newTestEngine(t, "m1", "m2", "m3")
	observe(p, "m1", 5, 0.3)
	observe(p, "m3", 5, 0.9)

	d := e.Evaluate("s1", models.DebaterRole(0), models.StrategyPerformanceBased, 2, nil)
	require.NotNil(t, d)
	assert.Equal(t, "m1", d.OldModel)
	assert.Equal(t, "m3", d.NewModel)
	assert.False(t, d.Emergency)
	assert.GreaterOrEqual(t, d.ExpectedImprovement, 0.10)
	assert.Greater(t, d.Confidence, 0.5)
}

func TestPerformanceBasedBelowThresholdKeepsIncumbent(t *testing.T) {
	e, p := newTestEngine(t, "m1", "m2", "m3")
	observe(p, "m1", 5, 0.70)
	observe(p, "m3", 5, 0.74) // gap under the 0.10 threshold

	d := e.Evaluate("s1", models.DebaterRole(0), models.StrategyPerformanceBased, 2, nil)
	assert.Nil(t, d)
}

func TestAdaptiveRotatesOnDecliningTrend(t *testing.T) {
	e, p := newTestEngine(t, "m1", "m2", "m3")
	// Scores comparable, so performance alone would not rotate.
	observe(p, "m1", 5, 0.6)
	observe(p, "m3", 5, 0.62)

	declining := []float64{0.7, 0.6, 0.5}
	d := e.Evaluate("s1", models.DebaterRole(0), models.StrategyAdaptive, 3, declining)
	require.NotNil(t, d)
	assert.Equal(t, "m3", d.NewModel)
	assert.Contains(t, d.Reason, "declining")

	flat := []float64{0.6, 0.6, 0.6}
	assert.Nil(t, e.Evaluate("s1", models.DebaterRole(0), models.StrategyAdaptive, 3, flat))
}

func TestRoundRobinRotatesOnInterval(t *testing.T) {
	e, p := newTestEngine(t, "m1", "m2", "m3")
	observe(p, "m1", 3, 0.5)

	// Interval default is 2: round 3 is off-interval.
	assert.Nil(t, e.Evaluate("s1", models.DebaterRole(0), models.StrategyRoundRobin, 3, nil))

	d := e.Evaluate("s1", models.DebaterRole(0), models.StrategyRoundRobin, 2, nil)
	require.NotNil(t, d)
	assert.Equal(t, "m3", d.NewModel) // m2 is bound to debater_B
}

func TestBalancedRotatesToLowSpender(t *testing.T) {
	e, p := newTestEngine(t, "m1", "m2", "m3")
	for i := 0; i < 5; i++ {
		p.Observe("m1", Observation{Success: true, Latency: time.Second, Tokens: 5000})
	}
	p.Observe("m3", Observation{Success: true, Latency: time.Second, Tokens: 100})

	d := e.Evaluate("s1", models.DebaterRole(0), models.StrategyBalanced, 2, nil)
	require.NotNil(t, d)
	assert.Equal(t, "m3", d.NewModel)

	// Near-equal spend does not thrash.
	assert.Nil(t, e.Evaluate("s1", models.DebaterRole(1), models.StrategyBalanced, 2, nil))
}

func TestReplaceUnhealthy(t *testing.T) {
	e, p := newTestEngine(t, "m1", "m2", "m3")
	observe(p, "m3", 5, 0.8)

	d := e.ReplaceUnhealthy("s1", models.DebaterRole(0), func(m string) bool { return m == "m2" })
	require.NotNil(t, d)
	assert.Equal(t, "m1", d.OldModel)
	assert.Equal(t, "m3", d.NewModel)
	assert.True(t, d.Emergency)

	// No healthy candidate at all.
	d = e.ReplaceUnhealthy("s1", models.DebaterRole(0), func(string) bool { return true })
	assert.Nil(t, d)
}

func TestApplyRebinds(t *testing.T) {
	e, p := newTestEngine(t, "m1", "m2", "m3")
	d := &models.RotationDecision{Role: models.DebaterRole(0), OldModel: "m1", NewModel: "m3"}
	require.NoError(t, e.Apply("s1", d))
	assert.Equal(t, "m3", p.AssignmentFor("s1")[models.DebaterRole(0)])
}
