package pool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/models"
)

func testPoolConfig(ids ...string) *config.PoolConfig {
	cfg := config.DefaultPoolConfig()
	for _, id := range ids {
		cfg.Models = append(cfg.Models, config.ModelConfig{ID: id, Tier: "standard"})
	}
	return cfg
}

func TestInitAssignmentCyclesDeclarationOrder(t *testing.T) {
	p := New(testPoolConfig("m1", "m2", "m3"))
	roles := append(models.DebaterRoles(2), models.RoleJudge)

	a, err := p.InitAssignment("s1", roles)
	require.NoError(t, err)
	assert.Equal(t, "m1", a[models.DebaterRole(0)])
	assert.Equal(t, "m2", a[models.DebaterRole(1)])
	assert.Equal(t, "m3", a[models.RoleJudge])
}

func TestInitAssignmentEmptyPool(t *testing.T) {
	p := New(config.DefaultPoolConfig())
	_, err := p.InitAssignment("s1", models.DebaterRoles(2))
	assert.Error(t, err)
}

func TestRebindAndForget(t *testing.T) {
	p := New(testPoolConfig("m1", "m2"))
	_, err := p.InitAssignment("s1", models.DebaterRoles(2))
	require.NoError(t, err)

	require.NoError(t, p.Rebind("s1", models.DebaterRole(0), "m2"))
	assert.Equal(t, "m2", p.AssignmentFor("s1")[models.DebaterRole(0)])

	assert.Error(t, p.Rebind("s1", models.DebaterRole(0), "ghost"))
	assert.Error(t, p.Rebind("s2", models.DebaterRole(0), "m1"))

	p.Forget("s1")
	assert.Nil(t, p.AssignmentFor("s1"))
}

func TestObserveAccumulates(t *testing.T) {
	p := New(testPoolConfig("m1"))

	p.Observe("m1", Observation{Success: true, Latency: 2 * time.Second, Strength: 0.8, Scored: true, Tokens: 500, Cost: 0.01})
	p.Observe("m1", Observation{Success: false, Tokens: 100})
	p.Observe("m1", Observation{Success: true, Latency: 4 * time.Second, Strength: 0.6, Scored: true, Tokens: 400, Cost: 0.01})

	rec := p.Stats("m1")
	require.NotNil(t, rec)
	assert.Equal(t, 3, rec.Calls)
	assert.Equal(t, 2, rec.Successes)
	assert.Equal(t, 1, rec.Failures)
	assert.Equal(t, 1000, rec.TokensSpent)
	assert.InDelta(t, 0.02, rec.Cost, 1e-9)
	// EWMA moved toward the newer observation.
	assert.Greater(t, rec.AvgStrength, 0.6)
	assert.Less(t, rec.AvgStrength, 0.8)
	assert.Equal(t, []float64{0.8, 0.6}, rec.Trend())
}

func TestScoreNeutralPriorForUnobserved(t *testing.T) {
	var rec *PerfRecord
	assert.Equal(t, 0.5, rec.Score())
	assert.Equal(t, 0.5, (&PerfRecord{}).Score())
}

func TestScoreOrdersModelsSensibly(t *testing.T) {
	p := New(testPoolConfig("good", "bad"))
	for i := 0; i < 5; i++ {
		p.Observe("good", Observation{Success: true, Latency: time.Second, Strength: 0.9, Scored: true})
		p.Observe("bad", Observation{Success: false})
	}
	assert.Greater(t, p.Stats("good").Score(), p.Stats("bad").Score())
}

func TestSummaries(t *testing.T) {
	p := New(testPoolConfig("m1", "m2"))
	p.Observe("m1", Observation{Success: true, Latency: time.Second, Strength: 0.7, Scored: true})

	sums := p.Summaries()
	require.Len(t, sums, 2)
	assert.Equal(t, "m1", sums[0].Model)
	assert.NotNil(t, sums[0].Perf)
	assert.Nil(t, sums[1].Perf)
	assert.Equal(t, 0.5, sums[1].Score)
}
