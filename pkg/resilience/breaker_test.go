package resilience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/provider"
)

const (
	testScope = "debate"
	testModel = "vendor/model-x"
)

func newTestTable(cfg *config.BreakerConfig) (*BreakerTable, *time.Time) {
	table := NewBreakerTable(cfg)
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	table.now = func() time.Time { return now }
	return table, &now
}

func recordN(t *BreakerTable, n int, kind provider.FailureKind, failed bool) {
	for i := 0; i < n; i++ {
		t.Record(testScope, testModel, kind, failed)
	}
}

func TestBreakerTripsOnlyAtFullWindow(t *testing.T) {
	cfg := config.DefaultBreakerConfig() // window 20, rate 0.5, min 5 failures
	table, _ := newTestTable(cfg)

	// 10 failures + 9 successes: rate above threshold but window not full.
	recordN(table, 10, provider.KindTimeout, true)
	recordN(table, 9, "", false)
	require.NoError(t, table.Acquire(testScope, testModel))
	assert.False(t, table.Unhealthy(testScope, testModel))

	// 20th observation completes the window at exactly the trip rate.
	recordN(table, 1, "", false)
	err := table.Acquire(testScope, testModel)
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.True(t, table.Unhealthy(testScope, testModel))
}

func TestBreakerRequiresMinFailures(t *testing.T) {
	cfg := config.DefaultBreakerConfig()
	cfg.Window = 8
	cfg.MinFailures = 5
	table, _ := newTestTable(cfg)

	// 4 failures / 8 = 50% rate, but below the failure floor.
	recordN(table, 4, provider.KindUnavailable, true)
	recordN(table, 4, "", false)
	assert.NoError(t, table.Acquire(testScope, testModel))
}

func TestBreakerHalfOpenProbeCycle(t *testing.T) {
	cfg := config.DefaultBreakerConfig()
	table, now := newTestTable(cfg)

	table.ForceOpen(testScope, testModel, provider.KindTimeout)
	assert.ErrorIs(t, table.Acquire(testScope, testModel), ErrBreakerOpen)

	// Cooldown elapsed: exactly one probe is admitted.
	*now = now.Add(cfg.Cooldown)
	require.NoError(t, table.Acquire(testScope, testModel))
	assert.ErrorIs(t, table.Acquire(testScope, testModel), ErrBreakerOpen)

	// Probe failure reopens with the cooldown doubled.
	table.Record(testScope, testModel, provider.KindTimeout, true)
	*now = now.Add(cfg.Cooldown) // original cooldown no longer enough
	assert.ErrorIs(t, table.Acquire(testScope, testModel), ErrBreakerOpen)

	*now = now.Add(cfg.Cooldown) // 2x cooldown reached
	require.NoError(t, table.Acquire(testScope, testModel))

	// Probe success closes the breaker and resets its window.
	table.Record(testScope, testModel, "", false)
	assert.NoError(t, table.Acquire(testScope, testModel))
	assert.False(t, table.Unhealthy(testScope, testModel))
}

func TestBreakerDiscardReleasesProbeSlot(t *testing.T) {
	cfg := config.DefaultBreakerConfig()
	table, now := newTestTable(cfg)

	table.ForceOpen(testScope, testModel, provider.KindTimeout)
	*now = now.Add(cfg.Cooldown)
	require.NoError(t, table.Acquire(testScope, testModel))

	// The probe's caller walked away without an outcome; the slot must be
	// free for the next caller rather than stranded.
	table.Discard(testScope, testModel)
	require.NoError(t, table.Acquire(testScope, testModel))
	table.Record(testScope, testModel, "", false)
	assert.False(t, table.Unhealthy(testScope, testModel))
}

func TestBreakerCooldownCapped(t *testing.T) {
	cfg := config.DefaultBreakerConfig()
	cfg.Cooldown = 2 * time.Minute
	cfg.CooldownMax = 5 * time.Minute
	table, now := newTestTable(cfg)

	table.ForceOpen(testScope, testModel, provider.KindTimeout)
	for i := 0; i < 4; i++ { // repeated failed probes: 4m, then capped at 5m
		*now = now.Add(cfg.CooldownMax)
		require.NoError(t, table.Acquire(testScope, testModel), "probe %d", i)
		table.Record(testScope, testModel, provider.KindTimeout, true)
	}

	status := table.Snapshot()
	require.Len(t, status, 2) // availability + rate families
	for _, s := range status {
		if s.State == StateOpen {
			assert.LessOrEqual(t, s.Cooldown, cfg.CooldownMax)
		}
	}
}

func TestBreakerFamiliesAreIndependent(t *testing.T) {
	cfg := config.DefaultBreakerConfig()
	cfg.Window = 6
	cfg.MinFailures = 3
	table, _ := newTestTable(cfg)

	// Six rate-limit failures fill both windows, but only the rate family
	// counts them as failures.
	recordN(table, 6, provider.KindRateLimited, true)
	assert.ErrorIs(t, table.Acquire(testScope, testModel), ErrBreakerOpen)

	var states = map[string]BreakerState{}
	for _, s := range table.Snapshot() {
		states[s.Key] = s.State
	}
	assert.Equal(t, StateOpen, states[breakerKey(testScope, testModel, "rate")])
	assert.Equal(t, StateClosed, states[breakerKey(testScope, testModel, "availability")])
}

func TestBreakerScopesAreIndependent(t *testing.T) {
	table, _ := newTestTable(config.DefaultBreakerConfig())

	table.ForceOpen("debate", testModel, provider.KindTimeout)
	assert.True(t, table.Unhealthy("debate", testModel))
	assert.False(t, table.Unhealthy("analyzer", testModel))
	assert.NoError(t, table.Acquire("analyzer", testModel))
}

func TestBudgetLedger(t *testing.T) {
	b := NewBudget()
	b.Register("s1", 2)

	assert.True(t, b.Spend("s1"))
	assert.True(t, b.Spend("s1"))
	assert.False(t, b.Spend("s1"))
	assert.Equal(t, 2, b.Used("s1"))

	// Unknown sessions have no allowance.
	assert.False(t, b.Spend("s2"))

	// Zero allowance refuses the first retry.
	b.Register("s3", 0)
	assert.False(t, b.Spend("s3"))

	b.Forget("s1")
	assert.False(t, b.Spend("s1"))
}
