package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/config"
)

type fakePurger struct {
	mu      sync.Mutex
	cutoffs []time.Time
	count   int
	err     error
}

func (f *fakePurger) PurgeEndedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.count, f.err
}

func (f *fakePurger) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

type fakeCleaner struct {
	mu   sync.Mutex
	ttls []time.Duration
	err  error
}

func (f *fakeCleaner) CleanupOrphanedEvents(ctx context.Context, ttl time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttls = append(f.ttls, ttl)
	return 0, f.err
}

func (f *fakeCleaner) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ttls)
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		Enabled:       true,
		MaxAge:        30 * 24 * time.Hour,
		SweepInterval: 5 * time.Millisecond,
	}
}

func TestSweepUsesRetentionCutoff(t *testing.T) {
	purger := &fakePurger{count: 3}
	cleaner := &fakeCleaner{}
	svc := NewService(retentionConfig(), purger, cleaner)

	fixed := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	svc.sweep(context.Background())

	require.Equal(t, 1, purger.calls())
	assert.Equal(t, fixed.Add(-30*24*time.Hour), purger.cutoffs[0])
	require.Equal(t, 1, cleaner.calls())
	assert.Equal(t, 30*24*time.Hour, cleaner.ttls[0])
}

func TestSweepContinuesPastPurgeFailure(t *testing.T) {
	purger := &fakePurger{err: errors.New("connection refused")}
	cleaner := &fakeCleaner{}
	svc := NewService(retentionConfig(), purger, cleaner)

	svc.sweep(context.Background())

	assert.Equal(t, 1, purger.calls())
	assert.Equal(t, 1, cleaner.calls(), "event cleanup should run even when session purge fails")
}

func TestStartRunsPeriodicSweeps(t *testing.T) {
	purger := &fakePurger{}
	cleaner := &fakeCleaner{}
	svc := NewService(retentionConfig(), purger, cleaner)

	svc.Start(context.Background())
	require.Eventually(t, func() bool {
		return purger.calls() >= 3
	}, 2*time.Second, time.Millisecond)
	svc.Stop()

	after := purger.calls()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, purger.calls(), "no sweeps after Stop")
}

func TestStartIsNoopWhenDisabled(t *testing.T) {
	purger := &fakePurger{}
	cleaner := &fakeCleaner{}
	cfg := retentionConfig()
	cfg.Enabled = false
	svc := NewService(cfg, purger, cleaner)

	svc.Start(context.Background())
	svc.Stop()

	assert.Zero(t, purger.calls())
	assert.Zero(t, cleaner.calls())
}
