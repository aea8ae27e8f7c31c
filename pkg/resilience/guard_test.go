package resilience

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/provider"
)

// scriptedProvider pops one scripted outcome per call, per model. Models
// without a script always succeed.
type scriptedProvider struct {
	mu      sync.Mutex
	scripts map[string][]error
	calls   map[string]int
}

func newScripted() *scriptedProvider {
	return &scriptedProvider{
		scripts: make(map[string][]error),
		calls:   make(map[string]int),
	}
}

func (p *scriptedProvider) fail(model string, errs ...error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scripts[model] = append(p.scripts[model], errs...)
}

func (p *scriptedProvider) callCount(model string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[model]
}

func (p *scriptedProvider) Invoke(_ context.Context, req provider.Request) (*provider.Completion, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls[req.Model]++
	if queue := p.scripts[req.Model]; len(queue) > 0 {
		err := queue[0]
		p.scripts[req.Model] = queue[1:]
		if err != nil {
			return nil, err
		}
	}
	return &provider.Completion{Text: "scripted reply", InputTokens: 10, OutputTokens: 5}, nil
}

func newTestGuard(p provider.Provider, budget int, fallback map[string]string) (*Guard, *Budget) {
	retry := config.DefaultRetryConfig()
	ledger := NewBudget()
	ledger.Register("s1", budget)
	g := NewGuard("debate", p, NewBreakerTable(config.DefaultBreakerConfig()), ledger,
		retry, time.Second, func(m string) string { return fallback[m] })
	g.jitter = func(time.Duration) time.Duration { return 0 }
	return g, ledger
}

func TestGuardSuccessPassthrough(t *testing.T) {
	p := newScripted()
	g, ledger := newTestGuard(p, 20, nil)

	comp, err := g.Invoke(context.Background(), "s1", provider.Request{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "scripted reply", comp.Text)
	assert.Equal(t, 1, p.callCount("m"))
	assert.Equal(t, 0, ledger.Used("s1"))
}

func TestGuardRetriesTransientThenSucceeds(t *testing.T) {
	p := newScripted()
	p.fail("m",
		provider.NewCallError(provider.KindTransient, "m", assert.AnError),
		provider.NewCallError(provider.KindRateLimited, "m", assert.AnError),
	)
	g, ledger := newTestGuard(p, 20, nil)

	comp, err := g.Invoke(context.Background(), "s1", provider.Request{Model: "m"})
	require.NoError(t, err)
	assert.NotNil(t, comp)
	assert.Equal(t, 3, p.callCount("m"))
	assert.Equal(t, 2, ledger.Used("s1"))
}

func TestGuardNeverRetriesAuth(t *testing.T) {
	p := newScripted()
	p.fail("m", provider.NewCallError(provider.KindAuth, "m", assert.AnError))
	g, _ := newTestGuard(p, 20, nil)

	_, err := g.Invoke(context.Background(), "s1", provider.Request{Model: "m"})
	require.Error(t, err)
	assert.Equal(t, provider.KindAuth, provider.KindOf(err))
	assert.Equal(t, 1, p.callCount("m"))
}

func TestGuardNeverRetriesInvalidRequest(t *testing.T) {
	p := newScripted()
	p.fail("m", provider.NewCallError(provider.KindInvalidRequest, "m", assert.AnError))
	g, _ := newTestGuard(p, 20, nil)

	_, err := g.Invoke(context.Background(), "s1", provider.Request{Model: "m"})
	require.Error(t, err)
	assert.Equal(t, 1, p.callCount("m"))
}

func TestGuardExhaustionTripsBreaker(t *testing.T) {
	p := newScripted()
	for i := 0; i < 4; i++ {
		p.fail("m", provider.NewCallError(provider.KindTimeout, "m", assert.AnError))
	}
	g, _ := newTestGuard(p, 20, nil)

	_, err := g.Invoke(context.Background(), "s1", provider.Request{Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retries exhausted")
	assert.Equal(t, 4, p.callCount("m"))

	// The fault is now visible to every session without re-accumulating.
	assert.True(t, g.Breakers().Unhealthy("debate", "m"))

	// Subsequent calls fail fast without touching the provider.
	_, err = g.Invoke(context.Background(), "s1", provider.Request{Model: "m"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.Equal(t, provider.KindUnavailable, provider.KindOf(err))
	assert.Equal(t, 4, p.callCount("m"))
}

func TestGuardZeroBudgetPromotesToFatal(t *testing.T) {
	p := newScripted()
	p.fail("m", provider.NewCallError(provider.KindTransient, "m", assert.AnError))
	g, _ := newTestGuard(p, 0, nil)

	_, err := g.Invoke(context.Background(), "s1", provider.Request{Model: "m"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryBudgetExhausted)
	assert.Equal(t, 1, p.callCount("m"))
}

func TestGuardFallbackAfterUltimateFailure(t *testing.T) {
	p := newScripted()
	for i := 0; i < 4; i++ {
		p.fail("m", provider.NewCallError(provider.KindUnavailable, "m", assert.AnError))
	}
	g, _ := newTestGuard(p, 20, map[string]string{"m": "m-fallback"})

	comp, err := g.Invoke(context.Background(), "s1", provider.Request{Model: "m"})
	require.NoError(t, err)
	assert.NotNil(t, comp)
	assert.Equal(t, 4, p.callCount("m"))
	assert.Equal(t, 1, p.callCount("m-fallback"))
}

func TestGuardFallbackFailurePropagatesPrimaryError(t *testing.T) {
	p := newScripted()
	p.fail("m", provider.NewCallError(provider.KindAuth, "m", assert.AnError))
	p.fail("m-fallback", provider.NewCallError(provider.KindAuth, "m-fallback", assert.AnError))
	g, _ := newTestGuard(p, 20, map[string]string{"m": "m-fallback"})

	_, err := g.Invoke(context.Background(), "s1", provider.Request{Model: "m"})
	require.Error(t, err)
	var ce *provider.CallError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "m", ce.Model)
}

// stalledProvider blocks until the call context dies and surfaces its error,
// as a slow upstream would when the caller walks away mid-call.
type stalledProvider struct{}

func (stalledProvider) Invoke(ctx context.Context, _ provider.Request) (*provider.Completion, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestGuardMidCallCancellationLeavesBreakersClean(t *testing.T) {
	g, _ := newTestGuard(stalledProvider{}, 40, nil)

	// Far more aborted calls than the trip threshold tolerates. None of them
	// is a model fault, so the shared breakers must stay closed and empty.
	for i := 0; i < 2*config.DefaultBreakerConfig().Window; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		timer := time.AfterFunc(5*time.Millisecond, cancel)
		_, err := g.Invoke(ctx, "s1", provider.Request{Model: "m"})
		timer.Stop()
		cancel()
		require.Error(t, err)
	}

	assert.False(t, g.Breakers().Unhealthy("debate", "m"))
	for _, st := range g.Breakers().Snapshot() {
		assert.Equal(t, StateClosed, st.State, st.Key)
		assert.Zero(t, st.Observed, st.Key)
		assert.Zero(t, st.Failures, st.Key)
	}
}

func TestGuardHonoursCancellation(t *testing.T) {
	p := newScripted()
	p.fail("m", provider.NewCallError(provider.KindTransient, "m", assert.AnError))
	g, _ := newTestGuard(p, 20, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Invoke(ctx, "s1", provider.Request{Model: "m"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, p.callCount("m"))
}
