package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/provider"
)

// Guard is the guarded path to a provider: breaker gate, bounded retries
// with full-jitter backoff, session retry budget, optional fallback model.
// One Guard serves one logical scope (the debate roles, or the analyzer);
// breaker accounting is per scope so one cannot trip the other.
type Guard struct {
	scope       string
	provider    provider.Provider
	breakers    *BreakerTable
	budget      *Budget
	retry       *config.RetryConfig
	callTimeout time.Duration

	// fallbackFor resolves the secondary model identity for a model, or
	// returns "" when none is configured.
	fallbackFor func(model string) string

	// jitter is swappable in tests to collapse delays.
	jitter func(time.Duration) time.Duration
}

// NewGuard wires a guarded provider path.
func NewGuard(scope string, p provider.Provider, breakers *BreakerTable, budget *Budget,
	retry *config.RetryConfig, callTimeout time.Duration, fallbackFor func(string) string) *Guard {
	if fallbackFor == nil {
		fallbackFor = func(string) string { return "" }
	}
	return &Guard{
		scope:       scope,
		provider:    p,
		breakers:    breakers,
		budget:      budget,
		retry:       retry,
		callTimeout: callTimeout,
		fallbackFor: fallbackFor,
		jitter:      fullJitter,
	}
}

// Breakers exposes the underlying table for health checks and introspection.
func (g *Guard) Breakers() *BreakerTable { return g.breakers }

// Scope returns the breaker scope this guard accounts under.
func (g *Guard) Scope() string { return g.scope }

// Invoke runs one logical model call: retries per policy, then the fallback
// model once, then propagates the primary failure.
func (g *Guard) Invoke(ctx context.Context, sessionID string, req provider.Request) (*provider.Completion, error) {
	comp, err := g.invokeWithRetries(ctx, sessionID, req)
	if err == nil {
		return comp, nil
	}

	if fb := g.fallbackFor(req.Model); fb != "" && ctx.Err() == nil {
		slog.Warn("Primary model failed, invoking fallback",
			"session_id", sessionID, "model", req.Model, "fallback", fb)
		fbReq := req
		fbReq.Model = fb
		if comp, fbErr := g.singleCall(ctx, fbReq); fbErr == nil {
			return comp, nil
		}
	}
	return nil, err
}

func (g *Guard) invokeWithRetries(ctx context.Context, sessionID string, req provider.Request) (*provider.Completion, error) {
	sched := newSchedule(g.retry)
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		comp, err := g.singleCall(ctx, req)
		if err == nil {
			return comp, nil
		}

		// An open breaker fails fast; spinning retries against it would
		// only wait out the cooldown.
		if errors.Is(err, ErrBreakerOpen) {
			return nil, err
		}

		kind := provider.KindOf(err)
		if !kind.Retryable() {
			return nil, err
		}
		if attempt >= g.retry.MaxAttempts {
			// Retry exhaustion is a persistent fault: trip the breaker so
			// every session observes it without re-accumulating failures.
			g.breakers.ForceOpen(g.scope, req.Model, kind)
			return nil, fmt.Errorf("retries exhausted after %d attempts: %w", attempt, err)
		}
		if !g.budget.Spend(sessionID) {
			return nil, fmt.Errorf("%w: last failure: %v", ErrRetryBudgetExhausted, err)
		}

		delay := g.jitter(sched.NextBackOff())
		slog.Debug("Retrying model call",
			"session_id", sessionID, "model", req.Model, "attempt", attempt,
			"kind", string(kind), "delay", delay)
		if err := sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// singleCall is one breaker-gated, deadline-bounded provider invocation.
// The outcome is recorded in the breaker table unless the caller's own
// context died mid-call.
func (g *Guard) singleCall(ctx context.Context, req provider.Request) (*provider.Completion, error) {
	if err := g.breakers.Acquire(g.scope, req.Model); err != nil {
		return nil, &provider.CallError{Kind: provider.KindUnavailable, Model: req.Model, Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	comp, err := g.provider.Invoke(callCtx, req)
	if err != nil && ctx.Err() != nil {
		// The session was cancelled (or ran out its budget) mid-call. That
		// says nothing about the model's health; feeding it into the shared
		// window would open breakers for every other session.
		g.breakers.Discard(g.scope, req.Model)
		return comp, err
	}
	var kind provider.FailureKind
	if err != nil {
		kind = provider.KindOf(err)
	}
	g.breakers.Record(g.scope, req.Model, kind, err != nil)
	return comp, err
}
