package resilience

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/agora-labs/agora/pkg/config"
)

// ErrRetryBudgetExhausted is returned when a session's cumulative retry
// allowance is spent and a further retry was needed.
var ErrRetryBudgetExhausted = errors.New("session retry budget exhausted")

// Budget is the process-wide per-session retry ledger. Every retry across
// all turns of a session draws from the same allowance.
type Budget struct {
	mu        sync.Mutex
	remaining map[string]int
	used      map[string]int
}

// NewBudget returns an empty ledger.
func NewBudget() *Budget {
	return &Budget{
		remaining: make(map[string]int),
		used:      make(map[string]int),
	}
}

// Register sets the allowance for a session. Re-registering resets it.
func (b *Budget) Register(sessionID string, allowance int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.remaining[sessionID] = allowance
	b.used[sessionID] = 0
}

// Spend consumes one retry from the session's allowance. It returns false,
// without spending, when the allowance is exhausted or the session is
// unknown.
func (b *Budget) Spend(sessionID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.remaining[sessionID] <= 0 {
		return false
	}
	b.remaining[sessionID]--
	b.used[sessionID]++
	return true
}

// Used returns how many retries the session has consumed.
func (b *Budget) Used(sessionID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used[sessionID]
}

// Forget drops the session from the ledger.
func (b *Budget) Forget(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.remaining, sessionID)
	delete(b.used, sessionID)
}

// newSchedule builds the exponential sequence base, 2·base, 4·base, …
// capped at the configured ceiling. Jitter is applied separately so the
// full-jitter distribution is uniform over [0, interval].
func newSchedule(cfg *config.RetryConfig) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.BaseDelay
	b.Multiplier = 2
	b.MaxInterval = cfg.CapDelay
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// fullJitter draws a delay uniformly from [0, d].
func fullJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(d) + 1))
}

// sleep waits for d or until the context is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
