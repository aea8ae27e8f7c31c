// Package resilience wraps the model client with retry, circuit-breaker,
// and fallback policy. Breakers and the retry-budget ledger are
// process-wide and shared across sessions.
package resilience

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/provider"
)

// BreakerState is the health state of one (model, failure family) breaker.
type BreakerState string

const (
	StateClosed   BreakerState = "closed"
	StateOpen     BreakerState = "open"
	StateHalfOpen BreakerState = "half_open"
)

// ErrBreakerOpen is returned when a call is refused because a breaker for
// the target model is open.
var ErrBreakerOpen = errors.New("circuit breaker open")

// Family maps a failure kind to its breaker family. Rate limiting is
// tracked separately from availability faults; non-retryable kinds fail the
// session before breaker accounting matters.
func Family(kind provider.FailureKind) string {
	if kind == provider.KindRateLimited {
		return "rate"
	}
	return "availability"
}

// families are the breaker families tracked per model.
var families = []string{"availability", "rate"}

// Breaker is a single (model, family) health state machine. The rolling
// window records every call outcome for the model; only failures of this
// breaker's family count as failures.
type Breaker struct {
	mu  sync.Mutex
	cfg *config.BreakerConfig

	state    BreakerState
	window   []bool // ring buffer, true = failure
	head     int
	count    int
	failures int

	openedAt time.Time
	cooldown time.Duration
	probing  bool

	now func() time.Time
}

func newBreaker(cfg *config.BreakerConfig, now func() time.Time) *Breaker {
	return &Breaker{
		cfg:      cfg,
		state:    StateClosed,
		window:   make([]bool, cfg.Window),
		cooldown: cfg.Cooldown,
		now:      now,
	}
}

// State returns the current state without side effects.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// allow decides whether a call may proceed. It returns (true, true) when
// the call is admitted as the single half-open probe.
func (b *Breaker) allow() (admitted, probe bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return true, false
	case StateOpen:
		if b.now().Sub(b.openedAt) >= b.cooldown {
			b.state = StateHalfOpen
			b.probing = true
			return true, true
		}
		return false, false
	default: // half-open
		if b.probing {
			return false, false
		}
		b.probing = true
		return true, true
	}
}

// record feeds one call outcome into the breaker. failed must be true only
// for failures of this breaker's family.
func (b *Breaker) record(failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateHalfOpen:
		b.probing = false
		if failed {
			b.reopenLocked()
			return
		}
		b.closeLocked()
	case StateClosed:
		b.pushLocked(failed)
		if b.shouldTripLocked() {
			b.tripLocked()
		}
	}
	// Open: outcome belongs to a call admitted before the trip; drop it.
}

// forceOpen trips the breaker regardless of window statistics. Used when a
// logical call exhausts its retry schedule, so other sessions observe the
// fault without re-accumulating failures.
func (b *Breaker) forceOpen() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateOpen {
		return
	}
	b.tripLocked()
}

func (b *Breaker) pushLocked(failed bool) {
	if b.window[b.head] && b.count == len(b.window) {
		b.failures--
	}
	b.window[b.head] = failed
	b.head = (b.head + 1) % len(b.window)
	if b.count < len(b.window) {
		b.count++
	}
	if failed {
		b.failures++
	}
}

// shouldTripLocked requires a full window: failure rate is only meaningful
// over exactly N observations.
func (b *Breaker) shouldTripLocked() bool {
	if b.count < len(b.window) {
		return false
	}
	rate := float64(b.failures) / float64(b.count)
	return b.failures >= b.cfg.MinFailures && rate >= b.cfg.TripRate
}

func (b *Breaker) tripLocked() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.probing = false
}

// reopenLocked handles a failed half-open probe: back to open with the
// cooldown doubled, capped at the configured maximum.
func (b *Breaker) reopenLocked() {
	b.cooldown *= 2
	if b.cooldown > b.cfg.CooldownMax {
		b.cooldown = b.cfg.CooldownMax
	}
	b.state = StateOpen
	b.openedAt = b.now()
}

func (b *Breaker) closeLocked() {
	b.state = StateClosed
	b.cooldown = b.cfg.Cooldown
	b.window = make([]bool, b.cfg.Window)
	b.head, b.count, b.failures = 0, 0, 0
}

// releaseProbe returns an unused half-open probe slot.
func (b *Breaker) releaseProbe() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateHalfOpen {
		b.probing = false
	}
}

// BreakerStatus is a point-in-time view of one breaker for introspection.
type BreakerStatus struct {
	Key      string        `json:"key"`
	State    BreakerState  `json:"state"`
	Failures int           `json:"failures"`
	Observed int           `json:"observed"`
	Cooldown time.Duration `json:"cooldown"`
}

// BreakerTable is the process-wide registry of breakers, keyed by
// (scope, model, family). Scope separates logical roles sharing a physical
// model (debaters vs. the analyzer) so one cannot trip the other.
type BreakerTable struct {
	mu       sync.Mutex
	cfg      *config.BreakerConfig
	breakers map[string]*Breaker
	now      func() time.Time
}

// NewBreakerTable builds an empty table.
func NewBreakerTable(cfg *config.BreakerConfig) *BreakerTable {
	return &BreakerTable{
		cfg:      cfg,
		breakers: make(map[string]*Breaker),
		now:      time.Now,
	}
}

func breakerKey(scope, model, family string) string {
	return scope + ":" + model + ":" + family
}

func (t *BreakerTable) breaker(scope, model, family string) *Breaker {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := breakerKey(scope, model, family)
	b, ok := t.breakers[key]
	if !ok {
		// Indirect through the table's clock so tests can swap it.
		b = newBreaker(t.cfg, func() time.Time { return t.now() })
		t.breakers[key] = b
	}
	return b
}

// Acquire admits or refuses a call to model within scope. When a breaker is
// due for its half-open probe, the admitted call is that probe; the caller
// must report the outcome via Record. Probe slots taken before a refusal
// are released so they are not stranded.
func (t *BreakerTable) Acquire(scope, model string) error {
	var probes []*Breaker
	for _, fam := range families {
		b := t.breaker(scope, model, fam)
		admitted, probe := b.allow()
		if !admitted {
			for _, p := range probes {
				p.releaseProbe()
			}
			return fmt.Errorf("%w: %s", ErrBreakerOpen, breakerKey(scope, model, fam))
		}
		if probe {
			probes = append(probes, b)
		}
	}
	return nil
}

// Record feeds a call outcome into every family breaker for the model. A
// failure counts against its own family only; the other families observe a
// non-failing call.
func (t *BreakerTable) Record(scope, model string, failureKind provider.FailureKind, failed bool) {
	for _, fam := range families {
		b := t.breaker(scope, model, fam)
		b.record(failed && Family(failureKind) == fam)
	}
	if failed {
		slog.Debug("Breaker recorded failure",
			"scope", scope, "model", model, "family", Family(failureKind))
	}
}

// Discard releases any probe slot taken by Acquire without recording an
// outcome, for calls whose result says nothing about the model's health.
func (t *BreakerTable) Discard(scope, model string) {
	for _, fam := range families {
		t.breaker(scope, model, fam).releaseProbe()
	}
}

// ForceOpen trips the breaker for (scope, model, family of kind).
func (t *BreakerTable) ForceOpen(scope, model string, kind provider.FailureKind) {
	t.breaker(scope, model, Family(kind)).forceOpen()
	slog.Warn("Breaker forced open",
		"scope", scope, "model", model, "family", Family(kind))
}

// Unhealthy reports whether any family breaker for the model is open. It
// does not mutate breaker state, so a probe slot is not consumed.
func (t *BreakerTable) Unhealthy(scope, model string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, fam := range families {
		if b, ok := t.breakers[breakerKey(scope, model, fam)]; ok {
			b.mu.Lock()
			open := b.state == StateOpen
			b.mu.Unlock()
			if open {
				return true
			}
		}
	}
	return false
}

// Snapshot returns the current state of every breaker, for introspection
// endpoints.
func (t *BreakerTable) Snapshot() []BreakerStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]BreakerStatus, 0, len(t.breakers))
	for key, b := range t.breakers {
		b.mu.Lock()
		out = append(out, BreakerStatus{
			Key:      key,
			State:    b.state,
			Failures: b.failures,
			Observed: b.count,
			Cooldown: b.cooldown,
		})
		b.mu.Unlock()
	}
	return out
}
