package config

import "time"

// RetryConfig controls the retry schedule for retryable model failures.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts per logical call,
	// including the first.
	MaxAttempts int `yaml:"max_attempts"`

	// BaseDelay is the first backoff interval; subsequent intervals
	// double up to CapDelay. Full jitter is applied to every interval.
	BaseDelay time.Duration `yaml:"base_delay"`
	CapDelay  time.Duration `yaml:"cap_delay"`

	// SessionRetryBudget caps cumulative retries across all turns of a
	// session. Exhausting it promotes the next retryable failure to
	// fatal. A budget of 0 makes the first retryable failure fatal.
	SessionRetryBudget int `yaml:"session_retry_budget"`
}

// DefaultRetryConfig returns the built-in retry defaults.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:        4,
		BaseDelay:          500 * time.Millisecond,
		CapDelay:           8 * time.Second,
		SessionRetryBudget: 20,
	}
}

// BreakerConfig controls the per-(model, failure family) circuit breakers.
type BreakerConfig struct {
	// Window is the rolling call-outcome window per breaker.
	Window int `yaml:"window"`

	// TripRate and MinFailures must both be met over a full window for
	// the breaker to trip.
	TripRate    float64 `yaml:"trip_rate"`
	MinFailures int     `yaml:"min_failures"`

	// Cooldown is the initial open interval. Each failed half-open
	// probe doubles it, capped at CooldownMax.
	Cooldown    time.Duration `yaml:"cooldown"`
	CooldownMax time.Duration `yaml:"cooldown_max"`
}

// DefaultBreakerConfig returns the built-in breaker defaults.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		Window:      20,
		TripRate:    0.5,
		MinFailures: 5,
		Cooldown:    30 * time.Second,
		CooldownMax: 5 * time.Minute,
	}
}
