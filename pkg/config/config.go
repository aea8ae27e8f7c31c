// Package config loads and validates the agora configuration. Each concern
// has its own struct with yaml tags and a Default*Config constructor;
// Load merges a YAML file over the defaults and validates the result.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agora-labs/agora/pkg/models"
)

// Config is the root configuration for the service.
type Config struct {
	Debate    *DebateConfig    `yaml:"debate"`
	Retry     *RetryConfig     `yaml:"retry"`
	Breaker   *BreakerConfig   `yaml:"breaker"`
	Pool      *PoolConfig      `yaml:"pool"`
	Analysis  *AnalysisConfig  `yaml:"analysis"`
	Rounds    *RoundsConfig    `yaml:"rounds"`
	Provider  *ProviderConfig  `yaml:"provider"`
	Retention *RetentionConfig `yaml:"retention"`
	Server    *ServerConfig    `yaml:"server"`
}

// Default returns a fully populated configuration with built-in defaults.
func Default() *Config {
	return &Config{
		Debate:    DefaultDebateConfig(),
		Retry:     DefaultRetryConfig(),
		Breaker:   DefaultBreakerConfig(),
		Pool:      DefaultPoolConfig(),
		Analysis:  DefaultAnalysisConfig(),
		Rounds:    DefaultRoundsConfig(),
		Provider:  DefaultProviderConfig(),
		Retention: DefaultRetentionConfig(),
		Server:    DefaultServerConfig(),
	}
}

// Load reads the YAML file at path, expands environment variables, applies
// defaults for omitted sections, and validates. A missing file yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No config file found, using defaults", "path", path)
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(ExpandEnv(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills any section omitted from the YAML file.
func (c *Config) applyDefaults() {
	if c.Debate == nil {
		c.Debate = DefaultDebateConfig()
	}
	if c.Retry == nil {
		c.Retry = DefaultRetryConfig()
	}
	if c.Breaker == nil {
		c.Breaker = DefaultBreakerConfig()
	}
	if c.Pool == nil {
		c.Pool = DefaultPoolConfig()
	}
	if c.Analysis == nil {
		c.Analysis = DefaultAnalysisConfig()
	}
	if c.Rounds == nil {
		c.Rounds = DefaultRoundsConfig()
	}
	if c.Provider == nil {
		c.Provider = DefaultProviderConfig()
	}
	if c.Retention == nil {
		c.Retention = DefaultRetentionConfig()
	}
	if c.Server == nil {
		c.Server = DefaultServerConfig()
	}
}

const weightTolerance = 1e-9

// Validate checks cross-field constraints. It is called by Load but exported
// for callers that assemble a Config programmatically.
func (c *Config) Validate() error {
	if c.Debate.MinRounds < 1 {
		return fmt.Errorf("debate.min_rounds must be >= 1, got %d", c.Debate.MinRounds)
	}
	if c.Debate.MaxRounds < c.Debate.MinRounds {
		return fmt.Errorf("debate.max_rounds (%d) must be >= debate.min_rounds (%d)",
			c.Debate.MaxRounds, c.Debate.MinRounds)
	}
	if c.Debate.Debaters < 2 {
		return fmt.Errorf("debate.debaters must be >= 2, got %d", c.Debate.Debaters)
	}
	if c.Debate.TurnDeadline <= 0 {
		return fmt.Errorf("debate.turn_deadline must be positive, got %s", c.Debate.TurnDeadline)
	}
	if c.Debate.SessionBudget <= 0 {
		return fmt.Errorf("debate.session_budget must be positive, got %s", c.Debate.SessionBudget)
	}
	if s := models.RotationStrategy(c.Debate.RotationStrategy); !models.ValidStrategy(s) {
		return fmt.Errorf("debate.rotation_strategy %q is not a recognised strategy", c.Debate.RotationStrategy)
	}

	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be >= 1, got %d", c.Retry.MaxAttempts)
	}
	if c.Retry.BaseDelay <= 0 || c.Retry.CapDelay < c.Retry.BaseDelay {
		return fmt.Errorf("retry delays invalid: base %s, cap %s", c.Retry.BaseDelay, c.Retry.CapDelay)
	}
	if c.Retry.SessionRetryBudget < 0 {
		return fmt.Errorf("retry.session_retry_budget must be >= 0, got %d", c.Retry.SessionRetryBudget)
	}

	if c.Breaker.Window < 1 {
		return fmt.Errorf("breaker.window must be >= 1, got %d", c.Breaker.Window)
	}
	if c.Breaker.TripRate <= 0 || c.Breaker.TripRate > 1 {
		return fmt.Errorf("breaker.trip_rate must be in (0, 1], got %g", c.Breaker.TripRate)
	}
	if c.Breaker.Cooldown <= 0 || c.Breaker.CooldownMax < c.Breaker.Cooldown {
		return fmt.Errorf("breaker cooldowns invalid: initial %s, max %s", c.Breaker.Cooldown, c.Breaker.CooldownMax)
	}

	if sum := c.Analysis.WeightsSum(); sum < 1-weightTolerance || sum > 1+weightTolerance {
		return fmt.Errorf("analysis strength weights must sum to 1, got %g", sum)
	}

	if c.Pool.MinCallsBeforeRotation < 1 {
		return fmt.Errorf("pool.min_calls_before_rotation must be >= 1, got %d", c.Pool.MinCallsBeforeRotation)
	}
	seen := make(map[string]bool, len(c.Pool.Models))
	for _, m := range c.Pool.Models {
		if m.ID == "" {
			return fmt.Errorf("pool model with empty id")
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate pool model %q", m.ID)
		}
		seen[m.ID] = true
	}

	if c.Retention.Enabled && c.Retention.MaxAge < time.Minute {
		return fmt.Errorf("retention.max_age too small: %s", c.Retention.MaxAge)
	}
	return nil
}
