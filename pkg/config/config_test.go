package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Debate.MinRounds)
	assert.Equal(t, 10, cfg.Debate.MaxRounds)
	assert.Equal(t, 60*time.Second, cfg.Debate.TurnDeadline)
	assert.Equal(t, 30*time.Minute, cfg.Debate.SessionBudget)
	assert.Equal(t, "adaptive", cfg.Debate.RotationStrategy)

	assert.Equal(t, 4, cfg.Retry.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.BaseDelay)
	assert.Equal(t, 8*time.Second, cfg.Retry.CapDelay)
	assert.Equal(t, 20, cfg.Retry.SessionRetryBudget)

	assert.Equal(t, 20, cfg.Breaker.Window)
	assert.Equal(t, 0.5, cfg.Breaker.TripRate)
	assert.Equal(t, 5, cfg.Breaker.MinFailures)
	assert.Equal(t, 30*time.Second, cfg.Breaker.Cooldown)
	assert.Equal(t, 5*time.Minute, cfg.Breaker.CooldownMax)

	assert.InDelta(t, 1.0, cfg.Analysis.WeightsSum(), 1e-9)
	assert.Equal(t, 3, cfg.Pool.MinCallsBeforeRotation)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Debate, cfg.Debate)
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agora.yaml")
	content := `
debate:
  min_rounds: 3
  max_rounds: 5
  debaters: 3
  turn_deadline: 45s
  session_budget: 20m
  transcript_token_ceiling: 4000
  rotation_strategy: fixed
pool:
  min_calls_before_rotation: 2
  models:
    - id: alpha/one
      tier: standard
    - id: beta/two
      tier: standard
      fallback: alpha/one
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Debate.MaxRounds)
	assert.Equal(t, 3, cfg.Debate.Debaters)
	assert.Equal(t, "fixed", cfg.Debate.RotationStrategy)
	assert.Len(t, cfg.Pool.Models, 2)
	assert.Equal(t, "alpha/one", cfg.Pool.Models[1].Fallback)

	// Omitted sections fall back to defaults.
	assert.Equal(t, DefaultRetryConfig(), cfg.Retry)
	assert.Equal(t, DefaultBreakerConfig(), cfg.Breaker)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"max below min rounds", func(c *Config) { c.Debate.MaxRounds = 2 }},
		{"single debater", func(c *Config) { c.Debate.Debaters = 1 }},
		{"unknown strategy", func(c *Config) { c.Debate.RotationStrategy = "random" }},
		{"zero attempts", func(c *Config) { c.Retry.MaxAttempts = 0 }},
		{"negative retry budget", func(c *Config) { c.Retry.SessionRetryBudget = -1 }},
		{"trip rate above one", func(c *Config) { c.Breaker.TripRate = 1.5 }},
		{"cooldown max below initial", func(c *Config) { c.Breaker.CooldownMax = time.Second }},
		{"weights not summing to one", func(c *Config) { c.Analysis.EvidenceWeight = 0.5 }},
		{"duplicate model", func(c *Config) {
			c.Pool.Models = []ModelConfig{{ID: "m"}, {ID: "m"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("AGORA_TEST_HOST", "db.internal")

	out := ExpandEnv([]byte("host: {{.AGORA_TEST_HOST}}"))
	assert.Equal(t, "host: db.internal", string(out))

	// Literal $ is left alone.
	out = ExpandEnv([]byte("pattern: ^secret.*$"))
	assert.Equal(t, "pattern: ^secret.*$", string(out))
}
