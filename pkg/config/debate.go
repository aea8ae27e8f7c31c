package config

import "time"

// DebateConfig controls the shape and resource bounds of a debate session.
type DebateConfig struct {
	// MinRounds and MaxRounds bound the middle section of the debate
	// (first round, rebuttals, cross-examination). The round manager may
	// extend or reduce within these bounds, never outside them.
	MinRounds int `yaml:"min_rounds"`
	MaxRounds int `yaml:"max_rounds"`

	// Debaters is the default number of debater roles when a session
	// does not specify one. Always >= 2; exactly one judge is added.
	Debaters int `yaml:"debaters"`

	// TurnDeadline is the per-invocation timeout for a model call.
	TurnDeadline time.Duration `yaml:"turn_deadline"`

	// SessionBudget is the total wall-clock allowance for a session.
	// Exhausting it fails the session with reason "budget exhausted".
	SessionBudget time.Duration `yaml:"session_budget"`

	// TranscriptTokenCeiling caps the estimated token size of the
	// transcript included in a prompt; older turns are compressed to
	// head lines beyond it.
	TranscriptTokenCeiling int `yaml:"transcript_token_ceiling"`

	// RotationStrategy is the default strategy for new sessions.
	RotationStrategy string `yaml:"rotation_strategy"`
}

// DefaultDebateConfig returns the built-in debate defaults.
func DefaultDebateConfig() *DebateConfig {
	return &DebateConfig{
		MinRounds:              3,
		MaxRounds:              10,
		Debaters:               2,
		TurnDeadline:           60 * time.Second,
		SessionBudget:          30 * time.Minute,
		TranscriptTokenCeiling: 6000,
		RotationStrategy:       "adaptive",
	}
}
