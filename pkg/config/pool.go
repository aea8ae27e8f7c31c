package config

// ModelConfig declares one model available to the pool.
type ModelConfig struct {
	// ID is the provider-facing model identifier (e.g. "openai/gpt-4o").
	ID string `yaml:"id"`

	// Tier groups models of comparable cost/latency. Round-robin
	// rotation only moves within a tier.
	Tier string `yaml:"tier"`

	// Strengths are free-form capability tags ("reasoning", "speed").
	Strengths []string `yaml:"strengths,omitempty"`

	// Fallback is an optional secondary model identity invoked when
	// this model ultimately fails a call.
	Fallback string `yaml:"fallback,omitempty"`

	// Per-1K-token pricing used for cost estimation.
	InputCostPer1K  float64 `yaml:"input_cost_per_1k"`
	OutputCostPer1K float64 `yaml:"output_cost_per_1k"`
}

// PoolConfig declares the model pool and rotation thresholds.
type PoolConfig struct {
	Models []ModelConfig `yaml:"models"`

	// MinCallsBeforeRotation is the minimum number of observations of
	// the incumbent before a strategy may propose rotation.
	MinCallsBeforeRotation int `yaml:"min_calls_before_rotation"`

	// ImprovementThreshold is the composite-score gap a candidate must
	// hold over the incumbent for performance-based rotation.
	ImprovementThreshold float64 `yaml:"improvement_threshold"`

	// RoundRobinInterval is the round period for round-robin rotation.
	RoundRobinInterval int `yaml:"round_robin_interval"`
}

// DefaultPoolConfig returns the built-in pool defaults. The model list is
// empty; deployments declare their own.
func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		MinCallsBeforeRotation: 3,
		ImprovementThreshold:   0.10,
		RoundRobinInterval:     2,
	}
}
