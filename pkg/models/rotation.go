package models

import "time"

// RotationStrategy selects how the pool decides to rebind roles to models.
type RotationStrategy string

const (
	StrategyFixed            RotationStrategy = "fixed"
	StrategyRoundRobin       RotationStrategy = "round_robin"
	StrategyPerformanceBased RotationStrategy = "performance_based"
	StrategyAdaptive         RotationStrategy = "adaptive"
	StrategyBalanced         RotationStrategy = "balanced"
)

// ValidStrategy reports whether s is one of the recognised strategies.
func ValidStrategy(s RotationStrategy) bool {
	switch s {
	case StrategyFixed, StrategyRoundRobin, StrategyPerformanceBased,
		StrategyAdaptive, StrategyBalanced:
		return true
	}
	return false
}

// RotationDecision is a proposal to rebind a role to a different model.
// The orchestrator applies it at a phase boundary, or immediately for
// emergency replacements of breaker-open incumbents.
type RotationDecision struct {
	Role                Role    `json:"role"`
	OldModel            string  `json:"old_model"`
	NewModel            string  `json:"new_model"`
	Reason              string  `json:"reason"`
	Confidence          float64 `json:"confidence"`
	ExpectedImprovement float64 `json:"expected_improvement"`
	Emergency           bool    `json:"emergency"`
}

// RotationEvent is an applied rotation recorded in session history.
type RotationEvent struct {
	Decision  RotationDecision `json:"decision"`
	Phase     Phase            `json:"phase"`
	AfterTurn int              `json:"after_turn"` // index of the last turn before the change
	AppliedAt time.Time        `json:"applied_at"`
}
