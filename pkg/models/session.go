package models

import "time"

// Status is the lifecycle state of a debate session.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further mutation of the session is allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Phase is a named stage of the debate with fixed role contribution rules.
type Phase string

const (
	PhaseInitialization   Phase = "initialization"
	PhaseOpening          Phase = "opening"
	PhaseFirstRound       Phase = "first_round"
	PhaseRebuttal         Phase = "rebuttal"
	PhaseCrossExamination Phase = "cross_examination"
	PhaseClosing          Phase = "closing"
	PhaseJudgment         Phase = "judgment"
	PhaseCompleted        Phase = "completed"
)

// phaseOrder is the forward progression of the debate. FAILED and CANCELLED
// are statuses, not phases: a session keeps its last phase when it dies.
var phaseOrder = []Phase{
	PhaseInitialization,
	PhaseOpening,
	PhaseFirstRound,
	PhaseRebuttal,
	PhaseCrossExamination,
	PhaseClosing,
	PhaseJudgment,
	PhaseCompleted,
}

// PhaseIndex returns the position of p in the forward progression, or -1.
func PhaseIndex(p Phase) int {
	for i, q := range phaseOrder {
		if q == p {
			return i
		}
	}
	return -1
}

// PhaseReachable reports whether "to" is reachable from "from" without
// revisiting any phase. Phases only move forward.
func PhaseReachable(from, to Phase) bool {
	i, j := PhaseIndex(from), PhaseIndex(to)
	return i >= 0 && j >= 0 && i <= j
}

// Role identifies a debate participant. Debaters are debater_A, debater_B, …
// in declaration order; exactly one judge exists per session.
type Role string

const RoleJudge Role = "judge"

// DebaterRole returns the role for the i-th debater (0-based).
func DebaterRole(i int) Role {
	return Role("debater_" + string(rune('A'+i)))
}

// DebaterRoles returns the n debater roles in declaration order.
func DebaterRoles(n int) []Role {
	roles := make([]Role, n)
	for i := range roles {
		roles[i] = DebaterRole(i)
	}
	return roles
}

// IsDebater reports whether r is a debater role.
func (r Role) IsDebater() bool {
	return r != RoleJudge && r != ""
}

// SessionStats is the aggregated resource accounting for a session.
type SessionStats struct {
	InputTokens  int           `json:"input_tokens"`
	OutputTokens int           `json:"output_tokens"`
	CostEstimate float64       `json:"cost_estimate"`
	ErrorCount   int           `json:"error_count"`
	RetryCount   int           `json:"retry_count"`
	Duration     time.Duration `json:"duration"`
}

// Session is a point-in-time snapshot of a debate session. Snapshots are
// produced by the orchestrator; callers never observe a session mid-mutation.
type Session struct {
	ID           string            `json:"id"`
	Topic        string            `json:"topic"`
	Reference    string            `json:"reference,omitempty"`
	Status       Status            `json:"status"`
	StatusReason string            `json:"status_reason,omitempty"`
	Phase        Phase             `json:"phase"`
	Debaters     int               `json:"debaters"`
	Strategy     RotationStrategy  `json:"rotation_strategy"`
	Assignment   map[Role]string   `json:"assignment"`
	Turns        []Turn            `json:"turns"`
	Rounds       []Round           `json:"rounds"`
	Snapshots    []ContextSnapshot `json:"snapshots,omitempty"`
	Rotations    []RotationEvent   `json:"rotations,omitempty"`
	Report       *FinalReport      `json:"report,omitempty"`
	Stats        SessionStats      `json:"stats"`
	CreatedAt    time.Time         `json:"created_at"`
	StartedAt    *time.Time        `json:"started_at,omitempty"`
	EndedAt      *time.Time        `json:"ended_at,omitempty"`
}
