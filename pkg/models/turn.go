package models

import "time"

// Turn is a single utterance by a role in a phase. Immutable once appended;
// later turns refer to earlier ones by Index.
type Turn struct {
	Index        int             `json:"index"` // 1-based, strictly monotonic per session
	Round        int             `json:"round"` // 0 for opening/closing/judgment turns
	Role         Role            `json:"role"`
	Model        string          `json:"model"` // model bound to the role at speaking time
	Phase        Phase           `json:"phase"`
	Content      string          `json:"content"`
	Timestamp    time.Time       `json:"timestamp"`
	Latency      time.Duration   `json:"latency"`
	InputTokens  int             `json:"input_tokens"`
	OutputTokens int             `json:"output_tokens"`
	Argument     *ArgumentRecord `json:"argument,omitempty"`
}

// Round groups the turns of one exchange plus the post-round snapshot.
// Turn membership is by index range over the session's flat turn list.
type Round struct {
	Index     int            `json:"index"` // 1-based
	Phase     Phase          `json:"phase"`
	FirstTurn int            `json:"first_turn"`
	LastTurn  int            `json:"last_turn"`
	Metrics   *RoundMetrics  `json:"metrics,omitempty"`
	Decision  *RoundDecision `json:"decision,omitempty"`
}

// RoundAction is the Adaptive Round Manager's post-round verdict.
type RoundAction string

const (
	ActionContinue       RoundAction = "continue_normal"
	ActionExtend         RoundAction = "extend"
	ActionReduce         RoundAction = "reduce"
	ActionTerminateEarly RoundAction = "terminate_early"
)

// RoundMetrics are the four sub-metrics computed after each round.
type RoundMetrics struct {
	Quality      float64 `json:"quality"`
	Engagement   float64 `json:"engagement"`
	Novelty      float64 `json:"novelty"`
	TimePressure float64 `json:"time_pressure"`
	Composite    float64 `json:"composite"`
}

// RoundDecision is the action chosen for the debate after a round closes,
// with the metrics that drove it.
type RoundDecision struct {
	Action  RoundAction  `json:"action"`
	Reason  string       `json:"reason"`
	Metrics RoundMetrics `json:"metrics"`
}

// ContextSnapshot is the compressed post-round state of the debate:
// participant stances, active sub-issues, and momentum indicators.
type ContextSnapshot struct {
	Round        int              `json:"round"`
	Stances      map[Role]string  `json:"stances"`
	ActiveIssues []string         `json:"active_issues"`
	Momentum     map[Role]float64 `json:"momentum"`
	Summary      string           `json:"summary"`
	CreatedAt    time.Time        `json:"created_at"`
}
