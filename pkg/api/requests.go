package api

// CreateSessionRequest is the body of POST /api/v1/sessions. Zero values
// fall back to configured defaults.
type CreateSessionRequest struct {
	Topic         string `json:"topic" binding:"required"`
	Reference     string `json:"reference,omitempty"`
	Debaters      int    `json:"debaters,omitempty"`
	Strategy      string `json:"rotation_strategy,omitempty"`
	MaxRounds     int    `json:"max_rounds,omitempty"`
	BudgetSeconds int    `json:"budget_seconds,omitempty"`
}

// StrategyRequest is the body of PUT /api/v1/sessions/:id/strategy.
type StrategyRequest struct {
	Strategy string `json:"strategy" binding:"required"`
}
