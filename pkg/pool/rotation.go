package pool

import (
	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/models"
)

// Engine evaluates whether a role's model binding should change. Decisions
// are proposals; the orchestrator applies them at phase boundaries and
// records them in session history.
type Engine struct {
	pool *Pool
	cfg  *config.PoolConfig
}

// NewEngine builds a rotation engine over the pool.
func NewEngine(p *Pool, cfg *config.PoolConfig) *Engine {
	return &Engine{pool: p, cfg: cfg}
}

// Evaluate proposes a rotation for the role under the session's strategy,
// or returns nil to keep the incumbent. roleTrend carries the role's
// per-round mean argument strength, oldest first.
func (e *Engine) Evaluate(sessionID string, role models.Role, strategy models.RotationStrategy,
	roundIndex int, roleTrend []float64) *models.RotationDecision {

	if strategy == models.StrategyFixed {
		return nil
	}

	incumbent, ok := e.pool.AssignmentFor(sessionID)[role]
	if !ok {
		return nil
	}
	incStats := e.pool.Stats(incumbent)
	if incStats == nil || incStats.Calls < e.cfg.MinCallsBeforeRotation {
		return nil
	}

	switch strategy {
	case models.StrategyRoundRobin:
		return e.roundRobin(sessionID, role, incumbent, roundIndex)
	case models.StrategyPerformanceBased:
		return e.performanceBased(sessionID, role, incumbent, incStats)
	case models.StrategyAdaptive:
		if d := e.performanceBased(sessionID, role, incumbent, incStats); d != nil {
			return d
		}
		return e.qualityTrend(sessionID, role, incumbent, incStats, roleTrend)
	case models.StrategyBalanced:
		return e.balanced(sessionID, role, incumbent)
	}
	return nil
}

// ReplaceUnhealthy is the emergency path: the incumbent's breaker is open
// or it just exhausted its retries. unhealthy filters out models that are
// themselves breaker-open. Returns nil when no healthy candidate exists.
func (e *Engine) ReplaceUnhealthy(sessionID string, role models.Role, unhealthy func(model string) bool) *models.RotationDecision {
	incumbent := e.pool.AssignmentFor(sessionID)[role]
	var best string
	var bestScore float64
	for _, m := range e.pool.Models() {
		if m.ID == incumbent || unhealthy(m.ID) {
			continue
		}
		if score := e.pool.Stats(m.ID).Score(); best == "" || score > bestScore {
			best, bestScore = m.ID, score
		}
	}
	if best == "" {
		return nil
	}
	return &models.RotationDecision{
		Role:       role,
		OldModel:   incumbent,
		NewModel:   best,
		Reason:     "incumbent model unavailable (circuit breaker open)",
		Confidence: 0.9,
		Emergency:  true,
	}
}

// Apply rebinds the role per the decision.
func (e *Engine) Apply(sessionID string, d *models.RotationDecision) error {
	return e.pool.Rebind(sessionID, d.Role, d.NewModel)
}

// candidates lists models other than the incumbent, preferring ones not
// already bound to another role in the session.
func (e *Engine) candidates(sessionID, incumbent string, sameTierOnly bool) []Model {
	assignment := e.pool.AssignmentFor(sessionID)
	taken := make(map[string]bool, len(assignment))
	for _, m := range assignment {
		taken[m] = true
	}
	tier := ""
	if inc, ok := e.pool.Model(incumbent); ok {
		tier = inc.Tier
	}

	var free, bound []Model
	for _, m := range e.pool.Models() {
		if m.ID == incumbent {
			continue
		}
		if sameTierOnly && m.Tier != tier {
			continue
		}
		if taken[m.ID] {
			bound = append(bound, m)
		} else {
			free = append(free, m)
		}
	}
	if len(free) > 0 {
		return free
	}
	return bound
}

func (e *Engine) roundRobin(sessionID string, role models.Role, incumbent string, roundIndex int) *models.RotationDecision {
	if e.cfg.RoundRobinInterval <= 0 || roundIndex%e.cfg.RoundRobinInterval != 0 {
		return nil
	}
	cands := e.candidates(sessionID, incumbent, true)
	if len(cands) == 0 {
		return nil
	}
	return &models.RotationDecision{
		Role:       role,
		OldModel:   incumbent,
		NewModel:   cands[0].ID,
		Reason:     "round-robin interval reached",
		Confidence: 1.0,
	}
}

func (e *Engine) performanceBased(sessionID string, role models.Role, incumbent string, incStats *PerfRecord) *models.RotationDecision {
	best, bestScore := e.bestCandidate(sessionID, incumbent)
	if best == "" {
		return nil
	}
	gap := bestScore - incStats.Score()
	if gap < e.cfg.ImprovementThreshold {
		return nil
	}
	confidence := 0.5 + gap
	if confidence > 1 {
		confidence = 1
	}
	return &models.RotationDecision{
		Role:                role,
		OldModel:            incumbent,
		NewModel:            best,
		Reason:              "incumbent composite score trails best candidate",
		Confidence:          confidence,
		ExpectedImprovement: gap,
	}
}

// qualityTrend rotates when the role's argument strength has declined for
// the configured number of consecutive rounds, even if no candidate clears
// the performance gap.
func (e *Engine) qualityTrend(sessionID string, role models.Role, incumbent string,
	incStats *PerfRecord, roleTrend []float64) *models.RotationDecision {

	const declineRounds = 2
	if len(roleTrend) < declineRounds+1 {
		return nil
	}
	tail := roleTrend[len(roleTrend)-declineRounds-1:]
	for i := 1; i < len(tail); i++ {
		if tail[i] >= tail[i-1] {
			return nil
		}
	}

	best, bestScore := e.bestCandidate(sessionID, incumbent)
	if best == "" {
		return nil
	}
	gap := bestScore - incStats.Score()
	if gap < 0 {
		gap = 0
	}
	return &models.RotationDecision{
		Role:                role,
		OldModel:            incumbent,
		NewModel:            best,
		Reason:              "argument strength declining across rounds",
		Confidence:          0.7,
		ExpectedImprovement: gap,
	}
}

// balanced prefers the candidate with the lowest cumulative token spend,
// with hysteresis so bindings do not thrash.
func (e *Engine) balanced(sessionID string, role models.Role, incumbent string) *models.RotationDecision {
	cands := e.candidates(sessionID, incumbent, false)
	if len(cands) == 0 {
		return nil
	}
	incSpend := spendOf(e.pool.Stats(incumbent))

	best := ""
	bestSpend := 0
	for _, m := range cands {
		s := spendOf(e.pool.Stats(m.ID))
		if best == "" || s < bestSpend {
			best, bestSpend = m.ID, s
		}
	}
	// Rotate only when the incumbent has materially outspent the candidate.
	if float64(incSpend) <= 1.2*float64(bestSpend)+1000 {
		return nil
	}
	return &models.RotationDecision{
		Role:       role,
		OldModel:   incumbent,
		NewModel:   best,
		Reason:     "equalising cumulative token spend",
		Confidence: 0.6,
	}
}

func (e *Engine) bestCandidate(sessionID, incumbent string) (string, float64) {
	best := ""
	bestScore := 0.0
	for _, m := range e.candidates(sessionID, incumbent, false) {
		if score := e.pool.Stats(m.ID).Score(); best == "" || score > bestScore {
			best, bestScore = m.ID, score
		}
	}
	return best, bestScore
}

func spendOf(rec *PerfRecord) int {
	if rec == nil {
		return 0
	}
	return rec.TokensSpent
}
