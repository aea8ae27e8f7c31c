// Package pool owns the set of available models, the per-session role
// assignments, and the accumulated per-model performance records that
// drive rotation. All state is process-wide and mutated under short
// critical sections; observations from every session feed the same records.
package pool

import (
	"fmt"
	"sync"
	"time"

	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/models"
)

// Model is one pool entry with its declared tier and pricing.
type Model struct {
	ID              string
	Tier            string
	Strengths       []string
	Fallback        string
	InputCostPer1K  float64
	OutputCostPer1K float64
}

// ewmaAlpha weights new observations in the moving averages.
const ewmaAlpha = 0.3

// trendSize is how many recent strength scores are kept per model.
const trendSize = 10

// neutralScore is the prior for models with no observations yet.
const neutralScore = 0.5

// PerfRecord accumulates one model's observed behaviour across sessions.
type PerfRecord struct {
	Calls       int           `json:"calls"`
	Successes   int           `json:"successes"`
	Failures    int           `json:"failures"`
	AvgLatency  time.Duration `json:"avg_latency"`
	AvgStrength float64       `json:"avg_strength"`
	TokensSpent int           `json:"tokens_spent"`
	Cost        float64       `json:"cost"`

	trend     [trendSize]float64
	trendHead int
	trendLen  int
}

// Score is the composite used by rotation: argument quality dominates,
// reliability and speed follow. Unobserved models score the neutral prior.
func (r *PerfRecord) Score() float64 {
	if r == nil || r.Calls == 0 {
		return neutralScore
	}
	reliability := float64(r.Successes) / float64(r.Calls)
	speed := 1 - float64(r.AvgLatency)/float64(30*time.Second)
	if speed < 0 {
		speed = 0
	}
	strength := r.AvgStrength
	if r.Successes == 0 {
		strength = 0
	}
	return 0.5*strength + 0.3*reliability + 0.2*speed
}

// Trend returns the recent strength scores, oldest first.
func (r *PerfRecord) Trend() []float64 {
	out := make([]float64, 0, r.trendLen)
	start := (r.trendHead - r.trendLen + trendSize) % trendSize
	for i := 0; i < r.trendLen; i++ {
		out = append(out, r.trend[(start+i)%trendSize])
	}
	return out
}

func (r *PerfRecord) pushTrend(v float64) {
	r.trend[r.trendHead] = v
	r.trendHead = (r.trendHead + 1) % trendSize
	if r.trendLen < trendSize {
		r.trendLen++
	}
}

// Observation is one model-call outcome fed into the pool.
type Observation struct {
	Success  bool
	Latency  time.Duration
	Strength float64 // argument strength, successes only
	Scored   bool    // whether Strength is meaningful
	Tokens   int
	Cost     float64
}

// Pool is the process-wide model registry.
type Pool struct {
	mu          sync.Mutex
	models      map[string]Model
	order       []string // declaration order, for deterministic iteration
	assignments map[string]map[models.Role]string
	stats       map[string]*PerfRecord
}

// New builds a pool from configuration.
func New(cfg *config.PoolConfig) *Pool {
	p := &Pool{
		models:      make(map[string]Model),
		assignments: make(map[string]map[models.Role]string),
		stats:       make(map[string]*PerfRecord),
	}
	for _, m := range cfg.Models {
		p.models[m.ID] = Model{
			ID:              m.ID,
			Tier:            m.Tier,
			Strengths:       m.Strengths,
			Fallback:        m.Fallback,
			InputCostPer1K:  m.InputCostPer1K,
			OutputCostPer1K: m.OutputCostPer1K,
		}
		p.order = append(p.order, m.ID)
	}
	return p
}

// Models returns the pool entries in declaration order.
func (p *Pool) Models() []Model {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Model, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.models[id])
	}
	return out
}

// Model looks up a pool entry.
func (p *Pool) Model(id string) (Model, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, ok := p.models[id]
	return m, ok
}

// FallbackFor returns the configured secondary model for id, or "".
func (p *Pool) FallbackFor(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.models[id].Fallback
}

// InitAssignment binds each role to a model, cycling through the pool in
// declaration order so debaters get distinct models when enough exist.
func (p *Pool) InitAssignment(sessionID string, roles []models.Role) (map[models.Role]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.order) == 0 {
		return nil, fmt.Errorf("model pool is empty")
	}
	assignment := make(map[models.Role]string, len(roles))
	for i, role := range roles {
		assignment[role] = p.order[i%len(p.order)]
	}
	p.assignments[sessionID] = assignment
	return copyAssignment(assignment), nil
}

// AssignmentFor returns a copy of the session's current role bindings.
func (p *Pool) AssignmentFor(sessionID string) map[models.Role]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return copyAssignment(p.assignments[sessionID])
}

// Rebind points a role at a different model.
func (p *Pool) Rebind(sessionID string, role models.Role, model string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.models[model]; !ok {
		return fmt.Errorf("unknown model %q", model)
	}
	a, ok := p.assignments[sessionID]
	if !ok {
		return fmt.Errorf("no assignment for session %s", sessionID)
	}
	a[role] = model
	return nil
}

// Forget drops a session's assignment. Performance records are kept; they
// are process-lifetime state re-warmed from observation.
func (p *Pool) Forget(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.assignments, sessionID)
}

// Observe feeds one call outcome into the model's performance record.
func (p *Pool) Observe(model string, obs Observation) {
	p.mu.Lock()
	defer p.mu.Unlock()
	rec, ok := p.stats[model]
	if !ok {
		rec = &PerfRecord{}
		p.stats[model] = rec
	}
	rec.Calls++
	rec.TokensSpent += obs.Tokens
	rec.Cost += obs.Cost
	if !obs.Success {
		rec.Failures++
		return
	}
	rec.Successes++
	if rec.AvgLatency == 0 {
		rec.AvgLatency = obs.Latency
	} else {
		rec.AvgLatency = time.Duration((1-ewmaAlpha)*float64(rec.AvgLatency) + ewmaAlpha*float64(obs.Latency))
	}
	if obs.Scored {
		if rec.trendLen == 0 {
			rec.AvgStrength = obs.Strength
		} else {
			rec.AvgStrength = (1-ewmaAlpha)*rec.AvgStrength + ewmaAlpha*obs.Strength
		}
		rec.pushTrend(obs.Strength)
	}
}

// Stats returns a copy of the model's performance record, or nil.
func (p *Pool) Stats(model string) *PerfRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	rec, ok := p.stats[model]
	if !ok {
		return nil
	}
	cp := *rec
	return &cp
}

// Summary is the introspection view of the whole pool.
type Summary struct {
	Model string      `json:"model"`
	Tier  string      `json:"tier"`
	Perf  *PerfRecord `json:"performance,omitempty"`
	Score float64     `json:"score"`
}

// Summaries returns per-model performance in declaration order.
func (p *Pool) Summaries() []Summary {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Summary, 0, len(p.order))
	for _, id := range p.order {
		var perf *PerfRecord
		if rec, ok := p.stats[id]; ok {
			cp := *rec
			perf = &cp
		}
		out = append(out, Summary{
			Model: id,
			Tier:  p.models[id].Tier,
			Perf:  perf,
			Score: perf.Score(),
		})
	}
	return out
}

func copyAssignment(a map[models.Role]string) map[models.Role]string {
	if a == nil {
		return nil
	}
	out := make(map[models.Role]string, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
