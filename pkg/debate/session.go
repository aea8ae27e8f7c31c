package debate

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/agora-labs/agora/pkg/models"
)

// command is a lifecycle request delivered to the session task through its
// mailbox. The task drains the mailbox between steps and at retry
// boundaries; delivery order within a session is preserved.
type command int

const (
	cmdPause command = iota
	cmdResume
	cmdCancel
)

// commandBuffer bounds the mailbox. Lifecycle requests are rare; a full
// mailbox drops the request rather than blocking the API caller.
const commandBuffer = 8

// session is the runtime state of one debate. The orchestrator goroutine is
// the single writer of data; all reads go through the mutex so callers
// observe consistent snapshots.
type session struct {
	mu   sync.Mutex
	data models.Session

	// planned is the current middle-section round count; the round
	// manager's EXTEND/REDUCE decisions move it within [1, maxRounds].
	planned   int
	maxRounds int
	budget    time.Duration

	commands  chan command
	cancel    context.CancelFunc
	cancelled atomic.Bool
	started   atomic.Bool
	startedAt time.Time
}

func newSession(data models.Session, planned, maxRounds int, budget time.Duration) *session {
	return &session{
		data:      data,
		planned:   planned,
		maxRounds: maxRounds,
		budget:    budget,
		commands:  make(chan command, commandBuffer),
	}
}

func (s *session) id() string { return s.data.ID }

// Snapshot deep-copies the session state.
func (s *session) Snapshot() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.data
	snap.Turns = append([]models.Turn(nil), s.data.Turns...)
	snap.Rounds = append([]models.Round(nil), s.data.Rounds...)
	snap.Snapshots = append([]models.ContextSnapshot(nil), s.data.Snapshots...)
	snap.Rotations = append([]models.RotationEvent(nil), s.data.Rotations...)
	snap.Assignment = make(map[models.Role]string, len(s.data.Assignment))
	for k, v := range s.data.Assignment {
		snap.Assignment[k] = v
	}
	return &snap
}

func (s *session) status() models.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Status
}

func (s *session) setStatus(status models.Status, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Status = status
	s.data.StatusReason = reason
}

func (s *session) phase() models.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Phase
}

func (s *session) setPhase(p models.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Phase = p
}

func (s *session) strategy() models.RotationStrategy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Strategy
}

func (s *session) setStrategy(strategy models.RotationStrategy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Strategy = strategy
}

func (s *session) debaterRoles() []models.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.DebaterRoles(s.data.Debaters)
}

func (s *session) plannedRounds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planned
}

// extendPlanned adds one middle round, clamped at the session's max.
func (s *session) extendPlanned() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.planned < s.maxRounds {
		s.planned++
	}
}

// reducePlanned removes one middle round but never below the round already
// played.
func (s *session) reducePlanned(currentRound int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.planned-1 >= currentRound {
		s.planned--
	}
}

// nextTurnIndex is the index the next appended turn will get.
func (s *session) nextTurnIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.Turns) + 1
}

func (s *session) lastTurnIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.Turns)
}

// appendTurn assigns the next index and commits the turn.
func (s *session) appendTurn(t models.Turn) models.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.Index = len(s.data.Turns) + 1
	s.data.Turns = append(s.data.Turns, t)
	return t
}

// turnsFrom returns the turns with index >= first (1-based).
func (s *session) turnsFrom(first int) []models.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	if first < 1 {
		first = 1
	}
	if first > len(s.data.Turns) {
		return nil
	}
	return append([]models.Turn(nil), s.data.Turns[first-1:]...)
}

func (s *session) appendRound(r models.Round) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Rounds = append(s.data.Rounds, r)
}

func (s *session) appendSnapshot(snap models.ContextSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Snapshots = append(s.data.Snapshots, snap)
}

// recordRotation commits an applied rotation and updates the visible
// assignment.
func (s *session) recordRotation(ev models.RotationEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Rotations = append(s.data.Rotations, ev)
	if s.data.Assignment != nil {
		s.data.Assignment[ev.Decision.Role] = ev.Decision.NewModel
	}
}

func (s *session) setReport(r *models.FinalReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Report = r
}

func (s *session) report() *models.FinalReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Report
}

// addUsage accumulates token and cost accounting for one successful call.
func (s *session) addUsage(inputTokens, outputTokens int, cost float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Stats.InputTokens += inputTokens
	s.data.Stats.OutputTokens += outputTokens
	s.data.Stats.CostEstimate += cost
}

func (s *session) addError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Stats.ErrorCount++
}

// metricsHistory returns the metrics of every closed round, oldest first.
func (s *session) metricsHistory() []models.RoundMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.RoundMetrics, 0, len(s.data.Rounds))
	for _, r := range s.data.Rounds {
		if r.Metrics != nil {
			out = append(out, *r.Metrics)
		}
	}
	return out
}

// priorRoundTurns returns each closed round's turns, oldest round first.
func (s *session) priorRoundTurns() [][]models.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]models.Turn, 0, len(s.data.Rounds))
	for _, r := range s.data.Rounds {
		if r.FirstTurn < 1 || r.LastTurn > len(s.data.Turns) {
			continue
		}
		out = append(out, append([]models.Turn(nil), s.data.Turns[r.FirstTurn-1:r.LastTurn]...))
	}
	return out
}

// openingTurns returns the opening-phase turns. They seed the novelty
// baseline so a first round that merely restates the openings scores low.
func (s *session) openingTurns() []models.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Turn
	for _, t := range s.data.Turns {
		if t.Phase == models.PhaseOpening {
			out = append(out, t)
		}
	}
	return out
}

// lastRoundTurns returns the most recently closed round's turns, or nil.
func (s *session) lastRoundTurns() []models.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.data.Rounds) == 0 {
		return nil
	}
	r := s.data.Rounds[len(s.data.Rounds)-1]
	if r.FirstTurn < 1 || r.LastTurn > len(s.data.Turns) {
		return nil
	}
	return append([]models.Turn(nil), s.data.Turns[r.FirstTurn-1:r.LastTurn]...)
}

// roleStrengthTrend returns the role's per-round mean argument strength
// across closed rounds, oldest first.
func (s *session) roleStrengthTrend(role models.Role) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []float64
	for _, r := range s.data.Rounds {
		if r.FirstTurn < 1 || r.LastTurn > len(s.data.Turns) {
			continue
		}
		sum, n := 0.0, 0
		for _, t := range s.data.Turns[r.FirstTurn-1 : r.LastTurn] {
			if t.Role == role && t.Argument != nil {
				sum += t.Argument.Strength
				n++
			}
		}
		if n > 0 {
			out = append(out, sum/float64(n))
		}
	}
	return out
}

// enqueue delivers a command without blocking. A full mailbox drops the
// request; the caller may retry.
func (s *session) enqueue(cmd command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		return false
	}
}
