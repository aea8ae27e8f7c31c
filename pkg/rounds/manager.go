// Package rounds decides, after each debate round, whether the debate
// continues, extends, shortens, or terminates early. All inputs are
// bounded in-memory computation; no model calls happen here.
package rounds

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/models"
)

// Composite score weights: quality dominates, the rest share the remainder.
const (
	weightQuality    = 0.4
	weightEngagement = 0.2
	weightNovelty    = 0.2
	weightTime       = 0.2
)

// Manager evaluates round metrics against the configured thresholds.
type Manager struct {
	cfg    *config.RoundsConfig
	debate *config.DebateConfig
}

// New builds a round manager.
func New(cfg *config.RoundsConfig, debate *config.DebateConfig) *Manager {
	return &Manager{cfg: cfg, debate: debate}
}

// Input is everything the manager needs to judge one closed round.
type Input struct {
	RoundIndex    int // 1-based index of the round just closed
	PlannedRounds int // current planned middle-round count
	ExpectedTurns int // turns the round should have produced

	Turns       []models.Turn   // the closed round's turns
	PriorRounds [][]models.Turn // earlier middle rounds, oldest first
	History     []models.RoundMetrics

	Elapsed time.Duration
	Budget  time.Duration
}

// Evaluate computes the round metrics and picks the action. Contradictory
// factors resolve in favour of time: an exhausted budget terminates no
// matter how well the debate is going.
func (m *Manager) Evaluate(in Input) models.RoundDecision {
	metrics := m.computeMetrics(in)

	decide := func(action models.RoundAction, reason string) models.RoundDecision {
		return models.RoundDecision{Action: action, Reason: reason, Metrics: metrics}
	}

	if metrics.TimePressure >= 1 {
		return decide(models.ActionTerminateEarly, "time budget exhausted")
	}

	if m.lowTrend(in.History, metrics) {
		return decide(models.ActionTerminateEarly,
			fmt.Sprintf("quality and novelty below floors for %d rounds", m.cfg.TrendRounds))
	}

	if metrics.Composite < m.cfg.ReduceThreshold && in.RoundIndex < in.PlannedRounds {
		if in.RoundIndex >= m.debate.MinRounds {
			return decide(models.ActionReduce, "composite score below reduce threshold")
		}
		return decide(models.ActionContinue, "score low but minimum rounds not reached")
	}

	if metrics.Composite >= m.cfg.ExtendThreshold && in.RoundIndex == in.PlannedRounds-1 {
		if in.PlannedRounds+1 <= m.debate.MaxRounds {
			return decide(models.ActionExtend, "high composite score, extending debate")
		}
		return decide(models.ActionContinue, "extension warranted but max rounds reached")
	}

	return decide(models.ActionContinue, "round metrics within normal range")
}

func (m *Manager) computeMetrics(in Input) models.RoundMetrics {
	var metrics models.RoundMetrics
	metrics.Quality = meanStrength(in.Turns)
	metrics.Engagement = engagement(in.Turns, in.ExpectedTurns)
	metrics.Novelty = novelty(in.Turns, in.PriorRounds)
	metrics.TimePressure = timePressure(in.Elapsed, in.Budget)
	metrics.Composite = weightQuality*metrics.Quality +
		weightEngagement*metrics.Engagement +
		weightNovelty*metrics.Novelty +
		weightTime*(1-metrics.TimePressure)
	return metrics
}

// lowTrend checks the early-termination condition: the current round and
// enough preceding rounds all sit below the quality and novelty floors.
func (m *Manager) lowTrend(history []models.RoundMetrics, current models.RoundMetrics) bool {
	needPrior := m.cfg.TrendRounds - 1
	if len(history) < needPrior {
		return false
	}
	below := func(r models.RoundMetrics) bool {
		return r.Quality < m.cfg.QualityFloor && r.Novelty < m.cfg.NoveltyFloor
	}
	if !below(current) {
		return false
	}
	for _, r := range history[len(history)-needPrior:] {
		if !below(r) {
			return false
		}
	}
	return true
}

func meanStrength(turns []models.Turn) float64 {
	if len(turns) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range turns {
		if t.Argument != nil {
			sum += t.Argument.Strength
		}
	}
	return sum / float64(len(turns))
}

var referenceMarkers = []string{
	"my opponent", "you said", "you claim", "you argue", "as stated",
	"earlier", "previously", "your point", "that argument", "in response",
}

// engagement is completion (turns produced vs. expected) times interaction
// density (fraction of turns that reference prior turns).
func engagement(turns []models.Turn, expected int) float64 {
	if expected <= 0 || len(turns) == 0 {
		return 0
	}
	completion := float64(len(turns)) / float64(expected)
	if completion > 1 {
		completion = 1
	}
	refs := 0
	for _, t := range turns {
		lower := strings.ToLower(t.Content)
		for _, marker := range referenceMarkers {
			if strings.Contains(lower, marker) {
				refs++
				break
			}
		}
	}
	return completion * float64(refs) / float64(len(turns))
}

// novelty is 1 minus the highest cosine similarity between this round's
// content and any previous round, clipped to [0, 1]. The first round is
// maximally novel.
func novelty(turns []models.Turn, prior [][]models.Turn) float64 {
	if len(prior) == 0 {
		return 1
	}
	current := termFreq(roundText(turns))
	maxSim := 0.0
	for _, p := range prior {
		if sim := cosine(current, termFreq(roundText(p))); sim > maxSim {
			maxSim = sim
		}
	}
	n := 1 - maxSim
	if n < 0 {
		return 0
	}
	return n
}

func timePressure(elapsed, budget time.Duration) float64 {
	if budget <= 0 {
		return 1
	}
	t := float64(elapsed) / float64(budget)
	if t > 1 {
		return 1
	}
	if t < 0 {
		return 0
	}
	return t
}

func roundText(turns []models.Turn) string {
	var b strings.Builder
	for _, t := range turns {
		b.WriteString(t.Content)
		b.WriteByte(' ')
	}
	return b.String()
}

var wordPattern = regexp.MustCompile(`[a-z]{3,}`)

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "that": true, "this": true,
	"with": true, "are": true, "not": true, "but": true, "our": true,
	"was": true, "have": true, "has": true, "will": true, "would": true,
	"should": true, "could": true, "from": true, "they": true, "their": true,
}

func termFreq(text string) map[string]float64 {
	freq := make(map[string]float64)
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if !stopwords[w] {
			freq[w]++
		}
	}
	return freq
}

func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for w, va := range a {
		na += va * va
		if vb, ok := b[w]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		nb += vb * vb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
