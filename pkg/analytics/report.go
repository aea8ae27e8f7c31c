// Package analytics builds the post-debate artifact: the argument-chain
// graph, the consensus report, the multi-perspective judgment, and the
// final prose report. All analyses are bounded in-memory computation over
// the transcript; a failed sub-analysis degrades its section only.
package analytics

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agora-labs/agora/pkg/models"
)

// Engine runs the post-debate analyses. It satisfies the orchestrator's
// Reporter contract.
type Engine struct {
	now func() time.Time
}

// New builds the analytics engine.
func New() *Engine {
	return &Engine{now: time.Now}
}

// Report produces the final artifact for a terminal session. It never
// returns nil: sections that cannot be computed are omitted and noted.
func (e *Engine) Report(s *models.Session) *models.FinalReport {
	report := &models.FinalReport{
		SessionID: s.ID,
		CreatedAt: e.now(),
	}

	chains, err := buildChainGraph(s.Turns)
	if err != nil {
		report.Omissions = append(report.Omissions, fmt.Sprintf("argument chains: %v", err))
		slog.Warn("Chain analysis degraded", "session_id", s.ID, "error", err)
	} else {
		report.Chains = chains
	}

	consensus, err := buildConsensus(s.Turns)
	if err != nil {
		report.Omissions = append(report.Omissions, fmt.Sprintf("consensus report: %v", err))
		slog.Warn("Consensus analysis degraded", "session_id", s.ID, "error", err)
	} else {
		report.Consensus = consensus
	}

	judgment, err := buildJudgment(s.Turns)
	if err != nil {
		report.Omissions = append(report.Omissions, fmt.Sprintf("multi-perspective judgment: %v", err))
		slog.Warn("Judgment analysis degraded", "session_id", s.ID, "error", err)
	} else {
		report.Judgment = judgment
	}

	report.Narrative = e.narrative(s, report)
	return report
}

// narrative is the prose synthesis keyed to the session. It integrates
// whichever sections were produced.
func (e *Engine) narrative(s *models.Session, r *models.FinalReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Debate on %q ran %d turns across %d rounds.", s.Topic, len(s.Turns), len(s.Rounds))

	if r.Judgment != nil {
		fmt.Fprintf(&b, " %s won with confidence %.2f (margin %.2f).",
			r.Judgment.Winner, r.Judgment.Confidence, r.Judgment.Margin)
		if n := len(r.Judgment.Biases); n > 0 {
			fmt.Fprintf(&b, " %d potential cognitive bias(es) were flagged in the verdict.", n)
		}
	}
	if r.Chains != nil && len(r.Chains.Chains) > 0 {
		top := r.Chains.Chains[0]
		fmt.Fprintf(&b, " The strongest argument chain spans %d turns with score %.2f.",
			len(top.Turns), top.Score)
	}
	if r.Consensus != nil {
		fmt.Fprintf(&b, " The sides share %d point(s) of common ground against %d typed disagreement(s); polarization %.2f.",
			len(r.Consensus.CommonGround), len(r.Consensus.Disagreements), r.Consensus.Polarization)
	}
	if len(r.Omissions) > 0 {
		fmt.Fprintf(&b, " Omitted analyses: %s.", strings.Join(r.Omissions, "; "))
	}
	return b.String()
}
