// Package analysis scores debate turns: argument structure, evidence
// typing, fallacy detection, and the composite strength score. The
// heuristic evaluators are deterministic; an optional model assist refines
// the component scores but can never block the debate.
package analysis

import (
	"context"
	"log/slog"

	"github.com/agora-labs/agora/pkg/config"
	"github.com/agora-labs/agora/pkg/models"
	"github.com/agora-labs/agora/pkg/provider"
)

// Invoker is the guarded model-call path the assist uses. Satisfied by
// resilience.Guard.
type Invoker interface {
	Invoke(ctx context.Context, sessionID string, req provider.Request) (*provider.Completion, error)
}

// Analyzer produces an ArgumentRecord for each turn.
type Analyzer struct {
	cfg    *config.AnalysisConfig
	assist Invoker
}

// New builds an analyzer. assist may be nil; scoring then stands on the
// heuristics alone.
func New(cfg *config.AnalysisConfig, assist Invoker) *Analyzer {
	return &Analyzer{cfg: cfg, assist: assist}
}

// Confidence levels by scoring path.
const (
	confidenceHeuristic = 0.6
	confidenceAssisted  = 0.85
)

// Analyze scores one turn's content. It always returns a record; assist
// failure yields a degraded record with zero confidence.
func (a *Analyzer) Analyze(ctx context.Context, sessionID, content string) *models.ArgumentRecord {
	structure, structScore := extractStructure(content)
	evidence, evidenceScore := detectEvidence(content)
	fallacies, logicScore := detectFallacies(content)

	rec := &models.ArgumentRecord{
		Structure:  structure,
		Evidence:   evidence,
		Fallacies:  fallacies,
		Confidence: confidenceHeuristic,
	}

	if a.cfg.AssistModel != "" && a.assist != nil {
		assisted, err := a.refineScores(ctx, sessionID, content)
		if err != nil {
			slog.Warn("Analyzer model assist failed, returning degraded record",
				"session_id", sessionID, "error", err)
			rec.Degraded = true
			rec.Confidence = 0
			rec.Structure.StructureTag = "unknown"
		} else {
			// Blend assist and heuristic scores equally.
			structScore = (structScore + assisted.structure) / 2
			evidenceScore = (evidenceScore + assisted.evidence) / 2
			logicScore = (logicScore + assisted.logic) / 2
			rec.Confidence = confidenceAssisted
		}
	}

	// The empty-evidence contract holds regardless of assist opinion.
	if len(evidence) == 0 {
		evidenceScore = 0
	}

	rec.StructureScore = clamp01(structScore)
	rec.EvidenceScore = clamp01(evidenceScore)
	rec.LogicScore = clamp01(logicScore)
	rec.Strength = clamp01(a.cfg.StructureWeight*rec.StructureScore +
		a.cfg.EvidenceWeight*rec.EvidenceScore +
		a.cfg.LogicWeight*rec.LogicScore)
	return rec
}
