package models

import "time"

// ChainEdge is a directed reference between two turns: the turn at To
// refers to or rebuts the turn at From.
type ChainEdge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ArgumentChain is one path through the reference graph, scored by
// cumulative strength weighted by depth.
type ArgumentChain struct {
	Turns []int   `json:"turns"` // turn indices, oldest first
	Score float64 `json:"score"`
}

// ChainGraph is the post-debate argument-reference DAG over turn indices.
type ChainGraph struct {
	Edges    []ChainEdge     `json:"edges"`
	Chains   []ArgumentChain `json:"chains"` // strongest first
	Isolated []int           `json:"isolated,omitempty"`
}

// DisagreementType classifies the axis on which the debaters diverge.
type DisagreementType string

const (
	DisagreementFactual        DisagreementType = "factual"
	DisagreementDefinitional   DisagreementType = "definitional"
	DisagreementMethodological DisagreementType = "methodological"
	DisagreementValueBased     DisagreementType = "value_based"
	DisagreementInterpretive   DisagreementType = "interpretive"
	DisagreementNormative      DisagreementType = "normative"
	DisagreementEmpirical      DisagreementType = "empirical"
)

// ResolutionType is the shape of a proposed path out of a disagreement.
type ResolutionType string

const (
	ResolutionCompromise  ResolutionType = "compromise"
	ResolutionSynthesis   ResolutionType = "synthesis"
	ResolutionAlternative ResolutionType = "alternative"
	ResolutionSequential  ResolutionType = "sequential"
	ResolutionConditional ResolutionType = "conditional"
	ResolutionHybrid      ResolutionType = "hybrid"
)

// Disagreement is one typed point of contention with a proposed resolution.
type Disagreement struct {
	Type       DisagreementType `json:"type"`
	Topic      string           `json:"topic"`
	Positions  map[Role]string  `json:"positions"`
	Resolution ResolutionType   `json:"resolution"`
	Rationale  string           `json:"rationale"`
}

// ConsensusReport is the structured agreement/disagreement analysis.
// Polarization lies in [0, 1]; 0 means full convergence.
type ConsensusReport struct {
	CommonGround  []string       `json:"common_ground"`
	Disagreements []Disagreement `json:"disagreements"`
	Polarization  float64        `json:"polarization"`
}

// Perspective is one of the eight evaluation dimensions applied to the
// judge's verdict.
type Perspective string

const (
	PerspectiveLogical    Perspective = "logical"
	PerspectiveRhetorical Perspective = "rhetorical"
	PerspectiveFactual    Perspective = "factual"
	PerspectiveEthical    Perspective = "ethical"
	PerspectivePractical  Perspective = "practical"
	PerspectiveEmotional  Perspective = "emotional"
	PerspectiveCultural   Perspective = "cultural"
	PerspectiveLegal      Perspective = "legal"
)

// Perspectives lists all evaluation dimensions in report order.
var Perspectives = []Perspective{
	PerspectiveLogical, PerspectiveRhetorical, PerspectiveFactual,
	PerspectiveEthical, PerspectivePractical, PerspectiveEmotional,
	PerspectiveCultural, PerspectiveLegal,
}

// BiasType is one of the eight cognitive biases screened for.
type BiasType string

const (
	BiasConfirmation       BiasType = "confirmation"
	BiasAnchoring          BiasType = "anchoring"
	BiasAvailability       BiasType = "availability"
	BiasRepresentativeness BiasType = "representativeness"
	BiasRecency            BiasType = "recency"
	BiasAuthority          BiasType = "authority"
	BiasCultural           BiasType = "cultural"
	BiasGender             BiasType = "gender"
)

// BiasFinding is one detected bias with the evidence that triggered it.
type BiasFinding struct {
	Type     BiasType        `json:"type"`
	Severity FallacySeverity `json:"severity"`
	Evidence string          `json:"evidence"`
}

// Judgment is the multi-perspective cross-evaluation of the debate outcome.
type Judgment struct {
	PerspectiveScores map[Perspective]map[Role]float64 `json:"perspective_scores"`
	Biases            []BiasFinding                    `json:"biases"`
	Winner            Role                             `json:"winner"`
	Confidence        float64                          `json:"confidence"`
	Margin            float64                          `json:"margin"`
	Summary           string                           `json:"summary"`
}

// FinalReport is the aggregated post-debate artifact. Sections that could
// not be computed are nil and listed in Omissions; the report itself is
// always produced.
type FinalReport struct {
	SessionID string           `json:"session_id"`
	Chains    *ChainGraph      `json:"chains,omitempty"`
	Consensus *ConsensusReport `json:"consensus,omitempty"`
	Judgment  *Judgment        `json:"judgment,omitempty"`
	Narrative string           `json:"narrative"`
	Omissions []string         `json:"omissions,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
