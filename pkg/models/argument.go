package models

// EvidenceType classifies a detected piece of supporting evidence.
type EvidenceType string

const (
	EvidenceStatistical   EvidenceType = "statistical"
	EvidenceExpertOpinion EvidenceType = "expert_opinion"
	EvidenceCaseStudy     EvidenceType = "case_study"
	EvidenceAnalogical    EvidenceType = "analogical"
	EvidenceHistorical    EvidenceType = "historical"
	EvidenceDocumentary   EvidenceType = "documentary"
	EvidenceLogical       EvidenceType = "logical"
	EvidenceOther         EvidenceType = "other"
)

// EvidenceItem is one detected piece of evidence with its quality scores,
// each in [0, 1].
type EvidenceItem struct {
	Type        EvidenceType `json:"type"`
	Excerpt     string       `json:"excerpt"`
	Credibility float64      `json:"credibility"`
	Relevance   float64      `json:"relevance"`
	Sufficiency float64      `json:"sufficiency"`
	Recency     float64      `json:"recency"`
}

// FallacyType is the closed set of detectable logical fallacies.
type FallacyType string

const (
	FallacyAdHominem           FallacyType = "ad_hominem"
	FallacyStrawMan            FallacyType = "straw_man"
	FallacyFalseDichotomy      FallacyType = "false_dichotomy"
	FallacyAppealToAuthority   FallacyType = "appeal_to_authority"
	FallacyAppealToEmotion     FallacyType = "appeal_to_emotion"
	FallacySlipperySlope       FallacyType = "slippery_slope"
	FallacyHastyGeneralization FallacyType = "hasty_generalization"
	FallacyCircularReasoning   FallacyType = "circular_reasoning"
)

// FallacySeverity grades how damaging a detected fallacy is.
type FallacySeverity string

const (
	SeverityLow    FallacySeverity = "low"
	SeverityMedium FallacySeverity = "medium"
	SeverityHigh   FallacySeverity = "high"
)

// Fallacy is one detected fallacy with a suggested correction.
type Fallacy struct {
	Type       FallacyType     `json:"type"`
	Severity   FallacySeverity `json:"severity"`
	Excerpt    string          `json:"excerpt"`
	Correction string          `json:"correction"`
}

// ArgumentStructure is the decomposition of a turn into premises and a
// conclusion. StructureTag is "complete", "partial", or "unknown" (the
// degraded case).
type ArgumentStructure struct {
	Premises     []string `json:"premises"`
	Conclusion   string   `json:"conclusion"`
	Reasoning    string   `json:"reasoning"`
	StructureTag string   `json:"structure_tag"`
}

// ArgumentRecord is the analyzer's output for one turn. Strength is the
// weighted composite of the three component scores and lies in [0, 1].
type ArgumentRecord struct {
	Structure      ArgumentStructure `json:"structure"`
	Evidence       []EvidenceItem    `json:"evidence"`
	Fallacies      []Fallacy         `json:"fallacies"`
	StructureScore float64           `json:"structure_score"`
	EvidenceScore  float64           `json:"evidence_score"`
	LogicScore     float64           `json:"logic_score"`
	Strength       float64           `json:"strength"`
	Confidence     float64           `json:"confidence"`
	Degraded       bool              `json:"degraded"`
}
