package config

// AnalysisConfig controls the argument analyzer.
type AnalysisConfig struct {
	// Strength component weights. Must sum to 1.
	StructureWeight float64 `yaml:"structure_weight"`
	EvidenceWeight  float64 `yaml:"evidence_weight"`
	LogicWeight     float64 `yaml:"logic_weight"`

	// AssistModel is the optional model consulted to refine component
	// scores. Empty disables model assist; the heuristic scores stand.
	AssistModel string `yaml:"assist_model,omitempty"`

	// AssistExtractionRetries bounds re-prompts when the assist model's
	// reply does not contain parseable scores.
	AssistExtractionRetries int `yaml:"assist_extraction_retries"`
}

// WeightsSum returns the sum of the three component weights.
func (c *AnalysisConfig) WeightsSum() float64 {
	return c.StructureWeight + c.EvidenceWeight + c.LogicWeight
}

// DefaultAnalysisConfig returns the built-in analyzer defaults.
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		StructureWeight:         0.30,
		EvidenceWeight:          0.40,
		LogicWeight:             0.30,
		AssistExtractionRetries: 5,
	}
}
