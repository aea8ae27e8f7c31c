package config

// RoundsConfig holds the adaptive round manager thresholds. The composite
// score weights are fixed (0.4 quality, 0.2 engagement, 0.2 novelty, 0.2
// time headroom); thresholds below are calibration points.
type RoundsConfig struct {
	// ExtendThreshold: composite score at or above which the last
	// planned middle round is extended by one.
	ExtendThreshold float64 `yaml:"extend_threshold"`

	// ReduceThreshold: composite score below which remaining middle
	// rounds are skipped in favour of closing.
	ReduceThreshold float64 `yaml:"reduce_threshold"`

	// Early-termination trend: both quality and novelty must sit below
	// these floors for TrendRounds consecutive rounds.
	QualityFloor float64 `yaml:"quality_floor"`
	NoveltyFloor float64 `yaml:"novelty_floor"`
	TrendRounds  int     `yaml:"trend_rounds"`
}

// DefaultRoundsConfig returns the built-in round manager defaults.
func DefaultRoundsConfig() *RoundsConfig {
	return &RoundsConfig{
		ExtendThreshold: 0.75,
		ReduceThreshold: 0.35,
		QualityFloor:    0.40,
		NoveltyFloor:    0.10,
		TrendRounds:     2,
	}
}
