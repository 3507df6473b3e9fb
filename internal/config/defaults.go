package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default rules.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Columns:    10,
			Rows:       20,
			BufferRows: 2,
		},
		Scoring: ScoringConfig{
			LinePoints:      []int{0, 100, 300, 500, 800},
			HardDropPerCell: 2,
			LinesPerLevel:   10,
		},
		Timing: TimingConfig{
			InitialMs: 800,
			StepMs:    70,
			MinMs:     100,
		},
	}
}
