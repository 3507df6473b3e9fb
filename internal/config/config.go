// Package config provides YAML-based rules loading and difficulty presets
// for blockfall.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BlockfallConfig contains all configurable rules of a game.
type BlockfallConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
}

// BoardConfig defines the playfield geometry.
type BoardConfig struct {
	Columns    int `yaml:"columns"`
	Rows       int `yaml:"rows"`
	BufferRows int `yaml:"buffer_rows"`
}

// ScoringConfig defines points and level thresholds.
type ScoringConfig struct {
	LinePoints      []int `yaml:"line_points"`        // Index = lines cleared at once
	HardDropPerCell int   `yaml:"hard_drop_per_cell"` // Points per row of a hard drop
	LinesPerLevel   int   `yaml:"lines_per_level"`    // 0 disables leveling
}

// TimingConfig defines the gravity curve in milliseconds.
type TimingConfig struct {
	InitialMs int `yaml:"initial_ms"`
	StepMs    int `yaml:"step_ms"`
	MinMs     int `yaml:"min_ms"`
}

// minBoardSide fits the largest shape box.
const minBoardSide = 4

// Validate checks that the rules describe a playable game.
func (c BlockfallConfig) Validate() error {
	b := c.Board
	if b.Columns < minBoardSide {
		return fmt.Errorf("%w: board.columns must be at least %d, got %d", ErrInvalidConfig, minBoardSide, b.Columns)
	}
	if b.Rows < minBoardSide {
		return fmt.Errorf("%w: board.rows must be at least %d, got %d", ErrInvalidConfig, minBoardSide, b.Rows)
	}
	if b.BufferRows < 0 {
		return fmt.Errorf("%w: board.buffer_rows must not be negative, got %d", ErrInvalidConfig, b.BufferRows)
	}

	s := c.Scoring
	if len(s.LinePoints) < 2 {
		return fmt.Errorf("%w: scoring.line_points needs at least 2 entries, got %d", ErrInvalidConfig, len(s.LinePoints))
	}
	if s.LinePoints[0] < 0 {
		return fmt.Errorf("%w: scoring.line_points[0] is negative", ErrInvalidConfig)
	}
	// Every clear must raise the score
	for i, p := range s.LinePoints[1:] {
		if p <= 0 {
			return fmt.Errorf("%w: scoring.line_points[%d] must be positive, got %d", ErrInvalidConfig, i+1, p)
		}
	}
	if s.HardDropPerCell < 0 {
		return fmt.Errorf("%w: scoring.hard_drop_per_cell must not be negative", ErrInvalidConfig)
	}
	if s.LinesPerLevel < 0 {
		return fmt.Errorf("%w: scoring.lines_per_level must not be negative", ErrInvalidConfig)
	}

	t := c.Timing
	if t.MinMs <= 0 {
		return fmt.Errorf("%w: timing.min_ms must be positive, got %d", ErrInvalidConfig, t.MinMs)
	}
	if t.InitialMs < t.MinMs {
		return fmt.Errorf("%w: timing.initial_ms (%d) is below timing.min_ms (%d)", ErrInvalidConfig, t.InitialMs, t.MinMs)
	}
	if t.StepMs < 0 {
		return fmt.Errorf("%w: timing.step_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}
