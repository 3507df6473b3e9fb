package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset accepts a preset name in any case. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, name)
	}
}

// ApplyPreset adjusts the gravity curve for a difficulty preset.
// Normal keeps whatever the rules file says.
func ApplyPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.InitialMs = 1000
		cfg.Timing.StepMs = 50
		cfg.Timing.MinMs = 150
	case DifficultyHard:
		cfg.Timing.InitialMs = 500
		cfg.Timing.StepMs = 50
		cfg.Timing.MinMs = 60
	}
}
