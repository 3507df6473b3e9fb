package engine

import "time"

// Rules holds the tunable scoring and timing constants of a session.
type Rules struct {
	// LinePoints[n] is the base award for clearing n lines at once, before
	// the level multiplier. Counts past the end use the last entry.
	LinePoints []int
	// HardDropPerCell is awarded for every row a hard drop travels.
	HardDropPerCell int
	// LinesPerLevel is how many total cleared lines raise the level by one.
	LinesPerLevel int

	InitialTick time.Duration
	TickStep    time.Duration
	MinTick     time.Duration
}

// DefaultRules returns guideline-style scoring with a linear speed curve.
func DefaultRules() Rules {
	return Rules{
		LinePoints:      []int{0, 100, 300, 500, 800},
		HardDropPerCell: 2,
		LinesPerLevel:   10,
		InitialTick:     800 * time.Millisecond,
		TickStep:        70 * time.Millisecond,
		MinTick:         100 * time.Millisecond,
	}
}

// LineScore returns the points for clearing lines rows at once on level.
func (r Rules) LineScore(lines, level int) int {
	if lines <= 0 || len(r.LinePoints) == 0 {
		return 0
	}
	idx := min(lines, len(r.LinePoints)-1)
	return r.LinePoints[idx] * level
}

// LevelFor returns the level reached after totalLines cleared lines.
func (r Rules) LevelFor(totalLines int) int {
	if r.LinesPerLevel <= 0 {
		return 1
	}
	return 1 + totalLines/r.LinesPerLevel
}

// TickInterval returns the gravity interval for level, never below MinTick.
func (r Rules) TickInterval(level int) time.Duration {
	tick := r.InitialTick - time.Duration(level-1)*r.TickStep
	return max(tick, r.MinTick)
}
