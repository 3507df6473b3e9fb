package engine

import (
	"strings"
	"time"
)

// Snapshot captures the observable session state for determinism checks.
type Snapshot struct {
	State        State
	Score        int
	Level        int
	Lines        int
	Pieces       int
	TickInterval time.Duration

	Falling         Variant
	FallingRotation int
	FallingAnchor   Point
	HasFalling      bool
	Next            Variant

	// Board renders the grid one string per row: '.' empty, else the
	// variant letter. The falling shape is not included.
	Board []string
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:        s.state,
		Score:        s.score,
		Level:        s.level,
		Lines:        s.lines,
		Pieces:       s.pieces,
		TickInterval: s.tick,
		Board:        BoardRows(s.grid),
	}
	if f := s.ctrl.Shape(); f != nil {
		snap.HasFalling = true
		snap.Falling = f.variant
		snap.FallingRotation = f.rotation
		snap.FallingAnchor = f.anchor
	}
	if s.next != nil {
		snap.Next = s.next.variant
	}
	return snap
}

// BoardRows renders g as text rows, top to bottom.
func BoardRows(g *Grid) []string {
	rows := make([]string, g.Rows())
	var sb strings.Builder
	for row := 0; row < g.Rows(); row++ {
		sb.Reset()
		for col := 0; col < g.Columns(); col++ {
			if b := g.Get(col, row); b != nil {
				sb.WriteString(b.Variant.String())
			} else {
				sb.WriteByte('.')
			}
		}
		rows[row] = sb.String()
	}
	return rows
}
