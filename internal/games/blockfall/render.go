package blockfall

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

const (
	cellWidth  = 2  // Characters per board cell, keeps cells roughly square
	panelWidth = 14 // Side panel with score, level and preview
	panelGap   = 2
)

// Visual characters for rendering
const (
	blockChar  = '█'
	ghostChar  = '░'
	emptyChar  = '·'
	bufferChar = '▄' // Blocks above the well, drawn on its top border
)

// variantColors maps engine color tags to screen colors.
var variantColors = map[engine.Color]core.Color{
	engine.ColorCyan:   core.ColorCyan,
	engine.ColorYellow: core.ColorYellow,
	engine.ColorPurple: core.ColorMagenta,
	engine.ColorGreen:  core.ColorGreen,
	engine.ColorRed:    core.ColorRed,
	engine.ColorBlue:   core.ColorBlue,
	engine.ColorOrange: core.ColorOrange,
}

func screenColor(c engine.Color) core.Color {
	if sc, ok := variantColors[c]; ok {
		return sc
	}
	return core.ColorDefault
}

// layoutSize returns the smallest screen that fits the well and the panel.
// Buffer rows are never drawn.
func (g *Game) layoutSize() (w, h int) {
	w = g.cfg.Board.Columns*cellWidth + 2 + panelGap + panelWidth
	h = g.cfg.Board.Rows + 2
	return w, h
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	well := g.wellRect(dst)

	dst.DrawBox(well, core.ColorGray)
	g.renderBoard(dst, well.Inset(1))
	g.renderPanel(dst, well.Right()+panelGap, well.Y)
	g.renderOverlays(dst, well)
}

// wellRect returns the well's outline, centered with the panel on dst.
func (g *Game) wellRect(dst *core.Screen) core.Rect {
	w, h := g.layoutSize()
	return core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, g.cfg.Board.Columns*cellWidth+2, h)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	w, h := g.layoutSize()
	dst.DrawTextCentered(y+1, "Need "+strconv.Itoa(w)+"x"+strconv.Itoa(h))
}

// drawCell paints one board cell at the given inner-well coordinates.
// Blocks in the buffer rows fold onto the well's top border; anything else
// outside the well is clipped.
func (g *Game) drawCell(dst *core.Screen, area core.Rect, col, row int, r rune, c core.Color) {
	x := area.X + col*cellWidth
	y := area.Y + row - g.cfg.Board.BufferRows
	switch {
	case row < g.cfg.Board.BufferRows:
		if r != blockChar {
			return
		}
		y, r = area.Y-1, bufferChar
	case !area.Contains(x, y):
		return
	}
	for i := 0; i < cellWidth; i++ {
		dst.SetWithColor(x+i, y, r, c)
	}
}

// renderBoard draws locked blocks, the ghost and the falling shape.
func (g *Game) renderBoard(dst *core.Screen, area core.Rect) {
	grid := g.session.Grid()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Columns(); col++ {
			if b := grid.Get(col, row); b != nil {
				g.drawCell(dst, area, col, row, blockChar, screenColor(b.Color()))
				continue
			}
			if row >= g.cfg.Board.BufferRows {
				// One dot per cell, in the right half
				dst.SetWithColor(area.X+col*cellWidth+1, area.Y+row-g.cfg.Board.BufferRows, emptyChar, core.ColorGray)
			}
		}
	}

	if g.wipe != nil {
		cut := g.wipeCut()
		for _, b := range g.wipe {
			if b.Row < cut {
				g.drawCell(dst, area, b.Col, b.Row, blockChar, screenColor(b.Color()))
			}
		}
	}

	falling := g.session.FallingShape()
	if falling == nil {
		return
	}

	drop := g.session.GhostRow() - falling.Anchor().Row
	if drop > 0 {
		for _, p := range falling.Cells() {
			g.drawCell(dst, area, p.Col, p.Row+drop, ghostChar, core.ColorGray)
		}
	}
	for _, b := range falling.Blocks() {
		g.drawCell(dst, area, b.Col, b.Row, blockChar, screenColor(b.Color()))
	}
}

// renderPanel draws the title, counters and the next-shape preview.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	s := g.session
	dst.DrawTextColor(x, y, strings.ToUpper(g.Title()), core.ColorBrightWhite)

	rows := []struct {
		label string
		value int
	}{
		{"Score", s.Score()},
		{"Level", s.Level()},
		{"Lines", s.Lines()},
	}
	for i, r := range rows {
		dst.DrawTextColor(x, y+2+i*3, r.label, core.ColorGray)
		dst.DrawText(x, y+3+i*3, strconv.Itoa(r.value))
	}

	previewY := y + 11
	dst.DrawTextColor(x, previewY, "Next", core.ColorGray)
	if next := s.NextShape(); next != nil {
		g.renderPreview(dst, x, previewY+1, next.Variant())
	}

	if g.flash != "" {
		dst.DrawTextColor(x, previewY+4, g.flash, core.ColorYellow)
	}
}

// renderPreview draws a variant's spawn pattern with its empty top rows trimmed.
func (g *Game) renderPreview(dst *core.Screen, x, y int, v engine.Variant) {
	pattern := v.Def().States[0]
	top := pattern[0].Row
	for _, p := range pattern {
		top = min(top, p.Row)
	}
	c := screenColor(v.Color())
	for _, p := range pattern {
		for i := 0; i < cellWidth; i++ {
			dst.SetWithColor(x+p.Col*cellWidth+i, y+p.Row-top, blockChar, c)
		}
	}
}

// renderOverlays draws pause and game over messages over the well.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	midY := well.Y + well.H/2
	center := func(y int, text string, c core.Color) {
		x := well.X + (well.W-len([]rune(text)))/2
		dst.DrawTextColor(x, y, text, c)
	}

	switch {
	case g.wipe != nil:
		// The board is emptying for a restart
	case g.session.GameOver():
		center(midY-1, " GAME OVER ", core.ColorBrightWhite)
		center(midY+1, " R to restart ", core.ColorGray)
	case g.paused:
		center(midY, " PAUSED ", core.ColorBrightWhite)
	}
}
