package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. Each piece variant maps to one of them.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightWhite
)

// Cell is one screen position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is the cleared state of every cell.
var blank = Cell{Rune: ' ', Color: ColorDefault}
