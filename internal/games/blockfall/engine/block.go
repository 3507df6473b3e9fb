package engine

import "fmt"

// BlockID identifies a block for the lifetime of a session.
type BlockID uint64

// Point is a (column, row) grid coordinate.
type Point struct {
	Col, Row int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{Col: p.Col + q.Col, Row: p.Row + q.Row}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Block is one cell of a shape. While falling it belongs to the shape;
// after lock it belongs to the grid cell at its position.
type Block struct {
	ID      BlockID
	Variant Variant
	Col     int
	Row     int
}

// Pos returns the block's current position.
func (b *Block) Pos() Point {
	return Point{Col: b.Col, Row: b.Row}
}

// Color returns the block's color, inherited from its variant.
func (b *Block) Color() Color {
	return b.Variant.Color()
}
