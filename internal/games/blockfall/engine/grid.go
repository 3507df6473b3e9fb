package engine

import "fmt"

// Grid is the playfield: a fixed columns x rows store of locked blocks.
// Cells are stored in row-major order: index = row*columns + column.
// Row 0 is the top row; rows grow downward.
type Grid struct {
	columns int
	rows    int
	cells   []*Block
}

// NewGrid creates an empty grid. Dimensions must be positive.
func NewGrid(columns, rows int) *Grid {
	if columns <= 0 || rows <= 0 {
		panic(fmt.Sprintf("engine: invalid grid size %dx%d", columns, rows))
	}
	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]*Block, columns*rows),
	}
}

// Columns returns the grid width.
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the grid height, including buffer rows above the visible area.
func (g *Grid) Rows() int {
	return g.rows
}

// InBounds reports whether (col, row) addresses a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.columns && row >= 0 && row < g.rows
}

func (g *Grid) index(col, row int) int {
	if !g.InBounds(col, row) {
		panic(fmt.Sprintf("engine: grid index (%d,%d) out of range %dx%d", col, row, g.columns, g.rows))
	}
	return row*g.columns + col
}

// Get returns the block at (col, row), or nil if the cell is empty.
// Panics if the coordinate is out of bounds.
func (g *Grid) Get(col, row int) *Block {
	return g.cells[g.index(col, row)]
}

// Set stores b at (col, row). A nil block empties the cell.
// Panics if the coordinate is out of bounds.
func (g *Grid) Set(col, row int, b *Block) {
	g.cells[g.index(col, row)] = b
}

// Occupied reports whether the cell holds a block.
func (g *Grid) Occupied(col, row int) bool {
	return g.Get(col, row) != nil
}

// RowFull reports whether every column in row is occupied.
func (g *Grid) RowFull(row int) bool {
	for col := 0; col < g.columns; col++ {
		if g.cells[g.index(col, row)] == nil {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, b := range g.cells {
		if b != nil {
			n++
		}
	}
	return n
}

// Blocks returns all locked blocks in row-major order.
func (g *Grid) Blocks() []*Block {
	blocks := make([]*Block, 0, g.Count())
	for _, b := range g.cells {
		if b != nil {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Clear empties every cell and returns the blocks that were removed.
func (g *Grid) Clear() []*Block {
	removed := g.Blocks()
	for i := range g.cells {
		g.cells[i] = nil
	}
	return removed
}
