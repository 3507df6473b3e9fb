package engine

// BlockMove records a block shifted down by a collapse.
type BlockMove struct {
	Block *Block
	From  Point
	To    Point
}

// LineClear is the outcome of one clear-and-collapse pass.
type LineClear struct {
	// Rows are the cleared row indices, ascending.
	Rows []int
	// Removed holds the removed blocks, one slice per cleared row, in Rows order.
	Removed [][]*Block
	// Moved lists every block that fell, bottom-most first.
	Moved []BlockMove
}

// Lines returns the number of rows cleared.
func (lc LineClear) Lines() int {
	return len(lc.Rows)
}

// RemovedCount returns the total number of removed blocks.
func (lc LineClear) RemovedCount() int {
	n := 0
	for _, row := range lc.Removed {
		n += len(row)
	}
	return n
}

// FindCompletedLines returns the indices of fully occupied rows, ascending.
func FindCompletedLines(g *Grid) []int {
	var rows []int
	for row := 0; row < g.Rows(); row++ {
		if g.RowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearAndCollapse removes every block in rows and shifts each remaining
// block down by the number of cleared rows strictly below it. The grid is
// walked bottom-up once, so a block never lands on a cell that still holds
// an unmoved block. rows may be in any order; duplicates are ignored.
func ClearAndCollapse(g *Grid, rows []int) LineClear {
	cleared := make([]bool, g.Rows())
	for _, row := range rows {
		if !g.InBounds(0, row) {
			panic("engine: clear row out of range")
		}
		cleared[row] = true
	}

	var result LineClear
	for row := 0; row < g.Rows(); row++ {
		if !cleared[row] {
			continue
		}
		result.Rows = append(result.Rows, row)
		removed := make([]*Block, 0, g.Columns())
		for col := 0; col < g.Columns(); col++ {
			if b := g.Get(col, row); b != nil {
				removed = append(removed, b)
				g.Set(col, row, nil)
			}
		}
		result.Removed = append(result.Removed, removed)
	}
	if len(result.Rows) == 0 {
		return result
	}

	shift := 0
	for row := g.Rows() - 1; row >= 0; row-- {
		if cleared[row] {
			shift++
			continue
		}
		if shift == 0 {
			continue
		}
		for col := 0; col < g.Columns(); col++ {
			b := g.Get(col, row)
			if b == nil {
				continue
			}
			from := b.Pos()
			g.Set(col, row, nil)
			b.Row = row + shift
			g.Set(col, b.Row, b)
			result.Moved = append(result.Moved, BlockMove{Block: b, From: from, To: b.Pos()})
		}
	}
	return result
}
