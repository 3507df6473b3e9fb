package engine

// Controller owns the falling shape and applies movement intents to it,
// checking every candidate position against the grid.
// The falling shape is never written to the grid until Lock.
type Controller struct {
	grid  *Grid
	shape *Shape
}

// NewController creates a controller bound to grid.
func NewController(grid *Grid) *Controller {
	return &Controller{grid: grid}
}

// Shape returns the falling shape, or nil if none.
func (c *Controller) Shape() *Shape {
	return c.shape
}

// fits reports whether v in the given rotation at anchor lies entirely
// inside the grid on empty cells.
func (c *Controller) fits(v Variant, rotation int, anchor Point) bool {
	for _, p := range cellsAt(v, rotation, anchor) {
		if !c.grid.InBounds(p.Col, p.Row) || c.grid.Occupied(p.Col, p.Row) {
			return false
		}
	}
	return true
}

// Place makes s the falling shape if it fits at its current position.
// Returns false, leaving no falling shape, when the position is blocked.
func (c *Controller) Place(s *Shape) bool {
	if !c.fits(s.variant, s.rotation, s.anchor) {
		c.shape = nil
		return false
	}
	c.shape = s
	return true
}

// translate moves the shape by delta if the result is legal.
func (c *Controller) translate(delta Point) bool {
	if c.shape == nil {
		return false
	}
	next := c.shape.anchor.Add(delta)
	if !c.fits(c.shape.variant, c.shape.rotation, next) {
		return false
	}
	c.shape.place(c.shape.rotation, next)
	return true
}

// MoveLeft shifts the shape one column left. Illegal moves are no-ops.
func (c *Controller) MoveLeft() bool {
	return c.translate(Point{Col: -1})
}

// MoveRight shifts the shape one column right. Illegal moves are no-ops.
func (c *Controller) MoveRight() bool {
	return c.translate(Point{Col: 1})
}

// Rotate turns the shape a quarter turn in dir. Each kick offset defined
// for the transition is tried in order and the first legal one is applied.
// If none fits the shape keeps its previous orientation.
func (c *Controller) Rotate(dir Direction) bool {
	if c.shape == nil {
		return false
	}
	s := c.shape
	def := s.variant.Def()
	next := nextRotation(s.rotation, dir)
	for _, kick := range def.Kicks(s.rotation, dir) {
		anchor := s.anchor.Add(kick)
		if c.fits(s.variant, next, anchor) {
			s.place(next, anchor)
			return true
		}
	}
	return false
}

// SoftFall moves the shape down one row. When it cannot move the shape has
// landed: it is locked into the grid and landed is true.
func (c *Controller) SoftFall() (landed bool) {
	if c.shape == nil {
		return false
	}
	if c.translate(Point{Row: 1}) {
		return false
	}
	c.Lock()
	return true
}

// HardDrop moves the shape straight down as far as it can go and returns
// the number of rows travelled. The caller is responsible for locking.
func (c *Controller) HardDrop() int {
	if c.shape == nil {
		return 0
	}
	rows := 0
	for c.translate(Point{Row: 1}) {
		rows++
	}
	return rows
}

// GhostRow returns the anchor row the shape would land on if hard-dropped.
func (c *Controller) GhostRow() int {
	if c.shape == nil {
		return 0
	}
	row := c.shape.anchor.Row
	for c.fits(c.shape.variant, c.shape.rotation, Point{Col: c.shape.anchor.Col, Row: row + 1}) {
		row++
	}
	return row
}

// Lock writes the shape's blocks into the grid and clears the falling shape.
// Returns the locked shape.
func (c *Controller) Lock() *Shape {
	s := c.shape
	if s == nil {
		return nil
	}
	for _, b := range s.blocks {
		c.grid.Set(b.Col, b.Row, b)
	}
	c.shape = nil
	return s
}

// Reset drops the falling shape without locking it.
func (c *Controller) Reset() {
	c.shape = nil
}
