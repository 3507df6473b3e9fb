package engine

// Shape is a live piece: a variant in one rotation state at an anchor.
// Its blocks always sit at the variant's pattern translated by the anchor.
type Shape struct {
	variant  Variant
	rotation int
	anchor   Point
	blocks   [BlocksPerShape]*Block
}

// newShape builds a shape with fresh blocks numbered from ids.
func newShape(v Variant, anchor Point, ids *BlockID) *Shape {
	s := &Shape{variant: v, anchor: anchor}
	for i := range s.blocks {
		*ids++
		s.blocks[i] = &Block{ID: *ids, Variant: v}
	}
	s.sync()
	return s
}

// Variant returns the piece type.
func (s *Shape) Variant() Variant {
	return s.variant
}

// Rotation returns the current rotation index in [0, 4).
func (s *Shape) Rotation() int {
	return s.rotation
}

// Anchor returns the offset applied to the pattern.
func (s *Shape) Anchor() Point {
	return s.anchor
}

// Blocks returns the shape's live blocks.
func (s *Shape) Blocks() [BlocksPerShape]*Block {
	return s.blocks
}

// Cells returns the absolute positions the shape occupies.
func (s *Shape) Cells() [BlocksPerShape]Point {
	return cellsAt(s.variant, s.rotation, s.anchor)
}

// Bottom returns the lowest row any block occupies.
func (s *Shape) Bottom() int {
	bottom := s.blocks[0].Row
	for _, b := range s.blocks[1:] {
		bottom = max(bottom, b.Row)
	}
	return bottom
}

// Clone returns a detached copy with its own block values, for snapshots
// and events that must not alias live state.
func (s *Shape) Clone() *Shape {
	c := *s
	for i, b := range s.blocks {
		cp := *b
		c.blocks[i] = &cp
	}
	return &c
}

// place moves the shape to a new rotation and anchor without any checks.
func (s *Shape) place(rotation int, anchor Point) {
	s.rotation = rotation
	s.anchor = anchor
	s.sync()
}

func (s *Shape) sync() {
	cells := s.Cells()
	for i, b := range s.blocks {
		b.Col = cells[i].Col
		b.Row = cells[i].Row
	}
}

func cellsAt(v Variant, rotation int, anchor Point) [BlocksPerShape]Point {
	var cells [BlocksPerShape]Point
	for i, o := range v.Def().States[rotation] {
		cells[i] = anchor.Add(o)
	}
	return cells
}

// nextRotation returns (current + dir) mod 4.
func nextRotation(current int, dir Direction) int {
	return ((current+int(dir))%RotationStates + RotationStates) % RotationStates
}
