package engine

import "fmt"

// Variant enumerates the fixed set of piece types.
type Variant uint8

const (
	VariantI Variant = iota
	VariantO
	VariantT
	VariantS
	VariantZ
	VariantJ
	VariantL

	variantCount
)

// Variants lists every piece type in catalog order.
var Variants = [...]Variant{VariantI, VariantO, VariantT, VariantS, VariantZ, VariantJ, VariantL}

// Color tags a variant for presentation. The engine never interprets it.
type Color uint8

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
)

// Direction is a rotation direction: +1 clockwise, -1 counter-clockwise.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// RotationStates is the number of orientations every variant has.
const RotationStates = 4

// BlocksPerShape is the number of blocks in every shape.
const BlocksPerShape = 4

// Pattern is the block offsets of one rotation state, relative to the anchor.
type Pattern [BlocksPerShape]Point

// ShapeDef is the immutable catalog entry for a variant.
// States are precomputed by rotating the spawn pattern clockwise about the
// center of a Size x Size box, so every offset lies in [0, Size).
type ShapeDef struct {
	Variant Variant
	Name    string
	Color   Color
	Size    int
	States  [RotationStates]Pattern

	// kicks[from][0] is tried on clockwise rotation out of state from,
	// kicks[from][1] on counter-clockwise. Nil means the variant never kicks.
	kicks *[RotationStates][2][]Point
}

// Pivot returns the rotation center in offset coordinates.
func (d *ShapeDef) Pivot() (col, row float64) {
	c := float64(d.Size-1) / 2
	return c, c
}

// Kicks returns the anchor offsets to try, in order, when rotating out of
// state from in direction dir. The first entry is always the zero offset.
func (d *ShapeDef) Kicks(from int, dir Direction) []Point {
	if d.kicks == nil {
		return zeroKick
	}
	if dir == Clockwise {
		return d.kicks[from][0]
	}
	return d.kicks[from][1]
}

var zeroKick = []Point{{0, 0}}

// SRS wall kicks with rows growing downward (the usual tables negate y).
var kicksJLSTZ = [RotationStates][2][]Point{
	{ // 0->R, 0->L
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	{ // R->2, R->0
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	{ // 2->L, 2->R
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
	{ // L->0, L->2
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	},
}

var kicksI = [RotationStates][2][]Point{
	{ // 0->R, 0->L
		{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		{{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	},
	{ // R->2, R->0
		{{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	},
	{ // 2->L, 2->R
		{{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		{{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	},
	{ // L->0, L->2
		{{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	},
}

type spawnDef struct {
	name    string
	color   Color
	size    int
	pattern Pattern
	kicks   *[RotationStates][2][]Point
}

// Spawn orientations, drawn in a size x size box:
//
//	I: ....   O: ##   T: .#.   S: .##   Z: ##.   J: #..   L: ..#
//	   ####      ##      ###      ##.      .##      ###      ###
var spawnDefs = [variantCount]spawnDef{
	VariantI: {"I", ColorCyan, 4, Pattern{{0, 1}, {1, 1}, {2, 1}, {3, 1}}, &kicksI},
	VariantO: {"O", ColorYellow, 2, Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, nil},
	VariantT: {"T", ColorPurple, 3, Pattern{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, &kicksJLSTZ},
	VariantS: {"S", ColorGreen, 3, Pattern{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, &kicksJLSTZ},
	VariantZ: {"Z", ColorRed, 3, Pattern{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, &kicksJLSTZ},
	VariantJ: {"J", ColorBlue, 3, Pattern{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, &kicksJLSTZ},
	VariantL: {"L", ColorOrange, 3, Pattern{{2, 0}, {0, 1}, {1, 1}, {2, 1}}, &kicksJLSTZ},
}

var catalog = buildCatalog()

// buildCatalog precomputes every rotation state and validates the tables.
// A malformed table is a programming error and panics at init.
func buildCatalog() [variantCount]ShapeDef {
	var defs [variantCount]ShapeDef
	for v, sd := range spawnDefs {
		def := ShapeDef{
			Variant: Variant(v),
			Name:    sd.name,
			Color:   sd.color,
			Size:    sd.size,
			kicks:   sd.kicks,
		}
		def.States[0] = sd.pattern
		for r := 1; r < RotationStates; r++ {
			def.States[r] = rotateClockwise(def.States[r-1], sd.size)
		}
		if err := validateDef(&def); err != nil {
			panic(err)
		}
		defs[v] = def
	}
	return defs
}

// rotateClockwise turns a pattern a quarter turn inside a size x size box.
func rotateClockwise(p Pattern, size int) Pattern {
	var out Pattern
	for i, o := range p {
		out[i] = Point{Col: size - 1 - o.Row, Row: o.Col}
	}
	return out
}

func validateDef(d *ShapeDef) error {
	for r, state := range d.States {
		seen := make(map[Point]bool, BlocksPerShape)
		for _, o := range state {
			if o.Col < 0 || o.Col >= d.Size || o.Row < 0 || o.Row >= d.Size {
				return fmt.Errorf("engine: %s state %d offset %v outside %dx%d box", d.Name, r, o, d.Size, d.Size)
			}
			if seen[o] {
				return fmt.Errorf("engine: %s state %d repeats offset %v", d.Name, r, o)
			}
			seen[o] = true
		}
	}
	if d.kicks != nil {
		for from := range d.kicks {
			for dir := range d.kicks[from] {
				k := d.kicks[from][dir]
				if len(k) == 0 || k[0] != (Point{}) {
					return fmt.Errorf("engine: %s kick table %d/%d must start at (0,0)", d.Name, from, dir)
				}
			}
		}
	}
	return nil
}

// Def returns the catalog entry for v. Panics on an unknown variant.
func (v Variant) Def() *ShapeDef {
	if v >= variantCount {
		panic(fmt.Sprintf("engine: unknown variant %d", v))
	}
	return &catalog[v]
}

// Color returns the variant's color tag.
func (v Variant) Color() Color {
	return v.Def().Color
}

func (v Variant) String() string {
	if v >= variantCount {
		return fmt.Sprintf("Variant(%d)", v)
	}
	return catalog[v].Name
}
