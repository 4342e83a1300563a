package sim

// Position is the top-left pixel of a grid cell.
// Both coordinates are multiples of the cell size.
type Position struct {
	X, Y int
}

// Add returns p moved by v.
func (p Position) Add(v Vector) Position {
	return Position{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Vector is a movement step, either zero or one cell along a single axis.
type Vector struct {
	DX, DY int
}

// IsZero reports whether v is the zero vector.
func (v Vector) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Axis identifies one of the two grid axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Heading is one of the four directions the player can steer.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

// AxisSign splits the heading into an axis and a sign of +1 or -1.
func (h Heading) AxisSign() (Axis, int) {
	switch h {
	case HeadingUp:
		return AxisY, -1
	case HeadingDown:
		return AxisY, 1
	case HeadingLeft:
		return AxisX, -1
	default:
		return AxisX, 1
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid describes the playfield in pixels.
// The top band of height Band is kept free of orbs but the snake may
// still wrap into its lower edge.
type Grid struct {
	Width  int
	Height int
	Cell   int
	Band   int
}

// step returns the vector for one cell along axis in the direction of sign.
func (g Grid) step(axis Axis, sign int) Vector {
	if axis == AxisY {
		return Vector{DY: sign * g.Cell}
	}
	return Vector{DX: sign * g.Cell}
}

// Start returns the head cell of a fresh snake: the horizontal center and
// the vertical center of the area below the band, snapped down to the grid.
func (g Grid) Start() Position {
	return Position{
		X: g.Width / 2 / g.Cell * g.Cell,
		Y: (g.Height + g.Band) / 2 / g.Cell * g.Cell,
	}
}

// Wrap maps a position that stepped off one edge onto the opposite edge.
// Intervals are half-open: a coordinate equal to the far bound wraps, and so
// does anything below the near bound.
func (g Grid) Wrap(p Position) Position {
	if p.X < 0 {
		p.X = g.Width/g.Cell*g.Cell - g.Cell
	} else if p.X >= g.Width {
		p.X = 0
	}

	if p.Y < g.Band {
		p.Y = g.Height/g.Cell*g.Cell - g.Cell
	} else if p.Y >= g.Height {
		p.Y = g.Band / g.Cell * g.Cell
	}
	return p
}

// SpawnArea returns the playable region for orbs in cell units:
// columns [0, maxCol] and rows [minRow, maxRow]. The region is empty when
// maxCol < 0 or maxRow < minRow.
func (g Grid) SpawnArea() (maxCol, minRow, maxRow int) {
	maxCol = g.Width/g.Cell - 1
	minRow = (g.Band + g.Cell - 1) / g.Cell
	maxRow = g.Height/g.Cell - 1
	return maxCol, minRow, maxRow
}

// CellAt returns the position of the cell at column col and row row.
func (g Grid) CellAt(col, row int) Position {
	return Position{X: col * g.Cell, Y: row * g.Cell}
}
