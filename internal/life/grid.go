package life

import "fmt"

// MaxDimension is the largest width or height accepted by ValidateDimensions.
const MaxDimension = 1000

// Point addresses a single cell.
type Point struct {
	Row, Col int
}

// Grid is a width*height binary matrix stored row-major.
type Grid struct {
	width, height int
	cells         []uint8
}

// NewGrid returns an all-dead grid. Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

// FromCells builds a grid from a flat row-major state array. Any non-zero
// byte is a live cell.
func FromCells(cells []uint8, width, height int) (*Grid, error) {
	if width < 0 || height < 0 || len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d", ErrDimensionMismatch, len(cells), width, height)
	}
	g := NewGrid(width, height)
	for i, v := range cells {
		if v != 0 {
			g.cells[i] = 1
		}
	}
	return g, nil
}

// ValidateDimensions reports whether width and height are both in (0, MaxDimension].
func ValidateDimensions(width, height int) bool {
	return width > 0 && height > 0 && width <= MaxDimension && height <= MaxDimension
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Dimensions returns width and height.
func (g *Grid) Dimensions() (int, int) { return g.width, g.height }

// Index maps (row, col) to the flat buffer position.
func (g *Grid) Index(row, col int) int { return row*g.width + col }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Cell reports whether (row, col) is alive. Out-of-range cells are dead.
func (g *Grid) Cell(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[g.Index(row, col)] != 0
}

// Set writes a cell. Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.cells[g.Index(row, col)] = v
}

// Toggle flips a cell and reports whether the coordinates were in range.
func (g *Grid) Toggle(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	idx := g.Index(row, col)
	g.cells[idx] ^= 1
	return true
}

// Cells returns a copy of the flat state array.
func (g *Grid) Cells() []uint8 {
	c := make([]uint8, len(g.cells))
	copy(c, g.cells)
	return c
}

func (g *Grid) LiveCount() int {
	n := 0
	for _, v := range g.cells {
		n += int(v)
	}
	return n
}

// LivePoints lists live cells in row-major order.
func (g *Grid) LivePoints() []Point {
	pts := make([]Point, 0)
	for i, v := range g.cells {
		if v != 0 {
			pts = append(pts, Point{Row: i / g.width, Col: i % g.width})
		}
	}
	return pts
}

func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]uint8, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Diff counts cells that differ between two grids of equal size. Grids of
// different size differ everywhere.
func (g *Grid) Diff(other *Grid) int {
	if other == nil || g.width != other.width || g.height != other.height {
		return len(g.cells)
	}
	n := 0
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			n++
		}
	}
	return n
}

// Pad returns a copy of g surrounded by border dead cells on every side.
func Pad(g *Grid, border int) *Grid {
	if border < 0 {
		border = 0
	}
	p := NewGrid(g.width+2*border, g.height+2*border)
	for row := 0; row < g.height; row++ {
		src := g.cells[row*g.width : (row+1)*g.width]
		copy(p.cells[p.Index(row+border, border):], src)
	}
	return p
}

// Glider returns a width x height grid with a glider in the top-left corner.
func Glider(width, height int) *Grid {
	g := NewGrid(width, height)
	for _, p := range []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		g.Set(p.Row, p.Col, true)
	}
	return g
}
