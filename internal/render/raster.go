// Package render turns grids into pixels: RGB frames for the recorder and
// SVG documents for static export.
package render

import (
	"github.com/san-kum/lifegif/internal/life"
)

// DefaultCellSize is the edge length in pixels of one cell.
const DefaultCellSize = 8

// Rasterizer paints each cell as a CellSize x CellSize square.
type Rasterizer struct {
	CellSize  int
	Theme     Theme
	GridLines bool
}

func NewRasterizer(cellSize int, theme Theme) *Rasterizer {
	if cellSize < 1 {
		cellSize = DefaultCellSize
	}
	return &Rasterizer{CellSize: cellSize, Theme: theme}
}

// FrameSize returns the pixel dimensions of a rendered grid.
func (r *Rasterizer) FrameSize(g *life.Grid) (int, int) {
	return g.Width() * r.CellSize, g.Height() * r.CellSize
}

// Render returns the grid as row-major RGB bytes, 3 per pixel.
func (r *Rasterizer) Render(g *life.Grid) []byte {
	w, h := r.FrameSize(g)
	buf := make([]byte, w*h*3)

	ar, ag, ab := RGB(r.Theme.Alive)
	dr, dg, db := RGB(r.Theme.Dead)
	gr, gg, gb := RGB(r.Theme.Grid)
	lines := r.GridLines && r.CellSize >= 3

	cs := r.CellSize
	for py := 0; py < h; py++ {
		row := py / cs
		for px := 0; px < w; px++ {
			col := px / cs
			i := (py*w + px) * 3
			switch {
			case lines && (py%cs == cs-1 || px%cs == cs-1):
				buf[i], buf[i+1], buf[i+2] = gr, gg, gb
			case g.Cell(row, col):
				buf[i], buf[i+1], buf[i+2] = ar, ag, ab
			default:
				buf[i], buf[i+1], buf[i+2] = dr, dg, db
			}
		}
	}
	return buf
}
