package scene

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// GridSpec divides the figure into a grid of subplot cells.
type GridSpec struct {
	Rows, Cols int

	// Left, Right, Bottom and Top give the area covered by the grid, as
	// fractions of the figure.
	Left, Right, Bottom, Top float64

	// WSpace and HSpace give the gaps between cells as fractions of the
	// average cell width and height.
	WSpace, HSpace float64
}

// NewGridSpec returns a grid with the default figure margins.
func NewGridSpec(rows, cols int) *GridSpec {
	return &GridSpec{
		Rows:   rows,
		Cols:   cols,
		Left:   0.125,
		Right:  0.9,
		Bottom: 0.11,
		Top:    0.88,
		WSpace: 0.2,
		HSpace: 0.2,
	}
}

// Cell returns the figure-fraction box spanning rows r0 to r1-1 and
// columns c0 to c1-1. Row 0 is at the top of the figure.
func (g *GridSpec) Cell(r0, r1, c0, c1 int) (rect.Rect, error) {
	if r0 < 0 || r1 > g.Rows || r0 >= r1 || c0 < 0 || c1 > g.Cols || c0 >= c1 {
		return rect.Rect{}, fmt.Errorf("invalid cell [%d:%d, %d:%d] in %dx%d grid",
			r0, r1, c0, c1, g.Rows, g.Cols)
	}

	cellH := (g.Top - g.Bottom) / (float64(g.Rows) + g.HSpace*float64(g.Rows-1))
	sepH := g.HSpace * cellH
	cellW := (g.Right - g.Left) / (float64(g.Cols) + g.WSpace*float64(g.Cols-1))
	sepW := g.WSpace * cellW

	top := g.Top - float64(r0)*(cellH+sepH)
	bottom := g.Top - float64(r1-1)*(cellH+sepH) - cellH
	left := g.Left + float64(c0)*(cellW+sepW)
	right := g.Left + float64(c1-1)*(cellW+sepW) + cellW

	return rect.Rect{LLx: left, LLy: bottom, URx: right, URy: top}, nil
}
