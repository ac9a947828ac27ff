// mplexporter - export plotting figures to chart formats
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package scene is an in-memory plotting library whose figures can be
// exported with mplexporter.
//
// Coordinates follow the usual plotting conventions: display coordinates
// are pixels with the origin in the lower left corner of the figure,
// figure and axes coordinates are fractions of the respective box.
package scene

import (
	"errors"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"github.com/mpld3/mplexporter"
)

// defaultCycle is the color cycle used for lines without an explicit
// color.
var defaultCycle = []color.Color{
	color.NRGBA{0x1f, 0x77, 0xb4, 0xff},
	color.NRGBA{0xff, 0x7f, 0x0e, 0xff},
	color.NRGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.NRGBA{0xd6, 0x27, 0x28, 0xff},
	color.NRGBA{0x94, 0x67, 0xbd, 0xff},
	color.NRGBA{0x8c, 0x56, 0x4b, 0xff},
	color.NRGBA{0xe3, 0x77, 0xc2, 0xff},
	color.NRGBA{0x7f, 0x7f, 0x7f, 0xff},
	color.NRGBA{0xbc, 0xbd, 0x22, 0xff},
	color.NRGBA{0x17, 0xbe, 0xcf, 0xff},
}

// Figure is the top level container of a plot.
type Figure struct {
	Width, Height float64 // inches
	Resolution    float64 // dots per inch

	axes   []*Axes
	stage  *Stage // figure fraction to display
	closed bool

	// Events lists "draw" and "close" in the order the calls happened.
	Events []string
}

// New returns an empty figure of the given size in inches.
func New(width, height, dpi float64) *Figure {
	return &Figure{
		Width:      width,
		Height:     height,
		Resolution: dpi,
		stage:      NewStage("figure", matrix.Scale(width*dpi, height*dpi)),
	}
}

// Size implements the mplexporter.Figure interface.
func (f *Figure) Size() (width, height float64) {
	return f.Width, f.Height
}

// DPI implements the mplexporter.Figure interface.
func (f *Figure) DPI() float64 {
	return f.Resolution
}

// Axes implements the mplexporter.Figure interface.
func (f *Figure) Axes() []mplexporter.Axes {
	res := make([]mplexporter.Axes, len(f.axes))
	for i, ax := range f.axes {
		res[i] = ax
	}
	return res
}

// TransFigure maps figure-fraction coordinates to display coordinates.
func (f *Figure) TransFigure() Chain {
	return Chain{f.stage}
}

// DPIScale maps points to display coordinates.
func (f *Figure) DPIScale() Chain {
	s := f.Resolution / 72
	return Chain{NewStage("points", matrix.Scale(s, s))}
}

// AddAxes adds an axes covering the given figure-fraction box.
func (f *Figure) AddAxes(box rect.Rect) *Axes {
	ax := newAxes(f, box)
	f.axes = append(f.axes, ax)
	return ax
}

// AddSubplot adds an axes spanning rows r0 to r1-1 and columns c0 to c1-1
// of the grid.
func (f *Figure) AddSubplot(g *GridSpec, r0, r1, c0, c1 int) (*Axes, error) {
	box, err := g.Cell(r0, r1, c0, c1)
	if err != nil {
		return nil, err
	}
	return f.AddAxes(box), nil
}

// Subplots adds a regular grid of axes, in row-major order.
func (f *Figure) Subplots(rows, cols int) []*Axes {
	g := NewGridSpec(rows, cols)
	var res []*Axes
	for r := range rows {
		for c := range cols {
			ax, _ := f.AddSubplot(g, r, r+1, c, c+1)
			res = append(res, ax)
		}
	}
	return res
}

// Draw implements the mplexporter.Figure interface. It fixes the view
// limits of all axes, computes the tick positions and updates all
// transforms.
func (f *Figure) Draw() error {
	if f.Width <= 0 || f.Height <= 0 || f.Resolution <= 0 {
		return errors.New("figure has empty size")
	}
	f.stage.M = matrix.Scale(f.Width*f.Resolution, f.Height*f.Resolution)
	for _, ax := range f.axes {
		ax.layout()
	}
	f.Events = append(f.Events, "draw")
	return nil
}

// Close implements the mplexporter.Closer interface. The figure is only
// marked as closed; it can still be read and drawn.
func (f *Figure) Close() error {
	f.closed = true
	f.Events = append(f.Events, "close")
	return nil
}

// Closed reports whether Close has been called.
func (f *Figure) Closed() bool {
	return f.closed
}
