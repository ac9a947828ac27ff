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

package testcases

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"github.com/mpld3/mplexporter"
	"github.com/mpld3/mplexporter/scene"
)

var shapeCases = []TestCase{
	{
		Name:  "patches",
		Build: patches,
		Transcript: `opening figure
  opening axes
    draw path with 4 vertices
    draw path with 13 vertices
    draw path with 5 vertices
    draw path with 8 vertices
    draw path with 6 vertices
  closing axes
closing figure
`,
	},
	{
		Name:  "scatter",
		Build: scatter,
		Transcript: `opening figure
  opening axes
    draw path collection with 6 offsets
    draw path collection with 3 offsets
  closing axes
closing figure
`,
	},
	{
		Name:  "collinear_outline",
		Build: collinearOutline,
		Transcript: `opening figure
  opening axes
    draw path with 6 vertices
  closing axes
closing figure
`,
	},
}

// patches has a filled rectangle, a dashed circle outline, a star in axes
// coordinates, a ring with a hole and a closed shape made of curves.
func patches() (*scene.Figure, error) {
	fig := scene.New(6, 6, 100)
	ax := fig.Subplots(1, 1)[0]

	ax.AddPatch(scene.Rectangle(1, 1, 3, 2), color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff})

	c := ax.AddPatch(scene.Circle(6, 6, 2), nil)
	c.Edge = color.NRGBA{R: 0xcc, A: 0xff}
	c.Style = "--"
	c.Width = 2
	c.Cap = graphics.LineCapRound
	c.Join = graphics.LineJoinRound

	star := ax.AddPatch(mplexporter.CollectPath(fivePointStar(0.8, 0.8, 0.1)), color.NRGBA{R: 0xff, G: 0xd7, A: 0xff})
	star.Trans = ax.TransAxes()
	star.SetAlpha(0.7)

	ring := ax.AddPatch(mplexporter.CollectPath(ringShape(2, 7, 1.5, 0.75)), color.NRGBA{G: 0x80, A: 0xff})
	ring.Style = "dashdot"
	ring.Join = graphics.LineJoinBevel

	ax.AddPatch(leaf(7, 1.5, 1.5), color.NRGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff})

	ax.SetXLim(0, 10)
	ax.SetYLim(0, 10)
	return fig, nil
}

// scatter has two marker collections with sizes given in points squared.
func scatter() (*scene.Figure, error) {
	fig := scene.New(6, 4, 100)
	ax := fig.Subplots(1, 1)[0]

	x := seq(6)
	y := make([]float64, len(x))
	for i := range x {
		y[i] = math.Sin(x[i])
	}
	if _, err := ax.Scatter(x, y, 36, "o"); err != nil {
		return nil, err
	}

	sq, err := ax.Scatter([]float64{1, 2, 3}, []float64{0.5, -0.5, 0}, 64, "s")
	if err != nil {
		return nil, err
	}
	sq.Widths = []float64{0.5, 1.5}
	sq.Edges = []color.Color{color.Black}
	sq.Scales = []matrix.Matrix{matrix.Scale(8, 8), matrix.Scale(4, 4)}
	return fig, nil
}

// collinearOutline is a square whose sides are split into several
// collinear segments.
func collinearOutline() (*scene.Figure, error) {
	fig := scene.New(4, 4, 100)
	ax := fig.Subplots(1, 1)[0]
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(1, 0)).LineTo(pt(2, 0)).
		LineTo(pt(2, 1)).LineTo(pt(2, 2)).
		LineTo(pt(0, 2)).
		Close()
	ax.AddPatch(p, color.NRGBA{B: 0xff, A: 0xff})
	ax.SetXLim(-1, 3)
	ax.SetYLim(-1, 3)
	return fig, nil
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		pts := make([]vec.Vec2, 5)
		for i := range 5 {
			angle := float64(i)*2*math.Pi/5 + math.Pi/2
			pts[i] = vec.Vec2{
				X: cx + r*math.Cos(angle),
				Y: cy + r*math.Sin(angle),
			}
		}

		// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
		order := []int{0, 2, 4, 1, 3}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[order[0]]}) {
			return
		}
		for _, i := range order[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// ringShape builds a square with a square hole.
func ringShape(cx, cy, outerSize, innerSize float64) path.Path {
	square := func(yield func(path.Command, []vec.Vec2) bool, s float64) bool {
		corners := []vec.Vec2{
			pt(cx-s, cy-s), pt(cx+s, cy-s), pt(cx+s, cy+s), pt(cx-s, cy+s),
		}
		if !yield(path.CmdMoveTo, corners[:1]) {
			return false
		}
		for i := 1; i < 4; i++ {
			if !yield(path.CmdLineTo, corners[i:i+1]) {
				return false
			}
		}
		return yield(path.CmdClose, nil)
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !square(yield, outerSize) {
			return
		}
		square(yield, innerSize)
	}
}

// leaf builds a closed shape from a quadratic and a cubic Bézier curve.
func leaf(x, y, size float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x, y)).
		QuadTo(pt(x+size, y), pt(x+size, y+size)).
		CubeTo(pt(x+size/2, y+size), pt(x, y+size/2), pt(x, y)).
		Close()
}
