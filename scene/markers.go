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

package scene

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// by a cubic Bézier curve.
const kappa = 0.5522847498

// MarkerGlyph returns the outline of a marker symbol, scaled so that the
// marker has size one. Unknown symbols give nil.
func MarkerGlyph(symbol string) *path.Data {
	switch symbol {
	case "o":
		return Circle(0, 0, 0.5)
	case ".":
		return Circle(0, 0, 0.25)
	case "s":
		return Rectangle(-0.5, -0.5, 1, 1)
	case "D":
		return polygon(pt(0, -0.5), pt(0.5, 0), pt(0, 0.5), pt(-0.5, 0))
	case "d":
		return polygon(pt(0, -0.5), pt(0.3, 0), pt(0, 0.5), pt(-0.3, 0))
	case "^":
		return polygon(pt(0, 0.5), pt(-0.5, -0.5), pt(0.5, -0.5))
	case "v":
		return polygon(pt(0, -0.5), pt(-0.5, 0.5), pt(0.5, 0.5))
	case "<":
		return polygon(pt(-0.5, 0), pt(0.5, -0.5), pt(0.5, 0.5))
	case ">":
		return polygon(pt(0.5, 0), pt(-0.5, 0.5), pt(-0.5, -0.5))
	case "+":
		return (&path.Data{}).
			MoveTo(pt(-0.5, 0)).LineTo(pt(0.5, 0)).
			MoveTo(pt(0, -0.5)).LineTo(pt(0, 0.5))
	case "x":
		return (&path.Data{}).
			MoveTo(pt(-0.5, -0.5)).LineTo(pt(0.5, 0.5)).
			MoveTo(pt(-0.5, 0.5)).LineTo(pt(0.5, -0.5))
	default:
		return nil
	}
}

// Circle returns a circle made of four cubic Bézier curves.
func Circle(cx, cy, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}

// Rectangle returns a closed rectangle with lower left corner (x, y).
func Rectangle(x, y, width, height float64) *path.Data {
	return polygon(pt(x, y), pt(x+width, y), pt(x+width, y+height), pt(x, y+height))
}

func polygon(corners ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(corners[0])
	for _, c := range corners[1:] {
		p = p.LineTo(c)
	}
	return p.Close()
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
