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

package preview

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/mpld3/mplexporter"
)

// zeroLengthThreshold is the minimum length for a stroke segment.
const zeroLengthThreshold = 1e-10

// subpath is a flattened subpath in device coordinates.
type subpath struct {
	pts    []vec.Vec2
	closed bool
}

// flatten converts exported vertices and codes, already mapped to device
// coordinates, into polylines. Curves are approximated to within
// flatness pixels.
func flatten(vertices []vec.Vec2, codes []mplexporter.PathCode, flatness float64) []subpath {
	var res []subpath
	var cur *subpath
	finish := func() {
		if cur != nil && len(cur.pts) > 1 {
			res = append(res, *cur)
		}
		cur = nil
	}
	add := func(_, to vec.Vec2) {
		cur.pts = append(cur.pts, to)
	}

	i := 0
	for _, code := range codes {
		switch code {
		case mplexporter.CodeMoveTo:
			if i >= len(vertices) {
				break
			}
			finish()
			cur = &subpath{pts: []vec.Vec2{vertices[i]}}
			i++

		case mplexporter.CodeLineTo:
			if i >= len(vertices) {
				break
			}
			if cur == nil {
				cur = &subpath{pts: []vec.Vec2{vertices[i]}}
			} else {
				cur.pts = append(cur.pts, vertices[i])
			}
			i++

		case mplexporter.CodeQuadTo:
			if i+2 > len(vertices) || cur == nil {
				i += 2
				break
			}
			flattenQuadratic(cur.pts[len(cur.pts)-1], vertices[i], vertices[i+1], flatness, add)
			i += 2

		case mplexporter.CodeCubeTo:
			if i+3 > len(vertices) || cur == nil {
				i += 3
				break
			}
			flattenCubic(cur.pts[len(cur.pts)-1], vertices[i], vertices[i+1], vertices[i+2], flatness, add)
			i += 3

		case mplexporter.CodeClose:
			if cur != nil {
				cur.closed = true
				start := cur.pts[0]
				if cur.pts[len(cur.pts)-1] != start {
					cur.pts = append(cur.pts, start)
				}
				finish()
			}
		}
	}
	finish()
	return res
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each
// line segment.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	// error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if l := e.Length(); l > flatness {
		n = int(math.Ceil(math.Sqrt(l / flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line
// segment. The number of segments is given by Wang's formula.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * flatness)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// applyDash splits polylines into the "on" pieces of a dash pattern. The
// pattern starts anew for every subpath.
func applyDash(paths []subpath, dash []float64) []subpath {
	if len(dash) == 0 {
		return paths
	}
	n := len(dash)

	var res []subpath
	for _, sp := range paths {
		idx := 0
		remaining := dash[0]
		on := true
		cur := []vec.Vec2{sp.pts[0]}

		for k := 1; k < len(sp.pts); k++ {
			a, b := sp.pts[k-1], sp.pts[k]
			segLen := b.Sub(a).Length()
			pos := 0.0
			for segLen-pos > remaining {
				pos += remaining
				split := a.Add(b.Sub(a).Mul(pos / segLen))
				if on {
					cur = append(cur, split)
					if len(cur) > 1 {
						res = append(res, subpath{pts: cur})
					}
				}
				cur = []vec.Vec2{split}
				idx++
				remaining = dash[idx%n]
				// odd-length patterns alternate the meaning of their entries
				on = idx%2 == 0
			}
			remaining -= segLen - pos
			if on {
				cur = append(cur, b)
			} else {
				cur = []vec.Vec2{b}
			}
		}
		if on && len(cur) > 1 {
			res = append(res, subpath{pts: cur})
		}
	}
	return res
}

// outline returns one quadrilateral per segment of the polylines, covering
// a stroke of the given width with butt caps.
func outline(paths []subpath, width float64) [][4]vec.Vec2 {
	d := width / 2
	var res [][4]vec.Vec2
	for _, sp := range paths {
		for k := 1; k < len(sp.pts); k++ {
			a, b := sp.pts[k-1], sp.pts[k]
			v := b.Sub(a)
			l := v.Length()
			if l < zeroLengthThreshold {
				continue
			}
			t := v.Mul(1 / l)
			n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
			res = append(res, [4]vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
		}
	}
	return res
}
