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

package mplexporter

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PathCode is the SVG-style letter of a path segment.
type PathCode string

const (
	CodeMoveTo PathCode = "M"
	CodeLineTo PathCode = "L"
	CodeQuadTo PathCode = "Q"
	CodeCubeTo PathCode = "C"
	CodeClose  PathCode = "Z"
)

// collinearTolerance is the largest distance, in output units, a point may
// have from the line through its neighbours and still be merged by
// FlattenPath.
const collinearTolerance = 1e-9

// FlattenPath converts a path into a flat vertex buffer and a list of
// segment codes. Curve segments contribute more than one vertex per code:
// one for M and L, two for Q, three for C and none for Z.
//
// If tr is not nil, it is applied to the vertices. If simplify is set,
// consecutive line segments which continue in the same direction are
// merged.
func FlattenPath(p *path.Data, tr Transform, simplify bool) ([]vec.Vec2, []PathCode) {
	if p == nil || len(p.Cmds) == 0 {
		return nil, nil
	}

	vertices := make([]vec.Vec2, 0, len(p.Coords))
	codes := make([]PathCode, 0, len(p.Cmds))
	emit := func(pts ...vec.Vec2) {
		for _, pt := range pts {
			if tr != nil {
				pt = tr.Apply(pt)
			}
			vertices = append(vertices, pt)
		}
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			emit(p.Coords[coordIdx])
			codes = append(codes, CodeMoveTo)
			coordIdx++

		case path.CmdLineTo:
			emit(p.Coords[coordIdx])
			coordIdx++
			if simplify && canMerge(vertices, codes) {
				n := len(vertices)
				vertices[n-2] = vertices[n-1]
				vertices = vertices[:n-1]
				continue
			}
			codes = append(codes, CodeLineTo)

		case path.CmdQuadTo:
			emit(p.Coords[coordIdx : coordIdx+2]...)
			codes = append(codes, CodeQuadTo)
			coordIdx += 2

		case path.CmdCubeTo:
			emit(p.Coords[coordIdx : coordIdx+3]...)
			codes = append(codes, CodeCubeTo)
			coordIdx += 3

		case path.CmdClose:
			codes = append(codes, CodeClose)
		}
	}
	return vertices, codes
}

// canMerge reports whether the line segment just appended to vertices
// continues the previous line segment in the same direction. The new
// end point is the last vertex and has no code yet.
func canMerge(vertices []vec.Vec2, codes []PathCode) bool {
	n := len(codes)
	if n < 2 || codes[n-1] != CodeLineTo {
		return false
	}
	if prev := codes[n-2]; prev != CodeMoveTo && prev != CodeLineTo {
		return false
	}

	m := len(vertices)
	a, b, c := vertices[m-3], vertices[m-2], vertices[m-1]
	ab := b.Sub(a)
	bc := c.Sub(b)
	if ab.X*bc.X+ab.Y*bc.Y < 0 {
		return false
	}
	cross := ab.X*bc.Y - ab.Y*bc.X
	scale := math.Max(ab.Length()+bc.Length(), 1)
	return math.Abs(cross) <= collinearTolerance*scale*scale
}

// CollectPath copies an iterator-style path into a path.Data value.
func CollectPath(p path.Path) *path.Data {
	res := &path.Data{}
	for cmd, pts := range p {
		res.Cmds = append(res.Cmds, cmd)
		res.Coords = append(res.Coords, pts...)
	}
	return res
}

// lineCodes returns the codes of an open polyline with n vertices.
func lineCodes(n int) []PathCode {
	if n == 0 {
		return nil
	}
	codes := make([]PathCode, n)
	codes[0] = CodeMoveTo
	for i := 1; i < n; i++ {
		codes[i] = CodeLineTo
	}
	return codes
}

// SVGPath formats vertices and codes, as returned by FlattenPath, as an
// SVG path string like "M0 0L1 0L1 1Z".
func SVGPath(vertices []vec.Vec2, codes []PathCode) string {
	b := &strings.Builder{}
	i := 0
	for _, code := range codes {
		b.WriteString(string(code))
		n := 0
		switch code {
		case CodeMoveTo, CodeLineTo:
			n = 1
		case CodeQuadTo:
			n = 2
		case CodeCubeTo:
			n = 3
		}
		for j := range n {
			if j > 0 {
				b.WriteByte(' ')
			}
			if i >= len(vertices) {
				return b.String()
			}
			v := vertices[i]
			b.WriteString(strconv.FormatFloat(v.X, 'g', -1, 64))
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(v.Y, 'g', -1, 64))
			i++
		}
	}
	return b.String()
}
