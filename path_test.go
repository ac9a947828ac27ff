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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestFlattenEmpty(t *testing.T) {
	v, c := FlattenPath(nil, nil, false)
	assert.Nil(t, v)
	assert.Nil(t, c)

	v, c = FlattenPath(&path.Data{}, Identity, true)
	assert.Nil(t, v)
	assert.Nil(t, c)
}

func TestFlattenCodes(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(1, 0)).
		QuadTo(pt(2, 0), pt(2, 1)).
		CubeTo(pt(2, 2), pt(1, 3), pt(0, 2)).
		Close()

	vertices, codes := FlattenPath(p, nil, false)
	assert.Equal(t, []PathCode{CodeMoveTo, CodeLineTo, CodeQuadTo, CodeCubeTo, CodeClose}, codes)
	assert.Equal(t, []vec.Vec2{
		pt(0, 0), pt(1, 0), pt(2, 0), pt(2, 1), pt(2, 2), pt(1, 3), pt(0, 2),
	}, vertices)
}

func TestFlattenCircle(t *testing.T) {
	const k = 0.5522847498
	p := (&path.Data{}).MoveTo(pt(1, 0))
	p = p.CubeTo(pt(1, k), pt(k, 1), pt(0, 1))
	p = p.CubeTo(pt(-k, 1), pt(-1, k), pt(-1, 0))
	p = p.CubeTo(pt(-1, -k), pt(-k, -1), pt(0, -1))
	p = p.CubeTo(pt(k, -1), pt(1, -k), pt(1, 0))
	p = p.Close()

	vertices, codes := FlattenPath(p, nil, false)
	assert.Len(t, vertices, 13)
	assert.Equal(t, []PathCode{"M", "C", "C", "C", "C", "Z"}, codes)
}

func TestFlattenTransform(t *testing.T) {
	p := (&path.Data{}).MoveTo(pt(1, 2)).LineTo(pt(3, 4))
	tr := AffineTransform{M: matrix.Matrix{2, 0, 0, 3, 10, 20}}

	vertices, _ := FlattenPath(p, tr, false)
	assert.Equal(t, []vec.Vec2{pt(12, 26), pt(16, 32)}, vertices)
}

func TestFlattenSimplify(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(1, 0)).LineTo(pt(2, 0)).LineTo(pt(3, 0)).
		LineTo(pt(3, 1)).
		LineTo(pt(2, 1)). // corner, must stay
		Close()

	vertices, codes := FlattenPath(p, nil, true)
	assert.Equal(t, []vec.Vec2{pt(0, 0), pt(3, 0), pt(3, 1), pt(2, 1)}, vertices)
	assert.Equal(t, []PathCode{"M", "L", "L", "L", "Z"}, codes)

	// without simplification every vertex is kept
	vertices, _ = FlattenPath(p, nil, false)
	assert.Len(t, vertices, 6)
}

func TestSimplifyKeepsBacktracking(t *testing.T) {
	p := (&path.Data{}).MoveTo(pt(0, 0)).LineTo(pt(2, 0)).LineTo(pt(1, 0))
	vertices, codes := FlattenPath(p, nil, true)
	assert.Len(t, vertices, 3)
	assert.Equal(t, []PathCode{"M", "L", "L"}, codes)
}

func TestCollectPath(t *testing.T) {
	var it path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(0, 0)}) {
			return
		}
		if !yield(path.CmdQuadTo, []vec.Vec2{pt(1, 1), pt(2, 0)}) {
			return
		}
		yield(path.CmdClose, nil)
	}

	p := CollectPath(it)
	require.Len(t, p.Cmds, 3)
	assert.Equal(t, []vec.Vec2{pt(0, 0), pt(1, 1), pt(2, 0)}, p.Coords)

	_, codes := FlattenPath(p, nil, false)
	assert.Equal(t, []PathCode{"M", "Q", "Z"}, codes)
}

func TestLineCodes(t *testing.T) {
	assert.Nil(t, lineCodes(0))
	assert.Equal(t, []PathCode{"M"}, lineCodes(1))
	assert.Equal(t, []PathCode{"M", "L", "L"}, lineCodes(3))
}

func TestSVGPath(t *testing.T) {
	vertices := []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(2, 2), pt(0.5, 1.5)}
	codes := []PathCode{"M", "L", "Q", "L", "Z"}
	assert.Equal(t, "M0 0L1 0Q1 1 2 2L0.5 1.5Z", SVGPath(vertices, codes))

	assert.Equal(t, "", SVGPath(nil, nil))
}
