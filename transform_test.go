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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// testFrame is a Frame given by three matrices.
type testFrame struct {
	data, axes, fig AffineTransform
}

func (f testFrame) DataTransform() Transform   { return f.data }
func (f testFrame) AxesTransform() Transform   { return f.axes }
func (f testFrame) FigureTransform() Transform { return f.fig }

func newTestFrame() testFrame {
	return testFrame{
		data: AffineTransform{M: matrix.Matrix{40, 0, 0, 30, 80, 60}},
		axes: AffineTransform{M: matrix.Matrix{400, 0, 0, 300, 80, 60}},
		fig:  AffineTransform{M: matrix.Matrix{640, 0, 0, 480, 0, 0}},
	}
}

// opaque is a transform which is neither affine nor subtractable.
type opaque struct {
	branch Transform
}

func (o opaque) Apply(p vec.Vec2) vec.Vec2            { return p }
func (o opaque) ContainsBranch(branch Transform) bool { return branch == o.branch }

func TestResolveNoFrame(t *testing.T) {
	data := []vec.Vec2{{X: 1, Y: 2}}
	res, err := ResolveTransform(Identity, nil, data)
	require.NoError(t, err)
	assert.Equal(t, SpaceFigure, res.Space)
	assert.Equal(t, data, res.Data)
}

func TestResolveData(t *testing.T) {
	f := newTestFrame()
	data := []vec.Vec2{{X: 1, Y: 2}, {X: -3, Y: 0.5}}

	res, err := ResolveTransform(f.data, f, data)
	require.NoError(t, err)
	assert.Equal(t, SpaceData, res.Space)
	require.Len(t, res.Data, len(data))
	for i := range data {
		assert.InDelta(t, data[i].X, res.Data[i].X, 1e-12)
		assert.InDelta(t, data[i].Y, res.Data[i].Y, 1e-12)
	}
}

func TestResolveClassification(t *testing.T) {
	f := newTestFrame()
	cases := []struct {
		name string
		tr   Transform
		want CoordSpace
	}{
		{"data", f.data, SpaceData},
		{"axes", f.axes, SpaceFigure},
		{"figure", f.fig, SpaceFigure},
		{"points", AffineTransform{M: matrix.Scale(100.0/72, 100.0/72)}, SpacePoints},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := ResolveTransform(c.tr, f, nil)
			require.NoError(t, err)
			assert.Equal(t, c.want, res.Space)
			assert.Nil(t, res.Data)
		})
	}
}

func TestResolveDataFirst(t *testing.T) {
	// if the data and axes transforms coincide, data space wins
	f := newTestFrame()
	f.axes = f.data
	res, err := ResolveTransform(f.data, f, nil)
	require.NoError(t, err)
	assert.Equal(t, SpaceData, res.Space)
}

func TestResolveNoResidual(t *testing.T) {
	f := newTestFrame()
	_, err := ResolveTransform(opaque{branch: f.data}, f, []vec.Vec2{{}})
	assert.ErrorIs(t, err, ErrNoResidual)
}

func TestResolveSingular(t *testing.T) {
	f := newTestFrame()
	f.data = AffineTransform{M: matrix.Matrix{1, 0, 0, 0, 0, 0}}
	_, err := ResolveTransform(f.data, f, nil)
	assert.ErrorIs(t, err, ErrSingular)
}

func TestInvert(t *testing.T) {
	m := matrix.Matrix{2, 1, -1, 3, 5, 7}
	inv, err := Invert(m)
	require.NoError(t, err)

	id := m.Mul(inv)
	for i := range id {
		assert.InDelta(t, matrix.Identity[i], id[i], 1e-12)
	}

	for _, bad := range []matrix.Matrix{
		{1, 2, 2, 4, 0, 0},
		{math.NaN(), 0, 0, 1, 0, 0},
		{math.Inf(1), 0, 0, 1, 0, 0},
	} {
		_, err = Invert(bad)
		assert.ErrorIs(t, err, ErrSingular, "%v", bad)
	}
}

func TestAffineApply(t *testing.T) {
	// Mul applies the receiver first
	a := matrix.Scale(2, 2)
	b := matrix.Matrix{1, 0, 0, 1, 1, 0}
	p := AffineTransform{M: a.Mul(b)}.Apply(vec.Vec2{X: 1, Y: 1})
	assert.Equal(t, vec.Vec2{X: 3, Y: 2}, p)

	p = AffineTransform{M: matrix.Matrix{2, 1, -1, 3, 5, 7}}.Apply(vec.Vec2{X: 1, Y: 2})
	assert.Equal(t, vec.Vec2{X: 5, Y: 14}, p)
}

func TestResolveNilTransform(t *testing.T) {
	_, err := ResolveTransform(nil, newTestFrame(), []vec.Vec2{{X: 1, Y: 1}})
	assert.ErrorIs(t, err, ErrNoTransform)
	_, err = ResolveTransform(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoTransform)
}

func TestCoordSpaceText(t *testing.T) {
	text, err := SpacePoints.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "points", string(text))
	assert.Equal(t, "CoordSpace(9)", CoordSpace(9).String())
}
