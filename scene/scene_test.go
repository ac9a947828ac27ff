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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want lineFormat
	}{
		{"", lineFormat{style: "-", marker: "None"}},
		{"b--", lineFormat{color: "b", style: "--", marker: "None"}},
		{"ro", lineFormat{color: "r", style: "None", marker: "o"}},
		{"o-r", lineFormat{color: "r", style: "-", marker: "o"}},
		{"-.", lineFormat{style: "-.", marker: "None"}},
		{"k:", lineFormat{color: "k", style: ":", marker: "None"}},
		{".", lineFormat{style: "None", marker: "."}},
	}
	for _, c := range cases {
		got, err := parseFormat(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	for _, bad := range []string{"rb", "--:", "oo", "q"} {
		_, err := parseFormat(bad)
		assert.Error(t, err, bad)
	}
}

func TestTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 10, 20, 30, 40}, ticks(0, 40, 5))
	assert.Equal(t, []float64{0, 10, 20, 30, 40}, ticks(40, 0, 5))
	assert.Equal(t, []float64{0, 2, 4}, ticks(-1.3, 5.3, 5))
	assert.Equal(t, []float64{3}, ticks(3, 3, 5))

	vals := ticks(0, 1, 5)
	require.Len(t, vals, 6)
	assert.InDelta(t, 0.2, vals[1], 1e-12)
	assert.Equal(t, []string{"0", "0.5", "-2"}, tickLabels([]float64{0, 0.5, -2}))
}

func TestGridSpec(t *testing.T) {
	g := NewGridSpec(2, 2)
	g.WSpace, g.HSpace = 0, 0
	g.Left, g.Right, g.Bottom, g.Top = 0, 1, 0, 1

	box, err := g.Cell(0, 1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, rect.Rect{LLx: 0, LLy: 0.5, URx: 0.5, URy: 1}, box)

	box, err = g.Cell(0, 2, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, rect.Rect{LLx: 0.5, LLy: 0, URx: 1, URy: 1}, box)

	for _, bad := range [][4]int{{0, 0, 0, 1}, {0, 3, 0, 1}, {-1, 1, 0, 1}, {0, 1, 1, 1}} {
		_, err := g.Cell(bad[0], bad[1], bad[2], bad[3])
		assert.Error(t, err, "%v", bad)
	}
}

func TestGridSpecSpacing(t *testing.T) {
	g := NewGridSpec(1, 3)
	g.Left, g.Right = 0, 1.1
	g.WSpace = 0.05

	a, err := g.Cell(0, 1, 0, 1)
	require.NoError(t, err)
	b, err := g.Cell(0, 1, 1, 2)
	require.NoError(t, err)

	width := a.URx - a.LLx
	assert.InDelta(t, 1.1/3.1, width, 1e-12)
	assert.InDelta(t, 0.05*width, b.LLx-a.URx, 1e-12)
}

func TestChain(t *testing.T) {
	a := NewStage("a", matrix.Scale(2, 2))
	b := NewStage("b", matrix.Matrix{1, 0, 0, 1, 3, 4})
	c := NewStage("c", matrix.Scale(10, 10))

	abc := Chain{a, b, c}
	assert.True(t, abc.ContainsBranch(Chain{b, c}))
	assert.True(t, abc.ContainsBranch(Chain{c}))
	assert.True(t, abc.ContainsBranch(abc))
	assert.False(t, abc.ContainsBranch(Chain{a, b}))
	assert.False(t, abc.ContainsBranch(Chain{}))
	assert.False(t, Chain{c}.ContainsBranch(abc))

	// stages are compared by identity, not by value
	c2 := NewStage("c", c.M)
	assert.False(t, abc.ContainsBranch(Chain{c2}))

	p := vec.Vec2{X: 1, Y: 1}
	assert.Equal(t, vec.Vec2{X: 50, Y: 60}, abc.Apply(p))
	assert.Equal(t, abc.Apply(p), applyMatrix(abc.Matrix(), p))
	assert.Equal(t, p, Chain{}.Apply(p))

	r, ok := abc.Sub(Chain{b, c})
	require.True(t, ok)
	assert.Equal(t, Chain{a}, r)
	_, ok = abc.Sub(Chain{a})
	assert.False(t, ok)

	// changing a stage is visible through all chains holding it
	c.M = matrix.Scale(1, 1)
	assert.Equal(t, vec.Vec2{X: 5, Y: 6}, abc.Apply(p))
}

func applyMatrix(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: m[0]*p.X + m[2]*p.Y + m[4], Y: m[1]*p.X + m[3]*p.Y + m[5]}
}

func TestTransforms(t *testing.T) {
	fig := New(4, 3, 100)
	ax := fig.AddAxes(rect.Rect{LLx: 0.25, LLy: 0.5, URx: 0.75, URy: 1})
	ax.SetLimits([2]float64{0, 10}, [2]float64{-1, 1})

	p := ax.TransData().Apply(vec.Vec2{X: 5, Y: 0})
	assert.InDelta(t, 200, p.X, 1e-9)
	assert.InDelta(t, 225, p.Y, 1e-9)

	p = ax.TransAxes().Apply(vec.Vec2{X: 1, Y: 1})
	assert.InDelta(t, 300, p.X, 1e-9)
	assert.InDelta(t, 300, p.Y, 1e-9)

	p = fig.DPIScale().Apply(vec.Vec2{X: 72, Y: 36})
	assert.InDelta(t, 100, p.X, 1e-9)
	assert.InDelta(t, 50, p.Y, 1e-9)

	assert.True(t, ax.TransData().ContainsBranch(ax.TransAxes()))
	assert.True(t, ax.TransData().ContainsBranch(fig.TransFigure()))
	assert.False(t, fig.DPIScale().ContainsBranch(fig.TransFigure()))
}

func TestAutoscale(t *testing.T) {
	fig := New(4, 3, 100)
	ax := fig.Subplots(1, 1)[0]
	_, err := ax.Plot([]float64{1, 3}, []float64{2, 2}, "")
	require.NoError(t, err)
	_, err = ax.Scatter([]float64{5}, []float64{0}, 10, "s")
	require.NoError(t, err)

	require.NoError(t, fig.Draw())
	x, y := ax.Limits()
	assert.InDelta(t, 0.8, x[0], 1e-12)
	assert.InDelta(t, 5.2, x[1], 1e-12)
	assert.InDelta(t, -0.1, y[0], 1e-12)
	assert.InDelta(t, 2.1, y[1], 1e-12)
	assert.NotEmpty(t, ax.XAxis().TickValues())
}

func TestAutoscaleFlat(t *testing.T) {
	fig := New(4, 3, 100)
	ax := fig.Subplots(1, 1)[0]
	_, err := ax.Plot([]float64{2}, []float64{7}, "o")
	require.NoError(t, err)
	ax.SetXLim(0, 4)

	require.NoError(t, fig.Draw())
	x, y := ax.Limits()
	assert.Equal(t, [2]float64{0, 4}, x)
	assert.Equal(t, [2]float64{6.5, 7.5}, y)
}

func TestAutoscaleGaps(t *testing.T) {
	fig := New(4, 3, 100)
	ax := fig.Subplots(1, 1)[0]
	_, err := ax.Plot([]float64{1, math.NaN(), 3, 4}, []float64{2, 5, 2, math.Inf(1)}, "")
	require.NoError(t, err)

	require.NoError(t, fig.Draw())
	x, y := ax.Limits()
	assert.InDelta(t, 0.9, x[0], 1e-12)
	assert.InDelta(t, 3.1, x[1], 1e-12)
	assert.Equal(t, [2]float64{1.5, 2.5}, y)
	assert.NotEmpty(t, ax.YAxis().TickValues())
}

func TestAutoscaleEmpty(t *testing.T) {
	fig := New(4, 3, 100)
	ax := fig.Subplots(1, 1)[0]
	require.NoError(t, fig.Draw())
	x, y := ax.Limits()
	assert.Equal(t, [2]float64{0, 1}, x)
	assert.Equal(t, [2]float64{0, 1}, y)
}

func TestPlotErrors(t *testing.T) {
	fig := New(4, 3, 100)
	ax := fig.Subplots(1, 1)[0]

	_, err := ax.Plot([]float64{1, 2}, []float64{1}, "")
	assert.Error(t, err)
	_, err = ax.Plot(nil, []float64{1}, "zz")
	assert.Error(t, err)
	_, err = ax.Scatter([]float64{1}, []float64{1}, 10, "?")
	assert.Error(t, err)
	assert.Empty(t, ax.Lines())
	assert.Empty(t, ax.Collections())
}

func TestDrawEmptySize(t *testing.T) {
	fig := New(4, 0, 100)
	assert.Error(t, fig.Draw())
	assert.Empty(t, fig.Events)
}

func TestMarkerGlyphs(t *testing.T) {
	for _, m := range []string{"o", ".", "s", "D", "d", "^", "v", "<", ">", "+", "x"} {
		g := MarkerGlyph(m)
		require.NotNil(t, g, m)
		for _, c := range g.Coords {
			assert.LessOrEqual(t, c.Length(), 0.75, m)
		}
	}
	assert.Nil(t, MarkerGlyph("None"))

	c := Circle(1, 2, 3)
	assert.Len(t, c.Coords, 13)
	assert.Equal(t, vec.Vec2{X: 4, Y: 2}, c.Coords[0])
}

func TestImageRasterLimits(t *testing.T) {
	fig := New(4, 3, 100)
	ax := fig.Subplots(1, 1)[0]
	im := ax.AddImage(nil, [4]float64{0, 1, 0, 1})
	ax.SetLimits([2]float64{2, 3}, [2]float64{4, 5})

	_, err := im.Raster()
	require.NoError(t, err)
	assert.Equal(t, [][2][2]float64{{{2, 3}, {4, 5}}}, im.RasterLimits)
}
