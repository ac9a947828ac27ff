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

package plotly

import (
	"encoding/json"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpld3/mplexporter"
	"github.com/mpld3/mplexporter/testcases"
)

func run(t *testing.T, category, name string) *Renderer {
	t.Helper()
	tc, ok := testcases.Get(category, name)
	require.True(t, ok)
	fig, err := tc.Build()
	require.NoError(t, err)

	r := New()
	e := mplexporter.NewExporter(r)
	e.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, e.Run(fig))
	return r
}

func TestLineAndMarkers(t *testing.T) {
	r := run(t, "basic", "line_and_markers")

	require.Len(t, r.Data, 2)
	line := r.Data[0]
	assert.Equal(t, "scatter", line.Type)
	assert.Equal(t, "lines", line.Mode)
	assert.Len(t, line.X, 20)
	assert.Equal(t, 19.0, line.Y[19])
	assert.Equal(t, "", line.XAxis)
	assert.Equal(t, &Line{Color: "#000000", Width: 1.5, Dash: "solid"}, line.Line)

	markers := r.Data[1]
	assert.Equal(t, "markers", markers.Mode)
	require.NotNil(t, markers.Marker)
	assert.Equal(t, "dot", markers.Marker.Symbol)
	assert.InDelta(t, 3, markers.Marker.Size, 1e-9)
	assert.Equal(t, "#000000", markers.Marker.Color)

	l := r.Layout
	assert.Equal(t, 640, l.Width)
	assert.Equal(t, 480, l.Height)
	assert.InDelta(t, 80, l.Margin.L, 1e-9)
	assert.InDelta(t, 64, l.Margin.R, 1e-9)
	assert.ElementsMatch(t, []string{"xaxis", "yaxis"}, slices.Collect(maps.Keys(l.Axes)))

	x := l.Axes["xaxis"]
	assert.Equal(t, [2]float64{0, 1}, x.Domain)
	assert.Equal(t, "y", x.Anchor)
	assert.Equal(t, "linear", x.Type)
	assert.True(t, x.Visible)
}

func TestTwoSubplots(t *testing.T) {
	r := run(t, "layout", "two_subplots")

	l := r.Layout
	assert.ElementsMatch(t, []string{"xaxis", "yaxis", "xaxis2", "yaxis2"}, slices.Collect(maps.Keys(l.Axes)))
	assert.Equal(t, "y2", l.Axes["xaxis2"].Anchor)
	assert.Equal(t, "x2", l.Axes["yaxis2"].Anchor)

	// the first axes is at the top of the plotting area
	top, bottom := l.Axes["yaxis"].Domain, l.Axes["yaxis2"].Domain
	assert.InDelta(t, 1, top[1], 1e-12)
	assert.InDelta(t, 0, bottom[0], 1e-12)
	assert.Less(t, bottom[1], top[0])
	assert.Equal(t, l.Axes["xaxis"].Domain, l.Axes["xaxis2"].Domain)

	require.Len(t, r.Data, 2)
	assert.Equal(t, "", r.Data[0].XAxis)
	assert.Equal(t, "x2", r.Data[1].XAxis)
	assert.Equal(t, "y2", r.Data[1].YAxis)
}

func TestGridLayoutDomains(t *testing.T) {
	r := run(t, "layout", "grid_layout")

	l := r.Layout
	assert.Len(t, l.Axes, 10)
	for key, ax := range l.Axes {
		assert.GreaterOrEqual(t, ax.Domain[0], -1e-12, key)
		assert.LessOrEqual(t, ax.Domain[1], 1+1e-12, key)
		assert.Less(t, ax.Domain[0], ax.Domain[1], key)
	}
	assert.InDelta(t, 0, l.Axes["xaxis"].Domain[0], 1e-12)
	assert.InDelta(t, 1, l.Axes["xaxis"].Domain[1], 1e-12)
	assert.Equal(t, "A", l.Title)
}

func TestDecorated(t *testing.T) {
	r := run(t, "layout", "decorated_axes")

	l := r.Layout
	assert.Equal(t, "decorated", l.Title)
	assert.Equal(t, &Axis{
		Range:    [2]float64{0, 4},
		Title:    "time",
		ShowGrid: false,
		Domain:   [2]float64{0, 1},
		Anchor:   "y",
		Type:     "linear",
		Visible:  true,
	}, l.Axes["xaxis"])
	assert.True(t, l.Axes["yaxis"].ShowGrid)
	assert.Equal(t, "amount", l.Axes["yaxis"].Title)
}

func TestAnnotations(t *testing.T) {
	r := run(t, "text", "labels")

	ann := r.Layout.Annotations
	require.Len(t, ann, 4)

	assert.Equal(t, "in data", ann[0].Text)
	assert.Equal(t, "x", ann[0].XRef)
	assert.Equal(t, 2.0, ann[0].X)
	assert.Equal(t, "bottom", ann[0].YAnchor)

	// the axes box fills the plotting area
	assert.Equal(t, "paper", ann[1].XRef)
	assert.InDelta(t, 0.5, ann[1].X, 1e-9)
	assert.InDelta(t, 0.9, ann[1].Y, 1e-9)
	assert.Equal(t, "top", ann[1].YAnchor)

	fig := ann[2]
	assert.Equal(t, "paper", fig.YRef)
	m := r.Layout.Margin
	assert.InDelta(t, (12-m.L)/(600-m.L-m.R), fig.X, 1e-9)
	assert.Equal(t, -30.0, fig.TextAngle)
	assert.Equal(t, 0.5, fig.Opacity)
	assert.Equal(t, Font{Size: 10, Color: "#808080"}, fig.Font)

	assert.Equal(t, "middle", ann[3].YAnchor)
	assert.Equal(t, "right", ann[3].XAnchor)
}

func TestShapes(t *testing.T) {
	r := run(t, "shape", "patches")

	shapes := r.Layout.Shapes
	require.Len(t, shapes, 5)
	assert.Equal(t, "M1 1L4 1L4 3L1 3Z", shapes[0].Path)
	assert.Equal(t, "x", shapes[0].XRef)
	assert.Equal(t, "#336699", shapes[0].FillColor)
	assert.Equal(t, "solid", shapes[0].Line.Dash)

	assert.Equal(t, "", shapes[1].FillColor)
	assert.Equal(t, "dash", shapes[1].Line.Dash)
	assert.True(t, strings.HasPrefix(shapes[1].Path, "M8 6C"))

	assert.Equal(t, "paper", shapes[2].XRef)
	assert.Equal(t, 0.7, shapes[2].Opacity)
	assert.Equal(t, "dashdot", shapes[3].Line.Dash)
	assert.Contains(t, shapes[4].Path, "Q")
}

func TestScatter(t *testing.T) {
	r := run(t, "shape", "scatter")

	require.Len(t, r.Data, 2)
	for _, tr := range r.Data {
		assert.Equal(t, "markers", tr.Mode)
		assert.Greater(t, tr.Marker.Size, 0.0)
	}
	assert.Len(t, r.Data[0].X, 6)
	assert.Equal(t, "#1F77B4", r.Data[0].Marker.Color)
	assert.Equal(t, &Line{Color: "#000000", Width: 0.5}, r.Data[1].Marker.Line)

	// the size of the first path instance is used
	assert.InDelta(t, 8*100.0/72, r.Data[1].Marker.Size, 1e-9)
}

func TestImage(t *testing.T) {
	r := run(t, "raster", "gradient_image")

	images := r.Layout.Images
	require.Len(t, images, 1)
	im := images[0]
	assert.True(t, strings.HasPrefix(im.Source, "data:image/png;base64,"))
	assert.Equal(t, "x", im.XRef)
	assert.Equal(t, 0.0, im.X)
	assert.Equal(t, 2.0, im.Y)
	assert.Equal(t, 4.0, im.SizeX)
	assert.Equal(t, 2.0, im.SizeY)
	assert.Equal(t, 0.8, im.Opacity)
}

func TestUnsupportedSpace(t *testing.T) {
	r := New()
	err := r.DrawLine(nil, mplexporter.SpaceFigure, &mplexporter.LineStyle{})
	assert.ErrorIs(t, err, mplexporter.ErrNotImplemented)
	err = r.DrawPathCollection(&mplexporter.PathCollection{OffsetSpace: mplexporter.SpacePoints})
	assert.ErrorIs(t, err, mplexporter.ErrNotImplemented)
}

func TestJSON(t *testing.T) {
	r := run(t, "layout", "two_subplots")
	data, err := r.JSON()
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	require.Contains(t, m, "data")
	layout, ok := m["layout"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 640, layout["width"])
	assert.Contains(t, layout, "xaxis2")
	assert.Contains(t, layout, "margin")
	assert.NotContains(t, layout, "shapes")
	assert.Equal(t, false, layout["showlegend"])

	traces := m["data"].([]any)
	require.Len(t, traces, 2)
	assert.Equal(t, "x2", traces[1].(map[string]any)["xaxis"])
	assert.NotContains(t, traces[0].(map[string]any), "xaxis")
}

func TestEmptyFigureJSON(t *testing.T) {
	r := run(t, "basic", "empty_axes")
	data, err := r.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"data": []`)
}

func TestConvert(t *testing.T) {
	assert.Equal(t, "dot", ConvertDash("2,2"))
	assert.Equal(t, "solid", ConvertDash("3,1.5"))
	assert.Equal(t, "square", ConvertSymbol("s"))
	assert.Equal(t, "dot", ConvertSymbol("?"))
	assert.Equal(t, "middle", ConvertVAlign("center"))
	assert.Equal(t, "", ConvertVAlign("weird"))
	assert.Equal(t, [2]float64{0.5, 1}, domain(0.5, 0.25, 0.25, 0.5))
}
