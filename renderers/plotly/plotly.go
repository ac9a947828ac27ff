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

// Package plotly implements a renderer which converts figures into the
// JSON chart description used by the plotly.js library.
//
// All axes of the figure share one plotting area. The margins of the
// plotting area are chosen so that the union of all axes boxes fills it,
// and every axes gets its own pair of axis domains inside this area.
package plotly

import (
	"encoding/json"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/mpld3/mplexporter"
)

// Figure is the complete chart description.
type Figure struct {
	Data   []*Trace `json:"data"`
	Layout *Layout  `json:"layout"`
}

// Trace is one data series.
type Trace struct {
	Type    string    `json:"type"`
	Mode    string    `json:"mode"`
	Name    string    `json:"name,omitempty"`
	X       []float64 `json:"x"`
	Y       []float64 `json:"y"`
	XAxis   string    `json:"xaxis,omitempty"`
	YAxis   string    `json:"yaxis,omitempty"`
	Opacity float64   `json:"opacity"`
	Line    *Line     `json:"line,omitempty"`
	Marker  *Marker   `json:"marker,omitempty"`
}

// Line is the stroke of a trace or shape.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width"`
	Dash  string  `json:"dash,omitempty"`
}

// Marker is the marker style of a trace.
type Marker struct {
	Color  string  `json:"color,omitempty"`
	Symbol string  `json:"symbol"`
	Size   float64 `json:"size,omitempty"`
	Line   *Line   `json:"line,omitempty"`
}

// Layout holds everything which is not a data series.
type Layout struct {
	Width       int
	Height      int
	Title       string
	ShowLegend  bool
	Margin      *Margin
	Axes        map[string]*Axis // keys "xaxis", "yaxis", "xaxis2", ...
	Annotations []*Annotation
	Shapes      []*Shape
	Images      []*LayoutImage
}

// MarshalJSON implements the json.Marshaler interface. The axes are
// written as top-level layout keys.
func (l *Layout) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"width":      l.Width,
		"height":     l.Height,
		"showlegend": l.ShowLegend,
	}
	if l.Title != "" {
		m["title"] = l.Title
	}
	if l.Margin != nil {
		m["margin"] = l.Margin
	}
	if len(l.Annotations) > 0 {
		m["annotations"] = l.Annotations
	}
	if len(l.Shapes) > 0 {
		m["shapes"] = l.Shapes
	}
	if len(l.Images) > 0 {
		m["images"] = l.Images
	}
	for key, ax := range l.Axes {
		m[key] = ax
	}
	return json.Marshal(m)
}

// Margin gives the space between the figure border and the plotting area,
// in pixels.
type Margin struct {
	L   float64 `json:"l"`
	R   float64 `json:"r"`
	B   float64 `json:"b"`
	T   float64 `json:"t"`
	Pad float64 `json:"pad"`
}

// Axis is the layout of one axis.
type Axis struct {
	Range    [2]float64 `json:"range"`
	Title    string     `json:"title,omitempty"`
	ShowGrid bool       `json:"showgrid"`
	Domain   [2]float64 `json:"domain"`
	Anchor   string     `json:"anchor"`
	Type     string     `json:"type,omitempty"`
	Visible  bool       `json:"visible"`
}

// Annotation is a text label.
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	ShowArrow bool    `json:"showarrow"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
	TextAngle float64 `json:"textangle"`
	Opacity   float64 `json:"opacity"`
	Font      Font    `json:"font"`
}

// Font describes the font of an annotation.
type Font struct {
	Size  float64 `json:"size"`
	Color string  `json:"color,omitempty"`
}

// Shape is an SVG path drawn on the plotting area.
type Shape struct {
	Type      string  `json:"type"`
	Path      string  `json:"path"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	FillColor string  `json:"fillcolor,omitempty"`
	Opacity   float64 `json:"opacity"`
	Line      *Line   `json:"line,omitempty"`
	Layer     string  `json:"layer,omitempty"`
}

// LayoutImage is a raster image placed in data coordinates.
type LayoutImage struct {
	Source  string  `json:"source"`
	XRef    string  `json:"xref"`
	YRef    string  `json:"yref"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	SizeX   float64 `json:"sizex"`
	SizeY   float64 `json:"sizey"`
	Sizing  string  `json:"sizing"`
	Layer   string  `json:"layer"`
	Opacity float64 `json:"opacity"`
}

var dashMap = map[string]string{
	"10,0":    "solid",
	"6,6":     "dash",
	"2,2":     "dot",
	"4,4,2,4": "dashdot",
	"none":    "solid",
}

// ConvertDash maps an SVG dash array to a plotly dash name.
func ConvertDash(dash string) string {
	if d, ok := dashMap[dash]; ok {
		return d
	}
	return "solid"
}

var symbolMap = map[string]string{
	"o": "dot",
	"v": "triangle-down",
	"^": "triangle-up",
	"<": "triangle-left",
	">": "triangle-right",
	"s": "square",
	"+": "cross",
	"x": "x",
	"D": "diamond",
	"d": "diamond",
}

// ConvertSymbol maps a marker symbol to a plotly marker symbol.
func ConvertSymbol(marker string) string {
	if s, ok := symbolMap[marker]; ok {
		return s
	}
	return "dot"
}

var vaMap = map[string]string{
	"center":   "middle",
	"baseline": "bottom",
	"top":      "top",
}

// ConvertVAlign maps a vertical text alignment to the plotly name. The
// empty string leaves the choice to plotly.
func ConvertVAlign(va string) string {
	return vaMap[va]
}

// Renderer builds a plotly chart.
type Renderer struct {
	mplexporter.Base

	Data   []*Trace
	Layout *Layout

	union   mplexporter.Bounds // all axes, in figure fraction
	axIndex int
}

var _ mplexporter.LineDrawer = (*Renderer)(nil)

// New returns a renderer for a single figure.
func New() *Renderer {
	return &Renderer{Data: []*Trace{}}
}

// OpenFigure sets the size of the chart and the margins around the
// plotting area.
func (r *Renderer) OpenFigure(fig mplexporter.Figure, props *mplexporter.FigureProps) {
	r.Layout = &Layout{
		Width:  props.WidthPx,
		Height: props.HeightPx,
		Axes:   map[string]*Axis{},
	}

	first := true
	for _, ax := range fig.Axes() {
		b := ax.Position()
		if first {
			r.union = mplexporter.Bounds{X0: b.LLx, Y0: b.LLy, Width: b.URx - b.LLx, Height: b.URy - b.LLy}
			first = false
			continue
		}
		x1 := max(r.union.X0+r.union.Width, b.URx)
		y1 := max(r.union.Y0+r.union.Height, b.URy)
		r.union.X0 = min(r.union.X0, b.LLx)
		r.union.Y0 = min(r.union.Y0, b.LLy)
		r.union.Width = x1 - r.union.X0
		r.union.Height = y1 - r.union.Y0
	}
	if first {
		r.union = mplexporter.Bounds{Width: 1, Height: 1}
	}

	w, h := float64(props.WidthPx), float64(props.HeightPx)
	r.Layout.Margin = &Margin{
		L: r.union.X0 * w,
		R: (1 - r.union.X0 - r.union.Width) * w,
		B: r.union.Y0 * h,
		T: (1 - r.union.Y0 - r.union.Height) * h,
	}
}

// CloseFigure finishes the layout.
func (r *Renderer) CloseFigure(mplexporter.Figure) {
	r.Layout.ShowLegend = false
}

// OpenAxes adds the layout of the two axes.
func (r *Renderer) OpenAxes(_ mplexporter.Axes, props *mplexporter.AxesProps) {
	r.axIndex = props.Index
	xKey, yKey := axisKeys(props.Index)
	xRef, yRef := axisRefs(props.Index)

	b := props.Bounds
	r.Layout.Axes[xKey] = &Axis{
		Range:    props.XLim,
		Title:    props.XLabel,
		ShowGrid: props.XGrid,
		Domain:   domain(b.X0, b.Width, r.union.X0, r.union.Width),
		Anchor:   yRef,
		Type:     axisType(props.XAxis.Scale),
		Visible:  props.XAxis.Visible,
	}
	r.Layout.Axes[yKey] = &Axis{
		Range:    props.YLim,
		Title:    props.YLabel,
		ShowGrid: props.YGrid,
		Domain:   domain(b.Y0, b.Height, r.union.Y0, r.union.Height),
		Anchor:   xRef,
		Type:     axisType(props.YAxis.Scale),
		Visible:  props.YAxis.Visible,
	}
	if r.Layout.Title == "" {
		r.Layout.Title = props.Title
	}
}

// CloseAxes implements the mplexporter.Renderer interface.
func (r *Renderer) CloseAxes(mplexporter.Axes) {
	r.axIndex = 0
}

// axisKeys returns the layout keys for the axes with the given index.
// The first axes uses the keys without number.
func axisKeys(index int) (x, y string) {
	if index <= 1 {
		return "xaxis", "yaxis"
	}
	return fmt.Sprintf("xaxis%d", index), fmt.Sprintf("yaxis%d", index)
}

// axisRefs returns the names used to refer to the axes with the given
// index from traces, anchors and annotations.
func axisRefs(index int) (x, y string) {
	if index <= 1 {
		return "x", "y"
	}
	return fmt.Sprintf("x%d", index), fmt.Sprintf("y%d", index)
}

// traceRefs is like axisRefs, but gives empty strings for the first axes,
// which is the default for traces.
func traceRefs(index int) (x, y string) {
	if index <= 1 {
		return "", ""
	}
	return axisRefs(index)
}

func axisType(scale string) string {
	switch scale {
	case "linear", "log":
		return scale
	default:
		return ""
	}
}

// domain maps the interval [x0, x0+w] from figure fraction to the
// fraction of the plotting area [u0, u0+uw].
func domain(x0, w, u0, uw float64) [2]float64 {
	if uw == 0 {
		return [2]float64{0, 1}
	}
	return [2]float64{(x0 - u0) / uw, (x0 + w - u0) / uw}
}

// toPaper converts display pixels to plotting area fractions.
func (r *Renderer) toPaper(p vec.Vec2) vec.Vec2 {
	m := r.Layout.Margin
	w := float64(r.Layout.Width) - m.L - m.R
	h := float64(r.Layout.Height) - m.B - m.T
	if w == 0 || h == 0 {
		return p
	}
	return vec.Vec2{X: (p.X - m.L) / w, Y: (p.Y - m.B) / h}
}

// color returns a plotly color, or "" for absent colors.
func color(hex string) string {
	if hex == mplexporter.NoColor {
		return ""
	}
	return hex
}

func split(data []vec.Vec2) (x, y []float64) {
	x = make([]float64, len(data))
	y = make([]float64, len(data))
	for i, p := range data {
		x[i], y[i] = p.X, p.Y
	}
	return x, y
}

func (r *Renderer) unsupported(what string, space mplexporter.CoordSpace) error {
	return fmt.Errorf("plotly: %s in %s coordinates: %w", what, space, mplexporter.ErrNotImplemented)
}

// DrawLine implements the mplexporter.LineDrawer interface. Only lines in
// data coordinates are supported.
func (r *Renderer) DrawLine(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.LineStyle) error {
	if space != mplexporter.SpaceData {
		return r.unsupported("line", space)
	}
	x, y := split(data)
	xa, ya := traceRefs(r.axIndex)
	r.Data = append(r.Data, &Trace{
		Type:    "scatter",
		Mode:    "lines",
		Name:    style.Label,
		X:       x,
		Y:       y,
		XAxis:   xa,
		YAxis:   ya,
		Opacity: style.Alpha,
		Line: &Line{
			Color: color(style.Color),
			Width: style.LineWidth,
			Dash:  ConvertDash(style.DashArray),
		},
	})
	return nil
}

// DrawMarkers implements the mplexporter.Renderer interface. Only markers
// in data coordinates are supported.
func (r *Renderer) DrawMarkers(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.MarkerStyle) error {
	if space != mplexporter.SpaceData {
		return r.unsupported("markers", space)
	}
	x, y := split(data)
	xa, ya := traceRefs(r.axIndex)
	r.Data = append(r.Data, &Trace{
		Type:    "scatter",
		Mode:    "markers",
		Name:    style.Label,
		X:       x,
		Y:       y,
		XAxis:   xa,
		YAxis:   ya,
		Opacity: style.Alpha,
		Marker: &Marker{
			Color:  color(style.FaceColor),
			Symbol: ConvertSymbol(style.Marker),
			Size:   glyphSize(style.MarkerPath),
			Line: &Line{
				Color: color(style.EdgeColor),
				Width: style.EdgeWidth,
			},
		},
	})
	return nil
}

// glyphSize returns the larger side of the bounding box of a glyph.
func glyphSize(vertices []vec.Vec2) float64 {
	if len(vertices) == 0 {
		return 0
	}
	lo, hi := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		lo.X, lo.Y = min(lo.X, v.X), min(lo.Y, v.Y)
		hi.X, hi.Y = max(hi.X, v.X), max(hi.Y, v.Y)
	}
	return max(hi.X-lo.X, hi.Y-lo.Y)
}

// DrawText implements the mplexporter.Renderer interface. Texts become
// layout annotations.
func (r *Renderer) DrawText(text string, pos vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.TextStyle) error {
	a := &Annotation{
		Text:      text,
		X:         pos.X,
		Y:         pos.Y,
		ShowArrow: false,
		XAnchor:   style.HAlign,
		YAnchor:   ConvertVAlign(style.VAlign),
		TextAngle: -style.Rotation,
		Opacity:   style.Alpha,
		Font: Font{
			Size:  style.FontSize,
			Color: color(style.Color),
		},
	}
	if space == mplexporter.SpaceData {
		a.XRef, a.YRef = axisRefs(r.axIndex)
	} else {
		p := r.toPaper(pos)
		a.X, a.Y = p.X, p.Y
		a.XRef, a.YRef = "paper", "paper"
	}
	r.Layout.Annotations = append(r.Layout.Annotations, a)
	return nil
}

// DrawPath implements the mplexporter.Renderer interface. Paths become
// layout shapes.
func (r *Renderer) DrawPath(data []vec.Vec2, space mplexporter.CoordSpace, codes []mplexporter.PathCode, style *mplexporter.PathStyle) error {
	s := &Shape{
		Type:      "path",
		FillColor: color(style.FaceColor),
		Opacity:   style.Alpha,
		Line: &Line{
			Color: color(style.EdgeColor),
			Width: style.EdgeWidth,
			Dash:  ConvertDash(style.DashArray),
		},
		Layer: "below",
	}
	if space == mplexporter.SpaceData {
		s.XRef, s.YRef = axisRefs(r.axIndex)
	} else {
		paper := make([]vec.Vec2, len(data))
		for i, p := range data {
			paper[i] = r.toPaper(p)
		}
		data = paper
		s.XRef, s.YRef = "paper", "paper"
	}
	s.Path = mplexporter.SVGPath(data, codes)
	r.Layout.Shapes = append(r.Layout.Shapes, s)
	return nil
}

// DrawPathCollection implements the mplexporter.Renderer interface.
// Collections with offsets in data coordinates become marker traces; the
// marker size is taken from the first path.
func (r *Renderer) DrawPathCollection(c *mplexporter.PathCollection) error {
	if c.OffsetSpace != mplexporter.SpaceData {
		return r.unsupported("path collection", c.OffsetSpace)
	}

	var size float64
	if len(c.Paths) > 0 {
		size = glyphSize(c.Paths[0].Vertices)
		if len(c.PathTransforms) > 0 {
			m := c.PathTransforms[0]
			size *= math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
		}
	}

	x, y := split(c.Offsets)
	xa, ya := traceRefs(r.axIndex)
	t := &Trace{
		Type:    "scatter",
		Mode:    "markers",
		X:       x,
		Y:       y,
		XAxis:   xa,
		YAxis:   ya,
		Opacity: c.Style.Alpha,
		Marker: &Marker{
			Symbol: "dot",
			Size:   size,
		},
	}
	if len(c.Style.FaceColors) > 0 {
		t.Marker.Color = color(c.Style.FaceColors[0])
	}
	if len(c.Style.EdgeColors) > 0 || len(c.Style.LineWidths) > 0 {
		t.Marker.Line = &Line{}
		if len(c.Style.EdgeColors) > 0 {
			t.Marker.Line.Color = color(c.Style.EdgeColors[0])
		}
		if len(c.Style.LineWidths) > 0 {
			t.Marker.Line.Width = c.Style.LineWidths[0]
		}
	}
	r.Data = append(r.Data, t)
	return nil
}

// DrawImage implements the mplexporter.Renderer interface. Images become
// layout images stretched to their extent.
func (r *Renderer) DrawImage(img *mplexporter.ImageData) error {
	if img.Space != mplexporter.SpaceData {
		return r.unsupported("image", img.Space)
	}
	xr, yr := axisRefs(r.axIndex)
	ext := img.Extent
	r.Layout.Images = append(r.Layout.Images, &LayoutImage{
		Source:  "data:image/png;base64," + img.Data,
		XRef:    xr,
		YRef:    yr,
		X:       min(ext[0], ext[1]),
		Y:       max(ext[2], ext[3]),
		SizeX:   math.Abs(ext[1] - ext[0]),
		SizeY:   math.Abs(ext[3] - ext[2]),
		Sizing:  "stretch",
		Layer:   "below",
		Opacity: img.Style.Alpha,
	})
	return nil
}

// Figure returns the chart built so far.
func (r *Renderer) Figure() *Figure {
	return &Figure{Data: r.Data, Layout: r.Layout}
}

// JSON returns the chart as indented JSON.
func (r *Renderer) JSON() ([]byte, error) {
	return json.MarshalIndent(r.Figure(), "", "  ")
}
