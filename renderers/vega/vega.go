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

// Package vega implements a renderer which converts figures into a
// declarative chart specification in the Vega grammar.
//
// Only a single axes is supported. Lines, markers and texts in data
// coordinates are converted, everything else is skipped.
package vega

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/vec"

	"github.com/mpld3/mplexporter"
)

// Spec is a Vega chart specification.
type Spec struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Data   []*Table `json:"data"`
	Scales []*Scale `json:"scales"`
	Axes   []*Axis  `json:"axes"`
	Marks  []*Mark  `json:"marks"`
}

// Table is a named data set.
type Table struct {
	Name   string  `json:"name"`
	Values []Point `json:"values"`
}

// Point is one row of a table.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Scale maps data values to pixels.
type Scale struct {
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	Domain [2]float64 `json:"domain"`
	Range  string     `json:"range"`
}

// Axis is an axis decoration.
type Axis struct {
	Type   string `json:"type"`
	Scale  string `json:"scale"`
	Ticks  int    `json:"ticks"`
	Title  string `json:"title,omitempty"`
	Grid   bool   `json:"grid,omitempty"`
	Layer  string `json:"layer,omitempty"`
	Orient string `json:"orient,omitempty"`
}

// Mark is a graphical element bound to a table.
type Mark struct {
	Type       string     `json:"type"`
	From       From       `json:"from"`
	Properties Properties `json:"properties"`
}

// From names the table of a mark.
type From struct {
	Data string `json:"data"`
}

// Properties holds the visual properties of a mark.
type Properties struct {
	Enter map[string]Value `json:"enter"`
}

// Value is either a constant or a scaled field.
type Value struct {
	Value any    `json:"value,omitempty"`
	Scale string `json:"scale,omitempty"`
	Field string `json:"field,omitempty"`
}

// ticks is the suggested number of ticks per axis.
const ticks = 10

// Renderer builds a Vega specification.
type Renderer struct {
	mplexporter.Base

	// Logger receives warnings about unsupported content. If nil,
	// slog.Default() is used.
	Logger *slog.Logger

	spec *Spec
}

var _ mplexporter.LineDrawer = (*Renderer)(nil)

// New returns a renderer for a single figure.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// OpenFigure implements the mplexporter.Renderer interface.
func (r *Renderer) OpenFigure(_ mplexporter.Figure, props *mplexporter.FigureProps) {
	r.spec = &Spec{
		Width:  props.WidthPx,
		Height: props.HeightPx,
		Data:   []*Table{},
		Scales: []*Scale{},
		Axes:   []*Axis{},
		Marks:  []*Mark{},
	}
}

// OpenAxes implements the mplexporter.Renderer interface. The scales and
// axes of a later axes replace the earlier ones.
func (r *Renderer) OpenAxes(_ mplexporter.Axes, props *mplexporter.AxesProps) {
	if len(r.spec.Axes) > 0 {
		r.logger().Warn("vega: multiple axes not supported", "axes", props.Index)
	}
	r.spec.Axes = []*Axis{
		{Type: "x", Scale: "x", Ticks: ticks, Title: props.XLabel, Grid: props.XGrid},
		{Type: "y", Scale: "y", Ticks: ticks, Title: props.YLabel, Grid: props.YGrid},
	}
	r.spec.Scales = []*Scale{
		{Name: "x", Type: scaleType(props.XAxis.Scale), Domain: props.XLim, Range: "width"},
		{Name: "y", Type: scaleType(props.YAxis.Scale), Domain: props.YLim, Range: "height"},
	}
}

func scaleType(s string) string {
	if s == "log" {
		return "log"
	}
	return "linear"
}

// addTable stores data as a new table and returns its name.
func (r *Renderer) addTable(data []vec.Vec2) string {
	name := fmt.Sprintf("table%03d", len(r.spec.Data)+1)
	values := make([]Point, len(data))
	for i, p := range data {
		values[i] = Point{X: p.X, Y: p.Y}
	}
	r.spec.Data = append(r.spec.Data, &Table{Name: name, Values: values})
	return name
}

func (r *Renderer) dataOnly(what string, space mplexporter.CoordSpace) bool {
	if space == mplexporter.SpaceData {
		return true
	}
	r.logger().Warn("vega: only data coordinates are supported, skipping",
		"element", what, "space", space)
	return false
}

func (r *Renderer) addMark(kind, table string, enter map[string]Value) {
	enter["x"] = Value{Scale: "x", Field: "data.x"}
	enter["y"] = Value{Scale: "y", Field: "data.y"}
	r.spec.Marks = append(r.spec.Marks, &Mark{
		Type:       kind,
		From:       From{Data: table},
		Properties: Properties{Enter: enter},
	})
}

// DrawLine implements the mplexporter.LineDrawer interface.
func (r *Renderer) DrawLine(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.LineStyle) error {
	if !r.dataOnly("line", space) {
		return nil
	}
	table := r.addTable(data)
	enter := map[string]Value{
		"interpolate":   {Value: "monotone"},
		"stroke":        {Value: style.Color},
		"strokeOpacity": {Value: style.Alpha},
		"strokeWidth":   {Value: style.LineWidth},
	}
	if style.DashArray != mplexporter.SolidDash && style.DashArray != "none" {
		enter["strokeDash"] = Value{Value: style.DashArray}
	}
	r.addMark("line", table, enter)
	return nil
}

// DrawMarkers implements the mplexporter.Renderer interface.
func (r *Renderer) DrawMarkers(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.MarkerStyle) error {
	if !r.dataOnly("markers", space) {
		return nil
	}
	table := r.addTable(data)
	r.addMark("symbol", table, map[string]Value{
		"fill":          {Value: style.FaceColor},
		"fillOpacity":   {Value: style.Alpha},
		"stroke":        {Value: style.EdgeColor},
		"strokeOpacity": {Value: style.Alpha},
		"strokeWidth":   {Value: style.EdgeWidth},
	})
	return nil
}

// DrawText implements the mplexporter.Renderer interface.
func (r *Renderer) DrawText(text string, pos vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.TextStyle) error {
	if !r.dataOnly("text", space) {
		return nil
	}
	table := r.addTable([]vec.Vec2{pos})
	enter := map[string]Value{
		"text":        {Value: text},
		"fontSize":    {Value: style.FontSize},
		"fill":        {Value: style.Color},
		"fillOpacity": {Value: style.Alpha},
		"angle":       {Value: -style.Rotation},
	}
	if style.HAlign != "" {
		enter["align"] = Value{Value: style.HAlign}
	}
	if style.VAlign != "" {
		enter["baseline"] = Value{Value: baseline(style.VAlign)}
	}
	r.addMark("text", table, enter)
	return nil
}

func baseline(va string) string {
	switch va {
	case "center", "center_baseline":
		return "middle"
	case "baseline":
		return "alphabetic"
	default:
		return va
	}
}

// Spec returns the specification built so far.
func (r *Renderer) Spec() *Spec {
	return r.spec
}

// JSON returns the specification as indented JSON.
func (r *Renderer) JSON() ([]byte, error) {
	return json.MarshalIndent(r.spec, "", "  ")
}
