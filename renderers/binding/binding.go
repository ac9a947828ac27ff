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

// Package binding implements a renderer which reduces a figure to a single
// chart object, with x and y data columns and a color range, for use with
// data binding chart libraries.
package binding

import (
	"log/slog"

	"seehuhn.de/go/geom/vec"

	"github.com/mpld3/mplexporter"
)

// Chart types.
const (
	Line    = "line"
	Scatter = "scatter"
)

// Chart is a single data series.
type Chart struct {
	Type       string    `json:"type"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	X          []float64 `json:"x"`
	Y          []float64 `json:"y"`
	ColorRange []string  `json:"color_range"`
}

// Renderer converts the first line or marker set of a figure into a Chart.
type Renderer struct {
	mplexporter.Base

	// Logger receives warnings about content which is left out. If nil,
	// slog.Default() is used.
	Logger *slog.Logger

	// Chart is nil until the first element has been drawn.
	Chart *Chart

	width, height int
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
	r.Chart = nil
	r.width, r.height = props.WidthPx, props.HeightPx
}

func (r *Renderer) set(kind string, data []vec.Vec2, space mplexporter.CoordSpace, col string) {
	if space != mplexporter.SpaceData {
		r.logger().Warn("binding: only data coordinates are supported, skipping",
			"element", kind, "space", space)
		return
	}
	if r.Chart != nil {
		r.logger().Warn("binding: multiple plot elements not supported, skipping",
			"element", kind)
		return
	}

	c := &Chart{
		Type:       kind,
		Width:      r.width,
		Height:     r.height,
		X:          make([]float64, len(data)),
		Y:          make([]float64, len(data)),
		ColorRange: []string{col},
	}
	for i, p := range data {
		c.X[i], c.Y[i] = p.X, p.Y
	}
	r.Chart = c
}

// DrawLine implements the mplexporter.LineDrawer interface.
func (r *Renderer) DrawLine(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.LineStyle) error {
	r.set(Line, data, space, style.Color)
	return nil
}

// DrawMarkers implements the mplexporter.Renderer interface.
func (r *Renderer) DrawMarkers(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.MarkerStyle) error {
	r.set(Scatter, data, space, style.FaceColor)
	return nil
}
