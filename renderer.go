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
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ErrNotImplemented is returned by renderers for drawables they do not
// support. The exporter skips such drawables silently.
var ErrNotImplemented = errors.New("not implemented by renderer")

// FigureProps describes a figure.
type FigureProps struct {
	Width    float64 `json:"figwidth"`  // inches
	Height   float64 `json:"figheight"` // inches
	DPI      float64 `json:"dpi"`
	WidthPx  int     `json:"width"`
	HeightPx int     `json:"height"`
}

// Bounds is a rectangle given by its lower left corner and its size.
type Bounds struct {
	X0     float64 `json:"x0"`
	Y0     float64 `json:"y0"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// AxisProps describes one axis of an axes.
type AxisProps struct {
	Position   string    `json:"position"`
	Scale      string    `json:"scale"`
	TickValues []float64 `json:"tickvalues"`
	TickLabels []string  `json:"tickformat"`
	Grid       bool      `json:"grid"`
	Visible    bool      `json:"visible"`
}

// AxesProps describes an axes.
type AxesProps struct {
	// Index counts the axes of a figure, starting at 1.
	Index int `json:"index"`

	XLim   [2]float64 `json:"xlim"`
	YLim   [2]float64 `json:"ylim"`
	XLabel string     `json:"xlabel"`
	YLabel string     `json:"ylabel"`
	Title  string     `json:"title"`

	// Bounds is given in figure-fraction coordinates.
	Bounds Bounds `json:"bounds"`

	XGrid     bool `json:"xgrid"`
	YGrid     bool `json:"ygrid"`
	Navigable bool `json:"dynamic"`

	XAxis AxisProps `json:"xaxis"`
	YAxis AxisProps `json:"yaxis"`
}

// OffsetOrder tells whether collection offsets are applied before or
// after the path transform.
type OffsetOrder string

const (
	OffsetBefore OffsetOrder = "before"
	OffsetAfter  OffsetOrder = "after"
)

// CollectionPath is one flattened path of a collection.
type CollectionPath struct {
	Vertices []vec.Vec2
	Codes    []PathCode
}

// PathCollection is the payload of Renderer.DrawPathCollection.
type PathCollection struct {
	Paths          []CollectionPath
	PathSpace      CoordSpace
	PathTransforms []matrix.Matrix
	Offsets        []vec.Vec2
	OffsetSpace    CoordSpace
	OffsetOrder    OffsetOrder
	Style          *CollectionStyle
}

// ImageData is the payload of Renderer.DrawImage.
type ImageData struct {
	// Data holds the base64 encoded PNG image.
	Data string

	// Extent is (x0, x1, y0, y1) in the coordinates given by Space.
	Extent [4]float64
	Space  CoordSpace
	Style  *ImageStyle
}

// Renderer receives the normalised contents of a figure.
//
// Calls arrive in nested order: OpenFigure, then for every axes OpenAxes,
// the drawing calls for the axes and CloseAxes, and finally CloseFigure.
// A renderer instance is meant for a single figure.
type Renderer interface {
	OpenFigure(fig Figure, props *FigureProps)
	CloseFigure(fig Figure)
	OpenAxes(ax Axes, props *AxesProps)
	CloseAxes(ax Axes)

	DrawMarkers(data []vec.Vec2, space CoordSpace, style *MarkerStyle) error
	DrawText(text string, pos vec.Vec2, space CoordSpace, style *TextStyle) error
	DrawPath(data []vec.Vec2, space CoordSpace, codes []PathCode, style *PathStyle) error
	DrawPathCollection(c *PathCollection) error
	DrawImage(img *ImageData) error
}

// LineDrawer is implemented by renderers which draw lines directly.
// Lines sent to other renderers are converted into paths by
// DrawLineAsPath.
type LineDrawer interface {
	DrawLine(data []vec.Vec2, space CoordSpace, style *LineStyle) error
}

// DrawLine sends a line to r, using DrawLineAsPath if r does not
// implement LineDrawer.
func DrawLine(r Renderer, data []vec.Vec2, space CoordSpace, style *LineStyle) error {
	if ld, ok := r.(LineDrawer); ok {
		return ld.DrawLine(data, space, style)
	}
	return DrawLineAsPath(r, data, space, style)
}

// DrawLineAsPath draws a line as an unfilled path.
func DrawLineAsPath(r Renderer, data []vec.Vec2, space CoordSpace, style *LineStyle) error {
	ps := &PathStyle{
		Alpha:     style.Alpha,
		EdgeColor: style.Color,
		FaceColor: NoColor,
		EdgeWidth: style.LineWidth,
		DashArray: style.DashArray,
		ZOrder:    style.ZOrder,
	}
	return r.DrawPath(data, space, lineCodes(len(data)), ps)
}

// Base can be embedded into renderers to provide default methods. The
// scope methods do nothing and the drawing methods return
// ErrNotImplemented.
type Base struct{}

func (Base) OpenFigure(Figure, *FigureProps) {}
func (Base) CloseFigure(Figure)               {}
func (Base) OpenAxes(Axes, *AxesProps)        {}
func (Base) CloseAxes(Axes)                   {}

func (Base) DrawMarkers([]vec.Vec2, CoordSpace, *MarkerStyle) error {
	return ErrNotImplemented
}

func (Base) DrawText(string, vec.Vec2, CoordSpace, *TextStyle) error {
	return ErrNotImplemented
}

func (Base) DrawPath([]vec.Vec2, CoordSpace, []PathCode, *PathStyle) error {
	return ErrNotImplemented
}

func (Base) DrawPathCollection(*PathCollection) error {
	return ErrNotImplemented
}

func (Base) DrawImage(*ImageData) error {
	return ErrNotImplemented
}
