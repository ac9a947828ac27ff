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
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// This file describes the object graph of the host plotting library.
// The exporter only reads from it, except for Figure.Draw, Figure.Close
// and the temporary limit change in Axes.SetLimits during image export.

// Transform maps points from one coordinate system to another.
type Transform interface {
	Apply(p vec.Vec2) vec.Vec2

	// ContainsBranch reports whether branch occurs as the final part of
	// the receiver's transform chain.
	ContainsBranch(branch Transform) bool
}

// Affine is implemented by transforms which can be written as a matrix.
type Affine interface {
	Transform
	Matrix() matrix.Matrix
}

// Subtracter is implemented by transforms which can factor out a trailing
// branch exactly. If t.Sub(b) returns (r, true), applying r and then b
// is the same as applying t.
type Subtracter interface {
	Sub(branch Transform) (Transform, bool)
}

// Frame gives the three reference transforms of an axes.
type Frame interface {
	// DataTransform maps data coordinates to display coordinates.
	DataTransform() Transform

	// AxesTransform maps axes-fraction coordinates to display coordinates.
	AxesTransform() Transform

	// FigureTransform maps figure-fraction coordinates to display
	// coordinates.
	FigureTransform() Transform
}

// Figure is the root of the object graph.
type Figure interface {
	// Size returns the figure size in inches.
	Size() (width, height float64)
	DPI() float64
	Axes() []Axes

	// Draw lays out the figure. Geometry is only valid after Draw has
	// been called.
	Draw() error
}

// Closer is implemented by figures which hold resources in the host.
type Closer interface {
	Close() error
}

// Axes is a plotting area inside a figure.
type Axes interface {
	Frame

	// Limits returns the current view limits.
	Limits() (x, y [2]float64)
	SetLimits(x, y [2]float64)

	// XLabel and YLabel return the axis label artists. Texts identical
	// to one of these are not exported; only comparable (pointer) values
	// are recognised.
	XLabel() Text
	YLabel() Text
	Title() string

	// Position returns the bounding box of the axes in figure-fraction
	// coordinates.
	Position() rect.Rect

	XAxis() Axis
	YAxis() Axis

	// Navigable reports whether the axes supports interactive zoom and
	// pan.
	Navigable() bool

	Lines() []Line
	Texts() []Text
	Artists() []Artist
	Patches() []Patch
	Collections() []Collection
	Images() []Image
}

// Axis is one of the two axis decorations of an Axes.
type Axis interface {
	Scale() string
	GridOn() bool
	GridLines() int
	TickValues() []float64
	TickLabels() []string
	Visible() bool
}

// Artist holds the properties common to all drawables.
type Artist interface {
	Transform() Transform

	// Alpha returns the opacity. The second return value is false if no
	// opacity was set.
	Alpha() (float64, bool)

	ZOrder() float64
	Label() string
}

// Line is a polyline with optional markers at the vertices.
type Line interface {
	Artist
	XYData() []vec.Vec2

	// LineStyle returns the host name of the dash style, for example "-"
	// or "dashed". "None" disables the stroke.
	LineStyle() string

	// DashSeq returns an explicit on/off dash sequence, or nil.
	DashSeq() []float64

	Color() color.Color
	LineWidth() float64

	// Marker returns the marker symbol, for example "o". "None" disables
	// the markers.
	Marker() string
	MarkerSize() float64
	MarkerFaceColor() color.Color
	MarkerEdgeColor() color.Color
	MarkerEdgeWidth() float64

	// MarkerPath returns the marker glyph in unit coordinates.
	MarkerPath() *path.Data
}

// Text is a text label.
type Text interface {
	Artist
	Text() string
	Position() vec.Vec2
	FontSize() float64
	Color() color.Color
	HAlign() string
	VAlign() string

	// Rotation is given in degrees.
	Rotation() float64
}

// Patch is a filled and/or stroked shape.
type Patch interface {
	Artist
	Path() *path.Data
	Fill() bool
	FaceColor() color.Color
	EdgeColor() color.Color
	LineWidth() float64
	LineStyle() string
	DashSeq() []float64
	CapStyle() graphics.LineCapStyle
	JoinStyle() graphics.LineJoinStyle
}

// Collection is a group of paths with shared styling and per-instance
// offsets.
type Collection interface {
	Artist
	Paths() []*path.Data
	PathTransforms() []matrix.Matrix

	// OffsetTransform maps the offsets to display coordinates.
	OffsetTransform() Transform
	Offsets() []vec.Vec2

	// OffsetPosition is "data" if offsets are applied before the path
	// transform and "screen" if they are applied after it.
	OffsetPosition() string

	LineWidths() []float64
	FaceColors() []color.Color
	EdgeColors() []color.Color
}

// Image is a raster image placed in data coordinates.
type Image interface {
	Artist

	// Extent returns (x0, x1, y0, y1) in data coordinates.
	Extent() [4]float64

	// Raster returns the image as it appears in the current view
	// limits.
	Raster() (image.Image, error)
}
