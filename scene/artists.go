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
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"github.com/mpld3/mplexporter"
)

// Base holds the properties shared by all artists.
type Base struct {
	Trans mplexporter.Transform

	// Opacity is nil if no opacity has been set.
	Opacity *float64

	Z    float64
	Name string
}

// Transform implements the mplexporter.Artist interface.
func (b *Base) Transform() mplexporter.Transform { return b.Trans }

// Alpha implements the mplexporter.Artist interface.
func (b *Base) Alpha() (float64, bool) {
	if b.Opacity == nil {
		return 0, false
	}
	return *b.Opacity, true
}

// SetAlpha sets the opacity.
func (b *Base) SetAlpha(alpha float64) {
	b.Opacity = &alpha
}

// ZOrder implements the mplexporter.Artist interface.
func (b *Base) ZOrder() float64 { return b.Z }

// Label implements the mplexporter.Artist interface.
func (b *Base) Label() string { return b.Name }

// Line is a polyline with optional markers.
type Line struct {
	Base
	Data   []vec.Vec2
	Style  string
	Dashes []float64
	Stroke color.Color
	Width  float64

	Symbol    string
	Size      float64
	Face      color.Color
	Edge      color.Color
	EdgeWidth float64
}

func (l *Line) XYData() []vec.Vec2           { return l.Data }
func (l *Line) LineStyle() string            { return l.Style }
func (l *Line) DashSeq() []float64           { return l.Dashes }
func (l *Line) Color() color.Color           { return l.Stroke }
func (l *Line) LineWidth() float64           { return l.Width }
func (l *Line) Marker() string               { return l.Symbol }
func (l *Line) MarkerSize() float64          { return l.Size }
func (l *Line) MarkerFaceColor() color.Color { return l.Face }
func (l *Line) MarkerEdgeColor() color.Color { return l.Edge }
func (l *Line) MarkerEdgeWidth() float64     { return l.EdgeWidth }
func (l *Line) MarkerPath() *path.Data       { return MarkerGlyph(l.Symbol) }

// Text is a text label.
type Text struct {
	Base
	Content string
	Pos     vec.Vec2
	Size    float64
	Col     color.Color
	HA      string
	VA      string
	Angle   float64
}

func (t *Text) Text() string       { return t.Content }
func (t *Text) Position() vec.Vec2 { return t.Pos }
func (t *Text) FontSize() float64  { return t.Size }
func (t *Text) Color() color.Color { return t.Col }
func (t *Text) HAlign() string     { return t.HA }
func (t *Text) VAlign() string     { return t.VA }
func (t *Text) Rotation() float64  { return t.Angle }

// Patch is a filled and stroked shape.
type Patch struct {
	Base
	Shape  *path.Data
	Filled bool
	Face   color.Color
	Edge   color.Color
	Width  float64
	Style  string
	Dashes []float64
	Cap    graphics.LineCapStyle
	Join   graphics.LineJoinStyle
}

func (p *Patch) Path() *path.Data                  { return p.Shape }
func (p *Patch) Fill() bool                        { return p.Filled }
func (p *Patch) FaceColor() color.Color            { return p.Face }
func (p *Patch) EdgeColor() color.Color            { return p.Edge }
func (p *Patch) LineWidth() float64                { return p.Width }
func (p *Patch) LineStyle() string                 { return p.Style }
func (p *Patch) DashSeq() []float64                { return p.Dashes }
func (p *Patch) CapStyle() graphics.LineCapStyle   { return p.Cap }
func (p *Patch) JoinStyle() graphics.LineJoinStyle { return p.Join }

// Collection is a group of paths drawn at several offsets.
type Collection struct {
	Base
	Shapes      []*path.Data
	Scales      []matrix.Matrix
	OffsetTrans mplexporter.Transform
	Offs        []vec.Vec2

	// OffsetPos is "data" or "screen".
	OffsetPos string

	Widths []float64
	Faces  []color.Color
	Edges  []color.Color
}

func (c *Collection) Paths() []*path.Data                    { return c.Shapes }
func (c *Collection) PathTransforms() []matrix.Matrix        { return c.Scales }
func (c *Collection) OffsetTransform() mplexporter.Transform { return c.OffsetTrans }
func (c *Collection) Offsets() []vec.Vec2                    { return c.Offs }
func (c *Collection) OffsetPosition() string                 { return c.OffsetPos }
func (c *Collection) LineWidths() []float64                  { return c.Widths }
func (c *Collection) FaceColors() []color.Color              { return c.Faces }
func (c *Collection) EdgeColors() []color.Color              { return c.Edges }

// Image is a raster image shown inside an axes.
type Image struct {
	Base
	Img image.Image

	// Ext is (x0, x1, y0, y1) in data coordinates.
	Ext [4]float64

	// Err, if set, is returned by Raster.
	Err error

	// RasterLimits records the view limits of the axes at every call to
	// Raster.
	RasterLimits [][2][2]float64

	ax *Axes
}

// Extent implements the mplexporter.Image interface.
func (im *Image) Extent() [4]float64 { return im.Ext }

// Raster implements the mplexporter.Image interface.
func (im *Image) Raster() (image.Image, error) {
	if im.ax != nil {
		im.RasterLimits = append(im.RasterLimits, [2][2]float64{im.ax.xlim, im.ax.ylim})
	}
	if im.Err != nil {
		return nil, im.Err
	}
	return im.Img, nil
}

// Other is an artist which is not one of the exported drawables, for
// example a legend.
type Other struct {
	Base
}
