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
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"github.com/mpld3/mplexporter"
)

// autoscaleMargin is the fraction of the data range added on each side
// when view limits are chosen automatically.
const autoscaleMargin = 0.05

// tickIntervals is the approximate number of tick intervals per axis.
const tickIntervals = 5

var black = color.Gray{Y: 0}

// Axis holds the decoration settings of one axis.
type Axis struct {
	ScaleName string
	Grid      bool
	Hidden    bool

	ticks []float64
}

// Scale implements the mplexporter.Axis interface.
func (a *Axis) Scale() string { return a.ScaleName }

// GridOn implements the mplexporter.Axis interface.
func (a *Axis) GridOn() bool { return a.Grid }

// GridLines implements the mplexporter.Axis interface. Grid lines only
// exist after the figure has been drawn.
func (a *Axis) GridLines() int {
	if !a.Grid {
		return 0
	}
	return len(a.ticks)
}

// TickValues implements the mplexporter.Axis interface.
func (a *Axis) TickValues() []float64 { return a.ticks }

// TickLabels implements the mplexporter.Axis interface.
func (a *Axis) TickLabels() []string { return tickLabels(a.ticks) }

// Visible implements the mplexporter.Axis interface.
func (a *Axis) Visible() bool { return !a.Hidden }

// Axes is a plotting area with a data coordinate system.
type Axes struct {
	fig *Figure
	box rect.Rect

	xlim, ylim       [2]float64
	xlimSet, ylimSet bool

	dataStage *Stage // data to axes fraction
	boxStage  *Stage // axes fraction to figure fraction

	xlabel, ylabel *Text
	title          string
	xaxis, yaxis   *Axis
	navigable      bool

	lines       []*Line
	texts       []*Text
	artists     []mplexporter.Artist
	patches     []*Patch
	collections []*Collection
	images      []*Image

	cycle int
}

func newAxes(f *Figure, box rect.Rect) *Axes {
	ax := &Axes{
		fig:       f,
		box:       box,
		xlim:      [2]float64{0, 1},
		ylim:      [2]float64{0, 1},
		xaxis:     &Axis{ScaleName: "linear"},
		yaxis:     &Axis{ScaleName: "linear"},
		navigable: true,
	}
	ax.boxStage = NewStage("axes", boxMatrix(box.LLx, box.LLy, box.URx-box.LLx, box.URy-box.LLy))
	ax.dataStage = NewStage("data", limitsMatrix(ax.xlim, ax.ylim))
	ax.xlabel = &Text{
		Base: Base{Trans: ax.TransAxes(), Z: 3},
		Pos:  pt(0.5, 0),
		Size: 10,
		Col:  black,
		HA:   "center",
		VA:   "top",
	}
	ax.ylabel = &Text{
		Base:  Base{Trans: ax.TransAxes(), Z: 3},
		Pos:   pt(0, 0.5),
		Size:  10,
		Col:   black,
		HA:    "center",
		VA:    "baseline",
		Angle: 90,
	}
	return ax
}

// TransData maps data coordinates to display coordinates.
func (ax *Axes) TransData() Chain {
	return Chain{ax.dataStage, ax.boxStage, ax.fig.stage}
}

// TransAxes maps axes-fraction coordinates to display coordinates.
func (ax *Axes) TransAxes() Chain {
	return Chain{ax.boxStage, ax.fig.stage}
}

// DataTransform implements the mplexporter.Frame interface.
func (ax *Axes) DataTransform() mplexporter.Transform { return ax.TransData() }

// AxesTransform implements the mplexporter.Frame interface.
func (ax *Axes) AxesTransform() mplexporter.Transform { return ax.TransAxes() }

// FigureTransform implements the mplexporter.Frame interface.
func (ax *Axes) FigureTransform() mplexporter.Transform { return ax.fig.TransFigure() }

// Limits implements the mplexporter.Axes interface.
func (ax *Axes) Limits() (x, y [2]float64) {
	return ax.xlim, ax.ylim
}

// SetLimits implements the mplexporter.Axes interface. It fixes both view
// limits.
func (ax *Axes) SetLimits(x, y [2]float64) {
	ax.xlim, ax.ylim = x, y
	ax.xlimSet, ax.ylimSet = true, true
	ax.dataStage.M = limitsMatrix(x, y)
}

// SetXLim fixes the x view limits.
func (ax *Axes) SetXLim(lo, hi float64) {
	ax.xlim, ax.xlimSet = [2]float64{lo, hi}, true
	ax.dataStage.M = limitsMatrix(ax.xlim, ax.ylim)
}

// SetYLim fixes the y view limits.
func (ax *Axes) SetYLim(lo, hi float64) {
	ax.ylim, ax.ylimSet = [2]float64{lo, hi}, true
	ax.dataStage.M = limitsMatrix(ax.xlim, ax.ylim)
}

func (ax *Axes) XLabel() mplexporter.Text { return ax.xlabel }
func (ax *Axes) YLabel() mplexporter.Text { return ax.ylabel }

// XLabelText returns the x-axis label artist.
func (ax *Axes) XLabelText() *Text { return ax.xlabel }

// YLabelText returns the y-axis label artist.
func (ax *Axes) YLabelText() *Text { return ax.ylabel }

func (ax *Axes) SetXLabel(s string) { ax.xlabel.Content = s }
func (ax *Axes) SetYLabel(s string) { ax.ylabel.Content = s }
func (ax *Axes) SetTitle(s string)  { ax.title = s }

// Title implements the mplexporter.Axes interface.
func (ax *Axes) Title() string { return ax.title }

// Position implements the mplexporter.Axes interface.
func (ax *Axes) Position() rect.Rect { return ax.box }

func (ax *Axes) XAxis() mplexporter.Axis { return ax.xaxis }
func (ax *Axes) YAxis() mplexporter.Axis { return ax.yaxis }

// Grid switches the major grid lines of the two axes on or off.
func (ax *Axes) Grid(x, y bool) {
	ax.xaxis.Grid, ax.yaxis.Grid = x, y
}

// Navigable implements the mplexporter.Axes interface.
func (ax *Axes) Navigable() bool { return ax.navigable }

// SetNavigable enables or disables interactive zoom and pan.
func (ax *Axes) SetNavigable(on bool) { ax.navigable = on }

// Lines implements the mplexporter.Axes interface.
func (ax *Axes) Lines() []mplexporter.Line {
	res := make([]mplexporter.Line, len(ax.lines))
	for i, l := range ax.lines {
		res[i] = l
	}
	return res
}

// Texts implements the mplexporter.Axes interface.
func (ax *Axes) Texts() []mplexporter.Text {
	res := make([]mplexporter.Text, len(ax.texts))
	for i, t := range ax.texts {
		res[i] = t
	}
	return res
}

// Artists implements the mplexporter.Axes interface.
func (ax *Axes) Artists() []mplexporter.Artist {
	return ax.artists
}

// Patches implements the mplexporter.Axes interface.
func (ax *Axes) Patches() []mplexporter.Patch {
	res := make([]mplexporter.Patch, len(ax.patches))
	for i, p := range ax.patches {
		res[i] = p
	}
	return res
}

// Collections implements the mplexporter.Axes interface.
func (ax *Axes) Collections() []mplexporter.Collection {
	res := make([]mplexporter.Collection, len(ax.collections))
	for i, c := range ax.collections {
		res[i] = c
	}
	return res
}

// Images implements the mplexporter.Axes interface.
func (ax *Axes) Images() []mplexporter.Image {
	res := make([]mplexporter.Image, len(ax.images))
	for i, im := range ax.images {
		res[i] = im
	}
	return res
}

func (ax *Axes) nextColor() color.Color {
	c := defaultCycle[ax.cycle%len(defaultCycle)]
	ax.cycle++
	return c
}

// Plot adds a line through the points (x[i], y[i]). If x is nil, the
// indices of y are used. The format string sets color, line style and
// marker, for example "b--" or "ro".
func (ax *Axes) Plot(x, y []float64, format string) (*Line, error) {
	if x == nil {
		x = make([]float64, len(y))
		for i := range x {
			x[i] = float64(i)
		}
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y have different lengths %d and %d", len(x), len(y))
	}
	f, err := parseFormat(format)
	if err != nil {
		return nil, err
	}

	var col color.Color
	if f.color != "" {
		col, err = mplexporter.ParseColor(f.color)
		if err != nil {
			return nil, err
		}
	} else {
		col = ax.nextColor()
	}

	data := make([]vec.Vec2, len(x))
	for i := range x {
		data[i] = vec.Vec2{X: x[i], Y: y[i]}
	}
	l := &Line{
		Base:      Base{Trans: ax.TransData(), Z: 2},
		Data:      data,
		Style:     f.style,
		Stroke:    col,
		Width:     1.5,
		Symbol:    f.marker,
		Size:      6,
		Face:      col,
		Edge:      col,
		EdgeWidth: 1,
	}
	ax.lines = append(ax.lines, l)
	return l, nil
}

// AddLine adds a line. If the line has no transform, it is placed in data
// coordinates.
func (ax *Axes) AddLine(l *Line) *Line {
	if l.Trans == nil {
		l.Trans = ax.TransData()
	}
	ax.lines = append(ax.lines, l)
	return l
}

// AddText adds a text label at (x, y) in data coordinates.
func (ax *Axes) AddText(x, y float64, s string) *Text {
	return ax.AddTextIn(ax.TransData(), x, y, s)
}

// AddTextIn adds a text label at (x, y) in the coordinates of trans.
func (ax *Axes) AddTextIn(trans mplexporter.Transform, x, y float64, s string) *Text {
	t := &Text{
		Base:    Base{Trans: trans, Z: 3},
		Content: s,
		Pos:     pt(x, y),
		Size:    10,
		Col:     black,
		HA:      "left",
		VA:      "baseline",
	}
	ax.texts = append(ax.texts, t)
	return t
}

// AddArtist adds an artist to the list of annotation artists.
func (ax *Axes) AddArtist(a mplexporter.Artist) {
	ax.artists = append(ax.artists, a)
}

// AddPatch adds a filled shape given in data coordinates.
func (ax *Axes) AddPatch(shape *path.Data, face color.Color) *Patch {
	p := &Patch{
		Base:   Base{Trans: ax.TransData(), Z: 1},
		Shape:  shape,
		Filled: face != nil,
		Face:   face,
		Edge:   black,
		Width:  1,
		Style:  "solid",
		Cap:    graphics.LineCapButt,
		Join:   graphics.LineJoinMiter,
	}
	ax.patches = append(ax.patches, p)
	return p
}

// Scatter adds a marker at each point (x[i], y[i]). The marker size is
// given in points squared.
func (ax *Axes) Scatter(x, y []float64, size float64, marker string) (*Collection, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y have different lengths %d and %d", len(x), len(y))
	}
	glyph := MarkerGlyph(marker)
	if glyph == nil {
		return nil, fmt.Errorf("unknown marker %q", marker)
	}
	offsets := make([]vec.Vec2, len(x))
	for i := range x {
		offsets[i] = vec.Vec2{X: x[i], Y: y[i]}
	}
	s := math.Sqrt(size)
	col := ax.nextColor()
	c := &Collection{
		Base:        Base{Trans: ax.fig.DPIScale(), Z: 1},
		Shapes:      []*path.Data{glyph},
		Scales:      []matrix.Matrix{matrix.Scale(s, s)},
		OffsetTrans: ax.TransData(),
		Offs:        offsets,
		OffsetPos:   "screen",
		Widths:      []float64{1},
		Faces:       []color.Color{col},
		Edges:       []color.Color{col},
	}
	ax.collections = append(ax.collections, c)
	return c, nil
}

// AddCollection adds a collection. Missing transforms default to points
// for the paths and data coordinates for the offsets.
func (ax *Axes) AddCollection(c *Collection) *Collection {
	if c.Trans == nil {
		c.Trans = ax.fig.DPIScale()
	}
	if c.OffsetTrans == nil {
		c.OffsetTrans = ax.TransData()
	}
	ax.collections = append(ax.collections, c)
	return c
}

// AddImage shows img in the data rectangle given by extent
// (x0, x1, y0, y1).
func (ax *Axes) AddImage(img image.Image, extent [4]float64) *Image {
	im := &Image{
		Base: Base{Trans: ax.TransData()},
		Img:  img,
		Ext:  extent,
		ax:   ax,
	}
	ax.images = append(ax.images, im)
	return im
}

// layout chooses view limits for unset axes ranges, computes the ticks
// and updates the data transform.
func (ax *Axes) layout() {
	if !ax.xlimSet || !ax.ylimSet {
		xr, yr, err := ax.dataRange()
		if err == nil {
			if !ax.xlimSet {
				ax.xlim = widen(xr)
			}
			if !ax.ylimSet {
				ax.ylim = widen(yr)
			}
		}
		ax.xlimSet, ax.ylimSet = true, true
	}
	ax.dataStage.M = limitsMatrix(ax.xlim, ax.ylim)
	ax.xaxis.ticks = ticks(ax.xlim[0], ax.xlim[1], tickIntervals)
	ax.yaxis.ticks = ticks(ax.ylim[0], ax.ylim[1], tickIntervals)
}

var errNoData = errors.New("no data")

// dataRange returns the bounding box of everything placed in data
// coordinates.
func (ax *Axes) dataRange() (x, y [2]float64, err error) {
	x = [2]float64{math.Inf(1), math.Inf(-1)}
	y = x
	// non-finite points are gaps
	add := func(p vec.Vec2) {
		if !finite(p.X) || !finite(p.Y) {
			return
		}
		x[0], x[1] = min(x[0], p.X), max(x[1], p.X)
		y[0], y[1] = min(y[0], p.Y), max(y[1], p.Y)
	}

	data := ax.TransData()
	inData := func(t mplexporter.Transform) bool {
		return t != nil && t.ContainsBranch(data)
	}
	for _, l := range ax.lines {
		if inData(l.Trans) {
			for _, p := range l.Data {
				add(p)
			}
		}
	}
	for _, p := range ax.patches {
		if inData(p.Trans) && p.Shape != nil {
			for _, c := range p.Shape.Coords {
				add(c)
			}
		}
	}
	for _, c := range ax.collections {
		if inData(c.OffsetTrans) {
			for _, p := range c.Offs {
				add(p)
			}
		}
	}
	for _, im := range ax.images {
		add(pt(im.Ext[0], im.Ext[2]))
		add(pt(im.Ext[1], im.Ext[3]))
	}

	if x[0] > x[1] || y[0] > y[1] {
		return x, y, errNoData
	}
	return x, y, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func widen(r [2]float64) [2]float64 {
	d := r[1] - r[0]
	if d == 0 {
		return [2]float64{r[0] - 0.5, r[1] + 0.5}
	}
	return [2]float64{r[0] - autoscaleMargin*d, r[1] + autoscaleMargin*d}
}
