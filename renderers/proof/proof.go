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

// Package proof implements a renderer which writes a figure as a
// single page grayscale PDF file.
//
// The page has the size of the figure, with one PDF unit per point.
// Lines, markers, paths and collections are drawn. Texts and images are
// not supported, and transparency is ignored.
package proof

import (
	"errors"
	"image/color"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"github.com/mpld3/mplexporter"
)

var (
	errNoAxes   = errors.New("data coordinates outside of an axes")
	errNoPage   = errors.New("no figure is open")
	errTwoPages = errors.New("only one figure per file is supported")
)

// frameWidth is the line width of the axes frame, in points.
const frameWidth = 0.8

// Renderer writes a figure to a PDF file.
//
// Since the scope methods of a renderer cannot report errors, failures
// to create or finish the file are available from Err after the export.
type Renderer struct {
	mplexporter.Base

	// FileName is the name of the PDF file to create.
	FileName string

	// Frame enables drawing a black box around every axes.
	Frame bool

	page    *document.Page
	err     error
	done    bool
	w, h    float64 // page size in points
	pxPerPt float64
	ax      *mplexporter.AxesProps
}

var _ mplexporter.LineDrawer = (*Renderer)(nil)

// New returns a renderer which writes to the given file.
func New(fileName string) *Renderer {
	return &Renderer{
		FileName: fileName,
		Frame:    true,
	}
}

// Err returns the first error which occurred while creating or closing
// the file.
func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

// OpenFigure creates the PDF file with a white page of the figure size.
func (r *Renderer) OpenFigure(_ mplexporter.Figure, props *mplexporter.FigureProps) {
	if r.page != nil || r.done {
		r.fail(errTwoPages)
		return
	}
	r.pxPerPt = props.DPI / 72
	if r.pxPerPt <= 0 {
		r.pxPerPt = 1
	}
	r.w = float64(props.WidthPx) / r.pxPerPt
	r.h = float64(props.HeightPx) / r.pxPerPt

	paper := &pdf.Rectangle{URx: r.w, URy: r.h}
	page, err := document.CreateSinglePage(r.FileName, paper, pdf.V1_7, nil)
	if err != nil {
		r.fail(err)
		return
	}
	r.page = page
}

// CloseFigure finishes the PDF file.
func (r *Renderer) CloseFigure(mplexporter.Figure) {
	if r.page == nil {
		return
	}
	r.fail(r.page.Close())
	r.page = nil
	r.done = true
}

// OpenAxes remembers the axes geometry and draws the axes frame.
func (r *Renderer) OpenAxes(_ mplexporter.Axes, props *mplexporter.AxesProps) {
	r.ax = props
	if !r.Frame || r.page == nil {
		return
	}
	b := props.Bounds
	r.page.SetStrokeColor(pdfcolor.DeviceGray(0))
	r.page.SetLineWidth(frameWidth)
	r.page.SetLineCap(graphics.LineCapButt)
	r.page.SetLineJoin(graphics.LineJoinMiter)
	r.page.SetLineDash(nil, 0)
	r.page.Rectangle(b.X0*r.w, b.Y0*r.h, b.Width*r.w, b.Height*r.h)
	r.page.Stroke()
}

// CloseAxes implements the mplexporter.Renderer interface.
func (r *Renderer) CloseAxes(mplexporter.Axes) {
	r.ax = nil
}

// toPage maps exported coordinates to PDF user space, with the origin
// in the lower left corner of the page.
func (r *Renderer) toPage(data []vec.Vec2, space mplexporter.CoordSpace) ([]vec.Vec2, error) {
	res := make([]vec.Vec2, len(data))
	switch space {
	case mplexporter.SpaceData:
		if r.ax == nil {
			return nil, errNoAxes
		}
		b := r.ax.Bounds
		dx := r.ax.XLim[1] - r.ax.XLim[0]
		dy := r.ax.YLim[1] - r.ax.YLim[0]
		if dx == 0 || dy == 0 {
			return nil, mplexporter.ErrSingular
		}
		for i, p := range data {
			fx := b.X0 + (p.X-r.ax.XLim[0])/dx*b.Width
			fy := b.Y0 + (p.Y-r.ax.YLim[0])/dy*b.Height
			res[i] = vec.Vec2{X: fx * r.w, Y: fy * r.h}
		}
	case mplexporter.SpaceAxes:
		if r.ax == nil {
			return nil, errNoAxes
		}
		b := r.ax.Bounds
		for i, p := range data {
			res[i] = vec.Vec2{X: (b.X0 + p.X*b.Width) * r.w, Y: (b.Y0 + p.Y*b.Height) * r.h}
		}
	default:
		for i, p := range data {
			res[i] = p.Mul(1 / r.pxPerPt)
		}
	}
	return res, nil
}

// gray converts an exported hex color to a PDF gray level. The bool
// result is false for absent colors.
func gray(hex string) (pdfcolor.DeviceGray, bool) {
	if hex == mplexporter.NoColor || hex == "" {
		return 0, false
	}
	c, err := mplexporter.ParseColor(hex)
	if err != nil || c == nil {
		return 0, false
	}
	g := color.GrayModel.Convert(c).(color.Gray)
	return pdfcolor.DeviceGray(float64(g.Y) / 255), true
}

// outline appends the path to the current PDF path. Quadratic segments
// are converted to cubic ones.
func (r *Renderer) outline(pts []vec.Vec2, codes []mplexporter.PathCode) {
	var cur vec.Vec2
	i := 0
	for _, code := range codes {
		switch code {
		case mplexporter.CodeMoveTo:
			if i >= len(pts) {
				return
			}
			cur = pts[i]
			r.page.MoveTo(cur.X, cur.Y)
			i++
		case mplexporter.CodeLineTo:
			if i >= len(pts) {
				return
			}
			cur = pts[i]
			r.page.LineTo(cur.X, cur.Y)
			i++
		case mplexporter.CodeQuadTo:
			if i+2 > len(pts) {
				return
			}
			ctrl, end := pts[i], pts[i+1]
			c1 := cur.Add(ctrl.Sub(cur).Mul(2.0 / 3))
			c2 := end.Add(ctrl.Sub(end).Mul(2.0 / 3))
			r.page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			cur = end
			i += 2
		case mplexporter.CodeCubeTo:
			if i+3 > len(pts) {
				return
			}
			c1, c2, end := pts[i], pts[i+1], pts[i+2]
			r.page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			cur = end
			i += 3
		case mplexporter.CodeClose:
			r.page.ClosePath()
		}
	}
}

// stroke describes how the outline of a path is painted.
type stroke struct {
	color string
	width float64 // points
	dash  string
	cap   graphics.LineCapStyle
	join  graphics.LineJoinStyle
}

func (r *Renderer) paint(pts []vec.Vec2, codes []mplexporter.PathCode, face string, s stroke) {
	if len(pts) == 0 {
		return
	}
	if g, ok := gray(face); ok {
		r.page.SetFillColor(g)
		r.outline(pts, codes)
		r.page.Fill()
	}
	if g, ok := gray(s.color); ok && s.width > 0 {
		r.page.SetStrokeColor(g)
		r.page.SetLineWidth(s.width)
		r.page.SetLineCap(s.cap)
		r.page.SetLineJoin(s.join)
		r.page.SetLineDash(mplexporter.DashSequence(s.dash), 0)
		r.outline(pts, codes)
		r.page.Stroke()
	}
}

// DrawLine implements the mplexporter.LineDrawer interface.
func (r *Renderer) DrawLine(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.LineStyle) error {
	if r.page == nil {
		return errNoPage
	}
	pts, err := r.toPage(data, space)
	if err != nil {
		return err
	}
	if len(pts) < 2 {
		return nil
	}
	codes := make([]mplexporter.PathCode, len(pts))
	for i := range codes {
		codes[i] = mplexporter.CodeLineTo
	}
	codes[0] = mplexporter.CodeMoveTo
	r.paint(pts, codes, mplexporter.NoColor, stroke{
		color: style.Color,
		width: style.LineWidth,
		dash:  style.DashArray,
		cap:   graphics.LineCapButt,
		join:  graphics.LineJoinRound,
	})
	return nil
}

// DrawMarkers implements the mplexporter.Renderer interface.
func (r *Renderer) DrawMarkers(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.MarkerStyle) error {
	if r.page == nil {
		return errNoPage
	}
	centers, err := r.toPage(data, space)
	if err != nil {
		return err
	}
	// the glyph is given in points with the y-axis pointing down
	glyph := make([]vec.Vec2, len(style.MarkerPath))
	for _, c := range centers {
		for i, p := range style.MarkerPath {
			glyph[i] = vec.Vec2{X: c.X + p.X, Y: c.Y - p.Y}
		}
		r.paint(glyph, style.MarkerCodes, style.FaceColor, stroke{
			color: style.EdgeColor,
			width: style.EdgeWidth,
			cap:   graphics.LineCapButt,
			join:  graphics.LineJoinMiter,
		})
	}
	return nil
}

// DrawPath implements the mplexporter.Renderer interface.
func (r *Renderer) DrawPath(data []vec.Vec2, space mplexporter.CoordSpace, codes []mplexporter.PathCode, style *mplexporter.PathStyle) error {
	if r.page == nil {
		return errNoPage
	}
	pts, err := r.toPage(data, space)
	if err != nil {
		return err
	}
	r.paint(pts, codes, style.FaceColor, stroke{
		color: style.EdgeColor,
		width: style.EdgeWidth,
		dash:  style.DashArray,
		cap:   style.Cap,
		join:  style.Join,
	})
	return nil
}

// DrawPathCollection implements the mplexporter.Renderer interface. Path
// i is drawn at offset i with the i-th path transform and style entry,
// where all lists are cycled.
func (r *Renderer) DrawPathCollection(c *mplexporter.PathCollection) error {
	if r.page == nil {
		return errNoPage
	}
	if len(c.Paths) == 0 {
		return nil
	}
	offsets, err := r.toPage(c.Offsets, c.OffsetSpace)
	if err != nil {
		return err
	}

	n := max(len(c.Offsets), len(c.Paths))
	for i := range n {
		p := c.Paths[i%len(c.Paths)]
		m := mplexporter.Identity
		if len(c.PathTransforms) > 0 {
			m = mplexporter.AffineTransform{M: c.PathTransforms[i%len(c.PathTransforms)]}
		}
		var off vec.Vec2
		if len(offsets) > 0 {
			off = offsets[i%len(offsets)]
		}
		// the paths are in display pixels
		pts := make([]vec.Vec2, len(p.Vertices))
		for k, v := range p.Vertices {
			pts[k] = m.Apply(v).Mul(1 / r.pxPerPt).Add(off)
		}
		r.paint(pts, p.Codes,
			cycle(c.Style.FaceColors, i, mplexporter.NoColor),
			stroke{
				color: cycle(c.Style.EdgeColors, i, mplexporter.NoColor),
				width: cycle(c.Style.LineWidths, i, 1),
				cap:   graphics.LineCapButt,
				join:  graphics.LineJoinMiter,
			})
	}
	return nil
}

func cycle[T any](list []T, i int, def T) T {
	if len(list) == 0 {
		return def
	}
	return list[i%len(list)]
}
