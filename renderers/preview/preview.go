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

// Package preview implements a renderer which draws a grayscale thumbnail
// of a figure.
//
// Lines, markers, paths, collections and images are drawn; texts are not.
// Strokes use butt caps and no joins.
package preview

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"

	"github.com/mpld3/mplexporter"
)

// defaultFlatness is the default curve approximation accuracy in pixels.
const defaultFlatness = 0.25

var errNoAxes = errors.New("data coordinates outside of an axes")

// Renderer draws a figure into a grayscale image.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	mplexporter.Base

	// Flatness controls curve approximation accuracy in device pixels.
	Flatness float64

	// Frame enables drawing a black box around every axes.
	Frame bool

	// Canvas holds the image. It is allocated by OpenFigure.
	Canvas *image.Gray

	z       *vector.Rasterizer
	w, h    int
	pxPerPt float64
	ax      *mplexporter.AxesProps
}

var _ mplexporter.LineDrawer = (*Renderer)(nil)

// New returns a preview renderer with default settings.
func New() *Renderer {
	return &Renderer{
		Flatness: defaultFlatness,
		Frame:    true,
	}
}

// OpenFigure allocates a white canvas of the figure size.
func (r *Renderer) OpenFigure(_ mplexporter.Figure, props *mplexporter.FigureProps) {
	r.w, r.h = max(props.WidthPx, 1), max(props.HeightPx, 1)
	r.pxPerPt = props.DPI / 72
	r.Canvas = image.NewGray(image.Rect(0, 0, r.w, r.h))
	draw.Draw(r.Canvas, r.Canvas.Bounds(), image.White, image.Point{}, draw.Src)
	r.z = vector.NewRasterizer(r.w, r.h)
}

// OpenAxes remembers the axes geometry and draws the axes frame.
func (r *Renderer) OpenAxes(_ mplexporter.Axes, props *mplexporter.AxesProps) {
	r.ax = props
	if !r.Frame {
		return
	}
	b := props.Bounds
	box := []vec.Vec2{
		{X: b.X0, Y: b.Y0},
		{X: b.X0 + b.Width, Y: b.Y0},
		{X: b.X0 + b.Width, Y: b.Y0 + b.Height},
		{X: b.X0, Y: b.Y0 + b.Height},
		{X: b.X0, Y: b.Y0},
	}
	for i, p := range box {
		box[i] = vec.Vec2{X: p.X * float64(r.w), Y: float64(r.h) - p.Y*float64(r.h)}
	}
	r.strokePaths([]subpath{{pts: box, closed: true}}, 1, nil, color.Black, 1)
}

// CloseAxes implements the mplexporter.Renderer interface.
func (r *Renderer) CloseAxes(mplexporter.Axes) {
	r.ax = nil
}

// toDevice maps exported coordinates to canvas pixels.
func (r *Renderer) toDevice(data []vec.Vec2, space mplexporter.CoordSpace) ([]vec.Vec2, error) {
	res := make([]vec.Vec2, len(data))
	h := float64(r.h)
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
			res[i] = vec.Vec2{X: fx * float64(r.w), Y: h - fy*h}
		}
	case mplexporter.SpaceAxes:
		if r.ax == nil {
			return nil, errNoAxes
		}
		b := r.ax.Bounds
		for i, p := range data {
			fx := b.X0 + p.X*b.Width
			fy := b.Y0 + p.Y*b.Height
			res[i] = vec.Vec2{X: fx * float64(r.w), Y: h - fy*h}
		}
	default:
		for i, p := range data {
			res[i] = vec.Vec2{X: p.X, Y: h - p.Y}
		}
	}
	return res, nil
}

// paint returns the paint for an exported hex color, or nil for absent
// colors.
func paint(hex string, alpha float64) (image.Image, error) {
	if hex == mplexporter.NoColor || hex == "" {
		return nil, nil
	}
	c, err := mplexporter.ParseColor(hex)
	if err != nil || c == nil {
		return nil, err
	}
	g := color.GrayModel.Convert(c).(color.Gray)
	a := uint8(255 * min(max(alpha, 0), 1))
	return image.NewUniform(color.NRGBA{R: g.Y, G: g.Y, B: g.Y, A: a}), nil
}

// fillPaths fills closed polylines.
func (r *Renderer) fillPaths(paths []subpath, src image.Image) {
	if src == nil || len(paths) == 0 {
		return
	}
	r.z.Reset(r.w, r.h)
	for _, sp := range paths {
		r.z.MoveTo(float32(sp.pts[0].X), float32(sp.pts[0].Y))
		for _, p := range sp.pts[1:] {
			r.z.LineTo(float32(p.X), float32(p.Y))
		}
		r.z.ClosePath()
	}
	r.z.Draw(r.Canvas, r.Canvas.Bounds(), src, image.Point{})
}

// strokePaths strokes polylines with the given width in pixels.
func (r *Renderer) strokePaths(paths []subpath, width float64, dash []float64, c color.Color, alpha float64) {
	quads := outline(applyDash(paths, dash), width)
	if len(quads) == 0 {
		return
	}
	r.z.Reset(r.w, r.h)
	for _, q := range quads {
		r.z.MoveTo(float32(q[0].X), float32(q[0].Y))
		for _, p := range q[1:] {
			r.z.LineTo(float32(p.X), float32(p.Y))
		}
		r.z.ClosePath()
	}
	g := color.GrayModel.Convert(c).(color.Gray)
	a := uint8(255 * min(max(alpha, 0), 1))
	r.z.Draw(r.Canvas, r.Canvas.Bounds(), image.NewUniform(color.NRGBA{R: g.Y, G: g.Y, B: g.Y, A: a}), image.Point{})
}

func (r *Renderer) stroke(paths []subpath, hex string, widthPt float64, dash string, alpha float64) error {
	if hex == mplexporter.NoColor || widthPt <= 0 {
		return nil
	}
	c, err := mplexporter.ParseColor(hex)
	if err != nil || c == nil {
		return err
	}
	seq := mplexporter.DashSequence(dash)
	for i := range seq {
		seq[i] *= r.pxPerPt
	}
	r.strokePaths(paths, widthPt*r.pxPerPt, seq, c, alpha)
	return nil
}

// DrawLine implements the mplexporter.LineDrawer interface.
func (r *Renderer) DrawLine(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.LineStyle) error {
	pts, err := r.toDevice(data, space)
	if err != nil {
		return err
	}
	if len(pts) < 2 {
		return nil
	}
	return r.stroke([]subpath{{pts: pts}}, style.Color, style.LineWidth, style.DashArray, style.Alpha)
}

// DrawMarkers implements the mplexporter.Renderer interface.
func (r *Renderer) DrawMarkers(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.MarkerStyle) error {
	centers, err := r.toDevice(data, space)
	if err != nil {
		return err
	}
	// The glyph is given in points with the y-axis pointing down, like
	// the canvas.
	glyph := make([]vec.Vec2, len(style.MarkerPath))
	for i, p := range style.MarkerPath {
		glyph[i] = p.Mul(r.pxPerPt)
	}

	var all []subpath
	for _, c := range centers {
		moved := make([]vec.Vec2, len(glyph))
		for i, p := range glyph {
			moved[i] = p.Add(c)
		}
		all = append(all, flatten(moved, style.MarkerCodes, r.Flatness)...)
	}
	return r.fillAndStroke(all, style.FaceColor, style.EdgeColor, style.EdgeWidth, "", style.Alpha)
}

func (r *Renderer) fillAndStroke(paths []subpath, face, edge string, widthPt float64, dash string, alpha float64) error {
	src, err := paint(face, alpha)
	if err != nil {
		return err
	}
	var closed []subpath
	for _, sp := range paths {
		if sp.closed {
			closed = append(closed, sp)
		}
	}
	r.fillPaths(closed, src)
	return r.stroke(paths, edge, widthPt, dash, alpha)
}

// DrawPath implements the mplexporter.Renderer interface.
func (r *Renderer) DrawPath(data []vec.Vec2, space mplexporter.CoordSpace, codes []mplexporter.PathCode, style *mplexporter.PathStyle) error {
	pts, err := r.toDevice(data, space)
	if err != nil {
		return err
	}
	paths := flatten(pts, codes, r.Flatness)
	return r.fillAndStroke(paths, style.FaceColor, style.EdgeColor, style.EdgeWidth, style.DashArray, style.Alpha)
}

// DrawPathCollection implements the mplexporter.Renderer interface. Path
// i is drawn at offset i with the i-th path transform and style entry,
// where all lists are cycled.
func (r *Renderer) DrawPathCollection(c *mplexporter.PathCollection) error {
	if len(c.Paths) == 0 {
		return nil
	}
	offsets, err := r.toDevice(c.Offsets, c.OffsetSpace)
	if err != nil {
		return err
	}
	n := max(len(c.Offsets), len(c.Paths))
	for i := range n {
		p := c.Paths[i%len(c.Paths)]
		vertices := make([]vec.Vec2, len(p.Vertices))
		copy(vertices, p.Vertices)
		if len(c.PathTransforms) > 0 {
			m := c.PathTransforms[i%len(c.PathTransforms)]
			for k, v := range vertices {
				vertices[k] = mplexporter.AffineTransform{M: m}.Apply(v)
			}
		}
		// the paths are in display units with the y-axis pointing up
		for k, v := range vertices {
			vertices[k] = vec.Vec2{X: v.X, Y: -v.Y}
		}
		if len(offsets) > 0 {
			off := offsets[i%len(offsets)]
			for k := range vertices {
				vertices[k] = vertices[k].Add(off)
			}
		}

		paths := flatten(vertices, p.Codes, r.Flatness)
		err := r.fillAndStroke(paths,
			cycle(c.Style.FaceColors, i, mplexporter.NoColor),
			cycle(c.Style.EdgeColors, i, mplexporter.NoColor),
			cycle(c.Style.LineWidths, i, 1),
			"", c.Style.Alpha)
		if err != nil {
			return err
		}
	}
	return nil
}

func cycle[T any](list []T, i int, def T) T {
	if len(list) == 0 {
		return def
	}
	return list[i%len(list)]
}

// DrawImage implements the mplexporter.Renderer interface. The image is
// scaled to its extent.
func (r *Renderer) DrawImage(img *mplexporter.ImageData) error {
	raw, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		return fmt.Errorf("image data: %w", err)
	}
	src, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("image data: %w", err)
	}

	ext := img.Extent
	corners, err := r.toDevice([]vec.Vec2{{X: ext[0], Y: ext[2]}, {X: ext[1], Y: ext[3]}}, img.Space)
	if err != nil {
		return err
	}
	dst := image.Rect(
		int(min(corners[0].X, corners[1].X)+0.5),
		int(min(corners[0].Y, corners[1].Y)+0.5),
		int(max(corners[0].X, corners[1].X)+0.5),
		int(max(corners[0].Y, corners[1].Y)+0.5),
	)
	if dst.Empty() {
		return nil
	}
	opts := &draw.Options{}
	if img.Style != nil && img.Style.Alpha < 1 {
		opts.SrcMask = image.NewUniform(color.Alpha{A: uint8(255 * max(img.Style.Alpha, 0))})
	}
	draw.ApproxBiLinear.Scale(r.Canvas, dst, src, src.Bounds(), draw.Over, opts)
	return nil
}

// Image returns the canvas.
func (r *Renderer) Image() *image.Gray {
	return r.Canvas
}
