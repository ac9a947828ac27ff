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

// Package mplexporter walks the object graph of a plotting figure and
// sends the normalised geometry and style of every drawable to a
// Renderer.
package mplexporter

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"seehuhn.de/go/geom/vec"
)

// Exporter crawls a figure and calls the methods of a Renderer.
//
// An Exporter can be reused for several figures, but each run needs its
// own renderer instance.
type Exporter struct {
	Renderer Renderer

	// CloseFigure asks the host to release the figure once its layout
	// has been computed. This only has an effect for figures which
	// implement Closer.
	CloseFigure bool

	// Logger receives warnings about drawables which could not be
	// exported. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Simplify merges collinear line segments of patches and
	// collections.
	Simplify bool

	// MaxImagePixels limits the size of exported raster images.
	// Larger images are scaled down before encoding. Zero means no limit.
	MaxImagePixels int
}

// NewExporter returns an Exporter which closes figures after layout.
func NewExporter(r Renderer) *Exporter {
	return &Exporter{
		Renderer:    r,
		CloseFigure: true,
	}
}

// Kind identifies the variant of a drawable.
type Kind int

const (
	KindLine Kind = iota
	KindText
	KindPatch
	KindCollection
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindText:
		return "text"
	case KindPatch:
		return "patch"
	case KindCollection:
		return "collection"
	case KindImage:
		return "image"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Classify returns the kind of an artist. The second return value is
// false if the artist is none of the supported drawables.
func Classify(a Artist) (Kind, bool) {
	switch a.(type) {
	case Line:
		return KindLine, true
	case Text:
		return KindText, true
	case Patch:
		return KindPatch, true
	case Collection:
		return KindCollection, true
	case Image:
		return KindImage, true
	default:
		return 0, false
	}
}

type drawable struct {
	kind   Kind
	artist Artist
}

// Run exports the figure.
func (e *Exporter) Run(fig Figure) error {
	if err := fig.Draw(); err != nil {
		return fmt.Errorf("figure layout: %w", err)
	}
	if e.CloseFigure {
		if c, ok := fig.(Closer); ok {
			if err := c.Close(); err != nil {
				e.logger().Warn("cannot close figure", "error", err)
			}
		}
	}
	return e.crawlFigure(fig)
}

func (e *Exporter) crawlFigure(fig Figure) error {
	w, h := fig.Size()
	dpi := fig.DPI()
	props := &FigureProps{
		Width:    w,
		Height:   h,
		DPI:      dpi,
		WidthPx:  int(w * dpi),
		HeightPx: int(h * dpi),
	}

	s := &Session{Renderer: e.Renderer, Logger: e.logger()}
	return s.Figure(fig, props, func() error {
		for i, ax := range fig.Axes() {
			if err := e.crawlAxes(s, i+1, ax); err != nil {
				return err
			}
		}
		return nil
	})
}

// AxesProperties collects the properties of an axes. The index counts the
// axes of the figure, starting at 1.
func AxesProperties(index int, ax Axes) *AxesProps {
	xlim, ylim := ax.Limits()
	pos := ax.Position()
	xaxis, yaxis := ax.XAxis(), ax.YAxis()
	return &AxesProps{
		Index:  index,
		XLim:   xlim,
		YLim:   ylim,
		XLabel: textOf(ax.XLabel()),
		YLabel: textOf(ax.YLabel()),
		Title:  ax.Title(),
		Bounds: Bounds{
			X0:     pos.LLx,
			Y0:     pos.LLy,
			Width:  pos.URx - pos.LLx,
			Height: pos.URy - pos.LLy,
		},
		XGrid:     hasGrid(xaxis),
		YGrid:     hasGrid(yaxis),
		Navigable: ax.Navigable(),
		XAxis:     axisProperties("bottom", xaxis),
		YAxis:     axisProperties("left", yaxis),
	}
}

func axisProperties(position string, a Axis) AxisProps {
	return AxisProps{
		Position:   position,
		Scale:      a.Scale(),
		TickValues: a.TickValues(),
		TickLabels: a.TickLabels(),
		Grid:       hasGrid(a),
		Visible:    a.Visible(),
	}
}

func hasGrid(a Axis) bool {
	return a.GridOn() && a.GridLines() > 0
}

func textOf(t Text) string {
	if t == nil {
		return ""
	}
	return t.Text()
}

func (e *Exporter) crawlAxes(s *Session, index int, ax Axes) error {
	props := AxesProperties(index, ax)
	return s.Axes(ax, props, func() error {
		for _, d := range drawables(ax) {
			err := e.draw(ax, d)
			switch {
			case err == nil:
				// pass
			case errors.Is(err, ErrNoResidual), errors.Is(err, ErrSingular):
				return fmt.Errorf("axes %d: %s: %w", index, d.kind, err)
			case errors.Is(err, ErrNotImplemented):
				e.logger().Debug("drawable not supported by renderer",
					"axes", index, "kind", d.kind)
			default:
				e.logger().Warn("cannot export drawable",
					"axes", index, "kind", d.kind, "error", err)
			}
		}
		return nil
	})
}

// drawables lists the drawables of an axes in export order: lines, texts,
// text-like artists, patches, collections and images. The axis labels are
// left out, since they are part of the axes properties.
func drawables(ax Axes) []drawable {
	var res []drawable
	for _, l := range ax.Lines() {
		res = append(res, drawable{KindLine, l})
	}

	xlabel, ylabel := ax.XLabel(), ax.YLabel()
	addText := func(t Text) {
		if sameText(t, xlabel) || sameText(t, ylabel) {
			return
		}
		res = append(res, drawable{KindText, t})
	}
	for _, t := range ax.Texts() {
		addText(t)
	}
	for _, a := range ax.Artists() {
		if kind, ok := Classify(a); ok && kind == KindText {
			addText(a.(Text))
		}
	}

	for _, p := range ax.Patches() {
		res = append(res, drawable{KindPatch, p})
	}
	for _, c := range ax.Collections() {
		res = append(res, drawable{KindCollection, c})
	}
	for _, im := range ax.Images() {
		res = append(res, drawable{KindImage, im})
	}
	return res
}

func (e *Exporter) draw(ax Axes, d drawable) error {
	switch d.kind {
	case KindLine:
		return e.drawLine(ax, d.artist.(Line))
	case KindText:
		return e.drawText(ax, d.artist.(Text))
	case KindPatch:
		return e.drawPatch(ax, d.artist.(Patch))
	case KindCollection:
		return e.drawCollection(ax, d.artist.(Collection))
	case KindImage:
		return e.drawImage(ax, d.artist.(Image))
	default:
		panic("unreachable")
	}
}

// isNone reports whether a line or marker style disables drawing.
func isNone(style string) bool {
	switch style {
	case "", " ", "None", "none":
		return true
	default:
		return false
	}
}

func (e *Exporter) drawLine(ax Axes, l Line) error {
	res, err := ResolveTransform(l.Transform(), ax, l.XYData())
	if err != nil {
		return err
	}

	var errs []error
	if !isNone(l.LineStyle()) {
		style, ok := GetLineStyle(l)
		if !ok {
			e.warnDash(l.LineStyle())
		}
		errs = append(errs, DrawLine(e.Renderer, res.Data, res.Space, style))
	}
	if !isNone(l.Marker()) {
		style := GetMarkerStyle(l)
		errs = append(errs, e.Renderer.DrawMarkers(res.Data, res.Space, style))
	}
	return errors.Join(errs...)
}

func (e *Exporter) drawText(ax Axes, t Text) error {
	content := t.Text()
	if content == "" {
		return nil
	}
	res, err := ResolveTransform(t.Transform(), ax, []vec.Vec2{t.Position()})
	if err != nil {
		return err
	}
	return e.Renderer.DrawText(content, res.Data[0], res.Space, GetTextStyle(t))
}

func (e *Exporter) drawPatch(ax Axes, p Patch) error {
	res, err := ResolveTransform(p.Transform(), ax, nil)
	if err != nil {
		return err
	}
	vertices, codes := FlattenPath(p.Path(), res.Transform, e.Simplify)
	style, ok := GetPathStyle(p)
	if !ok {
		e.warnDash(p.LineStyle())
	}
	return e.Renderer.DrawPath(vertices, res.Space, codes, style)
}

func (e *Exporter) drawCollection(ax Axes, c Collection) error {
	var order OffsetOrder
	switch pos := c.OffsetPosition(); pos {
	case "data":
		order = OffsetBefore
	case "screen":
		order = OffsetAfter
	default:
		return fmt.Errorf("unknown offset position %q", pos)
	}

	offsets, err := ResolveTransform(c.OffsetTransform(), ax, c.Offsets())
	if err != nil {
		return err
	}
	paths, err := ResolveTransform(c.Transform(), ax, nil)
	if err != nil {
		return err
	}

	pc := &PathCollection{
		PathSpace:      paths.Space,
		PathTransforms: c.PathTransforms(),
		Offsets:        offsets.Data,
		OffsetSpace:    offsets.Space,
		OffsetOrder:    order,
		Style:          GetCollectionStyle(c),
	}
	for _, p := range c.Paths() {
		vertices, codes := FlattenPath(p, paths.Transform, e.Simplify)
		pc.Paths = append(pc.Paths, CollectionPath{Vertices: vertices, Codes: codes})
	}
	return e.Renderer.DrawPathCollection(pc)
}

func (e *Exporter) warnDash(style string) {
	e.logger().Warn("dash style not understood: defaulting to solid",
		"style", style)
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// sameText reports whether a and b are the same artist. Values of
// non-comparable types are never the same.
func sameText(a, b Text) bool {
	if a == nil || b == nil || !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}
