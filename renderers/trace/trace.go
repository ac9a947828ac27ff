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

// Package trace implements a renderer which records every call it
// receives. It is used to test exporters and to inspect what an export
// sends to a renderer.
package trace

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"

	"github.com/mpld3/mplexporter"
)

// Event kinds.
const (
	OpenFigure  = "open figure"
	CloseFigure = "close figure"
	OpenAxes    = "open axes"
	CloseAxes   = "close axes"
	Line        = "line"
	Markers     = "markers"
	Text        = "text"
	Path        = "path"
	Collection  = "collection"
	Image       = "image"
)

// Event is one recorded call. Only the fields which belong to the event
// kind are set.
type Event struct {
	Kind  string
	Space mplexporter.CoordSpace
	Data  []vec.Vec2
	Codes []mplexporter.PathCode
	Text  string

	Figure     *mplexporter.FigureProps
	Axes       *mplexporter.AxesProps
	LineStyle  *mplexporter.LineStyle
	Marker     *mplexporter.MarkerStyle
	TextStyle  *mplexporter.TextStyle
	PathStyle  *mplexporter.PathStyle
	Collection *mplexporter.PathCollection
	Image      *mplexporter.ImageData
}

// Renderer records all calls in Events.
type Renderer struct {
	Events []Event

	// Fail, if set, is returned by all drawing calls of the listed kinds.
	Fail map[string]error
}

var _ mplexporter.LineDrawer = (*Renderer)(nil)

// New returns an empty recorder.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) record(e Event) error {
	r.Events = append(r.Events, e)
	return r.Fail[e.Kind]
}

func (r *Renderer) OpenFigure(_ mplexporter.Figure, props *mplexporter.FigureProps) {
	r.Events = append(r.Events, Event{Kind: OpenFigure, Figure: props})
}

func (r *Renderer) CloseFigure(mplexporter.Figure) {
	r.Events = append(r.Events, Event{Kind: CloseFigure})
}

func (r *Renderer) OpenAxes(_ mplexporter.Axes, props *mplexporter.AxesProps) {
	r.Events = append(r.Events, Event{Kind: OpenAxes, Axes: props})
}

func (r *Renderer) CloseAxes(mplexporter.Axes) {
	r.Events = append(r.Events, Event{Kind: CloseAxes})
}

// DrawLine implements the mplexporter.LineDrawer interface.
func (r *Renderer) DrawLine(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.LineStyle) error {
	return r.record(Event{Kind: Line, Space: space, Data: data, LineStyle: style})
}

func (r *Renderer) DrawMarkers(data []vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.MarkerStyle) error {
	return r.record(Event{Kind: Markers, Space: space, Data: data, Marker: style})
}

func (r *Renderer) DrawText(text string, pos vec.Vec2, space mplexporter.CoordSpace, style *mplexporter.TextStyle) error {
	return r.record(Event{Kind: Text, Space: space, Data: []vec.Vec2{pos}, Text: text, TextStyle: style})
}

func (r *Renderer) DrawPath(data []vec.Vec2, space mplexporter.CoordSpace, codes []mplexporter.PathCode, style *mplexporter.PathStyle) error {
	return r.record(Event{Kind: Path, Space: space, Data: data, Codes: codes, PathStyle: style})
}

func (r *Renderer) DrawPathCollection(c *mplexporter.PathCollection) error {
	return r.record(Event{Kind: Collection, Space: c.OffsetSpace, Data: c.Offsets, Collection: c})
}

func (r *Renderer) DrawImage(img *mplexporter.ImageData) error {
	return r.record(Event{Kind: Image, Space: img.Space, Image: img})
}

// Filter returns the recorded events of the given kind.
func (r *Renderer) Filter(kind string) []Event {
	var res []Event
	for _, e := range r.Events {
		if e.Kind == kind {
			res = append(res, e)
		}
	}
	return res
}

// Output returns a human readable transcript of the recorded events,
// one line per event, indented by scope.
func (r *Renderer) Output() string {
	b := &strings.Builder{}
	for _, e := range r.Events {
		switch e.Kind {
		case OpenFigure:
			b.WriteString("opening figure\n")
		case CloseFigure:
			b.WriteString("closing figure\n")
		case OpenAxes:
			b.WriteString("  opening axes\n")
		case CloseAxes:
			b.WriteString("  closing axes\n")
		case Line:
			fmt.Fprintf(b, "    draw line with %d points\n", len(e.Data))
		case Markers:
			fmt.Fprintf(b, "    draw %d markers\n", len(e.Data))
		case Text:
			fmt.Fprintf(b, "    draw text '%s'\n", e.Text)
		case Path:
			fmt.Fprintf(b, "    draw path with %d vertices\n", len(e.Data))
		case Collection:
			fmt.Fprintf(b, "    draw path collection with %d offsets\n", len(e.Data))
		case Image:
			fmt.Fprintf(b, "    draw image of size %d\n", len(e.Image.Data))
		}
	}
	return b.String()
}
