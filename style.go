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
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// NoColor is the hex value reported for absent colors.
const NoColor = "none"

// RGBA is a non-premultiplied color with channels in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: uint16(clamp01(c.R) * 0xffff),
		G: uint16(clamp01(c.G) * 0xffff),
		B: uint16(clamp01(c.B) * 0xffff),
		A: uint16(clamp01(c.A) * 0xffff),
	}.RGBA()
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}

// ColorToHex formats a color as "#RRGGBB". Each channel is scaled to
// [0, 255] and rounded toward zero. Transparency is ignored. A nil color
// gives NoColor.
func ColorToHex(c color.Color) string {
	switch c := c.(type) {
	case nil:
		return NoColor
	case RGBA:
		return fmt.Sprintf("#%02X%02X%02X",
			int(255*clamp01(c.R)), int(255*clamp01(c.G)), int(255*clamp01(c.B)))
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

var shortColors = map[string]RGBA{
	"b": {0, 0, 1, 1},
	"g": {0, 0.5, 0, 1},
	"r": {1, 0, 0, 1},
	"c": {0, 0.75, 0.75, 1},
	"m": {0.75, 0, 0.75, 1},
	"y": {0.75, 0.75, 0, 1},
	"k": {0, 0, 0, 1},
	"w": {1, 1, 1, 1},
}

// ParseColor converts a color specification in the notation of the host
// plotting library into a color. Accepted are one-letter codes like "r",
// color names, hex strings with 3, 6 or 8 digits, and grey levels between
// "0" and "1". The specification "none" gives a nil color.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	low := strings.ToLower(s)
	switch {
	case low == "none":
		return nil, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	}
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[low]; ok {
		return c, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 && v <= 1 {
		return RGBA{v, v, v, 1}, nil
	}
	return nil, fmt.Errorf("invalid color %q", s)
}

func parseHex(s string) (color.Color, error) {
	x := strings.TrimPrefix(s, "#")
	if len(x) == 3 {
		x = string([]byte{x[0], x[0], x[1], x[1], x[2], x[2]})
	}
	if len(x) == 6 {
		x += "ff"
	}
	if len(x) != 8 {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(x, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// dashStyles maps the dash style names of the host to SVG dash arrays.
var dashStyles = map[string]string{
	"solid":   "10,0",
	"-":       "10,0",
	"dashed":  "6,6",
	"--":      "6,6",
	"dotted":  "2,2",
	":":       "2,2",
	"dashdot": "4,4,2,4",
	"-.":      "4,4,2,4",
	"":        "none",
	" ":       "none",
	"None":    "none",
	"none":    "none",
}

// SolidDash is the dash array of a solid line.
const SolidDash = "10,0"

// DashArray returns the SVG dash array for a dash style name. For unknown
// names, the solid dash array is returned and ok is false.
func DashArray(style string) (dash string, ok bool) {
	dash, ok = dashStyles[style]
	if !ok {
		return SolidDash, false
	}
	return dash, true
}

// formatDashSeq joins an explicit dash sequence with commas.
func formatDashSeq(seq []float64) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// DashSequence converts a dash array into a list of on and off lengths.
// Solid strokes and malformed arrays give nil.
func DashSequence(dash string) []float64 {
	if dash == "" || dash == "none" || dash == SolidDash {
		return nil
	}
	var res []float64
	total := 0.0
	for _, f := range strings.Split(dash, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil || v < 0 {
			return nil
		}
		res = append(res, v)
		total += v
	}
	if total <= 0 {
		return nil
	}
	return res
}

// LineStyle describes the stroke of a line.
type LineStyle struct {
	Label     string  `json:"label"`
	Alpha     float64 `json:"alpha"`
	Color     string  `json:"color"`
	LineWidth float64 `json:"linewidth"`
	DashArray string  `json:"dasharray"`
	ZOrder    float64 `json:"zorder"`
}

// MarkerStyle describes the markers drawn at the vertices of a line.
type MarkerStyle struct {
	Label     string  `json:"label"`
	Alpha     float64 `json:"alpha"`
	FaceColor string  `json:"facecolor"`
	EdgeColor string  `json:"edgecolor"`
	EdgeWidth float64 `json:"edgewidth"`
	Marker    string  `json:"marker"`

	// MarkerPath is the marker glyph in points, centred on the origin,
	// with the y-axis pointing down.
	MarkerPath  []vec.Vec2 `json:"markerpath"`
	MarkerCodes []PathCode `json:"markercodes"`
	ZOrder      float64    `json:"zorder"`
}

// TextStyle describes a text label.
type TextStyle struct {
	Alpha    float64 `json:"alpha"`
	FontSize float64 `json:"fontsize"`
	Color    string  `json:"color"`
	HAlign   string  `json:"halign"`
	VAlign   string  `json:"valign"`
	Rotation float64 `json:"rotation"`
	ZOrder   float64 `json:"zorder"`
}

// PathStyle describes a filled and stroked path.
type PathStyle struct {
	Alpha     float64                `json:"alpha"`
	EdgeColor string                 `json:"edgecolor"`
	FaceColor string                 `json:"facecolor"`
	EdgeWidth float64                `json:"edgewidth"`
	DashArray string                 `json:"dasharray"`
	Cap       graphics.LineCapStyle  `json:"-"`
	Join      graphics.LineJoinStyle `json:"-"`
	ZOrder    float64                `json:"zorder"`
}

// CollectionStyle holds the per-collection style aggregates. The slices
// are cycled over the paths of the collection.
type CollectionStyle struct {
	LineWidths []float64 `json:"linewidth"`
	FaceColors []string  `json:"facecolor"`
	EdgeColors []string  `json:"edgecolor"`
	Alpha      float64   `json:"alpha"`
	ZOrder     float64   `json:"zorder"`
}

// ImageStyle describes a raster image.
type ImageStyle struct {
	Alpha  float64 `json:"alpha"`
	ZOrder float64 `json:"zorder"`
}

// alphaOf returns the opacity of an artist, defaulting to fully opaque.
func alphaOf(a Artist) float64 {
	if alpha, ok := a.Alpha(); ok {
		return alpha
	}
	return 1
}

// dashOf returns the dash array for a stroke. The bool result is false if
// the style name was not recognised.
func dashOf(style string, seq []float64) (string, bool) {
	if seq != nil {
		return formatDashSeq(seq), true
	}
	return DashArray(style)
}

// GetLineStyle extracts the stroke style of a line. The bool result is
// false if the dash style was not recognised and solid was used instead.
func GetLineStyle(l Line) (*LineStyle, bool) {
	dash, ok := dashOf(l.LineStyle(), l.DashSeq())
	return &LineStyle{
		Label:     l.Label(),
		Alpha:     alphaOf(l),
		Color:     ColorToHex(l.Color()),
		LineWidth: l.LineWidth(),
		DashArray: dash,
		ZOrder:    l.ZOrder(),
	}, ok
}

// GetMarkerStyle extracts the marker style of a line.
func GetMarkerStyle(l Line) *MarkerStyle {
	size := l.MarkerSize()
	glyph := AffineTransform{M: matrix.Scale(size, -size)}
	vertices, codes := FlattenPath(l.MarkerPath(), glyph, false)
	return &MarkerStyle{
		Label:       l.Label(),
		Alpha:       alphaOf(l),
		FaceColor:   ColorToHex(l.MarkerFaceColor()),
		EdgeColor:   ColorToHex(l.MarkerEdgeColor()),
		EdgeWidth:   l.MarkerEdgeWidth(),
		Marker:      l.Marker(),
		MarkerPath:  vertices,
		MarkerCodes: codes,
		ZOrder:      l.ZOrder(),
	}
}

// GetTextStyle extracts the style of a text label.
func GetTextStyle(t Text) *TextStyle {
	return &TextStyle{
		Alpha:    alphaOf(t),
		FontSize: t.FontSize(),
		Color:    ColorToHex(t.Color()),
		HAlign:   t.HAlign(),
		VAlign:   t.VAlign(),
		Rotation: t.Rotation(),
		ZOrder:   t.ZOrder(),
	}
}

// GetPathStyle extracts the style of a patch. The bool result is false if
// the dash style was not recognised.
func GetPathStyle(p Patch) (*PathStyle, bool) {
	face := NoColor
	if p.Fill() {
		face = ColorToHex(p.FaceColor())
	}
	dash, ok := dashOf(p.LineStyle(), p.DashSeq())
	return &PathStyle{
		Alpha:     alphaOf(p),
		EdgeColor: ColorToHex(p.EdgeColor()),
		FaceColor: face,
		EdgeWidth: p.LineWidth(),
		DashArray: dash,
		Cap:       p.CapStyle(),
		Join:      p.JoinStyle(),
		ZOrder:    p.ZOrder(),
	}, ok
}

// GetCollectionStyle extracts the style aggregates of a collection.
func GetCollectionStyle(c Collection) *CollectionStyle {
	return &CollectionStyle{
		LineWidths: c.LineWidths(),
		FaceColors: hexColors(c.FaceColors()),
		EdgeColors: hexColors(c.EdgeColors()),
		Alpha:      alphaOf(c),
		ZOrder:     c.ZOrder(),
	}
}

func hexColors(cols []color.Color) []string {
	res := make([]string, len(cols))
	for i, c := range cols {
		res[i] = ColorToHex(c)
	}
	return res
}
