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

package mplexporter_test

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/mpld3/mplexporter"
	"github.com/mpld3/mplexporter/renderers/trace"
	"github.com/mpld3/mplexporter/scene"
)

// BenchmarkExportLine measures the export of a single line with many
// vertices.
func BenchmarkExportLine(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			fig := scene.New(6, 4, 100)
			ax := fig.Subplots(1, 1)[0]
			y := make([]float64, size)
			for i := range y {
				y[i] = math.Sin(float64(i) / 10)
			}
			if _, err := ax.Plot(nil, y, "b-o"); err != nil {
				b.Fatal(err)
			}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				e := mplexporter.NewExporter(trace.New())
				e.Logger = logger
				if err := e.Run(fig); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkExportRing measures the export of an "O" shaped patch, with
// and without simplification.
func BenchmarkExportRing(b *testing.B) {
	for _, simplify := range []bool{false, true} {
		b.Run(fmt.Sprintf("simplify=%t", simplify), func(b *testing.B) {
			fig := scene.New(6, 6, 100)
			ax := fig.Subplots(1, 1)[0]
			ax.AddPatch(mplexporter.CollectPath(makeOPath(0, 0, 10, 6, 64)), color.Black)
			ax.SetXLim(-12, 12)
			ax.SetYLim(-12, 12)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				e := mplexporter.NewExporter(trace.New())
				e.Logger = logger
				e.Simplify = simplify
				if err := e.Run(fig); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// makeOPath creates an "O" shape made of two polygons with n vertices
// each. The outer polygon runs counter-clockwise, the inner one clockwise.
func makeOPath(cx, cy, outerR, innerR float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !addPolygon(yield, cx, cy, outerR, n, false) {
			return
		}
		addPolygon(yield, cx, cy, innerR, n, true)
	}
}

func addPolygon(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, n int, clockwise bool) bool {
	var buf [1]vec.Vec2 // reused for each yield

	sign := 1.0
	if clockwise {
		sign = -1
	}
	for i := range n {
		phi := sign * 2 * math.Pi * float64(i) / float64(n)
		buf[0] = vec.Vec2{X: cx + r*math.Cos(phi), Y: cy + r*math.Sin(phi)}
		cmd := path.CmdLineTo
		if i == 0 {
			cmd = path.CmdMoveTo
		}
		if !yield(cmd, buf[:]) {
			return false
		}
	}
	return yield(path.CmdClose, nil)
}
