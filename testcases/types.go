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

// Package testcases provides example figures for testing exporters and
// renderers.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"github.com/mpld3/mplexporter/scene"
)

// TestCase defines a single example figure.
type TestCase struct {
	Name string // lowercase a-z and _ only

	// Build constructs a fresh copy of the figure.
	Build func() (*scene.Figure, error)

	// Transcript is the expected output of the trace renderer, or "" if
	// the case does not check it.
	Transcript string
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// seq returns the numbers 0, 1, ..., n-1.
func seq(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = float64(i)
	}
	return res
}
