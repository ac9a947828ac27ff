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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/mpld3/mplexporter"
)

// Stage is one affine step of a transform chain. Stages are compared by
// identity, so that a stage whose matrix changes (for example when the
// view limits of an axes change) is still recognised inside other chains.
type Stage struct {
	Name string
	M    matrix.Matrix
}

// NewStage allocates a new stage.
func NewStage(name string, m matrix.Matrix) *Stage {
	return &Stage{Name: name, M: m}
}

// Chain is a transform which applies its stages in order. The empty chain
// is the identity.
type Chain []*Stage

// Then returns a new chain which first applies c and then next.
func (c Chain) Then(next ...*Stage) Chain {
	res := make(Chain, 0, len(c)+len(next))
	res = append(res, c...)
	return append(res, next...)
}

// Apply implements the mplexporter.Transform interface.
func (c Chain) Apply(p vec.Vec2) vec.Vec2 {
	for _, s := range c {
		p = mplexporter.AffineTransform{M: s.M}.Apply(p)
	}
	return p
}

// Matrix implements the mplexporter.Affine interface.
func (c Chain) Matrix() matrix.Matrix {
	m := matrix.Identity
	for _, s := range c {
		m = m.Mul(s.M)
	}
	return m
}

// ContainsBranch implements the mplexporter.Transform interface. A chain
// contains every non-empty chain which forms its final stages.
func (c Chain) ContainsBranch(branch mplexporter.Transform) bool {
	b, ok := branch.(Chain)
	if !ok || len(b) == 0 || len(b) > len(c) {
		return false
	}
	tail := c[len(c)-len(b):]
	for i := range b {
		if tail[i] != b[i] {
			return false
		}
	}
	return true
}

// Sub implements the mplexporter.Subtracter interface by removing the
// final stages.
func (c Chain) Sub(branch mplexporter.Transform) (mplexporter.Transform, bool) {
	if !c.ContainsBranch(branch) {
		return nil, false
	}
	n := len(c) - len(branch.(Chain))
	return Chain{}.Then(c[:n]...), true
}

// boxMatrix maps the unit square onto the rectangle with lower left corner
// (x0, y0) and the given size.
func boxMatrix(x0, y0, width, height float64) matrix.Matrix {
	return matrix.Matrix{width, 0, 0, height, x0, y0}
}

// limitsMatrix maps the view limits onto the unit square. Empty limit
// ranges are widened to length one.
func limitsMatrix(xlim, ylim [2]float64) matrix.Matrix {
	dx := xlim[1] - xlim[0]
	if dx == 0 {
		dx = 1
	}
	dy := ylim[1] - ylim[0]
	if dy == 0 {
		dy = 1
	}
	return matrix.Matrix{1 / dx, 0, 0, 1 / dy, -xlim[0] / dx, -ylim[0] / dy}
}
