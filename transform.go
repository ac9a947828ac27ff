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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrNoResidual is returned when a transform anchored in data space
	// can neither be subtracted nor inverted as a matrix.
	ErrNoResidual = errors.New("transform does not support subtracting the data transform")

	// ErrSingular is returned when the data transform cannot be inverted.
	ErrSingular = errors.New("singular data transform")

	// ErrNoTransform is returned for drawables without a transform.
	ErrNoTransform = errors.New("drawable has no transform")
)

// CoordSpace names the coordinate system of exported vertices.
type CoordSpace int

const (
	SpaceData CoordSpace = iota
	SpaceFigure
	SpaceAxes
	SpacePoints
)

func (s CoordSpace) String() string {
	switch s {
	case SpaceData:
		return "data"
	case SpaceFigure:
		return "figure"
	case SpaceAxes:
		return "axes"
	case SpacePoints:
		return "points"
	default:
		return fmt.Sprintf("CoordSpace(%d)", int(s))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s CoordSpace) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Resolution is the result of ResolveTransform.
type Resolution struct {
	Space CoordSpace

	// Data holds the converted vertices. It is nil if no data was given.
	Data []vec.Vec2

	// Transform is the transform which was applied to Data. For data
	// space this is the residual left after removing the data transform.
	Transform Transform
}

// ResolveTransform classifies the coordinate space a transform is anchored
// in and converts data accordingly.
//
// Without a frame the result is figure space. If t ends in the data
// transform of the frame, the result is data space and data is mapped by
// the residual of t after the data transform. Transforms ending in the
// axes or figure transform both report figure space; everything else is
// reported as points.
//
// A nil frame must be passed as an untyped nil.
func ResolveTransform(t Transform, f Frame, data []vec.Vec2) (Resolution, error) {
	if t == nil {
		return Resolution{}, ErrNoTransform
	}
	res := Resolution{Space: SpacePoints, Transform: t}
	switch {
	case f == nil:
		res.Space = SpaceFigure
	case t.ContainsBranch(f.DataTransform()):
		residual, err := subtract(t, f.DataTransform())
		if err != nil {
			return Resolution{}, err
		}
		res.Space = SpaceData
		res.Transform = residual
	case t.ContainsBranch(f.AxesTransform()):
		res.Space = SpaceFigure
	case t.ContainsBranch(f.FigureTransform()):
		res.Space = SpaceFigure
	}

	if data != nil {
		res.Data = applyAll(res.Transform, data)
	}
	return res, nil
}

// subtract returns r such that applying r and then b equals applying t.
func subtract(t, b Transform) (Transform, error) {
	if s, ok := t.(Subtracter); ok {
		if r, ok := s.Sub(b); ok {
			return r, nil
		}
	}

	at, ok1 := t.(Affine)
	ab, ok2 := b.(Affine)
	if !ok1 || !ok2 {
		return nil, ErrNoResidual
	}
	inv, err := Invert(ab.Matrix())
	if err != nil {
		return nil, err
	}
	return AffineTransform{M: at.Matrix().Mul(inv)}, nil
}

func applyAll(t Transform, data []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(data))
	for i, p := range data {
		out[i] = t.Apply(p)
	}
	return out
}

// AffineTransform is a Transform given by a matrix.
type AffineTransform struct {
	M matrix.Matrix
}

// Identity is the identity transform.
var Identity = AffineTransform{M: matrix.Identity}

// Apply implements the Transform interface.
func (a AffineTransform) Apply(p vec.Vec2) vec.Vec2 {
	x, y := a.M.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// ContainsBranch implements the Transform interface. An affine transform
// only contains branches with exactly the same matrix.
func (a AffineTransform) ContainsBranch(branch Transform) bool {
	b, ok := branch.(Affine)
	return ok && b.Matrix() == a.M
}

// Matrix implements the Affine interface.
func (a AffineTransform) Matrix() matrix.Matrix {
	return a.M
}

// Invert returns the inverse of m, or ErrSingular.
func Invert(m matrix.Matrix) (matrix.Matrix, error) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return matrix.Matrix{}, ErrSingular
	}
	return m.Inv(), nil
}
