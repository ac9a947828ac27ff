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

package testcases

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/mpld3/mplexporter"
	"github.com/mpld3/mplexporter/scene"
)

// ErrRaster is the error reported by the image of the "broken_image"
// test case.
var ErrRaster = errors.New("cannot rasterize image")

// The cases in this category contain drawables which cannot be exported.
// The Transcript shows what reaches the renderer; whether the export as a
// whole fails is documented for each case.
var failureCases = []TestCase{
	{
		// The image fails, the line is still exported.
		Name:  "broken_image",
		Build: brokenImage,
		Transcript: `opening figure
  opening axes
    draw line with 2 points
  closing axes
closing figure
`,
	},
	{
		// The export fails, but all scopes are closed.
		Name:  "warped_line",
		Build: warpedLine,
		Transcript: `opening figure
  opening axes
  closing axes
closing figure
`,
	},
	{
		// Layout fails before anything is sent to the renderer.
		Name:  "empty_figure",
		Build: emptyFigure,
	},
}

func brokenImage() (*scene.Figure, error) {
	fig := scene.New(4, 3, 100)
	ax := fig.Subplots(1, 1)[0]
	if _, err := ax.Plot([]float64{0, 1}, []float64{0, 1}, "b-"); err != nil {
		return nil, err
	}
	im := ax.AddImage(Gradient(4, 4), [4]float64{0.25, 0.75, 0.25, 0.75})
	im.Err = ErrRaster
	return fig, nil
}

// Warp applies a non-linear distortion before an inner transform. The
// result can be neither subtracted from nor written as a matrix.
type Warp struct {
	Inner scene.Chain
}

// Apply implements the mplexporter.Transform interface.
func (w Warp) Apply(p vec.Vec2) vec.Vec2 {
	return w.Inner.Apply(vec.Vec2{X: p.X, Y: p.Y + 0.1*math.Sin(p.X)})
}

// ContainsBranch implements the mplexporter.Transform interface.
func (w Warp) ContainsBranch(branch mplexporter.Transform) bool {
	return w.Inner.ContainsBranch(branch)
}

func warpedLine() (*scene.Figure, error) {
	fig := scene.New(4, 3, 100)
	ax := fig.Subplots(1, 1)[0]
	l, err := ax.Plot(seq(8), seq(8), "g-")
	if err != nil {
		return nil, err
	}
	l.Trans = Warp{Inner: ax.TransData()}
	return fig, nil
}

func emptyFigure() (*scene.Figure, error) {
	fig := scene.New(0, 3, 100)
	fig.Subplots(1, 1)
	return fig, nil
}
