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
	"image"
	"image/color"

	"github.com/mpld3/mplexporter/scene"
)

var rasterCases = []TestCase{
	{
		Name:  "gradient_image",
		Build: gradientImage,
	},
}

// Gradient returns a w×h image which is red on the left, blue on the
// right and fades to transparent towards the top.
func Gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			t := float64(x) / float64(max(w-1, 1))
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * (1 - t)),
				B: uint8(255 * t),
				A: uint8(255 * (y + 1) / h),
			})
		}
	}
	return img
}

// gradientImage shows a small image next to a line. The view limits are
// wider than the image extent.
func gradientImage() (*scene.Figure, error) {
	fig := scene.New(4, 3, 100)
	ax := fig.Subplots(1, 1)[0]
	if _, err := ax.Plot([]float64{-1, 5}, []float64{-1, 4}, "k-"); err != nil {
		return nil, err
	}
	im := ax.AddImage(Gradient(16, 8), [4]float64{0, 4, 0, 2})
	im.SetAlpha(0.8)
	im.Z = 0.5
	return fig, nil
}
