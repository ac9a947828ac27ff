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
	"image/color"

	"github.com/mpld3/mplexporter/scene"
)

var textCases = []TestCase{
	{
		Name:  "labels",
		Build: labels,
		Transcript: `opening figure
  opening axes
    draw line with 2 points
    draw text 'in data'
    draw text 'in axes'
    draw text 'in figure'
    draw text 'annotation'
  closing axes
closing figure
`,
	},
}

// labels has texts in data, axes and figure coordinates, an annotation
// artist, an empty text, and the axis labels registered a second time as
// artists. Neither the empty text nor the axis labels are drawn as texts.
func labels() (*scene.Figure, error) {
	fig := scene.New(6, 4, 100)
	ax := fig.Subplots(1, 1)[0]
	if _, err := ax.Plot([]float64{0, 10}, []float64{0, 10}, "k-"); err != nil {
		return nil, err
	}
	ax.SetXLabel("x label")
	ax.SetYLabel("y label")
	ax.SetTitle("texts")

	ax.AddText(2, 8, "in data")
	ax.AddText(3, 3, "")
	t := ax.AddTextIn(ax.TransAxes(), 0.5, 0.9, "in axes")
	t.HA = "center"
	t.VA = "top"
	t = ax.AddTextIn(fig.TransFigure(), 0.02, 0.02, "in figure")
	t.Col = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	t.Angle = 30
	t.SetAlpha(0.5)

	ax.AddArtist(&scene.Text{
		Base:    scene.Base{Trans: ax.TransData(), Z: 4},
		Content: "annotation",
		Pos:     pt(7, 2),
		Size:    12,
		Col:     color.Black,
		HA:      "right",
		VA:      "center",
	})
	ax.AddArtist(ax.XLabelText())
	ax.AddArtist(ax.YLabelText())
	ax.AddArtist(&scene.Other{Base: scene.Base{Name: "legend"}})
	return fig, nil
}
