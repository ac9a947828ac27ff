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
	"github.com/mpld3/mplexporter/scene"
)

var layoutCases = []TestCase{
	{
		Name:  "two_subplots",
		Build: twoSubplots,
		Transcript: `opening figure
  opening axes
    draw line with 10 points
  closing axes
  opening axes
    draw line with 10 points
  closing axes
closing figure
`,
	},
	{
		Name:  "grid_layout",
		Build: gridLayout,
		Transcript: `opening figure
  opening axes
    draw line with 4 points
  closing axes
  opening axes
    draw line with 4 points
  closing axes
  opening axes
    draw line with 4 points
  closing axes
  opening axes
    draw line with 4 points
  closing axes
  opening axes
    draw line with 4 points
  closing axes
closing figure
`,
	},
	{
		Name:  "decorated_axes",
		Build: decoratedAxes,
		Transcript: `opening figure
  opening axes
    draw line with 3 points
  closing axes
closing figure
`,
	},
}

// twoSubplots stacks two axes with ten points each.
func twoSubplots() (*scene.Figure, error) {
	fig := scene.New(6.4, 4.8, 100)
	axes := fig.Subplots(2, 1)
	for i, ax := range axes {
		y := seq(10)
		for j := range y {
			y[j] *= float64(i + 1)
		}
		if _, err := ax.Plot(nil, y, "b-"); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

// gridLayout places five axes of different sizes on a 3x3 grid: one full
// width axes at the top, one axes spanning two columns, one spanning two
// rows and two single cells.
func gridLayout() (*scene.Figure, error) {
	fig := scene.New(8, 6, 80)
	g := scene.NewGridSpec(3, 3)
	g.WSpace, g.HSpace = 0.5, 0.5

	cells := [][4]int{
		{0, 1, 0, 3},
		{1, 2, 0, 2},
		{1, 3, 2, 3},
		{2, 3, 0, 1},
		{2, 3, 1, 2},
	}
	for i, c := range cells {
		ax, err := fig.AddSubplot(g, c[0], c[1], c[2], c[3])
		if err != nil {
			return nil, err
		}
		ax.SetTitle(string(rune('A' + i)))
		if _, err := ax.Plot(nil, []float64{1, 3, 2, 4}, ""); err != nil {
			return nil, err
		}
	}
	return fig, nil
}

// decoratedAxes has fixed limits, axis labels, a title, grid lines on the
// y-axis only, and disabled navigation.
func decoratedAxes() (*scene.Figure, error) {
	fig := scene.New(5, 4, 100)
	ax := fig.Subplots(1, 1)[0]
	if _, err := ax.Plot([]float64{1, 2, 3}, []float64{10, 30, 20}, "r-"); err != nil {
		return nil, err
	}
	ax.SetXLim(0, 4)
	ax.SetYLim(0, 40)
	ax.SetXLabel("time")
	ax.SetYLabel("amount")
	ax.SetTitle("decorated")
	ax.Grid(false, true)
	ax.SetNavigable(false)
	return fig, nil
}
