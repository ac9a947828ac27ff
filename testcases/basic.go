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

var basicCases = []TestCase{
	{
		Name:  "line_and_markers",
		Build: lineAndMarkers,
		Transcript: `opening figure
  opening axes
    draw line with 20 points
    draw 10 markers
  closing axes
closing figure
`,
	},
	{
		Name:  "line_styles",
		Build: lineStyles,
		Transcript: `opening figure
  opening axes
    draw line with 5 points
    draw line with 5 points
    draw line with 5 points
    draw line with 5 points
    draw 5 markers
    draw line with 5 points
    draw line with 5 points
  closing axes
closing figure
`,
	},
	{
		Name:  "color_cycle",
		Build: colorCycle,
		Transcript: `opening figure
  opening axes
    draw line with 3 points
    draw line with 3 points
    draw line with 3 points
  closing axes
closing figure
`,
	},
	{
		Name:  "empty_axes",
		Build: emptyAxes,
		Transcript: `opening figure
  opening axes
  closing axes
closing figure
`,
	},
}

// lineAndMarkers is a solid black line through 20 points together with
// 10 point markers.
func lineAndMarkers() (*scene.Figure, error) {
	fig := scene.New(6.4, 4.8, 100)
	ax := fig.Subplots(1, 1)[0]
	if _, err := ax.Plot(nil, seq(20), "-k"); err != nil {
		return nil, err
	}
	if _, err := ax.Plot(nil, seq(10), ".k"); err != nil {
		return nil, err
	}
	return fig, nil
}

// lineStyles has one line for each named dash style, one with an explicit
// dash sequence, one with an unknown style, and one line where both stroke
// and markers are switched off.
func lineStyles() (*scene.Figure, error) {
	fig := scene.New(6.4, 4.8, 100)
	ax := fig.Subplots(1, 1)[0]
	y := seq(5)
	for i, format := range []string{"r-", "g--", "b:", "m-.o"} {
		for j := range y {
			y[j] += float64(i)
		}
		if _, err := ax.Plot(nil, y, format); err != nil {
			return nil, err
		}
	}

	l, err := ax.Plot(nil, seq(5), "c")
	if err != nil {
		return nil, err
	}
	l.Dashes = []float64{3, 1.5}

	l, err = ax.Plot(nil, seq(5), "k")
	if err != nil {
		return nil, err
	}
	l.Style = "dashdotdotted"

	l, err = ax.Plot(nil, seq(5), "y")
	if err != nil {
		return nil, err
	}
	l.Style = "None"
	l.Symbol = "None"

	return fig, nil
}

// colorCycle has three lines without explicit color.
func colorCycle() (*scene.Figure, error) {
	fig := scene.New(4, 3, 72)
	ax := fig.Subplots(1, 1)[0]
	for i := range 3 {
		y := []float64{0, float64(i), 2 * float64(i)}
		l, err := ax.Plot(nil, y, "")
		if err != nil {
			return nil, err
		}
		l.Name = string(rune('a' + i))
	}
	return fig, nil
}

func emptyAxes() (*scene.Figure, error) {
	fig := scene.New(4, 3, 72)
	fig.Subplots(1, 1)
	return fig, nil
}
