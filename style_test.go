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
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashArray(t *testing.T) {
	cases := []struct {
		style string
		dash  string
	}{
		{"solid", "10,0"},
		{"-", "10,0"},
		{"dashed", "6,6"},
		{"--", "6,6"},
		{"dotted", "2,2"},
		{":", "2,2"},
		{"dashdot", "4,4,2,4"},
		{"-.", "4,4,2,4"},
		{"None", "none"},
		{"", "none"},
	}
	for _, c := range cases {
		dash, ok := DashArray(c.style)
		assert.True(t, ok, c.style)
		assert.Equal(t, c.dash, dash, c.style)
	}

	dash, ok := DashArray("dashdotdotted")
	assert.False(t, ok)
	assert.Equal(t, SolidDash, dash)
}

func TestDashSeqWins(t *testing.T) {
	dash, ok := dashOf("dotted", []float64{3, 1.5})
	assert.True(t, ok)
	assert.Equal(t, "3,1.5", dash)

	dash, ok = dashOf("nonsense", []float64{})
	assert.True(t, ok)
	assert.Equal(t, "", dash)
}

func TestDashSequence(t *testing.T) {
	assert.Nil(t, DashSequence(SolidDash))
	assert.Nil(t, DashSequence("none"))
	assert.Nil(t, DashSequence("0,0"))
	assert.Nil(t, DashSequence("2,x"))
	assert.Nil(t, DashSequence("2,-1"))
	assert.Equal(t, []float64{4, 4, 2, 4}, DashSequence("4,4,2,4"))
	assert.Equal(t, []float64{3, 1.5}, DashSequence("3, 1.5"))
}

func TestColorToHex(t *testing.T) {
	cases := []struct {
		col  color.Color
		want string
	}{
		{nil, NoColor},
		{color.Black, "#000000"},
		{color.White, "#FFFFFF"},
		{color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, "#1F77B4"},
		{color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0x40}, "#1F77B4"}, // alpha is dropped
		{RGBA{0, 0.5, 0, 1}, "#007F00"},                                // rounded toward zero
		{RGBA{0.75, 0.75, 0, 1}, "#BFBF00"},
		{RGBA{2, -1, 1, 1}, "#FF00FF"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ColorToHex(c.col))
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		spec string
		want string
	}{
		{"r", "#FF0000"},
		{"k", "#000000"},
		{"g", "#007F00"},
		{"red", "#FF0000"},
		{"SteelBlue", "#4682B4"},
		{"#abc", "#AABBCC"},
		{"#1f77b4", "#1F77B4"},
		{"#1f77b480", "#1F77B4"},
		{"0.5", "#7F7F7F"},
		{" 1 ", "#FFFFFF"},
	}
	for _, c := range cases {
		col, err := ParseColor(c.spec)
		require.NoError(t, err, c.spec)
		assert.Equal(t, c.want, ColorToHex(col), c.spec)
	}

	col, err := ParseColor("none")
	require.NoError(t, err)
	assert.Nil(t, col)

	for _, bad := range []string{"#12345", "#ggg", "1.5", "ultraviolet"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#123456", "#FEDCBA", "#FFFFFF"} {
		col, err := ParseColor(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, ColorToHex(col))
	}
}
