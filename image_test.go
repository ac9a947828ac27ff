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
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpld3/mplexporter"
	"github.com/mpld3/mplexporter/testcases"
)

func decode(t *testing.T, data string) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(data)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func decodedSize(t *testing.T, data string) (int, int) {
	t.Helper()
	b := decode(t, data).Bounds()
	return b.Dx(), b.Dy()
}

func TestEncodeImage(t *testing.T) {
	src := testcases.Gradient(16, 8)
	data, err := mplexporter.EncodeImage(src, 0)
	require.NoError(t, err)

	img := decode(t, data)
	require.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
	for _, p := range []image.Point{{0, 0}, {15, 0}, {7, 3}, {15, 7}} {
		want := src.NRGBAAt(p.X, p.Y)
		got := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
		assert.Equal(t, want.A, got.A, "pixel %v", p)
		assert.InDelta(t, want.R, got.R, 1, "pixel %v", p)
		assert.InDelta(t, want.B, got.B, 1, "pixel %v", p)
	}
}

func TestEncodeImageOffset(t *testing.T) {
	// images need not start at the origin
	src := testcases.Gradient(8, 8).SubImage(image.Rect(4, 4, 8, 8))
	data, err := mplexporter.EncodeImage(src, 0)
	require.NoError(t, err)
	w, h := decodedSize(t, data)
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)
}

func TestEncodeImageDownscale(t *testing.T) {
	cases := []struct {
		w, h      int
		maxPixels int
		wantW     int
		wantH     int
	}{
		{16, 8, 128, 16, 8},
		{16, 8, 32, 8, 4},
		{100, 1, 10, 10, 1},
		{3, 3, 1, 1, 1},
	}
	for _, c := range cases {
		data, err := mplexporter.EncodeImage(testcases.Gradient(c.w, c.h), c.maxPixels)
		require.NoError(t, err)
		w, h := decodedSize(t, data)
		assert.Equal(t, c.wantW, w)
		assert.Equal(t, c.wantH, h)
	}
}

func TestEncodeEmptyImage(t *testing.T) {
	_, err := mplexporter.EncodeImage(image.NewNRGBA(image.Rectangle{}), 0)
	assert.Error(t, err)
}
