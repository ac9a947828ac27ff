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
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/draw"
)

var errEmptyImage = errors.New("empty image")

func (e *Exporter) drawImage(ax Axes, im Image) error {
	data, err := e.rasterInExtent(ax, im)
	if err != nil {
		return err
	}
	return e.Renderer.DrawImage(&ImageData{
		Data:   data,
		Extent: im.Extent(),
		Space:  SpaceData,
		Style: &ImageStyle{
			Alpha:  alphaOf(im),
			ZOrder: im.ZOrder(),
		},
	})
}

// rasterInExtent encodes the image while the view limits of the axes are
// set to the image extent. The host stores images in axes coordinates,
// so this gives the image at its own resolution. The original limits are
// restored before rasterInExtent returns.
func (e *Exporter) rasterInExtent(ax Axes, im Image) (string, error) {
	xlim, ylim := ax.Limits()
	defer ax.SetLimits(xlim, ylim)

	ext := im.Extent()
	ax.SetLimits([2]float64{ext[0], ext[1]}, [2]float64{ext[2], ext[3]})
	img, err := im.Raster()
	if err != nil {
		return "", fmt.Errorf("image raster: %w", err)
	}
	return EncodeImage(img, e.MaxImagePixels)
}

// EncodeImage returns the image as a base64 encoded PNG file. If maxPixels
// is positive and the image has more pixels, it is scaled down first,
// keeping the aspect ratio.
func EncodeImage(img image.Image, maxPixels int) (string, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return "", errEmptyImage
	}

	if maxPixels > 0 && w*h > maxPixels {
		f := math.Sqrt(float64(maxPixels) / float64(w*h))
		w = max(int(float64(w)*f), 1)
		h = max(int(float64(h)*f), 1)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, dst); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
