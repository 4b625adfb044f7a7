// Copyright 2026 The AsymmetricSplitAndMerge Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

// Package imageio decodes an ordinary raster image file into the pipeline's
// own raster.Buffer. Every codec registers itself with the standard
// image.Decode dispatch, so Decode never needs to sniff an extension
// itself.
package imageio

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/pkg/errors"
	"github.com/xfmoulet/qoi"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func init() {
	image.RegisterFormat("qoi", "qoif", qoi.Decode, qoiConfig)
}

func qoiConfig(r io.Reader) (image.Config, error) {
	img, err := qoi.Decode(r)
	if err != nil {
		return image.Config{}, err
	}
	b := img.Bounds()
	return image.Config{ColorModel: img.ColorModel(), Width: b.Dx(), Height: b.Dy()}, nil
}

// Decode reads the image file at path and converts it to a raster.Buffer,
// collapsing whatever color model the source decoder produced down to
// this module's flat 3-channel 8-bit representation.
func Decode(path string) (*raster.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "imageio: open %s", path)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "imageio: decode %s", path)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := raster.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buf.Set(x, y, raster.Pixel{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
		}
	}
	return buf, nil
}

// Encode writes img to path as a PNG, for a driver that wants to save the
// plain (unsegmented) input back out, e.g. after a lossy decode round-trip.
func Encode(path string, img raster.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "imageio: create %s", path)
	}
	defer f.Close()

	w, h := img.Width(), img.Height()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := img.At(x, y)
			out.Set(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return errors.Wrap(png.Encode(f, out), "imageio: encode png")
}
