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

package sink

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/fogleman/gg"
	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/lucaSartore/splitmerge/pkg/region"
)

// coloredArea tracks the render color assigned to a live region alongside
// its current rectangle.
type coloredArea struct {
	color color.RGBA
	rect  region.Rect
}

// renderer implements the rendering contract shared by the on-screen and
// on-disk sinks: every region gets a color at creation (one split child
// inherits its parent's color, the other gets a fresh random hue); each
// split recolors the output canvas by blitting the tinted mask, then
// eroding that mask by a 4×4 structuring element and restoring the
// original pixels underneath, leaving a colored border around an
// otherwise faithful region.
type renderer struct {
	input  raster.Image
	areas  map[int]*coloredArea
	canvas *gg.Context
}

func rasterToRGBA(img raster.Image) *image.RGBA {
	w, h := img.Width(), img.Height()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := img.At(x, y)
			out.Set(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return out
}

func newRenderer(img raster.Image) *renderer {
	root := region.Rect{X: 0, Y: 0, W: img.Width(), H: img.Height()}
	canvas := gg.NewContextForRGBA(rasterToRGBA(img))
	return &renderer{
		input:  img,
		canvas: canvas,
		areas: map[int]*coloredArea{
			0: {color: randomColor(), rect: root},
		},
	}
}

func randomColor() color.RGBA {
	h := rand.Float64() * 360
	r, g, b := hsvToRGB(h, 0.65, 0.95)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hsvToRGB converts a hue in [0,360), fixed saturation and value, to 8-bit
// RGB, using the textbook six-sector formula; there is no HSV generator in
// this module's dependency set, so this one function is hand-rolled (see
// DESIGN.md).
func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	c := v * s
	x := c * (1 - abs(modf(h/60, 2)-1))
	m := v - c
	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}
	return uint8((rf + m) * 255), uint8((gf + m) * 255), uint8((bf + m) * 255)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func modf(x, m float64) float64 {
	for x >= m {
		x -= m
	}
	return x
}

// colorRegion paints area's rectangle onto the canvas with color, erodes
// the mask by a 4×4 structuring element, and restores the original image
// underneath the eroded mask, leaving a visible colored border.
func (r *renderer) colorRegion(id int) {
	area := r.areas[id]
	out := r.canvas.Image().(*image.RGBA)

	for y := area.rect.Y; y < area.rect.Y+area.rect.H; y++ {
		for x := area.rect.X; x < area.rect.X+area.rect.W; x++ {
			out.Set(x, y, area.color)
		}
	}

	eroded := erodeRect(area.rect, 4, out.Bounds().Dx(), out.Bounds().Dy())
	for y := eroded.Y; y < eroded.Y+eroded.H; y++ {
		for x := eroded.X; x < eroded.X+eroded.W; x++ {
			p := r.input.At(x, y)
			out.Set(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
}

// erodeRect shrinks a rectangle by a k×k structuring element centered on
// each pixel: a k×k-eroded axis-aligned rectangle is just the rectangle
// inset by k/2 on every side, clamped to the image bounds and collapsed to
// empty if it would invert.
func erodeRect(r region.Rect, k, imgW, imgH int) region.Rect {
	inset := k / 2
	x0, y0 := r.X+inset, r.Y+inset
	x1, y1 := r.X+r.W-inset, r.Y+r.H-inset
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > imgW {
		x1 = imgW
	}
	if y1 > imgH {
		y1 = imgH
	}
	if x1 <= x0 || y1 <= y0 {
		return region.Rect{}
	}
	return region.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// applySplit updates area bookkeeping and repaints both children; the
// first child inherits the parent's color, the second gets a fresh one.
func (r *renderer) applySplit(parentID int, children [2]Area) {
	parent := r.areas[parentID]
	delete(r.areas, parentID)

	r.areas[children[0].ID] = &coloredArea{color: parent.color, rect: children[0].Rect}
	r.areas[children[1].ID] = &coloredArea{color: randomColor(), rect: children[1].Rect}

	r.colorRegion(children[0].ID)
	r.colorRegion(children[1].ID)
}

// applyMerge is a no-op on the rendered frame: the reference renderer only
// repaints at split time, matching the original logger's behavior of
// coloring only at split boundaries.
func (r *renderer) applyMerge(int, [2]int) {}

// frame returns the current canvas as a plain image.Image for display or
// encoding.
func (r *renderer) frame() image.Image { return r.canvas.Image() }
