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

package region

import (
	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/pkg/errors"
)

// Axis names which dimension a split cuts along.
type Axis int

const (
	// ParallelToX cuts horizontally, producing a top half and a bottom half.
	ParallelToX Axis = iota
	// ParallelToY cuts vertically, producing a left half and a right half.
	ParallelToY
)

func (a Axis) String() string {
	if a == ParallelToX {
		return "ParallelToX"
	}
	return "ParallelToY"
}

// View is an immutable, non-owning rectangular window into a source image.
// Its lifetime is bounded by the source image's: callers must not retain a
// View past the lifetime of the raster.Image it was built from. Unlike the
// teacher language this pipeline was learned from, a View here holds an
// ordinary Go interface reference rather than a raw pointer-plus-extent
// pair, so the garbage collector keeps the backing image alive for as long
// as any View (or the Buffer itself) is reachable; no join-barrier trick is
// needed to make it memory safe, only the documented convention that the
// pipeline's phase boundary is what makes concurrent reads of it coherent.
type View struct {
	Rect
	Image raster.Image
}

// NewView builds the root view covering the whole of img.
func NewView(img raster.Image) View {
	return View{Rect: Rect{X: 0, Y: 0, W: img.Width(), H: img.Height()}, Image: img}
}

// At returns the pixel at image-plane coordinates (x, y), which must fall
// inside the view's rectangle.
func (v View) At(x, y int) raster.Pixel {
	return v.Image.At(x, y)
}

// Split cuts v along axis at offset, measured from v's own origin along the
// cut axis. It fails with segerr.InvalidSplit (via the caller, see
// pkg/pipeline) unless 0 < offset < extent-along-axis.
func Split(v View, axis Axis, offset int) ([2]View, error) {
	extent := v.W
	if axis == ParallelToX {
		extent = v.H
	}
	if offset <= 0 || offset >= extent {
		return [2]View{}, errors.Errorf(
			"split offset %d out of range (0, %d) for axis %s", offset, extent, axis)
	}

	switch axis {
	case ParallelToX:
		top := View{Rect: Rect{X: v.X, Y: v.Y, W: v.W, H: offset}, Image: v.Image}
		bottom := View{Rect: Rect{X: v.X, Y: v.Y + offset, W: v.W, H: v.H - offset}, Image: v.Image}
		return [2]View{top, bottom}, nil
	default: // ParallelToY
		left := View{Rect: Rect{X: v.X, Y: v.Y, W: offset, H: v.H}, Image: v.Image}
		right := View{Rect: Rect{X: v.X + offset, Y: v.Y, W: v.W - offset, H: v.H}, Image: v.Image}
		return [2]View{left, right}, nil
	}
}
