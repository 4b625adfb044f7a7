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

// Package mask implements the region-mask algebra: a region is represented
// either as a lazy rectangle or as a materialized binary bitmap, and two
// bitmaps can be unioned into one. Rasterization and bitwise union are the
// only mutating operations in the whole pipeline that ever touch pixel data
// at rest; everything else treats a Mask as an immutable value.
package mask

import (
	"github.com/lucaSartore/splitmerge/pkg/region"
	"github.com/pkg/errors"
)

// Bitmap is a single-channel binary mask sized to the full source image.
// A pixel is "in" the region iff its byte is nonzero.
type Bitmap struct {
	W, H int
	Bits []byte
}

// NewBitmap allocates an all-zero w×h bitmap.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{W: w, H: h, Bits: make([]byte, w*h)}
}

// Count returns the number of nonzero pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.Bits {
		if v != 0 {
			n++
		}
	}
	return n
}

func (b *Bitmap) set(x, y int) { b.Bits[y*b.W+x] = 1 }

// At reports whether (x, y) is inside the masked region.
func (b *Bitmap) At(x, y int) bool { return b.Bits[y*b.W+x] != 0 }

// Union returns the bitwise OR of a and b, which must share dimensions.
// |result| = |a ∪ b|.
func Union(a, b *Bitmap) (*Bitmap, error) {
	if a.W != b.W || a.H != b.H {
		return nil, errors.Errorf("mask: dimension mismatch %dx%d vs %dx%d", a.W, a.H, b.W, b.H)
	}
	out := NewBitmap(a.W, a.H)
	for i := range out.Bits {
		if a.Bits[i] != 0 || b.Bits[i] != 0 {
			out.Bits[i] = 1
		}
	}
	return out, nil
}

// Mask is a region represented either by rectangle (lazy) or by bitmap. The
// Rect→Bitmap transition is one-way; once materialized, a Mask forgets its
// rectangle form.
type Mask struct {
	rect     region.Rect
	isBitmap bool
	bitmap   *Bitmap
}

// NewRect builds a lazy rectangle-shaped mask.
func NewRect(r region.Rect) *Mask {
	return &Mask{rect: r}
}

// NewFromBitmap wraps an already-materialized bitmap, e.g. the result of a
// merge.
func NewFromBitmap(b *Bitmap) *Mask {
	return &Mask{isBitmap: true, bitmap: b}
}

// Rect returns the underlying rectangle and true, or the zero Rect and
// false if this Mask has already been materialized to a Bitmap.
func (m *Mask) Rect() (region.Rect, bool) {
	if m.isBitmap {
		return region.Rect{}, false
	}
	return m.rect, true
}

// Materialize rasterizes a Rect-shaped mask into a refW×refH Bitmap (the
// source image's full dimensions) and caches it; calling it again is a
// no-op. Bitmap-shaped masks are returned unchanged.
func (m *Mask) Materialize(refW, refH int) *Bitmap {
	if m.isBitmap {
		return m.bitmap
	}
	b := NewBitmap(refW, refH)
	r := m.rect
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			b.set(x, y)
		}
	}
	m.isBitmap = true
	m.bitmap = b
	return b
}
