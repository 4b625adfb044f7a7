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

// Rect is an axis-aligned, positive-area rectangle in image coordinates.
type Rect struct {
	X, Y, W, H int
}

// Area returns W*H.
func (r Rect) Area() int { return r.W * r.H }

func overlap(aStart, aLen, bStart, bLen int) bool {
	aEnd := aStart + aLen
	bEnd := bStart + bLen
	return !(aEnd < bStart || bEnd < aStart)
}

func touch(aStart, aLen, bStart, bLen int) bool {
	aEnd := aStart + aLen
	bEnd := bStart + bLen
	return aStart == bEnd || bStart == aEnd
}

// TouchesAndOverlaps reports whether a and b share an edge: coincident on
// one axis and overlapping on the perpendicular one. It is used only during
// merge-phase initialization, over leaf rectangles; adjacency after that
// point is tracked by the disjoint-set forest instead.
func TouchesAndOverlaps(a, b Rect) bool {
	horizontalTouch := touch(a.X, a.W, b.X, b.W)
	horizontalOverlap := overlap(a.Y, a.H, b.Y, b.H)
	verticalTouch := touch(a.Y, a.H, b.Y, b.H)
	verticalOverlap := overlap(a.X, a.W, b.X, b.W)
	return (horizontalTouch && horizontalOverlap) || (verticalTouch && verticalOverlap)
}
