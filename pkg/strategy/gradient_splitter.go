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

package strategy

import "github.com/lucaSartore/splitmerge/pkg/region"

// maxChildAspect bounds the long-to-short side ratio either child of a
// refined cut may have before the refinement is rejected in favor of the
// wrapped strategy's original proposal.
const maxChildAspect = 7.0

// GradientAsymmetricSplitter wraps a decision Splitter and, when it
// proposes a cut, refines the offset by locating the row or column with
// the largest cumulative asymmetric gradient (an edge-detector response
// that cancels symmetric shading), reverting to the wrapped strategy's
// original offset whenever the refined cut is degenerate: on the
// boundary, both gradient axes flat, or either resulting child's aspect
// ratio would exceed 7:1.
type GradientAsymmetricSplitter struct {
	decision Splitter
}

// NewGradientAsymmetricSplitter wraps decision.
func NewGradientAsymmetricSplitter(decision Splitter) *GradientAsymmetricSplitter {
	return &GradientAsymmetricSplitter{decision: decision}
}

// Decide implements Splitter.
func (s *GradientAsymmetricSplitter) Decide(view region.View) (Cut, bool, error) {
	cut, ok, err := s.decision.Decide(view)
	if !ok || err != nil {
		return cut, ok, err
	}

	if view.H <= 5 || view.W <= 5 {
		return cut, true, nil
	}

	rowGrad := cumulativeGradient(view, region.ParallelToX)
	colGrad := cumulativeGradient(view, region.ParallelToY)

	// The four extreme rows/columns carry no interior derivative and are
	// zeroed so the boundary can never win the argmax.
	zeroBoundary(rowGrad)
	zeroBoundary(colGrad)

	maxRowIdx, maxRow := argmax(rowGrad)
	maxColIdx, maxCol := argmax(colGrad)

	if maxRow == 0 && maxCol == 0 {
		return cut, true, nil
	}

	var refined Cut
	if maxRow >= maxCol {
		refined = Cut{Axis: region.ParallelToX, Offset: maxRowIdx}
	} else {
		refined = Cut{Axis: region.ParallelToY, Offset: maxColIdx}
	}

	if refined.Offset <= 0 || refined.Offset >= extentAlong(view, refined.Axis) {
		return cut, true, nil
	}
	if !withinAspectBudget(view, refined) {
		return cut, true, nil
	}
	return refined, true, nil
}

func extentAlong(view region.View, axis region.Axis) int {
	if axis == region.ParallelToX {
		return view.H
	}
	return view.W
}

func withinAspectBudget(view region.View, cut Cut) bool {
	children, err := region.Split(view, cut.Axis, cut.Offset)
	if err != nil {
		return false
	}
	for _, c := range children {
		long, short := c.W, c.H
		if short > long {
			long, short = short, long
		}
		if short == 0 || float64(long)/float64(short) > maxChildAspect {
			return false
		}
	}
	return true
}

func zeroBoundary(v []float64) {
	n := len(v)
	if n < 4 {
		for i := range v {
			v[i] = 0
		}
		return
	}
	v[0], v[1], v[n-1], v[n-2] = 0, 0, 0, 0
}

func argmax(v []float64) (idx int, value float64) {
	for i, x := range v {
		if i == 0 || x > value {
			idx, value = i, x
		}
	}
	return idx, value
}

// cumulativeGradient sums, along each row (axis == ParallelToX) or column
// (axis == ParallelToY), the grayscale asymmetric first-derivative
// response: the sum of a forward and a backward one-sided difference,
// which cancels out under uniform shading and peaks at a genuine edge.
func cumulativeGradient(view region.View, axis region.Axis) []float64 {
	if axis == region.ParallelToX {
		out := make([]float64, view.H)
		for dy := 0; dy < view.H; dy++ {
			y := view.Y + dy
			sum := 0.0
			for dx := 0; dx < view.W; dx++ {
				x := view.X + dx
				sum += asymmetricDerivative(view, x, y, 0, 1)
			}
			out[dy] = sum
		}
		return out
	}
	out := make([]float64, view.W)
	for dx := 0; dx < view.W; dx++ {
		x := view.X + dx
		sum := 0.0
		for dy := 0; dy < view.H; dy++ {
			y := view.Y + dy
			sum += asymmetricDerivative(view, x, y, 1, 0)
		}
		out[dx] = sum
	}
	return out
}

func gray(view region.View, x, y int) float64 {
	if x < view.X || x >= view.X+view.W || y < view.Y || y >= view.Y+view.H {
		return 0
	}
	p := view.At(x, y)
	return 0.299*float64(p[0]) + 0.587*float64(p[1]) + 0.114*float64(p[2])
}

// asymmetricDerivative computes (forward - center) + (center - backward)
// along direction (dx, dy), i.e. [-1,1] and [1,-1] kernels summed, which is
// what makes the response independent of which side of the edge the
// sampled pixel falls on.
func asymmetricDerivative(view region.View, x, y, dx, dy int) float64 {
	forward := gray(view, x+dx, y+dy) - gray(view, x, y)
	backward := gray(view, x, y) - gray(view, x-dx, y-dy)
	return forward + backward
}
