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

import (
	"math"

	"github.com/lucaSartore/splitmerge/pkg/region"
)

// VarianceSplitter splits a region whenever any channel's standard
// deviation across the whole view exceeds a threshold, deferring the cut
// itself to an embedded BlindSplitter once that test passes.
type VarianceSplitter struct {
	stdThreshold float64
	blind        *BlindSplitter
}

// NewVarianceSplitter builds a VarianceSplitter; minSplitSize is forwarded
// to the embedded BlindSplitter.
func NewVarianceSplitter(minSplitSize int, stdThreshold float64) *VarianceSplitter {
	return &VarianceSplitter{stdThreshold: stdThreshold, blind: NewBlindSplitter(minSplitSize)}
}

// Decide implements Splitter.
func (s *VarianceSplitter) Decide(view region.View) (Cut, bool, error) {
	var sum, sumSq [3]float64
	n := float64(view.W * view.H)
	for y := view.Y; y < view.Y+view.H; y++ {
		for x := view.X; x < view.X+view.W; x++ {
			p := view.At(x, y)
			for c := 0; c < 3; c++ {
				v := float64(p[c])
				sum[c] += v
				sumSq[c] += v * v
			}
		}
	}

	maxStd := 0.0
	for c := 0; c < 3; c++ {
		mean := sum[c] / n
		variance := sumSq[c]/n - mean*mean
		if variance < 0 {
			variance = 0
		}
		if std := math.Sqrt(variance); std > maxStd {
			maxStd = std
		}
	}

	if maxStd <= s.stdThreshold {
		return Cut{}, false, nil
	}
	return s.blind.Decide(view)
}
