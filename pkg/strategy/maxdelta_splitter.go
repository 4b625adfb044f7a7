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

// MaxDeltaSplitter splits whenever some pixel's per-channel distance from
// the view's mean color exceeds a threshold, deferring the cut itself to
// an embedded BlindSplitter.
type MaxDeltaSplitter struct {
	deltaThreshold float64
	blind          *BlindSplitter
}

// NewMaxDeltaSplitter builds a MaxDeltaSplitter; minSplitSize is forwarded
// to the embedded BlindSplitter.
func NewMaxDeltaSplitter(minSplitSize int, deltaThreshold float64) *MaxDeltaSplitter {
	return &MaxDeltaSplitter{deltaThreshold: deltaThreshold, blind: NewBlindSplitter(minSplitSize)}
}

// Decide implements Splitter.
func (s *MaxDeltaSplitter) Decide(view region.View) (Cut, bool, error) {
	var sum [3]float64
	n := float64(view.W * view.H)
	for y := view.Y; y < view.Y+view.H; y++ {
		for x := view.X; x < view.X+view.W; x++ {
			p := view.At(x, y)
			for c := 0; c < 3; c++ {
				sum[c] += float64(p[c])
			}
		}
	}
	var mean [3]float64
	for c := 0; c < 3; c++ {
		mean[c] = sum[c] / n
	}

	maxDistance := 0.0
	for y := view.Y; y < view.Y+view.H; y++ {
		for x := view.X; x < view.X+view.W; x++ {
			p := view.At(x, y)
			for c := 0; c < 3; c++ {
				if d := math.Abs(float64(p[c]) - mean[c]); d > maxDistance {
					maxDistance = d
				}
			}
		}
	}

	if maxDistance <= s.deltaThreshold {
		return Cut{}, false, nil
	}
	return s.blind.Decide(view)
}
