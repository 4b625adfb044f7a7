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

// BlindSplitter always decides to bisect the longer dimension, down to a
// minimum size. It never looks at pixel content and is the cheapest
// reference splitter, useful mainly as a test fixture and as the decision
// strategy a GradientAsymmetricSplitter refines.
type BlindSplitter struct {
	minSplitSize int
}

// NewBlindSplitter builds a BlindSplitter that stops bisecting once the
// longer side is below minSplitSize, which must be at least 2.
func NewBlindSplitter(minSplitSize int) *BlindSplitter {
	if minSplitSize < 2 {
		panic("strategy: minSplitSize must be at least 2")
	}
	return &BlindSplitter{minSplitSize: minSplitSize}
}

// Decide implements Splitter.
func (s *BlindSplitter) Decide(view region.View) (Cut, bool, error) {
	if view.H > view.W {
		if view.H < s.minSplitSize {
			return Cut{}, false, nil
		}
		return Cut{Axis: region.ParallelToX, Offset: view.H / 2}, true, nil
	}
	if view.W < s.minSplitSize {
		return Cut{}, false, nil
	}
	return Cut{Axis: region.ParallelToY, Offset: view.W / 2}, true, nil
}
