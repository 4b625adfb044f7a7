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

// Package strategy defines the pluggable homogeneity and similarity
// predicates the pipeline dispatches to workers, plus a reference
// implementation of each. Both interfaces must be safe to call
// concurrently from many worker goroutines against the same read-only
// image: neither mutates its arguments.
package strategy

import (
	"github.com/lucaSartore/splitmerge/pkg/mask"
	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/lucaSartore/splitmerge/pkg/region"
)

// Cut is a proposed split: Axis and Offset, as handed to region.Split.
type Cut struct {
	Axis   region.Axis
	Offset int
}

// Splitter decides whether and where to cut a region. Decide returns
// ok=false for "do not split further". A returned Cut must satisfy
// 0 < Offset < extent-along-Axis; if it does not, the orchestrator aborts
// the Split phase with a segerr.InvalidSplit error, per the pipeline's
// "strategy errors are fatal and indicate a logic bug" policy.
type Splitter interface {
	Decide(view region.View) (cut Cut, ok bool, err error)
}

// Merger decides whether two adjacent regions should be merged. maskA and
// maskB are Bitmap-shaped and sized to img's full dimensions.
type Merger interface {
	Decide(maskA, maskB *mask.Bitmap, img raster.Image) (merge bool, err error)
}
