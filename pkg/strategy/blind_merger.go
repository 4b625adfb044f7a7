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
	"github.com/lucaSartore/splitmerge/pkg/mask"
	"github.com/lucaSartore/splitmerge/pkg/raster"
)

// BlindMerger always merges. Useful for tests and for collapsing an
// over-split tree back down regardless of content.
type BlindMerger struct{}

// NewBlindMerger builds a BlindMerger.
func NewBlindMerger() *BlindMerger { return &BlindMerger{} }

// Decide implements Merger.
func (BlindMerger) Decide(_, _ *mask.Bitmap, _ raster.Image) (bool, error) {
	return true, nil
}
