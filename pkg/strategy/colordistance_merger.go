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

// ColorDistanceMerger merges two regions when both their mean colors and
// their per-channel standard deviations are close, under independent
// Euclidean thresholds.
type ColorDistanceMerger struct {
	colorThreshold float64
	stdThreshold   float64
}

// NewColorDistanceMerger builds a ColorDistanceMerger.
func NewColorDistanceMerger(colorThreshold, stdThreshold float64) *ColorDistanceMerger {
	return &ColorDistanceMerger{colorThreshold: colorThreshold, stdThreshold: stdThreshold}
}

// Decide implements Merger.
func (m *ColorDistanceMerger) Decide(maskA, maskB *mask.Bitmap, img raster.Image) (bool, error) {
	meanA, stdA := mask.MeanStd(img, maskA)
	meanB, stdB := mask.MeanStd(img, maskB)

	colorDist := mask.EuclideanDistance3(meanA, meanB)
	stdDist := mask.EuclideanDistance3(stdA, stdB)

	return colorDist < m.colorThreshold && stdDist < m.stdThreshold, nil
}
