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

package mask

import (
	"math"

	"github.com/lucaSartore/splitmerge/pkg/raster"
)

// MeanStd computes the per-channel mean and (population) standard
// deviation of img restricted to the pixels where b is set. Called from
// worker goroutines on their own borrowed inputs, never from the
// orchestrator; safe to call concurrently on disjoint masks of the same
// immutable image.
func MeanStd(img raster.Image, b *Bitmap) (mean, std [3]float64) {
	var sum, sumSq [3]float64
	n := 0
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if !b.At(x, y) {
				continue
			}
			p := img.At(x, y)
			for c := 0; c < 3; c++ {
				v := float64(p[c])
				sum[c] += v
				sumSq[c] += v * v
			}
			n++
		}
	}
	if n == 0 {
		return mean, std
	}
	for c := 0; c < 3; c++ {
		mean[c] = sum[c] / float64(n)
		variance := sumSq[c]/float64(n) - mean[c]*mean[c]
		if variance < 0 {
			variance = 0
		}
		std[c] = math.Sqrt(variance)
	}
	return mean, std
}

// EuclideanDistance3 returns the Euclidean distance between two 3-vectors.
func EuclideanDistance3(a, b [3]float64) float64 {
	sum := 0.0
	for c := 0; c < 3; c++ {
		d := a[c] - b[c]
		sum += d * d
	}
	return math.Sqrt(sum)
}
