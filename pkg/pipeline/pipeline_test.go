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

package pipeline_test

import (
	"testing"

	"github.com/lucaSartore/splitmerge/pkg/pipeline"
	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/lucaSartore/splitmerge/pkg/sink"
	"github.com/lucaSartore/splitmerge/pkg/strategy"
	"github.com/stretchr/testify/require"
)

// checkerboard builds a w×h image of alternating black/white blockSize
// squares, a cheap way to guarantee both "split further" and "don't merge
// across the boundary" decisions fire deterministically.
func checkerboard(w, h, blockSize int) *raster.Buffer {
	img := raster.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if ((x/blockSize)+(y/blockSize))%2 == 0 {
				img.Set(x, y, raster.Pixel{0, 0, 0})
			} else {
				img.Set(x, y, raster.Pixel{255, 255, 255})
			}
		}
	}
	return img
}

func TestPipelineEndToEndOnCheckerboard(t *testing.T) {
	img := checkerboard(64, 64, 16)

	splitter := strategy.NewVarianceSplitter(8, 20)
	merger := strategy.NewColorDistanceMerger(30, 30)

	p := pipeline.New(splitter, merger, sink.NewNull(), img)

	mergePipeline, err := p.ExecuteSplit(4)
	require.NoError(t, err)

	complete, err := mergePipeline.ExecuteMerge(4)
	require.NoError(t, err)

	leaves := complete.Tree().CollectLeaves()
	require.NotEmpty(t, leaves)

	totalArea := 0
	for _, leaf := range leaves {
		totalArea += leaf.View.Rect.Area()
	}
	require.Equal(t, 64*64, totalArea)
}

func TestPipelineFlatImageNeverSplits(t *testing.T) {
	img := raster.NewBuffer(32, 32)

	splitter := strategy.NewVarianceSplitter(4, 5)
	merger := strategy.NewBlindMerger()

	p := pipeline.New(splitter, merger, sink.NewNull(), img)
	mergePipeline, err := p.ExecuteSplit(2)
	require.NoError(t, err)

	complete, err := mergePipeline.ExecuteMerge(2)
	require.NoError(t, err)

	leaves := complete.Tree().CollectLeaves()
	require.Len(t, leaves, 1)
	require.Equal(t, 1, len(complete.Tree().CollectLeaves()))

	_ = leaves[0].View.Rect
}

// recordingSink counts events, so a test can assert the orchestrator called
// it the expected number of times without caring about rendering.
type recordingSink struct {
	splits    int
	merges    int
	finalized bool
}

func (s *recordingSink) OnSplit(int, [2]sink.Area) error { s.splits++; return nil }
func (s *recordingSink) OnMerge(int, [2]int) error       { s.merges++; return nil }
func (s *recordingSink) OnFinalize() error               { s.finalized = true; return nil }

func TestPipelineDrivesSinkForEveryEvent(t *testing.T) {
	img := checkerboard(32, 32, 8)
	rec := &recordingSink{}

	splitter := strategy.NewBlindSplitter(8)
	merger := strategy.NewColorDistanceMerger(30, 30)

	p := pipeline.New(splitter, merger, rec, img)
	mergePipeline, err := p.ExecuteSplit(3)
	require.NoError(t, err)

	_, err = mergePipeline.ExecuteMerge(3)
	require.NoError(t, err)

	require.True(t, rec.finalized)
	require.Greater(t, rec.splits, 0)
	require.Greater(t, rec.merges, 0)
}
