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

package sink_test

import (
	"bytes"
	"image"
	"testing"

	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/lucaSartore/splitmerge/pkg/region"
	"github.com/lucaSartore/splitmerge/pkg/sink"
	"github.com/stretchr/testify/require"
)

func TestNullSinkDiscardsEverything(t *testing.T) {
	n := sink.NewNull()
	require.NoError(t, n.OnSplit(0, [2]sink.Area{}))
	require.NoError(t, n.OnMerge(0, [2]int{}))
	require.NoError(t, n.OnFinalize())
}

func TestOnScreenPushesFrameOnSplitAndFinalize(t *testing.T) {
	img := raster.NewBuffer(16, 16)
	shown := 0
	display := displayFunc(func(image.Image) error { shown++; return nil })

	s := sink.NewOnScreen(img, display)
	require.NoError(t, s.OnSplit(0, [2]sink.Area{
		{ID: 1, Rect: region.Rect{X: 0, Y: 0, W: 8, H: 16}},
		{ID: 2, Rect: region.Rect{X: 8, Y: 0, W: 8, H: 16}},
	}))
	require.Equal(t, 1, shown)

	require.NoError(t, s.OnMerge(3, [2]int{1, 2}))
	require.Equal(t, 1, shown)

	require.NoError(t, s.OnFinalize())
	require.Equal(t, 2, shown)
}

type displayFunc func(image.Image) error

func (f displayFunc) Show(img image.Image) error { return f(img) }

func TestOnDiskWritesAContainerAndTrailingFrames(t *testing.T) {
	img := raster.NewBuffer(8, 8)
	var buf bytes.Buffer

	s, err := sink.NewOnDisk(img, &buf)
	require.NoError(t, err)

	require.NoError(t, s.OnSplit(0, [2]sink.Area{
		{ID: 1, Rect: region.Rect{X: 0, Y: 0, W: 4, H: 8}},
		{ID: 2, Rect: region.Rect{X: 4, Y: 0, W: 4, H: 8}},
	}))
	require.NoError(t, s.OnFinalize())

	require.Greater(t, buf.Len(), 0)
}
