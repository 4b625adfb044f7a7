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

package region_test

import (
	"testing"

	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/lucaSartore/splitmerge/pkg/region"
	"github.com/stretchr/testify/require"
)

func TestSplitParallelToY(t *testing.T) {
	img := raster.NewBuffer(200, 100)
	root := region.NewView(img)

	views, err := region.Split(root, region.ParallelToY, 199)
	require.NoError(t, err)
	require.Equal(t, 199, views[0].W)
	require.Equal(t, 1, views[1].W)
	require.Equal(t, 100, views[0].H)
	require.Equal(t, 100, views[1].H)
	require.Equal(t, 0, views[0].X)
	require.Equal(t, 199, views[1].X)
}

func TestSplitAtExtentIsInvalid(t *testing.T) {
	img := raster.NewBuffer(200, 100)
	root := region.NewView(img)

	_, err := region.Split(root, region.ParallelToY, 200)
	require.Error(t, err)
}

func TestSplitAtZeroIsInvalid(t *testing.T) {
	img := raster.NewBuffer(200, 100)
	root := region.NewView(img)

	_, err := region.Split(root, region.ParallelToY, 0)
	require.Error(t, err)
}

func TestTouchesAndOverlaps(t *testing.T) {
	a := region.Rect{X: 0, Y: 0, W: 100, H: 100}
	b := region.Rect{X: 100, Y: 0, W: 100, H: 100}
	require.True(t, region.TouchesAndOverlaps(a, b))

	c := region.Rect{X: 101, Y: 0, W: 100, H: 100}
	require.False(t, region.TouchesAndOverlaps(a, c))
}

func TestSplitPartitionsExactly(t *testing.T) {
	img := raster.NewBuffer(200, 100)
	root := region.NewView(img)

	views, err := region.Split(root, region.ParallelToX, 37)
	require.NoError(t, err)
	require.Equal(t, root.Area(), views[0].Area()+views[1].Area())
	require.True(t, region.TouchesAndOverlaps(views[0].Rect, views[1].Rect))
}
