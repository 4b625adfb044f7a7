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

package splittree_test

import (
	"testing"

	"github.com/lucaSartore/splitmerge/pkg/raster"
	"github.com/lucaSartore/splitmerge/pkg/region"
	"github.com/lucaSartore/splitmerge/pkg/splittree"
	"github.com/stretchr/testify/require"
)

func TestCollectLeavesPreOrderAndPartition(t *testing.T) {
	img := raster.NewBuffer(200, 100)
	root := region.NewView(img)
	tree := splittree.New(root)

	views, err := region.Split(root, region.ParallelToY, 100)
	require.NoError(t, err)
	id1 := tree.Append(views[0])
	id2 := tree.Append(views[1])
	tree.SetChildren(0, id1, id2)

	subViews, err := region.Split(views[0], region.ParallelToX, 50)
	require.NoError(t, err)
	id3 := tree.Append(subViews[0])
	id4 := tree.Append(subViews[1])
	tree.SetChildren(id1, id3, id4)

	leaves := tree.CollectLeaves()
	require.Len(t, leaves, 3)
	require.Equal(t, splittree.NodeID(3), leaves[0].ID)

	area := 0
	for _, l := range leaves {
		area += l.View.Area()
	}
	require.Equal(t, root.Area(), area)
}
