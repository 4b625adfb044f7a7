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

package unionfind_test

import (
	"sort"
	"testing"

	"github.com/lucaSartore/splitmerge/pkg/segerr"
	"github.com/lucaSartore/splitmerge/pkg/unionfind"
	"github.com/stretchr/testify/require"
)

func TestSpecScenarioS6(t *testing.T) {
	f := unionfind.New()
	for _, id := range []unionfind.ID{1, 2, 3, 4} {
		require.NoError(t, f.Add(id))
	}
	require.NoError(t, f.SetNeighbors(1, 2))
	require.NoError(t, f.SetNeighbors(2, 3))
	require.NoError(t, f.SetNeighbors(3, 4))

	require.NoError(t, f.Unite(5, 2, 3))
	f.ClearData()

	roots := f.Roots()
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })
	require.Equal(t, []unionfind.ID{1, 4, 5}, roots)

	neighbors5 := f.Neighbors(5)
	sort.Slice(neighbors5, func(i, j int) bool { return neighbors5[i] < neighbors5[j] })
	require.Equal(t, []unionfind.ID{1, 4}, neighbors5)

	require.Equal(t, []unionfind.ID{5}, f.Neighbors(1))
	require.Equal(t, []unionfind.ID{5}, f.Neighbors(4))
}

func TestAddDuplicateFails(t *testing.T) {
	f := unionfind.New()
	require.NoError(t, f.Add(1))
	err := f.Add(1)
	require.Error(t, err)
	require.Equal(t, segerr.DuplicateID, segerr.Cause(err))
}

func TestUniteSingleElementForestProducesOneRoot(t *testing.T) {
	f := unionfind.New()
	require.NoError(t, f.Add(1))
	require.NoError(t, f.Add(2))
	require.NoError(t, f.Unite(3, 1, 2))
	require.Len(t, f.Roots(), 1)

	root, err := f.Find(1)
	require.NoError(t, err)
	require.Equal(t, unionfind.ID(3), root)
}

func TestFindAlwaysResolvesToALiveRoot(t *testing.T) {
	f := unionfind.New()
	for _, id := range []unionfind.ID{1, 2, 3, 4} {
		require.NoError(t, f.Add(id))
	}
	require.NoError(t, f.Unite(5, 1, 2))
	require.NoError(t, f.Unite(6, 5, 3))

	for _, id := range []unionfind.ID{1, 2, 3, 5} {
		root, err := f.Find(id)
		require.NoError(t, err)
		require.True(t, f.IsRoot(root))
	}
}

func TestPairsToCheckNeverRepeatsAnID(t *testing.T) {
	f := unionfind.New()
	for _, id := range []unionfind.ID{1, 2, 3, 4, 5, 6} {
		require.NoError(t, f.Add(id))
	}
	require.NoError(t, f.SetNeighbors(1, 2))
	require.NoError(t, f.SetNeighbors(2, 3))
	require.NoError(t, f.SetNeighbors(3, 4))
	require.NoError(t, f.SetNeighbors(4, 5))
	require.NoError(t, f.SetNeighbors(5, 6))

	pairs := f.PairsToCheck()
	seen := make(map[unionfind.ID]int)
	for _, p := range pairs {
		seen[p[0]]++
		seen[p[1]]++
	}
	for id, count := range seen {
		require.LessOrEqualf(t, count, 1, "id %d appeared in more than one pair", id)
	}
}

func TestUnmarkNeighborsIsBestEffort(t *testing.T) {
	f := unionfind.New()
	require.NoError(t, f.Add(1))
	require.NoError(t, f.Add(2))
	require.NoError(t, f.SetNeighbors(1, 2))

	f.UnmarkNeighbors(1, 2)
	require.Empty(t, f.Neighbors(1))
	require.Empty(t, f.Neighbors(2))

	// Unmarking an already-unmarked or unknown pair must not panic.
	f.UnmarkNeighbors(1, 2)
	f.UnmarkNeighbors(99, 100)
}
