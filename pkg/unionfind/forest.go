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

// Package unionfind implements the disjoint-set forest with per-root
// neighbor sets that drives the Merge phase: it tracks which leaves have
// been coalesced into which connected-component identity, and which
// identities are still adjacent and have not yet been checked for merge in
// the current cycle.
package unionfind

import "github.com/lucaSartore/splitmerge/pkg/segerr"

// ID identifies a disjoint-set item: a split-tree leaf or a merged region.
type ID int

type item struct {
	parent    ID
	neighbors map[ID]struct{}
}

// Forest is the union-find structure. The zero value is not usable; build
// one with New.
type Forest struct {
	items map[ID]*item
	roots map[ID]struct{}
}

// New returns an empty forest.
func New() *Forest {
	return &Forest{items: make(map[ID]*item), roots: make(map[ID]struct{})}
}

// Add inserts a new singleton set. It fails with segerr.DuplicateID if id
// is already present.
func (f *Forest) Add(id ID) error {
	if _, ok := f.items[id]; ok {
		return segerr.New(segerr.DuplicateID, "unionfind: id already present")
	}
	f.items[id] = &item{parent: id, neighbors: make(map[ID]struct{})}
	f.roots[id] = struct{}{}
	return nil
}

// SetNeighbors records a and b as adjacent roots. Symmetric; a no-op if
// they are already neighbors.
func (f *Forest) SetNeighbors(a, b ID) error {
	ia, ok := f.items[a]
	if !ok {
		return segerr.New(segerr.NotFound, "unionfind: unknown id")
	}
	ib, ok := f.items[b]
	if !ok {
		return segerr.New(segerr.NotFound, "unionfind: unknown id")
	}
	ia.neighbors[b] = struct{}{}
	ib.neighbors[a] = struct{}{}
	return nil
}

// Find returns id's current root, compressing the path as it walks.
func (f *Forest) Find(id ID) (ID, error) {
	it, ok := f.items[id]
	if !ok {
		return 0, segerr.New(segerr.NotFound, "unionfind: unknown id")
	}
	if it.parent == id {
		return id, nil
	}
	root, err := f.Find(it.parent)
	if err != nil {
		return 0, err
	}
	it.parent = root
	return root, nil
}

// Unite resolves a and b to their current roots, allocates a fresh item
// newID as their common parent, and unions their neighbor sets (excluding
// each other and self). newID must not already be present.
func (f *Forest) Unite(newID ID, a, b ID) error {
	if _, ok := f.items[newID]; ok {
		return segerr.New(segerr.DuplicateID, "unionfind: id already present")
	}
	rootA, err := f.Find(a)
	if err != nil {
		return err
	}
	rootB, err := f.Find(b)
	if err != nil {
		return err
	}

	neighbors := make(map[ID]struct{})
	for n := range f.items[rootA].neighbors {
		if n != rootA && n != rootB {
			neighbors[n] = struct{}{}
		}
	}
	for n := range f.items[rootB].neighbors {
		if n != rootA && n != rootB {
			neighbors[n] = struct{}{}
		}
	}

	f.items[rootA].parent = newID
	f.items[rootB].parent = newID
	f.items[newID] = &item{parent: newID, neighbors: neighbors}

	delete(f.roots, rootA)
	delete(f.roots, rootB)
	f.roots[newID] = struct{}{}
	return nil
}

// UnmarkNeighbors removes the mutual neighbor entry between a and b. It is
// best-effort: a and b may no longer be roots by the time it runs, in which
// case it still clears the stale entry so a later clear_data pass does not
// need to special-case it.
func (f *Forest) UnmarkNeighbors(a, b ID) {
	if ia, ok := f.items[a]; ok {
		delete(ia.neighbors, b)
	}
	if ib, ok := f.items[b]; ok {
		delete(ib.neighbors, a)
	}
}

// Roots returns the current set of root IDs, in no particular order.
func (f *Forest) Roots() []ID {
	out := make([]ID, 0, len(f.roots))
	for r := range f.roots {
		out = append(out, r)
	}
	return out
}

// IsRoot reports whether id is currently a root.
func (f *Forest) IsRoot(id ID) bool {
	_, ok := f.roots[id]
	return ok
}

// Neighbors returns id's recorded neighbor IDs. Meaningful only when id is
// a root.
func (f *Forest) Neighbors(id ID) []ID {
	it, ok := f.items[id]
	if !ok {
		return nil
	}
	out := make([]ID, 0, len(it.neighbors))
	for n := range it.neighbors {
		out = append(out, n)
	}
	return out
}

// PairsToCheck greedily selects a set of unordered root pairs such that
// every root participates in at most one pair: it walks the roots, and for
// each one not yet claimed, claims one of its neighbors that is also a root
// and not yet claimed. This is what lets every pair in a cycle be dispatched
// to a worker and applied later without any of them needing to re-resolve a
// stale root ID.
func (f *Forest) PairsToCheck() [][2]ID {
	claimed := make(map[ID]struct{}, len(f.roots))
	var pairs [][2]ID
	for a := range f.roots {
		if _, done := claimed[a]; done {
			continue
		}
		for n := range f.items[a].neighbors {
			if _, done := claimed[n]; done {
				continue
			}
			if !f.IsRoot(n) {
				continue
			}
			claimed[a] = struct{}{}
			claimed[n] = struct{}{}
			pairs = append(pairs, [2]ID{a, n})
			break
		}
	}
	return pairs
}

// ClearData rewrites every root's neighbor set so it contains only current
// roots, dropping any entry that is not itself a root and any self-entry.
// Run once at the end of every merge cycle so the next cycle's
// PairsToCheck only ever sees root-to-root adjacency.
func (f *Forest) ClearData() {
	for root := range f.roots {
		it := f.items[root]
		cleaned := make(map[ID]struct{}, len(it.neighbors))
		for n := range it.neighbors {
			resolved, err := f.Find(n)
			if err != nil || resolved == root {
				continue
			}
			if f.IsRoot(resolved) {
				cleaned[resolved] = struct{}{}
			}
		}
		it.neighbors = cleaned
	}
}
