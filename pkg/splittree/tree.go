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

// Package splittree is the binary tree of region views built top-down by
// the Split phase. It is grown purely by appending: nothing is ever
// removed or reparented once written, which is what lets the orchestrator
// own it exclusively with no synchronization beyond the phase's own
// sequencing.
package splittree

import "github.com/lucaSartore/splitmerge/pkg/region"

// NodeID is a dense index into the tree, assigned in insertion order
// starting at 0 for the root.
type NodeID int

// Node is one split-tree node. Children is nil for a leaf.
type Node struct {
	ID       NodeID
	View     region.View
	Children *[2]NodeID
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool { return n.Children == nil }

// Leaf pairs a leaf's ID with its view, as returned by CollectLeaves.
type Leaf struct {
	ID   NodeID
	View region.View
}

// Tree is the append-only split tree. The zero value is not usable; build
// one with New.
type Tree struct {
	nodes []Node
}

// New creates a tree containing only the root, covering the whole of view.
func New(view region.View) *Tree {
	return &Tree{nodes: []Node{{ID: 0, View: view}}}
}

// Append adds a new leaf node for view and returns its freshly assigned ID.
func (t *Tree) Append(view region.View) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{ID: id, View: view})
	return id
}

// SetChildren marks parent as an internal node with the given children.
// parent must already exist and must not already have children.
func (t *Tree) SetChildren(parent NodeID, a, b NodeID) {
	children := [2]NodeID{a, b}
	t.nodes[parent].Children = &children
}

// Node returns the node with the given ID.
func (t *Tree) Node(id NodeID) Node { return t.nodes[id] }

// Len returns the number of nodes in the tree, i.e. the next ID Append
// would hand out.
func (t *Tree) Len() int { return len(t.nodes) }

// CollectLeaves walks the tree from root in pre-order and returns every
// leaf in the order visited. Used once, at merge-phase initialization.
func (t *Tree) CollectLeaves() []Leaf {
	var out []Leaf
	var walk func(id NodeID)
	walk = func(id NodeID) {
		n := t.nodes[id]
		if n.IsLeaf() {
			out = append(out, Leaf{ID: id, View: n.View})
			return
		}
		walk(n.Children[0])
		walk(n.Children[1])
	}
	walk(0)
	return out
}
