// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morphorm

// Hierarchy is the read-only collaborator that describes tree
// structure. The solver never mutates it and never discovers structure
// any other way. N is the embedder's node identity type — an entity ID,
// a pointer, anything comparable enough to key a [Cache].
//
// The visiting methods follow the same callback shape as
// [cogentcore.org/core/tree.Node.WalkDown]: yield is called once per
// visited node, in order; the solver's own yield functions always
// return true (it never needs to stop early), but a Hierarchy is free
// to stop early itself if yield returns false.
type Hierarchy[N any] interface {
	// Down calls yield once for every node in the tree, parent before
	// child (pre-order).
	Down(yield func(N) bool)
	// Up calls yield once for every node in the tree, child before
	// parent (post-order).
	Up(yield func(N) bool)
	// Children returns the children of parent in declared order.
	Children(parent N) []N
	// Parent returns the parent of node, or the zero value and false
	// if node is a root.
	Parent(node N) (N, bool)
}
