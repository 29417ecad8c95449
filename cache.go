// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morphorm

// Cache is the read-write collaborator holding per-node intermediate
// layout state and the final computed rectangle. The solver has
// exclusive mutable access to it for the duration of one [Layout] call;
// between calls, all intermediate fields may be freely overwritten —
// only PosX, PosY, Width, Height, and the geometry-changed bits need to
// survive as "the answer from last time" for callers that diff them.
//
// N is the same node identity type used by [Hierarchy] and
// [Properties].
type Cache[N comparable] interface {
	// Visible reports whether node should be laid out at all. An
	// invisible node and its cache entries are left untouched by
	// [Layout].
	Visible(node N) bool

	// PosX, PosY, Width, Height get/set the final rectangle of node.
	// Positions are not parent-relative: the solver adds the parent's
	// own position to each child's, so every position is in the root's
	// coordinate space.
	PosX(node N) float32
	SetPosX(node N, v float32)
	PosY(node N) float32
	SetPosY(node N, v float32)
	Width(node N) float32
	SetWidth(node N, v float32)
	Height(node N) float32
	SetHeight(node N, v float32)

	// NewSize, SetNewSize get/set the node's resolved size along axis
	// during the current pass, before it is committed to Width/Height.
	NewSize(node N, axis Direction) float32
	SetNewSize(node N, axis Direction, v float32)
	// NewWidth and NewHeight read NewSize for a specific axis; used
	// where the axis is fixed (e.g. border resolution always against
	// width) regardless of which axis the caller is currently solving.
	NewWidth(node N) float32
	NewHeight(node N) float32

	// Before, SetBefore, After, SetAfter get/set the resolved space
	// before/after node along axis.
	Before(node N, axis Direction) float32
	SetBefore(node N, axis Direction, v float32)
	After(node N, axis Direction) float32
	SetAfter(node N, axis Direction, v float32)

	// ChildSizeSum and ChildSizeMax are the running sum and maximum,
	// along axis, of node's parent-directed children's used space
	//; they are this node's own accumulators when node is
	// treated as a parent.
	ChildSizeSum(node N, axis Direction) float32
	SetChildSizeSum(node N, axis Direction, v float32)
	ChildSizeMax(node N, axis Direction) float32
	SetChildSizeMax(node N, axis Direction, v float32)

	// StackFirstChild and StackLastChild report whether node is the
	// first/last parent-directed child of its parent, or (for a
	// self-directed node) both, since it is its own stack of one.
	StackFirstChild(node N) bool
	SetStackFirstChild(node N, v bool)
	StackLastChild(node N) bool
	SetStackLastChild(node N, v bool)

	// FreeSpace and StretchSum are node's local per-axis flex-pass
	// accumulators: the pixel budget and total flex weight still
	// available for stretch items that resolve against node's own
	// accumulators rather than its parent's.
	FreeSpace(node N, axis Direction) float32
	SetFreeSpace(node N, axis Direction, v float32)
	StretchSum(node N, axis Direction) float32
	SetStretchSum(node N, axis Direction, v float32)

	// GeometryChanged returns the bits set since the start of the
	// current [Layout] call. SetGeometryChanged sets (v true) or clears
	// (v false) a single bit; Pass 1 clears all four bits of every
	// visible node through it at the start of each call.
	GeometryChanged(node N) GeometryChanged
	SetGeometryChanged(node N, bit GeometryChanged, v bool)
}

// Rounder is an optional interface a [Cache] may implement to turn on
// pixel rounding: when RoundPixels returns true, percentage and
// flex products round to the nearest integer before clamping. All other
// math is left in binary floating point. This is a runtime check, not a
// build tag, so both code paths can be exercised by the same test
// binary.
type Rounder interface {
	RoundPixels() bool
}

func roundEnabled[N comparable](cache Cache[N]) bool {
	r, ok := cache.(Rounder)
	return ok && r.RoundPixels()
}

func maybeRound(v float32, round bool) float32 {
	if !round {
		return v
	}
	return roundf(v)
}

// Size returns the final, committed size of node along axis.
func Size[N comparable](cache Cache[N], node N, axis Direction) float32 {
	if axis == DirectionX {
		return cache.Width(node)
	}
	return cache.Height(node)
}

// SetSize sets the final, committed size of node along axis.
func SetSize[N comparable](cache Cache[N], node N, axis Direction, v float32) {
	if axis == DirectionX {
		cache.SetWidth(node, v)
	} else {
		cache.SetHeight(node, v)
	}
}

// Pos returns the final, committed position of node along axis.
func Pos[N comparable](cache Cache[N], node N, axis Direction) float32 {
	if axis == DirectionX {
		return cache.PosX(node)
	}
	return cache.PosY(node)
}

// SetPos sets the final, committed position of node along axis.
func SetPos[N comparable](cache Cache[N], node N, axis Direction, v float32) {
	if axis == DirectionX {
		cache.SetPosX(node, v)
	} else {
		cache.SetPosY(node, v)
	}
}

// NewSizeAxis returns cache.NewWidth for [DirectionX] and
// cache.NewHeight otherwise. The solver itself does not call it: border
// resolution reads cache.NewWidth directly.
func NewSizeAxis[N comparable](cache Cache[N], node N, axis Direction) float32 {
	if axis == DirectionX {
		return cache.NewWidth(node)
	}
	return cache.NewHeight(node)
}

// ChildSizeForLayout returns cache.ChildSizeSum when axis is the
// primary axis of layoutType, and cache.ChildSizeMax otherwise — the
// "fallback" used throughout the solver to derive an Auto node's size
// from its children.
func ChildSizeForLayout[N comparable](cache Cache[N], node N, axis Direction, layoutType LayoutType) float32 {
	if primary, ok := layoutType.Direction(); ok && primary == axis {
		return cache.ChildSizeSum(node, axis)
	}
	return cache.ChildSizeMax(node, axis)
}
