// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morphorm

import "cogentcore.org/core/math32"

// Direction is one of the two layout axes. It is an alias for
// [math32.Dims], the axis enum already used throughout this lineage's
// geometry code, rather than a newly minted type: per the design note
// that per-axis duplication is best handled by an axis enum and an
// axis-indexed accessor table, there is no reason to mint a second X/Y
// enum when the ecosystem already has one, complete with
// [math32.OtherDim] for flipping between the two.
type Direction = math32.Dims

// DirectionX and DirectionY name the two axes. A Row layout's primary
// axis is DirectionX; a Column layout's primary axis is DirectionY.
const (
	DirectionX = math32.X
	DirectionY = math32.Y
)

// LayoutType selects how a node arranges its parent-directed children.
type LayoutType int32 //enums:enum

const (
	// LayoutRow arranges children left to right; primary axis is X.
	LayoutRow LayoutType = iota
	// LayoutColumn arranges children top to bottom; primary axis is Y.
	// This is the default layout type for any node that does not
	// specify one.
	LayoutColumn
	// LayoutGrid arranges children into the cells formed by the node's
	// GridRows and GridCols track definitions.
	LayoutGrid
)

// Direction returns the primary axis of t and true, or the zero
// [Direction] and false if t is [LayoutGrid] (which has no single
// primary axis).
func (t LayoutType) Direction() (Direction, bool) {
	switch t {
	case LayoutRow:
		return DirectionX, true
	case LayoutColumn:
		return DirectionY, true
	default:
		return 0, false
	}
}

// PositionType determines whether a node participates in its parent's
// in-line stacking.
type PositionType int32 //enums:enum

const (
	// PositionParentDirected means the node participates in its
	// parent's stacking along the parent's primary axis, consuming
	// space from the parent's flex budget. This is the default.
	PositionParentDirected PositionType = iota
	// PositionSelfDirected means the node is positioned independently
	// of its siblings: it is its own stack of one, and its Before/After
	// spaces resolve against the parent's full content box rather than
	// the running stack position.
	PositionSelfDirected
)

// GeometryChanged is a bitset recording which of a node's four output
// fields differ from their value before the most recent [Layout] call.
type GeometryChanged uint8

// Bits of [GeometryChanged].
const (
	PosXChanged GeometryChanged = 1 << iota
	PosYChanged
	WidthChanged
	HeightChanged
)

// PosChanged returns the position-changed bit for the given axis.
func PosChanged(axis Direction) GeometryChanged {
	if axis == DirectionX {
		return PosXChanged
	}
	return PosYChanged
}

// SizeChanged returns the size-changed bit for the given axis.
func SizeChanged(axis Direction) GeometryChanged {
	if axis == DirectionX {
		return WidthChanged
	}
	return HeightChanged
}

// Has reports whether bit is set in g.
func (g GeometryChanged) Has(bit GeometryChanged) bool { return g&bit != 0 }
