// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morphorm

// track is one entry of a grid's position/size table: the margins, the
// gutters between tracks, and the tracks themselves all share this
// shape, indexed 0..2*len(defs)+1: index 0 is the child-before margin,
// track i sits at index 2*i+1, the gutter after track i at 2*i+2, index
// 2*len(defs) carries no size and marks the closing edge of the last
// track, and the last index is the child-after margin.
type track struct {
	pos, size float32
}

// solveGrid is Pass 3b: build a combined edge/gutter/track table
// per axis, size the fixed (Pixels, Percentage) entries first, then
// distribute remaining space across Stretch entries, sweep positions
// left-to-right/top-to-bottom, and place each child by reading the
// table at its row/col start and end.
func solveGrid[N comparable](cache Cache[N], hierarchy Hierarchy[N], props Properties[N], parent N) {
	round := roundEnabled(cache)

	parentWidth := cache.NewWidth(parent)
	parentHeight := cache.NewHeight(parent)

	gridRows := propGridRowsCols(props, parent, DirectionY)
	gridCols := propGridRowsCols(props, parent, DirectionX)

	rows := buildAxis(cache, props, parent, gridRows, DirectionY, parentHeight, round)
	cols := buildAxis(cache, props, parent, gridCols, DirectionX, parentWidth, round)

	rowStart := Pos(cache, parent, DirectionY)
	colStart := Pos(cache, parent, DirectionX)
	sweepPositions(rows, rowStart)
	sweepPositions(cols, colStart)

	for _, node := range hierarchy.Children(parent) {
		if !cache.Visible(node) {
			continue
		}

		rowIndex := 2*propRowColIndex(props, node, DirectionY) + 1
		rowSpan := 2*propRowColSpan(props, node, DirectionY) - 1
		rowEnd := rowIndex + rowSpan

		colIndex := 2*propRowColIndex(props, node, DirectionX) + 1
		colSpan := 2*propRowColSpan(props, node, DirectionX) - 1
		colEnd := colIndex + colSpan

		newPosX := cols[colIndex].pos
		newWidth := cols[colEnd].pos - newPosX

		newPosY := rows[rowIndex].pos
		newHeight := rows[rowEnd].pos - newPosY

		if newPosX != Pos(cache, node, DirectionX) {
			cache.SetGeometryChanged(node, PosXChanged, true)
		}
		if newPosY != Pos(cache, node, DirectionY) {
			cache.SetGeometryChanged(node, PosYChanged, true)
		}
		if newWidth != cache.Width(node) {
			cache.SetGeometryChanged(node, WidthChanged, true)
		}
		if newHeight != cache.Height(node) {
			cache.SetGeometryChanged(node, HeightChanged, true)
		}

		cache.SetPosX(node, newPosX)
		cache.SetPosY(node, newPosY)
		cache.SetWidth(node, newWidth)
		cache.SetHeight(node, newHeight)

		cache.SetNewSize(node, DirectionX, cache.Width(node))
		cache.SetNewSize(node, DirectionY, cache.Height(node))
	}
}

// buildAxis lays out one axis's combined edge/gutter/track table: index
// 0 and the last index are the parent's child-before/child-after
// margins, odd indices are the N track definitions, and the even
// indices between them are the between-track gutters (the
// "2N+2" table).
func buildAxis[N comparable](cache Cache[N], props Properties[N], parent N, defs []Unit, axis Direction, parentSize float32, round bool) []track {
	n := len(defs)
	table := make([]track, 2*n+2)

	before := propUnitOrAuto[N](props.ChildBefore(parent, axis))
	after := propUnitOrAuto[N](props.ChildAfter(parent, axis))
	between := propUnitOrAuto[N](props.RowColBetween(parent, axis))

	freeSpace := parentSize
	stretchSum := float32(0)

	fixOrStretch := func(u Unit) (float32, bool) {
		switch u.Kind {
		case UnitKindPixels:
			freeSpace -= u.Value
			return u.Value, false
		case UnitKindPercentage:
			v := maybeRound((u.Value/100)*parentSize, round)
			freeSpace -= v
			return v, false
		case UnitKindStretch:
			stretchSum += u.Value
			return 0, true
		default:
			return 0, false
		}
	}

	var isStretch [2]bool // [0]=before, [1]=after
	if v, st := fixOrStretch(before); !st {
		table[0].size = v
	} else {
		isStretch[0] = true
	}
	if v, st := fixOrStretch(after); !st {
		table[len(table)-1].size = v
	} else {
		isStretch[1] = true
	}

	trackStretch := make([]bool, n)
	gutterStretch := make([]bool, maxInt(n-1, 0))

	for i, def := range defs {
		idx := 2*i + 1
		if v, st := fixOrStretch(def); !st {
			table[idx].size = v
		} else {
			trackStretch[i] = true
		}

		if i < n-1 {
			gutterIdx := 2*i + 2
			if v, st := fixOrStretch(between); !st {
				table[gutterIdx].size = v
			} else {
				gutterStretch[i] = true
			}
		}
	}

	if stretchSum == 0 {
		stretchSum = 1
	}

	flex := func(u Unit) float32 {
		return maybeRound(freeSpace*u.Value/stretchSum, round)
	}

	if isStretch[0] {
		table[0].size = flex(before)
	}
	if isStretch[1] {
		table[len(table)-1].size = flex(after)
	}
	for i := range defs {
		if trackStretch[i] {
			table[2*i+1].size = flex(defs[i])
		}
		if i < n-1 && gutterStretch[i] {
			table[2*i+2].size = flex(between)
		}
	}

	return table
}

// sweepPositions assigns each table entry's pos as the running sum of
// the preceding entries' sizes, starting from start.
func sweepPositions(table []track, start float32) {
	current := start
	for i := range table {
		table[i].pos = current
		current += table[i].size
	}
	if len(table) > 0 {
		table[len(table)-1].pos = current - table[len(table)-1].size
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// gridAutoSize resolves a [LayoutGrid] node's own Auto size along axis
// as the sum of its resolved track sizes plus gutters and child
// margins, rather than leaving it at zero as Pass 2 normally would for
// a parent whose children contribute nothing to ChildSizeSum/Max (an
// addition beyond a literal port, since the original left grid
// self-sizing as a todo; see the resolved Open Question on this in the
// accompanying design notes).
func gridAutoSize[N comparable](cache Cache[N], props Properties[N], node N, axis Direction, referenceSize float32) float32 {
	var defs []Unit
	if axis == DirectionX {
		defs = propGridRowsCols(props, node, DirectionX)
	} else {
		defs = propGridRowsCols(props, node, DirectionY)
	}

	before := propUnitOrAuto[N](props.ChildBefore(node, axis))
	after := propUnitOrAuto[N](props.ChildAfter(node, axis))
	between := propUnitOrAuto[N](props.RowColBetween(node, axis))

	sum := resolveFixed(before, referenceSize) + resolveFixed(after, referenceSize)
	for i, def := range defs {
		sum += resolveFixed(def, referenceSize)
		if i < len(defs)-1 {
			sum += resolveFixed(between, referenceSize)
		}
	}
	return sum
}

// resolveFixed resolves a grid track/gutter/margin unit for
// auto-sizing purposes: Pixels and Percentage contribute their
// resolved value, Stretch and Auto contribute nothing since they have
// no size absent a free-space budget to distribute.
func resolveFixed(u Unit, referenceSize float32) float32 {
	switch u.Kind {
	case UnitKindPixels:
		return u.Value
	case UnitKindPercentage:
		return (u.Value / 100) * referenceSize
	default:
		return 0
	}
}
