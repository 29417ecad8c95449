// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morphorm

import "sort"

// stretchSlot names which of a child's three axis quantities a pending
// stretch item resolves into.
type stretchSlot int8

const (
	slotBefore stretchSlot = iota
	slotSize
	slotAfter
)

// stretchItem is one pending flex allocation: a child's stretch factor
// for one of Before/Size/After, with the min/max it must be clamped
// into once the flex pass computes its proportional share.
type stretchItem[N any] struct {
	node     N
	value    float32
	min, max float32
	slot     stretchSlot
}

// solveRowCol is Pass 3a, applied once per axis per Row/Column
// parent: primary == true means dir is that parent's primary axis (the
// one along which children stack and consume flex space together),
// primary == false means dir is the secondary axis (each child's
// stretch resolves independently against its own local accumulators
// unless the child is itself stacked along a *different* parent whose
// primary axis happens to be dir — handled by the position-type switch
// in the flex pass below).
func solveRowCol[N comparable](cache Cache[N], hierarchy Hierarchy[N], props Properties[N], sublayout any, parent N, dir Direction, primary bool) {
	round := roundEnabled(cache)
	parentLayoutType := propLayoutType(props, parent)
	childBefore := propUnitOrAuto[N](props.ChildBefore(parent, dir))
	childAfter := propUnitOrAuto[N](props.ChildAfter(parent, dir))
	rowColBetween := propUnitOrAuto[N](props.RowColBetween(parent, dir))

	parentWidthHard := cache.NewWidth(parent)
	parentBorderBefore := propUnitOrAuto[N](props.BorderBefore(parent, dir)).Resolve(parentWidthHard, 0)
	parentBorderAfter := propUnitOrAuto[N](props.BorderAfter(parent, dir)).Resolve(parentWidthHard, 0)

	parentSize := cache.NewSize(parent, dir) - parentBorderBefore - parentBorderAfter

	parentFreeSpace := parentSize
	parentStretchSum := float32(0)

	var items []stretchItem[N]

	children := hierarchy.Children(parent)

	// Inflexible pass.
	for _, node := range children {
		if !cache.Visible(node) {
			continue
		}

		layoutType := propLayoutType(props, node)

		before := propUnitOrAuto[N](props.Before(node, dir))
		after := propUnitOrAuto[N](props.After(node, dir))

		minBefore := propUnitOrAuto[N](props.MinBefore(node, dir)).Resolve(parentSize, -infinity)
		maxBefore := propUnitOrAuto[N](props.MaxBefore(node, dir)).Resolve(parentSize, infinity)
		minAfter := propUnitOrAuto[N](props.MinAfter(node, dir)).Resolve(parentSize, -infinity)
		maxAfter := propUnitOrAuto[N](props.MaxAfter(node, dir)).Resolve(parentSize, infinity)

		size := propSize(props, node, dir)

		autoSize := contentSizeSmart(cache, props, sublayout, node, parent, dir, layoutType, primary)

		minSize := nonNeg(propUnitOrAuto[N](props.MinSize(node, dir)).Resolve(parentSize, autoSize))
		maxSizeUnit, hasMax := props.MaxSize(node, dir)
		var maxSize float32
		if hasMax && !maxSizeUnit.IsAuto() {
			maxSize = maxSizeUnit.Resolve(parentSize, autoSize)
		} else {
			maxSize = infinity
		}
		maxSize = max32(maxSize, minSize)

		borderBefore := propUnitOrAuto[N](props.BorderBefore(node, dir)).Resolve(parentWidthHard, 0)
		borderAfter := propUnitOrAuto[N](props.BorderAfter(node, dir)).Resolve(parentWidthHard, 0)

		positionType := propPositionType(props, node)

		if layoutDir, ok := parentLayoutType.Direction(); ok {
			if layoutDir == dir {
				if before.IsAuto() {
					if cache.StackFirstChild(node) {
						before = childBefore
					} else {
						before = rowColBetween
					}
				}
				if after.IsAuto() && cache.StackLastChild(node) {
					after = childAfter
				}
			} else {
				if before.IsAuto() {
					before = childBefore
				}
				if after.IsAuto() {
					after = childAfter
				}
			}
		}

		stretchSum := float32(0)
		freeSpace := parentSize

		newBefore := incorporateAxis(before, parentSize, minBefore, maxBefore, &freeSpace, &stretchSum, slotBefore, &items, node, 0, round)
		clampedAuto := clampf(autoSize, minSize, maxSize)
		newSize := incorporateAxis(size, parentSize, minSize, maxSize, &freeSpace, &stretchSum, slotSize, &items, node, clampedAuto+borderBefore+borderAfter, round)
		newAfter := incorporateAxis(after, parentSize, minAfter, maxAfter, &freeSpace, &stretchSum, slotAfter, &items, node, 0, round)

		cache.SetNewSize(node, dir, newSize)
		cache.SetBefore(node, dir, newBefore)
		cache.SetAfter(node, dir, newAfter)

		if positionType == PositionParentDirected {
			parentFreeSpace -= parentSize - freeSpace
			parentStretchSum += stretchSum
		}

		cache.SetFreeSpace(node, dir, freeSpace)
		cache.SetStretchSum(node, dir, stretchSum)
	}

	if parentStretchSum == 0 {
		parentStretchSum = 1
	}

	// Sort descending by resolved minimum so that clamping a
	// large-minimum item first redistributes the remainder fairly.
	sort.SliceStable(items, func(i, j int) bool { return items[i].min > items[j].min })

	// Flex pass.
	for _, it := range items {
		positionType := propPositionType(props, it.node)

		var freeSpace, stretchSum float32
		useParent := false
		if positionType == PositionSelfDirected {
			freeSpace = cache.FreeSpace(it.node, dir)
			stretchSum = cache.StretchSum(it.node, dir)
		} else if layoutDir, ok := parentLayoutType.Direction(); ok && layoutDir == dir {
			useParent = true
			stretchSum = parentStretchSum
			freeSpace = parentFreeSpace
		} else {
			freeSpace = cache.FreeSpace(it.node, dir)
			stretchSum = cache.StretchSum(it.node, dir)
		}

		if stretchSum == 0 {
			stretchSum = 1
		}

		newValue := maybeRound(freeSpace*it.value/stretchSum, round)
		newValue = clampf(newValue, it.min, it.max)

		switch it.slot {
		case slotBefore:
			cache.SetBefore(it.node, dir, newValue)
		case slotSize:
			cache.SetNewSize(it.node, dir, newValue)
		case slotAfter:
			cache.SetAfter(it.node, dir, newValue)
		}

		if useParent {
			parentFreeSpace -= newValue
			parentStretchSum -= it.value
		} else {
			cache.SetStretchSum(it.node, dir, stretchSum-it.value)
			cache.SetFreeSpace(it.node, dir, freeSpace-newValue)
		}
	}

	// Positioning pass.
	currentPos := float32(0)
	parentPos := Pos(cache, parent, dir) + parentBorderBefore

	for _, node := range children {
		if !cache.Visible(node) {
			continue
		}

		before := cache.Before(node, dir)
		after := cache.After(node, dir)
		newSize := cache.NewSize(node, dir)

		var newPos float32
		if propPositionType(props, node) == PositionSelfDirected {
			newPos = parentPos + before
		} else {
			newPos = parentPos + currentPos + before
			if layoutDir, ok := parentLayoutType.Direction(); ok && layoutDir == dir {
				currentPos += before + newSize + after
			}
		}

		if newPos != Pos(cache, node, dir) {
			cache.SetGeometryChanged(node, PosChanged(dir), true)
		}
		if newSize != Size(cache, node, dir) {
			cache.SetGeometryChanged(node, SizeChanged(dir), true)
		}

		SetPos(cache, node, dir, newPos)
		SetSize(cache, node, dir, newSize)
	}
}

// incorporateAxis resolves one of a child's Before/Size/After
// quantities against the running free-space budget, pushing a
// [stretchItem] instead of a concrete value when units is Stretch.
func incorporateAxis[N any](units Unit, parentSize, min, max float32, freeSpace *float32, stretchSum *float32, slot stretchSlot, items *[]stretchItem[N], node N, autoSize float32, round bool) float32 {
	switch units.Kind {
	case UnitKindPixels:
		v := clampf(units.Value, min, max)
		*freeSpace -= v
		return v
	case UnitKindPercentage:
		v := maybeRound((units.Value/100)*parentSize, round)
		v = clampf(v, min, max)
		*freeSpace -= v
		return v
	case UnitKindStretch:
		*stretchSum += units.Value
		*items = append(*items, stretchItem[N]{node: node, value: units.Value, min: min, max: max, slot: slot})
		return 0
	default: // Auto
		*freeSpace -= autoSize
		return autoSize
	}
}
