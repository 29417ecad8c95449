// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morphorm

// sizeUp is Pass 2: iterating the tree bottom-up, it folds each
// node's content size and fixed/auto geometry into its parent's
// ChildSizeSum/ChildSizeMax accumulators, which Auto-sized parents
// (resolved later, in the same pass, since a node's own min/max
// resolution reads its own accumulators first) and the Row/Column
// solver's content-size inference both depend on.
func sizeUp[N comparable](cache Cache[N], hierarchy Hierarchy[N], props Properties[N]) {
	hierarchy.Up(func(node N) bool {
		if !cache.Visible(node) {
			return true
		}
		parent, hasParent := hierarchy.Parent(node)
		sizeUpAxis(cache, hierarchy, props, node, parent, hasParent, DirectionX)
		sizeUpAxis(cache, hierarchy, props, node, parent, hasParent, DirectionY)
		return true
	})
}

func sizeUpAxis[N comparable](cache Cache[N], hierarchy Hierarchy[N], props Properties[N], node N, parent N, hasParent bool, dir Direction) {
	parentLayoutType := LayoutColumn
	if hasParent {
		parentLayoutType = propLayoutType(props, parent)
	}
	layoutType := propLayoutType(props, node)

	var childBefore, childAfter, rowColBetween Unit = Auto, Auto, Auto
	if hasParent {
		childBefore = propUnitOrAuto[N](props.ChildBefore(parent, dir))
		childAfter = propUnitOrAuto[N](props.ChildAfter(parent, dir))
		rowColBetween = propUnitOrAuto[N](props.RowColBetween(parent, dir))
	}

	before := propUnitOrAuto[N](props.Before(node, dir))
	after := propUnitOrAuto[N](props.After(node, dir))
	minBefore := propUnitOrAuto[N](props.MinBefore(node, dir)).Resolve(0, 0)
	maxBefore := propUnitOrAuto[N](props.MaxBefore(node, dir)).Resolve(0, infinity)
	minAfter := propUnitOrAuto[N](props.MinAfter(node, dir)).Resolve(0, 0)
	maxAfter := propUnitOrAuto[N](props.MaxAfter(node, dir)).Resolve(0, infinity)
	size := propSize(props, node, dir)

	// Fold the node's own intrinsic content into its own accumulators,
	// so that a leaf with content reports a nonzero auto-size to its
	// parent.
	contentSize := propContentSize(props, node, dir)
	cache.SetChildSizeMax(node, dir, max32(cache.ChildSizeMax(node, dir), contentSize))
	cache.SetChildSizeSum(node, dir, max32(cache.ChildSizeSum(node, dir), contentSize))

	autoFallback := ChildSizeForLayout(cache, node, dir, layoutType)
	if layoutType == LayoutGrid {
		autoFallback = gridAutoSize(cache, props, node, dir, 0)
	}
	minSize := nonNeg(propUnitOrAuto[N](props.MinSize(node, dir)).Resolve(0, autoFallback))
	maxSize := propUnitOrAuto[N](props.MaxSize(node, dir)).Resolve(0, infinity)
	maxSize = max32(maxSize, minSize)

	borderBefore := propUnitOrAuto[N](props.BorderBefore(node, dir)).Resolve(0, 0)
	borderAfter := propUnitOrAuto[N](props.BorderAfter(node, dir)).Resolve(0, 0)

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

	if parentLayoutType == LayoutGrid {
		// A Grid parent sizes its tracks from its own GridRows/GridCols
		// definitions, not from children's used space, so a
		// child of a Grid contributes nothing to Pass 2's accumulators
		// and gets no NewSize/Before/After from this pass at all; Pass
		// 3's grid solver positions and sizes it directly from the
		// track table instead. See gridAutoSize in grid.go for how a
		// Grid's *own* Auto size is derived.
		return
	}

	var newBefore, newSize, newAfter, usedSpace float32

	switch before.Kind {
	case UnitKindPixels:
		newBefore = clampf(before.Value, minBefore, maxBefore)
		usedSpace += newBefore
	case UnitKindStretch:
		usedSpace += nonNeg(minBefore)
	}

	switch size.Kind {
	case UnitKindPixels:
		newSize = clampf(size.Value, minSize, maxSize)
		usedSpace += newSize
	case UnitKindAuto:
		newSize = autoFallback
		newSize = clampf(newSize, minSize, maxSize)
		newSize += borderBefore + borderAfter
		usedSpace += newSize
	case UnitKindStretch:
		usedSpace += minSize
	}

	switch after.Kind {
	case UnitKindPixels:
		newAfter = clampf(after.Value, minAfter, maxAfter)
		usedSpace += newAfter
	case UnitKindStretch:
		usedSpace += nonNeg(minAfter)
	}

	cache.SetNewSize(node, dir, newSize)
	cache.SetBefore(node, dir, newBefore)
	cache.SetAfter(node, dir, newAfter)

	if hasParent && propPositionType(props, node) == PositionParentDirected {
		cache.SetChildSizeSum(parent, dir, cache.ChildSizeSum(parent, dir)+usedSpace)
		cache.SetChildSizeMax(parent, dir, max32(usedSpace, cache.ChildSizeMax(parent, dir)))
	}
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
