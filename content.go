// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morphorm

import "cogentcore.org/core/math32"

// contentSizeSmart resolves the Auto fallback for a node's size along
// dir. For the primary direction (dir equals the node's own
// layout direction) this is simply the value Pass 2 already
// accumulated. For the secondary direction — the hard case, used for
// things like wrapped text height depending on available width — it
// first resolves the node's extent along the *other* axis (reading it
// from cache if that axis has already been solved this Layout call, or
// running a small local mini-layout over Before/Size/After otherwise),
// then asks [Properties.ContentSizeSecondary] for a content-derived
// extent and clamps the result to be at least the plain accumulated
// answer: intrinsic content sets a lower bound, it never shrinks a
// node's own child-derived size.
func contentSizeSmart[N comparable](cache Cache[N], props Properties[N], sublayout any, node N, parent N, dir Direction, layoutType LayoutType, primary bool) float32 {
	basicAnswer := ChildSizeForLayout(cache, node, dir, layoutType)
	if layoutType == LayoutGrid {
		return gridAutoSize(cache, props, node, dir, 0)
	}

	nodeDir, hasDir := layoutType.Direction()
	if hasDir && nodeDir == dir {
		return basicAnswer
	}

	other := math32.OtherDim(dir)
	var otherDim float32
	if !primary {
		// The other axis has already been solved this call; read its
		// committed NewSize.
		otherDim = cache.NewSize(node, other)
	} else {
		otherDim = preresolveOtherAxis(cache, props, node, parent, layoutType, other)
	}

	computed, ok := props.ContentSizeSecondary(node, sublayout, dir, otherDim)
	if !ok {
		return basicAnswer
	}
	return max32(computed, basicAnswer)
}

// preresolveOtherAxis runs a local mini-layout for the case where the
// current pass is the primary axis and the
// perpendicular axis has not been solved yet: walk Before/Size/After
// along other, subtracting pixel and percentage portions from a running
// remaining-space budget and summing stretch factors, then resolve
// Min/Max/Size against that budget exactly as the main solver would.
func preresolveOtherAxis[N comparable](cache Cache[N], props Properties[N], node N, parent N, layoutType LayoutType, other Direction) float32 {
	parentSize := cache.NewSize(parent, other)
	widthRemaining := parentSize
	stretchSum := float32(0)

	accumulate := func(u Unit) {
		switch u.Kind {
		case UnitKindPixels:
			widthRemaining -= u.Value
		case UnitKindPercentage:
			widthRemaining -= (u.Value / 100) * parentSize
		case UnitKindStretch:
			stretchSum += u.Value
		}
	}

	before := propUnitOrAuto[N](props.Before(node, other))
	accumulate(before)

	size := propSize(props, node, other)
	if size.Kind == UnitKindAuto {
		widthRemaining -= ChildSizeForLayout(cache, node, other, layoutType)
	} else {
		accumulate(size)
	}

	after := propUnitOrAuto[N](props.After(node, other))
	accumulate(after)

	if stretchSum == 0 {
		stretchSum = 1
	}

	resolveAgainst := func(u Unit) float32 {
		switch u.Kind {
		case UnitKindPixels:
			return u.Value
		case UnitKindPercentage:
			return (u.Value / 100) * parentSize
		case UnitKindStretch:
			return widthRemaining * u.Value / stretchSum
		default: // Auto
			return ChildSizeForLayout(cache, node, other, layoutType)
		}
	}

	otherMin := nonNeg(resolveAgainst(propUnitOrAuto[N](props.MinSize(node, other))))
	otherMax := infinity
	if maxUnit := propUnitOrAuto[N](props.MaxSize(node, other)); !maxUnit.IsAuto() {
		otherMax = resolveAgainst(maxUnit)
	}
	otherMax = max32(otherMax, otherMin)
	return clampf(resolveAgainst(size), otherMin, otherMax)
}
