// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morphorm

// Layout performs a full layout calculation over the tree described by
// hierarchy, reading inputs from props and writing the resulting
// positions and sizes into cache. sublayout is an opaque, caller-owned
// scratch value (e.g. reusable text-shaper state) threaded through to
// [Properties.ContentSizeSecondary] unchanged; pass nil if unused.
//
// Layout is single-threaded and synchronous: it does not spawn
// goroutines, block, or yield, and it has no recoverable error path
// — a node appearing under two parents, a zero row/col span, or
// any other programmer error is undefined behavior, not a returned
// error. Calling Layout twice in a row with unchanged inputs leaves
// cache bitwise identical after the second call when pixel rounding is
// enabled (see [Rounder]).
func Layout[N comparable](cache Cache[N], hierarchy Hierarchy[N], props Properties[N], sublayout any) {
	classify(cache, hierarchy, props)
	sizeUp(cache, hierarchy, props)

	hierarchy.Down(func(parent N) bool {
		if !cache.Visible(parent) {
			return true
		}
		switch propLayoutType(props, parent) {
		case LayoutRow:
			solveRowCol(cache, hierarchy, props, sublayout, parent, DirectionX, true)
			solveRowCol(cache, hierarchy, props, sublayout, parent, DirectionY, false)
		case LayoutColumn:
			solveRowCol(cache, hierarchy, props, sublayout, parent, DirectionY, true)
			solveRowCol(cache, hierarchy, props, sublayout, parent, DirectionX, false)
		case LayoutGrid:
			solveGrid(cache, hierarchy, props, parent)
		}
		return true
	})
}

// classify is Pass 1: for each visible parent, clear its child
// accumulators and geometry-changed bits, then mark the first and last
// parent-directed child as stack endpoints; every self-directed child
// is, on its own, both endpoints of its own one-element stack.
func classify[N comparable](cache Cache[N], hierarchy Hierarchy[N], props Properties[N]) {
	hierarchy.Down(func(parent N) bool {
		if !cache.Visible(parent) {
			return true
		}

		cache.SetChildSizeSum(parent, DirectionX, 0)
		cache.SetChildSizeSum(parent, DirectionY, 0)
		cache.SetChildSizeMax(parent, DirectionX, 0)
		cache.SetChildSizeMax(parent, DirectionY, 0)

		cache.SetGeometryChanged(parent, PosXChanged, false)
		cache.SetGeometryChanged(parent, PosYChanged, false)
		cache.SetGeometryChanged(parent, WidthChanged, false)
		cache.SetGeometryChanged(parent, HeightChanged, false)

		foundFirst := false
		var lastChild N
		haveLast := false

		for _, node := range hierarchy.Children(parent) {
			if !cache.Visible(node) {
				continue
			}

			cache.SetStackFirstChild(node, false)
			cache.SetStackLastChild(node, false)

			switch propPositionType(props, node) {
			case PositionParentDirected:
				if !foundFirst {
					foundFirst = true
					cache.SetStackFirstChild(node, true)
				}
				lastChild = node
				haveLast = true
			case PositionSelfDirected:
				cache.SetStackFirstChild(node, true)
				cache.SetStackLastChild(node, true)
			}
		}

		if haveLast {
			cache.SetStackLastChild(lastChild, true)
		}
		return true
	})
}
