// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morphorm

// node is a minimal in-memory tree node used to exercise [Layout] in
// tests. *node implements both [Hierarchy] and [Properties]; the
// read-write [Cache] side lives separately in [testCache] since
// Properties and Cache each need a method named Before/After with a
// different signature, and Go methods can't be overloaded on one type.
type node struct {
	name     string
	parent   *node
	children []*node

	layoutType   LayoutType
	hasLayout    bool
	positionType PositionType
	hasPosition  bool

	size, minSize, maxSize  [2]Unit
	hasSize, hasMin, hasMax [2]bool
	before, after           [2]Unit
	minBefore, maxBefore    [2]Unit
	minAfter, maxAfter      [2]Unit
	childBefore, childAfter [2]Unit
	rowColBetween           [2]Unit
	borderBefore            [2]Unit
	borderAfter             [2]Unit
	hasBorderBefore         [2]bool
	hasBorderAfter          [2]bool

	contentSize [2]float32
	hasContent  [2]bool

	gridRows, gridCols []Unit
	hasGrid            [2]bool
	rowColIndex        [2]int
	rowColSpan         [2]int
	hasIndex, hasSpan  [2]bool

	invisible bool
}

func newNode(name string) *node { return &node{name: name} }

func (p *node) add(children ...*node) *node {
	for _, c := range children {
		c.parent = p
		p.children = append(p.children, c)
	}
	return p
}

func axisIdx(axis Direction) int {
	if axis == DirectionX {
		return 0
	}
	return 1
}

// --- Hierarchy ---

func (n *node) Down(yield func(*node) bool) {
	var walk func(*node) bool
	walk = func(cur *node) bool {
		if !yield(cur) {
			return false
		}
		for _, c := range cur.children {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(n)
}

func (n *node) Up(yield func(*node) bool) {
	var walk func(*node) bool
	walk = func(cur *node) bool {
		for _, c := range cur.children {
			if !walk(c) {
				return false
			}
		}
		return yield(cur)
	}
	walk(n)
}

func (n *node) Children(parent *node) []*node { return parent.children }

func (n *node) Parent(child *node) (*node, bool) {
	if child.parent == nil {
		return nil, false
	}
	return child.parent, true
}

// --- Properties ---

func (n *node) LayoutType(node *node) (LayoutType, bool) { return node.layoutType, node.hasLayout }
func (n *node) PositionType(node *node) (PositionType, bool) {
	return node.positionType, node.hasPosition
}

func (n *node) Size(node *node, axis Direction) (Unit, bool) {
	i := axisIdx(axis)
	return node.size[i], node.hasSize[i]
}
func (n *node) MinSize(node *node, axis Direction) (Unit, bool) {
	i := axisIdx(axis)
	return node.minSize[i], node.hasMin[i]
}
func (n *node) MaxSize(node *node, axis Direction) (Unit, bool) {
	i := axisIdx(axis)
	return node.maxSize[i], node.hasMax[i]
}

func (n *node) Before(node *node, axis Direction) (Unit, bool) {
	v := node.before[axisIdx(axis)]
	return v, !v.IsAuto()
}
func (n *node) After(node *node, axis Direction) (Unit, bool) {
	v := node.after[axisIdx(axis)]
	return v, !v.IsAuto()
}
func (n *node) MinBefore(node *node, axis Direction) (Unit, bool) {
	v := node.minBefore[axisIdx(axis)]
	return v, !v.IsAuto()
}
func (n *node) MaxBefore(node *node, axis Direction) (Unit, bool) {
	v := node.maxBefore[axisIdx(axis)]
	return v, !v.IsAuto()
}
func (n *node) MinAfter(node *node, axis Direction) (Unit, bool) {
	v := node.minAfter[axisIdx(axis)]
	return v, !v.IsAuto()
}
func (n *node) MaxAfter(node *node, axis Direction) (Unit, bool) {
	v := node.maxAfter[axisIdx(axis)]
	return v, !v.IsAuto()
}

func (n *node) ChildBefore(node *node, axis Direction) (Unit, bool) {
	v := node.childBefore[axisIdx(axis)]
	return v, !v.IsAuto()
}
func (n *node) ChildAfter(node *node, axis Direction) (Unit, bool) {
	v := node.childAfter[axisIdx(axis)]
	return v, !v.IsAuto()
}
func (n *node) RowColBetween(node *node, axis Direction) (Unit, bool) {
	v := node.rowColBetween[axisIdx(axis)]
	return v, !v.IsAuto()
}

func (n *node) BorderBefore(node *node, axis Direction) (Unit, bool) {
	i := axisIdx(axis)
	return node.borderBefore[i], node.hasBorderBefore[i]
}
func (n *node) BorderAfter(node *node, axis Direction) (Unit, bool) {
	i := axisIdx(axis)
	return node.borderAfter[i], node.hasBorderAfter[i]
}

func (n *node) ContentSize(node *node, axis Direction) (float32, bool) {
	i := axisIdx(axis)
	return node.contentSize[i], node.hasContent[i]
}
func (n *node) ContentSizeSecondary(node *node, sublayout any, axis Direction, otherDim float32) (float32, bool) {
	return 0, false
}

func (n *node) GridRowsCols(node *node, axis Direction) ([]Unit, bool) {
	if axis == DirectionX {
		return node.gridCols, node.hasGrid[0]
	}
	return node.gridRows, node.hasGrid[1]
}
func (n *node) RowColIndex(node *node, axis Direction) (int, bool) {
	i := axisIdx(axis)
	return node.rowColIndex[i], node.hasIndex[i]
}
func (n *node) RowColSpan(node *node, axis Direction) (int, bool) {
	i := axisIdx(axis)
	return node.rowColSpan[i], node.hasSpan[i]
}

// cacheEntry is one node's intermediate and final layout state.
type cacheEntry struct {
	posX, posY, width, height float32
	newSize                   [2]float32
	beforeC, afterC           [2]float32
	childSizeSum, childSizeMax [2]float32
	stackFirst, stackLast     bool
	freeSpace, stretchSum     [2]float32
	changed                   GeometryChanged
}

// testCache is a map-backed [Cache] implementation over *node, with an
// optional pixel-rounding toggle exercising [Rounder].
type testCache struct {
	entries map[*node]*cacheEntry
	round   bool
}

func newTestCache() *testCache { return &testCache{entries: map[*node]*cacheEntry{}} }

func (c *testCache) entry(n *node) *cacheEntry {
	e, ok := c.entries[n]
	if !ok {
		e = &cacheEntry{}
		c.entries[n] = e
	}
	return e
}

func (c *testCache) RoundPixels() bool { return c.round }

func (c *testCache) Visible(n *node) bool { return !n.invisible }

func (c *testCache) PosX(n *node) float32      { return c.entry(n).posX }
func (c *testCache) SetPosX(n *node, v float32) { c.entry(n).posX = v }
func (c *testCache) PosY(n *node) float32      { return c.entry(n).posY }
func (c *testCache) SetPosY(n *node, v float32) { c.entry(n).posY = v }
func (c *testCache) Width(n *node) float32      { return c.entry(n).width }
func (c *testCache) SetWidth(n *node, v float32) { c.entry(n).width = v }
func (c *testCache) Height(n *node) float32      { return c.entry(n).height }
func (c *testCache) SetHeight(n *node, v float32) { c.entry(n).height = v }

func (c *testCache) NewSize(n *node, axis Direction) float32 {
	return c.entry(n).newSize[axisIdx(axis)]
}
func (c *testCache) SetNewSize(n *node, axis Direction, v float32) {
	c.entry(n).newSize[axisIdx(axis)] = v
}
func (c *testCache) NewWidth(n *node) float32  { return c.entry(n).newSize[0] }
func (c *testCache) NewHeight(n *node) float32 { return c.entry(n).newSize[1] }

func (c *testCache) Before(n *node, axis Direction) float32 {
	return c.entry(n).beforeC[axisIdx(axis)]
}
func (c *testCache) SetBefore(n *node, axis Direction, v float32) {
	c.entry(n).beforeC[axisIdx(axis)] = v
}
func (c *testCache) After(n *node, axis Direction) float32 {
	return c.entry(n).afterC[axisIdx(axis)]
}
func (c *testCache) SetAfter(n *node, axis Direction, v float32) {
	c.entry(n).afterC[axisIdx(axis)] = v
}

func (c *testCache) ChildSizeSum(n *node, axis Direction) float32 {
	return c.entry(n).childSizeSum[axisIdx(axis)]
}
func (c *testCache) SetChildSizeSum(n *node, axis Direction, v float32) {
	c.entry(n).childSizeSum[axisIdx(axis)] = v
}
func (c *testCache) ChildSizeMax(n *node, axis Direction) float32 {
	return c.entry(n).childSizeMax[axisIdx(axis)]
}
func (c *testCache) SetChildSizeMax(n *node, axis Direction, v float32) {
	c.entry(n).childSizeMax[axisIdx(axis)] = v
}

func (c *testCache) StackFirstChild(n *node) bool      { return c.entry(n).stackFirst }
func (c *testCache) SetStackFirstChild(n *node, v bool) { c.entry(n).stackFirst = v }
func (c *testCache) StackLastChild(n *node) bool       { return c.entry(n).stackLast }
func (c *testCache) SetStackLastChild(n *node, v bool)  { c.entry(n).stackLast = v }

func (c *testCache) FreeSpace(n *node, axis Direction) float32 {
	return c.entry(n).freeSpace[axisIdx(axis)]
}
func (c *testCache) SetFreeSpace(n *node, axis Direction, v float32) {
	c.entry(n).freeSpace[axisIdx(axis)] = v
}
func (c *testCache) StretchSum(n *node, axis Direction) float32 {
	return c.entry(n).stretchSum[axisIdx(axis)]
}
func (c *testCache) SetStretchSum(n *node, axis Direction, v float32) {
	c.entry(n).stretchSum[axisIdx(axis)] = v
}

func (c *testCache) GeometryChanged(n *node) GeometryChanged { return c.entry(n).changed }
func (c *testCache) SetGeometryChanged(n *node, bit GeometryChanged, v bool) {
	if v {
		c.entry(n).changed |= bit
	} else {
		c.entry(n).changed &^= bit
	}
}
