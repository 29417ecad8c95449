// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morphorm

import (
	"testing"

	"cogentcore.org/core/glop/tolassert"
	"github.com/stretchr/testify/assert"
)

func rect(t *testing.T, cache *testCache, n *node) (x, y, w, h float32) {
	t.Helper()
	return cache.PosX(n), cache.PosY(n), cache.Width(n), cache.Height(n)
}

func TestRootPixelsOnePixelsChild(t *testing.T) {
	root := newNode("root")
	root.hasSize = [2]bool{true, true}
	root.size = [2]Unit{Pixels(200), Pixels(200)}

	child := newNode("child")
	child.hasSize = [2]bool{true, true}
	child.size = [2]Unit{Pixels(100), Pixels(50)}
	root.add(child)

	cache := newTestCache()
	cache.SetWidth(root, 200)
	cache.SetHeight(root, 200)

	Layout[*node](cache, root, root, nil)

	x, y, w, h := rect(t, cache, child)
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)
	assert.Equal(t, float32(100), w)
	assert.Equal(t, float32(50), h)
}

func TestCenterTwoSquaresVertically(t *testing.T) {
	root := newNode("root")
	root.layoutType, root.hasLayout = LayoutColumn, true
	root.hasSize = [2]bool{true, true}
	root.size = [2]Unit{Pixels(100), Pixels(200)}
	root.childBefore[1], root.childAfter[1] = Stretch(1), Stretch(1)

	a := newNode("a")
	a.hasSize = [2]bool{true, true}
	a.size = [2]Unit{Pixels(50), Pixels(50)}

	b := newNode("b")
	b.hasSize = [2]bool{true, true}
	b.size = [2]Unit{Pixels(50), Pixels(50)}

	root.add(a, b)

	cache := newTestCache()
	cache.SetWidth(root, 100)
	cache.SetHeight(root, 200)

	Layout[*node](cache, root, root, nil)

	_, ya, _, ha := rect(t, cache, a)
	_, yb, _, hb := rect(t, cache, b)
	assert.Equal(t, float32(50), ya)
	assert.Equal(t, float32(50), ha)
	assert.Equal(t, float32(100), yb)
	assert.Equal(t, float32(50), hb)
}

func TestLeftAlignTwoSquares(t *testing.T) {
	root := newNode("root")
	root.layoutType, root.hasLayout = LayoutRow, true
	root.hasSize = [2]bool{true, true}
	root.size = [2]Unit{Pixels(300), Pixels(100)}

	a := newNode("a")
	a.hasSize = [2]bool{true, true}
	a.size = [2]Unit{Pixels(50), Pixels(50)}

	b := newNode("b")
	b.hasSize = [2]bool{true, true}
	b.size = [2]Unit{Pixels(50), Pixels(50)}

	root.add(a, b)

	cache := newTestCache()
	cache.SetWidth(root, 300)
	cache.SetHeight(root, 100)

	Layout[*node](cache, root, root, nil)

	xa, _, _, _ := rect(t, cache, a)
	xb, _, _, _ := rect(t, cache, b)
	assert.Equal(t, float32(0), xa)
	assert.Equal(t, float32(50), xb)
}

func TestRowStretchDistribution(t *testing.T) {
	root := newNode("root")
	root.layoutType, root.hasLayout = LayoutRow, true
	root.hasSize = [2]bool{true, true}
	root.size = [2]Unit{Pixels(300), Pixels(100)}

	a := newNode("a")
	a.hasSize = [2]bool{true, true}
	a.size = [2]Unit{Stretch(1), Pixels(100)}

	b := newNode("b")
	b.hasSize = [2]bool{true, true}
	b.size = [2]Unit{Stretch(2), Pixels(100)}

	root.add(a, b)

	cache := newTestCache()
	cache.SetWidth(root, 300)
	cache.SetHeight(root, 100)

	Layout[*node](cache, root, root, nil)

	_, _, wa, _ := rect(t, cache, a)
	_, _, wb, _ := rect(t, cache, b)
	assert.Equal(t, float32(100), wa)
	assert.Equal(t, float32(200), wb)
}

func TestMinMaxClampRedistribution(t *testing.T) {
	root := newNode("root")
	root.layoutType, root.hasLayout = LayoutRow, true
	root.hasSize = [2]bool{true, true}
	root.size = [2]Unit{Pixels(300), Pixels(100)}

	a := newNode("a")
	a.hasSize = [2]bool{true, true}
	a.size = [2]Unit{Stretch(1), Pixels(100)}
	a.hasMax[0] = true
	a.maxSize[0] = Pixels(50)

	b := newNode("b")
	b.hasSize = [2]bool{true, true}
	b.size = [2]Unit{Stretch(1), Pixels(100)}

	root.add(a, b)

	cache := newTestCache()
	cache.SetWidth(root, 300)
	cache.SetHeight(root, 100)

	Layout[*node](cache, root, root, nil)

	_, _, wa, _ := rect(t, cache, a)
	_, _, wb, _ := rect(t, cache, b)
	assert.Equal(t, float32(50), wa)
	assert.Equal(t, float32(250), wb)
}

func TestGrid2x2WithGutter(t *testing.T) {
	root := newNode("root")
	root.layoutType, root.hasLayout = LayoutGrid, true
	root.hasSize = [2]bool{true, true}
	root.size = [2]Unit{Pixels(210), Pixels(210)}
	root.hasGrid = [2]bool{true, true}
	root.gridRows = []Unit{Stretch(1), Stretch(1)}
	root.gridCols = []Unit{Stretch(1), Stretch(1)}
	root.rowColBetween = [2]Unit{Pixels(10), Pixels(10)}

	cells := make([]*node, 4)
	for i := range cells {
		cells[i] = newNode("cell")
		cells[i].rowColIndex = [2]int{i % 2, i / 2}
		cells[i].hasIndex = [2]bool{true, true}
	}
	root.add(cells...)

	cache := newTestCache()
	cache.SetWidth(root, 210)
	cache.SetHeight(root, 210)

	Layout[*node](cache, root, root, nil)

	x0, y0, w0, h0 := rect(t, cache, cells[0])
	x1, y1, w1, h1 := rect(t, cache, cells[1])
	x2, y2, _, _ := rect(t, cache, cells[2])

	assert.Equal(t, float32(0), x0)
	assert.Equal(t, float32(0), y0)
	assert.Equal(t, float32(100), w0)
	assert.Equal(t, float32(100), h0)

	assert.Equal(t, float32(110), x1)
	assert.Equal(t, float32(100), w1)
	assert.Equal(t, y0, y1)

	assert.Equal(t, x0, x2)
	assert.Equal(t, float32(110), y2)
}

func TestInvisibleNodeSkipped(t *testing.T) {
	root := newNode("root")
	root.layoutType, root.hasLayout = LayoutRow, true
	root.hasSize = [2]bool{true, true}
	root.size = [2]Unit{Pixels(100), Pixels(100)}

	a := newNode("a")
	a.invisible = true
	a.hasSize = [2]bool{true, true}
	a.size = [2]Unit{Pixels(50), Pixels(50)}

	b := newNode("b")
	b.hasSize = [2]bool{true, true}
	b.size = [2]Unit{Pixels(50), Pixels(50)}

	root.add(a, b)

	cache := newTestCache()
	cache.SetWidth(root, 100)
	cache.SetHeight(root, 100)

	Layout[*node](cache, root, root, nil)

	xb, _, _, _ := rect(t, cache, b)
	assert.Equal(t, float32(0), xb)
}

func TestUnroundedStretchSplitIsFractional(t *testing.T) {
	root := newNode("root")
	root.layoutType, root.hasLayout = LayoutRow, true
	root.hasSize = [2]bool{true, true}
	root.size = [2]Unit{Pixels(100), Pixels(100)}

	a := newNode("a")
	a.hasSize = [2]bool{true, true}
	a.size = [2]Unit{Stretch(1), Pixels(100)}
	b := newNode("b")
	b.hasSize = [2]bool{true, true}
	b.size = [2]Unit{Stretch(1), Pixels(100)}
	c := newNode("c")
	c.hasSize = [2]bool{true, true}
	c.size = [2]Unit{Stretch(1), Pixels(100)}
	root.add(a, b, c)

	cache := newTestCache()
	cache.SetWidth(root, 100)
	cache.SetHeight(root, 100)

	Layout[*node](cache, root, root, nil)

	_, _, wa, _ := rect(t, cache, a)
	_, _, wb, _ := rect(t, cache, b)
	_, _, wc, _ := rect(t, cache, c)
	tolassert.EqualTol(t, 33.333333, float64(wa), 0.01)
	tolassert.EqualTol(t, 33.333333, float64(wb), 0.01)
	tolassert.EqualTol(t, 33.333333, float64(wc), 0.01)
	tolassert.EqualTol(t, 100, float64(wa+wb+wc), 0.01)
}

func TestRoundingEnabledViaRounder(t *testing.T) {
	root := newNode("root")
	root.layoutType, root.hasLayout = LayoutRow, true
	root.hasSize = [2]bool{true, true}
	root.size = [2]Unit{Pixels(100), Pixels(100)}

	a := newNode("a")
	a.hasSize = [2]bool{true, true}
	a.size = [2]Unit{Stretch(1), Pixels(100)}
	b := newNode("b")
	b.hasSize = [2]bool{true, true}
	b.size = [2]Unit{Stretch(1), Pixels(100)}
	c := newNode("c")
	c.hasSize = [2]bool{true, true}
	c.size = [2]Unit{Stretch(1), Pixels(100)}
	root.add(a, b, c)

	cache := newTestCache()
	cache.round = true
	cache.SetWidth(root, 100)
	cache.SetHeight(root, 100)

	Layout[*node](cache, root, root, nil)

	_, _, wa, _ := rect(t, cache, a)
	_, _, wb, _ := rect(t, cache, b)
	_, _, wc, _ := rect(t, cache, c)
	assert.Equal(t, wa, float32(int32(wa)), "rounding should yield integral pixel widths")
	assert.Equal(t, wb, float32(int32(wb)))
	assert.Equal(t, wc, float32(int32(wc)))
}
