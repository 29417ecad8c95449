// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecsstore

import (
	"github.com/geom3trik/morphorm"
	"github.com/geom3trik/morphorm/sublayout"
)

// --- morphorm.Hierarchy ---

// Down visits the whole store depth-first, parent before child,
// starting from every entity with no parent, in allocation order.
func (s *Store) Down(yield func(Entity) bool) {
	var walk func(Entity) bool
	walk = func(e Entity) bool {
		if !yield(e) {
			return false
		}
		for _, c := range s.children[e] {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	for e := Entity(0); e < s.nextID; e++ {
		if !s.hasParent[e] {
			if !walk(e) {
				return
			}
		}
	}
}

// Up visits the whole store depth-first, child before parent.
func (s *Store) Up(yield func(Entity) bool) {
	var walk func(Entity) bool
	walk = func(e Entity) bool {
		for _, c := range s.children[e] {
			if !walk(c) {
				return false
			}
		}
		return yield(e)
	}
	for e := Entity(0); e < s.nextID; e++ {
		if !s.hasParent[e] {
			if !walk(e) {
				return
			}
		}
	}
}

// Children returns parent's children in the order they were created.
func (s *Store) Children(parent Entity) []Entity { return s.children[parent] }

// Parent returns node's parent, or false if node is a root.
func (s *Store) Parent(node Entity) (Entity, bool) {
	p, ok := s.hasParent[node]
	if !ok {
		return 0, false
	}
	return s.parent[node], p
}

// --- morphorm.Properties ---

func (s *Store) LayoutType(e Entity) (morphorm.LayoutType, bool) {
	v, ok := s.layoutType[e]
	return v, ok
}

func (s *Store) PositionType(e Entity) (morphorm.PositionType, bool) {
	v, ok := s.positionType[e]
	return v, ok
}

func (s *Store) Size(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.width[e]
		return v, ok
	}
	v, ok := s.height[e]
	return v, ok
}

func (s *Store) MinSize(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.minWidth[e]
		return v, ok
	}
	v, ok := s.minHeight[e]
	return v, ok
}

func (s *Store) MaxSize(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.maxWidth[e]
		return v, ok
	}
	v, ok := s.maxHeight[e]
	return v, ok
}

func (s *Store) Before(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.left[e]
		return v, ok
	}
	v, ok := s.top[e]
	return v, ok
}

func (s *Store) After(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.right[e]
		return v, ok
	}
	v, ok := s.bottom[e]
	return v, ok
}

func (s *Store) MinBefore(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.minLeft[e]
		return v, ok
	}
	v, ok := s.minTop[e]
	return v, ok
}

func (s *Store) MaxBefore(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.maxLeft[e]
		return v, ok
	}
	v, ok := s.maxTop[e]
	return v, ok
}

func (s *Store) MinAfter(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.minRight[e]
		return v, ok
	}
	v, ok := s.minBottom[e]
	return v, ok
}

func (s *Store) MaxAfter(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.maxRight[e]
		return v, ok
	}
	v, ok := s.maxBottom[e]
	return v, ok
}

func (s *Store) ChildBefore(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.childLeft[e]
		return v, ok
	}
	v, ok := s.childTop[e]
	return v, ok
}

func (s *Store) ChildAfter(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.childRight[e]
		return v, ok
	}
	v, ok := s.childBottom[e]
	return v, ok
}

func (s *Store) RowColBetween(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.colBetween[e]
		return v, ok
	}
	v, ok := s.rowBetween[e]
	return v, ok
}

func (s *Store) BorderBefore(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.borderLeft[e]
		return v, ok
	}
	v, ok := s.borderTop[e]
	return v, ok
}

func (s *Store) BorderAfter(e Entity, axis morphorm.Direction) (morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.borderRight[e]
		return v, ok
	}
	v, ok := s.borderBottom[e]
	return v, ok
}

// ContentSize returns an unwrapped text node's estimated width, via
// sublayout.Metrics.PlainWidth with the zero Metrics' default glyph
// width (ContentSize receives no sublayout value, so the Metrics passed
// through the Layout call is not used here); all other nodes report no
// intrinsic content.
func (s *Store) ContentSize(e Entity, axis morphorm.Direction) (float32, bool) {
	text, ok := s.text[e]
	if !ok || axis != morphorm.DirectionX {
		return 0, false
	}
	if text == "" || s.textWrap[e] != NoWrap {
		return 0, false
	}
	return (&sublayout.Metrics{}).PlainWidth(text), true
}

// ContentSizeSecondary estimates a wrapped text node's height given
// its resolved width, via sublayout.Metrics.WrappedHeight.
func (s *Store) ContentSizeSecondary(e Entity, sl any, axis morphorm.Direction, otherDim float32) (float32, bool) {
	if axis != morphorm.DirectionY {
		return 0, false
	}
	text, ok := s.text[e]
	if !ok || text == "" || s.textWrap[e] != Wrap {
		return 0, false
	}
	m, _ := sl.(*sublayout.Metrics)
	if m == nil {
		m = &sublayout.Metrics{}
	}
	return m.WrappedHeight(text, otherDim), true
}

func (s *Store) GridRowsCols(e Entity, axis morphorm.Direction) ([]morphorm.Unit, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.gridCols[e]
		return v, ok
	}
	v, ok := s.gridRows[e]
	return v, ok
}

func (s *Store) RowColIndex(e Entity, axis morphorm.Direction) (int, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.colIndex[e]
		return v, ok
	}
	v, ok := s.rowIndex[e]
	return v, ok
}

func (s *Store) RowColSpan(e Entity, axis morphorm.Direction) (int, bool) {
	if axis == morphorm.DirectionX {
		v, ok := s.colSpan[e]
		return v, ok
	}
	v, ok := s.rowSpan[e]
	return v, ok
}

func axisIdx(axis morphorm.Direction) int {
	if axis == morphorm.DirectionX {
		return 0
	}
	return 1
}
