// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecsstore is a flat, map-backed component store for
// [morphorm.Layout]: nodes are plain integer entity IDs, and every
// layout property is an independent map from entity to value, the way
// an entity-component-system keeps style data out of the entities
// themselves.
package ecsstore

import (
	"fmt"
	"strings"

	"github.com/geom3trik/morphorm"
)

// Entity is an opaque node identity: an index into a [Store]'s
// component maps, never a pointer into tree structure.
type Entity uint32

// Store holds the tree structure and every layout-relevant component
// for a set of entities. It implements [morphorm.Hierarchy] and
// [morphorm.Properties]; resolved layout results live separately in a
// [Cache], since a single type cannot implement both Properties and
// Cache (see the [Cache] doc comment).
type Store struct {
	nextID   Entity
	parent   map[Entity]Entity
	hasParent map[Entity]bool
	children map[Entity][]Entity

	visible map[Entity]bool

	layoutType   map[Entity]morphorm.LayoutType
	positionType map[Entity]morphorm.PositionType

	width, height          map[Entity]morphorm.Unit
	minWidth, maxWidth     map[Entity]morphorm.Unit
	minHeight, maxHeight   map[Entity]morphorm.Unit
	left, right            map[Entity]morphorm.Unit
	top, bottom            map[Entity]morphorm.Unit
	minLeft, maxLeft       map[Entity]morphorm.Unit
	minRight, maxRight     map[Entity]morphorm.Unit
	minTop, maxTop         map[Entity]morphorm.Unit
	minBottom, maxBottom   map[Entity]morphorm.Unit
	childLeft, childRight  map[Entity]morphorm.Unit
	childTop, childBottom  map[Entity]morphorm.Unit
	colBetween, rowBetween map[Entity]morphorm.Unit
	borderLeft, borderRight map[Entity]morphorm.Unit
	borderTop, borderBottom map[Entity]morphorm.Unit

	gridRows, gridCols map[Entity][]morphorm.Unit
	rowIndex, colIndex map[Entity]int
	rowSpan, colSpan   map[Entity]int

	text     map[Entity]string
	textWrap map[Entity]TextWrap
}

// TextWrap selects how [Store.Text] content contributes to a node's
// secondary-axis content size, mirroring the original node store's
// text_wrap component.
type TextWrap int

const (
	// NoWrap treats the text as a single line: secondary-axis content
	// size is independent of the available primary-axis width.
	NoWrap TextWrap = iota
	// Wrap estimates wrapped line count from the available width and
	// a fixed average glyph width, via [Store.ContentSizeSecondary].
	Wrap
)

// New returns an empty Store.
func New() *Store {
	return &Store{
		parent:    map[Entity]Entity{},
		hasParent: map[Entity]bool{},
		children:  map[Entity][]Entity{},
		visible:   map[Entity]bool{},

		layoutType:   map[Entity]morphorm.LayoutType{},
		positionType: map[Entity]morphorm.PositionType{},

		width: map[Entity]morphorm.Unit{}, height: map[Entity]morphorm.Unit{},
		minWidth: map[Entity]morphorm.Unit{}, maxWidth: map[Entity]morphorm.Unit{},
		minHeight: map[Entity]morphorm.Unit{}, maxHeight: map[Entity]morphorm.Unit{},
		left: map[Entity]morphorm.Unit{}, right: map[Entity]morphorm.Unit{},
		top: map[Entity]morphorm.Unit{}, bottom: map[Entity]morphorm.Unit{},
		minLeft: map[Entity]morphorm.Unit{}, maxLeft: map[Entity]morphorm.Unit{},
		minRight: map[Entity]morphorm.Unit{}, maxRight: map[Entity]morphorm.Unit{},
		minTop: map[Entity]morphorm.Unit{}, maxTop: map[Entity]morphorm.Unit{},
		minBottom: map[Entity]morphorm.Unit{}, maxBottom: map[Entity]morphorm.Unit{},
		childLeft: map[Entity]morphorm.Unit{}, childRight: map[Entity]morphorm.Unit{},
		childTop: map[Entity]morphorm.Unit{}, childBottom: map[Entity]morphorm.Unit{},
		colBetween: map[Entity]morphorm.Unit{}, rowBetween: map[Entity]morphorm.Unit{},
		borderLeft: map[Entity]morphorm.Unit{}, borderRight: map[Entity]morphorm.Unit{},
		borderTop: map[Entity]morphorm.Unit{}, borderBottom: map[Entity]morphorm.Unit{},

		gridRows: map[Entity][]morphorm.Unit{}, gridCols: map[Entity][]morphorm.Unit{},
		rowIndex: map[Entity]int{}, colIndex: map[Entity]int{},
		rowSpan: map[Entity]int{}, colSpan: map[Entity]int{},

		text:     map[Entity]string{},
		textWrap: map[Entity]TextWrap{},
	}
}

// NewEntity allocates a fresh entity, marks it visible, and — if
// hasParent is true — appends it to parent's child list.
func (s *Store) NewEntity(parent Entity, hasParent bool) Entity {
	e := s.nextID
	s.nextID++
	s.visible[e] = true
	if hasParent {
		s.parent[e] = parent
		s.hasParent[e] = true
		s.children[parent] = append(s.children[parent], e)
	}
	return e
}

// SetVisible sets whether e participates in layout at all.
func (s *Store) SetVisible(e Entity, v bool) { s.visible[e] = v }

// SetLayoutType sets how e arranges its parent-directed children.
func (s *Store) SetLayoutType(e Entity, v morphorm.LayoutType) { s.layoutType[e] = v }

// SetPositionType sets whether e participates in its parent's stacking.
func (s *Store) SetPositionType(e Entity, v morphorm.PositionType) { s.positionType[e] = v }

// SetSize sets e's desired width and height.
func (s *Store) SetSize(e Entity, w, h morphorm.Unit) { s.width[e] = w; s.height[e] = h }

// SetMinSize sets e's minimum width and height.
func (s *Store) SetMinSize(e Entity, w, h morphorm.Unit) { s.minWidth[e] = w; s.minHeight[e] = h }

// SetMaxSize sets e's maximum width and height.
func (s *Store) SetMaxSize(e Entity, w, h morphorm.Unit) { s.maxWidth[e] = w; s.maxHeight[e] = h }

// SetSpace sets e's left/right/top/bottom.
func (s *Store) SetSpace(e Entity, left, right, top, bottom morphorm.Unit) {
	s.left[e], s.right[e], s.top[e], s.bottom[e] = left, right, top, bottom
}

// SetChildSpace sets e's default child-before/after for both axes,
// applied to parent-directed children whose own space is Auto.
func (s *Store) SetChildSpace(e Entity, childLeft, childRight, childTop, childBottom, colBetween, rowBetween morphorm.Unit) {
	s.childLeft[e], s.childRight[e] = childLeft, childRight
	s.childTop[e], s.childBottom[e] = childTop, childBottom
	s.colBetween[e], s.rowBetween[e] = colBetween, rowBetween
}

// SetBorder sets e's border thickness on all four sides.
func (s *Store) SetBorder(e Entity, left, right, top, bottom morphorm.Unit) {
	s.borderLeft[e], s.borderRight[e] = left, right
	s.borderTop[e], s.borderBottom[e] = top, bottom
}

// SetGridRows and SetGridCols set a [morphorm.LayoutGrid] node's track
// definitions.
func (s *Store) SetGridRows(e Entity, rows []morphorm.Unit) { s.gridRows[e] = rows }
func (s *Store) SetGridCols(e Entity, cols []morphorm.Unit) { s.gridCols[e] = cols }

// SetGridPlacement sets e's starting track index and span along both
// axes within its grid parent.
func (s *Store) SetGridPlacement(e Entity, row, rowSpan, col, colSpan int) {
	s.rowIndex[e], s.rowSpan[e] = row, rowSpan
	s.colIndex[e], s.colSpan[e] = col, colSpan
}

// SetText sets e's text content and wrap mode, used by
// [Store.ContentSize] and [Store.ContentSizeSecondary] to estimate an
// intrinsic size without a real text shaper.
func (s *Store) SetText(e Entity, text string, wrap TextWrap) {
	s.text[e] = text
	s.textWrap[e] = wrap
}

// Dump writes an indented tree of root's computed rectangles to sb,
// grounded on the original crate's debug printer: one line per node,
// showing its posX/posY/width/height, indented to match tree depth
// with box-drawing fork characters.
func Dump(sb *strings.Builder, s *Store, cache *Cache, root Entity) {
	dump(sb, s, cache, root, true, false, "")
}

func dump(sb *strings.Builder, s *Store, cache *Cache, node Entity, isRoot, hasSibling bool, prefix string) {
	fork := "├───┤"
	if isRoot {
		fork = "│"
	} else if !hasSibling {
		fork = "└───┤"
	}

	fmt.Fprintf(sb, "%s%s%d| %3.0f %3.0f %3.0f %3.0f│\n",
		prefix, fork, node,
		cache.PosX(node), cache.PosY(node), cache.Width(node), cache.Height(node))

	bar := "    "
	if isRoot {
		bar = ""
	} else if hasSibling {
		bar = "│   "
	}
	childPrefix := prefix + bar

	children := s.children[node]
	for i, child := range children {
		dump(sb, s, cache, child, false, i < len(children)-1, childPrefix)
	}
}
