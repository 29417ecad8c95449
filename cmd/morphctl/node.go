// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/geom3trik/morphorm"
	"github.com/geom3trik/morphorm/ecsstore"
)

// unitDoc is the YAML surface for a [morphorm.Unit]: exactly one of its
// fields should be set, e.g. "px: 100", "pct: 50", "stretch: 1", or the
// zero value for Auto.
type unitDoc struct {
	Px      *float32 `yaml:"px,omitempty"`
	Pct     *float32 `yaml:"pct,omitempty"`
	Stretch *float32 `yaml:"stretch,omitempty"`
}

func (u unitDoc) resolve() morphorm.Unit {
	switch {
	case u.Px != nil:
		return morphorm.Pixels(*u.Px)
	case u.Pct != nil:
		return morphorm.Percentage(*u.Pct)
	case u.Stretch != nil:
		return morphorm.Stretch(*u.Stretch)
	default:
		return morphorm.Auto
	}
}

// nodeDoc is the YAML surface for one tree node and its children.
type nodeDoc struct {
	Name     string    `yaml:"name"`
	Layout   string    `yaml:"layout,omitempty"`   // "row", "column" (default), "grid"
	Position string    `yaml:"position,omitempty"` // "parent" (default), "self"
	Visible  *bool     `yaml:"visible,omitempty"`
	Width    unitDoc   `yaml:"width,omitempty"`
	Height   unitDoc   `yaml:"height,omitempty"`
	MinWidth unitDoc   `yaml:"min_width,omitempty"`
	MaxWidth unitDoc   `yaml:"max_width,omitempty"`
	MinHeight unitDoc  `yaml:"min_height,omitempty"`
	MaxHeight unitDoc  `yaml:"max_height,omitempty"`
	Left     unitDoc   `yaml:"left,omitempty"`
	Right    unitDoc   `yaml:"right,omitempty"`
	Top      unitDoc   `yaml:"top,omitempty"`
	Bottom   unitDoc   `yaml:"bottom,omitempty"`
	ChildLeft   unitDoc `yaml:"child_left,omitempty"`
	ChildRight  unitDoc `yaml:"child_right,omitempty"`
	ChildTop    unitDoc `yaml:"child_top,omitempty"`
	ChildBottom unitDoc `yaml:"child_bottom,omitempty"`
	ColBetween  unitDoc `yaml:"col_between,omitempty"`
	RowBetween  unitDoc `yaml:"row_between,omitempty"`
	GridRows []unitDoc `yaml:"grid_rows,omitempty"`
	GridCols []unitDoc `yaml:"grid_cols,omitempty"`
	Row      int       `yaml:"row,omitempty"`
	RowSpan  int       `yaml:"row_span,omitempty"`
	Col      int       `yaml:"col,omitempty"`
	ColSpan  int       `yaml:"col_span,omitempty"`
	Text     string    `yaml:"text,omitempty"`
	Wrap     bool      `yaml:"wrap,omitempty"`
	Children []nodeDoc `yaml:"children,omitempty"`
}

func layoutTypeOf(s string) (morphorm.LayoutType, error) {
	switch s {
	case "", "column":
		return morphorm.LayoutColumn, nil
	case "row":
		return morphorm.LayoutRow, nil
	case "grid":
		return morphorm.LayoutGrid, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", s)
	}
}

func positionTypeOf(s string) (morphorm.PositionType, error) {
	switch s {
	case "", "parent":
		return morphorm.PositionParentDirected, nil
	case "self":
		return morphorm.PositionSelfDirected, nil
	default:
		return 0, fmt.Errorf("unknown position %q", s)
	}
}

func unitsOf(docs []unitDoc) []morphorm.Unit {
	out := make([]morphorm.Unit, len(docs))
	for i, d := range docs {
		out[i] = d.resolve()
	}
	return out
}

// build recursively instantiates doc and its children into store, under
// parent if hasParent is true, returning the new entity.
func build(store *ecsstore.Store, doc nodeDoc, parent ecsstore.Entity, hasParent bool) (ecsstore.Entity, error) {
	e := store.NewEntity(parent, hasParent)

	lt, err := layoutTypeOf(doc.Layout)
	if err != nil {
		return 0, fmt.Errorf("node %q: %w", doc.Name, err)
	}
	store.SetLayoutType(e, lt)

	pt, err := positionTypeOf(doc.Position)
	if err != nil {
		return 0, fmt.Errorf("node %q: %w", doc.Name, err)
	}
	store.SetPositionType(e, pt)

	if doc.Visible != nil {
		store.SetVisible(e, *doc.Visible)
	}

	store.SetSize(e, doc.Width.resolve(), doc.Height.resolve())
	store.SetMinSize(e, doc.MinWidth.resolve(), doc.MinHeight.resolve())
	store.SetMaxSize(e, doc.MaxWidth.resolve(), doc.MaxHeight.resolve())
	store.SetSpace(e, doc.Left.resolve(), doc.Right.resolve(), doc.Top.resolve(), doc.Bottom.resolve())
	store.SetChildSpace(e,
		doc.ChildLeft.resolve(), doc.ChildRight.resolve(),
		doc.ChildTop.resolve(), doc.ChildBottom.resolve(),
		doc.ColBetween.resolve(), doc.RowBetween.resolve())

	if len(doc.GridRows) > 0 {
		store.SetGridRows(e, unitsOf(doc.GridRows))
	}
	if len(doc.GridCols) > 0 {
		store.SetGridCols(e, unitsOf(doc.GridCols))
	}
	if doc.RowSpan > 0 || doc.ColSpan > 0 {
		rowSpan, colSpan := doc.RowSpan, doc.ColSpan
		if rowSpan == 0 {
			rowSpan = 1
		}
		if colSpan == 0 {
			colSpan = 1
		}
		store.SetGridPlacement(e, doc.Row, rowSpan, doc.Col, colSpan)
	}

	if doc.Text != "" {
		wrap := ecsstore.NoWrap
		if doc.Wrap {
			wrap = ecsstore.Wrap
		}
		store.SetText(e, doc.Text, wrap)
	}

	for _, child := range doc.Children {
		if _, err := build(store, child, e, true); err != nil {
			return 0, err
		}
	}
	return e, nil
}
