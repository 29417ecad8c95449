// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package morphorm computes the position and size of nodes in a visual
// tree from a small set of declarative, per-node layout properties.
//
// Every spatial quantity (sizes and the four surrounding spaces) is
// expressed in one of four units: fixed pixels, parent-relative
// percentages, flexible stretch factors, or Auto (see [Unit]). Layout
// resolves those units over a tree supplied by the caller through three
// abstract collaborators: [Hierarchy], which describes tree structure,
// [Properties], which supplies the per-node layout inputs, and [Cache],
// which stores per-node intermediate state and the final rectangles.
//
// Morphorm does not draw, hit-test, or own the tree. It does not shape
// text; intrinsic content extents (e.g. measured text) are supplied by
// the caller through [Properties.ContentSize] and
// [Properties.ContentSizeSecondary]. It does not support incremental
// relayout between calls: [Layout] always recomputes the whole tree.
package morphorm
