// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecsstore

import "github.com/geom3trik/morphorm"

type cacheEntry struct {
	posX, posY, width, height  float32
	newSize                    [2]float32
	before, after              [2]float32
	childSizeSum, childSizeMax [2]float32
	stackFirst, stackLast      bool
	freeSpace, stretchSum      [2]float32
	changed                    morphorm.GeometryChanged
}

// Cache is a [morphorm.Cache] over a [Store]'s entities. It is kept
// separate from Store itself because [morphorm.Properties] and
// [morphorm.Cache] each declare a Before/After method with a different
// signature (read-only Unit lookup vs. read-write resolved float32),
// and a single Go type cannot implement both.
type Cache struct {
	store   *Store
	entries map[Entity]*cacheEntry
	round   bool
}

// NewCache returns a [Cache] reading entity visibility from store.
func NewCache(store *Store) *Cache {
	return &Cache{store: store, entries: map[Entity]*cacheEntry{}}
}

// SetRoundPixels enables or disables [morphorm.Rounder]-driven pixel
// rounding for every subsequent [morphorm.Layout] call using this Cache.
func (c *Cache) SetRoundPixels(v bool) { c.round = v }

// RoundPixels implements [morphorm.Rounder].
func (c *Cache) RoundPixels() bool { return c.round }

func (c *Cache) entry(e Entity) *cacheEntry {
	v, ok := c.entries[e]
	if !ok {
		v = &cacheEntry{}
		c.entries[e] = v
	}
	return v
}

func (c *Cache) Visible(e Entity) bool { return c.store.visible[e] }

func (c *Cache) PosX(e Entity) float32        { return c.entry(e).posX }
func (c *Cache) SetPosX(e Entity, v float32)  { c.entry(e).posX = v }
func (c *Cache) PosY(e Entity) float32        { return c.entry(e).posY }
func (c *Cache) SetPosY(e Entity, v float32)  { c.entry(e).posY = v }
func (c *Cache) Width(e Entity) float32       { return c.entry(e).width }
func (c *Cache) SetWidth(e Entity, v float32) { c.entry(e).width = v }
func (c *Cache) Height(e Entity) float32      { return c.entry(e).height }
func (c *Cache) SetHeight(e Entity, v float32) { c.entry(e).height = v }

func (c *Cache) NewSize(e Entity, axis morphorm.Direction) float32 {
	return c.entry(e).newSize[axisIdx(axis)]
}
func (c *Cache) SetNewSize(e Entity, axis morphorm.Direction, v float32) {
	c.entry(e).newSize[axisIdx(axis)] = v
}
func (c *Cache) NewWidth(e Entity) float32  { return c.entry(e).newSize[0] }
func (c *Cache) NewHeight(e Entity) float32 { return c.entry(e).newSize[1] }

func (c *Cache) Before(e Entity, axis morphorm.Direction) float32 {
	return c.entry(e).before[axisIdx(axis)]
}
func (c *Cache) SetBefore(e Entity, axis morphorm.Direction, v float32) {
	c.entry(e).before[axisIdx(axis)] = v
}
func (c *Cache) After(e Entity, axis morphorm.Direction) float32 {
	return c.entry(e).after[axisIdx(axis)]
}
func (c *Cache) SetAfter(e Entity, axis morphorm.Direction, v float32) {
	c.entry(e).after[axisIdx(axis)] = v
}

func (c *Cache) ChildSizeSum(e Entity, axis morphorm.Direction) float32 {
	return c.entry(e).childSizeSum[axisIdx(axis)]
}
func (c *Cache) SetChildSizeSum(e Entity, axis morphorm.Direction, v float32) {
	c.entry(e).childSizeSum[axisIdx(axis)] = v
}
func (c *Cache) ChildSizeMax(e Entity, axis morphorm.Direction) float32 {
	return c.entry(e).childSizeMax[axisIdx(axis)]
}
func (c *Cache) SetChildSizeMax(e Entity, axis morphorm.Direction, v float32) {
	c.entry(e).childSizeMax[axisIdx(axis)] = v
}

func (c *Cache) StackFirstChild(e Entity) bool       { return c.entry(e).stackFirst }
func (c *Cache) SetStackFirstChild(e Entity, v bool) { c.entry(e).stackFirst = v }
func (c *Cache) StackLastChild(e Entity) bool        { return c.entry(e).stackLast }
func (c *Cache) SetStackLastChild(e Entity, v bool)  { c.entry(e).stackLast = v }

func (c *Cache) FreeSpace(e Entity, axis morphorm.Direction) float32 {
	return c.entry(e).freeSpace[axisIdx(axis)]
}
func (c *Cache) SetFreeSpace(e Entity, axis morphorm.Direction, v float32) {
	c.entry(e).freeSpace[axisIdx(axis)] = v
}
func (c *Cache) StretchSum(e Entity, axis morphorm.Direction) float32 {
	return c.entry(e).stretchSum[axisIdx(axis)]
}
func (c *Cache) SetStretchSum(e Entity, axis morphorm.Direction, v float32) {
	c.entry(e).stretchSum[axisIdx(axis)] = v
}

func (c *Cache) GeometryChanged(e Entity) morphorm.GeometryChanged { return c.entry(e).changed }
func (c *Cache) SetGeometryChanged(e Entity, bit morphorm.GeometryChanged, v bool) {
	if v {
		c.entry(e).changed |= bit
	} else {
		c.entry(e).changed &^= bit
	}
}
