// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morphorm

import "math"

// UnitKind identifies which of the four closed [Unit] variants a value holds.
type UnitKind int8 //enums:enum

const (
	// UnitKindAuto means the quantity is derived from content or children.
	UnitKindAuto UnitKind = iota
	// UnitKindPixels means the quantity is a fixed number of pixels.
	UnitKindPixels
	// UnitKindPercentage means the quantity is a percentage (0..100) of
	// the reference dimension.
	UnitKindPercentage
	// UnitKindStretch means the quantity is a nonnegative flex factor.
	UnitKindStretch
)

// Unit is a tagged value for a layout quantity: a fixed pixel amount, a
// percentage of some reference dimension, a flexible stretch factor, or
// Auto. It is deliberately a small value type rather than an interface —
// the set of variants is closed, and resolving one is a hot path run once
// per node per axis per layout call.
type Unit struct {
	Kind  UnitKind
	Value float32
}

// Auto derives the quantity from content or children; see [Unit.Resolve].
var Auto = Unit{Kind: UnitKindAuto}

// Pixels returns a [Unit] fixed at v pixels.
func Pixels(v float32) Unit { return Unit{Kind: UnitKindPixels, Value: v} }

// Percentage returns a [Unit] equal to v percent (0..100) of the
// reference dimension it is resolved against.
func Percentage(v float32) Unit { return Unit{Kind: UnitKindPercentage, Value: v} }

// Stretch returns a [Unit] with nonnegative flex factor v.
func Stretch(v float32) Unit { return Unit{Kind: UnitKindStretch, Value: v} }

// IsAuto reports whether u is the Auto variant.
func (u Unit) IsAuto() bool { return u.Kind == UnitKindAuto }

// IsStretch reports whether u is the Stretch variant.
func (u Unit) IsStretch() bool { return u.Kind == UnitKindStretch }

// Resolve converts u to a concrete pixel value given a reference
// dimension (the parent's resolved size along the same axis) and a
// fallback used when u is Stretch or Auto. This is
// the single helper used throughout the solver for min/max and border
// resolution: Pixels yields its value unchanged, Percentage scales the
// reference, and both Stretch and Auto defer entirely to fallback since
// neither can be resolved without additional context (a stretch share or
// an auto-size estimate) that the caller must compute separately.
func (u Unit) Resolve(reference, fallback float32) float32 {
	switch u.Kind {
	case UnitKindPixels:
		return u.Value
	case UnitKindPercentage:
		return (u.Value / 100) * reference
	default: // Stretch, Auto
		return fallback
	}
}

// clampf clamps v into [lo, hi], first ensuring hi >= lo(inverted
// min/max is resolved by widening max to match min, never by rejecting
// the value).
func clampf(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nonNeg clamps v to be at least zero.
func nonNeg(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

const infinity = float32(math.MaxFloat32)

// roundf rounds v to the nearest integer, used by the optional pixel
// rounding feature wherever a percentage or flex product is
// computed.
func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}
