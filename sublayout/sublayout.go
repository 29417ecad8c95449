// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sublayout provides a reusable text-measurement scratch value
// for exercising [morphorm.Properties.ContentSizeSecondary] without a
// real text shaper: given a string, a fixed average glyph width, and a
// line height, it estimates the height a word-wrapped paragraph would
// occupy at a given available width.
package sublayout

import "strings"

// Metrics is the sublayout value threaded through [morphorm.Layout]'s
// last argument. A zero Metrics is usable and falls back to
// reasonable defaults; set GlyphWidth and LineHeight to match a real
// font for closer estimates.
type Metrics struct {
	// GlyphWidth is the assumed average advance width of one rune, in
	// the same units as the layout. Defaults to 7 if zero.
	GlyphWidth float32
	// LineHeight is the line advance for one wrapped line. Defaults to
	// 14 if zero.
	LineHeight float32

	// cache memoizes WrappedHeight results for the lifetime of one
	// Metrics value, since the same node's text is often re-measured
	// across passes within a single layout call.
	cache map[measureKey]float32
}

type measureKey struct {
	text  string
	width float32
}

func (m *Metrics) glyphWidth() float32 {
	if m.GlyphWidth > 0 {
		return m.GlyphWidth
	}
	return 7
}

func (m *Metrics) lineHeight() float32 {
	if m.LineHeight > 0 {
		return m.LineHeight
	}
	return 14
}

// WrappedHeight estimates the height needed to render text word-wrapped
// to availableWidth. Words are never split; a single word wider than
// availableWidth still occupies its own line.
func (m *Metrics) WrappedHeight(text string, availableWidth float32) float32 {
	if text == "" {
		return 0
	}
	if availableWidth <= 0 {
		availableWidth = m.glyphWidth()
	}

	key := measureKey{text: text, width: availableWidth}
	if m.cache == nil {
		m.cache = map[measureKey]float32{}
	} else if v, ok := m.cache[key]; ok {
		return v
	}

	glyph := m.glyphWidth()
	maxRunes := availableWidth / glyph
	if maxRunes < 1 {
		maxRunes = 1
	}

	lines := 1
	lineLen := float32(0)
	for _, word := range strings.Fields(text) {
		wordLen := float32(len([]rune(word)))
		needed := wordLen
		if lineLen > 0 {
			needed = lineLen + 1 + wordLen
		}
		if needed > maxRunes && lineLen > 0 {
			lines++
			lineLen = wordLen
		} else {
			lineLen = needed
		}
	}

	height := float32(lines) * m.lineHeight()
	m.cache[key] = height
	return height
}

// PlainWidth estimates the single-line width of text, used as the
// primary-axis [morphorm.Properties.ContentSize] fallback for
// unwrapped text.
func (m *Metrics) PlainWidth(text string) float32 {
	return float32(len([]rune(text))) * m.glyphWidth()
}
