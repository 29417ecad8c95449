// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/geom3trik/morphorm"
	"github.com/geom3trik/morphorm/ecsstore"
	"github.com/geom3trik/morphorm/sublayout"
)

var (
	round       bool
	glyphWidth  float32
	lineHeight  float32
)

var layoutCmd = &cobra.Command{
	Use:   "layout [file]",
	Short: "Solve a YAML tree description and print the resulting rectangles",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayout,
}

func init() {
	layoutCmd.Flags().BoolVar(&round, "round", false, "round percentage and stretch results to the nearest pixel")
	layoutCmd.Flags().Float32Var(&glyphWidth, "glyph-width", 0, "average glyph width used to estimate wrapped text height")
	layoutCmd.Flags().Float32Var(&lineHeight, "line-height", 0, "line height used to estimate wrapped text height")
}

func runLayout(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Log(err)
	}

	var doc nodeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Log(err)
	}

	store := ecsstore.New()
	root, err := build(store, doc, 0, false)
	if err != nil {
		return errors.Log(err)
	}

	cache := ecsstore.NewCache(store)
	cache.SetRoundPixels(round)

	metrics := &sublayout.Metrics{GlyphWidth: glyphWidth, LineHeight: lineHeight}
	morphorm.Layout[ecsstore.Entity](cache, store, store, metrics)

	var sb strings.Builder
	ecsstore.Dump(&sb, store, cache, root)
	_, err = cmd.OutOrStdout().Write([]byte(sb.String()))
	return errors.Log(err)
}
