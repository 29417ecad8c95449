// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command morphctl runs the layout solver over a YAML tree description
// and prints the resulting rectangles.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "morphctl",
	Short: "morphctl runs the hierarchical box layout solver over a YAML tree",
}

func main() {
	rootCmd.AddCommand(layoutCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
