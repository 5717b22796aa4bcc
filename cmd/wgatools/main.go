// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command wgatools is the CLI entry point: format conversion, range
// extraction, variant calling and analysis tools for whole-genome
// alignments in MAF, PAF and Chain (spec §6 "CLI surface").
package main

import (
	"fmt"
	"os"
)

func main() {
	run(os.Args)
}

// run is separated from main for testability, matching bebop-poly's
// main.go/run split. Exit 0 on success, 1 on any error (spec §6: "Exit 0
// on success, 1 on any WGAError").
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		fmt.Fprintln(os.Stderr, "wgatools: "+err.Error())
		os.Exit(1)
	}
}
