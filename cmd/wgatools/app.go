// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli/v2"
)

// application builds the *cli.App: global flags (-o/-r/-t/-v) defined
// once on the root app, subcommands as *cli.Command values, one per file
// in this package (grounded on bebop-poly/poly/main.go's application()).
func application() *cli.App {
	return &cli.App{
		Name:  "wgatools",
		Usage: "convert, index, call and analyze whole-genome alignments (MAF/PAF/Chain)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "-", Usage: "output path, '-' for stdout; extension selects compression"},
			&cli.BoolFlag{Name: "rewrite", Aliases: []string{"r"}, Usage: "allow overwriting an existing output file"},
			&cli.IntFlag{Name: "threads", Aliases: []string{"t"}, Value: 1, Usage: "worker count for concurrent operators"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "increase verbosity; repeat for more (-v -v -v)"},
		},
		Commands: []*cli.Command{
			maf2pafCommand,
			maf2chainCommand,
			maf2samCommand,
			paf2mafCommand,
			chain2mafCommand,
			paf2chainCommand,
			chain2pafCommand,
			mafIndexCommand,
			mafExtCommand,
			chunkCommand,
			callCommand,
			statCommand,
			filterCommand,
			renameCommand,
			pafcovCommand,
			pafpseudoCommand,
			validateCommand,
			genCompletionCommand,
		},
	}
}
