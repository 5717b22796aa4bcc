// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/kortschak/utter"
	"github.com/urfave/cli/v2"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/internal/logging"
	"github.com/wjwei-handsome/wgatools/ioutil"
)

// inputPath returns the first positional argument, or "-" for stdin when
// none was given (spec §6: "[input]" commands accept stdin).
func inputPath(c *cli.Context) string {
	if c.Args().Len() == 0 {
		return "-"
	}
	return c.Args().First()
}

// openIn opens the command's input source through the shared
// compression-autodetecting layer.
func openIn(c *cli.Context) (io.ReadCloser, error) {
	return ioutil.OpenInput(inputPath(c))
}

// openOut opens the command's output sink, honoring the global -o/-r
// flags.
func openOut(c *cli.Context) (io.WriteCloser, error) {
	return ioutil.OpenOutput(c.String("output"), c.Bool("rewrite"))
}

// logger builds a Logger gated by the global -v/-vv/-vvv count.
func logger(c *cli.Context) *logging.Logger {
	return logging.New(logging.FromCount(c.Count("verbose")))
}

// dumpTrace pretty-prints v via kortschak/utter when running at -vvv
// (SPEC_FULL §1 "Pretty debug dumps"), matching a `dbg!`-style trace.
func dumpTrace(c *cli.Context, label string, v interface{}) {
	if c.Count("verbose") < int(logging.LevelTrace) {
		return
	}
	utter.Dump(v)
	logger(c).Trace("dumped %s above", label)
}

// openFetcher opens the -g target / -q query FASTA files required by
// commands that need random-access sequence (paf2maf, chain2maf,
// pafpseudo, PAF-mode call).
func openFetcher(path string) (*align.FastaFetcher, error) {
	return align.NewFastaFetcher(path)
}

// threads returns the -t worker count, defaulting to 1.
func threads(c *cli.Context) int {
	n := c.Int("threads")
	if n <= 0 {
		return 1
	}
	return n
}
