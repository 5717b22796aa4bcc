// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/coverage"
	"github.com/wjwei-handsome/wgatools/paf"
	"github.com/wjwei-handsome/wgatools/pseudomaf"
	"github.com/wjwei-handsome/wgatools/werr"
)

var pafFastaFlag = &cli.StringFlag{Name: "fasta", Aliases: []string{"f"}, Usage: "FASTA to pull bases from (with-bases mode); omit for glyph-only"}
var pafTargetFlag = &cli.StringFlag{Name: "target", Aliases: []string{"g"}, Usage: "restrict to a single target name"}

var pafcovCommand = &cli.Command{
	Name:  "pafcov",
	Usage: "emit BED-like per-base target depth from a PAF file (spec §4.6 \"PAF coverage\")",
	Action: func(c *cli.Context) error {
		in, err := openIn(c)
		if err != nil {
			return err
		}
		defer in.Close()
		out, err := openOut(c)
		if err != nil {
			return err
		}
		defer out.Close()

		rdr := paf.NewReader(in)
		depths := coverage.NewDepths()
		for {
			rec, err := rdr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			if err := depths.Add(rec); err != nil {
				return err
			}
		}
		for _, row := range depths.Rows() {
			if _, err := fmt.Fprintln(out, row); err != nil {
				return werr.Wrap(werr.KindIO, err, "writing pafcov row")
			}
		}
		return nil
	},
}

var pafpseudoCommand = &cli.Command{
	Name:  "pafpseudo",
	Usage: "synthesize a pseudo-MAF block per target from a PAF file (spec §4.6 \"Pseudo-MAF\")",
	Flags: []cli.Flag{pafFastaFlag, pafTargetFlag},
	Action: func(c *cli.Context) error {
		in, err := openIn(c)
		if err != nil {
			return err
		}
		defer in.Close()
		out, err := openOut(c)
		if err != nil {
			return err
		}
		defer out.Close()

		rdr := paf.NewReader(in)
		var recs []paf.Record
		for {
			rec, err := rdr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}

		var fetcher align.Fetcher
		if path := c.String("fasta"); path != "" {
			ff, err := openFetcher(path)
			if err != nil {
				return err
			}
			defer ff.Close()
			fetcher = ff
		}

		grouped := pseudomaf.GroupByTarget(recs, c.String("target"))
		targets := make([]string, 0, len(grouped))
		for t := range grouped {
			targets = append(targets, t)
		}
		sort.Strings(targets)
		for _, t := range targets {
			if err := pseudomaf.WriteTarget(out, t, grouped[t], fetcher); err != nil {
				return err
			}
		}
		return nil
	},
}
