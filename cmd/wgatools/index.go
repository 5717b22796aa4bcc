// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/mafidx"
	"github.com/wjwei-handsome/wgatools/werr"
)

var mafIndexCommand = &cli.Command{
	Name:      "maf-index",
	Usage:     "build a byte-offset index over a MAF file, written to <input>.index (spec §4.5 \"Build\")",
	ArgsUsage: "<input>",
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return werr.New(werr.KindFieldMissing, "maf-index requires a file path (stdin cannot be indexed)")
		}
		f, err := os.Open(path)
		if err != nil {
			return werr.Wrap(werr.KindIO, err, "opening %s", path)
		}
		defer f.Close()

		rdr, err := maf.NewReader(f)
		if err != nil {
			return err
		}
		idx, err := mafidx.Build(rdr)
		if err != nil {
			return err
		}

		out, err := os.Create(path + ".index")
		if err != nil {
			return werr.Wrap(werr.KindIO, err, "creating %s.index", path)
		}
		defer out.Close()
		if err := mafidx.Encode(out, idx); err != nil {
			return err
		}
		logger(c).Info("wrote index for %d sequences to %s.index", len(idx.Items), path)
		return nil
	},
}

var mafExtCommand = &cli.Command{
	Name:      "maf-ext",
	Usage:     "extract MAF blocks overlapping one or more regions from an indexed file (spec §4.5 \"Extract\")",
	ArgsUsage: "<input>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "region", Aliases: []string{"r"}, Usage: "comma-separated chr:start-end regions"},
		&cli.StringFlag{Name: "region-file", Aliases: []string{"f"}, Usage: "TSV/BED region file (name start end)"},
	},
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return werr.New(werr.KindFieldMissing, "maf-ext requires a file path (stdin cannot be indexed)")
		}

		var regions []mafidx.Region
		if s := c.String("region"); s != "" {
			for _, tok := range strings.Split(s, ",") {
				reg, err := mafidx.ParseRegion(strings.TrimSpace(tok))
				if err != nil {
					return err
				}
				regions = append(regions, reg)
			}
		}
		if fp := c.String("region-file"); fp != "" {
			rf, err := os.Open(fp)
			if err != nil {
				return werr.Wrap(werr.KindIO, err, "opening region file %s", fp)
			}
			defer rf.Close()
			fromFile, err := mafidx.ParseRegionFile(rf)
			if err != nil {
				return err
			}
			regions = append(regions, fromFile...)
		}
		if len(regions) == 0 {
			return werr.New(werr.KindFieldMissing, "maf-ext requires -r and/or -f")
		}

		idxFile, err := os.Open(path + ".index")
		if err != nil {
			return werr.Wrap(werr.KindIO, err, "opening %s.index (run maf-index first)", path)
		}
		defer idxFile.Close()
		idx, err := mafidx.Decode(idxFile)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return werr.Wrap(werr.KindIO, err, "opening %s", path)
		}
		defer f.Close()

		out, err := openOut(c)
		if err != nil {
			return err
		}
		defer out.Close()
		w := maf.NewWriter(out, "")

		failed, err := mafidx.Extract(idx, f, regions, func(rec maf.Record) error {
			dumpTrace(c, "maf-ext record", rec)
			return w.Write(rec)
		})
		if err != nil {
			return err
		}
		for _, fr := range failed {
			logger(c).Warn("region %s:%d-%d: %s", fr.Region.Name, fr.Region.Start, fr.Region.End, fr.Reason)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if len(failed) > 0 {
			fmt.Fprintf(os.Stderr, "wgatools: %d of %d regions had no extraction result\n", len(failed), len(regions))
		}
		return nil
	},
}
