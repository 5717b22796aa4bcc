// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/filter"
	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/paf"
	"github.com/wjwei-handsome/wgatools/rename"
	"github.com/wjwei-handsome/wgatools/stats"
	"github.com/wjwei-handsome/wgatools/werr"
)

var formatFlag = &cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "maf", Usage: "input format: maf or paf"}

var statCommand = &cli.Command{
	Name:  "stat",
	Usage: "report per-pair alignment statistics (spec §4.6 \"Statistics\")",
	Flags: []cli.Flag{
		formatFlag,
		&cli.BoolFlag{Name: "each", Aliases: []string{"e"}, Usage: "emit one row per record instead of aggregating per pair"},
	},
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

		var rows []align.RecStat
		switch c.String("format") {
		case "maf":
			rdr, err := maf.NewReader(in)
			if err != nil {
				return err
			}
			for {
				rec, _, err := rdr.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				rows = append(rows, maf.AlignRecord{Rec: rec}.Stat())
			}
		case "paf":
			rdr := paf.NewReader(in)
			for {
				rec, err := rdr.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				rows = append(rows, paf.AlignRecord{Rec: rec}.Stat())
			}
		default:
			return werr.New(werr.KindUnimplementedFormat, "%s", c.String("format"))
		}

		if !c.Bool("each") {
			rows = stats.Aggregate(rows)
		}
		if _, err := fmt.Fprintln(out, stats.Header); err != nil {
			return werr.Wrap(werr.KindIO, err, "writing stat header")
		}
		for _, r := range rows {
			if _, err := fmt.Fprintln(out, stats.Row(r)); err != nil {
				return werr.Wrap(werr.KindIO, err, "writing stat row")
			}
		}
		return nil
	},
}

var filterCommand = &cli.Command{
	Name:  "filter",
	Usage: "drop alignment blocks below size thresholds (spec §4.6 \"Filter\")",
	Flags: []cli.Flag{
		formatFlag,
		&cli.Uint64Flag{Name: "min-block", Aliases: []string{"b"}, Usage: "minimum target_align_size"},
		&cli.Uint64Flag{Name: "min-query", Aliases: []string{"q"}, Usage: "minimum query_length"},
		&cli.Uint64Flag{Name: "min-align", Aliases: []string{"a"}, Usage: "PAF-only: minimum per-pair total target_align_size"},
	},
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

		opts := filter.Options{
			MinBlockSize: c.Uint64("min-block"),
			MinQuerySize: c.Uint64("min-query"),
			MinAlignSize: c.Uint64("min-align"),
		}

		switch c.String("format") {
		case "maf":
			rdr, err := maf.NewReader(in)
			if err != nil {
				return err
			}
			w := maf.NewWriter(out, "")
			for {
				rec, _, err := rdr.Next()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				if !filter.Keep(maf.AlignRecord{Rec: rec}, opts) {
					continue
				}
				if err := w.Write(rec); err != nil {
					return err
				}
			}
			return w.Flush()
		case "paf":
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
			kept := recs
			if opts.MinAlignSize > 0 {
				kept = filter.FilterPAFGroups(recs, opts)
			} else {
				kept = kept[:0]
				for _, r := range recs {
					if filter.Keep(paf.AlignRecord{Rec: r}, opts) {
						kept = append(kept, r)
					}
				}
			}
			w := paf.NewWriter(out)
			for _, r := range kept {
				if err := w.Write(r); err != nil {
					return err
				}
			}
			return w.Flush()
		default:
			return werr.New(werr.KindUnimplementedFormat, "%s", c.String("format"))
		}
	},
}

var renameCommand = &cli.Command{
	Name:  "rename",
	Usage: "prepend per-SLine prefixes to MAF sequence names (spec §4.6 \"Rename\")",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "prefixes", Aliases: []string{"p"}, Required: true, Usage: "comma-separated prefix list, one per s-line"},
	},
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

		prefixes := splitCSV(c.String("prefixes"))

		rdr, err := maf.NewReader(in)
		if err != nil {
			return err
		}
		w := maf.NewWriter(out, "")
		for {
			rec, _, err := rdr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			renamed, err := rename.Apply(rec, prefixes)
			if err != nil {
				return err
			}
			if err := w.Write(renamed); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}
