// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"sort"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/wjwei-handsome/wgatools/caller"
	"github.com/wjwei-handsome/wgatools/internal/natural"
	"github.com/wjwei-handsome/wgatools/internal/workerpool"
	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/paf"
	"github.com/wjwei-handsome/wgatools/werr"
)

var callCommand = &cli.Command{
	Name:  "call",
	Usage: "call SNV/INS/DEL/INV variants from a MAF or PAF alignment (spec §4.7)",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "maf", Usage: "input format: maf or paf"},
		&cli.StringFlag{Name: "sample", Aliases: []string{"n"}, Value: "sample", Usage: "VCF sample column name"},
		&cli.BoolFlag{Name: "snp", Aliases: []string{"s"}, Usage: "emit per-column SNV records"},
		&cli.Uint64Flag{Name: "svlen", Aliases: []string{"l"}, Usage: "minimum INS/DEL length to report"},
		&cli.StringFlag{Name: "target-fasta", Aliases: []string{"g"}, Usage: "target FASTA (required for -f paf)"},
		&cli.StringFlag{Name: "query-fasta", Aliases: []string{"q"}, Usage: "query FASTA (required for -f paf)"},
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

		opts := caller.Options{
			SNP:         c.Bool("snp"),
			SVLenCutoff: c.Uint64("svlen"),
			Sample:      c.String("sample"),
		}

		var variants []caller.Variant
		contigSizes := map[string]uint64{}

		switch c.String("format") {
		case "maf":
			variants, err = callMAFInput(c, in, opts, contigSizes)
		case "paf":
			variants, err = callPAFInput(c, in, opts, contigSizes)
		default:
			err = werr.New(werr.KindUnimplementedFormat, "%s", c.String("format"))
		}
		if err != nil {
			return err
		}

		sort.Slice(variants, func(i, j int) bool {
			if variants[i].Chrom != variants[j].Chrom {
				return natural.Less(variants[i].Chrom, variants[j].Chrom)
			}
			return variants[i].Pos < variants[j].Pos
		})

		var contigs []caller.Contig
		names := make([]string, 0, len(contigSizes))
		for n := range contigSizes {
			names = append(names, n)
		}
		sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })
		for _, n := range names {
			contigs = append(contigs, caller.Contig{Name: n, Size: contigSizes[n]})
		}

		if _, err := io.WriteString(out, caller.BuildHeader(opts.Sample, contigs)); err != nil {
			return werr.Wrap(werr.KindIO, err, "writing vcf header")
		}
		for _, v := range variants {
			dumpTrace(c, "variant", v)
			if _, err := io.WriteString(out, v.String()+"\n"); err != nil {
				return werr.Wrap(werr.KindIO, err, "writing vcf record")
			}
		}
		return nil
	},
}

func callMAFInput(c *cli.Context, in io.Reader, opts caller.Options, contigSizes map[string]uint64) ([]caller.Variant, error) {
	rdr, err := maf.NewReader(in)
	if err != nil {
		return nil, err
	}
	var recs []maf.Record
	for {
		rec, _, err := rdr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		contigSizes[rec.Target().Name] = rec.Target().Size
		recs = append(recs, rec)
	}

	var all []caller.Variant
	var mu sync.Mutex
	err = workerpool.Run(threads(c), recs, func(rec maf.Record) error {
		vs, err := caller.CallMAF(rec, opts)
		if err != nil {
			return err
		}
		mu.Lock()
		all = append(all, vs...)
		mu.Unlock()
		return nil
	})
	return all, err
}

func callPAFInput(c *cli.Context, in io.Reader, opts caller.Options, contigSizes map[string]uint64) ([]caller.Variant, error) {
	targetPath := c.String("target-fasta")
	queryPath := c.String("query-fasta")
	if targetPath == "" || queryPath == "" {
		return nil, werr.New(werr.KindFieldMissing, "call -f paf requires -g and -q")
	}
	tf, err := openFetcher(targetPath)
	if err != nil {
		return nil, err
	}
	defer tf.Close()
	qf, err := openFetcher(queryPath)
	if err != nil {
		return nil, err
	}
	defer qf.Close()
	fetcher := pairFetcher{target: tf, query: qf}

	rdr := paf.NewReader(in)
	var all []caller.Variant
	for {
		rec, err := rdr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		contigSizes[rec.TargetName] = rec.TargetLen
		vs, err := caller.CallPAF(rec, fetcher, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, vs...)
	}
	return all, nil
}
