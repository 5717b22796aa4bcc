// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/urfave/cli/v2"

	"github.com/wjwei-handsome/wgatools/chainfmt"
	"github.com/wjwei-handsome/wgatools/convert"
	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/paf"
)

var queryNameFlag = &cli.StringFlag{Name: "query_name", Usage: "restrict conversion to the block whose query SLine matches this name"}
var targetFastaFlag = &cli.StringFlag{Name: "target-fasta", Aliases: []string{"g"}, Required: true, Usage: "target (reference) FASTA, with a .fai sidecar"}
var queryFastaFlag = &cli.StringFlag{Name: "query-fasta", Aliases: []string{"q"}, Required: true, Usage: "query FASTA, with a .fai sidecar"}

var maf2pafCommand = &cli.Command{
	Name:  "maf2paf",
	Usage: "convert a MAF file to PAF",
	Flags: []cli.Flag{queryNameFlag},
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

		rdr, err := maf.NewReader(in)
		if err != nil {
			return err
		}
		w := paf.NewWriter(out)
		qname := c.String("query_name")
		for {
			rec, _, err := rdr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			if qname != "" && rec.Query().Name != qname {
				continue
			}
			out, err := convert.MAFToPAF(rec)
			if err != nil {
				return err
			}
			dumpTrace(c, "maf2paf record", out)
			if err := w.Write(out); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

var maf2chainCommand = &cli.Command{
	Name:  "maf2chain",
	Usage: "convert a MAF file to Chain",
	Flags: []cli.Flag{queryNameFlag},
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

		rdr, err := maf.NewReader(in)
		if err != nil {
			return err
		}
		w := chainfmt.NewWriter(out)
		qname := c.String("query_name")
		var ordinal int64
		for {
			rec, _, err := rdr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			if qname != "" && rec.Query().Name != qname {
				continue
			}
			ordinal++
			chRec, err := convert.MAFToChain(rec, ordinal)
			if err != nil {
				return err
			}
			dumpTrace(c, "maf2chain record", chRec)
			if err := w.Write(chRec); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

var maf2samCommand = &cli.Command{
	Name:  "maf2sam",
	Usage: "write a scaffold SAM header and one illustrative record from a MAF file's first block",
	Flags: []cli.Flag{queryNameFlag},
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

		rdr, err := maf.NewReader(in)
		if err != nil {
			return err
		}
		first, _, err := rdr.Next()
		if err != nil && err != io.EOF {
			return err
		}
		return convert.MAFToSAM(out, first)
	},
}

var paf2mafCommand = &cli.Command{
	Name:   "paf2maf",
	Usage:  "convert a PAF file to MAF, fetching bases from target/query FASTA",
	Flags:  []cli.Flag{targetFastaFlag, queryFastaFlag},
	Action: withTwoFetchers(func(c *cli.Context, _, _ string, fetcher pairFetcher) error {
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
		w := maf.NewWriter(out, "")
		for {
			rec, err := rdr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			mrec, err := convert.PAFToMAF(rec, fetcher)
			if err != nil {
				return err
			}
			dumpTrace(c, "paf2maf record", mrec)
			if err := w.Write(mrec); err != nil {
				return err
			}
		}
		return w.Flush()
	}),
}

var chain2mafCommand = &cli.Command{
	Name:   "chain2maf",
	Usage:  "convert a Chain file to MAF, fetching bases from target/query FASTA",
	Flags:  []cli.Flag{targetFastaFlag, queryFastaFlag},
	Action: withTwoFetchers(func(c *cli.Context, _, _ string, fetcher pairFetcher) error {
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

		rdr := chainfmt.NewReader(in)
		w := maf.NewWriter(out, "")
		for {
			rec, err := rdr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			mrec, err := convert.ChainToMAF(rec, fetcher)
			if err != nil {
				return err
			}
			dumpTrace(c, "chain2maf record", mrec)
			if err := w.Write(mrec); err != nil {
				return err
			}
		}
		return w.Flush()
	}),
}

var paf2chainCommand = &cli.Command{
	Name:  "paf2chain",
	Usage: "convert a PAF file to Chain",
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
		w := chainfmt.NewWriter(out)
		var ordinal int64
		for {
			rec, err := rdr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			ordinal++
			chRec, err := convert.PAFToChain(rec, ordinal)
			if err != nil {
				return err
			}
			dumpTrace(c, "paf2chain record", chRec)
			if err := w.Write(chRec); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}

var chain2pafCommand = &cli.Command{
	Name:  "chain2paf",
	Usage: "convert a Chain file to PAF",
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

		rdr := chainfmt.NewReader(in)
		w := paf.NewWriter(out)
		for {
			rec, err := rdr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			pRec := convert.ChainToPAF(rec)
			dumpTrace(c, "chain2paf record", pRec)
			if err := w.Write(pRec); err != nil {
				return err
			}
		}
		return w.Flush()
	},
}
