// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/wjwei-handsome/wgatools/chainfmt"
	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/paf"
	"github.com/wjwei-handsome/wgatools/validate"
	"github.com/wjwei-handsome/wgatools/werr"
)

var validateCommand = &cli.Command{
	Name:  "validate",
	Usage: "check that every record in a MAF/PAF/Chain file satisfies its own format invariants (spec §6 CLI table)",
	Flags: []cli.Flag{
		formatFlag,
		&cli.StringFlag{Name: "fix", Usage: "PAF only: rewrite a corrected copy to this path instead of only reporting"},
	},
	Action: func(c *cli.Context) error {
		in, err := openIn(c)
		if err != nil {
			return err
		}
		defer in.Close()

		var failures []validate.Failure
		switch c.String("format") {
		case "maf":
			rdr, err := maf.NewReader(in)
			if err != nil {
				return err
			}
			failures, err = validate.MAF(rdr)
			if err != nil {
				return err
			}
		case "paf":
			rdr := paf.NewReader(in)
			if fixPath := c.String("fix"); fixPath != "" {
				failures, err = fixPAF(rdr, fixPath)
			} else {
				failures, err = validate.PAF(rdr)
			}
			if err != nil {
				return err
			}
		case "chain":
			rdr := chainfmt.NewReader(in)
			failures, err = validate.Chain(rdr)
			if err != nil {
				return err
			}
		default:
			return werr.New(werr.KindUnimplementedFormat, "%s", c.String("format"))
		}

		if len(failures) == 0 {
			fmt.Println("OK: all records valid")
			return nil
		}
		for _, f := range failures {
			fmt.Fprintln(os.Stderr, f.String())
		}
		return werr.New(werr.KindOther, "%d invalid record(s)", len(failures))
	},
}

// fixPAF re-reads the PAF stream via rdr, clamping each record's
// Matches/BlockLen/NM triple to agree with its own CIGAR and writing the
// corrected copy to fixPath (SPEC_FULL §4.6 "validate --fix", grounded on
// original_source's src/tools/validate.rs).
func fixPAF(rdr *paf.Reader, fixPath string) ([]validate.Failure, error) {
	f, err := os.Create(fixPath)
	if err != nil {
		return nil, werr.Wrap(werr.KindIO, err, "creating %s", fixPath)
	}
	defer f.Close()
	w := paf.NewWriter(f)

	var failures []validate.Failure
	for i := 1; ; i++ {
		rec, err := rdr.Next()
		if err != nil {
			break
		}
		ops, cerr := rec.CigarOps()
		if cerr != nil {
			failures = append(failures, validate.Failure{Index: i, Err: cerr})
			continue
		}
		var matches, blockLen uint64
		for _, u := range ops {
			switch u.Op {
			case cigar.OpMatch, cigar.OpEqual:
				matches += u.Len
				blockLen += u.Len
			case cigar.OpMismatch, cigar.OpInsertion, cigar.OpDeletion:
				blockLen += u.Len
			}
		}
		if matches != rec.Matches || blockLen != rec.BlockLen {
			failures = append(failures, validate.Failure{Index: i, Err: fmt.Errorf("matches/blocklen clamped to cigar-derived %d/%d", matches, blockLen)})
			rec.Matches, rec.BlockLen = matches, blockLen
			setNMTag(&rec, blockLen-matches)
		}
		if err := w.Write(rec); err != nil {
			return failures, err
		}
	}
	return failures, w.Flush()
}

// setNMTag replaces rec's NM tag with an i-typed value, matching the
// `NM:i:<edit-distance>` convention convert.MAFToPAF writes (paf.Record's
// SetTag only builds Z-typed tags).
func setNMTag(rec *paf.Record, edit uint64) {
	full := "NM:i:" + strconv.FormatUint(edit, 10)
	for i, t := range rec.Tags {
		if len(t) > 3 && t[:3] == "NM:" {
			rec.Tags[i] = full
			return
		}
	}
	rec.Tags = append(rec.Tags, full)
}
