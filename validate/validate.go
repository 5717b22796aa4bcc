// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validate implements the `validate` subcommand (SPEC_FULL §4
// "validate"): walk an entire MAF, PAF or Chain file and report every
// record that fails its format's own Validate/parse invariants, without
// stopping at the first failure.
package validate

import (
	"fmt"
	"io"

	"github.com/wjwei-handsome/wgatools/chainfmt"
	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/paf"
)

// Failure is one record-level validation failure, numbered by its
// position in the file (1-based, counting only successfully parsed
// records before it).
type Failure struct {
	Index int
	Err   error
}

func (f Failure) String() string {
	return fmt.Sprintf("record %d: %s", f.Index, f.Err)
}

// MAF walks r, running Record.Validate on every block.
func MAF(r *maf.Reader) ([]Failure, error) {
	var failures []Failure
	for i := 1; ; i++ {
		rec, _, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return failures, err
		}
		if verr := rec.Validate(); verr != nil {
			failures = append(failures, Failure{Index: i, Err: verr})
		}
	}
	return failures, nil
}

// PAF walks r, checking that every record's CIGAR tag (cg:Z: or cs:Z:)
// parses, since paf.Record carries no other cross-field invariant.
func PAF(r *paf.Reader) ([]Failure, error) {
	var failures []Failure
	for i := 1; ; i++ {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return failures, err
		}
		if _, cerr := rec.CigarOps(); cerr != nil {
			failures = append(failures, Failure{Index: i, Err: cerr})
		}
	}
	return failures, nil
}

// Chain walks r, checking that each header's trimmed span is non-negative
// and that the data lines' sizes are internally consistent with the
// header's target/query spans.
func Chain(r *chainfmt.Reader) ([]Failure, error) {
	var failures []Failure
	for i := 1; ; i++ {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return failures, err
		}
		if err := checkChainRecord(rec); err != nil {
			failures = append(failures, Failure{Index: i, Err: err})
		}
	}
	return failures, nil
}

func checkChainRecord(rec chainfmt.Record) error {
	// cigar.ToChainDataLines stores a CIGAR insertion's length (which
	// consumes query, not target) as TargetDiff, and a deletion's length
	// (which consumes target) as QueryDiff — see cigar.DataLine's doc
	// comment. Sum accordingly rather than by field name.
	var tSpan, qSpan uint64
	for _, dl := range rec.Lines {
		tSpan += dl.Size + dl.QueryDiff
		qSpan += dl.Size + dl.TargetDiff
	}
	if tSpan != rec.TargetEnd-rec.TargetStart {
		return fmt.Errorf("target span from data lines (%d) != header span (%d)", tSpan, rec.TargetEnd-rec.TargetStart)
	}
	if qSpan != rec.QueryEnd-rec.QueryStart {
		return fmt.Errorf("query span from data lines (%d) != header span (%d)", qSpan, rec.QueryEnd-rec.QueryStart)
	}
	return nil
}
