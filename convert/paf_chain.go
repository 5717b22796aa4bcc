// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"github.com/wjwei-handsome/wgatools/chainfmt"
	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/paf"
)

// PAFToChain builds a Chain header from the PAF coordinates, trimming via
// the record's own CIGAR, then emits Chain data lines (spec §4.4
// "PAF→Chain").
func PAFToChain(rec paf.Record, ordinal int64) (chainfmt.Record, error) {
	ops, err := rec.CigarOps()
	if err != nil {
		return chainfmt.Record{}, err
	}
	ar := paf.AlignRecord{Rec: rec}
	header := chainfmt.FromAlignRecord(ar, ordinal, ops)
	header.Lines = cigar.ToChainDataLines(cigar.Trimmed(ops))
	return header, nil
}

// ChainToPAF builds a CIGAR from the record's data lines (matches + ins +
// del ops only, no =/X since Chain carries no mismatch information) and
// fills the PAF fields (spec §4.4 "Chain→PAF").
func ChainToPAF(rec chainfmt.Record) paf.Record {
	ops := rec.CigarOps()
	var matches, blockLen uint64
	for _, u := range ops {
		switch u.Op {
		case cigar.OpMatch, cigar.OpEqual:
			matches += u.Len
			blockLen += u.Len
		case cigar.OpInsertion, cigar.OpDeletion:
			blockLen += u.Len
		}
	}
	out := paf.Record{
		QueryName:   rec.QueryName,
		QueryLen:    rec.QuerySize,
		QueryStart:  rec.QueryStart,
		QueryEnd:    rec.QueryEnd,
		Strand:      rec.QueryStrand,
		TargetName:  rec.TargetName,
		TargetLen:   rec.TargetSize,
		TargetStart: rec.TargetStart,
		TargetEnd:   rec.TargetEnd,
		Matches:     matches,
		BlockLen:    blockLen,
		MapQ:        255,
	}
	out.SetTag("cg", ops.String())
	return out
}
