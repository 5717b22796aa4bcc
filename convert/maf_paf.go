// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert implements the six pairwise converters among MAF, PAF
// and Chain (spec §4.4), each built from the shared cigar kernel plus the
// align.Fetcher interface where a format needs FASTA-backed sequence.
package convert

import (
	"fmt"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/paf"
)

// MAFToPAF computes a CIGAR from rec's gapped sequences and fills a PAF
// record (spec §4.4 "MAF→PAF"). Coordinates pass through unchanged.
func MAFToPAF(rec maf.Record) (paf.Record, error) {
	t, q := rec.Target(), rec.Query()
	ops, err := cigar.FromGappedPair([]byte(t.Seq), []byte(q.Seq), 0, 0)
	if err != nil {
		return paf.Record{}, err
	}
	var matches, blockLen uint64
	for _, u := range ops {
		switch u.Op {
		case cigar.OpEqual, cigar.OpMatch:
			matches += u.Len
			blockLen += u.Len
		case cigar.OpMismatch, cigar.OpInsertion, cigar.OpDeletion:
			blockLen += u.Len
		}
	}
	out := paf.Record{
		QueryName:   q.Name,
		QueryLen:    q.Size,
		QueryStart:  q.Start,
		QueryEnd:    q.Start + q.AlignSize,
		Strand:      q.Strand,
		TargetName:  t.Name,
		TargetLen:   t.Size,
		TargetStart: t.Start,
		TargetEnd:   t.Start + t.AlignSize,
		Matches:     matches,
		BlockLen:    blockLen,
		MapQ:        255,
	}
	out.Tags = []string{
		fmt.Sprintf("NM:i:%d", blockLen-matches),
		"cg:Z:" + ops.String(),
	}
	return out, nil
}

// PAFToMAF fetches target and query slices via fetcher, reverse-
// complementing the query when the record is on the negative strand,
// re-inserts gaps per the record's CIGAR, and emits a two-SLine MAF
// record with Score = mapq (spec §4.4 "PAF→MAF").
func PAFToMAF(rec paf.Record, fetcher align.Fetcher) (maf.Record, error) {
	ops, err := rec.CigarOps()
	if err != nil {
		return maf.Record{}, err
	}

	tSeq, err := fetcher.FetchSeq(rec.TargetName, int(rec.TargetStart), int(rec.TargetEnd)-1)
	if err != nil {
		return maf.Record{}, err
	}

	qStart, qEnd := rec.QueryStart, rec.QueryEnd
	if rec.Strand == align.Negative {
		qStart, qEnd = rec.ReverseStart()
	}
	qSeq, err := fetcher.FetchSeq(rec.QueryName, int(qStart), int(qEnd)-1)
	if err != nil {
		return maf.Record{}, err
	}
	if rec.Strand == align.Negative {
		qSeq, err = align.ReverseComplement(qSeq)
		if err != nil {
			return maf.Record{}, err
		}
	}

	gappedT, gappedQ, err := cigar.InsertGaps(ops, string(tSeq), string(qSeq))
	if err != nil {
		return maf.Record{}, err
	}

	return maf.Record{
		Score:    int64(rec.MapQ),
		QueryIdx: 1,
		SLines: []maf.SLine{
			{Mode: 's', Name: rec.TargetName, Start: rec.TargetStart, AlignSize: rec.TargetEnd - rec.TargetStart, Strand: align.Positive, Size: rec.TargetLen, Seq: gappedT},
			{Mode: 's', Name: rec.QueryName, Start: rec.QueryStart, AlignSize: rec.QueryEnd - rec.QueryStart, Strand: rec.Strand, Size: rec.QueryLen, Seq: gappedQ},
		},
	}, nil
}
