// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/chainfmt"
	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/maf"
)

// MAFToChain writes a Chain header (chain_id = ordinal, coordinates
// trimmed of flanking indels) and runs CIGAR→Chain-data-lines over the
// trimmed CIGAR, so the header coordinates equal the sum of the data
// lines per spec's invariant (spec §4.4 "MAF→Chain").
func MAFToChain(rec maf.Record, ordinal int64) (chainfmt.Record, error) {
	ar := maf.AlignRecord{Rec: rec}
	t, q := rec.Target(), rec.Query()
	ops, err := cigar.FromGappedPair([]byte(t.Seq), []byte(q.Seq), 0, 0)
	if err != nil {
		return chainfmt.Record{}, err
	}
	header := chainfmt.FromAlignRecord(ar, ordinal, ops)
	header.Lines = cigar.ToChainDataLines(cigar.Trimmed(ops))
	return header, nil
}

// ChainToMAF fetches target/query slices via fetcher and reinserts gaps
// driven by the record's data-line triplets rather than a CIGAR string
// (spec §4.4 "Chain→MAF": "same as PAF→MAF but gap insertion is driven by
// data-line triplets").
func ChainToMAF(rec chainfmt.Record, fetcher align.Fetcher) (maf.Record, error) {
	ops := rec.CigarOps()

	tSeq, err := fetcher.FetchSeq(rec.TargetName, int(rec.TargetStart), int(rec.TargetEnd)-1)
	if err != nil {
		return maf.Record{}, err
	}

	qStart, qEnd := rec.QueryStart, rec.QueryEnd
	qSeq, err := fetcher.FetchSeq(rec.QueryName, int(qStart), int(qEnd)-1)
	if err != nil {
		return maf.Record{}, err
	}
	if rec.QueryStrand == align.Negative {
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
		Score:    rec.Score,
		QueryIdx: 1,
		SLines: []maf.SLine{
			{Mode: 's', Name: rec.TargetName, Start: rec.TargetStart, AlignSize: rec.TargetEnd - rec.TargetStart, Strand: align.Positive, Size: rec.TargetSize, Seq: gappedT},
			{Mode: 's', Name: rec.QueryName, Start: rec.QueryStart, AlignSize: rec.QueryEnd - rec.QueryStart, Strand: rec.QueryStrand, Size: rec.QuerySize, Seq: gappedQ},
		},
	}, nil
}
