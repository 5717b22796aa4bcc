// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caller

import (
	"fmt"
	"strings"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/paf"
)

// group is one run of columns sharing a cigar.ColumnCat classification,
// with double-gap columns mapped to catIgnore (spec §4.7's
// cigar_cat_ext_caller: "behaves like cigar_cat_ext but maps column (-,-)
// to W (ignored)").
type group struct {
	cat cigar.Op
	len uint64
}

const catIgnore cigar.Op = 'W'

func groupColumns(target, query string) []group {
	var groups []group
	for i := 0; i < len(target); i++ {
		cat := cigar.ColumnCat(target[i], query[i])
		if cat == cigar.OpInvalid {
			cat = catIgnore
		}
		if len(groups) > 0 && groups[len(groups)-1].cat == cat {
			groups[len(groups)-1].len++
		} else {
			groups = append(groups, group{cat: cat, len: 1})
		}
	}
	return groups
}

// CallMAF calls variants from one MAF record (spec §4.7). MAF calling
// collects and sorts records externally before emitting (spec §4.7
// "Concurrency"); CallMAF itself handles only one record.
func CallMAF(rec maf.Record, opts Options) ([]Variant, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	t, q := rec.Target(), rec.Query()
	return callGapped(t.Name, q.Name, t.Start, t.Start+t.AlignSize, q.Start, q.Start+q.AlignSize,
		q.Strand, t.Seq, q.Seq, opts), nil
}

// CallPAF calls variants from a PAF record by synthesizing a gapped pair
// from FASTA-fetched target/query slices walked against the record's
// CIGAR, reverse-complementing the query on the negative strand (spec
// §4.7 "PAF variant calling").
func CallPAF(rec paf.Record, fetcher align.Fetcher, opts Options) ([]Variant, error) {
	ops, err := rec.CigarOps()
	if err != nil {
		return nil, err
	}
	tSeq, err := fetcher.FetchSeq(rec.TargetName, int(rec.TargetStart), int(rec.TargetEnd)-1)
	if err != nil {
		return nil, err
	}
	qStart, qEnd := rec.QueryStart, rec.QueryEnd
	if rec.Strand == align.Negative {
		qStart, qEnd = rec.ReverseStart()
	}
	qSeq, err := fetcher.FetchSeq(rec.QueryName, int(qStart), int(qEnd)-1)
	if err != nil {
		return nil, err
	}
	if rec.Strand == align.Negative {
		qSeq, err = align.ReverseComplement(qSeq)
		if err != nil {
			return nil, err
		}
	}
	gappedT, gappedQ, err := cigar.InsertGaps(ops, string(tSeq), string(qSeq))
	if err != nil {
		return nil, err
	}
	return callGapped(rec.TargetName, rec.QueryName, rec.TargetStart, rec.TargetEnd, rec.QueryStart, rec.QueryEnd,
		rec.Strand, gappedT, gappedQ, opts), nil
}

// callGapped is the shared within-alignment walk (spec §4.7 "Within-
// window walk"), grounded on original_source's call_within_var.
func callGapped(tName, qName string, tStart, tEnd, qStart, qEnd uint64, strand align.Strand,
	gappedTarget, gappedQuery string, opts Options) []Variant {

	tSeqRef := strings.ReplaceAll(gappedTarget, "-", "")
	qSeqRef := strings.ReplaceAll(gappedQuery, "-", "")

	strandSuffix := byte('P')
	if strand == align.Negative {
		strandSuffix = 'N'
	}

	var variants []Variant
	initInfo := ""
	if strand == align.Negative {
		initInfo = "INV_NEST=TRUE;"
		refBase := tSeqRef[0:1]
		info := fmt.Sprintf("SVTYPE=INV;END=%d", tEnd)
		qi := fmt.Sprintf("%s@%d@%d@%c", qName, qStart, qEnd, strandSuffix)
		variants = append(variants, Variant{Chrom: tName, Pos: tStart + 1, Ref: refBase, Alt: "<INV>", Info: info, QI: qi})
	}

	chunkSize := opts.BaseChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultBaseChunkSize
	}
	bounds := chunkBoundaries(gappedTarget, gappedQuery, chunkSize)

	tOff, qOff := tStart, qStart
	colStart := 0
	for _, colEnd := range bounds {
		groups := groupColumns(gappedTarget[colStart:colEnd], gappedQuery[colStart:colEnd])
		for _, g := range groups {
			switch g.cat {
			case cigar.OpEqual, cigar.OpMatch:
				tOff += g.len
				qOff += g.len
			case catIgnore:
				// double-gap column; no-op
			case cigar.OpMismatch:
				if opts.SNP {
					for i := uint64(0); i < g.len; i++ {
						tSlice := tOff - tStart
						qSlice := qOff - qStart
						v := Variant{
							Chrom: tName,
							Pos:   tOff + 1,
							Ref:   tSeqRef[tSlice : tSlice+1],
							Alt:   qSeqRef[qSlice : qSlice+1],
						}
						variants = append(variants, v)
						tOff++
						qOff++
					}
				} else {
					tOff += g.len
					qOff += g.len
				}
			case cigar.OpInsertion:
				if g.len > opts.SVLenCutoff && tOff > tStart {
					tSlice := tOff - tStart - 1
					qSliceStart := qOff - qStart - 1
					refBase := tSeqRef[tSlice : tSlice+1]
					altBase := qSeqRef[qSliceStart : qSliceStart+g.len+1]
					info := fmt.Sprintf("%sSVTYPE=INS;SVLEN=%d;END=%d", initInfo, g.len, tOff)
					qi := fmt.Sprintf("%s@%d@%d@%c", qName, qOff, qOff+g.len, strandSuffix)
					variants = append(variants, Variant{Chrom: tName, Pos: tOff, Ref: refBase, Alt: altBase, Info: info, QI: qi})
				}
				qOff += g.len
			case cigar.OpDeletion:
				if g.len > opts.SVLenCutoff && tOff > tStart {
					tSlice := tOff - tStart - 1
					qSlice := qOff - qStart - 1
					refBase := tSeqRef[tSlice : tSlice+g.len+1]
					altBase := qSeqRef[qSlice : qSlice+1]
					end := tOff + g.len
					info := fmt.Sprintf("%sSVTYPE=DEL;SVLEN=%d;END=%d", initInfo, g.len, end)
					qi := fmt.Sprintf("%s@%d@%d@%c", qName, qOff, qOff, strandSuffix)
					variants = append(variants, Variant{Chrom: tName, Pos: tOff, Ref: refBase, Alt: altBase, Info: info, QI: qi})
				}
				tOff += g.len
			}
		}
		colStart = colEnd
	}
	return variants
}
