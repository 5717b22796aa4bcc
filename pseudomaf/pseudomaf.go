// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pseudomaf implements the pseudo-MAF generator (spec §4.6
// "Pseudo-MAF"): group PAF records by target, then by query, and emit a
// synthetic multi-way MAF block per target with '-' padding filling the
// gaps between query segments.
package pseudomaf

import (
	"fmt"
	"io"
	"sort"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/paf"
	"github.com/wjwei-handsome/wgatools/werr"
)

// GroupByTarget groups records by target name, optionally restricting to
// a single target (spec §4.6: "Group PAF records by target").
func GroupByTarget(records []paf.Record, onlyTarget string) map[string][]paf.Record {
	out := make(map[string][]paf.Record)
	for _, r := range records {
		if onlyTarget != "" && r.TargetName != onlyTarget {
			continue
		}
		out[r.TargetName] = append(out[r.TargetName], r)
	}
	return out
}

// groupByQuery groups recs by query name, each group kept sorted by
// target_start (spec §4.6: "group by query and sort by target_start").
func groupByQuery(recs []paf.Record) (names []string, byQuery map[string][]paf.Record) {
	byQuery = make(map[string][]paf.Record)
	for _, r := range recs {
		byQuery[r.QueryName] = append(byQuery[r.QueryName], r)
	}
	for name, group := range byQuery {
		sort.Slice(group, func(i, j int) bool { return group[i].TargetStart < group[j].TargetStart })
		byQuery[name] = group
		names = append(names, name)
	}
	sort.Strings(names)
	return names, byQuery
}

// WriteTarget writes one target's pseudo-MAF block to w. fetcher may be
// nil, in which case the target row is filled with 'N' and query rows
// are produced in glyph-only mode (spec §4.6: "target SLine filled with
// the FASTA target (or N × size)").
func WriteTarget(w io.Writer, targetName string, recs []paf.Record, fetcher align.Fetcher) error {
	if len(recs) == 0 {
		return nil
	}
	targetSize := recs[0].TargetLen

	if _, err := fmt.Fprintln(w, "a score=0"); err != nil {
		return werr.Wrap(werr.KindIO, err, "writing pseudomaf a-line")
	}

	targetSeq, err := fetchOrFill(fetcher, targetName, 0, targetSize, true)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "s\t%s\t0\t%d\t+\t%d\t%s\n", targetName, targetSize, targetSize, targetSeq); err != nil {
		return werr.Wrap(werr.KindIO, err, "writing pseudomaf target s-line")
	}

	queryNames, byQuery := groupByQuery(recs)
	for _, qName := range queryNames {
		segs := byQuery[qName]
		querySize := segs[0].QueryLen
		var row []byte
		lastEnd := uint64(0)
		for _, seg := range segs {
			gap := seg.TargetStart - lastEnd
			row = append(row, repeat('-', gap)...)
			lastEnd = seg.TargetEnd

			qStart, qEnd := seg.QueryStart, seg.QueryEnd
			if seg.Strand == align.Negative {
				qStart, qEnd = seg.ReverseStart()
			}
			qSeq, err := fetchOrFill(fetcher, qName, qStart, qEnd, false)
			if err != nil {
				return err
			}
			if seg.Strand == align.Negative && fetcher != nil {
				rc, err := align.ReverseComplement([]byte(qSeq))
				if err != nil {
					return err
				}
				qSeq = string(rc)
			}
			ops, err := seg.CigarOps()
			if err != nil {
				return err
			}
			row = append(row, ApplyCigarGlyphs(ops, qSeq, fetcher != nil)...)
		}
		row = append(row, repeat('-', targetSize-lastEnd)...)
		if _, err := fmt.Fprintf(w, "s\t%s\t0\t%d\t+\t%d\t%s\n", qName, querySize, querySize, string(row)); err != nil {
			return werr.Wrap(werr.KindIO, err, "writing pseudomaf query s-line")
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return werr.Wrap(werr.KindIO, err, "writing pseudomaf blank line")
	}
	return nil
}

func repeat(c byte, n uint64) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return b
}

func fetchOrFill(fetcher align.Fetcher, name string, start, end uint64, isTarget bool) (string, error) {
	if fetcher == nil {
		if isTarget {
			return string(repeat('N', end-start)), nil
		}
		return "", nil
	}
	seq, err := fetcher.FetchSeq(name, int(start), int(end)-1)
	if err != nil {
		return "", err
	}
	return string(seq), nil
}

// ApplyCigarGlyphs implements gen_pesudo_maf_by_cigar's two modes (spec
// §4.6): with-bases (trueBase=true) deletes query bases at 'I' and
// splices '-' at 'D', passing match/mismatch bases through; glyph-only
// (trueBase=false) emits '1' for matches, '0' for mismatches, '-' for
// 'D', and drops 'I' positions entirely.
func ApplyCigarGlyphs(ops cigar.Ops, qSeq string, trueBase bool) []byte {
	var out []byte
	qi := 0
	for _, u := range ops {
		n := int(u.Len)
		switch u.Op {
		case cigar.OpEqual, cigar.OpMatch:
			if trueBase {
				out = append(out, qSeq[qi:qi+n]...)
			} else {
				out = append(out, repeat('1', u.Len)...)
			}
			qi += n
		case cigar.OpMismatch:
			if trueBase {
				out = append(out, qSeq[qi:qi+n]...)
			} else {
				out = append(out, repeat('0', u.Len)...)
			}
			qi += n
		case cigar.OpInsertion:
			qi += n // dropped in both modes
		case cigar.OpDeletion:
			out = append(out, repeat('-', u.Len)...)
		}
	}
	return out
}
