// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

// Segment is one merged dotplot/coverage-plot record (spec §4.2
// "Per-column emission"): matched runs merge into a single 'M' segment,
// long indels stand alone, and short indels are absorbed into the
// surrounding match.
type Segment struct {
	RefStart, RefEnd     uint64
	QueryStart, QueryEnd uint64
	Op                   Op
}

// PlotFromGapped emits merged segments by walking a gapped target/query
// pair (spec's parse_maf_to_base_plotdata), absorbing indel runs of length
// <= cutoff into the surrounding match and swapping QueryStart/QueryEnd on
// the negative strand.
func PlotFromGapped(target, query []byte, refStart, queryStart uint64, strand byte, cutoff uint64) ([]Segment, error) {
	ops, err := FromGappedPair(target, query, 0, 0)
	if err != nil {
		return nil, err
	}
	return plotFromOps(ops, refStart, queryStart, strand, cutoff), nil
}

// PlotFromCigar emits merged segments by walking a parsed CIGAR against
// known ref/query start coordinates (spec's parse_cigar_to_base_plotdata).
func PlotFromCigar(ops Ops, refStart, queryStart uint64, strand byte, cutoff uint64) []Segment {
	return plotFromOps(ops, refStart, queryStart, strand, cutoff)
}

func plotFromOps(ops Ops, refStart, queryStart uint64, strand byte, cutoff uint64) []Segment {
	var segs []Segment
	ref, q := refStart, queryStart
	var runRefStart, runQueryStart uint64
	inRun := false
	flush := func() {
		if inRun {
			segs = append(segs, makeSegment(runRefStart, ref, runQueryStart, q, OpMatch, strand))
			inRun = false
		}
	}
	for _, u := range ops {
		con := u.Op.Consumes()
		rAdv := uint64(con.Target) * u.Len
		qAdv := uint64(con.Query) * u.Len

		absorb := (u.Op == OpInsertion || u.Op == OpDeletion) && u.Len <= cutoff && inRun
		switch {
		case u.Op.IsMatchLike() || absorb:
			// either a genuine match/mismatch run, or a short indel
			// transparently folded into the surrounding match segment:
			// coordinates still advance by the indel's own consumption,
			// but no standalone segment is emitted for it.
			if !inRun {
				runRefStart, runQueryStart = ref, q
				inRun = true
			}
			ref += rAdv
			q += qAdv
		default:
			flush()
			segs = append(segs, makeSegment(ref, ref+rAdv, q, q+qAdv, u.Op, strand))
			ref += rAdv
			q += qAdv
		}
	}
	flush()
	return segs
}

func makeSegment(refStart, refEnd, queryStart, queryEnd uint64, op Op, strand byte) Segment {
	s := Segment{RefStart: refStart, RefEnd: refEnd, QueryStart: queryStart, QueryEnd: queryEnd, Op: op}
	if strand == '-' {
		s.QueryStart, s.QueryEnd = s.QueryEnd, s.QueryStart
	}
	return s
}
