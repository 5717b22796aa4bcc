// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

// DataLine is one Chain data-line triplet (spec §3, §4.2). Chain's
// target/query naming is the historical opposite of CIGAR's: an insertion
// into the *target* sequence (CIGAR 'I', which advances target coordinate
// zero and query coordinate by len) is carried as QueryDiff in Chain
// because Chain's "query" column is what CIGAR calls the reference. We
// keep the field names Chain-native (TargetDiff/QueryDiff) and translate
// at the boundary in the maf/paf/chainfmt packages rather than guessing a
// generic name that would be wrong for one side or the other.
type DataLine struct {
	Size       uint64
	QueryDiff  uint64
	TargetDiff uint64
}

// ToChainDataLines converts ops into Chain data lines (spec §4.2
// "CIGAR → Chain data lines"). The final line's Size is the trailing run
// with QueryDiff=TargetDiff=0, and Lines[len-1] is exactly that terminator
// — callers write it as the bare `size` line with no diffs.
func ToChainDataLines(ops Ops) []DataLine {
	var lines []DataLine
	var cur DataLine
	for _, u := range ops {
		switch {
		case u.Op.IsMatchLike():
			if cur.Size != 0 && (cur.QueryDiff != 0 || cur.TargetDiff != 0) {
				lines = append(lines, cur)
				cur = DataLine{}
			}
			cur.Size += u.Len
		case u.Op == OpInsertion:
			// CIGAR I advances query only; Chain calls this a target_diff.
			cur.TargetDiff += u.Len
		case u.Op == OpDeletion:
			// CIGAR D advances target only; Chain calls this a query_diff.
			cur.QueryDiff += u.Len
		}
	}
	lines = append(lines, cur)
	return lines
}

// FromChainDataLines reconstructs a CIGAR from Chain data lines (spec §8
// law 2: Chain↔CIGAR algebra preserves the multiset of (matches, ins, del)
// counts). Chain carries no mismatch information, so every matched run
// becomes a single 'M' (not '=' or 'X').
func FromChainDataLines(lines []DataLine) Ops {
	var ops Ops
	for i, l := range lines {
		if l.Size > 0 {
			ops = append(ops, Unit{Op: OpMatch, Len: l.Size})
		}
		if i == len(lines)-1 {
			break // terminator line carries no diffs
		}
		if l.TargetDiff > 0 {
			ops = append(ops, Unit{Op: OpInsertion, Len: l.TargetDiff})
		}
		if l.QueryDiff > 0 {
			ops = append(ops, Unit{Op: OpDeletion, Len: l.QueryDiff})
		}
	}
	return ops
}
