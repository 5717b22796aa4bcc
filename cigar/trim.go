// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

// Trim holds the leading/trailing indel-only run lengths before the first
// and after the last match/mismatch column (spec §4.2 "Trimming":
// parse_maf_seq_to_trim / parse_cigar_to_trim). Used when building a Chain
// header from a MAF or PAF record: the header's start/end must sit on the
// first and last aligned base, not on flanking gaps.
type Trim struct {
	HeadIns, HeadDel uint64
	TailIns, TailDel uint64
}

// TrimOf walks ops once to compute the flanking indel run lengths.
func TrimOf(ops Ops) Trim {
	var t Trim
	i := 0
	for i < len(ops) && !ops[i].Op.IsMatchLike() {
		switch ops[i].Op {
		case OpInsertion:
			t.HeadIns += ops[i].Len
		case OpDeletion:
			t.HeadDel += ops[i].Len
		}
		i++
	}
	j := len(ops) - 1
	for j >= i && !ops[j].Op.IsMatchLike() {
		switch ops[j].Op {
		case OpInsertion:
			t.TailIns += ops[j].Len
		case OpDeletion:
			t.TailDel += ops[j].Len
		}
		j--
	}
	return t
}

// Trimmed returns ops with the leading and trailing indel-only runs
// removed, i.e. the run of ops strictly between the first and last
// match-like unit (inclusive).
func Trimmed(ops Ops) Ops {
	i := 0
	for i < len(ops) && !ops[i].Op.IsMatchLike() {
		i++
	}
	j := len(ops) - 1
	for j >= i && !ops[j].Op.IsMatchLike() {
		j--
	}
	if i > j {
		return nil
	}
	out := make(Ops, j-i+1)
	copy(out, ops[i:j+1])
	return out
}
