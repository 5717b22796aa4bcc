// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import "strings"

// ColumnCat is the per-column classification used throughout the kernel
// (spec §4.2 cigar_cat_ext): target gap -> insertion into query (CIGAR 'I'
// is target-consuming-zero, i.e. the query has extra bases, so a '-' in
// the *target* row at a column means the query inserted something);
// query gap -> deletion from query (CIGAR 'D'); equal non-gaps -> '=';
// differing non-gaps -> 'X'.
func ColumnCat(target, query byte) Op {
	switch {
	case target == '-' && query == '-':
		return OpInvalid // double-gap column; callers special-case this (caller package)
	case target == '-':
		return OpInsertion
	case query == '-':
		return OpDeletion
	case target == query:
		return OpEqual
	default:
		return OpMismatch
	}
}

// FromGappedPair folds two equal-length gapped sequences into a CIGAR
// (spec §4.2 "Gapped sequence pair → CIGAR"), run-length encoding the
// per-column ColumnCat classification. softClipQuery/softClipTail, when
// >0, prepend/append an `{n}H` clip unit (spec's "optionally
// prepend/append {q_start}H and {size-q_end}H soft clips").
func FromGappedPair(target, query []byte, headClip, tailClip uint64) (Ops, error) {
	if len(target) != len(query) {
		return nil, errLengthMismatch(len(target), len(query))
	}
	var ops Ops
	var run Op
	var runLen uint64
	flush := func() {
		if runLen > 0 {
			ops = append(ops, Unit{Op: run, Len: runLen})
			runLen = 0
		}
	}
	if headClip > 0 {
		ops = append(ops, Unit{Op: OpHardClip, Len: headClip})
	}
	for i := range target {
		cat := ColumnCat(target[i], query[i])
		if cat == OpInvalid {
			continue // double-gap column contributes nothing
		}
		if cat != run || runLen == 0 {
			flush()
			run = cat
		}
		runLen++
	}
	flush()
	if tailClip > 0 {
		ops = append(ops, Unit{Op: OpHardClip, Len: tailClip})
	}
	return ops, nil
}

// InsertGaps walks ops over unaligned target and query strings and splices
// '-' characters back in to produce the gapped pair (spec §4.2
// "CIGAR → gap insertion"): 'I' inserts gap characters into target, 'D'
// inserts them into query.
func InsertGaps(ops Ops, target, query string) (gappedTarget, gappedQuery string, err error) {
	var tb, qb strings.Builder
	var ti, qi int
	for _, u := range ops {
		n := int(u.Len)
		switch {
		case u.Op.IsMatchLike():
			if ti+n > len(target) || qi+n > len(query) {
				return "", "", errShortSequence()
			}
			tb.WriteString(target[ti : ti+n])
			qb.WriteString(query[qi : qi+n])
			ti += n
			qi += n
		case u.Op == OpInsertion:
			if qi+n > len(query) {
				return "", "", errShortSequence()
			}
			tb.WriteString(strings.Repeat("-", n))
			qb.WriteString(query[qi : qi+n])
			qi += n
		case u.Op == OpDeletion:
			if ti+n > len(target) {
				return "", "", errShortSequence()
			}
			tb.WriteString(target[ti : ti+n])
			qb.WriteString(strings.Repeat("-", n))
			ti += n
		}
	}
	return tb.String(), qb.String(), nil
}
