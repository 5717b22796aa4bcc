// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maf

import "github.com/wjwei-handsome/wgatools/werr"

// ColCoord returns the column index holding the pos-th non-gap base of
// seq (spec §4.3 get_col_coord): column index increments on every
// character, genomic position increments only on non-'-'. If pos is past
// the end of the sequence's non-gap content, len(seq) is returned.
func ColCoord(seq string, pos uint64) int {
	var genomic uint64
	for col := 0; col < len(seq); col++ {
		if genomic == pos {
			return col
		}
		if seq[col] != '-' {
			genomic++
		}
	}
	return len(seq)
}

// Slice returns a new Record restricted to the half-open genomic range
// [cutStart, cutEnd) on the ord-th SLine, translating the window to
// column coordinates via that SLine and then applying the same column
// window to every other SLine (spec §4.3 "MAF SLine slicing", §4.5 step 3
// "slice_block(r_start, r_end, ord)"). Callers extracting a region by a
// non-target sequence name (ord != 0) must pass that sequence's ordinal,
// since the column window is only correct relative to the SLine the
// region's coordinates were stated against.
//
// Slice panics if rec has no SLines; callers should call Validate first.
func Slice(rec Record, cutStart, cutEnd uint64, ord int) (Record, error) {
	anchor := rec.SLines[ord]
	if cutStart < anchor.Start || cutEnd > anchor.Start+anchor.AlignSize || cutStart > cutEnd {
		return Record{}, werr.New(werr.KindParseGenomeRegion, "slice range [%d,%d) outside s-line %d [%d,%d)", cutStart, cutEnd, ord, anchor.Start, anchor.Start+anchor.AlignSize)
	}
	colStart := ColCoord(anchor.Seq, cutStart-anchor.Start)
	colEnd := ColCoord(anchor.Seq, cutEnd-anchor.Start)

	out := Record{Score: rec.Score, QueryIdx: rec.QueryIdx}
	for _, s := range rec.SLines {
		out.SLines = append(out.SLines, sliceSLine(s, colStart, colEnd))
	}
	return out, nil
}

// sliceSLine slices one SLine to the column window [colStart, colEnd),
// advancing Start by the sequence's own non-gap count in the pre-window
// region and recomputing AlignSize from the window's own gap count.
func sliceSLine(s SLine, colStart, colEnd int) SLine {
	preNonGap := countNonGap(s.Seq[:colStart])
	window := s.Seq[colStart:colEnd]
	windowNonGap := countNonGap(window)
	return SLine{
		Mode:      s.Mode,
		Name:      s.Name,
		Start:     s.Start + uint64(preNonGap),
		AlignSize: uint64(windowNonGap),
		Strand:    s.Strand,
		Size:      s.Size,
		Seq:       window,
	}
}

// SliceColumns returns a new Record restricted to the column window
// [colStart, colEnd), used by the chunk operator (spec §4.6 "Chunk":
// "Column-coordinate chunking, not genomic chunking, keeps all SLines
// aligned across slices").
func SliceColumns(rec Record, colStart, colEnd int) Record {
	out := Record{Score: rec.Score, QueryIdx: rec.QueryIdx}
	for _, s := range rec.SLines {
		out.SLines = append(out.SLines, sliceSLine(s, colStart, colEnd))
	}
	return out
}

func countNonGap(seq string) int {
	n := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] != '-' {
			n++
		}
	}
	return n
}
