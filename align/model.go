// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import "fmt"

// SeqInfo is the (name, size, strand, start, end) tuple shared by PAF
// columns, Chain header fields and MAF header-equivalent data (spec §3).
//
// Invariant: Start <= End <= Size, and End-Start equals the number of
// non-gap bases this sequence contributes on its own coordinate system.
type SeqInfo struct {
	Name   string
	Size   uint64
	Strand Strand
	Start  uint64
	End    uint64
}

// Block is the lightweight per-segment record emitted while folding a
// CIGAR or MAF gapped-sequence pair, mirroring original_source's
// parser::common::Block: a running (query, target) coordinate window.
type Block struct {
	QueryName   string
	QueryStart  uint64
	QueryEnd    uint64
	TargetName  string
	TargetStart uint64
	TargetEnd   uint64
	Strand      Strand
}

// Cigar is the dense per-record summary produced by the CIGAR kernel
// (spec §3 "Cigar (produced struct)").
type Cigar struct {
	CigarString string

	MatchCount    uint64
	MismatchCount uint64

	InsEvent uint64
	InsCount uint64
	DelEvent uint64
	DelCount uint64

	InvInsEvent uint64
	InvInsCount uint64
	InvDelEvent uint64
	InvDelCount uint64

	// InvEvent is 0 or 1: whether this record is itself an inverted
	// alignment (query strand negative).
	InvEvent uint8

	// MaxIndelRun is the length of the longest single insertion or
	// deletion unit folded into this Cigar, tracked per-unit as the
	// CIGAR is walked (not a sum over InsCount/DelCount).
	MaxIndelRun uint64
}

// RecStat aggregates derived statistics from a Cigar (spec §3 "RecStat").
type RecStat struct {
	RefName    string
	QueryName  string
	RefSize    uint64
	QuerySize  uint64
	MinStart   uint64
	AlignedSize uint64

	Matched    uint64
	Mismatched uint64

	InsEvent uint64
	InsSize  uint64
	DelEvent uint64
	DelSize  uint64

	InvEvent uint64
	InvSize  uint64

	// MaxIndel is the largest single insertion or deletion event size
	// contributing to this stat row (original_source tools/stat.rs
	// extension, see SPEC_FULL §4.6).
	MaxIndel uint64
}

// Identity is Matched / AlignedSize, or 0 if AlignedSize is 0.
func (r RecStat) Identity() float64 {
	if r.AlignedSize == 0 {
		return 0
	}
	return float64(r.Matched) / float64(r.AlignedSize)
}

// Similarity is (Matched+Mismatched) / AlignedSize, or 0 if AlignedSize is 0.
func (r RecStat) Similarity() float64 {
	if r.AlignedSize == 0 {
		return 0
	}
	return float64(r.Matched+r.Mismatched) / float64(r.AlignedSize)
}

// NewRecStat folds a Cigar into a RecStat, computing AlignedSize as
// match+mismatch+del+inv_del per spec §3.
func NewRecStat(c Cigar) RecStat {
	return RecStat{
		AlignedSize: c.MatchCount + c.MismatchCount + c.DelCount + c.InvDelCount,
		Matched:     c.MatchCount,
		Mismatched:  c.MismatchCount,
		InsEvent:    c.InsEvent + c.InvInsEvent,
		InsSize:     c.InsCount + c.InvInsCount,
		DelEvent:    c.DelEvent + c.InvDelEvent,
		DelSize:     c.DelCount + c.InvDelCount,
		InvEvent:    uint64(c.InvEvent),
		MaxIndel:    c.MaxIndelRun,
	}
}

func maxU64(vs ...uint64) uint64 {
	var m uint64
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

func (c Cigar) String() string {
	if c.CigarString == "" {
		return "*"
	}
	return c.CigarString
}

func (r RecStat) String() string {
	return fmt.Sprintf("%s\t%s\taligned=%d\tmatched=%d\tidentity=%.4f",
		r.RefName, r.QueryName, r.AlignedSize, r.Matched, r.Identity())
}
