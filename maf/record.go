// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package maf implements the MAF v1.6 reader, writer and column-coordinate
// slicing used by the range extractor and chunker (spec §4.3, §4.5, §4.6).
package maf

import (
	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/werr"
)

// SLine is one sequence row inside a MAF block (spec §3).
type SLine struct {
	Mode      byte
	Name      string
	Start     uint64
	AlignSize uint64
	Strand    align.Strand
	Size      uint64
	Seq       string
}

// NonGapCount returns the number of non-'-' bytes in the SLine's Seq.
func (s SLine) NonGapCount() int {
	n := 0
	for i := 0; i < len(s.Seq); i++ {
		if s.Seq[i] != '-' {
			n++
		}
	}
	return n
}

// Record is one MAF alignment block: a score plus an ordered list of
// SLines (spec §3). QueryIdx picks which SLine after the first is "the"
// query for operations that need a single target/query pair (default 1,
// i.e. the second SLine).
type Record struct {
	Score    int64
	SLines   []SLine
	QueryIdx int
}

// Width returns the block's column width (spec's "Block width"): the
// shared Seq length across all SLines. Returns 0 for an empty record.
func (r Record) Width() int {
	if len(r.SLines) == 0 {
		return 0
	}
	return len(r.SLines[0].Seq)
}

// Validate checks the per-SLine invariants from spec §3: every Seq has the
// same length, each SLine's non-gap count equals AlignSize, and
// Start+AlignSize <= Size.
func (r Record) Validate() error {
	if len(r.SLines) == 0 {
		return werr.New(werr.KindFieldMissing, "maf record has no s-lines")
	}
	w := r.Width()
	seen := map[string]bool{}
	for _, s := range r.SLines {
		if len(s.Seq) != w {
			return werr.New(werr.KindSurplusField, "s-line %s has width %d, want %d", s.Name, len(s.Seq), w)
		}
		if uint64(s.NonGapCount()) != s.AlignSize {
			return werr.New(werr.KindSurplusField, "s-line %s align_size %d != non-gap count %d", s.Name, s.AlignSize, s.NonGapCount())
		}
		if s.Start+s.AlignSize > s.Size {
			return werr.New(werr.KindSurplusField, "s-line %s start+align_size > size", s.Name)
		}
		if seen[s.Name] {
			return werr.New(werr.KindDuplicateName, "%s", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Target is the first SLine.
func (r Record) Target() SLine { return r.SLines[0] }

// Query is the SLine picked by QueryIdx (the second SLine by default).
func (r Record) Query() SLine {
	idx := r.QueryIdx
	if idx == 0 {
		idx = 1
	}
	if idx >= len(r.SLines) {
		return SLine{}
	}
	return r.SLines[idx]
}

// AlignRecord adapts a Record to align.AlignRecord, treating SLines[0] as
// target and Query() as query, per spec §3.
type AlignRecord struct {
	align.DefaultRecord
	Rec Record
}

func (a AlignRecord) QueryName() string        { return a.Rec.Query().Name }
func (a AlignRecord) QueryLength() uint64      { return a.Rec.Query().Size }
func (a AlignRecord) QueryStart() uint64       { return a.Rec.Query().Start }
func (a AlignRecord) QueryEnd() uint64         { return a.Rec.Query().Start + a.Rec.Query().AlignSize }
func (a AlignRecord) QueryStrand() align.Strand { return a.Rec.Query().Strand }

func (a AlignRecord) TargetName() string        { return a.Rec.Target().Name }
func (a AlignRecord) TargetLength() uint64      { return a.Rec.Target().Size }
func (a AlignRecord) TargetStart() uint64       { return a.Rec.Target().Start }
func (a AlignRecord) TargetEnd() uint64         { return a.Rec.Target().Start + a.Rec.Target().AlignSize }
func (a AlignRecord) TargetStrand() align.Strand { return a.Rec.Target().Strand }
func (a AlignRecord) TargetAlignSize() uint64   { return a.Rec.Target().AlignSize }

// CigarString folds the target/query gapped sequences into a CIGAR string
// (spec §4.4 MAF→PAF conversion path).
func (a AlignRecord) CigarString() (string, error) {
	ops, err := cigar.FromGappedPair([]byte(a.Rec.Target().Seq), []byte(a.Rec.Query().Seq), 0, 0)
	if err != nil {
		return "", err
	}
	return ops.String(), nil
}

func (a AlignRecord) Stat() align.RecStat {
	c, err := computeCigar(a.Rec)
	if err != nil {
		return align.RecStat{}
	}
	st := align.NewRecStat(c)
	st.RefName = a.TargetName()
	st.QueryName = a.QueryName()
	st.RefSize = a.TargetLength()
	st.QuerySize = a.QueryLength()
	st.MinStart = a.TargetStart()
	return st
}

func computeCigar(r Record) (align.Cigar, error) {
	ops, err := cigar.FromGappedPair([]byte(r.Target().Seq), []byte(r.Query().Seq), 0, 0)
	if err != nil {
		return align.Cigar{}, err
	}
	c := align.Cigar{CigarString: ops.String()}
	if r.Query().Strand == align.Negative {
		c.InvEvent = 1
	}
	for _, u := range ops {
		switch u.Op {
		case cigar.OpEqual, cigar.OpMatch:
			c.MatchCount += u.Len
		case cigar.OpMismatch:
			c.MismatchCount += u.Len
		case cigar.OpInsertion:
			if c.InvEvent == 1 {
				c.InvInsEvent++
				c.InvInsCount += u.Len
			} else {
				c.InsEvent++
				c.InsCount += u.Len
			}
			if u.Len > c.MaxIndelRun {
				c.MaxIndelRun = u.Len
			}
		case cigar.OpDeletion:
			if c.InvEvent == 1 {
				c.InvDelEvent++
				c.InvDelCount += u.Len
			} else {
				c.DelEvent++
				c.DelCount += u.Len
			}
			if u.Len > c.MaxIndelRun {
				c.MaxIndelRun = u.Len
			}
		}
	}
	return c, nil
}

// Cigar returns the folded Cigar summary for rec.
func Cigar(rec Record) (align.Cigar, error) { return computeCigar(rec) }
