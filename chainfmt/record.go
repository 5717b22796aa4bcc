// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chainfmt implements the UCSC chain liftover format: header,
// data-line reader and writer (spec §3, §4), grounded on the field
// layout of zymatik/nucleo's chainfile package but built around the
// shared align/cigar kernel rather than an interval-tree store.
package chainfmt

import (
	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/werr"
)

// Record is one chain block: a header plus its ordered data-line
// triplets (spec §3 "Chain record").
type Record struct {
	Score     int64
	TargetName string
	TargetSize uint64
	TargetStrand align.Strand
	TargetStart uint64
	TargetEnd   uint64
	QueryName  string
	QuerySize  uint64
	QueryStrand align.Strand
	QueryStart uint64
	QueryEnd   uint64
	ID         int64

	Lines []cigar.DataLine
}

// CigarOps expands the record's data lines into CIGAR ops (spec §4
// "Chain→PAF": matches + ins + del ops, no =/X since Chain carries no
// mismatch information).
func (r Record) CigarOps() cigar.Ops {
	return cigar.FromChainDataLines(r.Lines)
}

// AlignRecord adapts Record to align.AlignRecord.
type AlignRecord struct {
	align.DefaultRecord
	Rec Record
}

func (a AlignRecord) QueryName() string        { return a.Rec.QueryName }
func (a AlignRecord) QueryLength() uint64      { return a.Rec.QuerySize }
func (a AlignRecord) QueryStart() uint64       { return a.Rec.QueryStart }
func (a AlignRecord) QueryEnd() uint64         { return a.Rec.QueryEnd }
func (a AlignRecord) QueryStrand() align.Strand { return a.Rec.QueryStrand }

func (a AlignRecord) TargetName() string        { return a.Rec.TargetName }
func (a AlignRecord) TargetLength() uint64      { return a.Rec.TargetSize }
func (a AlignRecord) TargetStart() uint64       { return a.Rec.TargetStart }
func (a AlignRecord) TargetEnd() uint64         { return a.Rec.TargetEnd }
func (a AlignRecord) TargetStrand() align.Strand { return a.Rec.TargetStrand }
func (a AlignRecord) TargetAlignSize() uint64   { return a.Rec.TargetEnd - a.Rec.TargetStart }

func (a AlignRecord) CigarString() (string, error) {
	ops := a.Rec.CigarOps()
	if len(ops) == 0 {
		return "", werr.Sentinel(werr.KindCigarTagNotFound)
	}
	return ops.String(), nil
}

func (a AlignRecord) Stat() align.RecStat {
	ops := a.Rec.CigarOps()
	c := align.Cigar{CigarString: ops.String()}
	if a.Rec.QueryStrand == align.Negative {
		c.InvEvent = 1
	}
	for _, u := range ops {
		switch u.Op {
		case cigar.OpEqual, cigar.OpMatch:
			c.MatchCount += u.Len
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
	st := align.NewRecStat(c)
	st.RefName = a.Rec.TargetName
	st.QueryName = a.Rec.QueryName
	st.RefSize = a.Rec.TargetSize
	st.QuerySize = a.Rec.QuerySize
	st.MinStart = a.Rec.TargetStart
	return st
}
