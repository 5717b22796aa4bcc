// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paf implements the PAF (minimap2-style) pairwise alignment
// reader, writer, and the tag handling needed to bridge it to the
// cigar and align packages (spec §3, §4).
package paf

import (
	"strings"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/werr"
)

// Record is one PAF row: the 12 mandatory columns plus opaque trailing
// tags (spec §3 "PAF record"). QueryStart/QueryEnd are always
// strand-normalized to the forward strand, per spec's coordinate
// convention, regardless of Strand.
type Record struct {
	QueryName   string
	QueryLen    uint64
	QueryStart  uint64
	QueryEnd    uint64
	Strand      align.Strand
	TargetName  string
	TargetLen   uint64
	TargetStart uint64
	TargetEnd   uint64
	Matches     uint64
	BlockLen    uint64
	MapQ        uint8
	Tags        []string // raw "xx:Y:value" strings, order-preserving
}

// Tag returns the raw value of tag tg (e.g. "cg" for cg:Z:...), and
// whether it was present.
func (r Record) Tag(tg string) (string, bool) {
	prefix := tg + ":"
	for _, t := range r.Tags {
		if strings.HasPrefix(t, prefix) {
			if i := strings.IndexByte(t, ':'); i >= 0 {
				if j := strings.IndexByte(t[i+1:], ':'); j >= 0 {
					return t[i+1+j+1:], true
				}
			}
		}
	}
	return "", false
}

// SetTag replaces (or appends) the tag named tg with a Z-typed value.
func (r *Record) SetTag(tg, value string) {
	full := tg + ":Z:" + value
	prefix := tg + ":"
	for i, t := range r.Tags {
		if strings.HasPrefix(t, prefix) {
			r.Tags[i] = full
			return
		}
	}
	r.Tags = append(r.Tags, full)
}

// CigarOps returns the record's CIGAR as parsed Ops, expanding a cs:Z:
// tag lazily if no cg:Z: tag is present (spec §3).
func (r Record) CigarOps() (cigar.Ops, error) {
	if cg, ok := r.Tag("cg"); ok {
		return cigar.Parse(cg)
	}
	if cs, ok := r.Tag("cs"); ok {
		return cigar.ExpandCS(cs)
	}
	return nil, werr.Sentinel(werr.KindCigarTagNotFound)
}

// AlignRecord adapts Record to align.AlignRecord.
type AlignRecord struct {
	align.DefaultRecord
	Rec Record
}

func (a AlignRecord) QueryName() string        { return a.Rec.QueryName }
func (a AlignRecord) QueryLength() uint64      { return a.Rec.QueryLen }
func (a AlignRecord) QueryStart() uint64       { return a.Rec.QueryStart }
func (a AlignRecord) QueryEnd() uint64         { return a.Rec.QueryEnd }
func (a AlignRecord) QueryStrand() align.Strand { return a.Rec.Strand }

func (a AlignRecord) TargetName() string        { return a.Rec.TargetName }
func (a AlignRecord) TargetLength() uint64      { return a.Rec.TargetLen }
func (a AlignRecord) TargetStart() uint64       { return a.Rec.TargetStart }
func (a AlignRecord) TargetEnd() uint64         { return a.Rec.TargetEnd }
func (a AlignRecord) TargetStrand() align.Strand { return align.Positive }
func (a AlignRecord) TargetAlignSize() uint64   { return a.Rec.TargetEnd - a.Rec.TargetStart }

func (a AlignRecord) CigarString() (string, error) {
	ops, err := a.Rec.CigarOps()
	if err != nil {
		return "", err
	}
	return ops.String(), nil
}

func (a AlignRecord) Stat() align.RecStat {
	ops, err := a.Rec.CigarOps()
	if err != nil {
		return align.RecStat{}
	}
	c := align.Cigar{CigarString: ops.String()}
	if a.Rec.Strand == align.Negative {
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
	st := align.NewRecStat(c)
	st.RefName = a.Rec.TargetName
	st.QueryName = a.Rec.QueryName
	st.RefSize = a.Rec.TargetLen
	st.QuerySize = a.Rec.QueryLen
	st.MinStart = a.Rec.TargetStart
	return st
}

// ReverseStart returns QueryStart/QueryEnd mirrored onto the reverse
// strand via q_size − q_end / q_size − q_start (spec §4's PAF
// coordinate convention), used whenever a negative-strand record's
// actual 5'→3' query coordinates are needed.
func (r Record) ReverseStart() (start, end uint64) {
	return r.QueryLen - r.QueryEnd, r.QueryLen - r.QueryStart
}
