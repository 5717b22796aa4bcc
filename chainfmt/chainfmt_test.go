// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainfmt

import (
	"testing"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/cigar"
)

func TestCigarOps(t *testing.T) {
	rec := Record{Lines: []cigar.DataLine{
		{Size: 50, TargetDiff: 2},
		{Size: 30, QueryDiff: 3},
		{Size: 20},
	}}
	ops := rec.CigarOps()
	want := cigar.Ops{
		{Op: cigar.OpMatch, Len: 50}, {Op: cigar.OpInsertion, Len: 2},
		{Op: cigar.OpMatch, Len: 30}, {Op: cigar.OpDeletion, Len: 3},
		{Op: cigar.OpMatch, Len: 20},
	}
	if ops.String() != want.String() {
		t.Errorf("got %v, want %v", ops, want)
	}
}

// fakeRecord is a minimal align.AlignRecord stand-in for header-synthesis
// tests, avoiding a dependency on any one concrete record type.
type fakeRecord struct {
	align.DefaultRecord
	tName        string
	tLen         uint64
	tStart, tEnd uint64
	qName        string
	qLen         uint64
	qStart, qEnd uint64
	qStrand      align.Strand
}

func (f fakeRecord) TargetName() string        { return f.tName }
func (f fakeRecord) TargetLength() uint64      { return f.tLen }
func (f fakeRecord) TargetStart() uint64       { return f.tStart }
func (f fakeRecord) TargetEnd() uint64         { return f.tEnd }
func (f fakeRecord) QueryName() string         { return f.qName }
func (f fakeRecord) QueryLength() uint64       { return f.qLen }
func (f fakeRecord) QueryStart() uint64        { return f.qStart }
func (f fakeRecord) QueryEnd() uint64          { return f.qEnd }
func (f fakeRecord) QueryStrand() align.Strand { return f.qStrand }

func TestFromAlignRecordPositiveStrand(t *testing.T) {
	rec := fakeRecord{
		tName: "chr1", tLen: 1000, tStart: 100, tEnd: 200,
		qName: "chr2", qLen: 2000, qStart: 300, qEnd: 400, qStrand: align.Positive,
	}
	ops := cigar.Ops{{Op: cigar.OpInsertion, Len: 5}, {Op: cigar.OpMatch, Len: 90}, {Op: cigar.OpDeletion, Len: 5}}
	out := FromAlignRecord(rec, 1, ops)
	if out.TargetStart != 105 || out.TargetEnd != 195 {
		t.Errorf("got target [%d,%d), want [105,195)", out.TargetStart, out.TargetEnd)
	}
	if out.QueryStart != 305 || out.QueryEnd != 400 {
		t.Errorf("got query [%d,%d), want [305,400)", out.QueryStart, out.QueryEnd)
	}
}

func TestFromAlignRecordNegativeStrand(t *testing.T) {
	rec := fakeRecord{
		tName: "chr1", tLen: 1000, tStart: 100, tEnd: 200,
		qName: "chr2", qLen: 2000, qStart: 300, qEnd: 400, qStrand: align.Negative,
	}
	ops := cigar.Ops{{Op: cigar.OpInsertion, Len: 5}, {Op: cigar.OpMatch, Len: 90}, {Op: cigar.OpDeletion, Len: 5}}
	out := FromAlignRecord(rec, 2, ops)
	// Negative strand mirrors query coordinates through QueryLength (2000):
	// trim.HeadIns=5 sits at the tail in query space, trim.TailDel=5 has no
	// query-side effect since it's a target-only trim.
	if out.QueryStart != 1600 || out.QueryEnd != 1695 {
		t.Errorf("got query [%d,%d), want [1600,1695)", out.QueryStart, out.QueryEnd)
	}
}
