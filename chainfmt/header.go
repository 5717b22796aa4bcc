// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainfmt

import (
	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/cigar"
)

// FromAlignRecord builds a chain header (every field except Lines) from
// any align.AlignRecord, tightening target/query start and end onto the
// first and last aligned base via cigar.TrimOf (spec §4.2 "Trimming").
// Negative strand mirrors the query coordinates through q_size.
func FromAlignRecord(rec align.AlignRecord, id int64, ops cigar.Ops) Record {
	trim := cigar.TrimOf(ops)

	tStart := rec.TargetStart() + trim.HeadDel
	tEnd := rec.TargetEnd() - trim.TailDel

	qStrand := rec.QueryStrand()
	var qStart, qEnd uint64
	if qStrand == align.Negative {
		qSize := rec.QueryLength()
		qStart = qSize - (rec.QueryEnd() - trim.TailIns)
		qEnd = qSize - (rec.QueryStart() + trim.HeadIns)
	} else {
		qStart = rec.QueryStart() + trim.HeadIns
		qEnd = rec.QueryEnd() - trim.TailIns
	}

	return Record{
		Score:        int64(rec.Stat().Matched),
		TargetName:   rec.TargetName(),
		TargetSize:   rec.TargetLength(),
		TargetStrand: align.Positive,
		TargetStart:  tStart,
		TargetEnd:    tEnd,
		QueryName:    rec.QueryName(),
		QuerySize:    rec.QueryLength(),
		QueryStrand:  qStrand,
		QueryStart:   qStart,
		QueryEnd:     qEnd,
		ID:           id,
	}
}
