// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mafidx

import (
	"io"

	"github.com/biogo/store/interval"

	"github.com/wjwei-handsome/wgatools/maf"
)

// ivInterval adapts an Interval to interval.IntInterface, grounded on
// kortschak-loopy's gffInterval (cmd/rinse): half-open overlap test, ID
// derived from position since intervals within one sequence's tree are
// never re-inserted after Build.
type ivInterval struct {
	iv Interval
	id uintptr
}

func (n ivInterval) ID() uintptr { return n.id }
func (n ivInterval) Range() interval.IntRange {
	return interval.IntRange{Start: int(n.iv.Start), End: int(n.iv.End)}
}
func (n ivInterval) Overlap(b interval.IntRange) bool {
	return int(n.iv.End) > b.Start && int(n.iv.Start) < b.End
}

// buildTree constructs an interval tree from a sequence's intervals
// (spec §4.5 step 2: "Build an interval tree from the sequence's
// (start, end, offset) intervals").
func buildTree(intervals []Interval) *interval.IntTree {
	t := &interval.IntTree{}
	for i, iv := range intervals {
		t.Insert(ivInterval{iv: iv, id: uintptr(i) + 1}, true)
	}
	t.AdjustRanges()
	return t
}

// FailedRegion records a region that could not be satisfied, to be
// reported as a post-hoc warning, never fatal (spec §4.5 "Failure
// semantics").
type FailedRegion struct {
	Region Region
	Reason string // "sequence not found" or "zero hits"
}

// Extract resolves each region against idx and rs (the MAF file opened
// for random access), emitting one record per interval tree hit via emit,
// slicing it down to the requested window when the hit only partially
// covers the region (spec §4.5 "Extract").
func Extract(idx *Index, rs io.ReadSeeker, regions []Region, emit func(maf.Record) error) ([]FailedRegion, error) {
	var failed []FailedRegion
	for _, reg := range regions {
		intervals, ok := idx.Items[reg.Name]
		if !ok {
			failed = append(failed, FailedRegion{Region: reg, Reason: "sequence not found"})
			continue
		}
		tree := buildTree(intervals)
		query := ivInterval{iv: Interval{Start: reg.Start, End: reg.End}}
		rawHits := tree.Get(query)

		if len(rawHits) == 0 {
			failed = append(failed, FailedRegion{Region: reg, Reason: "zero hits"})
			continue
		}

		for _, raw := range rawHits {
			hit := raw.(ivInterval)
			bStart, bEnd := hit.iv.Start, hit.iv.End
			rdr, err := maf.NewReaderAt(rs, hit.iv.Offset)
			if err != nil {
				return failed, err
			}
			rec, _, err := rdr.Next()
			if err != nil {
				return failed, err
			}
			if reg.Start <= bStart && reg.End >= bEnd {
				if err := emit(rec); err != nil {
					return failed, err
				}
				continue
			}
			rStart, rEnd := bStart, bEnd
			if reg.Start > rStart {
				rStart = reg.Start
			}
			if reg.End < rEnd {
				rEnd = reg.End
			}
			sliced, err := maf.Slice(rec, rStart, rEnd, hit.iv.Ord)
			if err != nil {
				return failed, err
			}
			if err := emit(sliced); err != nil {
				return failed, err
			}
		}
	}
	return failed, nil
}
