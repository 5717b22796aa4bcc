// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/wjwei-handsome/wgatools/align"
)

func TestAggregate(t *testing.T) {
	in := []align.RecStat{
		{RefName: "chr1", QueryName: "q1", RefSize: 100, QuerySize: 50, MinStart: 10, AlignedSize: 20, Matched: 18, MaxIndel: 3},
		{RefName: "chr1", QueryName: "q1", RefSize: 100, QuerySize: 50, MinStart: 5, AlignedSize: 30, Matched: 25, MaxIndel: 7},
		{RefName: "chr2", QueryName: "q2", RefSize: 200, QuerySize: 60, MinStart: 0, AlignedSize: 10, Matched: 9},
	}
	out := Aggregate(in)
	if len(out) != 2 {
		t.Fatalf("got %d rows, want 2", len(out))
	}
	if out[0].AlignedSize != 50 || out[0].Matched != 43 {
		t.Errorf("got %+v", out[0])
	}
	if out[0].MinStart != 5 {
		t.Errorf("got min_start %d, want 5", out[0].MinStart)
	}
	if out[0].MaxIndel != 7 {
		t.Errorf("got max_indel %d, want 7", out[0].MaxIndel)
	}
}

func TestRowMatchesHeaderColumnCount(t *testing.T) {
	s := align.RecStat{RefName: "chr1", QueryName: "q1", RefSize: 10, QuerySize: 10, AlignedSize: 5, Matched: 5}
	row := Row(s)
	headerCols := 1
	for _, c := range Header {
		if c == '\t' {
			headerCols++
		}
	}
	rowCols := 1
	for _, c := range row {
		if c == '\t' {
			rowCols++
		}
	}
	if headerCols != rowCols {
		t.Errorf("got %d row columns, want %d matching header", rowCols, headerCols)
	}
}
