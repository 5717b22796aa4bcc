// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caller

import (
	"strings"
	"testing"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/maf"
)

func TestGroupColumns(t *testing.T) {
	groups := groupColumns("ACGT--AC", "ACCT--AG")
	want := []group{{cigar.OpEqual, 2}, {cigar.OpMismatch, 1}, {cigar.OpEqual, 1}, {catIgnore, 2}, {cigar.OpEqual, 1}, {cigar.OpMismatch, 1}}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d: %+v", len(groups), len(want), groups)
	}
	for i := range groups {
		if groups[i] != want[i] {
			t.Errorf("group %d: got %+v, want %+v", i, groups[i], want[i])
		}
	}
}

func TestCallMAFSNV(t *testing.T) {
	rec := maf.Record{QueryIdx: 1, SLines: []maf.SLine{
		{Name: "chr1", Start: 0, AlignSize: 8, Strand: align.Positive, Size: 100, Seq: "ACGTACGT"},
		{Name: "chr2", Start: 0, AlignSize: 8, Strand: align.Positive, Size: 100, Seq: "ACGTCCGT"},
	}}
	variants, err := CallMAF(rec, Options{SNP: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(variants) != 1 {
		t.Fatalf("got %d variants, want 1: %+v", len(variants), variants)
	}
	v := variants[0]
	if v.Chrom != "chr1" || v.Pos != 5 || v.Ref != "A" || v.Alt != "C" {
		t.Errorf("got %+v", v)
	}
}

func TestCallMAFInsertion(t *testing.T) {
	rec := maf.Record{QueryIdx: 1, SLines: []maf.SLine{
		{Name: "chr1", Start: 0, AlignSize: 6, Strand: align.Positive, Size: 100, Seq: "ACGT--GT"},
		{Name: "chr2", Start: 0, AlignSize: 8, Strand: align.Positive, Size: 100, Seq: "ACGTCCGT"},
	}}
	variants, err := CallMAF(rec, Options{SVLenCutoff: 0})
	if err != nil {
		t.Fatal(err)
	}
	foundIns := false
	for _, v := range variants {
		if strings.Contains(v.Info, "SVTYPE=INS") {
			foundIns = true
		}
	}
	if !foundIns {
		t.Errorf("expected an insertion variant, got %+v", variants)
	}
}

func TestVariantString(t *testing.T) {
	v := Variant{Chrom: "chr1", Pos: 100, Ref: "A", Alt: "T"}
	s := v.String()
	if !strings.HasPrefix(s, "chr1\t100\t.\tA\tT\t.\t.\t.\tGT\t1|1") {
		t.Errorf("got %q", s)
	}

	withQI := Variant{Chrom: "chr1", Pos: 100, Ref: "A", Alt: "<INV>", Info: "SVTYPE=INV", QI: "q@1@2@P"}
	s2 := withQI.String()
	if !strings.Contains(s2, "GT:QI") || !strings.Contains(s2, "1|1:q@1@2@P") {
		t.Errorf("got %q", s2)
	}
}

func TestBuildHeader(t *testing.T) {
	h := BuildHeader("", []Contig{{Name: "chr1", Size: 1000}})
	if !strings.Contains(h, "##fileformat=VCFv4.2") {
		t.Error("missing fileformat line")
	}
	if !strings.Contains(h, "##contig=<ID=chr1,length=1000>") {
		t.Error("missing contig line")
	}
	if !strings.Contains(h, "\tsample\n") {
		t.Error("missing default sample name")
	}
}

func TestFindSafeChunkBoundary(t *testing.T) {
	target := strings.Repeat("A", 10) + strings.Repeat("-", 20) + strings.Repeat("A", 10)
	query := strings.Repeat("A", 40)
	b, found := FindSafeChunkBoundary(target, query, 12, 100)
	if !found || target[b] == '-' || query[b] == '-' {
		t.Errorf("got boundary=%d found=%v", b, found)
	}

	// No safe column within a tight scan bound: falls back to proposed,
	// found=false, never hangs.
	b2, found2 := FindSafeChunkBoundary(target, query, 12, 2)
	if found2 || b2 != 12 {
		t.Errorf("got boundary=%d found=%v, want proposed=12 found=false", b2, found2)
	}
}

func TestChunkBoundariesCoversWholeWidth(t *testing.T) {
	target := strings.Repeat("ACGT", 10) // width 40
	query := target
	bounds := chunkBoundaries(target, query, 10)
	if bounds[len(bounds)-1] != 40 {
		t.Errorf("got final bound %d, want 40", bounds[len(bounds)-1])
	}
	prev := 0
	for _, b := range bounds {
		if b <= prev && b != len(target) {
			t.Errorf("non-advancing boundary: prev=%d got=%d", prev, b)
		}
		prev = b
	}
}
