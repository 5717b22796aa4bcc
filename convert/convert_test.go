// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"testing"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/paf"
	"github.com/wjwei-handsome/wgatools/werr"
)

// mapFetcher serves fixed sequences by name for format→MAF conversion
// tests, standing in for an FAI-backed align.Fetcher.
type mapFetcher map[string]string

func (m mapFetcher) FetchSeq(name string, start, end int) ([]byte, error) {
	seq, ok := m[name]
	if !ok {
		return nil, werr.New(werr.KindFieldMissing, "no sequence %q", name)
	}
	if end+1 > len(seq) {
		return nil, werr.New(werr.KindParseGenomeRegion, "range past end of %q", name)
	}
	return []byte(seq[start : end+1]), nil
}

func mafFixture() maf.Record {
	return maf.Record{
		Score:    100,
		QueryIdx: 1,
		SLines: []maf.SLine{
			{Mode: 's', Name: "chr1", Start: 0, AlignSize: 8, Strand: align.Positive, Size: 100, Seq: "AC-GTACGT"},
			{Mode: 's', Name: "chr2", Start: 0, AlignSize: 8, Strand: align.Positive, Size: 100, Seq: "ACTGT-CGT"},
		},
	}
}

func TestMAFToPAF(t *testing.T) {
	rec, err := MAFToPAF(mafFixture())
	if err != nil {
		t.Fatal(err)
	}
	if rec.TargetName != "chr1" || rec.QueryName != "chr2" {
		t.Errorf("got %+v", rec)
	}
	if rec.TargetStart != 0 || rec.TargetEnd != 8 {
		t.Errorf("got target [%d,%d)", rec.TargetStart, rec.TargetEnd)
	}
	if _, ok := rec.Tag("cg"); !ok {
		t.Error("expected a cg tag")
	}
}

func TestPAFToMAF(t *testing.T) {
	rec := paf.Record{
		QueryName: "q", QueryLen: 20, QueryStart: 0, QueryEnd: 10, Strand: align.Positive,
		TargetName: "t", TargetLen: 20, TargetStart: 0, TargetEnd: 10,
		Matches: 10, BlockLen: 10, MapQ: 60,
		Tags: []string{"cg:Z:10M"},
	}
	fetcher := mapFetcher{"t": "ACGTACGTAC", "q": "ACGTACGTAC"}

	out, err := PAFToMAF(rec, fetcher)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.SLines) != 2 {
		t.Fatalf("got %d s-lines, want 2", len(out.SLines))
	}
	if out.SLines[0].Seq != "ACGTACGTAC" || out.SLines[1].Seq != "ACGTACGTAC" {
		t.Errorf("got %+v", out.SLines)
	}
}

func TestPAFToMAFNegativeStrandReverseComplements(t *testing.T) {
	rec := paf.Record{
		QueryName: "q", QueryLen: 10, QueryStart: 0, QueryEnd: 10, Strand: align.Negative,
		TargetName: "t", TargetLen: 10, TargetStart: 0, TargetEnd: 10,
		Matches: 10, BlockLen: 10, MapQ: 60,
		Tags: []string{"cg:Z:10M"},
	}
	fetcher := mapFetcher{"t": "AAAAAAAAAA", "q": "ACGTACGTAC"}
	out, err := PAFToMAF(rec, fetcher)
	if err != nil {
		t.Fatal(err)
	}
	// Reverse complement of ACGTACGTAC is GTACGTACGT.
	if out.SLines[1].Seq != "GTACGTACGT" {
		t.Errorf("got query seq %q, want GTACGTACGT", out.SLines[1].Seq)
	}
}

func TestMAFToChainThenChainToMAF(t *testing.T) {
	rec := mafFixture()
	chain, err := MAFToChain(rec, 7)
	if err != nil {
		t.Fatal(err)
	}
	if chain.ID != 7 || chain.TargetName != "chr1" {
		t.Errorf("got %+v", chain)
	}
	if len(chain.Lines) == 0 {
		t.Fatal("expected at least one data line")
	}

	fetcher := mapFetcher{
		"chr1": "ACGTACGTACGTACGTACGT",
		"chr2": "ACGTACGTACGTACGTACGT",
	}
	back, err := ChainToMAF(chain, fetcher)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.SLines) != 2 {
		t.Errorf("got %d s-lines, want 2", len(back.SLines))
	}
}

func TestPAFToChainThenChainToPAF(t *testing.T) {
	rec := paf.Record{
		QueryName: "q", QueryLen: 20, QueryStart: 0, QueryEnd: 10, Strand: align.Positive,
		TargetName: "t", TargetLen: 20, TargetStart: 0, TargetEnd: 10,
		Matches: 9, BlockLen: 10, MapQ: 60,
		Tags: []string{"cg:Z:5M1I4M"},
	}
	chain, err := PAFToChain(rec, 3)
	if err != nil {
		t.Fatal(err)
	}
	if chain.TargetName != "t" || chain.QueryName != "q" {
		t.Errorf("got %+v", chain)
	}

	back := ChainToPAF(chain)
	if back.TargetName != "t" || back.QueryName != "q" {
		t.Errorf("got %+v", back)
	}
	if cg, ok := back.Tag("cg"); !ok || cg == "" {
		t.Error("expected a non-empty cg tag")
	}
}
