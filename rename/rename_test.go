// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rename

import (
	"testing"

	"github.com/wjwei-handsome/wgatools/maf"
)

func TestApply(t *testing.T) {
	rec := maf.Record{SLines: []maf.SLine{
		{Name: "chr1", Seq: "ACGT"},
		{Name: "chr2", Seq: "ACGT"},
	}}
	out, err := Apply(rec, []string{"ref_", "query_"})
	if err != nil {
		t.Fatal(err)
	}
	if out.SLines[0].Name != "ref_chr1" || out.SLines[1].Name != "query_chr2" {
		t.Errorf("got %+v", out.SLines)
	}
	if rec.SLines[0].Name != "chr1" {
		t.Error("Apply must not mutate the input record")
	}
}

func TestApplyCardinalityMismatch(t *testing.T) {
	rec := maf.Record{SLines: []maf.SLine{{Name: "chr1"}}}
	if _, err := Apply(rec, []string{"a_", "b_"}); err == nil {
		t.Error("expected a cardinality mismatch error")
	}
}
