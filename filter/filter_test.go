// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"testing"

	"github.com/wjwei-handsome/wgatools/paf"
)

func TestKeep(t *testing.T) {
	rec := paf.Record{TargetStart: 0, TargetEnd: 100, QueryLen: 200}
	ar := paf.AlignRecord{Rec: rec}
	if !Keep(ar, Options{MinBlockSize: 50, MinQuerySize: 100}) {
		t.Error("expected record to pass")
	}
	if Keep(ar, Options{MinBlockSize: 200}) {
		t.Error("expected record to fail min block size")
	}
	if Keep(ar, Options{MinQuerySize: 500}) {
		t.Error("expected record to fail min query size")
	}
}

func TestFilterPAFGroups(t *testing.T) {
	recs := []paf.Record{
		{QueryName: "q1", TargetName: "t1", TargetStart: 0, TargetEnd: 10, QueryLen: 100},
		{QueryName: "q1", TargetName: "t1", TargetStart: 10, TargetEnd: 25, QueryLen: 100},
		{QueryName: "q2", TargetName: "t2", TargetStart: 0, TargetEnd: 5, QueryLen: 100},
	}
	out := FilterPAFGroups(recs, Options{MinAlignSize: 20})
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2 (q1/t1 group total=25 keeps both, q2/t2 total=5 drops)", len(out))
	}
	for _, r := range out {
		if r.QueryName != "q1" {
			t.Errorf("unexpected record kept: %+v", r)
		}
	}
}
