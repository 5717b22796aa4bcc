// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	for i, test := range []struct {
		in  string
		ops Ops
		ok  bool
	}{
		{in: "", ops: nil, ok: true},
		{in: "*", ops: nil, ok: true},
		{in: "10M", ops: Ops{{OpMatch, 10}}, ok: true},
		{in: "5=2X3I4D", ops: Ops{{OpEqual, 5}, {OpMismatch, 2}, {OpInsertion, 3}, {OpDeletion, 4}}, ok: true},
		{in: "10", ops: nil, ok: false},
		{in: "M", ops: nil, ok: false},
		{in: "0M", ops: nil, ok: false},
		{in: "10Q", ops: nil, ok: false},
	} {
		ops, err := Parse(test.in)
		if test.ok && err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		if !test.ok && err == nil {
			t.Errorf("test %d: expected error, got none", i)
			continue
		}
		if test.ok && !reflect.DeepEqual(ops, test.ops) {
			t.Errorf("test %d: got %v, want %v", i, ops, test.ops)
		}
	}
}

func TestOpsString(t *testing.T) {
	ops := Ops{{OpMatch, 10}, {OpInsertion, 3}, {OpDeletion, 2}}
	if got, want := ops.String(), "10M3I2D"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLengths(t *testing.T) {
	ops := Ops{{OpMatch, 10}, {OpInsertion, 3}, {OpDeletion, 2}}
	target, query := ops.Lengths()
	if target != 12 || query != 13 {
		t.Errorf("got target=%d query=%d, want target=12 query=13", target, query)
	}
}

func TestIsValid(t *testing.T) {
	for i, test := range []struct {
		ops    Ops
		length int
		want   bool
	}{
		{ops: Ops{{OpMatch, 10}}, length: 10, want: true},
		{ops: Ops{{OpMatch, 10}}, length: 9, want: false},
		{ops: Ops{{OpInsertion, 3}, {OpMatch, 10}}, length: 13, want: true},
		{ops: Ops{{OpMatch, 10}, {OpHardClip, 2}}, length: 10, want: true},
		{ops: Ops{{OpHardClip, 2}, {OpMatch, 10}, {OpHardClip, 2}}, length: 10, want: true},
	} {
		if got := test.ops.IsValid(test.length); got != test.want {
			t.Errorf("test %d: got %v, want %v", i, got, test.want)
		}
	}
}

func TestExpandCS(t *testing.T) {
	for i, test := range []struct {
		in  string
		ops Ops
		ok  bool
	}{
		{in: ":10", ops: Ops{{OpMatch, 10}}, ok: true},
		{in: ":5*ac:3", ops: Ops{{OpMatch, 5}, {OpMismatch, 1}, {OpMatch, 3}}, ok: true},
		{in: ":5+acgt:3", ops: Ops{{OpMatch, 5}, {OpInsertion, 4}, {OpMatch, 3}}, ok: true},
		{in: ":5-ac:3", ops: Ops{{OpMatch, 5}, {OpDeletion, 2}, {OpMatch, 3}}, ok: true},
		{in: ":5*a:3", ops: nil, ok: false},
		{in: ":", ops: nil, ok: false},
	} {
		ops, err := ExpandCS(test.in)
		if test.ok && err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		if !test.ok && err == nil {
			t.Errorf("test %d: expected error, got none", i)
			continue
		}
		if test.ok && !reflect.DeepEqual(ops, test.ops) {
			t.Errorf("test %d: got %v, want %v", i, ops, test.ops)
		}
	}
}

func TestColumnCat(t *testing.T) {
	for i, test := range []struct {
		target, query byte
		want          Op
	}{
		{'A', 'A', OpEqual},
		{'A', 'C', OpMismatch},
		{'-', 'A', OpInsertion},
		{'A', '-', OpDeletion},
		{'-', '-', OpInvalid},
	} {
		if got := ColumnCat(test.target, test.query); got != test.want {
			t.Errorf("test %d: got %v, want %v", i, got, test.want)
		}
	}
}

func TestFromGappedPair(t *testing.T) {
	ops, err := FromGappedPair([]byte("AC-GT"), []byte("ACCG-"), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := Ops{{OpEqual, 2}, {OpInsertion, 1}, {OpEqual, 1}, {OpDeletion, 1}}
	if !reflect.DeepEqual(ops, want) {
		t.Errorf("got %v, want %v", ops, want)
	}

	if _, err := FromGappedPair([]byte("AC"), []byte("ACC"), 0, 0); err == nil {
		t.Error("expected length mismatch error")
	}
}

func TestInsertGaps(t *testing.T) {
	ops := Ops{{OpEqual, 2}, {OpInsertion, 1}, {OpEqual, 1}, {OpDeletion, 1}}
	gt, gq, err := InsertGaps(ops, "ACGT", "ACCG")
	if err != nil {
		t.Fatal(err)
	}
	if gt != "AC-GT" || gq != "ACCG-" {
		t.Errorf("got target=%q query=%q", gt, gq)
	}
}

func TestGappedRoundTrip(t *testing.T) {
	target, query := []byte("AC-GT"), []byte("ACCG-")
	ops, err := FromGappedPair(target, query, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	gt, gq, err := InsertGaps(ops, "ACGT", "ACCG")
	if err != nil {
		t.Fatal(err)
	}
	if gt != string(target) || gq != string(query) {
		t.Errorf("round trip mismatch: got target=%q query=%q", gt, gq)
	}
}

func TestTrimOf(t *testing.T) {
	ops := Ops{{OpInsertion, 2}, {OpDeletion, 1}, {OpMatch, 5}, {OpInsertion, 3}}
	want := Trim{HeadIns: 2, HeadDel: 1, TailIns: 3}
	if got := TrimOf(ops); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestTrimmed(t *testing.T) {
	ops := Ops{{OpInsertion, 2}, {OpMatch, 5}, {OpDeletion, 3}}
	want := Ops{{OpMatch, 5}}
	if got := Trimmed(ops); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	allIndel := Ops{{OpInsertion, 2}, {OpDeletion, 1}}
	if got := Trimmed(allIndel); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestChainDataLinesRoundTrip(t *testing.T) {
	ops := Ops{{OpMatch, 10}, {OpInsertion, 3}, {OpMatch, 5}, {OpDeletion, 2}, {OpMatch, 7}}
	lines := ToChainDataLines(ops)
	back := FromChainDataLines(lines)

	wantTarget, wantQuery := ops.Lengths()
	gotTarget, gotQuery := back.Lengths()
	if gotTarget != wantTarget || gotQuery != wantQuery {
		t.Errorf("length mismatch after round trip: got target=%d query=%d, want target=%d query=%d",
			gotTarget, gotQuery, wantTarget, wantQuery)
	}
	// Chain carries no mismatch distinction, so every match-like run
	// collapses to plain 'M' on the way back.
	for _, u := range back {
		if u.Op == OpEqual || u.Op == OpMismatch {
			t.Errorf("unexpected %v op surviving chain round trip", u.Op)
		}
	}
}
