// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import "testing"

func TestParseStrand(t *testing.T) {
	for i, test := range []struct {
		c    byte
		want Strand
		ok   bool
	}{
		{'+', Positive, true},
		{'-', Negative, true},
		{'?', 0, false},
	} {
		got, err := ParseStrand(test.c)
		if test.ok && err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
		}
		if !test.ok && err == nil {
			t.Errorf("test %d: expected error, got none", i)
		}
		if test.ok && got != test.want {
			t.Errorf("test %d: got %v, want %v", i, got, test.want)
		}
	}
}

func TestStrandOpposite(t *testing.T) {
	if Positive.Opposite() != Negative {
		t.Error("Positive.Opposite() != Negative")
	}
	if Negative.Opposite() != Positive {
		t.Error("Negative.Opposite() != Positive")
	}
}

func TestReverseComplement(t *testing.T) {
	got, err := ReverseComplement([]byte("ACGTN"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "NACGT" {
		t.Errorf("got %q, want %q", got, "NACGT")
	}

	if _, err := ReverseComplement([]byte("ACGZ")); err == nil {
		t.Error("expected error for invalid base")
	}
}

func TestNewRecStat(t *testing.T) {
	c := Cigar{
		MatchCount: 90, MismatchCount: 5,
		InsEvent: 1, InsCount: 3,
		DelEvent: 1, DelCount: 2,
		InvEvent:    0,
		MaxIndelRun: 3,
	}
	st := NewRecStat(c)
	if st.AlignedSize != 97 {
		t.Errorf("got aligned size %d, want 97", st.AlignedSize)
	}
	if st.Identity() <= 0 || st.Identity() > 1 {
		t.Errorf("got identity %f, want in (0,1]", st.Identity())
	}
	if st.MaxIndel != 3 {
		t.Errorf("got max indel %d, want 3", st.MaxIndel)
	}
}

// TestNewRecStatMaxIndelIsPerEvent guards against MaxIndel regressing to
// a sum over InsCount/DelCount: two 2-base insertion events (4 total)
// must not report a max indel of 4.
func TestNewRecStatMaxIndelIsPerEvent(t *testing.T) {
	c := Cigar{
		InsEvent: 2, InsCount: 4, // two events, 2bp each, tracked via MaxIndelRun below
		DelEvent: 1, DelCount: 6, // one 6bp deletion
		MaxIndelRun: 6,
	}
	st := NewRecStat(c)
	if st.MaxIndel != 6 {
		t.Errorf("got max indel %d, want 6 (per-event max, not summed InsCount+DelCount)", st.MaxIndel)
	}
}

func TestRecStatIdentityZeroAligned(t *testing.T) {
	var st RecStat
	if st.Identity() != 0 || st.Similarity() != 0 {
		t.Error("expected 0 identity/similarity for a zero-aligned-size RecStat")
	}
}
