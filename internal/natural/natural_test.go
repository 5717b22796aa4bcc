// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package natural

import "testing"

func TestLess(t *testing.T) {
	for i, test := range []struct {
		a, b string
		want bool
	}{
		{"chr2", "chr10", true},
		{"chr10", "chr2", false},
		{"chr1", "chr1", false},
		{"chr1", "chr1a", true},
		{"abc", "abd", true},
		{"chr01", "chr1", false},
		{"scaffold_9", "scaffold_10", true},
		{"", "a", true},
		{"a", "", false},
	} {
		if got := Less(test.a, test.b); got != test.want {
			t.Errorf("test %d: Less(%q, %q) = %v, want %v", i, test.a, test.b, got, test.want)
		}
	}
}
