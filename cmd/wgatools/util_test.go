// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"testing"
)

func TestSplitCSV(t *testing.T) {
	for i, test := range []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{"a, b , c", []string{"a", "b", "c"}},
	} {
		if got := splitCSV(test.in); !reflect.DeepEqual(got, test.want) {
			t.Errorf("test %d: splitCSV(%q) = %+v, want %+v", i, test.in, got, test.want)
		}
	}
}
