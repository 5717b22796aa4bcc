// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package werr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	for i, test := range []struct {
		err  *Error
		want string
	}{
		{New(KindParseInt, "bad value %q", "x"), `invalid integer: bad value "x"`},
		{FieldMissing("score"), "field missing (score)"},
		{Wrap(KindIO, errors.New("disk full"), "writing output"), "io: writing output: disk full"},
		{New(KindFieldMissing, "").WithContext("name"), "field missing (name)"},
	} {
		if got := test.err.Error(); got != test.want {
			t.Errorf("test %d: got %q, want %q", i, got, test.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := Wrap(KindIO, cause, "opening file")
	if errors.Unwrap(wrapped) != cause {
		t.Error("Unwrap did not return the wrapped cause")
	}
}

func TestIsByKind(t *testing.T) {
	a := New(KindEmptyStdin, "stdin is a tty")
	b := Sentinel(KindEmptyStdin)
	if !errors.Is(a, b) {
		t.Error("expected errors.Is to match by Kind regardless of Msg")
	}

	c := Sentinel(KindIO)
	if errors.Is(a, c) {
		t.Error("expected errors.Is to not match across different Kinds")
	}

	if errors.Is(a, fmt.Errorf("plain error")) {
		t.Error("expected errors.Is to not match a non-*Error")
	}
}

func TestWithContextDoesNotMutateReceiver(t *testing.T) {
	orig := New(KindFieldMissing, "")
	ctxd := orig.WithContext("foo")
	if orig.Context != "" {
		t.Error("WithContext mutated the receiver")
	}
	if ctxd.Context != "foo" {
		t.Errorf("got context %q, want foo", ctxd.Context)
	}
}

func TestKindStringUnknown(t *testing.T) {
	var k Kind = 9999
	if k.String() != "unknown" {
		t.Errorf("got %q, want unknown", k.String())
	}
}
