// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestFromCount(t *testing.T) {
	for i, test := range []struct {
		n    int
		want Level
	}{
		{-1, LevelWarn},
		{0, LevelWarn},
		{1, LevelInfo},
		{2, LevelDebug},
		{3, LevelTrace},
		{10, LevelTrace},
	} {
		if got := FromCount(test.n); got != test.want {
			t.Errorf("test %d: FromCount(%d) = %v, want %v", i, test.n, got, test.want)
		}
	}
}

// newTestLogger builds a Logger at level writing to a buffer, bypassing
// New's hardcoded stderr destination.
func newTestLogger(level Level, buf *bytes.Buffer) *Logger {
	l := New(level)
	l.std = log.New(buf, "", 0)
	return l
}

func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(LevelInfo, &buf)

	l.Warn("w")
	l.Info("i")
	l.Debug("d")
	l.Trace("t")

	out := buf.String()
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "INFO") {
		t.Errorf("expected WARN and INFO in output, got %q", out)
	}
	if strings.Contains(out, "DEBUG") || strings.Contains(out, "TRACE") {
		t.Errorf("expected DEBUG/TRACE suppressed at LevelInfo, got %q", out)
	}
}

func TestWarnAlwaysLogs(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(LevelWarn, &buf)
	l.Warn("x %d", 1)
	if !strings.Contains(buf.String(), "WARN") {
		t.Errorf("got %q", buf.String())
	}
}

func TestNilLoggerDoesNotPanic(t *testing.T) {
	var l *Logger
	l.Warn("should be a no-op")
}
