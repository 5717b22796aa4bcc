// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging provides the leveled logger wired to the CLI's -v/-vvv
// flag (SPEC_FULL §1 "Logging"): a small shim over the standard library
// log package, gating Info/Debug/Trace output by level the way
// original_source's log.rs gates env_logger output. No logging library
// appears anywhere in the example corpus, so stdlib log is the grounded
// choice here rather than an outside import.
package logging

import (
	"log"
	"os"
)

// Level is the verbosity threshold. The zero value, LevelWarn, is what a
// bare invocation with no -v flags gets.
type Level int

const (
	LevelWarn Level = iota
	LevelInfo
	LevelDebug
	LevelTrace
)

// FromCount maps the CLI's repeated -v flag count to a Level (0 -> warn,
// 1 -> info, 2 -> debug, 3+ -> trace).
func FromCount(n int) Level {
	switch {
	case n <= 0:
		return LevelWarn
	case n == 1:
		return LevelInfo
	case n == 2:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// Logger is a level-gated wrapper around a standard library *log.Logger.
type Logger struct {
	level Level
	std   *log.Logger
}

// New returns a Logger writing to stderr at the given level.
func New(level Level) *Logger {
	return &Logger{level: level, std: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *Logger) logf(at Level, prefix, format string, args ...interface{}) {
	if l == nil || l.level < at {
		return
	}
	l.std.Printf(prefix+format, args...)
}

// Warn logs unconditionally: every Level includes warnings.
func (l *Logger) Warn(format string, args ...interface{}) { l.logf(LevelWarn, "WARN  ", format, args...) }

// Info logs at -v and above.
func (l *Logger) Info(format string, args ...interface{}) { l.logf(LevelInfo, "INFO  ", format, args...) }

// Debug logs at -vv and above.
func (l *Logger) Debug(format string, args ...interface{}) { l.logf(LevelDebug, "DEBUG ", format, args...) }

// Trace logs at -vvv and above.
func (l *Logger) Trace(format string, args ...interface{}) { l.logf(LevelTrace, "TRACE ", format, args...) }
