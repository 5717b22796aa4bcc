// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package werr defines the single discriminated error type used across
// wgatools: every parse, I/O, and semantic failure in the toolkit is a
// *werr.Error carrying a Kind and an optional wrapped cause.
package werr

import "fmt"

// Kind discriminates the class of failure. Kind values group errors the
// way spec §7 enumerates them so callers can branch with errors.Is against
// a sentinel built from the same Kind (see Is).
type Kind int

const (
	KindOther Kind = iota
	KindIO
	KindFileReWrite
	KindEmptyStdin
	KindFieldMissing
	KindSurplusField
	KindCigarOpInvalid
	KindCigarTagNotFound
	KindParseStrand
	KindParseInt
	KindParseFloat
	KindParseRegex
	KindInvalidBase
	KindParseGenomeRegion
	KindDuplicateName
	KindSLineCountNotMatch
	KindUnimplementedFormat
	KindIntervalParse
)

var kindNames = map[Kind]string{
	KindOther:               "other",
	KindIO:                  "io",
	KindFileReWrite:         "file already exists",
	KindEmptyStdin:          "empty stdin",
	KindFieldMissing:        "field missing",
	KindSurplusField:        "surplus field",
	KindCigarOpInvalid:      "invalid cigar operation",
	KindCigarTagNotFound:    "cigar tag not found",
	KindParseStrand:         "invalid strand",
	KindParseInt:            "invalid integer",
	KindParseFloat:          "invalid float",
	KindParseRegex:          "invalid regex",
	KindInvalidBase:         "invalid base",
	KindParseGenomeRegion:   "invalid genome region",
	KindDuplicateName:       "duplicate sequence name",
	KindSLineCountNotMatch:  "sline count mismatch",
	KindUnimplementedFormat: "unimplemented format",
	KindIntervalParse:       "interval parse error",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Error is the discriminated error type for the whole module.
type Error struct {
	Kind    Kind
	Msg     string
	Cause   error
	Context string // e.g. a field name, a file path, a line number
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Context != "" {
		s += " (" + e.Context + ")"
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error of the given kind with a formatted message.
func New(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind wrapping cause.
func Wrap(k Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// WithContext returns a copy of e annotated with a context string, e.g. a
// field name for KindFieldMissing or a path for KindIO.
func (e *Error) WithContext(ctx string) *Error {
	c := *e
	c.Context = ctx
	return &c
}

// FieldMissing is a convenience constructor for spec's FieldMissing(<name>).
func FieldMissing(name string) *Error {
	return &Error{Kind: KindFieldMissing, Context: name}
}

// Is implements errors.Is by Kind equivalence: two *Error values with the
// same Kind are considered equal regardless of Msg/Cause/Context, which
// lets callers write errors.Is(err, werr.Sentinel(werr.KindEmptyStdin)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel returns a bare *Error of kind k suitable for use with errors.Is.
func Sentinel(k Kind) *Error { return &Error{Kind: k} }
