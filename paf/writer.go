// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paf

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wjwei-handsome/wgatools/werr"
)

// Writer emits PAF records, one tab-separated line per record, preserving
// the 12 fixed columns and trailing tags byte-exact (spec §8 round-trip
// identity law).
type Writer struct {
	bw *bufio.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 32*1024)}
}

// Write emits one record.
func (w *Writer) Write(rec Record) error {
	fields := []string{
		rec.QueryName,
		fmt.Sprint(rec.QueryLen),
		fmt.Sprint(rec.QueryStart),
		fmt.Sprint(rec.QueryEnd),
		rec.Strand.String(),
		rec.TargetName,
		fmt.Sprint(rec.TargetLen),
		fmt.Sprint(rec.TargetStart),
		fmt.Sprint(rec.TargetEnd),
		fmt.Sprint(rec.Matches),
		fmt.Sprint(rec.BlockLen),
		fmt.Sprint(rec.MapQ),
	}
	fields = append(fields, rec.Tags...)
	if _, err := fmt.Fprintln(w.bw, strings.Join(fields, "\t")); err != nil {
		return werr.Wrap(werr.KindIO, err, "writing paf record")
	}
	return nil
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return werr.Wrap(werr.KindIO, err, "flushing paf writer")
	}
	return nil
}
