// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maf

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wjwei-handsome/wgatools/werr"
)

// DefaultHeader is emitted by Writer when no header was set explicitly.
const DefaultHeader = "#maf version=1.6"

// Writer emits MAF records in the exact wire shape spec §4.3 requires:
// a `#`-prefixed header line, then per record an `a score={n}` line, each
// SLine, and a trailing blank line.
type Writer struct {
	bw     *bufio.Writer
	header string
	wrote  bool
}

// NewWriter wraps w. If header is empty, DefaultHeader is used.
func NewWriter(w io.Writer, header string) *Writer {
	if header == "" {
		header = DefaultHeader
	}
	return &Writer{bw: bufio.NewWriterSize(w, 32*1024), header: header}
}

// Write emits one record.
func (w *Writer) Write(rec Record) error {
	if !w.wrote {
		if _, err := fmt.Fprintln(w.bw, w.header); err != nil {
			return werr.Wrap(werr.KindIO, err, "writing maf header")
		}
		w.wrote = true
	}
	if _, err := fmt.Fprintf(w.bw, "a score=%d\n", rec.Score); err != nil {
		return werr.Wrap(werr.KindIO, err, "writing maf a-line")
	}
	for _, s := range rec.SLines {
		if _, err := fmt.Fprintf(w.bw, "s\t%s\t%d\t%d\t%s\t%d\t%s\n",
			s.Name, s.Start, s.AlignSize, s.Strand, s.Size, s.Seq); err != nil {
			return werr.Wrap(werr.KindIO, err, "writing maf s-line")
		}
	}
	if _, err := fmt.Fprintln(w.bw); err != nil {
		return werr.Wrap(werr.KindIO, err, "writing maf blank line")
	}
	return nil
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return werr.Wrap(werr.KindIO, err, "flushing maf writer")
	}
	return nil
}
