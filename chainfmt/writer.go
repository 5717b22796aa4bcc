// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainfmt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wjwei-handsome/wgatools/werr"
)

// Writer emits chain records: a header line, its data-line triplets, a
// bare-size terminator, then a blank line (spec §3 "Chain (UCSC)").
type Writer struct {
	bw *bufio.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 32*1024)}
}

// Write emits one record.
func (w *Writer) Write(rec Record) error {
	_, err := fmt.Fprintf(w.bw, "chain %d %s %d %s %d %d %s %d %s %d %d %d\n",
		rec.Score,
		rec.TargetName, rec.TargetSize, rec.TargetStrand.String(), rec.TargetStart, rec.TargetEnd,
		rec.QueryName, rec.QuerySize, rec.QueryStrand.String(), rec.QueryStart, rec.QueryEnd,
		rec.ID)
	if err != nil {
		return werr.Wrap(werr.KindIO, err, "writing chain header")
	}
	for i, l := range rec.Lines {
		if i == len(rec.Lines)-1 {
			if _, err := fmt.Fprintf(w.bw, "%d\n", l.Size); err != nil {
				return werr.Wrap(werr.KindIO, err, "writing chain terminator")
			}
			continue
		}
		if _, err := fmt.Fprintf(w.bw, "%d\t%d\t%d\n", l.Size, l.TargetDiff, l.QueryDiff); err != nil {
			return werr.Wrap(werr.KindIO, err, "writing chain data line")
		}
	}
	if _, err := fmt.Fprintln(w.bw); err != nil {
		return werr.Wrap(werr.KindIO, err, "writing chain blank line")
	}
	return nil
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return werr.Wrap(werr.KindIO, err, "flushing chain writer")
	}
	return nil
}
