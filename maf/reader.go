// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maf

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/werr"
)

// Reader is a finite, non-restartable lazy sequence of MAF records over a
// buffered byte stream, grounded on the teacher's bam.Reader shape (a
// thin struct wrapping a buffered source plus a parsed header) and on
// original_source's MAFReader. It tracks the byte offset of every line so
// mafidx can record, for each block, the offset its first s-line starts
// at (spec §4.5).
type Reader struct {
	br     *bufio.Reader
	Header string

	offset int64 // byte offset of the start of nextLine

	haveNext   bool
	nextLine   string
	nextOffset int64
	nextErr    error
}

// NewReader wraps r, reading and retaining the leading `#`-prefixed header
// line (spec §4.3: warn, not fail, if missing — the warning is the
// caller's responsibility since Reader has no logger).
func newBufReader(r io.Reader) *bufio.Reader { return bufio.NewReaderSize(r, 32*1024) }

func NewReader(r io.Reader) (*Reader, error) {
	br := newBufReader(r)
	rd := &Reader{br: br}
	line, _, err := rd.readRawLine()
	if err != nil && err != io.EOF {
		return nil, werr.Wrap(werr.KindIO, err, "reading maf header")
	}
	if strings.HasPrefix(line, "#") {
		rd.Header = line
	} else if line != "" {
		rd.stash(line, 0, err)
	}
	return rd, nil
}

// readRawLine reads one line (without its terminator) from the underlying
// bufio.Reader, returning the byte offset the line started at.
func (r *Reader) readRawLine() (line string, startOffset int64, err error) {
	startOffset = r.offset
	raw, err := r.br.ReadString('\n')
	r.offset += int64(len(raw))
	raw = strings.TrimRight(raw, "\r\n")
	if err != nil && err != io.EOF {
		return "", startOffset, err
	}
	if err == io.EOF && raw == "" {
		return "", startOffset, io.EOF
	}
	return raw, startOffset, nil
}

func (r *Reader) stash(line string, offset int64, err error) {
	r.haveNext = true
	r.nextLine = line
	r.nextOffset = offset
	r.nextErr = err
}

// peek returns the next line without consuming it.
func (r *Reader) peek() (string, int64, error) {
	if !r.haveNext {
		line, off, err := r.readRawLine()
		r.stash(line, off, err)
	}
	return r.nextLine, r.nextOffset, r.nextErr
}

// advance consumes and returns the line last returned by peek.
func (r *Reader) advance() (string, int64, error) {
	line, off, err := r.peek()
	r.haveNext = false
	return line, off, err
}

// Next reads and returns the next record, or io.EOF when exhausted.
func (r *Reader) Next() (Record, int64, error) {
	for {
		line, startOffset, err := r.peek()
		if err == io.EOF {
			return Record{}, 0, io.EOF
		}
		if err != nil {
			return Record{}, 0, werr.Wrap(werr.KindIO, err, "reading maf record")
		}
		if !strings.HasPrefix(line, "s") {
			r.advance()
			continue // blank, 'a', comment or other delimiter line
		}
		rec := Record{QueryIdx: 1}
		for {
			line, _, _ := r.advance()
			sl, err := parseSLine(line)
			if err != nil {
				return Record{}, 0, err
			}
			rec.SLines = append(rec.SLines, sl)

			next, _, err := r.peek()
			if err == io.EOF || !strings.HasPrefix(next, "s") {
				return rec, startOffset, nil
			}
			if err != nil {
				return Record{}, 0, werr.Wrap(werr.KindIO, err, "reading maf record")
			}
		}
	}
}

func parseSLine(line string) (SLine, error) {
	f := strings.Fields(line)
	if len(f) < 7 {
		names := []string{"mode", "name", "start", "align_size", "strand", "size", "seq"}
		return SLine{}, werr.FieldMissing(names[len(f)])
	}
	if len(f) > 7 {
		return SLine{}, werr.New(werr.KindSurplusField, "s-line has %d fields, want 7", len(f))
	}
	start, err := strconv.ParseUint(f[2], 10, 64)
	if err != nil {
		return SLine{}, werr.Wrap(werr.KindParseInt, err, "start")
	}
	alignSize, err := strconv.ParseUint(f[3], 10, 64)
	if err != nil {
		return SLine{}, werr.Wrap(werr.KindParseInt, err, "align_size")
	}
	strand, err := align.ParseStrand(f[4][0])
	if err != nil {
		return SLine{}, err
	}
	size, err := strconv.ParseUint(f[5], 10, 64)
	if err != nil {
		return SLine{}, werr.Wrap(werr.KindParseInt, err, "size")
	}
	return SLine{
		Mode:      f[0][0],
		Name:      f[1],
		Start:     start,
		AlignSize: alignSize,
		Strand:    strand,
		Size:      size,
		Seq:       f[6],
	}, nil
}
