// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainfmt

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/werr"
)

// Reader is a finite, non-restartable lazy sequence of chain Records
// (spec §4 "Chain reader"): records begin with the literal `chain` token;
// the header line has 12 whitespace fields; following lines are data
// triplets terminated by the next `chain` token, a bare-size line, or EOF.
type Reader struct {
	sc       *bufio.Scanner
	pending  string
	hasPend  bool
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &Reader{sc: sc}
}

func (r *Reader) nextLine() (string, bool) {
	if r.hasPend {
		r.hasPend = false
		return r.pending, true
	}
	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		return line, true
	}
	return "", false
}

// Next returns the next record, or io.EOF when exhausted.
func (r *Reader) Next() (Record, error) {
	line, ok := r.nextLine()
	if !ok {
		return Record{}, io.EOF
	}
	if !strings.HasPrefix(line, "chain") {
		return Record{}, werr.New(werr.KindFieldMissing, "expected chain header, got %q", line)
	}
	rec, err := parseHeader(line)
	if err != nil {
		return Record{}, err
	}
	for {
		line, ok := r.nextLine()
		if !ok {
			break
		}
		if strings.HasPrefix(line, "chain") {
			r.pending = line
			r.hasPend = true
			break
		}
		dl, terminator, err := parseDataLine(line)
		if err != nil {
			return Record{}, err
		}
		rec.Lines = append(rec.Lines, dl)
		if terminator {
			break
		}
	}
	return rec, nil
}

func parseHeader(line string) (Record, error) {
	f := strings.Fields(line)
	if len(f) != 13 {
		return Record{}, werr.New(werr.KindFieldMissing, "chain header has %d fields, want 13", len(f))
	}
	var rec Record
	var err error
	if rec.Score, err = strconv.ParseInt(f[1], 10, 64); err != nil {
		return Record{}, werr.Wrap(werr.KindParseInt, err, "score")
	}
	rec.TargetName = f[2]
	if rec.TargetSize, err = strconv.ParseUint(f[3], 10, 64); err != nil {
		return Record{}, werr.Wrap(werr.KindParseInt, err, "t_size")
	}
	if rec.TargetStrand, err = align.ParseStrand(f[4][0]); err != nil {
		return Record{}, err
	}
	if rec.TargetStart, err = strconv.ParseUint(f[5], 10, 64); err != nil {
		return Record{}, werr.Wrap(werr.KindParseInt, err, "t_start")
	}
	if rec.TargetEnd, err = strconv.ParseUint(f[6], 10, 64); err != nil {
		return Record{}, werr.Wrap(werr.KindParseInt, err, "t_end")
	}
	rec.QueryName = f[7]
	if rec.QuerySize, err = strconv.ParseUint(f[8], 10, 64); err != nil {
		return Record{}, werr.Wrap(werr.KindParseInt, err, "q_size")
	}
	if rec.QueryStrand, err = align.ParseStrand(f[9][0]); err != nil {
		return Record{}, err
	}
	if rec.QueryStart, err = strconv.ParseUint(f[10], 10, 64); err != nil {
		return Record{}, werr.Wrap(werr.KindParseInt, err, "q_start")
	}
	if rec.QueryEnd, err = strconv.ParseUint(f[11], 10, 64); err != nil {
		return Record{}, werr.Wrap(werr.KindParseInt, err, "q_end")
	}
	if rec.ID, err = strconv.ParseInt(f[12], 10, 64); err != nil {
		return Record{}, werr.Wrap(werr.KindParseInt, err, "id")
	}
	return rec, nil
}

// parseDataLine parses one data line, reporting terminator=true for a
// bare-size line (spec §3: "the terminator line has size only").
func parseDataLine(line string) (dl cigar.DataLine, terminator bool, err error) {
	f := strings.Fields(line)
	size, err := strconv.ParseUint(f[0], 10, 64)
	if err != nil {
		return cigar.DataLine{}, false, werr.Wrap(werr.KindParseInt, err, "size")
	}
	dl.Size = size
	if len(f) == 1 {
		return dl, true, nil
	}
	if len(f) != 3 {
		return cigar.DataLine{}, false, werr.New(werr.KindSurplusField, "chain data line has %d fields, want 1 or 3", len(f))
	}
	if dl.TargetDiff, err = strconv.ParseUint(f[1], 10, 64); err != nil {
		return cigar.DataLine{}, false, werr.Wrap(werr.KindParseInt, err, "dt")
	}
	if dl.QueryDiff, err = strconv.ParseUint(f[2], 10, 64); err != nil {
		return cigar.DataLine{}, false, werr.Wrap(werr.KindParseInt, err, "dq")
	}
	return dl, false, nil
}
