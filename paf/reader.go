// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paf

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/werr"
)

// Reader is a finite, non-restartable lazy sequence of PAF records (spec
// §8 "Coroutine / lazy iteration"), grounded on maf.Reader's shape.
type Reader struct {
	br *bufio.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 32*1024)}
}

// Next returns the next record, or io.EOF when exhausted. Comment lines
// starting with '#' are skipped (spec §4 "PAF reader").
func (r *Reader) Next() (Record, error) {
	for {
		line, err := r.br.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" && err != nil {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			return Record{}, werr.Wrap(werr.KindIO, err, "reading paf record")
		}
		if line == "" || strings.HasPrefix(line, "#") {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			continue
		}
		rec, perr := parseLine(line)
		if perr != nil {
			return Record{}, perr
		}
		return rec, nil
	}
}

func parseLine(line string) (Record, error) {
	f := strings.Split(line, "\t")
	if len(f) < 12 {
		return Record{}, werr.New(werr.KindFieldMissing, "paf record has %d columns, want >= 12", len(f))
	}
	rec := Record{QueryName: f[0], TargetName: f[5], Tags: append([]string(nil), f[12:]...)}
	var err error
	if rec.QueryLen, err = parseU64(f[1], "qlen"); err != nil {
		return Record{}, err
	}
	if rec.QueryStart, err = parseU64(f[2], "qstart"); err != nil {
		return Record{}, err
	}
	if rec.QueryEnd, err = parseU64(f[3], "qend"); err != nil {
		return Record{}, err
	}
	strand, err := align.ParseStrand(f[4][0])
	if err != nil {
		return Record{}, err
	}
	rec.Strand = strand
	if rec.TargetLen, err = parseU64(f[6], "tlen"); err != nil {
		return Record{}, err
	}
	if rec.TargetStart, err = parseU64(f[7], "tstart"); err != nil {
		return Record{}, err
	}
	if rec.TargetEnd, err = parseU64(f[8], "tend"); err != nil {
		return Record{}, err
	}
	if rec.Matches, err = parseU64(f[9], "matches"); err != nil {
		return Record{}, err
	}
	if rec.BlockLen, err = parseU64(f[10], "blocklen"); err != nil {
		return Record{}, err
	}
	mapq, err := strconv.ParseUint(f[11], 10, 8)
	if err != nil {
		return Record{}, werr.Wrap(werr.KindParseInt, err, "mapq")
	}
	rec.MapQ = uint8(mapq)
	return rec, nil
}

func parseU64(s, field string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, werr.Wrap(werr.KindParseInt, err, field)
	}
	return v, nil
}
