// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mafidx builds and queries a persisted index over a MAF file,
// backed by an interval tree per sequence name, to support range-indexed
// block extraction (spec §4.5). Grounded on kortschak-loopy's
// cmd/rinse readAnnotations (one interval.IntTree per sequence name) and
// on maf.Reader's byte-offset tracking.
package mafidx

import (
	"encoding/json"
	"io"

	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/werr"
)

// Interval is one SLine's footprint within a sequence: the genomic
// [Start, End) range, the byte offset of its block's first s-line, and
// the SLine's ordinal position within that block (spec §4.5 "Build").
type Interval struct {
	Start  uint64 `json:"start"`
	End    uint64 `json:"end"`
	Offset int64  `json:"offset"`
	Ord    int    `json:"ord"`
}

// Index maps a sequence name to all the intervals it appears in across
// the MAF file.
type Index struct {
	Items map[string][]Interval `json:"items"`
}

// Build sequentially iterates r, recording for each SLine within each
// block the interval described above. Duplicate sequence names within a
// single block are rejected via Record.Validate (spec §4.5 "Build":
// "Duplicate sequence names within a single block are rejected").
func Build(r *maf.Reader) (*Index, error) {
	idx := &Index{Items: make(map[string][]Interval)}
	for {
		rec, offset, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		for ord, s := range rec.SLines {
			idx.Items[s.Name] = append(idx.Items[s.Name], Interval{
				Start:  s.Start,
				End:    s.Start + s.AlignSize,
				Offset: offset,
				Ord:    ord,
			})
		}
	}
	return idx, nil
}

// Encode persists idx as JSON.
func Encode(w io.Writer, idx *Index) error {
	if err := json.NewEncoder(w).Encode(idx); err != nil {
		return werr.Wrap(werr.KindIO, err, "encoding maf index")
	}
	return nil
}

// Decode reads a persisted index.
func Decode(r io.Reader) (*Index, error) {
	var idx Index
	if err := json.NewDecoder(r).Decode(&idx); err != nil {
		return nil, werr.Wrap(werr.KindIO, err, "decoding maf index")
	}
	return &idx, nil
}
