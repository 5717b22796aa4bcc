// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coverage implements the PAF per-base depth operator (spec §4.6
// "PAF coverage"): walk each record's CIGAR over its target span,
// accumulating a depth count per target position.
package coverage

import (
	"fmt"
	"sort"

	"github.com/wjwei-handsome/wgatools/cigar"
	"github.com/wjwei-handsome/wgatools/paf"
)

// Depths accumulates per-name depth vectors over [0, t_size).
type Depths struct {
	byName map[string][]uint32
}

// NewDepths returns an empty depth accumulator.
func NewDepths() *Depths { return &Depths{byName: make(map[string][]uint32)} }

// Add walks rec's CIGAR, incrementing the target span for every
// M/=/X/D op (a target base spanned by a query deletion is still
// covered, per the coverage conservation law), skipping I/S (query-side
// only, no target position advance), and otherwise only advancing
// position.
func (d *Depths) Add(rec paf.Record) error {
	ops, err := rec.CigarOps()
	if err != nil {
		return err
	}
	vec, ok := d.byName[rec.TargetName]
	if !ok {
		vec = make([]uint32, rec.TargetLen)
		d.byName[rec.TargetName] = vec
	}
	pos := rec.TargetStart
	for _, u := range ops {
		switch u.Op {
		case cigar.OpMatch, cigar.OpEqual, cigar.OpMismatch, cigar.OpDeletion:
			for i := uint64(0); i < u.Len; i++ {
				if pos+i < uint64(len(vec)) {
					vec[pos+i]++
				}
			}
			pos += u.Len
		case cigar.OpInsertion, cigar.OpSoftClip:
			// query-side only; target position does not advance.
		default:
			pos += u.Len
		}
	}
	return nil
}

// Merge elementwise-sums other into d (spec §4.6: "Parallel fold reduces
// by elementwise sum"), used to combine per-worker partial accumulators.
func (d *Depths) Merge(other *Depths) {
	for name, vec := range other.byName {
		cur, ok := d.byName[name]
		if !ok {
			d.byName[name] = vec
			continue
		}
		for i, v := range vec {
			if i < len(cur) {
				cur[i] += v
			}
		}
	}
}

// Rows emits BED-like "name start end depth" rows, run-length collapsing
// consecutive equal-depth positions, in name-sorted order (spec §4.6:
// "Emit as BED-like name start end depth rows").
func (d *Depths) Rows() []string {
	names := make([]string, 0, len(d.byName))
	for n := range d.byName {
		names = append(names, n)
	}
	sort.Strings(names)

	var rows []string
	for _, name := range names {
		vec := d.byName[name]
		i := 0
		for i < len(vec) {
			j := i
			for j < len(vec) && vec[j] == vec[i] {
				j++
			}
			rows = append(rows, fmt.Sprintf("%s\t%d\t%d\t%d", name, i, j, vec[i]))
			i = j
		}
	}
	return rows
}
