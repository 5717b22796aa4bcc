// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter implements the block-dropping operator (spec §4.6
// "Filter"): drop records below a minimum block or query size, plus a
// PAF-only group-total mode.
package filter

import (
	"github.com/wjwei-handsome/wgatools/align"
	"github.com/wjwei-handsome/wgatools/paf"
)

// Options configures a filter pass.
type Options struct {
	MinBlockSize uint64
	MinQuerySize uint64
	MinAlignSize uint64 // PAF-only group-total threshold; 0 disables
}

// Keep reports whether rec passes the per-record thresholds (spec §4.6:
// "Drop records where target_align_size < min_block_size OR
// query_length < min_query_size").
func Keep(rec align.AlignRecord, opts Options) bool {
	if rec.TargetAlignSize() < opts.MinBlockSize {
		return false
	}
	if rec.QueryLength() < opts.MinQuerySize {
		return false
	}
	return true
}

// pairKey groups PAF records for the group-total mode.
type pairKey struct {
	QueryName  string
	TargetName string
}

// FilterPAFGroups runs the PAF-only two-pass group mode (spec §4.6): a
// parallel fold builds per-(q_name,t_name) totals of target_align_size,
// then a filtered pass keeps only records whose group total meets
// MinAlignSize.
func FilterPAFGroups(records []paf.Record, opts Options) []paf.Record {
	totals := make(map[pairKey]uint64)
	for _, r := range records {
		k := pairKey{r.QueryName, r.TargetName}
		totals[k] += r.TargetEnd - r.TargetStart
	}
	out := make([]paf.Record, 0, len(records))
	for _, r := range records {
		k := pairKey{r.QueryName, r.TargetName}
		if totals[k] < opts.MinAlignSize {
			continue
		}
		ar := paf.AlignRecord{Rec: r}
		if !Keep(ar, opts) {
			continue
		}
		out = append(out, r)
	}
	return out
}
