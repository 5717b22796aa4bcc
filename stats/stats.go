// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements the per-pair statistics operator (spec §4.6
// "Statistics"): materialize a RecStat per record, then either emit it
// as-is (each=true) or fold it into one aggregated row per (ref, query)
// pair.
package stats

import (
	"fmt"

	"github.com/wjwei-handsome/wgatools/align"
)

// pairKey groups aggregated rows by (ref_name, query_name, ref_size,
// query_size), per spec §4.6.
type pairKey struct {
	RefName   string
	QueryName string
	RefSize   uint64
	QuerySize uint64
}

// Aggregate folds a sequence of RecStats into one row per pairKey,
// summing counts and tracking the minimum Start seen for each pair (spec
// §4.6: "one row per (ref_name, query_name, ref_size, query_size) pair
// with aggregated counts and min(start) values").
func Aggregate(stats []align.RecStat) []align.RecStat {
	order := make([]pairKey, 0)
	byKey := make(map[pairKey]*align.RecStat)
	for _, s := range stats {
		k := pairKey{s.RefName, s.QueryName, s.RefSize, s.QuerySize}
		agg, ok := byKey[k]
		if !ok {
			cp := s
			byKey[k] = &cp
			order = append(order, k)
			continue
		}
		agg.AlignedSize += s.AlignedSize
		agg.Matched += s.Matched
		agg.Mismatched += s.Mismatched
		agg.InsEvent += s.InsEvent
		agg.InsSize += s.InsSize
		agg.DelEvent += s.DelEvent
		agg.DelSize += s.DelSize
		agg.InvEvent += s.InvEvent
		agg.InvSize += s.InvSize
		if s.MaxIndel > agg.MaxIndel {
			agg.MaxIndel = s.MaxIndel
		}
		if s.MinStart < agg.MinStart {
			agg.MinStart = s.MinStart
		}
	}
	out := make([]align.RecStat, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	return out
}

// Header is the TSV column header for a stats row.
const Header = "ref_name\tquery_name\tref_size\tquery_size\tmin_start\taligned_size\tmatched\tmismatched\tins_event\tins_size\tdel_event\tdel_size\tinv_event\tinv_size\tmax_indel\tidentity\tsimilarity"

// Row renders s as a TSV line matching Header (spec §4.6; the max_indel
// column is SPEC_FULL's supplement over the distilled spec, see
// align.RecStat.MaxIndel).
func Row(s align.RecStat) string {
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.6f\t%.6f",
		s.RefName, s.QueryName, s.RefSize, s.QuerySize, s.MinStart, s.AlignedSize,
		s.Matched, s.Mismatched, s.InsEvent, s.InsSize, s.DelEvent, s.DelSize,
		s.InvEvent, s.InvSize, s.MaxIndel, s.Identity(), s.Similarity())
}
