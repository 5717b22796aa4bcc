// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunk implements the MAF block subdivision operator (spec §4.6
// "Chunk"): split each block into column-coordinate slices of a fixed
// width, keeping every SLine aligned across slices.
package chunk

import "github.com/wjwei-handsome/wgatools/maf"

// Split subdivides rec into column-coordinate windows of width
// chunkLength, each produced via maf.SliceColumns so every SLine's start
// and align_size are recomputed relative to the non-gap bases consumed
// in prior slices (spec §4.6).
func Split(rec maf.Record, chunkLength int) []maf.Record {
	width := rec.Width()
	if chunkLength <= 0 || width <= chunkLength {
		return []maf.Record{rec}
	}
	var out []maf.Record
	for start := 0; start < width; start += chunkLength {
		end := start + chunkLength
		if end > width {
			end = width
		}
		out = append(out, maf.SliceColumns(rec, start, end))
	}
	return out
}
