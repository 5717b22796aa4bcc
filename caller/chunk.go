// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caller

// FindSafeChunkBoundary scans forward from proposed (a column index) for
// a column where both gappedTarget and gappedQuery hold a non-gap base,
// so a chunk cut never bisects a long indel run (spec §4.7 "Chunking").
// The scan is bounded at maxScan columns past proposed, resolving spec's
// flagged unbounded-scan risk: if no safe column is found in that range,
// the original proposed boundary is returned and found is false so the
// caller can log a warning rather than fail.
func FindSafeChunkBoundary(gappedTarget, gappedQuery string, proposed, maxScan int) (boundary int, found bool) {
	width := len(gappedTarget)
	if proposed >= width {
		return width, true
	}
	limit := proposed + maxScan
	if limit > width {
		limit = width
	}
	for i := proposed; i < limit; i++ {
		if gappedTarget[i] != '-' && gappedQuery[i] != '-' {
			return i, true
		}
	}
	return proposed, false
}

// chunkBoundaries splits [0, width) into column windows of approximately
// chunkSize columns each, nudging every interior boundary to the nearest
// safe column found by FindSafeChunkBoundary.
func chunkBoundaries(gappedTarget, gappedQuery string, chunkSize uint64) []int {
	width := len(gappedTarget)
	if chunkSize == 0 || uint64(width) <= chunkSize {
		return []int{width}
	}
	maxScan := int(chunkSize) * 4
	var bounds []int
	pos := int(chunkSize)
	for pos < width {
		b, _ := FindSafeChunkBoundary(gappedTarget, gappedQuery, pos, maxScan)
		if b <= pos && len(bounds) > 0 && b <= bounds[len(bounds)-1] {
			b = pos // avoid a non-advancing boundary if the scan found nothing useful
		}
		bounds = append(bounds, b)
		pos = b + int(chunkSize)
	}
	bounds = append(bounds, width)
	return bounds
}
