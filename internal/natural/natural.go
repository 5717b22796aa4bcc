// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package natural implements numeric-aware string comparison ("chr2" <
// "chr10"), used for the MAF record total ordering (spec §4.3).
package natural

// Less reports whether a sorts before b under natural ordering: runs of
// digits compare numerically, everything else compares byte-wise.
func Less(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			ni, na := scanNum(a, i)
			nj, nb := scanNum(b, j)
			if na != nb {
				return na < nb
			}
			i, j = ni, nj
			continue
		}
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	return len(a)-i < len(b)-j
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// scanNum reads the run of digits starting at i and returns the position
// just past it along with the numeric value (saturating, not overflow
// checked: only used for comparison, not arithmetic).
func scanNum(s string, i int) (next int, v uint64) {
	for i < len(s) && isDigit(s[i]) {
		v = v*10 + uint64(s[i]-'0')
		i++
	}
	return i, v
}
