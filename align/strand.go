// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align holds the format-agnostic alignment record model shared by
// the maf, paf and chainfmt packages: Strand, SeqInfo, Block, RecStat and
// the AlignRecord capability set (spec §3).
package align

import "github.com/wjwei-handsome/wgatools/werr"

// Strand is the orientation of a sequence within an alignment.
type Strand byte

const (
	Positive Strand = '+'
	Negative Strand = '-'
)

// ParseStrand parses a single-character strand token.
func ParseStrand(c byte) (Strand, error) {
	switch c {
	case '+':
		return Positive, nil
	case '-':
		return Negative, nil
	default:
		return 0, werr.New(werr.KindParseStrand, "strand character %q", c)
	}
}

func (s Strand) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Opposite returns the other strand.
func (s Strand) Opposite() Strand {
	if s == Positive {
		return Negative
	}
	return Positive
}
