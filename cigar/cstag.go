// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"strconv"
	"strings"

	"github.com/wjwei-handsome/wgatools/werr"
)

// ExpandCS expands a minimap2 `cs:Z:` tag value (without the `cs:Z:`
// prefix) into a Cigar (spec §4.2 "CS-tag → CIGAR"). Segments are:
//
//	:N     N matches, coalesced into a run of 'M'
//	+ACGT  an insertion event, one 'I' op per event
//	-ACGT  a deletion event, one 'D' op per event
//	*ab    a single mismatch, coalesced with adjacent '*' segments into 'X'
func ExpandCS(cs string) (Ops, error) {
	var ops Ops
	var matchRun uint64
	var mismatchRun uint64

	flushMatch := func() {
		if matchRun > 0 {
			ops = append(ops, Unit{Op: OpMatch, Len: matchRun})
			matchRun = 0
		}
	}
	flushMismatch := func() {
		if mismatchRun > 0 {
			ops = append(ops, Unit{Op: OpMismatch, Len: mismatchRun})
			mismatchRun = 0
		}
	}

	i := 0
	for i < len(cs) {
		switch cs[i] {
		case ':':
			flushMismatch()
			j := i + 1
			for j < len(cs) && cs[j] >= '0' && cs[j] <= '9' {
				j++
			}
			if j == i+1 {
				return nil, werr.New(werr.KindCigarOpInvalid, "cs tag: malformed ':' segment at %d", i)
			}
			n, err := strconv.ParseUint(cs[i+1:j], 10, 64)
			if err != nil {
				return nil, werr.Wrap(werr.KindCigarOpInvalid, err, "cs tag: match length at %d", i)
			}
			matchRun += n
			i = j
		case '+':
			flushMatch()
			flushMismatch()
			j := i + 1
			for j < len(cs) && isBase(cs[j]) {
				j++
			}
			ops = append(ops, Unit{Op: OpInsertion, Len: uint64(j - i - 1)})
			i = j
		case '-':
			flushMatch()
			flushMismatch()
			j := i + 1
			for j < len(cs) && isBase(cs[j]) {
				j++
			}
			ops = append(ops, Unit{Op: OpDeletion, Len: uint64(j - i - 1)})
			i = j
		case '*':
			flushMatch()
			if i+3 > len(cs) || !isBase(cs[i+1]) || !isBase(cs[i+2]) {
				return nil, werr.New(werr.KindCigarOpInvalid, "cs tag: malformed '*' segment at %d", i)
			}
			mismatchRun++
			i += 3
		case '~':
			flushMatch()
			flushMismatch()
			j := i + 1
			for j < len(cs) && cs[j] != ':' && cs[j] != '+' && cs[j] != '-' && cs[j] != '*' && cs[j] != '~' {
				j++
			}
			i = j // splice events ignored: not produced by spec's target generators
		default:
			return nil, werr.New(werr.KindCigarOpInvalid, "cs tag: unexpected byte %q at %d", cs[i], i)
		}
	}
	flushMatch()
	flushMismatch()
	return ops, nil
}

func isBase(c byte) bool {
	return strings.IndexByte("ACGTNacgtn", c) >= 0
}
