// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cigar is the CIGAR/edit-script kernel (spec §4.2): bidirectional
// conversion among textual CIGAR, gapped sequence pairs and Chain data
// lines, gap re-insertion, and per-column emission for the variant caller
// and plotters.
//
// The op encoding follows the teacher's sam.CigarOp (a type+length packed
// into a single integer with a Consumes() table), adapted to wgatools'
// narrower canonical alphabet M/=/X/I/D.
package cigar

import (
	"strconv"
	"strings"

	"github.com/wjwei-handsome/wgatools/werr"
)

// Op is a single CIGAR operation type. Unlike the teacher's CigarOpType
// (which must describe real SAM/BAM records, including N/S/H/P/B), wgatools
// only ever *produces* M/=/X/I/D, but must *consume* the wider SAM alphabet
// on parse since either MAF-folding or a borrowed PAF cg:Z: tag may carry
// soft/hard clips or `N`/`P` that spec §4.2 says to ignore for coordinate
// purposes.
type Op byte

const (
	OpMatch      Op = 'M'
	OpEqual      Op = '='
	OpMismatch   Op = 'X'
	OpInsertion  Op = 'I'
	OpDeletion   Op = 'D'
	OpSkip       Op = 'N'
	OpSoftClip   Op = 'S'
	OpHardClip   Op = 'H'
	OpPad        Op = 'P'
	OpBack       Op = 'B'
	OpInvalid    Op = 0
)

// Consume describes how an Op advances query and target/reference
// coordinates, mirroring the teacher's Consume struct.
type Consume struct {
	Query, Target int
}

var consumeTable = map[Op]Consume{
	OpMatch:     {1, 1},
	OpEqual:     {1, 1},
	OpMismatch:  {1, 1},
	OpInsertion: {1, 0},
	OpDeletion:  {0, 1},
	OpSkip:      {0, 1},
	OpSoftClip:  {1, 0},
	OpHardClip:  {0, 0},
	OpPad:       {0, 0},
}

// Consumes returns op's query/target consumption.
func (op Op) Consumes() Consume { return consumeTable[op] }

// IsMatchLike reports whether op is one of M, = or X: spec §4.2 requires
// all three to be treated equivalently for coordinate advancement.
func (op Op) IsMatchLike() bool {
	return op == OpMatch || op == OpEqual || op == OpMismatch
}

func (op Op) String() string {
	if op == OpInvalid {
		return "?"
	}
	return string(rune(op))
}

// Unit is one run-length-encoded CIGAR element, e.g. "12M".
type Unit struct {
	Op  Op
	Len uint64
}

func (u Unit) String() string {
	return strconv.FormatUint(u.Len, 10) + u.Op.String()
}

// Ops is a parsed CIGAR: an ordered list of run-length units.
type Ops []Unit

func (ops Ops) String() string {
	var b strings.Builder
	for _, u := range ops {
		b.WriteString(u.String())
	}
	return b.String()
}

var opFromByte = map[byte]Op{
	'M': OpMatch, 'I': OpInsertion, 'D': OpDeletion, 'N': OpSkip,
	'S': OpSoftClip, 'H': OpHardClip, 'P': OpPad, '=': OpEqual,
	'X': OpMismatch, 'B': OpBack,
}

// Parse parses a textual CIGAR string into Ops. Per spec §4.2, the grammar
// is `([0-9]+)([A-Za-z=])` repeated to end of string; empty input
// terminates successfully with a nil/empty result, any other op char is
// KindCigarOpInvalid, and a malformed or overflowing length is reported as
// a *werr.Error as well (overflow maps onto the same op-invalid kind since
// spec does not distinguish a separate "length too large" error kind).
func Parse(s string) (Ops, error) {
	if s == "" || s == "*" {
		return nil, nil
	}
	var ops Ops
	i := 0
	for i < len(s) {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i {
			return nil, werr.New(werr.KindCigarOpInvalid, "expected digits at offset %d in %q", i, s)
		}
		n, err := strconv.ParseUint(s[i:j], 10, 64)
		if err != nil {
			return nil, werr.Wrap(werr.KindCigarOpInvalid, err, "length overflow at offset %d in %q", i, s)
		}
		if n == 0 {
			return nil, werr.New(werr.KindCigarOpInvalid, "zero-length operation at offset %d in %q", i, s)
		}
		if j >= len(s) {
			return nil, werr.New(werr.KindCigarOpInvalid, "missing operation character at end of %q", s)
		}
		op, ok := opFromByte[s[j]]
		if !ok {
			return nil, werr.New(werr.KindCigarOpInvalid, "unknown operation %q at offset %d", s[j], j)
		}
		ops = append(ops, Unit{Op: op, Len: n})
		i = j + 1
	}
	return ops, nil
}

// Lengths returns the total reference (target) and query bases described
// by ops, mirroring sam.Cigar.Lengths.
func (ops Ops) Lengths() (target, query int) {
	for _, u := range ops {
		con := u.Op.Consumes()
		target += con.Target * int(u.Len)
		query += con.Query * int(u.Len)
	}
	return target, query
}

// IsValid reports whether ops is self consistent for a query of the given
// length: the sum of query-consuming operations must equal length, and
// clip operations (S/H) may only appear at the ends. Adapted from
// sam.Cigar.IsValid to the M/=/X/I/D-centric alphabet (spec §4.2): N/P are
// tolerated anywhere since spec says to ignore them entirely.
func (ops Ops) IsValid(length int) bool {
	for i, u := range ops {
		if u.Op == OpHardClip && i != 0 && i != len(ops)-1 {
			return false
		}
		if u.Op == OpSoftClip && i != 0 && i != len(ops)-1 {
			if ops[i-1].Op != OpHardClip && ops[i+1].Op != OpHardClip {
				return false
			}
		}
	}
	_, query := ops.Lengths()
	return query == length
}
