// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import "github.com/wjwei-handsome/wgatools/werr"

// AlignRecord is the capability set shared by MAF, PAF and Chain records
// (spec §3 "AlignRecord capability"), modeled as an interface with a
// DefaultRecord embed so new record types only implement what they need —
// grounded on sam.Record's method-set-over-struct idiom in the teacher,
// generalized here to an interface because, unlike BAM, our three wire
// formats are genuinely distinct Go types rather than one struct.
type AlignRecord interface {
	QueryName() string
	QueryLength() uint64
	QueryStart() uint64
	QueryEnd() uint64
	QueryStrand() Strand

	TargetName() string
	TargetLength() uint64
	TargetStart() uint64
	TargetEnd() uint64
	TargetStrand() Strand

	// TargetAlignSize is the reference footprint of the record.
	TargetAlignSize() uint64

	// CigarString returns the textual CIGAR for this record, or a
	// *werr.Error of KindCigarTagNotFound if none is available.
	CigarString() (string, error)

	Stat() RecStat
}

// DefaultRecord implements AlignRecord with spec's "cheap to widen" empty
// defaults; embed it in a concrete record type and override only the
// methods that differ.
type DefaultRecord struct{}

func (DefaultRecord) QueryName() string       { return "" }
func (DefaultRecord) QueryLength() uint64     { return 0 }
func (DefaultRecord) QueryStart() uint64      { return 0 }
func (DefaultRecord) QueryEnd() uint64        { return 0 }
func (DefaultRecord) QueryStrand() Strand     { return Positive }
func (DefaultRecord) TargetName() string      { return "" }
func (DefaultRecord) TargetLength() uint64    { return 0 }
func (DefaultRecord) TargetStart() uint64     { return 0 }
func (DefaultRecord) TargetEnd() uint64       { return 0 }
func (DefaultRecord) TargetStrand() Strand    { return Positive }
func (DefaultRecord) TargetAlignSize() uint64 { return 0 }
func (DefaultRecord) CigarString() (string, error) {
	return "", werr.New(werr.KindCigarTagNotFound, "no cigar tag on this record")
}
func (DefaultRecord) Stat() RecStat { return RecStat{} }

// Fetcher is the external FASTA random-access interface (spec §6):
// FetchSeq returns the inclusive-coordinate sequence slice for name between
// start and end (0-based, end-inclusive), matching the upstream
// `fetch_seq(name, start, end) -> bytes` contract.
type Fetcher interface {
	FetchSeq(name string, start, end int) ([]byte, error)
}
