// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package caller implements the variant caller: a chunked column-by-
// column walk of an aligned pair emitting VCF records for SNV/INS/DEL/INV
// (spec §4.7), grounded on original_source's caller.rs group-by-category
// walk, rebuilt around the shared cigar kernel's ColumnCat classification
// so MAF and PAF calling share one core.
package caller

import "fmt"

// Variant is one emitted VCF data line (spec §4.7's fixed header: INFO
// SVLEN/SVTYPE/END/INV_NEST, FORMAT GT/QI).
type Variant struct {
	Chrom string
	Pos   uint64 // 1-based
	Ref   string
	Alt   string
	Info  string // pre-joined "K=V;K=V" string, empty for plain SNVs
	QI    string // "qname@qstart@qend@strand", empty when caller omits FORMAT detail
}

// String renders the variant as a tab-separated VCF data line with a
// single sample column.
func (v Variant) String() string {
	info := v.Info
	if info == "" {
		info = "."
	}
	format := "GT"
	sample := "1|1"
	if v.QI != "" {
		format = "GT:QI"
		sample = "1|1:" + v.QI
	}
	return fmt.Sprintf("%s\t%d\t.\t%s\t%s\t.\t.\t%s\t%s\t%s",
		v.Chrom, v.Pos, v.Ref, v.Alt, info, format, sample)
}

// Options configures a calling pass (spec §4.7 and the CLI surface's
// `call` flags).
type Options struct {
	SNP           bool   // emit per-column SNV records for 'X' groups
	SVLenCutoff   uint64 // INS/DEL below this length are not reported
	Sample        string
	BaseChunkSize uint64 // default 1_000_000 (1 Mbp), spec §4.7 "Chunking"
}

// DefaultBaseChunkSize is spec §4.7's default base_chunk_size.
const DefaultBaseChunkSize = 1_000_000
