// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caller

import (
	"fmt"
	"strings"
)

// Contig is one VCF contig line's content, sourced from the MAF index
// when one is available (spec §4.7 "contigs added from the MAF index").
type Contig struct {
	Name string
	Size uint64
}

// BuildHeader returns the fixed VCF 4.2 header spec §4.7 describes: INFO
// keys SVTYPE/SVLEN/END/INV_NEST, FORMAT keys GT/QI, one sample column,
// and a contig line per entry in contigs (already natural-ordered by the
// caller).
func BuildHeader(sampleName string, contigs []Contig) string {
	if sampleName == "" {
		sampleName = "sample"
	}
	var b strings.Builder
	b.WriteString("##fileformat=VCFv4.2\n")
	b.WriteString(`##INFO=<ID=SVTYPE,Number=1,Type=String,Description="Type of structural variant">` + "\n")
	b.WriteString(`##INFO=<ID=SVLEN,Number=1,Type=Integer,Description="Difference in length between REF and ALT alleles">` + "\n")
	b.WriteString(`##INFO=<ID=END,Number=1,Type=Integer,Description="End position of the variant">` + "\n")
	b.WriteString(`##INFO=<ID=INV_NEST,Number=1,Type=String,Description="Variation nested within an inversion">` + "\n")
	b.WriteString(`##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype">` + "\n")
	b.WriteString(`##FORMAT=<ID=QI,Number=1,Type=String,Description="Query information">` + "\n")
	for _, c := range contigs {
		fmt.Fprintf(&b, "##contig=<ID=%s,length=%d>\n", c.Name, c.Size)
	}
	b.WriteString("#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\t" + sampleName + "\n")
	return b.String()
}
