// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/werr"
)

// MAFToSAM is a stub, matching the scaffold-only maf2sam found in
// original_source: the SAM/BAM emitter's real contract is unspecified
// (spec §1 Out of scope), so this writes a fixed three-sequence header
// and one illustrative unmapped record derived from the first block's
// target name rather than a general MAF→SAM serializer.
func MAFToSAM(w io.Writer, first maf.Record) error {
	bw := bufio.NewWriter(w)
	header := "@HD\tVN:1.6\tSO:unsorted\n" +
		"@SQ\tSN:sq0\tLN:8\n" +
		"@SQ\tSN:sq1\tLN:13\n" +
		"@SQ\tSN:sq2\tLN:21\n" +
		"@PG\tID:wgatools\tPN:wgatools\n" +
		"@CO\tan example SAM written by wgatools maf2sam\n"
	if _, err := bw.WriteString(header); err != nil {
		return werr.Wrap(werr.KindIO, err, "writing sam header")
	}

	name := "sq2"
	if len(first.SLines) > 0 {
		name = first.Target().Name
	}
	if _, err := fmt.Fprintf(bw, "%s\t4\t*\t0\t0\t*\t*\t0\t0\t*\t*\n", name); err != nil {
		return werr.Wrap(werr.KindIO, err, "writing sam record")
	}
	if err := bw.Flush(); err != nil {
		return werr.Wrap(werr.KindIO, err, "flushing sam writer")
	}
	return nil
}
