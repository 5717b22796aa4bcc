// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rename implements the per-SLine name-prefixing operator (spec
// §4.6 "Rename").
package rename

import (
	"github.com/wjwei-handsome/wgatools/maf"
	"github.com/wjwei-handsome/wgatools/werr"
)

// Apply prepends prefixes[i] to the name of rec.SLines[i], positionally
// by SLine order. A cardinality mismatch between len(prefixes) and
// len(rec.SLines) fails with SLineCountNotMatch (spec §4.6: "cardinality
// mismatch → SLineCountNotMatch").
func Apply(rec maf.Record, prefixes []string) (maf.Record, error) {
	if len(prefixes) != len(rec.SLines) {
		return maf.Record{}, werr.New(werr.KindSLineCountNotMatch, "%d prefixes for %d s-lines", len(prefixes), len(rec.SLines))
	}
	out := rec
	out.SLines = make([]maf.SLine, len(rec.SLines))
	for i, s := range rec.SLines {
		s.Name = prefixes[i] + s.Name
		out.SLines[i] = s
	}
	return out, nil
}
