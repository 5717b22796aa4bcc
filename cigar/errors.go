// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import "github.com/wjwei-handsome/wgatools/werr"

func errLengthMismatch(t, q int) error {
	return werr.New(werr.KindCigarOpInvalid, "gapped target/query length mismatch: %d vs %d", t, q)
}

func errShortSequence() error {
	return werr.New(werr.KindCigarOpInvalid, "cigar consumes more bases than the supplied sequence provides")
}
