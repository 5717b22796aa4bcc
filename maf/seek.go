// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maf

import (
	"io"

	"github.com/wjwei-handsome/wgatools/werr"
)

// NewReaderAt seeks rs to offset and wraps it in a Reader positioned to
// read exactly one record from there, without consuming a header line —
// used by the range extractor (spec §4.5) to decode a single block at a
// byte offset recorded by a MAF index.
func NewReaderAt(rs io.ReadSeeker, offset int64) (*Reader, error) {
	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return nil, werr.Wrap(werr.KindIO, err, "seeking to offset %d", offset)
	}
	return &Reader{br: newBufReader(rs), offset: offset}, nil
}
