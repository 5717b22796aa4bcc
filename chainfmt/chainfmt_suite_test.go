// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainfmt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/wjwei-handsome/wgatools/align"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const sample = `chain 5000 chr1 1000 + 100 200 chr2 2000 + 300 400 1
50	2	0
30	0	3
20

chain 3000 chr1 1000 + 0 50 chr2 2000 - 0 50 2
50
`

func (s *S) TestReaderRoundTrip(c *check.C) {
	r := NewReader(strings.NewReader(sample))

	rec, err := r.Next()
	c.Assert(err, check.IsNil)
	c.Check(rec.Score, check.Equals, int64(5000))
	c.Check(rec.TargetName, check.Equals, "chr1")
	c.Check(rec.QueryName, check.Equals, "chr2")
	c.Check(rec.TargetStrand, check.Equals, align.Positive)
	c.Assert(rec.Lines, check.HasLen, 3)
	c.Check(rec.Lines[0].Size, check.Equals, uint64(50))
	c.Check(rec.Lines[0].TargetDiff, check.Equals, uint64(2))
	c.Check(rec.Lines[2].Size, check.Equals, uint64(20))
	c.Check(rec.Lines[2].TargetDiff, check.Equals, uint64(0))

	rec2, err := r.Next()
	c.Assert(err, check.IsNil)
	c.Check(rec2.QueryStrand, check.Equals, align.Negative)
	c.Check(rec2.ID, check.Equals, int64(2))

	_, err = r.Next()
	c.Check(err, check.Equals, io.EOF)
}

func (s *S) TestWriterRoundTrip(c *check.C) {
	r := NewReader(strings.NewReader(sample))
	rec, err := r.Next()
	c.Assert(err, check.IsNil)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	c.Assert(w.Write(rec), check.IsNil)
	c.Assert(w.Flush(), check.IsNil)

	r2 := NewReader(&buf)
	rec2, err := r2.Next()
	c.Assert(err, check.IsNil)
	c.Check(rec2.Score, check.Equals, rec.Score)
	c.Check(rec2.Lines, check.HasLen, len(rec.Lines))
}
