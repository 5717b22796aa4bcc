// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paf

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

const sampleLine = "query1\t100\t10\t50\t+\ttarget1\t200\t20\t60\t38\t40\t60\tcg:Z:38M2I\ttp:A:P\n"

func (s *S) TestReaderParsesLine(c *check.C) {
	r := NewReader(strings.NewReader(sampleLine))
	rec, err := r.Next()
	c.Assert(err, check.IsNil)
	c.Check(rec.QueryName, check.Equals, "query1")
	c.Check(rec.TargetName, check.Equals, "target1")
	c.Check(rec.Strand, check.Equals, align.Positive)
	c.Check(rec.Matches, check.Equals, uint64(38))
	c.Check(rec.BlockLen, check.Equals, uint64(40))
	c.Check(rec.MapQ, check.Equals, uint8(60))
	c.Assert(rec.Tags, check.HasLen, 2)

	_, err = r.Next()
	c.Check(err, check.Equals, io.EOF)
}

func (s *S) TestReaderSkipsCommentsAndBlanks(c *check.C) {
	in := "# a comment\n\n" + sampleLine
	r := NewReader(strings.NewReader(in))
	rec, err := r.Next()
	c.Assert(err, check.IsNil)
	c.Check(rec.QueryName, check.Equals, "query1")
}

func (s *S) TestWriterRoundTrip(c *check.C) {
	r := NewReader(strings.NewReader(sampleLine))
	rec, err := r.Next()
	c.Assert(err, check.IsNil)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	c.Assert(w.Write(rec), check.IsNil)
	c.Assert(w.Flush(), check.IsNil)

	r2 := NewReader(&buf)
	rec2, err := r2.Next()
	c.Assert(err, check.IsNil)
	c.Check(rec2.QueryName, check.Equals, rec.QueryName)
	c.Check(rec2.TargetStart, check.Equals, rec.TargetStart)
	c.Check(rec2.Tags, check.HasLen, len(rec.Tags))
}
