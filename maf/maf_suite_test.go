// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maf

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

const sample = `##maf version=1.6
a score=100
s	chr1	0	10	+	100	ACGT--ACGT
s	chr2	5	8	+	50	ACGTACAC--

a score=50
s	chr1	10	5	+	100	ACGT-
s	chr2	20	5	-	50	ACGTA
`

func (s *S) TestReaderRoundTrip(c *check.C) {
	r, err := NewReader(strings.NewReader(sample))
	c.Assert(err, check.IsNil)
	c.Check(r.Header, check.Equals, "##maf version=1.6")

	var recs []Record
	var offsets []int64
	for {
		rec, off, err := r.Next()
		if err == io.EOF {
			break
		}
		c.Assert(err, check.IsNil)
		recs = append(recs, rec)
		offsets = append(offsets, off)
	}
	c.Assert(recs, check.HasLen, 2)
	c.Check(recs[0].Score, check.Equals, int64(100))
	c.Check(recs[1].Score, check.Equals, int64(50))
	c.Assert(recs[0].SLines, check.HasLen, 2)
	c.Check(recs[0].SLines[0].Name, check.Equals, "chr1")
	c.Check(recs[0].SLines[0].Seq, check.Equals, "ACGT--ACGT")
	c.Check(recs[0].SLines[1].Strand, check.Equals, align.Positive)
	c.Check(offsets[0] != offsets[1], check.Equals, true)
}

func (s *S) TestNewReaderAt(c *check.C) {
	r, err := NewReader(strings.NewReader(sample))
	c.Assert(err, check.IsNil)
	_, _, err = r.Next()
	c.Assert(err, check.IsNil)
	_, secondOffset, err := r.Next()
	c.Assert(err, check.IsNil)

	seeker := bytes.NewReader([]byte(sample))
	at, err := NewReaderAt(seeker, secondOffset)
	c.Assert(err, check.IsNil)
	rec, _, err := at.Next()
	c.Assert(err, check.IsNil)
	c.Check(rec.Score, check.Equals, int64(50))
}

func (s *S) TestWriterRoundTrip(c *check.C) {
	rec := Record{Score: 42, SLines: []SLine{
		{Name: "chr1", Start: 0, AlignSize: 4, Strand: align.Positive, Size: 100, Seq: "ACGT"},
	}}
	var buf bytes.Buffer
	w := NewWriter(&buf, "")
	c.Assert(w.Write(rec), check.IsNil)
	c.Assert(w.Flush(), check.IsNil)

	r, err := NewReader(&buf)
	c.Assert(err, check.IsNil)
	c.Check(r.Header, check.Equals, DefaultHeader)
	got, _, err := r.Next()
	c.Assert(err, check.IsNil)
	c.Check(got.Score, check.Equals, int64(42))
	c.Check(got.SLines[0].Name, check.Equals, "chr1")
}
