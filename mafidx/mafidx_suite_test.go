// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mafidx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wjwei-handsome/wgatools/maf"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const sample = `#maf version=1.6
a score=100
s	chr1	0	10	+	100	ACGTACGTAC

a score=50
s	chr1	20	10	+	100	TTTTTTTTTT

`

func (s *S) TestBuildAndExtract(c *check.C) {
	r, err := maf.NewReader(strings.NewReader(sample))
	c.Assert(err, check.IsNil)
	idx, err := Build(r)
	c.Assert(err, check.IsNil)
	c.Assert(idx.Items["chr1"], check.HasLen, 2)

	rs := bytes.NewReader([]byte(sample))
	var got []maf.Record
	failed, err := Extract(idx, rs, []Region{{Name: "chr1", Start: 0, End: 10}}, func(rec maf.Record) error {
		got = append(got, rec)
		return nil
	})
	c.Assert(err, check.IsNil)
	c.Check(failed, check.HasLen, 0)
	c.Assert(got, check.HasLen, 1)
	c.Check(got[0].Score, check.Equals, int64(100))
}

func (s *S) TestExtractMissingSequence(c *check.C) {
	idx := &Index{Items: map[string][]Interval{}}
	rs := bytes.NewReader(nil)
	failed, err := Extract(idx, rs, []Region{{Name: "chrX", Start: 0, End: 10}}, func(maf.Record) error { return nil })
	c.Assert(err, check.IsNil)
	c.Assert(failed, check.HasLen, 1)
	c.Check(failed[0].Reason, check.Equals, "sequence not found")
}

func (s *S) TestEncodeDecodeRoundTrip(c *check.C) {
	idx := &Index{Items: map[string][]Interval{
		"chr1": {{Start: 0, End: 10, Offset: 5, Ord: 0}},
	}}
	var buf bytes.Buffer
	c.Assert(Encode(&buf, idx), check.IsNil)
	back, err := Decode(&buf)
	c.Assert(err, check.IsNil)
	c.Assert(back.Items["chr1"], check.HasLen, 1)
	c.Check(back.Items["chr1"][0].Offset, check.Equals, int64(5))
}
