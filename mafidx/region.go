// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mafidx

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/wjwei-handsome/wgatools/werr"
)

// Region is a parsed `name:start-end` extraction target (spec §4.5
// "Extract").
type Region struct {
	Name  string
	Start uint64
	End   uint64
}

var regionPattern = regexp.MustCompile(`^[A-Za-z0-9._@-]+:[0-9]+-[0-9]+$`)

// ParseRegion parses a single region string, failing fast with
// ParseGenomeRegion on a malformed string or start > end.
func ParseRegion(s string) (Region, error) {
	if !regionPattern.MatchString(s) {
		return Region{}, werr.New(werr.KindParseGenomeRegion, "%q", s)
	}
	colon := strings.LastIndexByte(s, ':')
	dash := strings.LastIndexByte(s, '-')
	name := s[:colon]
	start, err := strconv.ParseUint(s[colon+1:dash], 10, 64)
	if err != nil {
		return Region{}, werr.Wrap(werr.KindParseInt, err, "region start")
	}
	end, err := strconv.ParseUint(s[dash+1:], 10, 64)
	if err != nil {
		return Region{}, werr.Wrap(werr.KindParseInt, err, "region end")
	}
	if start > end {
		return Region{}, werr.New(werr.KindParseGenomeRegion, "start %d > end %d", start, end)
	}
	return Region{Name: name, Start: start, End: end}, nil
}

// ParseRegionFile reads one region per line from a TSV/plain region file,
// skipping blank lines.
func ParseRegionFile(r io.Reader) ([]Region, error) {
	var out []Region
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		field := line
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			field = line[:i]
		}
		reg, err := ParseRegion(field)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	if err := sc.Err(); err != nil {
		return nil, werr.Wrap(werr.KindIO, err, "reading region file")
	}
	return out, nil
}
