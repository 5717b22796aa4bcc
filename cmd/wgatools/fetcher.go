// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli/v2"

	"github.com/wjwei-handsome/wgatools/align"
)

// pairFetcher presents the target and query FASTA fetchers as a single
// align.Fetcher: converters call FetchSeq with a record's target or query
// name without saying which side it is, so pairFetcher tries the target
// file first and falls back to the query file on a miss.
type pairFetcher struct {
	target *align.FastaFetcher
	query  *align.FastaFetcher
}

func (p pairFetcher) FetchSeq(name string, start, end int) ([]byte, error) {
	if seq, err := p.target.FetchSeq(name, start, end); err == nil {
		return seq, nil
	}
	return p.query.FetchSeq(name, start, end)
}

// withTwoFetchers opens the -g/-q FASTA files declared by targetFastaFlag
// and queryFastaFlag, closes them on return, and hands the command's
// action a pairFetcher. fn also receives the raw flag values for
// commands that need them directly.
func withTwoFetchers(fn func(c *cli.Context, targetPath, queryPath string, fetcher pairFetcher) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		targetPath := c.String("target-fasta")
		queryPath := c.String("query-fasta")

		tf, err := openFetcher(targetPath)
		if err != nil {
			return err
		}
		defer tf.Close()
		qf, err := openFetcher(queryPath)
		if err != nil {
			return err
		}
		defer qf.Close()

		pf := pairFetcher{target: tf, query: qf}
		return fn(c, targetPath, queryPath, pf)
	}
}
