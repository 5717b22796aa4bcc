// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/urfave/cli/v2"

	"github.com/wjwei-handsome/wgatools/chunk"
	"github.com/wjwei-handsome/wgatools/maf"
)

var chunkCommand = &cli.Command{
	Name:  "chunk",
	Usage: "subdivide MAF blocks into column-coordinate windows (spec §4.6 \"Chunk\")",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "length", Aliases: []string{"l"}, Value: 1_000_000, Usage: "window width in columns"},
	},
	Action: func(c *cli.Context) error {
		in, err := openIn(c)
		if err != nil {
			return err
		}
		defer in.Close()
		out, err := openOut(c)
		if err != nil {
			return err
		}
		defer out.Close()

		rdr, err := maf.NewReader(in)
		if err != nil {
			return err
		}
		w := maf.NewWriter(out, "")
		length := c.Int("length")
		for {
			rec, _, err := rdr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			for _, piece := range chunk.Split(rec, length) {
				if err := w.Write(piece); err != nil {
					return err
				}
			}
		}
		return w.Flush()
	},
}
