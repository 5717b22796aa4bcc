// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ioutil implements the I/O layer spec §1/§6 treats as ambient
// plumbing around every reader and writer in the toolkit: compression
// auto-detection by magic bytes, buffered wrapping, the overwrite guard,
// and stdin TTY discipline.
package ioutil

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/wjwei-handsome/wgatools/werr"
)

const bufSize = 32 * 1024

var (
	gzipMagic  = []byte{0x1F, 0x8B, 0x08}
	bzip2Magic = []byte{0x42, 0x5A, 0x68}
	xzMagic    = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
)

// OpenInput opens path ("-" for stdin), peeks its first 6 bytes, and
// wraps it in the matching decompressing reader, falling back to plain
// bytes; the result is always wrapped in a 32 KiB buffered reader (spec
// §6 "Input opens a path or stdin...").
func OpenInput(path string) (io.ReadCloser, error) {
	var f io.ReadCloser
	if path == "-" || path == "" {
		if err := EmptyStdin(os.Stdin); err != nil {
			return nil, err
		}
		f = io.NopCloser(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, werr.Wrap(werr.KindIO, err, "opening %s", path)
		}
		f = file
	}

	br := bufio.NewReaderSize(f, bufSize)
	head, _ := br.Peek(6)

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, werr.Wrap(werr.KindIO, err, "opening gzip stream %s", path)
		}
		return &readCloser{Reader: bufio.NewReaderSize(gz, bufSize), closers: []io.Closer{gz, f}}, nil
	case bytes.HasPrefix(head, bzip2Magic):
		return &readCloser{Reader: bufio.NewReaderSize(bzip2.NewReader(br), bufSize), closers: []io.Closer{f}}, nil
	case bytes.HasPrefix(head, xzMagic):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, werr.Wrap(werr.KindIO, err, "opening xz stream %s", path)
		}
		return &readCloser{Reader: bufio.NewReaderSize(xr, bufSize), closers: []io.Closer{f}}, nil
	default:
		return &readCloser{Reader: br, closers: []io.Closer{f}}, nil
	}
}

// readCloser pairs a buffered Reader with the chain of underlying
// Closers it must release, innermost first.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// EmptyStdin fails with EmptyStdin if f is a terminal with no piped data
// (spec §6 "stdin discipline").
func EmptyStdin(f *os.File) error {
	stat, err := f.Stat()
	if err != nil {
		return werr.Wrap(werr.KindIO, err, "statting stdin")
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return werr.Sentinel(werr.KindEmptyStdin)
	}
	return nil
}
