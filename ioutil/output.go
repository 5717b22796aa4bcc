// Copyright ©2024 The wgatools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioutil

import (
	"bufio"
	"io"
	"os"
	"strings"

	"compress/gzip"

	dbzip2 "github.com/dsnet/compress/bzip2"
	"github.com/ulikunitz/xz"

	"github.com/wjwei-handsome/wgatools/werr"
)

const compressionLevel = 6

// OpenOutput opens path ("-" for stdout) for writing, guarded by
// FileReWrite unless rewrite is true, and inserts the compressing writer
// matching the path's .gz/.bz2/.xz extension ahead of a buffered writer
// (spec §6 "Output opens a path or stdout...").
func OpenOutput(path string, rewrite bool) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		return &writeCloser{Writer: bufio.NewWriterSize(os.Stdout, bufSize)}, nil
	}

	if !rewrite {
		if _, err := os.Stat(path); err == nil {
			return nil, werr.New(werr.KindFileReWrite, "%s", path).WithContext(path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, werr.Wrap(werr.KindIO, err, "creating %s", path)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, _ := gzip.NewWriterLevel(f, compressionLevel)
		return &writeCloser{Writer: bufio.NewWriterSize(gz, bufSize), inner: gz, file: f}, nil
	case strings.HasSuffix(path, ".bz2"):
		bz, err := dbzip2.NewWriter(f, &dbzip2.WriterConfig{Level: compressionLevel})
		if err != nil {
			f.Close()
			return nil, werr.Wrap(werr.KindIO, err, "opening bzip2 writer for %s", path)
		}
		return &writeCloser{Writer: bufio.NewWriterSize(bz, bufSize), inner: bz, file: f}, nil
	case strings.HasSuffix(path, ".xz"):
		xzw, err := xz.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, werr.Wrap(werr.KindIO, err, "opening xz writer for %s", path)
		}
		return &writeCloser{Writer: bufio.NewWriterSize(xzw, bufSize), inner: xzw, file: f}, nil
	default:
		return &writeCloser{Writer: bufio.NewWriterSize(f, bufSize), file: f}, nil
	}
}

// writeCloser flushes its buffered writer and closes the compressing and
// underlying file writers, in that order, on Close.
type writeCloser struct {
	*bufio.Writer
	inner io.Closer // the compressing writer, if any
	file  io.Closer // the underlying *os.File, nil for stdout
}

func (w *writeCloser) Close() error {
	if err := w.Writer.Flush(); err != nil {
		return werr.Wrap(werr.KindIO, err, "flushing output")
	}
	if w.inner != nil {
		if err := w.inner.Close(); err != nil {
			return werr.Wrap(werr.KindIO, err, "closing compressed stream")
		}
	}
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return werr.Wrap(werr.KindIO, err, "closing output file")
		}
	}
	return nil
}
