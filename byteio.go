// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"errors"
	"io"
)

// byteWriter implements a ByteWriter on top of a Writer.
type byteWriter struct {
	w   io.Writer
	buf [1]byte
}

// WriteByte writes a byte using the standard writer. Note that the
// function is not thread-safe.
func (bw *byteWriter) WriteByte(c byte) error {
	bw.buf[0] = c
	_, err := bw.w.Write(bw.buf[:])
	return err
}

// asByteWriter converts a Writer to a ByteWriter. If the Writer doesn't
// support the ByteWriter interface directly a non-thread-safe adapter is
// returned.
func asByteWriter(w io.Writer) io.ByteWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}
	return &byteWriter{w: w}
}

// errNilWriter and errNilReader are returned for nil arguments.
var (
	errNilWriter = errors.New("lzss: writer is nil")
	errNilReader = errors.New("lzss: reader is nil")
)
