// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"bytes"
	"io"
)

// Writer compresses the data written to it. The compressed stream has no
// end marker, so the writer must be closed to encode the last bytes.
//
// For high performance use a buffered writer as underlying writer.
type Writer struct {
	e      *encoder
	in     bytes.Buffer
	cfg    WriterConfig
	closed bool
}

// NewWriter creates a new writer using the default configuration.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterConfig(w, WriterConfig{})
}

// NewWriterConfig creates a new writer using the given configuration.
func NewWriterConfig(w io.Writer, cfg WriterConfig) (*Writer, error) {
	if w == nil {
		return nil, errNilWriter
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	zw := &Writer{cfg: cfg}
	zw.e = newEncoder(asByteWriter(w), &zw.in)
	return zw, nil
}

// Write buffers p and encodes tokens as long as a full lookahead can be
// kept, which guarantees the same token stream as encoding all data at
// once.
func (zw *Writer) Write(p []byte) (n int, err error) {
	if zw.closed {
		return 0, ErrClosed
	}
	if err = zw.e.bw.err; err != nil {
		return 0, err
	}
	n, _ = zw.in.Write(p)
	for zw.in.Len() >= lookaheadSize {
		if zw.e.la.n < lookaheadSize {
			if err = zw.e.fill(); err != nil {
				return n, err
			}
			continue
		}
		if err = zw.e.step(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Close encodes the buffered data and writes the final partial byte. It
// doesn't close the underlying writer.
func (zw *Writer) Close() error {
	if zw.closed {
		return ErrClosed
	}
	zw.closed = true
	return zw.e.finish(zw.cfg.Compat)
}

// Stats returns the statistics of the data encoded so far.
func (zw *Writer) Stats() Stats { return zw.e.Stats() }
