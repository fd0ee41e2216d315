// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"bufio"
	"io"
)

// Reader decompresses a token stream. The stream ends with the underlying
// reader.
type Reader struct {
	d   *decoder
	off int
	err error
}

// NewReader creates a new reader using the default configuration.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, ReaderConfig{})
}

// NewReaderConfig creates a new reader using the given configuration. A
// source that isn't an io.ByteReader is buffered with cfg.BufferSize
// bytes, so the reader may read beyond the end of the compressed stream.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (*Reader, error) {
	if r == nil {
		return nil, errNilReader
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReaderSize(r, cfg.BufferSize)
	}
	d := newDecoder(br, cfg.Compat)
	d.out = make([]byte, 0, MaxMatchLen)
	return &Reader{d: d}, nil
}

// Read decodes tokens until p is filled or the stream ends.
func (zr *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if zr.off < len(zr.d.out) {
			k := copy(p[n:], zr.d.out[zr.off:])
			n += k
			zr.off += k
			continue
		}
		if zr.err != nil {
			return n, zr.err
		}
		zr.d.out = zr.d.out[:0]
		zr.off = 0
		t, err := zr.d.readToken()
		if err != nil {
			zr.err = err
			continue
		}
		zr.d.apply(t)
	}
	return n, nil
}

// Stats returns the statistics of the data decoded so far.
func (zr *Reader) Stats() Stats { return zr.d.Stats() }
