// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"errors"
	"io"
)

// bitWriter writes single bits MSB first into bytes and hands every
// complete byte to the underlying byte writer. The first write error is
// kept and returned by all later calls.
type bitWriter struct {
	w    io.ByteWriter
	buf  byte
	mask byte
	// number of bytes written
	n   int64
	err error
}

// newBitWriter creates a bit writer with an empty bit buffer.
func newBitWriter(w io.ByteWriter) *bitWriter {
	return &bitWriter{w: w, mask: 0x80}
}

// writeBit appends the lowest bit of b.
func (w *bitWriter) writeBit(b uint32) error {
	if w.err != nil {
		return w.err
	}
	if b&1 != 0 {
		w.buf |= w.mask
	}
	if w.mask >>= 1; w.mask != 0 {
		return nil
	}
	if w.err = w.w.WriteByte(w.buf); w.err != nil {
		return w.err
	}
	w.n++
	w.buf, w.mask = 0, 0x80
	return nil
}

// writeBits writes the low n bits of v, the most significant first.
func (w *bitWriter) writeBits(v uint32, n int) error {
	for i := n - 1; i >= 0; i-- {
		if err := w.writeBit(v >> uint(i)); err != nil {
			return err
		}
	}
	return nil
}

// writeLiteral writes the flag bit 1 followed by the byte c.
func (w *bitWriter) writeLiteral(c byte) error {
	if err := w.writeBit(1); err != nil {
		return err
	}
	return w.writeBits(uint32(c), 8)
}

// writeMatch writes the flag bit 0 followed by the 12-bit offset and the
// 4-bit length.
func (w *bitWriter) writeMatch(off pos, n int) error {
	if err := w.writeBit(0); err != nil {
		return err
	}
	if err := w.writeBits(uint32(off), offsetBits); err != nil {
		return err
	}
	return w.writeBits(uint32(n), lengthBits)
}

// pending reports whether the bit buffer contains bits not written yet.
func (w *bitWriter) pending() bool { return w.mask != 0x80 }

// flush writes a partially filled byte. Unused low bits are zero. If always
// is set the bit buffer is written even if it is empty, which is what the
// historic compressor did.
func (w *bitWriter) flush(always bool) error {
	if w.err != nil {
		return w.err
	}
	if !w.pending() && !always {
		return nil
	}
	if w.err = w.w.WriteByte(w.buf); w.err != nil {
		return w.err
	}
	w.n++
	w.buf, w.mask = 0, 0x80
	return nil
}

// errPartialBits reports that the stream ended after some but not all
// requested bits have been read.
var errPartialBits = errors.New("lzss: stream ended inside a bit field")

// bitReader reads bits MSB first from a byte reader.
type bitReader struct {
	r    io.ByteReader
	c    byte
	mask byte
	// number of bytes loaded
	n int64
	// partial makes readBits return the bits read so far at the end of
	// the stream instead of errPartialBits.
	partial bool
}

// newBitReader creates a bit reader. The bit buffer is empty.
func newBitReader(r io.ByteReader, partial bool) *bitReader {
	return &bitReader{r: r, partial: partial}
}

// readBits reads n bits and returns them as the low bits of v. If the
// stream ends before the first bit has been read io.EOF is returned. If it
// ends after some bits have been read, readBits returns
// errPartialBits together with the bits read, or nil in partial mode.
// Errors of the underlying reader are returned unchanged.
// The number k of bits actually read is always returned.
func (r *bitReader) readBits(n int) (v uint32, k int, err error) {
	for k < n {
		if r.mask == 0 {
			c, err := r.r.ReadByte()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					return v, k, err
				}
				if k == 0 {
					return 0, 0, io.EOF
				}
				if r.partial {
					return v, k, nil
				}
				return v, k, errPartialBits
			}
			r.c, r.mask = c, 0x80
			r.n++
		}
		v <<= 1
		if r.c&r.mask != 0 {
			v |= 1
		}
		r.mask >>= 1
		k++
	}
	return v, k, nil
}
