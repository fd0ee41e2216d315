// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import "errors"

// defaultBufferSize is the size of the buffers used by Encode and Decode.
const defaultBufferSize = 32 << 10

// minBufferSize is the smallest supported buffer size.
const minBufferSize = 16

// WriterConfig describes the parameters for compression.
type WriterConfig struct {
	// Compat writes the bit buffer at the end of a non-empty stream even
	// if it is empty, which adds a zero byte to streams ending on a byte
	// boundary. The historic compressor behaves this way. Decoders
	// ignore the extra byte.
	Compat bool

	// BufferSize is the size of the input and output buffers used by
	// Encode. (default: 32 KiB)
	BufferSize int
}

// ApplyDefaults replaces zero values by their defaults.
func (c *WriterConfig) ApplyDefaults() {
	if c.BufferSize == 0 {
		c.BufferSize = defaultBufferSize
	}
}

// Verify checks the configuration for errors. Zero values will be
// replaced by default values.
func (c *WriterConfig) Verify() error {
	if c == nil {
		return errors.New("lzss: writer configuration is nil")
	}
	c.ApplyDefaults()
	if c.BufferSize < minBufferSize {
		return errors.New("lzss: BufferSize out of range")
	}
	return nil
}

// ReaderConfig describes the parameters for decompression.
type ReaderConfig struct {
	// Compat reproduces the historic decompressor: a stream ending inside
	// a token stops the decoding silently, and bits read before the end
	// of the stream are used as a partial value. Without Compat such
	// streams return ErrTruncated, unless the missing bits are the zero
	// padding of the final byte.
	Compat bool

	// BufferSize is the size of the input and output buffers used by
	// Decode and of the input buffer of a Reader whose source is not an
	// io.ByteReader. (default: 32 KiB)
	BufferSize int
}

// ApplyDefaults replaces zero values by their defaults.
func (c *ReaderConfig) ApplyDefaults() {
	if c.BufferSize == 0 {
		c.BufferSize = defaultBufferSize
	}
}

// Verify checks the configuration for errors. Zero values will be
// replaced by default values.
func (c *ReaderConfig) Verify() error {
	if c == nil {
		return errors.New("lzss: reader configuration is nil")
	}
	c.ApplyDefaults()
	if c.BufferSize < minBufferSize {
		return errors.New("lzss: BufferSize out of range")
	}
	return nil
}
