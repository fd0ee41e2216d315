// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import "fmt"

// token is the unit of the compressed stream: either a literal or a match.
type token interface {
	// Len returns the number of uncompressed bytes the token covers.
	Len() int
	// bits returns the size of the encoded token in bits.
	bits() int
	fmt.Stringer
}

// lit represents a single byte literal.
type lit struct {
	b byte
}

// Len returns 1 for the single byte literal.
func (l lit) Len() int { return 1 }

func (l lit) bits() int { return 1 + 8 }

// String returns a string representation for the literal.
func (l lit) String() string {
	return fmt.Sprintf("lit(%02x %q)", l.b, l.b)
}

// match represents a copy of n bytes starting at the absolute window
// position off.
type match struct {
	off pos
	n   int
}

// Len returns the length of the match.
func (m match) Len() int { return m.n }

func (m match) bits() int { return 1 + offsetBits + lengthBits }

// String returns a string representation for the match.
func (m match) String() string {
	return fmt.Sprintf("match(%d,%d)", m.off, m.n)
}

// verify checks the offset and length of the match.
func (m match) verify() error {
	if m.off >= WindowSize {
		return fmt.Errorf("lzss: match offset %d out of range", m.off)
	}
	if !(MinMatchLen <= m.n && m.n <= MaxMatchLen) {
		return fmt.Errorf("lzss: match length %d out of range", m.n)
	}
	return nil
}
