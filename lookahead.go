// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

// lookahead is the ring buffer of input bytes that are not yet covered by a
// token. The field n counts the valid bytes.
type lookahead struct {
	data [lookaheadSize]byte
	head int
	n    int
}

// at returns the k-th byte after the head.
func (la *lookahead) at(k int) byte {
	return la.data[(la.head+k)%lookaheadSize]
}

// first returns the byte at the head.
func (la *lookahead) first() byte { return la.data[la.head] }

// push appends c during priming. It must only be called while n <
// lookaheadSize.
func (la *lookahead) push(c byte) {
	la.data[(la.head+la.n)%lookaheadSize] = c
	la.n++
}

// shift replaces the byte at the head by c and advances the head; the
// returned byte is the one that has been displaced.
func (la *lookahead) shift(c byte) byte {
	old := la.data[la.head]
	la.data[la.head] = c
	la.head = (la.head + 1) % lookaheadSize
	return old
}

// drop removes the byte at the head without replacement and returns it.
func (la *lookahead) drop() byte {
	old := la.data[la.head]
	la.head = (la.head + 1) % lookaheadSize
	la.n--
	return old
}
