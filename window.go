// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import "fmt"

// pos is an absolute position in the history window. Values are always in
// the range [0, WindowSize).
type pos uint16

// next returns the position following p, wrapping around at the end of the
// window.
func (p pos) next() pos {
	if p+1 < WindowSize {
		return p + 1
	}
	return 0
}

// wrap maps a non-negative integer to a window position.
func wrap(v int) pos {
	return pos(v % WindowSize)
}

// link is an optional window position. The zero value is noLink.
type link struct {
	p  pos
	ok bool
}

// noLink marks the end of a chain.
var noLink = link{}

// to returns a link pointing to p.
func to(p pos) link { return link{p: p, ok: true} }

// String returns a readable representation of the link.
func (l link) String() string {
	if !l.ok {
		return "nil"
	}
	return fmt.Sprintf("%d", l.p)
}

// window is the cyclic history buffer shared in design by the encoder and
// the decoder. Each session owns its own window. All slots start as zero
// bytes; a slot is never empty, it only becomes stale.
type window struct {
	data [WindowSize]byte
}

// read returns the byte at position p.
func (w *window) read(p pos) byte { return w.data[p] }

// write overwrites the slot at position p.
func (w *window) write(p pos, c byte) { w.data[p] = c }
