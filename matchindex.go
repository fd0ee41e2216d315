// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"errors"
	"fmt"
)

/* The match index keeps, for every byte value, the list of window
 * positions currently holding that value in the order they have been
 * inserted. A longest match search for the lookahead only needs to visit
 * the positions whose byte equals the first lookahead byte.
 */

// matchIndex stores 256 singly linked chains over the window positions.
// Every position is linked into exactly one chain, the one for the byte
// currently stored at that position.
type matchIndex struct {
	win   window
	heads [256]link
	tails [256]link
	next  [WindowSize]link
}

// newMatchIndex returns the index for the all-zero initial window: a single
// chain under value 0 running from position 0 to WindowSize-1. All other
// chains are empty.
func newMatchIndex() *matchIndex {
	m := new(matchIndex)
	for i := 0; i < WindowSize-1; i++ {
		m.next[i] = to(pos(i + 1))
	}
	m.next[WindowSize-1] = noLink
	m.heads[0] = to(0)
	m.tails[0] = to(WindowSize - 1)
	return m
}

// insert appends p to the end of the chain for the byte stored at p.
func (m *matchIndex) insert(p pos) {
	c := m.win.read(p)
	m.next[p] = noLink
	if !m.tails[c].ok {
		m.heads[c] = to(p)
		m.tails[c] = to(p)
		return
	}
	m.next[m.tails[c].p] = to(p)
	m.tails[c] = to(p)
}

// remove unlinks p from the chain for the byte stored at p. The window
// slides in insertion order, so p is normally the head of its chain and
// the scan for the predecessor is not needed.
func (m *matchIndex) remove(p pos) {
	c := m.win.read(p)
	succ := m.next[p]
	m.next[p] = noLink
	h := m.heads[c]
	if !h.ok {
		panic(fmt.Errorf("lzss: position %d not indexed", p))
	}
	if h.p == p {
		m.heads[c] = succ
		if !succ.ok {
			m.tails[c] = noLink
		}
		return
	}
	i := h.p
	for m.next[i] != to(p) {
		l := m.next[i]
		if !l.ok {
			panic(fmt.Errorf("lzss: position %d not in chain %#02x",
				p, c))
		}
		i = l.p
	}
	m.next[i] = succ
	if !succ.ok {
		m.tails[c] = to(i)
	}
}

// replace stores c at position p and moves p into the chain for c.
func (m *matchIndex) replace(p pos, c byte) {
	m.remove(p)
	m.win.write(p, c)
	m.insert(p)
}

// findLongestMatch searches the chain for first for the longest match with
// the lookahead bytes starting at la.head. The byte at the candidate
// position equals first by construction. The search stops at maxLen. For
// equally long matches the oldest candidate wins. An empty chain returns
// n = 0.
func (m *matchIndex) findLongestMatch(first byte, la *lookahead, maxLen int,
) (n int, off pos) {
	for l := m.heads[first]; l.ok; l = m.next[l.p] {
		c := int(l.p)
		k := 1
		for k < maxLen && m.win.read(wrap(c+k)) == la.at(k) {
			k++
		}
		if k > n {
			n, off = k, l.p
			if n >= maxLen {
				break
			}
		}
	}
	return n, off
}

// verify checks the index invariant: every window position appears exactly
// once in exactly one chain, the chain for the byte stored at it, and the
// tails point to the last chain elements.
func (m *matchIndex) verify() error {
	var seen [WindowSize]bool
	count := 0
	for c := 0; c < 256; c++ {
		var last link
		for l := m.heads[c]; l.ok; l = m.next[l.p] {
			if seen[l.p] {
				return fmt.Errorf(
					"lzss: position %d linked twice", l.p)
			}
			seen[l.p] = true
			count++
			if v := m.win.read(l.p); int(v) != c {
				return fmt.Errorf(
					"lzss: position %d holds %#02x but is in chain %#02x",
					l.p, v, c)
			}
			last = l
		}
		if last != m.tails[c] {
			return fmt.Errorf("lzss: tail of chain %#02x is %s; want %s",
				c, m.tails[c], last)
		}
	}
	if count != WindowSize {
		return errors.New("lzss: not all positions are indexed")
	}
	return nil
}
