// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"bufio"
	"io"

	"github.com/ulikunitz/lz"
)

// distance returns the backward distance in [1,WindowSize] from the window
// head to the absolute position off.
func distance(head, off pos) int {
	return (int(head)-int(off)+WindowSize-1)%WindowSize + 1
}

// appendSeqs converts the match m found at the window head into LZ77
// sequences. A match whose source range reaches the window head copies the
// oldest window bytes after the newest ones, which requires a second
// sequence with a distance beyond the window size.
func appendSeqs(seqs []lz.Seq, litLen uint32, head pos, m match) []lz.Seq {
	d := distance(head, m.off)
	if d >= m.n {
		return append(seqs, lz.Seq{
			LitLen:   litLen,
			MatchLen: uint32(m.n),
			Offset:   uint32(d),
			Aux:      uint32(m.off),
		})
	}
	return append(seqs,
		lz.Seq{
			LitLen:   litLen,
			MatchLen: uint32(d),
			Offset:   uint32(d),
			Aux:      uint32(m.off),
		},
		lz.Seq{
			MatchLen: uint32(m.n - d),
			Offset:   uint32(WindowSize + d),
			Aux:      uint32(head),
		})
}

// ReadBlock decodes the complete token stream from r and returns it as a
// block of LZ77 sequences. The literal bytes are collected in the Literals
// field; literals following the last match are not covered by a sequence.
// The Offset field of a sequence is the backward distance. The data has to
// be treated as preceded by WindowSize zero bytes, the initial content of
// the window, since matches may refer to it. The Aux field carries the
// absolute window position of the match source.
//
// A nil configuration selects the defaults.
func ReadBlock(r io.Reader, cfg *ReaderConfig) (*lz.Block, error) {
	if r == nil {
		return nil, errNilReader
	}
	var c ReaderConfig
	if cfg != nil {
		c = *cfg
	}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	d := newDecoder(bufio.NewReaderSize(r, c.BufferSize), c.Compat)
	blk := new(lz.Block)
	var litLen uint32
	for {
		head := d.head
		t, err := d.readToken()
		if err != nil {
			if err == io.EOF {
				return blk, nil
			}
			return nil, err
		}
		switch t := t.(type) {
		case lit:
			blk.Literals = append(blk.Literals, t.b)
			litLen++
		case match:
			blk.Sequences = appendSeqs(blk.Sequences, litLen, head, t)
			litLen = 0
		}
		d.apply(t)
		d.out = d.out[:0]
	}
}
