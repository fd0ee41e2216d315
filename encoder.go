// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/ulikunitz/lzss/internal/xlog"
)

// encoder is the greedy parser. For the byte at the lookahead head it finds
// the longest match in the window, emits a literal or a match token and
// slides the window over the covered bytes.
type encoder struct {
	idx  *matchIndex
	la   lookahead
	head pos
	src  io.ByteReader
	eof  bool
	bw   *bitWriter
	// tokens of the session
	stats Stats
}

// newEncoder creates an encoder reading from src and writing tokens to w.
func newEncoder(w io.ByteWriter, src io.ByteReader) *encoder {
	return &encoder{
		idx: newMatchIndex(),
		src: src,
		bw:  newBitWriter(w),
	}
}

// next reads the next input byte. It returns ok == false after the end of
// input has been reached.
func (e *encoder) next() (c byte, ok bool, err error) {
	if e.eof {
		return 0, false, nil
	}
	c, err = e.src.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			e.eof = true
			return 0, false, nil
		}
		return 0, false, err
	}
	return c, true, nil
}

// fill reads input bytes into the lookahead buffer until it is full or the
// input is exhausted.
func (e *encoder) fill() error {
	for e.la.n < lookaheadSize {
		c, ok, err := e.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		e.la.push(c)
	}
	return nil
}

// findToken selects the token for the lookahead head. Fewer than
// MinMatchLen lookahead bytes always give a literal.
func (e *encoder) findToken() token {
	var n int
	var off pos
	if e.la.n >= MinMatchLen {
		maxLen := e.la.n
		if maxLen > MaxMatchLen {
			maxLen = MaxMatchLen
		}
		n, off = e.idx.findLongestMatch(e.la.first(), &e.la, maxLen)
	}
	if n < MinMatchLen {
		return lit{b: e.la.first()}
	}
	return match{off: off, n: n}
}

// writeToken writes the token to the bit writer.
func (e *encoder) writeToken(t token) error {
	switch t := t.(type) {
	case lit:
		return e.bw.writeLiteral(t.b)
	case match:
		return e.bw.writeMatch(t.off, t.n)
	}
	panic("unexpected token type")
}

// slide moves n bytes from the lookahead buffer into the window and refills
// the lookahead from the input. At the end of input the lookahead shrinks.
func (e *encoder) slide(n int) error {
	for j := 0; j < n; j++ {
		c, ok, err := e.next()
		if err != nil {
			return err
		}
		var old byte
		if ok {
			old = e.la.shift(c)
		} else {
			old = e.la.drop()
		}
		e.idx.replace(e.head, old)
		e.head = e.head.next()
	}
	return nil
}

// step encodes the lookahead head with a single token. The lookahead
// buffer must not be empty.
func (e *encoder) step() error {
	t := e.findToken()
	if err := e.writeToken(t); err != nil {
		return err
	}
	xlog.Printf(debug, "%s", t)
	e.stats.add(t)
	return e.slide(t.Len())
}

// finish encodes all remaining lookahead bytes and writes the final
// partial byte. The input must be exhausted, so that no further bytes can
// be read.
func (e *encoder) finish(compat bool) error {
	if err := e.fill(); err != nil {
		return err
	}
	for e.la.n > 0 {
		if err := e.step(); err != nil {
			return err
		}
	}
	return e.bw.flush(compat && e.stats.Uncompressed > 0)
}

// Stats returns the statistics for the tokens written so far.
func (e *encoder) Stats() Stats {
	s := e.stats
	s.Compressed = e.bw.n
	if e.bw.pending() {
		s.Compressed++
	}
	return s
}

// Encode compresses all data from src and writes the token stream to dst.
// The context is checked before every token. If cfg is nil the default
// configuration is used.
func Encode(ctx context.Context, dst io.Writer, src io.Reader,
	cfg *WriterConfig) (stats Stats, err error) {
	if dst == nil {
		return stats, errNilWriter
	}
	if src == nil {
		return stats, errNilReader
	}
	var c WriterConfig
	if cfg != nil {
		c = *cfg
	}
	if err = c.Verify(); err != nil {
		return stats, err
	}
	bw := bufio.NewWriterSize(dst, c.BufferSize)
	e := newEncoder(bw, bufio.NewReaderSize(src, c.BufferSize))
	if err = e.fill(); err != nil {
		return e.Stats(), err
	}
	for e.la.n > 0 {
		if err = ctx.Err(); err != nil {
			return e.Stats(), err
		}
		if err = e.step(); err != nil {
			return e.Stats(), err
		}
	}
	if err = e.finish(c.Compat); err != nil {
		return e.Stats(), err
	}
	err = bw.Flush()
	return e.Stats(), err
}
