// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ulikunitz/lzss/internal/xlog"
)

// decoder interprets the token stream. It uses its own window but no match
// index. Decoded bytes are appended to out.
type decoder struct {
	br     *bitReader
	win    window
	head   pos
	compat bool
	// staging area for match copies
	stage [MaxMatchLen]byte
	out   []byte
	stats Stats
}

// newDecoder creates a decoder reading the token stream from r.
func newDecoder(r io.ByteReader, compat bool) *decoder {
	return &decoder{
		br:     newBitReader(r, compat),
		compat: compat,
	}
}

// errInvalidLength indicates a match token with a length below MinMatchLen.
var errInvalidLength = errors.New("lzss: invalid match length")

// endOfToken handles the end of the stream inside a token. The flag bit is
// given as flag, v contains the payload bits read and mark the number of
// bytes loaded after reading the flag bit. Only a match flag followed by
// zero bits from the same byte is the padding of the final byte.
func (d *decoder) endOfToken(err error, flag uint32, v uint32, mark int64,
) error {
	if err != io.EOF && err != errPartialBits {
		return err
	}
	if d.compat {
		return io.EOF
	}
	if flag == 0 && v == 0 && d.br.n == mark {
		return io.EOF
	}
	return ErrTruncated
}

// readToken reads the next token from the stream. It returns io.EOF at the
// regular end of the stream.
func (d *decoder) readToken() (t token, err error) {
	flag, _, err := d.br.readBits(1)
	if err != nil {
		return nil, err
	}
	mark := d.br.n
	if flag == 1 {
		c, _, err := d.br.readBits(8)
		if err != nil {
			return nil, d.endOfToken(err, flag, c, mark)
		}
		return lit{b: byte(c)}, nil
	}
	off, k, err := d.br.readBits(offsetBits)
	if err != nil {
		return nil, d.endOfToken(err, flag, off, mark)
	}
	if k < offsetBits {
		// compat mode: the length can't be read anymore
		return nil, io.EOF
	}
	n, _, err := d.br.readBits(lengthBits)
	if err != nil {
		return nil, d.endOfToken(err, flag, off|n, mark)
	}
	m := match{off: pos(off), n: int(n)}
	if m.n < MinMatchLen && !d.compat {
		return nil, fmt.Errorf("%w %d at offset %d",
			errInvalidLength, m.n, m.off)
	}
	return m, nil
}

// put appends c to the output and writes it into the window.
func (d *decoder) put(c byte) {
	d.out = append(d.out, c)
	d.win.write(d.head, c)
	d.head = d.head.next()
}

// apply executes the token. The bytes of a match are staged before they
// are written into the window, because the source range may overlap the
// window head.
func (d *decoder) apply(t token) {
	switch t := t.(type) {
	case lit:
		d.put(t.b)
	case match:
		s := d.stage[:t.n]
		for i := range s {
			s[i] = d.win.read(wrap(int(t.off) + i))
		}
		for _, c := range s {
			d.put(c)
		}
	default:
		panic("unexpected token type")
	}
	xlog.Printf(debug, "%s", t)
	d.stats.add(t)
}

// Stats returns the statistics for the tokens decoded so far.
func (d *decoder) Stats() Stats {
	s := d.stats
	s.Compressed = d.br.n
	return s
}

// Decode decompresses the token stream from src and writes the data to dst.
// The context is checked before every token. If cfg is nil the default
// configuration is used.
func Decode(ctx context.Context, dst io.Writer, src io.Reader,
	cfg *ReaderConfig) (stats Stats, err error) {
	if dst == nil {
		return stats, errNilWriter
	}
	if src == nil {
		return stats, errNilReader
	}
	var c ReaderConfig
	if cfg != nil {
		c = *cfg
	}
	if err = c.Verify(); err != nil {
		return stats, err
	}
	bw := bufio.NewWriterSize(dst, c.BufferSize)
	d := newDecoder(bufio.NewReaderSize(src, c.BufferSize), c.Compat)
	d.out = make([]byte, 0, c.BufferSize+MaxMatchLen)
	var t token
	for {
		if err = ctx.Err(); err != nil {
			return d.Stats(), err
		}
		if t, err = d.readToken(); err != nil {
			if err == io.EOF {
				break
			}
			return d.Stats(), err
		}
		d.apply(t)
		if len(d.out) >= c.BufferSize {
			if _, err = bw.Write(d.out); err != nil {
				return d.Stats(), err
			}
			d.out = d.out[:0]
		}
	}
	if _, err = bw.Write(d.out); err != nil {
		return d.Stats(), err
	}
	d.out = d.out[:0]
	return d.Stats(), bw.Flush()
}
