// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/kr/pretty"
)

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"one", []byte("a")},
		{"two", []byte("ab")},
		{"three", []byte("abc")},
		{"zeros", make([]byte, 100)},
		{"fox", []byte(strings.Repeat(
			"The quick brown fox jumps over the lazy dog. ", 20))},
		{"text", randomText(rng, 50000)},
		{"random", randomBytes(rng, 10000)},
		{"window+1", randomText(rng, WindowSize+1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			testRoundTrip(t, tc.data)
		})
	}
}

func TestShortInputLiterals(t *testing.T) {
	for _, s := range []string{"", "x", "xy"} {
		stream := encodeBytes(t, []byte(s), nil)
		tokens := readTokens(t, stream)
		if len(tokens) != len(s) {
			t.Fatalf("%q: got %d tokens; want %d",
				s, len(tokens), len(s))
		}
		for i, tok := range tokens {
			l, ok := tok.(lit)
			if !ok || l.b != s[i] {
				t.Fatalf("%q: token %d is %s; want lit %q",
					s, i, tok, s[i])
			}
		}
	}
}

func TestTokenValidity(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	data := randomText(rng, 3*WindowSize)
	data = append(data, bytes.Repeat([]byte{0}, 300)...)
	stream := encodeBytes(t, data, nil)
	var n int
	for _, tok := range readTokens(t, stream) {
		if m, ok := tok.(match); ok {
			if err := m.verify(); err != nil {
				t.Fatalf("token %s: %s", m, err)
			}
		}
		n += tok.Len()
	}
	if n != len(data) {
		t.Fatalf("tokens cover %d bytes; want %d", n, len(data))
	}
}

func TestRepeatedByte(t *testing.T) {
	data := bytes.Repeat([]byte{0x41}, 5000)
	stream := testRoundTrip(t, data)
	tokens := readTokens(t, stream)
	for i, tok := range tokens[:3] {
		if _, ok := tok.(lit); !ok {
			t.Fatalf("token %d is %s; want literal", i, tok)
		}
	}
	full := 0
	for i, tok := range tokens[3:] {
		m, ok := tok.(match)
		if !ok {
			t.Fatalf("token %d is %s; want match", i+3, tok)
		}
		if m.n == MaxMatchLen {
			full++
		}
	}
	if full < 300 {
		t.Fatalf("%d matches of length %d; want at least 300",
			full, MaxMatchLen)
	}
	if len(stream) > 800 {
		t.Fatalf("compressed size %d; want at most 800", len(stream))
	}
}

func TestRandomDataBound(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		data := randomBytes(rng, 20)
		stream := testRoundTrip(t, data)
		if max := (len(data)*9 + 7) / 8; len(stream) > max {
			t.Fatalf("compressed size %d exceeds %d", len(stream), max)
		}
	}
}

func TestMatchAcrossWindowEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	const pattern = "PQRSTUVW"
	high := func(n int) []byte {
		p := make([]byte, n)
		for i := range p {
			p[i] = byte(0x80 + rng.Intn(0x80))
		}
		return p
	}
	data := high(WindowSize - 3)
	data = append(data, pattern...)
	data = append(data, high(100)...)
	data = append(data, pattern...)
	stream := testRoundTrip(t, data)
	wrapped := false
	for _, tok := range readTokens(t, stream) {
		if m, ok := tok.(match); ok && int(m.off)+m.n > WindowSize {
			wrapped = true
		}
	}
	if !wrapped {
		t.Fatalf("no match crosses the end of the window")
	}
}

func TestEncodeStats(t *testing.T) {
	data := bytes.Repeat([]byte("abc"), 10)
	buf := new(bytes.Buffer)
	stats, err := Encode(context.Background(), buf,
		bytes.NewReader(data), nil)
	if err != nil {
		t.Fatalf("Encode error %s", err)
	}
	// 3 literals and matches of 3, 6, 12 and 6 bytes
	want := Stats{
		Literals:     3,
		Matches:      4,
		MatchBytes:   27,
		Uncompressed: 30,
		Compressed:   int64(buf.Len()),
	}
	if stats != want {
		t.Fatalf("stats differ: %v", pretty.Diff(stats, want))
	}
	if r := stats.Ratio(); !(0 < r && r < 1) {
		t.Fatalf("ratio %g out of range", r)
	}
}

func TestEncodeCompat(t *testing.T) {
	data := []byte("abcdefgh")
	plain := encodeBytes(t, data, nil)
	compat := encodeBytes(t, data, &WriterConfig{Compat: true})
	if len(plain) != 9 {
		t.Fatalf("len(plain) is %d; want %d", len(plain), 9)
	}
	if len(compat) != 10 || compat[9] != 0 {
		t.Fatalf("compat stream % x; want extra zero byte", compat)
	}
	for _, stream := range [][]byte{plain, compat} {
		got, err := decodeBytes(stream, nil)
		if err != nil {
			t.Fatalf("Decode error %s", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("decoded %q; want %q", got, data)
		}
	}
	if s := encodeBytes(t, nil, &WriterConfig{Compat: true}); len(s) != 0 {
		t.Fatalf("compat stream for empty input has %d bytes", len(s))
	}
}

func TestEncodeErrors(t *testing.T) {
	errRead := errors.New("read failed")
	_, err := Encode(context.Background(), new(bytes.Buffer),
		iotest.ErrReader(errRead), nil)
	if err != errRead {
		t.Fatalf("Encode with failing reader returned %v; want %v",
			err, errRead)
	}

	data := randomText(rand.New(rand.NewSource(7)), 1000)
	_, err = Encode(context.Background(), &failWriter{n: 10},
		bytes.NewReader(data), &WriterConfig{BufferSize: 16})
	if err != errWrite {
		t.Fatalf("Encode with failing writer returned %v; want %v",
			err, errWrite)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Encode(ctx, new(bytes.Buffer), bytes.NewReader(data), nil)
	if err != context.Canceled {
		t.Fatalf("Encode with canceled context returned %v", err)
	}

	_, err = Encode(context.Background(), new(bytes.Buffer),
		bytes.NewReader(data), &WriterConfig{BufferSize: 1})
	if err == nil {
		t.Fatalf("Encode accepted BufferSize 1")
	}
}

func TestCompressedSize(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	data := randomText(rng, 10000)
	stream := encodeBytes(t, data, nil)
	bits := 0
	for _, tok := range readTokens(t, stream) {
		bits += tok.bits()
	}
	if n := (bits + 7) / 8; n != len(stream) {
		t.Fatalf("stream has %d bytes; tokens require %d", len(stream), n)
	}
}
