// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"testing"
)

// words provides the vocabulary for randomText.
var words = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"window", "match", "literal", "token", "offset", "length", "a",
	"compression", "stream", "of", "and", "to", "in", "is", "\n",
}

// randomText returns n bytes of text made from random words.
func randomText(rng *rand.Rand, n int) []byte {
	buf := make([]byte, 0, n+16)
	for len(buf) < n {
		buf = append(buf, words[rng.Intn(len(words))]...)
		buf = append(buf, ' ')
	}
	return buf[:n]
}

// randomBytes returns n random bytes.
func randomBytes(rng *rand.Rand, n int) []byte {
	p := make([]byte, n)
	rng.Read(p)
	return p
}

func encodeBytes(t testing.TB, data []byte, cfg *WriterConfig) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if _, err := Encode(context.Background(), buf, bytes.NewReader(data),
		cfg); err != nil {
		t.Fatalf("Encode error %s", err)
	}
	return buf.Bytes()
}

func decodeBytes(stream []byte, cfg *ReaderConfig) ([]byte, error) {
	buf := new(bytes.Buffer)
	_, err := Decode(context.Background(), buf, bytes.NewReader(stream), cfg)
	return buf.Bytes(), err
}

// readTokens decodes all tokens of the stream.
func readTokens(t testing.TB, stream []byte) []token {
	t.Helper()
	d := newDecoder(bytes.NewReader(stream), false)
	var tokens []token
	for {
		tok, err := d.readToken()
		if err == io.EOF {
			return tokens
		}
		if err != nil {
			t.Fatalf("readToken error %s", err)
		}
		d.apply(tok)
		tokens = append(tokens, tok)
	}
}

// tokenStream encodes the tokens without any encoder logic.
func tokenStream(t testing.TB, tokens ...token) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := newBitWriter(buf)
	for _, tok := range tokens {
		var err error
		switch tok := tok.(type) {
		case lit:
			err = w.writeLiteral(tok.b)
		case match:
			err = w.writeMatch(tok.off, tok.n)
		}
		if err != nil {
			t.Fatalf("write token error %s", err)
		}
	}
	if err := w.flush(false); err != nil {
		t.Fatalf("flush error %s", err)
	}
	return buf.Bytes()
}

func testRoundTrip(t *testing.T, data []byte) []byte {
	t.Helper()
	stream := encodeBytes(t, data, nil)
	got, err := decodeBytes(stream, nil)
	if err != nil {
		t.Fatalf("Decode error %s", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip of %d bytes returned %d different bytes",
			len(data), len(got))
	}
	return stream
}
