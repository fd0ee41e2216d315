// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

// Stats collects the token counts and stream sizes of a session.
type Stats struct {
	// number of literal tokens
	Literals int64
	// number of match tokens
	Matches int64
	// uncompressed bytes covered by match tokens
	MatchBytes int64
	// uncompressed bytes
	Uncompressed int64
	// compressed bytes, including the final partial byte
	Compressed int64
}

// add accounts for the token t.
func (s *Stats) add(t token) {
	switch t := t.(type) {
	case lit:
		s.Literals++
	case match:
		s.Matches++
		s.MatchBytes += int64(t.n)
	}
	s.Uncompressed += int64(t.Len())
}

// Ratio returns the compressed size divided by the uncompressed size. It
// returns 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.Uncompressed == 0 {
		return 0
	}
	return float64(s.Compressed) / float64(s.Uncompressed)
}
