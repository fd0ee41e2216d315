// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

// Parameters of the compressed format. A literal token uses 1+8 bits, a
// match token 1+offsetBits+lengthBits bits.
const (
	// WindowSize is the capacity of the history window.
	WindowSize = 1 << offsetBits
	// MinMatchLen is the shortest match that is emitted. Shorter
	// matches are cheaper as literals.
	MinMatchLen = 3
	// MaxMatchLen is the longest match the 4-bit length field can
	// express.
	MaxMatchLen = 1<<lengthBits - 1

	offsetBits = 12
	lengthBits = 4

	// lookaheadSize is the number of input bytes buffered ahead of the
	// window head.
	lookaheadSize = MaxMatchLen
)
