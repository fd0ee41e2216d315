// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lzss implements a LZSS compressor and decompressor with a 4096-byte
history window.

The compressed stream is a sequence of tokens without header, magic number
or checksum. Each token starts with a flag bit. A literal (flag 1) carries
an 8-bit byte. A match (flag 0) carries a 12-bit absolute window position
and a 4-bit length in the range [3,15]. All fields are written most
significant bit first; the last byte is padded with zero bits.

The window starts with all bytes set to zero and matches may refer to these
bytes. The encoder is a greedy parser: it always emits the longest match
found for the next input bytes. Matches are found using an index that
chains all window positions holding the same byte value.

Encode and Decode process complete streams; Writer and Reader provide the
io.WriteCloser and io.Reader interfaces. Every call uses its own window, so
sessions can run concurrently.

Inputs shorter than 3 bytes are encoded as literals. The historic compressor
this format stems from discarded them.
*/
package lzss
