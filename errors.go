// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import "errors"

var (
	// ErrTruncated indicates that the compressed stream ended inside a
	// token.
	ErrTruncated = errors.New("lzss: truncated stream")
	// ErrClosed is returned by Write after the writer has been closed.
	ErrClosed = errors.New("lzss: writer closed")
)
