// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus loads test corpora and measures the compression achieved
// on them.
package corpus

import (
	"bytes"
	"context"
	"io"
	"io/fs"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pierrec/xxHash/xxHash64"
	"github.com/ulikunitz/lzss"
)

// File is a single corpus file held in memory.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total size of all files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

// Compress encodes every file separately and returns the sum of the
// compressed sizes.
func Compress(ctx context.Context, files []File, cfg lzss.WriterConfig,
) (compressedSize int64, err error) {
	for _, f := range files {
		cw := &countWriter{}
		_, err = lzss.Encode(ctx, cw, bytes.NewReader(f.Data), &cfg)
		compressedSize += cw.n
		if err != nil {
			return compressedSize, err
		}
	}
	return compressedSize, nil
}

// Reference is a reference compressor for the comparison of compression
// ratios. The returned WriteCloser must be closed to complete the stream.
type Reference func(w io.Writer) (io.WriteCloser, error)

// References lists the reference compressors by name.
var References = map[string]Reference{
	"flate": func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	},
	"zstd": func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w)
	},
	"snappy": func(w io.Writer) (io.WriteCloser, error) {
		return snappy.NewBufferedWriter(w), nil
	},
	"lz4": func(w io.Writer) (io.WriteCloser, error) {
		return lz4.NewWriter(w), nil
	},
	"brotli": func(w io.Writer) (io.WriteCloser, error) {
		return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
	},
}

// ReferenceCompress compresses every file separately with the reference
// compressor and returns the sum of the compressed sizes.
func ReferenceCompress(files []File, ref Reference,
) (compressedSize int64, err error) {
	for _, f := range files {
		cw := &countWriter{}
		w, err := ref(cw)
		if err != nil {
			return compressedSize, err
		}
		if _, err = io.Copy(w, bytes.NewReader(f.Data)); err != nil {
			return compressedSize, err
		}
		if err = w.Close(); err != nil {
			return compressedSize, err
		}
		compressedSize += cw.n
	}
	return compressedSize, nil
}

// Checksum returns the xxHash64 checksum of data. It is used to compare
// the results of round trips.
func Checksum(data []byte) uint64 {
	return xxHash64.Checksum(data, 0)
}
