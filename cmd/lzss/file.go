// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/ulikunitz/lzss"
	"github.com/ulikunitz/lzss/internal/xlog"
	"github.com/ulikunitz/lzss/xio"
)

// signalHandler establishes the signal handler for SIGINT and handles it
// in its own go routine. The returned quit channel must be closed to
// terminate the signal handler go routine.
func signalHandler(w *writer) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			w.removeTmpFile()
			xlog.Fatal("interrupted")
		}
	}()
	return quit
}

// tmpName converts the path string into a temporary name by appending
// .decompress or .compress to the file path.
func tmpName(path string, decompress bool) string {
	var ext string
	if decompress {
		ext = ".decompress"
	} else {
		ext = ".compress"
	}
	return path + ext
}

// writer writes the output file. The data is written into a temporary
// file, which is renamed to the target name if the writer is closed after
// SetSuccess has been called.
type writer struct {
	f     *os.File
	name  string
	stack *xio.WriteCloserStack
	// nil for decompression
	zw      *lzss.Writer
	success bool
}

// newWriter creates a new file writer. For compression the data written
// is encoded. An existing file is replaced.
func newWriter(path string, perm os.FileMode, opts *options,
) (w *writer, err error) {
	if len(path) == 0 {
		return nil, errors.New("empty file name not supported")
	}
	w = &writer{name: path, stack: xio.NewWriteCloserStack()}
	tmp := tmpName(path, opts.decompress)
	if w.f, err = os.OpenFile(tmp,
		os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm); err != nil {
		return nil, err
	}
	w.stack.Push(w.f)
	bw := bufio.NewWriter(w.f)
	w.stack.Push(xio.FlushCloser{Flusher: bw})
	if opts.decompress {
		return w, nil
	}
	w.zw, err = lzss.NewWriterConfig(bw,
		lzss.WriterConfig{Compat: opts.compat})
	if err != nil {
		w.Close()
		return nil, err
	}
	w.stack.Push(w.zw)
	return w, nil
}

// Write writes to the top of the writer stack.
func (w *writer) Write(p []byte) (n int, err error) {
	return w.stack.Write(p)
}

var errInval = errors.New("invalid value")

// Close closes the writer. Note that the behaviour depends whether
// success has been set for the writer.
func (w *writer) Close() error {
	var err error

	if w.f == nil {
		return errInval
	}
	defer func() { w.f = nil }()

	if !w.success {
		w.stack.Stack = nil
		if err = w.f.Close(); err != nil {
			return err
		}
		return os.Remove(w.f.Name())
	}
	if err = w.stack.Close(); err != nil {
		os.Remove(w.f.Name())
		return err
	}
	return os.Rename(w.f.Name(), w.name)
}

// removeTmpFile removes the temporary file for the writer. It is used
// by the signal handler goroutine.
func (w *writer) removeTmpFile() {
	os.Remove(w.f.Name())
}

// SetSuccess sets the success variable to true.
func (w *writer) SetSuccess() { w.success = true }

// reader reads the input file. For decompression the data is decoded.
type reader struct {
	f *os.File
	io.Reader
	// nil for compression
	zr *lzss.Reader
}

// errNoRegular indicates that a file is not regular.
var errNoRegular = errors.New("no regular file")

// openFile opens the given path. Only regular files are supported.
func openFile(path string) (f *os.File, err error) {
	if f, err = os.Open(path); err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, &userPathError{Path: path, Err: errNoRegular}
	}
	return f, nil
}

// newReader creates a new reader for the file.
func newReader(path string, opts *options) (r *reader, err error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	if !opts.decompress {
		return &reader{f: f, Reader: br}, nil
	}
	zr, err := lzss.NewReaderConfig(br,
		lzss.ReaderConfig{Compat: opts.compat})
	if err != nil {
		f.Close()
		return nil, err
	}
	return &reader{f: f, Reader: zr, zr: zr}, nil
}

// Close closes the file.
func (r *reader) Close() error {
	if r.f == nil {
		return errInval
	}
	defer func() { r.f = nil }()
	return r.f.Close()
}

// Perm returns the permission bits of the input file.
func (r *reader) Perm() os.FileMode {
	const defaultPerm os.FileMode = 0666

	fi, err := r.f.Stat()
	if err != nil {
		return defaultPerm
	}

	return fi.Mode() & defaultPerm
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError converts path error to an error message that is
// acceptable for users. PathError provides information about the
// command that has created an error. For instance Open informs that
// open detected that a file didn't exist. This information is not
// relevant for the users of the program. This function converts a
// path error into a generic error removing the operation information.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

// printErr prints the error regardless of the log level.
func printErr(err error) {
	if err != nil {
		xlog.Error(userError(err))
	}
}

// processFile compresses or decompresses the file in and writes the
// result to out. It returns the statistics of the session.
func processFile(in, out string, opts *options) (stats lzss.Stats,
	err error) {
	r, err := newReader(in, opts)
	if err != nil {
		return stats, err
	}
	defer r.Close()
	w, err := newWriter(out, r.Perm(), opts)
	if err != nil {
		return stats, err
	}
	defer w.Close()
	quitSignalHandler := signalHandler(w)
	defer close(quitSignalHandler)
	if _, err = io.Copy(w, r); err != nil {
		return stats, err
	}
	w.SetSuccess()
	if err = w.Close(); err != nil {
		return stats, err
	}
	if w.zw != nil {
		stats = w.zw.Stats()
	} else {
		stats = r.zr.Stats()
	}
	xlog.Debugf("%s -> %s done", in, out)
	return stats, nil
}
