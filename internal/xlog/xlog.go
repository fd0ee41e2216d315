// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides a Logger interface and supporting functions to control
debug output, together with a simple leveled logger for command line tools.

The Logger interface is supported by the log.Logger type. If a Logger is nil
Printf doesn't do anything, so a package can keep a nil logger around and
switch debug output on only in tests.

The package-level functions Debugf, Infof and Warnf write to
standard error through a log.Logger if the level set by SetLevel allows it.
Error and Fatal write regardless of the level.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger is the interface required by Printf. The log.Logger
// type supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Level controls which messages of the standard logger are printed.
type Level int32

// Levels supported by the standard logger. Messages with a level up to the
// current level are printed.
const (
	Quiet Level = iota
	Warning
	Info
	Debug
)

var (
	level = int32(Warning)
	std   = log.New(os.Stderr, "", 0)
	exit  = os.Exit
)

// SetLevel sets the level of the standard logger.
func SetLevel(l Level) { atomic.StoreInt32(&level, int32(l)) }

// GetLevel returns the current level of the standard logger.
func GetLevel() Level { return Level(atomic.LoadInt32(&level)) }

// SetPrefix sets the prefix of the standard logger, usually the command
// name followed by a colon.
func SetPrefix(prefix string) { std.SetPrefix(prefix) }

// SetOutput sets the output of the standard logger.
func SetOutput(w io.Writer) { std.SetOutput(w) }

func output(l Level, s string) {
	if GetLevel() >= l {
		std.Output(3, s)
	}
}

// Debugf prints a debug message.
func Debugf(format string, v ...interface{}) {
	output(Debug, fmt.Sprintf(format, v...))
}

// Infof prints an informational message.
func Infof(format string, v ...interface{}) {
	output(Info, fmt.Sprintf(format, v...))
}

// Warnf prints a warning using a format string.
func Warnf(format string, v ...interface{}) {
	output(Warning, fmt.Sprintf(format, v...))
}

// Error prints an error message regardless of the level.
func Error(v ...interface{}) { std.Output(2, fmt.Sprint(v...)) }

// Fatal prints the message regardless of the level and exits with status
// 1.
func Fatal(v ...interface{}) {
	std.Output(2, fmt.Sprint(v...))
	exit(1)
}
