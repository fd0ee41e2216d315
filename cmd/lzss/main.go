// Copyright 2026 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lzss compresses or decompresses a single file using the LZSS
// format of the lzss package.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"

	"github.com/ulikunitz/lzss/internal/xlog"
)

const usageStr = `Usage: lzss [OPTION]... INFILE OUTFILE
Compress INFILE and write the LZSS stream to OUTFILE or decompress INFILE
with -d.

      --debug       print debug messages
  -c, --compat      produce or accept the streams of the historic tool
  -d, --decompress  decompress INFILE
  -h, --help        give this help
  -q, --quiet       suppress all warnings
  -v, --verbose     print statistics of the session

The output is written to a temporary file that replaces OUTFILE only if
the operation has been successful. An existing OUTFILE is overwritten.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// options stores the flags of the command.
type options struct {
	decompress bool
	compat     bool
	verbose    bool
	quiet      bool
	debug      bool
}

// run executes the command with the given arguments, including the
// command name, and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmdName := "lzss"
	if len(args) > 0 {
		cmdName = filepath.Base(args[0])
		args = args[1:]
	}
	xlog.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	xlog.SetOutput(stderr)

	fs := pflag.NewFlagSet(cmdName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(true)
	fs.Usage = func() { usage(stderr) }
	var opts options
	help := fs.BoolP("help", "h", false, "")
	fs.BoolVarP(&opts.compat, "compat", "c", false, "")
	fs.BoolVarP(&opts.decompress, "decompress", "d", false, "")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "")
	fs.BoolVar(&opts.debug, "debug", false, "")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help {
		usage(stdout)
		return 0
	}
	switch {
	case opts.debug:
		xlog.SetLevel(xlog.Debug)
	case opts.quiet:
		xlog.SetLevel(xlog.Quiet)
	case opts.verbose:
		xlog.SetLevel(xlog.Info)
	default:
		xlog.SetLevel(xlog.Warning)
	}
	if fs.NArg() != 2 {
		usage(stderr)
		return 1
	}
	in, out := fs.Arg(0), fs.Arg(1)
	xlog.Debugf("options %+v", opts)

	stats, err := processFile(in, out, &opts)
	if err != nil {
		printErr(err)
		return 1
	}
	if !opts.decompress && stats.Compressed > stats.Uncompressed {
		xlog.Warnf("%s: compressed size %d exceeds input size %d",
			in, stats.Compressed, stats.Uncompressed)
	}
	if opts.verbose {
		pretty.Fprintf(stderr, "%s: %# v\n", in, stats)
		xlog.Infof("%s: ratio %.3f", in, stats.Ratio())
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
