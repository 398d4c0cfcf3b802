// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command grin compresses and decompresses single files in the grin
// format.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"
)

const usageStr = `Usage: grin [OPTION]... <encode|decode> INFILE OUTFILE
Compress (encode) or decompress (decode) a file in the grin format.

  -f, --force    overwrite an existing output file
  -h, --help     give this help
  -q, --quiet    suppress noncritical messages
  -V, --version  display the version string
`

const version = "0.3.0"

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help         = pflag.BoolP("help", "h", false, "")
		force        = pflag.BoolP("force", "f", false, "")
		quiet        = pflag.BoolP("quiet", "q", false, "")
		printVersion = pflag.BoolP("version", "V", false, "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *printVersion {
		fmt.Printf("%s %s\n", cmdName, version)
		os.Exit(0)
	}

	args := pflag.Args()
	if len(args) != 3 {
		usage(os.Stderr)
		os.Exit(1)
	}
	var pck packer
	switch args[0] {
	case "encode":
		pck = grinPacker{}
	case "decode":
		pck = grinUnpacker{}
	default:
		usage(os.Stderr)
		os.Exit(1)
	}

	opts := &options{force: *force, quiet: *quiet}
	if err := processFile(pck, args[1], args[2], opts); err != nil {
		log.Fatal(userError(err))
	}
}
