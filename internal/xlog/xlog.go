// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog supports switchable debug output. The helper functions
accept a Logger value and do nothing, including the formatting work, if
it is nil. Packages can therefore leave their debug statements in place
and enable them per value.

The log.Logger type of the standard library satisfies the Logger
interface.
*/
package xlog

import "fmt"

// Logger is the interface debug output is written to. *log.Logger
// satisfies it.
type Logger interface {
	Output(calldepth int, s string) error
}

// Printf formats the arguments and writes them to the logger. A nil
// logger suppresses the output.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println writes the arguments followed by a newline to the logger. A
// nil logger suppresses the output.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
