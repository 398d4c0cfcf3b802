// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/grin-io/grin"
)

type options struct {
	force bool
	quiet bool
}

// packer transforms the content of a reader into the content of a
// writer. Compression and decompression both implement it.
type packer interface {
	pack(w io.Writer, r io.Reader) (n int64, err error)
}

type grinPacker struct{}

func (grinPacker) pack(w io.Writer, r io.Reader) (n int64, err error) {
	bw := bufio.NewWriter(w)
	gw := grin.NewWriter(bw)
	n, err = io.Copy(gw, r)
	if err != nil {
		return n, err
	}
	if err = gw.Close(); err != nil {
		return n, err
	}
	return n, bw.Flush()
}

type grinUnpacker struct{}

func (grinUnpacker) pack(w io.Writer, r io.Reader) (n int64, err error) {
	gr, err := grin.NewReader(r)
	if err != nil {
		return 0, err
	}
	return io.Copy(w, gr)
}

// signalHandler removes the temporary output file when the program is
// interrupted. The returned quit channel must be closed to stop the
// handler.
func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			os.Remove(tmpPath)
			os.Exit(7)
		}
	}()
	return quit
}

// packFile runs pck from path into tmpPath. The temporary file is
// created exclusively, so concurrent invocations don't clobber each
// other.
func packFile(pck packer, path, tmpPath string) (n int64, err error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return 0, err
	}
	if !fi.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", path)
	}
	r, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := r.Close(); err == nil {
			err = cerr
		}
	}()

	w, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL,
		0666)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	return pck.pack(w, r)
}

// processFile converts path into outputPath going through a temporary
// file. On any failure the temporary file is removed and no output is
// left behind.
func processFile(pck packer, path, outputPath string, opts *options) error {
	if _, err := os.Lstat(outputPath); err == nil && !opts.force {
		return fmt.Errorf("output file %s exists", outputPath)
	}
	tmpPath := outputPath + ".grin-tmp"
	if opts.force {
		os.Remove(tmpPath)
	}
	defer os.Remove(tmpPath)
	quit := signalHandler(tmpPath)
	defer close(quit)

	n, err := packFile(pck, path, tmpPath)
	if err != nil {
		return err
	}
	if err = os.Rename(tmpPath, outputPath); err != nil {
		return err
	}
	if !opts.quiet {
		log.Printf("%s: %d bytes processed", path, n)
	}
	return nil
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError strips the operation detail from path errors; that a lstat
// or open failed is irrelevant to the user, the path and the cause are
// not.
func userError(err error) error {
	pe, ok := err.(*os.PathError)
	if !ok {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}
