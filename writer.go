// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grin

import (
	"bufio"
	"bytes"
	"io"

	"github.com/grin-io/grin/bitio"
	"github.com/grin-io/grin/huffman"
	"github.com/grin-io/grin/internal/xlog"
)

// Writer compresses a byte stream into the grin format. Data is
// buffered until Close, because the Huffman code requires the complete
// frequency distribution before the first coded bit can be written.
// Close must be called to produce the file.
type Writer struct {
	// DebugLog receives diagnostics about the constructed code if it
	// is not nil.
	DebugLog xlog.Logger

	w      io.Writer
	buf    bytes.Buffer
	closed bool
	err    error
}

// NewWriter creates a Writer compressing data to w. The file is
// produced by Close.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write buffers p. It fails after Close.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, errWriterClosed
	}
	return w.buf.Write(p)
}

// Close writes the header, the serialized tree and the coded payload
// including the trailing sentinel code, and pads the final partial byte
// with zero bits. Closing a closed Writer returns the first error.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true
	w.err = w.flush()
	return w.err
}

func (w *Writer) flush() error {
	data := w.buf.Bytes()
	coder, err := huffman.New(countFrequencies(data))
	if err != nil {
		return err
	}
	xlog.Printf(w.DebugLog, "grin: %d input bytes, max code length %d",
		len(data), coder.MaxCodeLen())

	bw := bufio.NewWriter(w.w)
	bb := bitio.NewWriter(bw)
	if err = bb.WriteBits(magic, magicBits); err != nil {
		return err
	}
	if err = coder.Serialize(bb); err != nil {
		return err
	}
	if err = coder.Encode(bytes.NewReader(data), bb); err != nil {
		return err
	}
	if err = bb.Flush(); err != nil {
		return err
	}
	return bw.Flush()
}
