// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grin

import (
	"bufio"
	"io"

	"github.com/grin-io/grin/bitio"
	"github.com/grin-io/grin/huffman"
	"github.com/grin-io/grin/internal/xlog"
)

// Reader decompresses a grin file. NewReader validates the header and
// parses the Huffman tree; Read streams decoded bytes and returns
// io.EOF once the sentinel code has been reached. Errors are sticky: a
// failed Read keeps failing with the same error.
type Reader struct {
	// DebugLog receives diagnostics about the parsed code if it is
	// not nil.
	DebugLog xlog.Logger

	br      *bitio.Reader
	coder   *huffman.Coder
	err     error
	started bool
}

// NewReader creates a Reader decompressing the grin file read from r.
// It fails with ErrFormat when the leading 32 bits are not the grin
// magic value and with ErrMalformedTree when the serialized tree is
// truncated or invalid.
func NewReader(r io.Reader) (*Reader, error) {
	br := bitio.NewReader(bufio.NewReader(r))
	u, err := br.ReadBits(magicBits)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if u != magic {
		return nil, ErrFormat
	}
	coder, err := huffman.Parse(br)
	if err != nil {
		return nil, err
	}
	return &Reader{br: br, coder: coder}, nil
}

// Read decodes data from the file. The payload must terminate with the
// sentinel code; if the stream ends beforehand Read reports
// io.ErrUnexpectedEOF.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	if !r.started {
		r.started = true
		xlog.Printf(r.DebugLog, "grin: max code length %d",
			r.coder.MaxCodeLen())
	}
	for n < len(p) {
		sym, err := r.coder.DecodeSymbol(r.br)
		if err != nil {
			r.err = err
			return n, err
		}
		if sym == huffman.EOS {
			r.err = io.EOF
			return n, io.EOF
		}
		p[n] = byte(sym)
		n++
	}
	return n, nil
}
