// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitio provides bit-level reading and writing on top of
// byte-oriented streams. Bits are addressed most-significant first
// within each byte, and multi-bit fields are stored with their most
// significant bit first.
package bitio

import "io"

// Bit represents a single bit. Only the least significant bit of the
// value is relevant.
type Bit byte

// Test reports whether the bit is set.
func (b Bit) Test() bool {
	return b&1 != 0
}

// Writer writes individual bits to an io.ByteWriter. A partial byte is
// buffered until it is complete or the Writer is flushed.
type Writer struct {
	w     io.ByteWriter
	cache byte
	n     uint
}

// NewWriter creates a bit writer on top of the byte writer w.
func NewWriter(w io.ByteWriter) *Writer {
	return &Writer{w: w}
}

// WriteBit appends a single bit to the stream.
func (w *Writer) WriteBit(b Bit) error {
	if b.Test() {
		w.cache |= 1 << (7 - w.n)
	}
	w.n++
	if w.n < 8 {
		return nil
	}
	err := w.w.WriteByte(w.cache)
	w.cache, w.n = 0, 0
	return err
}

// WriteBits appends the n least significant bits of u to the stream,
// most significant bit first. The bit count n must be in the range
// [0,64]; the function panics otherwise.
func (w *Writer) WriteBits(u uint64, n int) error {
	if n < 0 || n > 64 {
		panic("bitio: invalid bit count")
	}
	for i := n - 1; i >= 0; i-- {
		if err := w.WriteBit(Bit(u>>uint(i)) & 1); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes out a buffered partial byte, padding it with zero bits.
// Flushing on a byte boundary is a no-op.
func (w *Writer) Flush() error {
	if w.n == 0 {
		return nil
	}
	err := w.w.WriteByte(w.cache)
	w.cache, w.n = 0, 0
	return err
}

// Reader reads individual bits from an io.ByteReader.
type Reader struct {
	r     io.ByteReader
	cache byte
	n     uint
}

// NewReader creates a bit reader on top of the byte reader r.
func NewReader(r io.ByteReader) *Reader {
	return &Reader{r: r}
}

// ReadBit reads a single bit. At the natural end of the underlying
// stream it returns io.EOF.
func (r *Reader) ReadBit() (Bit, error) {
	if r.n == 0 {
		c, err := r.r.ReadByte()
		if err != nil {
			return 0, err
		}
		r.cache, r.n = c, 8
	}
	r.n--
	return Bit(r.cache>>r.n) & 1, nil
}

// ReadBits reads an n-bit unsigned integer, most significant bit first.
// The bit count n must be in the range [0,64]; the function panics
// otherwise. If the stream ends before the first bit of the field,
// ReadBits returns io.EOF; if it ends inside the field, it returns
// io.ErrUnexpectedEOF.
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		panic("bitio: invalid bit count")
	}
	var u uint64
	for i := 0; i < n; i++ {
		b, err := r.ReadBit()
		if err != nil {
			if err == io.EOF && i > 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		u = u<<1 | uint64(b)
	}
	return u, nil
}
