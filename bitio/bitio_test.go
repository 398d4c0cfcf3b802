// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitio

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterBitOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBit(1))
	require.NoError(t, w.WriteBit(0))
	require.NoError(t, w.WriteBits(0x16, 5)) // 10110
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0xac}, buf.Bytes(),
		"bits 1010110 plus zero padding must pack to 0xac")
}

func TestWriterMultiByteField(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBits(0x736, 32))
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0x00, 0x00, 0x07, 0x36}, buf.Bytes())
}

func TestFlushOnByteBoundary(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteBits(0xa5, 8))
	require.NoError(t, w.Flush())
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0xa5}, buf.Bytes(),
		"flush on a byte boundary must not write padding")
}

func TestReaderBitOrder(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xac}))
	b, err := r.ReadBit()
	require.NoError(t, err)
	require.Equal(t, Bit(1), b)
	b, err = r.ReadBit()
	require.NoError(t, err)
	require.Equal(t, Bit(0), b)
	u, err := r.ReadBits(5)
	require.NoError(t, err)
	require.Equal(t, uint64(0x16), u)
}

func TestReaderEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	_, err := r.ReadBit()
	require.Equal(t, io.EOF, err)

	r = NewReader(bytes.NewReader([]byte{0xff}))
	_, err = r.ReadBits(12)
	require.Equal(t, io.ErrUnexpectedEOF, err,
		"a field truncated mid-stream must not report a clean EOF")

	r = NewReader(bytes.NewReader([]byte{0xff}))
	_, err = r.ReadBits(8)
	require.NoError(t, err)
	_, err = r.ReadBits(8)
	require.Equal(t, io.EOF, err,
		"a field starting at the natural end must report io.EOF")
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(41))
	type field struct {
		u uint64
		n int
	}
	fields := make([]field, 200)
	total := 0
	for i := range fields {
		n := 1 + rnd.Intn(24)
		fields[i] = field{u: rnd.Uint64() & (1<<uint(n) - 1), n: n}
		total += n
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, f := range fields {
		require.NoError(t, w.WriteBits(f.u, f.n))
	}
	require.NoError(t, w.Flush())
	require.Equal(t, (total+7)/8, buf.Len())

	r := NewReader(bytes.NewReader(buf.Bytes()))
	for i, f := range fields {
		u, err := r.ReadBits(f.n)
		require.NoError(t, err)
		require.Equal(t, f.u, u, "field %d", i)
	}
}
