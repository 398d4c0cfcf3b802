// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grin

import (
	"errors"

	"github.com/grin-io/grin/huffman"
)

// magic identifies the grin file format. It is stored as the leading
// 32-bit field of every file.
const magic = 0x736

// magicBits is the width of the magic field.
const magicBits = 32

// ErrFormat indicates that a file does not start with the grin magic
// value.
var ErrFormat = errors.New("grin: invalid header magic")

// ErrMalformedTree indicates that the serialized Huffman tree in the
// header is truncated or invalid. It mirrors the error of the huffman
// package, so callers only need to import this one.
var ErrMalformedTree = huffman.ErrMalformedTree

var errWriterClosed = errors.New("grin: writer is closed")

// countFrequencies tallies the occurrences of each byte value. The
// sentinel is not counted here; tree construction inserts it on its
// own.
func countFrequencies(p []byte) map[huffman.Symbol]uint64 {
	freqs := make(map[huffman.Symbol]uint64, 64)
	for _, b := range p {
		freqs[huffman.Symbol(b)]++
	}
	return freqs
}
