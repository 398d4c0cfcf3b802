// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package huffman implements the static Huffman code used by the grin
// container. The alphabet has 257 symbols: the 256 byte values plus an
// end-of-stream sentinel that terminates every coded payload. The
// package supports building a code from a frequency map, a pre-order
// bit-tagged tree serialization and streaming encoding and decoding
// over bit streams.
package huffman

import "errors"

// Symbol is a value of the coded alphabet. Values 0 through 255 are
// literal byte values; 256 is the end-of-stream sentinel.
type Symbol uint16

// EOS is the end-of-stream sentinel. It takes part in every tree with a
// fixed frequency of 1, so even an empty input has a terminable code.
// The sentinel is written at the end of a payload but never emitted as
// decoded output.
const EOS Symbol = 256

// alphabetSize covers the byte values and the sentinel.
const alphabetSize = 257

// symbolBits is the width of a serialized leaf symbol.
const symbolBits = 9

// ErrMalformedTree indicates that a serialized tree ended before its
// pre-order structure was complete, or that a leaf carried a symbol
// outside the alphabet.
var ErrMalformedTree = errors.New("huffman: malformed tree")

var errSymbolRange = errors.New("huffman: frequency map symbol out of range")
