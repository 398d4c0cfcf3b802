// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grin supports reading and writing grin files, a minimal
// compression container storing a single byte stream under a per-file
// static Huffman code.
//
// A grin file consists of a 32-bit magic value, a pre-order bit-tagged
// serialization of the Huffman tree and the coded payload, terminated
// by the code of the end-of-stream sentinel. All multi-bit fields are
// stored most-significant-bit first; the final partial byte is padded
// with zero bits.
package grin
