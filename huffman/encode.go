// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"io"

	"github.com/chronos-tachyon/assert"

	"github.com/grin-io/grin/bitio"
)

// Encode writes the code of every byte read from r to w, in input
// order, followed by the code of the sentinel. The coder is not
// modified. A byte without a code means the frequency map did not cover
// the input; that is a caller contract violation and asserts.
func (c *Coder) Encode(r io.ByteReader, w *bitio.Writer) error {
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		cd := &c.codes[b]
		assert.Assertf(cd.bits != nil, "huffman: no code for byte %#02x", b)
		if err := cd.writeTo(w); err != nil {
			return err
		}
	}
	return c.codes[EOS].writeTo(w)
}
