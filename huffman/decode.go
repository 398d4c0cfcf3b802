// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"io"

	"github.com/grin-io/grin/bitio"
)

// DecodeSymbol walks the tree from the root, one input bit per step: a
// 0 bit descends left, a 1 bit descends right. It returns the symbol of
// the first leaf reached. Every payload ends with the sentinel code, so
// bit exhaustion before a leaf is reached reports io.ErrUnexpectedEOF.
//
// A single-node tree consumes no bits: a bare sentinel yields EOS
// immediately, the empty-input case. A bare literal cannot drive a
// terminating walk and reports ErrMalformedTree.
func (c *Coder) DecodeSymbol(r *bitio.Reader) (Symbol, error) {
	cur := c.root
	if nd := c.nodes[cur]; nd.leaf() {
		if nd.sym == EOS {
			return EOS, nil
		}
		return 0, ErrMalformedTree
	}
	for {
		bit, err := r.ReadBit()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		nd := c.nodes[cur]
		if bit.Test() {
			cur = nd.right
		} else {
			cur = nd.left
		}
		if nd = c.nodes[cur]; nd.leaf() {
			return nd.sym, nil
		}
	}
}

// Decode decodes symbols from r until the sentinel is reached, writing
// each decoded byte to w as soon as its leaf is hit. The sentinel
// itself is not written.
func (c *Coder) Decode(r *bitio.Reader, w io.ByteWriter) error {
	for {
		sym, err := c.DecodeSymbol(r)
		if err != nil {
			return err
		}
		if sym == EOS {
			return nil
		}
		if err := w.WriteByte(byte(sym)); err != nil {
			return err
		}
	}
}
