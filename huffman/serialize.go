// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"io"

	"github.com/grin-io/grin/bitio"
)

// Serialize writes the tree in pre-order: a leaf is a 0 bit followed by
// its symbol as a 9-bit field, an internal node is a 1 bit followed by
// its left and right subtrees.
func (c *Coder) Serialize(w *bitio.Writer) error {
	stack := make([]int32, 0, 64)
	stack = append(stack, c.root)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := c.nodes[id]
		if nd.leaf() {
			if err := w.WriteBit(0); err != nil {
				return err
			}
			if err := w.WriteBits(uint64(nd.sym), symbolBits); err != nil {
				return err
			}
			continue
		}
		if err := w.WriteBit(1); err != nil {
			return err
		}
		// right below left, so the left subtree is written first
		stack = append(stack, nd.right, nd.left)
	}
	return nil
}

// Parse reads a tree in the format written by Serialize and derives its
// code table. It returns ErrMalformedTree when the stream ends before
// the structure is complete or a leaf symbol exceeds the alphabet. No
// further validation takes place; a corrupted but well-tagged stream
// parses into a structurally valid tree.
func Parse(r *bitio.Reader) (*Coder, error) {
	c := &Coder{}
	var open []int32
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, treeErr(err)
		}
		if bit.Test() {
			open = append(open, c.newInternal(noChild, noChild))
			continue
		}
		u, err := r.ReadBits(symbolBits)
		if err != nil {
			return nil, treeErr(err)
		}
		if u > uint64(EOS) {
			return nil, ErrMalformedTree
		}
		// Hang the completed subtree on the nearest open slot.
		// Completing a right child completes its parent in turn.
		id := c.newLeaf(Symbol(u))
		for {
			if len(open) == 0 {
				c.root = id
				c.deriveCodes()
				return c, nil
			}
			top := open[len(open)-1]
			if c.nodes[top].left == noChild {
				c.nodes[top].left = id
				break
			}
			c.nodes[top].right = id
			open = open[:len(open)-1]
			id = top
		}
	}
}

func treeErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrMalformedTree
	}
	return err
}
