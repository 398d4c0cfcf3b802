// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import "github.com/grin-io/grin/bitio"

// code is a packed bit string addressing a leaf: 0 descends left, 1
// descends right. Bits are packed most-significant first. A non-nil
// bits slice marks a symbol that is present in the tree; the sentinel
// of a single-node tree has a valid zero-length code.
type code struct {
	bits []byte
	n    int
}

func packCode(path []byte) code {
	bits := make([]byte, (len(path)+7)/8)
	for i, b := range path {
		if b != 0 {
			bits[i>>3] |= 1 << uint(7-i&7)
		}
	}
	return code{bits: bits, n: len(path)}
}

func (cd *code) writeTo(w *bitio.Writer) error {
	i := 0
	for ; i+8 <= cd.n; i += 8 {
		if err := w.WriteBits(uint64(cd.bits[i>>3]), 8); err != nil {
			return err
		}
	}
	if r := cd.n - i; r > 0 {
		u := uint64(cd.bits[i>>3] >> uint(8-r))
		if err := w.WriteBits(u, r); err != nil {
			return err
		}
	}
	return nil
}

// deriveCodes fills the code table by a depth-first walk of the tree.
// The walk uses an explicit stack; a deserialized tree may be up to 256
// levels deep and must not exhaust the call stack.
func (c *Coder) deriveCodes() {
	type frame struct {
		node int32
		x    byte
	}
	stack := make([]frame, 0, 64)
	stack = append(stack, frame{node: c.root})
	path := make([]byte, 0, 64)

	pop := func() {
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			path = path[:len(path)-1]
		}
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nd := c.nodes[top.node]
		if nd.leaf() {
			c.codes[nd.sym] = packCode(path)
			pop()
			continue
		}
		switch top.x {
		case 0:
			top.x++
			path = append(path, 0)
			stack = append(stack, frame{node: nd.left})
		case 1:
			top.x++
			path = append(path, 1)
			stack = append(stack, frame{node: nd.right})
		default:
			pop()
		}
	}
}

// CodeLen returns the length in bits of the code for sym, or 0 if sym
// has no code. The sentinel of a single-node tree also reports 0; its
// code is empty.
func (c *Coder) CodeLen(sym Symbol) int {
	if int(sym) >= alphabetSize {
		return 0
	}
	return c.codes[sym].n
}

// MaxCodeLen returns the length in bits of the longest code in the
// table.
func (c *Coder) MaxCodeLen() int {
	max := 0
	for i := range c.codes {
		if c.codes[i].n > max {
			max = c.codes[i].n
		}
	}
	return max
}
