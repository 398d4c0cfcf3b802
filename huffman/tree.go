// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"container/heap"
	"sort"
)

// noChild marks a node without children. A node whose left handle is
// noChild is a leaf; constructed internal nodes always have both
// children set.
const noChild int32 = -1

// node is a tree node stored in the coder's arena. Children are
// addressed by their index in the arena, which keeps traversals
// iterative and free of pointer chasing.
type node struct {
	left, right int32
	sym         Symbol
}

func (n node) leaf() bool { return n.left == noChild }

// Coder holds a Huffman tree and the code table derived from it. A
// Coder is immutable after construction; it can serialize, encode and
// decode any number of times.
type Coder struct {
	nodes []node
	root  int32
	codes [alphabetSize]code
}

func (c *Coder) newLeaf(sym Symbol) int32 {
	id := int32(len(c.nodes))
	c.nodes = append(c.nodes, node{left: noChild, right: noChild, sym: sym})
	return id
}

func (c *Coder) newInternal(left, right int32) int32 {
	id := int32(len(c.nodes))
	c.nodes = append(c.nodes, node{left: left, right: right})
	return id
}

// New constructs a Coder from a frequency map over byte values. The
// sentinel is inserted with frequency 1 regardless of the map, so the
// resulting tree is valid for empty and single-symbol inputs as well.
// Map keys must be in the range [0,255].
func New(freqs map[Symbol]uint64) (*Coder, error) {
	syms := make([]Symbol, 0, len(freqs))
	for s := range freqs {
		if s > 255 {
			return nil, errSymbolRange
		}
		syms = append(syms, s)
	}
	// Map iteration order is random; sorting keeps the tree shape
	// stable for identical inputs.
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	c := &Coder{nodes: make([]node, 0, 2*(len(syms)+1))}
	h := make(nodeHeap, 0, len(syms)+1)
	for _, s := range syms {
		h = append(h, heapItem{node: c.newLeaf(s), freq: freqs[s]})
	}
	h = append(h, heapItem{node: c.newLeaf(EOS), freq: 1})
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		id := c.newInternal(a.node, b.node)
		heap.Push(&h, heapItem{node: id, freq: a.freq + b.freq})
	}
	c.root = h[0].node
	c.deriveCodes()
	return c, nil
}

// heapItem pairs a node handle with the combined frequency of the
// subtree below it. Ties break on the handle, which reflects insertion
// order.
type heapItem struct {
	node int32
	freq uint64
}

type nodeHeap []heapItem

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.node < b.node
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }

func (h *nodeHeap) Pop() interface{} {
	last := len(*h) - 1
	x := (*h)[last]
	*h = (*h)[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)
