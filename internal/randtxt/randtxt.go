// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randtxt provides a reproducible source of pseudo text with a
// letter distribution close to English. Compressor tests use it for
// inputs that are random but compressible.
package randtxt

import (
	"math/rand"
	"sort"
)

type prob struct {
	c byte
	p float64
}

// relative letter frequencies, roughly English plus whitespace
var letters = []prob{
	{' ', 18.0}, {'e', 10.2}, {'t', 7.5}, {'a', 6.5}, {'o', 6.2},
	{'i', 5.7}, {'n', 5.6}, {'s', 5.3}, {'h', 5.0}, {'r', 5.0},
	{'d', 3.5}, {'l', 3.3}, {'u', 2.3}, {'c', 2.2}, {'m', 2.0},
	{'w', 1.8}, {'f', 1.8}, {'g', 1.6}, {'y', 1.6}, {'p', 1.5},
	{'b', 1.2}, {'\n', 1.0}, {'v', 0.8}, {'k', 0.6}, {'j', 0.2},
	{'x', 0.15}, {'q', 0.1}, {'z', 0.07},
}

// cdf holds the cumulative distribution; the last entry has p == 1.
var cdf = makeCDF(letters)

func makeCDF(prs []prob) []prob {
	sum := 0.0
	for _, pr := range prs {
		sum += pr.p
	}
	out := make([]prob, len(prs))
	x := 0.0
	for i, pr := range prs {
		x += pr.p / sum
		if x > 1.0 {
			x = 1.0
		}
		out[i] = prob{c: pr.c, p: x}
	}
	out[len(out)-1].p = 1.0
	return out
}

// Reader generates an endless stream of pseudo text. The same seed
// reproduces the same stream.
type Reader struct {
	rnd *rand.Rand
}

// NewReader creates a Reader using the given random source.
func NewReader(src rand.Source) *Reader {
	return &Reader{rnd: rand.New(src)}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	for i := range p {
		x := r.rnd.Float64()
		k := sort.Search(len(cdf), func(j int) bool {
			return cdf[j].p >= x
		})
		p[i] = cdf[k].c
	}
	return len(p), nil
}
