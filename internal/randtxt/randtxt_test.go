// Copyright 2023 The grin authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randtxt

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestReproducible(t *testing.T) {
	a := make([]byte, 1024)
	b := make([]byte, 1024)
	if _, err := NewReader(rand.NewSource(3)).Read(a); err != nil {
		t.Fatalf("Read error %s", err)
	}
	if _, err := NewReader(rand.NewSource(3)).Read(b); err != nil {
		t.Fatalf("Read error %s", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("same seed produced different streams")
	}
}

func TestDistribution(t *testing.T) {
	p := make([]byte, 1<<16)
	if _, err := NewReader(rand.NewSource(5)).Read(p); err != nil {
		t.Fatalf("Read error %s", err)
	}
	var count [256]int
	for _, c := range p {
		count[c]++
	}
	if count['e'] <= count['z'] {
		t.Errorf("count('e') = %d not larger than count('z') = %d",
			count['e'], count['z'])
	}
	if count[' '] == 0 {
		t.Error("no spaces generated")
	}
}
