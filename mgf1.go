// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rsapad

import (
	"hash"

	"github.com/bastionzero/rsapad/ctutil"
)

// incCounter increments a four byte, big-endian counter.
func incCounter(c *[4]byte) {
	if c[3]++; c[3] != 0 {
		return
	}
	if c[2]++; c[2] != 0 {
		return
	}
	if c[1]++; c[1] != 0 {
		return
	}
	c[0]++
}

// mgf1XOR XORs the bytes in out with a mask generated using the MGF1
// function of PKCS #1 v2.2: the concatenation of h(seed || counter) for
// counter = 0, 1, ..., truncated to len(out). h is reset and reused
// across blocks, so the call costs exactly ceil(len(out)/h.Size())
// hash operations and allocates nothing beyond h's own Sum scratch.
func mgf1XOR(out []byte, h hash.Hash, seed []byte) {
	var counter [4]byte
	var digest [maxDigestLen]byte

	done := 0
	for done < len(out) {
		h.Reset()
		h.Write(seed)
		h.Write(counter[0:4])
		block := h.Sum(digest[:0])

		for i := 0; i < len(block) && done < len(out); i++ {
			out[done] ^= block[i]
			done++
		}
		incCounter(&counter)
	}
}

// MGF1 fills out with MGF1(seed, len(out)) over h. The in-place XOR
// form the codecs use is mgf1XOR; this entry point exists for callers
// who want the mask itself.
func MGF1(out []byte, h hash.Hash, seed []byte) {
	ctutil.Wipe(out)
	mgf1XOR(out, h, seed)
}
