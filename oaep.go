// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rsapad

import (
	"hash"
	"io"

	"github.com/bastionzero/rsapad/ctutil"
)

// PadOAEP writes the RSAES-OAEP encoding of msg into em:
//
//	EM = 0x00 || maskedSeed || maskedDB
//
// per RFC 8017, with h used both for the label hash and for MGF1.
// len(em) must be at least len(msg)+2*h.Size()+2. label may be nil for
// the usual empty label.
//
// seed is normally nil, in which case h.Size() seed bytes are drawn
// from random. A caller that must reproduce a known vector may pass a
// seed of up to h.Size() bytes; shorter seeds occupy the leading bytes
// of a zeroed seed field. em must not alias msg, label, or seed.
func PadOAEP(h hash.Hash, random io.Reader, em, msg, label, seed []byte) error {
	k := len(em)
	hLen := h.Size()
	if k < len(msg)+2*hLen+2 {
		return ErrInvalidArgument
	}
	if len(seed) > hLen {
		return ErrInvalidArgument
	}

	em[0] = 0x00
	seedField := em[1 : 1+hLen]
	db := em[1+hLen:]

	// DB = lHash || PS || 0x01 || msg
	h.Reset()
	h.Write(label)
	h.Sum(db[:0])
	ctutil.Wipe(db[hLen : len(db)-len(msg)-1])
	db[len(db)-len(msg)-1] = 0x01
	copy(db[len(db)-len(msg):], msg)

	ctutil.Wipe(seedField)
	if seed == nil {
		if _, err := io.ReadFull(random, seedField); err != nil {
			return err
		}
	} else {
		copy(seedField, seed)
	}

	mgf1XOR(db, h, seedField)
	mgf1XOR(seedField, h, db)
	return nil
}

// UnpadOAEP parses an RSAES-OAEP block and recovers the embedded
// plaintext, checking it against the same label the encrypter used.
// scratch provides the working memory for the unmasked seed and data
// block and must be at least len(em)-1 bytes; em itself is left
// untouched. The recovered length is always returned; out may be nil
// to query it, and a too-short out yields ErrBufferTooSmall.
//
// The label-hash and padding checks return early on mismatch. As with
// UnpadPKCS1v15, resistance to decryption oracles (Manger's attack)
// is a protocol-layer concern, not something the parse order here can
// provide.
func UnpadOAEP(h hash.Hash, em, label, out, scratch []byte) (int, error) {
	k := len(em)
	hLen := h.Size()
	if k < 2*hLen+2 {
		return 0, ErrInvalidArgument
	}
	if em[0] != 0x00 {
		return 0, ErrInvalidArgument
	}
	if len(scratch) < k-1 {
		return 0, ErrInvalidArgument
	}

	// scratch holds the unmasked seed and data block, i.e. plaintext
	// material; clear it on every exit.
	defer ctutil.Wipe(scratch[:k-1])

	seed := scratch[:hLen]
	db := scratch[hLen : k-1]
	copy(seed, em[1:1+hLen])
	copy(db, em[1+hLen:])

	mgf1XOR(seed, h, em[1+hLen:])
	mgf1XOR(db, h, seed)

	var lbuf [maxDigestLen]byte
	h.Reset()
	h.Write(label)
	lHash := h.Sum(lbuf[:0])
	if !ctutil.Equal(db[:hLen], lHash) {
		return 0, ErrInvalidArgument
	}

	// PS is zero bytes up to the 0x01 delimiter; anything else aborts.
	i := hLen
	for i < len(db) && db[i] == 0x00 {
		i++
	}
	if i == len(db) || db[i] != 0x01 {
		return 0, ErrInvalidArgument
	}

	n := len(db) - i - 1
	if out == nil {
		return n, nil
	}
	if len(out) < n {
		return n, ErrBufferTooSmall
	}
	copy(out, db[i+1:])
	return n, nil
}
