// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rsapad

import (
	"hash"
	"io"

	"github.com/bastionzero/rsapad/ctutil"
)

// pssPadding1 is the eight zero octets prefixed to mHash || salt when
// computing H'.
var pssPadding1 [8]byte

// PadPSS writes the RSASSA-PSS encoding of mHash into em per RFC 8017:
//
//	EM = maskedDB || H' || 0xBC
//
// mHash must be an h.Size()-byte digest of the message. em must be
// PSSBlockLen(nBits) bytes; when nBits ≡ 1 (mod 8) the working length
// emLen = ceil((nBits-1)/8) is one byte short of the block, and the
// leading block byte is set to 0x00.
//
// salt is normally nil, in which case sLen salt bytes are drawn from
// random. A caller reproducing a known vector passes the salt
// explicitly and sLen is ignored in favor of len(salt); note that a
// non-nil empty salt selects the deterministic sLen = 0 encoding. The
// encoding requires emLen >= h.Size() + sLen + 2.
func PadPSS(h hash.Hash, random io.Reader, em, mHash, salt []byte, sLen, nBits int) error {
	hLen := h.Size()
	if len(mHash) != hLen {
		return ErrInvalidArgument
	}
	if nBits <= 0 || len(em) != PSSBlockLen(nBits) {
		return ErrInvalidArgument
	}
	emLen := pssEMLen(nBits)
	if len(em) == emLen+1 {
		// nBits ≡ 1 (mod 8): the modulus-sized block carries one spare
		// most-significant byte, always zero.
		em[0] = 0x00
		em = em[1:]
	}

	if salt != nil {
		sLen = len(salt)
	}
	if sLen < 0 || emLen < hLen+sLen+2 {
		return ErrInvalidArgument
	}

	db := em[:emLen-hLen-1]
	hp := em[emLen-hLen-1 : emLen-1]

	// The salt lands at the tail of DB either way; generating it in
	// place avoids a scratch buffer.
	saltDst := db[len(db)-sLen:]
	if salt != nil {
		copy(saltDst, salt)
	} else if sLen > 0 {
		if _, err := io.ReadFull(random, saltDst); err != nil {
			return err
		}
	}

	// H' = h(0x00^8 || mHash || salt)
	h.Reset()
	h.Write(pssPadding1[:])
	h.Write(mHash)
	h.Write(saltDst)
	h.Sum(hp[:0])

	// DB = 0x00.. || 0x01 || salt
	ctutil.Wipe(db[:len(db)-sLen-1])
	db[len(db)-sLen-1] = 0x01

	mgf1XOR(db, h, hp)

	// clear the bits beyond the nBits-1 working width
	db[0] &= byte(0xff >> (8*emLen - (nBits - 1)))
	em[emLen-1] = 0xbc
	return nil
}

// VerifyPSS reports whether em is a valid RSASSA-PSS encoding of mHash
// with an sLen-byte salt for an nBits-bit modulus. scratch provides
// the working memory for the unmasked data block and the recomputed
// hash and must be at least emLen-1 bytes, where emLen is
// ceil((nBits-1)/8); em is left untouched. The final hash comparison
// is constant-time; every structural defect, including a nonzero
// leading block byte when nBits ≡ 1 (mod 8), a trailer other than
// 0xBC, or set bits beyond the working width, is ErrInvalidArgument.
func VerifyPSS(h hash.Hash, em, mHash []byte, sLen, nBits int, scratch []byte) error {
	hLen := h.Size()
	if len(mHash) != hLen || sLen < 0 {
		return ErrInvalidArgument
	}
	if nBits <= 0 || len(em) != PSSBlockLen(nBits) {
		return ErrInvalidArgument
	}
	emLen := pssEMLen(nBits)
	if len(em) == emLen+1 {
		if em[0] != 0x00 {
			return ErrInvalidArgument
		}
		em = em[1:]
	}
	if emLen < hLen+sLen+2 {
		return ErrInvalidArgument
	}
	if len(scratch) < emLen-1 {
		return ErrInvalidArgument
	}

	if em[emLen-1] != 0xbc {
		return ErrInvalidArgument
	}
	topMask := byte(0xff >> (8*emLen - (nBits - 1)))
	if em[0]&^topMask != 0 {
		return ErrInvalidArgument
	}

	defer ctutil.Wipe(scratch[:emLen-1])

	db := scratch[:emLen-hLen-1]
	copy(db, em[:emLen-hLen-1])
	hp := em[emLen-hLen-1 : emLen-1]

	mgf1XOR(db, h, hp)
	db[0] &= topMask

	for _, b := range db[:emLen-hLen-sLen-2] {
		if b != 0x00 {
			return ErrInvalidArgument
		}
	}
	if db[emLen-hLen-sLen-2] != 0x01 {
		return ErrInvalidArgument
	}
	salt := db[len(db)-sLen:]

	h0 := scratch[emLen-hLen-1 : emLen-1]
	h.Reset()
	h.Write(pssPadding1[:])
	h.Write(mHash)
	h.Write(salt)
	h.Sum(h0[:0])

	if !ctutil.Equal(h0, hp) {
		return ErrInvalidArgument
	}
	return nil
}
