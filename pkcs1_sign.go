// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rsapad

import (
	"github.com/bastionzero/rsapad/ctutil"
)

// maxDigestInfoLen bounds the encoded T so that every embedded DER
// length fits in a single byte.
const maxDigestInfoLen = 0x80

// PadPKCS1v15Sig writes the PKCS #1 v1.5 signature encoding of digest
// into em:
//
//	EM = 0x00 || 0x01 || 0xFF..0xFF || 0x00 || T
//
// with at least eight bytes of 0xFF. The shape of T depends on oid and
// flags:
//
//   - oid non-empty: T is the DigestInfo SEQUENCE wrapping oid (the DER
//     AlgorithmIdentifier bytes, e.g. from DigestInfoOID) and the digest
//     as an OCTET STRING.
//   - oid empty, flags zero: T = 0x04 || len || digest, the bare OCTET
//     STRING historically used with MD5.
//   - FlagNoASN1: T is the digest itself, no wrapping.
//
// The only recognized flag bit is FlagNoASN1.
func PadPKCS1v15Sig(em, digest, oid []byte, flags Flags) error {
	if flags&^FlagNoASN1 != 0 {
		return ErrInvalidArgument
	}

	k := len(em)
	hLen := len(digest)
	var tLen int
	switch {
	case flags&FlagNoASN1 != 0:
		tLen = hLen
	case len(oid) > 0:
		// SEQUENCE { SEQUENCE { OID, params }, OCTET STRING }
		tLen = 6 + len(oid) + hLen
	default:
		tLen = 2 + hLen
	}
	if tLen > maxDigestInfoLen || k < tLen+11 {
		return ErrInvalidArgument
	}

	em[0] = 0x00
	em[1] = 0x01
	for i := 2; i < k-tLen-1; i++ {
		em[i] = 0xff
	}
	em[k-tLen-1] = 0x00

	t := em[k-tLen:]
	switch {
	case flags&FlagNoASN1 != 0:
		copy(t, digest)
	case len(oid) > 0:
		t[0] = 0x30
		t[1] = byte(tLen - 2)
		t[2] = 0x30
		t[3] = byte(len(oid))
		copy(t[4:], oid)
		t[4+len(oid)] = 0x04
		t[5+len(oid)] = byte(hLen)
		copy(t[6+len(oid):], digest)
	default:
		t[0] = 0x04
		t[1] = byte(hLen)
		copy(t[2:], digest)
	}
	return nil
}

// CheckPKCS1v15Sig reports whether em is exactly the PKCS #1 v1.5
// signature encoding of digest under oid and flags. The expected block
// is rebuilt in scratch, which must be at least len(em) bytes, and the
// two are compared over their full length in constant time. A mismatch
// is ErrVerification; a block that could not even be constructed for
// these arguments is ErrInvalidArgument.
func CheckPKCS1v15Sig(em, digest, oid []byte, flags Flags, scratch []byte) error {
	k := len(em)
	if len(scratch) < k {
		return ErrInvalidArgument
	}

	expected := scratch[:k]
	ctutil.Wipe(expected)
	if err := PadPKCS1v15Sig(expected, digest, oid, flags); err != nil {
		return err
	}
	if !ctutil.Equal(em, expected) {
		return ErrVerification
	}
	return nil
}

// VerifyPKCS1v15Sig checks em against each candidate AlgorithmIdentifier
// in oids in order, succeeding on the first match. With an empty
// candidate set, or after every candidate has failed when
// FlagOptionalHashOID is set, the block is checked once more against the
// raw digest with no DigestInfo wrapping. The result of the last
// attempt is the result. The only recognized flag bit is
// FlagOptionalHashOID; scratch needs len(em) bytes as in
// CheckPKCS1v15Sig.
func VerifyPKCS1v15Sig(em, digest []byte, oids [][]byte, flags Flags, scratch []byte) error {
	if flags&^FlagOptionalHashOID != 0 {
		return ErrInvalidArgument
	}

	if len(oids) == 0 {
		return CheckPKCS1v15Sig(em, digest, nil, FlagNoASN1, scratch)
	}

	var err error
	for _, oid := range oids {
		err = CheckPKCS1v15Sig(em, digest, oid, 0, scratch)
		if err == nil {
			return nil
		}
	}
	if flags&FlagOptionalHashOID != 0 {
		err = CheckPKCS1v15Sig(em, digest, nil, FlagNoASN1, scratch)
	}
	return err
}
