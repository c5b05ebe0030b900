// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rsapad

import (
	"crypto/subtle"
	"io"
)

// PadPKCS1v15 writes the PKCS #1 v1.5 encryption encoding of msg into
// em:
//
//	EM = 0x00 || 0x02 || PS || 0x00 || msg
//
// where PS is len(em)-len(msg)-3 nonzero random bytes drawn from
// random, so len(em) must be at least len(msg)+11. em is the full
// width of the RSA modulus and must not alias msg. Errors from random
// are returned unchanged.
func PadPKCS1v15(random io.Reader, em, msg []byte) error {
	k := len(em)
	if k < len(msg)+11 {
		return ErrInvalidArgument
	}

	em[0] = 0x00
	em[1] = 0x02
	ps, mm := em[2:k-len(msg)-1], em[k-len(msg):]
	if err := fillNonZeroBytes(random, ps); err != nil {
		return err
	}
	em[k-len(msg)-1] = 0x00
	copy(mm, msg)
	return nil
}

// fillNonZeroBytes draws len(s) bytes from random, then redraws each
// zero byte individually until it is nonzero. Not constant-time; this
// runs on the trusted (encrypting) side only.
func fillNonZeroBytes(random io.Reader, s []byte) error {
	if _, err := io.ReadFull(random, s); err != nil {
		return err
	}
	for i := range s {
		for s[i] == 0x00 {
			if _, err := io.ReadFull(random, s[i:i+1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// UnpadPKCS1v15 parses a PKCS #1 v1.5 encryption block and recovers the
// embedded plaintext. The recovered length is always returned; when out
// is nil that is the whole result, and when out is too short the length
// comes back with ErrBufferTooSmall so the caller can retry.
//
// The format-byte checks accumulate into a single validity bit with no
// early return. The scan for the delimiter does stop at the first zero:
// by itself a branchless scan would not close the decryption oracle, so
// Bleichenbacher-style attacks must be handled at the protocol layer
// regardless.
func UnpadPKCS1v15(em, out []byte) (int, error) {
	k := len(em)
	if k < 2 {
		return 0, ErrInvalidArgument
	}

	valid := subtle.ConstantTimeByteEq(em[0], 0x00)
	valid &= subtle.ConstantTimeByteEq(em[1], 0x02)

	sep := 2
	for sep < k && em[sep] != 0x00 {
		sep++
	}
	found := 0
	if sep < k {
		found = 1
	}
	valid &= found

	if valid != 1 {
		return 0, ErrInvalidArgument
	}

	n := k - sep - 1
	if out == nil {
		return n, nil
	}
	if len(out) < n {
		return n, ErrBufferTooSmall
	}
	copy(out, em[sep+1:])
	return n, nil
}
