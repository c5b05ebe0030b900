// Package ctutil holds the constant-time byte-slice helpers shared by
// the padding codecs.
package ctutil

import (
	"crypto/subtle"
)

// Equal reports whether a and b have the same contents, examining every
// byte regardless of where the first difference is. Slices of different
// lengths are unequal.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Wipe zeroes b. Use it on scratch that held plaintext, seeds, or
// unmasked data blocks before giving the memory back.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
