package rsapad

import (
	"errors"
)

var (
	// ErrInvalidArgument covers malformed padding, length preconditions,
	// unrecognized flag bits, and structural parse failures on the
	// remove and verify paths.
	ErrInvalidArgument = errors.New("rsapad: invalid argument")

	// ErrBufferTooSmall is returned when the caller's output buffer is
	// shorter than the recovered plaintext. The required length is
	// returned alongside it.
	ErrBufferTooSmall = errors.New("rsapad: output buffer too small")

	// ErrVerification is returned when a PKCS #1 v1.5 signature block
	// does not match the expected encoding for the given digest.
	ErrVerification = errors.New("rsapad: signature verification failed")
)

// Flags selects optional behavior on the PKCS #1 v1.5 signature paths.
// The zero value is correct for everything else; any bit a function does
// not recognize makes it fail with ErrInvalidArgument.
type Flags uint32

const (
	// FlagNoASN1 makes PadPKCS1v15Sig and CheckPKCS1v15Sig place the raw
	// digest into the block with no DigestInfo wrapping.
	FlagNoASN1 Flags = 1 << iota

	// FlagOptionalHashOID makes VerifyPKCS1v15Sig fall back to the raw
	// digest comparison after every supplied OID has failed.
	FlagOptionalHashOID
)

// PSSBlockLen returns the byte length of the block exchanged with the
// exponentiation primitive for an nBits-bit modulus. When nBits ≡ 1
// (mod 8) this is one byte more than the PSS working length, and that
// leading byte is always 0x00.
func PSSBlockLen(nBits int) int {
	return (nBits + 7) / 8
}

// pssEMLen is the PSS working length emLen = ceil((nBits-1)/8).
func pssEMLen(nBits int) int {
	return (nBits + 6) / 8
}
