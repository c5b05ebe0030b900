package rsapad

import (
	"crypto"
)

// These are the AlgorithmIdentifier halves of the ASN1 DER structure:
//
//	DigestInfo ::= SEQUENCE {
//	  digestAlgorithm AlgorithmIdentifier,
//	  digest OCTET STRING
//	}
//
// For performance, we don't use the generic ASN1 encoder. Rather, we
// precompute the OID bytes for each digest, in both encodings seen in
// the wild: with an explicit NULL parameter and with the parameter
// field omitted. Signers emit the NULL form; verifiers accept either.
var digestOIDs = map[crypto.Hash][2][]byte{
	crypto.MD5: {
		{0x06, 0x08, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x05, 0x05, 0x00},
		{0x06, 0x08, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x05},
	},
	crypto.SHA1: {
		{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x1a, 0x05, 0x00},
		{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x1a},
	},
	crypto.SHA256: {
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00},
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01},
	},
	crypto.SHA384: {
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02, 0x05, 0x00},
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02},
	},
	crypto.SHA512: {
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03, 0x05, 0x00},
		{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03},
	},
}

// DigestOIDs returns the DER AlgorithmIdentifier encodings accepted for
// hash in a PKCS #1 v1.5 DigestInfo, ordered NULL-parameter form first.
// The slices are suitable as the oid argument of PadPKCS1v15Sig and as
// the candidate set of VerifyPKCS1v15Sig. ok is false for digests with
// no assigned encoding here; those can still sign raw via FlagNoASN1.
func DigestOIDs(hash crypto.Hash) (oids [][]byte, ok bool) {
	forms, ok := digestOIDs[hash]
	if !ok {
		return nil, false
	}
	return [][]byte{forms[0], forms[1]}, true
}

// DigestInfoOID returns the signing-side encoding (the NULL-parameter
// form) for hash.
func DigestInfoOID(hash crypto.Hash) (oid []byte, ok bool) {
	forms, ok := digestOIDs[hash]
	if !ok {
		return nil, false
	}
	return forms[0], true
}
