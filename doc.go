/*
Package rsapad implements the RSA message-encoding schemes of PKCS #1:
the v1.5 encryption and signature paddings, RSAES-OAEP, and RSASSA-PSS,
together with the MGF1 mask generation function they share.

# Overview

The package converts between application payloads (plaintexts, message
digests) and the fixed-width byte blocks that RSA modular exponentiation
consumes and produces. It deliberately stops at the encoded block: the
exponentiation itself, key generation, and hashing are the caller's
business. A typical encryption flow looks like:

	em := make([]byte, pub.Size())
	if err := rsapad.PadOAEP(sha256.New(), rand.Reader, em, msg, label, nil); err != nil {
	    return err
	}
	c := new(big.Int).Exp(new(big.Int).SetBytes(em), big.NewInt(int64(pub.E)), pub.N)

and the receiving side runs the private-key exponentiation, fills a
block of the same width, and calls [UnpadOAEP] on it.

The padding codecs operate on caller-owned byte slices and perform no
allocation of their own; the remove and verify paths that need working
memory beyond the observed block take an explicit scratch argument.
All functions are reentrant and safe for concurrent use on disjoint
buffers. There is no package-level mutable state.

# Encryption vs. signature paddings

[PadPKCS1v15] and [PadOAEP] fill a block from a plaintext and a random
source; [UnpadPKCS1v15] and [UnpadOAEP] parse an attacker-influenced
block and recover the plaintext. [PadPKCS1v15Sig] and [PadPSS] encode a
message digest; [CheckPKCS1v15Sig], [VerifyPKCS1v15Sig], and
[VerifyPSS] confirm that a block matches a digest. The PKCS #1 v1.5
signature comparison runs in constant time over the full block; PSS
verification returns early on structural defects and compares the
recomputed hash in constant time.

Decryption-side parsing is format validation only. A caller exposing
[UnpadPKCS1v15] or [UnpadOAEP] to untrusted ciphertext still needs
protocol-level defenses against padding-oracle attacks; see the
function documentation.

# Digests

The codecs take a [hash.Hash] wherever they hash, so anything the
caller can construct works for OAEP, PSS, and [MGF1]. Importing this
package registers the SHA-3 and BLAKE2b families alongside the
standard MD5/SHA-1/SHA-2 registrars, and [NewDigest] constructs a
stream for any registered [crypto.Hash]. PKCS #1 v1.5 signatures
additionally need the DigestInfo AlgorithmIdentifier bytes; the
accepted encodings for the classic digest set are in [DigestOIDs].

# Sources

	[1] RFC 8017, PKCS #1: RSA Cryptography Specifications Version 2.2
	[2] https://www.rfc-editor.org/rfc/rfc8017
*/
package rsapad
