package rsapad

import (
	"crypto"
	"fmt"
	"hash"
	"sort"
	"strings"

	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"

	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/sha3"
)

// maxDigestLen is the largest digest the package handles (SHA-512,
// SHA3-512, BLAKE2b-512). Fixed-size stack buffers for intermediate
// digests are dimensioned by it.
const maxDigestLen = 64

// digestNames maps the spellings accepted by ParseDigest. The OID-bearing
// subset (see DigestOIDs) is what PKCS #1 v1.5 signatures can wrap; the
// rest work with MGF1, OAEP, and PSS, which carry no algorithm identifier.
var digestNames = map[string]crypto.Hash{
	"md5":         crypto.MD5,
	"sha1":        crypto.SHA1,
	"sha224":      crypto.SHA224,
	"sha256":      crypto.SHA256,
	"sha384":      crypto.SHA384,
	"sha512":      crypto.SHA512,
	"sha512-224":  crypto.SHA512_224,
	"sha512-256":  crypto.SHA512_256,
	"sha3-256":    crypto.SHA3_256,
	"sha3-384":    crypto.SHA3_384,
	"sha3-512":    crypto.SHA3_512,
	"blake2b-256": crypto.BLAKE2b_256,
	"blake2b-384": crypto.BLAKE2b_384,
	"blake2b-512": crypto.BLAKE2b_512,
}

// ParseDigest resolves a digest name like "sha256" or "blake2b-512" to
// its crypto.Hash. Matching is case-insensitive.
func ParseDigest(name string) (crypto.Hash, error) {
	alg, ok := digestNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("rsapad: unknown digest %q (supported: %s)", name, strings.Join(DigestNames(), ", "))
	}
	return alg, nil
}

// DigestNames lists the names ParseDigest accepts, sorted.
func DigestNames() []string {
	names := make([]string, 0, len(digestNames))
	for name := range digestNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDigest returns a streaming hash for alg, or ErrInvalidArgument if
// alg is not registered. The blank imports above register every digest
// in DigestNames, so anything ParseDigest returns is constructible.
func NewDigest(alg crypto.Hash) (hash.Hash, error) {
	if !alg.Available() {
		return nil, ErrInvalidArgument
	}
	return alg.New(), nil
}

// DigestLen returns the output length in bytes of alg.
func DigestLen(alg crypto.Hash) int {
	return alg.Size()
}
