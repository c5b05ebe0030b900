package rsapad

import (
	"crypto"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Digest registry", func() {

	It("Resolves and constructs every listed digest", func() {
		for _, name := range DigestNames() {
			alg, err := ParseDigest(name)
			Expect(err).To(BeNil(), "ParseDigest rejected its own listing")

			h, err := NewDigest(alg)
			Expect(err).To(BeNil(), "NewDigest failed for a listed digest")
			Expect(h.Size()).To(Equal(DigestLen(alg)))
			Expect(h.Size()).To(BeNumerically("<=", maxDigestLen))
		}
	})

	It("Is case-insensitive and rejects unknown names", func() {
		alg, err := ParseDigest("SHA256")
		Expect(err).To(BeNil())
		Expect(alg).To(Equal(crypto.SHA256))

		_, err = ParseDigest("whirlpool")
		Expect(err).To(HaveOccurred())
	})

	It("Pairs each OID-table entry with its parameterless form", func() {
		for _, alg := range []crypto.Hash{crypto.MD5, crypto.SHA1, crypto.SHA256, crypto.SHA384, crypto.SHA512} {
			oids, ok := DigestOIDs(alg)
			Expect(ok).To(BeTrue())
			Expect(oids).To(HaveLen(2))
			Expect(oids[0]).To(Equal(append(append([]byte{}, oids[1]...), 0x05, 0x00)),
				"the long form must be the short form plus an explicit NULL")

			oid, ok := DigestInfoOID(alg)
			Expect(ok).To(BeTrue())
			Expect(oid).To(Equal(oids[0]))
		}
	})

	It("Has no OID entry for digests outside the classic set", func() {
		_, ok := DigestOIDs(crypto.SHA3_256)
		Expect(ok).To(BeFalse())
	})
})
