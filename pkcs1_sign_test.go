package rsapad

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PKCS1v15 signature padding", func() {

	// every digest with an assigned AlgorithmIdentifier
	tableDigests := []crypto.Hash{crypto.MD5, crypto.SHA1, crypto.SHA256, crypto.SHA384, crypto.SHA512}

	Context("Applying", func() {

		It("Produces the documented layout for SHA-256", func() {
			mHash := make([]byte, 32)
			oid, ok := DigestInfoOID(crypto.SHA256)
			Expect(ok).To(BeTrue())

			em := make([]byte, 256)
			Expect(PadPKCS1v15Sig(em, mHash, oid, 0)).To(Succeed())

			expected := []byte{0x00, 0x01}
			for i := 0; i < 202; i++ {
				expected = append(expected, 0xff)
			}
			expected = append(expected, 0x00, 0x30, 0x31, 0x30, 0x0d)
			expected = append(expected, oid...)
			expected = append(expected, 0x04, 0x20)
			expected = append(expected, mHash...)
			Expect(em).To(Equal(expected))
		})

		It("Keeps at least eight bytes of 0xFF padding", func() {
			mHash := make([]byte, 32)
			oid, _ := DigestInfoOID(crypto.SHA256)

			// tLen = 6 + 13 + 32 = 51; the smallest legal block is 62
			em := make([]byte, 62)
			Expect(PadPKCS1v15Sig(em, mHash, oid, 0)).To(Succeed())
			Expect(em[2:10]).To(Equal(bytes.Repeat([]byte{0xff}, 8)))

			Expect(PadPKCS1v15Sig(make([]byte, 61), mHash, oid, 0)).To(MatchError(ErrInvalidArgument))
		})

		It("Falls back to a bare OCTET STRING when no OID is given", func() {
			mHash := []byte{0xde, 0xad, 0xbe, 0xef}
			em := make([]byte, 32)
			Expect(PadPKCS1v15Sig(em, mHash, nil, 0)).To(Succeed())
			Expect(em[len(em)-6:]).To(Equal([]byte{0x04, 0x04, 0xde, 0xad, 0xbe, 0xef}))
		})

		It("Places the digest directly under FlagNoASN1", func() {
			mHash := []byte{0xde, 0xad, 0xbe, 0xef}
			em := make([]byte, 32)
			Expect(PadPKCS1v15Sig(em, mHash, nil, FlagNoASN1)).To(Succeed())
			Expect(em[len(em)-4:]).To(Equal(mHash))
			Expect(em[len(em)-5]).To(Equal(byte(0x00)))
		})

		It("Rejects a DigestInfo longer than the 0x80-byte bound", func() {
			mHash := make([]byte, 64)
			longOID := make([]byte, 0x80-6-64+1)
			em := make([]byte, 512)
			Expect(PadPKCS1v15Sig(em, mHash, longOID, 0)).To(MatchError(ErrInvalidArgument))
		})

		It("Rejects unrecognized flag bits", func() {
			em := make([]byte, 64)
			Expect(PadPKCS1v15Sig(em, make([]byte, 20), nil, FlagOptionalHashOID)).To(MatchError(ErrInvalidArgument))
		})
	})

	Context("Checking a single candidate", func() {

		scratch := make([]byte, 256)

		It("Accepts both OID forms for every digest in the table", func() {
			for _, alg := range tableDigests {
				mHash := make([]byte, alg.Size())
				_, err := rand.Read(mHash)
				Expect(err).To(BeNil())

				oids, ok := DigestOIDs(alg)
				Expect(ok).To(BeTrue(), fmt.Sprintf("no OID entry for %v", alg))

				for form, oid := range oids {
					em := make([]byte, 256)
					Expect(PadPKCS1v15Sig(em, mHash, oid, 0)).To(Succeed())
					Expect(CheckPKCS1v15Sig(em, mHash, oid, 0, scratch)).To(Succeed(),
						fmt.Sprintf("%v form %d failed to verify its own encoding", alg, form))
					Expect(VerifyPKCS1v15Sig(em, mHash, oids, 0, scratch)).To(Succeed(),
						fmt.Sprintf("%v form %d rejected by the candidate set", alg, form))
				}
			}
		})

		It("Fails with the wrong digest", func() {
			mHash := make([]byte, 32)
			oid, _ := DigestInfoOID(crypto.SHA256)

			em := make([]byte, 256)
			Expect(PadPKCS1v15Sig(em, mHash, oid, 0)).To(Succeed())

			wrong := make([]byte, 32)
			wrong[7] = 0x01
			Expect(CheckPKCS1v15Sig(em, wrong, oid, 0, scratch)).To(MatchError(ErrVerification))
		})

		It("Fails with a tampered padding byte", func() {
			mHash := make([]byte, 32)
			oid, _ := DigestInfoOID(crypto.SHA256)

			em := make([]byte, 256)
			Expect(PadPKCS1v15Sig(em, mHash, oid, 0)).To(Succeed())
			em[5] = 0xfe
			Expect(CheckPKCS1v15Sig(em, mHash, oid, 0, scratch)).To(MatchError(ErrVerification))
		})

		It("Requires a block-sized scratch region", func() {
			em := make([]byte, 256)
			Expect(CheckPKCS1v15Sig(em, make([]byte, 32), nil, 0, make([]byte, 255))).To(MatchError(ErrInvalidArgument))
		})
	})

	Context("Verifying against a candidate set", func() {

		scratch := make([]byte, 128)
		mHash := make([]byte, 20)

		It("Falls back to the raw digest when the set is empty", func() {
			em := make([]byte, 128)
			Expect(PadPKCS1v15Sig(em, mHash, nil, FlagNoASN1)).To(Succeed())
			Expect(VerifyPKCS1v15Sig(em, mHash, nil, 0, scratch)).To(Succeed())
		})

		It("Falls back after OID failures only when FlagOptionalHashOID is set", func() {
			em := make([]byte, 128)
			Expect(PadPKCS1v15Sig(em, mHash, nil, FlagNoASN1)).To(Succeed())

			oids, _ := DigestOIDs(crypto.SHA1)
			Expect(VerifyPKCS1v15Sig(em, mHash, oids, 0, scratch)).To(MatchError(ErrVerification))
			Expect(VerifyPKCS1v15Sig(em, mHash, oids, FlagOptionalHashOID, scratch)).To(Succeed())
		})

		It("Rejects unrecognized flag bits", func() {
			em := make([]byte, 128)
			Expect(VerifyPKCS1v15Sig(em, mHash, nil, FlagNoASN1, scratch)).To(MatchError(ErrInvalidArgument))
		})
	})
})
