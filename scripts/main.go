package main

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/bastionzero/rsapad"
)

func main() {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}

	msg := "a message"
	fmt.Println("runnin...")
	hasher := sha256.New()

	hasher.Write([]byte(msg))

	mHash := hasher.Sum(nil)

	em := make([]byte, key.PublicKey.Size())
	oid, _ := rsapad.DigestInfoOID(crypto.SHA256)
	err = rsapad.PadPKCS1v15Sig(em, mHash, oid, 0)
	if err == nil {
		s := new(big.Int).Exp(new(big.Int).SetBytes(em), key.D, key.PublicKey.N)
		sig := s.FillBytes(make([]byte, key.PublicKey.Size()))
		err = rsa.VerifyPKCS1v15(&key.PublicKey, crypto.SHA256, mHash, sig)
		if err == nil {
			fmt.Println("you done it!")
		}
	}
	if err != nil {
		panic(err)
	}

	// then PSS and OAEP once over, padding side only
	scratch := make([]byte, len(em))
	if err := rsapad.PadPSS(sha256.New(), rand.Reader, em, mHash, nil, 32, key.PublicKey.N.BitLen()); err != nil {
		panic(err)
	}
	if err := rsapad.VerifyPSS(sha256.New(), em, mHash, 32, key.PublicKey.N.BitLen(), scratch); err != nil {
		panic(err)
	}
	if err := rsapad.PadOAEP(sha256.New(), rand.Reader, em, []byte(msg), nil, nil); err != nil {
		panic(err)
	}
	out := make([]byte, len(em))
	if n, err := rsapad.UnpadOAEP(sha256.New(), em, nil, out, scratch); err != nil {
		panic(err)
	} else {
		fmt.Printf("oaep says: %s\n", out[:n])
	}
}
