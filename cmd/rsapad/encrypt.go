package main

import (
	"crypto/rand"
	"log"

	"github.com/spf13/cobra"

	"github.com/bastionzero/rsapad"
)

// padCmd represents the pad command
var padCmd = &cobra.Command{
	Use:    "pad <message-hex>",
	Short:  "Apply encryption padding to a message",
	Args:   cobra.ExactArgs(1),
	PreRun: bindFlags,
	Run: func(cmd *cobra.Command, args []string) {
		msg := argBytes("message", args[0])
		em := make([]byte, c.Size)

		switch c.Scheme {
		case "pkcs1":
			if err := rsapad.PadPKCS1v15(rand.Reader, em, msg); err != nil {
				log.Fatalf("pad pkcs1: %v", err)
			}
		case "oaep":
			h := mustDigest(c.Hash)
			if err := rsapad.PadOAEP(h, rand.Reader, em, msg, []byte(c.Label), optBytes("seed", c.Seed)); err != nil {
				log.Fatalf("pad oaep: %v", err)
			}
		default:
			log.Fatalf("unknown encryption scheme %q (pkcs1, oaep)", c.Scheme)
		}
		emit(em)
	},
}

// unpadCmd represents the unpad command
var unpadCmd = &cobra.Command{
	Use:    "unpad <block-hex>",
	Short:  "Remove encryption padding from a block",
	Args:   cobra.ExactArgs(1),
	PreRun: bindFlags,
	Run: func(cmd *cobra.Command, args []string) {
		em := argBytes("block", args[0])
		out := make([]byte, len(em))

		var n int
		var err error
		switch c.Scheme {
		case "pkcs1":
			n, err = rsapad.UnpadPKCS1v15(em, out)
		case "oaep":
			h := mustDigest(c.Hash)
			scratch := make([]byte, len(em))
			n, err = rsapad.UnpadOAEP(h, em, []byte(c.Label), out, scratch)
		default:
			log.Fatalf("unknown encryption scheme %q (pkcs1, oaep)", c.Scheme)
		}
		if err != nil {
			log.Fatalf("unpad %s: %v", c.Scheme, err)
		}
		emit(out[:n])
	},
}

func init() {
	rootCmd.AddCommand(padCmd)
	rootCmd.AddCommand(unpadCmd)

	for _, cmd := range []*cobra.Command{padCmd, unpadCmd} {
		cmd.Flags().String("scheme", "oaep", "Encryption padding scheme: pkcs1 or oaep")
		cmd.Flags().String("hash", "sha256", "Digest for OAEP label hashing and MGF1")
		cmd.Flags().String("label", "", "OAEP label")
	}
	padCmd.Flags().Int("size", 256, "Block size in bytes (the RSA modulus length)")
	padCmd.Flags().String("seed", "", "Fixed OAEP seed in hex (testing only; normally random)")
}
