package main

import (
	"encoding/hex"
	"fmt"
	"hash"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bastionzero/rsapad"
)

// Config carries the options shared across subcommands. Every flag is
// also settable from the environment as RSAPAD_<NAME>.
type Config struct {
	Hash    string `mapstructure:"hash"`
	Scheme  string `mapstructure:"scheme"`
	Size    int    `mapstructure:"size"`
	Bits    int    `mapstructure:"bits"`
	Label   string `mapstructure:"label"`
	Seed    string `mapstructure:"seed"`
	Salt    string `mapstructure:"salt"`
	SaltLen int    `mapstructure:"saltlen"`
	NoASN1  bool   `mapstructure:"noasn1"`
	AnyOID  bool   `mapstructure:"anyoid"`
}

var c = &Config{}

var rootCmd = &cobra.Command{
	Use:   "rsapad",
	Short: "Build and parse RSA message-encoding blocks",
	Long: `rsapad applies and removes the PKCS #1 message encodings (v1.5
encryption and signature padding, OAEP, PSS) on hex-encoded blocks,
without touching any key material. Feed the output to your own modular
exponentiation, or feed a decrypted block back in to see how it parses.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	viper.SetEnvPrefix("RSAPAD")
	viper.AutomaticEnv()
}

// bindFlags hooks a command's flag set into viper so that flags,
// RSAPAD_* environment variables, and defaults resolve in that order.
// Binding happens in PreRun, not init, so commands with same-named
// flags don't steal each other's values.
func bindFlags(cmd *cobra.Command, args []string) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		log.Fatalf("bind flags: %v", err)
	}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("read config: %v", err)
	}
}

// argBytes decodes a required hex argument.
func argBytes(name, arg string) []byte {
	b, err := hex.DecodeString(arg)
	if err != nil {
		log.Fatalf("%s: not valid hex: %v", name, err)
	}
	return b
}

// optBytes decodes an optional hex flag value; empty means absent.
func optBytes(name, val string) []byte {
	if val == "" {
		return nil
	}
	return argBytes(name, val)
}

// mustDigest resolves a digest name to a fresh streaming hash.
func mustDigest(name string) hash.Hash {
	alg, err := rsapad.ParseDigest(name)
	if err != nil {
		log.Fatalf("%v", err)
	}
	h, err := rsapad.NewDigest(alg)
	if err != nil {
		log.Fatalf("digest %s is not linked into this binary", name)
	}
	return h
}

func emit(block []byte) {
	fmt.Println(hex.EncodeToString(block))
}
