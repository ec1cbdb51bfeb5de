// Command wbaes generates and evaluates a Chow et al. white-box AES-128
// table network, and compares it against a plain AES-128 reference.
package main

import (
	"fmt"
	"os"

	"github.com/AeonDave/wbaes/internal/keyschedule"
	"github.com/AeonDave/wbaes/internal/refaes"
	"github.com/AeonDave/wbaes/internal/rng"
	"github.com/AeonDave/wbaes/internal/wbaes"
)

// sampleKey and samplePT are a fixed AES-128 known-answer vector (the first
// ECB block of NIST SP 800-38A F.1.1, ciphertext 3ad77bb40d7a3660a89ecaf32466ef97):
// both subcommands run against this fixed block, taking no flags.
var (
	sampleKey = [16]byte{
		0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6,
		0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c,
	}
	samplePT = [16]byte{
		0x6b, 0xc1, 0xbe, 0xe2, 0x2e, 0x40, 0x9f, 0x96,
		0xe9, 0x3d, 0x7e, 0x11, 0x73, 0x93, 0x17, 0x2a,
	}
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "wbaes:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 1 {
		return usageError()
	}

	switch args[0] {
	case "aes":
		return runAES()
	case "wbaes":
		return runWBAES()
	case "-h", "--help", "help":
		printUsage(os.Stdout)
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	printUsage(os.Stderr)
	return fmt.Errorf("unknown subcommand")
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "usage: wbaes <aes|wbaes>")
}

func runAES() error {
	ct := refaes.Encrypt(sampleKey, samplePT)
	fmt.Printf("ciphertext: %x\n", ct)
	return nil
}

func runWBAES() error {
	drbg, err := rng.NewFromEntropy()
	if err != nil {
		return fmt.Errorf("constructing random source: %w", err)
	}

	w := keyschedule.Expand(sampleKey)
	bundle, ext, err := wbaes.GenerateEncryptionTable(w, drbg)
	if err != nil {
		return fmt.Errorf("generating table network: %w", err)
	}

	in := wbaes.EncodeExternal(ext, samplePT)
	out := wbaes.Evaluate(bundle, in)
	ct := wbaes.DecodeExternal(ext, out)

	reference := refaes.Encrypt(sampleKey, samplePT)
	fmt.Printf("table network ciphertext: %x\n", ct)
	fmt.Printf("matches reference AES-128: %v\n", ct == reference)
	return nil
}
