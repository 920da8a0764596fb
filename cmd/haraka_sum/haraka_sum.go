// Command haraka_sum reads exactly 32 or 64 bytes on stdin, hashes them with
// the selected Haraka v2 variant, and prints the 32-byte digest as
// hexadecimal. Input of any other length is an error: the hash functions
// have no padding and no streaming mode.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codahale/haraka"
)

func main() {
	log := slog.New(slog.Default().Handler())

	size := flag.Int("size", 256, "input size in bits (256 or 512)")
	rounds := flag.Int("rounds", 5, "round count (5 or 6)")
	flag.Parse()

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Error("failed to read input", "err", err)
		os.Exit(1)
	}

	digest, err := sum(input, *size, *rounds)
	if err != nil {
		log.Error("invalid input", "err", err)
		os.Exit(1)
	}

	fmt.Printf("%x\n", digest)
}

func sum(input []byte, size, rounds int) ([32]byte, error) {
	switch {
	case size == 256 && len(input) != 32:
		return [32]byte{}, fmt.Errorf("need exactly 32 bytes of input, got %d", len(input))
	case size == 512 && len(input) != 64:
		return [32]byte{}, fmt.Errorf("need exactly 64 bytes of input, got %d", len(input))
	}

	switch {
	case size == 256 && rounds == 5:
		return haraka.Sum256((*[32]byte)(input)), nil
	case size == 256 && rounds == 6:
		return haraka.Sum256R6((*[32]byte)(input)), nil
	case size == 512 && rounds == 5:
		return haraka.Sum512((*[64]byte)(input)), nil
	case size == 512 && rounds == 6:
		return haraka.Sum512R6((*[64]byte)(input)), nil
	default:
		return [32]byte{}, fmt.Errorf("unsupported size %d or rounds %d", size, rounds)
	}
}
