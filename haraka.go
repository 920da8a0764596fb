// Package haraka implements the Haraka v2 family of short-input hash
// functions: 256-bit and 512-bit fixed-size inputs compressed to a 256-bit
// digest by iterating pairs of AES rounds interleaved with a column-mixing
// permutation, followed by a feed-forward XOR and, for the 512-bit variant,
// truncation.
//
// The implementation is pure Go with no hardware crypto dependencies, so it
// is usable in environments which forbid AES-NI and friends. Input sizes are
// enforced by the type system: there is no support for shorter, longer, or
// streamed input.
//
// The 5-round functions match the published Haraka v2 test vectors and carry
// the reference's preimage-resistance analysis; the 6-round variants trade
// speed for the paper's conjectured collision resistance.
package haraka

import "crypto/subtle"

// Size is the size, in bytes, of every digest produced by this package.
const Size = 32

// Sum256 computes the 5-round Haraka-256 v2 hash of a 256-bit input.
func Sum256(src *[32]byte) [32]byte {
	return sum256(src, 5)
}

// Sum256R6 computes the 6-round Haraka-256 v2 hash of a 256-bit input.
func Sum256R6(src *[32]byte) [32]byte {
	return sum256(src, 6)
}

// Sum512 computes the 5-round Haraka-512 v2 hash of a 512-bit input.
func Sum512(src *[64]byte) [32]byte {
	return sum512(src, nil, 5)
}

// Sum512R6 computes the 6-round Haraka-512 v2 hash of a 512-bit input.
func Sum512R6(src *[64]byte) [32]byte {
	return sum512(src, nil, 6)
}

// Sum512Keyed computes the keyed 5-round Haraka-512 hash: key is XORed into
// the state before the permutation, while the feed-forward still uses the
// original unkeyed input. A zero key makes it equivalent to Sum512.
func Sum512Keyed(src, key *[64]byte) [32]byte {
	return sum512(src, key, 5)
}

// Sum512KeyedR6 is Sum512Keyed with 6 rounds.
func Sum512KeyedR6(src, key *[64]byte) [32]byte {
	return sum512(src, key, 6)
}

// Permute256 applies the 6-round Haraka-256 permutation to a 256-bit state,
// without the feed-forward. On its own this is an invertible mixing step,
// not a one-way function; it is intended as a building block for sponge and
// duplex constructions.
func Permute256(state *[32]byte) {
	var s [2][16]byte
	copy(s[0][:], state[0:16])
	copy(s[1][:], state[16:32])
	permute256(&s, 6)
	copy(state[0:16], s[0][:])
	copy(state[16:32], s[1][:])
}

// Permute512 applies the 6-round Haraka-512 permutation to a 512-bit state,
// without the feed-forward. See Permute256 for caveats.
func Permute512(state *[64]byte) {
	var s [4][16]byte
	for i := range 4 {
		copy(s[i][:], state[i*16:(i+1)*16])
	}
	permute512(&s, 6)
	for i := range 4 {
		copy(state[i*16:(i+1)*16], s[i][:])
	}
}

func sum256(src *[32]byte, rounds int) (dst [32]byte) {
	var s [2][16]byte
	copy(s[0][:], src[0:16])
	copy(s[1][:], src[16:32])

	permute256(&s, rounds)

	// Feed-forward: digest is the full 256-bit state, in lane order.
	subtle.XORBytes(dst[0:16], s[0][:], src[0:16])
	subtle.XORBytes(dst[16:32], s[1][:], src[16:32])
	return dst
}

func sum512(src, key *[64]byte, rounds int) (dst [32]byte) {
	var s [4][16]byte
	for i := range 4 {
		copy(s[i][:], src[i*16:(i+1)*16])
	}
	if key != nil {
		for i := range 4 {
			subtle.XORBytes(s[i][:], s[i][:], key[i*16:(i+1)*16])
		}
	}

	permute512(&s, rounds)

	// Feed-forward with the original input, then truncate to the published
	// word selection: the high halves of lanes 0 and 1, the low halves of
	// lanes 2 and 3.
	var f [64]byte
	for i := range 4 {
		subtle.XORBytes(f[i*16:(i+1)*16], s[i][:], src[i*16:(i+1)*16])
	}
	copy(dst[0:8], f[8:16])
	copy(dst[8:16], f[24:32])
	copy(dst[16:24], f[32:40])
	copy(dst[24:32], f[48:56])
	return dst
}
