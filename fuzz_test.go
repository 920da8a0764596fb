package haraka_test

import (
	"crypto/sha3"
	"testing"

	"github.com/codahale/haraka"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzSum256 checks determinism, round-count distinctness, and single-bit
// avalanche over fuzzed inputs.
func FuzzSum256(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("haraka sum256"))

	for range 10 {
		seed := make([]byte, 64)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		var in [32]byte
		for i := range in {
			b, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			in[i] = b
		}
		bit, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		d1 := haraka.Sum256(&in)
		d2 := haraka.Sum256(&in)
		if d1 != d2 {
			t.Errorf("Sum256 is not deterministic: %x != %x", d1[:], d2[:])
		}

		if d6 := haraka.Sum256R6(&in); d6 == d1 {
			t.Errorf("Sum256 and Sum256R6 collide on %x", in[:])
		}

		flipped := in
		flipped[int(bit)%256/8] ^= 1 << (bit % 8)
		if df := haraka.Sum256(&flipped); df == d1 {
			t.Errorf("flipping bit %d of %x left the digest unchanged", bit%256, in[:])
		}
	})
}

// FuzzSum512 additionally checks that the keyed variant agrees with the
// unkeyed one under a zero key and diverges under a nonzero key.
func FuzzSum512(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("haraka sum512"))

	for range 10 {
		seed := make([]byte, 160)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		var in, key [64]byte
		for i := range in {
			b, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			in[i] = b
		}
		for i := range key {
			b, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			key[i] = b
		}
		bit, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		d1 := haraka.Sum512(&in)
		d2 := haraka.Sum512(&in)
		if d1 != d2 {
			t.Errorf("Sum512 is not deterministic: %x != %x", d1[:], d2[:])
		}

		if d6 := haraka.Sum512R6(&in); d6 == d1 {
			t.Errorf("Sum512 and Sum512R6 collide on %x", in[:])
		}

		flipped := in
		flipped[int(bit)%512/8] ^= 1 << (bit % 8)
		if df := haraka.Sum512(&flipped); df == d1 {
			t.Errorf("flipping bit %d of %x left the digest unchanged", bit%512, in[:])
		}

		var zero [64]byte
		if dk := haraka.Sum512Keyed(&in, &zero); dk != d1 {
			t.Errorf("Sum512Keyed(x, 0) = %x, want Sum512(x) = %x", dk[:], d1[:])
		}
		if key != zero {
			if dk := haraka.Sum512Keyed(&in, &key); dk == d1 {
				t.Errorf("Sum512Keyed(x, k) matches Sum512(x) for nonzero key %x", key[:])
			}
		}
	})
}
