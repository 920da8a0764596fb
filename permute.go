package haraka

import "github.com/codahale/haraka/internal/aesenc"

// encRound applies one AES encryption round to a 128-bit lane. It is a
// package variable so tests can substitute a transparent round and observe
// the mixing layer in isolation; outside of tests it is never reassigned.
var encRound = aesenc.Round //nolint:gochecknoglobals // immutable after init

// permute256 applies the Haraka-256 permutation: per round, two AES rounds
// on each lane followed by the 2-lane column mix. Round r consumes
// rc[4r:4r+4], lane-major within each AES application.
func permute256(s *[2][16]byte, rounds int) {
	for r := range rounds {
		s[0] = encRound(s[0], rc[4*r])
		s[1] = encRound(s[1], rc[4*r+1])
		s[0] = encRound(s[0], rc[4*r+2])
		s[1] = encRound(s[1], rc[4*r+3])
		mix2(s)
	}
}

// permute512 applies the Haraka-512 permutation: per round, two AES rounds
// on each lane followed by the 4-lane column mix. Round r consumes
// rc[8r:8r+8].
func permute512(s *[4][16]byte, rounds int) {
	for r := range rounds {
		for j := range 4 {
			s[j] = encRound(s[j], rc[8*r+j])
		}
		for j := range 4 {
			s[j] = encRound(s[j], rc[8*r+4+j])
		}
		mix4(s)
	}
}

// mix2 interleaves the 32-bit columns of the two lanes: the low halves of
// both lanes form the new first lane, the high halves the new second lane.
// It is a bijection on the 32 state bytes.
func mix2(s *[2][16]byte) {
	var t [2][16]byte
	copy(t[0][0:4], s[0][0:4])
	copy(t[0][4:8], s[1][0:4])
	copy(t[0][8:12], s[0][4:8])
	copy(t[0][12:16], s[1][4:8])
	copy(t[1][0:4], s[0][8:12])
	copy(t[1][4:8], s[1][8:12])
	copy(t[1][8:12], s[0][12:16])
	copy(t[1][12:16], s[1][12:16])
	*s = t
}

// mix4 redistributes the 32-bit columns among all four lanes following the
// published Haraka-512 pattern. Writing lane l, column w as l.w, the new
// state is (0.3 2.3 1.3 3.3), (2.0 0.0 3.0 1.0), (2.1 0.1 3.1 1.1),
// (0.2 2.2 1.2 3.2). It is a bijection on the 64 state bytes.
func mix4(s *[4][16]byte) {
	var t [4][16]byte
	copy(t[0][0:4], s[0][12:16])
	copy(t[0][4:8], s[2][12:16])
	copy(t[0][8:12], s[1][12:16])
	copy(t[0][12:16], s[3][12:16])

	copy(t[1][0:4], s[2][0:4])
	copy(t[1][4:8], s[0][0:4])
	copy(t[1][8:12], s[3][0:4])
	copy(t[1][12:16], s[1][0:4])

	copy(t[2][0:4], s[2][4:8])
	copy(t[2][4:8], s[0][4:8])
	copy(t[2][8:12], s[3][4:8])
	copy(t[2][12:16], s[1][4:8])

	copy(t[3][0:4], s[0][8:12])
	copy(t[3][4:8], s[2][8:12])
	copy(t[3][8:12], s[1][8:12])
	copy(t[3][12:16], s[3][8:12])
	*s = t
}
