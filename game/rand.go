package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Rand is the single source of randomness of a battle. *rand.Rand from
// math/rand/v2 satisfies it. IntN returns a value in [0, n).
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic PCG source. The same seed always yields
// the same battle for the same inputs.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed draws a seed from the operating system.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// percent reports true with probability p/100.
func percent(r Rand, p int) bool {
	return r.IntN(100) < p
}
