package core

import "math/rand/v2"

// NewRNG creates a deterministic random source from the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillSparse fills buf with cells that are independently alive with the
// given probability.
func FillSparse(r *rand.Rand, buf []uint8, chance float64) {
	for i := range buf {
		if r.Float64() < chance {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
}
