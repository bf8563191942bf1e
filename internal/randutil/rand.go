package randutil

import "math/rand"

// New returns a *rand.Rand seeded deterministically from the provided
// int64. The seed is passed through a finalising mix so that adjacent
// seeds (table 0, table 1, ...) do not produce correlated shuffles.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(int64(mix(uint64(seed)))))
}

func mix(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
