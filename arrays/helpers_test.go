package arrays_test

import "math/rand"

// newRand returns a deterministic source so property tests are reproducible.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// randomInts returns n values drawn uniformly from [lo, hi].
func randomInts(rng *rand.Rand, n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}
	return out
}
