package window_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/algokit/window"
)

// BenchmarkMaxSlidingWindow_100k_k100 measures the deque over 100,000 values.
func BenchmarkMaxSlidingWindow_100k_k100(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	nums := make([]int, 100_000)
	for i := range nums {
		nums[i] = rng.Intn(1_000_000)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = window.MaxSlidingWindow(nums, 100)
	}
}

// BenchmarkMinWindow_Long measures the variable window on a 50k-rune string.
func BenchmarkMinWindow_Long(b *testing.B) {
	s := strings.Repeat("ADOBECODEBANC", 4000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = window.MinWindow(s, "ABCDE")
	}
}
