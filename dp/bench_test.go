package dp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/dp"
)

func BenchmarkCoinChange(b *testing.B) {
	coins := []int{1, 7, 13, 29, 101}
	for i := 0; i < b.N; i++ {
		_ = dp.CoinChange(coins, 10_000)
	}
}

func BenchmarkLengthOfLIS(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	nums := make([]int, 10_000)
	for i := range nums {
		nums[i] = r.Intn(1_000_000)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dp.LengthOfLIS(nums)
	}
}

func BenchmarkCanPartition(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	nums := make([]int, 200)
	for i := range nums {
		nums[i] = r.Intn(100) + 1
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dp.CanPartition(nums)
	}
}
