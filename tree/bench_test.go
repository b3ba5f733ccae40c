package tree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/tree"
)

func BenchmarkCodec_RoundTrip(b *testing.B) {
	root := randomTree(rand.New(rand.NewSource(42)), 10_000)
	var c tree.Codec
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Deserialize(c.Serialize(root))
	}
}

func BenchmarkIsValidBST(b *testing.B) {
	vals := make([]int, 1<<14-1)
	// complete BST by in-order numbering of a heap layout
	var fill func(i, lo, hi int)
	fill = func(i, lo, hi int) {
		if i >= len(vals) {
			return
		}
		mid := (lo + hi) / 2
		vals[i] = mid
		fill(2*i+1, lo, mid-1)
		fill(2*i+2, mid+1, hi)
	}
	fill(0, 0, len(vals)-1)
	root := tree.FromLevelOrder(vals)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.IsValidBST(root)
	}
}
