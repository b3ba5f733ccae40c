package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/tree"
)

func TestLevelOrder(t *testing.T) {
	root := tree.FromLevelOrder([]int{3, 9, 20, nul, nul, 15, 7})
	assert.Equal(t, [][]int{{3}, {9, 20}, {15, 7}}, tree.LevelOrder(root))
	assert.Nil(t, tree.LevelOrder(nil))
	assert.Equal(t, [][]int{{1}, {2}, {3}}, tree.LevelOrder(tree.FromLevelOrder([]int{1, 2, nul, 3})))
}

func TestIsValidBST(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		want bool
	}{
		{"small", []int{2, 1, 3}, true},
		{"right subtree violates root", []int{5, 1, 4, nul, nul, 3, 6}, false},
		{"grandchild violates root", []int{5, 4, 6, nul, nul, 3, 7}, false},
		{"duplicates are invalid", []int{2, 2, 2}, false},
		{"empty", nil, true},
		{"single", []int{1}, true},
		{"extreme values", []int{0, -1 << 62, 1 << 62}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tree.IsValidBST(tree.FromLevelOrder(tc.vals)))
		})
	}
}

func TestLowestCommonAncestor(t *testing.T) {
	root := tree.FromLevelOrder([]int{6, 2, 8, 0, 4, 7, 9, nul, nul, 3, 5})
	two, eight := root.Left, root.Right
	four := two.Right

	got := tree.LowestCommonAncestor(root, two, eight)
	require.NotNil(t, got)
	assert.Equal(t, 6, got.Val)

	assert.Same(t, two, tree.LowestCommonAncestor(root, two, four), "a node descends from itself")
	assert.Same(t, four, tree.LowestCommonAncestor(root, four.Left, four.Right))
	assert.Nil(t, tree.LowestCommonAncestor(nil, two, four))
	assert.Nil(t, tree.LowestCommonAncestor(root, nil, four))
}

// TestDeepSkewedTree runs every traversal over a 100k-deep chain.
func TestDeepSkewedTree(t *testing.T) {
	const depth = 100_000
	nodes := make([]tree.Node, depth)
	for i := range nodes {
		nodes[i].Val = i
		if i > 0 {
			nodes[i-1].Right = &nodes[i]
		}
	}
	root := &nodes[0]

	assert.True(t, tree.IsValidBST(root))
	assert.Len(t, tree.LevelOrder(root), depth)
	assert.Same(t, &nodes[depth-2], tree.LowestCommonAncestor(root, &nodes[depth-2], &nodes[depth-1]))

	var c tree.Codec
	back, err := c.Deserialize(c.Serialize(root))
	require.NoError(t, err)
	assert.True(t, tree.Equal(root, back))
}
