package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/tree"
)

func TestCodec_Serialize(t *testing.T) {
	var c tree.Codec
	root := tree.FromLevelOrder([]int{1, 2, 3, nul, nul, 4, 5})
	assert.Equal(t, "1,2,#,#,3,4,#,#,5,#,#", c.Serialize(root))
	assert.Equal(t, "#", c.Serialize(nil))
	assert.Equal(t, "-7,#,#", c.Serialize(&tree.Node{Val: -7}))
}

func TestCodec_Deserialize(t *testing.T) {
	var c tree.Codec
	root, err := c.Deserialize("1,2,#,#,3,4,#,#,5,#,#")
	require.NoError(t, err)
	assert.Equal(t, 1, root.Val)
	assert.Equal(t, 2, root.Left.Val)
	assert.Equal(t, 3, root.Right.Val)
	assert.Equal(t, 4, root.Right.Left.Val)
	assert.Equal(t, 5, root.Right.Right.Val)

	root, err = c.Deserialize("#")
	require.NoError(t, err)
	assert.Nil(t, root)
}

func TestCodec_Malformed(t *testing.T) {
	var c tree.Codec
	for _, data := range []string{
		"",            // no tokens
		"1,#",         // right subtree missing
		"1,#,#,#",     // surplus token
		"1,x,#",       // not a number
		"#,#",         // surplus after empty tree
		"1,,#",        // empty token
		"1,2,#,#,3,#", // truncated
	} {
		_, err := c.Deserialize(data)
		assert.ErrorIs(t, err, tree.ErrMalformed, "data %q", data)
	}
}

// randomTree grows a tree of n nodes by random descent.
func randomTree(r *rand.Rand, n int) *tree.Node {
	var root *tree.Node
	for i := 0; i < n; i++ {
		slot := &root
		for *slot != nil {
			if r.Intn(2) == 0 {
				slot = &(*slot).Left
			} else {
				slot = &(*slot).Right
			}
		}
		*slot = &tree.Node{Val: r.Intn(2001) - 1000}
	}

	return root
}

func TestCodec_RoundTrip(t *testing.T) {
	var c tree.Codec
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		root := randomTree(r, r.Intn(60))
		back, err := c.Deserialize(c.Serialize(root))
		require.NoError(t, err)
		assert.True(t, tree.Equal(root, back), "trial %d", trial)
	}
}
