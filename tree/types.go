package tree

import (
	"errors"
	"math"
)

// ErrMalformed indicates text that is not a valid codec encoding.
var ErrMalformed = errors.New("tree: malformed encoding")

// Nil marks an absent child in FromLevelOrder input.
const Nil = math.MinInt

// Node is a binary tree node.
type Node struct {
	Val         int
	Left, Right *Node
}
