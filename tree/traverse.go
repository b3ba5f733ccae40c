package tree

// LevelOrder returns the node values grouped by depth, each group left to
// right. A nil root yields nil.
func LevelOrder(root *Node) [][]int {
	if root == nil {
		return nil
	}
	var levels [][]int
	queue := []*Node{root}
	for len(queue) > 0 {
		width := len(queue)
		level := make([]int, 0, width)
		for _, n := range queue[:width] {
			level = append(level, n.Val)
			if n.Left != nil {
				queue = append(queue, n.Left)
			}
			if n.Right != nil {
				queue = append(queue, n.Right)
			}
		}
		queue = queue[width:]
		levels = append(levels, level)
	}

	return levels
}

// bounded is a node together with the open interval its value must fall in.
type bounded struct {
	node         *Node
	lo, hi       int
	hasLo, hasHi bool
}

// IsValidBST reports whether every node's value is strictly greater than all
// values in its left subtree and strictly less than all in its right subtree.
// The empty tree is valid.
func IsValidBST(root *Node) bool {
	stack := []bounded{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.node
		if n == nil {
			continue
		}
		if (f.hasLo && n.Val <= f.lo) || (f.hasHi && n.Val >= f.hi) {
			return false
		}
		stack = append(stack,
			bounded{node: n.Left, lo: f.lo, hasLo: f.hasLo, hi: n.Val, hasHi: true},
			bounded{node: n.Right, lo: n.Val, hasLo: true, hi: f.hi, hasHi: f.hasHi},
		)
	}

	return true
}

// LowestCommonAncestor returns the deepest node of the binary search tree
// rooted at root that has both p and q as descendants (a node descends from
// itself). Nodes are located by value. Any nil argument yields nil.
func LowestCommonAncestor(root, p, q *Node) *Node {
	if root == nil || p == nil || q == nil {
		return nil
	}
	lo, hi := min(p.Val, q.Val), max(p.Val, q.Val)
	for n := root; n != nil; {
		switch {
		case hi < n.Val:
			n = n.Left
		case lo > n.Val:
			n = n.Right
		default:
			return n // the values split here
		}
	}

	return nil
}
