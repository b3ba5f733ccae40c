package tree

// FromLevelOrder builds a tree from its level-order listing, where Nil marks
// an absent child and the children of absent nodes are not listed:
//
//	[]int{3, 9, 20, Nil, Nil, 15, 7}
//
// is 3 with children 9 and 20, and 20 with children 15 and 7. Trailing
// values beyond the last slot are ignored. Empty input or a Nil root yields nil.
func FromLevelOrder(vals []int) *Node {
	if len(vals) == 0 || vals[0] == Nil {
		return nil
	}
	count := 0
	for _, v := range vals {
		if v != Nil {
			count++
		}
	}
	arena := make([]Node, 0, count)
	alloc := func(v int) *Node {
		arena = append(arena, Node{Val: v})
		return &arena[len(arena)-1]
	}

	root := alloc(vals[0])
	queue := []*Node{root}
	for i := 1; i < len(vals) && len(queue) > 0; {
		parent := queue[0]
		queue = queue[1:]
		for _, child := range []**Node{&parent.Left, &parent.Right} {
			if i == len(vals) {
				break
			}
			if vals[i] != Nil {
				*child = alloc(vals[i])
				queue = append(queue, *child)
			}
			i++
		}
	}

	return root
}

// Equal reports whether a and b have the same shape and the same value at
// every position.
func Equal(a, b *Node) bool {
	stack := [][2]*Node{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := p[0], p[1]
		switch {
		case x == nil && y == nil:
			continue
		case x == nil || y == nil || x.Val != y.Val:
			return false
		}
		stack = append(stack, [2]*Node{x.Left, y.Left}, [2]*Node{x.Right, y.Right})
	}

	return true
}
