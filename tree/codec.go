package tree

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	nullToken = "#"
	separator = ","
)

// Codec converts trees to and from their pre-order text form.
// The zero value is ready to use and it is safe for concurrent use.
type Codec struct{}

// Serialize encodes root in pre-order with "#" for absent children.
func (Codec) Serialize(root *Node) string {
	var b strings.Builder
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		if n == nil {
			b.WriteString(nullToken)
			continue
		}
		b.WriteString(strconv.Itoa(n.Val))
		stack = append(stack, n.Right, n.Left)
	}

	return b.String()
}

// Deserialize rebuilds a tree from Serialize output. Missing or surplus
// tokens and non-integer values are reported as ErrMalformed.
func (Codec) Deserialize(data string) (*Node, error) {
	tokens := strings.Split(data, separator)
	count := 0
	for _, tok := range tokens {
		if tok != nullToken {
			count++
		}
	}
	// fixed length: node pointers into arena stay valid
	arena := make([]Node, count)
	next := 0

	// slots holds the child pointers still waiting for a token, the next
	// one to fill on top.
	var root *Node
	slots := []**Node{&root}
	for i, tok := range tokens {
		if len(slots) == 0 {
			return nil, fmt.Errorf("%w: unexpected token %d %q after complete tree", ErrMalformed, i, tok)
		}
		slot := slots[len(slots)-1]
		slots = slots[:len(slots)-1]
		if tok == nullToken {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrMalformed, i, tok)
		}
		n := &arena[next]
		next++
		n.Val = v
		*slot = n
		slots = append(slots, &n.Right, &n.Left)
	}
	if len(slots) > 0 {
		return nil, fmt.Errorf("%w: %d subtrees missing", ErrMalformed, len(slots))
	}

	return root, nil
}
