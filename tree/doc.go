// Package tree provides binary-tree algorithms over a plain pointer Node:
// construction from LeetCode-style level order, structural equality,
// level-order grouping, BST validation, BST lowest common ancestor, and a
// text codec.
//
// Every traversal uses an explicit stack or queue, so skewed trees of any
// depth are safe. Builders (FromLevelOrder, Codec.Deserialize) allocate all
// nodes from one backing slice.
//
// Codec grammar (pre-order, comma separated):
//
//	tree  = "#" | value "," tree "," tree
//	value = optional "-" followed by decimal digits
//
// so the tree 1(2, 3(4, 5)) encodes as "1,2,#,#,3,4,#,#,5,#,#" and the
// empty tree as "#".
package tree
