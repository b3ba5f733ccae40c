package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNegativeOrder indicates a negative node count.
	ErrNegativeOrder = errors.New("graph: node count is negative")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("graph: node label out of range")
)

// Edge is an ordered pair of node labels {from, to}. In undirected graphs the
// order carries no meaning.
type Edge = [2]int
