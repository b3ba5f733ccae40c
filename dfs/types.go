package dfs

import (
	"context"
	"errors"
)

// Visitation states for three-color DFS.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: on the current DFS path.
	Black        // Black: the node and all its descendants are finished.
)

var (
	// ErrCycleDetected indicates that the graph has no topological order.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected indicates a directed-only operation was given an
	// undirected graph.
	ErrUndirected = errors.New("dfs: graph is undirected")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // checked once per released node
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
