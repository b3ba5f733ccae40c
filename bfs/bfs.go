package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a node with its BFS depth.
type queueItem[T comparable] struct {
	node  T
	depth int
}

// walker encapsulates mutable BFS state for one search.
type walker[T comparable] struct {
	opts   BFSOptions
	ctx    context.Context
	expand func(T) []T
	queue  []queueItem[T]
	depth  map[T]int // doubles as the visited set
}

func newWalker[T comparable](expand func(T) []T, o BFSOptions) *walker[T] {
	return &walker[T]{
		opts:   o,
		ctx:    o.Ctx,
		expand: expand,
		queue:  make([]queueItem[T], 0, 16),
		depth:  make(map[T]int),
	}
}

// ShortestPath returns the number of edges on a shortest path from start to
// goal in the implicit graph defined by expand. start == goal yields 0.
//
// Returns ErrUnreachable when the search is exhausted (or MaxDepth reached)
// without meeting goal, ErrOptionViolation for bad options, the context error
// on cancellation, or the wrapped OnVisit error.
func ShortestPath[T comparable](start, goal T, expand func(T) []T, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	w := newWalker(expand, o)
	d, found, err := w.run(start, func(n T) bool { return n == goal })
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: %v from %v", ErrUnreachable, goal, start)
	}

	return d, nil
}

// Distances runs a full BFS from start and returns the depth of every node
// reached, start included at depth 0.
func Distances[T comparable](start T, expand func(T) []T, opts ...Option) (map[T]int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	w := newWalker(expand, o)
	if _, _, err = w.run(start, nil); err != nil {
		return nil, err
	}

	return w.depth, nil
}

// run processes the queue until it empties, stop matches a dequeued node,
// an error occurs, or the context is cancelled.
func (w *walker[T]) run(start T, stop func(T) bool) (int, bool, error) {
	w.enqueue(start, 0)
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return 0, false, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.opts.OnVisit(item.depth); err != nil {
			return 0, false, fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.depth, err)
		}
		if stop != nil && stop(item.node) {
			return item.depth, true, nil
		}
		w.enqueueNeighbors(item)
	}

	return 0, false, nil
}

// enqueue marks n visited at depth d and appends it to the queue.
func (w *walker[T]) enqueue(n T, d int) {
	w.depth[n] = d
	w.queue = append(w.queue, queueItem[T]{node: n, depth: d})
}

// dequeue pops the first item.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// enqueueNeighbors expands item, applies MaxDepth, and enqueues each
// unseen neighbour.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.expand(item.node) {
		if _, seen := w.depth[nbr]; !seen {
			w.enqueue(nbr, nextDepth)
		}
	}
}
