package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algokit/graph"
)

// prerequisiteGraph turns pairs [a, b] ("b before a") into arcs b→a.
func prerequisiteGraph(numCourses int, prereqs [][2]int) (*graph.Adjacency, error) {
	arcs := make([]graph.Edge, len(prereqs))
	for i, p := range prereqs {
		arcs[i] = graph.Edge{p[1], p[0]}
	}

	return graph.NewDirected(numCourses, arcs)
}

// CanFinish reports whether all numCourses courses can be taken given the
// prerequisite pairs, i.e. whether topological elimination removes every
// course. Invalid course labels are reported as graph errors.
func CanFinish(numCourses int, prereqs [][2]int) (bool, error) {
	_, err := FindOrder(numCourses, prereqs)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrCycleDetected):
		return false, nil
	default:
		return false, err
	}
}

// FindOrder returns one order in which all courses can be taken, preferring
// the lowest-numbered available course at each step. It returns
// ErrCycleDetected when the prerequisites are circular.
func FindOrder(numCourses int, prereqs [][2]int) ([]int, error) {
	g, err := prerequisiteGraph(numCourses, prereqs)
	if err != nil {
		return nil, fmt.Errorf("dfs: FindOrder: %w", err)
	}

	return TopologicalSort(g)
}
