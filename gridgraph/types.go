package gridgraph

import "errors"

var (
	// ErrEmptyGrid is returned for a grid with no rows, or a first row with
	// no cells.
	ErrEmptyGrid = errors.New("gridgraph: empty grid")
	// ErrNonRectangular is returned when a row's length differs from the
	// first row's.
	ErrNonRectangular = errors.New("gridgraph: ragged rows")
	// ErrComponentIndex is returned by ExpandIsland for a component number
	// outside the ConnectedComponents result.
	ErrComponentIndex = errors.New("gridgraph: no such component")
	// ErrNoPath is returned by ExpandIsland when no run of cells links the
	// two components.
	ErrNoPath = errors.New("gridgraph: components cannot be linked")
)

// Connectivity is the neighbourhood a cell walks: Conn4 steps N, E, S, W;
// Conn8 adds the four diagonals.
type Connectivity int

const (
	Conn4 Connectivity = iota
	Conn8
)

// GridOptions tunes how cell values are read.
//
// The zero value is Conn4 with LandThreshold 0, which makes every
// non-negative cell land. PacificAtlantic relies on that: it only walks
// heights and never asks IsLand. Island solvers want DefaultGridOptions.
type GridOptions struct {
	LandThreshold int // values >= LandThreshold are land
	Conn          Connectivity
}

// DefaultGridOptions is the island setting: values >= 1 are land, Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1, Conn: Conn4}
}

// GridGraph is a read-only view of a rectangular grid as a graph whose nodes
// are cells, numbered row-major as y*Width+x. CellValues is a private copy
// indexed [y][x].
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	neighborOffsets [][2]int
}
