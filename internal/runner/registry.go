package runner

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/algokit/arrays"
	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/dfs"
	"github.com/katalvlaran/algokit/dp"
	"github.com/katalvlaran/algokit/graph"
	"github.com/katalvlaran/algokit/gridgraph"
	"github.com/katalvlaran/algokit/interval"
	"github.com/katalvlaran/algokit/strmatch"
	"github.com/katalvlaran/algokit/tree"
	"github.com/katalvlaran/algokit/window"
)

// Solver adapts one library function to a Case. The returned value is
// rendered as JSON in reports and compared against Case.Expect.
type Solver func(c *Case) (any, error)

// registry maps case solver names to adapters.
var registry = map[string]Solver{
	// arrays
	"subarray-sum":        intsInt(arrays.SubarraySum, "k"),
	"range-sum":           rangeSum,
	"product-except-self": intsOnly(arrays.ProductExceptSelf),
	"find-duplicates":     func(c *Case) (any, error) { return arrays.FindDuplicates(c.Ints) },
	"longest-consecutive": intsOnly(arrays.LongestConsecutive),
	"find-peak":           intsOnly(arrays.FindPeak),

	// window
	"max-sliding-window":       intsInt(window.MaxSlidingWindow, "k"),
	"max-subarray-sum":         intsOnly(window.MaxSubarraySum),
	"max-product":              intsOnly(window.MaxProduct),
	"longest-unique-substring": textOnly(window.LongestUniqueSubstring),
	"character-replacement":    characterReplacement,
	"min-window":               textPattern(window.MinWindow),
	"find-anagrams":            textPattern(window.FindAnagrams),
	"max-area":                 intsOnly(window.MaxArea),
	"trap-rain-water":          intsOnly(window.TrapRainWater),
	"three-sum":                intsOnly(window.ThreeSum),
	"four-sum":                 intsInt(window.FourSum, "target"),
	"triangle-count":           intsOnly(window.TriangleCount),
	"sort-colors":              intsOnly(sortColors),
	"dedup-at-most-two":        intsOnly(dedupAtMostTwo),

	// interval
	"merge-intervals": intervals(interval.Merge),
	"insert-interval": insertInterval,
	"min-rooms":       intervals(interval.MinRooms),
	"erase-overlap":   intervals(interval.EraseOverlap),

	// graph traversal
	"has-cycle":            hasCycle(graph.NewDirected),
	"has-cycle-undirected": hasCycle(graph.NewUndirected),
	"topological-sort":     topologicalSort,
	"can-finish":           courses(dfs.CanFinish),
	"find-order":           courses(dfs.FindOrder),
	"shortest-path":        shortestPath,
	"valid-tree":           courses(bfs.ValidTree),
	"ladder-length":        ladderLength,

	// grids
	"num-islands":          numIslands,
	"connected-components": connectedComponents,
	"pacific-atlantic":     func(c *Case) (any, error) { return gridgraph.PacificAtlantic(c.Matrix) },
	"expand-island":        expandIsland,

	// dp
	"coin-change":             intsInt(dp.CoinChange, "target"),
	"rob":                     intsOnly(dp.Rob),
	"length-of-lis":           intsOnly(dp.LengthOfLIS),
	"length-of-lis-quadratic": intsOnly(dp.LengthOfLISQuadratic),
	"unique-paths":            uniquePaths,
	"can-jump":                intsOnly(dp.CanJump),
	"num-decodings":           textOnly(dp.NumDecodings),
	"word-break":              wordBreak,
	"can-partition":           intsOnly(dp.CanPartition),
	"count-palindromes":       textOnly(dp.CountPalindromes),
	"is-match":                textPattern(dp.IsMatch),

	// trees
	"level-order":            treeOnly(tree.LevelOrder),
	"valid-bst":              treeOnly(tree.IsValidBST),
	"lowest-common-ancestor": lowestCommonAncestor,
	"serialize-tree":         treeOnly(tree.Codec{}.Serialize),
	"deserialize-tree":       deserializeTree,

	// strings
	"valid-brackets":     textOnly(strmatch.IsValidBrackets),
	"longest-palindrome": textOnly(strmatch.LongestPalindrome),
	"group-anagrams":     func(c *Case) (any, error) { return strmatch.GroupAnagrams(c.Words), nil },
	"word-pattern":       textPattern(func(s, p string) bool { return strmatch.WordPattern(p, s) }),
	"encode-strings":     func(c *Case) (any, error) { return strmatch.Encode(c.Words), nil },
	"decode-strings":     decodeStrings,
}

// Solvers returns the registered solver names in sorted order.
func Solvers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func need[T any](p *T, field string) (T, error) {
	if p == nil {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrMissingField, field)
	}

	return *p, nil
}

// intsOnly adapts fn to Case.Ints. The slice is cloned so in-place solvers
// never alias decoded input.
func intsOnly[R any](fn func([]int) R) Solver {
	return func(c *Case) (any, error) {
		return fn(slices.Clone(c.Ints)), nil
	}
}

// intsInt adapts fn to Case.Ints plus the integer field named field.
func intsInt[R any](fn func([]int, int) R, field string) Solver {
	return func(c *Case) (any, error) {
		var p *int
		switch field {
		case "k":
			p = c.K
		case "target":
			p = c.Target
		}
		v, err := need(p, field)
		if err != nil {
			return nil, err
		}
		return fn(slices.Clone(c.Ints), v), nil
	}
}

func textOnly[R any](fn func(string) R) Solver {
	return func(c *Case) (any, error) {
		s, err := need(c.Text, "text")
		if err != nil {
			return nil, err
		}
		return fn(s), nil
	}
}

func textPattern[R any](fn func(s, p string) R) Solver {
	return func(c *Case) (any, error) {
		s, err := need(c.Text, "text")
		if err != nil {
			return nil, err
		}
		p, err := need(c.Pattern, "pattern")
		if err != nil {
			return nil, err
		}
		return fn(s, p), nil
	}
}

func rangeSum(c *Case) (any, error) {
	if len(c.Interval) != 2 {
		return nil, fmt.Errorf("%w: interval", ErrMissingField)
	}
	return arrays.NewRangeSum(c.Ints).Sum(c.Interval[0], c.Interval[1])
}

func characterReplacement(c *Case) (any, error) {
	s, err := need(c.Text, "text")
	if err != nil {
		return nil, err
	}
	k, err := need(c.K, "k")
	if err != nil {
		return nil, err
	}
	return window.CharacterReplacement(s, k), nil
}

func sortColors(nums []int) []int {
	window.SortColors(nums)
	return nums
}

func dedupAtMostTwo(nums []int) []int {
	return nums[:window.DedupAtMostTwo(nums)]
}

// toIntervals converts decoded pairs without validating them; the interval
// package reports malformed members itself.
func toIntervals(pairs [][]int) []interval.Interval {
	set := make([]interval.Interval, len(pairs))
	for i, p := range pairs {
		set[i] = interval.Interval{Start: p[0], End: p[1]}
	}
	return set
}

func fromIntervals(set []interval.Interval) [][2]int {
	out := make([][2]int, len(set))
	for i, iv := range set {
		out[i] = [2]int{iv.Start, iv.End}
	}
	return out
}

// intervals adapts fn to Case.Pairs; interval results are rendered as pairs.
func intervals[R any](fn func([]interval.Interval) (R, error)) Solver {
	return func(c *Case) (any, error) {
		res, err := fn(toIntervals(c.Pairs))
		if err != nil {
			return nil, err
		}
		if set, ok := any(res).([]interval.Interval); ok {
			return fromIntervals(set), nil
		}
		return res, nil
	}
}

func insertInterval(c *Case) (any, error) {
	if len(c.Interval) != 2 {
		return nil, fmt.Errorf("%w: interval", ErrMissingField)
	}
	add := interval.Interval{Start: c.Interval[0], End: c.Interval[1]}
	set, err := interval.Insert(toIntervals(c.Pairs), add)
	if err != nil {
		return nil, err
	}
	return fromIntervals(set), nil
}

func toEdges(pairs [][]int) [][2]int {
	edges := make([][2]int, len(pairs))
	for i, p := range pairs {
		edges[i] = [2]int{p[0], p[1]}
	}
	return edges
}

func buildGraph(c *Case, build func(int, []graph.Edge) (*graph.Adjacency, error)) (*graph.Adjacency, error) {
	n, err := need(c.N, "n")
	if err != nil {
		return nil, err
	}
	return build(n, toEdges(c.Pairs))
}

func hasCycle(build func(int, []graph.Edge) (*graph.Adjacency, error)) Solver {
	return func(c *Case) (any, error) {
		g, err := buildGraph(c, build)
		if err != nil {
			return nil, err
		}
		return dfs.HasCycle(g), nil
	}
}

func topologicalSort(c *Case) (any, error) {
	g, err := buildGraph(c, graph.NewDirected)
	if err != nil {
		return nil, err
	}
	return dfs.TopologicalSort(g)
}

// courses adapts the (n, pairs) family: prerequisites and tree edges.
func courses[R any](fn func(int, [][2]int) (R, error)) Solver {
	return func(c *Case) (any, error) {
		n, err := need(c.N, "n")
		if err != nil {
			return nil, err
		}
		return fn(n, toEdges(c.Pairs))
	}
}

// shortestPath counts edges between interval[0] and interval[1] of the
// undirected graph (n, pairs).
func shortestPath(c *Case) (any, error) {
	g, err := buildGraph(c, graph.NewUndirected)
	if err != nil {
		return nil, err
	}
	if len(c.Interval) != 2 {
		return nil, fmt.Errorf("%w: interval", ErrMissingField)
	}
	from, to := c.Interval[0], c.Interval[1]
	if from < 0 || to < 0 || from >= g.Order() || to >= g.Order() {
		return nil, fmt.Errorf("%w: %d or %d", graph.ErrNodeOutOfRange, from, to)
	}
	return bfs.ShortestPath(from, to, g.Neighbors)
}

func ladderLength(c *Case) (any, error) {
	begin, err := need(c.Begin, "begin")
	if err != nil {
		return nil, err
	}
	end, err := need(c.End, "end")
	if err != nil {
		return nil, err
	}
	return bfs.LadderLength(begin, end, c.Words), nil
}

func byteGrid(rows []string) [][]byte {
	grid := make([][]byte, len(rows))
	for i, r := range rows {
		grid[i] = []byte(r)
	}
	return grid
}

func numIslands(c *Case) (any, error) {
	return gridgraph.NumIslands(byteGrid(c.Grid)), nil
}

func connectedComponents(c *Case) (any, error) {
	gg, err := gridgraph.NewGridGraph(c.Matrix, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	return gg.ConnectedComponents(), nil
}

// islandPath is the rendered result of expand-island.
type islandPath struct {
	Path []int `json:"path"`
	Cost int   `json:"cost"`
}

func expandIsland(c *Case) (any, error) {
	src, err := need(c.Src, "src")
	if err != nil {
		return nil, err
	}
	dst, err := need(c.Dst, "dst")
	if err != nil {
		return nil, err
	}
	gg, err := gridgraph.NewGridGraph(c.Matrix, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	path, cost, err := gg.ExpandIsland(src, dst)
	if err != nil {
		return nil, err
	}
	return islandPath{Path: path, Cost: cost}, nil
}

func uniquePaths(c *Case) (any, error) {
	rows, err := need(c.Rows, "rows")
	if err != nil {
		return nil, err
	}
	cols, err := need(c.Cols, "cols")
	if err != nil {
		return nil, err
	}
	return dp.UniquePaths(rows, cols), nil
}

func wordBreak(c *Case) (any, error) {
	s, err := need(c.Text, "text")
	if err != nil {
		return nil, err
	}
	return dp.WordBreak(s, c.Words), nil
}

// levelOrderInts maps null tree entries to tree.Nil.
func levelOrderInts(vals []*int) []int {
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = tree.Nil
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

func treeOnly[R any](fn func(*tree.Node) R) Solver {
	return func(c *Case) (any, error) {
		return fn(tree.FromLevelOrder(levelOrderInts(c.Tree))), nil
	}
}

// findValue locates v in a binary search tree.
func findValue(root *tree.Node, v int) *tree.Node {
	for n := root; n != nil; {
		switch {
		case v < n.Val:
			n = n.Left
		case v > n.Val:
			n = n.Right
		default:
			return n
		}
	}
	return nil
}

// lowestCommonAncestor returns the ancestor value of interval[0] and
// interval[1], or null when either value is absent.
func lowestCommonAncestor(c *Case) (any, error) {
	if len(c.Interval) != 2 {
		return nil, fmt.Errorf("%w: interval", ErrMissingField)
	}
	root := tree.FromLevelOrder(levelOrderInts(c.Tree))
	p, q := findValue(root, c.Interval[0]), findValue(root, c.Interval[1])
	if lca := tree.LowestCommonAncestor(root, p, q); lca != nil {
		return lca.Val, nil
	}
	return nil, nil
}

// deserializeTree decodes codec text and renders the tree level by level.
func deserializeTree(c *Case) (any, error) {
	s, err := need(c.Text, "text")
	if err != nil {
		return nil, err
	}
	root, err := tree.Codec{}.Deserialize(s)
	if err != nil {
		return nil, err
	}
	return tree.LevelOrder(root), nil
}

func decodeStrings(c *Case) (any, error) {
	s, err := need(c.Text, "text")
	if err != nil {
		return nil, err
	}
	return strmatch.Decode(s)
}
