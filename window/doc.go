// Package window implements two-pointer and sliding-window kernels: problems
// over a contiguous range of a sequence whose bounds move monotonically, so
// every element enters and leaves the window at most once.
//
// What:
//
//   - Running-optimum scans: MaxSubarraySum (Kadane), MaxProduct (running max
//     and min, since a negative factor swaps them).
//   - Fixed-width windows: MaxSlidingWindow (monotonic deque), FindAnagrams.
//   - Variable-width windows over runes: LongestUniqueSubstring,
//     CharacterReplacement, MinWindow.
//   - Converging two pointers: MaxArea, TrapRainWater, ThreeSum, FourSum,
//     TriangleCount.
//   - In-place partitioning: SortColors, DedupAtMostTwo.
//
// Tie-breaks:
//
//	When several windows share the optimal value, the first one met in a
//	left-to-right scan wins (MinWindow returns the leftmost shortest window).
//
// Complexity:
//
//   - Window scans:  Time O(n), Memory O(σ) where σ is the alphabet in play
//   - ThreeSum:      Time O(n²), FourSum: Time O(n³), TriangleCount: O(n²)
//   - SortColors, DedupAtMostTwo: Time O(n), Memory O(1)
//
// Mutation:
//
//	Only SortColors and DedupAtMostTwo write to their argument; every other
//	function leaves its input untouched (ThreeSum and FourSum sort a copy).
package window
