// Package arrays implements linear-time kernels over integer sequences that
// are built on cumulative sums and single-pass bookkeeping.
//
// What:
//
//   - SubarraySum: count contiguous subarrays whose elements sum to k, using a
//     running prefix sum and a frequency map of previously seen prefix sums.
//   - ProductExceptSelf: product of every other element, computed with a
//     left-running and a right-running product (no division).
//   - RangeSum: an O(n) prefix table answering inclusive range sums in O(1).
//   - FindDuplicates: values that occur twice in a slice whose values lie in
//     [1, n], found by sign marking.
//   - LongestConsecutive: length of the longest run of consecutive integers.
//   - FindPeak: index of an element strictly greater than its neighbours.
//
// Why:
//
//   - Prefix sums turn range queries and "how many subarrays sum to k"
//     questions into hash-map lookups.
//   - Two directional passes replace division, which breaks on zeros.
//
// Complexity:
//
//   - SubarraySum:        Time O(n), Memory O(n)
//   - ProductExceptSelf:  Time O(n), Memory O(1) beyond the output
//   - RangeSum:           Build O(n), Sum O(1)
//   - FindDuplicates:     Time O(n), Memory O(n) (a marked copy)
//   - LongestConsecutive: Time O(n), Memory O(n)
//   - FindPeak:           Time O(log n)
//
// Errors:
//
//   - ErrRangeOutOfBounds  range query outside the indexed sequence
//   - ErrValueOutOfRange   FindDuplicates value outside [1, n]
//
// A nil slice is treated exactly like an empty one everywhere.
package arrays
