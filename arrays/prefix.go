package arrays

import "fmt"

// SubarraySum returns the number of contiguous, non-empty subarrays of nums
// whose elements add up to k. Negative numbers and zeros are allowed.
//
// Algorithm:
//  1. Keep a running sum of nums[0..i].
//  2. Keep a frequency map of every running sum seen so far, seeded with
//     {0: 1} for the empty prefix.
//  3. At each position, every earlier prefix equal to sum-k closes one
//     subarray ending here; add their count, then record the current sum.
//
// Empty or nil input yields 0.
func SubarraySum(nums []int, k int) int {
	if len(nums) == 0 {
		return 0
	}

	seen := make(map[int]int, len(nums)+1)
	seen[0] = 1 // empty prefix

	count, sum := 0, 0
	for _, v := range nums {
		sum += v
		count += seen[sum-k] // missing keys read as 0
		seen[sum]++
	}

	return count
}

// RangeSum answers inclusive range-sum queries over a fixed sequence.
// The zero value is an empty index.
type RangeSum struct {
	prefix []int // prefix[i] = nums[0] + ... + nums[i-1]
}

// NewRangeSum builds the prefix table for nums in O(n). The input is copied
// into the table, so later changes to nums do not affect the index.
func NewRangeSum(nums []int) *RangeSum {
	prefix := make([]int, len(nums)+1)
	for i, v := range nums {
		prefix[i+1] = prefix[i] + v
	}

	return &RangeSum{prefix: prefix}
}

// Len reports the length of the indexed sequence.
func (r *RangeSum) Len() int {
	if len(r.prefix) == 0 {
		return 0
	}

	return len(r.prefix) - 1
}

// Sum returns nums[i] + ... + nums[j] (inclusive) in O(1).
// Returns ErrRangeOutOfBounds when 0 <= i <= j < Len() does not hold.
func (r *RangeSum) Sum(i, j int) (int, error) {
	if i < 0 || j < i || j >= r.Len() {
		return 0, fmt.Errorf("%w: [%d, %d] over length %d", ErrRangeOutOfBounds, i, j, r.Len())
	}

	return r.prefix[j+1] - r.prefix[i], nil
}
