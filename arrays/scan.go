package arrays

import "fmt"

// FindDuplicates returns every value that appears twice in nums, where all
// values lie in [1, len(nums)] and each appears at most twice. Duplicates are
// reported in the order their second occurrence is met.
//
// Each value v marks slot v-1 negative on first sight; meeting a slot that is
// already negative means v was seen before. The marks are applied to a copy,
// so nums is left untouched.
//
// Returns ErrValueOutOfRange if an element falls outside [1, len(nums)].
func FindDuplicates(nums []int) ([]int, error) {
	marks := make([]int, len(nums))
	copy(marks, nums)

	var dups []int
	for i := range marks {
		v := marks[i]
		if v < 0 {
			v = -v
		}
		if v < 1 || v > len(marks) {
			return nil, fmt.Errorf("%w: nums[%d] = %d", ErrValueOutOfRange, i, nums[i])
		}
		if marks[v-1] < 0 {
			dups = append(dups, v)
			continue
		}
		marks[v-1] = -marks[v-1]
	}

	return dups, nil
}

// LongestConsecutive returns the length of the longest run of consecutive
// integers contained in nums, regardless of their order. Duplicates count once.
//
// Only run heads (values whose predecessor is absent) start a count, so every
// value is visited at most twice: O(n) overall.
func LongestConsecutive(nums []int) int {
	set := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		set[v] = struct{}{}
	}

	best := 0
	for v := range set {
		if _, ok := set[v-1]; ok {
			continue // not a run head
		}
		length := 1
		for {
			if _, ok := set[v+length]; !ok {
				break
			}
			length++
		}
		if length > best {
			best = length
		}
	}

	return best
}

// FindPeak returns an index i such that nums[i] is strictly greater than its
// neighbours, treating positions outside the slice as negative infinity.
// Adjacent elements are assumed distinct. When several peaks exist the one
// the binary search converges on is returned; any peak is a valid answer.
// Empty input yields -1.
//
// Binary search on the slope: if nums[mid] < nums[mid+1] a peak lies to the
// right, otherwise one lies at mid or to its left.
func FindPeak(nums []int) int {
	if len(nums) == 0 {
		return -1
	}

	lo, hi := 0, len(nums)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if nums[mid] < nums[mid+1] {
			lo = mid + 1 // ascending slope
		} else {
			hi = mid
		}
	}

	return lo
}
