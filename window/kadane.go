package window

// MaxSubarraySum returns the largest sum of any non-empty contiguous subarray
// (Kadane's algorithm). Empty or nil input yields 0.
//
// bestHere is the best sum of a subarray ending at the current index: either
// the element alone or the element appended to the previous best run.
func MaxSubarraySum(nums []int) int {
	if len(nums) == 0 {
		return 0
	}

	bestHere, best := nums[0], nums[0]
	for _, v := range nums[1:] {
		bestHere = max(v, bestHere+v)
		best = max(best, bestHere)
	}

	return best
}

// MaxProduct returns the largest product of any non-empty contiguous subarray.
// Empty or nil input yields 0.
//
// Both the largest and the smallest product ending at the current index are
// tracked, because multiplying by a negative value swaps their roles. A zero
// resets both, since any run through it restarts from the next element.
func MaxProduct(nums []int) int {
	if len(nums) == 0 {
		return 0
	}

	hi, lo, best := nums[0], nums[0], nums[0]
	for _, v := range nums[1:] {
		if v < 0 {
			hi, lo = lo, hi // sign flip
		}
		hi = max(v, hi*v)
		lo = min(v, lo*v)
		best = max(best, hi)
	}

	return best
}
