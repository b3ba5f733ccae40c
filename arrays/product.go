package arrays

// ProductExceptSelf returns out where out[i] is the product of every element
// of nums except nums[i]. Division is never used, so zeros are exact:
// with two or more zeros every entry is 0, with exactly one zero only that
// index holds the product of the remaining elements.
//
// Steps:
//  1. Left pass: out[i] = nums[0] * ... * nums[i-1].
//  2. Right pass: multiply out[i] by nums[i+1] * ... * nums[n-1], carried in
//     a single accumulator.
//
// Empty or nil input yields an empty, non-nil slice.
func ProductExceptSelf(nums []int) []int {
	n := len(nums)
	out := make([]int, n)
	if n == 0 {
		return out
	}

	// 1) prefix products
	out[0] = 1
	for i := 1; i < n; i++ {
		out[i] = out[i-1] * nums[i-1]
	}

	// 2) suffix products folded in place
	right := 1
	for i := n - 1; i >= 0; i-- {
		out[i] *= right
		right *= nums[i]
	}

	return out
}
