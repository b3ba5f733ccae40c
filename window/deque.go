package window

// MaxSlidingWindow returns the maximum of every window of width k as the
// window slides one step at a time over nums, so the result has
// len(nums)-k+1 entries. It returns nil when k < 1 or k > len(nums).
//
// A deque of indices is kept with strictly decreasing values:
//  1. Drop the front index once it leaves the window.
//  2. Drop back indices whose values are <= the incoming value; they can
//     never be a maximum again.
//  3. Push the incoming index; once the first window is complete the front
//     holds the window maximum.
func MaxSlidingWindow(nums []int, k int) []int {
	if k < 1 || k > len(nums) {
		return nil
	}

	out := make([]int, 0, len(nums)-k+1)
	dq := make([]int, 0, k) // indices, values strictly decreasing
	head := 0               // dq[head:] is the live deque

	for i, v := range nums {
		// 1) evict the index that slid out on the left
		if head < len(dq) && dq[head] <= i-k {
			head++
		}
		// 2) evict dominated candidates from the back
		for len(dq) > head && nums[dq[len(dq)-1]] <= v {
			dq = dq[:len(dq)-1]
		}
		// 3) admit i and emit once the window is full
		dq = append(dq, i)
		if i >= k-1 {
			out = append(out, nums[dq[head]])
		}
		// compact occasionally so the backing array stays O(k)
		if head > k {
			dq = append(dq[:0], dq[head:]...)
			head = 0
		}
	}

	return out
}
