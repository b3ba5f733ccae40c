package dp

import "sort"

// Rob returns the largest sum of non-adjacent elements of nums. Houses with
// negative value are simply skipped; an empty street yields 0.
func Rob(nums []int) int {
	t := Tabulate(len(nums)+1, 0, func(t []int, i int) int {
		take := nums[i-1]
		if i >= 2 {
			take += t[i-2]
		}
		return max(t[i-1], take)
	})

	return t[len(nums)]
}

// LengthOfLIS returns the length of the longest strictly increasing
// subsequence of nums. tails[k] holds the smallest tail of any increasing
// subsequence of length k+1, so tails stays sorted and each value is placed
// by binary search.
func LengthOfLIS(nums []int) int {
	tails := make([]int, 0, len(nums))
	for _, x := range nums {
		k := sort.SearchInts(tails, x)
		if k == len(tails) {
			tails = append(tails, x)
		} else {
			tails[k] = x
		}
	}

	return len(tails)
}

// LengthOfLISQuadratic computes the same result as LengthOfLIS with the
// O(n²) table t[i] = length of the longest increasing subsequence ending at i.
func LengthOfLISQuadratic(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	t := Tabulate(len(nums), 1, func(t []int, i int) int {
		best := 1
		for j := 0; j < i; j++ {
			if nums[j] < nums[i] {
				best = max(best, t[j]+1)
			}
		}
		return best
	})
	longest := 0
	for _, v := range t {
		longest = max(longest, v)
	}

	return longest
}

// CanJump reports whether the last index is reachable from index 0 when
// nums[i] is the maximum jump length from i. An empty slice has no last
// index to reach.
func CanJump(nums []int) bool {
	if len(nums) == 0 {
		return false
	}
	reach := 0
	for i, n := range nums {
		if i > reach {
			return false
		}
		reach = max(reach, i+n)
		if reach >= len(nums)-1 {
			return true
		}
	}

	return true
}

// NumDecodings counts the ways to decode a digit string where '1'..'26' map
// to letters. Empty input, a leading '0' or any non-digit yields 0.
func NumDecodings(s string) int {
	if s == "" {
		return 0
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0
		}
	}
	t := Tabulate(len(s)+1, 1, func(t []int, i int) int {
		ways := 0
		if s[i-1] != '0' {
			ways += t[i-1]
		}
		if i >= 2 {
			if v := int(s[i-2]-'0')*10 + int(s[i-1]-'0'); v >= 10 && v <= 26 {
				ways += t[i-2]
			}
		}
		return ways
	})

	return t[len(s)]
}

// WordBreak reports whether s is a concatenation of dictionary words, each
// usable any number of times. The empty string is always segmentable.
func WordBreak(s string, dict []string) bool {
	t := Tabulate(len(s)+1, true, func(t []bool, i int) bool {
		for _, w := range dict {
			if w != "" && len(w) <= i && t[i-len(w)] && s[i-len(w):i] == w {
				return true
			}
		}
		return false
	})

	return t[len(s)]
}
