package window

import "slices"

// MaxArea returns the largest amount of water a container formed by two of
// the vertical lines height[i], height[j] can hold: min(h[i], h[j]) * (j-i).
//
// Pointers start at both ends; the shorter side is moved inward because
// keeping it can only shrink the width without raising the limiting height.
func MaxArea(height []int) int {
	best := 0
	i, j := 0, len(height)-1
	for i < j {
		h := min(height[i], height[j])
		best = max(best, h*(j-i))
		if height[i] < height[j] {
			i++
		} else {
			j--
		}
	}

	return best
}

// TrapRainWater returns the units of rain water trapped between the bars of an
// elevation map.
//
// Water above a bar is bounded by the lower of the tallest bars to its left and
// right. Two pointers walk inward from the lower side, whose bound is then
// final, so no prefix/suffix maxima arrays are needed.
func TrapRainWater(height []int) int {
	water := 0
	i, j := 0, len(height)-1
	leftMax, rightMax := 0, 0
	for i < j {
		if height[i] < height[j] {
			leftMax = max(leftMax, height[i])
			water += leftMax - height[i]
			i++
		} else {
			rightMax = max(rightMax, height[j])
			water += rightMax - height[j]
			j--
		}
	}

	return water
}

// ThreeSum returns every distinct triplet of values from nums summing to zero.
// Each triplet is sorted ascending and triplets are in lexicographic order.
// nums is not modified.
func ThreeSum(nums []int) [][3]int {
	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	var out [][3]int
	for i := 0; i < len(sorted)-2; i++ {
		if i > 0 && sorted[i] == sorted[i-1] {
			continue // same anchor as before
		}
		for _, pair := range pairsSumming(sorted, i+1, -sorted[i]) {
			out = append(out, [3]int{sorted[i], pair[0], pair[1]})
		}
	}

	return out
}

// FourSum returns every distinct quadruplet of values from nums summing to
// target, each sorted ascending, in lexicographic order. nums is not modified.
func FourSum(nums []int, target int) [][4]int {
	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	var out [][4]int
	for i := 0; i < len(sorted)-3; i++ {
		if i > 0 && sorted[i] == sorted[i-1] {
			continue
		}
		for j := i + 1; j < len(sorted)-2; j++ {
			if j > i+1 && sorted[j] == sorted[j-1] {
				continue
			}
			rest := target - sorted[i] - sorted[j]
			for _, pair := range pairsSumming(sorted, j+1, rest) {
				out = append(out, [4]int{sorted[i], sorted[j], pair[0], pair[1]})
			}
		}
	}

	return out
}

// pairsSumming returns the distinct value pairs in sorted[from:] adding up to
// target, in ascending order of the first value.
func pairsSumming(sorted []int, from, target int) [][2]int {
	var out [][2]int
	lo, hi := from, len(sorted)-1
	for lo < hi {
		switch sum := sorted[lo] + sorted[hi]; {
		case sum < target:
			lo++
		case sum > target:
			hi--
		default:
			out = append(out, [2]int{sorted[lo], sorted[hi]})
			// skip duplicates on both sides
			for lo < hi && sorted[lo] == sorted[lo+1] {
				lo++
			}
			for lo < hi && sorted[hi] == sorted[hi-1] {
				hi--
			}
			lo++
			hi--
		}
	}

	return out
}

// TriangleCount returns how many index triples of nums can be the side
// lengths of a non-degenerate triangle. nums is not modified.
//
// After sorting, fix the longest side c = s[k]; for pointers i < j < k with
// s[i] + s[j] > c, every index between i and j also works with j.
func TriangleCount(nums []int) int {
	s := slices.Clone(nums)
	slices.Sort(s)

	count := 0
	for k := len(s) - 1; k >= 2; k-- {
		i, j := 0, k-1
		for i < j {
			if s[i]+s[j] > s[k] {
				count += j - i
				j--
			} else {
				i++
			}
		}
	}

	return count
}

// SortColors sorts a slice holding only the values 0, 1 and 2 in place with a
// single pass (Dutch national flag partitioning). Values outside {0, 1, 2}
// are treated as 1 and end up in the middle band.
func SortColors(nums []int) {
	lo, mid, hi := 0, 0, len(nums)-1
	for mid <= hi {
		switch nums[mid] {
		case 0:
			nums[lo], nums[mid] = nums[mid], nums[lo]
			lo++
			mid++
		case 2:
			nums[mid], nums[hi] = nums[hi], nums[mid]
			hi-- // re-examine the swapped-in value
		default:
			mid++
		}
	}
}

// DedupAtMostTwo rewrites a sorted slice in place so each value appears at
// most twice, and returns k, the length of the result. nums[:k] holds the
// kept values in order; the contents of nums[k:] are unspecified.
func DedupAtMostTwo(nums []int) int {
	if len(nums) <= 2 {
		return len(nums)
	}

	k := 2
	for i := 2; i < len(nums); i++ {
		if nums[i] != nums[k-2] {
			nums[k] = nums[i]
			k++
		}
	}

	return k
}
