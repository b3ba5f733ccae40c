package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algokit/window"
)

func TestMaxArea(t *testing.T) {
	assert.Equal(t, 49, window.MaxArea([]int{1, 8, 6, 2, 5, 4, 8, 3, 7}))
	assert.Equal(t, 1, window.MaxArea([]int{1, 1}))
	assert.Equal(t, 0, window.MaxArea([]int{5}))
}

func TestTrapRainWater(t *testing.T) {
	assert.Equal(t, 6, window.TrapRainWater([]int{0, 1, 0, 2, 1, 0, 1, 3, 2, 1, 2, 1}))
	assert.Equal(t, 9, window.TrapRainWater([]int{4, 2, 0, 3, 2, 5}))
	assert.Equal(t, 0, window.TrapRainWater(nil))
}

func TestThreeSum(t *testing.T) {
	nums := []int{-1, 0, 1, 2, -1, -4}
	assert.Equal(t, [][3]int{{-1, -1, 2}, {-1, 0, 1}}, window.ThreeSum(nums))
	assert.Equal(t, []int{-1, 0, 1, 2, -1, -4}, nums, "input must not be sorted in place")

	assert.Equal(t, [][3]int{{0, 0, 0}}, window.ThreeSum([]int{0, 0, 0, 0}))
	assert.Empty(t, window.ThreeSum([]int{0, 1, 1}))
}

func TestFourSum(t *testing.T) {
	assert.Equal(t,
		[][4]int{{-2, -1, 1, 2}, {-2, 0, 0, 2}, {-1, 0, 0, 1}},
		window.FourSum([]int{1, 0, -1, 0, -2, 2}, 0),
	)
	assert.Equal(t, [][4]int{{2, 2, 2, 2}}, window.FourSum([]int{2, 2, 2, 2, 2}, 8))
}

func TestTriangleCount(t *testing.T) {
	assert.Equal(t, 3, window.TriangleCount([]int{2, 2, 3, 4}))
	assert.Equal(t, 4, window.TriangleCount([]int{4, 2, 3, 4}))
	assert.Equal(t, 0, window.TriangleCount([]int{1, 1}))
}

func TestSortColors(t *testing.T) {
	nums := []int{2, 0, 2, 1, 1, 0}
	window.SortColors(nums)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2}, nums)

	nums = []int{2, 0, 1}
	window.SortColors(nums)
	assert.Equal(t, []int{0, 1, 2}, nums)

	window.SortColors(nil) // must not panic
}

func TestDedupAtMostTwo(t *testing.T) {
	nums := []int{1, 1, 1, 2, 2, 3}
	k := window.DedupAtMostTwo(nums)
	assert.Equal(t, 5, k)
	assert.Equal(t, []int{1, 1, 2, 2, 3}, nums[:k])

	nums = []int{0, 0, 1, 1, 1, 1, 2, 3, 3}
	k = window.DedupAtMostTwo(nums)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 3, 3}, nums[:k])

	assert.Equal(t, 2, window.DedupAtMostTwo([]int{5, 5}))
}
