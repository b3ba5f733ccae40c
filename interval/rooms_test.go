package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/interval"
)

func TestMinRooms(t *testing.T) {
	cases := []struct {
		name string
		in   []interval.Interval
		want int
	}{
		{"documented", ivs([2]int{0, 30}, [2]int{5, 10}, [2]int{15, 20}), 2},
		{"back to back", ivs([2]int{7, 10}, [2]int{2, 4}, [2]int{4, 7}), 1},
		{"all overlapping", ivs([2]int{1, 5}, [2]int{2, 6}, [2]int{3, 7}), 3},
		{"empty", nil, 0},
		{"single point", ivs([2]int{5, 5}), 1},
		{"same point twice", ivs([2]int{5, 5}, [2]int{5, 5}), 2},
		{"point after meeting", ivs([2]int{3, 5}, [2]int{5, 5}), 1},
		{"point inside meeting", ivs([2]int{1, 9}, [2]int{4, 4}), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := interval.MinRooms(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := interval.MinRooms(ivs([2]int{2, 1}))
	assert.ErrorIs(t, err, interval.ErrInvalidInterval)
}

func TestEraseOverlap(t *testing.T) {
	cases := []struct {
		name string
		in   []interval.Interval
		want int
	}{
		{"documented", ivs([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{1, 3}), 1},
		{"duplicates", ivs([2]int{1, 2}, [2]int{1, 2}, [2]int{1, 2}), 2},
		{"disjoint", ivs([2]int{1, 2}, [2]int{2, 3}), 0},
		{"nested", ivs([2]int{1, 100}, [2]int{11, 22}, [2]int{1, 11}, [2]int{2, 12}), 2},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := interval.EraseOverlap(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := interval.EraseOverlap(ivs([2]int{1, 2}, [2]int{9, 0}))
	assert.ErrorIs(t, err, interval.ErrInvalidInterval)
}

func TestOverlaps(t *testing.T) {
	a := interval.Interval{Start: 1, End: 4}
	assert.True(t, a.Overlaps(interval.Interval{Start: 4, End: 6}))
	assert.True(t, a.Overlaps(interval.Interval{Start: 0, End: 1}))
	assert.False(t, a.Overlaps(interval.Interval{Start: 5, End: 6}))
	assert.Equal(t, "[1,4]", a.String())
}
