package interval

import (
	"cmp"
	"fmt"
	"slices"
)

// byStartThenEnd orders intervals by Start ascending, ties broken by End.
func byStartThenEnd(a, b Interval) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}

	return cmp.Compare(a.End, b.End)
}

// Merge returns the union of set as sorted, pairwise disjoint intervals.
// Intervals that share an endpoint are merged. Merging an already merged set
// returns an equal set.
//
// Steps:
//  1. Validate and copy; sort the copy by (Start, End).
//  2. Scan once: extend the last output interval while the current one starts
//     at or before its End, otherwise start a new output interval.
//
// Empty or nil input yields an empty, non-nil result.
func Merge(set []Interval) ([]Interval, error) {
	if err := validateAll(set); err != nil {
		return nil, fmt.Errorf("interval: Merge: %w", err)
	}

	sorted := slices.Clone(set)
	slices.SortFunc(sorted, byStartThenEnd)

	out := make([]Interval, 0, len(sorted))
	for _, iv := range sorted {
		if n := len(out); n > 0 && iv.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, iv.End)
			continue
		}
		out = append(out, iv)
	}

	return out, nil
}

// Insert adds add to set, which must already be sorted by Start and pairwise
// disjoint, and returns the merged result. The set is split into the
// intervals strictly before add, those overlapping it (folded into add), and
// those strictly after; the three parts are concatenated.
//
// Returns ErrInvalidInterval for a malformed member or add, and ErrNotSorted
// when set is not sorted and disjoint.
func Insert(set []Interval, add Interval) ([]Interval, error) {
	if err := validateAll(set); err != nil {
		return nil, fmt.Errorf("interval: Insert: %w", err)
	}
	if err := add.Validate(); err != nil {
		return nil, fmt.Errorf("interval: Insert: new interval: %w", err)
	}
	for i := 1; i < len(set); i++ {
		if set[i].Start <= set[i-1].End {
			return nil, fmt.Errorf("interval: Insert: %w: %v then %v", ErrNotSorted, set[i-1], set[i])
		}
	}

	out := make([]Interval, 0, len(set)+1)
	i := 0
	// 1) strictly before
	for i < len(set) && set[i].End < add.Start {
		out = append(out, set[i])
		i++
	}
	// 2) overlapping: widen add
	for i < len(set) && set[i].Start <= add.End {
		add.Start = min(add.Start, set[i].Start)
		add.End = max(add.End, set[i].End)
		i++
	}
	out = append(out, add)
	// 3) strictly after
	out = append(out, set[i:]...)

	return out, nil
}
