// Package interval implements set algebra over closed integer intervals:
// merging, insertion into a sorted set, room counting, and the minimum number
// of removals that leaves a set pairwise non-overlapping.
//
// What:
//
//   - Merge:        union of overlapping intervals; output sorted by Start.
//   - Insert:       add one interval to a sorted, disjoint set and re-merge.
//   - MinRooms:     peak number of simultaneously open intervals.
//   - EraseOverlap: fewest intervals to drop so the rest do not overlap.
//
// Ordering:
//
//	Inputs may arrive in any order. Every operation documents the order it
//	sorts by and sorts a private copy; the caller's slice is never modified.
//
// Validation:
//
//	Every interval must satisfy Start <= End. A violation is reported as
//	ErrInvalidInterval, wrapped with the offending position, before any work
//	is done. Insert additionally requires its set to be sorted and disjoint
//	(ErrNotSorted).
//
// Touching endpoints:
//
//	Merge treats [1,4] and [4,5] as overlapping. MinRooms and EraseOverlap
//	treat them as compatible: an interval ending at t frees its slot for one
//	starting at t.
//
// Complexity: every operation runs in O(n log n) time and O(n) memory.
package interval
