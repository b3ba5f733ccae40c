package interval

import (
	"cmp"
	"fmt"
	"slices"
)

// MinRooms returns the minimum number of rooms needed to host every interval
// of set, i.e. the peak number of intervals open at the same time.
// An interval ending at t releases its room for one starting at t. A
// zero-length interval [t, t] still occupies a room at instant t.
//
// Sweep over events ordered by time; at equal times, releases of intervals
// with positive length come first, then starts, then releases of zero-length
// intervals.
func MinRooms(set []Interval) (int, error) {
	if err := validateAll(set); err != nil {
		return 0, fmt.Errorf("interval: MinRooms: %w", err)
	}

	events := make([]roomEvent, 0, 2*len(set))
	for _, iv := range set {
		release := releaseEarly
		if iv.Start == iv.End {
			release = releaseLate
		}
		events = append(events,
			roomEvent{at: iv.Start, order: occupy},
			roomEvent{at: iv.End, order: release})
	}
	slices.SortFunc(events, func(a, b roomEvent) int {
		if c := cmp.Compare(a.at, b.at); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})

	rooms, peak := 0, 0
	for _, ev := range events {
		if ev.order != occupy {
			rooms--
			continue
		}
		rooms++
		peak = max(peak, rooms)
	}

	return peak, nil
}

// Tie order of room events sharing a time.
const (
	releaseEarly = iota // end of an interval with positive length
	occupy              // start of any interval
	releaseLate         // end of a zero-length interval
)

type roomEvent struct {
	at, order int
}

// EraseOverlap returns the minimum number of intervals to remove from set so
// that the remaining ones are pairwise non-overlapping. Touching endpoints do
// not count as overlap.
//
// Greedy by earliest End: sort by End ascending and keep an interval whenever
// it starts at or after the End of the last kept one; every other interval is
// counted as removed.
func EraseOverlap(set []Interval) (int, error) {
	if err := validateAll(set); err != nil {
		return 0, fmt.Errorf("interval: EraseOverlap: %w", err)
	}
	if len(set) == 0 {
		return 0, nil
	}

	sorted := slices.Clone(set)
	slices.SortFunc(sorted, func(a, b Interval) int {
		if c := cmp.Compare(a.End, b.End); c != 0 {
			return c
		}
		return cmp.Compare(a.Start, b.Start)
	})

	removed := 0
	lastEnd := sorted[0].End
	for _, iv := range sorted[1:] {
		if iv.Start >= lastEnd {
			lastEnd = iv.End
			continue
		}
		removed++
	}

	return removed, nil
}
