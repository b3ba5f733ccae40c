package interval

import (
	"errors"
	"fmt"
)

// Sentinel errors for interval operations.
var (
	// ErrInvalidInterval indicates an interval whose Start exceeds its End.
	ErrInvalidInterval = errors.New("interval: start exceeds end")

	// ErrNotSorted indicates Insert received a set that is not sorted by
	// Start or whose members overlap.
	ErrNotSorted = errors.New("interval: set is not sorted and disjoint")
)

// Interval is the closed range [Start, End].
type Interval struct {
	Start, End int
}

// New returns [start, end], or ErrInvalidInterval if start > end.
func New(start, end int) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}

	return iv, nil
}

// Validate reports ErrInvalidInterval when Start > End.
func (iv Interval) Validate() error {
	if iv.Start > iv.End {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidInterval, iv.Start, iv.End)
	}

	return nil
}

// Overlaps reports whether iv and other share at least one point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start <= other.End && other.Start <= iv.End
}

// String renders the interval as "[start,end]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Start, iv.End)
}

// validateAll checks every member and reports the first violation with its index.
func validateAll(set []Interval) error {
	for i, iv := range set {
		if err := iv.Validate(); err != nil {
			return fmt.Errorf("interval %d: %w", i, err)
		}
	}

	return nil
}
