package arrays

import "errors"

// Sentinel errors for array kernels.
var (
	// ErrRangeOutOfBounds is returned by RangeSum.Sum when i or j falls outside
	// the indexed sequence or i > j.
	ErrRangeOutOfBounds = errors.New("arrays: range out of bounds")

	// ErrValueOutOfRange is returned by FindDuplicates when an element lies
	// outside [1, len(nums)].
	ErrValueOutOfRange = errors.New("arrays: value outside [1, n]")
)
