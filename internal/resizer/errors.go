package resizer

import "errors"

var (
	// ErrInvalidInput is returned for a nil or empty source image, a malformed
	// pixel buffer, or a non-positive target dimension.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAllocation is returned when the output buffer cannot be allocated.
	ErrAllocation = errors.New("allocation failed")
)
