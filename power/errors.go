package power

import "errors"

var (
	// ErrNoBins reports empty yield slices.
	ErrNoBins = errors.New("power: no bins")

	// ErrLengthMismatch reports signal and background slices of different
	// length.
	ErrLengthMismatch = errors.New("power: signal and background lengths differ")

	// ErrNegativeN reports a negative number of background standard
	// deviations.
	ErrNegativeN = errors.New("power: n must be non-negative")
)
