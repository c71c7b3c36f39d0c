package histogram

import "errors"

// Sentinel errors for histogram construction and arithmetic. Tests and
// callers match them via errors.Is.
var (
	// ErrNoSamples indicates an empty sample slice where at least one value
	// is required (Sturges, Build).
	ErrNoSamples = errors.New("histogram: need at least one sample")

	// ErrBadBinCount indicates a non-positive bin count.
	ErrBadBinCount = errors.New("histogram: bin count must be positive")

	// ErrBadRange indicates a high edge below the low edge.
	ErrBadRange = errors.New("histogram: high edge below low edge")

	// ErrBinIndex indicates a 1-based bin index outside [1, NBins].
	ErrBinIndex = errors.New("histogram: bin index out of range")

	// ErrNoHistograms indicates Sum was called with an empty operand list.
	ErrNoHistograms = errors.New("histogram: need at least one histogram")

	// ErrNilHistogram indicates a nil *Histogram operand.
	ErrNilHistogram = errors.New("histogram: nil histogram")

	// ErrIncompatibleBinning indicates operands whose bin count or edges
	// differ beyond EdgeEpsilon.
	ErrIncompatibleBinning = errors.New("histogram: incompatible binning")

	// ErrBadFillMode indicates an unknown hole-filling mode.
	ErrBadFillMode = errors.New("histogram: unknown hole-fill mode")
)
