// Package histogram provides uniform-width binned histograms for event-count
// summaries: Sturges binning from raw samples, fill/scale/normalize
// arithmetic, compatibility-checked summation and subtraction, and two
// strategies for filling empty bins.
//
// A histogram's binning scheme (bin count, low edge, high edge) is fixed at
// construction and never changes; every combining operation first verifies
// that all operands share the scheme within EdgeEpsilon and fails with
// ErrIncompatibleBinning otherwise. Bin indices are 1-based, matching the
// numbering convention of the binned-analysis files this library feeds.
//
// ⚙️ Usage:
//
//	b, _ := histogram.Sturges(samples)          // ⌊1+log₂(N)⌋ bins over [min, max]
//	h, _ := histogram.Build("pT", samples, b, 1.0) // fill + normalize to unit integral
//	total, _ := histogram.Sum([]*histogram.Histogram{h1, h2}, false)
//	_ = histogram.FillHoles(total, histogram.HoleFillLinear)
//
// Fills are clipped: a value below the low edge lands in bin 1, a value at
// or above the high edge lands in the last bin. NaN samples are skipped.
package histogram
