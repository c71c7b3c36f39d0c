package histogram

// DefaultHoleFill is the epsilon written into empty bins by the constant
// hole-filling mode. Binned-likelihood tools reject bins with exactly zero
// expected background; this keeps them numerically alive without visibly
// distorting the shape.
const DefaultHoleFill = 1e-3

// HoleFillMode selects how FillHoles replaces empty bins.
type HoleFillMode int

const (
	// HoleFillConstant writes DefaultHoleFill into every empty bin.
	HoleFillConstant HoleFillMode = iota

	// HoleFillLinear interpolates each interior empty bin linearly over bin
	// index, using the non-empty bins as anchors. Empty bins before the
	// first anchor or after the last one have no interpolation support and
	// stay at exactly 0.
	HoleFillLinear
)

// EmptyBins returns the 1-based indices of every bin whose content is
// exactly 0.
func EmptyBins(h *Histogram) []int {
	holes := make([]int, 0)
	for i, v := range h.bins {
		if v == 0 {
			holes = append(holes, i+1)
		}
	}

	return holes
}

// FillHoles replaces empty bins in place according to mode. A histogram with
// no non-empty bin is left untouched in linear mode (no anchors to
// interpolate from).
//
// Errors:
//   - ErrNilHistogram — h is nil.
//   - ErrBadFillMode  — mode outside the defined set.
func FillHoles(h *Histogram, mode HoleFillMode) error {
	if h == nil {
		return ErrNilHistogram
	}

	switch mode {
	case HoleFillConstant:
		for i, v := range h.bins {
			if v == 0 {
				h.bins[i] = DefaultHoleFill
			}
		}
	case HoleFillLinear:
		fillLinear(h.bins)
	default:
		return ErrBadFillMode
	}

	return nil
}

// fillLinear interpolates empty entries between consecutive non-empty
// anchors; entries outside the anchored span keep their zeros.
func fillLinear(bins []float64) {
	anchors := make([]int, 0, len(bins))
	for i, v := range bins {
		if v != 0 {
			anchors = append(anchors, i)
		}
	}
	if len(anchors) < 2 {
		return
	}

	for a := 0; a < len(anchors)-1; a++ {
		left, right := anchors[a], anchors[a+1]
		if right-left < 2 {
			continue
		}
		slope := (bins[right] - bins[left]) / float64(right-left)
		for i := left + 1; i < right; i++ {
			bins[i] = bins[left] + slope*float64(i-left)
		}
	}
}
