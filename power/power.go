package power

import "math"

// ApproxGlobalSignificance returns the approximate global significance of the
// binned signal expectation sig over the background expectation bkg, with n
// background standard deviations subtracted from the weighted signal yield.
//
// Each bin i enters with weight w = ln(1 + s/b):
//
//	(Σ s·w − n·√(Σ b·w²)) / √(Σ (s + b)·w²)
//
// Bins with b = 0 are a caller precondition: the weight diverges there, so
// fill background holes first (histogram.FillHoles). n = 0 yields the plain
// median-expected significance.
//
// Errors:
//   - ErrNoBins         — sig is empty.
//   - ErrLengthMismatch — len(sig) != len(bkg).
//   - ErrNegativeN      — n < 0.
func ApproxGlobalSignificance(sig, bkg []float64, n float64) (float64, error) {
	if len(sig) == 0 {
		return 0, ErrNoBins
	}
	if len(sig) != len(bkg) {
		return 0, ErrLengthMismatch
	}
	if n < 0 {
		return 0, ErrNegativeN
	}

	var sumSW, sumBW2, sumTotW2 float64
	for i, s := range sig {
		b := bkg[i]
		w := math.Log(1 + s/b)
		sumSW += s * w
		sumBW2 += b * w * w
		sumTotW2 += (s + b) * w * w
	}

	den := math.Sqrt(sumTotW2)
	if den == 0 {
		return 0, nil
	}

	return (sumSW - n*math.Sqrt(sumBW2)) / den, nil
}
