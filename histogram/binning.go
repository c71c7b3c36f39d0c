package histogram

import "math"

// Binning is a uniform-width binning scheme: NBins bins covering
// [Low, High). High == Low is legal (degenerate single-point domain, bin
// width 0); High < Low is not.
type Binning struct {
	NBins int
	Low   float64
	High  float64
}

// Sturges derives a binning from a raw sample array using Sturges' rule:
// ⌊1 + log₂(L)⌋ bins spanning [min(samples), max(samples)]. The rule is a
// quick heuristic, not a statistically optimal choice — callers with better
// knowledge of their distribution should pass an explicit Binning instead.
//
// Errors:
//   - ErrNoSamples — samples is empty.
func Sturges(samples []float64) (Binning, error) {
	if len(samples) == 0 {
		return Binning{}, ErrNoSamples
	}

	low, high := samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}

	return Binning{
		NBins: int(1 + math.Log2(float64(len(samples)))),
		Low:   low,
		High:  high,
	}, nil
}

// compatible reports whether two schemes agree: identical bin counts and
// edges matching within EdgeEpsilon.
func (b Binning) compatible(o Binning) bool {
	return b.NBins == o.NBins &&
		math.Abs(b.Low-o.Low) <= EdgeEpsilon &&
		math.Abs(b.High-o.High) <= EdgeEpsilon
}
