package histogram

// Sum combines histograms sharing one binning scheme. With subtract false
// the result is the bin-wise sum of all operands; with subtract true it is
// h0 − h1 − h2 − …, the background-subtraction form (contents may go
// negative). The result is a fresh histogram named after the first operand;
// no operand is mutated.
//
// Errors:
//   - ErrNoHistograms       — empty operand list.
//   - ErrNilHistogram       — any operand is nil.
//   - ErrIncompatibleBinning — any operand's bin count or edges differ from
//     the first's beyond EdgeEpsilon.
func Sum(histos []*Histogram, subtract bool) (*Histogram, error) {
	if len(histos) == 0 {
		return nil, ErrNoHistograms
	}
	for _, h := range histos {
		if h == nil {
			return nil, ErrNilHistogram
		}
	}

	first := histos[0]
	for _, h := range histos[1:] {
		if !first.binning.compatible(h.binning) {
			return nil, ErrIncompatibleBinning
		}
	}

	out := first.Clone()
	for _, h := range histos[1:] {
		for i := range out.bins {
			if subtract {
				out.bins[i] -= h.bins[i]
			} else {
				out.bins[i] += h.bins[i]
			}
		}
	}

	return out, nil
}
