// Package power estimates the approximate global discovery significance of a
// binned signal-plus-background hypothesis.
//
// The estimate follows the log-likelihood-ratio weighting commonly used in
// collider searches: each bin contributes with weight w = ln(1 + s/b), so bins
// where the signal dominates the background count more than bins where it is
// buried. The n parameter subtracts n background standard deviations from the
// weighted signal yield before normalizing, giving a pessimistic "n-sigma
// downward fluctuation" variant of the estimate.
//
// What this package offers:
//
//   - ApproxGlobalSignificance(sig, bkg, n) — one number summarizing how far
//     the binned signal expectation stands above the background.
//
// Inputs are plain per-bin expected yields, typically the Contents() of two
// histograms sharing one binning scheme. Bins with zero expected background
// are a caller precondition (the weight diverges); fill holes first, e.g. with
// histogram.FillHoles.
package power
