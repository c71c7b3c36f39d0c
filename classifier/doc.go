// Package classifier applies kinematic-cut configurations to particle
// collections and builds merged leading-pt orderings.
//
// Collections are maps from particle Kind to a pt-descending slice
// ("leading" particle first). The package offers:
//
//   - GoodParticles — evaluate every particle's good tag against a CutSet
//     and keep only the passing ones, preserving per-kind order.
//   - Unify — merge all categories into one pt-descending list (e.g.
//     electrons + muons → leptons), stable on pt ties.
//   - RemoveOverlaps — greedy ΔR isolation over a pt-descending list,
//     dropping the softer member of any too-close pair.
//   - RenameByRank — re-label a pt-descending list as prefix_{1}, prefix_{2}…
//
// Failures are fail-fast: the first particle whose evaluation errors aborts
// the whole call, and no partial result is returned.
package classifier
