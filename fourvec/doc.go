// Package fourvec provides a relativistic four-momentum value type and the
// pairwise delta metrics used throughout collider-event feature extraction.
//
// ✨ Key features:
//   - lossless construction from (pt, η, φ, m) or (px, py, pz, E)
//   - derived scalars: total momentum P, longitudinal momentum Pl, mass M
//   - delta metrics: ΔR, Δη, Δφ (wrapped to (-π, π]), scalar ΔpT,
//     vector ΔpT (transverse plane) and Δp (full 3-momentum)
//   - component-wise Add for accumulating missing-energy contributions
//
// All operations are deterministic pure functions. Inputs are expected to be
// finite; NaN propagates through unguarded, as in any floating-point formula.
//
// ⚙️ Usage:
//
//	import "github.com/Phenomenology-group-uniandes/hep-pheno-tools/fourvec"
//
//	mu := fourvec.NewPtEtaPhiM(50.0, 1.2, 0.3, 0.105)
//	jet := fourvec.NewPtEtaPhiM(120.0, -0.4, 2.9, 10.0)
//	dr := mu.DeltaR(jet)
//
// The on-shell invariant E² = P² + M² holds to floating-point accuracy for
// every vector built by either constructor.
package fourvec
