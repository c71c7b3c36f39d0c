// Package particle models reconstructed collider objects: one four-momentum
// plus identity (charge, display name) and a closed category set (Kind).
//
// A Particle is immutable in its four-vector once constructed; the only
// construction path that accumulates momentum is NewMET, which vector-sums
// the per-event missing-transverse-energy contributions before the particle
// is handed out.
//
// The "good tag" is the kinematic-cut classification bit: unset until a
// classification decision, then 0 or 1. EvalGoodTag looks the particle's
// Kind up in a CutSet and applies the pt/η window:
//
//	cuts := particle.DefaultCuts()
//	tag, err := p.EvalGoodTag(cuts)   // 1 inside the window, 0 outside
//
// CutSets decode from YAML (gopkg.in/yaml.v3) so analyses can keep their cut
// configurations next to their run cards:
//
//	muon:
//	  pt_min_cut: 10.0
//	  eta_min_cut: -2.4
//	  eta_max_cut: 2.4
//
// Helpers cover the ingestion-side conventions that do not need any file
// format: JetKind maps (b-tag, τ-tag) pairs to jet categories, ChargeFromPDG
// assigns quark/lepton charges from PDG ids, and Tagger performs the charm
// mis/identification draw against an explicit, injectable random source so
// simulated tagging stays reproducible.
package particle
