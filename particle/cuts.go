package particle

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CutRange is one kinematic-cut record: a pt window (upper bound optional)
// and an η window. A nil PtMax means unbounded from above. A record with
// both pt bounds set requires PtMax > PtMin; violating that is a
// configuration error surfaced at evaluation time, never a per-particle
// failure.
type CutRange struct {
	PtMin  float64  `yaml:"pt_min_cut"`
	PtMax  *float64 `yaml:"pt_max_cut,omitempty"`
	EtaMin float64  `yaml:"eta_min_cut"`
	EtaMax float64  `yaml:"eta_max_cut"`
}

// validate checks the internal consistency of one record.
func (r CutRange) validate() error {
	if r.PtMax != nil && *r.PtMax <= r.PtMin {
		return ErrBadCutRange
	}

	return nil
}

// CutSet maps each particle Kind to its kinematic-cut record. Kinds absent
// from the set cause EvalGoodTag to fail with ErrMissingCuts.
type CutSet map[Kind]CutRange

// Validate checks every record of the set; the first bad record fails with
// ErrBadCutRange wrapped with the offending kind.
func (c CutSet) Validate() error {
	for kind, rec := range c {
		if err := rec.validate(); err != nil {
			return fmt.Errorf("cuts for %s: %w", kind, err)
		}
	}

	return nil
}

// CutSetFromYAML decodes a cut configuration keyed by canonical kind labels:
//
//	muon:
//	  pt_min_cut: 10.0
//	  eta_min_cut: -2.4
//	  eta_max_cut: 2.4
//	b_jet:
//	  pt_min_cut: 30.0
//	  pt_max_cut: 800.0
//	  eta_min_cut: -5.0
//	  eta_max_cut: 5.0
//
// Unknown labels fail with ErrUnknownKind; inconsistent pt bounds fail with
// ErrBadCutRange.
func CutSetFromYAML(data []byte) (CutSet, error) {
	var raw map[string]CutRange
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("particle: decoding cut set: %w", err)
	}

	cuts := make(CutSet, len(raw))
	for label, rec := range raw {
		kind, err := ParseKind(label)
		if err != nil {
			return nil, fmt.Errorf("cut key %q: %w", label, err)
		}
		cuts[kind] = rec
	}
	if err := cuts.Validate(); err != nil {
		return nil, err
	}

	return cuts, nil
}

// DefaultCuts returns the standard phenomenology cut set: leptons and
// photons inside the tracker acceptance with pt above 10 GeV, jets above
// 20 GeV inside the calorimeter acceptance, τ-jets restricted to the
// tracking volume. The returned set is a fresh copy; callers may edit it.
func DefaultCuts() CutSet {
	return CutSet{
		Electron: {PtMin: 10, EtaMin: -2.4, EtaMax: 2.4},
		Muon:     {PtMin: 10, EtaMin: -2.4, EtaMax: 2.4},
		Lepton:   {PtMin: 10, EtaMin: -2.4, EtaMax: 2.4},
		Photon:   {PtMin: 10, EtaMin: -2.4, EtaMax: 2.4},
		LightJet: {PtMin: 20, EtaMin: -5, EtaMax: 5},
		BJet:     {PtMin: 20, EtaMin: -5, EtaMax: 5},
		OtherJet: {PtMin: 20, EtaMin: -5, EtaMax: 5},
		TauJet:   {PtMin: 20, EtaMin: -2.5, EtaMax: 2.5},
	}
}
