package particle

// Kind is the closed category set for reconstructed objects. The string
// forms double as configuration keys (see CutSetFromYAML) and follow the
// conventional detector-object labels: "l_jet" for light jets, "b_jet" for
// b-tagged jets, "tau_jet" for hadronic taus, "lep" for a generic lepton,
// "MET" for missing transverse energy.
type Kind int

const (
	// Generic is the default category for objects with no detector identity.
	Generic Kind = iota

	// Electron is a reconstructed electron.
	Electron

	// Muon is a reconstructed muon.
	Muon

	// Lepton is a flavor-agnostic lepton (merged electron/muon collections).
	Lepton

	// LightJet is a jet with neither a b-tag nor a τ-tag.
	LightJet

	// BJet is a b-tagged jet.
	BJet

	// TauJet is a τ-tagged jet.
	TauJet

	// OtherJet is a jet with an unexpected tag combination.
	OtherJet

	// Photon is a reconstructed photon.
	Photon

	// MET is the per-event missing-transverse-energy pseudo-particle.
	MET
)

// kindNames maps each Kind to its canonical configuration key.
var kindNames = map[Kind]string{
	Generic:  "generic",
	Electron: "electron",
	Muon:     "muon",
	Lepton:   "lep",
	LightJet: "l_jet",
	BJet:     "b_jet",
	TauJet:   "tau_jet",
	OtherJet: "other_jet",
	Photon:   "photon",
	MET:      "MET",
}

// kindByName is the inverse of kindNames, built once at init.
var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}

	return m
}()

// String returns the canonical label of k, or "unknown" outside the set.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether k belongs to the closed category set.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]

	return ok
}

// ParseKind resolves a canonical label back to its Kind.
// Returns ErrUnknownKind for labels outside the set.
func ParseKind(name string) (Kind, error) {
	k, ok := kindByName[name]
	if !ok {
		return Generic, ErrUnknownKind
	}

	return k, nil
}

// JetKind maps the (b-tag, τ-tag) pair of a reconstructed jet to its
// category: untagged jets are light, a sole b-tag marks a b-jet, a sole
// τ-tag a τ-jet, and any other combination falls through to OtherJet.
func JetKind(bTag, tauTag int) Kind {
	switch {
	case bTag == 0 && tauTag == 0:
		return LightJet
	case bTag == 1 && tauTag == 0:
		return BJet
	case bTag == 0 && tauTag == 1:
		return TauJet
	default:
		return OtherJet
	}
}
