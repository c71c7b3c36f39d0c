package particle

import "math/rand"

// Charm-tagging working point, matching the simulated detector card.
const (
	// DefaultCharmEfficiency is the probability of tagging a true charm jet.
	DefaultCharmEfficiency = 0.70

	// DefaultCharmMisID is the probability of tagging a non-charm jet.
	DefaultCharmMisID = 0.01
)

// CharmFlavor is the PDG flavor code of the charm quark.
const CharmFlavor = 4

// Tagger draws probabilistic tag decisions against an explicit random
// source. The source is injected, never process-global, so a seeded source
// makes every tagging sequence reproducible.
type Tagger struct {
	rng        *rand.Rand
	efficiency float64
	misID      float64
}

// NewTagger builds a Tagger at the default charm working point.
func NewTagger(src rand.Source) *Tagger {
	return &Tagger{
		rng:        rand.New(src),
		efficiency: DefaultCharmEfficiency,
		misID:      DefaultCharmMisID,
	}
}

// NewTaggerWithRates builds a Tagger with explicit efficiency and
// misidentification rates, both in [0, 1].
func NewTaggerWithRates(src rand.Source, efficiency, misID float64) *Tagger {
	return &Tagger{rng: rand.New(src), efficiency: efficiency, misID: misID}
}

// CharmTag draws one tag decision for a jet of the given PDG flavor:
// 1 with probability efficiency when the jet is a true charm jet, 1 with
// probability misID otherwise, else 0.
func (t *Tagger) CharmTag(flavor int) int {
	draw := t.rng.Float64()
	switch {
	case flavor == CharmFlavor && draw < t.efficiency:
		return 1
	case flavor != CharmFlavor && draw < t.misID:
		return 1
	default:
		return 0
	}
}
