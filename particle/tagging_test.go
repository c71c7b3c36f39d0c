package particle_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/particle"
)

// TestTagger_Reproducible verifies that two taggers built from equal seeds
// emit identical tag sequences.
func TestTagger_Reproducible(t *testing.T) {
	a := particle.NewTagger(rand.NewSource(42))
	b := particle.NewTagger(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		flavor := particle.CharmFlavor
		if i%3 == 0 {
			flavor = 5
		}
		assert.Equal(t, a.CharmTag(flavor), b.CharmTag(flavor),
			"draw %d must match under equal seeds", i)
	}
}

// TestTagger_Rates checks the tag frequencies against the working point over
// a long, seeded draw sequence.
func TestTagger_Rates(t *testing.T) {
	const draws = 20000
	tagger := particle.NewTagger(rand.NewSource(7))

	charm := 0
	for i := 0; i < draws; i++ {
		charm += tagger.CharmTag(particle.CharmFlavor)
	}
	assert.InDelta(t, particle.DefaultCharmEfficiency,
		float64(charm)/draws, 0.02, "charm efficiency")

	tagger = particle.NewTagger(rand.NewSource(7))
	misses := 0
	for i := 0; i < draws; i++ {
		misses += tagger.CharmTag(5)
	}
	assert.InDelta(t, particle.DefaultCharmMisID,
		float64(misses)/draws, 0.01, "misidentification rate")
}

// TestTagger_ExtremeRates pins the degenerate working points: rate 1 always
// tags, rate 0 never does.
func TestTagger_ExtremeRates(t *testing.T) {
	always := particle.NewTaggerWithRates(rand.NewSource(1), 1.0, 1.0)
	never := particle.NewTaggerWithRates(rand.NewSource(1), 0.0, 0.0)

	for i := 0; i < 50; i++ {
		assert.Equal(t, 1, always.CharmTag(particle.CharmFlavor))
		assert.Equal(t, 0, never.CharmTag(particle.CharmFlavor))
		assert.Equal(t, 0, never.CharmTag(5))
	}
}
