package classifier

import (
	"fmt"
	"sort"

	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/particle"
)

// DefaultMinSeparation is the ΔR below which two reconstructed objects are
// considered overlapping.
const DefaultMinSeparation = 0.3

// Collection groups particles by Kind; within a Kind the slice is expected
// to be pt-descending (leading first).
type Collection = map[particle.Kind][]*particle.Particle

// GoodParticles evaluates the good tag of every particle against cuts and
// returns a parallel collection holding only the tag==1 particles, in their
// original per-kind order. An empty category contributes an empty slice.
//
// The call is fail-fast: the first evaluation error (missing cuts for a
// kind, inconsistent pt bounds) aborts and returns nil.
func GoodParticles(byKind Collection, cuts particle.CutSet) (Collection, error) {
	good := make(Collection, len(byKind))
	for kind, particles := range byKind {
		kept := make([]*particle.Particle, 0, len(particles))
		for _, p := range particles {
			tag, err := p.EvalGoodTag(cuts)
			if err != nil {
				return nil, fmt.Errorf("classifier: %s: %w", kind, err)
			}
			if tag == 1 {
				kept = append(kept, p)
			}
		}
		good[kind] = kept
	}

	return good, nil
}

// Unify merges every category of byKind into a single pt-descending list.
// Kinds are visited in ascending Kind order and the sort is stable, so pt
// ties keep a deterministic sequence. All-empty input yields an empty,
// non-nil list.
func Unify(byKind Collection) []*particle.Particle {
	kinds := make([]particle.Kind, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	all := make([]*particle.Particle, 0)
	for _, kind := range kinds {
		all = append(all, byKind[kind]...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Pt() > all[j].Pt() })

	return all
}

// RemoveOverlaps walks a pt-descending list and keeps each particle only if
// its ΔR to every already-kept particle is at least minSeparation; the
// softer member of an overlapping pair is always the one dropped. A
// non-positive minSeparation falls back to DefaultMinSeparation.
func RemoveOverlaps(sorted []*particle.Particle, minSeparation float64) []*particle.Particle {
	if minSeparation <= 0 {
		minSeparation = DefaultMinSeparation
	}

	kept := make([]*particle.Particle, 0, len(sorted))
	for _, p := range sorted {
		isolated := true
		for _, k := range kept {
			if p.DeltaR(k) < minSeparation {
				isolated = false
				break
			}
		}
		if isolated {
			kept = append(kept, p)
		}
	}

	return kept
}

// RenameByRank re-labels a pt-descending list so names encode the pt rank:
// prefix_{1} for the leading particle, prefix_{2} for the next, and so on.
func RenameByRank(sorted []*particle.Particle, prefix string) {
	for i, p := range sorted {
		p.SetName(fmt.Sprintf("%s_{%d}", prefix, i+1))
	}
}
