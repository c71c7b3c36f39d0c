package kinrow

import (
	"errors"
	"fmt"

	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/particle"
)

var (
	// ErrNoParticles indicates Kinematics was called with an empty list.
	ErrNoParticles = errors.New("kinrow: need at least one particle")

	// ErrNilParticle indicates a nil entry in the particle list.
	ErrNilParticle = errors.New("kinrow: nil particle in list")
)

// Kinematics extracts the main kinematic variables of every particle and all
// pairwise deltas into one flat feature row.
//
// For the i-th particle with name n the row gains, in order:
//
//	pT_{n}(GeV), #eta_{n}, #phi_{n}, Energy_{n}(GeV), Mass_{n}(GeV)
//
// followed, for every later particle j > i with name m, by the six deltas
// labeled with the concatenated pair suffix _{nm}:
//
//	#Delta{R}_{nm}, #Delta{#eta}_{nm}, #Delta{#phi}_{nm},
//	#Delta{pT}_{nm}(GeV), #Delta{#vec{pT}}_{nm}(GeV), #Delta{#vec{p}}_{nm}(GeV)
//
// A single particle therefore yields 5 features; N particles yield
// 5N + 6·N(N−1)/2.
//
// Errors:
//   - ErrNoParticles — particles is empty.
//   - ErrNilParticle — any entry is nil.
func Kinematics(particles []*particle.Particle) (*Row, error) {
	if len(particles) == 0 {
		return nil, ErrNoParticles
	}
	for _, p := range particles {
		if p == nil {
			return nil, ErrNilParticle
		}
	}

	row := NewRow()
	for i, p := range particles {
		name := p.Name()
		row.Set(fmt.Sprintf("pT_{%s}(GeV)", name), p.Pt())
		row.Set(fmt.Sprintf("#eta_{%s}", name), p.Eta())
		row.Set(fmt.Sprintf("#phi_{%s}", name), p.Phi())
		row.Set(fmt.Sprintf("Energy_{%s}(GeV)", name), p.Energy())
		row.Set(fmt.Sprintf("Mass_{%s}(GeV)", name), p.M())

		for _, co := range particles[i+1:] {
			suffix := fmt.Sprintf("_{%s%s}", name, co.Name())

			row.Set("#Delta{R}"+suffix, p.DeltaR(co))
			row.Set("#Delta{#eta}"+suffix, p.DeltaEta(co))
			row.Set("#Delta{#phi}"+suffix, p.DeltaPhi(co))
			row.Set("#Delta{pT}"+suffix+"(GeV)", p.DeltaPtScalar(co))
			row.Set("#Delta{#vec{pT}}"+suffix+"(GeV)", p.DeltaPtVec(co))
			row.Set("#Delta{#vec{p}}"+suffix+"(GeV)", p.DeltaPVec(co))
		}
	}

	return row, nil
}
