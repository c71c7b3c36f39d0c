package particle

import (
	"math"

	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/fourvec"
)

// goodTagUnset marks a particle that has not been classified yet.
const goodTagUnset int8 = -1

// Particle is one reconstructed object: exactly one four-momentum plus
// identity and classification attributes. The four-vector never changes
// after construction; only the display name and the good tag may be
// re-assigned, and detector extras live in a side attribute map.
type Particle struct {
	vec     fourvec.Vec
	charge  float64
	name    string
	kind    Kind
	goodTag int8
	attrs   map[string]float64
}

// New constructs a Particle from a four-vector, an electric charge (in units
// of e; fractions like ±1/3 are fine), a display name and a category.
//
// Errors:
//   - ErrBadCharge    — charge is NaN or ±Inf.
//   - ErrUnknownKind  — kind is outside the closed category set.
func New(vec fourvec.Vec, charge float64, name string, kind Kind) (*Particle, error) {
	if math.IsNaN(charge) || math.IsInf(charge, 0) {
		return nil, ErrBadCharge
	}
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}

	return &Particle{
		vec:     vec,
		charge:  charge,
		name:    name,
		kind:    kind,
		goodTag: goodTagUnset,
	}, nil
}

// METContribution is one transverse missing-energy entry of an event:
// a magnitude and an azimuthal direction, massless and confined to the
// transverse plane (η = 0).
type METContribution struct {
	Pt  float64
	Phi float64
}

// NewMET builds the per-event missing-transverse-energy pseudo-particle by
// vector-summing every contribution. The sum happens during construction;
// the returned particle is as immutable as any other.
//
// Errors:
//   - ErrNoContributions — contribs is empty.
func NewMET(contribs []METContribution) (*Particle, error) {
	if len(contribs) == 0 {
		return nil, ErrNoContributions
	}

	var sum fourvec.Vec
	for _, c := range contribs {
		sum = sum.Add(fourvec.NewPtEtaPhiM(c.Pt, 0, c.Phi, 0))
	}

	return &Particle{
		vec:     sum,
		charge:  0,
		name:    MET.String(),
		kind:    MET,
		goodTag: goodTagUnset,
	}, nil
}

// Vec returns the particle's four-momentum.
func (p *Particle) Vec() fourvec.Vec { return p.vec }

// Charge returns the electric charge in units of e.
func (p *Particle) Charge() float64 { return p.charge }

// Name returns the display name (feature-row label component).
func (p *Particle) Name() string { return p.name }

// SetName re-assigns the display name, e.g. after pt-rank ordering.
func (p *Particle) SetName(name string) { p.name = name }

// Kind returns the particle category.
func (p *Particle) Kind() Kind { return p.kind }

// Pt returns the transverse momentum.
func (p *Particle) Pt() float64 { return p.vec.Pt() }

// P returns the total momentum.
func (p *Particle) P() float64 { return p.vec.P() }

// Pl returns the signed longitudinal momentum.
func (p *Particle) Pl() float64 { return p.vec.Pl() }

// Eta returns the pseudorapidity.
func (p *Particle) Eta() float64 { return p.vec.Eta() }

// Phi returns the azimuthal angle in (-π, π].
func (p *Particle) Phi() float64 { return p.vec.Phi() }

// M returns the reconstructed mass.
func (p *Particle) M() float64 { return p.vec.M() }

// Energy returns the reconstructed energy.
func (p *Particle) Energy() float64 { return p.vec.E() }

// Attr returns the named detector extra (isolation, track count, tag bits…)
// and whether it was set.
func (p *Particle) Attr(key string) (float64, bool) {
	v, ok := p.attrs[key]

	return v, ok
}

// SetAttr records a detector extra in the side attribute map.
func (p *Particle) SetAttr(key string, value float64) {
	if p.attrs == nil {
		p.attrs = make(map[string]float64, 4)
	}
	p.attrs[key] = value
}

// GoodTag returns the classification bit and whether it has been set.
func (p *Particle) GoodTag() (int, bool) {
	if p.goodTag == goodTagUnset {
		return 0, false
	}

	return int(p.goodTag), true
}

// SetGoodTag records a classification decision.
//
// Errors:
//   - ErrBadGoodTag — v is neither 0 nor 1.
func (p *Particle) SetGoodTag(v int) error {
	if v != 0 && v != 1 {
		return ErrBadGoodTag
	}
	p.goodTag = int8(v)

	return nil
}

// EvalGoodTag classifies the particle against the cut record for its Kind:
// tag = 1 when pt ≥ PtMin, pt ≤ PtMax (when bounded) and EtaMin ≤ η ≤ EtaMax,
// else 0. The tag is stored on the particle and returned.
//
// Errors:
//   - ErrMissingCuts — cuts has no record for the particle's Kind.
//   - ErrBadCutRange — the record's PtMax does not exceed its PtMin.
func (p *Particle) EvalGoodTag(cuts CutSet) (int, error) {
	rec, ok := cuts[p.kind]
	if !ok {
		return 0, ErrMissingCuts
	}
	if rec.PtMax != nil && *rec.PtMax <= rec.PtMin {
		return 0, ErrBadCutRange
	}

	pt, eta := p.Pt(), p.Eta()
	ptOK := pt >= rec.PtMin && (rec.PtMax == nil || pt <= *rec.PtMax)
	etaOK := eta >= rec.EtaMin && eta <= rec.EtaMax

	tag := 0
	if ptOK && etaOK {
		tag = 1
	}
	p.goodTag = int8(tag)

	return tag, nil
}

// DeltaR returns the angular separation between p and o.
func (p *Particle) DeltaR(o *Particle) float64 { return p.vec.DeltaR(o.vec) }

// DeltaEta returns η(p) − η(o).
func (p *Particle) DeltaEta(o *Particle) float64 { return p.vec.DeltaEta(o.vec) }

// DeltaPhi returns the wrapped azimuthal difference φ(p) − φ(o).
func (p *Particle) DeltaPhi(o *Particle) float64 { return p.vec.DeltaPhi(o.vec) }

// DeltaPtScalar returns pt(p) − pt(o).
func (p *Particle) DeltaPtScalar(o *Particle) float64 { return p.vec.DeltaPtScalar(o.vec) }

// DeltaPtVec returns |pT(p) − pT(o)| in the transverse plane.
func (p *Particle) DeltaPtVec(o *Particle) float64 { return p.vec.DeltaPtVec(o.vec) }

// DeltaPVec returns |p(p) − p(o)| over the full 3-momentum.
func (p *Particle) DeltaPVec(o *Particle) float64 { return p.vec.DeltaPVec(o.vec) }
