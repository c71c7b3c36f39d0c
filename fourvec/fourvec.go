package fourvec

import "math"

// Vec is an energy-momentum four-vector stored in Cartesian components
// (px, py, pz, E). The zero value is the null vector.
//
// Vec is a small value type: pass and return it by value, compare derived
// scalars rather than raw components when tolerance matters.
type Vec struct {
	px, py, pz, e float64
}

// NewPxPyPzE builds a four-vector directly from Cartesian momentum
// components and energy.
func NewPxPyPzE(px, py, pz, e float64) Vec {
	return Vec{px: px, py: py, pz: pz, e: e}
}

// NewPtEtaPhiM builds a four-vector from transverse momentum, pseudorapidity,
// azimuthal angle and mass. The energy is set on-shell: E = √(P² + m²).
func NewPtEtaPhiM(pt, eta, phi, m float64) Vec {
	px := pt * math.Cos(phi)
	py := pt * math.Sin(phi)
	pz := pt * math.Sinh(eta)
	p2 := px*px + py*py + pz*pz

	return Vec{px: px, py: py, pz: pz, e: math.Sqrt(p2 + m*m)}
}

// Px returns the x momentum component.
func (v Vec) Px() float64 { return v.px }

// Py returns the y momentum component.
func (v Vec) Py() float64 { return v.py }

// Pz returns the z (beam-axis) momentum component.
func (v Vec) Pz() float64 { return v.pz }

// E returns the energy (time component).
func (v Vec) E() float64 { return v.e }

// Pt returns the transverse momentum √(px² + py²).
func (v Vec) Pt() float64 { return math.Hypot(v.px, v.py) }

// P returns the magnitude of the 3-momentum.
func (v Vec) P() float64 {
	return math.Sqrt(v.px*v.px + v.py*v.py + v.pz*v.pz)
}

// Pl returns the longitudinal momentum, signed by the beam-axis direction:
// sign(pz)·√((P−Pt)(P+Pt)). The factored form avoids cancellation when
// P ≈ Pt.
func (v Vec) Pl() float64 {
	p, pt := v.P(), v.Pt()
	d := (p - pt) * (p + pt)
	if d <= 0 {
		// rounding may push the product slightly negative for pz≈0
		return 0
	}

	return math.Copysign(math.Sqrt(d), v.pz)
}

// Eta returns the pseudorapidity asinh(pz/pt). A vector with zero transverse
// momentum has no defined polar angle: Eta returns ±Inf following the sign
// of pz, and 0 for the null vector.
func (v Vec) Eta() float64 {
	pt := v.Pt()
	if pt == 0 {
		if v.pz == 0 {
			return 0
		}

		return math.Copysign(math.Inf(1), v.pz)
	}

	return math.Asinh(v.pz / pt)
}

// Phi returns the azimuthal angle atan2(py, px) in (-π, π].
func (v Vec) Phi() float64 {
	if v.px == 0 && v.py == 0 {
		return 0
	}

	return math.Atan2(v.py, v.px)
}

// M returns the invariant mass √(E² − P²). Space-like vectors (negative
// mass-squared, possible after background subtraction or rounding) yield
// −√(P² − E²), matching the usual reconstruction convention.
func (v Vec) M() float64 {
	m2 := v.e*v.e - (v.px*v.px + v.py*v.py + v.pz*v.pz)
	if m2 < 0 {
		return -math.Sqrt(-m2)
	}

	return math.Sqrt(m2)
}

// Add returns the component-wise sum v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{px: v.px + w.px, py: v.py + w.py, pz: v.pz + w.pz, e: v.e + w.e}
}

// DeltaEta returns η(v) − η(w). Antisymmetric: DeltaEta(a,b) = −DeltaEta(b,a).
func (v Vec) DeltaEta(w Vec) float64 { return v.Eta() - w.Eta() }

// DeltaPhi returns φ(v) − φ(w) wrapped into (-π, π]. Antisymmetric modulo
// the wrap at ±π.
func (v Vec) DeltaPhi(w Vec) float64 { return wrapPhi(v.Phi() - w.Phi()) }

// DeltaR returns the angular separation √(Δη² + Δφ²) with Δφ wrapped.
// Symmetric: DeltaR(a,b) = DeltaR(b,a).
func (v Vec) DeltaR(w Vec) float64 {
	dEta := v.DeltaEta(w)
	dPhi := v.DeltaPhi(w)

	return math.Sqrt(dEta*dEta + dPhi*dPhi)
}

// DeltaPtScalar returns the difference of transverse-momentum magnitudes
// pt(v) − pt(w).
func (v Vec) DeltaPtScalar(w Vec) float64 { return v.Pt() - w.Pt() }

// DeltaPtVec returns the magnitude of the 2D transverse-momentum-vector
// difference |pT(v) − pT(w)|. Symmetric, zero when v == w.
func (v Vec) DeltaPtVec(w Vec) float64 {
	return math.Hypot(v.px-w.px, v.py-w.py)
}

// DeltaPVec returns the magnitude of the full 3-momentum-vector difference
// |p(v) − p(w)|. Symmetric, zero when v == w.
func (v Vec) DeltaPVec(w Vec) float64 {
	dx, dy, dz := v.px-w.px, v.py-w.py, v.pz-w.pz

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// wrapPhi folds an angle difference into (-π, π].
func wrapPhi(d float64) float64 {
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}

	return d
}
