package particle

// ChargeFromPDG returns the electric charge, in units of e, for a PDG
// particle id: up-type quarks (u, c, t) carry ±2/3, down-type quarks
// (d, s, b) carry ∓1/3, charged leptons (e, μ, τ) carry ∓1, everything
// else (neutrinos, gauge bosons, …) is neutral. Antiparticles (negative
// ids) flip the sign.
func ChargeFromPDG(pdgID int) float64 {
	sign := 1.0
	if pdgID < 0 {
		sign = -1.0
	}

	switch abs(pdgID) {
	case 2, 4, 6: // u, c, t
		return sign * 2.0 / 3.0
	case 1, 3, 5: // d, s, b
		return -sign * 1.0 / 3.0
	case 11, 13, 15: // e, mu, tau
		return -sign
	default:
		return 0
	}
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
