package particle_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/fourvec"
	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/particle"
)

// electron returns a valid test particle inside the default cut window.
func electron(t *testing.T) *particle.Particle {
	t.Helper()
	p, err := particle.New(
		fourvec.NewPtEtaPhiM(50, 1.5, 0.5, 0.000511),
		-1.0, "e", particle.Electron,
	)
	require.NoError(t, err)

	return p
}

// TestNew_Validation verifies construction rejects non-finite charges and
// kinds outside the closed set.
func TestNew_Validation(t *testing.T) {
	vec := fourvec.NewPtEtaPhiM(10, 0, 0, 0)

	_, err := particle.New(vec, math.NaN(), "x", particle.Generic)
	assert.ErrorIs(t, err, particle.ErrBadCharge)

	_, err = particle.New(vec, math.Inf(1), "x", particle.Generic)
	assert.ErrorIs(t, err, particle.ErrBadCharge)

	_, err = particle.New(vec, 0, "x", particle.Kind(99))
	assert.ErrorIs(t, err, particle.ErrUnknownKind)
}

// TestParticle_Accessors checks identity accessors and name re-assignment.
func TestParticle_Accessors(t *testing.T) {
	p := electron(t)

	assert.Equal(t, -1.0, p.Charge())
	assert.Equal(t, "e", p.Name())
	assert.Equal(t, particle.Electron, p.Kind())
	assert.InEpsilon(t, 50.0, p.Pt(), 1e-9)
	assert.InEpsilon(t, 1.5, p.Eta(), 1e-9)

	p.SetName("e_1")
	assert.Equal(t, "e_1", p.Name())
}

// TestParticle_SetGoodTag verifies only 0 and 1 are accepted and that the
// unset state is observable.
func TestParticle_SetGoodTag(t *testing.T) {
	p := electron(t)

	_, set := p.GoodTag()
	assert.False(t, set, "fresh particle has no good tag")

	require.NoError(t, p.SetGoodTag(1))
	tag, set := p.GoodTag()
	assert.True(t, set)
	assert.Equal(t, 1, tag)

	assert.ErrorIs(t, p.SetGoodTag(2), particle.ErrBadGoodTag)
	assert.ErrorIs(t, p.SetGoodTag(-1), particle.ErrBadGoodTag)
}

// TestParticle_EvalGoodTag covers pass, fail, the optional upper pt bound,
// the missing-kind error and the inconsistent-range error.
func TestParticle_EvalGoodTag(t *testing.T) {
	p := electron(t) // pt=50, eta=1.5

	tag, err := p.EvalGoodTag(particle.DefaultCuts())
	require.NoError(t, err)
	assert.Equal(t, 1, tag, "pt=50, η=1.5 passes the default electron cuts")

	tight := particle.CutSet{
		particle.Electron: {PtMin: 60, EtaMin: -2.4, EtaMax: 2.4},
	}
	tag, err = p.EvalGoodTag(tight)
	require.NoError(t, err)
	assert.Equal(t, 0, tag, "pt below pt_min fails")
	stored, set := p.GoodTag()
	assert.True(t, set)
	assert.Equal(t, 0, stored, "evaluation stores the tag")

	ptMax := 40.0
	bounded := particle.CutSet{
		particle.Electron: {PtMin: 10, PtMax: &ptMax, EtaMin: -2.4, EtaMax: 2.4},
	}
	tag, err = p.EvalGoodTag(bounded)
	require.NoError(t, err)
	assert.Equal(t, 0, tag, "pt above pt_max fails")

	_, err = p.EvalGoodTag(particle.CutSet{})
	assert.ErrorIs(t, err, particle.ErrMissingCuts)

	badMax := 5.0
	broken := particle.CutSet{
		particle.Electron: {PtMin: 10, PtMax: &badMax, EtaMin: -2.4, EtaMax: 2.4},
	}
	_, err = p.EvalGoodTag(broken)
	assert.ErrorIs(t, err, particle.ErrBadCutRange)
}

// TestParticle_DeltaDelegation spot-checks that particle deltas delegate to
// the four-vector metrics.
func TestParticle_DeltaDelegation(t *testing.T) {
	a := electron(t)
	b, err := particle.New(
		fourvec.NewPtEtaPhiM(30, -0.5, -1.2, 0.105),
		1.0, "mu", particle.Muon,
	)
	require.NoError(t, err)

	assert.Equal(t, a.Vec().DeltaR(b.Vec()), a.DeltaR(b))
	assert.Equal(t, a.Vec().DeltaEta(b.Vec()), a.DeltaEta(b))
	assert.Equal(t, a.Vec().DeltaPhi(b.Vec()), a.DeltaPhi(b))
	assert.Equal(t, a.Vec().DeltaPtScalar(b.Vec()), a.DeltaPtScalar(b))
	assert.Equal(t, a.Vec().DeltaPtVec(b.Vec()), a.DeltaPtVec(b))
	assert.Equal(t, a.Vec().DeltaPVec(b.Vec()), a.DeltaPVec(b))
	assert.Zero(t, a.DeltaPtVec(a))
}

// TestParticle_Attrs verifies the side attribute map for detector extras.
func TestParticle_Attrs(t *testing.T) {
	p := electron(t)

	_, ok := p.Attr("isolation")
	assert.False(t, ok)

	p.SetAttr("isolation", 0.12)
	iso, ok := p.Attr("isolation")
	assert.True(t, ok)
	assert.Equal(t, 0.12, iso)
}

// TestNewMET verifies the construction-time vector sum: two equal,
// back-to-back contributions cancel; orthogonal ones add in quadrature.
func TestNewMET(t *testing.T) {
	_, err := particle.NewMET(nil)
	assert.ErrorIs(t, err, particle.ErrNoContributions)

	met, err := particle.NewMET([]particle.METContribution{
		{Pt: 40, Phi: 0},
		{Pt: 40, Phi: math.Pi},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0, met.Pt(), 1e-9, "back-to-back contributions cancel")
	assert.Equal(t, particle.MET, met.Kind())
	assert.Equal(t, "MET", met.Name())
	assert.Zero(t, met.Charge())

	met, err = particle.NewMET([]particle.METContribution{
		{Pt: 30, Phi: 0},
		{Pt: 40, Phi: math.Pi / 2},
	})
	require.NoError(t, err)
	assert.InEpsilon(t, 50, met.Pt(), 1e-9, "orthogonal sum in quadrature")
	assert.InDelta(t, 0, met.Eta(), 1e-12, "MET stays in the transverse plane")
}
