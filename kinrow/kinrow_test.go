package kinrow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/fourvec"
	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/kinrow"
	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/particle"
)

// mkParticle is a test helper for building named particles.
func mkParticle(t *testing.T, name string, pt, eta, phi, m float64) *particle.Particle {
	t.Helper()
	p, err := particle.New(fourvec.NewPtEtaPhiM(pt, eta, phi, m), 0, name, particle.Generic)
	require.NoError(t, err)

	return p
}

// TestKinematics_InvalidInput covers the empty list and nil entries.
func TestKinematics_InvalidInput(t *testing.T) {
	_, err := kinrow.Kinematics(nil)
	assert.ErrorIs(t, err, kinrow.ErrNoParticles)

	_, err = kinrow.Kinematics([]*particle.Particle{nil})
	assert.ErrorIs(t, err, kinrow.ErrNilParticle)

	p := mkParticle(t, "e", 50, 1.1, 0.2, 0)
	_, err = kinrow.Kinematics([]*particle.Particle{p, nil})
	assert.ErrorIs(t, err, kinrow.ErrNilParticle)
}

// TestKinematics_SingleParticle yields exactly the 5 base features, no deltas.
func TestKinematics_SingleParticle(t *testing.T) {
	p := mkParticle(t, "e", 50, 1.1, 0.2, 0.000511)

	row, err := kinrow.Kinematics([]*particle.Particle{p})
	require.NoError(t, err)

	assert.Equal(t, 5, row.Len())
	assert.Equal(t, []string{
		"pT_{e}(GeV)",
		"#eta_{e}",
		"#phi_{e}",
		"Energy_{e}(GeV)",
		"Mass_{e}(GeV)",
	}, row.Labels())

	pt, ok := row.Value("pT_{e}(GeV)")
	require.True(t, ok)
	assert.InEpsilon(t, 50.0, pt, 1e-9)
}

// TestKinematics_PairEmitsSixDeltas: two particles → 10 base + 6 delta = 16
// features, labeled with the (i,j)-ordered pair suffix.
func TestKinematics_PairEmitsSixDeltas(t *testing.T) {
	a := mkParticle(t, "e", 50, 1.1, 0.2, 0)
	b := mkParticle(t, "mu", 30, -0.4, 2.8, 0.105)

	row, err := kinrow.Kinematics([]*particle.Particle{a, b})
	require.NoError(t, err)

	assert.Equal(t, 16, row.Len())

	wantDeltas := []string{
		"#Delta{R}_{emu}",
		"#Delta{#eta}_{emu}",
		"#Delta{#phi}_{emu}",
		"#Delta{pT}_{emu}(GeV)",
		"#Delta{#vec{pT}}_{emu}(GeV)",
		"#Delta{#vec{p}}_{emu}(GeV)",
	}
	for _, label := range wantDeltas {
		_, ok := row.Value(label)
		assert.True(t, ok, "missing delta feature %q", label)
	}

	dR, _ := row.Value("#Delta{R}_{emu}")
	assert.Equal(t, a.DeltaR(b), dR)
	dEta, _ := row.Value("#Delta{#eta}_{emu}")
	assert.Equal(t, a.DeltaEta(b), dEta)
	dPtS, _ := row.Value("#Delta{pT}_{emu}(GeV)")
	assert.InEpsilon(t, 20.0, dPtS, 1e-9, "scalar ΔpT = 50 − 30")
}

// TestKinematics_LabelOrderIsDeterministic: the label sequence follows the
// nested i then j>i iteration, so the full order for three particles is
// fixed.
func TestKinematics_LabelOrderIsDeterministic(t *testing.T) {
	ps := []*particle.Particle{
		mkParticle(t, "a", 90, 0.1, 0.3, 1),
		mkParticle(t, "b", 60, -1.0, 1.5, 1),
		mkParticle(t, "c", 20, 2.0, -2.0, 1),
	}

	row, err := kinrow.Kinematics(ps)
	require.NoError(t, err)

	// 15 base + 18 deltas
	assert.Equal(t, 33, row.Len())

	labels := row.Labels()
	assert.Equal(t, "pT_{a}(GeV)", labels[0])
	assert.Equal(t, "#Delta{R}_{ab}", labels[5], "a's deltas follow a's scalars")
	assert.Equal(t, "#Delta{R}_{ac}", labels[11])
	assert.Equal(t, "pT_{b}(GeV)", labels[17], "b's scalars follow a's block")
	assert.Equal(t, "#Delta{R}_{bc}", labels[22])
	assert.Equal(t, "pT_{c}(GeV)", labels[28])

	again, err := kinrow.Kinematics(ps)
	require.NoError(t, err)
	assert.Equal(t, labels, again.Labels(), "same input, same order")
}

// TestRow_SetKeepsPositionOnOverwrite: re-setting a label keeps insertion
// order and replaces the value.
func TestRow_SetKeepsPositionOnOverwrite(t *testing.T) {
	row := kinrow.NewRow()
	row.Set("sT(GeV)", 100)
	row.Set("mT(GeV)", 50)
	row.Set("sT(GeV)", 120)

	assert.Equal(t, []string{"sT(GeV)", "mT(GeV)"}, row.Labels())
	v, _ := row.Value("sT(GeV)")
	assert.Equal(t, 120.0, v)
	assert.Equal(t, 2, row.Len())
}
