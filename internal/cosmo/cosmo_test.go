package cosmo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubbleFrac(t *testing.T) {
	assert.InDelta(t, 1.0, HubbleFrac(0), 1e-12)

	// E(1)^2 = OmegaM*8 + OmegaL
	want := math.Sqrt(OmegaM*8 + OmegaL)
	assert.InDelta(t, want, HubbleFrac(1), 1e-12)
}

func TestRhoCritical(t *testing.T) {
	// rho_c,0 = 2.775e2 h^2 Msun/kpc^3 to within rounding of G.
	want := 277.5 * H100 * H100
	assert.InEpsilon(t, want, RhoCritical(0), 1e-3)

	// Critical density grows with redshift.
	assert.Greater(t, RhoCritical(2), RhoCritical(0))
}

func TestMassDefRoundTrip(t *testing.T) {
	for _, def := range []MassDef{Def200c, Def200m, DefVir} {
		t.Run(def.String(), func(t *testing.T) {
			m := 1.4e12
			r := def.Radius(m, 1.0)
			assert.InEpsilon(t, m, def.Mass(r, 1.0), 1e-12)
		})
	}
}

func TestMassDefRadiusReference(t *testing.T) {
	// R200c of a 1e12 Msun halo at z=0 is ~210 kpc.
	r := Def200c.Radius(1e12, 0)
	assert.InDelta(t, 210, r, 5)
}

func TestMassDefFromString(t *testing.T) {
	d, err := MassDefFromString("200C")
	require.NoError(t, err)
	assert.Equal(t, Def200c, d)

	_, err = MassDefFromString("500c")
	assert.Error(t, err)
}

func TestDeltaVir(t *testing.T) {
	// At z=0 in Planck18, Delta_vir ~ 102 relative to critical.
	assert.InDelta(t, 102, DeltaVir(0), 3)
	// High z approaches the EdS value 18*pi^2.
	assert.InDelta(t, 18*math.Pi*math.Pi, DeltaVir(10), 2)
}
