package halo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacykim/disSat/internal/relation"
)

func TestMeanSubhaloCount(t *testing.T) {
	mw := MilkyWay()

	n7, err := mw.MeanSubhaloCount(1e7)
	require.NoError(t, err)
	n8, err := mw.MeanSubhaloCount(1e8)
	require.NoError(t, err)

	// Steeply falling mass function: far more low-mass subhalos, and the
	// count ratio tracks the mass-function slope, N(>m) ~ m^-0.9.
	assert.Greater(t, n7, n8)
	assert.InDelta(t, math.Pow(10, 0.9), n7/n8, 0.1)
	assert.Greater(t, n7, 50.0)
	assert.Less(t, n7, 500.0)
}

func TestMeanSubhaloCountBadInput(t *testing.T) {
	mw := MilkyWay()
	_, err := mw.MeanSubhaloCount(0)
	assert.Error(t, err)
	_, err = mw.MeanSubhaloCount(1e13)
	assert.Error(t, err)
}

func TestSampleSubhaloMasses(t *testing.T) {
	mw := MilkyWay()
	s := relation.NewSampler(42)

	masses, err := mw.SampleSubhaloMasses(s, 1e7)
	require.NoError(t, err)
	require.NotEmpty(t, masses)

	for _, m := range masses {
		assert.GreaterOrEqual(t, m, 1e7)
		assert.LessOrEqual(t, m, mw.Mass)
	}

	// Most subhalos sit near the mass floor.
	below := 0
	for _, m := range masses {
		if m < 1e8 {
			below++
		}
	}
	assert.Greater(t, float64(below)/float64(len(masses)), 0.7)
}

func TestSampleSubhaloMassesReproducible(t *testing.T) {
	mw := MilkyWay()
	a, err := mw.SampleSubhaloMasses(relation.NewSampler(7), 1e7)
	require.NoError(t, err)
	b, err := mw.SampleSubhaloMasses(relation.NewSampler(7), 1e7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestProfileFromString(t *testing.T) {
	p, err := ProfileFromString("coreNFW")
	require.NoError(t, err)
	assert.Equal(t, ProfileCoreNFW, p)
	assert.Equal(t, "corenfw", p.String())

	_, err = ProfileFromString("burkert")
	assert.Error(t, err)
}

func TestEnclosedMassNFW(t *testing.T) {
	h := Halo{M200: 1e10, C200: 12, Z: 1}

	// Total mass recovered at r200.
	assert.InEpsilon(t, 1e10, h.EnclosedMassNFW(h.R200()), 1e-12)
	// Monotonic in radius, zero at the center.
	assert.Equal(t, 0.0, h.EnclosedMassNFW(0))
	assert.Less(t, h.EnclosedMassNFW(1), h.EnclosedMassNFW(5))
}

func TestEnclosedMassCoreNFW(t *testing.T) {
	h := Halo{M200: 1e10, C200: 12, Z: 1}
	r := 0.5

	// The core removes mass at small radii relative to NFW.
	assert.Less(t, h.EnclosedMassCoreNFW(r, 0.3), h.EnclosedMassNFW(r))
	// Far outside the core the two profiles agree.
	assert.InEpsilon(t, h.EnclosedMassNFW(50), h.EnclosedMassCoreNFW(50, 0.3), 1e-6)
	// No stellar component means no core.
	assert.Equal(t, h.EnclosedMassNFW(r), h.EnclosedMassCoreNFW(r, 0))
}

func TestEnclosedMassSIDM(t *testing.T) {
	h := Halo{M200: 1e10, C200: 12, Z: 1}
	r := 1.0

	assert.Equal(t, h.EnclosedMassNFW(r), h.EnclosedMassSIDM(r, 0))
	// Larger cross-sections carve larger cores.
	assert.Less(t, h.EnclosedMassSIDM(r, 1), h.EnclosedMassNFW(r))
	assert.Less(t, h.EnclosedMassSIDM(r, 10), h.EnclosedMassSIDM(r, 1))
}

func TestDiemer19(t *testing.T) {
	d := NewDiemer19(false)
	assert.Equal(t, "Diemer19", d.Name())
	assert.Equal(t, 0.16, d.Scatter())

	c := d.CentralValue([]float64{1e8, 1e10, 1e12}, 0)
	require.Len(t, c, 3)
	// Concentration falls with mass.
	assert.Greater(t, c[0], c[1])
	assert.Greater(t, c[1], c[2])
	// Milky-Way-mass halos at z=0 have c200c near 9-10.
	assert.InDelta(t, 9.5, c[2], 1.5)

	// Concentration falls with redshift at fixed mass.
	c1 := d.CentralValue([]float64{1e10}, 1)
	assert.Less(t, c1[0], c[1])
}

func TestDutton14(t *testing.T) {
	d := NewDutton14(false)
	c := d.CentralValue([]float64{1e12 / 0.6766}, 0)
	require.Len(t, c, 1)
	// log10 c = 0.905 at the 1e12/h pivot at z=0.
	assert.InDelta(t, math.Pow(10, 0.905), c[0], 0.05)

	c2 := d.CentralValue([]float64{1e12 / 0.6766}, 2)
	assert.Less(t, c2[0], c[0])
}

func TestNewConcentration(t *testing.T) {
	r, err := NewConcentration("d19", true)
	require.NoError(t, err)
	assert.Equal(t, "Diemer19", r.Name())

	_, err = NewConcentration("x17", false)
	assert.ErrorIs(t, err, relation.ErrUnknownModel)
}
