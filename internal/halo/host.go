// Package halo models the host halo and its subhalo population: the subhalo
// mass function, spherically-averaged density profiles, and concentration
// relations.
package halo

import (
	"fmt"
	"math"

	"github.com/stacykim/disSat/internal/cosmo"
	"github.com/stacykim/disSat/internal/relation"
)

// Subhalo mass function parameters, dN/dm = (K0/Mhost) (m/Mhost)^-alpha
// (Dooley+ 2017a normalization).
const (
	subhaloSlope = 1.9
	subhaloNorm  = 1.88e-3
)

// Host is the halo a satellite population is generated around.
type Host struct {
	Name string
	Mass float64 // halo mass [Msun] in Def
	Def  cosmo.MassDef
}

// MilkyWay returns the default host, a 1.4e12 Msun M200c halo.
func MilkyWay() *Host {
	return &Host{Name: "MilkyWay", Mass: 1.4e12, Def: cosmo.Def200c}
}

// MeanSubhaloCount returns the expected number of subhalos with mass above
// minMass, from integrating the subhalo mass function up to the host mass.
func (h *Host) MeanSubhaloCount(minMass float64) (float64, error) {
	if minMass <= 0 || minMass >= h.Mass {
		return 0, fmt.Errorf("halo: min mass %g outside (0, %g)", minMass, h.Mass)
	}
	x := minMass / h.Mass
	return subhaloNorm / (subhaloSlope - 1) * (math.Pow(x, 1-subhaloSlope) - 1), nil
}

// SampleSubhaloMasses draws a realization of the subhalo population above
// minMass. The count is Poisson-distributed about the mass-function mean and
// masses are drawn by inverting the power-law CDF between minMass and the
// host mass.
func (h *Host) SampleSubhaloMasses(s *relation.Sampler, minMass float64) ([]float64, error) {
	mean, err := h.MeanSubhaloCount(minMass)
	if err != nil {
		return nil, err
	}
	n := s.Poisson(mean)

	a := math.Pow(minMass, 1-subhaloSlope)
	b := math.Pow(h.Mass, 1-subhaloSlope)
	masses := make([]float64, n)
	for i := range masses {
		u := s.Uniform()
		masses[i] = math.Pow(a+u*(b-a), 1/(1-subhaloSlope))
	}
	return masses, nil
}
