// Package cosmo provides the background cosmology used by the satellite
// population model: Planck 2018 parameters, Hubble evolution, and the
// reference densities that enter spherical-overdensity mass definitions.
package cosmo

import "math"

// Planck 2018 (TT,TE,EE+lowE+lensing) parameters.
const (
	H0     = 67.66  // Hubble constant [km/s/Mpc]
	OmegaM = 0.3111 // matter density parameter at z=0
	OmegaL = 0.6889 // dark energy density parameter at z=0
	H100   = H0 / 100.0
)

// G is Newton's constant in astrophysical units [kpc (km/s)^2 / Msun].
const G = 4.30091e-6

// KpcPerMpc converts megaparsecs to kiloparsecs.
const KpcPerMpc = 1000.0

// HubbleFrac returns E(z) = H(z)/H0 for a flat LCDM universe,
// E(z)^2 = OmegaM (1+z)^3 + OmegaL. Radiation and curvature are ignored.
func HubbleFrac(z float64) float64 {
	return math.Sqrt(OmegaM*math.Pow(1.0+z, 3.0) + OmegaL)
}

// RhoCritical returns the critical density at redshift z in Msun/kpc^3.
func RhoCritical(z float64) float64 {
	hz := H0 * HubbleFrac(z) / KpcPerMpc // km/s/kpc
	return 3.0 * hz * hz / (8.0 * math.Pi * G)
}

// RhoMatter returns the mean matter density at redshift z in Msun/kpc^3.
func RhoMatter(z float64) float64 {
	return RhoCritical(0) * OmegaM * math.Pow(1.0+z, 3.0)
}

// OmegaMz returns the matter density parameter at redshift z.
func OmegaMz(z float64) float64 {
	e := HubbleFrac(z)
	return OmegaM * math.Pow(1.0+z, 3.0) / (e * e)
}

// DeltaVir returns the virial overdensity relative to the critical density
// at redshift z (Bryan & Norman 1998 fit for flat cosmologies).
func DeltaVir(z float64) float64 {
	x := OmegaMz(z) - 1.0
	return 18.0*math.Pi*math.Pi + 82.0*x - 39.0*x*x
}
