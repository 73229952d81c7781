// Package kinematics predicts line-of-sight stellar velocity dispersions for
// satellite galaxies from their halo properties, using the Wolf+ 2010 mass
// estimator evaluated at the deprojected half-light radius.
package kinematics

import (
	"fmt"
	"math"

	"github.com/stacykim/disSat/internal/cosmo"
	"github.com/stacykim/disSat/internal/halo"
)

// Params holds the per-satellite inputs to the dispersion predictor. All
// slices must have the same length.
type Params struct {
	Mass     []float64      // halo mass at infall [Msun], 200c
	C200     []float64      // concentration at infall
	MStar    []float64      // stellar mass [Msun], zero for dark halos
	RHalf2D  []float64      // projected half-light radius [kpc]
	Profiles []halo.Profile // density profile per satellite

	ZInfall float64 // redshift at which the halo properties are defined
	MLeft   float64 // bound mass fraction after tidal stripping, (0, 1]
	SigmaSI float64 // SIDM cross-section [cm^2/g], zero otherwise
}

// Peñarrubia+ 2008 tidal-track exponents for the velocity scale.
const (
	tidalMu  = 0.4
	tidalEta = 0.3
)

func (p Params) validate() error {
	n := len(p.Mass)
	if len(p.C200) != n || len(p.MStar) != n || len(p.RHalf2D) != n || len(p.Profiles) != n {
		return fmt.Errorf("kinematics: mismatched input lengths (%d, %d, %d, %d, %d)",
			n, len(p.C200), len(p.MStar), len(p.RHalf2D), len(p.Profiles))
	}
	if p.MLeft <= 0 || p.MLeft > 1 {
		return fmt.Errorf("kinematics: bound mass fraction %g outside (0, 1]", p.MLeft)
	}
	return nil
}

// SigmaLOS returns the line-of-sight velocity dispersion [km/s] for each
// satellite. Dark halos (zero stellar mass) get zero dispersion: there are no
// stars to measure.
//
// The estimator is sigma_LOS = sqrt(G M(<r3) / (3 r3)) with r3 = 4/3 Re the
// deprojected half-light radius (Wolf+ 2010), the enclosed mass from the
// satellite's density profile, and the Peñarrubia+ 2008 tidal track applied
// when a bound mass fraction below unity is requested.
func SigmaLOS(p Params) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	tidal := 1.0
	if p.MLeft < 1 {
		tidal = math.Pow(2, tidalMu) * math.Pow(p.MLeft, tidalEta) /
			math.Pow(1+p.MLeft, tidalMu)
	}

	out := make([]float64, len(p.Mass))
	for i := range p.Mass {
		if p.MStar[i] <= 0 {
			continue
		}
		h := halo.Halo{M200: p.Mass[i], C200: p.C200[i], Z: p.ZInfall}
		r3 := 4.0 / 3.0 * p.RHalf2D[i]

		var menc float64
		switch p.Profiles[i] {
		case halo.ProfileNFW:
			menc = h.EnclosedMassNFW(r3)
		case halo.ProfileCoreNFW:
			menc = h.EnclosedMassCoreNFW(r3, p.RHalf2D[i])
		case halo.ProfileSIDM:
			menc = h.EnclosedMassSIDM(r3, p.SigmaSI)
		default:
			return nil, fmt.Errorf("kinematics: unsupported profile %v", p.Profiles[i])
		}
		// Stars contribute to the dynamical mass inside r3 too.
		menc += p.MStar[i] / 2

		out[i] = tidal * math.Sqrt(cosmo.G*menc/(3*r3))
	}
	return out, nil
}
