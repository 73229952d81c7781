package halo

import (
	"fmt"
	"math"
	"strings"

	"github.com/stacykim/disSat/internal/cosmo"
)

// Profile identifies the assumed dark matter density profile of a subhalo.
type Profile int

const (
	ProfileNFW Profile = iota
	ProfileCoreNFW
	ProfileSIDM
)

// ProfileFromString parses a density profile tag ("nfw", "corenfw", "sidm").
func ProfileFromString(s string) (Profile, error) {
	switch strings.ToLower(s) {
	case "nfw":
		return ProfileNFW, nil
	case "corenfw":
		return ProfileCoreNFW, nil
	case "sidm":
		return ProfileSIDM, nil
	}
	return -1, fmt.Errorf("halo: unknown density profile %q", s)
}

func (p Profile) String() string {
	switch p {
	case ProfileNFW:
		return "nfw"
	case ProfileCoreNFW:
		return "corenfw"
	case ProfileSIDM:
		return "sidm"
	}
	return "unknown"
}

// Halo is a single subhalo with a definite mass, concentration, and profile,
// evaluated at a fixed redshift. It provides the enclosed-mass profiles the
// velocity dispersion predictor integrates over.
type Halo struct {
	M200 float64 // mass [Msun], 200c
	C200 float64 // concentration r200/rs
	Z    float64 // redshift of evaluation (infall)
}

// R200 returns the halo radius [kpc].
func (h Halo) R200() float64 {
	return cosmo.Def200c.Radius(h.M200, h.Z)
}

// Rs returns the NFW scale radius [kpc].
func (h Halo) Rs() float64 {
	return h.R200() / h.C200
}

// nfwG is the NFW mass-profile shape function g(x) = ln(1+x) - x/(1+x).
func nfwG(x float64) float64 {
	return math.Log(1+x) - x/(1+x)
}

// EnclosedMassNFW returns the NFW mass enclosed within radius r [kpc].
func (h Halo) EnclosedMassNFW(r float64) float64 {
	if r <= 0 {
		return 0
	}
	return h.M200 * nfwG(r/h.Rs()) / nfwG(h.C200)
}

// EnclosedMassCoreNFW returns the coreNFW (Read+ 2016) mass enclosed within
// radius r [kpc], with the core generated by star formation inside the
// half-light radius: M(r) = M_NFW(r) * tanh(r/rc)^n. The core radius is tied
// to the projected stellar half-light radius, rc = 1.75 Re, and dwarfs are
// assumed fully cored (n = 1).
func (h Halo) EnclosedMassCoreNFW(r, rhalf2D float64) float64 {
	if r <= 0 {
		return 0
	}
	rc := 1.75 * rhalf2D
	if rc <= 0 {
		return h.EnclosedMassNFW(r)
	}
	return h.EnclosedMassNFW(r) * math.Tanh(r/rc)
}

// EnclosedMassSIDM returns the enclosed mass for a self-interacting dark
// matter halo, approximated as an NFW profile with a thermalized core whose
// size grows with the interaction cross-section: rc = rs (sigmaSI)^0.35 with
// sigmaSI in cm^2/g.
func (h Halo) EnclosedMassSIDM(r, sigmaSI float64) float64 {
	if r <= 0 {
		return 0
	}
	if sigmaSI <= 0 {
		return h.EnclosedMassNFW(r)
	}
	rc := h.Rs() * math.Pow(sigmaSI, 0.35)
	return h.EnclosedMassNFW(r) * math.Tanh(r/rc)
}
