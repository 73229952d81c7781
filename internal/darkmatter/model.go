// Package darkmatter defines the dark matter models the population generator
// can branch on: collisionless CDM, warm dark matter with its subhalo
// suppression and concentration modification, and self-interacting dark
// matter carrying a scattering cross-section.
package darkmatter

import (
	"fmt"
	"math"

	"github.com/stacykim/disSat/internal/halo"
	"github.com/stacykim/disSat/internal/relation"
)

// Model is a dark matter scenario. The population pipeline type-switches on
// the concrete model to apply WDM suppression or SIDM profile coring.
type Model interface {
	Name() string
}

// New returns the model registered under the given code: "cdm", "wdm"
// (requires mWDM in keV), or "sidm" (requires sigmaSI in cm^2/g).
func New(code string, mWDM, sigmaSI float64) (Model, error) {
	switch code {
	case "cdm":
		return CDM{}, nil
	case "wdm":
		if mWDM <= 0 {
			return nil, fmt.Errorf("darkmatter: WDM requires a positive particle mass, got %g keV", mWDM)
		}
		return &WDM{MWDM: mWDM}, nil
	case "sidm":
		if sigmaSI <= 0 {
			return nil, fmt.Errorf("darkmatter: SIDM requires a positive cross-section, got %g cm^2/g", sigmaSI)
		}
		return &SIDM{SigmaSI: sigmaSI}, nil
	}
	return nil, relation.UnknownModelError("dark matter", code)
}

// CDM is standard collisionless cold dark matter.
type CDM struct{}

func (CDM) Name() string { return "CDM" }

// WDM is a thermal-relic warm dark matter model.
type WDM struct {
	MWDM float64 // particle mass [keV]
}

func (w *WDM) Name() string { return fmt.Sprintf("WDM(%g keV)", w.MWDM) }

// HalfModeMass returns the mass scale [Msun] at which the WDM transfer
// function drops to half the CDM value, for a thermal relic of the model's
// particle mass (Lovell+ 2014 scaling).
func (w *WDM) HalfModeMass() float64 {
	return 3.05e8 * math.Pow(w.MWDM/3.3, -3.33)
}

// TransferFunction returns the relative abundance of subhalos of each mass
// compared to CDM, n_WDM/n_CDM = (1 + gamma Mhm/m)^-beta with the Lovell+
// 2014 fit (gamma=2.7, beta=0.99). Values are in [0, 1] and are used as
// per-subhalo survival probabilities.
func (w *WDM) TransferFunction(mass []float64) []float64 {
	const (
		gamma = 2.7
		beta  = 0.99
	)
	mhm := w.HalfModeMass()
	out := make([]float64, len(mass))
	for i, m := range mass {
		out[i] = math.Pow(1+gamma*mhm/m, -beta)
	}
	return out
}

// ModifyConcentration suppresses CDM concentrations near and below the
// half-mode mass, c_WDM/c_CDM = (1 + 60 Mhm/m)^-0.17 (Schneider+ 2012,
// Bose+ 2016). Returns a new slice.
func (w *WDM) ModifyConcentration(mass, c []float64) []float64 {
	mhm := w.HalfModeMass()
	out := make([]float64, len(c))
	for i := range c {
		out[i] = c[i] * math.Pow(1+60*mhm/mass[i], -0.17)
	}
	return out
}

// SIDM is self-interacting dark matter with a velocity-independent
// cross-section per unit mass.
type SIDM struct {
	SigmaSI float64 // [cm^2/g]
}

func (s *SIDM) Name() string { return fmt.Sprintf("SIDM(%g cm^2/g)", s.SigmaSI) }

// Profile returns the density profile implied by the model when the
// population is not explicitly configured with one: SIDM halos are cored by
// self-interactions regardless of their baryon content.
func (s *SIDM) Profile() halo.Profile { return halo.ProfileSIDM }
