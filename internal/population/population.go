// Package population composes the individual scaling relations into the
// satellite population generator: a fixed sampling pipeline of subhalo mass,
// concentration, stellar mass, galaxy size, density profile, and velocity
// dispersion, with the dark matter model branching applied along the way.
package population

import (
	"fmt"
	"log/slog"

	"github.com/stacykim/disSat/internal/baryon"
	"github.com/stacykim/disSat/internal/darkmatter"
	"github.com/stacykim/disSat/internal/halo"
	"github.com/stacykim/disSat/internal/kinematics"
	"github.com/stacykim/disSat/internal/relation"
)

// ProfileMix is the DensityProfile value that assigns profiles per subhalo:
// coreNFW above the profile switch mass, NFW below it.
const ProfileMix = "mix"

// Properties holds the per-satellite arrays of one realization. They are
// written once by Generate in dependency order and never mutated afterwards.
type Properties struct {
	Mass     []float64      // subhalo mass at infall [Msun]
	C200     []float64      // concentration at infall
	MStar    []float64      // stellar mass [Msun], zero for dark halos
	RHalf2D  []float64      // projected half-light radius [kpc]
	Profiles []halo.Profile // assigned density profile
	SigmaLOS []float64      // line-of-sight velocity dispersion [km/s]
}

// Count returns the number of satellites in the realization.
func (p Properties) Count() int { return len(p.Mass) }

// Luminous returns the number of satellites hosting a galaxy.
func (p Properties) Luminous() int {
	n := 0
	for _, ms := range p.MStar {
		if ms > 0 {
			n++
		}
	}
	return n
}

// Population generates satellite realizations around a host under a chosen
// set of relations. The relation fields are independently swappable; the
// pipeline order is fixed.
type Population struct {
	Host       *halo.Host
	DarkMatter darkmatter.Model

	Concentration halo.ConcentrationRelation
	SMHM          baryon.SMHM
	Occupation    *baryon.Dooley17Occupation
	GalaxySize    baryon.SizeRelation

	ZInfall        float64 // redshift at infall
	MinMass        float64 // subhalo mass floor [Msun]
	MLeft          float64 // bound mass fraction after stripping
	DensityProfile string  // "nfw", "corenfw", "sidm", or ProfileMix
	MSwitchProfile float64 // mix-mode mass above which halos are cored [Msun]

	sampler *relation.Sampler

	// Properties of the latest realization.
	Properties Properties
}

// Option adjusts a Population built by MilkyWaySatellites.
type Option func(*Population)

// WithMinMass sets the subhalo mass floor.
func WithMinMass(m float64) Option { return func(p *Population) { p.MinMass = m } }

// WithDensityProfile sets the density profile mode.
func WithDensityProfile(s string) Option { return func(p *Population) { p.DensityProfile = s } }

// WithMLeft sets the bound mass fraction after tidal stripping.
func WithMLeft(f float64) Option { return func(p *Population) { p.MLeft = f } }

// WithDarkMatter sets the dark matter model.
func WithDarkMatter(m darkmatter.Model) Option { return func(p *Population) { p.DarkMatter = m } }

// WithConcentration swaps the concentration relation.
func WithConcentration(c halo.ConcentrationRelation) Option {
	return func(p *Population) { p.Concentration = c }
}

// WithSMHM swaps the stellar-mass--halo-mass relation.
func WithSMHM(s baryon.SMHM) Option { return func(p *Population) { p.SMHM = s } }

// MilkyWaySatellites builds the default Milky Way satellite generator:
// subhalos above 1e7 Msun accreted at z=1, mixed density profiles switching
// from NFW to coreNFW at 5e8 Msun, no tidal stripping, Diemer19
// concentrations, Moster13 stellar masses, Dooley17 occupation for
// reionization at z=9.3, and Read17 sizes, all with scatter enabled.
func MilkyWaySatellites(seed uint64, opts ...Option) *Population {
	p := &Population{
		Host:           halo.MilkyWay(),
		DarkMatter:     darkmatter.CDM{},
		Concentration:  halo.NewDiemer19(true),
		SMHM:           baryon.NewMoster13(true),
		Occupation:     baryon.NewDooley17Occupation(9.3),
		GalaxySize:     baryon.NewRead17(true),
		ZInfall:        1.0,
		MinMass:        1e7,
		MLeft:          1.0,
		DensityProfile: ProfileMix,
		MSwitchProfile: 5e8,
		sampler:        relation.NewSampler(seed),
	}
	for _, opt := range opts {
		opt(p)
	}
	if sidm, ok := p.DarkMatter.(*darkmatter.SIDM); ok && p.DensityProfile == ProfileMix {
		// Self-interactions core every halo, with or without stars.
		p.DensityProfile = sidm.Profile().String()
	}
	return p
}

// Generate draws one realization, populating Properties in the fixed
// dependency order: masses, concentrations, stellar masses, sizes, profile
// tags, dispersions.
func (p *Population) Generate() error {
	mass, err := p.sampleSubhaloMasses()
	if err != nil {
		return fmt.Errorf("population: subhalo masses: %w", err)
	}

	props := Properties{Mass: mass}
	props.C200 = p.sampleConcentrations(mass)
	props.MStar = p.sampleStellarMasses(mass)
	props.RHalf2D = p.sampleGalaxySizes(props.MStar)

	props.Profiles, err = p.assignProfiles(mass)
	if err != nil {
		return fmt.Errorf("population: profiles: %w", err)
	}

	props.SigmaLOS, err = p.sampleVelocityDispersions(props)
	if err != nil {
		return fmt.Errorf("population: velocity dispersions: %w", err)
	}

	p.Properties = props
	return nil
}

// sampleSubhaloMasses draws the subhalo mass spectrum, applying the WDM
// transfer function as a per-subhalo survival probability when the dark
// matter model is warm.
func (p *Population) sampleSubhaloMasses() ([]float64, error) {
	mass, err := p.Host.SampleSubhaloMasses(p.sampler, p.MinMass)
	if err != nil {
		return nil, err
	}
	wdm, ok := p.DarkMatter.(*darkmatter.WDM)
	if !ok {
		return mass, nil
	}

	keep := p.sampler.Keep(wdm.TransferFunction(mass))
	kept := mass[:0]
	for i, k := range keep {
		if k {
			kept = append(kept, mass[i])
		}
	}
	slog.Debug("WDM suppression applied", "before", len(keep), "after", len(kept))
	return kept, nil
}

// sampleConcentrations draws concentrations from the configured relation and
// applies the WDM modification when present.
func (p *Population) sampleConcentrations(mass []float64) []float64 {
	c := p.sampler.Sample(p.Concentration, p.Concentration.CentralValue(mass, p.ZInfall))
	if wdm, ok := p.DarkMatter.(*darkmatter.WDM); ok {
		c = wdm.ModifyConcentration(mass, c)
	}
	return c
}

// sampleStellarMasses draws stellar masses from the SMHM relation and zeroes
// the halos the occupation model leaves dark.
func (p *Population) sampleStellarMasses(mass []float64) []float64 {
	mstar := p.sampler.Sample(p.SMHM, p.SMHM.CentralValue(mass, p.ZInfall))
	mask := p.Occupation.MaskDarkGalaxies(p.sampler, mass)
	for i := range mstar {
		mstar[i] *= mask[i]
	}
	return mstar
}

// sampleGalaxySizes draws half-light radii for the luminous satellites; dark
// halos keep zero size.
func (p *Population) sampleGalaxySizes(mstar []float64) []float64 {
	rhalf := p.sampler.Sample(p.GalaxySize, p.GalaxySize.CentralValue(mstar))
	for i, ms := range mstar {
		if ms <= 0 {
			rhalf[i] = 0
		}
	}
	return rhalf
}

// assignProfiles tags each satellite with its density profile. In mix mode,
// halos above the switch mass are cored by star formation and the rest stay
// cusped.
func (p *Population) assignProfiles(mass []float64) ([]halo.Profile, error) {
	profiles := make([]halo.Profile, len(mass))
	if p.DensityProfile != ProfileMix {
		prof, err := halo.ProfileFromString(p.DensityProfile)
		if err != nil {
			return nil, err
		}
		for i := range profiles {
			profiles[i] = prof
		}
		return profiles, nil
	}
	for i, m := range mass {
		if m < p.MSwitchProfile {
			profiles[i] = halo.ProfileNFW
		} else {
			profiles[i] = halo.ProfileCoreNFW
		}
	}
	return profiles, nil
}

// sampleVelocityDispersions runs the dispersion predictor over the assembled
// properties.
func (p *Population) sampleVelocityDispersions(props Properties) ([]float64, error) {
	params := kinematics.Params{
		Mass:     props.Mass,
		C200:     props.C200,
		MStar:    props.MStar,
		RHalf2D:  props.RHalf2D,
		Profiles: props.Profiles,
		ZInfall:  p.ZInfall,
		MLeft:    p.MLeft,
	}
	if sidm, ok := p.DarkMatter.(*darkmatter.SIDM); ok {
		params.SigmaSI = sidm.SigmaSI
	}
	return kinematics.SigmaLOS(params)
}
