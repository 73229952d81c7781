package config

import (
	"fmt"

	"github.com/stacykim/disSat/internal/baryon"
	"github.com/stacykim/disSat/internal/cosmo"
	"github.com/stacykim/disSat/internal/darkmatter"
	"github.com/stacykim/disSat/internal/halo"
	"github.com/stacykim/disSat/internal/population"
)

// BuildPopulation assembles a Population from the configuration, resolving
// model codes through the relation registries.
func (c *Config) BuildPopulation(seed uint64) (*population.Population, error) {
	def, err := cosmo.MassDefFromString(c.Host.MassDef)
	if err != nil {
		return nil, err
	}

	dm, err := darkmatter.New(c.DarkMatter.Model, c.DarkMatter.MWDM, c.DarkMatter.SigmaSI)
	if err != nil {
		return nil, err
	}

	conc, err := halo.NewConcentration(c.Relations.Concentration, true)
	if err != nil {
		return nil, err
	}
	smhm, err := baryon.NewSMHM(c.Relations.SMHM, true)
	if err != nil {
		return nil, err
	}
	size, err := baryon.NewSize(c.Relations.GalaxySize, true)
	if err != nil {
		return nil, err
	}

	p := population.MilkyWaySatellites(seed,
		population.WithDarkMatter(dm),
		population.WithConcentration(conc),
		population.WithSMHM(smhm),
		population.WithMinMass(c.Population.MinMass),
		population.WithMLeft(c.Population.MLeft),
	)
	p.Host = &halo.Host{Name: c.Host.Name, Mass: c.Host.Mass, Def: def}
	p.GalaxySize = size
	p.Occupation = baryon.NewDooley17Occupation(c.Relations.ZReion)
	p.ZInfall = c.Population.ZInfall
	p.MSwitchProfile = c.Population.MSwitchProfile

	// Profile from config unless the SIDM override already applied.
	if _, ok := dm.(*darkmatter.SIDM); !ok || c.Population.DensityProfile != "mix" {
		p.DensityProfile = c.Population.DensityProfile
	}

	if len(c.Relations.Scatter) > 0 {
		if err := p.SetScatter(c.Relations.Scatter); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return p, nil
}
