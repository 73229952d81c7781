package population

import (
	"fmt"
	"sort"

	"github.com/stacykim/disSat/internal/relation"
)

// Relations returns the active relations keyed by the pipeline slot they
// fill.
func (p *Population) Relations() map[string]relation.Relation {
	return map[string]relation.Relation{
		"concentration":       p.Concentration,
		"smhm":                p.SMHM,
		"occupation_fraction": p.Occupation,
		"rhalf_2d":            p.GalaxySize,
	}
}

// ScatterSources reports, per pipeline slot, whether the relation currently
// samples its scatter. Relations without a scatter toggle (the occupation
// fraction samples occupancy, not lognormal scatter) are omitted.
func (p *Population) ScatterSources() map[string]bool {
	sources := make(map[string]bool)
	for name, rel := range p.Relations() {
		if t, ok := rel.(relation.Toggleable); ok {
			sources[name] = t.ScatterEnabled()
		}
	}
	return sources
}

// SetScatter switches scatter sampling on or off per pipeline slot. Unknown
// slots and relations without a toggle are errors.
func (p *Population) SetScatter(sources map[string]bool) error {
	relations := p.Relations()
	for name, on := range sources {
		rel, ok := relations[name]
		if !ok {
			return fmt.Errorf("population: no relation slot %q", name)
		}
		t, ok := rel.(relation.Toggleable)
		if !ok {
			return fmt.Errorf("population: relation slot %q has no scatter to toggle", name)
		}
		t.SetSampleScatter(on)
	}
	return nil
}

// Parameters returns the scalar input parameters of the generator, for
// logging and for recording runs in the catalog.
func (p *Population) Parameters() map[string]any {
	params := map[string]any{
		"host":            p.Host.Name,
		"host_mass":       p.Host.Mass,
		"mass_def":        p.Host.Def.String(),
		"dark_matter":     p.DarkMatter.Name(),
		"z_infall":        p.ZInfall,
		"min_mass":        p.MinMass,
		"mleft":           p.MLeft,
		"density_profile": p.DensityProfile,
		"mswitch_profile": p.MSwitchProfile,
	}
	for name, rel := range p.Relations() {
		params[name] = rel.Name()
	}
	return params
}

// DescribeRelations renders one line per pipeline slot, in slot order, for
// CLI listing.
func (p *Population) DescribeRelations() []string {
	relations := p.Relations()
	names := make([]string, 0, len(relations))
	for name := range relations {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		rel := relations[name]
		line := fmt.Sprintf("%-20s %s", name, rel.Name())
		if t, ok := rel.(relation.Toggleable); ok {
			state := "off"
			if t.ScatterEnabled() {
				state = "on"
			}
			line += fmt.Sprintf(" (scatter %.3f dex, %s)", rel.Scatter(), state)
		}
		lines = append(lines, line)
	}
	return lines
}
