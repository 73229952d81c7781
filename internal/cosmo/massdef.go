package cosmo

import (
	"fmt"
	"math"
	"strings"
)

// MassDef identifies a spherical-overdensity halo mass definition.
type MassDef int

const (
	Def200c MassDef = iota // 200x critical density
	Def200m                // 200x mean matter density
	DefVir                 // Bryan & Norman 1998 virial overdensity
)

// MassDefFromString parses a mass definition tag ("200c", "200m", "vir").
func MassDefFromString(s string) (MassDef, error) {
	switch strings.ToLower(s) {
	case "200c":
		return Def200c, nil
	case "200m":
		return Def200m, nil
	case "vir":
		return DefVir, nil
	}
	return -1, fmt.Errorf("cosmo: unknown mass definition %q", s)
}

func (d MassDef) String() string {
	switch d {
	case Def200c:
		return "200c"
	case Def200m:
		return "200m"
	case DefVir:
		return "vir"
	}
	return "unknown"
}

// referenceDensity returns Delta * rho_ref at redshift z in Msun/kpc^3.
func (d MassDef) referenceDensity(z float64) float64 {
	switch d {
	case Def200c:
		return 200.0 * RhoCritical(z)
	case Def200m:
		return 200.0 * RhoMatter(z)
	case DefVir:
		return DeltaVir(z) * RhoCritical(z)
	}
	panic("cosmo: invalid mass definition")
}

// Radius converts a halo mass [Msun] to its overdensity radius [kpc].
func (d MassDef) Radius(m, z float64) float64 {
	factor := d.referenceDensity(z) * 4.0 * math.Pi / 3.0
	return math.Cbrt(m / factor)
}

// Mass converts an overdensity radius [kpc] to the enclosed halo mass [Msun].
func (d MassDef) Mass(r, z float64) float64 {
	factor := d.referenceDensity(z) * 4.0 * math.Pi / 3.0
	return factor * r * r * r
}
