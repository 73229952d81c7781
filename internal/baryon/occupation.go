package baryon

import (
	"math"

	"github.com/stacykim/disSat/internal/relation"
)

// Dooley17Occupation is the luminous fraction of halos as a function of halo
// mass, following the reionization-suppressed occupation model used by
// Dooley+ 2017: an erf step in log halo mass whose midpoint shifts with the
// redshift of reionization (earlier reionization starves larger halos).
type Dooley17Occupation struct {
	ZReion float64 // redshift of reionization
}

// NewDooley17Occupation creates the occupation model for the given
// reionization redshift.
func NewDooley17Occupation(zreion float64) *Dooley17Occupation {
	return &Dooley17Occupation{ZReion: zreion}
}

func (o *Dooley17Occupation) Name() string { return "Dooley17" }

// Scatter is zero: the relation samples occupancy directly rather than a
// lognormal dispersion about a median.
func (o *Dooley17Occupation) Scatter() float64 { return 0 }

// Occupation step parameters: midpoint at log10 M = 8.6 for z_reion = 9.3,
// shifting by 0.08 dex per unit reionization redshift, with 0.25 dex width.
const (
	occLogM50Ref = 8.6
	occZReionRef = 9.3
	occDLogM50dZ = 0.08
	occWidth     = 0.25
)

// logM50 is the halo mass at which half of halos host a galaxy.
func (o *Dooley17Occupation) logM50() float64 {
	return occLogM50Ref + occDLogM50dZ*(o.ZReion-occZReionRef)
}

// Fraction returns the luminous fraction for each halo mass, in [0, 1].
func (o *Dooley17Occupation) Fraction(mass []float64) []float64 {
	lm50 := o.logM50()
	out := make([]float64, len(mass))
	for i, m := range mass {
		out[i] = 0.5 * (1 + math.Erf((math.Log10(m)-lm50)/(occWidth*math.Sqrt2)))
	}
	return out
}

// MaskDarkGalaxies samples which halos host a galaxy, returning a 0/1
// multiplier per halo. Multiplying stellar masses by the mask zeroes the
// dark halos.
func (o *Dooley17Occupation) MaskDarkGalaxies(s *relation.Sampler, mass []float64) []float64 {
	keep := s.Keep(o.Fraction(mass))
	out := make([]float64, len(mass))
	for i, k := range keep {
		if k {
			out[i] = 1
		}
	}
	return out
}
