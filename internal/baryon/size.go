package baryon

import (
	"math"

	"github.com/stacykim/disSat/internal/relation"
)

// SizeRelation maps stellar mass to the median projected half-light radius.
type SizeRelation interface {
	relation.Relation

	// CentralValue returns the median projected half-light radius [kpc]
	// for each stellar mass [Msun].
	CentralValue(mstar []float64) []float64
}

// NewSize returns the size relation registered under the given model code
// ("r17" Read17).
func NewSize(code string, scatter bool) (SizeRelation, error) {
	switch code {
	case "r17":
		return NewRead17(scatter), nil
	}
	return nil, relation.UnknownModelError("galaxy size", code)
}

// Read17 is the size-mass relation fit to the isolated dwarfs of Read+ 2017
// and McConnachie+ 2012 (repeats removed, Leo T excluded).
type Read17 struct {
	relation.Scatterer
}

// NewRead17 creates the relation with the given scatter toggle.
func NewRead17(scatter bool) *Read17 {
	r := &Read17{}
	r.SampleScatter = scatter
	return r
}

func (r *Read17) Name() string { return "Read17" }

// Scatter is the 0.234 dex dispersion of the fit.
func (r *Read17) Scatter() float64 { return 0.234 }

// CentralValue evaluates R_e = 10^(0.268 log10 M* - 2.11) kpc.
func (r *Read17) CentralValue(mstar []float64) []float64 {
	out := make([]float64, len(mstar))
	for i, ms := range mstar {
		if ms <= 0 {
			continue // dark halo, no size
		}
		out[i] = math.Pow(10, 0.268*math.Log10(ms)-2.11)
	}
	return out
}
