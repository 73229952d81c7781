package relation

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler is the single source of randomness for a population realization.
// It wraps a seeded generator so realizations are reproducible from the seed.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler from a seed.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a uniform draw in [0, 1).
func (s *Sampler) Uniform() float64 {
	return s.rng.Float64()
}

// Poisson returns a Poisson draw with the given mean.
func (s *Sampler) Poisson(mean float64) int {
	if mean <= 0 {
		return 0
	}
	p := distuv.Poisson{Lambda: mean, Src: s.rng}
	return int(p.Rand())
}

// Lognormal applies multiplicative lognormal scatter of the given dispersion
// [dex] to each median value, returning a new slice. A dispersion of zero
// returns the medians unchanged.
func (s *Sampler) Lognormal(median []float64, dex float64) []float64 {
	out := make([]float64, len(median))
	if dex <= 0 {
		copy(out, median)
		return out
	}
	norm := distuv.Normal{Mu: 0, Sigma: dex, Src: s.rng}
	for i, m := range median {
		out[i] = m * math.Pow(10, norm.Rand())
	}
	return out
}

// Sample evaluates a relation's scatter policy: if the relation has scatter
// enabled, medians get lognormal scatter of the relation's dispersion applied;
// otherwise the medians are returned as-is (copied).
func (s *Sampler) Sample(r Relation, median []float64) []float64 {
	if t, ok := r.(Toggleable); ok && t.ScatterEnabled() {
		return s.Lognormal(median, r.Scatter())
	}
	out := make([]float64, len(median))
	copy(out, median)
	return out
}

// Keep returns a boolean mask with mask[i] true with probability p[i].
// Used for probabilistic culling (WDM suppression, occupation sampling).
func (s *Sampler) Keep(p []float64) []bool {
	mask := make([]bool, len(p))
	for i, pi := range p {
		mask[i] = s.rng.Float64() <= pi
	}
	return mask
}
