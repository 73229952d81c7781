package relation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRelation struct {
	Scatterer
	dex float64
}

func (fakeRelation) Name() string       { return "Fake" }
func (f fakeRelation) Scatter() float64 { return f.dex }

func TestSampleScatterOffReturnsMedian(t *testing.T) {
	s := NewSampler(1)
	rel := &fakeRelation{dex: 0.3}

	median := []float64{1e6, 2e7, 3e8}
	got := s.Sample(rel, median)
	assert.Equal(t, median, got)
}

func TestSampleScatterOnPerturbsMedian(t *testing.T) {
	s := NewSampler(1)
	rel := &fakeRelation{dex: 0.3}
	rel.SetSampleScatter(true)

	median := make([]float64, 1000)
	for i := range median {
		median[i] = 1e8
	}
	got := s.Sample(rel, median)

	// Log-residuals should have roughly the requested dispersion and be
	// centered on the median.
	var sum, sum2 float64
	for _, g := range got {
		d := math.Log10(g / 1e8)
		sum += d
		sum2 += d * d
	}
	n := float64(len(got))
	mean := sum / n
	std := math.Sqrt(sum2/n - mean*mean)

	assert.InDelta(t, 0.0, mean, 0.05)
	assert.InDelta(t, 0.3, std, 0.05)
}

func TestLognormalZeroDex(t *testing.T) {
	s := NewSampler(7)
	median := []float64{1, 2, 3}
	assert.Equal(t, median, s.Lognormal(median, 0))
}

func TestSamplerReproducible(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uniform(), b.Uniform())
	}
}

func TestPoisson(t *testing.T) {
	s := NewSampler(3)
	assert.Equal(t, 0, s.Poisson(0))
	assert.Equal(t, 0, s.Poisson(-1))

	var total int
	n := 500
	for i := 0; i < n; i++ {
		total += s.Poisson(20)
	}
	assert.InDelta(t, 20, float64(total)/float64(n), 1.0)
}

func TestKeep(t *testing.T) {
	s := NewSampler(11)
	p := make([]float64, 2000)
	for i := range p {
		p[i] = 0.25
	}
	kept := 0
	for _, k := range s.Keep(p) {
		if k {
			kept++
		}
	}
	assert.InDelta(t, 500, kept, 60)

	// Certain probabilities are deterministic.
	mask := s.Keep([]float64{1.0, 0.0})
	assert.True(t, mask[0])
	assert.False(t, mask[1])
}

func TestUnknownModelError(t *testing.T) {
	err := UnknownModelError("SMHM", "x99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownModel))
	assert.Contains(t, err.Error(), "x99")
}
