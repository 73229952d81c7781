// Package relation defines the shared machinery behind the empirical scaling
// relations in the model: a common interface, lognormal scatter sampling, and
// the errors returned for unrecognized model names.
//
// Every relation predicts a deterministic central (median) value from its
// inputs and carries a fixed lognormal dispersion in dex. Sampling draws
// median * 10^N(0, dex) per element; with scatter disabled the sample is the
// median exactly.
package relation

import (
	"errors"
	"fmt"
)

// ErrUnknownModel is returned when a model-name string does not match any
// registered relation.
var ErrUnknownModel = errors.New("relation: unknown model")

// UnknownModelError wraps ErrUnknownModel with the relation family and the
// offending name.
func UnknownModelError(family, name string) error {
	return fmt.Errorf("%w: no %s relation %q", ErrUnknownModel, family, name)
}

// Relation is an empirical scaling relation with lognormal scatter.
// Concrete relation families (SMHM, galaxy size, concentration) add their own
// evaluation methods on top; those central values are deterministic given the
// inputs.
type Relation interface {
	// Name is the published-relation identifier, e.g. "Moster13".
	Name() string

	// Scatter is the lognormal dispersion about the median, in dex.
	Scatter() float64
}

// Scatterer is embedded by concrete relations to carry the per-relation
// scatter toggle.
type Scatterer struct {
	SampleScatter bool
}

// ScatterEnabled reports whether sampling should draw from the scatter.
func (s Scatterer) ScatterEnabled() bool { return s.SampleScatter }

// SetSampleScatter turns scatter sampling on or off.
func (s *Scatterer) SetSampleScatter(on bool) { s.SampleScatter = on }

// Toggleable is implemented by relations whose scatter can be switched
// on and off. All relations embedding Scatterer satisfy it.
type Toggleable interface {
	ScatterEnabled() bool
	SetSampleScatter(on bool)
}
