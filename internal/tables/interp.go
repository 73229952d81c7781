package tables

import (
	"sort"

	"gonum.org/v1/gonum/interp"
)

// LogInterp linearly interpolates a two-column table in log-log space with
// linear extrapolation beyond the tabulated range, matching how the published
// fits are extended to untabulated masses.
type LogInterp struct {
	xs, ys []float64
	pl     interp.PiecewiseLinear
}

// NewLogInterp builds an interpolant over ln(x) -> ln(y) from a table of
// positive (x, y) samples.
func NewLogInterp(c *Columns, logX, logY func(float64) float64) (*LogInterp, error) {
	xs := make([]float64, len(c.X))
	ys := make([]float64, len(c.Y))
	for i := range c.X {
		xs[i] = logX(c.X[i])
		ys[i] = logY(c.Y[i])
	}
	li := &LogInterp{xs: xs, ys: ys}
	if err := li.pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return li, nil
}

// Eval returns the interpolated log-y at log-x, extrapolating linearly with
// the slope of the nearest table segment.
func (li *LogInterp) Eval(lx float64) float64 {
	n := len(li.xs)
	switch {
	case lx < li.xs[0]:
		slope := (li.ys[1] - li.ys[0]) / (li.xs[1] - li.xs[0])
		return li.ys[0] + slope*(lx-li.xs[0])
	case lx > li.xs[n-1]:
		slope := (li.ys[n-1] - li.ys[n-2]) / (li.xs[n-1] - li.xs[n-2])
		return li.ys[n-1] + slope*(lx-li.xs[n-1])
	default:
		return li.pl.Predict(lx)
	}
}

// BilinearGrid interpolates a Grid bilinearly, clamping coordinates to the
// tabulated range.
type BilinearGrid struct {
	g *Grid
}

// NewBilinearGrid wraps a grid for interpolation.
func NewBilinearGrid(g *Grid) *BilinearGrid {
	return &BilinearGrid{g: g}
}

// XRange returns the tabulated row-coordinate range.
func (b *BilinearGrid) XRange() (lo, hi float64) {
	return b.g.X[0], b.g.X[len(b.g.X)-1]
}

// ZRange returns the tabulated column-coordinate range.
func (b *BilinearGrid) ZRange() (lo, hi float64) {
	return b.g.Z[0], b.g.Z[len(b.g.Z)-1]
}

// Eval returns the bilinearly interpolated value at (x, z).
func (b *BilinearGrid) Eval(x, z float64) float64 {
	i, tx := bracket(b.g.X, x)
	j, tz := bracket(b.g.Z, z)
	v := b.g.Values
	v00 := v[i][j]
	v10 := v[i+1][j]
	v01 := v[i][j+1]
	v11 := v[i+1][j+1]
	return v00*(1-tx)*(1-tz) + v10*tx*(1-tz) + v01*(1-tx)*tz + v11*tx*tz
}

// bracket finds the segment index and fractional position of x within the
// ascending coordinate slice, clamping to the ends.
func bracket(coords []float64, x float64) (int, float64) {
	n := len(coords)
	if x <= coords[0] {
		return 0, 0
	}
	if x >= coords[n-1] {
		return n - 2, 1
	}
	i := sort.SearchFloat64s(coords, x)
	if coords[i] > x {
		i--
	}
	if i > n-2 {
		i = n - 2
	}
	t := (x - coords[i]) / (coords[i+1] - coords[i])
	return i, t
}
