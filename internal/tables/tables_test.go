package tables

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadColumns(t *testing.T) {
	in := `# comment
1.0  10.0

2.0  20.0
4.0  40.0
`
	c, err := LoadColumns(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4}, c.X)
	assert.Equal(t, []float64{10, 20, 40}, c.Y)
}

func TestLoadColumnsErrors(t *testing.T) {
	cases := map[string]string{
		"wrong column count": "1 2 3\n4 5 6\n",
		"non-numeric":        "1 a\n2 3\n",
		"too few rows":       "1 2\n",
		"non-monotonic":      "2 1\n1 2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadColumns(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestLoadGrid(t *testing.T) {
	in := `# header row is the z grid
0.0 1.0
7.0  10.0 5.0
8.0  20.0 9.0
`
	g, err := LoadGrid(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, g.Z)
	assert.Equal(t, []float64{7, 8}, g.X)
	assert.Equal(t, [][]float64{{10, 5}, {20, 9}}, g.Values)
}

func TestEmbeddedTablesParse(t *testing.T) {
	for _, path := range []string{
		"data/smhm/behroozi.dat",
		"data/smhm/brook.dat",
		"data/smhm/dooley.dat",
	} {
		t.Run(path, func(t *testing.T) {
			c := MustColumns(path)
			assert.GreaterOrEqual(t, len(c.X), 10)
			// Stellar mass grows with halo mass everywhere in the tables.
			for i := 1; i < len(c.Y); i++ {
				assert.Greater(t, c.Y[i], c.Y[i-1])
			}
		})
	}

	g := MustGrid("data/concentration/diemer19.dat")
	assert.GreaterOrEqual(t, len(g.X), 5)
	assert.GreaterOrEqual(t, len(g.Z), 3)
}

func TestLogInterp(t *testing.T) {
	c := &Columns{X: []float64{1e8, 1e9, 1e10}, Y: []float64{1e4, 1e6, 1e8}}
	li, err := NewLogInterp(c, math.Log, math.Log)
	require.NoError(t, err)

	// Exact at the nodes.
	assert.InDelta(t, math.Log(1e6), li.Eval(math.Log(1e9)), 1e-12)
	// Pure power law, so interior and extrapolated points follow slope 2.
	assert.InDelta(t, math.Log(1e5), li.Eval(math.Log(10*1e8/math.Sqrt(10))), 1e-9)
	assert.InDelta(t, math.Log(1e10), li.Eval(math.Log(1e11)), 1e-9)
	assert.InDelta(t, math.Log(1e2), li.Eval(math.Log(1e7)), 1e-9)
}

func TestBilinearGrid(t *testing.T) {
	g := &Grid{
		X:      []float64{0, 1},
		Z:      []float64{0, 2},
		Values: [][]float64{{0, 4}, {2, 6}},
	}
	b := NewBilinearGrid(g)

	assert.InDelta(t, 0.0, b.Eval(0, 0), 1e-12)
	assert.InDelta(t, 6.0, b.Eval(1, 2), 1e-12)
	assert.InDelta(t, 3.0, b.Eval(0.5, 1), 1e-12)
	// Clamped outside the grid.
	assert.InDelta(t, 0.0, b.Eval(-1, -1), 1e-12)
	assert.InDelta(t, 6.0, b.Eval(5, 5), 1e-12)
}
