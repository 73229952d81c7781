package catalog

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacykim/disSat/internal/halo"
	"github.com/stacykim/disSat/internal/population"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func generated(t *testing.T, seed uint64) *population.Population {
	t.Helper()
	p := population.MilkyWaySatellites(seed)
	require.NoError(t, p.Generate())
	return p
}

func TestSaveAndLoadRun(t *testing.T) {
	db := openTestDB(t)
	p := generated(t, 42)

	id, err := db.SaveRun(p, 42)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := db.LoadRun(id)
	require.NoError(t, err)
	assert.Equal(t, p.Properties, got)
}

func TestLoadRunMissing(t *testing.T) {
	db := openTestDB(t)
	_, err := db.LoadRun("nope")
	assert.Error(t, err)
}

func TestListRuns(t *testing.T) {
	db := openTestDB(t)

	for seed := uint64(1); seed <= 3; seed++ {
		_, err := db.SaveRun(generated(t, seed), seed)
		require.NoError(t, err)
	}

	runs, err := db.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	for _, r := range runs {
		assert.Greater(t, r.Satellites, 0)
		assert.GreaterOrEqual(t, r.Satellites, r.Luminous)

		var params map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.Parameters), &params))
		assert.Equal(t, "MilkyWay", params["host"])
	}

	runs, err = db.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestWriteCSV(t *testing.T) {
	props := population.Properties{
		Mass:     []float64{1e8, 1e9},
		C200:     []float64{15, 12},
		MStar:    []float64{0, 1e5},
		RHalf2D:  []float64{0, 0.3},
		Profiles: []halo.Profile{halo.ProfileNFW, halo.ProfileCoreNFW},
		SigmaLOS: []float64{0, 8.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, props))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "mass,c200,mstar,rhalf2d,profile,sigma_los", lines[0])
	assert.Contains(t, lines[1], "nfw")
	assert.Contains(t, lines[2], "corenfw")
	assert.Contains(t, lines[2], "8.500")
}
