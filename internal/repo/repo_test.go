package repo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const countiesCSV = `state,county,climate_zone
CA,San Francisco,3C
CA,Alpine,7
CA,Alpine,6B
MN,St. Louis,7
`

func TestCSVCountyRepository_ZoneByCounty(t *testing.T) {
	r, err := ReadCSVCountyDB(strings.NewReader(countiesCSV))
	require.NoError(t, err)

	zone, ok, err := r.ZoneByCounty(context.Background(), "ca", " san francisco")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3C", zone)

	zone, ok, err = r.ZoneByCounty(context.Background(), "CA", "Alpine")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", zone, "first row wins")

	_, ok, err = r.ZoneByCounty(context.Background(), "MN", "Hennepin")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"3C", "7", "7"}, r.Zones())
}

func TestReadCSVCountyDB_Errors(t *testing.T) {
	_, err := ReadCSVCountyDB(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadCSVCountyDB(strings.NewReader("state,county\nCA,Alpine\n"))
	assert.ErrorContains(t, err, `missing column "climate_zone"`)
}

func TestLoadCSVCountyDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "county_zones.csv")
	require.NoError(t, os.WriteFile(path, []byte(countiesCSV), 0o644))

	r, err := LoadCSVCountyDB(path)
	require.NoError(t, err)
	var _ Repository = r

	_, err = LoadCSVCountyDB(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
