package climate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ashraeJSON = `[
  {"state": "CA", "climate_zone": "3B", "exceptions": [
    {"county": "San Francisco", "climate_zone": "3C"},
    {"county": "Alpine", "climate_zone": "7"}
  ]},
  {"state": "MA", "climate_zone": "5A", "exceptions": []},
  {"state": "MN", "climate_zone": "6A", "exceptions": [{"county": "St. Louis", "climate_zone": "7"}]}
]`

func TestASHRAETable_Zone(t *testing.T) {
	tbl, err := ReadASHRAE(strings.NewReader(ashraeJSON))
	require.NoError(t, err)

	cases := []struct {
		state, county string
		want          Zone
	}{
		{"CA", "San Francisco", Zone3C},
		{"ca", "Alpine", Zone7},
		{"CA", "Fresno", Zone3B},
		{"MA", "Suffolk", Zone5A},
		{"MN", "St. Louis", Zone7},
	}
	for _, tc := range cases {
		z, ok := tbl.Zone(tc.state, tc.county)
		assert.True(t, ok)
		assert.Equal(t, tc.want, z, "%s/%s", tc.state, tc.county)
	}

	_, ok := tbl.Zone("ZZ", "Nowhere")
	assert.False(t, ok)
}

func TestReadASHRAE_RejectsUnknownZone(t *testing.T) {
	_, err := ReadASHRAE(strings.NewReader(`[{"state": "AK", "climate_zone": "9", "exceptions": []}]`))
	assert.ErrorContains(t, err, `unknown climate zone "9"`)

	_, err = ReadASHRAE(strings.NewReader(`[{"state": "CA", "climate_zone": "3B", "exceptions": [{"county": "X", "climate_zone": "3D"}]}]`))
	assert.ErrorContains(t, err, "county X")
}

func TestLoadASHRAE(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climate_zones.json")
	require.NoError(t, os.WriteFile(path, []byte(ashraeJSON), 0o644))

	tbl, err := LoadASHRAE(path)
	require.NoError(t, err)
	z, ok := tbl.Zone("MA", "Middlesex")
	assert.True(t, ok)
	assert.Equal(t, Zone5A, z)

	_, err = LoadASHRAE(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
