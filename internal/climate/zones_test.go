package climate

import (
	"testing"

	"Setpoint/internal/energy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZones_AllHaveRepresentative(t *testing.T) {
	seen := make(map[energy.Climate]bool)
	for _, z := range Zones {
		c := z.Representative()
		require.NotEmpty(t, c, "zone %s", z)
		_, ok := energy.ParseClimate(string(c))
		assert.True(t, ok, "zone %s maps to unsimulated %s", z, c)
		seen[c] = true
	}
	assert.Len(t, seen, len(energy.Climates))
}

func TestZone_Representative(t *testing.T) {
	assert.Equal(t, energy.SanFrancisco, Zone3C.Representative())
	assert.Equal(t, energy.Fresno, Zone3B.Representative())
	assert.Equal(t, energy.Duluth, Zone7.Representative())
	assert.Equal(t, energy.Duluth, Zone8.Representative())
	assert.Equal(t, energy.Miami, Zone1A.Representative())
}

func TestParseZone(t *testing.T) {
	z, err := ParseZone(" 4c ")
	require.NoError(t, err)
	assert.Equal(t, Zone4C, z)

	for _, bad := range []string{"", "9", "3D", "Zone 3C"} {
		_, err := ParseZone(bad)
		assert.Error(t, err, bad)
	}
}
