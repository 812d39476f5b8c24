package climate

import (
	"fmt"
	"strings"

	"Setpoint/internal/energy"
)

// Zone is an ASHRAE 90.1 climate zone such as "3C".
type Zone string

const (
	Zone1A Zone = "1A"
	Zone1B Zone = "1B"
	Zone2A Zone = "2A"
	Zone2B Zone = "2B"
	Zone3A Zone = "3A"
	Zone3B Zone = "3B"
	Zone3C Zone = "3C"
	Zone4A Zone = "4A"
	Zone4B Zone = "4B"
	Zone4C Zone = "4C"
	Zone5A Zone = "5A"
	Zone5B Zone = "5B"
	Zone5C Zone = "5C"
	Zone6A Zone = "6A"
	Zone6B Zone = "6B"
	Zone7  Zone = "7"
	Zone8  Zone = "8"
)

// Zones is every zone the service knows about. Each has a simulated city.
var Zones = []Zone{
	Zone1A, Zone1B, Zone2A, Zone2B, Zone3A, Zone3B, Zone3C,
	Zone4A, Zone4B, Zone4C, Zone5A, Zone5B, Zone5C, Zone6A, Zone6B, Zone7, Zone8,
}

// Representative returns the simulated city standing in for the zone.
func (z Zone) Representative() energy.Climate {
	switch z {
	case Zone1A, Zone1B:
		return energy.Miami
	case Zone2A, Zone2B:
		return energy.Phoenix
	case Zone3A, Zone3B:
		return energy.Fresno
	case Zone3C:
		return energy.SanFrancisco
	case Zone4A, Zone4B, Zone4C:
		return energy.Baltimore
	case Zone5A, Zone5B, Zone5C:
		return energy.Chicago
	case Zone6A, Zone6B, Zone7, Zone8:
		return energy.Duluth
	}
	return ""
}

// ParseZone accepts only zones with a representative city, so reference data
// naming anything else fails when it is loaded rather than when it is queried.
func ParseZone(s string) (Zone, error) {
	z := Zone(strings.ToUpper(strings.TrimSpace(s)))
	if z.Representative() == "" {
		return "", fmt.Errorf("unknown climate zone %q", s)
	}
	return z, nil
}
