package energy

import "strings"

type Climate string

const (
	Miami        Climate = "Miami"
	Phoenix      Climate = "Phoenix"
	Fresno       Climate = "Fresno"
	SanFrancisco Climate = "San Francisco"
	Baltimore    Climate = "Baltimore"
	Chicago      Climate = "Chicago"
	Duluth       Climate = "Duluth"
)

// Climates lists the simulated representative cities.
var Climates = []Climate{Miami, Phoenix, Fresno, SanFrancisco, Baltimore, Chicago, Duluth}

func ParseClimate(s string) (Climate, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Climates {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

type VAVType string

const (
	VAVHigh VAVType = "High"
	VAVLow  VAVType = "Low"
)

type Vintage string

const (
	VintageExisting Vintage = "Existing"
	VintageNew      Vintage = "New"
)

type Configuration struct {
	Climate  Climate
	VAVType  VAVType
	Vintage  Vintage
	VAVFixed bool
}

// SystemType is the dataset key, e.g. "LowExistingVAVAuto".
func (c Configuration) SystemType() string {
	mode := "VAVAuto"
	if c.VAVFixed {
		mode = "VAVFixed"
	}
	return string(c.VAVType) + string(c.Vintage) + mode
}

// PublicConfiguration is the only system the HTTP API models: an existing VAV
// system with sufficiently low, auto-adjusting minimums.
func PublicConfiguration(climate Climate) Configuration {
	return Configuration{
		Climate:  climate,
		VAVType:  VAVLow,
		Vintage:  VintageExisting,
		VAVFixed: false,
	}
}

// Record is one row of the simulation dataset. Setpoints are in °C.
type Record struct {
	Climate         Climate
	SystemType      string
	HeatingSetpoint float64
	CoolingSetpoint float64
	TerminalHeating float64
	CentralHeating  float64
	Cooling         float64
	Fans            float64
	HVAC            float64
}
