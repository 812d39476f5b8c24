package climate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

type stateJSON struct {
	State       string `json:"state"`
	ClimateZone string `json:"climate_zone"`
	Exceptions  []struct {
		County      string `json:"county"`
		ClimateZone string `json:"climate_zone"`
	} `json:"exceptions"`
}

type stateZones struct {
	zone       Zone
	exceptions map[string]Zone
}

// ASHRAETable maps a state to its default zone, with per-county exceptions.
type ASHRAETable struct {
	states map[string]stateZones
}

func LoadASHRAE(path string) (*ASHRAETable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadASHRAE(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

func ReadASHRAE(r io.Reader) (*ASHRAETable, error) {
	var raw []stateJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	t := &ASHRAETable{states: make(map[string]stateZones, len(raw))}
	for _, s := range raw {
		state := strings.ToUpper(strings.TrimSpace(s.State))
		zone, err := ParseZone(s.ClimateZone)
		if err != nil {
			return nil, fmt.Errorf("state %s: %w", state, err)
		}
		sz := stateZones{zone: zone, exceptions: make(map[string]Zone, len(s.Exceptions))}
		for _, ex := range s.Exceptions {
			z, err := ParseZone(ex.ClimateZone)
			if err != nil {
				return nil, fmt.Errorf("state %s county %s: %w", state, ex.County, err)
			}
			sz.exceptions[ex.County] = z
		}
		t.states[state] = sz
	}
	return t, nil
}

// Zone returns the county's exception zone if listed, else the state zone.
func (t *ASHRAETable) Zone(state, county string) (Zone, bool) {
	sz, ok := t.states[strings.ToUpper(strings.TrimSpace(state))]
	if !ok {
		return "", false
	}
	if z, ok := sz.exceptions[county]; ok {
		return z, true
	}
	return sz.zone, true
}
