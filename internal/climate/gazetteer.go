package climate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type City struct {
	Name       string
	StateID    string
	StateName  string
	County     string
	Population int
}

type State struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type cityKey struct{ city, state string }

// Gazetteer resolves a city and state to a county and lists cities for the
// front-end pickers.
type Gazetteer struct {
	cities        []City
	byName        map[cityKey]string
	minPopulation int
}

func LoadGazetteer(path string, minPopulation int) (*Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ReadGazetteer(f, minPopulation)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

// ReadGazetteer reads a uscities-style CSV with city, state_id, state_name,
// county_name and population columns.
func ReadGazetteer(r io.Reader, minPopulation int) (*Gazetteer, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, c := range []string{"city", "state_id", "state_name", "county_name", "population"} {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}

	g := &Gazetteer{byName: make(map[cityKey]string), minPopulation: minPopulation}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		pop := 0
		if raw := strings.TrimSpace(row[index["population"]]); raw != "" {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: population: %w", line, err)
			}
			pop = int(f)
		}
		c := City{
			Name:       row[index["city"]],
			StateID:    row[index["state_id"]],
			StateName:  row[index["state_name"]],
			County:     row[index["county_name"]],
			Population: pop,
		}
		g.cities = append(g.cities, c)
		k := cityKey{strings.ToLower(c.Name), strings.ToLower(c.StateID)}
		if _, dup := g.byName[k]; !dup {
			g.byName[k] = c.County
		}
	}
	return g, nil
}

// County is case-insensitive. The first matching row wins.
func (g *Gazetteer) County(city, state string) (string, bool) {
	county, ok := g.byName[cityKey{strings.ToLower(strings.TrimSpace(city)), strings.ToLower(strings.TrimSpace(state))}]
	return county, ok
}

// Cities lists the state's cities above the minimum population, in file order.
func (g *Gazetteer) Cities(state string) []City {
	var out []City
	for _, c := range g.cities {
		if strings.EqualFold(c.StateID, state) && c.Population > g.minPopulation {
			out = append(out, c)
		}
	}
	return out
}

// States lists each state once, in order of first appearance.
func (g *Gazetteer) States() []State {
	seen := make(map[string]bool)
	var out []State
	for _, c := range g.cities {
		if c.Population <= g.minPopulation || seen[c.StateID] {
			continue
		}
		seen[c.StateID] = true
		out = append(out, State{ID: c.StateID, Name: c.StateName})
	}
	return out
}
