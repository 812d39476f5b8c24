package climate

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"Setpoint/internal/energy"
	"Setpoint/internal/metrics"
	"Setpoint/internal/repo"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Lookup is the /climate payload. An unresolved location is a normal
// response with Valid false, not an HTTP error.
type Lookup struct {
	Valid       bool           `json:"valid"`
	County      string         `json:"county,omitempty"`
	ClimateZone Zone           `json:"climate_zone,omitempty"`
	Climate     energy.Climate `json:"climate,omitempty"`
}

type Handler struct {
	Gazetteer *Gazetteer
	ASHRAE    *ASHRAETable
	// Counties backs the county= variant. Optional.
	Counties repo.Repository
	Logger   *zap.SugaredLogger
	Metrics  *metrics.Metrics
}

// ByCity resolves city -> county through the gazetteer, then county -> zone
// through the ASHRAE state table and its county exceptions.
func (h *Handler) ByCity(state, city string) Lookup {
	county, ok := h.Gazetteer.County(city, state)
	if !ok {
		return Lookup{}
	}
	zone, ok := h.ASHRAE.Zone(state, county)
	if !ok {
		return Lookup{}
	}
	return Lookup{Valid: true, County: county, ClimateZone: zone, Climate: zone.Representative()}
}

// ByCounty resolves a county through the direct county table.
func (h *Handler) ByCounty(ctx context.Context, state, county string) (Lookup, error) {
	if h.Counties == nil {
		return Lookup{}, nil
	}
	raw, ok, err := h.Counties.ZoneByCounty(ctx, state, county)
	if err != nil || !ok {
		return Lookup{}, err
	}
	zone, err := ParseZone(raw)
	if err != nil {
		return Lookup{}, err
	}
	return Lookup{Valid: true, County: county, ClimateZone: zone, Climate: zone.Representative()}, nil
}

// Climate serves GET /climate?state=&city= and GET /climate?state=&county=
func (h *Handler) Climate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := strings.TrimSpace(q.Get("state"))

	var res Lookup
	strategy := "city"
	if county := strings.TrimSpace(q.Get("county")); county != "" && q.Get("city") == "" {
		strategy = "county"
		var err error
		res, err = h.ByCounty(r.Context(), state, county)
		if err != nil {
			h.logger().Errorw("county lookup failed", "state", state, "county", county, "error", err)
			http.Error(w, "Lookup error", http.StatusInternalServerError)
			return
		}
	} else {
		res = h.ByCity(state, q.Get("city"))
	}
	h.Metrics.ObserveClimateLookup(strategy, res.Valid)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type cityOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Cities serves GET /city/{state}
func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	state := mux.Vars(r)["state"]
	options := []cityOption{}
	for _, c := range h.Gazetteer.Cities(state) {
		options = append(options, cityOption{ID: c.Name, Name: c.Name})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]cityOption{"cities": options})
}

// States serves GET /states
func (h *Handler) States(w http.ResponseWriter, r *http.Request) {
	states := h.Gazetteer.States()
	if states == nil {
		states = []State{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]State{"states": states})
}

func (h *Handler) logger() *zap.SugaredLogger {
	if h.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return h.Logger
}
