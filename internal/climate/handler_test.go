package climate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Setpoint/internal/energy"
	"Setpoint/internal/repo"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	tbl, err := ReadASHRAE(strings.NewReader(ashraeJSON))
	require.NoError(t, err)
	counties, err := repo.ReadCSVCountyDB(strings.NewReader("state,county,climate_zone\nCA,Marin,3C\nMN,Cook,7\nTX,Bogus,11\n"))
	require.NoError(t, err)
	return &Handler{Gazetteer: newGazetteer(t), ASHRAE: tbl, Counties: counties}
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestClimate_ByCity(t *testing.T) {
	h := newHandler(t)

	rec := serve(http.HandlerFunc(h.Climate), "/climate?state=CA&city=San+Francisco")
	require.Equal(t, http.StatusOK, rec.Code)

	var got Lookup
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, Lookup{Valid: true, County: "San Francisco", ClimateZone: Zone3C, Climate: energy.SanFrancisco}, got)

	got = h.ByCity("MN", "Duluth")
	assert.Equal(t, Zone7, got.ClimateZone)
	assert.Equal(t, energy.Duluth, got.Climate)
}

func TestClimate_Unresolved(t *testing.T) {
	h := newHandler(t)

	for _, target := range []string{
		"/climate?state=ZZ&city=Qwerty",
		"/climate?state=MA&city=San+Francisco",
		"/climate",
		"/climate?state=CA&county=Nowhere",
	} {
		rec := serve(http.HandlerFunc(h.Climate), target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.JSONEq(t, `{"valid": false}`, rec.Body.String(), target)
	}
}

func TestClimate_ByCounty(t *testing.T) {
	h := newHandler(t)

	rec := serve(http.HandlerFunc(h.Climate), "/climate?state=ca&county=marin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid": true, "county": "marin", "climate_zone": "3C", "climate": "San Francisco"}`, rec.Body.String())

	rec = serve(http.HandlerFunc(h.Climate), "/climate?state=TX&county=Bogus")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	h.Counties = nil
	rec = serve(http.HandlerFunc(h.Climate), "/climate?state=CA&county=Marin")
	assert.JSONEq(t, `{"valid": false}`, rec.Body.String())
}

func TestCitiesAndStates(t *testing.T) {
	h := newHandler(t)
	r := mux.NewRouter()
	r.HandleFunc("/city/{state}", h.Cities)
	r.HandleFunc("/states", h.States)

	rec := serve(r, "/city/MA")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cities": [{"id": "Boston", "name": "Boston"}]}`, rec.Body.String())

	rec = serve(r, "/city/TX")
	assert.JSONEq(t, `{"cities": []}`, rec.Body.String())

	rec = serve(r, "/states")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]State
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body["states"], 3)
}
