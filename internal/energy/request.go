package energy

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Request is a user-facing savings query. Setpoints are °C.
type Request struct {
	Climate          Climate
	HeatingFrom      float64
	HeatingTo        float64
	CoolingFrom      float64
	CoolingTo        float64
	ComponentSavings bool
}

type Response struct {
	Heating Result `json:"heating"`
	Cooling Result `json:"cooling"`
}

func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// ParseQuery reads csp0, csp1, hsp0, hsp1 (°F) and climate. A heating
// setpoint may only move down and a cooling setpoint only up.
func ParseQuery(q url.Values) (Request, error) {
	var req Request
	temps := []struct {
		name string
		dst  *float64
	}{
		{"csp0", &req.CoolingFrom},
		{"csp1", &req.CoolingTo},
		{"hsp0", &req.HeatingFrom},
		{"hsp1", &req.HeatingTo},
	}
	for _, t := range temps {
		raw := strings.TrimSpace(q.Get(t.name))
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || !isFinite(f) {
			return Request{}, fmt.Errorf("invalid %s: %q", t.name, raw)
		}
		*t.dst = FahrenheitToCelsius(f)
	}

	if req.CoolingFrom > req.CoolingTo || req.HeatingFrom < req.HeatingTo {
		return Request{}, ErrInvalidRange
	}

	climate, ok := ParseClimate(q.Get("climate"))
	if !ok {
		return Request{}, fmt.Errorf("%w %q", ErrUnknownClimate, q.Get("climate"))
	}
	req.Climate = climate

	if v := q.Get("components"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Request{}, fmt.Errorf("invalid components: %q", v)
		}
		req.ComponentSavings = b
	}
	return req, nil
}

// Evaluate runs the heating and cooling sides under the public configuration.
func (m *Model) Evaluate(req Request) (Response, error) {
	cfg := PublicConfiguration(req.Climate)
	opts := Options{ComponentSavings: req.ComponentSavings}

	heating, err := m.Calculate(req.HeatingFrom, req.HeatingTo, cfg, HeatingSide, opts)
	if err != nil {
		return Response{}, err
	}
	cooling, err := m.Calculate(req.CoolingFrom, req.CoolingTo, cfg, CoolingSide, opts)
	if err != nil {
		return Response{}, err
	}
	return Response{Heating: heating, Cooling: cooling}, nil
}
