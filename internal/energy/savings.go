package energy

import (
	"encoding/json"
	"math"
)

type Side int

const (
	HeatingSide Side = iota
	CoolingSide
)

// Simulated setpoint sweeps, °C. Inputs outside are pinned to the nearest end.
const (
	HeatingMin = 17.6
	HeatingMax = 21.1
	CoolingMin = 22.225
	CoolingMax = 30.0
)

func (s Side) String() string {
	if s == CoolingSide {
		return "cooling"
	}
	return "heating"
}

func (s Side) Range() (lo, hi float64) {
	if s == CoolingSide {
		return CoolingMin, CoolingMax
	}
	return HeatingMin, HeatingMax
}

func (s Side) Clamp(sp float64) float64 {
	lo, hi := s.Range()
	return math.Min(math.Max(sp, lo), hi)
}

type ChartData struct {
	TerminalHeating float64 `json:"terminal_heating_savings_per"`
	CentralHeating  float64 `json:"central_heating_savings_per"`
	Cooling         float64 `json:"cooling_savings_per"`
	Fans            float64 `json:"fan_savings_per"`
}

type TableData struct {
	Electric   float64 `json:"electric_savings_per"`
	NaturalGas float64 `json:"natural_gas_savings_per"`
}

// RawPercent is an unsanitized percentage. JSON has no NaN or Inf, so those
// encode as null.
type RawPercent float64

func (p RawPercent) MarshalJSON() ([]byte, error) {
	if !isFinite(float64(p)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}

// ComponentSavings are relative to each component's own baseline. They are
// left unsanitized, unlike ChartData and TableData.
type ComponentSavings struct {
	TerminalHeating RawPercent `json:"terminal_heating_component_savings_per"`
	CentralHeating  RawPercent `json:"central_heating_component_savings_per"`
	Cooling         RawPercent `json:"cooling_component_savings_per"`
	Fans            RawPercent `json:"fan_component_savings_per"`
}

type Result struct {
	ChartData        ChartData         `json:"chart_data"`
	TableData        TableData         `json:"table_data"`
	HVAC             float64           `json:"hvac_savings_per"`
	ComponentSavings *ComponentSavings `json:"component_savings,omitempty"`
}

// Savings evaluates the interpolants at both setpoints and derives the
// percentages. Setpoints must already lie inside the interpolation domain.
func Savings(in *Interpolants, sp0, sp1 float64, componentSavings bool) (Result, error) {
	e0, err := in.At(sp0)
	if err != nil {
		return Result{}, err
	}
	e1, err := in.At(sp1)
	if err != nil {
		return Result{}, err
	}

	ofTotal := func(v0, v1 float64) float64 { return percent(v0, v1, e0.HVAC) }

	res := Result{
		ChartData: ChartData{
			TerminalHeating: sanitize(ofTotal(e0.TerminalHeating, e1.TerminalHeating)),
			CentralHeating:  sanitize(ofTotal(e0.CentralHeating, e1.CentralHeating)),
			Cooling:         sanitize(ofTotal(e0.Cooling, e1.Cooling)),
			Fans:            sanitize(ofTotal(e0.Fans, e1.Fans)),
		},
		TableData: TableData{
			Electric:   sanitize(percent(e0.Electric(), e1.Electric(), e0.Electric())),
			NaturalGas: sanitize(percent(e0.NaturalGas(), e1.NaturalGas(), e0.NaturalGas())),
		},
		HVAC: sanitize(ofTotal(e0.HVAC, e1.HVAC)),
	}

	if componentSavings {
		res.ComponentSavings = &ComponentSavings{
			TerminalHeating: RawPercent(percent(e0.TerminalHeating, e1.TerminalHeating, e0.TerminalHeating)),
			CentralHeating:  RawPercent(percent(e0.CentralHeating, e1.CentralHeating, e0.CentralHeating)),
			Cooling:         RawPercent(percent(e0.Cooling, e1.Cooling, e0.Cooling)),
			Fans:            RawPercent(percent(e0.Fans, e1.Fans, e0.Fans)),
		}
	}
	return res, nil
}

func percent(before, after, baseline float64) float64 {
	return 100 * (before - after) / baseline
}

// sanitize reports zero for undefined ratios and for energy increases.
func sanitize(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	return v
}
