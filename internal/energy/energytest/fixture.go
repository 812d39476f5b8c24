// Package energytest builds small synthetic simulation datasets for tests.
package energytest

import (
	"fmt"
	"strings"

	"Setpoint/internal/energy"
)

// Heating and cooling sweeps of every fixture configuration, °C.
var (
	HeatingSweep = []float64{15.6, 16.15, 16.7, 17.25, 17.8, 18.35, 18.9, 19.45, 20.0, 20.55, 21.1}
	CoolingSweep = []float64{22.0, 22.8, 23.6, 24.4, 25.2, 26.0, 26.8, 27.6, 28.4, 29.2, 30.0}
)

const (
	fixedCooling = 23.9
	fixedHeating = 15.6
)

// SystemTypes lists all eight catalog system keys.
func SystemTypes() []string {
	var out []string
	for _, v := range []energy.VAVType{energy.VAVHigh, energy.VAVLow} {
		for _, vin := range []energy.Vintage{energy.VintageExisting, energy.VintageNew} {
			for _, fixed := range []bool{true, false} {
				out = append(out, energy.Configuration{VAVType: v, Vintage: vin, VAVFixed: fixed}.SystemType())
			}
		}
	}
	return out
}

// Config returns 22 rows for one configuration. Heating energy rises with the
// heating setpoint, cooling energy falls as the cooling setpoint rises.
// Miami has no heating load at all.
func Config(climate energy.Climate, systemType string) []energy.Record {
	k := climateIndex(climate)
	s := 0
	for i, st := range SystemTypes() {
		if st == systemType {
			s = i
		}
	}
	th, ch, cool := 3*float64(k), 2*float64(k), 4*float64(7-k)
	fanBase := 50 + 5*float64(s)

	row := func(hsp, csp float64) energy.Record {
		r := energy.Record{
			Climate:         climate,
			SystemType:      systemType,
			HeatingSetpoint: hsp,
			CoolingSetpoint: csp,
			TerminalHeating: th * (hsp - 10),
			CentralHeating:  ch * (hsp - 10),
			Cooling:         cool * (35 - csp),
			Fans:            fanBase + 2*(hsp-10) + (35 - csp),
		}
		r.HVAC = r.TerminalHeating + r.CentralHeating + r.Cooling + r.Fans
		return r
	}

	var out []energy.Record
	for _, hsp := range HeatingSweep {
		out = append(out, row(hsp, fixedCooling))
	}
	for _, csp := range CoolingSweep {
		out = append(out, row(fixedHeating, csp))
	}
	return out
}

// Records covers every climate and system type.
func Records() []energy.Record {
	var out []energy.Record
	for _, c := range energy.Climates {
		for _, st := range SystemTypes() {
			out = append(out, Config(c, st)...)
		}
	}
	return out
}

func Dataset() *energy.Dataset {
	return energy.NewDataset(Records())
}

// CSV renders records in the dataset file layout.
func CSV(records []energy.Record) string {
	var b strings.Builder
	b.WriteString("climate,type,heating_sp,cooling_sp,terminal_heating,central_heating,cooling,fans,hvac\n")
	for _, r := range records {
		fmt.Fprintf(&b, "%s,%s,%g,%g,%g,%g,%g,%g,%g\n",
			r.Climate, r.SystemType, r.HeatingSetpoint, r.CoolingSetpoint,
			r.TerminalHeating, r.CentralHeating, r.Cooling, r.Fans, r.HVAC)
	}
	return b.String()
}

func climateIndex(c energy.Climate) int {
	for i, x := range energy.Climates {
		if x == c {
			return i
		}
	}
	return 0
}
