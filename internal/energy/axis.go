package energy

import "fmt"

// HeatingRows is the number of leading rows per configuration that sweep the
// heating setpoint. The rows after them sweep the cooling setpoint.
const HeatingRows = 11

// MinRows is the shortest configuration that still has a cooling segment.
const MinRows = HeatingRows + 1

type Interpolants struct {
	Axis            []float64
	TerminalHeating *Linear
	CentralHeating  *Linear
	Cooling         *Linear
	Fans            *Linear
	HVAC            *Linear
}

// Energy holds the five interpolated components at one operating point.
type Energy struct {
	TerminalHeating float64
	CentralHeating  float64
	Cooling         float64
	Fans            float64
	HVAC            float64
}

func (e Energy) NaturalGas() float64 { return e.TerminalHeating + e.CentralHeating }

func (e Energy) Electric() float64 { return e.Cooling + e.Fans }

// OperatingAxis stitches heating setpoints of the first HeatingRows records
// with cooling setpoints of the rest.
func OperatingAxis(records []Record) ([]float64, error) {
	if len(records) < MinRows {
		return nil, fmt.Errorf("%w: %d rows, need at least %d", ErrDatasetMismatch, len(records), MinRows)
	}
	axis := make([]float64, len(records))
	for i, r := range records {
		if i < HeatingRows {
			axis[i] = r.HeatingSetpoint
		} else {
			axis[i] = r.CoolingSetpoint
		}
	}
	return axis, nil
}

func BuildInterpolants(records []Record) (*Interpolants, error) {
	axis, err := OperatingAxis(records)
	if err != nil {
		return nil, err
	}

	column := func(field func(Record) float64) []float64 {
		out := make([]float64, len(records))
		for i, r := range records {
			out[i] = field(r)
		}
		return out
	}
	fit := func(name string, field func(Record) float64) (*Linear, error) {
		l, err := NewLinear(axis, column(field))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDatasetMismatch, name, err)
		}
		return l, nil
	}

	in := &Interpolants{Axis: axis}
	if in.TerminalHeating, err = fit("terminal_heating", func(r Record) float64 { return r.TerminalHeating }); err != nil {
		return nil, err
	}
	if in.CentralHeating, err = fit("central_heating", func(r Record) float64 { return r.CentralHeating }); err != nil {
		return nil, err
	}
	if in.Cooling, err = fit("cooling", func(r Record) float64 { return r.Cooling }); err != nil {
		return nil, err
	}
	if in.Fans, err = fit("fans", func(r Record) float64 { return r.Fans }); err != nil {
		return nil, err
	}
	if in.HVAC, err = fit("hvac", func(r Record) float64 { return r.HVAC }); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *Interpolants) Domain() (lo, hi float64) {
	return in.HVAC.Domain()
}

func (in *Interpolants) At(sp float64) (Energy, error) {
	var e Energy
	var err error
	if e.TerminalHeating, err = in.TerminalHeating.At(sp); err != nil {
		return Energy{}, err
	}
	if e.CentralHeating, err = in.CentralHeating.At(sp); err != nil {
		return Energy{}, err
	}
	if e.Cooling, err = in.Cooling.At(sp); err != nil {
		return Energy{}, err
	}
	if e.Fans, err = in.Fans.At(sp); err != nil {
		return Energy{}, err
	}
	if e.HVAC, err = in.HVAC.At(sp); err != nil {
		return Energy{}, err
	}
	return e, nil
}
