package energy

import (
	"errors"
	"fmt"
	"strings"
)

// Dataset is the immutable simulation table. It is built once at startup and
// shared read-only by every request.
type Dataset struct {
	records []Record
}

func NewDataset(records []Record) *Dataset {
	return &Dataset{records: append([]Record(nil), records...)}
}

func (d *Dataset) Len() int { return len(d.records) }

func (d *Dataset) Records() []Record {
	return append([]Record(nil), d.records...)
}

// Filter returns the rows of one configuration in dataset order.
func (d *Dataset) Filter(cfg Configuration) []Record {
	systemType := cfg.SystemType()
	var out []Record
	for _, r := range d.records {
		if r.Climate == cfg.Climate && r.SystemType == systemType {
			out = append(out, r)
		}
	}
	return out
}

type groupKey struct {
	climate    Climate
	systemType string
}

func (k groupKey) String() string {
	return fmt.Sprintf("%s/%s", k.climate, k.systemType)
}

func (d *Dataset) groups() ([]groupKey, map[groupKey][]Record) {
	var order []groupKey
	byKey := make(map[groupKey][]Record)
	for _, r := range d.records {
		k := groupKey{r.Climate, r.SystemType}
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = append(byKey[k], r)
	}
	return order, byKey
}

// Configurations lists every configuration present, in first-seen order.
// Rows with an unrecognised system type are skipped.
func (d *Dataset) Configurations() []Configuration {
	order, _ := d.groups()
	out := make([]Configuration, 0, len(order))
	for _, k := range order {
		cfg, err := ParseSystemType(k.climate, k.systemType)
		if err != nil {
			continue
		}
		out = append(out, cfg)
	}
	return out
}

// Validate checks that every configuration can be stitched into an operating
// axis that covers both setpoint sweeps.
func (d *Dataset) Validate() error {
	if len(d.records) == 0 {
		return fmt.Errorf("%w: dataset is empty", ErrDatasetMismatch)
	}
	order, byKey := d.groups()
	var errs []error
	for _, k := range order {
		if _, err := ParseSystemType(k.climate, k.systemType); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
			continue
		}
		in, err := BuildInterpolants(byKey[k])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
			continue
		}
		lo, hi := in.Domain()
		for _, side := range []Side{HeatingSide, CoolingSide} {
			sLo, sHi := side.Range()
			if sLo < lo || sHi > hi {
				errs = append(errs, fmt.Errorf("%s: %w: axis [%g, %g] does not cover %s range [%g, %g]",
					k, ErrDatasetMismatch, lo, hi, side, sLo, sHi))
			}
		}
	}
	return errors.Join(errs...)
}

// ParseSystemType splits a key such as "HighNewVAVFixed" into a Configuration.
func ParseSystemType(climate Climate, systemType string) (Configuration, error) {
	cfg := Configuration{Climate: climate}
	rest := systemType
	switch {
	case strings.HasPrefix(rest, string(VAVHigh)):
		cfg.VAVType = VAVHigh
	case strings.HasPrefix(rest, string(VAVLow)):
		cfg.VAVType = VAVLow
	default:
		return Configuration{}, fmt.Errorf("%w: unknown VAV type in %q", ErrDatasetMismatch, systemType)
	}
	rest = strings.TrimPrefix(rest, string(cfg.VAVType))

	switch {
	case strings.HasPrefix(rest, string(VintageExisting)):
		cfg.Vintage = VintageExisting
	case strings.HasPrefix(rest, string(VintageNew)):
		cfg.Vintage = VintageNew
	default:
		return Configuration{}, fmt.Errorf("%w: unknown vintage in %q", ErrDatasetMismatch, systemType)
	}
	rest = strings.TrimPrefix(rest, string(cfg.Vintage))

	switch rest {
	case "VAVFixed":
		cfg.VAVFixed = true
	case "VAVAuto":
	default:
		return Configuration{}, fmt.Errorf("%w: unknown minimum-flow mode in %q", ErrDatasetMismatch, systemType)
	}
	return cfg, nil
}
