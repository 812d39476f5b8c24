package energy

import "errors"

var (
	// ErrDatasetMismatch marks a configuration whose rows cannot form an
	// operating axis. It is an internal failure, never a zero-savings result.
	ErrDatasetMismatch = errors.New("dataset mismatch")
	ErrOutOfDomain     = errors.New("point outside interpolation domain")
	ErrInvalidRange    = errors.New("starting setpoint range not contained in adjusted setpoint range")
	ErrUnknownClimate  = errors.New("unknown climate")
)
