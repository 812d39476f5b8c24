package energy

import (
	"fmt"

	"go.uber.org/zap"
)

type Options struct {
	ComponentSavings bool
}

// Model answers savings questions against one dataset. Interpolants are
// rebuilt on every call.
type Model struct {
	data   *Dataset
	logger *zap.SugaredLogger
}

func NewModel(data *Dataset, logger *zap.SugaredLogger) *Model {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Model{data: data, logger: logger}
}

func (m *Model) Dataset() *Dataset { return m.data }

func (m *Model) Calculate(sp0, sp1 float64, cfg Configuration, side Side, opts Options) (Result, error) {
	sp0, sp1 = side.Clamp(sp0), side.Clamp(sp1)

	rows := m.data.Filter(cfg)
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("%w: no rows for %s/%s", ErrDatasetMismatch, cfg.Climate, cfg.SystemType())
	}
	in, err := BuildInterpolants(rows)
	if err != nil {
		return Result{}, fmt.Errorf("%s/%s: %w", cfg.Climate, cfg.SystemType(), err)
	}

	direction := "decreasing"
	if sp0 < sp1 {
		direction = "increasing"
	}
	m.logger.Debugw("savings from "+direction+" the "+side.String()+" setpoint",
		"climate", cfg.Climate, "system_type", cfg.SystemType(), "from", sp0, "to", sp1)

	res, err := Savings(in, sp0, sp1, opts.ComponentSavings)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s/%s: %w", ErrDatasetMismatch, cfg.Climate, cfg.SystemType(), err)
	}
	return res, nil
}
