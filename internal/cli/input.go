package cli

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/cycletsp/builder"
)

// Input contains the flag values of every command.
type Input struct {
	verbose    bool
	jsonLogger bool

	// solve
	instancePath string
	check        bool
	format       string
	start        int

	// generate and bench
	order     int
	cycleLen  int
	lightProb float64
	badCycles int
	seed      int64
	perturb   float64
	output    string
	runs      int
}

// plantedOptions turns the generator flags into builder options. Values the
// options would reject are reported as errors here instead.
func (i *Input) plantedOptions(seed int64) ([]builder.BuilderOption, error) {
	if i.order < 1 {
		return nil, errors.Errorf("-n must be at least 1, got %d", i.order)
	}
	if i.cycleLen < 1 {
		return nil, errors.Errorf("--cycle-len must be at least 1, got %d", i.cycleLen)
	}
	if i.lightProb < 0 || i.lightProb > 1 {
		return nil, errors.Errorf("--light-prob must be in [0,1], got %g", i.lightProb)
	}
	if i.badCycles < 0 {
		return nil, errors.Errorf("--bad must not be negative, got %d", i.badCycles)
	}

	return []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithCycleLength(i.cycleLen),
		builder.WithLightProbability(i.lightProb),
		builder.WithBadCycles(i.badCycles),
	}, nil
}

// planted generates one instance from the flags, perturbed when --perturb > 0.
func (i *Input) planted(seed int64) (*builder.Instance, error) {
	opts, err := i.plantedOptions(seed)
	if err != nil {
		return nil, err
	}
	in, err := builder.Planted(i.order, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "generate instance")
	}
	if i.perturb > 0 {
		in, err = builder.Perturb(in, i.perturb, builder.WithSeed(builder.DeriveSeed(seed, 1)))
		if err != nil {
			return nil, errors.Wrap(err, "perturb instance")
		}
	}

	return in, nil
}
