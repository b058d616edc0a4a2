package engine

import (
	"fmt"

	"github.com/misterclayt0n/forja/internal/models"
)

// oppositeLift pairs the squat with the deadlift and the bench with the
// press for "opposite" supplemental pairing.
var oppositeLift = map[string]string{
	models.LiftSquat:    models.LiftDeadlift,
	models.LiftDeadlift: models.LiftSquat,
	models.LiftBench:    models.LiftPress,
	models.LiftPress:    models.LiftBench,
}

// BuildSupplemental computes the supplemental block for a day, or nil when
// the strategy is "none". An unrecognized strategy is a configuration error,
// never silently ignored.
func BuildSupplemental(cfg models.Supplemental, tms map[string]float64, mainLift string, rounding models.Rounding) (*models.SupplementalBlock, error) {
	switch cfg.Strategy {
	case models.SupplementalNone, "":
		return nil, nil
	case models.SupplementalBBB:
		// Handled below.
	default:
		return nil, fmt.Errorf("unknown supplemental strategy %q", cfg.Strategy)
	}

	target := mainLift
	if cfg.Pairing == models.PairingOpposite {
		target = oppositeLift[mainLift]
	}

	tm := tms[target]
	if tm <= 0 {
		return nil, fmt.Errorf("supplemental target %s: %w", target, ErrMissingTrainingMax)
	}

	return &models.SupplementalBlock{
		Type:        models.SupplementalBBB,
		TargetLift:  target,
		Sets:        cfg.Sets,
		Reps:        cfg.Reps,
		PercentOfTM: cfg.PercentOfTM,
		Weight:      Round(tm*cfg.PercentOfTM/100, rounding),
		Units:       rounding.Units,
	}, nil
}
