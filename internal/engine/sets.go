package engine

import (
	"github.com/misterclayt0n/forja/internal/models"
)

// BuildWarmupSets resolves the warm-up ramp for a lift. A disabled warm-up
// scheme yields an empty slice, not an error.
func BuildWarmupSets(tm float64, scheme models.WarmupScheme, cfg models.Rounding) ([]models.SetPrescription, error) {
	if tm <= 0 {
		return nil, ErrMissingTrainingMax
	}

	n := len(scheme.Percentages)
	if len(scheme.Reps) < n {
		n = len(scheme.Reps)
	}

	sets := make([]models.SetPrescription, 0, n)
	for i := 0; i < n; i++ {
		pct := scheme.Percentages[i]
		sets = append(sets, models.SetPrescription{
			Percent: pct,
			Reps:    scheme.Reps[i],
			Weight:  Round(tm*pct/100, cfg),
		})
	}
	return sets, nil
}

// BuildMainSets resolves the week's working sets for a lift. Reps and the
// AMRAP flag come verbatim from the scheme table; the flag is advisory
// metadata and plays no part in the weight math.
func BuildMainSets(tm float64, weekIndex, option int, cfg models.Rounding) ([]models.SetPrescription, error) {
	if tm <= 0 {
		return nil, ErrMissingTrainingMax
	}

	scheme, err := SchemeFor(option, weekIndex)
	if err != nil {
		return nil, err
	}

	sets := make([]models.SetPrescription, 0, len(scheme))
	for _, s := range scheme {
		sets = append(sets, models.SetPrescription{
			Percent: s.Percent,
			Reps:    s.Reps,
			Weight:  Round(tm*s.Percent/100, cfg),
			AMRAP:   s.AMRAP,
		})
	}
	return sets, nil
}
