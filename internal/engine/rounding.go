package engine

import (
	"math"

	"github.com/misterclayt0n/forja/internal/models"
)

// Round snaps a computed weight to the configured increment. Percentages and
// rep counts are never rounded, only derived weights pass through here.
func Round(value float64, cfg models.Rounding) float64 {
	inc := cfg.Increment
	if inc <= 0 {
		inc = models.DefaultRounding(cfg.Units).Increment
	}

	x := value / inc
	switch cfg.Mode {
	case models.RoundUp:
		return math.Ceil(x) * inc
	case models.RoundDown:
		return math.Floor(x) * inc
	default:
		return math.Round(x) * inc
	}
}

// EffectiveTM derives a training max from a tested or estimated 1RM.
// tmPercent defaults to the conventional 90 when zero.
func EffectiveTM(oneRM, tmPercent float64, cfg models.Rounding) float64 {
	if oneRM <= 0 {
		return 0
	}
	if tmPercent <= 0 {
		tmPercent = 90
	}
	return Round(oneRM*tmPercent/100, cfg)
}

// Estimate1RM is the Epley-style estimator used for AMRAP set feedback.
func Estimate1RM(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	return weight*float64(reps)*0.0333 + weight
}
