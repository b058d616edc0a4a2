// Package volume computes per-muscle weekly set-count landmarks (MEV, MAV,
// MRV) from individual factors and classifies training volume against them.
package volume

import (
	"fmt"
	"math"

	"github.com/misterclayt0n/forja/internal/models"
)

// Base landmarks per muscle group, weekly sets. These are hand-tuned domain
// heuristics reproduced as-is; do not rebalance them without domain sign-off.
var baseMEV = map[string]float64{
	"chest":      8,
	"back":       10,
	"shoulders":  8,
	"biceps":     6,
	"triceps":    6,
	"quads":      10,
	"hamstrings": 8,
	"glutes":     8,
	"calves":     8,
}

var baseMRV = map[string]float64{
	"chest":      22,
	"back":       26,
	"shoulders":  20,
	"biceps":     20,
	"triceps":    18,
	"quads":      26,
	"hamstrings": 20,
	"glutes":     22,
	"calves":     26,
}

const (
	defaultBaseMEV = 8
	defaultBaseMRV = 22
)

// MuscleGroups lists the groups with dedicated base landmarks.
func MuscleGroups() []string {
	return []string{"chest", "back", "shoulders", "biceps", "triceps", "quads", "hamstrings", "glutes", "calves"}
}

// Landmark is one muscle group's adjusted volume window. When the factor
// multipliers squeeze MEV at or above MRV the landmark is still returned,
// flagged with a warning: that is an actionable state, not a defect.
type Landmark struct {
	MuscleGroup string   `json:"muscle_group"`
	MEV         int      `json:"mev"`
	MRV         int      `json:"mrv"`
	Warnings    []string `json:"warnings,omitempty"`
}

func ageFactorMEV(age string) float64 {
	switch age {
	case models.AgeBeginner:
		return 0.7
	case models.AgeAdvanced:
		return 1.3
	default:
		return 1.0
	}
}

func ageFactorMRV(age string) float64 {
	switch age {
	case models.AgeBeginner:
		return 0.8
	case models.AgeAdvanced:
		return 1.2
	default:
		return 1.0
	}
}

// ComputeLandmark derives the MEV/MRV window for a muscle group.
//
// MEV scales by fiber type (fast-twitch needs less volume for stimulus),
// training age, and a coarse recovery-score bump. MRV additionally takes the
// composite recovery factor: recovery, inverse stress, sleep and nutrition
// averaged and mapped onto a 0.7x-1.3x multiplier.
func ComputeLandmark(muscleGroup string, f models.MuscleFactors) Landmark {
	mev, ok := baseMEV[muscleGroup]
	if !ok {
		mev = defaultBaseMEV
	}
	mrv, ok := baseMRV[muscleGroup]
	if !ok {
		mrv = defaultBaseMRV
	}

	switch f.FiberType {
	case models.FiberFast:
		mev *= 0.8
		mrv *= 0.7
	case models.FiberSlow:
		mev *= 1.2
		mrv *= 1.3
	}

	mev *= ageFactorMEV(f.TrainingAge)
	mrv *= ageFactorMRV(f.TrainingAge)

	if f.RecoveryScore <= 3 {
		mev *= 0.8
	} else if f.RecoveryScore >= 8 {
		mev *= 1.1
	}

	recoveryFactor := (f.RecoveryScore + (10 - f.StressLevel) + f.SleepQuality + f.NutritionQuality) / 40
	mrv *= 0.7 + recoveryFactor*0.6

	lm := Landmark{
		MuscleGroup: muscleGroup,
		MEV:         int(math.Round(mev)),
		MRV:         int(math.Round(mrv)),
	}
	if lm.MEV >= lm.MRV {
		lm.Warnings = append(lm.Warnings,
			fmt.Sprintf("MEV (%d) >= MRV (%d) after adjustment - check recovery factors", lm.MEV, lm.MRV))
	}
	return lm
}

// MAV returns the adaptive-volume target for week w of an L-week mesocycle:
// mev + 0.3*range at week 1, trending to mev + 0.7*range in the final week.
// With a non-negative range it never exceeds MRV by construction.
func MAV(mev, mrv, week, mesocycleLength int) int {
	if mesocycleLength < 2 {
		mesocycleLength = 2
	}
	if week < 1 {
		week = 1
	} else if week > mesocycleLength {
		week = mesocycleLength
	}

	r := float64(mrv - mev)
	progress := float64(week-1) / float64(mesocycleLength-1)
	return int(math.Round(float64(mev) + r*0.3 + r*0.4*progress))
}

// WeekTarget is one row of the mesocycle volume progression.
type WeekTarget struct {
	Week              int  `json:"week"`
	TargetMAV         int  `json:"target_mav"`
	DeloadRecommended bool `json:"deload_recommended"`
}

// Progression expands the MAV curve across a whole mesocycle; the final week
// always carries the deload recommendation.
func Progression(mev, mrv, mesocycleLength int) []WeekTarget {
	if mesocycleLength < 2 {
		mesocycleLength = 2
	}
	out := make([]WeekTarget, 0, mesocycleLength)
	for w := 1; w <= mesocycleLength; w++ {
		out = append(out, WeekTarget{
			Week:              w,
			TargetMAV:         MAV(mev, mrv, w, mesocycleLength),
			DeloadRecommended: w == mesocycleLength,
		})
	}
	return out
}
