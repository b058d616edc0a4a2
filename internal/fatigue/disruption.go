// Package fatigue scores homeostatic disruption from a week of training and
// classifies accumulated fatigue across four contributor categories: fuel
// stores, nervous system, chemical messengers, and tissue structures.
package fatigue

import (
	"math"

	"github.com/misterclayt0n/forja/internal/models"
)

// Disruption levels, lowest to highest.
const (
	LevelMinimal   = "minimal"
	LevelModerate  = "moderate"
	LevelHigh      = "high"
	LevelExcessive = "excessive"
)

// Disruption is the homeostatic disruption estimate for one training week.
type Disruption struct {
	Level        string            `json:"level"`
	Score        float64           `json:"score"`
	Description  string            `json:"description"`
	RecoveryTime string            `json:"recovery_time"`
	Breakdown    map[string]float64 `json:"breakdown"`
}

// ScoreDisruption combines a volume term (sets*reps*intensity/100) with
// tiered intensity, frequency, and failure-proximity terms, each worth 1-3.
// A hard week's volume term alone lands well past the top band.
func ScoreDisruption(in models.OverloadInput) Disruption {
	volumeTerm := float64(in.Sets) * float64(in.Reps) * in.Intensity / 100

	var intensityTerm float64 = 1
	if in.Intensity >= 90 {
		intensityTerm = 3
	} else if in.Intensity >= 80 {
		intensityTerm = 2
	}

	var frequencyTerm float64 = 1
	if in.Frequency >= 6 {
		frequencyTerm = 3
	} else if in.Frequency >= 4 {
		frequencyTerm = 2
	}

	var failureTerm float64 = 1
	if in.FailureProximity <= 1 {
		failureTerm = 3
	} else if in.FailureProximity <= 3 {
		failureTerm = 2
	}

	total := volumeTerm + intensityTerm + frequencyTerm + failureTerm

	d := Disruption{
		Score: total,
		Breakdown: map[string]float64{
			"volume":    volumeTerm,
			"intensity": intensityTerm,
			"frequency": frequencyTerm,
			"failure":   failureTerm,
		},
	}

	switch {
	case total <= 8:
		d.Level = LevelMinimal
		d.Description = "Low homeostatic disruption - sustainable long-term"
		d.RecoveryTime = "12-24 hours"
	case total <= 15:
		d.Level = LevelModerate
		d.Description = "Moderate disruption - drives adaptations effectively"
		d.RecoveryTime = "24-48 hours"
	case total <= 22:
		d.Level = LevelHigh
		d.Description = "High disruption - requires careful monitoring"
		d.RecoveryTime = "48-72 hours"
	default:
		d.Level = LevelExcessive
		d.Description = "Excessive disruption - risk of overreaching/overtraining"
		d.RecoveryTime = "72+ hours"
	}
	return d
}

// Relative intensity tiers for weekly load.
const (
	IntensityLow      = "low"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
	IntensityVeryHigh = "very_high"
)

// TrainingLoad is the weekly volume-load proxy consumed by the contributor
// assessors.
type TrainingLoad struct {
	WeeklyLoad        float64 `json:"weekly_load"`
	SessionsPerWeek   int     `json:"sessions_per_week"`
	SetsPerSession    int     `json:"sets_per_session"`
	RelativeIntensity string  `json:"relative_intensity"`
}

// WeeklyLoad computes the load proxy: sets * reps * intensity/100 * frequency,
// with a tiered relative-intensity label.
func WeeklyLoad(in models.OverloadInput) TrainingLoad {
	load := float64(in.Sets) * float64(in.Reps) * (in.Intensity / 100) * float64(in.Frequency)

	tier := IntensityLow
	switch {
	case in.Intensity >= 90:
		tier = IntensityVeryHigh
	case in.Intensity >= 80:
		tier = IntensityHigh
	case in.Intensity >= 70:
		tier = IntensityModerate
	}

	setsPerSession := 0
	if in.Frequency > 0 {
		setsPerSession = int(math.Round(float64(in.Sets) / float64(in.Frequency)))
	}

	return TrainingLoad{
		WeeklyLoad:        math.Round(load),
		SessionsPerWeek:   in.Frequency,
		SetsPerSession:    setsPerSession,
		RelativeIntensity: tier,
	}
}
