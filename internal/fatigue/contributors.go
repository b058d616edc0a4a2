package fatigue

import "github.com/misterclayt0n/forja/internal/models"

// Contributor severity levels.
const (
	SeverityMinimal  = "minimal"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
	SeveritySevere   = "severe"
)

// Contributor is one fatigue category's assessment. Proxies are the named
// symptom flags that tripped, kept for reporting.
type Contributor struct {
	Category     string          `json:"category"`
	Level        string          `json:"level"`
	Score        float64         `json:"score"`
	Description  string          `json:"description"`
	RecoveryTime string          `json:"recovery_time"`
	Proxies      map[string]bool `json:"proxies"`
}

// AssessFuel scores fuel-store depletion (glycogen, muscle fullness, energy).
// Recovers in hours to days.
func AssessFuel(in models.FuelInput, load TrainingLoad) Contributor {
	var glycogenScore float64 = 1
	switch {
	case in.GlycogenStores <= 3:
		glycogenScore = 8
	case in.GlycogenStores <= 5:
		glycogenScore = 5
	case in.GlycogenStores <= 7:
		glycogenScore = 3
	}

	var volumeImpact float64 = 1
	if load.WeeklyLoad > 1000 {
		volumeImpact = 3
	} else if load.WeeklyLoad > 500 {
		volumeImpact = 2
	}

	score := glycogenScore + volumeImpact + (10 - in.MuscleFullness) + (10 - in.EnergyLevels)

	c := Contributor{
		Category: "fuel",
		Score:    score,
		Proxies: map[string]bool{
			"glycogen_depletion":      in.GlycogenStores <= 5,
			"reduced_muscle_fullness": in.MuscleFullness <= 6,
			"low_energy":              in.EnergyLevels <= 5,
			"prolonged_fatigue":       in.PostWorkoutFatigue > 4,
		},
	}

	switch {
	case score <= 8:
		c.Level = SeverityMinimal
		c.Description = "Fuel stores adequate, energy levels stable"
		c.RecoveryTime = "hours"
	case score <= 15:
		c.Level = SeverityModerate
		c.Description = "Some fuel depletion, manageable with nutrition"
		c.RecoveryTime = "1-2 days"
	case score <= 22:
		c.Level = SeverityHigh
		c.Description = "Significant fuel depletion affecting performance"
		c.RecoveryTime = "2-3 days"
	default:
		c.Level = SeveritySevere
		c.Description = "Critical fuel depletion, training quality compromised"
		c.RecoveryTime = "3-7 days"
	}
	return c
}

// AssessNervous scores neural fatigue. Volume is the primary driver here,
// intensity only incremental. Recovers in days to weeks.
func AssessNervous(in models.NervousInput, load TrainingLoad) Contributor {
	var volumeScore float64 = 2
	if load.WeeklyLoad > 1200 {
		volumeScore = 6
	} else if load.WeeklyLoad > 800 {
		volumeScore = 4
	}

	var intensityScore float64 = 1
	switch load.RelativeIntensity {
	case IntensityVeryHigh:
		intensityScore = 4
	case IntensityHigh:
		intensityScore = 2
	}

	performanceScore := (10 - in.ForceOutput) + (10 - in.TechniqueQuality) + (10 - in.Motivation)
	score := volumeScore + intensityScore + performanceScore + (10 - in.SleepQuality)

	c := Contributor{
		Category: "nervous",
		Score:    score,
		Proxies: map[string]bool{
			"reduced_force":       in.ForceOutput <= 6,
			"technique_breakdown": in.TechniqueQuality <= 6,
			"low_motivation":      in.Motivation <= 5,
			"poor_learning":       in.LearningRate <= 5,
			"sleep_issues":        in.SleepQuality <= 6,
		},
	}

	switch {
	case score <= 10:
		c.Level = SeverityMinimal
		c.Description = "Neural efficiency maintained, technique stable"
		c.RecoveryTime = "days"
	case score <= 18:
		c.Level = SeverityModerate
		c.Description = "Some neural fatigue, minor technique degradation"
		c.RecoveryTime = "3-7 days"
	case score <= 26:
		c.Level = SeverityHigh
		c.Description = "Significant neural fatigue, noticeable force reduction"
		c.RecoveryTime = "1-2 weeks"
	default:
		c.Level = SeveritySevere
		c.Description = "Severe neural fatigue, major technique breakdowns"
		c.RecoveryTime = "2-4 weeks"
	}
	return c
}

// AssessMessengers scores hormonal and inflammatory disruption. Recovers in
// weeks to months.
func AssessMessengers(in models.MessengerInput, load TrainingLoad) Contributor {
	var volumeScore float64 = 2
	if load.WeeklyLoad > 1000 {
		volumeScore = 8
	} else if load.WeeklyLoad > 600 {
		volumeScore = 5
	}

	var inflammationScore float64 = 1
	if in.Inflammation >= 7 {
		inflammationScore = 6
	} else if in.Inflammation >= 5 {
		inflammationScore = 3
	}

	var hormoneScore float64 = 1
	if in.HormoneSymptoms >= 6 {
		hormoneScore = 4
	} else if in.HormoneSymptoms >= 4 {
		hormoneScore = 2
	}

	score := volumeScore + inflammationScore + hormoneScore + in.MoodSwings + (10 - in.RecoveryRate)

	c := Contributor{
		Category: "messengers",
		Score:    score,
		Proxies: map[string]bool{
			"elevated_inflammation": in.Inflammation >= 6,
			"hormone_disruption":    in.HormoneSymptoms >= 5,
			"mood_instability":      in.MoodSwings >= 6,
			"slow_recovery":         in.RecoveryRate <= 5,
			"chronic_soreness":      in.Soreness >= 7,
		},
	}

	switch {
	case score <= 12:
		c.Level = SeverityMinimal
		c.Description = "Hormonal balance maintained, normal inflammation"
		c.RecoveryTime = "weeks"
	case score <= 20:
		c.Level = SeverityModerate
		c.Description = "Some hormonal disruption, elevated inflammation"
		c.RecoveryTime = "2-3 weeks"
	case score <= 28:
		c.Level = SeverityHigh
		c.Description = "Significant hormonal imbalance, chronic inflammation"
		c.RecoveryTime = "4-6 weeks"
	default:
		c.Level = SeveritySevere
		c.Description = "Severe hormonal disruption, systemic inflammation"
		c.RecoveryTime = "6-12 weeks"
	}
	return c
}

// AssessTissues scores accumulated structural microdamage. The slowest
// category to recover, weeks to months.
func AssessTissues(in models.TissueInput, load TrainingLoad) Contributor {
	microtrauma := (in.JointPain + in.MuscleTightness + in.TendonIssues + in.OveruseSymptoms) / 4

	var loadScore float64 = 1
	if load.WeeklyLoad > 800 {
		loadScore = 4
	} else if load.WeeklyLoad > 400 {
		loadScore = 2
	}

	var historyScore float64 = 1
	if in.InjuryHistory >= 3 {
		historyScore = 3
	} else if in.InjuryHistory >= 1 {
		historyScore = 2
	}

	score := microtrauma + loadScore + historyScore

	c := Contributor{
		Category: "tissues",
		Score:    score,
		Proxies: map[string]bool{
			"joint_discomfort":    in.JointPain >= 6,
			"excessive_tightness": in.MuscleTightness >= 7,
			"tendon_problems":     in.TendonIssues >= 5,
			"overuse_pattern":     in.OveruseSymptoms >= 6,
			"injury_prone":        in.InjuryHistory >= 2,
		},
	}

	switch {
	case score <= 8:
		c.Level = SeverityMinimal
		c.Description = "Tissues adapting well, minimal structural stress"
		c.RecoveryTime = "weeks"
	case score <= 12:
		c.Level = SeverityModerate
		c.Description = "Some tissue stress, manageable with recovery protocols"
		c.RecoveryTime = "4-8 weeks"
	case score <= 16:
		c.Level = SeverityHigh
		c.Description = "Significant tissue stress, injury risk elevated"
		c.RecoveryTime = "2-4 months"
	default:
		c.Level = SeveritySevere
		c.Description = "Critical tissue stress, chronic injury likely"
		c.RecoveryTime = "4-12 months"
	}
	return c
}
