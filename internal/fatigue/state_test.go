package fatigue

import (
	"testing"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contributor(level string, score float64) Contributor {
	return Contributor{Level: level, Score: score}
}

func TestDetermineStateCascade(t *testing.T) {
	minimal := contributor(SeverityMinimal, 5)

	tests := []struct {
		name         string
		contributors [4]Contributor
		want         string
	}{
		{
			"all minimal is normal",
			[4]Contributor{minimal, minimal, minimal, minimal},
			StateNormal,
		},
		{
			"one high is functional overreaching",
			[4]Contributor{contributor(SeverityHigh, 20), minimal, minimal, minimal},
			StateFOR,
		},
		{
			"high average without high levels is functional overreaching",
			[4]Contributor{contributor(SeverityModerate, 19), contributor(SeverityModerate, 19), contributor(SeverityModerate, 19), contributor(SeverityModerate, 19)},
			StateFOR,
		},
		{
			"two high is non-functional overreaching",
			[4]Contributor{contributor(SeverityHigh, 20), contributor(SeverityHigh, 21), minimal, minimal},
			StateNFOR,
		},
		{
			"one severe is non-functional overreaching",
			[4]Contributor{contributor(SeveritySevere, 24), minimal, minimal, minimal},
			StateNFOR,
		},
		{
			"max score above 25 is non-functional overreaching",
			[4]Contributor{contributor(SeverityModerate, 26), minimal, minimal, minimal},
			StateNFOR,
		},
		{
			"two severe is overtraining",
			[4]Contributor{contributor(SeveritySevere, 24), contributor(SeveritySevere, 24), minimal, minimal},
			StateOvertraining,
		},
		{
			"max score above 30 is overtraining",
			[4]Contributor{contributor(SeverityModerate, 31), minimal, minimal, minimal},
			StateOvertraining,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.contributors
			st := DetermineState(c[0], c[1], c[2], c[3])
			assert.Equal(t, tt.want, st.State)
			assert.NotEmpty(t, st.Action)
		})
	}
}

func TestDetermineStateRiskLevel(t *testing.T) {
	minimal := contributor(SeverityMinimal, 5)

	st := DetermineState(contributor(SeveritySevere, 24), minimal, minimal, minimal)
	assert.Equal(t, "high", st.RiskLevel)

	st = DetermineState(contributor(SeverityHigh, 20), contributor(SeverityHigh, 20), minimal, minimal)
	assert.Equal(t, "moderate", st.RiskLevel)

	st = DetermineState(minimal, minimal, minimal, minimal)
	assert.Equal(t, "low", st.RiskLevel)
}

func TestManagementStrategiesByState(t *testing.T) {
	calm := models.Lifestyle{SleepHours: 8, Stress: 3}

	normal := ManagementStrategies(OverallState{State: StateNormal}, calm)
	assert.Empty(t, normal)

	forState := ManagementStrategies(OverallState{State: StateFOR}, calm)
	assert.Equal(t, []string{"light_sessions", "deload"}, strategyTypes(forState))

	ot := ManagementStrategies(OverallState{State: StateOvertraining}, calm)
	assert.Equal(t, []string{"deload", "active_rest"}, strategyTypes(ot))
}

func TestManagementStrategiesLifestyle(t *testing.T) {
	rough := models.Lifestyle{SleepHours: 5, Stress: 9}

	got := strategyTypes(ManagementStrategies(OverallState{State: StateNormal}, rough))
	assert.Equal(t, []string{"sleep_optimization", "stress_management"}, got)
}

func strategyTypes(strategies []Strategy) []string {
	types := make([]string, 0, len(strategies))
	for _, s := range strategies {
		types = append(types, s.Type)
	}
	return types
}

func TestAssessEndToEnd(t *testing.T) {
	// A wrecked lifter: depleted, flat, inflamed, sore, after a huge week.
	in := models.FatigueInput{
		Fuel:       models.FuelInput{GlycogenStores: 2, MuscleFullness: 3, EnergyLevels: 2, PostWorkoutFatigue: 8},
		Nervous:    models.NervousInput{ForceOutput: 3, TechniqueQuality: 4, Motivation: 2, LearningRate: 3, SleepQuality: 3},
		Messengers: models.MessengerInput{MoodSwings: 8, Inflammation: 8, HormoneSymptoms: 7, RecoveryRate: 2, Soreness: 9},
		Tissues:    models.TissueInput{JointPain: 8, MuscleTightness: 8, TendonIssues: 7, OveruseSymptoms: 8, InjuryHistory: 4},
	}
	load := WeeklyLoad(models.OverloadInput{Sets: 25, Reps: 8, Intensity: 90, Frequency: 6, FailureProximity: 1})
	lifestyle := models.Lifestyle{SleepHours: 5, Stress: 9}

	report := Assess(in, load, lifestyle)

	require.Len(t, report.Contributors, 4)
	assert.Equal(t, StateOvertraining, report.OverallState.State)
	assert.Contains(t, strategyTypes(report.Strategies), "deload")
	assert.Contains(t, strategyTypes(report.Strategies), "active_rest")
	assert.Contains(t, strategyTypes(report.Strategies), "sleep_optimization")
	require.Contains(t, report.Timeline, "tissues")
	assert.Equal(t, "long-term", report.Timeline["tissues"].Priority)
}

func TestAssessHealthyLifter(t *testing.T) {
	in := models.FatigueInput{
		Fuel:       models.FuelInput{GlycogenStores: 9, MuscleFullness: 9, EnergyLevels: 9, PostWorkoutFatigue: 2},
		Nervous:    models.NervousInput{ForceOutput: 9, TechniqueQuality: 9, Motivation: 9, LearningRate: 8, SleepQuality: 8},
		Messengers: models.MessengerInput{MoodSwings: 1, Inflammation: 2, HormoneSymptoms: 1, RecoveryRate: 9, Soreness: 2},
		Tissues:    models.TissueInput{JointPain: 1, MuscleTightness: 2, TendonIssues: 1, OveruseSymptoms: 1, InjuryHistory: 0},
	}
	load := WeeklyLoad(models.OverloadInput{Sets: 12, Reps: 5, Intensity: 75, Frequency: 3, FailureProximity: 3})
	lifestyle := models.Lifestyle{SleepHours: 8, Stress: 3}

	report := Assess(in, load, lifestyle)

	assert.Equal(t, StateNormal, report.OverallState.State)
	assert.Empty(t, report.Strategies)
	for _, c := range report.Contributors {
		assert.Equal(t, SeverityMinimal, c.Level, c.Category)
	}
}
