package engine

import (
	"encoding/json"
	"testing"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() models.ProgramConfig {
	return models.ProgramConfig{
		Name:          "test cycle",
		TemplateID:    TemplateBBB,
		LoadingOption: 1,
		Units:         models.UnitsLbs,
		TrainingMaxes: map[string]float64{
			models.LiftPress:    200,
			models.LiftDeadlift: 450,
			models.LiftBench:    300,
			models.LiftSquat:    400,
		},
		Rounding: models.Rounding{Increment: 5, Mode: models.RoundNearest, Units: models.UnitsLbs},
		Schedule: models.Schedule{
			Frequency:      4,
			Order:          []string{models.LiftPress, models.LiftDeadlift, models.LiftBench, models.LiftSquat},
			IncludeWarmups: true,
			WarmupScheme:   models.DefaultWarmupScheme(),
		},
		Supplemental: models.Supplemental{
			Strategy:    models.SupplementalBBB,
			Sets:        5,
			Reps:        10,
			PercentOfTM: 60,
			Pairing:     models.PairingSame,
		},
	}
}

func TestValidateConfigOK(t *testing.T) {
	assert.Empty(t, ValidateConfig(validConfig()))
}

func TestValidateConfigCollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	delete(cfg.TrainingMaxes, models.LiftSquat)
	cfg.Schedule.Frequency = 5
	cfg.Supplemental.PercentOfTM = 80
	cfg.LoadingOption = 3
	cfg.Conditioning = "nope"

	violations := ValidateConfig(cfg)
	require.Len(t, violations, 6)

	joined := ""
	for _, v := range violations {
		joined += v + "\n"
	}
	assert.Contains(t, joined, "training max for squat")
	assert.Contains(t, joined, "frequency must be 2, 3 or 4")
	assert.Contains(t, joined, "order length 4 must match frequency 5")
	assert.Contains(t, joined, "percent of TM must be 50-70")
	assert.Contains(t, joined, "loading option must be 1 or 2")
	assert.Contains(t, joined, `unknown conditioning template "nope"`)
}

func TestValidateConfigDuplicateLift(t *testing.T) {
	cfg := validConfig()
	cfg.Schedule.Frequency = 2
	cfg.Schedule.Order = []string{models.LiftSquat, models.LiftSquat}

	violations := ValidateConfig(cfg)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "more than once")
}

func TestValidateConfigWarmupScheme(t *testing.T) {
	cfg := validConfig()
	cfg.Schedule.WarmupScheme = models.WarmupScheme{Percentages: []float64{40, 50}, Reps: []int{5}}

	violations := ValidateConfig(cfg)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "warm-up scheme")

	// Disabled warm-ups skip the check entirely.
	cfg.Schedule.IncludeWarmups = false
	assert.Empty(t, ValidateConfig(cfg))
}

func TestAssembleProgramStructure(t *testing.T) {
	doc, err := AssembleProgram(validConfig())
	require.NoError(t, err)

	assert.Equal(t, models.SchemaVersion, doc.Meta.SchemaVersion)
	assert.Equal(t, CatalogVersion, doc.Meta.CatalogVersion)
	require.Len(t, doc.Weeks, WeeksPerCycle)

	for wi, week := range doc.Weeks {
		assert.Equal(t, wi+1, week.Week)
		assert.Equal(t, wi == DeloadWeekIndex, week.Deload)
		require.Len(t, week.Days, 4)

		for di, day := range week.Days {
			assert.Equal(t, validConfig().Schedule.Order[di], day.Lift)
			assert.Len(t, day.Warmups, 3)
			assert.Len(t, day.Main, 3)
			require.NotNil(t, day.Supplemental)
			assert.Equal(t, day.Lift, day.Supplemental.TargetLift)
			assert.NotNil(t, day.Assistance)
			assert.Equal(t, "mixed_2_1", day.Conditioning.TemplateID)

			if week.Deload {
				for _, s := range day.Main {
					assert.False(t, s.AMRAP)
				}
			} else {
				assert.True(t, day.Main[len(day.Main)-1].AMRAP)
			}
		}
	}
}

func TestAssembleProgramValidationError(t *testing.T) {
	cfg := validConfig()
	cfg.TrainingMaxes[models.LiftBench] = 0
	cfg.LoadingOption = 9

	_, err := AssembleProgram(cfg)
	require.Error(t, err)

	verr, ok := AsValidation(err)
	require.True(t, ok)
	assert.Len(t, verr.Violations, 2)
}

func TestAssembleProgramJSONRoundTrip(t *testing.T) {
	doc, err := AssembleProgram(validConfig())
	require.NoError(t, err)

	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded models.ExportedProgramDocument
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, doc.Weeks, decoded.Weeks)
	assert.Equal(t, doc.TrainingMaxes, decoded.TrainingMaxes)
}

func TestAssembleProgramJackShit(t *testing.T) {
	cfg := validConfig()
	cfg.TemplateID = TemplateJackShit
	cfg.Supplemental = models.Supplemental{Strategy: models.SupplementalNone}
	cfg.Schedule.IncludeWarmups = false

	doc, err := AssembleProgram(cfg)
	require.NoError(t, err)

	for _, week := range doc.Weeks {
		for _, day := range week.Days {
			assert.Empty(t, day.Warmups)
			assert.Len(t, day.Main, 3)
			assert.Nil(t, day.Supplemental)
			assert.Empty(t, day.Assistance)
		}
	}
}
