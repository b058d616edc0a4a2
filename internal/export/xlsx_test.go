package export

import (
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDocument() *models.ExportedProgramDocument {
	return &models.ExportedProgramDocument{
		Meta: models.DocumentMeta{
			SchemaVersion: models.SchemaVersion,
			TemplateID:    "bbb",
			Units:         models.UnitsLbs,
			LoadingOption: 1,
		},
		Weeks: []models.ProgramWeek{
			{
				Week: 1,
				Days: []models.ProgramDay{
					{
						Lift:        models.LiftSquat,
						TrainingMax: 300,
						Warmups: []models.SetPrescription{
							{Percent: 40, Reps: 5, Weight: 120},
						},
						Main: []models.SetPrescription{
							{Percent: 65, Reps: 5, Weight: 195},
							{Percent: 75, Reps: 5, Weight: 225},
							{Percent: 85, Reps: 5, Weight: 255, AMRAP: true},
						},
						Supplemental: &models.SupplementalBlock{
							Type:        "bbb",
							TargetLift:  models.LiftSquat,
							Sets:        5,
							Reps:        10,
							PercentOfTM: 60,
							Weight:      180,
							Units:       models.UnitsLbs,
						},
						Assistance: []models.AssistanceItem{
							{ID: "leg_curl", Name: "Leg Curl", Category: "posterior", Sets: 5, Reps: "10"},
						},
						Conditioning: models.ConditioningBlock{
							TemplateID: "liss_walk_30",
							Minutes:    30,
						},
					},
				},
			},
			{
				Week:   4,
				Deload: true,
				Days: []models.ProgramDay{
					{
						Lift:        models.LiftBench,
						TrainingMax: 200,
						Main: []models.SetPrescription{
							{Percent: 40, Reps: 5, Weight: 80},
						},
					},
				},
			},
		},
	}
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.xlsx")
	require.NoError(t, WriteXLSX(sampleDocument(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Week 1", "Week 4 (deload)"}, f.GetSheetList())

	lift, err := f.GetCellValue("Week 1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "squat (TM 300.0 lbs)", lift)

	block, err := f.GetCellValue("Week 1", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Block", block)

	// Warm-up row comes first, final main set carries the AMRAP marker.
	warmup, err := f.GetCellValue("Week 1", "A3")
	require.NoError(t, err)
	assert.Equal(t, "warm-up", warmup)

	amrap, err := f.GetCellValue("Week 1", "C6")
	require.NoError(t, err)
	assert.Equal(t, "5+", amrap)

	weight, err := f.GetCellValue("Week 1", "D6")
	require.NoError(t, err)
	assert.Equal(t, "255", weight)

	supplemental, err := f.GetCellValue("Week 1", "A7")
	require.NoError(t, err)
	assert.Equal(t, "bbb", supplemental)

	conditioning, err := f.GetCellValue("Week 1", "A9")
	require.NoError(t, err)
	assert.Equal(t, "conditioning: liss_walk_30", conditioning)
}

func TestWriteXLSXDeloadSheetContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.xlsx")
	require.NoError(t, WriteXLSX(sampleDocument(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	reps, err := f.GetCellValue("Week 4 (deload)", "C3")
	require.NoError(t, err)
	assert.Equal(t, "5", reps, "deload sets carry no AMRAP marker")
}
