package engine

import (
	"math"
	"testing"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lbsRounding = models.Rounding{Increment: 5, Mode: models.RoundNearest, Units: models.UnitsLbs}

func TestBuildMainSetsWeekOne(t *testing.T) {
	sets, err := BuildMainSets(300, 0, 1, lbsRounding)
	require.NoError(t, err)
	require.Len(t, sets, 3)

	assert.Equal(t, []float64{195, 225, 255}, []float64{sets[0].Weight, sets[1].Weight, sets[2].Weight})
	assert.Equal(t, []int{5, 5, 5}, []int{sets[0].Reps, sets[1].Reps, sets[2].Reps})
	assert.False(t, sets[0].AMRAP)
	assert.False(t, sets[1].AMRAP)
	assert.True(t, sets[2].AMRAP)
}

func TestBuildMainSetsDeload(t *testing.T) {
	for _, option := range []int{1, 2} {
		deload, err := BuildMainSets(300, DeloadWeekIndex, option, lbsRounding)
		require.NoError(t, err)

		var deloadTop float64
		for _, s := range deload {
			assert.False(t, s.AMRAP, "deload must not carry an AMRAP set")
			if s.Weight > deloadTop {
				deloadTop = s.Weight
			}
		}

		// Deload weights stay strictly below every training week's top set.
		for week := 0; week < DeloadWeekIndex; week++ {
			sets, err := BuildMainSets(300, week, option, lbsRounding)
			require.NoError(t, err)
			assert.Less(t, deloadTop, sets[len(sets)-1].Weight)
		}
	}
}

func TestBuildMainSetsWeightsAreRounded(t *testing.T) {
	// An awkward TM still produces weights that are plate-increment multiples.
	for week := 0; week <= DeloadWeekIndex; week++ {
		sets, err := BuildMainSets(287.5, week, 1, lbsRounding)
		require.NoError(t, err)
		for _, s := range sets {
			rem := math.Mod(s.Weight, 5)
			assert.True(t, rem < 1e-9 || 5-rem < 1e-9, "weight %.2f not a multiple of 5", s.Weight)
		}
	}
}

func TestBuildMainSetsErrors(t *testing.T) {
	_, err := BuildMainSets(0, 0, 1, lbsRounding)
	assert.ErrorIs(t, err, ErrMissingTrainingMax)

	_, err = BuildMainSets(300, 0, 3, lbsRounding)
	assert.Error(t, err)

	_, err = BuildMainSets(300, 4, 1, lbsRounding)
	assert.Error(t, err)
}

func TestBuildWarmupSets(t *testing.T) {
	sets, err := BuildWarmupSets(300, models.DefaultWarmupScheme(), lbsRounding)
	require.NoError(t, err)
	require.Len(t, sets, 3)

	assert.Equal(t, []float64{120, 150, 180}, []float64{sets[0].Weight, sets[1].Weight, sets[2].Weight})
	assert.Equal(t, []int{5, 5, 3}, []int{sets[0].Reps, sets[1].Reps, sets[2].Reps})
	for _, s := range sets {
		assert.False(t, s.AMRAP)
	}
}

func TestBuildWarmupSetsMissingTM(t *testing.T) {
	_, err := BuildWarmupSets(0, models.DefaultWarmupScheme(), lbsRounding)
	assert.ErrorIs(t, err, ErrMissingTrainingMax)
}

func TestSchemeForCopies(t *testing.T) {
	rows, err := SchemeFor(1, 0)
	require.NoError(t, err)
	rows[0].Percent = 1

	again, err := SchemeFor(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 65.0, again[0].Percent)
}
