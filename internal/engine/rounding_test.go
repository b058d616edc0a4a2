package engine

import (
	"testing"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		cfg  models.Rounding
		want float64
	}{
		{"nearest down", 197.4, models.Rounding{Increment: 5, Mode: models.RoundNearest}, 195},
		{"nearest up", 197.6, models.Rounding{Increment: 5, Mode: models.RoundNearest}, 200},
		{"up mode", 191, models.Rounding{Increment: 5, Mode: models.RoundUp}, 195},
		{"down mode", 199, models.Rounding{Increment: 5, Mode: models.RoundDown}, 195},
		{"kg increment", 61.3, models.Rounding{Increment: 2.5, Mode: models.RoundNearest, Units: models.UnitsKg}, 62.5},
		{"zero increment falls back to default", 197.4, models.Rounding{}, 195},
		{"exact multiple unchanged", 225, models.Rounding{Increment: 5}, 225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round(tt.in, tt.cfg), 1e-9)
		})
	}
}

func TestEffectiveTM(t *testing.T) {
	cfg := models.Rounding{Increment: 5, Mode: models.RoundNearest, Units: models.UnitsLbs}

	assert.InDelta(t, 315, EffectiveTM(350, 90, cfg), 1e-9)
	assert.InDelta(t, 315, EffectiveTM(350, 0, cfg), 1e-9) // default 90%
	assert.Zero(t, EffectiveTM(0, 90, cfg))
	assert.Zero(t, EffectiveTM(-100, 90, cfg))
}

func TestEstimate1RM(t *testing.T) {
	assert.InDelta(t, 299.9, Estimate1RM(250, 6), 0.01) // 250*6*0.0333 + 250
	assert.Zero(t, Estimate1RM(0, 5))
	assert.Zero(t, Estimate1RM(250, 0))
}
