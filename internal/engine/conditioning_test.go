package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickConditioningByFrequency(t *testing.T) {
	tests := []struct {
		frequency int
		want      string
	}{
		{2, "liss_walk_30"},
		{3, "hiit_hills"},
		{4, "mixed_2_1"},
		{5, "mixed_2_1"},
	}

	for _, tt := range tests {
		block, err := PickConditioning(tt.frequency, "")
		require.NoError(t, err)
		assert.Equal(t, tt.want, block.TemplateID, "frequency %d", tt.frequency)
	}
}

func TestPickConditioningOverride(t *testing.T) {
	block, err := PickConditioning(4, "liss_bike_40")
	require.NoError(t, err)
	assert.Equal(t, "liss_bike_40", block.TemplateID)
}

func TestPickConditioningUnknownOverride(t *testing.T) {
	_, err := PickConditioning(3, "crossfit_wod")
	assert.ErrorContains(t, err, "unknown conditioning template")
}
