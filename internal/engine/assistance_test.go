package engine

import (
	"testing"

	"github.com/misterclayt0n/forja/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAssistanceJackShit(t *testing.T) {
	ResetAssistanceCache()

	items := SelectAssistance(TemplateJackShit, models.LiftSquat)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSelectAssistanceTriumviratePicksTwo(t *testing.T) {
	ResetAssistanceCache()

	for _, lift := range models.CanonicalLifts {
		items := SelectAssistance(TemplateTriumvirate, lift)
		assert.Len(t, items, 2, "triumvirate should pick exactly two for %s", lift)
	}
}

func TestSelectAssistanceBodyweightOnly(t *testing.T) {
	ResetAssistanceCache()

	for _, lift := range models.CanonicalLifts {
		for _, item := range SelectAssistance(TemplateBodyweight, lift) {
			entry, ok := CatalogEntryByID(item.ID)
			require.True(t, ok)
			assert.True(t, hasTag(entry, "bodyweight"), "%s is not a bodyweight movement", item.ID)
		}
	}
}

func TestSelectAssistanceDeterministic(t *testing.T) {
	ResetAssistanceCache()

	first := SelectAssistance(TemplatePeriodizationBible, models.LiftBench)
	second := SelectAssistance(TemplatePeriodizationBible, models.LiftBench)
	assert.Equal(t, first, second)
}

func TestSelectAssistanceMemoizes(t *testing.T) {
	ResetAssistanceCache()
	require.Zero(t, AssistanceCacheSize())

	SelectAssistance(TemplateBBB, models.LiftSquat)
	assert.Equal(t, 1, AssistanceCacheSize())

	// Same key again must not grow the cache.
	SelectAssistance(TemplateBBB, models.LiftSquat)
	assert.Equal(t, 1, AssistanceCacheSize())

	SelectAssistance(TemplateBBB, models.LiftBench)
	assert.Equal(t, 2, AssistanceCacheSize())
}

func TestSelectAssistanceReturnsCopies(t *testing.T) {
	ResetAssistanceCache()

	items := SelectAssistance(TemplateBBB, models.LiftPress)
	require.NotEmpty(t, items)
	items[0].Name = "mutated"

	again := SelectAssistance(TemplateBBB, models.LiftPress)
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestSelectAssistanceUnknownTemplateFallsBack(t *testing.T) {
	ResetAssistanceCache()

	items := SelectAssistance("custom", models.LiftPress)
	assert.NotEmpty(t, items)
}

func TestCatalogCategoriesNonEmpty(t *testing.T) {
	for _, category := range []string{CategoryPush, CategoryPull, CategorySingleLeg, CategoryPosterior, CategoryCore} {
		assert.NotEmpty(t, CatalogByCategory(category), "category %s has no entries", category)
	}
}
