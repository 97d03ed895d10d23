package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_EveryComponentHasCategoryAndWeight(t *testing.T) {
	for _, c := range All() {
		assert.True(t, c.Valid(), "%s", c)
		assert.NotEmpty(t, CategoryOf(c), "%s has no category", c)
		w := WeightOf(c)
		assert.Contains(t, []Weight{WeightLight, WeightMedium, WeightHeavy}, w, "%s", c)
	}
}

func TestWeights_CoverTheWholeCatalog(t *testing.T) {
	// WeightOf falls back to medium, but the table itself should stay in
	// sync with the catalog so the fallback never fires for known types.
	for _, c := range All() {
		_, ok := weights[c]
		assert.True(t, ok, "%s missing from the weight table", c)
	}
}

func TestCategoryOf_UnknownFallsBackToCore(t *testing.T) {
	assert.Equal(t, CatCore, CategoryOf(Type("hologram-wall")))
}

func TestWeightOf_UnknownFallsBackToMedium(t *testing.T) {
	assert.Equal(t, WeightMedium, WeightOf(Type("hologram-wall")))
}

func TestValid(t *testing.T) {
	assert.True(t, IconList.Valid())
	assert.False(t, Type("").Valid())
	assert.False(t, Type("hologram-wall").Valid())
}
