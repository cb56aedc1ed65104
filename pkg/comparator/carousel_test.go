// pkg/comparator/carousel_test.go
package comparator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stripFixture() *Strip {
	return NewStrip([]StripItem{
		{Product: ProductSummary{ID: "1", Name: "Sharp TV"}, Categories: []string{"tv"}},
		{Product: ProductSummary{ID: "2", Name: "Sharp Soundbar"}, Categories: []string{"audio"}},
		{Product: ProductSummary{ID: "3", Name: "Sharp Monitor TV"}, Categories: []string{"tv", "monitors"}},
	})
}

func TestStripStartsHidden(t *testing.T) {
	strip := stripFixture()

	assert.Equal(t, "", strip.ActivePill())
	assert.Nil(t, strip.Visible())
}

func TestStripPillFiltersByCategory(t *testing.T) {
	strip := stripFixture()

	visible := strip.TogglePill("tv")
	assert.True(t, visible)

	items := strip.Visible()
	assert.Len(t, items, 2)
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, "3", items[1].Product.ID)
}

func TestStripAllPillShowsEverything(t *testing.T) {
	strip := stripFixture()

	strip.TogglePill(PillAll)
	assert.Len(t, strip.Visible(), 3)
}

func TestStripPillsAreMutuallyExclusive(t *testing.T) {
	strip := stripFixture()

	strip.TogglePill("tv")
	strip.TogglePill("audio")

	assert.Equal(t, "audio", strip.ActivePill())
	items := strip.Visible()
	assert.Len(t, items, 1)
	assert.Equal(t, "2", items[0].Product.ID)
}

func TestStripToggleActivePillHides(t *testing.T) {
	strip := stripFixture()

	strip.TogglePill("tv")
	visible := strip.TogglePill("tv")

	assert.False(t, visible)
	assert.Nil(t, strip.Visible())
}
