package rotating

import (
	"cardhawk/internal/catalog"
	"cardhawk/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScheduleMatchesCatalog(t *testing.T) {
	c := catalog.MustDefault()
	for _, cs := range DefaultSchedule {
		assert.True(t, c.Contains(cs.CardID), cs.CardID)
		for key, entry := range cs.Quarters {
			_, _, err := ParseQuarterKey(key)
			assert.NoError(t, err, key)
			assert.Equal(t, 5.0, entry.Rate)
			assert.Equal(t, 1500.0, entry.Cap)
		}
	}
}

func TestQuarterCategoryFor(t *testing.T) {
	entry, ok := DefaultSchedule.QuarterCategoryFor("discover-it-cash-back", "Q2-2025")
	require.True(t, ok)
	assert.NotEmpty(t, entry.Category)

	_, ok = DefaultSchedule.QuarterCategoryFor("discover-it-cash-back", "Q1-2030")
	assert.False(t, ok)
	_, ok = DefaultSchedule.QuarterCategoryFor("amex-gold", "Q2-2025")
	assert.False(t, ok)

	assert.True(t, DefaultSchedule.Has("chase-freedom-flex"))
	assert.False(t, DefaultSchedule.Has("amex-gold"))
}

func TestOverview(t *testing.T) {
	spend := domain.RotatingSpend{domain.SpendKey("discover-it-cash-back", "Q2-2025"): 600}
	now := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)

	overview := DefaultSchedule.Overview(spend, now)
	require.Len(t, overview, len(DefaultSchedule))

	first := overview[0]
	assert.Equal(t, "discover-it-cash-back", first.CardID)
	assert.Equal(t, "Q2-2025", first.Quarter)
	require.NotNil(t, first.Current)
	require.NotNil(t, first.Progress)
	assert.Equal(t, 600.0, first.Progress.Spent)
	require.NotNil(t, first.Next)
	assert.Equal(t, "Q3 2025", first.Next.Quarter)
	assert.Equal(t, domain.CategoryDining, first.Next.CategoryKey)

	// other card has no spend recorded
	require.NotNil(t, overview[1].Progress)
	assert.True(t, overview[1].Progress.NeedsActivation)
}

func TestOverviewOutsideSchedule(t *testing.T) {
	overview := DefaultSchedule.Overview(nil, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC))
	for _, ov := range overview {
		assert.NotNil(t, ov.Current)
		assert.Nil(t, ov.Next, "Q1-2026 is not announced")
	}
}
