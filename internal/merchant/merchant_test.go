package merchant

import (
	"cardhawk/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorySize(t *testing.T) {
	assert.Len(t, directory, 36)
}

func TestSearch(t *testing.T) {
	assert.Empty(t, Search("s"), "one character is too short")
	assert.Empty(t, Search("  "))

	found := Search("star")
	require.NotEmpty(t, found)
	assert.Equal(t, "Starbucks", found[0].Name)

	// matches on type too
	airlines := Search("airline")
	assert.Len(t, airlines, 4)

	assert.LessOrEqual(t, len(Search("er")), MaxResults)
}

func TestLookupAndCategory(t *testing.T) {
	m, ok := Lookup("whole foods")
	require.True(t, ok)
	assert.Equal(t, domain.CategoryGrocery, m.Category)

	assert.Equal(t, domain.CategoryOther, CategoryFor("Costco"))
	assert.Equal(t, domain.CategoryFlights, CategoryFor("DELTA AIR LINES"))
	assert.Equal(t, domain.CategoryOther, CategoryFor("Corner Bodega"))
}
