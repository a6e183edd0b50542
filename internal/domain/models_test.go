package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCard() Card {
	return Card{
		ID:         "test-card",
		Network:    NetworkVisa,
		PointValue: 1.5,
		EarningRates: []EarningRate{
			{Category: CategoryDining, Rate: 3, Description: "3x dining"},
			{Category: CategoryOther, Rate: 1.5, Description: "1.5x everything"},
		},
	}
}

func TestResolveRate(t *testing.T) {
	card := testCard()

	rate, er := card.ResolveRate(CategoryDining)
	assert.Equal(t, 3.0, rate)
	require.NotNil(t, er)
	assert.Equal(t, "3x dining", er.Description)

	rate, er = card.ResolveRate(CategoryGas)
	assert.Equal(t, 1.5, rate)
	require.NotNil(t, er)
	assert.Equal(t, CategoryOther, er.Category)

	bare := Card{ID: "bare"}
	rate, er = bare.ResolveRate(CategoryGas)
	assert.Equal(t, BaseEarningRate, rate)
	assert.Nil(t, er)
}

func TestExplicitRateHasNoFallback(t *testing.T) {
	card := testCard()
	assert.Nil(t, card.ExplicitRate(CategoryGas))
	assert.NotNil(t, card.ExplicitRate(CategoryOther))
}

func TestPointValuesFor(t *testing.T) {
	card := testCard()

	assert.Equal(t, 1.5, PointValues(nil).For(card))
	assert.Equal(t, 2.2, PointValues{"test-card": 2.2}.For(card))
	assert.Equal(t, 1.5, PointValues{"test-card": 0}.For(card), "non-positive override is ignored")
	assert.Equal(t, 1.5, PointValues{"other-card": 9}.For(card))
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Dining", CategoryName(CategoryDining))
	assert.Equal(t, "Everything Else", CategoryName(CategoryOther))
	assert.Equal(t, "Everything Else", CategoryName("pet-supplies"))
}

func TestRotatingSpend(t *testing.T) {
	rs := RotatingSpend{SpendKey("discover-it-cash-back", "Q2-2025"): 420}
	assert.Equal(t, "discover-it-cash-back|Q2-2025", SpendKey("discover-it-cash-back", "Q2-2025"))
	assert.Equal(t, 420.0, rs.Spent("discover-it-cash-back", "Q2-2025"))
	assert.Zero(t, rs.Spent("discover-it-cash-back", "Q3-2025"))
}

func TestNetworkIsValid(t *testing.T) {
	for _, n := range Networks {
		assert.True(t, n.IsValid(), n)
	}
	assert.False(t, Network("Diners Club").IsValid())
	assert.False(t, Network("visa").IsValid())
}
