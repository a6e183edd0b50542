package recommend

import (
	"cardhawk/internal/catalog"
	"cardhawk/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultWallet(t *testing.T) []domain.Card {
	t.Helper()
	cards, err := catalog.MustDefault().Resolve(catalog.DefaultWalletIDs)
	require.NoError(t, err)
	return cards
}

func TestCalculateDining(t *testing.T) {
	recs := Calculate(defaultWallet(t), domain.CategoryDining, 100, nil)
	require.Len(t, recs, 3)

	best := recs[0]
	assert.Equal(t, "amex-gold", best.Card.ID)
	assert.Equal(t, 4.0, best.EarningRate)
	assert.Equal(t, 400.0, best.PointsEarned)
	assert.InDelta(t, 8.00, best.DollarValue, 1e-9)
	assert.True(t, best.IsWinner)
	assert.Equal(t, 1, best.Rank)

	for i, rec := range recs {
		assert.Equal(t, i+1, rec.Rank)
		assert.Equal(t, i == 0, rec.IsWinner)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].DollarValue, rec.DollarValue)
		}
	}
}

func TestCalculateCustomPointValue(t *testing.T) {
	recs := Calculate(defaultWallet(t), domain.CategoryDining, 100, domain.PointValues{"amex-gold": 1.0})
	for _, rec := range recs {
		if rec.Card.ID == "amex-gold" {
			assert.InDelta(t, 4.00, rec.DollarValue, 1e-9)
			assert.Equal(t, 1.0, rec.PointValue)
		}
	}
}

func TestCalculateFallbackExplanation(t *testing.T) {
	card := domain.Card{ID: "bare", PointValue: 1}
	recs := Calculate([]domain.Card{card}, domain.CategoryGas, 50, nil)
	require.Len(t, recs, 1)
	assert.Equal(t, "Base earning rate of 1x points", recs[0].Explanation)
	assert.InDelta(t, 0.5, recs[0].DollarValue, 1e-9)
}

func TestCalculateTiesKeepInputOrder(t *testing.T) {
	a := domain.Card{ID: "a", PointValue: 1, EarningRates: []domain.EarningRate{{Category: "other", Rate: 2}}}
	b := domain.Card{ID: "b", PointValue: 1, EarningRates: []domain.EarningRate{{Category: "other", Rate: 2}}}

	recs := Calculate([]domain.Card{a, b}, domain.CategoryGas, 100, nil)
	assert.Equal(t, "a", recs[0].Card.ID)
	assert.Equal(t, "b", recs[1].Card.ID)

	recs = Calculate([]domain.Card{b, a}, domain.CategoryGas, 100, nil)
	assert.Equal(t, "b", recs[0].Card.ID)
}

func TestCalculateEdgeCases(t *testing.T) {
	recs := Calculate(nil, domain.CategoryDining, 100, nil)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
	_, ok := Best(recs)
	assert.False(t, ok)

	recs = Calculate(defaultWallet(t), domain.CategoryDining, 0, nil)
	for _, rec := range recs {
		assert.Zero(t, rec.DollarValue)
	}
	assert.True(t, recs[0].IsWinner)
}

func TestCalculateIsIdempotent(t *testing.T) {
	cards := defaultWallet(t)
	first := Calculate(cards, domain.CategoryFlights, 250, nil)
	second := Calculate(cards, domain.CategoryFlights, 250, nil)
	assert.Equal(t, first, second)
}

func TestCompare(t *testing.T) {
	c := catalog.MustDefault()
	cards, err := c.Resolve([]string{"amex-gold", "citi-double-cash"})
	require.NoError(t, err)

	cmp, err := Compare(cards, []string{domain.CategoryDining, domain.CategoryGas, domain.CategoryHotels})
	require.NoError(t, err)
	require.Len(t, cmp.Rows, 3)

	dining := cmp.Rows[0]
	assert.Equal(t, "Dining", dining.Name)
	assert.Equal(t, []float64{4, 0}, dining.Rates)
	assert.Equal(t, []bool{true, false}, dining.Winners)

	// explicit rates only: neither card lists gas
	gas := cmp.Rows[1]
	assert.Equal(t, []float64{0, 0}, gas.Rates)
	assert.Equal(t, []bool{false, false}, gas.Winners)
}

func TestCompareDefaultsAndErrors(t *testing.T) {
	cards := defaultWallet(t)

	cmp, err := Compare(cards, nil)
	require.NoError(t, err)
	assert.Len(t, cmp.Rows, len(domain.CoreCategories))

	_, err = Compare(cards[:1], nil)
	assert.ErrorIs(t, err, ErrTooFewCards)
}
