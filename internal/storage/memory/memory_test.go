package memory

import (
	"cardhawk/internal/domain"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallet(t *testing.T) {
	ctx := context.Background()
	s := New()

	ids, found, err := s.GetWallet(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, ids)

	require.NoError(t, s.ReplaceWallet(ctx, 1, []string{"amex-gold", "amex-platinum"}))
	require.NoError(t, s.AddCard(ctx, 1, "citi-double-cash"))
	require.NoError(t, s.AddCard(ctx, 1, "citi-double-cash"))
	require.NoError(t, s.RemoveCard(ctx, 1, "amex-platinum"))

	ids, found, err = s.GetWallet(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"amex-gold", "citi-double-cash"}, ids)

	// an emptied wallet is still a saved wallet
	require.NoError(t, s.ReplaceWallet(ctx, 1, nil))
	ids, found, _ = s.GetWallet(ctx, 1)
	assert.True(t, found)
	assert.Empty(t, ids)

	_, found, _ = s.GetWallet(ctx, 2)
	assert.False(t, found)
}

func TestPointValues(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.SetPointValue(ctx, 1, "amex-gold", 1.8))
	assert.Error(t, s.SetPointValue(ctx, 1, "amex-gold", 0))

	pv, err := s.GetPointValues(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.PointValues{"amex-gold": 1.8}, pv)

	pv["amex-gold"] = 99
	again, _ := s.GetPointValues(ctx, 1)
	assert.Equal(t, 1.8, again["amex-gold"], "returned map is a copy")

	require.NoError(t, s.DeletePointValue(ctx, 1, "amex-gold"))
	pv, _ = s.GetPointValues(ctx, 1)
	assert.Empty(t, pv)
}

func TestRotatingSpend(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.SetRotatingSpend(ctx, 1, "discover-it-cash-back", "Q2-2025", 420))
	require.NoError(t, s.SetRotatingSpend(ctx, 1, "chase-freedom-flex", "Q2-2025", -10))

	rs, err := s.GetRotatingSpend(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 420.0, rs.Spent("discover-it-cash-back", "Q2-2025"))
	assert.Zero(t, rs.Spent("chase-freedom-flex", "Q2-2025"))
}

func TestQuickCategories(t *testing.T) {
	ctx := context.Background()
	s := New()

	qc, err := s.GetQuickCategories(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, qc)

	want := []domain.QuickCategory{{Category: "gas", Name: "Gas"}}
	require.NoError(t, s.SetQuickCategories(ctx, 1, want))
	qc, _ = s.GetQuickCategories(ctx, 1)
	assert.Equal(t, want, qc)
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.AddCard(ctx, 1, "amex-gold")
			_ = s.SetRotatingSpend(ctx, 1, "discover-it-cash-back", "Q1-2025", float64(n))
			_, _, _ = s.GetWallet(ctx, 1)
		}(i)
	}
	wg.Wait()

	ids, _, _ := s.GetWallet(ctx, 1)
	assert.Equal(t, []string{"amex-gold"}, ids)
}
