package handler

import (
	"bytes"
	"cardhawk/internal/auth"
	"cardhawk/internal/catalog"
	"cardhawk/internal/config"
	"cardhawk/internal/rotating"
	"cardhawk/internal/service"
	"cardhawk/internal/storage/memory"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	tokens *auth.TokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	advisor := service.NewAdvisor(catalog.MustDefault(), memory.New(), rotating.DefaultSchedule)
	tokens := auth.NewTokenService(config.Config{JWTSecret: "test-secret", JWTExpiresIn: time.Hour})
	return &testServer{router: NewRouter(New(advisor, 100), tokens), tokens: tokens}
}

// do sends a request and decodes the JSON response into out when out is not nil.
func (s *testServer) do(t *testing.T, method, path string, userID int64, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		token, err := s.tokens.GenerateToken(userID)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestHealthAndCatalog(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/health", 0, nil, nil))

	var cards []map[string]any
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/cards", 0, nil, &cards))
	assert.Len(t, cards, 19)

	var card map[string]any
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/cards/amex-gold", 0, nil, &card))
	assert.Equal(t, "American Express", card["network"])

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/v1/cards/ghost", 0, nil, nil))
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	var resp map[string]string
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/login", 0, gin.H{"user_id": 9}, &resp))
	userID, err := s.tokens.ParseToken(resp["token"])
	require.NoError(t, err)
	assert.Equal(t, int64(9), userID)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/login", 0, gin.H{}, nil))
}

type recommendResponse struct {
	Category        string `json:"category"`
	Amount          float64
	Merchant        string `json:"merchant"`
	Recommendations []struct {
		Card struct {
			ID string `json:"id"`
		} `json:"card"`
		DollarValue float64 `json:"dollar_value"`
		IsWinner    bool    `json:"is_winner"`
	} `json:"recommendations"`
	Rejected []map[string]any `json:"rejected"`
}

func TestRecommend(t *testing.T) {
	s := newTestServer(t)

	var resp recommendResponse
	code := s.do(t, http.MethodGet, "/api/v1/recommend?category=dining&amount=100", 0, nil, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Recommendations, 3)
	assert.Equal(t, "amex-gold", resp.Recommendations[0].Card.ID)
	assert.InDelta(t, 8.0, resp.Recommendations[0].DollarValue, 1e-9)
	assert.True(t, resp.Recommendations[0].IsWinner)

	// missing amount uses the default of 100, malformed is treated as 0
	resp = recommendResponse{}
	s.do(t, http.MethodGet, "/api/v1/recommend?category=dining", 0, nil, &resp)
	assert.Equal(t, 100.0, resp.Amount)
	resp = recommendResponse{}
	s.do(t, http.MethodGet, "/api/v1/recommend?category=dining&amount=lots", 0, nil, &resp)
	assert.Zero(t, resp.Amount)
	assert.Zero(t, resp.Recommendations[0].DollarValue)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/recommend", 0, nil, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/recommend?category=Dining!", 0, nil, nil))
}

func TestRecommendAtMerchant(t *testing.T) {
	s := newTestServer(t)

	var resp recommendResponse
	code := s.do(t, http.MethodGet, "/api/v1/recommend?merchant=Costco", 0, nil, &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Costco", resp.Merchant)
	assert.Empty(t, resp.Recommendations)
	assert.Len(t, resp.Rejected, 3)
}

func TestSearchMerchants(t *testing.T) {
	s := newTestServer(t)

	var matches []map[string]any
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/merchants?q=hil", 0, nil, &matches))
	require.Len(t, matches, 1)
	assert.NotNil(t, matches[0]["best"])

	matches = nil
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/merchants?q=h", 0, nil, &matches))
	assert.Empty(t, matches)
}

func TestCompare(t *testing.T) {
	s := newTestServer(t)

	var cmp struct {
		Rows []struct {
			Category string    `json:"category"`
			Rates    []float64 `json:"rates"`
			Winners  []bool    `json:"winners"`
		} `json:"rows"`
	}
	body := gin.H{"card_ids": []string{"amex-gold", "citi-double-cash"}, "categories": []string{"dining"}}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/compare", 0, body, &cmp))
	require.Len(t, cmp.Rows, 1)
	assert.Equal(t, []float64{4, 0}, cmp.Rows[0].Rates)
	assert.Equal(t, []bool{true, false}, cmp.Rows[0].Winners)

	one := gin.H{"card_ids": []string{"amex-gold"}}
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/compare", 0, one, nil))
	unknown := gin.H{"card_ids": []string{"amex-gold", "ghost"}}
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/v1/compare", 0, unknown, nil))
}

func TestAnnualValue(t *testing.T) {
	s := newTestServer(t)

	var report struct {
		Summary struct {
			AnnualSpend string `json:"annual_spend"`
		} `json:"summary"`
		Worthwhile []map[string]any `json:"worthwhile"`
		NotWorth   []map[string]any `json:"not_worth_it"`
	}
	body := gin.H{"spending": gin.H{"dining": 500, "grocery": 300}}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/annual", 0, body, &report))
	assert.Equal(t, "9600", report.Summary.AnnualSpend)
	assert.Len(t, append(report.Worthwhile, report.NotWorth...), 3)

	for _, bad := range []gin.H{
		{},
		{"spending": gin.H{"dining": -1}},
		{"spending": gin.H{"Dining": 100}},
		{"spending": gin.H{"dining": 100}, "fee_band": "cheap"},
		{"spending": gin.H{"dining": 100}, "sort": "popularity"},
		{"spending": gin.H{"dining": 100}, "network": "JCB"},
	} {
		assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/annual", 0, bad, nil), bad)
	}
}

func TestWalletLifecycle(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodPost, "/api/v1/wallet/citi-double-cash", 0, nil, nil))

	var ids struct {
		CardIDs []string `json:"card_ids"`
	}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/v1/wallet/citi-double-cash", 1, nil, &ids))
	assert.Contains(t, ids.CardIDs, "citi-double-cash")
	assert.Len(t, ids.CardIDs, 4)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/v1/wallet/ghost", 1, nil, nil))

	require.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, "/api/v1/wallet/amex-platinum", 1, nil, &ids))
	assert.NotContains(t, ids.CardIDs, "amex-platinum")

	var wallet WalletResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/wallet", 1, nil, &wallet))
	assert.Len(t, wallet.Cards, 3)
	assert.InDelta(t, 250.0+650.0, wallet.AnnualFees, 1e-9)

	// anonymous callers still see the default wallet
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/wallet", 0, nil, &wallet))
	assert.Equal(t, catalog.DefaultWalletIDs, wallet.CardIDs)
}

func TestInvalidTokenIsRejectedOnOptionalRoutes(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPointValues(t *testing.T) {
	s := newTestServer(t)

	path := "/api/v1/point-values/amex-gold"
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPut, path, 1, gin.H{"point_value": 1.0}, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPut, path, 1, gin.H{"point_value": 0}, nil))
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPut, "/api/v1/point-values/ghost", 1, gin.H{"point_value": 1.0}, nil))

	var resp recommendResponse
	s.do(t, http.MethodGet, "/api/v1/recommend?category=dining&amount=100", 1, nil, &resp)
	for _, rec := range resp.Recommendations {
		if rec.Card.ID == "amex-gold" {
			assert.InDelta(t, 4.0, rec.DollarValue, 1e-9)
		}
	}

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, path, 1, nil, nil))
	resp = recommendResponse{}
	s.do(t, http.MethodGet, "/api/v1/recommend?category=dining&amount=100", 1, nil, &resp)
	assert.InDelta(t, 8.0, resp.Recommendations[0].DollarValue, 1e-9)
}

func TestQuickCategories(t *testing.T) {
	s := newTestServer(t)

	var resp struct {
		Categories []map[string]string `json:"categories"`
	}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/quick-categories", 0, nil, &resp))
	assert.Len(t, resp.Categories, 3)

	body := gin.H{"categories": []gin.H{{"category": "gas"}}}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPut, "/api/v1/quick-categories", 1, body, nil))
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/quick-categories", 1, nil, &resp))
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "Gas", resp.Categories[0]["name"])

	bad := gin.H{"categories": []gin.H{{"category": "Not A Key"}}}
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPut, "/api/v1/quick-categories", 1, bad, nil))
}

func TestRotating(t *testing.T) {
	s := newTestServer(t)

	path := "/api/v1/rotating/discover-it-cash-back/Q2-2025"
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPut, path, 1, gin.H{"amount": 750}, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPut, "/api/v1/rotating/discover-it-cash-back/2025-Q2", 1, gin.H{"amount": 1}, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPut, "/api/v1/rotating/amex-gold/Q2-2025", 1, gin.H{"amount": 1}, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPut, path, 1, gin.H{"amount": -1}, nil))

	var overview []struct {
		CardID   string `json:"card_id"`
		Quarter  string `json:"quarter"`
		Progress struct {
			Spent      float64 `json:"spent"`
			Percentage float64 `json:"percentage"`
		} `json:"progress"`
	}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/rotating?date=2025-05-10", 1, nil, &overview))
	require.NotEmpty(t, overview)
	assert.Equal(t, "discover-it-cash-back", overview[0].CardID)
	assert.Equal(t, "Q2-2025", overview[0].Quarter)
	assert.Equal(t, 750.0, overview[0].Progress.Spent)
	assert.InDelta(t, 50.0, overview[0].Progress.Percentage, 1e-9)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/rotating?date=May", 0, nil, nil))
}

func TestParseAmount(t *testing.T) {
	h := New(nil, 0)
	assert.Equal(t, 100.0, h.parseAmount(""))
	assert.Equal(t, 42.5, h.parseAmount(" 42.5 "))
	assert.Zero(t, h.parseAmount("-3"))
	assert.Zero(t, h.parseAmount("abc"))
	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity"} {
		assert.Zero(t, h.parseAmount(raw), raw)
	}
}

func TestRecommendNonFiniteAmount(t *testing.T) {
	s := newTestServer(t)

	for _, raw := range []string{"NaN", "Inf", "%2BInf"} {
		var resp recommendResponse
		code := s.do(t, http.MethodGet, "/api/v1/recommend?category=dining&amount="+raw, 0, nil, &resp)
		require.Equal(t, http.StatusOK, code, raw)
		assert.Zero(t, resp.Amount, raw)
		require.NotEmpty(t, resp.Recommendations, raw)
		assert.Zero(t, resp.Recommendations[0].DollarValue, raw)
	}
}

func TestSearchMerchantsSkipsRejectedNetworks(t *testing.T) {
	s := newTestServer(t)

	var matches []struct {
		Merchant struct {
			Name string `json:"name"`
		} `json:"merchant"`
		Best map[string]any `json:"best"`
	}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/merchants?q=sams", 0, nil, &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "Sams Club", matches[0].Merchant.Name)
	assert.Nil(t, matches[0].Best)
}
