// internal/handler/recommend.go
package handler

import (
	"cardhawk/internal/middleware"
	"net/http"
	"strings"

	val "cardhawk/internal/validator"

	"github.com/gin-gonic/gin"
)

// Recommend godoc
// @Summary Rank wallet cards for a category, optionally at a merchant
// @Param category query string false "Category key (required unless merchant is set)"
// @Param amount query number false "Spend amount, default 100"
// @Param merchant query string false "Merchant name; drops cards the merchant does not accept"
// @Router /api/v1/recommend [get]
func (h *Handler) Recommend(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	merchantName := strings.TrimSpace(c.Query("merchant"))
	amount := h.parseAmount(c.Query("amount"))

	if category == "" && merchantName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category or merchant query param required"})
		return
	}
	if category != "" {
		if err := val.Validate.Var(category, "category"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category must be a category key such as dining"})
			return
		}
	}

	userID := middleware.UserID(c)
	if merchantName != "" {
		result, err := h.advisor.RecommendAtMerchant(c.Request.Context(), userID, merchantName, category, amount)
		if err != nil {
			fail(c, "RecommendAtMerchant", err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	result, err := h.advisor.Recommend(c.Request.Context(), userID, category, amount)
	if err != nil {
		fail(c, "Recommend", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchMerchants godoc
// @Param q query string true "At least two characters of a merchant name or type"
// @Router /api/v1/merchants [get]
func (h *Handler) SearchMerchants(c *gin.Context) {
	matches, err := h.advisor.SearchMerchants(c.Request.Context(), middleware.UserID(c), c.Query("q"))
	if err != nil {
		fail(c, "SearchMerchants", err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

type CompareRequest struct {
	CardIDs    []string `json:"card_ids" validate:"required,min=2,dive,notblank"`
	Categories []string `json:"categories" validate:"omitempty,dive,category"`
}

// Compare godoc
// @Summary Side-by-side earning rates of two or more catalog cards
// @Param request body CompareRequest true "Cards to compare"
// @Router /api/v1/compare [post]
func (h *Handler) Compare(c *gin.Context) {
	var req CompareRequest
	if !bindJSON(c, &req) {
		return
	}
	cmp, err := h.advisor.Compare(req.CardIDs, req.Categories)
	if err != nil {
		fail(c, "Compare", err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}
