// internal/handler/wallet.go
package handler

import (
	"cardhawk/internal/domain"
	"cardhawk/internal/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCards godoc
// @Summary List the card catalog
// @Success 200 {array} domain.Card
// @Router /api/v1/cards [get]
func (h *Handler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.advisor.Catalog().All())
}

// GetCard godoc
// @Param id path string true "Card id"
// @Router /api/v1/cards/{id} [get]
func (h *Handler) GetCard(c *gin.Context) {
	card, ok := h.advisor.Catalog().Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

type WalletResponse struct {
	CardIDs     []string           `json:"card_ids"`
	Cards       []domain.Card      `json:"cards"`
	PointValues domain.PointValues `json:"custom_point_values"`
	AnnualFees  float64            `json:"annual_fees"`
}

// GetWallet godoc
// @Summary Show the active cards of the caller (default wallet when anonymous)
// @Router /api/v1/wallet [get]
func (h *Handler) GetWallet(c *gin.Context) {
	cards, prefs, err := h.advisor.WalletCards(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, "GetWallet", err)
		return
	}
	fees := 0.0
	for _, card := range cards {
		fees += card.AnnualFee
	}
	c.JSON(http.StatusOK, WalletResponse{
		CardIDs:     prefs.WalletIDs,
		Cards:       cards,
		PointValues: prefs.PointValues,
		AnnualFees:  fees,
	})
}

// AddCard godoc
// @Router /api/v1/wallet/{cardId} [post]
func (h *Handler) AddCard(c *gin.Context) {
	ids, err := h.advisor.AddCard(c.Request.Context(), middleware.UserID(c), c.Param("cardId"))
	if err != nil {
		fail(c, "AddCard", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"card_ids": ids})
}

// RemoveCard godoc
// @Router /api/v1/wallet/{cardId} [delete]
func (h *Handler) RemoveCard(c *gin.Context) {
	ids, err := h.advisor.RemoveCard(c.Request.Context(), middleware.UserID(c), c.Param("cardId"))
	if err != nil {
		fail(c, "RemoveCard", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"card_ids": ids})
}

// ToggleCard godoc
// @Router /api/v1/wallet/{cardId}/toggle [post]
func (h *Handler) ToggleCard(c *gin.Context) {
	ids, err := h.advisor.ToggleCard(c.Request.Context(), middleware.UserID(c), c.Param("cardId"))
	if err != nil {
		fail(c, "ToggleCard", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"card_ids": ids})
}

type PointValueRequest struct {
	PointValue float64 `json:"point_value" validate:"required,gt=0"`
}

// SetPointValue godoc
// @Summary Override the cents-per-point valuation of a card
// @Param request body PointValueRequest true "Cents per point"
// @Router /api/v1/point-values/{cardId} [put]
func (h *Handler) SetPointValue(c *gin.Context) {
	var req PointValueRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.advisor.SetPointValue(c.Request.Context(), middleware.UserID(c), c.Param("cardId"), req.PointValue); err != nil {
		fail(c, "SetPointValue", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ResetPointValue godoc
// @Router /api/v1/point-values/{cardId} [delete]
func (h *Handler) ResetPointValue(c *gin.Context) {
	if err := h.advisor.ResetPointValue(c.Request.Context(), middleware.UserID(c), c.Param("cardId")); err != nil {
		fail(c, "ResetPointValue", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type QuickCategoriesRequest struct {
	Categories []domain.QuickCategory `json:"categories" validate:"required,min=1,max=6,dive"`
}

// GetQuickCategories godoc
// @Router /api/v1/quick-categories [get]
func (h *Handler) GetQuickCategories(c *gin.Context) {
	prefs, err := h.advisor.Preferences(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, "GetQuickCategories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": prefs.QuickCategories})
}

// SetQuickCategories godoc
// @Param request body QuickCategoriesRequest true "Pinned categories"
// @Router /api/v1/quick-categories [put]
func (h *Handler) SetQuickCategories(c *gin.Context) {
	var req QuickCategoriesRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.advisor.SetQuickCategories(c.Request.Context(), middleware.UserID(c), req.Categories); err != nil {
		fail(c, "SetQuickCategories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
