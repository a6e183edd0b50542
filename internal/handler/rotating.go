// internal/handler/rotating.go
package handler

import (
	"cardhawk/internal/middleware"
	"net/http"
	"time"

	val "cardhawk/internal/validator"

	"github.com/gin-gonic/gin"
)

// Rotating godoc
// @Summary Current quarter progress and next quarter categories
// @Param date query string false "Reference date, YYYY-MM-DD (default today)"
// @Router /api/v1/rotating [get]
func (h *Handler) Rotating(c *gin.Context) {
	var date time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
			return
		}
		date = d
	}

	overview, err := h.advisor.Rotating(c.Request.Context(), middleware.UserID(c), date)
	if err != nil {
		fail(c, "Rotating", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

type RotatingSpendRequest struct {
	Amount float64 `json:"amount" validate:"gte=0"`
}

// UpdateRotatingSpend godoc
// @Param cardId path string true "Rotating card id"
// @Param quarter path string true "Quarter key, e.g. Q2-2025"
// @Param request body RotatingSpendRequest true "Spent so far"
// @Router /api/v1/rotating/{cardId}/{quarter} [put]
func (h *Handler) UpdateRotatingSpend(c *gin.Context) {
	quarter := c.Param("quarter")
	if err := val.Validate.Var(quarter, "quarterkey"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quarter must look like Q1-2025"})
		return
	}

	var req RotatingSpendRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.advisor.UpdateRotatingSpend(c.Request.Context(), middleware.UserID(c), c.Param("cardId"), quarter, req.Amount); err != nil {
		fail(c, "UpdateRotatingSpend", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
