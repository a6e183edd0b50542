// internal/handler/annual.go
package handler

import (
	"cardhawk/internal/annual"
	"cardhawk/internal/domain"
	"cardhawk/internal/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AnnualRequest struct {
	Spending map[string]float64 `json:"spending" validate:"required,min=1,dive,keys,category,endkeys,gte=0"`
	Issuer   string             `json:"issuer"`
	FeeBand  string             `json:"fee_band"`
	Network  string             `json:"network" validate:"omitempty,network"`
	Sort     string             `json:"sort"`
}

// AnnualValue godoc
// @Summary Project annual rewards minus fees for the wallet
// @Param request body AnnualRequest true "Monthly spend per category plus filters"
// @Success 200 {object} annual.Report
// @Router /api/v1/annual [post]
func (h *Handler) AnnualValue(c *gin.Context) {
	var req AnnualRequest
	if !bindJSON(c, &req) {
		return
	}

	band, err := annual.ParseFeeBand(req.FeeBand)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	key, err := annual.ParseSortKey(req.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filter := annual.Filter{
		Issuer:  req.Issuer,
		FeeBand: band,
		Network: domain.Network(req.Network),
	}

	report, err := h.advisor.AnnualValue(c.Request.Context(), middleware.UserID(c), domain.SpendingProfile(req.Spending), filter, key)
	if err != nil {
		fail(c, "AnnualValue", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
