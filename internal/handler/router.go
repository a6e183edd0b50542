// internal/handler/router.go
package handler

import (
	"cardhawk/internal/auth"
	"cardhawk/internal/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every route. Read-only advice works anonymously on the default
// wallet; anything that saves preferences requires a token.
func NewRouter(h *Handler, tokens *auth.TokenService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.POST("/login", Login(tokens))
	v1.GET("/cards", h.ListCards)
	v1.GET("/cards/:id", h.GetCard)

	advice := v1.Group("")
	advice.Use(authMiddleware.OptionalAuth())
	{
		advice.GET("/wallet", h.GetWallet)
		advice.GET("/recommend", h.Recommend)
		advice.GET("/merchants", h.SearchMerchants)
		advice.POST("/compare", h.Compare)
		advice.POST("/annual", h.AnnualValue)
		advice.GET("/rotating", h.Rotating)
		advice.GET("/quick-categories", h.GetQuickCategories)
	}

	private := v1.Group("")
	private.Use(authMiddleware.RequireAuth())
	{
		private.POST("/wallet/:cardId", h.AddCard)
		private.DELETE("/wallet/:cardId", h.RemoveCard)
		private.POST("/wallet/:cardId/toggle", h.ToggleCard)
		private.PUT("/point-values/:cardId", h.SetPointValue)
		private.DELETE("/point-values/:cardId", h.ResetPointValue)
		private.PUT("/rotating/:cardId/:quarter", h.UpdateRotatingSpend)
		private.PUT("/quick-categories", h.SetQuickCategories)
	}

	return router
}
