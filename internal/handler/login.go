// internal/handler/login.go
package handler

import (
	"cardhawk/internal/auth"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	UserID int64 `json:"user_id" binding:"required,min=1"`
}

// Login godoc
// @Summary Issue a bearer token for a user id
// @Router /api/v1/login [post]
func Login(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id required"})
			return
		}
		token, err := tokens.GenerateToken(req.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
