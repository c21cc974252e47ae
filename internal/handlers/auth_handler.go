package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterAuthRoutes registers the login endpoint. It is the only /api path
// exempt from the token check.
func RegisterAuthRoutes(rg *gin.RouterGroup, cfg HandlerConfig) {
	rg.POST("/auth/login", func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
			return
		}

		if !cfg.Verifier.Verify(req.Username, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := cfg.Tokens.Issue(req.Username)
		if err != nil {
			cfg.Log.Errorw("token issue failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token_issue_failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	})
}
