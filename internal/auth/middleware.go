package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UsernameKey is where the middleware stores the authenticated username in
// the gin context.
const UsernameKey = "auth.username"

// Middleware rejects requests without a valid bearer token for the expected
// user. Paths in noAuthPaths pass through untouched (the login path must be
// reachable without a token).
func Middleware(tm *TokenManager, expectedUsername string, noAuthPaths map[string]struct{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := noAuthPaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		username, err := tm.Validate(c.GetHeader("Authorization"))
		if err != nil || username != expectedUsername {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}
