package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/713zhao/aireminder/internal/tokens"
)

// AuthMiddleware resolves the caller identity and stores it under "userId".
// A Bearer JWT (signed with secret) wins; when no Authorization header is
// present the X-User-ID header is accepted instead, which is how trusted
// internal callers identify themselves. Requests carrying neither are
// rejected.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth != "" {
			raw := strings.TrimPrefix(auth, "Bearer ")
			if raw == auth {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
				return
			}
			sub, err := tokens.ParseAccessToken(secret, raw)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			c.Set("userId", sub)
			c.Next()
			return
		}
		if uid := c.GetHeader("X-User-ID"); uid != "" {
			c.Set("userId", uid)
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
	}
}
