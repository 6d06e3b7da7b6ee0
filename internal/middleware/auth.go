package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kg-3rd/grand-adventure-hub/internal/config"
	"github.com/kg-3rd/grand-adventure-hub/internal/security"
)

const claimsKey = "access_claims"

// Auth validates the bearer token signature and stores the verified claims.
// The role used for authorization comes from those claims; a client-supplied
// role header is ignored on purpose.
func Auth(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseAccessToken(tokenStr, cfg.Security.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(claimsKey, *claims)
		c.Next()
	}
}

// Claims returns the verified access claims set by Auth.
func Claims(c *gin.Context) (security.AccessClaims, bool) {
	val, exists := c.Get(claimsKey)
	if !exists {
		return security.AccessClaims{}, false
	}
	claims, ok := val.(security.AccessClaims)
	return claims, ok
}
