package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the pre-shared secret gating every API route,
// independent of per-user authentication.
const APIKeyHeader = "X-Api-Key"

// RequireAPIKey returns a middleware that short-circuits with 401
// unless the request carries the configured key. The comparison is
// constant-time and the response is identical for a missing and a
// wrong key.
func RequireAPIKey(key string) gin.HandlerFunc {
	want := []byte(key)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(APIKeyHeader))
		if len(got) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
			return
		}
		c.Next()
	}
}
