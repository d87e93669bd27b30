package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	contextKeyUserID = "user_id"
	contextKeyEmail  = "user_email"
)

// UserIDFromContext returns the user ID set by RequireBearer. Empty if
// the request was not authenticated.
func UserIDFromContext(c *gin.Context) string {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return ""
	}
	id, ok := v.(string)
	if !ok {
		return ""
	}
	return id
}

// RequireBearer returns a middleware enforcing the authenticated-user
// policy: the request must carry a valid bearer token. On success the
// user ID and email from the claims are placed in the gin context.
// Missing, malformed and invalid tokens all get the same 401.
func RequireBearer(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if header == "" || !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		claims, err := issuer.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyUserID, claims.Subject)
		c.Set(contextKeyEmail, claims.Email)
		c.Next()
	}
}
