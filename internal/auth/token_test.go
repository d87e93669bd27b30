package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dom "github.com/vijaynvb/TodoMinimalAPI/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testKey = "0123456789abcdef0123456789abcdef"

func testIssuer() *TokenIssuer {
	return NewTokenIssuer("todo-api", "todo-clients", testKey)
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := testIssuer()
	user := dom.User{ID: "user-123", Email: "jane@example.com"}

	before := time.Now()
	tokenStr, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := issuer.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "todo-api", claims.Issuer)

	// Expiry is fixed at 30 minutes from issuance.
	wantExpiry := before.Add(TokenTTL)
	assert.WithinDuration(t, wantExpiry, claims.ExpiresAt.Time, time.Minute)
}

func TestTokenIssuer_VerifyRejections(t *testing.T) {
	issuer := testIssuer()
	tokenStr, err := issuer.Issue(dom.User{ID: "u1", Email: "a@b.test"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		verifier *TokenIssuer
		token    string
	}{
		{"wrong key", NewTokenIssuer("todo-api", "todo-clients", "ffffffffffffffffffffffffffffffff"), tokenStr},
		{"wrong issuer", NewTokenIssuer("other-api", "todo-clients", testKey), tokenStr},
		{"wrong audience", NewTokenIssuer("todo-api", "other-clients", testKey), tokenStr},
		{"garbage", issuer, "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verifier.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestRequireBearer(t *testing.T) {
	issuer := testIssuer()
	r := gin.New()
	r.GET("/protected", RequireBearer(issuer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromContext(c)})
	})

	tokenStr, err := issuer.Issue(dom.User{ID: "user-9", Email: "x@y.test"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"invalid token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + tokenStr, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "user-9")
			}
		})
	}
}
