package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireAPIKey(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequireAPIKey("secret-key"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "wrong", http.StatusUnauthorized},
		{"prefix of key", "secret", http.StatusUnauthorized},
		{"correct key", "secret-key", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireAPIKey_UniformBody(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequireAPIKey("secret-key"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	missing := httptest.NewRecorder()
	r.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/x", nil))

	wrongReq := httptest.NewRequest(http.MethodGet, "/x", nil)
	wrongReq.Header.Set(APIKeyHeader, "nope")
	wrong := httptest.NewRecorder()
	r.ServeHTTP(wrong, wrongReq)

	// Missing and wrong keys are indistinguishable to the caller.
	assert.Equal(t, missing.Code, wrong.Code)
	assert.Equal(t, missing.Body.String(), wrong.Body.String())
}
