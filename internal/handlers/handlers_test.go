package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vijaynvb/TodoMinimalAPI/internal/app"
	"github.com/vijaynvb/TodoMinimalAPI/internal/config"
	"github.com/vijaynvb/TodoMinimalAPI/internal/logger"
	"github.com/vijaynvb/TodoMinimalAPI/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testAPIKey = "test-api-key"
	testJWTKey = "0123456789abcdef0123456789abcdef"
)

// newTestRouter wires the full middleware chain and routes against
// in-memory stores with caching disabled.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := config.Config{
		App:  config.AppConfig{Env: "test", Version: "test"},
		JWT:  config.JWTConfig{Issuer: "todo-api", Audience: "todo-clients", Key: testJWTKey},
		Auth: config.AuthConfig{APIKey: testAPIKey},
		CORS: config.CORSConfig{Origins: "https://localhost:44360,https://mydomain.com"},
	}
	log := logger.New("todo-api-test", "error")
	return app.NewRouter(cfg, log, repo.NewMemTodoRepo(), repo.NewMemUserRepo(), nil)
}

// doJSON sends a JSON request with the API key attached. A non-empty
// bearer is added as an Authorization header.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", testAPIKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// signupAndLogin registers an account and returns a bearer token.
func signupAndLogin(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/signup", gin.H{
		"first_name": "Test",
		"email":      email,
		"password":   password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/login", gin.H{
		"username": email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
