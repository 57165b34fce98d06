package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"affiliate-hub/config"
	"affiliate-hub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", AuthMiddleware(cfg), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return r
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r := protectedRouter(&config.Config{JWTSecret: "test-secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	r := protectedRouter(&config.Config{JWTSecret: "test-secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Token abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsTokenSignedWithOtherSecret(t *testing.T) {
	r := protectedRouter(&config.Config{JWTSecret: "test-secret"})

	token, err := utils.GenerateToken("other-secret", time.Hour, 1, "admin", true)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddlewareRejectsNonAdmin(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := protectedRouter(cfg)

	token, err := utils.GenerateToken(cfg.JWTSecret, time.Hour, 2, "visitor", false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := protectedRouter(cfg)

	token, err := utils.GenerateToken(cfg.JWTSecret, time.Hour, 1, "admin", true)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}
