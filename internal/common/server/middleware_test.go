package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VehicleShare/VehicleShare/internal/common/auth"
	"github.com/VehicleShare/VehicleShare/internal/common/config"
	"github.com/gin-gonic/gin"
)

func newAuthedRouter(cfg config.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg), func(c *gin.Context) {
		id, ok := IdentityFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.UserID})
	})
	return r
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	cfg := config.AuthConfig{
		JWTSecret: "test-secret",
		Issuer:    "vehicleshare",
		Audience:  "vehicleshare",
	}
	token, _, err := auth.GenerateAccessToken(cfg, "u-1", "Taro", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	r := newAuthedRouter(cfg)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "test-secret", Issuer: "vehicleshare"}
	r := newAuthedRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", w.Code)
	}
}

func TestOptionalAuthMiddlewarePassesAnonymous(t *testing.T) {
	cfg := config.AuthConfig{JWTSecret: "test-secret", Issuer: "vehicleshare"}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/public", OptionalAuthMiddleware(cfg), func(c *gin.Context) {
		_, authed := IdentityFromContext(c)
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for anonymous, got %d", w.Code)
	}
}
