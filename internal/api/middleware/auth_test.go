package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rives-io/rives-aggregator/internal/api/middleware"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicKeyPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	return key, string(publicKeyPEM)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, publicKeyPEM := generateKey(t)
	otherKey, _ := generateKey(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicKeyPEM, APIKeys: []string{"secret"}}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "operator",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	foreign := signToken(t, otherKey, jwt.RegisteredClaims{})

	tests := []struct {
		name        string
		header      string
		wantSuccess bool
		wantType    string
	}{
		{name: "valid jwt", header: "Bearer " + valid, wantSuccess: true, wantType: "jwt"},
		{name: "expired jwt", header: "Bearer " + expired},
		{name: "jwt signed by another key", header: "Bearer " + foreign},
		{name: "valid api key", header: "ApiKey secret", wantSuccess: true, wantType: "apikey"},
		{name: "scheme is case insensitive", header: "apikey secret", wantSuccess: true, wantType: "apikey"},
		{name: "invalid api key", header: "ApiKey wrong"},
		{name: "missing header", header: ""},
		{name: "malformed header", header: "secret"},
		{name: "empty credentials", header: "ApiKey "},
		{name: "unsupported scheme", header: "Basic dXNlcjpwYXNz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.Authenticate(tt.header, cfg)

			assert.Equal(t, tt.wantSuccess, result.Success)
			if tt.wantSuccess {
				assert.NoError(t, result.Error)
				assert.Equal(t, tt.wantType, result.AuthType)
			} else {
				assert.Error(t, result.Error)
			}
		})
	}

	t.Run("subject is carried", func(t *testing.T) {
		result := middleware.Authenticate("Bearer "+valid, cfg)
		require.True(t, result.Success)
		assert.Equal(t, "operator", result.AuthSubject)
	})
}

func TestAuthenticate_UnusableKey(t *testing.T) {
	key, _ := generateKey(t)
	token := signToken(t, key, jwt.RegisteredClaims{})
	cfg := middleware.AuthConfig{JWTPublicKey: "not a pem", APIKeys: []string{"secret"}}

	result := middleware.Authenticate("Bearer "+token, cfg)
	assert.False(t, result.Success)
	assert.ErrorContains(t, result.Error, "failed to parse RSA public key")

	result = middleware.Authenticate("ApiKey secret", cfg)
	assert.True(t, result.Success, "api keys keep working")
}

func TestAuthConfig_Enabled(t *testing.T) {
	assert.False(t, middleware.AuthConfig{}.Enabled())
	assert.False(t, middleware.AuthConfig{APIKeys: []string{""}}.Enabled())
	assert.True(t, middleware.AuthConfig{APIKeys: []string{"secret"}}.Enabled())
	assert.True(t, middleware.AuthConfig{JWTPublicKey: "pem"}.Enabled())
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestAuth(t *testing.T) {
	t.Run("open when no credential is configured", func(t *testing.T) {
		router := newRouter(middleware.Auth(middleware.AuthConfig{}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		router := newRouter(middleware.Auth(middleware.AuthConfig{APIKeys: []string{"secret"}}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("accepts api key", func(t *testing.T) {
		router := newRouter(middleware.Auth(middleware.AuthConfig{APIKeys: []string{"secret"}}))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "ApiKey secret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLogger_RequestID(t *testing.T) {
	router := newRouter(middleware.Logger())

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Len(t, w.Header().Get(middleware.REQUEST_ID_HEADER), 26)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.REQUEST_ID_HEADER, "abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc", w.Header().Get(middleware.REQUEST_ID_HEADER))
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		router := newRouter(middleware.RateLimit(middleware.RateLimitConfig{}))

		for range 5 {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("rejects requests over the burst", func(t *testing.T) {
		router := newRouter(middleware.RateLimit(middleware.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2}))

		codes := make([]int, 3)
		for i := range codes {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			codes[i] = w.Code
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("limits each client separately", func(t *testing.T) {
		router := newRouter(middleware.RateLimit(middleware.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}))

		for _, addr := range []string{"10.0.0.1:1234", "10.0.0.2:1234"} {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = addr
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, addr)
		}
	})
}
