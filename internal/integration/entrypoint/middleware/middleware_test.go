package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashease/backend/internal/application/adapter"
	domainerror "github.com/cashease/backend/internal/domain/error"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokens struct {
	adapter.TokenService
	userID uuid.UUID
}

func (s stubTokens) ParseAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	switch token {
	case "good":
	case "stale":
		return nil, domainerror.ErrExpiredToken
	default:
		return nil, domainerror.ErrInvalidToken
	}
	return &adapter.TokenClaims{UserID: s.userID, Email: "a@b.co"}, nil
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()
	mw := NewAuthMiddleware(stubTokens{userID: userID})

	router := gin.New()
	router.GET("/me", mw.Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name   string
		header string
		status int
		code   domainerror.AuthErrorCode
	}{
		{"missing header", "", http.StatusUnauthorized, domainerror.ErrCodeMissingToken},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, domainerror.ErrCodeInvalidToken},
		{"empty token", "Bearer  ", http.StatusUnauthorized, domainerror.ErrCodeMissingToken},
		{"invalid token", "Bearer bad", http.StatusUnauthorized, domainerror.ErrCodeInvalidToken},
		{"expired token", "Bearer stale", http.StatusUnauthorized, domainerror.ErrCodeExpiredToken},
		{"valid token", "Bearer good", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
				return
			}
			assert.Contains(t, w.Body.String(), string(tt.code))
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiterWithConfig(2, time.Minute)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	router := gin.New()
	router.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() int {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusTooManyRequests, hit())

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusOK, hit())

	now = now.Add(time.Hour)
	rl.Cleanup()
	assert.Empty(t, rl.visitors)
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiterWithConfig(0, time.Minute)
	router := gin.New()
	router.GET("/", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for range 20 {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}
