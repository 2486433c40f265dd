// Package middleware holds the gin middleware of the API: bearer
// authentication and per-client rate limiting.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cashease/backend/internal/application/adapter"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/entrypoint/dto"
)

type ContextKey string

const (
	UserIDKey    ContextKey = "user_id"
	UserEmailKey ContextKey = "user_email"
)

// AuthMiddleware rejects requests without a valid access token.
type AuthMiddleware struct {
	tokens adapter.TokenService
}

func NewAuthMiddleware(tokens adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the Bearer access token and stores the caller's
// identity under UserIDKey and UserEmailKey.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, authErr := bearerToken(c.GetHeader("Authorization"))
		if authErr != nil {
			abortUnauthorized(c, authErr)
			return
		}

		claims, err := m.tokens.ParseAccessToken(c.Request.Context(), token)
		switch {
		case errors.Is(err, domainerror.ErrExpiredToken):
			abortUnauthorized(c, domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "Token has expired", err))
			return
		case err != nil:
			abortUnauthorized(c, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "Invalid or expired token", err))
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(UserEmailKey), claims.Email)
		c.Next()
	}
}

func bearerToken(header string) (string, *domainerror.AuthError) {
	if header == "" {
		return "", domainerror.NewAuthError(domainerror.ErrCodeMissingToken, "Authorization header is required", nil)
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "Invalid authorization header format", nil)
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", domainerror.NewAuthError(domainerror.ErrCodeMissingToken, "Token is required", nil)
	}
	return token, nil
}

func abortUnauthorized(c *gin.Context, err *domainerror.AuthError) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Message, Code: string(err.Code)})
}

// GetUserIDFromContext returns the ID stored by Authenticate.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
