package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cashease/backend/internal/application/adapter"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/persistence"
)

const tokenIssuer = "cashease"

type tokenKind string

const (
	accessToken  tokenKind = "access"
	refreshToken tokenKind = "refresh"
)

// sessionClaims are signed into every token. The user ID travels as the subject.
type sessionClaims struct {
	Email string    `json:"email"`
	Kind  tokenKind `json:"token_type"`
	jwt.RegisteredClaims
}

type jwtTokens struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	store      persistence.TokenRepository
	now        func() time.Time
}

// NewTokenService issues HS256 tokens. Refresh tokens are recorded in store so
// logout and rotation can revoke them.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, store persistence.TokenRepository) adapter.TokenService {
	return &jwtTokens{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		store:      store,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (t *jwtTokens) Issue(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	now := t.now()

	access, err := t.sign(userID, email, accessToken, now, t.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := t.sign(userID, email, refreshToken, now, t.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := t.store.Record(ctx, refresh, userID, now.Add(t.refreshTTL)); err != nil {
		return nil, fmt.Errorf("failed to record refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(t.accessTTL / time.Second),
	}, nil
}

func (t *jwtTokens) ParseAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return t.parse(token, accessToken)
}

func (t *jwtTokens) ParseRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return t.parse(token, refreshToken)
}

func (t *jwtTokens) IsActive(ctx context.Context, token string) (bool, error) {
	return t.store.IsActive(ctx, token)
}

func (t *jwtTokens) Revoke(ctx context.Context, token string) error {
	return t.store.Revoke(ctx, token)
}

func (t *jwtTokens) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	return t.store.RevokeUserTokens(ctx, userID)
}

// sign mints a token with a unique ID, so two pairs issued in the same second differ.
func (t *jwtTokens) sign(userID uuid.UUID, email string, kind tokenKind, now time.Time, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		Email: email,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *jwtTokens) parse(token string, want tokenKind) (*adapter.TokenClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(t.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domainerror.ErrExpiredToken
	case err != nil:
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	case claims.Kind != want:
		return nil, fmt.Errorf("%w: expected %s token", domainerror.ErrInvalidToken, want)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", domainerror.ErrInvalidToken)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
