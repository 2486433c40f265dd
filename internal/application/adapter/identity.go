package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/domain/entity"
)

// UserRepository stores accounts. Email lookups are exact; callers normalize.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
	// CheckStrength rejects passwords that may not be registered.
	CheckStrength(password string) error
}

// TokenPair is what a successful sign-in or refresh hands back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until AccessToken expires
}

// TokenClaims identify the account a token was issued to.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues short-lived access tokens and revocable refresh tokens.
type TokenService interface {
	Issue(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)
	ParseAccessToken(ctx context.Context, token string) (*TokenClaims, error)
	// ParseRefreshToken checks signature and expiry only; use IsActive for revocation.
	ParseRefreshToken(ctx context.Context, token string) (*TokenClaims, error)
	IsActive(ctx context.Context, refreshToken string) (bool, error)
	Revoke(ctx context.Context, refreshToken string) error
	// RevokeAll signs the user out of every device.
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}
