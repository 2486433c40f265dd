package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashease/backend/internal/integration/persistence/model"
)

// TokenRepository tracks issued refresh tokens so they can be revoked. Only a
// digest of each token is stored.
type TokenRepository interface {
	Record(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error
	// IsActive reports whether the token was issued here, is unexpired and not revoked.
	IsActive(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
	RevokeUserTokens(ctx context.Context, userID uuid.UUID) error
	// DeleteExpired prunes tokens that expired before now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type tokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewTokenRepository creates the gorm-backed refresh token store.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *tokenRepository) Record(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Create(&model.RefreshTokenModel{
		ID:        uuid.New(),
		TokenHash: digest(token),
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: r.now(),
	}).Error
}

func (r *tokenRepository) IsActive(ctx context.Context, token string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", digest(token), r.now()).
		Count(&n).Error
	return n > 0, err
}

func (r *tokenRepository) Revoke(ctx context.Context, token string) error {
	return r.revokeWhere(ctx, "token_hash = ?", digest(token))
}

func (r *tokenRepository) RevokeUserTokens(ctx context.Context, userID uuid.UUID) error {
	return r.revokeWhere(ctx, "user_id = ?", userID)
}

func (r *tokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.RefreshTokenModel{})
	return result.RowsAffected, result.Error
}

func (r *tokenRepository) revokeWhere(ctx context.Context, query string, arg any) error {
	return r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where(query, arg).
		Where("revoked_at IS NULL").
		Update("revoked_at", r.now()).Error
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
