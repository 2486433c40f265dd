package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/persistence/model"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the gorm-backed account store. The unique index on
// email turns a duplicate registration into ErrEmailAlreadyExists.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	err := r.db.WithContext(ctx).Create(model.UserFromEntity(user)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrEmailAlreadyExists
	}
	return err
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Limit(1).Count(&n).Error
	return n > 0, err
}

func (r *userRepository) first(ctx context.Context, query string, arg any) (*entity.User, error) {
	var row model.UserModel
	err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domainerror.ErrUserNotFound
	case err != nil:
		return nil, err
	}
	return row.ToEntity(), nil
}
