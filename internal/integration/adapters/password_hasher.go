package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cashease/backend/internal/application/adapter"
	domainerror "github.com/cashease/backend/internal/domain/error"
)

const (
	// DefaultBcryptCost is used when the configured cost is out of range.
	DefaultBcryptCost = 12

	minPasswordLength = 8
	maxPasswordBytes  = 72 // bcrypt ignores anything longer
)

type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt hasher. Tests pass bcrypt.MinCost to stay fast.
func NewPasswordHasher(cost int) adapter.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return bcryptHasher{cost: cost}
}

func (h bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(hash), err
}

func (h bcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (h bcryptHasher) CheckStrength(password string) error {
	if n := len(password); n < minPasswordLength || n > maxPasswordBytes {
		return fmt.Errorf("%w: use %d to %d characters", domainerror.ErrWeakPassword, minPasswordLength, maxPasswordBytes)
	}
	return nil
}
