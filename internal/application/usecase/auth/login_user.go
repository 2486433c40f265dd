package auth

import (
	"context"
	"fmt"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/application/session"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
)

type LoginUserInput struct {
	Email    string
	Password string
}

type LoginUserOutput struct {
	Tokens *adapter.TokenPair
	User   *entity.User
}

// LoginUserUseCase verifies credentials and opens the user's session. Opening
// reloads the snapshot, so a stale session from an earlier login is replaced.
type LoginUserUseCase struct {
	users     adapter.UserRepository
	passwords adapter.PasswordHasher
	tokens    adapter.TokenService
	sessions  *session.Manager
}

func NewLoginUserUseCase(
	users adapter.UserRepository,
	passwords adapter.PasswordHasher,
	tokens adapter.TokenService,
	sessions *session.Manager,
) *LoginUserUseCase {
	return &LoginUserUseCase{users: users, passwords: passwords, tokens: tokens, sessions: sessions}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingFields, "email and password are required", domainerror.ErrMissingCredentials)
	}

	// unknown email and wrong password look the same to the caller
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, invalidCredentials()
	}
	if uc.passwords.Compare(user.PasswordHash, input.Password) != nil {
		return nil, invalidCredentials()
	}

	pair, err := uc.tokens.Issue(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	if _, err := uc.sessions.Open(ctx, user.ID); err != nil {
		return nil, err
	}
	return &LoginUserOutput{Tokens: pair, User: user}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "invalid email or password", domainerror.ErrInvalidCredentials)
}
