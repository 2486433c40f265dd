// Package auth holds the account use cases: register, login, refresh and logout.
// Each successful sign-in also opens the user's session.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/application/session"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
)

type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
}

type RegisterUserOutput struct {
	Tokens *adapter.TokenPair
	User   *entity.User
}

// RegisterUserUseCase creates an account and signs the user in.
type RegisterUserUseCase struct {
	users     adapter.UserRepository
	passwords adapter.PasswordHasher
	tokens    adapter.TokenService
	sessions  *session.Manager
}

func NewRegisterUserUseCase(
	users adapter.UserRepository,
	passwords adapter.PasswordHasher,
	tokens adapter.TokenService,
	sessions *session.Manager,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{users: users, passwords: passwords, tokens: tokens, sessions: sessions}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	input.Email = entity.NormalizeEmail(input.Email)
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	exists, err := uc.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, emailTaken()
	}

	hash, err := uc.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Email, input.Name, hash)
	if err := uc.users.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, emailTaken()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := uc.tokens.Issue(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	if _, err := uc.sessions.Open(ctx, user.ID); err != nil {
		return nil, err
	}
	return &RegisterUserOutput{Tokens: tokens, User: user}, nil
}

func (uc *RegisterUserUseCase) validate(input RegisterUserInput) error {
	switch {
	case input.Email == "" || input.Password == "":
		return domainerror.NewAuthError(domainerror.ErrCodeMissingFields, "email and password are required", domainerror.ErrMissingCredentials)
	case !entity.ValidEmail(input.Email):
		return domainerror.NewAuthError(domainerror.ErrCodeInvalidEmail, "invalid email format", domainerror.ErrInvalidEmail)
	}
	if err := uc.passwords.CheckStrength(input.Password); err != nil {
		return domainerror.NewAuthError(domainerror.ErrCodeWeakPassword, err.Error(), domainerror.ErrWeakPassword)
	}
	return nil
}

func emailTaken() error {
	return domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already exists", domainerror.ErrEmailAlreadyExists)
}
