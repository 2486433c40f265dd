package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/cashease/backend/internal/application/adapter"
	domainerror "github.com/cashease/backend/internal/domain/error"
)

type RefreshTokenInput struct {
	RefreshToken string
}

type RefreshTokenOutput struct {
	Tokens *adapter.TokenPair
}

// RefreshTokenUseCase rotates a refresh token: the presented token is revoked
// and a new pair issued, so each refresh token works once.
type RefreshTokenUseCase struct {
	tokens adapter.TokenService
}

func NewRefreshTokenUseCase(tokens adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{tokens: tokens}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeMissingToken, "refresh token is required", domainerror.ErrInvalidToken)
	}

	claims, err := uc.tokens.ParseRefreshToken(ctx, input.RefreshToken)
	switch {
	case errors.Is(err, domainerror.ErrExpiredToken):
		return nil, domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "refresh token has expired", err)
	case err != nil:
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid refresh token", domainerror.ErrInvalidToken)
	}

	active, err := uc.tokens.IsActive(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check token validity: %w", err)
	}
	if !active {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "refresh token has been revoked", domainerror.ErrInvalidToken)
	}

	if err := uc.tokens.Revoke(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}
	pair, err := uc.tokens.Issue(ctx, claims.UserID, claims.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}
	return &RefreshTokenOutput{Tokens: pair}, nil
}
