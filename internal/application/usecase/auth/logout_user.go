package auth

import (
	"context"
	"log/slog"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/application/session"
)

type LogoutUserInput struct {
	RefreshToken string
	// AllDevices revokes every refresh token of the user, not just this one.
	AllDevices bool
}

type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase revokes the refresh token and discards the session.
type LogoutUserUseCase struct {
	tokens   adapter.TokenService
	sessions *session.Manager
}

func NewLogoutUserUseCase(tokens adapter.TokenService, sessions *session.Manager) *LogoutUserUseCase {
	return &LogoutUserUseCase{tokens: tokens, sessions: sessions}
}

// Execute logs the user out. It always succeeds: an unknown or expired token
// means there is nothing left to revoke.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	claims, err := uc.tokens.ParseRefreshToken(ctx, input.RefreshToken)
	if err == nil {
		uc.sessions.Close(claims.UserID)
	}

	if input.AllDevices && claims != nil {
		err = uc.tokens.RevokeAll(ctx, claims.UserID)
	} else {
		err = uc.tokens.Revoke(ctx, input.RefreshToken)
	}
	if err != nil {
		slog.Debug("refresh token revocation failed during logout", "error", err)
	}

	return &LogoutUserOutput{Message: "Successfully logged out"}, nil
}
