// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/application/usecase/auth"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/entrypoint/dto"
)

// AuthController serves /auth. Register and login answer with the same body.
type AuthController struct {
	register *auth.RegisterUserUseCase
	login    *auth.LoginUserUseCase
	refresh  *auth.RefreshTokenUseCase
	logout   *auth.LogoutUserUseCase
}

func NewAuthController(
	register *auth.RegisterUserUseCase,
	login *auth.LoginUserUseCase,
	refresh *auth.RefreshTokenUseCase,
	logout *auth.LogoutUserUseCase,
) *AuthController {
	return &AuthController{register: register, login: login, refresh: refresh, logout: logout}
}

// Register handles POST /auth/register.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingFields)) {
		return
	}

	output, err := c.register.Execute(ctx.Request.Context(), auth.RegisterUserInput(req))
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}
	signedIn(ctx, http.StatusCreated, output.Tokens, output.User)
}

// Login handles POST /auth/login.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingFields)) {
		return
	}

	output, err := c.login.Execute(ctx.Request.Context(), auth.LoginUserInput{Email: req.Email, Password: req.Password})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}
	signedIn(ctx, http.StatusOK, output.Tokens, output.User)
}

// RefreshToken handles POST /auth/refresh. The old refresh token is spent.
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingToken)) {
		return
	}

	output, err := c.refresh.Execute(ctx.Request.Context(), auth.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTokenResponse(output.Tokens))
}

// Logout handles POST /auth/logout. It answers 200 even for unknown tokens so
// clients can always drop their local state.
func (c *AuthController) Logout(ctx *gin.Context) {
	message := "Successfully logged out"

	var req dto.LogoutRequest
	if ctx.ShouldBindJSON(&req) == nil {
		output, err := c.logout.Execute(ctx.Request.Context(), auth.LogoutUserInput{
			RefreshToken: req.RefreshToken,
			AllDevices:   req.AllDevices,
		})
		if err == nil {
			message = output.Message
		}
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

func signedIn(ctx *gin.Context, status int, tokens *adapter.TokenPair, user *entity.User) {
	ctx.JSON(status, dto.AuthResponse{
		TokenResponse: dto.ToTokenResponse(tokens),
		User:          dto.ToUserResponse(user),
	})
}

func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	if !respondCoded(ctx, err, c.getStatusCodeForAuthError) {
		handleUnmappedError(ctx, err)
	}
}

func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
