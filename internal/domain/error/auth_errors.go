package error

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrWeakPassword covers both too short and too long (bcrypt stops at 72 bytes).
	ErrWeakPassword = errors.New("password does not meet minimum requirements")
	ErrInvalidEmail = errors.New("invalid email format")
)

type AuthErrorCode string

const (
	ErrCodeEmailExists   AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword  AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail  AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields AuthErrorCode = "AUTH-010004"

	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"

	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
)

// AuthError is returned by the auth use cases and the auth middleware.
type AuthError = Coded[AuthErrorCode]

func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return newCoded(code, message, err)
}
