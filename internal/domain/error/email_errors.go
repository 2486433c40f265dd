package error

import "errors"

var (
	ErrEmailQueueFailed     = errors.New("failed to queue email")
	ErrEmailSendFailed      = errors.New("failed to send email")
	ErrInvalidTemplate      = errors.New("invalid email template")
	ErrTemplateRenderFailed = errors.New("failed to render email template")
	ErrEmailJobNotFound     = errors.New("email job not found")

	// A permanent failure (bad recipient, rejected payload) is never retried.
	ErrPermanentEmailFailure = errors.New("permanent email failure")
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"
	ErrCodeEmailJobNotFound EmailErrorCode = "EMAIL-010002"

	ErrCodeEmailSendFailed       EmailErrorCode = "EMAIL-020001"
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	ErrCodeInvalidTemplate      EmailErrorCode = "EMAIL-030001"
	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-030002"
)

type EmailError = Coded[EmailErrorCode]

func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return newCoded(code, message, err)
}
