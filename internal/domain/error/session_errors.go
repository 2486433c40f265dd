package error

import "errors"

// Session errors wrap store failures while loading a user snapshot or saving
// streak state.
var (
	ErrSessionLoadFailed   = errors.New("failed to load session")
	ErrStreakPersistFailed = errors.New("failed to store streak")
)

type SessionErrorCode string

const (
	ErrCodeSessionLoadFailed   SessionErrorCode = "SES-010001"
	ErrCodeStreakPersistFailed SessionErrorCode = "SES-010002"
)

type SessionError = Coded[SessionErrorCode]

func NewSessionError(code SessionErrorCode, message string, err error) *SessionError {
	return newCoded(code, message, err)
}
