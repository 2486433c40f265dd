package error

import "errors"

var (
	ErrGoalNotFound         = errors.New("goal not found")
	ErrInvalidGoalAmount    = errors.New("invalid goal amount")
	ErrInvalidGoalDate      = errors.New("invalid goal date")
	ErrInvalidSavingsAmount = errors.New("savings amount must be greater than zero")
	// ErrGoalAlreadyCompleted rejects deposits once the target has been reached.
	ErrGoalAlreadyCompleted   = errors.New("goal already completed")
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

type GoalErrorCode string

const (
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalAmount      GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalDate        GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010004"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010005"

	ErrCodeInvalidSavingsAmount GoalErrorCode = "GOL-020001"
	ErrCodeGoalAlreadyCompleted GoalErrorCode = "GOL-020002"

	ErrCodeGoalPersistFailed GoalErrorCode = "GOL-030001"
)

// GoalError is returned by the goal use cases.
type GoalError = Coded[GoalErrorCode]

func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return newCoded(code, message, err)
}
