package error

import "errors"

// ErrInvalidLimitAmount is returned when a monthly limit is negative. Zero clears the limit.
var ErrInvalidLimitAmount = errors.New("invalid limit amount")

type BudgetErrorCode string

const (
	ErrCodeInvalidLimitAmount BudgetErrorCode = "BUD-010001"
	ErrCodeLimitPersistFailed BudgetErrorCode = "BUD-020001"
)

type BudgetError = Coded[BudgetErrorCode]

func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return newCoded(code, message, err)
}
