package error

import "errors"

// Expense domain errors.
var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")
	ErrInvalidExpenseDate   = errors.New("invalid expense date")
	ErrInvalidCategory      = errors.New("invalid expense category")
	ErrDescriptionTooLong   = errors.New("description too long")
	// ErrInvalidMonthFilter is returned when a month filter is not in YYYY-MM form.
	ErrInvalidMonthFilter = errors.New("invalid month filter")
)

type ExpenseErrorCode string

const (
	// validation
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseDate   ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidCategory      ExpenseErrorCode = "EXP-010004"
	ErrCodeDescriptionTooLong   ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010006"
	ErrCodeInvalidMonthFilter   ExpenseErrorCode = "EXP-010007"

	ErrCodeExpensePersistFailed ExpenseErrorCode = "EXP-020001"

	// category suggestion
	ErrCodeSuggestionFailed ExpenseErrorCode = "EXP-030001"
)

type ExpenseError = Coded[ExpenseErrorCode]

func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return newCoded(code, message, err)
}
