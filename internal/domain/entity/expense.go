// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxDescriptionLength is the maximum length of an expense description.
const MaxDescriptionLength = 255

// DefaultCategories are the labels offered when suggesting a category.
// Categories are free text; this list is not enforced.
var DefaultCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Bills",
	"Entertainment",
	"Health",
	"Education",
	"Other",
}

// Expense represents a single dated spending record.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time // Calendar date, no time component
	CreatedAt   time.Time
}

// NewExpense creates a new Expense entity. The date is truncated to a calendar day.
func NewExpense(userID uuid.UUID, description string, amount decimal.Decimal, category string, date time.Time) *Expense {
	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        DateOf(date),
		CreatedAt:   time.Now().UTC(),
	}
}

// InMonth reports whether the expense date falls in the given calendar month.
func (e *Expense) InMonth(year int, month time.Month) bool {
	return e.Date.Year() == year && e.Date.Month() == month
}
