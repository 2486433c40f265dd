// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// CategorySuggestionRequest describes an expense to categorize.
type CategorySuggestionRequest struct {
	Description string
	Amount      string
	Categories  []string // labels to choose from
}

// CategorySuggestion is the suggested label with its confidence.
type CategorySuggestion struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// CategorySuggester proposes a category for an expense description.
type CategorySuggester interface {
	// Suggest returns the best matching category for the request.
	Suggest(ctx context.Context, request CategorySuggestionRequest) (*CategorySuggestion, error)

	// IsAvailable reports whether the suggester is configured.
	IsAvailable() bool
}
