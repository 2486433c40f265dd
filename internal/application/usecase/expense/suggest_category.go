package expense

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/application/session"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
)

// SuggestCategoryInput describes the expense to categorize.
type SuggestCategoryInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
}

// SuggestCategoryOutput is the suggested category.
type SuggestCategoryOutput struct {
	Category   string
	Confidence float64
	Reasoning  string
}

// SuggestCategoryUseCase proposes a category for a new expense. The choices
// are the default categories plus any the user already spends in.
type SuggestCategoryUseCase struct {
	sessions  *session.Manager
	suggester adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(sessions *session.Manager, suggester adapter.CategorySuggester) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		sessions:  sessions,
		suggester: suggester,
	}
}

// Execute asks the suggester for a category.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeMissingExpenseFields, "description is required", nil)
	}

	if !uc.suggester.IsAvailable() {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeSuggestionFailed, "category suggestion is not available", nil)
	}

	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	categories := slices.Clone(entity.DefaultCategories)
	for _, c := range s.Summary().Categories {
		if !slices.ContainsFunc(categories, func(d string) bool { return strings.EqualFold(c, d) }) {
			categories = append(categories, c)
		}
	}

	req := adapter.CategorySuggestionRequest{
		Description: description,
		Categories:  categories,
	}
	if input.Amount.IsPositive() {
		req.Amount = input.Amount.StringFixed(2)
	}

	suggestion, err := uc.suggester.Suggest(ctx, req)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeSuggestionFailed, "failed to suggest a category", err)
	}

	return &SuggestCategoryOutput{
		Category:   suggestion.Category,
		Confidence: suggestion.Confidence,
		Reasoning:  suggestion.Reasoning,
	}, nil
}
