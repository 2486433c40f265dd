package adapters

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
)

const (
	keywordConfidence  = 0.6
	fallbackConfidence = 0.1
)

// categoryKeywords maps default categories to lowercase substrings that hint at them.
var categoryKeywords = map[string][]string{
	"Food":          {"food", "lunch", "dinner", "breakfast", "restaurant", "cafe", "coffee", "pizza", "grocery", "groceries", "snack", "swiggy", "zomato"},
	"Transport":     {"uber", "ola", "taxi", "cab", "bus", "train", "metro", "fuel", "petrol", "diesel", "parking", "flight"},
	"Shopping":      {"amazon", "flipkart", "clothes", "shoes", "mall", "shopping", "gift"},
	"Bills":         {"bill", "electricity", "water", "rent", "internet", "wifi", "phone", "recharge", "insurance", "emi"},
	"Entertainment": {"movie", "netflix", "spotify", "concert", "game", "cinema", "prime", "party"},
	"Health":        {"doctor", "pharmacy", "medicine", "hospital", "gym", "clinic", "dental"},
	"Education":     {"book", "course", "tuition", "school", "college", "exam", "udemy"},
}

// KeywordSuggester picks a category by substring match on the description.
// It is always available and never calls out to the network.
type KeywordSuggester struct{}

// NewKeywordSuggester creates a keyword-based suggester.
func NewKeywordSuggester() *KeywordSuggester {
	return &KeywordSuggester{}
}

// IsAvailable always reports true.
func (KeywordSuggester) IsAvailable() bool { return true }

// Suggest returns the allowed category with the most keyword hits. Ties go to
// the category listed first. With no hits it returns "Other" when allowed.
func (KeywordSuggester) Suggest(_ context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	desc := strings.ToLower(request.Description)
	allowed := request.Categories
	if len(allowed) == 0 {
		allowed = entity.DefaultCategories
	}

	best, bestHits := "", 0
	for _, c := range allowed {
		hits := 0
		for _, kw := range categoryKeywords[c] {
			if strings.Contains(desc, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = c, hits
		}
	}

	if bestHits > 0 {
		return &adapter.CategorySuggestion{
			Category:   best,
			Confidence: keywordConfidence,
			Reasoning:  "matched description keywords",
		}, nil
	}

	fallback := allowed[len(allowed)-1]
	if slices.Contains(allowed, "Other") {
		fallback = "Other"
	}
	return &adapter.CategorySuggestion{
		Category:   fallback,
		Confidence: fallbackConfidence,
		Reasoning:  "no keyword matched",
	}, nil
}

// FallbackSuggester tries the primary suggester and falls back when it is
// unavailable or fails.
type FallbackSuggester struct {
	primary  adapter.CategorySuggester
	fallback adapter.CategorySuggester
	logger   *slog.Logger
}

// NewFallbackSuggester chains primary and fallback suggesters.
func NewFallbackSuggester(primary, fallback adapter.CategorySuggester) *FallbackSuggester {
	return &FallbackSuggester{
		primary:  primary,
		fallback: fallback,
		logger:   slog.Default().With("component", "category-suggester"),
	}
}

// IsAvailable reports whether either suggester can answer.
func (s *FallbackSuggester) IsAvailable() bool {
	return s.primary.IsAvailable() || s.fallback.IsAvailable()
}

// Suggest implements adapter.CategorySuggester.
func (s *FallbackSuggester) Suggest(ctx context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	if s.primary.IsAvailable() {
		suggestion, err := s.primary.Suggest(ctx, request)
		if err == nil {
			return suggestion, nil
		}
		s.logger.Warn("primary suggester failed, using fallback", "error", err)
	}
	return s.fallback.Suggest(ctx, request)
}
