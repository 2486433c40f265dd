package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
)

func TestKeywordSuggester(t *testing.T) {
	s := NewKeywordSuggester()

	tests := []struct {
		description string
		want        string
	}{
		{description: "Uber ride to office", want: "Transport"},
		{description: "Lunch at cafe", want: "Food"},
		{description: "Electricity bill", want: "Bills"},
		{description: "Netflix subscription", want: "Entertainment"},
		{description: "Something unusual", want: "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := s.Suggest(context.Background(), adapter.CategorySuggestionRequest{
				Description: tt.description,
				Categories:  entity.DefaultCategories,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Category)
		})
	}
}

func TestKeywordSuggester_RestrictedCategories(t *testing.T) {
	got, err := NewKeywordSuggester().Suggest(context.Background(), adapter.CategorySuggestionRequest{
		Description: "pizza night",
		Categories:  []string{"Travel", "Misc"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Misc", got.Category)
}

type stubSuggester struct {
	available bool
	result    *adapter.CategorySuggestion
	err       error
	calls     int
}

func (s *stubSuggester) IsAvailable() bool { return s.available }

func (s *stubSuggester) Suggest(context.Context, adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	s.calls++
	return s.result, s.err
}

func TestFallbackSuggester(t *testing.T) {
	ctx := context.Background()
	req := adapter.CategorySuggestionRequest{Description: "bus", Categories: entity.DefaultCategories}

	t.Run("primary answers", func(t *testing.T) {
		primary := &stubSuggester{available: true, result: &adapter.CategorySuggestion{Category: "Bills"}}
		got, err := NewFallbackSuggester(primary, NewKeywordSuggester()).Suggest(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Bills", got.Category)
	})

	t.Run("primary fails", func(t *testing.T) {
		primary := &stubSuggester{available: true, err: errors.New("quota")}
		got, err := NewFallbackSuggester(primary, NewKeywordSuggester()).Suggest(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Transport", got.Category)
		assert.Equal(t, 1, primary.calls)
	})

	t.Run("primary unavailable", func(t *testing.T) {
		primary := &stubSuggester{}
		got, err := NewFallbackSuggester(primary, NewKeywordSuggester()).Suggest(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Transport", got.Category)
		assert.Zero(t, primary.calls)
	})
}

func TestParseSuggestion(t *testing.T) {
	allowed := entity.DefaultCategories

	got, err := parseSuggestion("```json\n{\"category\":\"food\",\"confidence\":1.4,\"reasoning\":\"meal\"}\n```", allowed)
	require.NoError(t, err)
	assert.Equal(t, "Food", got.Category)
	assert.Equal(t, 1.0, got.Confidence)

	_, err = parseSuggestion(`{"category":"Crypto"}`, allowed)
	assert.Error(t, err)

	_, err = parseSuggestion(`not json`, allowed)
	assert.Error(t, err)
}

func TestGeminiService_Unavailable(t *testing.T) {
	s := NewGeminiService("")
	assert.False(t, s.IsAvailable())
	_, err := s.Suggest(context.Background(), adapter.CategorySuggestionRequest{Description: "x"})
	assert.Error(t, err)
}
