// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/cashease/backend/internal/application/adapter"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiService implements adapter.CategorySuggester using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: defaultGeminiModel,
	}
}

// IsAvailable checks if the Gemini service is configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest asks Gemini to pick one of the request's categories for the expense.
func (s *GeminiService) Suggest(ctx context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildSuggestionPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	return parseSuggestion(text, request.Categories)
}

func buildSuggestionPrompt(request adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You categorize personal expenses for a budgeting app.
Pick exactly one category for the expense below from the allowed list.

ALLOWED CATEGORIES:
`)
	for _, c := range request.Categories {
		fmt.Fprintf(&sb, "- %s\n", c)
	}

	fmt.Fprintf(&sb, "\nEXPENSE:\nDescription: %q\n", request.Description)
	if request.Amount != "" {
		fmt.Fprintf(&sb, "Amount: %s\n", request.Amount)
	}

	sb.WriteString(`
Respond with a single JSON object:
{
  "category": "one of the allowed categories, spelled exactly",
  "confidence": 0.0-1.0,
  "reasoning": "short explanation"
}

RESPONSE FORMAT: return only the JSON object, no extra text.
`)

	return sb.String()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && text != "" {
			return string(text), nil
		}
	}

	return "", fmt.Errorf("no text content in response")
}

type geminiSuggestion struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseSuggestion decodes the model output. Markdown fences are tolerated and
// a category outside the allowed list is rejected.
func parseSuggestion(text string, allowed []string) (*adapter.CategorySuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	idx := slices.IndexFunc(allowed, func(c string) bool { return strings.EqualFold(c, strings.TrimSpace(raw.Category)) })
	if idx < 0 {
		return nil, fmt.Errorf("gemini suggested unknown category %q", raw.Category)
	}

	return &adapter.CategorySuggestion{
		Category:   allowed[idx],
		Confidence: min(max(raw.Confidence, 0), 1),
		Reasoning:  raw.Reasoning,
	}, nil
}
