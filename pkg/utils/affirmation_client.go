package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// TextGenClientInterface is the contract this service expects from the external
// text-generation collaborator. The generation intelligence lives on the other
// side of this interface; we only build a short mood-aware instruction.
type TextGenClientInterface interface {
	GenerateAffirmation(ctx context.Context, mood string, recentMoods []string) (string, error)
}

func affirmationPrompt(mood string, recentMoods []string) string {
	var b strings.Builder
	b.WriteString("Write one short, warm, first-person affirmation (max 2 sentences) for a journaling app user. ")
	fmt.Fprintf(&b, "Their mood today is %q.", mood)
	if len(recentMoods) > 0 {
		fmt.Fprintf(&b, " Their recent moods were: %s.", strings.Join(recentMoods, ", "))
	}
	b.WriteString(" Plain text only, no quotes, no markdown.")
	return b.String()
}

type OpenAIAffirmationClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIAffirmationClient(apiKey, model string) TextGenClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAffirmationClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIAffirmationClient) GenerateAffirmation(ctx context.Context, mood string, recentMoods []string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.8,
		MaxTokens:   120,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: affirmationPrompt(mood, recentMoods)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai affirmation: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai affirmation: no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GeminiAffirmationClient is the free-tier fallback provider.
type GeminiAffirmationClient struct {
	client *genai.Client
	model  string
}

func NewGeminiAffirmationClient(apiKey, model string) (TextGenClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiAffirmationClient{client: client, model: model}, nil
}

func (c *GeminiAffirmationClient) GenerateAffirmation(ctx context.Context, mood string, recentMoods []string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.8)
	m.SetMaxOutputTokens(120)

	resp, err := m.GenerateContent(ctx, genai.Text(affirmationPrompt(mood, recentMoods)))
	if err != nil {
		return "", fmt.Errorf("gemini affirmation: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini affirmation: no content generated")
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

// NewTextGenClient picks a provider by name ("openai" or "gemini").
func NewTextGenClient(provider, apiKey, model string) (TextGenClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIAffirmationClient(apiKey, model), nil
	case "gemini":
		return NewGeminiAffirmationClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported affirmation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
