package generativeAI

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

var _ TextGenerator = (*AIClient)(nil)

// AIClient talks to Gemini.
type AIClient struct {
	client *genai.Client
	config GenerationConfig
}

func NewAIClient(ctx context.Context, apiKey, baseURL string, cfg GenerationConfig) (*AIClient, error) {
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}
	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &AIClient{
		client: client,
		config: cfg,
	}, nil
}

func (ai *AIClient) contentConfig(system string) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](ai.config.Temperature),
		MaxOutputTokens:   int32(ai.config.MaxTokens),
		ResponseMIMEType:  "application/json",
	}
}

func (ai *AIClient) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	result, err := ai.client.Models.GenerateContent(ctx, ai.config.Model, genai.Text(prompt), ai.contentConfig(system))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return result.Text(), nil
}
