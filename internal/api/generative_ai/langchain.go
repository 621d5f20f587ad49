package generativeAI

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	defaultOpenAIModel = "gpt-4.1-mini"
	defaultOllamaModel = "llama3.1"
)

var _ TextGenerator = (*LangChainClient)(nil)

// LangChainClient drives any langchaingo chat model in JSON mode.
type LangChainClient struct {
	llm    llms.Model
	config GenerationConfig
}

func NewLangChainClient(llm llms.Model, cfg GenerationConfig) *LangChainClient {
	return &LangChainClient{llm: llm, config: cfg}
}

func NewOpenAIClient(apiKey, baseURL string, cfg GenerationConfig) (*LangChainClient, error) {
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(cfg.Model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return NewLangChainClient(llm, cfg), nil
}

func NewOllamaClient(serverURL string, cfg GenerationConfig) (*LangChainClient, error) {
	if cfg.Model == "" {
		cfg.Model = defaultOllamaModel
	}
	opts := []ollama.Option{
		ollama.WithModel(cfg.Model),
		ollama.WithFormat("json"),
	}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}

	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return NewLangChainClient(llm, cfg), nil
}

func (c *LangChainClient) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	content, err := c.llm.GenerateContent(ctx, messages,
		llms.WithJSONMode(),
		llms.WithTemperature(float64(c.config.Temperature)),
		llms.WithMaxTokens(c.config.MaxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(content.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return content.Choices[0].Content, nil
}
