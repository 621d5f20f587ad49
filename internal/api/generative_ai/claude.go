package generativeAI

import (
	"context"
	"fmt"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"
)

const defaultClaudeModel = "claude-3-5-haiku-latest"

var _ TextGenerator = (*ClaudeClient)(nil)

// ClaudeClient talks to the Anthropic Messages API.
type ClaudeClient struct {
	client *anthropic.Client
	config GenerationConfig
}

func NewClaudeClient(apiKey, baseURL string, cfg GenerationConfig) *ClaudeClient {
	if cfg.Model == "" {
		cfg.Model = defaultClaudeModel
	}
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	return &ClaudeClient{
		client: anthropic.NewClient(apiKey, opts...),
		config: cfg,
	}
}

func (c *ClaudeClient) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	temperature := c.config.Temperature
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:       anthropic.Model(c.config.Model),
		System:      system,
		Messages:    []anthropic.Message{anthropic.NewUserTextMessage(prompt)},
		MaxTokens:   c.config.MaxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("anthropic create message: %w", err)
	}

	var b strings.Builder
	for _, content := range resp.Content {
		if content.Type == anthropic.MessagesContentTypeText {
			b.WriteString(content.GetText())
		}
	}
	return b.String(), nil
}
