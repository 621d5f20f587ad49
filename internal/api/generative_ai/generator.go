package generativeAI

import (
	"context"
	"fmt"

	"github.com/FACorreiaa/paragourmet/internal/types"
)

// TextGenerator sends one system instruction and one user prompt to a model and returns
// the raw reply text.
type TextGenerator interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
}

type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderOllama    Provider = "ollama"
	ProviderAnthropic Provider = "anthropic"
)

// GenerationConfig holds the sampling settings shared by every backend.
type GenerationConfig struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// ProviderConfig selects and configures one backend. BaseURL is optional for hosted
// providers and is the server address for ollama.
type ProviderConfig struct {
	Provider Provider
	APIKey   string
	BaseURL  string
	GenerationConfig
}

// NewTextGenerator builds the backend named by cfg.Provider.
func NewTextGenerator(ctx context.Context, cfg ProviderConfig) (TextGenerator, error) {
	if cfg.Provider != ProviderOllama && cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: %w", cfg.Provider, types.ErrMissingAPIKey)
	}

	switch cfg.Provider {
	case ProviderGemini, "":
		return NewAIClient(ctx, cfg.APIKey, cfg.BaseURL, cfg.GenerationConfig)
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.GenerationConfig)
	case ProviderOllama:
		return NewOllamaClient(cfg.BaseURL, cfg.GenerationConfig)
	case ProviderAnthropic:
		return NewClaudeClient(cfg.APIKey, cfg.BaseURL, cfg.GenerationConfig), nil
	default:
		return nil, fmt.Errorf("unknown suggestion provider %q", cfg.Provider)
	}
}
