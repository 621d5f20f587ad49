package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"maxAttempts"`
	BaseDelay   time.Duration `mapstructure:"baseDelay"`
}

type Config struct {
	Mode   string `mapstructure:"mode"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
		CORS struct {
			AllowedOrigins []string `mapstructure:"allowedOrigins"`
		} `mapstructure:"cors"`
	} `mapstructure:"handlers"`
	Overpass struct {
		URL         string        `mapstructure:"url"`
		Timeout     time.Duration `mapstructure:"timeout"`
		Budget      time.Duration `mapstructure:"budget"`
		RetryConfig `mapstructure:",squash"`
	} `mapstructure:"overpass"`
	Scene struct {
		DefaultRadius int `mapstructure:"defaultRadius"`
	} `mapstructure:"scene"`
	Suggestion struct {
		Provider    string  `mapstructure:"provider"`
		Model       string  `mapstructure:"model"`
		Temperature float64 `mapstructure:"temperature"`
		MaxTokens   int     `mapstructure:"maxTokens"`
		OllamaHost  string  `mapstructure:"ollamaHost"`
		RetryConfig `mapstructure:",squash"`
	} `mapstructure:"suggestion"`
	ImageSearch struct {
		RetryConfig `mapstructure:",squash"`
	} `mapstructure:"imageSearch"`
	Secrets struct {
		GeminiAPIKey       string `mapstructure:"geminiAPIKey"`
		OpenAIAPIKey       string `mapstructure:"openaiAPIKey"`
		AnthropicAPIKey    string `mapstructure:"anthropicAPIKey"`
		CustomSearchAPIKey string `mapstructure:"customSearchAPIKey"`
		SearchEngineID     string `mapstructure:"searchEngineID"`
	} `mapstructure:"secrets"`
}

// secretEnv maps config keys to the environment variables that carry them.
var secretEnv = map[string]string{
	"secrets.geminiAPIKey":       "GOOGLE_GEMINI_API_KEY",
	"secrets.openaiAPIKey":       "OPENAI_API_KEY",
	"secrets.anthropicAPIKey":    "ANTHROPIC_API_KEY",
	"secrets.customSearchAPIKey": "CUSTOM_SEARCH_API_KEY",
	"secrets.searchEngineID":     "SEARCH_ENGINE_ID",
}

// InitConfig loads config.yml from the usual locations, or from explicitPath when set,
// and falls back to the embedded copy.
func InitConfig(explicitPath string) (Config, error) {
	var config Config
	v := viper.New()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("config")
		v.AddConfigPath("/app/config")
		v.SetConfigName("config")
		v.SetConfigType("yml")
	}

	if err := v.ReadInConfig(); err != nil {
		if explicitPath != "" {
			return Config{}, fmt.Errorf("failed to read config %s: %w", explicitPath, err)
		}
		fmt.Fprintf(os.Stderr, "Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		v.SetConfigType("yml")
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	for key, env := range secretEnv {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	if err := v.BindEnv("mode", "APP_ENV"); err != nil {
		return Config{}, fmt.Errorf("failed to bind APP_ENV: %w", err)
	}

	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return config, nil
}
