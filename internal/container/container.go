package container

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/FACorreiaa/paragourmet/app/observability/metrics"
	"github.com/FACorreiaa/paragourmet/app/retry"
	"github.com/FACorreiaa/paragourmet/config"
	generativeAI "github.com/FACorreiaa/paragourmet/internal/api/generative_ai"
	imagesearch "github.com/FACorreiaa/paragourmet/internal/api/image_search"
	"github.com/FACorreiaa/paragourmet/internal/api/poi"
	"github.com/FACorreiaa/paragourmet/internal/api/prompt"
	"github.com/FACorreiaa/paragourmet/internal/api/scene"
	"github.com/FACorreiaa/paragourmet/internal/api/suggestion"
	"github.com/FACorreiaa/paragourmet/internal/router"
	"github.com/FACorreiaa/paragourmet/internal/types"
	"github.com/FACorreiaa/paragourmet/internal/web"
)

// Container holds all application dependencies
type Container struct {
	Config            *config.Config
	Logger            *slog.Logger
	Metrics           *metrics.AppMetrics
	Resolver          *scene.Resolver
	PromptService     *prompt.ServiceImpl
	PromptHandler     *prompt.HandlerImpl
	SuggestionHandler *suggestion.HandlerImpl
	WebHandler        *web.Handler
}

// PromptDeps is the part of the graph needed to build prompts, shared by the server and
// the prompt command.
type PromptDeps struct {
	Resolver      *scene.Resolver
	PromptService *prompt.ServiceImpl
}

// NewPromptDeps loads the timezone index and wires the Overpass-backed prompt service.
func NewPromptDeps(cfg *config.Config, logger *slog.Logger, m *metrics.AppMetrics) (*PromptDeps, error) {
	resolver, err := scene.NewDefaultResolver(logger.With(slog.String("component", "scene")))
	if err != nil {
		return nil, err
	}

	counter := poi.NewOverpassCounter(
		poi.DefaultCategoryTable(),
		cfg.Overpass.URL,
		&http.Client{Timeout: cfg.Overpass.Timeout},
		policy(cfg.Overpass.RetryConfig),
		m,
		logger.With(slog.String("component", "overpass")),
		poi.WithBudget(overpassBudget(cfg)),
	)

	return &PromptDeps{
		Resolver:      resolver,
		PromptService: prompt.NewServiceImpl(counter, logger.With(slog.String("component", "prompt"))),
	}, nil
}

// NewContainer initializes and returns a new dependency container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.AppMetrics) (*Container, error) {
	deps, err := NewPromptDeps(cfg, logger, m)
	if err != nil {
		return nil, err
	}

	generator, err := generativeAI.NewTextGenerator(ctx, providerConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion backend: %w", err)
	}
	provider := generativeAI.Provider(cfg.Suggestion.Provider)
	if provider == "" {
		provider = generativeAI.ProviderGemini
	}
	suggester := generativeAI.NewSuggester(generator, provider, policy(cfg.Suggestion.RetryConfig), m,
		logger.With(slog.String("component", "suggester")))

	images, err := newImageSearcher(ctx, cfg, logger, m)
	if err != nil {
		return nil, err
	}

	suggestionService := suggestion.NewServiceImpl(deps.PromptService, suggester, images,
		logger.With(slog.String("component", "suggestion")))

	webHandler, err := web.NewHandler(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to parse landing page: %w", err)
	}

	radius := cfg.Scene.DefaultRadius
	if radius <= 0 {
		radius = types.DefaultSearchRadiusM
	}

	return &Container{
		Config:            cfg,
		Logger:            logger,
		Metrics:           m,
		Resolver:          deps.Resolver,
		PromptService:     deps.PromptService,
		PromptHandler:     prompt.NewHandlerImpl(deps.Resolver, deps.PromptService, radius, logger),
		SuggestionHandler: suggestion.NewHandlerImpl(deps.Resolver, suggestionService, radius, logger),
		WebHandler:        webHandler,
	}, nil
}

// RouterConfig collects the handlers for router.SetupRouter.
func (c *Container) RouterConfig() *router.Config {
	return &router.Config{
		PromptHandler:     c.PromptHandler,
		SuggestionHandler: c.SuggestionHandler,
		WebHandler:        c.WebHandler,
		AllowedOrigins:    c.Config.Handlers.CORS.AllowedOrigins,
	}
}

func providerConfig(cfg *config.Config) generativeAI.ProviderConfig {
	pc := generativeAI.ProviderConfig{
		Provider: generativeAI.Provider(cfg.Suggestion.Provider),
		GenerationConfig: generativeAI.GenerationConfig{
			Model:       cfg.Suggestion.Model,
			Temperature: float32(cfg.Suggestion.Temperature),
			MaxTokens:   cfg.Suggestion.MaxTokens,
		},
	}
	switch pc.Provider {
	case generativeAI.ProviderOpenAI:
		pc.APIKey = cfg.Secrets.OpenAIAPIKey
	case generativeAI.ProviderAnthropic:
		pc.APIKey = cfg.Secrets.AnthropicAPIKey
	case generativeAI.ProviderOllama:
		pc.BaseURL = cfg.Suggestion.OllamaHost
	default:
		pc.APIKey = cfg.Secrets.GeminiAPIKey
	}
	return pc
}

// newImageSearcher falls back to a disabled searcher when no credentials are set, so
// suggestions still work without pictures.
func newImageSearcher(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.AppMetrics) (imagesearch.Searcher, error) {
	l := logger.With(slog.String("component", "image_search"))
	client, err := imagesearch.NewCustomSearchClient(ctx,
		cfg.Secrets.CustomSearchAPIKey,
		cfg.Secrets.SearchEngineID,
		policy(cfg.ImageSearch.RetryConfig),
		m,
		l,
	)
	if errors.Is(err, types.ErrMissingAPIKey) {
		l.Warn("CUSTOM_SEARCH_API_KEY or SEARCH_ENGINE_ID not set, image search disabled")
		return imagesearch.DisabledSearcher{}, nil
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// overpassBudget keeps the POI lookup to a third of the request timeout so a hanging
// Overpass still leaves room for the generative call.
func overpassBudget(cfg *config.Config) time.Duration {
	budget := cfg.Overpass.Budget
	if budget <= 0 {
		budget = poi.DefaultBudget
	}
	if limit := cfg.Server.Timeout / 3; limit > 0 && budget > limit {
		budget = limit
	}
	return budget
}

// policy falls back to the default for unset fields.
func policy(rc config.RetryConfig) retry.Policy {
	p := retry.DefaultPolicy()
	if rc.MaxAttempts > 0 {
		p.MaxAttempts = rc.MaxAttempts
	}
	if rc.BaseDelay > 0 {
		p.BaseDelay = rc.BaseDelay
	}
	return p
}
