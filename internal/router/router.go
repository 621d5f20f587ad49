package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	appLogger "github.com/FACorreiaa/paragourmet/app/logger"
	_ "github.com/FACorreiaa/paragourmet/docs"
	"github.com/FACorreiaa/paragourmet/internal/api"
	"github.com/FACorreiaa/paragourmet/internal/api/prompt"
	"github.com/FACorreiaa/paragourmet/internal/api/suggestion"
	"github.com/FACorreiaa/paragourmet/internal/web"
)

// Config contains dependencies needed for the router setup
type Config struct {
	PromptHandler     *prompt.HandlerImpl
	SuggestionHandler *suggestion.HandlerImpl
	WebHandler        *web.Handler
	AllowedOrigins    []string
}

// DefaultRequestTimeout applies when no server timeout is configured.
const DefaultRequestTimeout = 60 * time.Second

// NewServerHandler wraps SetupRouter in the server-wide middleware chain.
func NewServerHandler(cfg *Config, logger *slog.Logger, timeout time.Duration) http.Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(appLogger.StructuredLogger(logger))
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(middleware.Timeout(timeout))
	mux.Use(middleware.Compress(5, "application/json", "text/html"))
	mux.Mount("/", SetupRouter(cfg))
	return mux
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", health)

	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Get("/prompt", cfg.PromptHandler.GetPrompt)
		r.Get("/suggestion", cfg.SuggestionHandler.GetSuggestion)
	})

	r.Get("/", cfg.WebHandler.Index(web.DefaultLang))
	r.Get("/kr", cfg.WebHandler.Index("ko"))
	r.Get("/en", cfg.WebHandler.Index("en"))

	return r
}

// health godoc
// @Summary      Health check
// @Description  Liveness probe.
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]bool
// @Router       /health [get]
func health(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]bool{"ok": true})
}
