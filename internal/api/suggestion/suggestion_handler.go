package suggestion

import (
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/paragourmet/internal/api"
	"github.com/FACorreiaa/paragourmet/internal/api/scene"
	"github.com/FACorreiaa/paragourmet/internal/types"
)

const defaultLang = "en"

type HandlerImpl struct {
	resolver      *scene.Resolver
	service       Service
	defaultRadius int
	logger        *slog.Logger
}

func NewHandlerImpl(resolver *scene.Resolver, service Service, defaultRadius int, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		resolver:      resolver,
		service:       service,
		defaultRadius: defaultRadius,
		logger:        logger,
	}
}

// optionsFromQuery reads lang (default "en") and diversity_mode ("true" in any case).
func optionsFromQuery(r *http.Request) types.SuggestionOptions {
	q := r.URL.Query()
	lang := strings.ToLower(strings.TrimSpace(q.Get("lang")))
	if lang == "" {
		lang = defaultLang
	}
	return types.SuggestionOptions{
		Lang:          lang,
		DiversityMode: strings.EqualFold(q.Get("diversity_mode"), "true"),
	}
}

// GetSuggestion godoc
// @Summary      Suggest food for a scene
// @Description  Builds the scene prompt, asks the generative backend for one food or drink item and looks up a picture of it.
// @Tags         Suggestion
// @Produce      json
// @Param        lat             query number  true  "Latitude"
// @Param        lon             query number  true  "Longitude"
// @Param        city            query string  true  "City"
// @Param        district        query string  true  "District"
// @Param        temp_c          query number  true  "Temperature in Celsius"
// @Param        sky             query string  true  "Sky condition"
// @Param        humidity        query integer false "Relative humidity in percent"
// @Param        radius          query integer false "POI search radius in metres"
// @Param        lang            query string  false "Response language (ko or en)"
// @Param        diversity_mode  query boolean false "Ask for a different option than last time"
// @Success      200 {object} types.SuggestionResponse
// @Failure      400 {object} types.Response "Invalid or missing query parameters"
// @Failure      502 {object} types.Response "Generative backend failed"
// @Router       /api/suggestion [get]
func (h *HandlerImpl) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SuggestionHandler").Start(r.Context(), "GetSuggestion", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/suggestion"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetSuggestion"))

	in, err := scene.ParseQuery(r.URL.Query(), h.defaultRadius)
	if err != nil {
		l.WarnContext(ctx, "Bad request to suggestion endpoint", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid or missing query parameters: "+err.Error())
		return
	}

	opts := optionsFromQuery(r)
	resp, err := h.service.Suggest(ctx, h.resolver.NewScene(in), opts)
	if err != nil {
		l.ErrorContext(ctx, "Failed to get suggestion", slog.Any("error", err))
		span.RecordError(err)
		span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(http.StatusBadGateway))
		api.ErrorResponse(w, r, http.StatusBadGateway, "Failed to get suggestion from AI.")
		return
	}

	span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(http.StatusOK))
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
