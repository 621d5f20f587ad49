package prompt

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/paragourmet/internal/api"
	"github.com/FACorreiaa/paragourmet/internal/api/scene"
	"github.com/FACorreiaa/paragourmet/internal/types"
)

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

// GetPrompt godoc
// @Summary      Build scene prompt
// @Description  Builds the food suggestion prompt for a location and weather snapshot.
// @Tags         Prompt
// @Produce      json
// @Param        lat       query number  true  "Latitude"
// @Param        lon       query number  true  "Longitude"
// @Param        city      query string  true  "City"
// @Param        district  query string  true  "District"
// @Param        temp_c    query number  true  "Temperature in Celsius"
// @Param        sky       query string  true  "Sky condition"
// @Param        humidity  query integer false "Relative humidity in percent"
// @Param        radius    query integer false "POI search radius in metres"
// @Success      200 {object} types.PromptResponse
// @Failure      400 {object} types.Response "Invalid or missing query parameters"
// @Router       /api/prompt [get]
func (h *HandlerImpl) GetPrompt(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PromptHandler").Start(r.Context(), "GetPrompt", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/prompt"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetPrompt"))

	in, err := scene.ParseQuery(r.URL.Query(), h.defaultRadius)
	if err != nil {
		l.WarnContext(ctx, "Bad request to prompt endpoint", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid or missing query parameters: "+err.Error())
		return
	}

	sc := h.resolver.NewScene(in)
	text := h.service.GeneratePrompt(ctx, sc)

	span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(http.StatusOK))
	api.WriteJSONResponse(w, r, http.StatusOK, types.PromptResponse{Prompt: text})
}
