package prompt

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/paragourmet/internal/api/poi"
	"github.com/FACorreiaa/paragourmet/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service turns a Scene into the final prompt text.
type Service interface {
	GeneratePrompt(ctx context.Context, scene types.Scene) string
}

type ServiceImpl struct {
	counter poi.Counter
	logger  *slog.Logger
}

func NewServiceImpl(counter poi.Counter, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		counter: counter,
		logger:  logger,
	}
}

// GeneratePrompt counts POIs around the scene, derives intents and renders the prompt.
// It always returns a prompt; POI outages only make it less specific.
func (s *ServiceImpl) GeneratePrompt(ctx context.Context, scene types.Scene) string {
	ctx, span := otel.Tracer("PromptService").Start(ctx, "GeneratePrompt", trace.WithAttributes(
		attribute.String("scene.id", scene.ID.String()),
		attribute.String("scene.city", scene.City),
		attribute.String("scene.district", scene.District),
	))
	defer span.End()

	l := s.logger.With(slog.String("scene_id", scene.ID.String()))

	pois := s.counter.CountPOIs(ctx, scene.Lat, scene.Lon, scene.RadiusM)
	intents := DeriveIntents(scene.TemperatureC, scene.Sky, scene.HumidityPct, pois)
	text := BuildPrompt(scene, pois, intents)

	l.DebugContext(ctx, "Prompt generated",
		slog.Any("pois", pois.Categories()),
		slog.Any("intents", intents),
		slog.Int("prompt_len", len(text)))
	span.SetAttributes(
		attribute.StringSlice("prompt.intents", intents),
		attribute.Int("prompt.poi_categories", len(pois)),
	)
	span.SetStatus(codes.Ok, "Prompt generated")
	return text
}
