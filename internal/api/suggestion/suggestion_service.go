package suggestion

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	imagesearch "github.com/FACorreiaa/paragourmet/internal/api/image_search"
	"github.com/FACorreiaa/paragourmet/internal/api/prompt"
	"github.com/FACorreiaa/paragourmet/internal/types"
)

// NoImageFound is returned in place of an image URL when the search comes back empty.
const NoImageFound = "No image found"

var _ Service = (*ServiceImpl)(nil)

// Suggester asks a generative model for one suggestion.
type Suggester interface {
	Suggest(ctx context.Context, prompt string, opts types.SuggestionOptions) (types.Suggestion, error)
}

// Service runs the full scene → prompt → suggestion → image pipeline.
type Service interface {
	Suggest(ctx context.Context, scene types.Scene, opts types.SuggestionOptions) (types.SuggestionResponse, error)
}

type ServiceImpl struct {
	prompts   prompt.Service
	suggester Suggester
	images    imagesearch.Searcher
	logger    *slog.Logger
}

func NewServiceImpl(prompts prompt.Service, suggester Suggester, images imagesearch.Searcher, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		prompts:   prompts,
		suggester: suggester,
		images:    images,
		logger:    logger,
	}
}

// Suggest fails only when the generative step fails. A missing image is reported as
// NoImageFound.
func (s *ServiceImpl) Suggest(ctx context.Context, scene types.Scene, opts types.SuggestionOptions) (types.SuggestionResponse, error) {
	ctx, span := otel.Tracer("SuggestionService").Start(ctx, "Suggest", trace.WithAttributes(
		attribute.String("scene.id", scene.ID.String()),
		attribute.String("suggestion.lang", opts.Lang),
	))
	defer span.End()

	l := s.logger.With(slog.String("scene_id", scene.ID.String()))

	text := s.prompts.GeneratePrompt(ctx, scene)

	suggestion, err := s.suggester.Suggest(ctx, text, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "suggestion failed")
		return types.SuggestionResponse{}, err
	}

	imageURL, err := s.images.SearchImage(ctx, suggestion.Suggestion, opts.Lang)
	if err != nil || imageURL == "" {
		l.InfoContext(ctx, "Returning suggestion without image",
			slog.String("suggestion", suggestion.Suggestion),
			slog.Any("error", err))
		imageURL = NoImageFound
	}

	span.SetStatus(codes.Ok, "Suggestion ready")
	return types.SuggestionResponse{
		Suggestion: suggestion.Suggestion,
		Reason:     suggestion.Reason,
		ImageURL:   imageURL,
	}, nil
}
