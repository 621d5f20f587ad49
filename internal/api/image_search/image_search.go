package imagesearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/FACorreiaa/paragourmet/app/observability/metrics"
	"github.com/FACorreiaa/paragourmet/app/retry"
	"github.com/FACorreiaa/paragourmet/internal/types"
)

var (
	_ Searcher = (*CustomSearchClient)(nil)
	_ Searcher = DisabledSearcher{}
)

// Searcher finds one picture of a dish.
type Searcher interface {
	SearchImage(ctx context.Context, query, lang string) (string, error)
}

// Query decorates the dish name so the search favours food photos.
func Query(query, lang string) string {
	if lang == "ko" {
		return query + " 음식 사진"
	}
	return query + " food photography"
}

// CustomSearchClient uses the Google Programmable Search JSON API in image mode.
type CustomSearchClient struct {
	service  *customsearch.Service
	engineID string
	policy   retry.Policy
	metrics  *metrics.AppMetrics
	logger   *slog.Logger
}

// NewCustomSearchClient builds a client for the given engine. Extra options override the
// defaults, e.g. to point at a different endpoint.
func NewCustomSearchClient(ctx context.Context, apiKey, engineID string, policy retry.Policy, m *metrics.AppMetrics, logger *slog.Logger, opts ...option.ClientOption) (*CustomSearchClient, error) {
	if apiKey == "" || engineID == "" {
		return nil, fmt.Errorf("custom search: %w", types.ErrMissingAPIKey)
	}
	if m == nil {
		m = metrics.NewNoop()
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create custom search service: %w", err)
	}
	return &CustomSearchClient{
		service:  service,
		engineID: engineID,
		policy:   policy,
		metrics:  m,
		logger:   logger,
	}, nil
}

// SearchImage returns the link of the first large, safe image result. It returns
// types.ErrNoImage when the search has no results.
func (c *CustomSearchClient) SearchImage(ctx context.Context, query, lang string) (string, error) {
	q := Query(query, lang)
	ctx, span := otel.Tracer("ImageSearch").Start(ctx, "SearchImage", trace.WithAttributes(
		attribute.String("image_search.query", q),
	))
	defer span.End()

	l := c.logger.With(slog.String("query", q))

	var link string
	err := retry.Do(ctx, c.policy, func(ctx context.Context) error {
		res, err := c.service.Cse.List().
			Q(q).
			Cx(c.engineID).
			SearchType("image").
			Num(1).
			ImgSize("LARGE").
			Safe("active").
			Context(ctx).
			Do()
		if err != nil {
			if !retryable(err) {
				return retry.Permanent(err)
			}
			return err
		}
		if len(res.Items) == 0 || res.Items[0].Link == "" {
			return retry.Permanent(types.ErrNoImage)
		}
		link = res.Items[0].Link
		return nil
	}, func(attempt int, err error, wait time.Duration) {
		l.WarnContext(ctx, "Image search attempt failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.Any("error", err))
	})
	if err != nil {
		c.metrics.ImageSearchFailuresTotal.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, "image search failed")
		if errors.Is(err, types.ErrNoImage) {
			l.WarnContext(ctx, "No image results found")
			return "", err
		}
		l.ErrorContext(ctx, "Image search failed", slog.Any("error", err))
		return "", fmt.Errorf("image search: %w", err)
	}

	span.SetStatus(codes.Ok, "Image found")
	return link, nil
}

// retryable keeps client errors other than rate limiting out of the retry loop.
func retryable(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return true
}

// DisabledSearcher is used when no search credentials are configured.
type DisabledSearcher struct{}

func (DisabledSearcher) SearchImage(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("image search disabled: %w", types.ErrMissingAPIKey)
}
