package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// AppMetrics holds the application's metric instruments.
// It is built once at startup and handed to the components that record into it.
type AppMetrics struct {
	OverpassQueriesTotal         metric.Int64Counter
	OverpassFailuresTotal        metric.Int64Counter
	OverpassQueryDurationSeconds metric.Float64Histogram
	SuggestionsTotal             metric.Int64Counter
	SuggestionFailuresTotal      metric.Int64Counter
	ImageSearchFailuresTotal     metric.Int64Counter
}

// New creates every instrument from the given meter.
func New(meter metric.Meter) (*AppMetrics, error) {
	var err error
	m := &AppMetrics{}

	m.OverpassQueriesTotal, err = meter.Int64Counter(
		"overpass_queries_total",
		metric.WithDescription("Total number of Overpass POI count queries sent"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create overpass_queries_total: %w", err)
	}

	m.OverpassFailuresTotal, err = meter.Int64Counter(
		"overpass_failures_total",
		metric.WithDescription("Total number of POI lookups that degraded to an empty result"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create overpass_failures_total: %w", err)
	}

	m.OverpassQueryDurationSeconds, err = meter.Float64Histogram(
		"overpass_query_duration_seconds",
		metric.WithDescription("Duration of POI lookups in seconds, retries included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create overpass_query_duration_seconds: %w", err)
	}

	m.SuggestionsTotal, err = meter.Int64Counter(
		"suggestions_total",
		metric.WithDescription("Total number of suggestions returned by the generative backend"),
		metric.WithUnit("{suggestion}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestions_total: %w", err)
	}

	m.SuggestionFailuresTotal, err = meter.Int64Counter(
		"suggestion_failures_total",
		metric.WithDescription("Total number of failed generative suggestion calls"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion_failures_total: %w", err)
	}

	m.ImageSearchFailuresTotal, err = meter.Int64Counter(
		"image_search_failures_total",
		metric.WithDescription("Total number of image searches that produced no image"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create image_search_failures_total: %w", err)
	}

	return m, nil
}

// NewNoop returns instruments that record nothing. Used by tests and the prompt CLI.
func NewNoop() *AppMetrics {
	m, err := New(noop.NewMeterProvider().Meter("paragourmet"))
	if err != nil {
		// noop instruments never fail to build
		panic(err)
	}
	return m
}
