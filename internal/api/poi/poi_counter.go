package poi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/paragourmet/app/observability/metrics"
	"github.com/FACorreiaa/paragourmet/app/retry"
	"github.com/FACorreiaa/paragourmet/internal/types"
)

const DefaultOverpassURL = "https://overpass-api.de/api/interpreter"

// DefaultBudget bounds one CountPOIs call, retries and backoff included.
const DefaultBudget = 20 * time.Second

var _ Counter = (*OverpassCounter)(nil)

// Counter counts nearby POIs per category. Implementations never fail: upstream problems
// degrade to an empty result.
type Counter interface {
	CountPOIs(ctx context.Context, lat, lon float64, radiusM int) types.POICounts
}

// OverpassCounter counts POIs with a single multi-statement Overpass query.
type OverpassCounter struct {
	table    CategoryTable
	endpoint string
	client   *http.Client
	policy   retry.Policy
	budget   time.Duration
	metrics  *metrics.AppMetrics
	logger   *slog.Logger
}

// CounterOption tunes an OverpassCounter.
type CounterOption func(*OverpassCounter)

// WithBudget caps the time CountPOIs spends on Overpass before it settles for an empty
// result. Non-positive values keep DefaultBudget.
func WithBudget(d time.Duration) CounterOption {
	return func(c *OverpassCounter) {
		if d > 0 {
			c.budget = d
		}
	}
}

// NewOverpassCounter wires a counter. A nil client gets a 15s-timeout default.
func NewOverpassCounter(table CategoryTable, endpoint string, client *http.Client, policy retry.Policy, m *metrics.AppMetrics, logger *slog.Logger, opts ...CounterOption) *OverpassCounter {
	if endpoint == "" {
		endpoint = DefaultOverpassURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if m == nil {
		m = metrics.NewNoop()
	}
	c := &OverpassCounter{
		table:    table,
		endpoint: endpoint,
		client:   client,
		policy:   policy,
		budget:   DefaultBudget,
		metrics:  m,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildQuery renders one "out count" statement per category, in table order.
func BuildQuery(table CategoryTable, lat, lon float64, radiusM int) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];")
	around := fmt.Sprintf("(around:%d,%s,%s)", radiusM, formatCoord(lat), formatCoord(lon))
	for _, c := range table.categories {
		b.WriteString("(")
		b.WriteString(c.Selector)
		b.WriteString(around)
		b.WriteString(";); out count;")
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CountPOIs implements Counter.
func (c *OverpassCounter) CountPOIs(ctx context.Context, lat, lon float64, radiusM int) types.POICounts {
	ctx, span := otel.Tracer("POICounter").Start(ctx, "CountPOIs", trace.WithAttributes(
		attribute.Float64("geo.lat", lat),
		attribute.Float64("geo.lon", lon),
		attribute.Int("poi.radius_m", radiusM),
		attribute.Int("poi.categories", c.table.Len()),
	))
	defer span.End()

	l := c.logger.With(slog.String("component", "POICounter"))
	start := time.Now()
	defer func() {
		c.metrics.OverpassQueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	}()

	query := BuildQuery(c.table, lat, lon, radiusM)

	// The caller's context keeps running after a slow Overpass gives up.
	lookupCtx, cancel := context.WithTimeout(ctx, c.budget)
	defer cancel()

	var totals []int
	err := retry.Do(lookupCtx, c.policy, func(ctx context.Context) error {
		var err error
		totals, err = c.fetch(ctx, query)
		return err
	}, func(attempt int, err error, wait time.Duration) {
		l.WarnContext(ctx, "Overpass request failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", c.policy.MaxAttempts),
			slog.Duration("backoff", wait),
			slog.Any("error", err))
	})
	if err != nil {
		var parseErr *parseError
		if errors.As(err, &parseErr) {
			l.ErrorContext(ctx, "Overpass parsing error", slog.Any("error", err))
		} else {
			l.ErrorContext(ctx, "Overpass API failed, continuing without POIs",
				slog.Int("max_attempts", c.policy.MaxAttempts),
				slog.Duration("budget", c.budget),
				slog.Any("error", err))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "poi lookup degraded to empty result")
		c.metrics.OverpassFailuresTotal.Add(ctx, 1)
		return types.POICounts{}
	}

	counts := assignCounts(c.table, totals)
	span.SetAttributes(attribute.Int("poi.present", len(counts)))
	span.SetStatus(codes.Ok, "POIs counted")
	l.DebugContext(ctx, "POIs counted", slog.Any("categories", counts.Categories()))
	return counts
}

// assignCounts maps the i-th total onto the i-th table category and drops zeros.
// Missing trailing totals count as zero; surplus totals are ignored.
func assignCounts(table CategoryTable, totals []int) types.POICounts {
	counts := types.POICounts{}
	for i, cat := range table.categories {
		if i >= len(totals) {
			break
		}
		if totals[i] > 0 {
			counts = append(counts, types.POICount{Category: cat.Key, Count: totals[i]})
		}
	}
	return counts
}

type parseError struct{ err error }

func (e *parseError) Error() string { return "overpass parse: " + e.err.Error() }
func (e *parseError) Unwrap() error { return e.err }

// fetch sends one query. Transport failures and bad statuses are retryable,
// payload problems are not.
func (c *OverpassCounter) fetch(ctx context.Context, query string) ([]int, error) {
	c.metrics.OverpassQueriesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("endpoint", c.endpoint)))

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("failed to create overpass request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Debug("failed to close overpass response body", slog.Any("error", err))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("overpass returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	totals, err := parseCountResponse(resp.Body)
	if err != nil {
		return nil, retry.Permanent(&parseError{err: err})
	}
	return totals, nil
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// overpassElement is one result row. "out count" rows look like
// {"type":"count","id":0,"tags":{"nodes":"1","ways":"0","relations":"0","total":"1"}}.
type overpassElement struct {
	Type string            `json:"type"`
	Tags map[string]string `json:"tags"`
}

// parseCountResponse returns the totals of the count elements in response order.
func parseCountResponse(r io.Reader) ([]int, error) {
	var payload overpassResponse
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	totals := make([]int, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		if el.Type != "count" {
			continue
		}
		raw, ok := el.Tags["total"]
		if !ok {
			totals = append(totals, 0)
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid count total %q: %w", raw, err)
		}
		totals = append(totals, n)
	}
	return totals, nil
}
