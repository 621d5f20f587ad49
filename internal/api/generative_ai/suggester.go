package generativeAI

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
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

const (
	baseSystemMessage = "You are an AI that suggests a single food or drink item based on a detailed prompt. " +
		"You must follow all rules and output only a single, clean JSON object with two keys: suggestion and reason."
	koreanInstruction    = " 한국어로 응답해줘. 대신에 친근하고 인스타 피드에서 볼법한 어투로 작성해줘."
	englishInstruction   = " Respond in English."
	diversityInstruction = " If the same request was made before, suggest a different suitable option."
)

// SystemMessage builds the system instruction for a language and diversity setting.
// Anything other than "ko" is answered in English.
func SystemMessage(opts types.SuggestionOptions) string {
	var b strings.Builder
	b.WriteString(baseSystemMessage)
	if opts.Lang == "ko" {
		b.WriteString(koreanInstruction)
	} else {
		b.WriteString(englishInstruction)
	}
	if opts.DiversityMode {
		b.WriteString(diversityInstruction)
	}
	return b.String()
}

// Suggester asks a TextGenerator for one suggestion and validates the reply.
type Suggester struct {
	generator TextGenerator
	provider  Provider
	policy    retry.Policy
	metrics   *metrics.AppMetrics
	logger    *slog.Logger
}

func NewSuggester(generator TextGenerator, provider Provider, policy retry.Policy, m *metrics.AppMetrics, logger *slog.Logger) *Suggester {
	if m == nil {
		m = metrics.NewNoop()
	}
	return &Suggester{
		generator: generator,
		provider:  provider,
		policy:    policy,
		metrics:   m,
		logger:    logger,
	}
}

// Suggest returns the model's suggestion for prompt. Transport errors are retried under
// the suggester's policy; a reply that is not valid JSON with both keys is not.
func (s *Suggester) Suggest(ctx context.Context, prompt string, opts types.SuggestionOptions) (types.Suggestion, error) {
	ctx, span := otel.Tracer("Suggester").Start(ctx, "Suggest", trace.WithAttributes(
		attribute.String("llm.provider", string(s.provider)),
		attribute.String("suggestion.lang", opts.Lang),
		attribute.Bool("suggestion.diversity_mode", opts.DiversityMode),
	))
	defer span.End()

	l := s.logger.With(slog.String("provider", string(s.provider)))
	providerAttr := metric.WithAttributes(attribute.String("provider", string(s.provider)))
	system := SystemMessage(opts)

	var suggestion types.Suggestion
	err := retry.Do(ctx, s.policy, func(ctx context.Context) error {
		raw, err := s.generator.GenerateText(ctx, system, prompt)
		if err != nil {
			return err
		}
		parsed, err := parseSuggestion(raw)
		if err != nil {
			l.WarnContext(ctx, "Model reply rejected", slog.String("reply", raw), slog.Any("error", err))
			return retry.Permanent(err)
		}
		suggestion = parsed
		return nil
	}, func(attempt int, err error, wait time.Duration) {
		l.WarnContext(ctx, "Suggestion attempt failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.Any("error", err))
	})
	if err != nil {
		s.metrics.SuggestionFailuresTotal.Add(ctx, 1, providerAttr)
		l.ErrorContext(ctx, "Failed to get suggestion", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "suggestion failed")
		return types.Suggestion{}, fmt.Errorf("failed to get suggestion from %s: %w", s.provider, err)
	}

	s.metrics.SuggestionsTotal.Add(ctx, 1, providerAttr)
	span.SetAttributes(attribute.String("suggestion.item", suggestion.Suggestion))
	span.SetStatus(codes.Ok, "Suggestion generated")
	return suggestion, nil
}

type suggestionReply struct {
	Suggestion *string `json:"suggestion"`
	Reason     *string `json:"reason"`
}

func parseSuggestion(raw string) (types.Suggestion, error) {
	var reply suggestionReply
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &reply); err != nil {
		return types.Suggestion{}, fmt.Errorf("%w: invalid JSON: %v", types.ErrNoSuggestion, err)
	}
	if reply.Suggestion == nil || reply.Reason == nil {
		return types.Suggestion{}, fmt.Errorf("%w: reply is missing suggestion or reason", types.ErrNoSuggestion)
	}
	if strings.TrimSpace(*reply.Suggestion) == "" {
		return types.Suggestion{}, fmt.Errorf("%w: empty suggestion", types.ErrNoSuggestion)
	}
	return types.Suggestion{
		Suggestion: strings.TrimSpace(*reply.Suggestion),
		Reason:     strings.TrimSpace(*reply.Reason),
	}, nil
}

// cleanJSONResponse strips code fences and any prose around the first JSON object.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	firstBrace := strings.Index(response, "{")
	if firstBrace == -1 {
		return response
	}
	lastBrace := strings.LastIndex(response, "}")
	if lastBrace <= firstBrace {
		return response
	}
	return response[firstBrace : lastBrace+1]
}
