package generativeAI

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/paragourmet/app/retry"
	"github.com/FACorreiaa/paragourmet/internal/types"
)

// MockTextGenerator is a mock implementation of TextGenerator
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	args := m.Called(ctx, system, prompt)
	return args.String(0), args.Error(1)
}

var fastPolicy = retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}

func newTestSuggester(gen TextGenerator) *Suggester {
	return NewSuggester(gen, ProviderGemini, fastPolicy, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSystemMessage(t *testing.T) {
	en := SystemMessage(types.SuggestionOptions{Lang: "en"})
	assert.Equal(t, baseSystemMessage+" Respond in English.", en)

	ko := SystemMessage(types.SuggestionOptions{Lang: "ko"})
	assert.Contains(t, ko, "한국어로 응답해줘")
	assert.NotContains(t, ko, "Respond in English.")

	other := SystemMessage(types.SuggestionOptions{Lang: "fr"})
	assert.Contains(t, other, "Respond in English.")

	diverse := SystemMessage(types.SuggestionOptions{Lang: "en", DiversityMode: true})
	assert.Contains(t, diverse, "suggest a different suitable option")
	assert.NotContains(t, en, "different suitable option")
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", `Sure! {"a":1} Enjoy.`, `{"a":1}`},
		{"no object", "no json here", "no json here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONResponse(tt.in))
		})
	}
}

func TestParseSuggestion(t *testing.T) {
	got, err := parseSuggestion("```json\n{\"suggestion\": \" Naengmyeon \", \"reason\": \"Cold noodles for a hot day.\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, types.Suggestion{Suggestion: "Naengmyeon", Reason: "Cold noodles for a hot day."}, got)

	for _, raw := range []string{
		`{"suggestion": "Bingsu"}`,
		`{"reason": "because"}`,
		`{"suggestion": "", "reason": "empty"}`,
		`not json`,
	} {
		_, err := parseSuggestion(raw)
		assert.ErrorIs(t, err, types.ErrNoSuggestion, raw)
	}
}

func TestSuggester_Suggest(t *testing.T) {
	ctx := context.Background()
	opts := types.SuggestionOptions{Lang: "en"}

	t.Run("Success", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("GenerateText", mock.Anything, SystemMessage(opts), "the prompt").
			Return(`{"suggestion":"Bingsu","reason":"Shaved ice beats the heat."}`, nil).Once()

		got, err := newTestSuggester(gen).Suggest(ctx, "the prompt", opts)
		require.NoError(t, err)
		assert.Equal(t, "Bingsu", got.Suggestion)
		assert.Equal(t, "Shaved ice beats the heat.", got.Reason)
		gen.AssertExpectations(t)
	})

	t.Run("RetriesTransportErrors", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("503 unavailable")).Twice()
		gen.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
			Return(`{"suggestion":"Mul-naengmyeon","reason":"Icy broth."}`, nil).Once()

		got, err := newTestSuggester(gen).Suggest(ctx, "p", opts)
		require.NoError(t, err)
		assert.Equal(t, "Mul-naengmyeon", got.Suggestion)
		gen.AssertNumberOfCalls(t, "GenerateText", 3)
	})

	t.Run("GivesUpAfterMaxAttempts", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("timeout"))

		_, err := newTestSuggester(gen).Suggest(ctx, "p", opts)
		require.Error(t, err)
		gen.AssertNumberOfCalls(t, "GenerateText", 3)
	})

	t.Run("UnusableReplyIsNotRetried", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
			Return(`{"dish":"Tteokbokki"}`, nil).Once()

		_, err := newTestSuggester(gen).Suggest(ctx, "p", opts)
		assert.ErrorIs(t, err, types.ErrNoSuggestion)
		gen.AssertNumberOfCalls(t, "GenerateText", 1)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("boom")).Maybe()

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := newTestSuggester(gen).Suggest(cctx, "p", opts)
		require.Error(t, err)
		assert.LessOrEqual(t, len(gen.Calls), 1)
	})
}
