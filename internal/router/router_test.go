package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/paragourmet/internal/api/prompt"
	"github.com/FACorreiaa/paragourmet/internal/api/scene"
	"github.com/FACorreiaa/paragourmet/internal/api/suggestion"
	"github.com/FACorreiaa/paragourmet/internal/types"
	"github.com/FACorreiaa/paragourmet/internal/web"
)

type stubPrompts struct{}

func (stubPrompts) GeneratePrompt(_ context.Context, sc types.Scene) string {
	return "[SCENE] " + sc.District + ", " + sc.City
}

type stubSuggestions struct{}

func (stubSuggestions) Suggest(_ context.Context, _ types.Scene, opts types.SuggestionOptions) (types.SuggestionResponse, error) {
	return types.SuggestionResponse{Suggestion: "Bingsu", Reason: opts.Lang, ImageURL: suggestion.NoImageFound}, nil
}

type utcFinder struct{}

func (utcFinder) GetTimezoneName(_, _ float64) string { return "UTC" }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := scene.NewResolver(utcFinder{}, logger)

	webHandler, err := web.NewHandler(logger)
	require.NoError(t, err)

	handler := NewServerHandler(&Config{
		PromptHandler:     prompt.NewHandlerImpl(resolver, stubPrompts{}, types.DefaultSearchRadiusM, logger),
		SuggestionHandler: suggestion.NewHandlerImpl(resolver, stubSuggestions{}, types.DefaultSearchRadiusM, logger),
		WebHandler:        webHandler,
		AllowedOrigins:    []string{"http://localhost:8000"},
	}, logger, 5*time.Second)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

const sceneQuery = "?lat=37.544&lon=127.056&city=Seoul&district=Seongsu-dong&temp_c=30&sky=sunny"

func TestSetupRouter(t *testing.T) {
	srv := newTestServer(t)

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]bool
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, map[string]bool{"ok": true}, body)
	})

	t.Run("prompt", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/prompt" + sceneQuery)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body types.PromptResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "[SCENE] Seongsu-dong, Seoul", body.Prompt)
	})

	t.Run("prompt bad request", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/prompt?lat=1")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body types.Response
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.NotEmpty(t, body.RequestID, "request id middleware should run")
	})

	t.Run("trailing slash on api route", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/prompt/" + sceneQuery)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("compressed json", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
		require.NoError(t, err)
		req.Header.Set("Accept-Encoding", "gzip")

		resp, err := http.DefaultTransport.RoundTrip(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	})

	t.Run("suggestion", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/suggestion" + sceneQuery)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body types.SuggestionResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Bingsu", body.Suggestion)
		assert.Equal(t, "en", body.Reason)
		assert.Equal(t, "No image found", body.ImageURL)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/prompt"+sceneQuery, "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("api docs", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/swagger/doc.json")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var doc struct {
			Info  map[string]any `json:"info"`
			Paths map[string]any `json:"paths"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
		assert.Equal(t, "paragourmet API", doc.Info["title"])
		assert.Contains(t, doc.Paths, "/api/prompt")
		assert.Contains(t, doc.Paths, "/api/suggestion")
		assert.Contains(t, doc.Paths, "/health")
	})

	t.Run("landing pages", func(t *testing.T) {
		for path, lang := range map[string]string{"/": "ko", "/kr/": "ko", "/en/": "en"} {
			resp, err := http.Get(srv.URL + path)
			require.NoError(t, err)
			b, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode, path)
			assert.Contains(t, string(b), `<html lang="`+lang+`">`, path)
		}
	})
}
