package imagesearch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/FACorreiaa/paragourmet/app/retry"
	"github.com/FACorreiaa/paragourmet/internal/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *CustomSearchClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewCustomSearchClient(context.Background(), "key", "engine-1",
		retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}, nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return c
}

func writeItems(w http.ResponseWriter, links ...string) {
	items := make([]map[string]string, 0, len(links))
	for _, l := range links {
		items = append(items, map[string]string{"link": l})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"kind": "customsearch#search", "items": items})
}

func TestQuery(t *testing.T) {
	assert.Equal(t, "Bingsu food photography", Query("Bingsu", "en"))
	assert.Equal(t, "빙수 음식 사진", Query("빙수", "ko"))
	assert.Equal(t, "Bingsu food photography", Query("Bingsu", ""))
}

func TestCustomSearchClient_SearchImage(t *testing.T) {
	t.Run("first result", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "Bingsu food photography", q.Get("q"))
			assert.Equal(t, "engine-1", q.Get("cx"))
			assert.Equal(t, "image", q.Get("searchType"))
			assert.Equal(t, "1", q.Get("num"))
			assert.Equal(t, "LARGE", q.Get("imgSize"))
			assert.Equal(t, "active", q.Get("safe"))
			writeItems(w, "https://img.example/bingsu.jpg", "https://img.example/other.jpg")
		})

		link, err := c.SearchImage(context.Background(), "Bingsu", "en")
		require.NoError(t, err)
		assert.Equal(t, "https://img.example/bingsu.jpg", link)
	})

	t.Run("no results", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			writeItems(w)
		})

		_, err := c.SearchImage(context.Background(), "Bingsu", "en")
		assert.ErrorIs(t, err, types.ErrNoImage)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("server errors are retried", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				http.Error(w, `{"error":{"code":503,"message":"unavailable"}}`, http.StatusServiceUnavailable)
				return
			}
			writeItems(w, "https://img.example/late.jpg")
		})

		link, err := c.SearchImage(context.Background(), "Bingsu", "en")
		require.NoError(t, err)
		assert.Equal(t, "https://img.example/late.jpg", link)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
		})

		_, err := c.SearchImage(context.Background(), "Bingsu", "en")
		require.Error(t, err)
		assert.NotErrorIs(t, err, types.ErrNoImage)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestNewCustomSearchClient_MissingCredentials(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := NewCustomSearchClient(context.Background(), "", "engine", retry.DefaultPolicy(), nil, logger)
	assert.ErrorIs(t, err, types.ErrMissingAPIKey)

	_, err = NewCustomSearchClient(context.Background(), "key", "", retry.DefaultPolicy(), nil, logger)
	assert.ErrorIs(t, err, types.ErrMissingAPIKey)
}

func TestDisabledSearcher(t *testing.T) {
	_, err := DisabledSearcher{}.SearchImage(context.Background(), "x", "en")
	assert.ErrorIs(t, err, types.ErrMissingAPIKey)
}
